// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/peridem/model"
)

// TwoParticlePostProcessor is a supplemented feature (the two-particle
// verification test is present only in original_source, not in the base
// spec): it reproduces apps/twop/main.cpp's d_ppFile CSV — one row per
// output step with columns t, delta (penetration distance, negative while
// in contact), cont_area_r (ideal Hertzian contact patch radius implied
// by the penetration), and max_dist (second particle's highest point: the
// largest last coordinate among its current node positions). The two "ideal" reference columns from
// the original (closed-form Hertz contact solution used as a validation
// baseline) are out of scope here — no closed-form reference solver is
// part of this engine — so only the measured columns are emitted.
type TwoParticlePostProcessor struct {
	P0, P1 int // particle indices
	Path   string

	f   *os.File
	w   *bufio.Writer
	rE  float64 // r0 + contact radius, penetration reference distance
	set bool
}

// NewTwoParticlePostProcessor opens path for writing and emits the header
// row. rE is the reference distance at which the two particles are
// considered just touching (sum of the two bounding radii, or bounding
// radius plus contact radius when asymmetric — caller's choice).
func NewTwoParticlePostProcessor(p0, p1 int, path string, rE float64) *TwoParticlePostProcessor {
	f, err := os.Create(path)
	if err != nil {
		chk.Panic("sim: cannot create two-particle post-processing file %q: %v", path, err)
	}
	w := bufio.NewWriter(f)
	w.WriteString("t, delta, cont_area_r, max_dist\n")
	return &TwoParticlePostProcessor{P0: p0, P1: p1, Path: path, f: f, w: w, rE: rE}
}

// Process computes and appends one row. Grounded on
// twoParticleTestPenetrationDist: delta = center-distance - rE, clamped to
// non-positive (delta>0 means the particles have separated, reported as
// zero penetration with zero contact patch, matching the original's
// isGreater(d_penDist,0.) branch).
func (pp *TwoParticlePostProcessor) Process(m *model.Model, t float64, step int) {
	c0 := m.Particles[pp.P0].CenterGlobalID()
	c1 := m.Particles[pp.P1].CenterGlobalID()
	x0, x1 := m.Pos[c0], m.Pos[c1]
	var d2 float64
	for k := range x0 {
		diff := x1[k] - x0[k]
		d2 += diff * diff
	}
	dist := math.Sqrt(d2)
	delta := dist - pp.rE
	contactR := 0.0
	if delta < 0 {
		contactR = math.Sqrt(pp.rE*pp.rE - (pp.rE+delta)*(pp.rE+delta))
	} else {
		delta = 0
	}
	maxDist := x1[len(x1)-1]
	p1 := m.Particles[pp.P1]
	for gi := p1.GlobStart; gi < p1.GlobEnd; gi++ {
		if v := m.Pos[gi][len(m.Pos[gi])-1]; v > maxDist {
			maxDist = v
		}
	}
	fmt.Fprintf(pp.w, "%v, %v, %v, %v\n", t, delta, contactR, maxDist)
}

// Close flushes and closes the underlying file.
func (pp *TwoParticlePostProcessor) Close() {
	pp.w.Flush()
	pp.f.Close()
}
