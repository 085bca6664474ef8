// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particle

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/peridem/geom"
	"github.com/cpmech/peridem/mdl"
	"github.com/cpmech/peridem/mesh"
)

func sampleMaterial() mdl.Material {
	base := mdl.Base{
		Horiz: 0.3, Rho: 1.0, Infl: mdl.ConstantInfluence{}, Dim: 2,
		Params: mdl.ParamSet{HasK: true, HasG: true, K: 10, G: 5},
	}
	return mdl.NewElastic(base, nil)
}

func Test_particle_node_ownership(tst *testing.T) {
	chk.PrintTitle("particle owns a contiguous global node range")
	shape := geom.NewShape("circle", []float64{0, 0, 0, 1})
	ref := mesh.Generate(shape, 2, 0.1)
	mat := sampleMaterial()

	p1 := New(0, KindDeformable, ref, mat, Identity(), 0)
	p2 := New(1, KindDeformable, ref, mat, Identity(), p1.GlobEnd)

	if p1.GlobStart != 0 || p1.GlobEnd != ref.NumNodes() {
		tst.Errorf("p1 range wrong: [%d,%d)", p1.GlobStart, p1.GlobEnd)
	}
	if p2.GlobStart != p1.GlobEnd {
		tst.Errorf("p2 should start where p1 ends: p2.start=%d p1.end=%d", p2.GlobStart, p1.GlobEnd)
	}
	if !p1.Contains(0) || p1.Contains(p1.GlobEnd) {
		tst.Errorf("Contains boundary wrong for p1")
	}
	if p2.LocalNode(p2.GlobStart) != 0 {
		tst.Errorf("LocalNode should map the first owned global index to local 0")
	}
}

func Test_particle_deformable_requires_material(tst *testing.T) {
	chk.PrintTitle("deformable particle without material panics")
	defer func() {
		if r := recover(); r == nil {
			tst.Error("expected panic for nil material on deformable particle")
		}
	}()
	shape := geom.NewShape("circle", []float64{0, 0, 0, 1})
	ref := mesh.Generate(shape, 2, 0.2)
	New(0, KindDeformable, ref, nil, Identity(), 0)
}

func Test_transform_scale_rotate_translate(tst *testing.T) {
	chk.PrintTitle("transform applies scale, rotate, translate in order")
	t := Transform{Scale: 2, Rotation: RotationZ(math.Pi / 2), Translation: [3]float64{1, 0, 0}}
	out := t.Apply([]float64{1, 0, 0})
	if math.Abs(out[0]-1) > 1e-9 || math.Abs(out[1]-2) > 1e-9 {
		tst.Errorf("expected (1,2,0)-ish, got %v", out)
	}
}
