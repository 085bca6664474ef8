// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neighbor

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/peridem/geom"
	"github.com/cpmech/peridem/mdl"
	"github.com/cpmech/peridem/mesh"
	"github.com/cpmech/peridem/model"
	"github.com/cpmech/peridem/particle"
)

func sampleMaterial() mdl.Material {
	base := mdl.Base{
		Horiz: 0.25, Rho: 1.0, Infl: mdl.ConstantInfluence{}, Dim: 2,
		Params: mdl.ParamSet{HasK: true, HasG: true, K: 10, G: 5},
	}
	return mdl.NewElastic(base, nil)
}

func Test_peridynamic_family_excludes_self_and_boundary(tst *testing.T) {
	chk.PrintTitle("peridynamic family search is strict at the horizon and excludes self")
	shape := geom.NewShape("circle", []float64{0, 0, 0, 1})
	ref := mesh.Generate(shape, 2, 0.15)
	mat := sampleMaterial()
	p := particle.New(0, particle.KindDeformable, ref, mat, particle.Identity(), 0)
	m := model.New(2, p.GlobEnd)
	m.AddParticle(p, 0)

	BuildPeridynamic(m, p)
	FinalizeBondStore(m)

	center := p.Ref.CenterNodeID()
	fam := m.PdNeighOwner[p.GlobStart+center]
	for _, gi := range fam {
		if gi == p.GlobStart+center {
			tst.Errorf("family must not contain the owner itself")
		}
	}
	if len(fam) == 0 {
		tst.Errorf("expected a nonempty family for the central node")
	}
	if m.PdBonds.IntactCount(p.GlobStart+center) != len(fam) {
		tst.Errorf("bond store count should match the family size before any break")
	}
}

// Test_adaptive_schedule is concrete scenario #6: a schedule must force a
// rebuild once a fast-moving particle could have consumed its full skin
// margin, even if that happens well before the hard interval elapses.
func Test_adaptive_schedule(tst *testing.T) {
	chk.PrintTitle("adaptive contact-neighbor rebuild schedule")
	sched := NewSchedule(1000, 0.1, 1.0, 0.5)
	rebuilt := false
	for step := 0; step < 50; step++ {
		sched.Observe(0.001) // negligible drift, resampled every step
		if sched.ShouldRebuild(0.01) {
			rebuilt = true
			break
		}
	}
	if rebuilt {
		tst.Errorf("slow particles should not trigger an early rebuild")
	}

	sched2 := NewSchedule(1000, 0.1, 1.0, 0.5)
	rebuiltAt := -1
	for step := 0; step < 1000; step++ {
		sched2.Observe(5.0) // fast approach, resampled every step
		if sched2.ShouldRebuild(0.01) {
			rebuiltAt = step
			break
		}
	}
	if rebuiltAt < 0 {
		tst.Fatalf("fast-moving schedule should have forced a rebuild well before the hard interval")
	}
	if rebuiltAt >= 1000 {
		tst.Errorf("rebuild should trigger long before the hard interval of 1000 steps, got step %d", rebuiltAt)
	}
}

// Test_adaptive_schedule_resize_matches_spec_formula drives a schedule with
// a particle at a constant relative velocity and asserts the exact r_s the
// §4.H adaptive-sizing steps 1-4 must produce: min(s_factor*R_c_max,
// s_factor*interval*dt*v), not merely "a rebuild happens before the hard
// interval".
func Test_adaptive_schedule_resize_matches_spec_formula(tst *testing.T) {
	chk.PrintTitle("adaptive resize produces the exact r_s required by the velocity/R_c_max compare")
	const (
		interval = 100
		rcMax    = 1.0
		sFactor  = 0.5
		dt       = 0.01
		v        = 5.0
	)
	sched := NewSchedule(interval, 0.1, rcMax, sFactor)

	rFromR := sFactor * rcMax
	rFromV := sFactor * float64(interval) * dt * v
	wantRs := rFromR
	if rFromV < wantRs {
		wantRs = rFromV
	}

	rebuiltAt := -1
	for step := 0; step < 10*interval; step++ {
		sched.Observe(v)
		if sched.ShouldRebuild(dt) {
			rebuiltAt = step
			break
		}
	}
	if rebuiltAt < 0 {
		tst.Fatalf("expected the fast constant-velocity particle to force a rebuild")
	}
	if math.Abs(sched.Rs-wantRs) > 1e-9 {
		tst.Errorf("r_s after resize = %v, want min(s_factor*R_c_max, s_factor*interval*dt*v) = %v", sched.Rs, wantRs)
	}
}

func Test_schedule_hard_interval_caps_rebuild(tst *testing.T) {
	chk.PrintTitle("hard interval rebuilds even with zero observed velocity")
	sched := NewSchedule(10, 0.1, 1.0, 0.5)
	n := 0
	for step := 0; step < 10; step++ {
		n++
		if sched.ShouldRebuild(0.01) {
			break
		}
	}
	if n != 10 {
		tst.Errorf("expected rebuild exactly at the hard interval, got step %d", n)
	}
}
