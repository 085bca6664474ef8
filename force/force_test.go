// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/peridem/geom"
	"github.com/cpmech/peridem/mdl"
	"github.com/cpmech/peridem/mesh"
	"github.com/cpmech/peridem/model"
	"github.com/cpmech/peridem/neighbor"
	"github.com/cpmech/peridem/particle"
)

func newElasticMaterial() mdl.Material {
	base := mdl.Base{
		Horiz: 0.3, Rho: 1.0, Infl: mdl.ConstantInfluence{}, Dim: 2,
		Params: mdl.ParamSet{HasK: true, HasG: true, K: 10, G: 5},
	}
	return mdl.NewElastic(base, nil)
}

// Test_two_particle_contact is concrete scenario #3: two particles placed
// in overlap repel each other along the line joining their centers.
func Test_two_particle_contact(tst *testing.T) {
	chk.PrintTitle("two-particle linear-penalty contact repels along the center line")
	shape := geom.NewShape("circle", []float64{0, 0, 0, 1})
	ref := mesh.Generate(shape, 2, 0.25)
	mat := newElasticMaterial()

	t1 := particle.Identity()
	p1 := particle.New(0, particle.KindDeformable, ref, mat, t1, 0)
	t2 := particle.Identity()
	t2.Translation = [3]float64{1.5, 0, 0} // overlapping: radii sum to 2 > 1.5
	p2 := particle.New(1, particle.KindDeformable, ref, mat, t2, p1.GlobEnd)

	m := model.New(2, p2.GlobEnd)
	m.AddParticle(p1, 0)
	m.AddParticle(p2, 1)

	tags := make([]int, m.NumNodes())
	for gi := 0; gi < m.NumNodes(); gi++ {
		if gi < p1.GlobEnd {
			tags[gi] = 0
		} else {
			tags[gi] = 1
		}
	}
	sched := neighbor.NewSchedule(1, 0.1, 1.0, 0.5)
	neighbor.BuildContact(m, sched, tags)

	rp := ContactParams{
		Default: ContactLaw{Kn: 100, Mu: 0.3},
		Radius:  func(int) float64 { return 0.3 },
	}
	ComputeContact(m, rp)

	var fx1, fx2 float64
	for gi := p1.GlobStart; gi < p1.GlobEnd; gi++ {
		fx1 += m.Force[gi][0]
	}
	for gi := p2.GlobStart; gi < p2.GlobEnd; gi++ {
		fx2 += m.Force[gi][0]
	}
	if fx1 >= 0 {
		tst.Errorf("particle 1's net force should point in -x (away from particle 2), got Fx=%v", fx1)
	}
	if fx2 <= 0 {
		tst.Errorf("particle 2's net force should point in +x (away from particle 1), got Fx=%v", fx2)
	}
	if math.Abs(fx1+fx2) > 1e-9 {
		tst.Errorf("Newton's third law: net forces should cancel, got fx1=%v fx2=%v", fx1, fx2)
	}
}

// Test_gravity_free_fall is concrete scenario #4: with no contact and no
// bonds, gravity alone produces a uniform downward force density
// (ρ·g, matching every other contribution to m.Force) at every node.
func Test_gravity_free_fall(tst *testing.T) {
	chk.PrintTitle("gravity produces a uniform density-proportional downward force")
	shape := geom.NewShape("circle", []float64{0, 0, 0, 1})
	ref := mesh.Generate(shape, 2, 0.25)
	mat := newElasticMaterial()
	p := particle.New(0, particle.KindDeformable, ref, mat, particle.Identity(), 0)
	m := model.New(2, p.GlobEnd)
	m.AddParticle(p, 0)

	ApplyGravity(m, []float64{0, -9.8})

	want := mat.Density() * -9.8
	for gi := 0; gi < m.NumNodes(); gi++ {
		if math.Abs(m.Force[gi][1]-want) > 1e-9 {
			tst.Errorf("node %d: Fy=%v want %v", gi, m.Force[gi][1], want)
		}
		if m.Force[gi][0] != 0 {
			tst.Errorf("node %d: expected zero horizontal force, got %v", gi, m.Force[gi][0])
		}
	}
}

func Test_wall_damping_condensed_per_node(tst *testing.T) {
	chk.PrintTitle("wall damping applies once per wall node regardless of contact multiplicity")
	shape := geom.NewShape("circle", []float64{0, 0, 0, 0.1})
	ref := mesh.Generate(shape, 2, 0.05)
	wall := particle.New(0, particle.KindWall, ref, nil, particle.Identity(), 0)
	m := model.New(2, wall.GlobEnd)
	m.AddParticle(wall, 1)
	gi := wall.GlobStart
	m.Vel[gi][0] = 2.0
	m.ContactNeigh[gi] = []int{100, 101, 102} // three simultaneous contacts

	ApplyWallDamping(m, 5.0)
	want := -5.0 * 2.0
	if math.Abs(m.Force[gi][0]-want) > 1e-9 {
		tst.Errorf("expected damping force %v applied once, got %v", want, m.Force[gi][0])
	}
}
