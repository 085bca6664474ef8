// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/peridem/geom"
	"github.com/cpmech/peridem/mdl"
	"github.com/cpmech/peridem/mesh"
	"github.com/cpmech/peridem/particle"
)

func buildTwoParticleModel() *Model {
	shape := geom.NewShape("circle", []float64{0, 0, 0, 1})
	ref := mesh.Generate(shape, 2, 0.2)
	base := mdl.Base{
		Horiz: 0.6, Rho: 1.0, Infl: mdl.ConstantInfluence{}, Dim: 2,
		Params: mdl.ParamSet{HasK: true, HasG: true, K: 10, G: 5},
	}
	mat := mdl.NewElastic(base, nil)

	p1 := particle.New(0, particle.KindDeformable, ref, mat, particle.Identity(), 0)
	t2 := particle.Identity()
	t2.Translation = [3]float64{5, 0, 0}
	p2 := particle.New(1, particle.KindDeformable, ref, mat, t2, p1.GlobEnd)

	m := New(2, p2.GlobEnd)
	m.AddParticle(p1, 0)
	m.AddParticle(p2, 1)
	return m
}

func Test_model_add_particle_seeds_positions(tst *testing.T) {
	chk.PrintTitle("adding particles seeds Pos/Vol from the reference mesh")
	m := buildTwoParticleModel()
	if m.NumNodes() != m.Particles[1].GlobEnd {
		tst.Errorf("model size mismatch: NumNodes=%d want=%d", m.NumNodes(), m.Particles[1].GlobEnd)
	}
	for gi := 0; gi < m.Particles[0].GlobEnd; gi++ {
		if m.Vol[gi] <= 0 {
			tst.Errorf("node %d has non-positive volume", gi)
		}
	}
	p2 := m.Particles[1]
	cx := m.Pos[p2.CenterGlobalID()][0]
	if cx < 4.9 || cx > 5.1 {
		tst.Errorf("particle 2's center should be translated near x=5, got %v", cx)
	}
}

func Test_model_particle_of(tst *testing.T) {
	chk.PrintTitle("ParticleOf resolves a global node back to its owner")
	m := buildTwoParticleModel()
	if m.ParticleOf(0) != m.Particles[0] {
		tst.Errorf("node 0 should belong to particle 0")
	}
	if m.ParticleOf(m.Particles[1].GlobStart) != m.Particles[1] {
		tst.Errorf("particle 2's first node should belong to particle 2")
	}
	if m.ParticleOf(m.NumNodes()) != nil {
		tst.Errorf("out-of-range global index should resolve to nil")
	}
}

func Test_model_reset_forces(tst *testing.T) {
	chk.PrintTitle("ResetForces zeroes every node's force")
	m := buildTwoParticleModel()
	m.Force[0][0] = 42
	m.ResetForces()
	if m.Force[0][0] != 0 {
		tst.Errorf("expected force reset to zero, got %v", m.Force[0][0])
	}
}
