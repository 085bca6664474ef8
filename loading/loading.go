// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loading applies displacement and force boundary conditions to a
// running model. Grounded on fem/essenbcs.go's EssentialBc (a node
// selector + fun.Func temporal modulation pair) and inp/facecond.go's face
// conditions, generalized from FE degree-of-freedom constraints down to
// per-particle node selectors, since this system has no Lagrange-multiplier
// global system to build an A-matrix row for — displacement BCs here are
// applied by directly overwriting the selected nodes' kinematics each step.
package loading

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/peridem/model"
)

// Selector names which nodes a boundary condition applies to. Grounded on
// original_source's ParticleFLoading/ParticleULoading per-particle
// selector granularity (supplemented feature: a spec distillation detail
// the base spec leaves at "a set of nodes", but original_source always
// resolves it to one particle's full node set or an explicit subset).
type Selector struct {
	Nodes []int // explicit global node ids this condition applies to
}

// DisplacementBC prescribes node position/velocity along one spatial
// component as a function of time: x_comp(t) = X0_comp + Fcn.F(t, nil).
// Fixity is recorded once at setup; the value itself is re-evaluated every
// step (spatial selection is static, temporal modulation is not).
type DisplacementBC struct {
	Sel       Selector
	Component int
	Fcn       fun.Func
	refDisp   []float64 // displacement value written by the most recent Apply, per selected node
}

// Setup fixes only bc.Component at every selected node, so the integrator
// skips that one dof and leaves the node's other dofs free; call once,
// before the first step.
func (bc *DisplacementBC) Setup(m *model.Model) {
	for _, gi := range bc.Sel.Nodes {
		m.FixDof(gi, bc.Component)
	}
}

// Apply overwrites the selected nodes' displacement/velocity each step. The
// velocity is recovered by a first-order finite difference against the
// previous call, since fun.Func exposes only F(t,x), not its derivative.
func (bc *DisplacementBC) Apply(m *model.Model, t, dt float64) {
	val := bc.Fcn.F(t, nil)
	if bc.refDisp == nil {
		bc.refDisp = make([]float64, len(bc.Sel.Nodes))
	}
	for i, gi := range bc.Sel.Nodes {
		prev := m.Disp[gi][bc.Component]
		m.Disp[gi][bc.Component] = val
		if dt > 0 {
			m.Vel[gi][bc.Component] = (val - prev) / dt
		}
		m.Pos[gi][bc.Component] += val - prev
		bc.refDisp[i] = val
	}
}

// RotationBC prescribes a rigid rotation of angle Fcn.F(t,nil) radians
// about Center for every selected node, recomputing each node's
// displacement from its own reference offset rather than accumulating
// incremental rotations (avoiding drift from repeated small-angle
// composition).
type RotationBC struct {
	Sel    Selector
	Center []float64
	Fcn    fun.Func
	refPos [][]float64 // each selected node's position relative to Center at t=0
}

// Setup fixes the x,y dofs (the only dofs a 2D rotation drives) at every
// selected node and records its reference offset from Center.
func (bc *RotationBC) Setup(m *model.Model) {
	bc.refPos = make([][]float64, len(bc.Sel.Nodes))
	for i, gi := range bc.Sel.Nodes {
		m.FixDof(gi, 0)
		m.FixDof(gi, 1)
		off := make([]float64, len(bc.Center))
		for d := range off {
			off[d] = m.Pos[gi][d] - bc.Center[d]
		}
		bc.refPos[i] = off
	}
}

// Apply rotates every selected node about Center by Fcn.F(t,nil) radians
// (2D rotation in the x-y plane) and sets displacement/position directly.
func (bc *RotationBC) Apply(m *model.Model, t, dt float64) {
	angle := bc.Fcn.F(t, nil)
	c, s := math.Cos(angle), math.Sin(angle)
	for i, gi := range bc.Sel.Nodes {
		off := bc.refPos[i]
		newX := c*off[0] - s*off[1]
		newY := s*off[0] + c*off[1]
		prevX, prevY := m.Pos[gi][0], m.Pos[gi][1]
		m.Pos[gi][0] = bc.Center[0] + newX
		m.Pos[gi][1] = bc.Center[1] + newY
		m.Disp[gi][0] += m.Pos[gi][0] - prevX
		m.Disp[gi][1] += m.Pos[gi][1] - prevY
		if dt > 0 {
			m.Vel[gi][0] = (m.Pos[gi][0] - prevX) / dt
			m.Vel[gi][1] = (m.Pos[gi][1] - prevY) / dt
		}
	}
}

// ForceBC applies a time-modulated force along one component to every
// selected node, implementing force.ExternalForce.
type ForceBC struct {
	Sel       Selector
	Component int
	Fcn       fun.Func
}

// Apply adds Fcn.F(t,nil) to the selected nodes' force component. Matches
// force.ExternalForce's signature so a ForceBC can be registered directly
// in force.StepParams.External without loading importing force.
func (bc *ForceBC) Apply(m *model.Model, t float64) {
	val := bc.Fcn.F(t, nil)
	for _, gi := range bc.Sel.Nodes {
		m.Force[gi][bc.Component] += val
	}
}
