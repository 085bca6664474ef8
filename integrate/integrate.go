// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrate advances a Model's kinematics by one explicit time
// step given the already-accumulated Force array. Grounded on
// fem/s_linimp.go's SolverLinearImplicit (the dt-function-driven time loop
// and factory-by-name registry idiom, e.g. solverallocators["lin-imp"])
// generalized from an implicit Newton-Raphson FE solve down to the two
// explicit schemes this system needs: central-difference and
// velocity-Verlet. Fixed dofs (model.Model.FixMask) are skipped the same
// way gofem's Dof-numbering skips nodes with no active equation: the
// integrator never advances them, so boundary conditions applied by
// loading/ stay in full control of those dofs. m.Force holds a force
// density throughout this engine (bond/contact forces are accumulated
// per unit volume, per force/peridynamic.go and force/contact.go), so
// acceleration here is Force/ρ, not Force/(Vol·ρ) — dividing by the full
// nodal mass would be a spurious extra 1/Vol factor against every other
// force contribution.
package integrate

import "github.com/cpmech/peridem/model"

// Integrator advances one explicit step.
type Integrator interface {
	Step(m *model.Model, dt float64)
}

// allocators maps scheme names to constructors, mirroring
// fem/s_linimp.go's solverallocators factory registry.
var allocators = map[string]func() Integrator{
	"central-difference": func() Integrator { return &CentralDifference{} },
	"velocity-verlet":     func() Integrator { return &VelocityVerlet{} },
}

// New builds an Integrator by scheme name.
func New(name string) Integrator {
	if alloc, ok := allocators[name]; ok {
		return alloc()
	}
	return &CentralDifference{}
}

// CentralDifference is the standard explicit peridynamic time scheme:
//
//	v(t+dt/2) = v(t-dt/2) + dt·a(t)
//	u(t+dt)   = u(t) + dt·v(t+dt/2)
//
// implemented here with v held at whole steps (a(t) computed from the
// force at u(t), velocity updated first, then position), the common
// single-storage variant when no half-step velocity needs to be written
// out separately.
type CentralDifference struct{}

func (CentralDifference) Step(m *model.Model, dt float64) {
	for gi := 0; gi < m.NumNodes(); gi++ {
		rho := nodeDensity(m, gi)
		if rho <= 0 {
			continue
		}
		for d := 0; d < m.Dim; d++ {
			if m.IsFixed(gi, d) {
				continue
			}
			acc := m.Force[gi][d] / rho
			m.Acc[gi][d] = acc
			m.Vel[gi][d] += dt * acc
			disp := dt * m.Vel[gi][d]
			m.Disp[gi][d] += disp
			m.Pos[gi][d] += disp
		}
	}
}

// VelocityVerlet is the standard explicit scheme with second-order
// position accuracy:
//
//	u(t+dt)    = u(t) + dt·v(t) + dt²/2·a(t)
//	v(t+dt/2)  = v(t) + dt/2·a(t)
//	[force recomputed by the caller at u(t+dt)]
//	v(t+dt)    = v(t+dt/2) + dt/2·a(t+dt)
//
// Step here performs the position update and the half-kick; FinishKick
// completes the velocity update once the caller has recomputed forces at
// the new position. Splitting the method in two (rather than one Step that
// silently assumes forces were already refreshed) keeps the dependency on
// sim/'s per-step force-then-integrate ordering explicit at the call site.
type VelocityVerlet struct{}

func (VelocityVerlet) Step(m *model.Model, dt float64) {
	for gi := 0; gi < m.NumNodes(); gi++ {
		rho := nodeDensity(m, gi)
		if rho <= 0 {
			continue
		}
		for d := 0; d < m.Dim; d++ {
			if m.IsFixed(gi, d) {
				continue
			}
			acc := m.Force[gi][d] / rho
			m.Acc[gi][d] = acc
			disp := dt*m.Vel[gi][d] + 0.5*dt*dt*acc
			m.Disp[gi][d] += disp
			m.Pos[gi][d] += disp
			m.Vel[gi][d] += 0.5 * dt * acc
		}
	}
}

// FinishKick completes a velocity-Verlet step: call once the force
// pipeline has recomputed m.Force at the position Step just produced.
func (VelocityVerlet) FinishKick(m *model.Model, dt float64) {
	for gi := 0; gi < m.NumNodes(); gi++ {
		rho := nodeDensity(m, gi)
		if rho <= 0 {
			continue
		}
		for d := 0; d < m.Dim; d++ {
			if m.IsFixed(gi, d) {
				continue
			}
			acc := m.Force[gi][d] / rho
			m.Vel[gi][d] += 0.5 * dt * acc
		}
	}
}

// nodeDensity returns the density of the particle owning gi, or 1 for a
// wall node (which never moves under Step anyway, since walls have every
// dof fixed, but a non-fixed unmaterialed node must still not divide by
// zero).
func nodeDensity(m *model.Model, gi int) float64 {
	p := m.ParticleOf(gi)
	if p == nil || p.Material == nil {
		return 1
	}
	return p.Material.Density()
}
