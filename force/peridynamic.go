// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package force runs the per-step force pipeline: peridynamic bond forces,
// contact normal/friction forces, damping, and external loads (contact
// neighbor lists are rebuilt by package neighbor, not here). Grounded on
// gofem/fem/e_u.go's per-element residual
// assembly loop (generalized here from FE element residuals to
// per-particle bond/contact force accumulation) and fem/e_u_contact.go's
// penalty contact force for the linear-penalty/Coulomb contact law. Where the
// teacher assembles sequentially, this package fans the peridynamic bond
// pass out across particles with golang.org/x/sync/errgroup, since per-step wall-clock at
// the particle counts this engine targets cannot afford a single-threaded
// assembly loop — a genuine requirement the teacher's single-process FE
// solve never had to meet.
package force

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/cpmech/peridem/model"
	"github.com/cpmech/peridem/particle"
)

// Pipeline runs one step's force computation for a Model.
type Pipeline struct {
	NThreads int // 0 or 1 => sequential
}

// forEachParticle runs fn(idx) for every particle index, fanned out across
// at most NThreads goroutines (sequential if NThreads<=1), the worker-count
// fork-join pattern the broader example pool's errgroup call sites use in
// place of a raw goroutine-per-item spawn.
func (pl *Pipeline) forEachParticle(m *model.Model, fn func(idx int) error) error {
	g, _ := errgroup.WithContext(context.Background())
	if pl.NThreads > 1 {
		g.SetLimit(pl.NThreads)
	}
	for idx := range m.Particles {
		idx := idx
		g.Go(func() error { return fn(idx) })
	}
	return g.Wait()
}

// bondVectors returns the reference separation, the relative displacement,
// and the reference bond length between global nodes owner and nb.
func bondVectors(m *model.Model, owner, nb int) (dxRef, du []float64, r float64) {
	dim := m.Dim
	dxRef = make([]float64, dim)
	du = make([]float64, dim)
	for d := 0; d < dim; d++ {
		dxRef[d] = (m.Pos[nb][d] - m.Disp[nb][d]) - (m.Pos[owner][d] - m.Disp[owner][d])
		du[d] = m.Disp[nb][d] - m.Disp[owner][d]
		r += dxRef[d] * dxRef[d]
	}
	return dxRef, du, math.Sqrt(r)
}

// ComputePeridynamic adds every particle's bond-force contribution to
// m.Force. Bond-based materials (RNP, PMB, Elastic) are evaluated directly
// from (r,s); state-based materials (PD-State) need each node's weighted
// volume and dilation computed first, so this runs in two passes.
func (pl *Pipeline) ComputePeridynamic(m *model.Model) error {
	needsState := false
	for _, p := range m.Particles {
		if p.Material != nil && p.Material.IsStateActive() {
			needsState = true
			break
		}
	}
	var weightedVol, dilation []float64
	if needsState {
		weightedVol = m.WeightedVol
		dilation = m.Theta
		if err := pl.forEachParticle(m, func(idx int) error {
			computeStateQuantities(m, m.Particles[idx], weightedVol, dilation)
			return nil
		}); err != nil {
			return err
		}
	}
	for i := range m.Damage {
		m.Damage[i] = 0
	}
	return pl.forEachParticle(m, func(idx int) error {
		applyBondForces(m, m.Particles[idx], weightedVol, dilation)
		return nil
	})
}

// updateDamage folds one bond's stretch ratio |s|/s_c into node gi's
// per-step damage scalar Z_i = max over bonds of |s|/s_c (spec §3/§8).
func updateDamage(m *model.Model, gi int, s, sc float64) {
	z := math.Abs(s) / sc
	if z > m.Damage[gi] {
		m.Damage[gi] = z
	}
}

// computeStateQuantities accumulates node i's weighted volume
// m_i = Σ_j J(r)·r²·V_j and dilation θ_i = (3/m_i)·Σ_j J(r)·r·s·V_j over its
// intact peridynamic family, the standard state-based preprocessing pass.
func computeStateQuantities(m *model.Model, p *particle.Particle, weightedVol, dilation []float64) {
	if p.Material == nil || !p.Material.IsStateActive() {
		return
	}
	for k := 0; k < p.NumNodes(); k++ {
		owner := p.GlobStart + k
		fam := m.PdNeighOwner[owner]
		mi := 0.0
		theta := 0.0
		for j, nb := range fam {
			if m.PdBonds.IsBroken(owner, j) {
				continue
			}
			dxRef, du, r := bondVectors(m, owner, nb)
			if r <= 0 {
				continue
			}
			_, s := stretch(dxRef, du, r)
			jw := p.Material.InfluenceFn(r)
			mi += jw * r * r * m.Vol[nb]
			theta += jw * r * s * m.Vol[nb]
		}
		weightedVol[owner] = mi
		if mi > 0 {
			dilation[owner] = 3.0 * theta / mi
		} else {
			dilation[owner] = 0
		}
	}
}

// stretch returns the current bond vector's length and the bond stretch s.
func stretch(dxRef, du []float64, r float64) (curLen, s float64) {
	y := make([]float64, len(dxRef))
	for d := range y {
		y[d] = dxRef[d] + du[d]
	}
	curLen = 0
	for _, v := range y {
		curLen += v * v
	}
	curLen = math.Sqrt(curLen)
	if r <= 0 {
		return curLen, 0
	}
	return curLen, (curLen - r) / r
}

// volumeFactor implements the partial-volume correction for a bond whose
// reference length r sits in the horizon's outer shell [ε-h/2, ε+h/2]: a
// node there is only partially inside the horizon ball, so its volume
// contribution is scaled down linearly to zero at r=ε+h/2 instead of
// counted in full or dropped outright at the horizon boundary.
func volumeFactor(r, eps, h float64) float64 {
	if h <= 0 {
		return 1
	}
	if r > eps-h/2 {
		f := (eps + h/2 - r) / h
		if f < 0 {
			return 0
		}
		return f
	}
	return 1
}

// applyBondForces adds p's bond-force contribution (pairwise for bond-based
// materials, one-sided state contribution doubled by Newton's third law
// symmetry for state-based materials) into m.Force, breaking bonds
// irreversibly via m.PdBonds as critical stretches are exceeded. A bond
// that is already broken, or that breaks this step, instead contributes a
// short-range repulsive force (via the particle's internal K_n/R_c) so the
// two newly separated halves do not freely interpenetrate.
func applyBondForces(m *model.Model, p *particle.Particle, weightedVol, dilation []float64) {
	if p.Material == nil {
		return
	}
	mat := p.Material
	stateActive := mat.IsStateActive()
	h := p.Ref.Spacing * p.Transform.Scale
	for k := 0; k < p.NumNodes(); k++ {
		owner := p.GlobStart + k
		fam := m.PdNeighOwner[owner]
		for j, nb := range fam {
			if owner > nb {
				continue // each bond is processed once, from its lower-indexed endpoint
			}
			broken := m.PdBonds.IsBroken(owner, j)
			dxRef, du, r := bondVectors(m, owner, nb)
			if r <= 0 {
				continue
			}
			curLen, s := stretch(dxRef, du, r)
			if sc := mat.CriticalStretch(r); sc > 0 {
				updateDamage(m, owner, s, sc)
				updateDamage(m, nb, s, sc)
			}
			if broken {
				applyBrokenBondRepulsion(m, p, owner, nb, dxRef, du, curLen)
				continue
			}

			var fScalar float64
			if stateActive {
				// sum, not average: the asymmetric Vol[nb]/Vol[owner]
				// weighting applied below when this scalar lands in
				// force[owner]/force[nb] already reproduces each endpoint's
				// own (f_i+f_j)·v_j accumulation exactly once.
				_, f1 := mat.EnergyAndForceState(r, s, &broken, weightedVol[owner], dilation[owner])
				_, f2 := mat.EnergyAndForceState(r, s, &broken, weightedVol[nb], dilation[nb])
				fScalar = f1 + f2
			} else {
				_, fScalar = mat.EnergyAndForce(r, s, &broken, true)
			}
			if broken {
				markBroken(m, p, owner, nb, j)
				applyBrokenBondRepulsion(m, p, owner, nb, dxRef, du, curLen)
				continue
			}
			vf := volumeFactor(r, p.Horizon, h)
			dir := mat.BondForceDirection(dxRef, du)
			for d := range dir {
				m.Force[owner][d] += fScalar * dir[d] * m.Vol[nb] * vf
				m.Force[nb][d] -= fScalar * dir[d] * m.Vol[owner] * vf
			}
		}
	}
}

// applyBrokenBondRepulsion pushes owner and nb apart with a linear penalty
// f = K_n·v_j·(curLen-R_c)/curLen applied along y = x_nb - x_owner (force
// magnitude K_n·v_j·(R_c-curLen)) once a bond has broken and its endpoints have
// closed to within the particle's internal contact radius R_c, preventing
// the two freshly separated halves from interpenetrating. v_j is nb's
// volume, since this is a force density like every other bond/contact
// contribution to m.Force.
func applyBrokenBondRepulsion(m *model.Model, p *particle.Particle, owner, nb int, dxRef, du []float64, curLen float64) {
	if curLen <= 0 || curLen >= p.Rc {
		return
	}
	fScalar := p.Kn * m.Vol[nb] * (p.Rc - curLen)
	dim := len(dxRef)
	dir := make([]float64, dim)
	for d := 0; d < dim; d++ {
		dir[d] = (dxRef[d] + du[d]) / curLen
	}
	for d := 0; d < dim; d++ {
		m.Force[owner][d] -= fScalar * dir[d]
		m.Force[nb][d] += fScalar * dir[d]
	}
}

// markBroken sets the bond broken at both endpoints' family entries, since
// the broken-bond store is indexed per-owner and this bond is visited from
// owner's side only.
func markBroken(m *model.Model, p *particle.Particle, owner, nb, ownerSlot int) {
	m.PdBonds.Break(owner, ownerSlot)
	for j, id := range m.PdNeighOwner[nb] {
		if id == owner {
			m.PdBonds.Break(nb, j)
			break
		}
	}
	_ = p
}
