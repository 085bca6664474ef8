// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model holds the single in-memory state of a running simulation:
// every global node-indexed array, the particle table, the spatial index,
// the broken-bond store, and the peridynamic/contact neighbor lists.
// Grounded on gofem/fem/domain.go's Domain struct — one struct that a
// stage owns every active Node/Element/Solution array through — scaled
// down from FE's per-stage node/element activation bookkeeping to a
// single always-active peridynamic+DEM state.
package model

import (
	"math"

	"github.com/cpmech/peridem/frac"
	"github.com/cpmech/peridem/nsearch"
	"github.com/cpmech/peridem/particle"
)

// Clock tracks simulation time and step count, mirroring Domain.Sol's
// scalar time-state fields.
type Clock struct {
	Time float64
	Step int
	Dt   float64
}

// Model is the global simulation state.
type Model struct {
	Dim int

	Particles []*particle.Particle

	// global node-indexed arrays (length == total node count across all
	// particles), addressed by the [GlobStart,GlobEnd) ranges each
	// Particle owns.
	Pos   [][]float64 // current world position
	Disp  [][]float64 // displacement relative to reference position
	Vel   [][]float64 // velocity
	Acc   [][]float64 // acceleration
	Force [][]float64 // accumulated force this step
	Vol   []float64   // current (world-scaled) node volume

	// FixMask is the spec's 8-bit fixity mask per node; bits 0,1,2 mark the
	// x,y,z dofs as pinned by a displacement/rotation BC, so the integrator
	// skips them and leaves their kinematics to loading/ alone. Only the
	// low 3 bits are ever set by this engine (a node has at most 3 dofs).
	FixMask []uint8

	// Damage is the per-node damage scalar Z_i = max over bonds of |s|/s_c,
	// refreshed by force.ComputePeridynamic every step; a pure observability
	// quantity with no feedback into the force kernels themselves.
	Damage []float64

	// WeightedVol (m_i) and Theta (dilation θ_i) are populated only for
	// nodes owned by a state-based-material particle, recomputed each step
	// by force.ComputePeridynamic's state-quantities pre-pass; zero
	// elsewhere. Exposed for the Theta output tag and diagnostics.
	WeightedVol []float64
	Theta       []float64

	// ParticleID and ZoneID are per-node copies of the owning particle's
	// identity, set once by AddParticle. ParticleID distinguishes individual
	// instances (e.g. each disk placed from a From_File cluster); ZoneID
	// groups every instance generated from the same zone deck entry, the
	// granularity contact-pair parameters and the Particle_ID/Zone_ID output
	// tags are keyed by.
	ParticleID []int
	ZoneID     []int

	// peridynamic neighbors: static, built once per particle at setup.
	// PdNeighOwner[i] lists the global ids of node i's peridynamic family.
	PdNeighOwner [][]int
	PdBonds      *frac.Store // broken/intact flag per (owner, position in PdNeighOwner[owner])

	// contact neighbors: dynamic, rebuilt on the adaptive schedule in
	// neighbor/.
	ContactNeigh [][]int
	ContactIndex *nsearch.Tree // spatial index over Pos, rebuilt alongside ContactNeigh

	Clock Clock

	// keyed scalar metrics (e.g. "d_avg_separation", "ke_total"). New
	// allocates the map empty; no code in this module fills or reports it.
	Metrics map[string]float64
}

// New allocates a Model with n total nodes.
func New(dim, n int) *Model {
	m := &Model{
		Dim:          dim,
		Pos:          make([][]float64, n),
		Disp:         make([][]float64, n),
		Vel:          make([][]float64, n),
		Acc:          make([][]float64, n),
		Force:        make([][]float64, n),
		Vol:          make([]float64, n),
		FixMask:      make([]uint8, n),
		Damage:       make([]float64, n),
		WeightedVol:  make([]float64, n),
		Theta:        make([]float64, n),
		ParticleID:   make([]int, n),
		ZoneID:       make([]int, n),
		PdNeighOwner: make([][]int, n),
		ContactNeigh: make([][]int, n),
		Metrics:      make(map[string]float64),
	}
	for i := range m.Pos {
		m.Pos[i] = make([]float64, dim)
		m.Disp[i] = make([]float64, dim)
		m.Vel[i] = make([]float64, dim)
		m.Acc[i] = make([]float64, dim)
		m.Force[i] = make([]float64, dim)
	}
	return m
}

// NumNodes returns the total global node count.
func (m *Model) NumNodes() int { return len(m.Pos) }

// ResetForces zeroes every node's accumulated force, the first step of
// every force-pipeline pass (component I).
func (m *Model) ResetForces() {
	for _, f := range m.Force {
		for d := range f {
			f[d] = 0
		}
	}
}

// FixDof marks global node gi's dof d (0=x,1=y,2=z) as fixed.
func (m *Model) FixDof(gi, d int) {
	m.FixMask[gi] |= 1 << uint(d)
}

// IsFixed reports whether global node gi's dof d is fixed.
func (m *Model) IsFixed(gi, d int) bool {
	return m.FixMask[gi]&(1<<uint(d)) != 0
}

// AllFixed reports whether every dof in [0,dim) of global node gi is fixed.
func (m *Model) AllFixed(gi, dim int) bool {
	for d := 0; d < dim; d++ {
		if !m.IsFixed(gi, d) {
			return false
		}
	}
	return true
}

// ParticleOf returns the particle owning global node gi, or nil if out of
// range. Linear in particle count; it is called per node and per contact
// pair by the contact force loop and per node by the integrators.
func (m *Model) ParticleOf(gi int) *particle.Particle {
	for _, p := range m.Particles {
		if p.Contains(gi) {
			return p
		}
	}
	return nil
}

// AddParticle appends p to the model and seeds its owned range's Pos/Vol
// arrays from its reference mesh. zone is recorded per-node as ZoneID; p.ID
// is recorded per-node as ParticleID.
func (m *Model) AddParticle(p *particle.Particle, zone int) {
	m.Particles = append(m.Particles, p)
	scaleVol := math.Pow(p.Transform.Scale, float64(m.Dim))
	for k := 0; k < p.NumNodes(); k++ {
		gi := p.GlobStart + k
		copy(m.Pos[gi], p.WorldNode(k))
		m.Vol[gi] = p.Ref.Vols[k] * scaleVol
		if p.Fixed {
			for d := 0; d < m.Dim; d++ {
				m.FixDof(gi, d)
			}
		}
		m.ParticleID[gi] = p.ID
		m.ZoneID[gi] = zone
	}
}
