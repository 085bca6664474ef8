package force

import (
	"math"

	"github.com/cpmech/peridem/model"
	"github.com/cpmech/peridem/particle"
)

// ContactLaw is one zone-pair's linear-penalty/Coulomb/damping parameters
// (spec §4.I step 4 / §6: contact law parameters are keyed by the pair of
// zones the two contacting nodes belong to, not global to the run).
type ContactLaw struct {
	Kn float64 // normal contact stiffness
	Mu float64 // Coulomb friction coefficient
	Cn float64 // normal damping coefficient (particle-particle center damping)
}

// ZonePairKey is an unordered (zoneI,zoneJ) lookup key: contact between
// zone a and zone b is the same law regardless of which side is the
// "owner" node in a given call.
type ZonePairKey struct{ A, B int }

// NewZonePairKey builds the normalized (order-independent) key for zones
// a and b.
func NewZonePairKey(a, b int) ZonePairKey {
	if a > b {
		a, b = b, a
	}
	return ZonePairKey{a, b}
}

// ContactParams holds the linear-penalty normal / Coulomb friction
// parameters for every zone pair this run defines, plus the contact-radius
// function shared by all pairs. Grounded on fem/e_u_contact.go's
// penalty-contact element, which carries a scalar penalty stiffness and
// friction coefficient per contact surface — generalized here to one law
// per (zone_i,zone_j) pair since a run may mix e.g. a stiff wall contact
// with a softer particle-particle one. Velocity-dependent damping is not
// part of this law: it is a separate mechanism applied per
// particle-pair/particle-wall center (see damping.go).
type ContactParams struct {
	Default ContactLaw // used for any zone pair not present in Pairs
	Pairs   map[ZonePairKey]ContactLaw
	Cwall   float64 // normal damping coefficient (particle-wall center damping)
	Radius  func(gi int) float64
}

// LawFor returns the contact law registered for zones zi/zj, or Default if
// no zone-pair-specific entry was given.
func (rp ContactParams) LawFor(zi, zj int) ContactLaw {
	if rp.Pairs != nil {
		if law, ok := rp.Pairs[NewZonePairKey(zi, zj)]; ok {
			return law
		}
	}
	return rp.Default
}

// ComputeContact adds linear-penalty-normal + Coulomb-friction forces at
// every compute-force node i for each of its contact neighbors j ∈
// N_c(i), skipping wall-wall pairs. Contact neighbor lists are built
// symmetric (i appears in j's list and vice versa), so each directed
// pair is visited once per side and accumulates only into force_i — the
// reciprocal contribution lands in force_j when the outer loop reaches
// node j's own neighbor list. This loop is intentionally sequential,
// since a contact pair's two nodes can belong to any two particles and
// parallelizing by particle (as ComputePeridynamic does) cannot
// guarantee disjoint Force writes here.
func ComputeContact(m *model.Model, rp ContactParams) {
	for gi := 0; gi < m.NumNodes(); gi++ {
		pi := m.ParticleOf(gi)
		for _, gj := range m.ContactNeigh[gi] {
			pj := m.ParticleOf(gj)
			if pi.Kind == particle.KindWall && pj.Kind == particle.KindWall {
				continue
			}
			applyContactPair(m, rp, gi, gj)
		}
	}
}

func applyContactPair(m *model.Model, rp ContactParams, gi, gj int) {
	dim := m.Dim
	y := make([]float64, dim) // y_ji = x_j - x_i, current configuration
	dist2 := 0.0
	for d := 0; d < dim; d++ {
		y[d] = m.Pos[gj][d] - m.Pos[gi][d]
		dist2 += y[d] * y[d]
	}
	rDist := math.Sqrt(dist2)
	if rDist <= 0 {
		return
	}
	rcij := rp.Radius(gi) + rp.Radius(gj)
	if rDist >= rcij {
		return // not in contact
	}
	en := make([]float64, dim)
	for d := range en {
		en[d] = y[d] / rDist
	}

	vji := make([]float64, dim)
	for d := 0; d < dim; d++ {
		vji[d] = m.Vel[gj][d] - m.Vel[gi][d]
	}
	vn := 0.0
	for d := 0; d < dim; d++ {
		vn += vji[d] * en[d]
	}
	vt := make([]float64, dim)
	for d := 0; d < dim; d++ {
		vt[d] = vji[d] - vn*en[d]
	}
	vtNorm := 0.0
	for _, v := range vt {
		vtNorm += v * v
	}
	vtNorm = math.Sqrt(vtNorm)
	et := make([]float64, dim)
	if vtNorm > 1e-12 {
		for d := range et {
			et[d] = vt[d] / vtNorm
		}
	}

	law := rp.LawFor(m.ZoneID[gi], m.ZoneID[gj])
	vj := m.Vol[gj]
	fScalar := law.Kn * (rDist - rcij) * vj // linear penalty, already ≤0 since rDist<rcij
	if fScalar > 0 {
		fScalar = 0
	}

	for d := 0; d < dim; d++ {
		m.Force[gi][d] += fScalar*en[d] + law.Mu*fScalar*et[d]
	}
}
