package force

import (
	"github.com/cpmech/peridem/model"
	"github.com/cpmech/peridem/particle"
)

// ApplyParticleCenterDamping adds a background viscous drag
// F_i -= coeff·vel_i to every deformable particle's center node, the
// coarse global damping a quasi-static settling run uses to bleed kinetic
// energy without biasing any one contact pair. No volume factor: like
// every other contribution to m.Force, this is a force density, so
// multiplying by V_i here would leave this term's acceleration scale with
// particle volume once integrate/ divides the whole of m.Force by ρ alone.
func ApplyParticleCenterDamping(m *model.Model, coeff float64) {
	for _, p := range m.Particles {
		if p.Kind != particle.KindDeformable {
			continue
		}
		gi := p.CenterGlobalID()
		for d := 0; d < m.Dim; d++ {
			m.Force[gi][d] -= coeff * m.Vel[gi][d]
		}
	}
}

// ApplyWallDamping adds viscous drag to every wall node currently in
// contact with at least one particle node. Resolved open question: damping
// is condensed once per unique wall node, not once per (wall node, contact
// partner) occurrence — a wall node touched by three particles at once is
// damped exactly like one touched by a single particle, since the damping
// models the wall's own dissipation, not a property of any one contact.
func ApplyWallDamping(m *model.Model, coeff float64) {
	for _, p := range m.Particles {
		if p.Kind != particle.KindWall {
			continue
		}
		for k := 0; k < p.NumNodes(); k++ {
			gi := p.GlobStart + k
			if len(m.ContactNeigh[gi]) == 0 {
				continue
			}
			for d := 0; d < m.Dim; d++ {
				m.Force[gi][d] -= coeff * m.Vel[gi][d]
			}
		}
	}
}
