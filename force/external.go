package force

import "github.com/cpmech/peridem/model"

// ExternalForce applies a time-dependent load to the model. loading/'s
// ForceBC implements this, so the pipeline never imports loading/ directly
// (avoiding a force<->loading import cycle, since loading applies both
// displacement and force BCs and needs no knowledge of the contact law).
type ExternalForce interface {
	Apply(m *model.Model, t float64)
}

// ApplyGravity adds ρ·g to every deformable node's force, where ρ is read
// from the owning particle's material density. m.Force is a force density
// throughout this engine (bond and contact forces both accumulate per unit
// volume), so gravity must add a density too, not Vol_i·ρ·g — otherwise it
// would be the only contribution carrying an extra Vol_i factor and the
// integrator's Force/ρ division (see integrate/integrate.go) would recover
// the wrong acceleration for every other term. Force accumulates on fixed
// dofs too; only the integrator skips them, so a node pinned along one
// component still reports the gravity load it would have carried on its
// free components.
func ApplyGravity(m *model.Model, g []float64) {
	for _, p := range m.Particles {
		if p.Material == nil {
			continue
		}
		rho := p.Material.Density()
		for k := 0; k < p.NumNodes(); k++ {
			gi := p.GlobStart + k
			for d := 0; d < m.Dim && d < len(g); d++ {
				m.Force[gi][d] += rho * g[d]
			}
		}
	}
}

// ApplyExternal runs every registered ExternalForce in turn.
func ApplyExternal(m *model.Model, t float64, forces []ExternalForce) {
	for _, f := range forces {
		f.Apply(m, t)
	}
}
