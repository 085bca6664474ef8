package force

import "github.com/cpmech/peridem/model"

// StepParams bundles the per-step tunables the force pipeline needs beyond
// what's already recorded on the Model and its particles.
type StepParams struct {
	Contact    ContactParams
	Gravity    []float64
	CenterDamp float64
	WallDamp   float64
	External   []ExternalForce
	Time       float64
}

// Step runs one full force-pipeline pass: reset, peridynamic bond forces,
// contact normal/friction forces, damping, then external loads — the fixed
// order spec §4.I requires, since later stages (damping, external loads)
// must see the same-step contact/bond contributions already accumulated.
func (pl *Pipeline) Step(m *model.Model, sp StepParams) error {
	m.ResetForces()
	if err := pl.ComputePeridynamic(m); err != nil {
		return err
	}
	ComputeContact(m, sp.Contact)
	ApplyParticleCenterDamping(m, sp.CenterDamp)
	ApplyWallDamping(m, sp.WallDamp)
	if sp.Gravity != nil {
		ApplyGravity(m, sp.Gravity)
	}
	ApplyExternal(m, sp.Time, sp.External)
	return nil
}
