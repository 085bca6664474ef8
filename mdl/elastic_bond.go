package mdl

import "math"

// Elastic is the pair-only linear bond model with no fracture: identical to
// PMB's pair potential but with an infinite critical stretch, for runs that
// want peridynamic elasticity without damage accumulation.
type Elastic struct {
	Base
	C float64
}

// NewElastic builds a bond model that never breaks.
func NewElastic(base Base, p Prms) *Elastic {
	ec := base.ComputeMaterialProperties(base.Dim)
	c := bondConstantPMB(base.Dim, ec.K, base.Horiz)
	return &Elastic{Base: base, C: c}
}

func (m *Elastic) CriticalStretch(float64) float64 { return math.Inf(1) }

func (m *Elastic) IsStateActive() bool { return false }

func (m *Elastic) EnergyAndForce(r, s float64, broken *bool, breakAllowed bool) (e, f float64) {
	j := m.InfluenceFn(r)
	f = j * m.C * s
	e = 0.5 * j * m.C * s * s * r
	return e, f
}

func (m *Elastic) EnergyAndForceState(r, s float64, broken *bool, mWeighted, theta float64) (e, f float64) {
	return 0, 0
}
