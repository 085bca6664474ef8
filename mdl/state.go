package mdl

import "math"

// State is the linearized state-based peridynamic model (PD-State). Its
// bond-based (pair) contribution is identically zero; all force comes from
// the dilation-coupled state form, which needs each bond endpoint's weighted
// volume m and dilation θ and so cannot be evaluated from (r,s) alone.
type State struct {
	Base
	S0 float64
}

// NewState builds a PD-State material. Parameter "s0" overrides the
// energy-balance critical stretch derived from Gc.
func NewState(base Base, p Prms) *State {
	ec := base.ComputeMaterialProperties(base.Dim)
	s0 := criticalStretchPMB(base.Dim, ec.Gc, ec.K, base.Horiz)
	s0 = p.GetOr("s0", s0)
	return &State{Base: base, S0: s0}
}

func (m *State) CriticalStretch(float64) float64 { return m.S0 }

func (m *State) IsStateActive() bool { return true }

// EnergyAndForce is the pair-only part of the model and carries no force;
// all elastic response is produced by EnergyAndForceState.
func (m *State) EnergyAndForce(r, s float64, broken *bool, breakAllowed bool) (e, f float64) {
	return 0, 0
}

// EnergyAndForceState evaluates the linearized state-based scalar force
//
//	α      = 15G/m_i
//	factor = 3K/m_i - α/3
//	f      = J(r)·(r·θ_i·factor + Δ·α)
//
// where Δ = r·s is the bond's current extension, and breaks the bond
// irreversibly once |s| exceeds the critical stretch.
func (m *State) EnergyAndForceState(r, s float64, broken *bool, mWeighted, theta float64) (e, f float64) {
	if *broken {
		return 0, 0
	}
	if math.Abs(s) > m.S0 {
		*broken = true
		return 0, 0
	}
	ec := m.Base.ComputeMaterialProperties(m.Dim)
	if mWeighted <= 0 {
		return 0, 0
	}
	alpha := 15.0 * ec.G / mWeighted
	factor := 3.0*ec.K/mWeighted - alpha/3.0
	delta := r * s
	j := m.InfluenceFn(r)
	f = j * (r*theta*factor + delta*alpha)
	e = 0.5 * f * s * r
	return e, f
}
