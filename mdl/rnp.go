package mdl

import "math"

// RNP is the nonlinear regularized pair potential: a bounded bond energy
// that saturates smoothly with stretch instead of PMB's unbounded quadratic,
// so the pairwise force itself rolls off before the bond is marked broken.
// Breaking is governed by s_c(r) = sqrt(1/(2β))/sqrt(r), scaled by a
// material-specific safety factor κ.
type RNP struct {
	Base
	C     float64
	Beta  float64
	Kappa float64
}

// NewRNP builds an RNP material. Parameters "beta" (regularization width,
// default 1) and "kappa" (critical-stretch safety factor, default 1).
func NewRNP(base Base, p Prms) *RNP {
	ec := base.ComputeMaterialProperties(base.Dim)
	c := bondConstantPMB(base.Dim, ec.K, base.Horiz)
	beta := p.GetOr("beta", 1.0)
	kappa := p.GetOr("kappa", 1.0)
	return &RNP{Base: base, C: c, Beta: beta, Kappa: kappa}
}

// CriticalStretch returns κ·sqrt(1/(2β))/sqrt(r), undefined (+Inf) at r=0.
func (m *RNP) CriticalStretch(r float64) float64 {
	if r <= 0 {
		return math.Inf(1)
	}
	return m.Kappa * math.Sqrt(1.0/(2.0*m.Beta)) / math.Sqrt(r)
}

func (m *RNP) IsStateActive() bool { return false }

// EnergyAndForce implements the regularized potential
//
//	e = J(r)·C·(1 - exp(-β·r·s²)) / (ε·|B_ε|)
//	f = 4·J(r)·s·C·β·exp(-β·r·s²) / (ε·|B_ε|)
//
// which is C-1 continuous and bounded in energy, unlike PMB's quadratic.
// The ε·|B_ε| term normalizes the bond density by the horizon volume.
func (m *RNP) EnergyAndForce(r, s float64, broken *bool, breakAllowed bool) (e, f float64) {
	if *broken {
		return 0, 0
	}
	if breakAllowed && math.Abs(s) > m.CriticalStretch(r) {
		*broken = true
		return 0, 0
	}
	j := m.InfluenceFn(r)
	decay := math.Exp(-m.Beta * r * s * s)
	norm := m.Horiz * horizonVolume(m.Dim, m.Horiz)
	f = 4.0 * j * s * m.C * m.Beta * decay / norm
	e = j * m.C * (1.0 - decay) / norm
	return e, f
}

func (m *RNP) EnergyAndForceState(r, s float64, broken *bool, mWeighted, theta float64) (e, f float64) {
	return 0, 0
}
