package mdl

import "math"

// bondConstantPMB returns the micromodulus c relating bond-pair energy
// density to bulk modulus K and horizon δ, the classical prototype
// micro-elastic brittle (PMB) calibration: c = 18K/(πδ⁴) in 3D and
// c = 9K/(πtδ³) in 2D (unit thickness t=1 here, since this model carries
// no separate plane thickness parameter).
func bondConstantPMB(dim int, K, delta float64) float64 {
	if dim == 2 {
		return 9.0 * K / (math.Pi * delta * delta * delta)
	}
	return 18.0 * K / (math.Pi * delta * delta * delta * delta)
}

// criticalStretchPMB derives s0 from the fracture energy release rate Gc,
// following the standard PMB energy-balance calibration s0 = sqrt(5Gc/(9Kδ))
// in 3D (s0 = sqrt(4Gc/(πKδ)) in 2D).
func criticalStretchPMB(dim int, Gc, K, delta float64) float64 {
	if Gc <= 0 {
		return math.Inf(1)
	}
	if dim == 2 {
		return math.Sqrt(4.0 * Gc / (math.Pi * K * delta))
	}
	return math.Sqrt(5.0 * Gc / (9.0 * K * delta))
}

// PMB is the prototype micro-elastic brittle bond model: a linear pair
// potential with a single critical stretch, breaking irreversibly.
type PMB struct {
	Base
	C  float64
	Sc float64
}

// NewPMB builds a PMB material. Parameter "s0" overrides the energy-balance
// critical stretch derived from Gc.
func NewPMB(base Base, p Prms) *PMB {
	ec := base.ComputeMaterialProperties(base.Dim)
	c := bondConstantPMB(base.Dim, ec.K, base.Horiz)
	sc := criticalStretchPMB(base.Dim, ec.Gc, ec.K, base.Horiz)
	sc = p.GetOr("s0", sc)
	return &PMB{Base: base, C: c, Sc: sc}
}

func (m *PMB) CriticalStretch(float64) float64 { return m.Sc }

func (m *PMB) IsStateActive() bool { return false }

// EnergyAndForce implements e = ½J(r)·c·s²·r, f = J(r)·c·s, breaking the
// bond irreversibly the first time |s| exceeds the critical stretch.
func (m *PMB) EnergyAndForce(r, s float64, broken *bool, breakAllowed bool) (e, f float64) {
	if *broken {
		return 0, 0
	}
	if breakAllowed && math.Abs(s) > m.Sc {
		*broken = true
		return 0, 0
	}
	j := m.InfluenceFn(r)
	f = j * m.C * s
	e = 0.5 * j * m.C * s * s * r
	return e, f
}

func (m *PMB) EnergyAndForceState(r, s float64, broken *bool, mWeighted, theta float64) (e, f float64) {
	return 0, 0
}
