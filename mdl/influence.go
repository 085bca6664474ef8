package mdl

import "math"

// Influence is the bounded, non-increasing, dimensionless weight J(r) a
// material places on a bond as a function of its normalized length r/ε.
type Influence interface {
	Value(rNorm float64) float64
}

// ConstantInfluence is J(r) = 1.
type ConstantInfluence struct{}

func (ConstantInfluence) Value(float64) float64 { return 1 }

// LinearInfluence is J(r) = 1 - r.
type LinearInfluence struct{}

func (LinearInfluence) Value(r float64) float64 { return 1 - r }

// GaussianInfluence is J(r) = exp(-r^2/beta).
type GaussianInfluence struct{ Beta float64 }

func (g GaussianInfluence) Value(r float64) float64 { return math.Exp(-r * r / g.Beta) }

// NewInfluence builds an Influence by name ("constant", "linear", "gaussian").
func NewInfluence(name string, beta float64) Influence {
	switch name {
	case "", "constant":
		return ConstantInfluence{}
	case "linear":
		return LinearInfluence{}
	case "gaussian":
		return GaussianInfluence{Beta: beta}
	}
	return ConstantInfluence{}
}

// horizonVolume returns |B_ε|, the volume of the horizon ball, used to
// normalize the RNP energy/force densities.
func horizonVolume(dim int, eps float64) float64 {
	if dim == 2 {
		return math.Pi * eps * eps
	}
	return 4.0 / 3.0 * math.Pi * eps * eps * eps
}
