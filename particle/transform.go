package particle

import "math"

// Transform maps a reference-mesh node x into world space as
// world = translate + rotate(scale*x), applied in that fixed order
// (scale, then rotate, then translate) for every particle instance.
type Transform struct {
	Scale       float64
	Rotation    [3][3]float64 // identity if the particle carries no rotation
	Translation [3]float64
}

// Identity returns a Transform with unit scale, no rotation, no shift.
func Identity() Transform {
	t := Transform{Scale: 1}
	for i := 0; i < 3; i++ {
		t.Rotation[i][i] = 1
	}
	return t
}

// RotationZ builds a Transform's rotation matrix for a rotation of angle
// radians about the z-axis, the common case for 2D particle orientation.
func RotationZ(angle float64) [3][3]float64 {
	c, s := math.Cos(angle), math.Sin(angle)
	return [3][3]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Apply maps a reference point into world space.
func (t Transform) Apply(x []float64) []float64 {
	scaled := [3]float64{}
	for i := 0; i < len(x) && i < 3; i++ {
		scaled[i] = x[i] * t.Scale
	}
	out := make([]float64, len(x))
	for i := 0; i < len(out); i++ {
		v := 0.0
		for j := 0; j < 3; j++ {
			v += t.Rotation[i][j] * scaled[j]
		}
		out[i] = v + t.Translation[i]
	}
	return out
}

// ApplyVector maps a reference displacement/velocity (no translation) into
// world space — scale and rotate, but do not shift.
func (t Transform) ApplyVector(v []float64) []float64 {
	scaled := [3]float64{}
	for i := 0; i < len(v) && i < 3; i++ {
		scaled[i] = v[i] * t.Scale
	}
	out := make([]float64, len(v))
	for i := 0; i < len(out); i++ {
		x := 0.0
		for j := 0; j < 3; j++ {
			x += t.Rotation[i][j] * scaled[j]
		}
		out[i] = x
	}
	return out
}
