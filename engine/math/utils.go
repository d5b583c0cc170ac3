package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// DegToRad converts degrees to radians.
func DegToRad[T constraints.Float](degrees T) T {
	return degrees * T(m.Pi) / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg[T constraints.Float](radians T) T {
	return radians * 180 / T(m.Pi)
}
