package gamemath

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// WrapDegrees reduces an angle into [0, 360).
// math.Mod keeps the sign of the dividend, so negative remainders are shifted up.
func WrapDegrees(deg float64) float64 {
	wrapped := math.Mod(deg, 360)
	if wrapped < 0 {
		wrapped += 360
	}
	// -1e-15 + 360 rounds to 360
	if wrapped >= 360 {
		wrapped = 0
	}
	return wrapped
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
