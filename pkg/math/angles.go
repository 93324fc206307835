package math

import "math"

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180.0
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * 180.0 / math.Pi
}

// Wrap360 wraps an angle in degrees into [0, 360).
func Wrap360(deg float32) float32 {
	m := float32(math.Mod(float64(deg), 360))
	if m < 0 {
		m += 360
	}
	return m
}
