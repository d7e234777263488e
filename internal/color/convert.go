// Package color provides the channel conversions shared by the gradient types.
//
// Normalized channels live in [0,1]; 8-bit channels live in [0,255].
// Every float-to-byte conversion rounds to nearest on value*255.
package color

import "math"

// InUnitRange reports whether v lies in the closed interval [0,1].
// NaN is never in range.
func InUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}

// UnitToByte maps a normalized channel to [0,255] with round-to-nearest.
// Values outside [0,1] (and NaN) are clamped.
func UnitToByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	//nolint:gosec // G115: v*255 is within [0,255] here
	return uint8(math.Round(v * 255))
}

// ByteToUnit maps an 8-bit channel to [0,1].
func ByteToUnit(b uint8) float64 {
	return float64(b) / 255
}

// Lerp returns a + (b-a)*t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpByte interpolates two 8-bit channels and rounds the result to nearest.
func LerpByte(a, b uint8, t float64) uint8 {
	v := math.Round(Lerp(float64(a), float64(b), t))
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
