// Package math provides scalar math helpers for wave deformation.
package math

import "math"

// Clamp01 clamps v to the [0, 1] range.
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp clamps v to the [lo, hi] range.
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Fract returns the fractional part of v, always in [0, 1).
// Negative inputs wrap toward zero: Fract(-0.25) == 0.75.
func Fract(v float32) float32 {
	f := v - float32(math.Floor(float64(v)))
	if f >= 1 {
		return 0
	}
	return f
}

// Smoothstep performs Hermite interpolation between 0 and 1 as v
// moves across [edge0, edge1].
func Smoothstep(edge0, edge1, v float32) float32 {
	if edge0 == edge1 {
		if v < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp01((v - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Abs returns the absolute value of v.
func Abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// ApproxEqual reports whether a and b differ by no more than eps.
func ApproxEqual(a, b, eps float32) bool {
	return Abs(a-b) <= eps
}
