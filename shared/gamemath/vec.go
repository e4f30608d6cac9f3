package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Length returns the length of (x, y).
func Length(x, y float64) float64 {
	return math.Hypot(x, y)
}

// ClampLength scales (x, y) down so its length is at most max.
// Shorter vectors are returned unchanged.
func ClampLength(x, y, max float64) (float64, float64) {
	l := Length(x, y)
	if l <= max || l == 0 {
		return x, y
	}
	s := max / l
	return x * s, y * s
}
