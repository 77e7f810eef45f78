// Package percent holds the rounding and clamping rule shared by every score.
package percent

import "math"

// Clamp rounds value half away from zero and clamps it to [0, 100].
// NaN maps to 0 so degenerate inputs never leak into results.
func Clamp(value float64) int {
	if math.IsNaN(value) {
		return 0
	}
	rounded := math.Round(value)
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return int(rounded)
}

// Unit clamps value to [0, 1], mapping NaN to 0.
func Unit(value float64) float64 {
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
