package intelligence

import "math"

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// orZero replaces NaN and ±Inf with 0.
func orZero(x float64) float64 {
	if !finite(x) {
		return 0
	}
	return x
}

func clampFloat(x, lo, hi float64) float64 {
	if !finite(x) {
		return lo
	}
	return math.Min(hi, math.Max(lo, x))
}

// clampScore rounds x and bounds it to [0, 100]. Non-finite input yields 0.
func clampScore(x float64) int {
	return int(math.Round(clampFloat(x, 0, 100)))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
