package carbon

import "math"

// round1 rounds a value to one decimal place for display.
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// roundWhole rounds a value to the nearest whole number.
func roundWhole(f float64) int {
	return int(math.Round(f))
}
