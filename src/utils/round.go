package utils

import "math"

// RoundTo rounds x to the given number of decimal places.
func RoundTo(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}
