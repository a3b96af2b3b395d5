package domain

import "math"

// truncEpsilon absorbs binary representation error before flooring,
// e.g. 0.29*100 evaluates to 28.999999999999996.
const truncEpsilon = 1e-9

// Truncate2 drops everything past the second decimal place. It never rounds up.
func Truncate2(v float64) float64 {
	return math.Floor(v*100+truncEpsilon) / 100
}
