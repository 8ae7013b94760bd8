// Package utils contains small helpers shared across the correlation packages.
package utils

import "math"

// Clamp returns min if value is less than min, max if value is greater than
// max, and value otherwise.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Float64AlmostEqual determines if two float64 values are equal to within the
// given epsilon.
func Float64AlmostEqual(v, ov, epsilon float64) bool {
	return math.Abs(v-ov) <= epsilon
}

// Square is faster than math.Pow(x, 2).
func Square(n float64) float64 {
	return n * n
}
