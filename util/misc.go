package util

import (
	"math"

	"golang.org/x/exp/constraints"
)

func IfThenElse[T any](condition bool, a T, b T) T {
	if condition {
		return a
	}
	return b
}

// CloseTo reports whether a and b are within tolerance of each other.
func CloseTo[T constraints.Float](a T, b T, tolerance T) bool {
	return math.Abs(float64(a-b)) <= float64(tolerance)
}

// CloseToPercent reports whether a and b are within percentage of the larger
// magnitude of the two. percentage is also the floor of the epsilon so values
// near zero still compare.
func CloseToPercent[T constraints.Float](a T, b T, percentage float64) bool {
	fa, fb := float64(a), float64(b)
	epsilon := math.Max(math.Max(math.Abs(fa), math.Abs(fb))*percentage, percentage)
	return math.Abs(fa-fb) <= epsilon
}
