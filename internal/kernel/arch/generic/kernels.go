// Package generic provides the scalar reduction kernels.
package generic

import "github.com/cwbudde/algo-stats/internal/kernel"

// Sum returns the sum of all elements in a.
// Returns 0 for an empty slice.
func Sum[T kernel.Float](a []T) T {
	var s T
	for i := range a {
		s += a[i]
	}
	return s
}

// SumSqDev returns Σ (a[i] - m)².
func SumSqDev[T kernel.Float](a []T, m T) T {
	var s T
	for i := range a {
		d := a[i] - m
		s += d * d
	}
	return s
}

// Dot returns Σ a[i]*b[i] over the common length of a and b.
func Dot[T kernel.Float](a, b []T) T {
	n := min(len(a), len(b))
	var s T
	for i := 0; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

// MixedSum sums a in a float64 accumulator.
func MixedSum(a []float32) float64 {
	var s float64
	for _, x := range a {
		s += float64(x)
	}
	return s
}
