//go:build amd64 && !purego

// Package avx provides the 256-bit reduction kernels.
package avx

import (
	"github.com/cwbudde/algo-stats/internal/kernel"
	"github.com/cwbudde/algo-stats/internal/kernel/lanes"
)

// Sum returns the sum of all elements in a using 256-bit lanes.
func Sum[T kernel.Float](a []T) T {
	return lanes.Sum(a, lanes.Bits256)
}

// SumSqDev returns Σ (a[i] - m)² using 256-bit lanes.
func SumSqDev[T kernel.Float](a []T, m T) T {
	return lanes.SumSqDev(a, m, lanes.Bits256)
}

// MixedSum widens 8 float32 lanes per step into float64 partial sums.
func MixedSum(a []float32) float64 {
	return lanes.MixedSum(a, lanes.Bits256)
}
