//go:build amd64 && !purego

// Package sse2 provides the 128-bit reduction kernels.
package sse2

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stats/internal/kernel"
	"github.com/cwbudde/algo-stats/internal/kernel/lanes"
)

// Sum returns the sum of all elements in a using 128-bit lanes.
func Sum[T kernel.Float](a []T) T {
	return lanes.Sum(a, lanes.Bits128)
}

// SumSqDev returns Σ (a[i] - m)² using 128-bit lanes.
func SumSqDev[T kernel.Float](a []T, m T) T {
	return lanes.SumSqDev(a, m, lanes.Bits128)
}

// Dot32 returns the single-precision dot product using 128-bit lanes.
func Dot32(a, b []float32) float32 {
	return lanes.Dot(a, b, lanes.Bits128)
}

// Dot64 returns the double-precision dot product.
// Delegates to algo-vecmath, which runs its own SSE2/AVX2 kernel.
func Dot64(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	return vecmath.DotProduct(a[:n], b[:n])
}

// MixedSum widens 4 float32 lanes per step into float64 partial sums.
func MixedSum(a []float32) float64 {
	return lanes.MixedSum(a, lanes.Bits128)
}
