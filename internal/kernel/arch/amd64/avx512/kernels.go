//go:build amd64 && !purego

// Package avx512 provides the 512-bit reduction kernels.
package avx512

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-stats/internal/kernel"
	"github.com/cwbudde/algo-stats/internal/kernel/lanes"
)

// Sum returns the sum of all elements in a using 512-bit lanes.
func Sum[T kernel.Float](a []T) T {
	return lanes.Sum(a, lanes.Bits512)
}

// SumSqDev returns Σ (a[i] - m)² using 512-bit lanes.
func SumSqDev[T kernel.Float](a []T, m T) T {
	return lanes.SumSqDev(a, m, lanes.Bits512)
}

// Dot32 returns the single-precision dot product via tphakala/simd, which
// selects its AVX-512 kernel on capable CPUs.
func Dot32(a, b []float32) float32 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	return f32.DotProductUnsafe(a[:n], b[:n])
}

// Dot64 returns the double-precision dot product via tphakala/simd.
func Dot64(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	return f64.DotProductUnsafe(a[:n], b[:n])
}

// MixedSum widens 16 float32 lanes per step into float64 partial sums.
func MixedSum(a []float32) float64 {
	return lanes.MixedSum(a, lanes.Bits512)
}
