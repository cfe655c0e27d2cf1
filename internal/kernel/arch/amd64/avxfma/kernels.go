//go:build amd64 && !purego

// Package avxfma provides the 256-bit fused multiply-add reduction kernels.
package avxfma

import (
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/cwbudde/algo-stats/internal/kernel"
	"github.com/cwbudde/algo-stats/internal/kernel/lanes"
)

// SumSqDev returns Σ (a[i] - m)² using fused 256-bit lane updates.
func SumSqDev[T kernel.Float](a []T, m T) T {
	return lanes.SumSqDevFMA(a, m, lanes.Bits256)
}

// Dot32 returns the single-precision dot product via vek's AVX2+FMA kernel.
func Dot32(a, b []float32) float32 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	return vek32.Dot(a[:n], b[:n])
}

// Dot64 returns the double-precision dot product via vek's AVX2+FMA kernel.
func Dot64(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	return vek.Dot(a[:n], b[:n])
}
