//go:build amd64 && !purego

// Package avx512fma provides the 512-bit fused multiply-add reduction kernels.
package avx512fma

import (
	"github.com/cwbudde/algo-stats/internal/kernel"
	"github.com/cwbudde/algo-stats/internal/kernel/lanes"
)

// SumSqDev returns Σ (a[i] - m)² using fused 512-bit lane updates.
func SumSqDev[T kernel.Float](a []T, m T) T {
	return lanes.SumSqDevFMA(a, m, lanes.Bits512)
}

// Dot returns Σ a[i]*b[i] using fused 512-bit lane updates.
func Dot[T kernel.Float](a, b []T) T {
	return lanes.DotFMA(a, b, lanes.Bits512)
}
