//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-stats/internal/cpu"
	"github.com/cwbudde/algo-stats/internal/kernel"
	"github.com/cwbudde/algo-stats/internal/kernel/registry"
)

// init registers the SSE2 implementations with the kernel registry.
//
// SSE2 provides 128-bit vectors (4 float32 or 2 float64 lanes) and is part of
// the x86-64 baseline, so it's available on all amd64 CPUs. Every slot is
// populated; wider tiers that skip a slot fall back here.
//
// Priority: 10 (medium - preferred over generic, but lower than AVX)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		F32: kernel.Kernels[float32]{
			Sum:      Sum[float32],
			SumSqDev: SumSqDev[float32],
			Dot:      Dot32,
		},
		F64: kernel.Kernels[float64]{
			Sum:      Sum[float64],
			SumSqDev: SumSqDev[float64],
			Dot:      Dot64,
		},
		MixedSum: MixedSum,
	})
}
