package generic

import (
	"github.com/cwbudde/algo-stats/internal/cpu"
	"github.com/cwbudde/algo-stats/internal/kernel"
	"github.com/cwbudde/algo-stats/internal/kernel/registry"
)

// init registers the generic (pure Go) implementations with the kernel registry.
//
// Generic implementations serve as the baseline fallback when no SIMD tier is
// available or when ForceGeneric is enabled for testing, and as the reference
// the accelerated tiers are tested against. Every slot is populated.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		F32: kernel.Kernels[float32]{
			Sum:      Sum[float32],
			SumSqDev: SumSqDev[float32],
			Dot:      Dot[float32],
		},
		F64: kernel.Kernels[float64]{
			Sum:      Sum[float64],
			SumSqDev: SumSqDev[float64],
			Dot:      Dot[float64],
		},
		MixedSum: MixedSum,
	})
}
