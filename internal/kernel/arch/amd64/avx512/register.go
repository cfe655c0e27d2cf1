//go:build amd64 && !purego

package avx512

import (
	"github.com/cwbudde/algo-stats/internal/cpu"
	"github.com/cwbudde/algo-stats/internal/kernel"
	"github.com/cwbudde/algo-stats/internal/kernel/registry"
)

// init registers the AVX-512 implementations with the kernel registry.
//
// AVX-512 provides 512-bit vectors (16 float32 or 8 float64 lanes).
//
// Priority: 30
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx512",
		SIMDLevel: cpu.SIMDAVX512,
		Priority:  30,

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
