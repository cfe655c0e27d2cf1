//go:build amd64 && !purego

package avx

import (
	"github.com/cwbudde/algo-stats/internal/cpu"
	"github.com/cwbudde/algo-stats/internal/kernel"
	"github.com/cwbudde/algo-stats/internal/kernel/registry"
)

// init registers the AVX implementations with the kernel registry.
//
// AVX provides 256-bit vectors (8 float32 or 4 float64 lanes).
// Dot is not implemented at this tier; the dispatcher resolves it from SSE2.
//
// Priority: 15
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx",
		SIMDLevel: cpu.SIMDAVX,
		Priority:  15,

		F32: kernel.Kernels[float32]{
			Sum:      Sum[float32],
			SumSqDev: SumSqDev[float32],
		},
		F64: kernel.Kernels[float64]{
			Sum:      Sum[float64],
			SumSqDev: SumSqDev[float64],
		},
		MixedSum: MixedSum,
	})
}
