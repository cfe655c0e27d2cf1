//go:build amd64 && !purego

package avxfma

import (
	"github.com/cwbudde/algo-stats/internal/cpu"
	"github.com/cwbudde/algo-stats/internal/kernel"
	"github.com/cwbudde/algo-stats/internal/kernel/registry"
)

// init registers the AVX+FMA implementations with the kernel registry.
//
// Only the operations that gain from fused multiply-add are provided: the
// squared-deviation reduction and the dot product. Sum and MixedSum resolve
// from the AVX tier.
//
// Priority: 20
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avxfma",
		SIMDLevel: cpu.SIMDAVXFMA,
		Priority:  20,

		F32: kernel.Kernels[float32]{
			SumSqDev: SumSqDev[float32],
			Dot:      Dot32,
		},
		F64: kernel.Kernels[float64]{
			SumSqDev: SumSqDev[float64],
			Dot:      Dot64,
		},
	})
}
