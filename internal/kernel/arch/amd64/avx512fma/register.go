//go:build amd64 && !purego

package avx512fma

import (
	"github.com/cwbudde/algo-stats/internal/cpu"
	"github.com/cwbudde/algo-stats/internal/kernel"
	"github.com/cwbudde/algo-stats/internal/kernel/registry"
)

// init registers the AVX-512+FMA implementations with the kernel registry.
//
// Sum and MixedSum have no multiply to fuse and resolve from the AVX-512 tier.
//
// Priority: 35 (highest)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx512fma",
		SIMDLevel: cpu.SIMDAVX512FMA,
		Priority:  35,

		F32: kernel.Kernels[float32]{
			SumSqDev: SumSqDev[float32],
			Dot:      Dot[float32],
		},
		F64: kernel.Kernels[float64]{
			SumSqDev: SumSqDev[float64],
			Dot:      Dot[float64],
		},
	})
}
