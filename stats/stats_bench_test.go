package stats_test

import (
	"testing"

	"github.com/cwbudde/algo-stats/internal/testutil"
	"github.com/cwbudde/algo-stats/stats"
)

var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"256", 256},
	{"4K", 4096},
	{"64K", 65536},
}

// benchTiers runs fn under every tier the CPU supports.
func benchTiers(b *testing.B, fn func(b *testing.B, size int)) {
	b.Cleanup(func() { stats.Select(stats.Auto) })
	for _, tier := range concreteTiers {
		if stats.Select(tier) != tier {
			continue
		}
		for _, bs := range benchSizes {
			b.Run(tier.String()+"/"+bs.name, func(b *testing.B) {
				stats.Select(tier)
				fn(b, bs.size)
			})
		}
	}
}

func BenchmarkSumFloat64(b *testing.B) {
	benchTiers(b, func(b *testing.B, size int) {
		x := testutil.Ramp[float64](0, size)
		b.SetBytes(int64(size * 8))
		for i := 0; i < b.N; i++ {
			_, _ = stats.Sum(x)
		}
	})
}

func BenchmarkVarianceFloat32(b *testing.B) {
	benchTiers(b, func(b *testing.B, size int) {
		x := testutil.DeterministicNoise[float32](1, 0, 1, size)
		b.SetBytes(int64(size * 4))
		for i := 0; i < b.N; i++ {
			_, _ = stats.Variance(x)
		}
	})
}

func BenchmarkVarianceZeroFloat64(b *testing.B) {
	benchTiers(b, func(b *testing.B, size int) {
		x := testutil.DeterministicNoise[float64](2, 0, 1, size)
		b.SetBytes(int64(size * 8))
		for i := 0; i < b.N; i++ {
			_, _ = stats.VarianceZero(x)
		}
	})
}

func BenchmarkMixedSum(b *testing.B) {
	benchTiers(b, func(b *testing.B, size int) {
		x := testutil.DeterministicNoise[float32](3, 0, 1, size)
		b.SetBytes(int64(size * 4))
		for i := 0; i < b.N; i++ {
			_, _ = stats.MixedSum(x)
		}
	})
}

func BenchmarkPairedT(b *testing.B) {
	benchTiers(b, func(b *testing.B, size int) {
		x1 := testutil.DeterministicNoise[float64](4, 1, 1, size)
		x2 := testutil.DeterministicNoise[float64](5, 0, 1, size)
		b.SetBytes(int64(size * 16))
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = stats.PairedT(x1, x2)
		}
	})
}
