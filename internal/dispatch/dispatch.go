// Package dispatch installs the reduction kernels used by the stats package.
//
// A selection picks the highest tier the CPU supports, then resolves every
// slot independently: each slot comes from the installed tier if it provides
// one, otherwise from the next lower supported tier that does. The result is
// published as a single immutable Table, so readers never observe a mix of
// two selections.
//
// Until the first selection the current table is a sentinel whose slots
// select Auto on first call and then forward to the installed kernel.
package dispatch

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-stats/internal/config"
	"github.com/cwbudde/algo-stats/internal/cpu"
	"github.com/cwbudde/algo-stats/internal/kernel"
	"github.com/cwbudde/algo-stats/internal/kernel/registry"
)

var (
	current  atomic.Pointer[Table]
	sentinel *Table

	// mu serializes selections.
	mu sync.Mutex

	// installs counts published selections.
	installs atomic.Uint64
)

func init() {
	sentinel = &Table{
		F32: kernel.Kernels[float32]{
			Sum:      func(a []float32) float32 { return resolve().F32.Sum(a) },
			SumSqDev: func(a []float32, m float32) float32 { return resolve().F32.SumSqDev(a, m) },
			Dot:      func(a, b []float32) float32 { return resolve().F32.Dot(a, b) },
		},
		F64: kernel.Kernels[float64]{
			Sum:      func(a []float64) float64 { return resolve().F64.Sum(a) },
			SumSqDev: func(a []float64, m float64) float64 { return resolve().F64.SumSqDev(a, m) },
			Dot:      func(a, b []float64) float64 { return resolve().F64.Dot(a, b) },
		},
		MixedSum: func(a []float32) float64 { return resolve().MixedSum(a) },
	}
	current.Store(sentinel)
}

// resolve installs an Auto selection unless another goroutine already
// replaced the sentinel, and returns the current table.
func resolve() *Table {
	mu.Lock()
	defer mu.Unlock()

	if t := current.Load(); t != sentinel {
		return t
	}
	return install(Auto)
}

// install builds and publishes a table. Must be called with mu held.
func install(requested Tier) *Table {
	t := build(choose(requested))
	current.Store(t)
	installs.Add(1)

	slog.Debug("stats: implementation selected",
		"requested", requested.String(),
		"installed", t.Tier.String(),
		"cpu", cpu.DetectFeatures().Model,
	)
	return t
}

// Select installs the best tier not above requested that the CPU supports
// and returns it. Auto and unknown values start from the highest tier.
// Selecting again is idempotent.
func Select(requested Tier) Tier {
	mu.Lock()
	defer mu.Unlock()

	return install(requested).Tier
}

// Current returns the installed table, selecting Auto first if nothing has
// been installed yet.
func Current() *Table {
	if t := current.Load(); t != sentinel {
		return t
	}
	return resolve()
}

// Installed returns the installed tier, selecting Auto first if needed.
func Installed() Tier {
	return Current().Tier
}

// For returns the slot set for T from the current table. Before the first
// selection these are the sentinel trampolines.
func For[T kernel.Float]() *kernel.Kernels[T] {
	t := current.Load()
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(&t.F32).(*kernel.Kernels[T])
	default:
		return any(&t.F64).(*kernel.Kernels[T])
	}
}

// MixedSum returns the current mixed-precision slot.
func MixedSum() kernel.MixedSumFunc {
	return current.Load().MixedSum
}

// choose picks the tier to install.
func choose(requested Tier) Tier {
	if !accelerated {
		return Naive
	}

	start := requested
	if !requested.concrete() {
		start = AVX512FMA
		if requested == Auto {
			start = capFromConfig(start)
		}
	}

	for tier := start; tier > Naive; tier-- {
		if tier.supported() && registry.Global.At(tier.level()) != nil {
			return tier
		}
	}
	return Naive
}

// capFromConfig applies STATS_NO_SIMD and STATS_IMPL to an Auto selection.
func capFromConfig(start Tier) Tier {
	cfg := config.LoadFromEnv()
	if cfg.NoSIMD {
		return Naive
	}
	limit, err := ParseTier(cfg.Impl)
	if err != nil {
		slog.Debug("stats: ignoring implementation cap", "impl", cfg.Impl, "error", err)
		return start
	}
	if limit.concrete() && limit < start {
		return limit
	}
	return start
}

// build resolves every slot from tier downwards.
func build(tier Tier) *Table {
	t := &Table{Tier: tier}
	for op := Op(0); op < numOps; op++ {
		for from := tier; from >= Naive; from-- {
			if !from.supported() {
				continue
			}
			e := registry.Global.At(from.level())
			if e == nil {
				continue
			}
			if t.take(op, e) {
				t.origins[op] = from
				break
			}
		}
	}
	return t
}
