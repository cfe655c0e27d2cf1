package stats

import (
	"github.com/cwbudde/algo-stats/internal/dispatch"
)

// Tier identifies a kernel implementation tier. Tiers are ordered by the
// instruction sets they require.
type Tier = dispatch.Tier

// Implementation tiers.
const (
	Naive     = dispatch.Naive
	SSE2      = dispatch.SSE2
	AVX       = dispatch.AVX
	AVXFMA    = dispatch.AVXFMA
	AVX512    = dispatch.AVX512
	AVX512FMA = dispatch.AVX512FMA

	// Auto selects the best tier the CPU supports. It is never installed.
	// STATS_IMPL caps and STATS_NO_SIMD disables automatic selection.
	Auto = dispatch.Auto
)

// Select installs the best supported tier not above requested and returns
// the tier actually installed. Auto and unknown values start from the
// highest tier. Builds without accelerated kernels always install Naive.
//
// Select is safe for concurrent use. Calls already running keep the
// kernels they started with.
func Select(requested Tier) Tier {
	return dispatch.Select(requested)
}

// Installed returns the installed tier, performing an Auto selection first
// if none has happened yet.
func Installed() Tier {
	return dispatch.Installed()
}

// ParseTier converts a tier name such as "avx512fma" to a Tier.
func ParseTier(s string) (Tier, error) {
	return dispatch.ParseTier(s)
}
