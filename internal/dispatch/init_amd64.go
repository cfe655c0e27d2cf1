//go:build amd64 && !purego

package dispatch

// This file imports amd64-specific implementation packages to trigger
// their init() functions, which register implementations with the global registry.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-stats/internal/kernel/arch/generic"

	// AMD64 implementations
	_ "github.com/cwbudde/algo-stats/internal/kernel/arch/amd64/avx"
	_ "github.com/cwbudde/algo-stats/internal/kernel/arch/amd64/avx512"
	_ "github.com/cwbudde/algo-stats/internal/kernel/arch/amd64/avx512fma"
	_ "github.com/cwbudde/algo-stats/internal/kernel/arch/amd64/avxfma"
	_ "github.com/cwbudde/algo-stats/internal/kernel/arch/amd64/sse2"
)

const accelerated = true
