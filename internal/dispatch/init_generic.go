//go:build !amd64 || purego

package dispatch

// This file imports generic implementation packages for builds without
// accelerated tiers.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-stats/internal/kernel/arch/generic"
)

const accelerated = false
