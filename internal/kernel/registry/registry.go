// Package registry provides the implementation registry for reduction kernels.
//
// The registry-based dispatch system allows multiple implementation tiers
// (generic, SSE2, AVX, AVX+FMA, AVX-512, AVX-512+FMA) to coexist. Each tier
// registers one entry whose slots may be partially populated; the dispatcher
// resolves every slot independently, walking down the tier order until it
// finds an entry that implements it.
//
// Architecture-specific implementations register themselves via init() functions,
// and the dispatch package imports them for the current build.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-stats/internal/cpu"
	"github.com/cwbudde/algo-stats/internal/kernel"
)

// OpEntry represents a registered implementation tier.
//
// Not all slots need to be populated - only implement the operations available
// at that SIMD level.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation (e.g., "sse2", "avx512").
	Name string

	// SIMDLevel indicates the instruction set required for this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - AVX: 15
	//   - AVX+FMA: 20
	//   - AVX-512: 30
	//   - AVX-512+FMA: 35
	Priority int

	// F32 holds the single-precision slots.
	F32 kernel.Kernels[float32]

	// F64 holds the double-precision slots.
	F64 kernel.Kernels[float64]

	// MixedSum sums float32 input with a float64 accumulator.
	MixedSum kernel.MixedSumFunc
}

// OpRegistry manages the registration and lookup of implementation tiers.
//
// Implementations register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority implementation compatible with the current CPU,
// and At() returns the entry registered for one specific level.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the dispatcher.
var Global = &OpRegistry{}

// Register adds an implementation tier to the registry.
//
// This function is typically called from init() functions in architecture-specific
// implementation packages. It is safe to call concurrently, but all registrations
// should complete before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best implementation tier for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU. If no compatible
// implementations are found, returns nil (which should never happen if a generic
// fallback is registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// At returns the highest-priority entry registered for exactly the given level,
// or nil if no tier was registered for it.
func (r *OpRegistry) At(level cpu.SIMDLevel) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].SIMDLevel == level {
			return &r.entries[i]
		}
	}

	return nil
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Simple insertion sort (registry is small, at most one entry per tier)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
