// Package cpu provides CPU feature detection for statistics kernel selection.
//
// This package detects the x86-64 instruction set extensions (SSE2, AVX, FMA,
// AVX-512) that the accelerated kernel tiers depend on and caches the results
// for efficient querying.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"sync"
)

// SIMDLevel represents the instruction set extension a kernel tier requires.
// Levels are ordered chronologically by the advent of the extension.
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD requirement (pure Go scalar loops).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64, 128-bit vectors).
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX (256-bit vectors).
	SIMDAVX

	// SIMDAVXFMA indicates AVX together with FMA3.
	SIMDAVXFMA

	// SIMDAVX512 indicates AVX-512 Foundation (512-bit vectors).
	SIMDAVX512

	// SIMDAVX512FMA indicates AVX-512 Foundation together with FMA3.
	SIMDAVX512FMA
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVXFMA:
		return "AVX+FMA"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDAVX512FMA:
		return "AVX-512+FMA"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2   bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX    bool // Advanced Vector Extensions
	HasFMA    bool // Fused multiply-add (FMA3)
	HasAVX512 bool // AVX-512 Foundation

	// ARM SIMD features (reported only; no ARM kernel tier exists)
	HasNEON bool

	// Control flags
	ForceGeneric bool // Disable all SIMD optimizations (for testing/debugging)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
	Model        string // CPU brand string, empty when unknown
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasSSE2 returns true if the CPU supports SSE2 instructions.
func HasSSE2() bool {
	return Supports(DetectFeatures(), SIMDSSE2)
}

// HasAVX returns true if the CPU and OS support AVX instructions.
func HasAVX() bool {
	return Supports(DetectFeatures(), SIMDAVX)
}

// HasAVXFMA returns true if the CPU supports both AVX and FMA3.
func HasAVXFMA() bool {
	return Supports(DetectFeatures(), SIMDAVXFMA)
}

// HasAVX512 returns true if the CPU supports AVX-512 Foundation.
func HasAVX512() bool {
	return Supports(DetectFeatures(), SIMDAVX512)
}

// HasAVX512FMA returns true if the CPU supports AVX-512 Foundation and FMA3.
func HasAVX512FMA() bool {
	return Supports(DetectFeatures(), SIMDAVX512FMA)
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features support the specified SIMD level.
// The Has* queries evaluate it against the detected features.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVXFMA:
		return features.HasAVX && features.HasFMA
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDAVX512FMA:
		return features.HasAVX512 && features.HasFMA
	default:
		return false
	}
}
