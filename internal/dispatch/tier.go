package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-stats/internal/cpu"
)

// Tier identifies an implementation tier. Tiers are ordered: a higher value
// requires a superset of the instructions of a lower one.
type Tier int

const (
	// Naive is the portable scalar tier. It is always available.
	Naive Tier = iota + 1
	SSE2
	AVX
	AVXFMA
	AVX512
	AVX512FMA

	// Auto requests the best tier the CPU supports. It is never installed.
	Auto Tier = 100
)

// ErrUnknownTier is returned by ParseTier for unrecognized names.
var ErrUnknownTier = errors.New("dispatch: unknown tier")

var tierNames = map[Tier]string{
	Naive:     "naive",
	SSE2:      "sse2",
	AVX:       "avx",
	AVXFMA:    "avxfma",
	AVX512:    "avx512",
	AVX512FMA: "avx512fma",
	Auto:      "auto",
}

// String returns the lower-case tier name.
func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// ParseTier converts a tier name to a Tier. Matching is case-insensitive;
// the empty string parses as Auto.
func ParseTier(s string) (Tier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Auto, nil
	}
	for t, name := range tierNames {
		if name == s {
			return t, nil
		}
	}
	return Auto, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// concrete reports whether t names an installable tier.
func (t Tier) concrete() bool {
	return t >= Naive && t <= AVX512FMA
}

// level maps a concrete tier to the instruction set it requires.
func (t Tier) level() cpu.SIMDLevel {
	switch t {
	case SSE2:
		return cpu.SIMDSSE2
	case AVX:
		return cpu.SIMDAVX
	case AVXFMA:
		return cpu.SIMDAVXFMA
	case AVX512:
		return cpu.SIMDAVX512
	case AVX512FMA:
		return cpu.SIMDAVX512FMA
	default:
		return cpu.SIMDNone
	}
}

// supported reports whether the running CPU can execute t.
func (t Tier) supported() bool {
	switch t {
	case Naive:
		return true
	case SSE2:
		return cpu.HasSSE2()
	case AVX:
		return cpu.HasAVX()
	case AVXFMA:
		return cpu.HasAVXFMA()
	case AVX512:
		return cpu.HasAVX512()
	case AVX512FMA:
		return cpu.HasAVX512FMA()
	default:
		return false
	}
}
