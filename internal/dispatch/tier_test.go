package dispatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-stats/internal/cpu"
)

func TestTierOrdering(t *testing.T) {
	order := []Tier{Naive, SSE2, AVX, AVXFMA, AVX512, AVX512FMA}
	for i := 1; i < len(order); i++ {
		assert.Less(t, order[i-1], order[i])
	}
	assert.Equal(t, Tier(1), Naive)
	assert.Equal(t, Tier(6), AVX512FMA)
	assert.Equal(t, Tier(100), Auto)
}

func TestParseTierRoundTrip(t *testing.T) {
	for _, tier := range []Tier{Naive, SSE2, AVX, AVXFMA, AVX512, AVX512FMA, Auto} {
		got, err := ParseTier(tier.String())
		require.NoError(t, err)
		assert.Equal(t, tier, got)
	}
}

func TestParseTier(t *testing.T) {
	cases := []struct {
		in   string
		want Tier
		err  bool
	}{
		{in: "", want: Auto},
		{in: " AVX512FMA ", want: AVX512FMA},
		{in: "Naive", want: Naive},
		{in: "avx2", err: true},
		{in: "neon", err: true},
	}
	for _, tc := range cases {
		got, err := ParseTier(tc.in)
		if tc.err {
			require.Error(t, err, tc.in)
			assert.True(t, errors.Is(err, ErrUnknownTier))
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestTierStringUnknown(t *testing.T) {
	assert.Equal(t, "Tier(42)", Tier(42).String())
	assert.False(t, Tier(42).concrete())
	assert.False(t, Auto.concrete())
	assert.True(t, SSE2.concrete())
}

func TestTierSupportedTracksFeatures(t *testing.T) {
	cases := []struct {
		name     string
		features cpu.Features
		want     []Tier
	}{
		{name: "none", features: cpu.Features{}, want: []Tier{Naive}},
		{name: "sse2", features: cpu.Features{HasSSE2: true}, want: []Tier{Naive, SSE2}},
		{name: "fma without avx", features: cpu.Features{HasSSE2: true, HasFMA: true}, want: []Tier{Naive, SSE2}},
		{name: "avx+fma", features: cpu.Features{HasSSE2: true, HasAVX: true, HasFMA: true}, want: []Tier{Naive, SSE2, AVX, AVXFMA}},
		{name: "avx512 without fma", features: cpu.Features{HasSSE2: true, HasAVX: true, HasAVX512: true}, want: []Tier{Naive, SSE2, AVX, AVX512}},
		{name: "all", features: allFeatures, want: []Tier{Naive, SSE2, AVX, AVXFMA, AVX512, AVX512FMA}},
		{name: "forced generic", features: cpu.Features{HasSSE2: true, HasAVX: true, HasFMA: true, HasAVX512: true, ForceGeneric: true}, want: []Tier{Naive}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tc.features)
			t.Cleanup(cpu.ResetDetection)

			var got []Tier
			for tier := Naive; tier <= AVX512FMA; tier++ {
				if tier.supported() {
					got = append(got, tier)
				}
			}
			assert.Equal(t, tc.want, got)
			assert.False(t, Auto.supported())
		})
	}
}
