package cpu

import (
	"runtime"
	"testing"
)

func TestSupportsLevels(t *testing.T) {
	cases := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{name: "none always", features: Features{}, level: SIMDNone, want: true},
		{name: "sse2", features: Features{HasSSE2: true}, level: SIMDSSE2, want: true},
		{name: "sse2 missing", features: Features{}, level: SIMDSSE2, want: false},
		{name: "avx", features: Features{HasAVX: true}, level: SIMDAVX, want: true},
		{name: "avx without fma", features: Features{HasAVX: true}, level: SIMDAVXFMA, want: false},
		{name: "avx with fma", features: Features{HasAVX: true, HasFMA: true}, level: SIMDAVXFMA, want: true},
		{name: "fma without avx", features: Features{HasFMA: true}, level: SIMDAVXFMA, want: false},
		{name: "avx512", features: Features{HasAVX512: true}, level: SIMDAVX512, want: true},
		{name: "avx512 without fma", features: Features{HasAVX512: true}, level: SIMDAVX512FMA, want: false},
		{name: "avx512 with fma", features: Features{HasAVX512: true, HasFMA: true}, level: SIMDAVX512FMA, want: true},
		{name: "force generic", features: Features{HasSSE2: true, ForceGeneric: true}, level: SIMDSSE2, want: false},
		{name: "force generic none", features: Features{ForceGeneric: true}, level: SIMDNone, want: true},
		{name: "unknown level", features: Features{HasAVX512: true}, level: SIMDLevel(42), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Supports(tc.features, tc.level); got != tc.want {
				t.Fatalf("Supports(%+v, %v) = %v, want %v", tc.features, tc.level, got, tc.want)
			}
		})
	}
}

func TestForcedFeaturesDriveQueries(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasSSE2: true, HasAVX: true, Architecture: "amd64"})
	if !HasSSE2() || !HasAVX() {
		t.Fatal("forced SSE2/AVX not reported")
	}
	if HasAVXFMA() || HasAVX512() || HasAVX512FMA() {
		t.Fatal("Has* queries report features that were not forced")
	}

	SetForcedFeatures(Features{HasAVX512: true, HasFMA: true, HasAVX: true, HasSSE2: true})
	if !HasAVX512FMA() || !HasAVXFMA() {
		t.Fatal("forced AVX-512+FMA not reported")
	}
}

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetDetection()
	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
	if runtime.GOARCH == "amd64" && !f.HasSSE2 {
		t.Fatal("amd64 must report SSE2")
	}
	if f.ForceGeneric {
		t.Fatal("detection must not set ForceGeneric")
	}
}

func TestSIMDLevelString(t *testing.T) {
	if SIMDAVX512FMA.String() != "AVX-512+FMA" {
		t.Fatalf("String() = %q", SIMDAVX512FMA.String())
	}
	if SIMDLevel(-1).String() != "Unknown" {
		t.Fatalf("String() = %q", SIMDLevel(-1).String())
	}
}
