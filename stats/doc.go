// Package stats provides summary and hypothesis-test statistics over
// float32 and float64 samples.
//
// Every statistic is composed from three reduction kernels (sum, sum of
// squared deviations, dot product) plus a mixed-precision sum. Each kernel
// has several implementations, from a portable scalar loop up to AVX-512
// with fused multiply-add. The first call selects the best tier the CPU
// supports; Select changes the selection explicitly:
//
//	installed := stats.Select(stats.AVX)
//	if installed < stats.AVX {
//		// the CPU or build does not support AVX
//	}
//
// Tiers may implement only some kernels. Kernels missing from the installed
// tier come from the next lower tier that provides them, so every operation
// always runs the fastest available implementation.
//
// Results from different tiers can differ in the last bits because the
// accumulation order differs. All tiers agree with the scalar tier within a
// bound proportional to the sample length and machine epsilon.
//
// Statistics validate their input and return ErrEmptySample,
// ErrTooFewSamples or ErrLengthMismatch instead of producing NaN. Input
// slices are only read, and never retained after the call.
package stats
