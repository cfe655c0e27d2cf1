// Package kernel defines the reduction slots shared by every implementation tier.
//
// A tier provides some or all of the slots in Kernels for float32 and float64,
// plus the mixed-precision sum. Nil slots mark operations the tier does not
// accelerate; the dispatcher resolves those from a lower tier.
package kernel

// Float is the type constraint for supported sample element types.
type Float interface {
	float32 | float64
}

// Kernels is the set of reduction slots for one precision.
type Kernels[T Float] struct {
	// Sum returns Σ a[i]. Returns 0 for an empty slice.
	Sum func(a []T) T

	// SumSqDev returns Σ (a[i] - m)². Returns 0 for an empty slice.
	SumSqDev func(a []T, m T) T

	// Dot returns Σ a[i]*b[i] over the common length of a and b.
	Dot func(a, b []T) T
}

// MixedSumFunc sums single-precision input in a double-precision accumulator.
type MixedSumFunc func(a []float32) float64

// Complete reports whether every slot of k is populated.
func (k *Kernels[T]) Complete() bool {
	return k.Sum != nil && k.SumSqDev != nil && k.Dot != nil
}
