package stats

import (
	"github.com/cwbudde/algo-stats/internal/dispatch"
)

// Float is the constraint for sample element types.
type Float interface {
	float32 | float64
}

// Sum returns Σ a[i].
func Sum[T Float](a []T) (T, error) {
	if err := need("Sum", len(a), 1); err != nil {
		return 0, err
	}
	return sum(a), nil
}

// Mean returns the arithmetic mean of a.
func Mean[T Float](a []T) (T, error) {
	if err := need("Mean", len(a), 1); err != nil {
		return 0, err
	}
	return mean(a), nil
}

// MixedSum returns the sum of single-precision samples accumulated in
// double precision. For long samples it is considerably more accurate than
// Sum[float32].
func MixedSum(a []float32) (float64, error) {
	if err := need("MixedSum", len(a), 1); err != nil {
		return 0, err
	}
	return dispatch.MixedSum()(a), nil
}

func sum[T Float](a []T) T {
	return dispatch.For[T]().Sum(a)
}

func mean[T Float](a []T) T {
	return sum(a) / T(len(a))
}
