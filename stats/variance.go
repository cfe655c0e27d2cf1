package stats

import (
	"math"

	"github.com/cwbudde/algo-stats/internal/dispatch"
)

// VarianceAround returns the unbiased sample variance of a about a given
// mean m: Σ (a[i] - m)² / (n - 1).
func VarianceAround[T Float](a []T, m T) (T, error) {
	if err := need("VarianceAround", len(a), 2); err != nil {
		return 0, err
	}
	return varm(a, m), nil
}

// VarianceZero returns Σ a[i]² / (n - 1), the variance of a sample whose
// mean is known to be zero.
func VarianceZero[T Float](a []T) (T, error) {
	if err := need("VarianceZero", len(a), 2); err != nil {
		return 0, err
	}
	return dispatch.For[T]().Dot(a, a) / T(len(a)-1), nil
}

// Variance returns the unbiased sample variance of a, computed in two
// passes: the mean first, then the squared deviations from it.
func Variance[T Float](a []T) (T, error) {
	if err := need("Variance", len(a), 2); err != nil {
		return 0, err
	}
	return varm(a, mean(a)), nil
}

// Std returns the sample standard deviation of a.
func Std[T Float](a []T) (T, error) {
	if err := need("Std", len(a), 2); err != nil {
		return 0, err
	}
	return sqrt(varm(a, mean(a))), nil
}

func varm[T Float](a []T, m T) T {
	return dispatch.For[T]().SumSqDev(a, m) / T(len(a)-1)
}

func sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}
