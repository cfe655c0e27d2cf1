package testutil

import (
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/cwbudde/algo-stats/internal/kernel"
)

// Epsilon returns the machine epsilon of T.
func Epsilon[T kernel.Float]() float64 {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return 0x1p-23
	}
	return 0x1p-52
}

// SumBound returns an error bound for reordered summation of a: the number of
// additions times epsilon times Σ|a[i]|, with a small absolute floor.
func SumBound[T kernel.Float](a []T) float64 {
	abs := 0.0
	for _, v := range a {
		abs += math.Abs(float64(v))
	}
	return float64(len(a)+1)*Epsilon[T]()*abs + Epsilon[T]()
}

// NearlyEqual reports whether a and b differ by at most eps, absolutely or
// relative to the larger magnitude.
func NearlyEqual(a, b, eps float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff/largest <= eps
}

// RequireNearlyEqual fails t if got and want differ by more than eps
// (absolute or relative).
func RequireNearlyEqual[T kernel.Float](t *testing.T, name string, got, want T, eps float64) {
	t.Helper()
	if !NearlyEqual(float64(got), float64(want), eps) {
		t.Fatalf("%s = %v, want %v (eps %v)", name, got, want, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[T kernel.Float](t *testing.T, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any value is NaN or Inf.
func RequireFinite[T kernel.Float](t *testing.T, data ...T) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T kernel.Float](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
