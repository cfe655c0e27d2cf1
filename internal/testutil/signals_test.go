package testutil

import (
	"math"
	"testing"
)

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise[float64](42, 5, 1.0, 64)
	b := DeterministicNoise[float64](42, 5, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < 4 || a[i] > 6 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicGaussianMoments(t *testing.T) {
	x := DeterministicGaussian[float64](7, 10, 2, 20000)
	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))
	if math.Abs(mean-10) > 0.1 {
		t.Fatalf("mean = %v, want about 10", mean)
	}
}

func TestAlternatingSigns(t *testing.T) {
	x := Alternating[float32](8)
	for i, v := range x {
		if (i%2 == 0) != (v < 0) {
			t.Fatalf("x[%d] = %v has wrong sign", i, v)
		}
	}
}

func TestRampAndConst(t *testing.T) {
	r := Ramp[float64](1, 5)
	want := []float64{1, 2, 3, 4, 5}
	RequireSliceNearlyEqual(t, r, want, 0)

	c := Const[float32](2.5, 3)
	RequireSliceNearlyEqual(t, c, []float32{2.5, 2.5, 2.5}, 0)
}

func TestSineStartsAtZero(t *testing.T) {
	s := Sine[float64](0.1, 1, 16)
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	RequireFinite(t, s...)
}
