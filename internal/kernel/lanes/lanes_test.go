package lanes

import (
	"math"
	"strconv"
	"testing"
	"unsafe"

	"github.com/cwbudde/algo-stats/internal/kernel"
	"github.com/cwbudde/algo-stats/internal/testutil"
)

var allBits = []int{Bits128, Bits256, Bits512}

func sumRef[T kernel.Float](a []T) T {
	var s T
	for _, x := range a {
		s += x
	}
	return s
}

func sumSqDevRef[T kernel.Float](a []T, m T) T {
	var s T
	for _, x := range a {
		s += (x - m) * (x - m)
	}
	return s
}

func dotRef[T kernel.Float](a, b []T) T {
	var s T
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func sqDevBound[T kernel.Float](a []T, m T) float64 {
	d := make([]T, len(a))
	for i, x := range a {
		d[i] = (x - m) * (x - m)
	}
	return 4 * testutil.SumBound(d)
}

func TestWidth(t *testing.T) {
	cases := []struct {
		bits   int
		want32 int
		want64 int
	}{
		{Bits128, 4, 2},
		{Bits256, 8, 4},
		{Bits512, 16, 8},
	}
	for _, tc := range cases {
		if got := Width[float32](tc.bits); got != tc.want32 {
			t.Errorf("Width[float32](%d) = %d, want %d", tc.bits, got, tc.want32)
		}
		if got := Width[float64](tc.bits); got != tc.want64 {
			t.Errorf("Width[float64](%d) = %d, want %d", tc.bits, got, tc.want64)
		}
	}
}

func testSplitCounts[T kernel.Float](t *testing.T) {
	backing := make([]T, 128)
	for _, bits := range allBits {
		w := Width[T](bits)
		align := uintptr(bits / 8)
		for off := 0; off < 4; off++ {
			for n := 0; n+off <= len(backing) && n <= 67; n++ {
				a := backing[off : off+n]
				peel, bulk, tail := Split(a, bits)
				if peel+bulk+tail != n {
					t.Fatalf("bits=%d off=%d n=%d: %d+%d+%d != n", bits, off, n, peel, bulk, tail)
				}
				if peel > w-1 || peel < 0 {
					t.Fatalf("bits=%d off=%d n=%d: peel %d out of [0,%d]", bits, off, n, peel, w-1)
				}
				if bulk%w != 0 {
					t.Fatalf("bits=%d off=%d n=%d: bulk %d not a multiple of %d", bits, off, n, bulk, w)
				}
				if tail >= w {
					t.Fatalf("bits=%d off=%d n=%d: tail %d >= %d", bits, off, n, tail, w)
				}
				if bulk > 0 {
					if addr := uintptr(unsafe.Pointer(&a[peel])); addr%align != 0 {
						t.Fatalf("bits=%d off=%d n=%d: bulk start %#x not %d-byte aligned", bits, off, n, addr, align)
					}
				}
			}
		}
	}
}

func TestSplitCountsFloat32(t *testing.T) { testSplitCounts[float32](t) }
func TestSplitCountsFloat64(t *testing.T) { testSplitCounts[float64](t) }

func TestSplitEmpty(t *testing.T) {
	peel, bulk, tail := Split([]float64(nil), Bits256)
	if peel != 0 || bulk != 0 || tail != 0 {
		t.Fatalf("Split(nil) = %d,%d,%d, want 0,0,0", peel, bulk, tail)
	}
}

func TestReduceHalving(t *testing.T) {
	v := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	if got := reduce(v); got != 36 {
		t.Fatalf("reduce = %v, want 36", got)
	}
	one := []float32{3}
	if got := reduce(one); got != 3 {
		t.Fatalf("reduce single = %v, want 3", got)
	}
}

func testReferenceParity[T kernel.Float](t *testing.T) {
	backing := testutil.Alternating[T](1004)
	other := testutil.DeterministicNoise[T](11, 0, 3, 1004)
	for _, bits := range allBits {
		for off := 0; off < 4; off++ {
			for n := 0; n <= 1000; n += 1 + n/16 {
				a := backing[off : off+n]
				b := other[:n]
				name := "bits=" + strconv.Itoa(bits) + "/off=" + strconv.Itoa(off) + "/n=" + strconv.Itoa(n)

				if got, want := Sum(a, bits), sumRef(a); math.Abs(float64(got-want)) > testutil.SumBound(a) {
					t.Fatalf("%s: Sum = %v, want %v", name, got, want)
				}

				m := T(1.5)
				bound := sqDevBound(a, m)
				if got, want := SumSqDev(a, m, bits), sumSqDevRef(a, m); math.Abs(float64(got-want)) > bound {
					t.Fatalf("%s: SumSqDev = %v, want %v", name, got, want)
				}
				if got, want := SumSqDevFMA(a, m, bits), sumSqDevRef(a, m); math.Abs(float64(got-want)) > bound {
					t.Fatalf("%s: SumSqDevFMA = %v, want %v", name, got, want)
				}

				prod := make([]T, n)
				for i := range prod {
					prod[i] = a[i] * b[i]
				}
				dotBound := 4 * testutil.SumBound(prod)
				if got, want := Dot(a, b, bits), dotRef(a, b); math.Abs(float64(got-want)) > dotBound {
					t.Fatalf("%s: Dot = %v, want %v", name, got, want)
				}
				if got, want := DotFMA(a, b, bits), dotRef(a, b); math.Abs(float64(got-want)) > dotBound {
					t.Fatalf("%s: DotFMA = %v, want %v", name, got, want)
				}
			}
		}
	}
}

func TestReferenceParityFloat32(t *testing.T) { testReferenceParity[float32](t) }
func TestReferenceParityFloat64(t *testing.T) { testReferenceParity[float64](t) }

func TestDotUsesCommonLength(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 1, 1}
	if got := Dot(a, b, Bits128); got != 6 {
		t.Fatalf("Dot = %v, want 6", got)
	}
}

func TestExactSmallSums(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5}
	for _, bits := range allBits {
		if got := Sum(a, bits); got != 15 {
			t.Errorf("bits=%d: Sum = %v, want 15", bits, got)
		}
		if got := SumSqDev(a, 3, bits); got != 10 {
			t.Errorf("bits=%d: SumSqDev = %v, want 10", bits, got)
		}
		if got := MixedSum(a, bits); got != 15 {
			t.Errorf("bits=%d: MixedSum = %v, want 15", bits, got)
		}
	}
}

func TestMixedSumMatchesFloat64Reference(t *testing.T) {
	backing := testutil.DeterministicNoise[float32](3, 100, 50, 2051)
	for _, bits := range allBits {
		for off := 0; off < 4; off++ {
			for _, n := range []int{0, 1, 3, 4, 5, 15, 16, 17, 1000, 2047} {
				a := backing[off : off+n]
				want := 0.0
				for _, x := range a {
					want += float64(x)
				}
				got := MixedSum(a, bits)
				if math.Abs(got-want) > testutil.SumBound(a)*1e-6+1e-9 {
					t.Fatalf("bits=%d off=%d n=%d: MixedSum = %v, want %v", bits, off, n, got, want)
				}
			}
		}
	}
}

func TestMixedSumBeatsSinglePrecision(t *testing.T) {
	a := testutil.Const[float32](0.1, 1_000_000)
	exact := float64(float32(0.1)) * 1_000_000

	mixed := MixedSum(a, Bits128)
	single := float64(sumRef(a))

	if math.Abs(mixed-exact) >= math.Abs(single-exact) {
		t.Fatalf("mixed error %v not below single error %v", math.Abs(mixed-exact), math.Abs(single-exact))
	}
}
