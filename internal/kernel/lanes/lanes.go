// Package lanes implements the vector-width reduction kernels shared by the
// accelerated tiers.
//
// Every kernel has the same three-phase shape for a vector of bits width:
//
//  1. Peel: scalar-process at most lanes-1 leading elements until the next
//     element sits on a bits/8 byte boundary.
//  2. Bulk: process the aligned body in lanes-wide chunks, accumulating into
//     lanes parallel partial sums, then reduce them horizontally by halving.
//  3. Tail: scalar-process the len(body) mod lanes trailing elements.
//
// The partial sums are a fixed-size array indexed per lane, so the bulk loop
// body is the same shape the compiler sees for a register of lanes elements.
// Results differ from a sequential loop only in rounding order.
package lanes

import (
	"math"
	"unsafe"

	"github.com/cwbudde/algo-stats/internal/kernel"
)

// Vector widths in bits.
const (
	Bits128 = 128
	Bits256 = 256
	Bits512 = 512
)

// maxLanes is the widest lane count in use (512-bit float32 and the
// mixed-precision accumulators).
const maxLanes = 16

// Width returns the number of T lanes in a vector of the given bit width.
func Width[T kernel.Float](bits int) int {
	var zero T
	return bits / (8 * int(unsafe.Sizeof(zero)))
}

// Split returns the peel, bulk and tail element counts the kernels use for a.
// peel+bulk+tail == len(a) and bulk is a multiple of Width[T](bits).
func Split[T kernel.Float](a []T, bits int) (peel, bulk, tail int) {
	w := Width[T](bits)
	peel = peelCount(a, bits/8, w)
	rest := len(a) - peel
	bulk = rest - rest%w
	tail = rest - bulk
	return peel, bulk, tail
}

// peelCount returns how many leading elements must be processed one by one
// before &a[peel] is aligned to align bytes, capped at w-1 and len(a).
// Returns 0 when a is already aligned or can never become aligned.
func peelCount[T kernel.Float](a []T, align, w int) int {
	if len(a) == 0 {
		return 0
	}
	var zero T
	size := unsafe.Sizeof(zero)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	mis := addr % uintptr(align)
	if mis == 0 || mis%size != 0 {
		return 0
	}
	k := int((uintptr(align) - mis) / size)
	return min(k, w-1, len(a))
}

// reduce sums v by repeatedly folding the upper half onto the lower half.
// len(v) must be a power of two.
func reduce[T kernel.Float](v []T) T {
	for h := len(v) / 2; h >= 1; h /= 2 {
		for j := 0; j < h; j++ {
			v[j] += v[j+h]
		}
	}
	return v[0]
}

func fma[T kernel.Float](x, y, z T) T {
	return T(math.FMA(float64(x), float64(y), float64(z)))
}

// Sum returns Σ a[i].
func Sum[T kernel.Float](a []T, bits int) T {
	peel, bulk, _ := Split(a, bits)
	w := Width[T](bits)

	var s T
	for _, x := range a[:peel] {
		s += x
	}

	body := a[peel:]
	var acc [maxLanes]T
	v := acc[:w]
	for i := 0; i < bulk; i += w {
		chunk := body[i : i+w : i+w]
		for j := range v {
			v[j] += chunk[j]
		}
	}
	s += reduce(v)

	for _, x := range body[bulk:] {
		s += x
	}
	return s
}

// SumSqDev returns Σ (a[i] - m)².
func SumSqDev[T kernel.Float](a []T, m T, bits int) T {
	peel, bulk, _ := Split(a, bits)
	w := Width[T](bits)

	var s T
	for _, x := range a[:peel] {
		d := x - m
		s += d * d
	}

	body := a[peel:]
	var acc [maxLanes]T
	v := acc[:w]
	for i := 0; i < bulk; i += w {
		chunk := body[i : i+w : i+w]
		for j := range v {
			d := chunk[j] - m
			v[j] += d * d
		}
	}
	s += reduce(v)

	for _, x := range body[bulk:] {
		d := x - m
		s += d * d
	}
	return s
}

// SumSqDevFMA is SumSqDev with each lane update fused as d*d+acc.
func SumSqDevFMA[T kernel.Float](a []T, m T, bits int) T {
	peel, bulk, _ := Split(a, bits)
	w := Width[T](bits)

	var s T
	for _, x := range a[:peel] {
		d := x - m
		s = fma(d, d, s)
	}

	body := a[peel:]
	var acc [maxLanes]T
	v := acc[:w]
	for i := 0; i < bulk; i += w {
		chunk := body[i : i+w : i+w]
		for j := range v {
			d := chunk[j] - m
			v[j] = fma(d, d, v[j])
		}
	}
	s += reduce(v)

	for _, x := range body[bulk:] {
		d := x - m
		s = fma(d, d, s)
	}
	return s
}

// Dot returns Σ a[i]*b[i] over the common length. Alignment is taken from a;
// b is read at the same offsets whether or not it is aligned.
func Dot[T kernel.Float](a, b []T, bits int) T {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]
	peel, bulk, _ := Split(a, bits)
	w := Width[T](bits)

	var s T
	for i := 0; i < peel; i++ {
		s += a[i] * b[i]
	}

	ab, bb := a[peel:], b[peel:]
	var acc [maxLanes]T
	v := acc[:w]
	for i := 0; i < bulk; i += w {
		ca := ab[i : i+w : i+w]
		cb := bb[i : i+w : i+w]
		for j := range v {
			v[j] += ca[j] * cb[j]
		}
	}
	s += reduce(v)

	for i := bulk; i < len(ab); i++ {
		s += ab[i] * bb[i]
	}
	return s
}

// DotFMA is Dot with each lane update fused as a*b+acc.
func DotFMA[T kernel.Float](a, b []T, bits int) T {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]
	peel, bulk, _ := Split(a, bits)
	w := Width[T](bits)

	var s T
	for i := 0; i < peel; i++ {
		s = fma(a[i], b[i], s)
	}

	ab, bb := a[peel:], b[peel:]
	var acc [maxLanes]T
	v := acc[:w]
	for i := 0; i < bulk; i += w {
		ca := ab[i : i+w : i+w]
		cb := bb[i : i+w : i+w]
		for j := range v {
			v[j] = fma(ca[j], cb[j], v[j])
		}
	}
	s += reduce(v)

	for i := bulk; i < len(ab); i++ {
		s = fma(ab[i], bb[i], s)
	}
	return s
}

// MixedSum sums float32 input into float64 accumulators. Each bulk step
// consumes one float32 vector (bits/32 elements) and widens it into as many
// float64 partial sums.
func MixedSum(a []float32, bits int) float64 {
	peel, bulk, _ := Split(a, bits)
	w := Width[float32](bits)

	var s float64
	for _, x := range a[:peel] {
		s += float64(x)
	}

	body := a[peel:]
	var acc [maxLanes]float64
	v := acc[:w]
	for i := 0; i < bulk; i += w {
		chunk := body[i : i+w : i+w]
		for j := range v {
			v[j] += float64(chunk[j])
		}
	}
	s += reduce(v)

	for _, x := range body[bulk:] {
		s += float64(x)
	}
	return s
}
