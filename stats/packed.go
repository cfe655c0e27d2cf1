package stats

import "fmt"

// Packed wrappers take every sample of a statistic concatenated into one
// array, with the sample lengths in n. They share the signature
//
//	func(a []T, n []int) (T, error)
//
// so callers can drive any statistic from a uniform table. Extra elements
// after the last sample and extra counts are ignored.

// PackedSum is Sum(a[:n[0]]).
func PackedSum[T Float](a []T, n []int) (T, error) {
	s, err := unpack("PackedSum", a, n, 0)
	if err != nil {
		return 0, err
	}
	return Sum(s[0])
}

// PackedMean is Mean(a[:n[0]]).
func PackedMean[T Float](a []T, n []int) (T, error) {
	s, err := unpack("PackedMean", a, n, 0)
	if err != nil {
		return 0, err
	}
	return Mean(s[0])
}

// PackedVariance is Variance(a[:n[0]]).
func PackedVariance[T Float](a []T, n []int) (T, error) {
	s, err := unpack("PackedVariance", a, n, 0)
	if err != nil {
		return 0, err
	}
	return Variance(s[0])
}

// PackedVarianceZero is VarianceZero(a[:n[0]]).
func PackedVarianceZero[T Float](a []T, n []int) (T, error) {
	s, err := unpack("PackedVarianceZero", a, n, 0)
	if err != nil {
		return 0, err
	}
	return VarianceZero(s[0])
}

// PackedStd is Std(a[:n[0]]).
func PackedStd[T Float](a []T, n []int) (T, error) {
	s, err := unpack("PackedStd", a, n, 0)
	if err != nil {
		return 0, err
	}
	return Std(s[0])
}

// PackedTStat is TStat(a[:n[0]]).
func PackedTStat[T Float](a []T, n []int) (T, error) {
	s, err := unpack("PackedTStat", a, n, 0)
	if err != nil {
		return 0, err
	}
	return TStat(s[0])
}

// PackedMeanDiff is MeanDiff on the layout x1|x2 with lengths n[0], n[1].
func PackedMeanDiff[T Float](a []T, n []int) (T, error) {
	s, err := unpack("PackedMeanDiff", a, n, 0, 1)
	if err != nil {
		return 0, err
	}
	return MeanDiff(s[0], s[1])
}

// PackedTStat2 is TStat2 on the layout x1|x2 with lengths n[0], n[1].
func PackedTStat2[T Float](a []T, n []int) (T, error) {
	s, err := unpack("PackedTStat2", a, n, 0, 1)
	if err != nil {
		return 0, err
	}
	return TStat2(s[0], s[1])
}

// PackedPairedT is PairedT on the layout x1|x2, both of length n[0].
func PackedPairedT[T Float](a []T, n []int) (T, error) {
	s, err := unpack("PackedPairedT", a, n, 0, 0)
	if err != nil {
		return 0, err
	}
	return PairedT(s[0], s[1])
}

// PackedDiDT is DiDT on the layout x1|x2|y1|y2 where the x samples have
// length n[0] and the y samples length n[1].
func PackedDiDT[T Float](a []T, n []int) (T, error) {
	s, err := unpack("PackedDiDT", a, n, 0, 0, 1, 1)
	if err != nil {
		return 0, err
	}
	return DiDT(s[0], s[1], s[2], s[3])
}

// unpack cuts a into consecutive segments whose lengths are n[idx[0]],
// n[idx[1]], ...
func unpack[T Float](op string, a []T, n []int, idx ...int) ([][]T, error) {
	segs := make([][]T, len(idx))
	off := 0
	for i, k := range idx {
		if k >= len(n) {
			return nil, fmt.Errorf("%s: %w: need %d counts, got %d", op, ErrPackedLayout, k+1, len(n))
		}
		l := n[k]
		if l < 0 || l > len(a)-off {
			return nil, fmt.Errorf("%s: %w: segment %d needs %d elements at offset %d, array has %d",
				op, ErrPackedLayout, i, l, off, len(a))
		}
		segs[i] = a[off : off+l : off+l]
		off += l
	}
	return segs, nil
}
