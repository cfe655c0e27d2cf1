package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySample is returned when a sample has no elements.
	ErrEmptySample = errors.New("stats: empty sample")

	// ErrTooFewSamples is returned when a statistic needs more elements
	// than the sample has (two for variance and t statistics).
	ErrTooFewSamples = errors.New("stats: too few samples")

	// ErrLengthMismatch is returned when paired samples differ in length.
	ErrLengthMismatch = errors.New("stats: sample length mismatch")

	// ErrScratchAlloc is returned when a statistic cannot acquire its
	// temporary buffer.
	ErrScratchAlloc = errors.New("stats: scratch allocation failed")

	// ErrPackedLayout is returned when a packed array does not match the
	// sample counts passed with it.
	ErrPackedLayout = errors.New("stats: invalid packed layout")
)

// need checks that a sample of length n has at least the given number of elements.
func need(op string, n, least int) error {
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptySample)
	}
	if n < least {
		return fmt.Errorf("%s: %w: n=%d, need at least %d", op, ErrTooFewSamples, n, least)
	}
	return nil
}

func sameLength(op string, n1, n2 int) error {
	if n1 != n2 {
		return fmt.Errorf("%s: %w: %d != %d", op, ErrLengthMismatch, n1, n2)
	}
	return nil
}
