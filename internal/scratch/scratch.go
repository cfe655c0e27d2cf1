// Package scratch provides pooled, size-limited work buffers.
//
// Statistics that derive a temporary sample from their inputs (paired
// differences, difference-in-differences) take one Buffer per call and
// return it before the call ends. A Pool refuses requests above its limit
// so a single oversized call fails instead of exhausting memory.
package scratch

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-stats/internal/kernel"
)

var (
	// ErrTooLarge is returned when a request exceeds the pool limit.
	ErrTooLarge = errors.New("scratch: request exceeds limit")

	// ErrOverflow is returned when a requested size cannot be represented.
	ErrOverflow = errors.New("scratch: size overflow")
)

// Buffer wraps a slice with reuse-friendly semantics.
type Buffer[T kernel.Float] struct {
	samples []T
}

// Samples returns the underlying slice.
func (b *Buffer[T]) Samples() []T {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer[T]) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer[T]) Cap() int {
	return cap(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]T, n)
		copy(s, b.samples)
		b.samples = s
	}
	if n > oldLen {
		clear(b.samples[oldLen:n])
	}
}

// Pool provides sync.Pool-based Buffer reuse with an upper bound on the
// length of any single buffer.
type Pool[T kernel.Float] struct {
	pool  sync.Pool
	limit atomic.Int64
}

// NewPool returns a Pool that hands out buffers of at most limit elements.
// A non-positive limit means no buffer can be acquired.
func NewPool[T kernel.Float](limit int) *Pool[T] {
	p := &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[T]{}
			},
		},
	}
	p.SetLimit(limit)
	return p
}

// SetLimit changes the maximum buffer length.
func (p *Pool[T]) SetLimit(limit int) {
	p.limit.Store(int64(limit))
}

// Limit returns the maximum buffer length.
func (p *Pool[T]) Limit() int {
	return int(p.limit.Load())
}

// Get returns a zeroed Buffer of the requested length.
// Callers must return it via Put when done.
func (p *Pool[T]) Get(length int) (*Buffer[T], error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrOverflow, length)
	}
	if limit := p.Limit(); length > limit {
		return nil, fmt.Errorf("%w: %d elements, limit %d", ErrTooLarge, length, limit)
	}
	b := p.pool.Get().(*Buffer[T])
	b.Resize(length)
	clear(b.samples)
	return b, nil
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

// Total returns the sum of sizes, or ErrOverflow if it does not fit in an int.
func Total(sizes ...int) (int, error) {
	total := 0
	for _, n := range sizes {
		if n < 0 || total > math.MaxInt-n {
			return 0, fmt.Errorf("%w: %v", ErrOverflow, sizes)
		}
		total += n
	}
	return total, nil
}
