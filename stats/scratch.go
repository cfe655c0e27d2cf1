package stats

import (
	"fmt"

	"github.com/cwbudde/algo-stats/internal/config"
	"github.com/cwbudde/algo-stats/internal/scratch"
)

var (
	pool32 = scratch.NewPool[float32](config.LoadFromEnv().MaxScratch)
	pool64 = scratch.NewPool[float64](config.LoadFromEnv().MaxScratch)
)

// SetScratchLimit sets the largest temporary buffer, in elements, that
// PairedT and DiDT may acquire. Larger requests fail with ErrScratchAlloc.
// The initial limit comes from STATS_MAX_SCRATCH.
func SetScratchLimit(n int) {
	pool32.SetLimit(n)
	pool64.SetLimit(n)
}

// ScratchLimit returns the current scratch limit in elements.
func ScratchLimit() int {
	return pool64.Limit()
}

func poolFor[T Float]() *scratch.Pool[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(pool32).(*scratch.Pool[T])
	default:
		return any(pool64).(*scratch.Pool[T])
	}
}

// acquire returns a buffer for sum of sizes elements.
func acquire[T Float](op string, sizes ...int) (*scratch.Buffer[T], error) {
	n, err := scratch.Total(sizes...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrScratchAlloc, err)
	}
	buf, err := poolFor[T]().Get(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrScratchAlloc, err)
	}
	return buf, nil
}

func release[T Float](buf *scratch.Buffer[T]) {
	poolFor[T]().Put(buf)
}
