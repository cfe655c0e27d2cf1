package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-stats/internal/kernel"
)

// DeterministicNoise generates uniform noise in [offset-amplitude, offset+amplitude]
// with a fixed seed for reproducibility.
func DeterministicNoise[T kernel.Float](seed int64, offset, amplitude float64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T(offset + (rng.Float64()*2-1)*amplitude)
	}
	return out
}

// DeterministicGaussian generates normally distributed samples with the given
// mean and standard deviation and a fixed seed.
func DeterministicGaussian[T kernel.Float](seed int64, mean, stddev float64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T(mean + rng.NormFloat64()*stddev)
	}
	return out
}

// Alternating generates a sequence with alternating sign and a non-repeating
// magnitude pattern, useful for exposing accumulation-order differences.
func Alternating[T kernel.Float](length int) []T {
	out := make([]T, length)
	for i := range out {
		sign := 1.0
		if i%2 == 0 {
			sign = -1.0
		}
		out[i] = T(sign * (float64((i*37)%113) + 0.125))
	}
	return out
}

// Ramp returns start, start+1, ..., start+length-1.
func Ramp[T kernel.Float](start float64, length int) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = T(start + float64(i))
	}
	return out
}

// Const generates a constant-valued sample.
func Const[T kernel.Float](value float64, length int) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = T(value)
	}
	return out
}

// Sine generates a deterministic sine sequence with the given step in radians.
func Sine[T kernel.Float](step, amplitude float64, length int) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = T(amplitude * math.Sin(step*float64(i)))
	}
	return out
}
