package stats

import "math"

// R2ZMax is the saturation value of FisherR2Z, atanh(1 - ε).
const R2ZMax = 18.3684002848385504

// FisherR2Z returns the Fisher z transform atanh(r) of a correlation
// coefficient. Inputs at or beyond ±1 saturate to ±R2ZMax instead of
// producing infinity.
func FisherR2Z[T Float](r T) T {
	switch {
	case r <= -1:
		return -T(R2ZMax)
	case r >= 1:
		return T(R2ZMax)
	}
	return T(math.Atanh(float64(r)))
}
