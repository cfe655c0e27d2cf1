package main

import (
	"strconv"

	"github.com/cwbudde/algo-stats/stats"
)

// sig formats x with the given number of significant digits, like %.Ng.
// message.Printer widens %g precision, so floats are formatted here and
// passed to the printer as strings.
func sig[T stats.Float](x T, digits int) string {
	return strconv.FormatFloat(float64(x), 'g', digits, 64)
}

// fixed formats x with the given number of decimals, like %.Nf.
func fixed[T stats.Float](x T, decimals int) string {
	return strconv.FormatFloat(float64(x), 'f', decimals, 64)
}
