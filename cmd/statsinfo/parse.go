package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// splitValues splits on commas and whitespace, dropping empty fields.
func splitValues(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
}

// parseValues parses every field of every argument as a float64.
func parseValues(args []string) ([]float64, error) {
	fields := lo.FlatMap(args, func(arg string, _ int) []string {
		return splitValues(arg)
	})
	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// readValues reads whitespace or comma separated values from r.
func readValues(r io.Reader) ([]float64, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read values: %w", err)
	}
	return parseValues(lines)
}

func toFloat32(vals []float64) []float32 {
	return lo.Map(vals, func(v float64, _ int) float32 { return float32(v) })
}
