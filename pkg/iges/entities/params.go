package entities

import (
	"fmt"
	"strconv"
)

// parseFloats parses every element of fields as a float64, wrapping the
// first failure with its 0-based index for diagnosability.
func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseInts parses every element of fields as an int.
func parseInts(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// requireLen fails fast if fields is shorter than n, the common shape of
// an IGES ReadPD implementation that indexes fixed positions by number.
func requireLen(fields []string, n int) error {
	if len(fields) < n {
		return fmt.Errorf("expected at least %d parameters, got %d", n, len(fields))
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatInt(i int) string {
	return strconv.Itoa(i)
}

// resolveHandle rewrites a Model handle into its write-out DE sequence
// number, the PD-level counterpart to writeout.go's resolvePointerFields.
// A zero handle (field never set) passes through unchanged, and a handle
// missing from assigned (shouldn't happen once WriteToRecords has walked
// the whole model) falls back to the raw value rather than panicking.
func resolveHandle(h int, assigned map[int]int) int {
	if h == 0 {
		return 0
	}
	if seq, ok := assigned[h]; ok {
		return seq
	}
	return h
}
