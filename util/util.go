package util

import (
	"math"
	"strconv"
	"strings"
)

// WholeTolerance is how far from zero a fractional part may be for a number
// to still count as whole.
const WholeTolerance = 0.0001

// ParseNumber parses s as a finite real number. Surrounding whitespace is
// ignored.
func ParseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// WholeNumber parses s as a number whose fractional part is within
// WholeTolerance of zero and returns it truncated toward zero. Values that do
// not fit in an int32 are rejected.
func WholeNumber(s string) (int, bool) {
	v, ok := ParseNumber(s)
	if !ok {
		return 0, false
	}

	whole, frac := math.Modf(v)
	if math.Abs(frac) >= WholeTolerance {
		return 0, false
	}
	if whole < math.MinInt32 || whole > math.MaxInt32 {
		return 0, false
	}

	return int(whole), true
}
