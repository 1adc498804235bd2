package input

import (
	"fmt"
	"strconv"

	"github.com/matt-g-everett/easecalc/curve"
	"github.com/matt-g-everett/easecalc/util"
)

// Validate checks the raw fields [kind, lower, upper, duration] and builds a
// curve.Config from them. Only the first broken rule is reported.
func Validate(fields []string) (curve.Config, error) {
	var c curve.Config

	if len(fields) != 4 {
		return c, fieldError("fields", strconv.Itoa(len(fields)), ErrWrongFieldCount)
	}
	kindStr, lowerStr, upperStr, durationStr := fields[0], fields[1], fields[2], fields[3]

	kind, ok := curve.ParseKind(kindStr)
	if !ok {
		return c, fieldError("curve", kindStr, ErrUnknownCurveKind)
	}

	lower, ok := util.WholeNumber(lowerStr)
	if !ok {
		return c, fieldError("lower", lowerStr, ErrLowerNotInteger)
	}
	if lower < 0 {
		return c, fieldError("lower", lowerStr, ErrLowerNegative)
	}

	upper, ok := util.WholeNumber(upperStr)
	if !ok {
		return c, fieldError("upper", upperStr, ErrUpperNotInteger)
	}
	if upper < 0 {
		return c, fieldError("upper", upperStr, ErrUpperNegative)
	}
	if upper <= lower {
		return c, fieldError("upper", upperStr, ErrUpperNotGreaterThanLower)
	}

	duration, ok := util.ParseNumber(durationStr)
	if !ok {
		return c, fieldError("duration", durationStr, ErrDurationNotNumeric)
	}
	if duration <= 0 {
		return c, fieldError("duration", durationStr, ErrDurationNotPositive)
	}

	c = curve.Config{Kind: kind, Lower: lower, Upper: upper, Duration: duration}
	return c, nil
}

// ParseTime checks that s is a number within [0, c.Duration].
func ParseTime(s string, c curve.Config) (float64, error) {
	t, ok := util.ParseNumber(s)
	if !ok {
		return 0, fieldError("time", s, ErrTimeNotNumeric)
	}
	if t < 0 || t > c.Duration {
		return 0, fieldError("time", s, fmt.Errorf("%w, must be between 0 and %g", ErrTimeOutOfRange, c.Duration))
	}
	return t, nil
}
