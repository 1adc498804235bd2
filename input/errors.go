package input

import (
	"errors"
	"fmt"
)

// Rules broken by a curve details line, in the order they are checked.
var (
	ErrWrongFieldCount          = errors.New("expected exactly 4 fields")
	ErrUnknownCurveKind         = errors.New("must be 'Linear', 'InQuad', 'OutQuad' or 'InOutQuad'")
	ErrLowerNotInteger          = errors.New("lower bound is not a 32-bit integer")
	ErrLowerNegative            = errors.New("lower bound must not be negative")
	ErrUpperNotInteger          = errors.New("upper bound is not a 32-bit integer")
	ErrUpperNegative            = errors.New("upper bound must not be negative")
	ErrUpperNotGreaterThanLower = errors.New("upper bound must be greater than lower bound")
	ErrDurationNotNumeric       = errors.New("duration is not a number")
	ErrDurationNotPositive      = errors.New("duration must be greater than 0")
)

// Rules broken by a time query.
var (
	ErrTimeNotNumeric = errors.New("time must be a number")
	ErrTimeOutOfRange = errors.New("time is out of range")
)

// A FieldError reports the field that failed validation, the raw text it
// held and the rule it broke.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field, value string, err error) error {
	return &FieldError{Field: field, Value: value, Err: err}
}
