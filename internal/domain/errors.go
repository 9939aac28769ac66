package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat signals a bit string with characters other than 0 and 1.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidSize signals a bit width that is zero or negative.
	ErrInvalidSize = errors.New("invalid size")
	// ErrOutOfRange signals an integer that does not fit the requested width.
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidCoordinate signals latitude/longitude outside the valid domain.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrOverflow signals a bit width above the supported maximum.
	ErrOverflow = errors.New("overflow")
	// ErrInvalidPolicy signals an unknown zone policy name.
	ErrInvalidPolicy = errors.New("invalid zone policy")
)

// FormatError wraps ErrInvalidFormat with the first offending position.
// Pos is -1 for an empty input.
type FormatError struct {
	Pos  int
	Char byte
}

func (e *FormatError) Error() string {
	if e.Pos < 0 {
		return ErrInvalidFormat.Error() + ": empty bit string"
	}
	return fmt.Sprintf("%s: unexpected %q at position %d", ErrInvalidFormat.Error(), e.Char, e.Pos)
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

// RangeError wraps ErrOutOfRange with the representable interval for Size bits.
type RangeError struct {
	Value int64
	Size  int
	Min   int64
	Max   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %d does not fit in %d bits [%d, %d]",
		ErrOutOfRange.Error(), e.Value, e.Size, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// CoordinateError wraps ErrInvalidCoordinate with the rejected field and value.
type CoordinateError struct {
	Field string
	Value float64
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%s: %s=%v", ErrInvalidCoordinate.Error(), e.Field, e.Value)
}

func (e *CoordinateError) Unwrap() error { return ErrInvalidCoordinate }

// NewCoordinateError creates a coordinate error for the given field.
func NewCoordinateError(field string, value float64) error {
	return &CoordinateError{Field: field, Value: value}
}
