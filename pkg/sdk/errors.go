package numconv

import "github.com/kailas-cloud/numconv/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidFormat     = domain.ErrInvalidFormat
	ErrInvalidSize       = domain.ErrInvalidSize
	ErrOutOfRange        = domain.ErrOutOfRange
	ErrInvalidCoordinate = domain.ErrInvalidCoordinate
	ErrOverflow          = domain.ErrOverflow
	ErrInvalidPolicy     = domain.ErrInvalidPolicy
)

// Typed errors carrying the offending input. Use errors.As() to extract.
type (
	FormatError     = domain.FormatError
	RangeError      = domain.RangeError
	CoordinateError = domain.CoordinateError
)
