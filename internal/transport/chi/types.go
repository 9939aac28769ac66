package chi

import "github.com/kailas-cloud/numconv/internal/domain"

// ErrorCode is the machine-readable error code of an API error response.
type ErrorCode string

// Error codes. Domain kinds reuse the domain.Kind strings.
const (
	ErrorCodeBadRequest        ErrorCode = "bad_request"
	ErrorCodeUnauthorized      ErrorCode = "unauthorized"
	ErrorCodeNotFound          ErrorCode = "not_found"
	ErrorCodeMethodNotAllowed  ErrorCode = "method_not_allowed"
	ErrorCodeInternalError     ErrorCode = "internal_error"
	ErrorCodeInvalidFormat     ErrorCode = domain.KindInvalidFormat
	ErrorCodeInvalidSize       ErrorCode = domain.KindInvalidSize
	ErrorCodeOutOfRange        ErrorCode = domain.KindOutOfRange
	ErrorCodeInvalidCoordinate ErrorCode = domain.KindInvalidCoordinate
	ErrorCodeOverflow          ErrorCode = domain.KindOverflow
	ErrorCodeInvalidPolicy     ErrorCode = domain.KindInvalidPolicy
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// DecodeResponse is returned by GET /v1/twos-complement/decode.
type DecodeResponse struct {
	Bits  string `json:"bits"`
	Value int64  `json:"value"`
}

// EncodeResponse is returned by GET /v1/twos-complement/encode.
type EncodeResponse struct {
	Value int64  `json:"value"`
	Size  int    `json:"size"`
	Bits  string `json:"bits"`
}

// RangeResponse is returned by GET /v1/twos-complement/range.
type RangeResponse struct {
	Size int   `json:"size"`
	Min  int64 `json:"min"`
	Max  int64 `json:"max"`
}

// CartesianResponse is returned by GET /v1/geodetic/cartesian.
type CartesianResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// GeodeticResponse is returned by GET /v1/geodetic/inverse.
type GeodeticResponse struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Height float64 `json:"height"`
}

// ZoneResponse is returned by GET /v1/geodetic/zone.
type ZoneResponse struct {
	Number     int    `json:"number"`
	Hemisphere string `json:"hemisphere"`
	Designator string `json:"designator"`
	Policy     string `json:"policy"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}
