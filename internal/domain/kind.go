package domain

import "errors"

// Error kind codes shared by metrics labels and API error codes.
const (
	KindInvalidFormat     = "invalid_format"
	KindInvalidSize       = "invalid_size"
	KindOutOfRange        = "out_of_range"
	KindInvalidCoordinate = "invalid_coordinate"
	KindOverflow          = "overflow"
	KindInvalidPolicy     = "invalid_policy"
	KindUnknown           = "unknown"
)

var kinds = []struct {
	sentinel error
	kind     string
}{
	{ErrInvalidFormat, KindInvalidFormat},
	{ErrInvalidSize, KindInvalidSize},
	{ErrOutOfRange, KindOutOfRange},
	{ErrInvalidCoordinate, KindInvalidCoordinate},
	{ErrOverflow, KindOverflow},
	{ErrInvalidPolicy, KindInvalidPolicy},
}

// Kind classifies err by the sentinel it wraps. nil yields "".
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindUnknown
}
