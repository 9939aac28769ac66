package convert

import "time"

// Recorder observes conversion outcomes (metrics sink).
type Recorder interface {
	ObserveConversion(operation string, err error, duration time.Duration)
}

// Operation names reported to the Recorder and logs.
const (
	OpDecode        = "decode"
	OpEncode        = "encode"
	OpRange         = "range"
	OpToCartesian   = "to_cartesian"
	OpFromCartesian = "from_cartesian"
	OpZone          = "zone"
)
