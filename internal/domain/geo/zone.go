package geo

import (
	"fmt"
	"math"
	"strconv"

	"github.com/kailas-cloud/numconv/internal/domain"
)

// Zone bounds for the 6-degree longitude grid.
const (
	MinZone    = 1
	MaxZone    = 60
	zoneDegree = 6
)

// Hemisphere is the north/south indicator of a zone designator.
type Hemisphere string

// Hemisphere constants.
const (
	North Hemisphere = "N"
	South Hemisphere = "S"
)

// IsValid checks if the hemisphere is N or S.
func (h Hemisphere) IsValid() bool {
	return h == North || h == South
}

// ZonePolicy selects how zone numbers are assigned.
type ZonePolicy string

// Zone policy constants.
const (
	// Banded assigns zones by longitude only.
	Banded ZonePolicy = "banded"
	// Standard applies the Norway and Svalbard exceptions on top of Banded.
	Standard ZonePolicy = "standard"
)

// IsValid checks if the policy is one of the supported values.
func (p ZonePolicy) IsValid() bool {
	return p == Banded || p == Standard
}

// Zone is a grid zone number with its hemisphere.
type Zone struct {
	Number     int
	Hemisphere Hemisphere
}

// String returns the designator, e.g. "31N".
func (z Zone) String() string {
	return strconv.Itoa(z.Number) + string(z.Hemisphere)
}

// ZoneFromLatLon returns the banded zone designator for a position.
func ZoneFromLatLon(lat, lon float64) (Zone, error) {
	return ZoneWithPolicy(lat, lon, Banded)
}

// ZoneWithPolicy returns the zone designator under the given policy.
// An empty policy means Banded; any other unknown policy is rejected
// with domain.ErrInvalidPolicy.
func ZoneWithPolicy(lat, lon float64, policy ZonePolicy) (Zone, error) {
	if policy != "" && !policy.IsValid() {
		return Zone{}, fmt.Errorf("%w: %q", domain.ErrInvalidPolicy, policy)
	}
	if err := ValidateLatLon(lat, lon); err != nil {
		return Zone{}, err
	}

	number := bandedZone(lon)
	if policy == Standard {
		number = exceptionZone(lat, lon, number)
	}

	h := North
	if lat < 0 {
		h = South
	}
	return Zone{Number: number, Hemisphere: h}, nil
}

func bandedZone(lon float64) int {
	n := int(math.Floor((lon+180)/zoneDegree)) + 1
	if n < MinZone {
		return MinZone
	}
	if n > MaxZone {
		return MaxZone
	}
	return n
}

// exceptionZone widens zone 32 over south-west Norway and merges the
// Svalbard zones into 31, 33, 35 and 37.
func exceptionZone(lat, lon float64, banded int) int {
	if lat >= 56 && lat < 64 && lon >= 3 && lon < 12 {
		return 32
	}
	if lat >= 72 && lat <= 84 && lon >= 0 && lon < 42 {
		switch {
		case lon < 9:
			return 31
		case lon < 21:
			return 33
		case lon < 33:
			return 35
		default:
			return 37
		}
	}
	return banded
}
