package numconv

import (
	"strconv"

	"github.com/kailas-cloud/numconv/internal/domain/geo"
)

// ZonePolicy selects how longitude/latitude map to a grid zone.
type ZonePolicy string

// Zone policy constants.
const (
	// ZoneBanded uses plain 6-degree longitude bands.
	ZoneBanded ZonePolicy = "banded"
	// ZoneStandard adds the Norway and Svalbard exceptions.
	ZoneStandard ZonePolicy = "standard"
)

// GeodeticPoint is a WGS84 position. Lat and Lon are degrees, Height is
// meters above the ellipsoid.
type GeodeticPoint struct {
	Lat    float64
	Lon    float64
	Height float64
}

// CartesianPoint is an Earth-centered Earth-fixed position in meters.
type CartesianPoint struct {
	X float64
	Y float64
	Z float64
}

// Zone is a grid zone designator such as 31N.
type Zone struct {
	Number     int
	Hemisphere string // "N" or "S"
}

func (z Zone) String() string {
	return strconv.Itoa(z.Number) + z.Hemisphere
}

func toGeodetic(p GeodeticPoint) geo.GeodeticPoint {
	return geo.GeodeticPoint{Lat: p.Lat, Lon: p.Lon, Height: p.Height}
}

func fromGeodetic(p geo.GeodeticPoint) GeodeticPoint {
	return GeodeticPoint{Lat: p.Lat, Lon: p.Lon, Height: p.Height}
}

func toCartesian(c CartesianPoint) geo.CartesianPoint {
	return geo.CartesianPoint{X: c.X, Y: c.Y, Z: c.Z}
}

func fromCartesian(c geo.CartesianPoint) CartesianPoint {
	return CartesianPoint{X: c.X, Y: c.Y, Z: c.Z}
}

func fromZone(z geo.Zone) Zone {
	return Zone{Number: z.Number, Hemisphere: string(z.Hemisphere)}
}
