package geo

import (
	"math"

	"github.com/kailas-cloud/numconv/internal/domain"
)

// Ellipsoid is a reference ellipsoid given by semi-major axis (meters) and flattening.
type Ellipsoid struct {
	A float64
	F float64
}

// WGS84 is the reference ellipsoid used by GPS.
var WGS84 = Ellipsoid{A: 6_378_137.0, F: 1 / 298.257223563}

// E2 returns the first eccentricity squared.
func (e Ellipsoid) E2() float64 { return e.F * (2 - e.F) }

// GeodeticPoint is latitude/longitude in degrees and height above the ellipsoid in meters.
type GeodeticPoint struct {
	Lat    float64
	Lon    float64
	Height float64
}

// CartesianPoint is an earth-centered, earth-fixed position in meters.
type CartesianPoint struct {
	X float64
	Y float64
	Z float64
}

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// inverse iteration stops when latitude moves less than this (radians).
const (
	inverseTolerance = 1e-12
	inverseMaxIter   = 10
)

// Validate checks the point against the geodetic domain. Height may be
// negative but must be finite.
func (p GeodeticPoint) Validate() error {
	if err := ValidateLatLon(p.Lat, p.Lon); err != nil {
		return err
	}
	if math.IsNaN(p.Height) || math.IsInf(p.Height, 0) {
		return domain.NewCoordinateError("height", p.Height)
	}
	return nil
}

// Validate rejects non-finite components.
func (c CartesianPoint) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{{"x", c.X}, {"y", c.Y}, {"z", c.Z}} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return domain.NewCoordinateError(v.name, v.val)
		}
	}
	return nil
}

// ValidateLatLon checks that latitude is in [-90,90] and longitude in [-180,180].
// NaN fails both comparisons and is rejected.
func ValidateLatLon(lat, lon float64) error {
	if !(lat >= -90 && lat <= 90) {
		return domain.NewCoordinateError("lat", lat)
	}
	if !(lon >= -180 && lon <= 180) {
		return domain.NewCoordinateError("lon", lon)
	}
	return nil
}

// ToCartesian converts a geodetic point to ECEF on the WGS-84 ellipsoid.
func ToCartesian(p GeodeticPoint) CartesianPoint {
	return WGS84.ToCartesian(p)
}

// FromCartesian converts an ECEF position back to geodetic on WGS-84.
func FromCartesian(c CartesianPoint) GeodeticPoint {
	return WGS84.FromCartesian(c)
}

// ToCartesian converts a geodetic point to ECEF on e.
func (e Ellipsoid) ToCartesian(p GeodeticPoint) CartesianPoint {
	lat := p.Lat * deg2rad
	lon := p.Lon * deg2rad
	e2 := e.E2()

	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)

	// Prime vertical radius of curvature.
	n := e.A / math.Sqrt(1-e2*sinLat*sinLat)

	return CartesianPoint{
		X: (n + p.Height) * cosLat * cosLon,
		Y: (n + p.Height) * cosLat * sinLon,
		Z: (n*(1-e2) + p.Height) * sinLat,
	}
}

// FromCartesian converts ECEF to geodetic on e. Latitude starts from
// Bowring's estimate and is refined by fixed-point iteration.
func (e Ellipsoid) FromCartesian(c CartesianPoint) GeodeticPoint {
	e2 := e.E2()
	b := e.A * (1 - e.F)
	p := math.Hypot(c.X, c.Y)
	lon := math.Atan2(c.Y, c.X)

	// On the polar axis latitude is ±90 and height is measured along z.
	if p == 0 {
		lat := math.Copysign(90, c.Z)
		if c.Z == 0 {
			return GeodeticPoint{Lat: 0, Lon: lon * rad2deg, Height: -e.A}
		}
		return GeodeticPoint{Lat: lat, Lon: lon * rad2deg, Height: math.Abs(c.Z) - b}
	}

	ep2 := (e.A*e.A - b*b) / (b * b)
	theta := math.Atan2(c.Z*e.A, p*b)
	sinT, cosT := math.Sincos(theta)
	lat := math.Atan2(c.Z+ep2*b*sinT*sinT*sinT, p-e2*e.A*cosT*cosT*cosT)

	var n float64
	for i := 0; i < inverseMaxIter; i++ {
		sinLat := math.Sin(lat)
		n = e.A / math.Sqrt(1-e2*sinLat*sinLat)
		next := math.Atan2(c.Z+n*e2*sinLat, p)
		done := math.Abs(next-lat) < inverseTolerance
		lat = next
		if done {
			break
		}
	}

	sinLat, cosLat := math.Sincos(lat)
	n = e.A / math.Sqrt(1-e2*sinLat*sinLat)

	var h float64
	// Near the poles cos(lat) vanishes; use the z form instead.
	if math.Abs(cosLat) > 1e-10 {
		h = p/cosLat - n
	} else {
		h = c.Z/sinLat - n*(1-e2)
	}

	return GeodeticPoint{Lat: lat * rad2deg, Lon: lon * rad2deg, Height: h}
}
