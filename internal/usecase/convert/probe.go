package convert

import (
	"context"
	"fmt"
	"math"

	"github.com/kailas-cloud/numconv/internal/domain/geo"
	"github.com/kailas-cloud/numconv/internal/domain/twoscomplement"
)

// CodecProbe checks the two's-complement codec against known vectors.
type CodecProbe struct{}

// HealthCheck implements health.Checker.
func (CodecProbe) HealthCheck(_ context.Context) error {
	if v, err := twoscomplement.Decode("1101"); err != nil || v != -3 {
		return fmt.Errorf("decode 1101: got %d, %v", v, err)
	}
	if bits, err := twoscomplement.Encode(-5, 8); err != nil || bits != "11111011" {
		return fmt.Errorf("encode -5/8: got %q, %v", bits, err)
	}
	return nil
}

// GeodeticProbe checks the geodetic converter against the equator/prime
// meridian reference point.
type GeodeticProbe struct{}

// HealthCheck implements health.Checker.
func (GeodeticProbe) HealthCheck(_ context.Context) error {
	c := geo.ToCartesian(geo.GeodeticPoint{})
	if math.Abs(c.X-geo.WGS84.A) > 1e-6 || math.Abs(c.Y) > 1e-6 || math.Abs(c.Z) > 1e-6 {
		return fmt.Errorf("to cartesian (0,0,0): got %+v", c)
	}
	z, err := geo.ZoneFromLatLon(0, -180)
	if err != nil || z.Number != 1 || z.Hemisphere != geo.North {
		return fmt.Errorf("zone (0,-180): got %s, %v", z, err)
	}
	return nil
}
