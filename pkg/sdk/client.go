package numconv

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/numconv/internal/domain/geo"
	"github.com/kailas-cloud/numconv/internal/domain/twoscomplement"
	convertuc "github.com/kailas-cloud/numconv/internal/usecase/convert"
	healthuc "github.com/kailas-cloud/numconv/internal/usecase/health"
)

// Internal interface, replaced in tests.
type convertUseCase interface {
	Decode(ctx context.Context, bits string) (int64, error)
	Encode(ctx context.Context, value int64, size int) (string, error)
	Range(ctx context.Context, size int) (int64, int64, error)
	ToCartesian(ctx context.Context, p geo.GeodeticPoint) (geo.CartesianPoint, error)
	FromCartesian(ctx context.Context, c geo.CartesianPoint) (geo.GeodeticPoint, error)
	Zone(ctx context.Context, lat, lon float64, policy geo.ZonePolicy) (geo.Zone, error)
}

// Client is the numconv SDK entry point.
type Client struct {
	convertSvc convertUseCase
	healthSvc  healthUseCase
	zonePolicy ZonePolicy
}

// New creates a Client. Without options it accepts widths up to 64 bits
// and uses the banded zone policy.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		maxBitWidth: twoscomplement.MaxBitWidth,
		zonePolicy:  ZoneBanded,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.maxBitWidth < 1 || cfg.maxBitWidth > twoscomplement.MaxBitWidth {
		return nil, fmt.Errorf("numconv: max bit width must be in 1..%d, got %d",
			twoscomplement.MaxBitWidth, cfg.maxBitWidth)
	}
	if !geo.ZonePolicy(cfg.zonePolicy).IsValid() {
		return nil, fmt.Errorf("numconv: %w: %q", ErrInvalidPolicy, cfg.zonePolicy)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	svc := convertuc.New(obs).
		WithMaxBitWidth(cfg.maxBitWidth).
		WithZonePolicy(geo.ZonePolicy(cfg.zonePolicy))

	return &Client{
		convertSvc: svc,
		healthSvc: healthuc.New(map[string]healthuc.Checker{
			"twos_complement": convertuc.CodecProbe{},
			"geodetic":        convertuc.GeodeticProbe{},
		}),
		zonePolicy: cfg.zonePolicy,
	}, nil
}

// Decode parses a two's-complement bit string of '0'/'1' characters.
// The first character is the sign bit.
func (c *Client) Decode(ctx context.Context, bits string) (int64, error) {
	return c.convertSvc.Decode(ctx, bits)
}

// Encode renders value as exactly size two's-complement bits.
// Returns an error wrapping ErrOutOfRange if value does not fit.
func (c *Client) Encode(ctx context.Context, value int64, size int) (string, error) {
	return c.convertSvc.Encode(ctx, value, size)
}

// Range returns the smallest and largest value representable in size bits.
func (c *Client) Range(ctx context.Context, size int) (lo, hi int64, err error) {
	return c.convertSvc.Range(ctx, size)
}

// ToCartesian converts a WGS84 geodetic point to ECEF meters.
func (c *Client) ToCartesian(ctx context.Context, p GeodeticPoint) (CartesianPoint, error) {
	out, err := c.convertSvc.ToCartesian(ctx, toGeodetic(p))
	if err != nil {
		return CartesianPoint{}, err
	}
	return fromCartesian(out), nil
}

// FromCartesian converts ECEF meters back to a WGS84 geodetic point.
func (c *Client) FromCartesian(ctx context.Context, p CartesianPoint) (GeodeticPoint, error) {
	out, err := c.convertSvc.FromCartesian(ctx, toCartesian(p))
	if err != nil {
		return GeodeticPoint{}, err
	}
	return fromGeodetic(out), nil
}

// Zone returns the grid zone for lat/lon under the client's zone policy.
func (c *Client) Zone(ctx context.Context, lat, lon float64) (Zone, error) {
	return c.ZoneWithPolicy(ctx, lat, lon, c.zonePolicy)
}

// ZoneWithPolicy returns the grid zone for lat/lon under policy.
func (c *Client) ZoneWithPolicy(ctx context.Context, lat, lon float64, policy ZonePolicy) (Zone, error) {
	z, err := c.convertSvc.Zone(ctx, lat, lon, geo.ZonePolicy(policy))
	if err != nil {
		return Zone{}, err
	}
	return fromZone(z), nil
}
