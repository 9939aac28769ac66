package convert

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/numconv/internal/domain"
	"github.com/kailas-cloud/numconv/internal/domain/geo"
	"github.com/kailas-cloud/numconv/internal/domain/twoscomplement"
	"github.com/kailas-cloud/numconv/internal/logger"
)

// Service runs the numeric conversions under configured limits and records
// every outcome. It holds no mutable state and is safe for concurrent use.
type Service struct {
	maxBitWidth int
	zonePolicy  geo.ZonePolicy
	recorder    Recorder
}

// New creates a conversion service. recorder can be nil.
func New(recorder Recorder) *Service {
	return &Service{
		maxBitWidth: twoscomplement.MaxBitWidth,
		zonePolicy:  geo.Banded,
		recorder:    recorder,
	}
}

// WithMaxBitWidth lowers the widest accepted bit string / size.
// Values outside 1..64 are ignored.
func (s *Service) WithMaxBitWidth(n int) *Service {
	if n >= 1 && n <= twoscomplement.MaxBitWidth {
		s.maxBitWidth = n
	}
	return s
}

// WithZonePolicy sets the policy used when a Zone call passes none.
func (s *Service) WithZonePolicy(p geo.ZonePolicy) *Service {
	if p.IsValid() {
		s.zonePolicy = p
	}
	return s
}

// MaxBitWidth returns the configured width ceiling.
func (s *Service) MaxBitWidth() int { return s.maxBitWidth }

// ZonePolicy returns the default zone policy.
func (s *Service) ZonePolicy() geo.ZonePolicy { return s.zonePolicy }

// Decode parses a two's-complement bit string.
func (s *Service) Decode(ctx context.Context, bits string) (int64, error) {
	start := time.Now()

	v, err := twoscomplement.Decode(bits)
	if err == nil && len(bits) > s.maxBitWidth {
		err = s.overflow(len(bits))
	}
	s.observe(ctx, OpDecode, start, err, zap.Int("width", len(bits)))
	if err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}
	return v, nil
}

// Encode renders value as a bit string of exactly size characters.
func (s *Service) Encode(ctx context.Context, value int64, size int) (string, error) {
	start := time.Now()

	var (
		bits string
		err  error
	)
	if size > s.maxBitWidth {
		err = s.overflow(size)
	} else {
		bits, err = twoscomplement.Encode(value, size)
	}
	s.observe(ctx, OpEncode, start, err, zap.Int64("value", value), zap.Int("size", size))
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return bits, nil
}

// Range returns the representable interval for size bits.
func (s *Service) Range(ctx context.Context, size int) (lo, hi int64, err error) {
	start := time.Now()

	if size > s.maxBitWidth {
		err = s.overflow(size)
	} else {
		lo, hi, err = twoscomplement.Range(size)
	}
	s.observe(ctx, OpRange, start, err, zap.Int("size", size))
	if err != nil {
		return 0, 0, fmt.Errorf("range: %w", err)
	}
	return lo, hi, nil
}

// ToCartesian converts a validated geodetic point to ECEF.
func (s *Service) ToCartesian(ctx context.Context, p geo.GeodeticPoint) (geo.CartesianPoint, error) {
	start := time.Now()

	err := p.Validate()
	var c geo.CartesianPoint
	if err == nil {
		c = geo.ToCartesian(p)
	}
	s.observe(ctx, OpToCartesian, start, err,
		zap.Float64("lat", p.Lat), zap.Float64("lon", p.Lon), zap.Float64("height", p.Height))
	if err != nil {
		return geo.CartesianPoint{}, fmt.Errorf("to cartesian: %w", err)
	}
	return c, nil
}

// FromCartesian converts an ECEF position to geodetic.
func (s *Service) FromCartesian(ctx context.Context, c geo.CartesianPoint) (geo.GeodeticPoint, error) {
	start := time.Now()

	err := c.Validate()
	var p geo.GeodeticPoint
	if err == nil {
		p = geo.FromCartesian(c)
		// Finite inputs near the float64 limit can still overflow.
		err = p.Validate()
	}
	s.observe(ctx, OpFromCartesian, start, err,
		zap.Float64("x", c.X), zap.Float64("y", c.Y), zap.Float64("z", c.Z))
	if err != nil {
		return geo.GeodeticPoint{}, fmt.Errorf("from cartesian: %w", err)
	}
	return p, nil
}

// Zone computes the grid zone designator. An empty policy uses the
// service default.
func (s *Service) Zone(ctx context.Context, lat, lon float64, policy geo.ZonePolicy) (geo.Zone, error) {
	start := time.Now()

	if policy == "" {
		policy = s.zonePolicy
	}

	var (
		z   geo.Zone
		err error
	)
	if !policy.IsValid() {
		err = fmt.Errorf("%w: %q", domain.ErrInvalidPolicy, policy)
	} else {
		z, err = geo.ZoneWithPolicy(lat, lon, policy)
	}
	s.observe(ctx, OpZone, start, err,
		zap.Float64("lat", lat), zap.Float64("lon", lon), zap.String("policy", string(policy)))
	if err != nil {
		return geo.Zone{}, fmt.Errorf("zone: %w", err)
	}
	return z, nil
}

func (s *Service) overflow(width int) error {
	return fmt.Errorf("%w: width %d exceeds maximum %d", domain.ErrOverflow, width, s.maxBitWidth)
}

func (s *Service) observe(ctx context.Context, op string, start time.Time, err error, fields ...zap.Field) {
	duration := time.Since(start)
	if s.recorder != nil {
		s.recorder.ObserveConversion(op, err, duration)
	}

	log := logger.FromContext(ctx)
	fields = append(fields, zap.String("op", op), zap.Duration("duration", duration))
	if err != nil {
		log.Debug("Conversion rejected", append(fields, zap.Error(err))...)
		return
	}
	log.Debug("Conversion completed", fields...)
}
