package numconv

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	maxBitWidth int
	zonePolicy  ZonePolicy

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithMaxBitWidth lowers the widest accepted bit string and encode size.
// Must be in 1..64. Default: 64.
func WithMaxBitWidth(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxBitWidth = n
	})
}

// WithZonePolicy sets the policy used by Zone. Default: ZoneBanded.
func WithZonePolicy(p ZonePolicy) Option {
	return optionFunc(func(c *clientConfig) {
		c.zonePolicy = p
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
