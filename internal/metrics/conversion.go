package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/numconv/internal/domain"
)

// Conversion Prometheus metrics.
var (
	ConversionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "numconv",
			Name:      "conversions_total",
			Help:      "Total conversions by operation and outcome",
		},
		[]string{"operation", "status"}, // status: "ok" or an error kind
	)

	ConversionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "numconv",
			Name:      "conversion_duration_seconds",
			Help:      "Conversion duration in seconds",
			Buckets:   []float64{1e-7, 5e-7, 1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 1e-3},
		},
		[]string{"operation"},
	)
)

var registerConversionOnce sync.Once

// RegisterConversionMetrics registers conversion metrics on the default registry.
// Safe to call more than once.
func RegisterConversionMetrics() {
	registerConversionOnce.Do(func() {
		prometheus.MustRegister(ConversionsTotal)
		prometheus.MustRegister(ConversionDuration)
	})
}

// ConversionRecorder feeds conversion outcomes into the package collectors.
type ConversionRecorder struct{}

// ObserveConversion implements convert.Recorder.
func (ConversionRecorder) ObserveConversion(operation string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = domain.Kind(err)
	}
	ConversionsTotal.WithLabelValues(operation, status).Inc()
	ConversionDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
