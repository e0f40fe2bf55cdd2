package factorykit

import (
	"log/slog"

	"github.com/randalmurphal/factorykit/pkg/factorykit/observability"
)

// dispatchConfig holds the collaborators a Dispatcher reports to.
type dispatchConfig struct {
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

func defaultDispatchConfig() dispatchConfig {
	return dispatchConfig{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// Option configures a Dispatcher.
type Option func(*dispatchConfig)

// WithLogger sets the logger dispatch events are written to.
// Default: nil (no logging).
func WithLogger(logger *slog.Logger) Option {
	return func(c *dispatchConfig) {
		c.logger = logger
	}
}

// WithMetrics enables metrics collection.
// Default: observability.NoopMetrics{}
//
// Example:
//
//	d := factorykit.NewDispatcher(reg, drive,
//	    factorykit.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(recorder observability.MetricsRecorder) Option {
	return func(c *dispatchConfig) {
		if recorder != nil {
			c.metrics = recorder
		}
	}
}

// WithTracing enables a span per dispatch.
// Default: observability.NoopSpanManager{}
func WithTracing(spans observability.SpanManager) Option {
	return func(c *dispatchConfig) {
		if spans != nil {
			c.spans = spans
		}
	}
}
