package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records factorykit metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordResolve records a registry lookup and whether the key was found.
	RecordResolve(ctx context.Context, registry, key string, found bool)

	// RecordDispatch records a dispatch with its duration and error status.
	RecordDispatch(ctx context.Context, registry, key string, duration time.Duration, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	resolves         metric.Int64Counter
	dispatches       metric.Int64Counter
	dispatchLatency  metric.Float64Histogram
	dispatchFailures metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("factorykit")

	resolves, err := meter.Int64Counter("factorykit.registry.resolves",
		metric.WithDescription("Number of registry lookups"),
	)
	if err != nil {
		return nil, err
	}

	dispatches, err := meter.Int64Counter("factorykit.dispatch.count",
		metric.WithDescription("Number of dispatches"),
	)
	if err != nil {
		return nil, err
	}

	dispatchLatency, err := meter.Float64Histogram("factorykit.dispatch.latency_ms",
		metric.WithDescription("Dispatch latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	dispatchFailures, err := meter.Int64Counter("factorykit.dispatch.errors",
		metric.WithDescription("Number of failed dispatches"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		resolves:         resolves,
		dispatches:       dispatches,
		dispatchLatency:  dispatchLatency,
		dispatchFailures: dispatchFailures,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses the global
// OpenTelemetry meter provider. If initialization fails, a no-op recorder
// is returned.
//
// Configure the provider before the first call:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordResolve records a registry lookup.
func (m *otelMetrics) RecordResolve(ctx context.Context, registry, key string, found bool) {
	m.resolves.Add(ctx, 1, metric.WithAttributes(
		attribute.String("registry", registry),
		attribute.String("key", key),
		attribute.Bool("found", found),
	))
}

// RecordDispatch records a dispatch.
func (m *otelMetrics) RecordDispatch(ctx context.Context, registry, key string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.String("registry", registry),
		attribute.String("key", key),
	)

	m.dispatches.Add(ctx, 1, attrs)
	m.dispatchLatency.Record(ctx, float64(duration.Microseconds())/1000, attrs)

	if err != nil {
		m.dispatchFailures.Add(ctx, 1, attrs)
	}
}
