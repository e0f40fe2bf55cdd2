// Package observability provides logging, metrics and tracing for
// factorykit dispatch.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
// The registries themselves never log; only the dispatch layer does.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// NewLogger builds a slog logger writing to w.
// level is one of debug, info, warn, error; format is text or json.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

// LogRegister logs a variant registration.
func LogRegister(logger *slog.Logger, registry, key string) {
	if logger == nil {
		return
	}
	logger.Debug("variant registered",
		slog.String("registry", registry),
		slog.String("key", key),
	)
}

// LogDispatchStart logs the start of a dispatch.
func LogDispatchStart(logger *slog.Logger, dispatchID, registry, key string) {
	if logger == nil {
		return
	}
	logger.Debug("dispatch starting",
		slog.String("dispatch_id", dispatchID),
		slog.String("registry", registry),
		slog.String("key", key),
	)
}

// LogDispatchComplete logs a successful dispatch.
func LogDispatchComplete(logger *slog.Logger, dispatchID, key string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("dispatch completed",
		slog.String("dispatch_id", dispatchID),
		slog.String("key", key),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogDispatchError logs a failed dispatch.
func LogDispatchError(logger *slog.Logger, dispatchID, key string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("dispatch failed",
		slog.String("dispatch_id", dispatchID),
		slog.String("key", key),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
