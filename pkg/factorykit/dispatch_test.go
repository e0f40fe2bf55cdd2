package factorykit

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/randalmurphal/factorykit/pkg/factorykit/config"
	"github.com/randalmurphal/factorykit/pkg/factorykit/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func newGreeterDispatcher(opts ...Option) *Dispatcher[greeter, string] {
	reg := NewRegistry[greeter]("greeters")
	reg.Register("en", newEnglish)
	reg.Register("fr", newFrench)
	reg.Register("named", newNamed)
	return NewDispatcher(reg, greet, opts...)
}

func TestDispatch(t *testing.T) {
	d := newGreeterDispatcher()

	msg, err := d.Dispatch(context.Background(), "fr", config.Config{})
	require.NoError(t, err)
	assert.Equal(t, "bonjour", msg)

	msg, err = d.Dispatch(context.Background(), "named", config.New(map[string]any{"name": "ada"}))
	require.NoError(t, err)
	assert.Equal(t, "hello ada", msg)
}

func TestDispatch_UnknownVariant(t *testing.T) {
	d := newGreeterDispatcher()
	before := d.Registry().Keys()

	msg, err := d.Dispatch(context.Background(), "csv", config.Config{})
	assert.Empty(t, msg)
	require.Error(t, err)

	var uv *UnknownVariantError
	require.ErrorAs(t, err, &uv)
	assert.Equal(t, "csv", uv.Key)
	assert.ErrorIs(t, err, ErrUnknownVariant)

	var knf *KeyNotFoundError
	require.ErrorAs(t, err, &knf)
	assert.Equal(t, "csv", knf.Key)

	assert.Equal(t, before, d.Registry().Keys())
}

func TestDispatch_DriveError(t *testing.T) {
	reg := NewRegistry[greeter]("greeters")
	reg.Register("en", newEnglish)
	d := NewDispatcher(reg, failingDrive)

	_, err := d.Dispatch(context.Background(), "en", config.Config{})
	var de *DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "en", de.Key)
	assert.Contains(t, err.Error(), "cannot greet")
}

func TestDispatch_LateRegistration(t *testing.T) {
	d := newGreeterDispatcher()

	_, err := d.Dispatch(context.Background(), "de", config.Config{})
	require.ErrorIs(t, err, ErrUnknownVariant)

	d.Registry().Register("de", func(config.Config) greeter { return german{} })

	msg, err := d.Dispatch(context.Background(), "de", config.Config{})
	require.NoError(t, err)
	assert.Equal(t, "hallo", msg)
}

type german struct{}

func (german) Greet() string { return "hallo" }

func TestNewDispatcher_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "factorykit: registry cannot be nil", func() {
		NewDispatcher[greeter, string](nil, greet)
	})
	assert.PanicsWithValue(t, "factorykit: drive function cannot be nil", func() {
		NewDispatcher[greeter, string](NewRegistry[greeter]("g"), nil)
	})
}

func TestDispatch_Logging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := newGreeterDispatcher(WithLogger(logger))

	_, err := d.Dispatch(context.Background(), "en", config.Config{})
	require.NoError(t, err)
	_, err = d.Dispatch(context.Background(), "xx", config.Config{})
	require.Error(t, err)

	var msgs []string
	ids := map[string]bool{}
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(line, &rec))
		msgs = append(msgs, rec["msg"].(string))
		ids[rec["dispatch_id"].(string)] = true
	}

	assert.Equal(t, []string{
		"dispatch starting", "dispatch completed",
		"dispatch starting", "dispatch failed",
	}, msgs)
	assert.Len(t, ids, 2, "each dispatch gets its own id")
}

// recordingMetrics captures metric calls.
type recordingMetrics struct {
	mu         sync.Mutex
	resolves   map[string]bool
	dispatches int
	failures   int
}

func (m *recordingMetrics) RecordResolve(_ context.Context, _, key string, found bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.resolves == nil {
		m.resolves = map[string]bool{}
	}
	m.resolves[key] = found
}

func (m *recordingMetrics) RecordDispatch(_ context.Context, _, _ string, _ time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dispatches++
	if err != nil {
		m.failures++
	}
}

// recordingSpans captures span lifecycle calls.
type recordingSpans struct {
	observability.NoopSpanManager
	started []string
	events  []string
	errs    []error
}

func (s *recordingSpans) StartDispatchSpan(ctx context.Context, _, key, _ string) (context.Context, trace.Span) {
	s.started = append(s.started, key)
	return s.NoopSpanManager.StartDispatchSpan(ctx, "", key, "")
}

func (s *recordingSpans) EndSpanWithError(_ trace.Span, err error) {
	s.errs = append(s.errs, err)
}

func (s *recordingSpans) AddSpanEvent(_ context.Context, name string, _ ...attribute.KeyValue) {
	s.events = append(s.events, name)
}

func TestDispatch_MetricsAndTracing(t *testing.T) {
	metrics := &recordingMetrics{}
	spans := &recordingSpans{}
	d := newGreeterDispatcher(WithMetrics(metrics), WithTracing(spans))

	_, _ = d.Dispatch(context.Background(), "en", config.Config{})
	_, _ = d.Dispatch(context.Background(), "xx", config.Config{})

	assert.Equal(t, map[string]bool{"en": true, "xx": false}, metrics.resolves)
	assert.Equal(t, 2, metrics.dispatches)
	assert.Equal(t, 1, metrics.failures)

	assert.Equal(t, []string{"en", "xx"}, spans.started)
	assert.Equal(t, []string{"creator.resolved"}, spans.events)
	require.Len(t, spans.errs, 2)
	assert.NoError(t, spans.errs[0])
	assert.ErrorIs(t, spans.errs[1], ErrUnknownVariant)
}

func TestOptions_NilIgnored(t *testing.T) {
	d := newGreeterDispatcher(WithMetrics(nil), WithTracing(nil))
	assert.IsType(t, observability.NoopMetrics{}, d.cfg.metrics)
	assert.IsType(t, observability.NoopSpanManager{}, d.cfg.spans)
}

func TestDispatch_Concurrent(t *testing.T) {
	d := newGreeterDispatcher()
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			msg, err := d.Dispatch(context.Background(), "en", config.Config{})
			assert.NoError(t, err)
			assert.Equal(t, "hello", msg)
		}()
		go func(n int) {
			defer wg.Done()
			if n%2 == 0 {
				d.Registry().Register("fr", newFrench)
			}
		}(i)
	}
	wg.Wait()
}
