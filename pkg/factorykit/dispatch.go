package factorykit

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/randalmurphal/factorykit/pkg/factorykit/config"
	"github.com/randalmurphal/factorykit/pkg/factorykit/observability"
)

// DriveFunc runs the Creator operations a client needs and returns the
// resulting Product. args are the same construction arguments the Creator
// was resolved with.
type DriveFunc[C, P any] func(ctx context.Context, creator C, args config.Config) (P, error)

// Dispatcher is the client side of a registry: it resolves a Creator by
// key and drives it into a Product without naming any concrete type.
//
// A Dispatcher holds a reference to its Registry, so variants registered
// after the Dispatcher was built are dispatchable immediately.
type Dispatcher[C, P any] struct {
	registry *Registry[C]
	drive    DriveFunc[C, P]
	cfg      dispatchConfig
}

// NewDispatcher creates a Dispatcher over reg.
//
// Panics if reg or drive is nil.
func NewDispatcher[C, P any](reg *Registry[C], drive DriveFunc[C, P], opts ...Option) *Dispatcher[C, P] {
	if reg == nil {
		panic("factorykit: registry cannot be nil")
	}
	if drive == nil {
		panic("factorykit: drive function cannot be nil")
	}

	cfg := defaultDispatchConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Dispatcher[C, P]{registry: reg, drive: drive, cfg: cfg}
}

// Registry returns the registry the Dispatcher resolves from.
func (d *Dispatcher[C, P]) Registry() *Registry[C] {
	return d.registry
}

// Dispatch resolves key with args and drives the resulting Creator.
//
// An unregistered key fails with *UnknownVariantError, which matches both
// ErrUnknownVariant and ErrKeyNotFound. Errors from the drive function are
// wrapped in *DispatchError. Nothing is retried.
func (d *Dispatcher[C, P]) Dispatch(ctx context.Context, key string, args config.Config) (P, error) {
	var zero P
	name := d.registry.Name()
	dispatchID := uuid.NewString()
	done := observability.TimedOperation()

	ctx, span := d.cfg.spans.StartDispatchSpan(ctx, name, key, dispatchID)
	observability.LogDispatchStart(d.cfg.logger, dispatchID, name, key)

	finish := func(err error) {
		elapsed := done()
		d.cfg.metrics.RecordDispatch(ctx, name, key, elapsed, err)
		d.cfg.spans.EndSpanWithError(span, err)
		ms := float64(elapsed.Microseconds()) / 1000
		if err != nil {
			observability.LogDispatchError(d.cfg.logger, dispatchID, key, err, ms)
			return
		}
		observability.LogDispatchComplete(d.cfg.logger, dispatchID, key, ms)
	}

	creator, err := d.registry.ResolveWith(key, args)
	d.cfg.metrics.RecordResolve(ctx, name, key, err == nil)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			err = &UnknownVariantError{Key: key, Err: err}
		}
		finish(err)
		return zero, err
	}
	d.cfg.spans.AddSpanEvent(ctx, "creator.resolved")

	product, err := d.drive(ctx, creator, args)
	if err != nil {
		err = &DispatchError{Key: key, Err: err}
		finish(err)
		return zero, err
	}

	finish(nil)
	return product, nil
}
