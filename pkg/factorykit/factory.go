package factorykit

import (
	"github.com/randalmurphal/factorykit/pkg/factorykit/config"
	"github.com/randalmurphal/factorykit/pkg/factorykit/registry"
)

// Factory constructs a Creator of type C.
//
// args carries construction-time state such as a file path. Factories for
// stateless Creators ignore it. A Factory must return a new value on each
// call; Creators are owned by whoever resolved them.
type Factory[C any] func(args config.Config) C

// Registry maps variant keys to Creator factories.
//
// Registry is safe for concurrent use. Registration normally happens once
// per variant during program initialization, before any Resolve is
// reachable, but late registration is allowed and immediately visible.
type Registry[C any] struct {
	factories *registry.Registry[Factory[C]]
}

// NewRegistry creates an empty registry. name appears in error messages,
// logs and metrics.
func NewRegistry[C any](name string) *Registry[C] {
	return &Registry[C]{
		factories: registry.New[Factory[C]](name),
	}
}

// Name returns the registry name.
func (r *Registry[C]) Name() string {
	return r.factories.Name()
}

// Register binds key to factory. An existing binding for key is replaced
// without error.
//
// Panics if factory is nil.
func (r *Registry[C]) Register(key string, factory Factory[C]) {
	if factory == nil {
		panic("factorykit: factory cannot be nil")
	}
	r.factories.Register(key, factory)
}

// RegisterMany binds every key in factories as one atomic update.
//
// Panics, registering nothing, if any factory is nil.
func (r *Registry[C]) RegisterMany(factories map[string]Factory[C]) {
	for key, factory := range factories {
		if factory == nil {
			panic("factorykit: factory cannot be nil for key " + key)
		}
	}
	r.factories.RegisterMany(factories)
}

// Resolve creates a new Creator for key with empty construction arguments.
// An unregistered key yields a *KeyNotFoundError.
func (r *Registry[C]) Resolve(key string) (C, error) {
	return r.ResolveWith(key, config.Config{})
}

// ResolveWith creates a new Creator for key, passing args to its factory.
// An unregistered key yields a *KeyNotFoundError and leaves the registry
// untouched.
func (r *Registry[C]) ResolveWith(key string, args config.Config) (C, error) {
	factory, err := r.factories.Resolve(key)
	if err != nil {
		var zero C
		return zero, err
	}
	return factory(args), nil
}

// Unregister removes key and reports whether it was registered.
func (r *Registry[C]) Unregister(key string) bool {
	return r.factories.Unregister(key)
}

// Has reports whether key is registered.
func (r *Registry[C]) Has(key string) bool {
	return r.factories.Has(key)
}

// Keys returns the registered keys in sorted order.
func (r *Registry[C]) Keys() []string {
	return r.factories.Keys()
}

// Len returns the number of registered keys.
func (r *Registry[C]) Len() int {
	return r.factories.Len()
}
