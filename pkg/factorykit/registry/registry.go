package registry

import (
	"slices"
	"sync"
)

// Registry is a thread-safe store of values indexed by string key.
// The zero value is not usable; create one with New.
type Registry[V any] struct {
	name    string
	mu      sync.RWMutex
	entries map[string]V
}

// New creates an empty registry. The name identifies the registry in
// error messages and may be empty.
func New[V any](name string) *Registry[V] {
	return &Registry[V]{
		name:    name,
		entries: make(map[string]V),
	}
}

// Name returns the name the registry was created with.
func (r *Registry[V]) Name() string {
	return r.name
}

// Register stores value under key, replacing any previous value.
func (r *Registry[V]) Register(key string, value V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = value
}

// RegisterMany stores every entry of the map. Existing keys are replaced.
func (r *Registry[V]) RegisterMany(entries map[string]V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range entries {
		r.entries[k] = v
	}
}

// Lookup returns the value for key and whether it exists.
func (r *Registry[V]) Lookup(key string) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	return v, ok
}

// Resolve returns the value for key, or a *KeyNotFoundError if the key is
// not registered.
func (r *Registry[V]) Resolve(key string) (V, error) {
	v, ok := r.Lookup(key)
	if !ok {
		var zero V
		return zero, &KeyNotFoundError{Registry: r.name, Key: key}
	}
	return v, nil
}

// Has returns true if key is registered.
func (r *Registry[V]) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Unregister removes key and reports whether it was present.
func (r *Registry[V]) Unregister(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[key]
	delete(r.entries, key)
	return ok
}

// Keys returns all registered keys in sorted order.
func (r *Registry[V]) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	slices.Sort(keys)
	return keys
}

// Len returns the number of registered keys.
func (r *Registry[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
