// Package prototype creates objects by copying registered instances.
//
// A Manager is an instance-scoped registry of prototypes. Clone copies a
// prototype, deep or shallow as the prototype's Cloner implementation
// decides, then applies overrides to the copy only.
package prototype

import (
	"fmt"

	"github.com/randalmurphal/factorykit/pkg/factorykit/registry"
)

// Cloner is implemented by types that can copy themselves.
//
// A deep clone shares no mutable state with the receiver. A shallow clone
// copies the top-level value and may share slices, maps and pointers.
type Cloner[T any] interface {
	Clone(deep bool) T
}

// Override modifies a clone before Clone returns it.
type Override[T any] func(T) T

// Manager holds named prototypes. It is safe for concurrent use.
type Manager[T Cloner[T]] struct {
	protos *registry.Registry[T]
}

// NewManager creates an empty Manager. name appears in error messages.
func NewManager[T Cloner[T]](name string) *Manager[T] {
	return &Manager[T]{protos: registry.New[T](name)}
}

// Register stores obj under name, replacing any previous prototype.
func (m *Manager[T]) Register(name string, obj T) {
	m.protos.Register(name, obj)
}

// Unregister removes name. Unknown names fail with *registry.KeyNotFoundError.
func (m *Manager[T]) Unregister(name string) error {
	if !m.protos.Unregister(name) {
		return &registry.KeyNotFoundError{Registry: m.protos.Name(), Key: name}
	}
	return nil
}

// Names returns the registered names in sorted order.
func (m *Manager[T]) Names() []string {
	return m.protos.Keys()
}

// Clone copies the prototype registered under name and applies overrides
// in order. The stored prototype is never modified by an override when
// deep is true; with deep false, overrides that write through shared
// references are visible to the prototype.
func (m *Manager[T]) Clone(name string, deep bool, overrides ...Override[T]) (T, error) {
	proto, err := m.protos.Resolve(name)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("clone: %w", err)
	}

	obj := proto.Clone(deep)
	for _, o := range overrides {
		obj = o(obj)
	}
	return obj, nil
}
