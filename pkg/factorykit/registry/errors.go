package registry

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound indicates a key has no registered value.
var ErrKeyNotFound = errors.New("key not found")

// KeyNotFoundError reports a lookup of an unregistered key.
type KeyNotFoundError struct {
	// Registry is the name of the registry that was consulted.
	Registry string
	// Key is the key that was not found.
	Key string
}

// Error implements the error interface.
func (e *KeyNotFoundError) Error() string {
	if e.Registry == "" {
		return fmt.Sprintf("key %q not found", e.Key)
	}
	return fmt.Sprintf("%s: key %q not found", e.Registry, e.Key)
}

// Unwrap returns ErrKeyNotFound for errors.Is support.
func (e *KeyNotFoundError) Unwrap() error {
	return ErrKeyNotFound
}
