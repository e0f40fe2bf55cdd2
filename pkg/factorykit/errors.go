package factorykit

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/factorykit/pkg/factorykit/registry"
)

// Sentinel errors for registration and dispatch.
var (
	// ErrKeyNotFound indicates a key has no registered factory.
	// It is the same value as registry.ErrKeyNotFound.
	ErrKeyNotFound = registry.ErrKeyNotFound

	// ErrUnknownVariant indicates a client asked for a variant nobody registered.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrNoBuilderBound indicates Construct was called before SetBuilder.
	ErrNoBuilderBound = errors.New("no builder bound")

	// ErrNotImplemented indicates a Creator variant left a required operation out.
	ErrNotImplemented = errors.New("not implemented")
)

// KeyNotFoundError reports a resolve of an unregistered key.
type KeyNotFoundError = registry.KeyNotFoundError

// UnknownVariantError is what clients see when dispatching an unregistered key.
type UnknownVariantError struct {
	// Key is the variant that was requested.
	Key string
	// Err is the underlying *KeyNotFoundError.
	Err error
}

// Error implements the error interface.
func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant: %s", e.Key)
}

// Is reports ErrUnknownVariant as a match.
func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *UnknownVariantError) Unwrap() error {
	return e.Err
}

// NotImplementedError names the variant and operation that is missing.
type NotImplementedError struct {
	// Variant is the Creator variant, usually its registry key.
	Variant string
	// Op is the operation that has no implementation.
	Op string
}

// Error implements the error interface.
func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s: %s not implemented", e.Variant, e.Op)
}

// Unwrap returns ErrNotImplemented for errors.Is support.
func (e *NotImplementedError) Unwrap() error {
	return ErrNotImplemented
}

// DispatchError wraps a failure raised while driving a resolved Creator.
type DispatchError struct {
	// Key is the variant being driven.
	Key string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch %s: %v", e.Key, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *DispatchError) Unwrap() error {
	return e.Err
}
