// Package registry provides a generic thread-safe store of values indexed by
// string key.
//
// It is the storage primitive underneath every registry in factorykit:
// Creator factories, prototypes and document formats all live in a
// Registry. A single sync.RWMutex guards every read and write, so
// registration may happen concurrently with lookups.
//
// # Basic Usage
//
//	formats := registry.New[Format]("formats")
//	formats.Register("json", jsonFormat)
//
//	f, err := formats.Resolve("json")
//	if err != nil {
//	    // err is a *registry.KeyNotFoundError
//	}
//
// # Overwrite Semantics
//
// Register never fails. Registering a key that already exists replaces the
// previous value (last write wins). Callers that need strict uniqueness can
// check Has first.
//
// # Missing Keys
//
// Resolve reports a miss as *KeyNotFoundError, which carries the offending
// key and unwraps to ErrKeyNotFound:
//
//	_, err := formats.Resolve("csv")
//	var knf *registry.KeyNotFoundError
//	if errors.As(err, &knf) {
//	    fmt.Println(knf.Key) // csv
//	}
//
// A failed Resolve never mutates the registry.
//
// # Batch Registration
//
// RegisterMany binds several keys under a single lock, so readers see
// either none or all of them.
package registry
