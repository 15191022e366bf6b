package types

import "errors"

// KeyValue is the flat string-to-string storage capability the persistence
// core runs on. Implementations must preserve insertion order across keys:
// re-setting an existing key keeps its original position. The in-memory and
// SQLite implementations live in internal/kv.
type KeyValue interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent; err is reserved for backend faults, not missing keys.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, inserting or overwriting.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Keys returns a snapshot of all keys in insertion order.
	Keys() ([]string, error)

	// Close releases backend resources. Idempotent: multiple calls succeed.
	// After Close, other operations return ErrStoreClosed.
	Close() error
}

// ErrStoreClosed is returned by KeyValue operations after Close.
var ErrStoreClosed = errors.New("key-value store is closed")

// Entity lookup errors, shared by the local store and the remote gateway.
var (
	ErrNotFound        = errors.New("entity not found")
	ErrMalformedRecord = errors.New("malformed stored record")
)
