// File: internal/tokenstore/storage.go
package tokenstore

import "errors"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("tokenstore: key not found")

// Storage is a persistent string key/value store, the client-side analogue of
// the browser's localStorage. Implementations must tolerate concurrent use
// from multiple processes pointed at the same state directory.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
