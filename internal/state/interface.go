// internal/state/interface.go
package state

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Get when a key holds no value.
var ErrNotFound = errors.New("key not found")

// ErrClosed is returned by Memory once it has been closed.
var ErrClosed = errors.New("store is closed")

// Store is the key-value gateway collections are persisted to.
// Values are opaque bytes; a Set replaces the whole value of a key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error // not used by the app; part of the gateway surface
	Close() error
}

// Verify implementations satisfy Store at compile time.
var (
	_ Store = (*Manager)(nil)
	_ Store = (*RedisStore)(nil)
	_ Store = (*Memory)(nil)
)
