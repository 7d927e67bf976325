// Package localstate persists small client-side key/value slots (the durable
// session record) in a local SQLite database.
package localstate

import "context"

// Repository is a key/value slot store.
//
// Get returns (nil, nil) when the key is absent, so callers can distinguish
// "missing" from a read failure without a sentinel error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
