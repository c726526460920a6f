// Package localstore provides durable key-value storage for client state,
// the desktop analog of a browser's origin-scoped local storage.
package localstore

import "context"

// Store is the persistence surface the client containers write through.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set writes the value, overwriting any previous entry.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the entry. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
