// Package ports defines the persistence contracts between the application
// core and infrastructure adapters, enabling dependency inversion and
// testability.
package ports

import "context"

// Collection names used by the repositories.
const (
	UsersCollection   = "users"
	OrdersCollection  = "orders"
	RatingsCollection = "ratings"
)

// Store is the key-value backed durable storage underneath the repositories.
// Each collection is stored as a single opaque blob; repositories read,
// modify and replace whole collections. Implementations must make each call
// atomic from the caller's perspective and report medium failures as
// errs.ErrStorageUnavailable — callers treat that as non-fatal and surface a
// user-facing error instead of crashing.
type Store interface {
	// GetCollection returns the raw contents of a collection.
	// A collection that was never written returns (nil, nil).
	GetCollection(ctx context.Context, name string) ([]byte, error)

	// PutCollection replaces the entire contents of a collection.
	PutCollection(ctx context.Context, name string, data []byte) error

	// NextID mints a unique opaque identifier string.
	NextID() string

	// Close releases the underlying storage medium.
	Close() error
}
