// Package pebblestore provides the durable key-value implementation of the
// Persistent Store contract on top of PebbleDB, plus the repository
// implementations layered on it.
//
// Each collection (users, orders, ratings) is stored under a single key as a
// JSON array blob. Repositories follow a read-modify-write-whole-collection
// pattern; a store-level mutex keeps each call atomic, and the order
// repository adds a per-record version check so a stale aggregate cannot
// silently overwrite a newer one.
package pebblestore

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"baleconnect/internal/pkg/errs"

	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"
)

const collectionKeyPrefix = "collection/"

// PebbleStore implements ports.Store using an embedded PebbleDB database.
type PebbleStore struct {
	mu sync.Mutex
	db *pebble.DB
}

// NewPebbleStore opens (or creates) the database under dir.
func NewPebbleStore(dir string) (*PebbleStore, error) {
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, errs.NewStorageUnavailableError("open "+dir, err)
	}
	return &PebbleStore{db: db}, nil
}

// GetCollection returns the raw contents of a collection, or (nil, nil) if
// the collection was never written.
func (s *PebbleStore) GetCollection(_ context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, closer, err := s.db.Get([]byte(collectionKeyPrefix + name))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, nil
		}
		return nil, errs.NewStorageUnavailableError("get "+name, err)
	}
	defer closer.Close()

	// The value is only valid until the closer is released.
	data := append([]byte(nil), value...)
	return data, nil
}

// PutCollection replaces the entire contents of a collection.
func (s *PebbleStore) PutCollection(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Set([]byte(collectionKeyPrefix+name), data, pebble.Sync); err != nil {
		return errs.NewStorageUnavailableError("put "+name, err)
	}
	return nil
}

// NextID mints a unique opaque identifier.
func (s *PebbleStore) NextID() string {
	return uuid.NewString()
}

// Close releases the underlying database.
func (s *PebbleStore) Close() error {
	return s.db.Close()
}
