// Package memory provides an in-memory implementation of storage.Blobs,
// used by tests and ephemeral runs. Nothing survives the process.
package memory

import (
	"context"

	"github.com/shopfront-app/shopfront/internal/storage"
)

// Ensure Store implements storage.Blobs
var _ storage.Blobs = (*Store)(nil)

// Store implements storage.Blobs over a plain map. The engine runs all
// operations on one goroutine, so no locking is needed.
type Store struct {
	blobs map[string]string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{blobs: make(map[string]string)}
}

// Get returns the blob stored under key, reporting absence via the boolean.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := s.blobs[key]
	return value, ok, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(_ context.Context, key, value string) error {
	s.blobs[key] = value
	return nil
}

// Delete removes the blob stored under key, if any.
func (s *Store) Delete(_ context.Context, key string) error {
	delete(s.blobs, key)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}
