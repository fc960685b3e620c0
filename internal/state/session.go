package state

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopfront-app/shopfront/internal/codec"
	"github.com/shopfront-app/shopfront/internal/metrics"
	"github.com/shopfront-app/shopfront/internal/models"
	"github.com/shopfront-app/shopfront/internal/storage"
)

// Session is the single-slot store holding the currently-authenticated
// shopper's denormalized snapshot. It is what survives a restart and enables
// auto-login.
type Session struct {
	blobs   storage.Blobs
	metrics *metrics.Metrics
}

// NewSession creates a Session store over the given blob store.
func NewSession(blobs storage.Blobs, m *metrics.Metrics) *Session {
	return &Session{blobs: blobs, metrics: m}
}

// Restore returns the persisted snapshot, or nil when nobody is signed in.
// A corrupt blob fails closed: the slot is cleared and the session reported
// absent. A snapshot whose account is missing from the directory is NOT
// cleared here; startup reconciliation decides what happens to it.
func (s *Session) Restore(ctx context.Context) (*models.User, error) {
	text, ok, err := s.blobs.Get(ctx, storage.KeySession)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	user, err := codec.DecodeUser(text)
	if err != nil {
		slog.Warn("Session blob is corrupt, clearing", "error", err)
		s.metrics.BlobCorrupt(storage.KeySession)
		if err := s.blobs.Delete(ctx, storage.KeySession); err != nil {
			return nil, fmt.Errorf("failed to clear corrupt session: %w", err)
		}
		return nil, nil
	}
	return user, nil
}

// Activate stores user as the active session snapshot.
func (s *Session) Activate(ctx context.Context, user *models.User) error {
	text, err := codec.EncodeUser(user)
	if err != nil {
		return err
	}
	if err := s.blobs.Put(ctx, storage.KeySession, text); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Clear removes the session slot.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.blobs.Delete(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
