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

// GuestCart holds the cart of an unauthenticated visitor. It exists only
// while no session is active.
type GuestCart struct {
	blobs   storage.Blobs
	metrics *metrics.Metrics
}

// NewGuestCart creates a GuestCart store over the given blob store.
func NewGuestCart(blobs storage.Blobs, m *metrics.Metrics) *GuestCart {
	return &GuestCart{blobs: blobs, metrics: m}
}

// Load returns the guest cart, empty when the blob is absent. A corrupt blob
// is reported and read as empty, but the stored text is left in place so
// manual recovery stays possible.
func (g *GuestCart) Load(ctx context.Context) ([]models.CartItem, error) {
	text, ok, err := g.blobs.Get(ctx, storage.KeyGuestCart)
	if err != nil {
		return nil, fmt.Errorf("failed to read guest cart: %w", err)
	}
	if !ok {
		return nil, nil
	}
	items, err := codec.DecodeCart(text)
	if err != nil {
		slog.Warn("Guest cart blob is corrupt, treating as empty", "error", err)
		g.metrics.BlobCorrupt(storage.KeyGuestCart)
		return nil, nil
	}
	return items, nil
}

// Save replaces the stored guest cart.
func (g *GuestCart) Save(ctx context.Context, items []models.CartItem) error {
	text, err := codec.EncodeCart(items)
	if err != nil {
		return err
	}
	if err := g.blobs.Put(ctx, storage.KeyGuestCart, text); err != nil {
		return fmt.Errorf("failed to persist guest cart: %w", err)
	}
	return nil
}

// Clear removes the stored guest cart.
func (g *GuestCart) Clear(ctx context.Context) error {
	if err := g.blobs.Delete(ctx, storage.KeyGuestCart); err != nil {
		return fmt.Errorf("failed to clear guest cart: %w", err)
	}
	return nil
}
