// Package state implements the three durable state stores the engine
// reconciles: the account directory, the single-slot session, and the guest
// cart. Each store owns one blob key and its recovery policy for corrupt
// text; everything else (merging, repair, checkout) lives in the shop
// package.
package state

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/shopfront-app/shopfront/internal/codec"
	"github.com/shopfront-app/shopfront/internal/metrics"
	"github.com/shopfront-app/shopfront/internal/models"
	"github.com/shopfront-app/shopfront/internal/storage"
)

// Directory is the durable mapping from email to account record and the sole
// source of truth for account data. Every account mutation must be written
// here.
type Directory struct {
	blobs   storage.Blobs
	metrics *metrics.Metrics
}

// NewDirectory creates a Directory over the given blob store.
func NewDirectory(blobs storage.Blobs, m *metrics.Metrics) *Directory {
	return &Directory{blobs: blobs, metrics: m}
}

// Lookup returns the account stored under email, or nil when no entry
// matches. It tries an exact key match first, then retries case-insensitively
// against every stored key. If the directory somehow holds several keys
// differing only by case, the lexicographically smallest matching key wins,
// so repeated lookups are deterministic.
func (d *Directory) Lookup(ctx context.Context, email string) (*models.User, error) {
	dir, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	if u, ok := dir[email]; ok {
		return u.Clone(), nil
	}

	lower := strings.ToLower(email)
	keys := make([]string, 0, len(dir))
	for k := range dir {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.ToLower(k) == lower {
			return dir[k].Clone(), nil
		}
	}
	return nil, nil
}

// Upsert writes user under its email exactly as submitted. Key casing is
// preserved: a caller that registers "Alice@X.com" and later writes
// "alice@x.com" creates two entries. Lookup papers over that on read, but
// Upsert never normalizes.
func (d *Directory) Upsert(ctx context.Context, user *models.User) error {
	dir, err := d.load(ctx)
	if err != nil {
		return err
	}
	dir[user.Email] = user.Clone()
	return d.persist(ctx, dir)
}

// load decodes the whole directory. A corrupt blob is reported and read as
// an empty directory so account lookup stays available; note this also means
// a corrupt directory read can let the startup repair path run over real
// data.
func (d *Directory) load(ctx context.Context) (map[string]*models.User, error) {
	text, ok, err := d.blobs.Get(ctx, storage.KeyUsersDB)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	if !ok {
		return make(map[string]*models.User), nil
	}
	dir, err := codec.DecodeDirectory(text)
	if err != nil {
		slog.Warn("Directory blob is corrupt, treating as empty", "error", err)
		d.metrics.BlobCorrupt(storage.KeyUsersDB)
		return make(map[string]*models.User), nil
	}
	return dir, nil
}

// persist encodes and writes the whole directory.
func (d *Directory) persist(ctx context.Context, dir map[string]*models.User) error {
	text, err := codec.EncodeDirectory(dir)
	if err != nil {
		return err
	}
	if err := d.blobs.Put(ctx, storage.KeyUsersDB, text); err != nil {
		return fmt.Errorf("failed to persist directory: %w", err)
	}
	return nil
}
