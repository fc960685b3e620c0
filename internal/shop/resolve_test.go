package shop

import (
	"context"
	"testing"

	"github.com/shopfront-app/shopfront/internal/metrics"
	"github.com/shopfront-app/shopfront/internal/models"
	"github.com/shopfront-app/shopfront/internal/state"
	"github.com/shopfront-app/shopfront/internal/storage"
	"github.com/shopfront-app/shopfront/internal/storage/memory"
)

func TestResolveNoSessionAdoptsGuestCart(t *testing.T) {
	ctx := context.Background()
	blobs := memory.New()
	if err := state.NewGuestCart(blobs, nil).Save(ctx, []models.CartItem{product("p1", 10)}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s := New(blobs, metrics.New())
	if err := s.Resolve(ctx); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if s.CurrentUser() != nil {
		t.Errorf("got active user %+v, want guest", s.CurrentUser())
	}
	wantCart(t, s.Cart(), "p1")
}

func TestResolveRepairsMissingDirectoryEntry(t *testing.T) {
	ctx := context.Background()
	blobs := memory.New()

	// Valid session, empty directory: partial storage loss.
	snapshot := &models.User{
		Name:  "Alice",
		Email: "alice@x.com",
		Cart:  []models.CartItem{product("p1", 10)},
	}
	if err := state.NewSession(blobs, nil).Activate(ctx, snapshot); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	s := New(blobs, metrics.New())
	if err := s.Resolve(ctx); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	user := s.CurrentUser()
	if user == nil || user.Email != "alice@x.com" || user.Name != "Alice" {
		t.Fatalf("active user = %+v, want the session snapshot", user)
	}
	wantCart(t, s.Cart(), "p1")

	// The snapshot was written back into the directory as a repair seed.
	entry, err := s.Directory().Lookup(ctx, "alice@x.com")
	if err != nil || entry == nil {
		t.Fatalf("Lookup = (%+v, %v), want the repaired entry", entry, err)
	}
	if entry.Name != "Alice" {
		t.Errorf("repaired entry = %+v, want it equal to the snapshot", entry)
	}
	wantCart(t, entry.Cart, "p1")
}

func TestResolveDirectoryBeatsSession(t *testing.T) {
	ctx := context.Background()
	blobs := memory.New()

	// The directory entry and the session snapshot disagree.
	dir := state.NewDirectory(blobs, nil)
	if err := dir.Upsert(ctx, &models.User{
		Name:  "Alice",
		Email: "alice@x.com",
		Cart:  []models.CartItem{product("p2", 25.5), product("p3", 5)},
	}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := state.NewSession(blobs, nil).Activate(ctx, &models.User{
		Name:  "Stale Alice",
		Email: "alice@x.com",
		Cart:  []models.CartItem{product("p1", 10)},
	}); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	s := New(blobs, metrics.New())
	if err := s.Resolve(ctx); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	user := s.CurrentUser()
	if user == nil || user.Name != "Alice" {
		t.Fatalf("active user = %+v, want the directory entry", user)
	}
	wantCart(t, s.Cart(), "p2", "p3")

	// The stale snapshot was overwritten with the authoritative entry.
	snapshot, err := state.NewSession(blobs, nil).Restore(ctx)
	if err != nil || snapshot == nil {
		t.Fatalf("Restore = (%+v, %v)", snapshot, err)
	}
	if snapshot.Name != "Alice" {
		t.Errorf("session snapshot = %+v, want it rewritten from the directory", snapshot)
	}
}

func TestResolveMatchesSessionEmailCaseInsensitively(t *testing.T) {
	ctx := context.Background()
	blobs := memory.New()

	if err := state.NewDirectory(blobs, nil).Upsert(ctx, &models.User{
		Name:  "Alice",
		Email: "Alice@X.com",
	}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := state.NewSession(blobs, nil).Activate(ctx, &models.User{
		Email: "alice@x.com",
	}); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	s := New(blobs, metrics.New())
	if err := s.Resolve(ctx); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	user := s.CurrentUser()
	if user == nil || user.Email != "Alice@X.com" {
		t.Errorf("active user = %+v, want the Alice@X.com directory entry", user)
	}
}

func TestResolveCorruptSessionFallsBackToGuest(t *testing.T) {
	ctx := context.Background()
	blobs := memory.New()

	if err := blobs.Put(ctx, storage.KeySession, "{broken"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := state.NewGuestCart(blobs, nil).Save(ctx, []models.CartItem{product("p1", 10)}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s := New(blobs, metrics.New())
	if err := s.Resolve(ctx); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if s.CurrentUser() != nil {
		t.Errorf("got active user %+v, want guest after corrupt session", s.CurrentUser())
	}
	wantCart(t, s.Cart(), "p1")
	if _, ok, _ := blobs.Get(ctx, storage.KeySession); ok {
		t.Error("corrupt session blob was not cleared")
	}
}
