package state

import (
	"context"
	"reflect"
	"testing"

	"github.com/shopfront-app/shopfront/internal/models"
	"github.com/shopfront-app/shopfront/internal/storage"
	"github.com/shopfront-app/shopfront/internal/storage/memory"
)

func TestGuestCartSaveLoad(t *testing.T) {
	ctx := context.Background()
	guest := NewGuestCart(memory.New(), nil)

	items := []models.CartItem{
		{ID: "p2", Price: 25.5},
		{ID: "p1", Price: 10},
		{ID: "p2", Price: 25.5}, // order and duplicates must survive
	}
	if err := guest.Save(ctx, items); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := guest.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, items) {
		t.Errorf("loaded cart mismatch:\n got:  %+v\n want: %+v", got, items)
	}
}

func TestGuestCartLoadAbsent(t *testing.T) {
	guest := NewGuestCart(memory.New(), nil)

	got, err := guest.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %+v, want empty cart", got)
	}
}

func TestGuestCartCorruptBlobKept(t *testing.T) {
	ctx := context.Background()
	blobs := memory.New()
	guest := NewGuestCart(blobs, nil)

	const garbage = "[{broken"
	if err := blobs.Put(ctx, storage.KeyGuestCart, garbage); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := guest.Load(ctx)
	if err != nil {
		t.Fatalf("Load on corrupt cart should not fail, got: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %+v, want empty cart", got)
	}

	// The stored text stays in place so manual recovery remains possible.
	text, ok, _ := blobs.Get(ctx, storage.KeyGuestCart)
	if !ok || text != garbage {
		t.Errorf("corrupt blob = (%q, %v), want it untouched", text, ok)
	}
}

func TestGuestCartClear(t *testing.T) {
	ctx := context.Background()
	blobs := memory.New()
	guest := NewGuestCart(blobs, nil)

	if err := guest.Save(ctx, []models.CartItem{{ID: "p1"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := guest.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok, _ := blobs.Get(ctx, storage.KeyGuestCart); ok {
		t.Error("guest cart blob still present after Clear")
	}
}
