package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopfront-app/shopfront/internal/pricing"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	products := cat.Products()
	if len(products) == 0 {
		t.Fatal("built-in catalog is empty")
	}
	for _, p := range products {
		if p.ID == "" || p.Name == "" {
			t.Errorf("incomplete product: %+v", p)
		}
		if p.Price <= 0 {
			t.Errorf("product %s has price %v", p.ID, p.Price)
		}
		if p.DisplayPrice != pricing.Format(p.Price) {
			t.Errorf("product %s display price %q does not match price %v", p.ID, p.DisplayPrice, p.Price)
		}
	}
}

func TestFind(t *testing.T) {
	cat := Default()

	p := cat.Find("mug-enamel")
	if p == nil || p.Name != "Enamel Camp Mug" {
		t.Errorf("Find(mug-enamel) = %+v", p)
	}
	if got := cat.Find("no-such-sku"); got != nil {
		t.Errorf("Find(no-such-sku) = %+v, want nil", got)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := `
- id: tea-green
  name: Green Tea
  price: 7.5
  category: pantry
  description: Loose leaf, 100g
- id: bowl-ceramic
  name: Ceramic Bowl
  price: 16
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(cat.Products()) != 2 {
		t.Fatalf("products = %d, want 2", len(cat.Products()))
	}

	tea := cat.Find("tea-green")
	if tea == nil {
		t.Fatal("tea-green missing")
	}
	if tea.Price != 7.5 || tea.DisplayPrice != "$7.50" || tea.Category != "pantry" {
		t.Errorf("tea = %+v", tea)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
