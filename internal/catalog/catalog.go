// Package catalog provides the product list shoppers add to their carts.
// The catalog is presentation-side data: the persistence engine copies
// products by value and never reads the catalog back.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shopfront-app/shopfront/internal/models"
	"github.com/shopfront-app/shopfront/internal/pricing"
)

// Catalog is an in-memory product list.
type Catalog struct {
	products []models.Product
}

// Default returns the built-in seed catalog.
func Default() *Catalog {
	return &Catalog{products: seed}
}

// fileProduct is the YAML shape of one catalog entry.
type fileProduct struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Price       float64 `yaml:"price"`
	Category    string  `yaml:"category"`
	Description string  `yaml:"description"`
	Image       string  `yaml:"image"`
}

// LoadFile reads a YAML catalog file: a list of entries with id, name,
// price, and optional category, description, and image. Display prices are
// derived from the numeric price.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var entries []fileProduct
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	products := make([]models.Product, len(entries))
	for i, e := range entries {
		products[i] = models.Product{
			ID:           e.ID,
			Name:         e.Name,
			Price:        e.Price,
			DisplayPrice: pricing.Format(e.Price),
			Category:     e.Category,
			Description:  e.Description,
			Image:        e.Image,
		}
	}
	return &Catalog{products: products}, nil
}

// Products returns all catalog entries.
func (c *Catalog) Products() []models.Product {
	return c.products
}

// Find returns the product with the given ID, or nil if the catalog has no
// such entry.
func (c *Catalog) Find(id string) *models.Product {
	for i := range c.products {
		if c.products[i].ID == id {
			p := c.products[i]
			return &p
		}
	}
	return nil
}

// seed is the built-in catalog used when no catalog file is supplied.
var seed = []models.Product{
	{ID: "mug-enamel", Name: "Enamel Camp Mug", Price: 14.50, DisplayPrice: "$14.50", Category: "kitchen", Description: "Speckled enamel mug, 350ml."},
	{ID: "notebook-a5", Name: "A5 Dot-Grid Notebook", Price: 9.00, DisplayPrice: "$9.00", Category: "stationery", Description: "96 pages, lay-flat binding."},
	{ID: "pen-gel", Name: "Gel Pen 0.5mm", Price: 3.25, DisplayPrice: "$3.25", Category: "stationery"},
	{ID: "tote-canvas", Name: "Canvas Tote Bag", Price: 18.00, DisplayPrice: "$18.00", Category: "bags", Description: "Heavyweight cotton canvas."},
	{ID: "candle-cedar", Name: "Cedarwood Candle", Price: 22.75, DisplayPrice: "$22.75", Category: "home", Description: "Soy wax, 40h burn time."},
	{ID: "socks-wool", Name: "Merino Wool Socks", Price: 12.90, DisplayPrice: "$12.90", Category: "apparel"},
}
