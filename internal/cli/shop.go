package cli

import (
	"context"
	"fmt"

	"github.com/shopfront-app/shopfront/internal/catalog"
	"github.com/shopfront-app/shopfront/internal/metrics"
	"github.com/shopfront-app/shopfront/internal/shop"
	"github.com/shopfront-app/shopfront/internal/storage/sqlite"
)

// openShop opens the blob store, builds the engine, and runs the startup
// reconciliation pass. The returned cleanup func closes the store.
func openShop(opts *RootOptions) (*shop.Shop, func(), error) {
	blobs, err := sqlite.New(opts.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open state database: %w", err)
	}
	sh := shop.New(blobs, metrics.New())
	if err := sh.Resolve(context.Background()); err != nil {
		blobs.Close()
		return nil, nil, err
	}
	return sh, func() { blobs.Close() }, nil
}

// loadCatalog returns the catalog the commands add products from.
func loadCatalog(opts *RootOptions) (*catalog.Catalog, error) {
	if opts.Catalog == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(opts.Catalog)
}
