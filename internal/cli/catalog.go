package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the products available to add",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(opts)
			if err != nil {
				return err
			}
			for _, p := range cat.Products() {
				fmt.Printf("%-14s %-24s %8s  %s\n", p.ID, p.Name, p.DisplayPrice, p.Category)
			}
			return nil
		},
	}
}
