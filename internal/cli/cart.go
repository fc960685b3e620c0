package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopfront-app/shopfront/internal/pricing"
)

// NewAddCommand creates the add command.
func NewAddCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Long: `Add one unit of a catalog product to the cart. Adding the same product
again adds another unit; the cart keeps one line per unit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(opts)
			if err != nil {
				return err
			}
			product := cat.Find(args[0])
			if product == nil {
				return fmt.Errorf("no such product: %s", args[0])
			}

			sh, cleanup, err := openShop(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := sh.AddToCart(context.Background(), *product); err != nil {
				return err
			}
			fmt.Printf("Added %s (%s). Cart has %d item(s).\n",
				product.Name, product.DisplayPrice, len(sh.Cart()))
			return nil
		},
	}
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove one unit of a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, cleanup, err := openShop(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			before := len(sh.Cart())
			if err := sh.RemoveFromCart(context.Background(), args[0]); err != nil {
				return err
			}
			if len(sh.Cart()) == before {
				fmt.Printf("Product %s is not in the cart.\n", args[0])
				return nil
			}
			fmt.Printf("Removed one unit of %s. Cart has %d item(s).\n", args[0], len(sh.Cart()))
			return nil
		},
	}
}

// NewCartCommand creates the cart command.
func NewCartCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cart",
		Short: "Show the current cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, cleanup, err := openShop(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			items := sh.Cart()
			if len(items) == 0 {
				fmt.Println("Cart is empty.")
				return nil
			}
			for _, item := range items {
				fmt.Printf("%-14s %-24s %8s\n", item.ID, item.Name, item.DisplayPrice)
			}
			fmt.Printf("Total: %s (%d item(s))\n", pricing.Format(pricing.Total(items)), len(items))
			return nil
		},
	}
}
