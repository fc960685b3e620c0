package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopfront-app/shopfront/internal/models"
	"github.com/shopfront-app/shopfront/internal/pricing"
)

// NewCheckoutCommand creates the checkout command.
func NewCheckoutCommand(opts *RootOptions) *cobra.Command {
	var delivery models.DeliveryDetails

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Turn the cart into an order",
		Long: `Turn the current cart into an order. Signed-in shoppers get the order
appended to their history; guest orders are shown once and not retained.
An empty cart checks out to nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, cleanup, err := openShop(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			order, err := sh.Checkout(context.Background(), delivery)
			if err != nil {
				return err
			}
			if order == nil {
				fmt.Println("Cart is empty; nothing to check out.")
				return nil
			}

			fmt.Printf("Order %s placed: %d item(s), total %s\n",
				order.ID, len(order.Items), pricing.Format(order.Total))
			if sh.CurrentUser() == nil {
				fmt.Println("Guest orders are not saved. Keep this order ID for your records.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&delivery.FullName, "name", "", "recipient full name")
	cmd.Flags().StringVar(&delivery.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&delivery.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&delivery.Address, "address", "", "street address")
	cmd.Flags().StringVar(&delivery.City, "city", "", "city")
	cmd.Flags().StringVar(&delivery.PostalCode, "postal", "", "postal code")
	return cmd
}

// NewOrdersCommand creates the orders command.
func NewOrdersCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Show the active account's order history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, cleanup, err := openShop(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			if sh.CurrentUser() == nil {
				fmt.Println("Sign in to see order history; guest orders are not retained.")
				return nil
			}
			orders := sh.Orders()
			if len(orders) == 0 {
				fmt.Println("No orders yet.")
				return nil
			}
			for _, o := range orders {
				fmt.Printf("%s  %s  %-10s %8s  %d item(s)\n",
					o.ID, o.CreatedAt, o.Status, pricing.Format(o.Total), len(o.Items))
			}
			return nil
		},
	}
}
