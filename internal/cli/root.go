// Package cli implements the shopfront command-line storefront. Each
// invocation opens the local state database, runs the startup reconciliation
// pass, performs one operation, and exits; durability between invocations
// comes entirely from the blob store.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shopfront-app/shopfront/pkg/logging"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	DB      string
	Catalog string
	Verbose bool
}

// NewRootCommand creates the root command for the shopfront CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "shopfront",
		Short: "shopfront - a storefront that lives in local storage",
		Long: `A storefront client that keeps your identity, cart, and order history
durable in a local database. Carts survive restarts, guest carts merge into
your account when you sign in, and a damaged session heals itself on startup.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.Verbose {
				logging.SetupWithLevel(slog.LevelDebug)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.DB, "db", defaultDBPath(), "path to the local state database")
	cmd.PersistentFlags().StringVar(&opts.Catalog, "catalog", "", "path to a YAML catalog file (built-in catalog if unset)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewCatalogCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewCartCommand(opts))
	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewWhoamiCommand(opts))
	cmd.AddCommand(NewCheckoutCommand(opts))
	cmd.AddCommand(NewOrdersCommand(opts))

	return cmd
}

func defaultDBPath() string {
	if v := os.Getenv("SHOPFRONT_DB"); v != "" {
		return v
	}
	return "./data/shopfront.db"
}
