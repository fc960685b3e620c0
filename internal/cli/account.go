package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopfront-app/shopfront/internal/auth"
)

// NewRegisterCommand creates the register command.
func NewRegisterCommand(opts *RootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "register <email> <password>",
		Short: "Create an account and sign in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, cleanup, err := openShop(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := context.Background()
			authenticator := auth.NewPasswordAuthenticator(sh.Directory())
			user, err := authenticator.Register(ctx, args[0], name, args[1])
			if err != nil {
				return err
			}
			if err := sh.Login(ctx, user); err != nil {
				return err
			}
			fmt.Printf("Registered and signed in as %s.\n", user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name for the account")
	return cmd
}

// NewLoginCommand creates the login command.
func NewLoginCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Sign in and merge the guest cart into the account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, cleanup, err := openShop(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := context.Background()
			authenticator := auth.NewPasswordAuthenticator(sh.Directory())
			user, err := authenticator.Authenticate(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			if err := sh.Login(ctx, user); err != nil {
				return err
			}
			fmt.Printf("Signed in as %s. Cart has %d item(s).\n", user.Email, len(sh.Cart()))
			return nil
		},
	}
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out (the account keeps its cart)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, cleanup, err := openShop(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			user := sh.CurrentUser()
			if user == nil {
				fmt.Println("Not signed in.")
				return nil
			}
			if err := sh.Logout(context.Background()); err != nil {
				return err
			}
			fmt.Printf("Signed out of %s.\n", user.Email)
			return nil
		},
	}
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, cleanup, err := openShop(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			user := sh.CurrentUser()
			if user == nil {
				fmt.Println("Browsing as guest.")
				return nil
			}
			fmt.Printf("%s <%s>: %d item(s) in cart, %d order(s)\n",
				user.Name, user.Email, len(user.Cart), len(user.Orders))
			return nil
		},
	}
}
