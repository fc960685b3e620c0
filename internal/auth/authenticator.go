// Package auth implements credential handling for the storefront. The
// persistence engine never checks credentials itself: it consumes the
// account record an Authenticator produces and only then synchronizes carts.
package auth

import (
	"context"

	"github.com/shopfront-app/shopfront/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password,
// passkeys, OAuth, etc.) without changing the callers.
type Authenticator interface {
	// Register creates a new account with the given email and credential.
	// Returns the created account or an error if registration fails.
	Register(ctx context.Context, email, name, credential string) (*models.User, error)

	// Authenticate verifies the shopper's credentials and returns the
	// account record if successful.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the
	// implementation's requirements.
	ValidateCredential(credential string) error
}

// Ensure PasswordAuthenticator implements Authenticator
var _ Authenticator = (*PasswordAuthenticator)(nil)
