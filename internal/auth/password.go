package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shopfront-app/shopfront/internal/models"
	"github.com/shopfront-app/shopfront/internal/state"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailExists        = errors.New("email already registered")
)

// PasswordAuthenticator implements password-based authentication using
// bcrypt hashes stored on the account record in the directory.
type PasswordAuthenticator struct {
	directory *state.Directory
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(directory *state.Directory) *PasswordAuthenticator {
	return &PasswordAuthenticator{directory: directory}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new account with a hashed password and writes it to the
// directory. Uniqueness is checked with the directory's case-insensitive
// lookup, so "Alice@X.com" cannot register again as "alice@x.com".
func (a *PasswordAuthenticator) Register(ctx context.Context, email, name, credential string) (*models.User, error) {
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	existing, err := a.directory.Lookup(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := a.directory.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return user, nil
}

// Authenticate verifies the email and password, returning the account record
// if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, email, credential string) (*models.User, error) {
	user, err := a.directory.Lookup(ctx, email)
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}
	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
