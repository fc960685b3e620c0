package shop

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shopfront-app/shopfront/internal/models"
)

// Login activates an authenticated account and merges the pre-login live
// cart into it. Credential checking happened before this call; Login only
// synchronizes state.
//
// The directory entry for the account is authoritative; the record produced
// by authentication is used only when the directory has none. The merged
// cart is the account's stored cart followed by the pre-login live cart, in
// order, with no deduplication. It is written to the session and the
// directory together, and the guest cart slot is cleared.
func (s *Shop) Login(ctx context.Context, user *models.User) error {
	entry, err := s.directory.Lookup(ctx, user.Email)
	if err != nil {
		return err
	}
	account := entry
	if account == nil {
		account = user.Clone()
	}

	merged := make([]models.CartItem, 0, len(account.Cart)+len(s.cart))
	merged = append(merged, account.Cart...)
	merged = append(merged, s.cart...)
	account.Cart = merged

	s.user = account
	s.cart = slices.Clone(merged)
	if err := s.persistUser(ctx); err != nil {
		return err
	}
	if err := s.guest.Clear(ctx); err != nil {
		return err
	}
	s.metrics.CartMerged()
	slog.Info("Cart synchronized at login", "email", account.Email, "items", len(merged))
	return nil
}

// Logout clears the session and empties the live cart. The account's cart
// stays as last persisted in the directory: signing out resets this device,
// not the account. Signing out while already a guest changes nothing.
func (s *Shop) Logout(ctx context.Context) error {
	if s.user == nil {
		return nil
	}
	email := s.user.Email
	if err := s.session.Clear(ctx); err != nil {
		return err
	}
	s.user = nil
	s.cart = nil
	slog.Info("Signed out", "email", email)
	return nil
}
