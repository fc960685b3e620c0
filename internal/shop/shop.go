// Package shop implements the storefront engine: the live cart, the active
// account, startup reconciliation, login/logout cart synchronization, and
// checkout. It is the only package that coordinates writes across the three
// state stores.
package shop

import (
	"slices"

	"github.com/shopfront-app/shopfront/internal/metrics"
	"github.com/shopfront-app/shopfront/internal/models"
	"github.com/shopfront-app/shopfront/internal/state"
	"github.com/shopfront-app/shopfront/internal/storage"
)

// Shop owns the live cart and the active account and keeps both in step with
// durable storage. Exactly one of {active account, guest cart} governs the
// live cart at any time. All methods run on a single goroutine; persistence
// completes before each mutating method returns.
type Shop struct {
	directory *state.Directory
	session   *state.Session
	guest     *state.GuestCart
	metrics   *metrics.Metrics

	// user is the active account snapshot; nil while browsing as a guest.
	user *models.User

	// cart is the live cart shown to the UI. Never aliases stored state.
	cart []models.CartItem
}

// New builds a Shop over the given blob store. Call Resolve before any other
// operation; it establishes which store governs the live cart.
func New(blobs storage.Blobs, m *metrics.Metrics) *Shop {
	return &Shop{
		directory: state.NewDirectory(blobs, m),
		session:   state.NewSession(blobs, m),
		guest:     state.NewGuestCart(blobs, m),
		metrics:   m,
	}
}

// Directory exposes the account directory for collaborators such as the
// authenticator.
func (s *Shop) Directory() *state.Directory {
	return s.directory
}

// CurrentUser returns a copy of the active account, or nil for a guest.
func (s *Shop) CurrentUser() *models.User {
	return s.user.Clone()
}

// Cart returns a copy of the live cart, in insertion order.
func (s *Shop) Cart() []models.CartItem {
	return slices.Clone(s.cart)
}

// Orders returns a copy of the active account's order history, oldest first.
// Guests have no history.
func (s *Shop) Orders() []models.Order {
	if s.user == nil {
		return nil
	}
	return s.user.Clone().Orders
}
