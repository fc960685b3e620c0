package shop

import (
	"context"
	"slices"

	"github.com/shopfront-app/shopfront/internal/models"
)

// AddToCart appends product to the live cart and persists the change.
// Duplicates are kept: adding the same product twice yields two entries.
func (s *Shop) AddToCart(ctx context.Context, product models.Product) error {
	s.cart = append(s.cart, product)
	return s.persistCart(ctx)
}

// RemoveFromCart removes the first occurrence of the product with the given
// ID. One remove drops one unit, since quantity is repetition. An unknown ID
// changes nothing.
func (s *Shop) RemoveFromCart(ctx context.Context, id string) error {
	for i, item := range s.cart {
		if item.ID == id {
			s.cart = slices.Delete(s.cart, i, i+1)
			return s.persistCart(ctx)
		}
	}
	return nil
}

// persistCart writes the live cart through whichever store governs it: the
// session and directory for a signed-in shopper, the guest cart otherwise.
func (s *Shop) persistCart(ctx context.Context) error {
	if s.user == nil {
		return s.guest.Save(ctx, s.cart)
	}
	s.user.Cart = slices.Clone(s.cart)
	return s.persistUser(ctx)
}

// persistUser writes the active account to both the session slot and the
// directory in the same logical operation, so neither can lag the other.
func (s *Shop) persistUser(ctx context.Context) error {
	if err := s.session.Activate(ctx, s.user); err != nil {
		return err
	}
	return s.directory.Upsert(ctx, s.user)
}
