package shop

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/shopfront-app/shopfront/internal/models"
	"github.com/shopfront-app/shopfront/internal/pricing"
)

// Checkout converts the live cart into an order. An empty cart is a no-op:
// no order is created, nothing changes, and no error is returned.
//
// For a signed-in shopper the order is appended to the account's history and
// the account's cart is cleared, with session and directory written
// together. A guest's order is returned to the caller but never persisted
// anywhere; only the guest cart slot is cleared.
func (s *Shop) Checkout(ctx context.Context, delivery models.DeliveryDetails) (*models.Order, error) {
	if len(s.cart) == 0 {
		slog.Debug("Checkout with empty cart, nothing to do")
		return nil, nil
	}

	order := &models.Order{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Items:     slices.Clone(s.cart),
		Total:     pricing.Total(s.cart),
		Status:    models.StatusProcessing,
		Delivery:  delivery,
	}

	if s.user == nil {
		s.cart = nil
		if err := s.guest.Clear(ctx); err != nil {
			return nil, err
		}
		s.metrics.OrderProcessed()
		slog.Info("Guest order processed, not retained",
			"order_id", order.ID, "total", order.Total, "items", len(order.Items))
		return order, nil
	}

	s.user.Orders = append(s.user.Orders, *order)
	s.user.Cart = nil
	s.cart = nil
	if err := s.persistUser(ctx); err != nil {
		return nil, err
	}
	s.metrics.OrderProcessed()
	slog.Info("Order processed",
		"order_id", order.ID, "email", s.user.Email, "total", order.Total, "items", len(order.Items))
	return order, nil
}
