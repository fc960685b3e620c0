// Package pricing holds the money math shared by the catalog and the order
// processor.
package pricing

import (
	"fmt"
	"math"

	"github.com/shopfront-app/shopfront/internal/models"
)

// Total sums item prices and rounds to cents. There is no tax, shipping, or
// discount logic: an order's total is exactly what its items cost.
func Total(items []models.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price
	}
	return Round(sum)
}

// Round rounds an amount to the nearest cent.
func Round(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Format renders an amount as a display price (e.g. "$25.50").
func Format(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
