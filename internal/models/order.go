package models

// Order statuses. This engine only ever creates orders in StatusProcessing;
// later transitions belong to fulfillment, which lives outside this core.
const (
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
)

// DeliveryDetails is the shipping form snapshot captured once at checkout.
// It is immutable after being attached to an Order.
type DeliveryDetails struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// Order is a completed purchase. Items, Total, and Delivery are frozen at
// creation time; Status is the only field that may change afterwards.
type Order struct {
	// ID identifies the order within one account's history (UUID format).
	// Uniqueness is probabilistic, not globally enforced.
	ID string `json:"id"`

	// CreatedAt is the RFC 3339 creation timestamp.
	CreatedAt string `json:"createdAt"`

	// Items is a value-copy of the cart contents at purchase time.
	Items []CartItem `json:"items"`

	// Total is the sum of item prices at purchase time.
	Total float64 `json:"total"`

	// Status is the fulfillment status (processing, shipped, delivered).
	Status string `json:"status"`

	// Delivery is the shipping snapshot captured at checkout.
	Delivery DeliveryDetails `json:"delivery"`
}
