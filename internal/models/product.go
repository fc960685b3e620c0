package models

// Product is a single catalog entry. Products are copied by value into carts
// and orders, so a product already in a cart never changes even if the
// catalog entry it came from does.
type Product struct {
	// ID uniquely identifies the product within the catalog.
	ID string `json:"id"`

	// Name is the display name shown in listings.
	Name string `json:"name"`

	// Price is the numeric unit price.
	Price float64 `json:"price"`

	// DisplayPrice is the formatted price string (e.g. "$25.50").
	DisplayPrice string `json:"displayPrice,omitempty"`

	// Category groups products in the catalog view.
	Category string `json:"category,omitempty"`

	// Description is optional marketing copy.
	Description string `json:"description,omitempty"`

	// Image is an optional image reference.
	Image string `json:"image,omitempty"`
}

// CartItem is one occurrence of a product in a cart. Carts do not
// deduplicate: adding the same product twice yields two entries, and
// quantity is implied by repetition rather than stored as a count.
type CartItem = Product
