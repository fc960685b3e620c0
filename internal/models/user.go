package models

import "slices"

// User is a full account record. Email is the natural key: the directory
// stores it exactly as submitted and papers over casing differences only on
// lookup.
type User struct {
	// Name is the shopper's display name.
	Name string `json:"name"`

	// Email is the account's natural key.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash used by the authentication
	// collaborator. Merge and repair logic never reads it.
	PasswordHash string `json:"passwordHash,omitempty"`

	// Cart is the account's persisted cart, in insertion order.
	Cart []CartItem `json:"cart"`

	// Orders is the append-only purchase history, oldest first.
	Orders []Order `json:"orders"`
}

// Clone returns a deep copy of the user. Cart items and order items are
// copied so the caller can mutate the clone without aliasing stored state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Cart = slices.Clone(u.Cart)
	c.Orders = slices.Clone(u.Orders)
	for i := range c.Orders {
		c.Orders[i].Items = slices.Clone(c.Orders[i].Items)
	}
	return &c
}
