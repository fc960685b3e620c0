// Package models defines the domain records persisted by the storefront
// engine.
//
// # Records
//
//   - Product: a catalog entry, copied by value into carts
//   - CartItem: one product occurrence in a cart (quantity is repetition)
//   - DeliveryDetails: the shipping form snapshot captured at checkout
//   - Order: an immutable purchase record appended to an account's history
//   - User: a full account record, keyed by email
//
// # Design Principles
//
//  1. Records are plain values with JSON tags; the codec package owns the
//     persisted text format.
//  2. Carts never deduplicate and always preserve insertion order.
//  3. Orders are append-only: once in a User's history they are never
//     removed or reordered, and only Status may change later (by
//     fulfillment logic outside this engine).
//  4. The email key is stored exactly as submitted; case-insensitive
//     matching is a read-side concern of the directory, not a property of
//     the record.
package models
