// Package storage provides the keyed text-blob abstraction behind the
// storefront's durable state. The engine keeps three independent blobs; the
// keys below are the complete layout.
package storage

import "context"

// Keys of the three independent state blobs.
const (
	// KeySession holds the encoded snapshot of the signed-in shopper.
	KeySession = "SESSION"

	// KeyUsersDB holds the encoded email-to-account directory.
	KeyUsersDB = "USERS_DB"

	// KeyGuestCart holds the encoded cart of an unauthenticated visitor.
	KeyGuestCart = "GUEST_CART"
)

// Blobs is a keyed text-blob store. A Put replaces the whole value for its
// key; there is no partial update and no cross-key transaction, so callers
// own any multi-key consistency. Separate processes sharing one store race
// with last-write-wins semantics; this layer does not mitigate that.
type Blobs interface {
	// Get returns the value stored under key. The boolean reports
	// presence; an absent key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
