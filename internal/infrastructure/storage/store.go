// Package storage defines the key-value document store the application
// persists to. The core has no knowledge of the underlying medium; it sees
// only get/set of JSON documents by collection key.
package storage

import "context"

// Collection keys. One JSON document (an array, or a single object for
// settings) is stored per key.
const (
	KeyInventory = "inventory"
	KeyRecipes   = "recipes"
	KeyOrders    = "orders"
	KeySettings  = "settings"
)

// Keys lists every collection key, in snapshot order.
func Keys() []string {
	return []string{KeyInventory, KeyRecipes, KeyOrders, KeySettings}
}

// Store is the persistence port. Implementations encode values as JSON.
//
// Operations are logically sequential: callers must not issue a second
// mutation for the same key before the first completes. There is no locking
// across concurrent callers; the design assumes a single active caller.
type Store interface {
	// Get decodes the document stored under key into out.
	// Returns false and leaves out untouched when the key is absent.
	Get(ctx context.Context, key string, out any) (bool, error)

	// Set encodes value as JSON and stores it under key, replacing any
	// previous document.
	Set(ctx context.Context, key string, value any) error
}
