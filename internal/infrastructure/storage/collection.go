package storage

import (
	"context"
	"fmt"
)

// Collection provides whole-array load/replace semantics for one stored
// collection. Every mutation in the app reads the full array, changes it in
// memory and writes it back, so this is the only access pattern repositories
// need.
type Collection[T any] struct {
	store Store
	key   string
}

// NewCollection creates a collection bound to a store key.
func NewCollection[T any](store Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Key returns the collection's store key.
func (c *Collection[T]) Key() string { return c.key }

// Load returns all items in the collection, or an empty slice when the key
// has never been written.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	var items []T
	found, err := c.store.Get(ctx, c.key, &items)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}
	if !found || items == nil {
		return []T{}, nil
	}
	return items, nil
}

// Replace writes the full collection back to the store.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	if err := c.store.Set(ctx, c.key, items); err != nil {
		return fmt.Errorf("replace %s: %w", c.key, err)
	}
	return nil
}
