package inventory

import "context"

// Repository persists the inventory collection as a whole. Each mutation in
// the service reads the full collection, changes it in memory and writes it
// back, so the port needs only these two operations.
type Repository interface {
	// List returns every item, newest first.
	List(ctx context.Context) ([]Item, error)

	// Save replaces the stored collection.
	Save(ctx context.Context, items []Item) error
}
