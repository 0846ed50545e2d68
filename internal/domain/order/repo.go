package order

import "context"

// Repository persists the order collection as a whole.
type Repository interface {
	// List returns every order, newest first.
	List(ctx context.Context) ([]Order, error)

	// Save replaces the stored collection.
	Save(ctx context.Context, orders []Order) error
}

// Sharer exports an order summary through the platform share action. The
// workflow only builds the text; the collaborator delivers it.
type Sharer interface {
	Share(ctx context.Context, title, body string) error
}
