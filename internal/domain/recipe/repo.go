package recipe

import "context"

// Repository persists the recipe collection as a whole.
type Repository interface {
	// List returns every recipe, newest first.
	List(ctx context.Context) ([]Recipe, error)

	// Save replaces the stored collection.
	Save(ctx context.Context, recipes []Recipe) error
}
