package recipe

import (
	"context"
	"time"

	"dulcestock/internal/core/id"
	"dulcestock/pkg/logger"
)

// Service provides recipe maintenance. Deleting a recipe never cascades to
// orders; they hold only the id and must handle the dangling case.
type Service struct {
	repo Repository
	log  *logger.Logger
}

// NewService creates the recipe service.
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.WithComponent("recipes"),
	}
}

// List returns every recipe, newest first.
func (s *Service) List(ctx context.Context) ([]Recipe, error) {
	return s.repo.List(ctx)
}

// Find returns the recipe with the given id. The second result reports
// whether it exists; callers resolving an order's weak reference must check
// it.
func (s *Service) Find(ctx context.Context, recipeID string) (Recipe, bool, error) {
	recipes, err := s.repo.List(ctx)
	if err != nil {
		return Recipe{}, false, err
	}
	for _, r := range recipes {
		if r.ID == recipeID {
			return r, true, nil
		}
	}
	return Recipe{}, false, nil
}

// Upsert creates or updates a recipe. Creating assigns an identifier and
// prepends; updating an unknown id is a silent no-op.
func (s *Service) Upsert(ctx context.Context, r Recipe) (Recipe, error) {
	if err := r.Validate(); err != nil {
		s.log.Warnw("upsert rejected", "error", err)
		return Recipe{}, err
	}

	recipes, err := s.repo.List(ctx)
	if err != nil {
		return Recipe{}, err
	}
	now := time.Now().UnixMilli()

	if r.ID == "" {
		r.ID = id.New()
		r.UpdatedAt = now
		recipes = append([]Recipe{r}, recipes...)
	} else {
		idx := -1
		for i := range recipes {
			if recipes[i].ID == r.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			s.log.Warnw("upsert target missing, nothing written", "recipe_id", r.ID)
			return r, nil
		}
		r.UpdatedAt = now
		recipes[idx] = r
	}

	if err := s.repo.Save(ctx, recipes); err != nil {
		return Recipe{}, err
	}
	s.log.Infow("recipe saved", "recipe_id", r.ID, "name", r.Name)
	return r, nil
}

// Remove deletes a recipe. Removing an unknown id is a no-op.
func (s *Service) Remove(ctx context.Context, recipeID string) error {
	recipes, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	kept := recipes[:0]
	for _, r := range recipes {
		if r.ID != recipeID {
			kept = append(kept, r)
		}
	}
	if err := s.repo.Save(ctx, kept); err != nil {
		return err
	}
	s.log.Infow("recipe removed", "recipe_id", recipeID)
	return nil
}
