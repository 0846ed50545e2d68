package recipe_test

import (
	"context"
	"testing"

	"dulcestock/internal/core/apperror"
	"dulcestock/internal/core/types"
	"dulcestock/internal/domain/recipe"
	"dulcestock/internal/infrastructure/storage/kvrepo"
	"dulcestock/internal/infrastructure/storage/memory"
	"dulcestock/pkg/logger"
)

func newService() *recipe.Service {
	return recipe.NewService(kvrepo.NewRecipes(memory.New()), logger.Nop())
}

func validRecipe() recipe.Recipe {
	return recipe.Recipe{
		Name:       "galletas",
		YieldUnits: 12,
		Lines: []recipe.Line{
			{ItemID: "flour", Qty: types.NewQuantityFromFloat64(500), Unit: "gr"},
		},
	}
}

func TestUpsert_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*recipe.Recipe)
		code   func(error) bool
	}{
		{"empty name", func(r *recipe.Recipe) { r.Name = "" }, apperror.IsInvalidInput},
		{"zero yield", func(r *recipe.Recipe) { r.YieldUnits = 0 }, apperror.IsInvalidInput},
		{"line without item", func(r *recipe.Recipe) { r.Lines[0].ItemID = "" }, apperror.IsInvalidInput},
		{"line with zero qty", func(r *recipe.Recipe) { r.Lines[0].Qty = 0 }, apperror.IsInvalidInput},
		{"line with unknown unit", func(r *recipe.Recipe) { r.Lines[0].Unit = "cups" }, apperror.IsUnsupportedUnit},
	}

	s := newService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecipe()
			tt.mutate(&r)
			if _, err := s.Upsert(context.Background(), r); err == nil || !tt.code(err) {
				t.Errorf("expected rejection, got %v", err)
			}
		})
	}
}

func TestUpsertFindRemove(t *testing.T) {
	s := newService()
	ctx := context.Background()

	created, err := s.Upsert(ctx, validRecipe())
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if created.ID == "" || created.UpdatedAt == 0 {
		t.Fatalf("Upsert did not assign id/timestamp: %+v", created)
	}

	created.YieldUnits = 24
	if _, err := s.Upsert(ctx, created); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, found, err := s.Find(ctx, created.ID)
	if err != nil || !found {
		t.Fatalf("Find = %v, %v", found, err)
	}
	if got.YieldUnits != 24 {
		t.Errorf("YieldUnits = %d, want 24", got.YieldUnits)
	}

	if err := s.Remove(ctx, created.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, found, _ := s.Find(ctx, created.ID); found {
		t.Error("recipe still found after Remove")
	}
}

func TestUpsert_PrependsNewest(t *testing.T) {
	s := newService()
	ctx := context.Background()

	first := validRecipe()
	first.Name = "primera"
	second := validRecipe()
	second.Name = "segunda"

	if _, err := s.Upsert(ctx, first); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Upsert(ctx, second); err != nil {
		t.Fatal(err)
	}

	recipes, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(recipes) != 2 || recipes[0].Name != "segunda" {
		t.Errorf("newest recipe should come first, got %+v", recipes)
	}
}
