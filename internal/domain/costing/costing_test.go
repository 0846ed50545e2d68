package costing

import (
	"testing"

	"dulcestock/internal/core/apperror"
	"dulcestock/internal/core/types"
	"dulcestock/internal/domain/inventory"
	"dulcestock/internal/domain/recipe"
)

func item(id, name string, unitCost string, netContent float64, unit string) inventory.Item {
	return inventory.Item{
		ID:             id,
		Name:           name,
		UnitCost:       types.MustMoney(unitCost),
		NetContent:     types.NewQuantityFromFloat64(netContent),
		NetContentUnit: unit,
	}
}

func TestRecipeCost(t *testing.T) {
	items := []inventory.Item{
		item("flour", "harina", "10", 1000, "gr"),
		item("milk", "leche", "2", 1, "l"),
		item("empty", "vacío", "8", 0, "gr"),
	}

	tests := []struct {
		name        string
		recipe      recipe.Recipe
		wantTotal   string
		wantPerUnit string
	}{
		{
			name:        "empty lines",
			recipe:      recipe.Recipe{YieldUnits: 12},
			wantTotal:   "0",
			wantPerUnit: "0",
		},
		{
			name: "half a package",
			// 500 gr of a 1000 gr package at $10 costs $5.
			recipe: recipe.Recipe{
				YieldUnits: 1,
				Lines:      []recipe.Line{{ItemID: "flour", Qty: types.NewQuantityFromFloat64(500), Unit: "gr"}},
			},
			wantTotal:   "5",
			wantPerUnit: "5",
		},
		{
			name: "line unit differs from package unit",
			// 250 ml of a 1 l ($2) package costs $0.50.
			recipe: recipe.Recipe{
				YieldUnits: 2,
				Lines:      []recipe.Line{{ItemID: "milk", Qty: types.NewQuantityFromFloat64(250), Unit: "ml"}},
			},
			wantTotal:   "0.5",
			wantPerUnit: "0.25",
		},
		{
			name: "missing item contributes zero",
			recipe: recipe.Recipe{
				YieldUnits: 1,
				Lines: []recipe.Line{
					{ItemID: "flour", Qty: types.NewQuantityFromFloat64(500), Unit: "gr"},
					{ItemID: "deleted", Qty: types.NewQuantityFromFloat64(100), Unit: "gr"},
				},
			},
			wantTotal:   "5",
			wantPerUnit: "5",
		},
		{
			name: "zero net content contributes zero",
			recipe: recipe.Recipe{
				YieldUnits: 1,
				Lines:      []recipe.Line{{ItemID: "empty", Qty: types.NewQuantityFromFloat64(100), Unit: "gr"}},
			},
			wantTotal:   "0",
			wantPerUnit: "0",
		},
		{
			name: "multiple lines sum",
			recipe: recipe.Recipe{
				YieldUnits: 10,
				Lines: []recipe.Line{
					{ItemID: "flour", Qty: types.NewQuantityFromFloat64(1), Unit: "kg"},
					{ItemID: "milk", Qty: types.NewQuantityFromFloat64(500), Unit: "ml"},
				},
			},
			wantTotal:   "11",
			wantPerUnit: "1.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RecipeCost(tt.recipe, items)
			if err != nil {
				t.Fatalf("RecipeCost failed: %v", err)
			}
			if !got.Total.Equal(types.MustMoney(tt.wantTotal)) {
				t.Errorf("Total = %s, want %s", got.Total, tt.wantTotal)
			}
			if !got.PerUnit.Equal(types.MustMoney(tt.wantPerUnit)) {
				t.Errorf("PerUnit = %s, want %s", got.PerUnit, tt.wantPerUnit)
			}
		})
	}
}

func TestRecipeCost_CrossFamilyRejected(t *testing.T) {
	items := []inventory.Item{item("flour", "harina", "10", 1000, "gr")}
	r := recipe.Recipe{
		YieldUnits: 1,
		Lines:      []recipe.Line{{ItemID: "flour", Qty: types.NewQuantityFromFloat64(100), Unit: "ml"}},
	}

	_, err := RecipeCost(r, items)
	if !apperror.IsUnsupportedUnit(err) {
		t.Fatalf("expected UNSUPPORTED_UNIT, got %v", err)
	}
}

func TestSuggestedUnitPrice(t *testing.T) {
	got := SuggestedUnitPrice(types.MustMoney("10"), types.MustMoney("30"))
	if !got.Equal(types.MustMoney("13")) {
		t.Errorf("SuggestedUnitPrice(10, 30) = %s, want 13", got)
	}

	got = SuggestedUnitPrice(types.MustMoney("4"), types.MustMoney("0"))
	if !got.Equal(types.MustMoney("4")) {
		t.Errorf("SuggestedUnitPrice(4, 0) = %s, want 4", got)
	}
}
