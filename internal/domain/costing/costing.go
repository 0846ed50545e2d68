// Package costing computes recipe costs from the current inventory
// snapshot. It only reads inventory; stock never changes here.
package costing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"dulcestock/internal/core/types"
	"dulcestock/internal/domain/inventory"
	"dulcestock/internal/domain/recipe"
	"dulcestock/internal/domain/units"
)

// Cost is the cost of producing one batch of a recipe.
type Cost struct {
	// Total is the ingredient cost of the whole batch.
	Total types.Money

	// PerUnit is Total divided by the recipe's yield.
	PerUnit types.Money
}

// RecipeCost sums the cost contribution of every recipe line.
//
// A line referencing a missing item contributes zero (silent degradation,
// per the app's behavior when an ingredient was deleted). A package with
// zero net content also contributes zero, avoiding a division by zero.
// A line whose unit family differs from the item's stock unit family is an
// error: a grams-vs-milliliters mix would otherwise price the batch with a
// silently wrong number.
func RecipeCost(r recipe.Recipe, items []inventory.Item) (Cost, error) {
	byID := make(map[string]inventory.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	total := types.ZeroMoney()
	for _, line := range r.Lines {
		it, ok := byID[line.ItemID]
		if !ok {
			continue
		}

		netBase, err := units.ToBase(it.NetContent, it.NetContentUnit)
		if err != nil {
			return Cost{}, fmt.Errorf("item %q: %w", it.Name, err)
		}
		if !netBase.IsPositive() {
			continue
		}

		base, err := units.BaseOf(it.NetContentUnit)
		if err != nil {
			return Cost{}, fmt.Errorf("item %q: %w", it.Name, err)
		}
		qtyBase, err := units.Convert(line.Qty, line.Unit, base)
		if err != nil {
			return Cost{}, fmt.Errorf("line for %q: %w", it.Name, err)
		}

		// Package price over package content gives the price per base unit.
		perBase := it.UnitCost.Div(netBase.Decimal())
		total = total.Add(qtyBase.Decimal().Mul(perBase))
	}

	perUnit := types.ZeroMoney()
	if r.YieldUnits > 0 {
		perUnit = total.Div(decimal.NewFromInt(int64(r.YieldUnits)))
	}
	return Cost{Total: total, PerUnit: perUnit}, nil
}

// SuggestedUnitPrice applies the margin percentage to a unit cost:
// unitCost * (1 + marginPct/100).
func SuggestedUnitPrice(unitCost, marginPct types.Money) types.Money {
	factor := decimal.NewFromInt(1).Add(marginPct.Div(decimal.NewFromInt(100)))
	return unitCost.Mul(factor)
}
