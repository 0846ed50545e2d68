// Package recipe maintains recipes: bills of materials mapping one
// production batch to ingredient quantities.
package recipe

import (
	"fmt"

	"dulcestock/internal/core/apperror"
	"dulcestock/internal/core/types"
	"dulcestock/internal/domain/units"
)

// Line is one ingredient requirement per batch. ItemID is a weak reference
// into the inventory collection; it may dangle after the item is deleted.
type Line struct {
	ItemID string         `json:"itemId"`
	Qty    types.Quantity `json:"qty"`
	Unit   string         `json:"unitOfMeasure"`
}

// Recipe describes one product. YieldUnits is how many finished units a
// single batch produces.
type Recipe struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	YieldUnits int    `json:"yieldUnits"`
	Lines      []Line `json:"lines"`

	// UpdatedAt is epoch milliseconds, matching the original documents.
	UpdatedAt int64 `json:"updatedAt"`
}

// Validate checks recipe invariants.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return apperror.NewInvalidInput("name is required").
			WithDetail("field", "name")
	}
	if r.YieldUnits < 1 {
		return apperror.NewInvalidInput("yield must be at least 1 unit per batch").
			WithDetail("field", "yieldUnits")
	}
	for i, line := range r.Lines {
		if line.ItemID == "" {
			return apperror.NewInvalidInput(fmt.Sprintf("line %d: ingredient is required", i+1)).
				WithDetail("field", "lines")
		}
		if !line.Qty.IsPositive() {
			return apperror.NewInvalidInput(fmt.Sprintf("line %d: quantity must be positive", i+1)).
				WithDetail("field", "lines")
		}
		if !units.Known(line.Unit) {
			return apperror.NewUnsupportedUnit(line.Unit, line.Unit).
				WithDetail("field", "lines").
				WithDetail("line", i+1)
		}
	}
	return nil
}
