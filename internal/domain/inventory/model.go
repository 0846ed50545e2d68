// Package inventory owns ingredient stock: item records and every mutation
// of available quantity. No other component writes stock.
package inventory

import (
	"dulcestock/internal/core/apperror"
	"dulcestock/internal/core/types"
	"dulcestock/internal/domain/units"
)

// Item is one purchasable ingredient. JSON field names keep the schema of
// the documents the original app wrote, so existing device data loads
// unchanged.
//
// Available (contenidoDisponible) is the single authoritative quantity,
// expressed in NetContentUnit. The legacy package-count field the old
// documents carried is dropped; restocking always moves whole packages of
// NetContent.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// UnitCost is the price of one package.
	UnitCost types.Money `json:"unitCost"`

	// NetContent is the quantity of substance in one package, in
	// NetContentUnit (e.g. 1000 gr per bag).
	NetContent     types.Quantity `json:"contenidoNeto"`
	NetContentUnit string         `json:"unidadContenidoNeto"`

	// Available is the quantity currently on hand, in NetContentUnit.
	Available types.Quantity `json:"contenidoDisponible"`

	// UpdatedAt is epoch milliseconds, matching the original documents.
	UpdatedAt int64 `json:"updatedAt"`
}

// Validate checks item invariants. Numeric clamping happens in the service;
// this only rejects what clamping cannot repair.
func (it *Item) Validate() error {
	if it.Name == "" {
		return apperror.NewInvalidInput("name is required").
			WithDetail("field", "name")
	}
	if !units.Known(it.NetContentUnit) {
		return apperror.NewUnsupportedUnit(it.NetContentUnit, it.NetContentUnit).
			WithDetail("field", "unidadContenidoNeto")
	}
	return nil
}

// clampNonNegative floors every numeric field at zero.
func (it *Item) clampNonNegative() {
	if it.UnitCost.IsNegative() {
		it.UnitCost = types.ZeroMoney()
	}
	it.NetContent = it.NetContent.FloorZero()
	it.Available = it.Available.FloorZero()
}
