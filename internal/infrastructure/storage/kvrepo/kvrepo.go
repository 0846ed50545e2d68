// Package kvrepo implements the domain repositories on the key-value
// document store. Each repository is a thin binding of a storage.Collection
// to its collection key.
package kvrepo

import (
	"context"

	"dulcestock/internal/domain/inventory"
	"dulcestock/internal/domain/order"
	"dulcestock/internal/domain/recipe"
	"dulcestock/internal/domain/settings"
	"dulcestock/internal/infrastructure/storage"
)

// Inventory implements inventory.Repository.
type Inventory struct {
	col *storage.Collection[inventory.Item]
}

func NewInventory(store storage.Store) *Inventory {
	return &Inventory{col: storage.NewCollection[inventory.Item](store, storage.KeyInventory)}
}

func (r *Inventory) List(ctx context.Context) ([]inventory.Item, error) {
	return r.col.Load(ctx)
}

func (r *Inventory) Save(ctx context.Context, items []inventory.Item) error {
	return r.col.Replace(ctx, items)
}

// Recipes implements recipe.Repository.
type Recipes struct {
	col *storage.Collection[recipe.Recipe]
}

func NewRecipes(store storage.Store) *Recipes {
	return &Recipes{col: storage.NewCollection[recipe.Recipe](store, storage.KeyRecipes)}
}

func (r *Recipes) List(ctx context.Context) ([]recipe.Recipe, error) {
	return r.col.Load(ctx)
}

func (r *Recipes) Save(ctx context.Context, recipes []recipe.Recipe) error {
	return r.col.Replace(ctx, recipes)
}

// Orders implements order.Repository.
type Orders struct {
	col *storage.Collection[order.Order]
}

func NewOrders(store storage.Store) *Orders {
	return &Orders{col: storage.NewCollection[order.Order](store, storage.KeyOrders)}
}

func (r *Orders) List(ctx context.Context) ([]order.Order, error) {
	return r.col.Load(ctx)
}

func (r *Orders) Save(ctx context.Context, orders []order.Order) error {
	return r.col.Replace(ctx, orders)
}

// Settings implements settings.Repository. The collection holds a single
// object rather than an array, so it binds the store directly.
type Settings struct {
	store storage.Store
}

func NewSettings(store storage.Store) *Settings {
	return &Settings{store: store}
}

func (r *Settings) Load(ctx context.Context) (settings.Settings, bool, error) {
	var s settings.Settings
	found, err := r.store.Get(ctx, storage.KeySettings, &s)
	if err != nil {
		return settings.Settings{}, false, err
	}
	return s, found, nil
}

func (r *Settings) Save(ctx context.Context, s settings.Settings) error {
	return r.store.Set(ctx, storage.KeySettings, s)
}

var (
	_ inventory.Repository = (*Inventory)(nil)
	_ recipe.Repository    = (*Recipes)(nil)
	_ order.Repository     = (*Orders)(nil)
	_ settings.Repository  = (*Settings)(nil)
)
