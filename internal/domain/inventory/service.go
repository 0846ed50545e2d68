package inventory

import (
	"context"
	"fmt"
	"time"

	"dulcestock/internal/core/apperror"
	"dulcestock/internal/core/id"
	"dulcestock/internal/core/types"
	"dulcestock/internal/domain/units"
	"dulcestock/pkg/logger"
)

// ConsumeLine is one ingredient requirement for a single batch. Qty is in
// the line's own Unit; the ledger converts to the item's stock unit before
// validating. Lines may repeat an item.
type ConsumeLine struct {
	ItemID string
	Qty    types.Quantity
	Unit   string
}

// Service is the inventory ledger: the only component allowed to mutate
// stock quantities. Every mutating operation persists the full collection
// and notifies change listeners.
type Service struct {
	repo      Repository
	log       *logger.Logger
	listeners []func()
}

// NewService creates the inventory ledger.
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.WithComponent("inventory"),
	}
}

// OnChange registers a listener called after every successful mutation.
// Consumers redisplaying inventory should reload on this signal.
func (s *Service) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *Service) notifyChanged() {
	for _, fn := range s.listeners {
		fn()
	}
}

// List returns every item, newest first.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

// Get returns the item with the given id. The second result reports whether
// it exists.
func (s *Service) Get(ctx context.Context, itemID string) (Item, bool, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return Item{}, false, err
	}
	for _, it := range items {
		if it.ID == itemID {
			return it, true, nil
		}
	}
	return Item{}, false, nil
}

// Upsert creates or updates an item. All numeric fields are clamped to be
// non-negative before the write. Creating assigns an identifier and prepends
// the item; updating an unknown id is a silent no-op.
func (s *Service) Upsert(ctx context.Context, item Item) (Item, error) {
	item.clampNonNegative()
	if err := item.Validate(); err != nil {
		s.log.Warnw("upsert rejected", "error", err)
		return Item{}, err
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return Item{}, err
	}
	now := time.Now().UnixMilli()

	if item.ID == "" {
		item.ID = id.New()
		item.UpdatedAt = now
		items = append([]Item{item}, items...)
	} else {
		idx := indexOf(items, item.ID)
		if idx < 0 {
			s.log.Warnw("upsert target missing, nothing written", "item_id", item.ID)
			return item, nil
		}
		item.UpdatedAt = now
		items[idx] = item
	}

	if err := s.repo.Save(ctx, items); err != nil {
		return Item{}, err
	}
	s.log.Infow("item saved", "item_id", item.ID, "name", item.Name)
	s.notifyChanged()
	return item, nil
}

// Remove deletes an item. Removing an unknown id is a no-op.
func (s *Service) Remove(ctx context.Context, itemID string) error {
	items, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	if err := s.repo.Save(ctx, kept); err != nil {
		return err
	}
	s.log.Infow("item removed", "item_id", itemID)
	s.notifyChanged()
	return nil
}

// RestockPackage adds one package's worth of content to the item's available
// quantity. Unknown ids are a silent no-op.
func (s *Service) RestockPackage(ctx context.Context, itemID string) error {
	return s.adjustPackage(ctx, itemID, +1)
}

// ConsumePackage removes one package's worth of content, floored at zero.
// Unknown ids are a silent no-op.
func (s *Service) ConsumePackage(ctx context.Context, itemID string) error {
	return s.adjustPackage(ctx, itemID, -1)
}

func (s *Service) adjustPackage(ctx context.Context, itemID string, direction int) error {
	items, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(items, itemID)
	if idx < 0 {
		s.log.Warnw("package adjustment target missing", "item_id", itemID)
		return nil
	}

	it := &items[idx]
	if direction > 0 {
		it.Available += it.NetContent
	} else {
		it.Available = (it.Available - it.NetContent).FloorZero()
	}
	it.UpdatedAt = time.Now().UnixMilli()

	if err := s.repo.Save(ctx, items); err != nil {
		return err
	}
	s.log.Infow("package adjusted",
		"item_id", itemID,
		"direction", direction,
		"available", it.Available.Float64(),
	)
	s.notifyChanged()
	return nil
}

// CheckAvailable reports whether the item exists and has at least
// requiredQty available, in the item's own stock unit.
func (s *Service) CheckAvailable(ctx context.Context, itemID string, requiredQty types.Quantity) (bool, error) {
	it, found, err := s.Get(ctx, itemID)
	if err != nil {
		return false, err
	}
	return found && it.Available >= requiredQty, nil
}

// ConsumeForBatches deducts the aggregated requirements of lines, scaled by
// batches, from stock. The operation is all-or-nothing: every aggregated
// requirement is validated against current availability before any record
// changes. A missing item, an incompatible unit or a shortfall aborts with
// no side effects.
func (s *Service) ConsumeForBatches(ctx context.Context, lines []ConsumeLine, batches int) error {
	if batches < 1 {
		return apperror.NewInvalidInput("batches must be at least 1").
			WithDetail("batches", batches)
	}
	if len(lines) == 0 {
		return nil
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	byID := make(map[string]int, len(items))
	for i, it := range items {
		byID[it.ID] = i
	}

	// Phase one: aggregate requirements per distinct item, converted to the
	// item's stock unit, then validate every one of them.
	required := make(map[string]types.Quantity, len(lines))
	order := make([]string, 0, len(lines))
	for _, line := range lines {
		idx, ok := byID[line.ItemID]
		if !ok {
			return apperror.NewNotFound("inventory item", line.ItemID)
		}
		it := items[idx]
		qty, err := units.Convert(line.Qty, line.Unit, it.NetContentUnit)
		if err != nil {
			return fmt.Errorf("line for %q: %w", it.Name, err)
		}
		if _, seen := required[line.ItemID]; !seen {
			order = append(order, line.ItemID)
		}
		required[line.ItemID] += qty.MulInt(batches)
	}

	for _, itemID := range order {
		it := items[byID[itemID]]
		if it.Available < required[itemID] {
			s.log.Warnw("consumption rejected",
				"item_id", itemID,
				"required", required[itemID].Float64(),
				"available", it.Available.Float64(),
			)
			return apperror.NewInsufficientStock(
				it.ID, it.Name,
				required[itemID].Float64(),
				it.Available.Float64(),
			)
		}
	}

	// Phase two: all checks passed, deduct everything and persist once.
	now := time.Now().UnixMilli()
	for _, itemID := range order {
		it := &items[byID[itemID]]
		it.Available = (it.Available - required[itemID]).FloorZero()
		it.UpdatedAt = now
	}

	if err := s.repo.Save(ctx, items); err != nil {
		return err
	}
	s.log.Infow("stock consumed", "items", len(order), "batches", batches)
	s.notifyChanged()
	return nil
}

func indexOf(items []Item, itemID string) int {
	for i, it := range items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}
