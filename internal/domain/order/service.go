package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"dulcestock/internal/core/apperror"
	"dulcestock/internal/core/id"
	"dulcestock/internal/domain/costing"
	"dulcestock/internal/domain/inventory"
	"dulcestock/internal/domain/recipe"
	"dulcestock/internal/domain/settings"
	"dulcestock/pkg/logger"
)

// Service is the order workflow. It reads recipes and inventory; the only
// stock mutation it causes is the atomic consumption on the
// PENDING → IN_PROGRESS transition, delegated to the inventory ledger.
type Service struct {
	repo     Repository
	recipes  *recipe.Service
	ledger   *inventory.Service
	settings *settings.Service
	log      *logger.Logger
}

// NewService creates the order workflow service.
func NewService(
	repo Repository,
	recipes *recipe.Service,
	ledger *inventory.Service,
	settingsSvc *settings.Service,
	log *logger.Logger,
) *Service {
	return &Service{
		repo:     repo,
		recipes:  recipes,
		ledger:   ledger,
		settings: settingsSvc,
		log:      log.WithComponent("orders"),
	}
}

// Create registers a new order in PENDING status.
func (s *Service) Create(ctx context.Context, customerName, recipeID string, batches int) (Order, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return Order{}, apperror.NewInvalidInput("customer name is required").
			WithDetail("field", "customerName")
	}
	if recipeID == "" {
		return Order{}, apperror.NewInvalidInput("recipe is required").
			WithDetail("field", "recipeId")
	}
	if batches < 1 {
		return Order{}, apperror.NewInvalidInput("batches must be at least 1").
			WithDetail("field", "batches")
	}

	o := Order{
		ID:           id.New(),
		CustomerName: customerName,
		RecipeID:     recipeID,
		Batches:      batches,
		Status:       StatusPending,
		CreatedAt:    time.Now().UnixMilli(),
	}

	orders, err := s.repo.List(ctx)
	if err != nil {
		return Order{}, err
	}
	orders = append([]Order{o}, orders...)
	if err := s.repo.Save(ctx, orders); err != nil {
		return Order{}, err
	}

	s.log.Infow("order created", "order_id", o.ID, "customer", o.CustomerName, "batches", o.Batches)
	return o, nil
}

// List returns every order, newest first.
func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

// Get returns the order with the given id.
func (s *Service) Get(ctx context.Context, orderID string) (Order, bool, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return Order{}, false, err
	}
	for _, o := range orders {
		if o.ID == orderID {
			return o, true, nil
		}
	}
	return Order{}, false, nil
}

// Search returns the orders matching the filter, newest first. The query
// also matches the linked recipe's name when the recipe still exists.
func (s *Service) Search(ctx context.Context, f Filter) ([]Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	nameByID := make(map[string]string, len(recipes))
	for _, r := range recipes {
		nameByID[r.ID] = r.Name
	}

	matched := make([]Order, 0, len(orders))
	for _, o := range orders {
		if f.matches(o, nameByID[o.RecipeID]) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// Remove deletes an order. Removing an unknown id is a no-op.
func (s *Service) Remove(ctx context.Context, orderID string) error {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	kept := orders[:0]
	for _, o := range orders {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	if err := s.repo.Save(ctx, kept); err != nil {
		return err
	}
	s.log.Infow("order removed", "order_id", orderID)
	return nil
}

// Advance moves an order one step forward in its status progression.
//
// Exactly the PENDING → IN_PROGRESS transition consumes stock: the linked
// recipe's lines, scaled by the order's batch count, are deducted atomically
// by the ledger. If the ledger reports a shortfall the status does not
// change and the error surfaces to the caller. A dangling recipe reference
// advances without consumption. Advancing a DELIVERED order is a no-op, and
// an order already past IN_PROGRESS never consumes again.
func (s *Service) Advance(ctx context.Context, orderID string) (Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return Order{}, err
	}
	idx := -1
	for i := range orders {
		if orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Order{}, apperror.NewNotFound("order", orderID)
	}

	o := orders[idx]
	if o.Status == StatusDelivered {
		return o, nil
	}

	if o.Status == StatusPending {
		r, found, err := s.recipes.Find(ctx, o.RecipeID)
		if err != nil {
			return Order{}, err
		}
		if found && len(r.Lines) > 0 {
			lines := make([]inventory.ConsumeLine, len(r.Lines))
			for i, l := range r.Lines {
				lines[i] = inventory.ConsumeLine{ItemID: l.ItemID, Qty: l.Qty, Unit: l.Unit}
			}
			if err := s.ledger.ConsumeForBatches(ctx, lines, o.Batches); err != nil {
				s.log.Warnw("advance aborted", "order_id", o.ID, "error", err)
				return o, err
			}
		} else if !found {
			s.log.Warnw("recipe missing, advancing without consumption",
				"order_id", o.ID, "recipe_id", o.RecipeID)
		}
	}

	orders[idx].Status = o.Status.Next()
	if err := s.repo.Save(ctx, orders); err != nil {
		return Order{}, err
	}

	s.log.Infow("order advanced", "order_id", o.ID, "status", orders[idx].Status)
	return orders[idx], nil
}

// Summary builds the share text for an order: product, total units, the
// suggested unit price under the current margin, and the order total. When
// the recipe no longer exists the summary degrades to a note instead of
// prices.
func (s *Service) Summary(ctx context.Context, o Order) (title, body string, err error) {
	title = "Pedido DulceStock"

	r, found, err := s.recipes.Find(ctx, o.RecipeID)
	if err != nil {
		return "", "", err
	}
	if !found {
		body = fmt.Sprintf(`🍪 Pedido - DulceStock
Cliente: %s
Producto: (receta eliminada)

Estado: %s
Fecha: %s
`, o.CustomerName, statusLabel(o.Status), formatDate(o.CreatedAt))
		return title, body, nil
	}

	items, err := s.ledger.List(ctx)
	if err != nil {
		return "", "", err
	}
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return "", "", err
	}
	cost, err := costing.RecipeCost(r, items)
	if err != nil {
		return "", "", err
	}

	unitPrice := costing.SuggestedUnitPrice(cost.PerUnit, cfg.MarginPct)
	totalUnits := r.YieldUnits * o.Batches
	totalPrice := unitPrice.Mul(decimal.NewFromInt(int64(totalUnits)))

	body = fmt.Sprintf(`🍪 Pedido - DulceStock
Cliente: %s
Producto: %s
Cantidad: %d unidades
Precio por unidad: $%s
Total: $%s

Estado: %s
Fecha: %s
`,
		o.CustomerName,
		r.Name,
		totalUnits,
		unitPrice.StringFixed(2),
		totalPrice.StringFixed(2),
		statusLabel(o.Status),
		formatDate(o.CreatedAt),
	)
	return title, body, nil
}

func statusLabel(st Status) string {
	switch st {
	case StatusPending:
		return "Pendiente"
	case StatusInProgress:
		return "En proceso"
	case StatusDelivered:
		return "Entregado"
	}
	return string(st)
}

func formatDate(epochMillis int64) string {
	if epochMillis == 0 {
		return ""
	}
	return time.UnixMilli(epochMillis).Format("02/01/2006 15:04")
}
