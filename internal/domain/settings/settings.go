// Package settings holds the single pricing settings record.
package settings

import (
	"context"

	"github.com/shopspring/decimal"

	"dulcestock/internal/core/apperror"
	"dulcestock/internal/core/types"
	"dulcestock/pkg/logger"
)

// DefaultMarginPct is the markup applied until the owner saves their own.
const DefaultMarginPct = 30

// Settings is the singleton pricing record.
type Settings struct {
	// MarginPct is the percentage markup over unit cost used to derive the
	// suggested sale price.
	MarginPct types.Money `json:"marginPct"`
}

// Default returns the settings used before any save.
func Default() Settings {
	return Settings{MarginPct: decimal.NewFromInt(DefaultMarginPct)}
}

// Repository persists the settings singleton.
type Repository interface {
	// Load returns the stored settings; false when never saved.
	Load(ctx context.Context) (Settings, bool, error)

	// Save overwrites the stored settings.
	Save(ctx context.Context, s Settings) error
}

// Service reads and writes the settings singleton.
type Service struct {
	repo Repository
	log  *logger.Logger
}

// NewService creates the settings service.
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.WithComponent("settings"),
	}
}

// Get returns the saved settings, or the defaults when nothing was saved.
func (s *Service) Get(ctx context.Context) (Settings, error) {
	stored, found, err := s.repo.Load(ctx)
	if err != nil {
		return Settings{}, err
	}
	if !found {
		return Default(), nil
	}
	return stored, nil
}

// Save overwrites the settings. The margin must not be negative.
func (s *Service) Save(ctx context.Context, in Settings) error {
	if in.MarginPct.IsNegative() {
		return apperror.NewInvalidInput("margin percentage must not be negative").
			WithDetail("field", "marginPct")
	}
	if err := s.repo.Save(ctx, in); err != nil {
		return err
	}
	s.log.Infow("settings saved", "margin_pct", in.MarginPct.String())
	return nil
}
