package settings_test

import (
	"context"
	"testing"

	"dulcestock/internal/core/apperror"
	"dulcestock/internal/core/types"
	"dulcestock/internal/domain/settings"
	"dulcestock/internal/infrastructure/storage/kvrepo"
	"dulcestock/internal/infrastructure/storage/memory"
	"dulcestock/pkg/logger"
)

func TestGet_DefaultsBeforeFirstSave(t *testing.T) {
	s := settings.NewService(kvrepo.NewSettings(memory.New()), logger.Nop())

	got, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.MarginPct.Equal(types.MustMoney("30")) {
		t.Errorf("default MarginPct = %s, want 30", got.MarginPct)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := settings.NewService(kvrepo.NewSettings(memory.New()), logger.Nop())
	ctx := context.Background()

	if err := s.Save(ctx, settings.Settings{MarginPct: types.MustMoney("45")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.MarginPct.Equal(types.MustMoney("45")) {
		t.Errorf("MarginPct = %s, want 45", got.MarginPct)
	}
}

func TestSave_RejectsNegativeMargin(t *testing.T) {
	s := settings.NewService(kvrepo.NewSettings(memory.New()), logger.Nop())

	err := s.Save(context.Background(), settings.Settings{MarginPct: types.MustMoney("-1")})
	if !apperror.IsInvalidInput(err) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}
