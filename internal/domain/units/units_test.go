package units

import (
	"testing"

	"dulcestock/internal/core/apperror"
	"dulcestock/internal/core/types"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		from   string
		to     string
		want   float64
	}{
		{"grams to kilograms", 1000, "gr", "kg", 1},
		{"kilograms to grams", 2, "kg", "gr", 2000},
		{"liters to milliliters", 1, "l", "ml", 1000},
		{"milliliters to liters", 500, "ml", "l", 0.5},
		{"same unit", 42, "gr", "gr", 42},
		{"case insensitive", 1, "KG", "Gr", 1000},
		{"fractional grams", 1.5, "kg", "gr", 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(types.NewQuantityFromFloat64(tt.amount), tt.from, tt.to)
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			if got.Float64() != tt.want {
				t.Errorf("Convert(%v, %s, %s) = %v, want %v", tt.amount, tt.from, tt.to, got.Float64(), tt.want)
			}
		})
	}
}

func TestConvert_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"cross family mass to volume", "gr", "ml"},
		{"cross family volume to mass", "l", "kg"},
		{"unknown source unit", "oz", "gr"},
		{"unknown target unit", "gr", "cups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(types.NewQuantityFromInt(1), tt.from, tt.to)
			if err == nil {
				t.Fatalf("Convert(%s, %s) succeeded, want error", tt.from, tt.to)
			}
			if !apperror.IsUnsupportedUnit(err) {
				t.Errorf("expected UNSUPPORTED_UNIT, got %v", err)
			}
		})
	}
}

func TestToBase(t *testing.T) {
	got, err := ToBase(types.NewQuantityFromInt(1), "kg")
	if err != nil {
		t.Fatalf("ToBase failed: %v", err)
	}
	if got.Float64() != 1000 {
		t.Errorf("ToBase(1, kg) = %v, want 1000", got.Float64())
	}

	if _, err := ToBase(types.NewQuantityFromInt(1), "lbs"); !apperror.IsUnsupportedUnit(err) {
		t.Errorf("expected UNSUPPORTED_UNIT for unknown code, got %v", err)
	}
}

func TestFamilyOf(t *testing.T) {
	if fam, ok := FamilyOf(" ML "); !ok || fam != FamilyVolume {
		t.Errorf("FamilyOf(ML) = %v, %v", fam, ok)
	}
	if _, ok := FamilyOf("banana"); ok {
		t.Error("FamilyOf(banana) reported known unit")
	}
}
