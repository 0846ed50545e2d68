// Package units converts quantities between measurement units.
//
// Supported units partition into two families: mass (gr, kg) and volume
// (ml, l). Each unit carries a factor expressing its size in the family's
// base unit (gram, milliliter). Converting across families is not meaningful
// and fails with an UNSUPPORTED_UNIT error rather than passing values
// through unchanged.
package units

import (
	"strings"

	"dulcestock/internal/core/apperror"
	"dulcestock/internal/core/types"
)

// Family identifies a group of mutually convertible units.
type Family string

const (
	FamilyMass   Family = "mass"
	FamilyVolume Family = "volume"
)

// Unit codes. Matching is case-insensitive; these are the canonical forms.
const (
	Gram       = "gr"
	Kilogram   = "kg"
	Milliliter = "ml"
	Liter      = "l"
)

type unitDef struct {
	family Family
	factor int64 // size of one unit in the family's base unit
}

var defs = map[string]unitDef{
	Gram:       {FamilyMass, 1},
	Kilogram:   {FamilyMass, 1000},
	Milliliter: {FamilyVolume, 1},
	Liter:      {FamilyVolume, 1000},
}

// Normalize returns the canonical form of a unit code.
func Normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// FamilyOf returns the family of a unit code.
func FamilyOf(code string) (Family, bool) {
	def, ok := defs[Normalize(code)]
	return def.family, ok
}

// Known reports whether code is a supported unit.
func Known(code string) bool {
	_, ok := defs[Normalize(code)]
	return ok
}

// BaseOf returns the base unit of the family code belongs to.
func BaseOf(code string) (string, error) {
	def, ok := defs[Normalize(code)]
	if !ok {
		return "", apperror.NewUnsupportedUnit(code, code)
	}
	if def.family == FamilyMass {
		return Gram, nil
	}
	return Milliliter, nil
}

// Convert converts amount from one unit to another within the same family:
// amount * factor[from] / factor[to]. Unknown codes or a mass/volume mix
// return an UNSUPPORTED_UNIT error.
func Convert(amount types.Quantity, from, to string) (types.Quantity, error) {
	fromDef, ok := defs[Normalize(from)]
	if !ok {
		return 0, apperror.NewUnsupportedUnit(from, to)
	}
	toDef, ok := defs[Normalize(to)]
	if !ok {
		return 0, apperror.NewUnsupportedUnit(from, to)
	}
	if fromDef.family != toDef.family {
		return 0, apperror.NewUnsupportedUnit(from, to).
			WithDetail("from_family", string(fromDef.family)).
			WithDetail("to_family", string(toDef.family))
	}
	return types.Quantity(amount.Int64Scaled() * fromDef.factor / toDef.factor), nil
}

// ToBase converts amount to its family's base unit (gram or milliliter).
func ToBase(amount types.Quantity, code string) (types.Quantity, error) {
	base, err := BaseOf(code)
	if err != nil {
		return 0, err
	}
	return Convert(amount, code, base)
}
