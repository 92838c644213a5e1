package domain

import (
	"fmt"
	"strings"
)

// UnitType describes how a product is sold.
type UnitType string

const (
	UnitTypeUnit     UnitType = "unit"
	UnitTypeWeightG  UnitType = "weight_g"
	UnitTypeWeightKg UnitType = "weight_kg"
)

// ParseUnitType maps raw input to a UnitType. Empty input means UnitTypeUnit.
func ParseUnitType(raw string) (UnitType, error) {
	switch UnitType(strings.ToLower(strings.TrimSpace(raw))) {
	case "", UnitTypeUnit:
		return UnitTypeUnit, nil
	case UnitTypeWeightG:
		return UnitTypeWeightG, nil
	case UnitTypeWeightKg:
		return UnitTypeWeightKg, nil
	}
	return "", &ValidationError{
		Field:   "unitType",
		Message: fmt.Sprintf("unit type must be one of %s, %s, %s", UnitTypeUnit, UnitTypeWeightG, UnitTypeWeightKg),
	}
}

// Discrete reports whether quantities of this unit type are whole numbers.
func (u UnitType) Discrete() bool {
	return u == "" || u == UnitTypeUnit
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Stock       float64  `json:"stock"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	UnitType    UnitType `json:"unitType"`
	Category    string   `json:"category,omitempty"`
}

// CategoryLabel returns the product category, or Uncategorized when unset.
func (p Product) CategoryLabel() string {
	if strings.TrimSpace(p.Category) == "" {
		return CategoryUncategorized
	}
	return p.Category
}
