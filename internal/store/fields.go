package store

import (
	"math"
	"strconv"
	"strings"

	"pos-catalog/internal/domain"
)

// ProductFields carries raw, unvalidated product input as typed by a user.
type ProductFields struct {
	Name        string
	Price       string
	Stock       string
	Description string
	Image       string
	UnitType    string
	Category    string
}

// Validate checks the fields and builds a product without an ID. Blank
// description and image take the configured placeholders.
func (f ProductFields) Validate(opts Options) (domain.Product, error) {
	opts = opts.WithDefaults()

	name := strings.TrimSpace(f.Name)
	if name == "" {
		return domain.Product{}, &domain.ValidationError{Field: "name", Message: "name required"}
	}

	price, err := parseNumber(f.Price)
	if err != nil || price <= 0 {
		return domain.Product{}, &domain.ValidationError{Field: "price", Message: "price must be a positive number"}
	}

	unitType, err := domain.ParseUnitType(f.UnitType)
	if err != nil {
		return domain.Product{}, err
	}

	stock, err := parseNumber(f.Stock)
	if err != nil || stock < 0 {
		return domain.Product{}, &domain.ValidationError{Field: "stock", Message: "stock must be a non-negative number"}
	}
	if unitType.Discrete() {
		stock = math.Trunc(stock)
	}

	description := strings.TrimSpace(f.Description)
	if description == "" {
		description = opts.DefaultDescription
	}
	image := strings.TrimSpace(f.Image)
	if image == "" {
		image = opts.PlaceholderImage
	}

	return domain.Product{
		Name:        name,
		Price:       price,
		Stock:       stock,
		Description: description,
		Image:       image,
		UnitType:    unitType,
		Category:    strings.TrimSpace(f.Category),
	}, nil
}

func parseNumber(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}
