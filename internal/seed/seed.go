package seed

import (
	"fmt"

	"pos-catalog/internal/domain"
)

type productSeed struct {
	Name       string
	PriceCents int64
	Stock      float64
}

// Seeder receives the initial product list.
type Seeder interface {
	Seed(products []domain.Product)
}

// Products returns the demo catalog the register starts with.
func Products(image, description string) []domain.Product {
	seeds := []productSeed{
		{Name: "Product 1", PriceCents: 1099, Stock: 10},
		{Name: "Product 2", PriceCents: 1599, Stock: 5},
		{Name: "Product 3", PriceCents: 899, Stock: 15},
		{Name: "Product 4", PriceCents: 1299, Stock: 3},
		{Name: "Product 5", PriceCents: 2099, Stock: 8},
		{Name: "Product 6", PriceCents: 1899, Stock: 12},
		{Name: "Product 7", PriceCents: 2599, Stock: 2},
		{Name: "Product 8", PriceCents: 1499, Stock: 20},
	}

	products := make([]domain.Product, 0, len(seeds))
	for i, s := range seeds {
		products = append(products, domain.Product{
			ID:          fmt.Sprintf("%d", i+1),
			Name:        s.Name,
			Price:       float64(s.PriceCents) / 100,
			Stock:       s.Stock,
			Description: description,
			Image:       image,
			UnitType:    domain.UnitTypeUnit,
		})
	}
	return products
}

// Apply seeds the store with products, or with the demo catalog when products is empty.
func Apply(store Seeder, products []domain.Product, image, description string) int {
	if len(products) == 0 {
		products = Products(image, description)
	}
	store.Seed(products)
	return len(products)
}
