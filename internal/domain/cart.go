package domain

import "time"

// CartEntry is a point-in-time copy of a product plus the quantity in the cart.
// Catalog edits made after the entry was created are not reflected here.
type CartEntry struct {
	ProductID string   `json:"productId"`
	Quantity  float64  `json:"quantity"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	UnitType  UnitType `json:"unitType"`
	Image     string   `json:"image,omitempty"`
}

type CartLine struct {
	ProductID  string   `json:"productId"`
	Name       string   `json:"name"`
	UnitType   UnitType `json:"unitType"`
	Quantity   float64  `json:"quantity"`
	UnitPrice  string   `json:"unitPrice"`
	TotalPrice string   `json:"totalPrice"`
}

type CartSummary struct {
	Lines         []CartLine `json:"lineItems"`
	TotalQuantity float64    `json:"totalQuantity"`
	TotalPrice    string     `json:"totalPrice"`
}

// Receipt describes a completed checkout.
type Receipt struct {
	Lines        []CartLine `json:"lineItems"`
	TotalPrice   string     `json:"totalPrice"`
	CheckedOutAt time.Time  `json:"checkedOutAt"`
}
