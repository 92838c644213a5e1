package store

import (
	"errors"
	"fmt"
	"testing"

	"pos-catalog/internal/domain"
)

func newTestStore(t *testing.T, products ...domain.Product) *Store {
	t.Helper()
	seq := 0
	s := New(Options{NewID: func() string {
		seq++
		return fmt.Sprintf("gen-%d", seq)
	}}, nil)
	s.Seed(products)
	return s
}

func unitProduct(id string, price, stock float64) domain.Product {
	return domain.Product{ID: id, Name: "Product " + id, Price: price, Stock: stock, UnitType: domain.UnitTypeUnit}
}

func TestAddToCartCreatesSnapshotAndIncrements(t *testing.T) {
	s := newTestStore(t, unitProduct("a", 10.99, 3))

	if !s.AddToCart("a") {
		t.Fatalf("expected first add to succeed")
	}
	if !s.AddToCart("a") {
		t.Fatalf("expected second add to succeed")
	}
	cart := s.Cart()
	if len(cart) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(cart))
	}
	if cart[0].Quantity != 2 || cart[0].Name != "Product a" || cart[0].Price != 10.99 {
		t.Fatalf("unexpected entry %+v", cart[0])
	}
}

func TestAddToCartStopsAtStock(t *testing.T) {
	s := newTestStore(t, unitProduct("a", 1, 2))

	s.AddToCart("a")
	s.AddToCart("a")
	if s.AddToCart("a") {
		t.Fatalf("expected add beyond stock to be rejected")
	}
	if got := s.Quantity("a"); got != 2 {
		t.Fatalf("expected quantity 2, got %v", got)
	}
	if !s.IsOutOfStock("a") {
		t.Fatalf("expected product to be out of stock")
	}
}

func TestAddToCartZeroStockAndMissingProduct(t *testing.T) {
	s := newTestStore(t, unitProduct("a", 1, 0))

	if s.AddToCart("a") {
		t.Fatalf("expected add with zero stock to be rejected")
	}
	if s.AddToCart("missing") {
		t.Fatalf("expected add of unknown product to be a no-op")
	}
	if len(s.Cart()) != 0 {
		t.Fatalf("expected empty cart, got %+v", s.Cart())
	}
}

func TestRemoveFromCart(t *testing.T) {
	s := newTestStore(t, unitProduct("a", 1, 5))
	s.SetQuantity("a", 2)

	s.RemoveFromCart("a")
	if got := s.Quantity("a"); got != 1 {
		t.Fatalf("expected quantity 1, got %v", got)
	}
	s.RemoveFromCart("a")
	if len(s.Cart()) != 0 {
		t.Fatalf("expected entry removed at quantity 1, got %+v", s.Cart())
	}
	if s.RemoveFromCart("a") {
		t.Fatalf("expected remove on absent entry to be a no-op")
	}
}

func TestRemoveFromCartFractionalRemovesEntry(t *testing.T) {
	s := newTestStore(t, domain.Product{ID: "w", Name: "Flour", Price: 0.02, Stock: 5000, UnitType: domain.UnitTypeWeightG})
	s.SetQuantity("w", 250.5)

	s.RemoveFromCart("w")
	if len(s.Cart()) != 0 {
		t.Fatalf("expected fractional entry to be removed, got %+v", s.Cart())
	}
}

func TestSetQuantityNonPositiveRemoves(t *testing.T) {
	for _, qty := range []float64{0, -5} {
		s := newTestStore(t, unitProduct("a", 1, 5))
		s.AddToCart("a")

		s.SetQuantity("a", qty)
		if len(s.Cart()) != 0 {
			t.Fatalf("quantity %v: expected entry removed, got %+v", qty, s.Cart())
		}
	}
}

func TestSetQuantityClampsToStock(t *testing.T) {
	s := newTestStore(t, unitProduct("a", 1, 4))

	s.SetQuantity("a", 10)
	if got := s.Quantity("a"); got != 4 {
		t.Fatalf("expected quantity clamped to 4, got %v", got)
	}
}

func TestSetQuantityRoundsDiscreteUnits(t *testing.T) {
	s := newTestStore(t,
		unitProduct("a", 1, 10),
		domain.Product{ID: "kg", Name: "Apples", Price: 3.5, Stock: 2.5, UnitType: domain.UnitTypeWeightKg},
	)

	s.SetQuantity("a", 2.6)
	if got := s.Quantity("a"); got != 3 {
		t.Fatalf("expected rounded quantity 3, got %v", got)
	}
	s.SetQuantity("a", 0.4)
	if got := s.Quantity("a"); got != 0 {
		t.Fatalf("expected 0.4 to round down and remove, got %v", got)
	}
	s.SetQuantity("kg", 1.25)
	if got := s.Quantity("kg"); got != 1.25 {
		t.Fatalf("expected fractional weight quantity, got %v", got)
	}
	s.SetQuantity("kg", 7)
	if got := s.Quantity("kg"); got != 2.5 {
		t.Fatalf("expected weight quantity clamped to 2.5, got %v", got)
	}
}

func TestSetQuantityUnknownProduct(t *testing.T) {
	s := newTestStore(t)
	if s.SetQuantity("missing", 3) {
		t.Fatalf("expected no-op for unknown product")
	}
}

func TestCartNeverExceedsStock(t *testing.T) {
	s := newTestStore(t, unitProduct("a", 1, 3), unitProduct("b", 1, 1))
	ops := []func(){
		func() { s.AddToCart("a") },
		func() { s.SetQuantity("a", 9) },
		func() { s.AddToCart("a") },
		func() { s.AddToCart("b") },
		func() { s.AddToCart("b") },
		func() { s.SetQuantity("b", 2) },
		func() { s.RemoveFromCart("a") },
		func() { s.AddToCart("a") },
		func() { s.AddToCart("a") },
	}
	stock := map[string]float64{"a": 3, "b": 1}
	for i, op := range ops {
		op()
		for _, entry := range s.Cart() {
			if entry.Quantity <= 0 {
				t.Fatalf("step %d: zero quantity entry %+v", i, entry)
			}
			if entry.Quantity > stock[entry.ProductID] {
				t.Fatalf("step %d: quantity %v exceeds stock for %s", i, entry.Quantity, entry.ProductID)
			}
		}
	}
}

func TestRemoveItemCompletely(t *testing.T) {
	s := newTestStore(t, unitProduct("a", 1, 5))
	s.SetQuantity("a", 4)

	if !s.RemoveItemCompletely("a") {
		t.Fatalf("expected entry to be removed")
	}
	if s.RemoveItemCompletely("a") {
		t.Fatalf("expected second removal to be a no-op")
	}
}

func TestCartKeepsInsertionOrder(t *testing.T) {
	s := newTestStore(t, unitProduct("a", 1, 5), unitProduct("b", 1, 5), unitProduct("c", 1, 5))
	s.AddToCart("c")
	s.AddToCart("a")
	s.AddToCart("b")
	s.RemoveItemCompletely("a")
	s.AddToCart("a")

	cart := s.Cart()
	want := []string{"c", "b", "a"}
	for i, id := range want {
		if cart[i].ProductID != id {
			t.Fatalf("expected order %v, got %+v", want, cart)
		}
	}
}

func TestAddProduct(t *testing.T) {
	s := newTestStore(t)

	p, err := s.AddProduct(ProductFields{Name: "  Coffee  ", Price: "4.5", Stock: "12"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "gen-1" || p.Name != "Coffee" || p.Price != 4.5 || p.Stock != 12 {
		t.Fatalf("unexpected product %+v", p)
	}
	if p.Description != DefaultDescription || p.Image != DefaultPlaceholderImage || p.UnitType != domain.UnitTypeUnit {
		t.Fatalf("expected defaults applied, got %+v", p)
	}
	if len(s.Products()) != 1 {
		t.Fatalf("expected product appended")
	}
}

func TestAddProductRejectsEmptyName(t *testing.T) {
	s := newTestStore(t, unitProduct("a", 1, 1))

	_, err := s.AddProduct(ProductFields{Name: "", Price: "5", Stock: "1"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "name" {
		t.Fatalf("expected name field error, got %v", err)
	}
	if len(s.Products()) != 1 {
		t.Fatalf("expected product list unchanged")
	}
}

func TestAddProductSkipsTakenIDs(t *testing.T) {
	ids := []string{"a", "a", "fresh"}
	s := New(Options{NewID: func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}}, nil)
	s.Seed([]domain.Product{unitProduct("a", 1, 1)})

	p, err := s.AddProduct(ProductFields{Name: "New", Price: "1", Stock: "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "fresh" {
		t.Fatalf("expected fresh id, got %s", p.ID)
	}
}

func TestAddProductDefaultIDsAreUnique(t *testing.T) {
	s := New(Options{}, nil)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p, err := s.AddProduct(ProductFields{Name: "P", Price: "1", Stock: "1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestUpdateProductKeepsCartSnapshot(t *testing.T) {
	s := newTestStore(t, domain.Product{ID: "a", Name: "Old", Price: 2, Stock: 5, Image: "img://old", UnitType: domain.UnitTypeUnit})
	s.SetQuantity("a", 2)

	updated, err := s.UpdateProduct("a", ProductFields{Name: "New", Price: "3", Stock: "5", Category: "Drinks"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != "a" || updated.Name != "New" || updated.Image != "img://old" || updated.Category != "Drinks" {
		t.Fatalf("unexpected updated product %+v", updated)
	}
	entry := s.Cart()[0]
	if entry.Name != "Old" || entry.Price != 2 {
		t.Fatalf("expected stale snapshot, got %+v", entry)
	}
}

func TestUpdateProductLowersCartQuantityToStock(t *testing.T) {
	s := newTestStore(t, unitProduct("a", 1, 5), unitProduct("b", 1, 5))
	s.SetQuantity("a", 4)
	s.SetQuantity("b", 2)

	if _, err := s.UpdateProduct("a", ProductFields{Name: "A", Price: "1", Stock: "2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Quantity("a"); got != 2 {
		t.Fatalf("expected quantity lowered to 2, got %v", got)
	}
	if _, err := s.UpdateProduct("b", ProductFields{Name: "B", Price: "1", Stock: "0"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Quantity("b"); got != 0 {
		t.Fatalf("expected entry removed at zero stock, got %v", got)
	}
}

func TestUpdateProductErrors(t *testing.T) {
	s := newTestStore(t, unitProduct("a", 1, 5))

	if _, err := s.UpdateProduct("missing", ProductFields{Name: "X", Price: "1", Stock: "1"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := s.UpdateProduct("a", ProductFields{Name: "X", Price: "0", Stock: "1"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	p, _ := s.Product("a")
	if p.Name != "Product a" || p.Price != 1 {
		t.Fatalf("expected product unchanged, got %+v", p)
	}
}

func TestDeleteProductCascadesToCart(t *testing.T) {
	s := newTestStore(t, unitProduct("a", 1, 5), unitProduct("b", 1, 5))
	s.AddToCart("a")
	s.AddToCart("b")

	if !s.DeleteProduct("a") {
		t.Fatalf("expected product deleted")
	}
	if _, err := s.Product("a"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected product gone, got %v", err)
	}
	if s.Quantity("a") != 0 || len(s.Cart()) != 1 {
		t.Fatalf("expected cart entry removed, got %+v", s.Cart())
	}
	if s.AddToCart("a") {
		t.Fatalf("expected add after delete to be a no-op")
	}
	if s.DeleteProduct("a") {
		t.Fatalf("expected second delete to report false")
	}
}

func TestCheckout(t *testing.T) {
	s := newTestStore(t, unitProduct("A", 1, 10), unitProduct("B", 1, 3))
	s.SetQuantity("A", 2)
	s.SetQuantity("B", 1)

	entries := s.Checkout()
	if len(entries) != 2 {
		t.Fatalf("expected 2 checked out entries, got %d", len(entries))
	}
	a, _ := s.Product("A")
	b, _ := s.Product("B")
	if a.Stock != 8 || b.Stock != 2 {
		t.Fatalf("unexpected stock A=%v B=%v", a.Stock, b.Stock)
	}
	if len(s.Cart()) != 0 {
		t.Fatalf("expected empty cart after checkout")
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	s := newTestStore(t, unitProduct("A", 1, 10))
	if entries := s.Checkout(); len(entries) != 0 {
		t.Fatalf("expected no entries, got %+v", entries)
	}
	a, _ := s.Product("A")
	if a.Stock != 10 {
		t.Fatalf("expected stock unchanged, got %v", a.Stock)
	}
}

func TestCancelKeepsStock(t *testing.T) {
	s := newTestStore(t, unitProduct("A", 1, 10))
	s.SetQuantity("A", 4)

	s.Cancel()
	if len(s.Cart()) != 0 {
		t.Fatalf("expected empty cart")
	}
	a, _ := s.Product("A")
	if a.Stock != 10 {
		t.Fatalf("expected stock unchanged, got %v", a.Stock)
	}
}

func TestCheckoutIsAtomicUnderConcurrency(t *testing.T) {
	s := newTestStore(t, unitProduct("A", 1, 1000))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			s.AddToCart("A")
			s.Checkout()
		}
	}()
	for i := 0; i < 200; i++ {
		cart := s.Cart()
		p, _ := s.Product("A")
		if p.Stock < 0 {
			t.Fatalf("negative stock %v", p.Stock)
		}
		for _, e := range cart {
			if e.Quantity <= 0 {
				t.Fatalf("zero quantity entry %+v", e)
			}
		}
	}
	<-done
	p, _ := s.Product("A")
	if p.Stock != 800 {
		t.Fatalf("expected stock 800 after 200 checkouts, got %v", p.Stock)
	}
}
