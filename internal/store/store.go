// Package store holds the in-memory product catalog and the current cart.
//
// Every exported method takes the store lock for its whole duration, so each
// mutation is applied completely before the next one starts. Read methods
// return copies; callers never share memory with the store.
package store

import (
	"fmt"
	"io"
	"log"
	"math"
	"strings"
	"sync"

	"pos-catalog/internal/domain"
)

type Store struct {
	mu       sync.Mutex
	opts     Options
	logger   *log.Logger
	products []domain.Product

	cart      map[string]domain.CartEntry
	// cartOrder keeps cart keys in the order they were first added.
	cartOrder []string
}

// New builds an empty Store.
func New(opts Options, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{
		opts:   opts.WithDefaults(),
		logger: logger,
		cart:   make(map[string]domain.CartEntry),
	}
}

// Options returns the effective options, defaults applied.
func (s *Store) Options() Options {
	return s.opts
}

// Seed replaces the product list and empties the cart.
func (s *Store) Seed(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.UnitType == "" {
			p.UnitType = domain.UnitTypeUnit
		}
		s.products = append(s.products, p)
	}
	s.clearCart()
	s.logger.Printf("store: seeded count=%d", len(s.products))
}

func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Product(id string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Product{}, domain.ErrNotFound
	}
	return s.products[idx], nil
}

// Cart returns the cart entries in the order they were added.
func (s *Store) Cart() []domain.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartEntries()
}

// Quantity returns the cart quantity of a product, zero when absent.
func (s *Store) Quantity(productID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart[productID].Quantity
}

// IsOutOfStock reports whether no more of the product can be added to the cart.
func (s *Store) IsOutOfStock(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return true
	}
	return s.cart[productID].Quantity >= s.products[idx].Stock
}

// AddToCart adds one of the product to the cart. It reports false and leaves
// the cart untouched when the product does not exist or the new quantity would
// exceed the product stock.
func (s *Store) AddToCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return false
	}
	product := s.products[idx]

	entry, ok := s.cart[productID]
	if !ok {
		entry = snapshot(product, 0)
	}
	next := entry.Quantity + 1
	if next > product.Stock {
		return false
	}
	entry.Quantity = next
	s.putEntry(entry)
	s.logger.Printf("store: add to cart product_id=%s quantity=%v", productID, next)
	return true
}

// RemoveFromCart takes one of the product out of the cart. Entries with a
// fractional quantity are removed entirely.
func (s *Store) RemoveFromCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cart[productID]
	if !ok {
		return false
	}
	if entry.Quantity != math.Trunc(entry.Quantity) || entry.Quantity <= 1 {
		s.deleteEntry(productID)
		s.logger.Printf("store: remove from cart product_id=%s quantity=0", productID)
		return true
	}
	entry.Quantity--
	s.cart[productID] = entry
	s.logger.Printf("store: remove from cart product_id=%s quantity=%v", productID, entry.Quantity)
	return true
}

// SetQuantity sets the cart quantity of a product, clamped to its stock.
// Quantities of discrete products are rounded to the nearest integer first.
// A quantity at or below zero removes the entry.
func (s *Store) SetQuantity(productID string, quantity float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if math.IsNaN(quantity) {
		return false
	}
	idx := s.indexOf(productID)
	if idx < 0 {
		return false
	}
	product := s.products[idx]

	if product.UnitType.Discrete() {
		quantity = math.Round(quantity)
	}
	quantity = math.Min(quantity, product.Stock)
	if quantity <= 0 {
		_, existed := s.cart[productID]
		s.deleteEntry(productID)
		if existed {
			s.logger.Printf("store: set quantity product_id=%s quantity=0", productID)
		}
		return existed
	}

	entry, ok := s.cart[productID]
	if !ok {
		entry = snapshot(product, 0)
	}
	entry.Quantity = quantity
	s.putEntry(entry)
	s.logger.Printf("store: set quantity product_id=%s quantity=%v", productID, quantity)
	return true
}

// RemoveItemCompletely deletes the cart entry of a product if present.
func (s *Store) RemoveItemCompletely(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cart[productID]; !ok {
		return false
	}
	s.deleteEntry(productID)
	s.logger.Printf("store: remove item product_id=%s", productID)
	return true
}

// AddProduct validates the fields and appends a new product with a fresh ID.
func (s *Store) AddProduct(fields ProductFields) (domain.Product, error) {
	product, err := fields.Validate(s.opts)
	if err != nil {
		return domain.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID()
	if err != nil {
		return domain.Product{}, err
	}
	product.ID = id
	s.products = append(s.products, product)
	s.logger.Printf("store: added product id=%s name=%q", product.ID, product.Name)
	return product, nil
}

// UpdateProduct replaces the fields of an existing product in place. A blank
// image keeps the current one. Cart snapshots are not refreshed, but a cart
// quantity above the new stock is lowered to it.
func (s *Store) UpdateProduct(productID string, fields ProductFields) (domain.Product, error) {
	imageless := strings.TrimSpace(fields.Image) == ""
	product, err := fields.Validate(s.opts)
	if err != nil {
		return domain.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return domain.Product{}, domain.ErrNotFound
	}
	product.ID = productID
	if imageless {
		product.Image = s.products[idx].Image
	}
	s.products[idx] = product

	if entry, ok := s.cart[productID]; ok && entry.Quantity > product.Stock {
		if product.Stock <= 0 {
			s.deleteEntry(productID)
		} else {
			entry.Quantity = product.Stock
			s.cart[productID] = entry
		}
	}
	s.logger.Printf("store: updated product id=%s name=%q", product.ID, product.Name)
	return product, nil
}

// DeleteProduct removes a product and its cart entry. It reports whether the
// product existed.
func (s *Store) DeleteProduct(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return false
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	s.deleteEntry(productID)
	s.logger.Printf("store: deleted product id=%s", productID)
	return true
}

// Checkout subtracts every cart quantity from its product stock and empties
// the cart as one step. It returns the entries that were checked out.
func (s *Store) Checkout() []domain.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cartEntries()
	for _, entry := range entries {
		if idx := s.indexOf(entry.ProductID); idx >= 0 {
			s.products[idx].Stock -= entry.Quantity
		}
	}
	s.clearCart()
	s.logger.Printf("store: checkout lines=%d", len(entries))
	return entries
}

// Cancel empties the cart without touching stock.
func (s *Store) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.cart)
	s.clearCart()
	s.logger.Printf("store: cancel lines=%d", n)
}

func (s *Store) indexOf(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) nextID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.opts.NewID()
		if id != "" && s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("store: no unique product id after %d attempts", maxIDAttempts)
}

func (s *Store) cartEntries() []domain.CartEntry {
	out := make([]domain.CartEntry, 0, len(s.cartOrder))
	for _, id := range s.cartOrder {
		out = append(out, s.cart[id])
	}
	return out
}

func (s *Store) putEntry(entry domain.CartEntry) {
	if _, ok := s.cart[entry.ProductID]; !ok {
		s.cartOrder = append(s.cartOrder, entry.ProductID)
	}
	s.cart[entry.ProductID] = entry
}

func (s *Store) deleteEntry(productID string) {
	if _, ok := s.cart[productID]; !ok {
		return
	}
	delete(s.cart, productID)
	for i, id := range s.cartOrder {
		if id == productID {
			s.cartOrder = append(s.cartOrder[:i], s.cartOrder[i+1:]...)
			break
		}
	}
}

func (s *Store) clearCart() {
	s.cart = make(map[string]domain.CartEntry)
	s.cartOrder = nil
}

func snapshot(p domain.Product, quantity float64) domain.CartEntry {
	return domain.CartEntry{
		ProductID: p.ID,
		Quantity:  quantity,
		Name:      p.Name,
		Price:     p.Price,
		UnitType:  p.UnitType,
		Image:     p.Image,
	}
}
