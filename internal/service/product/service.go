package product

import (
	"pos-catalog/internal/domain"
	"pos-catalog/internal/store"
)

type Service struct {
	repo productRepo
}

type productRepo interface {
	Products() []domain.Product
	Product(id string) (domain.Product, error)
	AddProduct(fields store.ProductFields) (domain.Product, error)
	UpdateProduct(id string, fields store.ProductFields) (domain.Product, error)
	DeleteProduct(id string) bool
	IsOutOfStock(id string) bool
	Quantity(id string) float64
}

func New(repo productRepo) *Service {
	return &Service{repo: repo}
}

// Listing is a catalog product as shown on the register, with its cart state.
type Listing struct {
	domain.Product
	CartQuantity float64 `json:"cartQuantity"`
	OutOfStock   bool    `json:"outOfStock"`
}

// All returns the unfiltered catalog in display order.
func (s *Service) All() []domain.Product {
	return s.repo.Products()
}

// List returns the catalog filtered by search query and category.
func (s *Service) List(query, category string) []Listing {
	products := store.FilterProducts(s.repo.Products(), query, category)
	out := make([]Listing, 0, len(products))
	for _, p := range products {
		out = append(out, s.listing(p))
	}
	return out
}

func (s *Service) Get(id string) (*Listing, error) {
	p, err := s.repo.Product(id)
	if err != nil {
		return nil, err
	}
	l := s.listing(p)
	return &l, nil
}

func (s *Service) Create(fields store.ProductFields) (*domain.Product, error) {
	p, err := s.repo.AddProduct(fields)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) Update(id string, fields store.ProductFields) (*domain.Product, error) {
	p, err := s.repo.UpdateProduct(id, fields)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) Delete(id string) error {
	if !s.repo.DeleteProduct(id) {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) listing(p domain.Product) Listing {
	return Listing{
		Product:      p,
		CartQuantity: s.repo.Quantity(p.ID),
		OutOfStock:   s.repo.IsOutOfStock(p.ID),
	}
}
