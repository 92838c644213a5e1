package category

import (
	"pos-catalog/internal/domain"
	"pos-catalog/internal/store"
)

type Service struct {
	repo categoryRepo
}

type categoryRepo interface {
	Products() []domain.Product
}

func New(repo categoryRepo) *Service {
	return &Service{repo: repo}
}

// List returns the distinct categories of the current catalog.
func (s *Service) List() []string {
	return store.Categories(s.repo.Products())
}

// Options returns the category selector entries, "All" first.
func (s *Service) Options() []string {
	return store.CategoryOptions(s.repo.Products())
}
