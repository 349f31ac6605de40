package store

import (
	"context"

	"github.com/kendall-kelly/storefront/models"
)

// Products returns every product in insertion order
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Product looks a product up by exact id
func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// AddProduct appends p to the catalog and persists the whole catalog
func (s *Store) AddProduct(ctx context.Context, p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	return s.backend.SaveProducts(ctx, s.products)
}
