package store

import (
	"errors"
	"sync"

	"github.com/kendall-kelly/storefront/models"
)

// ErrNotFound is returned when no record has the requested id
var ErrNotFound = errors.New("not found")

// Store owns the product and order collections. Reads are served from
// memory; every mutation rewrites the affected collection through the
// backend while holding the write lock, so mutations never interleave.
//
// A failed save is reported to the caller but the in-memory change is kept.
type Store struct {
	mu       sync.RWMutex
	backend  Backend
	products []models.Product
	orders   []models.Order
}

// Stats summarises the store for the status endpoint
type Stats struct {
	Backend  string `json:"backend"`
	Products int    `json:"products"`
	Orders   int    `json:"orders"`
}

// New creates a store and loads both collections from backend
func New(backend Backend) *Store {
	s := &Store{backend: backend}
	s.Reload()
	return s
}

// Reload replaces the in-memory collections with what the backend holds
func (s *Store) Reload() {
	products := s.backend.LoadProducts()
	orders := s.backend.LoadOrders()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.orders = orders
}

// Stats returns collection sizes and the backend name
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Backend:  s.backend.Name(),
		Products: len(s.products),
		Orders:   len(s.orders),
	}
}
