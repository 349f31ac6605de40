package store

import (
	"context"

	"github.com/kendall-kelly/storefront/models"
)

// Orders returns every order in creation order
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Order looks an order up by exact id
func (s *Store) Order(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.orderIndex(id); i >= 0 {
		return s.orders[i], true
	}
	return models.Order{}, false
}

// AddOrder appends o and persists every order
func (s *Store) AddOrder(ctx context.Context, o models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
	return s.backend.SaveOrders(ctx, s.orders)
}

// SetOrderStatus overwrites the status of order id and persists every
// order. Nothing is written when the order does not exist.
func (s *Store) SetOrderStatus(ctx context.Context, id, status string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.orderIndex(id)
	if i < 0 {
		return models.Order{}, ErrNotFound
	}
	s.orders[i].Status = status
	return s.orders[i], s.backend.SaveOrders(ctx, s.orders)
}

// orderIndex must be called with the lock held
func (s *Store) orderIndex(id string) int {
	for i, o := range s.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}
