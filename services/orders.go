package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kendall-kelly/storefront/models"
)

// SuggestedStatuses are offered in the admin form. Any other status is
// accepted as well.
var SuggestedStatuses = []string{
	models.StatusPending,
	"Processing",
	"Shipped",
	"Delivered",
	"Cancelled",
}

// OrderStore is the part of the store the order pipeline writes to
type OrderStore interface {
	AddOrder(ctx context.Context, o models.Order) error
	SetOrderStatus(ctx context.Context, id, status string) (models.Order, error)
}

// Checkout turns cart into a pending order and persists it. The order holds
// its own copy of the items. An empty cart still produces an order.
// Clearing the session cart is the caller's job.
func Checkout(ctx context.Context, orders OrderStore, cart []models.CartItem) (models.Order, error) {
	items := make([]models.CartItem, 0, len(cart))
	for _, item := range cart {
		items = append(items, item.Clone())
	}

	order := models.Order{
		ID:        NewID(),
		Items:     items,
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := orders.AddOrder(ctx, order); err != nil {
		return order, fmt.Errorf("failed to save order: %w", err)
	}
	return order, nil
}

// UpdateOrderStatus sets the status of order id. store.ErrNotFound is
// returned unchanged when the order does not exist.
func UpdateOrderStatus(ctx context.Context, orders OrderStore, id, status string) (models.Order, error) {
	return orders.SetOrderStatus(ctx, id, strings.TrimSpace(status))
}
