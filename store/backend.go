package store

import (
	"context"

	"github.com/kendall-kelly/storefront/models"
)

// Backend persists the two collections. Saves always receive the complete
// collection and replace whatever was stored before. Loads never fail: a
// backend that cannot read its data returns an empty collection.
type Backend interface {
	Name() string
	LoadProducts() []models.Product
	LoadOrders() []models.Order
	SaveProducts(ctx context.Context, products []models.Product) error
	SaveOrders(ctx context.Context, orders []models.Order) error
}

// SnapshotUploader receives a copy of every data file the file backend writes
type SnapshotUploader interface {
	UploadSnapshot(ctx context.Context, name string, data []byte) error
}
