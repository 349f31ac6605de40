package store

import (
	"context"
	"fmt"
	"time"

	"github.com/kendall-kelly/storefront/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// productRecord is the row shape of a product. Position keeps the
// collection's insertion order.
type productRecord struct {
	Position     int      `gorm:"primaryKey;autoIncrement:false"`
	ID           string   `gorm:"not null;index"`
	Title        string   `gorm:"not null"`
	Description  string   `gorm:"type:text"`
	Price        string
	CustomFields []string `gorm:"serializer:json"`
}

// TableName specifies the table name for the product rows
func (productRecord) TableName() string {
	return "products"
}

type orderRecord struct {
	Position int               `gorm:"primaryKey;autoIncrement:false"`
	ID       string            `gorm:"not null;index"`
	Items    []models.CartItem `gorm:"serializer:json"`
	Status   string            `gorm:"not null"`
	PlacedAt time.Time
}

// TableName specifies the table name for the order rows
func (orderRecord) TableName() string {
	return "orders"
}

// DatabaseBackend stores the collections in postgres or sqlite through
// gorm, with the same replace-everything semantics as the JSON files
type DatabaseBackend struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewDatabaseBackend migrates the tables and returns the backend
func NewDatabaseBackend(db *gorm.DB, logger *zap.Logger) (*DatabaseBackend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := db.AutoMigrate(&productRecord{}, &orderRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &DatabaseBackend{db: db, logger: logger}, nil
}

func (b *DatabaseBackend) Name() string {
	return b.db.Dialector.Name()
}

func (b *DatabaseBackend) LoadProducts() []models.Product {
	var records []productRecord
	if err := b.db.Order("position ASC").Find(&records).Error; err != nil {
		b.logger.Warn("Failed to load products, starting empty", zap.Error(err))
		return []models.Product{}
	}

	products := make([]models.Product, 0, len(records))
	for _, r := range records {
		products = append(products, models.Product{
			ID:           r.ID,
			Title:        r.Title,
			Description:  r.Description,
			Price:        models.Price(r.Price),
			CustomFields: r.CustomFields,
		})
	}
	return products
}

func (b *DatabaseBackend) LoadOrders() []models.Order {
	var records []orderRecord
	if err := b.db.Order("position ASC").Find(&records).Error; err != nil {
		b.logger.Warn("Failed to load orders, starting empty", zap.Error(err))
		return []models.Order{}
	}

	orders := make([]models.Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, models.Order{
			ID:        r.ID,
			Items:     r.Items,
			Status:    r.Status,
			CreatedAt: r.PlacedAt,
		})
	}
	return orders
}

func (b *DatabaseBackend) SaveProducts(ctx context.Context, products []models.Product) error {
	records := make([]productRecord, len(products))
	for i, p := range products {
		records[i] = productRecord{
			Position:     i + 1,
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Price:        string(p.Price),
			CustomFields: p.CustomFields,
		}
	}
	if err := replaceAll(ctx, b.db, records); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}
	return nil
}

func (b *DatabaseBackend) SaveOrders(ctx context.Context, orders []models.Order) error {
	records := make([]orderRecord, len(orders))
	for i, o := range orders {
		records[i] = orderRecord{
			Position: i + 1,
			ID:       o.ID,
			Items:    o.Items,
			Status:   o.Status,
			PlacedAt: o.CreatedAt,
		}
	}
	if err := replaceAll(ctx, b.db, records); err != nil {
		return fmt.Errorf("failed to save orders: %w", err)
	}
	return nil
}

// replaceAll deletes every row of T's table and inserts records in one
// transaction
func replaceAll[T any](ctx context.Context, db *gorm.DB, records []T) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(new(T)).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(records, 100).Error
	})
}
