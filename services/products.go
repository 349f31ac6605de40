package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kendall-kelly/storefront/models"
)

// ProductStore is the part of the store product creation writes to
type ProductStore interface {
	AddProduct(ctx context.Context, p models.Product) error
}

// ParseCustomFields splits a comma separated list of field names. Names are
// trimmed; empty names and repeats are dropped.
func ParseCustomFields(csv string) []string {
	fields := []string{}
	seen := make(map[string]bool)
	for _, part := range strings.Split(csv, ",") {
		name := strings.TrimSpace(part)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		fields = append(fields, name)
	}
	return fields
}

// CreateProduct adds a product to the catalog. Price is stored as given.
func CreateProduct(ctx context.Context, products ProductStore, title, description, price, customFields string) (models.Product, error) {
	product := models.Product{
		ID:           NewID(),
		Title:        title,
		Description:  description,
		Price:        models.Price(price),
		CustomFields: ParseCustomFields(customFields),
	}

	if err := products.AddProduct(ctx, product); err != nil {
		return product, fmt.Errorf("failed to save product: %w", err)
	}
	return product, nil
}
