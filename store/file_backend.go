package store

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/kendall-kelly/storefront/models"
	"go.uber.org/zap"
)

const (
	ProductsFile = "products.json"
	OrdersFile   = "orders.json"

	// DefaultUploadTimeout bounds each snapshot upload; saves hold the store lock
	DefaultUploadTimeout = 5 * time.Second
)

// FileBackend keeps each collection in a pretty-printed JSON array file
// inside one directory
type FileBackend struct {
	dir           string
	uploader      SnapshotUploader
	uploadTimeout time.Duration
	logger        *zap.Logger
}

// NewFileBackend creates a backend rooted at dir. uploader may be nil.
func NewFileBackend(dir string, uploader SnapshotUploader, logger *zap.Logger) *FileBackend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileBackend{dir: dir, uploader: uploader, uploadTimeout: DefaultUploadTimeout, logger: logger}
}

func (b *FileBackend) Name() string {
	return "file"
}

func (b *FileBackend) LoadProducts() []models.Product {
	return loadOrDefault(b, ProductsFile, []models.Product{})
}

func (b *FileBackend) LoadOrders() []models.Order {
	return loadOrDefault(b, OrdersFile, []models.Order{})
}

func (b *FileBackend) SaveProducts(ctx context.Context, products []models.Product) error {
	return b.save(ctx, ProductsFile, products)
}

func (b *FileBackend) SaveOrders(ctx context.Context, orders []models.Order) error {
	return b.save(ctx, OrdersFile, orders)
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.dir, name)
}

func (b *FileBackend) save(ctx context.Context, name string, v any) error {
	data, err := writeJSON(b.path(name), v)
	if err != nil {
		return err
	}

	if b.uploader != nil {
		// the file is already written; a client going away must not skip the copy
		uploadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.uploadTimeout)
		defer cancel()
		if err := b.uploader.UploadSnapshot(uploadCtx, name, data); err != nil {
			b.logger.Warn("Snapshot upload failed", zap.String("file", name), zap.Error(err))
		}
	}
	return nil
}

func loadOrDefault[T any](b *FileBackend, name string, def []T) []T {
	v, err := readJSON[[]T](b.path(name))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		b.logger.Debug("Data file not found, starting empty", zap.String("file", name))
		return def
	case err != nil:
		b.logger.Warn("Data file unreadable, starting empty", zap.String("file", name), zap.Error(err))
		return def
	case v == nil:
		// a file holding "null"
		return def
	}
	return v
}
