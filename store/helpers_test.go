package store

import (
	"context"
	"errors"
	"sync"

	"github.com/kendall-kelly/storefront/models"
)

// recordingUploader remembers every snapshot it receives
type recordingUploader struct {
	mu      sync.Mutex
	uploads map[string][]byte
	err     error
}

func newRecordingUploader() *recordingUploader {
	return &recordingUploader{uploads: make(map[string][]byte)}
}

func (u *recordingUploader) UploadSnapshot(ctx context.Context, name string, data []byte) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.err != nil {
		return u.err
	}
	u.uploads[name] = append([]byte(nil), data...)
	return nil
}

// stalledUploader never finishes on its own; it returns when ctx ends
type stalledUploader struct {
	ctxErrAtStart error
	ctxErrAtEnd   error
}

func (u *stalledUploader) UploadSnapshot(ctx context.Context, name string, data []byte) error {
	u.ctxErrAtStart = ctx.Err()
	<-ctx.Done()
	u.ctxErrAtEnd = ctx.Err()
	return u.ctxErrAtEnd
}

// memoryBackend is a Backend that keeps saved collections in memory and can
// be told to fail
type memoryBackend struct {
	products  []models.Product
	orders    []models.Order
	saveErr   error
	saveCalls int
}

var errDiskFull = errors.New("disk full")

func (b *memoryBackend) Name() string { return "memory" }

func (b *memoryBackend) LoadProducts() []models.Product {
	return append([]models.Product{}, b.products...)
}

func (b *memoryBackend) LoadOrders() []models.Order {
	return append([]models.Order{}, b.orders...)
}

func (b *memoryBackend) SaveProducts(ctx context.Context, products []models.Product) error {
	b.saveCalls++
	if b.saveErr != nil {
		return b.saveErr
	}
	b.products = append([]models.Product{}, products...)
	return nil
}

func (b *memoryBackend) SaveOrders(ctx context.Context, orders []models.Order) error {
	b.saveCalls++
	if b.saveErr != nil {
		return b.saveErr
	}
	b.orders = append([]models.Order{}, orders...)
	return nil
}
