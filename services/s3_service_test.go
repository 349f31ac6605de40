package services

import (
	"context"
	"errors"
	"testing"

	appConfig "github.com/kendall-kelly/storefront/config"
	"github.com/kendall-kelly/storefront/models"
	"github.com/kendall-kelly/storefront/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotKey(t *testing.T) {
	assert.Equal(t, "snapshots/orders.json", SnapshotKey("snapshots", "orders.json"))
	assert.Equal(t, "backups/shop/products.json", SnapshotKey("backups/shop/", "products.json"))
	assert.Equal(t, "products.json", SnapshotKey("", "products.json"))
}

func TestNewS3ServiceWithStaticCredentials(t *testing.T) {
	svc, err := NewS3Service(context.Background(), &appConfig.Config{
		AWSRegion:          "us-east-1",
		AWSS3Bucket:        "test-bucket",
		AWSAccessKeyID:     "test-key",
		AWSSecretAccessKey: "test-secret",
		SnapshotPrefix:     "snapshots",
	})
	require.NoError(t, err)
	assert.Equal(t, "test-bucket", svc.bucket)
	assert.Equal(t, "snapshots", svc.prefix)
}

func TestMockS3ServiceMirrorsFileBackendWrites(t *testing.T) {
	mock := NewMockS3Service("snapshots")
	s := store.New(store.NewFileBackend(t.TempDir(), mock, nil))

	_, err := CreateProduct(context.Background(), s, "Mug", "", "5", "color")
	require.NoError(t, err)
	_, err = Checkout(context.Background(), s, []models.CartItem{})
	require.NoError(t, err)

	assert.True(t, mock.FileExists("snapshots/products.json"))
	assert.True(t, mock.FileExists("snapshots/orders.json"))
	assert.Len(t, mock.GetUploadedFiles(), 2)

	mock.Clear()
	assert.Empty(t, mock.GetUploadedFiles())
}

func TestMockS3ServiceFailureDoesNotFailCheckout(t *testing.T) {
	mock := NewMockS3Service("snapshots")
	mock.FailWith(errors.New("access denied"))
	s := store.New(store.NewFileBackend(t.TempDir(), mock, nil))

	_, err := Checkout(context.Background(), s, nil)
	assert.NoError(t, err)
	assert.False(t, mock.FileExists("snapshots/orders.json"))
}
