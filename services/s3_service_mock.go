package services

import (
	"context"
	"sync"

	"github.com/kendall-kelly/storefront/store"
)

var _ store.SnapshotUploader = (*MockS3Service)(nil)

// MockS3Service is a mock implementation of S3Service for testing
type MockS3Service struct {
	uploadedFiles map[string][]byte // map of S3 key to file content
	prefix        string
	err           error
	mu            sync.RWMutex
}

// NewMockS3Service creates a new mock S3 service
func NewMockS3Service(prefix string) *MockS3Service {
	return &MockS3Service{
		uploadedFiles: make(map[string][]byte),
		prefix:        prefix,
	}
}

// FailWith makes every following upload return err
func (m *MockS3Service) FailWith(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// UploadSnapshot simulates uploading a data file
func (m *MockS3Service) UploadSnapshot(ctx context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.uploadedFiles[SnapshotKey(m.prefix, name)] = append([]byte(nil), data...)
	return nil
}

// GetUploadedFiles returns all uploaded files (for testing assertions)
func (m *MockS3Service) GetUploadedFiles() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make(map[string][]byte, len(m.uploadedFiles))
	for k, v := range m.uploadedFiles {
		files[k] = v
	}
	return files
}

// FileExists checks if a file exists in mock storage
func (m *MockS3Service) FileExists(s3Key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.uploadedFiles[s3Key]
	return exists
}

// Clear removes all files from mock storage
func (m *MockS3Service) Clear() {
	m.mu.Lock()
	m.uploadedFiles = make(map[string][]byte)
	m.mu.Unlock()
}
