package testutil

import (
	"context"
	"sync"

	"github.com/pointsclub/clubadmin/internal/s3"
)

// MockImageStore validates images like the real store and keeps them in memory
type MockImageStore struct {
	mu      sync.Mutex
	Uploads map[string]*s3.Image
	Err     error
}

func NewMockImageStore() *MockImageStore {
	return &MockImageStore{Uploads: make(map[string]*s3.Image)}
}

func (m *MockImageStore) UploadImage(_ context.Context, img *s3.Image) (string, error) {
	if err := s3.DetectImage(img); err != nil {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	url := "https://cdn.test/" + string(img.Kind) + "/" + img.OwnerID + "." + img.Extension
	m.Uploads[url] = img
	return url, nil
}

func (m *MockImageStore) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Uploads[key]
	return ok, nil
}
