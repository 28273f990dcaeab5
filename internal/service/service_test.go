package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mandhitown/backend/internal/models"
	"github.com/mandhitown/backend/internal/store"
)

// fakeUploader records upload keys and fails any payload whose content is
// literally "fail", which lets tests exercise per-file failure tolerance.
type fakeUploader struct {
	mu   sync.Mutex
	keys []string
}

func (f *fakeUploader) Upload(_ context.Context, data []byte, key string) (string, error) {
	if string(data) == "fail" {
		return "", errors.New("upload failed")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	return "https://cdn.test/" + key, nil
}

func (f *fakeUploader) uploaded() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.keys)
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New([]models.Restaurant{
		{ID: 1, Name: "Royal Mandhi Palace", Type: "Arabian Cuisine", Rating: 4.6},
		{ID: 2, Name: "Spice Garden Restaurant", Type: "Multi-Cuisine", Rating: 4.5},
	})
}
