package store

import (
	"sort"
	"sync"
	"time"

	"github.com/mandhitown/backend/internal/models"
)

// PhotoStore holds uploaded photos. Same locking discipline as ReviewStore:
// id counter and slice mutate under one lock.
type PhotoStore struct {
	mu     sync.RWMutex
	nextID int
	photos []models.Photo
}

func NewPhotoStore() *PhotoStore {
	return &PhotoStore{nextID: 1}
}

// Append assigns the next photo id and creation timestamp and stores the
// photo.
func (s *PhotoStore) Append(p models.Photo) models.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	p.CreatedAt = time.Now().UTC()
	s.photos = append(s.photos, p)
	return p
}

// ListByRestaurant returns photos whose denormalized restaurant id matches,
// newest first. The descending creation-time order is a committed contract
// of the photo listing endpoint, with id as the tie-breaker for photos
// created within the same timestamp tick.
func (s *PhotoStore) ListByRestaurant(restaurantID int) []models.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Photo
	for _, p := range s.photos {
		if p.RestaurantID == restaurantID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
