package store

import (
	"sync"

	"github.com/mandhitown/backend/internal/models"
)

// RestaurantStore holds the seeded restaurant catalog. Records are read-only
// after construction; the lock only protects against the (unused today)
// possibility of reseeding.
type RestaurantStore struct {
	mu          sync.RWMutex
	restaurants []models.Restaurant
}

func NewRestaurantStore(restaurants []models.Restaurant) *RestaurantStore {
	return &RestaurantStore{restaurants: restaurants}
}

// List returns all restaurants in seed order.
func (s *RestaurantStore) List() []models.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Restaurant, len(s.restaurants))
	copy(out, s.restaurants)
	return out
}

// Get retrieves a restaurant by id.
func (s *RestaurantStore) Get(id int) (models.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.restaurants {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Restaurant{}, ErrNotFound
}

// Exists reports whether a restaurant with the given id is in the catalog.
func (s *RestaurantStore) Exists(id int) bool {
	_, err := s.Get(id)
	return err == nil
}
