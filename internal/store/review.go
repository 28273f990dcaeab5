package store

import (
	"sync"
	"time"

	"github.com/mandhitown/backend/internal/models"
)

// ReviewStore is the append-only review collection. The mutex guards the
// slice and the id counter together: assigning the next id, stamping the
// creation time and appending happen in one critical section, so concurrent
// creates can neither duplicate ids nor produce out-of-order timestamps.
type ReviewStore struct {
	mu      sync.RWMutex
	nextID  int
	reviews []models.Review
}

func NewReviewStore() *ReviewStore {
	return &ReviewStore{nextID: 1}
}

// Append assigns the next review id and creation timestamp and stores the
// review. The returned value carries the assigned fields.
func (s *ReviewStore) Append(r models.Review) models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextID
	s.nextID++
	r.CreatedAt = time.Now().UTC()
	s.reviews = append(s.reviews, r)
	return r
}

// Get retrieves a review by id.
func (s *ReviewStore) Get(id int) (models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reviews {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Review{}, ErrNotFound
}

// ListByRestaurant returns all reviews for a restaurant in insertion order.
func (s *ReviewStore) ListByRestaurant(restaurantID int) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Review
	for _, r := range s.reviews {
		if r.RestaurantID == restaurantID {
			out = append(out, r)
		}
	}
	return out
}

// ListByDisplayName returns all reviews whose display name equals name, in
// insertion order. This is the deliberately weak name-based join used by the
// account endpoints.
func (s *ReviewStore) ListByDisplayName(name string) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Review
	for _, r := range s.reviews {
		if r.DisplayName == name {
			out = append(out, r)
		}
	}
	return out
}
