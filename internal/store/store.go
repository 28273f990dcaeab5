// Package store owns the process-wide in-memory state: every entity
// collection lives here, guarded by one mutex per collection so that id
// assignment and append form a single critical section. Nothing is
// persisted; a restart discards reviews, photos, accounts and users, and
// restaurants are re-derived from the seed chain.
package store

import (
	"errors"

	"github.com/mandhitown/backend/internal/models"
)

// ErrNotFound is returned when a referenced restaurant, review, account or
// user does not exist.
var ErrNotFound = errors.New("not found")

// Store is the injected state container shared by all services.
type Store struct {
	Restaurants *RestaurantStore
	Reviews     *ReviewStore
	Photos      *PhotoStore
	Accounts    *AccountStore
	Users       *UserStore
}

// New creates a Store seeded with the given restaurants. All other
// collections start empty.
func New(restaurants []models.Restaurant) *Store {
	return &Store{
		Restaurants: NewRestaurantStore(restaurants),
		Reviews:     NewReviewStore(),
		Photos:      NewPhotoStore(),
		Accounts:    NewAccountStore(),
		Users:       NewUserStore(),
	}
}
