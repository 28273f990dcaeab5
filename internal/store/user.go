package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/mandhitown/backend/internal/models"
)

// ErrDuplicateEmail is returned when a signup reuses a registered email.
var ErrDuplicateEmail = errors.New("email already registered")

// UserStore holds credential-service users keyed by lowercased email.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]models.User)}
}

// Create registers a new user. The email must not already be taken.
func (s *UserStore) Create(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, ok := s.users[key]; ok {
		return models.User{}, ErrDuplicateEmail
	}
	user.CreatedAt = time.Now().UTC()
	s.users[key] = user
	return user, nil
}

// GetByEmail retrieves a user by email (case-insensitive).
func (s *UserStore) GetByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[strings.ToLower(email)]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}
