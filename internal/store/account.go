package store

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/mandhitown/backend/internal/models"
)

// AccountStore holds the password-less visitor accounts, keyed by a random
// 10-digit decimal id.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]models.Account)}
}

// Create stores a new account under a freshly generated id. Id generation
// and insertion share the lock, so a colliding id can never be handed out
// twice.
func (s *AccountStore) Create(name string, avatarURL *string) models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := newAccountID()
	for _, taken := s.accounts[id]; taken; _, taken = s.accounts[id] {
		id = newAccountID()
	}
	account := models.Account{
		ID:        id,
		Name:      name,
		AvatarURL: avatarURL,
		CreatedAt: time.Now().UTC(),
	}
	s.accounts[id] = account
	return account
}

// Get retrieves an account by id.
func (s *AccountStore) Get(id string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return models.Account{}, ErrNotFound
	}
	return account, nil
}

// Update overwrites only the supplied fields: an empty name leaves the
// current name in place, a nil avatar leaves the current avatar in place.
func (s *AccountStore) Update(id string, name string, avatarURL *string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[id]
	if !ok {
		return models.Account{}, ErrNotFound
	}
	if name != "" {
		account.Name = name
	}
	if avatarURL != nil {
		account.AvatarURL = avatarURL
	}
	s.accounts[id] = account
	return account, nil
}

// newAccountID generates a random 10-decimal-digit id, zero-padded.
func newAccountID() string {
	return fmt.Sprintf("%010d", rand.Int63n(10_000_000_000))
}
