package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/mandhitown/backend/internal/models"
	"github.com/mandhitown/backend/internal/store"
)

// AvatarSource is either a binary image payload or a pre-existing URL. A
// non-empty URL wins; a nil File with an empty URL means no avatar.
type AvatarSource struct {
	File *Attachment
	URL  string
}

// AccountService handles the password-less visitor accounts.
type AccountService struct {
	store *store.Store
	media MediaUploader
}

// NewAccountService creates a new AccountService instance. media may be nil
// when no upload service is configured.
func NewAccountService(st *store.Store, media MediaUploader) *AccountService {
	return &AccountService{store: st, media: media}
}

// Create registers a new account. The name is required after trimming.
// Avatar handling never fails the request: when the upload service is
// missing or the upload errors, the account is simply created without an
// avatar. This is deliberately laxer than review photo handling.
func (s *AccountService) Create(ctx context.Context, name string, avatar AvatarSource) (models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Account{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	return s.store.Accounts.Create(name, s.resolveAvatar(ctx, avatar)), nil
}

// Get retrieves an account by id.
func (s *AccountService) Get(id string) (models.Account, error) {
	return s.store.Accounts.Get(id)
}

// Update patches an account in place. Only supplied, non-empty fields are
// overwritten; an empty name is treated as "not supplied".
func (s *AccountService) Update(ctx context.Context, id, name string, avatar AvatarSource) (models.Account, error) {
	if _, err := s.store.Accounts.Get(id); err != nil {
		return models.Account{}, err
	}
	return s.store.Accounts.Update(id, strings.TrimSpace(name), s.resolveAvatar(ctx, avatar))
}

// ListReviews returns the reviews whose display name equals the account's
// current name, newest first. The association is textual: reviews written
// before a rename keep their old display name and drop out of the listing.
func (s *AccountService) ListReviews(id string) ([]models.Review, error) {
	account, err := s.store.Accounts.Get(id)
	if err != nil {
		return nil, err
	}
	reviews := s.store.Reviews.ListByDisplayName(account.Name)
	sort.SliceStable(reviews, func(i, j int) bool {
		if reviews[i].CreatedAt.Equal(reviews[j].CreatedAt) {
			return reviews[i].ID > reviews[j].ID
		}
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

// resolveAvatar turns an AvatarSource into a stored URL, or nil when there
// is nothing to store. Binary avatars are center-cropped square before
// upload when decodable.
func (s *AccountService) resolveAvatar(ctx context.Context, avatar AvatarSource) *string {
	if avatar.URL != "" {
		u := avatar.URL
		return &u
	}
	if avatar.File == nil {
		return nil
	}
	if s.media == nil {
		log.Printf("[AccountService] upload service not configured, skipping avatar")
		return nil
	}

	data := squareCrop(avatar.File.Data)
	ext := filepath.Ext(avatar.File.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	url, err := s.media.Upload(ctx, data, fmt.Sprintf("avatars/%s%s", uuid.New().String(), ext))
	if err != nil {
		log.Printf("[AccountService] avatar upload failed, continuing without: %v", err)
		return nil
	}
	return &url
}
