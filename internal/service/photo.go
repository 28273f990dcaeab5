package service

import (
	"context"
	"fmt"

	"github.com/mandhitown/backend/internal/models"
	"github.com/mandhitown/backend/internal/store"
)

// PhotoService handles attaching photos to existing reviews and listing
// them per restaurant.
type PhotoService struct {
	store *store.Store
	media MediaUploader
}

// NewPhotoService creates a new PhotoService instance. media may be nil
// when no upload service is configured.
func NewPhotoService(st *store.Store, media MediaUploader) *PhotoService {
	return &PhotoService{store: st, media: media}
}

// Attach uploads the attachments for an existing review and returns only
// the newly created photo records. Unlike review creation, attaching
// strictly needs the upload service: there is nothing else for the request
// to do.
func (s *PhotoService) Attach(ctx context.Context, reviewID int, author string, attachments []Attachment) ([]models.Photo, error) {
	review, err := s.store.Reviews.Get(reviewID)
	if err != nil {
		return nil, err
	}
	if len(attachments) == 0 {
		return nil, fmt.Errorf("%w: no files submitted", ErrValidation)
	}
	if s.media == nil {
		return nil, ErrUploaderNotConfigured
	}
	return uploadReviewPhotos(ctx, s.media, s.store.Photos, review, author, attachments), nil
}

// ListByRestaurant returns a restaurant's photos newest-first.
func (s *PhotoService) ListByRestaurant(restaurantID int) ([]models.Photo, error) {
	if !s.store.Restaurants.Exists(restaurantID) {
		return nil, store.ErrNotFound
	}
	return s.store.Photos.ListByRestaurant(restaurantID), nil
}
