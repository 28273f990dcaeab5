package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mandhitown/backend/internal/models"
	"github.com/mandhitown/backend/internal/store"
)

// ReviewService handles review creation and listing.
type ReviewService struct {
	store *store.Store
	media MediaUploader
}

// NewReviewService creates a new ReviewService instance. media may be nil
// when no upload service is configured.
func NewReviewService(st *store.Store, media MediaUploader) *ReviewService {
	return &ReviewService{store: st, media: media}
}

// ListByRestaurant returns all reviews for a restaurant in insertion order.
func (s *ReviewService) ListByRestaurant(restaurantID int) ([]models.Review, error) {
	if !s.store.Restaurants.Exists(restaurantID) {
		return nil, store.ErrNotFound
	}
	return s.store.Reviews.ListByRestaurant(restaurantID), nil
}

// Create validates and appends a review for the authenticated author, then
// uploads any attachments. The review is never rolled back because of a
// photo failure: individual upload errors are logged and skipped. A missing
// upload service is only an error when attachments were actually supplied.
func (s *ReviewService) Create(ctx context.Context, restaurantID int, ratingRaw, comment, author string, attachments []Attachment) (models.Review, []models.Photo, error) {
	if !s.store.Restaurants.Exists(restaurantID) {
		return models.Review{}, nil, store.ErrNotFound
	}

	rating, err := strconv.Atoi(strings.TrimSpace(ratingRaw))
	if err != nil {
		return models.Review{}, nil, fmt.Errorf("%w: rating must be an integer", ErrValidation)
	}
	if rating < 1 || rating > 5 {
		return models.Review{}, nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	if len(attachments) > 0 && s.media == nil {
		return models.Review{}, nil, ErrUploaderNotConfigured
	}

	review := s.store.Reviews.Append(models.Review{
		RestaurantID: restaurantID,
		Author:       author,
		DisplayName:  DisplayNameFor(author),
		Rating:       rating,
		Comment:      strings.TrimSpace(comment),
	})

	photos := uploadReviewPhotos(ctx, s.media, s.store.Photos, review, author, attachments)
	return review, photos, nil
}

// DisplayNameFor derives the public display name from an author identity:
// the substring before the first "@", or "Anonymous" when the identity is
// empty.
func DisplayNameFor(identity string) string {
	if identity == "" {
		return "Anonymous"
	}
	if at := strings.Index(identity, "@"); at >= 0 {
		return identity[:at]
	}
	return identity
}

// uploadReviewPhotos uploads each attachment independently and records a
// photo per successful upload, with the restaurant id denormalized from the
// parent review. Partial success is acceptable.
func uploadReviewPhotos(ctx context.Context, media MediaUploader, photos *store.PhotoStore, review models.Review, author string, attachments []Attachment) []models.Photo {
	created := make([]models.Photo, 0, len(attachments))
	for _, a := range attachments {
		key := photoObjectKey(review.RestaurantID, review.ID, a.Filename)
		url, err := media.Upload(ctx, a.Data, key)
		if err != nil {
			log.Printf("[ReviewService] skipping failed photo upload %q for review %d: %v", a.Filename, review.ID, err)
			continue
		}
		created = append(created, photos.Append(models.Photo{
			ReviewID:     review.ID,
			RestaurantID: review.RestaurantID,
			UploadedBy:   author,
			URL:          url,
		}))
	}
	return created
}

// photoObjectKey namespaces upload keys by restaurant and review id.
func photoObjectKey(restaurantID, reviewID int, filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("restaurants/%d/reviews/%d/%s%s", restaurantID, reviewID, uuid.New().String(), ext)
}
