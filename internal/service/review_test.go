package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mandhitown/backend/internal/store"
)

func TestCreateReview(t *testing.T) {
	st := newTestStore(t)
	svc := NewReviewService(st, nil)

	review, photos, err := svc.Create(context.Background(), 1, "4", "  great mandhi  ", "ann@example.com", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, review.ID)
	assert.Equal(t, 1, review.RestaurantID)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "great mandhi", review.Comment)
	assert.Equal(t, "ann@example.com", review.Author)
	assert.Equal(t, "ann", review.DisplayName)
	assert.Empty(t, photos)
}

func TestCreateReviewUnknownRestaurant(t *testing.T) {
	svc := NewReviewService(newTestStore(t), nil)

	_, _, err := svc.Create(context.Background(), 99, "4", "", "ann@example.com", nil)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	svc := NewReviewService(newTestStore(t), nil)
	ctx := context.Background()

	for _, rating := range []string{"0", "6", "-1", "abc", "", "4.5"} {
		_, _, err := svc.Create(ctx, 1, rating, "", "ann@example.com", nil)
		assert.ErrorIs(t, err, ErrValidation, "rating %q", rating)
	}
	for _, rating := range []string{"1", "5", " 3 "} {
		_, _, err := svc.Create(ctx, 1, rating, "", "ann@example.com", nil)
		assert.NoError(t, err, "rating %q", rating)
	}
}

func TestCreateReviewWithAttachmentsNeedsUploader(t *testing.T) {
	svc := NewReviewService(newTestStore(t), nil)

	attachments := []Attachment{{Filename: "dish.jpg", Data: []byte("img")}}
	_, _, err := svc.Create(context.Background(), 1, "5", "", "ann@example.com", attachments)
	assert.ErrorIs(t, err, ErrUploaderNotConfigured)

	// Without attachments the missing uploader is irrelevant.
	_, _, err = svc.Create(context.Background(), 1, "5", "", "ann@example.com", nil)
	assert.NoError(t, err)
}

func TestCreateReviewUploadsAttachments(t *testing.T) {
	st := newTestStore(t)
	uploader := &fakeUploader{}
	svc := NewReviewService(st, uploader)

	attachments := []Attachment{
		{Filename: "one.jpg", Data: []byte("img1")},
		{Filename: "two.png", Data: []byte("img2")},
	}
	review, photos, err := svc.Create(context.Background(), 1, "5", "tasty", "ann@example.com", attachments)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, 2, uploader.uploaded())
	for _, p := range photos {
		assert.Equal(t, review.ID, p.ReviewID)
		assert.Equal(t, review.RestaurantID, p.RestaurantID)
		assert.Equal(t, "ann@example.com", p.UploadedBy)
		assert.Contains(t, p.URL, "https://cdn.test/restaurants/1/reviews/1/")
	}
}

func TestCreateReviewSkipsFailedUploads(t *testing.T) {
	st := newTestStore(t)
	svc := NewReviewService(st, &fakeUploader{})

	attachments := []Attachment{
		{Filename: "bad.jpg", Data: []byte("fail")},
		{Filename: "good.jpg", Data: []byte("img")},
	}
	review, photos, err := svc.Create(context.Background(), 1, "5", "", "ann@example.com", attachments)
	require.NoError(t, err, "a failed photo upload must not fail the review")
	assert.Len(t, photos, 1)

	// The review itself is persisted regardless.
	reviews, err := svc.ListByRestaurant(1)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, review.ID, reviews[0].ID)
}

func TestListReviewsUnknownRestaurant(t *testing.T) {
	svc := NewReviewService(newTestStore(t), nil)

	_, err := svc.ListByRestaurant(42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDisplayNameFor(t *testing.T) {
	tests := []struct {
		identity string
		want     string
	}{
		{"ann@example.com", "ann"},
		{"bob.smith@mail.test", "bob.smith"},
		{"", "Anonymous"},
		{"no-at-sign", "no-at-sign"},
		{"@leading", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayNameFor(tt.identity), "identity %q", tt.identity)
	}
}
