package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mandhitown/backend/internal/store"
)

func TestCreateAccount(t *testing.T) {
	svc := NewAccountService(newTestStore(t), nil)
	ctx := context.Background()

	account, err := svc.Create(ctx, "Ann", AvatarSource{})
	require.NoError(t, err)
	assert.Equal(t, "Ann", account.Name)
	assert.Nil(t, account.AvatarURL)

	got, err := svc.Get(account.ID)
	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestCreateAccountRequiresName(t *testing.T) {
	svc := NewAccountService(newTestStore(t), nil)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(context.Background(), name, AvatarSource{})
		assert.ErrorIs(t, err, ErrValidation, "name %q", name)
	}
}

func TestCreateAccountSkipsAvatarWithoutUploader(t *testing.T) {
	svc := NewAccountService(newTestStore(t), nil)

	// Unlike review photos, a missing upload service is not an error here:
	// the account is created without an avatar.
	account, err := svc.Create(context.Background(), "Ann", AvatarSource{
		File: &Attachment{Filename: "me.png", Data: []byte("img")},
	})
	require.NoError(t, err)
	assert.Nil(t, account.AvatarURL)
}

func TestCreateAccountUploadsAvatar(t *testing.T) {
	uploader := &fakeUploader{}
	svc := NewAccountService(newTestStore(t), uploader)

	account, err := svc.Create(context.Background(), "Ann", AvatarSource{
		File: &Attachment{Filename: "me.png", Data: []byte("img")},
	})
	require.NoError(t, err)
	require.NotNil(t, account.AvatarURL)
	assert.Contains(t, *account.AvatarURL, "https://cdn.test/avatars/")
}

func TestCreateAccountWithAvatarURL(t *testing.T) {
	svc := NewAccountService(newTestStore(t), nil)

	account, err := svc.Create(context.Background(), "Ann", AvatarSource{
		URL: "https://cdn.example.com/me.jpg",
	})
	require.NoError(t, err)
	require.NotNil(t, account.AvatarURL)
	assert.Equal(t, "https://cdn.example.com/me.jpg", *account.AvatarURL)
}

func TestUpdateAccount(t *testing.T) {
	svc := NewAccountService(newTestStore(t), nil)
	ctx := context.Background()

	account, err := svc.Create(ctx, "Ann", AvatarSource{})
	require.NoError(t, err)

	// An empty name is treated as "not supplied".
	updated, err := svc.Update(ctx, account.ID, "", AvatarSource{})
	require.NoError(t, err)
	assert.Equal(t, "Ann", updated.Name)

	updated, err = svc.Update(ctx, account.ID, "Beth", AvatarSource{URL: "https://cdn.example.com/b.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "Beth", updated.Name)
	require.NotNil(t, updated.AvatarURL)

	_, err = svc.Update(ctx, "0000000000", "X", AvatarSource{})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListReviewsMatchesByCurrentName(t *testing.T) {
	st := newTestStore(t)
	accounts := NewAccountService(st, nil)
	reviews := NewReviewService(st, nil)
	ctx := context.Background()

	account, err := accounts.Create(ctx, "ann", AvatarSource{})
	require.NoError(t, err)

	_, _, err = reviews.Create(ctx, 1, "5", "match", "ann@example.com", nil)
	require.NoError(t, err)
	_, _, err = reviews.Create(ctx, 1, "2", "no match", "bob@example.com", nil)
	require.NoError(t, err)
	_, _, err = reviews.Create(ctx, 2, "4", "second match", "ann@other.test", nil)
	require.NoError(t, err)

	matched, err := accounts.ListReviews(account.ID)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	// Newest first.
	assert.Equal(t, "second match", matched[0].Comment)
	assert.Equal(t, "match", matched[1].Comment)

	// Renaming the account does not relink reviews created under the old
	// display name.
	_, err = accounts.Update(ctx, account.ID, "beth", AvatarSource{})
	require.NoError(t, err)
	matched, err = accounts.ListReviews(account.ID)
	require.NoError(t, err)
	assert.Empty(t, matched)

	_, err = accounts.ListReviews("0000000000")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSquareCropCentersOnSmallerSide(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 4))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	cropped, format, err := image.Decode(bytes.NewReader(squareCrop(buf.Bytes())))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 4, cropped.Bounds().Dx())
	assert.Equal(t, 4, cropped.Bounds().Dy())
}

func TestSquareCropPassesThroughUndecodableData(t *testing.T) {
	data := []byte("not an image at all")
	assert.Equal(t, data, squareCrop(data))
}

func TestSquareCropLeavesSquareImagesAlone(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 5, 5))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	assert.Equal(t, buf.Bytes(), squareCrop(buf.Bytes()))
}
