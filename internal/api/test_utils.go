package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mandhitown/backend/internal/models"
	"github.com/mandhitown/backend/internal/service"
	"github.com/mandhitown/backend/internal/store"
)

// recordingUploader is the test stand-in for the media upload service. Any
// payload whose content is "fail" fails to upload.
type recordingUploader struct {
	mu   sync.Mutex
	keys []string
}

func (u *recordingUploader) Upload(_ context.Context, data []byte, key string) (string, error) {
	if string(data) == "fail" {
		return "", errors.New("upload failed")
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.keys = append(u.keys, key)
	return "https://cdn.test/" + key, nil
}

// setupTestRouter builds a router over a fresh two-restaurant catalog.
// media may be nil to simulate a missing upload service.
func setupTestRouter(t *testing.T, media service.MediaUploader) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New([]models.Restaurant{
		{ID: 1, Name: "Royal Mandhi Palace", Type: "Arabian Cuisine", Rating: 4.6},
		{ID: 2, Name: "Spice Garden Restaurant", Type: "Multi-Cuisine", Rating: 4.5},
	})
	router := gin.New()
	SetupAPI(router, st, "test-secret", media, service.NewMemoryBlocklist())
	return router, st
}

// signupTestUser registers a user and returns a valid session token.
func signupTestUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", gin.H{
		"email":    email,
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

// doJSON performs a JSON request against the router.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// testFile is one file part of a multipart request.
type testFile struct {
	field string
	name  string
	data  []byte
}

// doMultipart performs a multipart form request against the router.
func doMultipart(t *testing.T, router *gin.Engine, method, path string, fields map[string]string, files []testFile, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
