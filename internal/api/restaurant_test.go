package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRestaurants(t *testing.T) {
	router, _ := setupTestRouter(t, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/restaurants", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var restaurants []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &restaurants))
	require.Len(t, restaurants, 2)
	// Derived fields ride along on every record.
	assert.Equal(t, 4.6, restaurants[0]["avg_rating"])
	assert.Equal(t, float64(0), restaurants[0]["review_count"])
}

func TestGetRestaurant(t *testing.T) {
	router, _ := setupTestRouter(t, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/restaurants/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var restaurant map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &restaurant))
	assert.Equal(t, "Royal Mandhi Palace", restaurant["name"])

	w = doJSON(t, router, http.MethodGet, "/api/v1/restaurants/99", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/restaurants/not-a-number", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRestaurantReflectsNewReviews(t *testing.T) {
	router, _ := setupTestRouter(t, nil)
	token := signupTestUser(t, router, "ann@example.com")

	for _, rating := range []int{3, 5, 4} {
		w := doJSON(t, router, http.MethodPost, "/api/v1/restaurants/1/reviews", map[string]any{
			"rating": rating,
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/restaurants/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var restaurant map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &restaurant))
	assert.Equal(t, 4.0, restaurant["avg_rating"])
	assert.Equal(t, float64(3), restaurant["review_count"])
	// The seed rating stays visible alongside the derived one.
	assert.Equal(t, 4.6, restaurant["rating"])
}

func TestSearchRestaurants(t *testing.T) {
	router, _ := setupTestRouter(t, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/restaurants/search/mandhi", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var results []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Royal Mandhi Palace", results[0]["name"])

	w = doJSON(t, router, http.MethodGet, "/api/v1/restaurants/search/CUISINE", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Len(t, results, 2)

	w = doJSON(t, router, http.MethodGet, "/api/v1/restaurants/search/pizza", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Empty(t, results)
}
