package service

import (
	"strings"

	"github.com/mandhitown/backend/internal/models"
	"github.com/mandhitown/backend/internal/store"
)

// EnrichedRestaurant is a catalog record with the derived rating fields
// embedded. The stored restaurant is never mutated; enrichment happens on
// every read.
type EnrichedRestaurant struct {
	models.Restaurant
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int     `json:"review_count"`
}

// CatalogService serves the read-only restaurant catalog.
type CatalogService struct {
	store *store.Store
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{store: st}
}

// List returns every restaurant, enriched with its derived rating.
func (s *CatalogService) List() []EnrichedRestaurant {
	restaurants := s.store.Restaurants.List()
	out := make([]EnrichedRestaurant, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, s.enrich(r))
	}
	return out
}

// Get returns one enriched restaurant.
func (s *CatalogService) Get(id int) (EnrichedRestaurant, error) {
	r, err := s.store.Restaurants.Get(id)
	if err != nil {
		return EnrichedRestaurant{}, err
	}
	return s.enrich(r), nil
}

// Search returns restaurants whose name or cuisine type contains the query,
// case-insensitively.
func (s *CatalogService) Search(query string) []EnrichedRestaurant {
	q := strings.ToLower(query)
	out := make([]EnrichedRestaurant, 0)
	for _, r := range s.store.Restaurants.List() {
		if strings.Contains(strings.ToLower(r.Name), q) || strings.Contains(strings.ToLower(r.Type), q) {
			out = append(out, s.enrich(r))
		}
	}
	return out
}

func (s *CatalogService) enrich(r models.Restaurant) EnrichedRestaurant {
	avg, count := AverageRating(r.Rating, s.store.Reviews.ListByRestaurant(r.ID))
	return EnrichedRestaurant{Restaurant: r, AvgRating: avg, ReviewCount: count}
}
