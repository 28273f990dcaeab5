package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mandhitown/backend/internal/models"
)

func reviewsWithRatings(ratings ...int) []models.Review {
	out := make([]models.Review, len(ratings))
	for i, r := range ratings {
		out[i] = models.Review{Rating: r}
	}
	return out
}

func TestAverageRatingFallsBackToSeedRating(t *testing.T) {
	avg, count := AverageRating(4.6, nil)
	assert.Equal(t, 4.6, avg)
	assert.Equal(t, 0, count)
}

func TestAverageRatingRoundsToOneDecimal(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"three reviews", []int{3, 5, 4}, 4.0},
		{"two reviews rounding down", []int{4, 5}, 4.5},
		{"repeating third rounds", []int{3, 4, 5, 5, 5, 5}, 4.5},
		{"single review", []int{2}, 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, count := AverageRating(1.0, reviewsWithRatings(tt.ratings...))
			assert.Equal(t, tt.want, avg)
			assert.Equal(t, len(tt.ratings), count)
		})
	}
}
