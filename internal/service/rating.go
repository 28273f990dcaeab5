package service

import (
	"math"

	"github.com/mandhitown/backend/internal/models"
)

// AverageRating computes the derived rating for a restaurant from its
// reviews: the mean rating rounded to one decimal place, plus the review
// count. With no reviews the seed rating is the fallback and the count is
// zero. Computed on every read; the dataset is small enough that no cache
// is kept.
func AverageRating(seedRating float64, reviews []models.Review) (float64, int) {
	if len(reviews) == 0 {
		return seedRating, 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10, len(reviews)
}
