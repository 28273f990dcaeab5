package models

import "time"

// Review is a rated, commented submission tied to one restaurant and one
// authenticated author. Reviews are append-only: ids are assigned from a
// process-wide monotonic counter and never reused.
type Review struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Author       string    `json:"author"`
	DisplayName  string    `json:"display_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// Photo is an uploaded image tied to one review. RestaurantID is
// denormalized from the parent review so photos can be listed per
// restaurant without a join.
type Photo struct {
	ID           int       `json:"id"`
	ReviewID     int       `json:"review_id"`
	RestaurantID int       `json:"restaurant_id"`
	UploadedBy   string    `json:"uploaded_by"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"created_at"`
}
