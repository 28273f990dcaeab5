package models

// Restaurant represents a cataloged eatery. Records are seeded at process
// start and never mutated afterwards; the seed Rating is only used as a
// fallback when a restaurant has no reviews yet.
type Restaurant struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Rating      float64  `json:"rating"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Specialties []string `json:"specialties"`
	Phone       string   `json:"phone,omitempty"`
	Address     string   `json:"address"`
}
