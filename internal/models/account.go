package models

import "time"

// Account is a lightweight, password-less identity record. Its only link to
// reviews is the display name: GET /accounts/:id/reviews matches reviews
// whose derived display name equals the account's current name. Renaming an
// account does not relink earlier reviews.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// User is a credential-service identity created through signup. It is
// distinct from Account: users authenticate and own reviews by email
// identity, accounts merely group reviews by display name.
type User struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	AuthProvider string    `json:"auth_provider"`
	CreatedAt    time.Time `json:"created_at"`
}
