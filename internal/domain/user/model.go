package user

import (
	"time"

	"github.com/google/uuid"
)

// User maps to the users table. All per-user entities hang off its id.
type User struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Email           *string   `db:"email" json:"email,omitempty"`
	FirstName       *string   `db:"first_name" json:"firstName,omitempty"`
	LastName        *string   `db:"last_name" json:"lastName,omitempty"`
	ProfileImageURL *string   `db:"profile_image_url" json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// UpdateProfileInput is the client-supplied patch for the profile endpoint.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	Email           *string `json:"email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
}
