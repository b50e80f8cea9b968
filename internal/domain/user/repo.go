package user

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	// Upsert inserts the user or, when the id already exists, refreshes the
	// profile fields. Used by the identity-provider sync path and the seeder.
	Upsert(ctx context.Context, u *User) error
	UpdateProfile(ctx context.Context, id uuid.UUID, in UpdateProfileInput) (*User, error)
}
