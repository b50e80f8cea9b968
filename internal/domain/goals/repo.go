package goals

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, g *Goal) error
	// ListByUser returns the caller's active goals newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Goal, error)
	// Update applies the non-nil fields of in to the caller's goal. A missing
	// or foreign id yields pgx.ErrNoRows.
	Update(ctx context.Context, id, userID uuid.UUID, in UpdateGoalInput) (*Goal, error)
	// SoftDelete flips is_active off. Idempotent.
	SoftDelete(ctx context.Context, id, userID uuid.UUID) error
}
