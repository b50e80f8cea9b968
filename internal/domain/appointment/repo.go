package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	// ListByUser returns the caller's appointments newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Appointment, error)
	// Upcoming returns at most five scheduled appointments at or after now,
	// soonest first.
	Upcoming(ctx context.Context, userID uuid.UUID, now time.Time) ([]*Appointment, error)
	// Update applies the non-nil fields of in to the caller's appointment. A
	// missing or foreign id yields pgx.ErrNoRows.
	Update(ctx context.Context, id, userID uuid.UUID, in UpdateAppointmentInput) (*Appointment, error)
}
