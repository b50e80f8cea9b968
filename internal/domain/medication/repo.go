package medication

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, m *Medication) error
	// GetByID is unscoped so soft-deleted rows and cross-service joins stay
	// reachable; callers enforce ownership.
	GetByID(ctx context.Context, id uuid.UUID) (*Medication, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Medication, error)
	Update(ctx context.Context, id, userID uuid.UUID, in UpdateMedicationInput) (*Medication, error)
	SoftDelete(ctx context.Context, id, userID uuid.UUID) error
}

type ScheduleRepository interface {
	Create(ctx context.Context, s *Schedule) error
	ListByMedication(ctx context.Context, medicationID uuid.UUID) ([]*Schedule, error)
}

type LogRepository interface {
	Create(ctx context.Context, l *Log) error
	GetByID(ctx context.Context, id uuid.UUID) (*Log, error)
	// ListByUser joins logs to the user's medications; start/end bound
	// scheduled_date inclusively when non-nil.
	ListByUser(ctx context.Context, userID uuid.UUID, start, end *time.Time, limit, offset int) ([]*LogWithMedication, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateLogInput) (*Log, error)
	// ListForDay returns a medication's logs whose scheduled_date falls in
	// [dayStart, dayEnd).
	ListForDay(ctx context.Context, medicationID uuid.UUID, dayStart, dayEnd time.Time) ([]*Log, error)
}
