package metrics

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, m *Metric) error
	// ListByUser returns the caller's readings newest first, optionally
	// filtered to one metric type.
	ListByUser(ctx context.Context, userID uuid.UUID, metricType string, limit, offset int) ([]*Metric, error)
	// LatestByType returns the reading with the greatest recorded_at for the
	// (user, type) pair. Ties are broken arbitrarily.
	LatestByType(ctx context.Context, userID uuid.UUID, metricType string) (*Metric, error)
}
