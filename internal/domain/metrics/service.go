package metrics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/carecompanion/carecompanion/internal/platform/validation"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) CreateMetric(ctx context.Context, userID uuid.UUID, in CreateMetricInput) (*Metric, error) {
	var missing []string
	if in.MetricType == "" {
		missing = append(missing, "metricType")
	}
	if in.Value == "" {
		missing = append(missing, "value")
	}
	if in.Unit == "" {
		missing = append(missing, "unit")
	}
	if len(missing) > 0 {
		return nil, validation.NewError(missing...)
	}

	recordedAt := s.now()
	if in.RecordedAt != nil {
		recordedAt = *in.RecordedAt
	}

	m := &Metric{
		UserID:     userID,
		MetricType: in.MetricType,
		Value:      in.Value,
		Unit:       in.Unit,
		RecordedAt: recordedAt,
		Notes:      in.Notes,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) ListMetrics(ctx context.Context, userID uuid.UUID, metricType string, limit, offset int) ([]*Metric, error) {
	return s.repo.ListByUser(ctx, userID, metricType, limit, offset)
}

func (s *Service) LatestByType(ctx context.Context, userID uuid.UUID, metricType string) (*Metric, error) {
	if metricType == "" {
		return nil, validation.NewError("type")
	}
	return s.repo.LatestByType(ctx, userID, metricType)
}
