package metrics

import (
	"time"

	"github.com/google/uuid"
)

// Metric is one vital-sign reading. Value is free text so compound readings
// like a "120/80" blood pressure fit without a per-type schema.
type Metric struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     uuid.UUID `db:"user_id" json:"userId"`
	MetricType string    `db:"metric_type" json:"metricType"`
	Value      string    `db:"value" json:"value"`
	Unit       string    `db:"unit" json:"unit"`
	RecordedAt time.Time `db:"recorded_at" json:"recordedAt"`
	Notes      *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// CreateMetricInput is the client payload; the owner id comes from the
// session. RecordedAt defaults to now when omitted.
type CreateMetricInput struct {
	MetricType string     `json:"metricType"`
	Value      string     `json:"value"`
	Unit       string     `json:"unit"`
	RecordedAt *time.Time `json:"recordedAt"`
	Notes      *string    `json:"notes"`
}
