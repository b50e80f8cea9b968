package goals

import (
	"time"

	"github.com/google/uuid"
)

// Goal maps to the health_goals table. Target and current values are free
// text so goals like "10,000 steps" and "below 140/90" both fit. Rows are
// soft-deleted via is_active.
type Goal struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"userId"`
	Title        string    `db:"title" json:"title"`
	Description  *string   `db:"description" json:"description,omitempty"`
	TargetValue  *string   `db:"target_value" json:"targetValue,omitempty"`
	CurrentValue *string   `db:"current_value" json:"currentValue,omitempty"`
	Frequency    string    `db:"frequency" json:"frequency"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateGoalInput struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	TargetValue  *string `json:"targetValue"`
	CurrentValue *string `json:"currentValue"`
	Frequency    string  `json:"frequency"`
}

// UpdateGoalInput is a partial patch; nil fields are left untouched.
type UpdateGoalInput struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	TargetValue  *string `json:"targetValue"`
	CurrentValue *string `json:"currentValue"`
	Frequency    *string `json:"frequency"`
}
