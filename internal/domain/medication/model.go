package medication

import (
	"time"

	"github.com/google/uuid"
)

// Log status tags.
const (
	LogStatusTaken   = "taken"
	LogStatusMissed  = "missed"
	LogStatusSnoozed = "snoozed"
)

// Medication maps to the medications table. Rows are never hard-deleted:
// DELETE flips is_active so historical logs stay joinable.
type Medication struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	UserID       uuid.UUID  `db:"user_id" json:"userId"`
	Name         string     `db:"name" json:"name"`
	Dosage       string     `db:"dosage" json:"dosage"`
	Frequency    string     `db:"frequency" json:"frequency"`
	Instructions *string    `db:"instructions" json:"instructions,omitempty"`
	StartDate    time.Time  `db:"start_date" json:"startDate"`
	EndDate      *time.Time `db:"end_date" json:"endDate,omitempty"`
	IsActive     bool       `db:"is_active" json:"isActive"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}

// Schedule is one time-of-day dose slot for a medication. ScheduledTime is
// an "HH:MM:SS" wall-clock value with no date component.
type Schedule struct {
	ID            uuid.UUID `db:"id" json:"id"`
	MedicationID  uuid.UUID `db:"medication_id" json:"medicationId"`
	ScheduledTime string    `db:"scheduled_time" json:"scheduledTime"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// Log is one dose event, recorded whether or not the dose was taken.
type Log struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	MedicationID  uuid.UUID  `db:"medication_id" json:"medicationId"`
	ScheduledDate time.Time  `db:"scheduled_date" json:"scheduledDate"`
	TakenAt       *time.Time `db:"taken_at" json:"takenAt,omitempty"`
	Status        string     `db:"status" json:"status"`
	Notes         *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
}

// LogWithMedication is a log row joined to its owning medication, the shape
// the log list endpoint returns.
type LogWithMedication struct {
	Log
	Medication Medication `json:"medication"`
}

// CreateMedicationInput is the client payload for creating a medication.
// The owner id comes from the session, never the payload.
type CreateMedicationInput struct {
	Name         string     `json:"name"`
	Dosage       string     `json:"dosage"`
	Frequency    string     `json:"frequency"`
	Instructions *string    `json:"instructions"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
}

// UpdateMedicationInput is a partial patch; nil fields are left untouched.
type UpdateMedicationInput struct {
	Name         *string    `json:"name"`
	Dosage       *string    `json:"dosage"`
	Frequency    *string    `json:"frequency"`
	Instructions *string    `json:"instructions"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
}

type CreateScheduleInput struct {
	ScheduledTime string `json:"scheduledTime"`
}

type CreateLogInput struct {
	MedicationID  uuid.UUID  `json:"medicationId"`
	ScheduledDate time.Time  `json:"scheduledDate"`
	TakenAt       *time.Time `json:"takenAt"`
	Status        string     `json:"status"`
	Notes         *string    `json:"notes"`
}

// UpdateLogInput is a partial patch for a dose log.
type UpdateLogInput struct {
	ScheduledDate *time.Time `json:"scheduledDate"`
	TakenAt       *time.Time `json:"takenAt"`
	Status        *string    `json:"status"`
	Notes         *string    `json:"notes"`
}

// ValidLogStatus reports whether s is one of the known log status tags.
func ValidLogStatus(s string) bool {
	switch s {
	case LogStatusTaken, LogStatusMissed, LogStatusSnoozed:
		return true
	}
	return false
}
