package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment status tags.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// DefaultDuration is assumed when the client omits a duration.
const DefaultDuration = 30

// Appointment maps to the appointments table.
type Appointment struct {
	ID              uuid.UUID `db:"id" json:"id"`
	UserID          uuid.UUID `db:"user_id" json:"userId"`
	Title           string    `db:"title" json:"title"`
	Description     *string   `db:"description" json:"description,omitempty"`
	DoctorName      string    `db:"doctor_name" json:"doctorName"`
	Location        string    `db:"location" json:"location"`
	AppointmentDate time.Time `db:"appointment_date" json:"appointmentDate"`
	Duration        int       `db:"duration" json:"duration"`
	Status          string    `db:"status" json:"status"`
	Notes           *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// CreateAppointmentInput is the client payload; the owner id comes from the
// session. Duration defaults to DefaultDuration, status to scheduled.
type CreateAppointmentInput struct {
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	DoctorName      string    `json:"doctorName"`
	Location        string    `json:"location"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Duration        *int      `json:"duration"`
	Notes           *string   `json:"notes"`
}

// UpdateAppointmentInput is a partial patch; nil fields are left untouched.
type UpdateAppointmentInput struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	DoctorName      *string    `json:"doctorName"`
	Location        *string    `json:"location"`
	AppointmentDate *time.Time `json:"appointmentDate"`
	Duration        *int       `json:"duration"`
	Status          *string    `json:"status"`
	Notes           *string    `json:"notes"`
}

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
