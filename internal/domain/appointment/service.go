package appointment

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

func (s *Service) CreateAppointment(ctx context.Context, userID uuid.UUID, in CreateAppointmentInput) (*Appointment, error) {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.DoctorName == "" {
		missing = append(missing, "doctorName")
	}
	if in.Location == "" {
		missing = append(missing, "location")
	}
	if in.AppointmentDate.IsZero() {
		missing = append(missing, "appointmentDate")
	}
	if len(missing) > 0 {
		return nil, validation.NewError(missing...)
	}

	duration := DefaultDuration
	if in.Duration != nil {
		if *in.Duration <= 0 {
			return nil, validation.NewError("duration")
		}
		duration = *in.Duration
	}

	a := &Appointment{
		UserID:          userID,
		Title:           in.Title,
		Description:     in.Description,
		DoctorName:      in.DoctorName,
		Location:        in.Location,
		AppointmentDate: in.AppointmentDate,
		Duration:        duration,
		Status:          StatusScheduled,
		Notes:           in.Notes,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ListAppointments(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Appointment, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

// UpcomingAppointments returns at most five future scheduled appointments,
// soonest first.
func (s *Service) UpcomingAppointments(ctx context.Context, userID uuid.UUID) ([]*Appointment, error) {
	return s.repo.Upcoming(ctx, userID, s.now())
}

func (s *Service) UpdateAppointment(ctx context.Context, id, userID uuid.UUID, in UpdateAppointmentInput) (*Appointment, error) {
	var bad []string
	if in.Status != nil && !ValidStatus(*in.Status) {
		bad = append(bad, "status")
	}
	if in.Duration != nil && *in.Duration <= 0 {
		bad = append(bad, "duration")
	}
	if in.Title != nil && *in.Title == "" {
		bad = append(bad, "title")
	}
	if len(bad) > 0 {
		return nil, validation.NewError(bad...)
	}
	return s.repo.Update(ctx, id, userID, in)
}
