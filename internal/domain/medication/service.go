package medication

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/carecompanion/carecompanion/internal/platform/validation"
)

type Service struct {
	meds      Repository
	schedules ScheduleRepository
	logs      LogRepository
	now       func() time.Time
}

func NewService(meds Repository, schedules ScheduleRepository, logs LogRepository) *Service {
	return &Service{meds: meds, schedules: schedules, logs: logs, now: time.Now}
}

// ownedMedication fetches a medication and verifies it belongs to userID.
// A foreign or missing medication is indistinguishable to the caller.
func (s *Service) ownedMedication(ctx context.Context, id, userID uuid.UUID) (*Medication, error) {
	m, err := s.meds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	return m, nil
}

func (s *Service) CreateMedication(ctx context.Context, userID uuid.UUID, in CreateMedicationInput) (*Medication, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Dosage == "" {
		missing = append(missing, "dosage")
	}
	if in.Frequency == "" {
		missing = append(missing, "frequency")
	}
	if in.StartDate.IsZero() {
		missing = append(missing, "startDate")
	}
	if len(missing) > 0 {
		return nil, validation.NewError(missing...)
	}

	m := &Medication{
		UserID:       userID,
		Name:         in.Name,
		Dosage:       in.Dosage,
		Frequency:    in.Frequency,
		Instructions: in.Instructions,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
	}
	if err := s.meds.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) ListMedications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Medication, error) {
	return s.meds.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) UpdateMedication(ctx context.Context, id, userID uuid.UUID, in UpdateMedicationInput) (*Medication, error) {
	var empty []string
	if in.Name != nil && *in.Name == "" {
		empty = append(empty, "name")
	}
	if in.Dosage != nil && *in.Dosage == "" {
		empty = append(empty, "dosage")
	}
	if in.Frequency != nil && *in.Frequency == "" {
		empty = append(empty, "frequency")
	}
	if len(empty) > 0 {
		return nil, validation.NewError(empty...)
	}
	return s.meds.Update(ctx, id, userID, in)
}

// DeleteMedication soft-deletes: the row stays for log joins. Idempotent.
func (s *Service) DeleteMedication(ctx context.Context, id, userID uuid.UUID) error {
	return s.meds.SoftDelete(ctx, id, userID)
}

func (s *Service) CreateSchedule(ctx context.Context, userID, medicationID uuid.UUID, in CreateScheduleInput) (*Schedule, error) {
	if in.ScheduledTime == "" {
		return nil, validation.NewError("scheduledTime")
	}
	if _, err := clockToday(s.now(), in.ScheduledTime); err != nil {
		return nil, validation.NewError("scheduledTime")
	}
	if _, err := s.ownedMedication(ctx, medicationID, userID); err != nil {
		return nil, err
	}

	sched := &Schedule{MedicationID: medicationID, ScheduledTime: in.ScheduledTime}
	if err := s.schedules.Create(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *Service) ListSchedules(ctx context.Context, userID, medicationID uuid.UUID) ([]*Schedule, error) {
	if _, err := s.ownedMedication(ctx, medicationID, userID); err != nil {
		return nil, err
	}
	return s.schedules.ListByMedication(ctx, medicationID)
}

func (s *Service) CreateLog(ctx context.Context, userID uuid.UUID, in CreateLogInput) (*Log, error) {
	var bad []string
	if in.MedicationID == uuid.Nil {
		bad = append(bad, "medicationId")
	}
	if in.ScheduledDate.IsZero() {
		bad = append(bad, "scheduledDate")
	}
	if !ValidLogStatus(in.Status) {
		bad = append(bad, "status")
	}
	if len(bad) > 0 {
		return nil, validation.NewError(bad...)
	}
	if _, err := s.ownedMedication(ctx, in.MedicationID, userID); err != nil {
		return nil, err
	}

	l := &Log{
		MedicationID:  in.MedicationID,
		ScheduledDate: in.ScheduledDate,
		TakenAt:       in.TakenAt,
		Status:        in.Status,
		Notes:         in.Notes,
	}
	if err := s.logs.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) ListLogs(ctx context.Context, userID uuid.UUID, start, end *time.Time, limit, offset int) ([]*LogWithMedication, error) {
	return s.logs.ListByUser(ctx, userID, start, end, limit, offset)
}

func (s *Service) UpdateLog(ctx context.Context, id, userID uuid.UUID, in UpdateLogInput) (*Log, error) {
	if in.Status != nil && !ValidLogStatus(*in.Status) {
		return nil, validation.NewError("status")
	}

	existing, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedMedication(ctx, existing.MedicationID, userID); err != nil {
		return nil, err
	}
	return s.logs.Update(ctx, id, in)
}

// DoseStatusToday reports the medication's derived dose status for the
// current server-local day.
func (s *Service) DoseStatusToday(ctx context.Context, userID, medicationID uuid.UUID) (*StatusReport, error) {
	if _, err := s.ownedMedication(ctx, medicationID, userID); err != nil {
		return nil, err
	}

	schedules, err := s.schedules.ListByMedication(ctx, medicationID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	dayStart, dayEnd := dayBounds(now)
	todays, err := s.logs.ListForDay(ctx, medicationID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return &StatusReport{
		MedicationID: medicationID.String(),
		Date:         dayStart.Format("2006-01-02"),
		Status:       DeriveDoseStatus(now, schedules, todays),
	}, nil
}
