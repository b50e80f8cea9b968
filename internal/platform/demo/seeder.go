// Package demo seeds the database with the curated health-tip catalogue and,
// optionally, a demo user carrying a realistic spread of medications,
// schedules, dose logs, metrics, goals and appointments. Intended for
// development and demo environments.
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carecompanion/carecompanion/internal/domain/appointment"
	"github.com/carecompanion/carecompanion/internal/domain/goals"
	"github.com/carecompanion/carecompanion/internal/domain/medication"
	"github.com/carecompanion/carecompanion/internal/domain/metrics"
	"github.com/carecompanion/carecompanion/internal/domain/tips"
	"github.com/carecompanion/carecompanion/internal/domain/user"
	"github.com/carecompanion/carecompanion/internal/platform/auth"
)

type Seeder struct {
	users        *user.Service
	medications  *medication.Service
	metrics      *metrics.Service
	goals        *goals.Service
	tips         *tips.Service
	appointments *appointment.Service
	log          zerolog.Logger
}

func NewSeeder(
	users *user.Service,
	medications *medication.Service,
	healthMetrics *metrics.Service,
	healthGoals *goals.Service,
	healthTips *tips.Service,
	appointments *appointment.Service,
	log zerolog.Logger,
) *Seeder {
	return &Seeder{
		users:        users,
		medications:  medications,
		metrics:      healthMetrics,
		goals:        healthGoals,
		tips:         healthTips,
		appointments: appointments,
		log:          log,
	}
}

// Seed populates the tip catalogue and, when withDemoUser is set, a demo
// user with sample data. Tips are skipped when the catalogue already has
// rows, so running seed twice does not duplicate them.
func (s *Seeder) Seed(ctx context.Context, withDemoUser bool) error {
	n, err := s.tips.CatalogueSize(ctx)
	if err != nil {
		return fmt.Errorf("check tip catalogue: %w", err)
	}
	if n == 0 {
		if err := s.seedTips(ctx); err != nil {
			return err
		}
	} else {
		s.log.Info().Int("count", n).Msg("tip catalogue already populated, skipping")
	}

	if withDemoUser {
		if err := s.seedDemoUser(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedTips(ctx context.Context) error {
	for _, t := range Catalogue() {
		tip := t
		if err := s.tips.AddTip(ctx, &tip); err != nil {
			return fmt.Errorf("seed tip %q: %w", tip.Title, err)
		}
	}
	s.log.Info().Int("count", len(Catalogue())).Msg("seeded health tips")
	return nil
}

func (s *Seeder) seedDemoUser(ctx context.Context) error {
	demoID := uuid.MustParse(auth.DevUserID)
	email := "margaret.demo@carecompanion.local"
	first := "Margaret"
	last := "Hale"

	if err := s.users.UpsertUser(ctx, &user.User{
		ID:        demoID,
		Email:     &email,
		FirstName: &first,
		LastName:  &last,
	}); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	now := time.Now()
	instructions := "Take with food"
	med, err := s.medications.CreateMedication(ctx, demoID, medication.CreateMedicationInput{
		Name:         "Lisinopril",
		Dosage:       "10mg",
		Frequency:    "daily",
		Instructions: &instructions,
		StartDate:    now.AddDate(0, -3, 0),
	})
	if err != nil {
		return fmt.Errorf("seed medication: %w", err)
	}
	if _, err := s.medications.CreateSchedule(ctx, demoID, med.ID, medication.CreateScheduleInput{
		ScheduledTime: "08:00",
	}); err != nil {
		return fmt.Errorf("seed schedule: %w", err)
	}
	takenAt := now.AddDate(0, 0, -1)
	if _, err := s.medications.CreateLog(ctx, demoID, medication.CreateLogInput{
		MedicationID:  med.ID,
		ScheduledDate: takenAt,
		TakenAt:       &takenAt,
		Status:        medication.LogStatusTaken,
	}); err != nil {
		return fmt.Errorf("seed medication log: %w", err)
	}

	for _, m := range []metrics.CreateMetricInput{
		{MetricType: "blood_pressure", Value: "122/78", Unit: "mmHg"},
		{MetricType: "heart_rate", Value: "68", Unit: "bpm"},
		{MetricType: "weight", Value: "71.5", Unit: "kg"},
	} {
		if _, err := s.metrics.CreateMetric(ctx, demoID, m); err != nil {
			return fmt.Errorf("seed metric %s: %w", m.MetricType, err)
		}
	}

	target := "10,000 steps"
	current := "6,500 steps"
	if _, err := s.goals.CreateGoal(ctx, demoID, goals.CreateGoalInput{
		Title:        "Daily walking",
		TargetValue:  &target,
		CurrentValue: &current,
		Frequency:    "daily",
	}); err != nil {
		return fmt.Errorf("seed goal: %w", err)
	}

	if _, err := s.appointments.CreateAppointment(ctx, demoID, appointment.CreateAppointmentInput{
		Title:           "Cardiology follow-up",
		DoctorName:      "Dr. Patel",
		Location:        "Riverside Clinic, Room 204",
		AppointmentDate: now.AddDate(0, 0, 7),
	}); err != nil {
		return fmt.Errorf("seed appointment: %w", err)
	}

	s.log.Info().Str("user_id", demoID.String()).Msg("seeded demo user")
	return nil
}
