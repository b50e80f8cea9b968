package goals

import (
	"context"

	"github.com/google/uuid"

	"github.com/carecompanion/carecompanion/internal/platform/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateGoal(ctx context.Context, userID uuid.UUID, in CreateGoalInput) (*Goal, error) {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Frequency == "" {
		missing = append(missing, "frequency")
	}
	if len(missing) > 0 {
		return nil, validation.NewError(missing...)
	}

	g := &Goal{
		UserID:       userID,
		Title:        in.Title,
		Description:  in.Description,
		TargetValue:  in.TargetValue,
		CurrentValue: in.CurrentValue,
		Frequency:    in.Frequency,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) ListGoals(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Goal, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) UpdateGoal(ctx context.Context, id, userID uuid.UUID, in UpdateGoalInput) (*Goal, error) {
	var empty []string
	if in.Title != nil && *in.Title == "" {
		empty = append(empty, "title")
	}
	if in.Frequency != nil && *in.Frequency == "" {
		empty = append(empty, "frequency")
	}
	if len(empty) > 0 {
		return nil, validation.NewError(empty...)
	}
	return s.repo.Update(ctx, id, userID, in)
}

// DeleteGoal soft-deletes. Idempotent.
func (s *Service) DeleteGoal(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id, userID)
}
