package user

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpsertUser records a user identity delivered by the external provider.
func (s *Service) UpsertUser(ctx context.Context, u *User) error {
	return s.repo.Upsert(ctx, u)
}

func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, in UpdateProfileInput) (*User, error) {
	return s.repo.UpdateProfile(ctx, id, in)
}
