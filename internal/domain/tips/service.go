package tips

import (
	"context"

	"github.com/carecompanion/carecompanion/internal/platform/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddTip inserts a curated tip. Exposed for the seed command only; the HTTP
// surface is read-only.
func (s *Service) AddTip(ctx context.Context, t *Tip) error {
	var missing []string
	if t.Title == "" {
		missing = append(missing, "title")
	}
	if t.Content == "" {
		missing = append(missing, "content")
	}
	if t.Category == "" {
		missing = append(missing, "category")
	}
	if t.AuthorName == "" {
		missing = append(missing, "authorName")
	}
	if len(missing) > 0 {
		return validation.NewError(missing...)
	}
	return s.repo.Create(ctx, t)
}

func (s *Service) ListTips(ctx context.Context, limit, offset int) ([]*Tip, error) {
	return s.repo.ListActive(ctx, limit, offset)
}

// DailyTip returns one random active tip. Non-deterministic across calls.
func (s *Service) DailyTip(ctx context.Context) (*Tip, error) {
	return s.repo.Random(ctx)
}

func (s *Service) CatalogueSize(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
