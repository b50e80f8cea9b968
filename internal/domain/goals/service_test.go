package goals

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/carecompanion/carecompanion/internal/platform/auth"
	"github.com/carecompanion/carecompanion/internal/platform/validation"
)

type mockRepo struct {
	goals map[uuid.UUID]*Goal
}

func newMockRepo() *mockRepo {
	return &mockRepo{goals: make(map[uuid.UUID]*Goal)}
}

func (m *mockRepo) Create(_ context.Context, g *Goal) error {
	g.ID = uuid.New()
	g.IsActive = true
	g.CreatedAt = time.Now()
	g.UpdatedAt = time.Now()
	m.goals[g.ID] = g
	return nil
}

func (m *mockRepo) ListByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*Goal, error) {
	var result []*Goal
	for _, g := range m.goals {
		if g.UserID == userID && g.IsActive {
			result = append(result, g)
		}
	}
	return result, nil
}

func (m *mockRepo) Update(_ context.Context, id, userID uuid.UUID, in UpdateGoalInput) (*Goal, error) {
	g, ok := m.goals[id]
	if !ok || g.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	if in.Title != nil {
		g.Title = *in.Title
	}
	if in.Description != nil {
		g.Description = in.Description
	}
	if in.TargetValue != nil {
		g.TargetValue = in.TargetValue
	}
	if in.CurrentValue != nil {
		g.CurrentValue = in.CurrentValue
	}
	if in.Frequency != nil {
		g.Frequency = *in.Frequency
	}
	g.UpdatedAt = time.Now()
	return g, nil
}

func (m *mockRepo) SoftDelete(_ context.Context, id, userID uuid.UUID) error {
	if g, ok := m.goals[id]; ok && g.UserID == userID {
		g.IsActive = false
		g.UpdatedAt = time.Now()
	}
	return nil
}

func createGoal(t *testing.T, svc *Service, userID uuid.UUID, title string) *Goal {
	t.Helper()
	g, err := svc.CreateGoal(context.Background(), userID, CreateGoalInput{
		Title: title, Frequency: "daily",
	})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}
	return g
}

func TestCreateGoal_MissingFields(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.CreateGoal(context.Background(), uuid.New(), CreateGoalInput{})
	if !validation.Is(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "title") || !strings.Contains(msg, "frequency") {
		t.Errorf("expected violating fields named, got %q", msg)
	}
}

func TestUpdateGoal_PartialAndCrossOwner(t *testing.T) {
	svc := NewService(newMockRepo())
	owner := uuid.New()
	g := createGoal(t, svc, owner, "Walk 10,000 steps")

	current := "6,500 steps"
	updated, err := svc.UpdateGoal(context.Background(), g.ID, owner, UpdateGoalInput{CurrentValue: &current})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.CurrentValue == nil || *updated.CurrentValue != current {
		t.Errorf("expected currentValue patched, got %+v", updated.CurrentValue)
	}
	if updated.Title != "Walk 10,000 steps" {
		t.Errorf("expected title untouched, got %s", updated.Title)
	}

	_, err = svc.UpdateGoal(context.Background(), g.ID, uuid.New(), UpdateGoalInput{CurrentValue: &current})
	if err != pgx.ErrNoRows {
		t.Fatalf("expected ErrNoRows for cross-owner update, got %v", err)
	}
}

func TestDeleteGoal_ExcludedFromList(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	userID := uuid.New()
	g := createGoal(t, svc, userID, "Walk 10,000 steps")

	if err := svc.DeleteGoal(context.Background(), g.ID, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, _ := svc.ListGoals(context.Background(), userID, 100, 0)
	if len(items) != 0 {
		t.Errorf("expected soft-deleted goal excluded, got %d items", len(items))
	}
	if repo.goals[g.ID] == nil {
		t.Error("expected row retained after soft delete")
	}

	// Foreign delete is a silent no-op
	other := createGoal(t, svc, userID, "Drink more water")
	if err := svc.DeleteGoal(context.Background(), other.ID, uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.goals[other.ID].IsActive {
		t.Error("expected foreign delete not to touch the row")
	}
}

func doRequest(t *testing.T, h *Handler, userID uuid.UUID, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h.RegisterRoutes(e.Group("/api"))

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = req.WithContext(auth.WithUserID(req.Context(), userID.String()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandler_GoalLifecycle(t *testing.T) {
	svc := NewService(newMockRepo())
	h := NewHandler(svc)
	userID := uuid.New()

	rec := doRequest(t, h, userID, http.MethodPost, "/api/health-goals",
		`{"title":"Walk 10,000 steps","frequency":"daily","targetValue":"10,000 steps"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, h, userID, http.MethodGet, "/api/health-goals", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Walk 10,000 steps") {
		t.Errorf("expected created goal in list, got %s", rec.Body.String())
	}

	rec = doRequest(t, h, userID, http.MethodPatch, "/api/health-goals/"+uuid.NewString(), `{"title":"x"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown goal, got %d", rec.Code)
	}
}
