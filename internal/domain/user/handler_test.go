package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/carecompanion/carecompanion/internal/platform/auth"
)

type mockRepo struct {
	users map[uuid.UUID]*User
}

func newMockRepo() *mockRepo {
	return &mockRepo{users: make(map[uuid.UUID]*User)}
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return u, nil
}

func (m *mockRepo) Upsert(_ context.Context, u *User) error {
	if existing, ok := m.users[u.ID]; ok {
		u.CreatedAt = existing.CreatedAt
	} else {
		u.CreatedAt = time.Now()
	}
	u.UpdatedAt = time.Now()
	m.users[u.ID] = u
	return nil
}

func (m *mockRepo) UpdateProfile(_ context.Context, id uuid.UUID, in UpdateProfileInput) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if in.Email != nil {
		u.Email = in.Email
	}
	if in.FirstName != nil {
		u.FirstName = in.FirstName
	}
	if in.LastName != nil {
		u.LastName = in.LastName
	}
	if in.ProfileImageURL != nil {
		u.ProfileImageURL = in.ProfileImageURL
	}
	u.UpdatedAt = time.Now()
	return u, nil
}

func doRequest(t *testing.T, repo Repository, userID uuid.UUID, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	NewHandler(NewService(repo)).RegisterRoutes(e.Group("/api"))

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = req.WithContext(auth.WithUserID(req.Context(), userID.String()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func strp(s string) *string { return &s }

func TestGetCurrentUser(t *testing.T) {
	repo := newMockRepo()
	id := uuid.New()
	repo.users[id] = &User{ID: id, Email: strp("margaret@example.com")}

	rec := doRequest(t, repo, id, http.MethodGet, "/api/auth/user", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var u User
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if u.ID != id || u.Email == nil || *u.Email != "margaret@example.com" {
		t.Errorf("unexpected user %+v", u)
	}
}

func TestGetCurrentUser_Unknown(t *testing.T) {
	rec := doRequest(t, newMockRepo(), uuid.New(), http.MethodGet, "/api/auth/user", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateCurrentUser_PartialPatch(t *testing.T) {
	repo := newMockRepo()
	id := uuid.New()
	repo.users[id] = &User{ID: id, FirstName: strp("Margaret"), LastName: strp("Hale")}

	rec := doRequest(t, repo, id, http.MethodPatch, "/api/auth/user", `{"firstName":"Maggie"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var u User
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if u.FirstName == nil || *u.FirstName != "Maggie" {
		t.Errorf("expected firstName patched, got %+v", u.FirstName)
	}
	if u.LastName == nil || *u.LastName != "Hale" {
		t.Errorf("expected lastName untouched, got %+v", u.LastName)
	}
}

func TestUpdateCurrentUser_Unknown(t *testing.T) {
	rec := doRequest(t, newMockRepo(), uuid.New(), http.MethodPatch, "/api/auth/user", `{"firstName":"Maggie"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpsertUser_PreservesCreatedAt(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	id := uuid.New()

	first := &User{ID: id, Email: strp("margaret@example.com")}
	if err := svc.UpsertUser(context.Background(), first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	created := first.CreatedAt

	second := &User{ID: id, Email: strp("margaret.hale@example.com")}
	if err := svc.UpsertUser(context.Background(), second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.CreatedAt.Equal(created) {
		t.Error("expected upsert to keep the original created_at")
	}

	got, err := svc.GetUser(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email == nil || *got.Email != "margaret.hale@example.com" {
		t.Errorf("expected email replaced, got %+v", got.Email)
	}
}
