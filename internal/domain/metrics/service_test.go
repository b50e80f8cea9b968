package metrics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
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
	metrics []*Metric
}

func (m *mockRepo) Create(_ context.Context, metric *Metric) error {
	metric.ID = uuid.New()
	metric.CreatedAt = time.Now()
	m.metrics = append(m.metrics, metric)
	return nil
}

func (m *mockRepo) ListByUser(_ context.Context, userID uuid.UUID, metricType string, limit, offset int) ([]*Metric, error) {
	var result []*Metric
	for _, metric := range m.metrics {
		if metric.UserID != userID {
			continue
		}
		if metricType != "" && metric.MetricType != metricType {
			continue
		}
		result = append(result, metric)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RecordedAt.After(result[j].RecordedAt)
	})
	return result, nil
}

func (m *mockRepo) LatestByType(ctx context.Context, userID uuid.UUID, metricType string) (*Metric, error) {
	items, _ := m.ListByUser(ctx, userID, metricType, 1, 0)
	if len(items) == 0 {
		return nil, pgx.ErrNoRows
	}
	return items[0], nil
}

func record(t *testing.T, svc *Service, userID uuid.UUID, metricType, value string, at time.Time) *Metric {
	t.Helper()
	m, err := svc.CreateMetric(context.Background(), userID, CreateMetricInput{
		MetricType: metricType,
		Value:      value,
		Unit:       "mmHg",
		RecordedAt: &at,
	})
	if err != nil {
		t.Fatalf("create metric: %v", err)
	}
	return m
}

func TestCreateMetric_MissingFields(t *testing.T) {
	svc := NewService(&mockRepo{})

	_, err := svc.CreateMetric(context.Background(), uuid.New(), CreateMetricInput{Value: "72"})
	if !validation.Is(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "metricType") || !strings.Contains(msg, "unit") {
		t.Errorf("expected violating fields named, got %q", msg)
	}
}

func TestCreateMetric_DefaultsRecordedAt(t *testing.T) {
	svc := NewService(&mockRepo{})
	fixed := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	m, err := svc.CreateMetric(context.Background(), uuid.New(), CreateMetricInput{
		MetricType: "heart_rate", Value: "72", Unit: "bpm",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.RecordedAt.Equal(fixed) {
		t.Errorf("expected recordedAt defaulted to now, got %v", m.RecordedAt)
	}
}

func TestLatestByType_RespectsRecordedAt(t *testing.T) {
	svc := NewService(&mockRepo{})
	userID := uuid.New()

	base := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	record(t, svc, userID, "blood_pressure", "118/76", base.Add(2*time.Hour))
	record(t, svc, userID, "blood_pressure", "120/80", base)
	record(t, svc, userID, "blood_pressure", "125/85", base.Add(time.Hour))
	record(t, svc, userID, "heart_rate", "72", base.Add(3*time.Hour))

	latest, err := svc.LatestByType(context.Background(), userID, "blood_pressure")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest.Value != "118/76" {
		t.Errorf("expected newest reading by recorded_at, got %s", latest.Value)
	}

	// Insertion order must not matter
	record(t, svc, userID, "blood_pressure", "130/90", base.Add(-time.Hour))
	latest, _ = svc.LatestByType(context.Background(), userID, "blood_pressure")
	if latest.Value != "118/76" {
		t.Errorf("expected older insert not to displace latest, got %s", latest.Value)
	}
}

func TestLatestByType_OtherUserInvisible(t *testing.T) {
	svc := NewService(&mockRepo{})
	owner := uuid.New()
	record(t, svc, owner, "weight", "82", time.Now())

	_, err := svc.LatestByType(context.Background(), uuid.New(), "weight")
	if err != pgx.ErrNoRows {
		t.Fatalf("expected ErrNoRows for foreign user, got %v", err)
	}
}

func TestListMetrics_TypeFilter(t *testing.T) {
	svc := NewService(&mockRepo{})
	userID := uuid.New()
	now := time.Now()
	record(t, svc, userID, "weight", "82", now)
	record(t, svc, userID, "heart_rate", "72", now)
	record(t, svc, userID, "weight", "81", now.Add(time.Hour))

	items, err := svc.ListMetrics(context.Background(), userID, "weight", 100, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 weight readings, got %d", len(items))
	}
	for _, m := range items {
		if m.MetricType != "weight" {
			t.Errorf("unexpected type %s in filtered list", m.MetricType)
		}
	}

	all, _ := svc.ListMetrics(context.Background(), userID, "", 100, 0)
	if len(all) != 3 {
		t.Errorf("expected 3 readings unfiltered, got %d", len(all))
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

func TestHandler_CreateAndLatest(t *testing.T) {
	svc := NewService(&mockRepo{})
	h := NewHandler(svc)
	userID := uuid.New()

	rec := doRequest(t, h, userID, http.MethodPost, "/api/health-metrics",
		`{"metricType":"blood_pressure","value":"120/80","unit":"mmHg","recordedAt":"2026-09-01T08:00:00Z"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, h, userID, http.MethodGet, "/api/health-metrics/latest/blood_pressure", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var m Metric
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if m.Value != "120/80" {
		t.Errorf("unexpected metric %+v", m)
	}
}

func TestHandler_LatestUnknownTypeIs404(t *testing.T) {
	h := NewHandler(NewService(&mockRepo{}))

	rec := doRequest(t, h, uuid.New(), http.MethodGet, "/api/health-metrics/latest/temperature", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_ListEmptyIsArray(t *testing.T) {
	h := NewHandler(NewService(&mockRepo{}))

	rec := doRequest(t, h, uuid.New(), http.MethodGet, "/api/health-metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected empty JSON array, got %s", got)
	}
}
