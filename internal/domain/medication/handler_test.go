package medication

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/carecompanion/carecompanion/internal/platform/auth"
)

func doRequest(t *testing.T, h *Handler, userID uuid.UUID, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	api := e.Group("/api")
	h.RegisterRoutes(api)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = req.WithContext(auth.WithUserID(req.Context(), userID.String()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandler_CreateMedication(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc)
	userID := uuid.New()

	rec := doRequest(t, h, userID, http.MethodPost, "/api/medications",
		`{"name":"Metformin","dosage":"500mg","frequency":"twice daily","startDate":"2026-09-01T00:00:00Z"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var m Medication
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if m.Name != "Metformin" || m.UserID != userID {
		t.Errorf("unexpected medication %+v", m)
	}
}

func TestHandler_CreateMedication_MissingFields(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc)

	rec := doRequest(t, h, uuid.New(), http.MethodPost, "/api/medications", `{"name":"Metformin"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "dosage") {
		t.Errorf("expected violating fields in message, got %s", rec.Body.String())
	}
}

func TestHandler_ListMedications_EmptyIsArray(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc)

	rec := doRequest(t, h, uuid.New(), http.MethodGet, "/api/medications", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected empty JSON array, got %s", got)
	}
}

func TestHandler_UpdateMedication_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc)

	rec := doRequest(t, h, uuid.New(), http.MethodPatch, "/api/medications/"+uuid.NewString(),
		`{"dosage":"20mg"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_UpdateMedication_BadID(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc)

	rec := doRequest(t, h, uuid.New(), http.MethodPatch, "/api/medications/not-a-uuid", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_DeleteThenStatusStillResolves(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc)
	userID := uuid.New()
	m := createMedication(t, svc, userID, "Metformin")

	rec := doRequest(t, h, userID, http.MethodDelete, "/api/medications/"+m.ID.String(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// Soft delete keeps the row fetchable by id
	rec = doRequest(t, h, userID, http.MethodGet, "/api/medications/"+m.ID.String()+"/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on status after soft delete, got %d", rec.Code)
	}
}

func TestHandler_DoseStatus_ForeignMedication(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc)
	m := createMedication(t, svc, uuid.New(), "Metformin")

	rec := doRequest(t, h, uuid.New(), http.MethodGet, "/api/medications/"+m.ID.String()+"/status", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign medication, got %d", rec.Code)
	}
}

func TestHandler_SchedulesRoundTrip(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc)
	userID := uuid.New()
	m := createMedication(t, svc, userID, "Metformin")

	rec := doRequest(t, h, userID, http.MethodPost, "/api/medications/"+m.ID.String()+"/schedules",
		`{"scheduledTime":"08:00"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, h, userID, http.MethodGet, "/api/medications/"+m.ID.String()+"/schedules", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var items []*Schedule
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].ScheduledTime != "08:00" {
		t.Errorf("unexpected schedules %+v", items)
	}
}

func TestHandler_CreateLog_BadStatus(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc)
	userID := uuid.New()
	m := createMedication(t, svc, userID, "Metformin")

	rec := doRequest(t, h, userID, http.MethodPost, "/api/medication-logs",
		`{"medicationId":"`+m.ID.String()+`","scheduledDate":"2026-09-01T08:00:00Z","status":"skipped"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_ListLogs_BadDateParam(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc)

	rec := doRequest(t, h, uuid.New(), http.MethodGet, "/api/medication-logs?startDate=yesterday", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_ListLogs_DateOnlyParam(t *testing.T) {
	svc, _, _, _ := newTestService()
	h := NewHandler(svc)
	userID := uuid.New()
	m := createMedication(t, svc, userID, "Metformin")

	if _, err := svc.CreateLog(context.Background(), userID, CreateLogInput{
		MedicationID:  m.ID,
		ScheduledDate: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
		Status:        LogStatusTaken,
	}); err != nil {
		t.Fatalf("create log: %v", err)
	}

	rec := doRequest(t, h, userID, http.MethodGet,
		"/api/medication-logs?startDate=2026-09-01&endDate=2026-09-02", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var items []*LogWithMedication
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 log, got %d", len(items))
	}
	if items[0].Medication.Name != "Metformin" {
		t.Errorf("expected joined medication in payload, got %+v", items[0])
	}
}
