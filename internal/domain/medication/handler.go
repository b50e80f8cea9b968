package medication

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/carecompanion/carecompanion/internal/platform/auth"
	"github.com/carecompanion/carecompanion/internal/platform/validation"
	"github.com/carecompanion/carecompanion/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/medications", h.CreateMedication)
	api.GET("/medications", h.ListMedications)
	api.PATCH("/medications/:id", h.UpdateMedication)
	api.DELETE("/medications/:id", h.DeleteMedication)
	api.GET("/medications/:id/status", h.DoseStatus)

	api.POST("/medications/:id/schedules", h.CreateSchedule)
	api.GET("/medications/:id/schedules", h.ListSchedules)

	api.POST("/medication-logs", h.CreateLog)
	api.GET("/medication-logs", h.ListLogs)
	api.PATCH("/medication-logs/:id", h.UpdateLog)
}

func (h *Handler) CreateMedication(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	var in CreateMedicationInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.CreateMedication(c.Request().Context(), userID, in)
	if err != nil {
		return mapError(err, "failed to create medication")
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) ListMedications(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, err := h.svc.ListMedications(c.Request().Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch medications")
	}
	if items == nil {
		items = []*Medication{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateMedication(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var in UpdateMedicationInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.UpdateMedication(c.Request().Context(), id, userID, in)
	if err != nil {
		return mapError(err, "medication not found")
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteMedication(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteMedication(c.Request().Context(), id, userID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete medication")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Medication deleted successfully"})
}

func (h *Handler) DoseStatus(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	report, err := h.svc.DoseStatusToday(c.Request().Context(), userID, id)
	if err != nil {
		return mapError(err, "medication not found")
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) CreateSchedule(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	medID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var in CreateScheduleInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sched, err := h.svc.CreateSchedule(c.Request().Context(), userID, medID, in)
	if err != nil {
		return mapError(err, "medication not found")
	}
	return c.JSON(http.StatusCreated, sched)
}

func (h *Handler) ListSchedules(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	medID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := h.svc.ListSchedules(c.Request().Context(), userID, medID)
	if err != nil {
		return mapError(err, "medication not found")
	}
	if items == nil {
		items = []*Schedule{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateLog(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	var in CreateLogInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	l, err := h.svc.CreateLog(c.Request().Context(), userID, in)
	if err != nil {
		return mapError(err, "medication not found")
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *Handler) ListLogs(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	start, err := parseDateParam(c.QueryParam("startDate"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid startDate")
	}
	end, err := parseDateParam(c.QueryParam("endDate"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid endDate")
	}
	pg := pagination.FromContext(c)
	items, err := h.svc.ListLogs(c.Request().Context(), userID, start, end, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch medication logs")
	}
	if items == nil {
		items = []*LogWithMedication{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateLog(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var in UpdateLogInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	l, err := h.svc.UpdateLog(c.Request().Context(), id, userID, in)
	if err != nil {
		return mapError(err, "medication log not found")
	}
	return c.JSON(http.StatusOK, l)
}

// parseDateParam accepts RFC 3339 timestamps and bare dates.
func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("invalid date")
}

func mapError(err error, notFoundMsg string) error {
	switch {
	case validation.Is(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, pgx.ErrNoRows):
		return echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
