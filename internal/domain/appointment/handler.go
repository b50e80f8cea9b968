package appointment

import (
	"errors"
	"net/http"

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
	api.POST("/appointments", h.CreateAppointment)
	api.GET("/appointments", h.ListAppointments)
	api.GET("/appointments/upcoming", h.UpcomingAppointments)
	api.PATCH("/appointments/:id", h.UpdateAppointment)
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	var in CreateAppointmentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.CreateAppointment(c.Request().Context(), userID, in)
	if err != nil {
		if validation.Is(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create appointment")
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, err := h.svc.ListAppointments(c.Request().Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch appointments")
	}
	if items == nil {
		items = []*Appointment{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpcomingAppointments(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	items, err := h.svc.UpcomingAppointments(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch upcoming appointments")
	}
	if items == nil {
		items = []*Appointment{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateAppointment(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var in UpdateAppointmentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.UpdateAppointment(c.Request().Context(), id, userID, in)
	if err != nil {
		switch {
		case validation.Is(err):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, pgx.ErrNoRows):
			return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to update appointment")
		}
	}
	return c.JSON(http.StatusOK, a)
}
