package goals

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
	api.POST("/health-goals", h.CreateGoal)
	api.GET("/health-goals", h.ListGoals)
	api.PATCH("/health-goals/:id", h.UpdateGoal)
	api.DELETE("/health-goals/:id", h.DeleteGoal)
}

func (h *Handler) CreateGoal(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	var in CreateGoalInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	g, err := h.svc.CreateGoal(c.Request().Context(), userID, in)
	if err != nil {
		if validation.Is(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create health goal")
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *Handler) ListGoals(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, err := h.svc.ListGoals(c.Request().Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch health goals")
	}
	if items == nil {
		items = []*Goal{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateGoal(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var in UpdateGoalInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	g, err := h.svc.UpdateGoal(c.Request().Context(), id, userID, in)
	if err != nil {
		switch {
		case validation.Is(err):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, pgx.ErrNoRows):
			return echo.NewHTTPError(http.StatusNotFound, "health goal not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to update health goal")
		}
	}
	return c.JSON(http.StatusOK, g)
}

func (h *Handler) DeleteGoal(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteGoal(c.Request().Context(), id, userID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete health goal")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Health goal deleted successfully"})
}
