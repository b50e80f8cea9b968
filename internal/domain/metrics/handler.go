package metrics

import (
	"errors"
	"net/http"

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
	api.POST("/health-metrics", h.CreateMetric)
	api.GET("/health-metrics", h.ListMetrics)
	api.GET("/health-metrics/latest/:type", h.LatestByType)
}

func (h *Handler) CreateMetric(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	var in CreateMetricInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.CreateMetric(c.Request().Context(), userID, in)
	if err != nil {
		if validation.Is(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create health metric")
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) ListMetrics(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, err := h.svc.ListMetrics(c.Request().Context(), userID, c.QueryParam("type"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch health metrics")
	}
	if items == nil {
		items = []*Metric{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) LatestByType(c echo.Context) error {
	userID, err := auth.CallerID(c)
	if err != nil {
		return err
	}
	m, err := h.svc.LatestByType(c.Request().Context(), userID, c.Param("type"))
	if err != nil {
		switch {
		case validation.Is(err):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, pgx.ErrNoRows):
			return echo.NewHTTPError(http.StatusNotFound, "no readings for metric type")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch health metric")
		}
	}
	return c.JSON(http.StatusOK, m)
}
