package tips

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/carecompanion/carecompanion/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the tip routes. Tips are public content, so these
// belong on an unauthenticated group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/health-tips", h.ListTips)
	api.GET("/health-tips/daily", h.DailyTip)
}

func (h *Handler) ListTips(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, err := h.svc.ListTips(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch health tips")
	}
	if items == nil {
		items = []*Tip{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) DailyTip(c echo.Context) error {
	t, err := h.svc.DailyTip(c.Request().Context())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "no health tips available")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch daily tip")
	}
	return c.JSON(http.StatusOK, t)
}
