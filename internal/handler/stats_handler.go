package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro/internal/auth"
	"bistro/internal/service"
)

// StatsHandler serves the admin dashboard counters.
type StatsHandler struct {
	svc service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// AdminStats godoc
// @Summary Dashboard counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Stats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /admin-stats [get]
func (h *StatsHandler) AdminStats(c echo.Context, _ auth.Identity) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
