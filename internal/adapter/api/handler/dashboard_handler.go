package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"scrappix-admin/internal/usecase"
	"scrappix-admin/pkg/response"
)

type DashboardHandler struct {
	dashboardUseCase *usecase.DashboardUseCase
	adminUseCase     *usecase.AdminUseCase
}

func NewDashboardHandler(dashboardUseCase *usecase.DashboardUseCase, adminUseCase *usecase.AdminUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		adminUseCase:     adminUseCase,
	}
}

func (h *DashboardHandler) GetStats(c echo.Context) error {
	stats, err := h.dashboardUseCase.Stats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

// GetActivities returns the calling admin's own recent audit entries.
func (h *DashboardHandler) GetActivities(c echo.Context) error {
	admin := adminFromContext(c)

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	activities, err := h.adminUseCase.RecentActivities(c.Request().Context(), admin.UID, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, activities)
}
