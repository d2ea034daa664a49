package router

import (
	"github.com/labstack/echo/v4"

	"scrappix-admin/internal/adapter/api/handler"
)

func SetupDashboardRouter(admin *echo.Group, h *handler.DashboardHandler) {
	dashboard := admin.Group("/dashboard")
	dashboard.GET("/stats", h.GetStats)
	dashboard.GET("/activities", h.GetActivities)
}
