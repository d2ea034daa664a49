package router

import (
	"github.com/labstack/echo/v4"

	"scrappix-admin/internal/adapter/api/handler"
)

func SetupReportsRouter(admin *echo.Group, h *handler.ReportsHandler) {
	reports := admin.Group("/reports")
	reports.GET("", h.ListReports)
	reports.POST("/:id/approve", h.ApproveReport)
	reports.POST("/:id/reject", h.RejectReport)
	reports.POST("/:id/undo-reject", h.UndoRejectReport)

	removals := admin.Group("/removals")
	removals.GET("", h.ListRemovals)
	removals.POST("/:id/acknowledge", h.AcknowledgeRemoval)
}
