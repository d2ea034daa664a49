package router

import (
	"github.com/labstack/echo/v4"

	"scrappix-admin/internal/adapter/api/handler"
)

func SetupUserRouter(admin *echo.Group, h *handler.UserHandler) {
	users := admin.Group("/users")
	users.GET("", h.ListUsers)
	users.POST("/:id/suspend", h.SuspendUser)
	users.POST("/:id/reinstate", h.ReinstateUser)
	users.POST("/:id/ban", h.BanUser)
}
