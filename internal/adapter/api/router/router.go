package router

import (
	"github.com/labstack/echo/v4"

	"scrappix-admin/internal/adapter/api/handler"
	"scrappix-admin/internal/adapter/api/middleware"
)

type Handlers struct {
	Dashboard   *handler.DashboardHandler
	Marketplace *handler.MarketplaceHandler
	Reports     *handler.ReportsHandler
	Users       *handler.UserHandler
	Chats       *handler.ChatHandler
	Admin       *handler.AdminHandler
	Stream      *handler.StreamHandler
}

func Setup(e *echo.Echo, h Handlers, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupHealthRouter(e)

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	SetupDashboardRouter(admin, h.Dashboard)
	SetupMarketplaceRouter(admin, h.Marketplace)
	SetupReportsRouter(admin, h.Reports)
	SetupUserRouter(admin, h.Users)
	SetupChatRouter(admin, h.Chats)

	admin.GET("/me", h.Admin.Me)
	admin.GET("/stream", h.Stream.HandleStream)
}
