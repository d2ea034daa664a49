package router

import (
	"github.com/labstack/echo/v4"

	"scrappix-admin/internal/adapter/api/handler"
)

func SetupMarketplaceRouter(admin *echo.Group, h *handler.MarketplaceHandler) {
	items := admin.Group("/marketplace/items")
	items.GET("", h.ListItems)
	items.GET("/:id", h.GetItem)
	items.POST("/:id/approve", h.ApproveItem)
	items.POST("/:id/reject", h.RejectItem)
	items.POST("/:id/remove", h.RemoveItem)
	items.DELETE("/:id", h.DeleteItem)
}
