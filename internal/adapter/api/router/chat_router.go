package router

import (
	"github.com/labstack/echo/v4"

	"scrappix-admin/internal/adapter/api/handler"
)

func SetupChatRouter(admin *echo.Group, h *handler.ChatHandler) {
	chats := admin.Group("/chats")
	chats.GET("/:id/messages", h.GetMessages)
}
