package handler

import (
	"github.com/labstack/echo/v4"

	"scrappix-admin/internal/usecase"
	"scrappix-admin/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

// GetMessages returns a reported chat's transcript, oldest first.
func (h *ChatHandler) GetMessages(c echo.Context) error {
	messages, err := h.chatUseCase.GetTranscript(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}
