package handler

import (
	"context"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "scrappix-admin/internal/infrastructure/websocket"
	"scrappix-admin/pkg/errors"
)

type StreamHandler struct {
	hub *ws.Hub
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict to the console origin once it is fixed
	},
}

func NewStreamHandler(hub *ws.Hub) *StreamHandler {
	return &StreamHandler{
		hub: hub,
	}
}

// HandleStream upgrades the connection and hands it to the hub. Clients then
// subscribe to topics over the socket itself.
func (h *StreamHandler) HandleStream(c echo.Context) error {
	adminID, ok := c.Get("uid").(string)
	if !ok || adminID == "" {
		return errors.Unauthorized("Authentication required", nil)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := ws.NewClient(adminID, conn)
	h.hub.Register <- client

	// The request context dies when this handler returns, but the socket
	// and its watches outlive it.
	go client.ReadPump(context.Background(), h.hub)
	go client.WritePump()

	return nil
}
