package server

import (
	"errors"
	"log/slog"

	"careerflow/internal/middleware"
	"careerflow/internal/models"
	"careerflow/internal/notifications"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RequireUpgrade rejects plain HTTP requests to the websocket endpoint.
func (s *Server) RequireUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return models.RespondWithError(c, fiber.StatusUpgradeRequired,
			models.NewValidationError("WebSocket upgrade required"))
	}
	return c.Next()
}

// WebsocketHandler handles GET /api/ws
// @Summary Realtime notifications
// @Description Upgrades to a websocket that receives {"type":"notification","payload":{...}} for each new notification addressed to the caller.
// @Tags notifications
// @Param token query string true "Identity token"
// @Success 101
// @Failure 401 {object} models.ErrorResponse
// @Failure 426 {object} models.ErrorResponse
// @Router /ws [get]
func (s *Server) WebsocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals(middleware.LocalUserID).(uint)
		if !ok || userID == 0 {
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"unauthorized"}`))
			_ = conn.Close()
			return
		}

		client, err := s.hub.Register(userID, conn)
		if err != nil {
			reason := "server_limit"
			if errors.Is(err, notifications.ErrUserConnLimit) {
				reason = "user_limit"
			}
			middleware.Logger.Warn("notification socket rejected",
				slog.Uint64("user_id", uint64(userID)), slog.String("reason", reason))
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"`+err.Error()+`"}`))
			_ = conn.Close()
			return
		}

		go client.WritePump()
		client.ReadPump()
	})
}
