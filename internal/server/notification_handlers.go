package server

import (
	"careerflow/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListNotifications handles GET /api/applications/notifications
// @Summary List my notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} NotificationListResponse
// @Security BearerAuth
// @Router /applications/notifications [get]
func (s *Server) ListNotifications(c *fiber.Ctx) error {
	identity, err := s.identity(c)
	if err != nil {
		return nil
	}

	items, err := s.notificationSvc().List(c.UserContext(), identity)
	if err != nil {
		return respondServiceError(c, err)
	}
	if items == nil {
		items = []models.Notification{}
	}

	return c.JSON(NotificationListResponse{Notifications: items})
}

// MarkNotificationRead handles PATCH /api/applications/notifications/:id/read
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /applications/notifications/{id}/read [patch]
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.notificationSvc().MarkRead(c.UserContext(), id); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(MessageResponse{Message: "Marked as read"})
}
