package service

import (
	"context"

	"careerflow/internal/models"
	"careerflow/internal/repository"
)

type NotificationService struct {
	notifications repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notificationRepo}
}

// List returns the caller's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, identity models.Identity) ([]models.Notification, error) {
	return s.notifications.ListByRecipient(ctx, identity.UserID)
}

// MarkRead sets read on any notification id. It does not check the recipient.
func (s *NotificationService) MarkRead(ctx context.Context, id uint) error {
	if id == 0 {
		return models.NewValidationError("Invalid notification id")
	}
	return s.notifications.MarkRead(ctx, id)
}
