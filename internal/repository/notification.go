package repository

import (
	"context"

	"careerflow/internal/models"
	"careerflow/internal/observability"

	"gorm.io/gorm"
)

// NotificationRepository defines persistence operations for in-app notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByRecipient(ctx context.Context, recipientID uint) ([]models.Notification, error)
	MarkRead(ctx context.Context, id uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	defer observability.TrackQuery("create", "notifications")()
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID uint) ([]models.Notification, error) {
	defer observability.TrackQuery("list_by_recipient", "notifications")()
	items := []models.Notification{}
	err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

// MarkRead is idempotent and does not check the recipient. An unknown id is not an error.
func (r *notificationRepository) MarkRead(ctx context.Context, id uint) error {
	defer observability.TrackQuery("mark_read", "notifications")()
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("read", true).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
