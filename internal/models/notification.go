package models

import "time"

// NotificationType classifies what produced a notification.
type NotificationType string

const (
	NotificationApplicationReceived NotificationType = "application_received"
	NotificationStatusChange        NotificationType = "status_change"
	NotificationInterviewScheduled  NotificationType = "interview_scheduled"
	NotificationSystem              NotificationType = "system"
)

// Notification is an in-app message for one recipient. Read only moves false to true.
// RelatedID is not a foreign key.
type Notification struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	RecipientID uint             `gorm:"not null;index" json:"recipientId"`
	Message     string           `gorm:"not null" json:"message"`
	Type        NotificationType `gorm:"type:varchar(32);not null;default:system" json:"type"`
	Read        bool             `gorm:"not null;default:false" json:"read"`
	RelatedID   uint             `json:"relatedId,omitempty"`
	CreatedAt   time.Time        `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
