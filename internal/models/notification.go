package models

import "time"

// NotificationTypeFollow is written alongside every new follow edge.
const NotificationTypeFollow = "FOLLOW"

// Notification announces an event to its recipient (PostgreSQL). Follow
// notifications are only ever created inside the same transaction as the
// follow edge itself.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"size:30;index"`
	ActorID     uint      `json:"actor_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
