package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationConsultationRequested NotificationType = "consultation.requested"
	NotificationConsultationScheduled NotificationType = "consultation.scheduled"
	NotificationConsultationConfirmed NotificationType = "consultation.confirmed"
	NotificationConsultationCancelled NotificationType = "consultation.cancelled"
)

// Notification is a read-only projection of a workflow event. Only IsRead ever changes.
type Notification struct {
	ID                    uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	ActorID               *uuid.UUID       `gorm:"type:uuid" json:"actor_id,omitempty"`
	ConsultationRequestID *uuid.UUID       `gorm:"type:uuid;index" json:"consultation_request_id,omitempty"`
	Type                  NotificationType `gorm:"type:varchar(50);not null" json:"type"`
	Message               string           `gorm:"type:text;not null" json:"message"`
	Payload               JSON             `gorm:"type:jsonb" json:"payload,omitempty"`
	IsRead                bool             `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt             time.Time        `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Actor *User `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}

// Actionable reports whether a doctor can approve or deny from this entry.
func (n *Notification) Actionable() bool {
	return n.Type == NotificationConsultationRequested && n.ConsultationRequestID != nil
}
