package dto

import (
	"time"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type ApproveNotificationRequest struct {
	ScheduledAt string `json:"scheduled_at" validate:"required"`
}

type DenyNotificationRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}

// Response DTOs

type NotificationResponse struct {
	ID                    uuid.UUID    `json:"id"`
	Type                  string       `json:"type"`
	Message               string       `json:"message"`
	Payload               entity.JSON  `json:"payload,omitempty"`
	IsRead                bool         `json:"is_read"`
	ConsultationRequestID *uuid.UUID   `json:"consultation_request_id,omitempty"`
	Actor                 *UserSummary `json:"actor,omitempty"`
	CreatedAt             time.Time    `json:"created_at"`
	TimeAgo               string       `json:"time_ago"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Unread        int64                  `json:"unread"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}
