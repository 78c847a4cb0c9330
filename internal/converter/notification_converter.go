package converter

import (
	"time"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"

	"github.com/dustin/go-humanize"
)

// TimeAgo renders createdAt relative to now, e.g. "3 minutes ago".
func TimeAgo(createdAt, now time.Time) string {
	return humanize.RelTime(createdAt, now, "ago", "from now")
}

// NotificationToResponse converts a Notification entity to NotificationResponse DTO.
// time_ago is computed against now and never stored.
func NotificationToResponse(n *entity.Notification, now time.Time) *dto.NotificationResponse {
	if n == nil {
		return nil
	}

	return &dto.NotificationResponse{
		ID:                    n.ID,
		Type:                  string(n.Type),
		Message:               n.Message,
		Payload:               n.Payload,
		IsRead:                n.IsRead,
		ConsultationRequestID: n.ConsultationRequestID,
		Actor:                 UserToSummary(n.Actor),
		CreatedAt:             n.CreatedAt,
		TimeAgo:               TimeAgo(n.CreatedAt, now),
	}
}

func NotificationsToResponses(notifications []entity.Notification, now time.Time) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = *NotificationToResponse(&notifications[i], now)
	}
	return responses
}
