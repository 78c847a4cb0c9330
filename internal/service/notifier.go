package service

import (
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/repository"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Event describes one workflow transition to fan out as notifications.
type Event struct {
	Type       entity.NotificationType
	Actor      *entity.User
	Request    *entity.ConsultationRequest
	Message    string
	Payload    entity.JSON
	Recipients []uuid.UUID
}

// Notifier projects workflow events into recipients' feeds inside the
// transition's transaction.
type Notifier interface {
	Notify(tx *gorm.DB, event Event) error
}

type notifier struct {
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
	metrics          *metrics.Collector
}

func NewNotifier(log *logrus.Logger, notificationRepo repository.NotificationRepository, collector *metrics.Collector) Notifier {
	return &notifier{
		log:              log,
		notificationRepo: notificationRepo,
		metrics:          collector,
	}
}

func (n *notifier) Notify(tx *gorm.DB, event Event) error {
	notifications := make([]entity.Notification, 0, len(event.Recipients))
	for _, recipient := range event.Recipients {
		// Nobody is told about their own action.
		if event.Actor != nil && recipient == event.Actor.ID {
			continue
		}

		notification := entity.Notification{
			UserID:  recipient,
			Type:    event.Type,
			Message: event.Message,
			Payload: event.Payload,
		}
		if event.Actor != nil {
			actorID := event.Actor.ID
			notification.ActorID = &actorID
		}
		if event.Request != nil {
			requestID := event.Request.ID
			notification.ConsultationRequestID = &requestID
		}
		notifications = append(notifications, notification)
	}

	if err := n.notificationRepo.CreateBatch(tx, notifications); err != nil {
		n.log.Warnf("Failed to create %s notifications: %+v", event.Type, err)
		return err
	}

	n.metrics.RecordNotifications(string(event.Type), len(notifications))
	return nil
}
