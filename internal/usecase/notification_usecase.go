package usecase

import (
	"context"
	"time"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/converter"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NotificationUsecase serves the per-user feed. Approve and Deny never touch
// the notification itself, they run the consultation workflow.
type NotificationUsecase interface {
	List(ctx context.Context, user *entity.User, page, limit int) (*dto.NotificationListResponse, error)
	UnreadCount(ctx context.Context, user *entity.User) (*dto.UnreadCountResponse, error)
	MarkRead(ctx context.Context, user *entity.User, id uuid.UUID) (*dto.MarkReadResponse, error)
	MarkAllRead(ctx context.Context, user *entity.User) (*dto.MarkReadResponse, error)
	Approve(ctx context.Context, doctor *entity.User, id uuid.UUID, req *dto.ApproveNotificationRequest) (*dto.ConsultationResponse, error)
	Deny(ctx context.Context, doctor *entity.User, id uuid.UUID, req *dto.DenyNotificationRequest) (*dto.ConsultationResponse, error)
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
	consultations    ConsultationUsecase
	now              func() time.Time
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
	consultations ConsultationUsecase,
) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
		consultations:    consultations,
		now:              time.Now,
	}
}

func (u *notificationUsecase) List(ctx context.Context, user *entity.User, page, limit int) (*dto.NotificationListResponse, error) {
	db := u.db.WithContext(ctx)
	limit, offset := pagination(page, limit)

	notifications, total, err := u.notificationRepo.FindByUserID(db, user.ID, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list notifications: %+v", err)
		return nil, err
	}

	unread, err := u.notificationRepo.CountUnread(db, user.ID)
	if err != nil {
		u.log.Warnf("Failed to count unread notifications: %+v", err)
		return nil, err
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications, u.now()),
		Total:         total,
		Unread:        unread,
	}, nil
}

func (u *notificationUsecase) UnreadCount(ctx context.Context, user *entity.User) (*dto.UnreadCountResponse, error) {
	unread, err := u.notificationRepo.CountUnread(u.db.WithContext(ctx), user.ID)
	if err != nil {
		u.log.Warnf("Failed to count unread notifications: %+v", err)
		return nil, err
	}
	return &dto.UnreadCountResponse{Unread: unread}, nil
}

// MarkRead only touches the caller's own notifications; anything else reads as missing.
func (u *notificationUsecase) MarkRead(ctx context.Context, user *entity.User, id uuid.UUID) (*dto.MarkReadResponse, error) {
	db := u.db.WithContext(ctx)

	notification, err := u.notificationRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find notification: %+v", err)
		return nil, err
	}
	if notification == nil || notification.UserID != user.ID {
		return nil, ErrNotificationNotFound
	}

	updated, err := u.notificationRepo.MarkAsRead(db, id, user.ID)
	if err != nil {
		u.log.Warnf("Failed to mark notification as read: %+v", err)
		return nil, err
	}
	return &dto.MarkReadResponse{Updated: updated}, nil
}

func (u *notificationUsecase) MarkAllRead(ctx context.Context, user *entity.User) (*dto.MarkReadResponse, error) {
	updated, err := u.notificationRepo.MarkAllAsRead(u.db.WithContext(ctx), user.ID)
	if err != nil {
		u.log.Warnf("Failed to mark notifications as read: %+v", err)
		return nil, err
	}
	return &dto.MarkReadResponse{Updated: updated}, nil
}

func (u *notificationUsecase) Approve(ctx context.Context, doctor *entity.User, id uuid.UUID, req *dto.ApproveNotificationRequest) (*dto.ConsultationResponse, error) {
	notification, err := u.actionable(ctx, doctor, id)
	if err != nil {
		return nil, err
	}

	return u.consultations.Schedule(ctx, doctor, *notification.ConsultationRequestID, &dto.ScheduleConsultationRequest{
		ScheduledAt: req.ScheduledAt,
	})
}

func (u *notificationUsecase) Deny(ctx context.Context, doctor *entity.User, id uuid.UUID, req *dto.DenyNotificationRequest) (*dto.ConsultationResponse, error) {
	notification, err := u.actionable(ctx, doctor, id)
	if err != nil {
		return nil, err
	}

	return u.consultations.Cancel(ctx, doctor, *notification.ConsultationRequestID, &dto.CancelConsultationRequest{
		Reason: req.Reason,
	})
}

func (u *notificationUsecase) actionable(ctx context.Context, user *entity.User, id uuid.UUID) (*entity.Notification, error) {
	notification, err := u.notificationRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find notification: %+v", err)
		return nil, err
	}
	if notification == nil || notification.UserID != user.ID {
		return nil, ErrNotificationNotFound
	}
	if !notification.Actionable() {
		return nil, ErrNotificationNotActionable
	}
	return notification, nil
}
