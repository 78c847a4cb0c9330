package repository

import (
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	CreateBatch(db *gorm.DB, notifications []entity.Notification) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Notification, error)
	// FindByUserID returns newest first. A zero limit returns every row.
	FindByUserID(db *gorm.DB, userID uuid.UUID, limit, offset int) ([]entity.Notification, int64, error)
	CountUnread(db *gorm.DB, userID uuid.UUID) (int64, error)
	MarkAsRead(db *gorm.DB, id, userID uuid.UUID) (int64, error)
	MarkAllAsRead(db *gorm.DB, userID uuid.UUID) (int64, error)
}
