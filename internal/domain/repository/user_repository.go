package repository

import (
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFilter is a domain-level filter for the admin user listing.
type UserFilter struct {
	Role   *entity.Role
	Search string
	Limit  int
	Offset int
}

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	EmailTaken(db *gorm.DB, email string, excludeID uuid.UUID) (bool, error)
	UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
	UpdatePassword(db *gorm.DB, id uuid.UUID, hash string) error
	FindAll(db *gorm.DB, filter UserFilter) ([]entity.User, int64, error)
	FindActiveByRole(db *gorm.DB, role entity.Role) ([]entity.User, error)
	CountByRole(db *gorm.DB) (map[entity.Role]int64, error)
}
