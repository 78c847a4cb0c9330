package repository

import (
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindAll(db *gorm.DB) ([]entity.RoleDefinition, error)
	FindByName(db *gorm.DB, name string) (*entity.RoleDefinition, error)
}
