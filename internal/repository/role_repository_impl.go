package repository

import (
	"errors"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	domainRepo "github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/repository"

	"gorm.io/gorm"
)

type roleRepository struct{}

func NewRoleRepository() domainRepo.RoleRepository {
	return &roleRepository{}
}

func (r *roleRepository) FindAll(db *gorm.DB) ([]entity.RoleDefinition, error) {
	var roles []entity.RoleDefinition
	err := db.Order("id ASC").Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) FindByName(db *gorm.DB, name string) (*entity.RoleDefinition, error) {
	var role entity.RoleDefinition
	err := db.Where("role_name = ?", name).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}
