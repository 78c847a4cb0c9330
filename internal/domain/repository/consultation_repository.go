package repository

import (
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationRepository interface {
	Create(db *gorm.DB, req *entity.ConsultationRequest) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ConsultationRequest, error)
	FindAll(db *gorm.DB, filter entity.ConsultationFilter) ([]entity.ConsultationRequest, error)
	// TransitionStatus moves a request to status only if it still holds the observed
	// state and that state may precede status. Returns affected rows: 0 means the
	// precondition did not hold.
	TransitionStatus(db *gorm.DB, id uuid.UUID, from entity.ConsultationState, status entity.ConsultationStatus, fields map[string]interface{}) (int64, error)
}

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	MarkConfirmed(db *gorm.DB, id uuid.UUID) error
}
