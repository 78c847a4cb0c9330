package repository

import (
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error)
	Search(db *gorm.DB, search string, limit, offset int) ([]entity.Patient, int64, error)
	UpdateFields(db *gorm.DB, userID uuid.UUID, fields map[string]interface{}) error
	SSNTaken(db *gorm.DB, ssn string, excludeID uuid.UUID) (bool, error)
}

type MedicalHistoryRepository interface {
	Create(db *gorm.DB, history *entity.MedicalHistory) error
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) (*entity.MedicalHistory, error)
	UpdateFields(db *gorm.DB, patientID uuid.UUID, fields map[string]interface{}) error
}

type BiometricRepository interface {
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) (*entity.BiometricData, error)
	Upsert(db *gorm.DB, data *entity.BiometricData) error
}
