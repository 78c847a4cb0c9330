package repository

import (
	"errors"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	domainRepo "github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Patient Repository

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Omit(clause.Associations).Create(patient).Error
}

func (r *patientRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Preload("User").
		Preload("BiometricData").
		Preload("MedicalHistory").
		Where("user_id = ?", userID).
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// Search matches name, email or SSN and skips soft-deleted users.
func (r *patientRepository) Search(db *gorm.DB, search string, limit, offset int) ([]entity.Patient, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Joins("JOIN users ON users.id = patients.user_id AND users.deleted_at IS NULL")
		if search != "" {
			like := "%" + search + "%"
			db = db.Where("users.name ILIKE ? OR users.email ILIKE ? OR patients.ssn ILIKE ?", like, like, like)
		}
		return db
	}

	var total int64
	if err := db.Model(&entity.Patient{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Scopes(scope).Preload("User").Order("users.name ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var patients []entity.Patient
	if err := query.Find(&patients).Error; err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *patientRepository) UpdateFields(db *gorm.DB, userID uuid.UUID, fields map[string]interface{}) error {
	return db.Model(&entity.Patient{}).Where("user_id = ?", userID).Updates(fields).Error
}

func (r *patientRepository) SSNTaken(db *gorm.DB, ssn string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Patient{}).
		Where("ssn = ? AND user_id <> ?", ssn, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Medical History Repository

type medicalHistoryRepository struct{}

func NewMedicalHistoryRepository() domainRepo.MedicalHistoryRepository {
	return &medicalHistoryRepository{}
}

func (r *medicalHistoryRepository) Create(db *gorm.DB, history *entity.MedicalHistory) error {
	return db.Create(history).Error
}

func (r *medicalHistoryRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) (*entity.MedicalHistory, error) {
	var history entity.MedicalHistory
	err := db.Where("patient_id = ?", patientID).First(&history).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &history, nil
}

func (r *medicalHistoryRepository) UpdateFields(db *gorm.DB, patientID uuid.UUID, fields map[string]interface{}) error {
	return db.Model(&entity.MedicalHistory{}).Where("patient_id = ?", patientID).Updates(fields).Error
}

// Biometric Repository

type biometricRepository struct{}

func NewBiometricRepository() domainRepo.BiometricRepository {
	return &biometricRepository{}
}

func (r *biometricRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) (*entity.BiometricData, error) {
	var data entity.BiometricData
	err := db.Where("patient_id = ?", patientID).First(&data).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &data, nil
}

// Upsert creates the row on the first measurement and overwrites it afterwards.
func (r *biometricRepository) Upsert(db *gorm.DB, data *entity.BiometricData) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "patient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"height", "weight", "updated_at"}),
	}).Create(data).Error
}
