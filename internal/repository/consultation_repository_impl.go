package repository

import (
	"errors"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	domainRepo "github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) Create(db *gorm.DB, req *entity.ConsultationRequest) error {
	return db.Omit(clause.Associations).Create(req).Error
}

func (r *consultationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ConsultationRequest, error) {
	var req entity.ConsultationRequest
	err := db.Preload("Patient").Preload("Doctor").Preload("Appointment").
		Where("id = ?", id).
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *consultationRepository) FindAll(db *gorm.DB, filter entity.ConsultationFilter) ([]entity.ConsultationRequest, error) {
	query := db.Preload("Patient").Preload("Doctor").Preload("Appointment")

	if filter.PatientID != nil {
		query = query.Where("patient_id = ?", *filter.PatientID)
	}
	if filter.DoctorID != nil {
		query = query.Where("(doctor_id = ? OR (doctor_id IS NULL AND status = ?))", *filter.DoctorID, entity.ConsultationStatusPending)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Search != "" {
		query = query.Where("message ILIKE ?", "%"+filter.Search+"%")
	}

	var requests []entity.ConsultationRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// TransitionStatus is a compare-and-swap on the observed status and doctor
// assignment. Confirming additionally requires a linked appointment.
func (r *consultationRepository) TransitionStatus(db *gorm.DB, id uuid.UUID, from entity.ConsultationState, status entity.ConsultationStatus, fields map[string]interface{}) (int64, error) {
	if !from.Status.CanTransitionTo(status) {
		return 0, nil
	}

	updates := map[string]interface{}{"status": status}
	for column, value := range fields {
		updates[column] = value
	}

	query := db.Model(&entity.ConsultationRequest{}).Where("id = ? AND status = ?", id, from.Status)
	if from.DoctorID == nil {
		query = query.Where("doctor_id IS NULL")
	} else {
		query = query.Where("doctor_id = ?", *from.DoctorID)
	}
	if status == entity.ConsultationStatusConfirmed {
		query = query.Where("appointment_id IS NOT NULL")
	}

	result := query.Updates(updates)
	return result.RowsAffected, result.Error
}

// Appointment Repository

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) MarkConfirmed(db *gorm.DB, id uuid.UUID) error {
	return db.Model(&entity.Appointment{}).Where("id = ?", id).Update("is_confirmed", true).Error
}
