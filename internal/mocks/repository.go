// Package mocks holds testify mocks for the domain repositories and services.
package mocks

import (
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) EmailTaken(db *gorm.DB, email string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(db, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(db, id, fields)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(db *gorm.DB, id uuid.UUID, hash string) error {
	args := m.Called(db, id, hash)
	return args.Error(0)
}

func (m *MockUserRepository) FindAll(db *gorm.DB, filter repository.UserFilter) ([]entity.User, int64, error) {
	args := m.Called(db, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) FindActiveByRole(db *gorm.DB, role entity.Role) ([]entity.User, error) {
	args := m.Called(db, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) CountByRole(db *gorm.DB) (map[entity.Role]int64, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entity.Role]int64), args.Error(1)
}

// MockRoleRepository is a mock implementation of RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindAll(db *gorm.DB) ([]entity.RoleDefinition, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.RoleDefinition), args.Error(1)
}

func (m *MockRoleRepository) FindByName(db *gorm.DB, name string) (*entity.RoleDefinition, error) {
	args := m.Called(db, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RoleDefinition), args.Error(1)
}

// MockPatientRepository is a mock implementation of PatientRepository.
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(db, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) Search(db *gorm.DB, search string, limit, offset int) ([]entity.Patient, int64, error) {
	args := m.Called(db, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Patient), args.Get(1).(int64), args.Error(2)
}

func (m *MockPatientRepository) UpdateFields(db *gorm.DB, userID uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(db, userID, fields)
	return args.Error(0)
}

func (m *MockPatientRepository) SSNTaken(db *gorm.DB, ssn string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(db, ssn, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockMedicalHistoryRepository is a mock implementation of MedicalHistoryRepository.
type MockMedicalHistoryRepository struct {
	mock.Mock
}

func (m *MockMedicalHistoryRepository) Create(db *gorm.DB, history *entity.MedicalHistory) error {
	args := m.Called(db, history)
	return args.Error(0)
}

func (m *MockMedicalHistoryRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) (*entity.MedicalHistory, error) {
	args := m.Called(db, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MedicalHistory), args.Error(1)
}

func (m *MockMedicalHistoryRepository) UpdateFields(db *gorm.DB, patientID uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(db, patientID, fields)
	return args.Error(0)
}

// MockBiometricRepository is a mock implementation of BiometricRepository.
type MockBiometricRepository struct {
	mock.Mock
}

func (m *MockBiometricRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) (*entity.BiometricData, error) {
	args := m.Called(db, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BiometricData), args.Error(1)
}

func (m *MockBiometricRepository) Upsert(db *gorm.DB, data *entity.BiometricData) error {
	args := m.Called(db, data)
	return args.Error(0)
}

// MockConsultationRepository is a mock implementation of ConsultationRepository.
type MockConsultationRepository struct {
	mock.Mock
}

func (m *MockConsultationRepository) Create(db *gorm.DB, req *entity.ConsultationRequest) error {
	args := m.Called(db, req)
	return args.Error(0)
}

func (m *MockConsultationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ConsultationRequest, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ConsultationRequest), args.Error(1)
}

func (m *MockConsultationRepository) FindAll(db *gorm.DB, filter entity.ConsultationFilter) ([]entity.ConsultationRequest, error) {
	args := m.Called(db, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ConsultationRequest), args.Error(1)
}

func (m *MockConsultationRepository) TransitionStatus(db *gorm.DB, id uuid.UUID, from entity.ConsultationState, status entity.ConsultationStatus, fields map[string]interface{}) (int64, error) {
	args := m.Called(db, id, from, status, fields)
	return args.Get(0).(int64), args.Error(1)
}

// MockAppointmentRepository is a mock implementation of AppointmentRepository.
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(db, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) MarkConfirmed(db *gorm.DB, id uuid.UUID) error {
	args := m.Called(db, id)
	return args.Error(0)
}

// MockNotificationRepository is a mock implementation of NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateBatch(db *gorm.DB, notifications []entity.Notification) error {
	args := m.Called(db, notifications)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Notification, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindByUserID(db *gorm.DB, userID uuid.UUID, limit, offset int) ([]entity.Notification, int64, error) {
	args := m.Called(db, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) CountUnread(db *gorm.DB, userID uuid.UUID) (int64, error) {
	args := m.Called(db, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkAsRead(db *gorm.DB, id, userID uuid.UUID) (int64, error) {
	args := m.Called(db, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllAsRead(db *gorm.DB, userID uuid.UUID) (int64, error) {
	args := m.Called(db, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuditLogRepository is a mock implementation of AuditLogRepository.
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	args := m.Called(db, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindAll(db *gorm.DB, filter entity.AuditLogFilter) ([]entity.AuditLog, int64, error) {
	args := m.Called(db, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.AuditLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuditLog), args.Error(1)
}
