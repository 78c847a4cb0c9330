package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/converter"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/repository"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/service"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/apperror"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Plausible measurement bounds, height in cm and weight in kg.
var (
	minHeight = decimal.NewFromInt(30)
	maxHeight = decimal.NewFromInt(272)
	minWeight = decimal.NewFromInt(1)
	maxWeight = decimal.NewFromInt(700)
)

type PatientUsecase interface {
	Search(ctx context.Context, search string, page, limit int) (*dto.PatientListResponse, error)
	// Get returns the full record. Staff may read any patient, a patient only their own.
	Get(ctx context.Context, viewer *entity.User, patientID uuid.UUID) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, editor *entity.User, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	UpdateMedicalHistory(ctx context.Context, editor *entity.User, patientID uuid.UUID, req *dto.UpdateMedicalHistoryRequest) (*dto.PatientResponse, error)
	UpdateBiometrics(ctx context.Context, editor *entity.User, patientID uuid.UUID, req *dto.UpdateBiometricsRequest) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	validator          *validator.CustomValidator
	patientRepo        repository.PatientRepository
	medicalHistoryRepo repository.MedicalHistoryRepository
	biometricRepo      repository.BiometricRepository
	auditService       service.AuditService
	now                func() time.Time
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	patientRepo repository.PatientRepository,
	medicalHistoryRepo repository.MedicalHistoryRepository,
	biometricRepo repository.BiometricRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:                 db,
		log:                log,
		validator:          validator,
		patientRepo:        patientRepo,
		medicalHistoryRepo: medicalHistoryRepo,
		biometricRepo:      biometricRepo,
		auditService:       auditService,
		now:                time.Now,
	}
}

func (u *patientUsecase) Search(ctx context.Context, search string, page, limit int) (*dto.PatientListResponse, error) {
	limit, offset := pagination(page, limit)

	patients, total, err := u.patientRepo.Search(u.db.WithContext(ctx), strings.TrimSpace(search), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    total,
	}, nil
}

func (u *patientUsecase) Get(ctx context.Context, viewer *entity.User, patientID uuid.UUID) (*dto.PatientResponse, error) {
	if !viewer.RoleID.In(entity.StaffRoles()...) && viewer.ID != patientID {
		return nil, ErrPatientAccessDenied
	}

	patient, err := u.findPatient(u.db.WithContext(ctx), patientID)
	if err != nil {
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, editor *entity.User, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if err := u.checkEditor(editor); err != nil {
		return nil, err
	}
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.findPatient(tx, patientID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.BloodGroup != nil {
		fields["blood_group"] = *req.BloodGroup
	}
	if req.SSN != nil {
		ssn := strings.TrimSpace(*req.SSN)
		taken, err := u.patientRepo.SSNTaken(tx, ssn, patientID)
		if err != nil {
			u.log.Warnf("Failed to check ssn uniqueness: %+v", err)
			return nil, err
		}
		if taken {
			return nil, ErrSSNAlreadyExists
		}
		fields["ssn"] = ssn
	}
	if len(fields) == 0 {
		return converter.PatientToResponse(patient), nil
	}

	if err := u.patientRepo.UpdateFields(tx, patientID, fields); err != nil {
		if isDuplicateKeyError(err, "ssn") {
			return nil, ErrSSNAlreadyExists
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	old := entity.JSON{"blood_group": patient.BloodGroup, "ssn": patient.SSN}
	if err := u.auditService.LogUpdate(tx, &editor.ID, entity.AuditActionPatientUpdate, "patient", patientID.String(), old, entity.JSON(fields)); err != nil {
		return nil, err
	}

	return u.commitAndReload(tx, patientID)
}

func (u *patientUsecase) UpdateMedicalHistory(ctx context.Context, editor *entity.User, patientID uuid.UUID, req *dto.UpdateMedicalHistoryRequest) (*dto.PatientResponse, error) {
	if err := u.checkEditor(editor); err != nil {
		return nil, err
	}
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.CongenitalDiseases != nil {
		fields["congenital_diseases"] = trimmed(req.CongenitalDiseases)
	}
	if req.GeneralDiseases != nil {
		fields["general_diseases"] = trimmed(req.GeneralDiseases)
	}
	if req.SurgicalInterventions != nil {
		fields["surgical_interventions"] = trimmed(req.SurgicalInterventions)
	}
	if req.Allergies != nil {
		fields["allergies"] = trimmed(req.Allergies)
	}
	if req.AllergySeverity != nil {
		fields["allergy_severity"] = trimmed(req.AllergySeverity)
	}
	if req.LastSurgeryDate != nil {
		date, err := parseDate("last_surgery_date", req.LastSurgeryDate)
		if err != nil {
			return nil, err
		}
		if date != nil && date.After(u.now()) {
			return nil, apperror.FieldError("last_surgery_date", "last_surgery_date cannot be in the future")
		}
		fields["last_surgery_date"] = date
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.findPatient(tx, patientID)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return converter.PatientToResponse(patient), nil
	}

	// Records created before histories were seeded get their row on first edit.
	if patient.MedicalHistory == nil {
		if err := u.medicalHistoryRepo.Create(tx, &entity.MedicalHistory{PatientID: patientID}); err != nil {
			u.log.Warnf("Failed to create medical history: %+v", err)
			return nil, err
		}
	}

	if err := u.medicalHistoryRepo.UpdateFields(tx, patientID, fields); err != nil {
		u.log.Warnf("Failed to update medical history: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &editor.ID, entity.AuditActionMedicalHistoryUpdate, "medical_history", patientID.String(),
		converter.MedicalHistoryToResponse(patient.MedicalHistory), entity.JSON(fields)); err != nil {
		return nil, err
	}

	return u.commitAndReload(tx, patientID)
}

func (u *patientUsecase) UpdateBiometrics(ctx context.Context, editor *entity.User, patientID uuid.UUID, req *dto.UpdateBiometricsRequest) (*dto.PatientResponse, error) {
	if err := u.checkEditor(editor); err != nil {
		return nil, err
	}
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	fieldErrors := make(map[string]string)
	if req.Height.LessThan(minHeight) || req.Height.GreaterThan(maxHeight) {
		fieldErrors["height"] = "height must be between 30 and 272 cm"
	}
	if req.Weight.LessThan(minWeight) || req.Weight.GreaterThan(maxWeight) {
		fieldErrors["weight"] = "weight must be between 1 and 700 kg"
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.Validation(fieldErrors)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.findPatient(tx, patientID)
	if err != nil {
		return nil, err
	}

	data := &entity.BiometricData{
		PatientID: patientID,
		Height:    req.Height.Round(2),
		Weight:    req.Weight.Round(2),
		UpdatedAt: u.now(),
	}
	if err := u.biometricRepo.Upsert(tx, data); err != nil {
		u.log.Warnf("Failed to save biometric data: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &editor.ID, entity.AuditActionBiometricsUpdate, "biometric_data", patientID.String(),
		converter.BiometricToResponse(patient.BiometricData), converter.BiometricToResponse(data)); err != nil {
		return nil, err
	}

	return u.commitAndReload(tx, patientID)
}

func (u *patientUsecase) checkEditor(editor *entity.User) error {
	if !editor.RoleID.In(entity.RoleDoctor, entity.RoleDoctorAssistant) {
		return ErrActionNotAllowed
	}
	return nil
}

func (u *patientUsecase) findPatient(db *gorm.DB, patientID uuid.UUID) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByUserID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil || patient.User == nil || !patient.User.Active() {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (u *patientUsecase) commitAndReload(tx *gorm.DB, patientID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.findPatient(tx, patientID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}
