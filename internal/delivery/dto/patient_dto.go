package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type UpdatePatientRequest struct {
	BloodGroup *string `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	SSN        *string `json:"ssn" validate:"omitempty,min=5,max=20"`
}

type UpdateMedicalHistoryRequest struct {
	CongenitalDiseases    *string `json:"congenital_diseases" validate:"omitempty,max=2000"`
	GeneralDiseases       *string `json:"general_diseases" validate:"omitempty,max=2000"`
	SurgicalInterventions *string `json:"surgical_interventions" validate:"omitempty,max=2000"`
	Allergies             *string `json:"allergies" validate:"omitempty,max=2000"`
	AllergySeverity       *string `json:"allergy_severity" validate:"omitempty,oneof=mild moderate severe"`
	LastSurgeryDate       *string `json:"last_surgery_date" validate:"omitempty,date"`
}

type UpdateBiometricsRequest struct {
	// Height in centimetres, weight in kilograms.
	Height *decimal.Decimal `json:"height" validate:"required"`
	Weight *decimal.Decimal `json:"weight" validate:"required"`
}

// Response DTOs

type BiometricResponse struct {
	Height    decimal.Decimal `json:"height"`
	Weight    decimal.Decimal `json:"weight"`
	BMI       decimal.Decimal `json:"bmi"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type MedicalHistoryResponse struct {
	CongenitalDiseases    *string   `json:"congenital_diseases"`
	GeneralDiseases       *string   `json:"general_diseases"`
	SurgicalInterventions *string   `json:"surgical_interventions"`
	Allergies             *string   `json:"allergies"`
	AllergySeverity       *string   `json:"allergy_severity"`
	LastSurgeryDate       *string   `json:"last_surgery_date"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type PatientResponse struct {
	ID             uuid.UUID               `json:"id"`
	User           *UserResponse           `json:"user"`
	BloodGroup     *string                 `json:"blood_group"`
	SSN            *string                 `json:"ssn"`
	BiometricData  *BiometricResponse      `json:"biometric_data"`
	MedicalHistory *MedicalHistoryResponse `json:"medical_history"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int64             `json:"total"`
}
