package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Patient extends a user whose role is patient-like. It is only created alongside its user.
type Patient struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	BloodGroup *string   `gorm:"type:varchar(3)" json:"blood_group"`
	SSN        *string   `gorm:"column:ssn;type:varchar(20);uniqueIndex" json:"ssn"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User           *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BiometricData  *BiometricData  `gorm:"foreignKey:PatientID" json:"biometric_data,omitempty"`
	MedicalHistory *MedicalHistory `gorm:"foreignKey:PatientID" json:"medical_history,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// BloodGroups lists the accepted blood_group values.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// BiometricData holds the latest measurements. Height is in centimetres, weight in kilograms.
type BiometricData struct {
	PatientID uuid.UUID       `gorm:"type:uuid;primaryKey" json:"patient_id"`
	Height    decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"height"`
	Weight    decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"weight"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BiometricData) TableName() string {
	return "biometric_data"
}

// BMI returns weight / height(m)^2 rounded to two decimals, or zero without a height.
func (b *BiometricData) BMI() decimal.Decimal {
	if b.Height.IsZero() {
		return decimal.Zero
	}
	meters := b.Height.Div(decimal.NewFromInt(100))
	return b.Weight.Div(meters.Mul(meters)).Round(2)
}

type AllergySeverity string

const (
	AllergySeverityMild     AllergySeverity = "mild"
	AllergySeverityModerate AllergySeverity = "moderate"
	AllergySeveritySevere   AllergySeverity = "severe"
)

// MedicalHistory is created with every field null at registration.
type MedicalHistory struct {
	PatientID             uuid.UUID        `gorm:"type:uuid;primaryKey" json:"patient_id"`
	CongenitalDiseases    *string          `gorm:"type:text" json:"congenital_diseases"`
	GeneralDiseases       *string          `gorm:"type:text" json:"general_diseases"`
	SurgicalInterventions *string          `gorm:"type:text" json:"surgical_interventions"`
	Allergies             *string          `gorm:"type:text" json:"allergies"`
	AllergySeverity       *AllergySeverity `gorm:"type:varchar(10)" json:"allergy_severity"`
	LastSurgeryDate       *time.Time       `gorm:"type:date" json:"last_surgery_date"`
	UpdatedAt             time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MedicalHistory) TableName() string {
	return "medical_histories"
}

// IsEmpty reports whether no field has been filled in yet.
func (m *MedicalHistory) IsEmpty() bool {
	return m.CongenitalDiseases == nil && m.GeneralDiseases == nil && m.SurgicalInterventions == nil &&
		m.Allergies == nil && m.AllergySeverity == nil && m.LastSurgeryDate == nil
}
