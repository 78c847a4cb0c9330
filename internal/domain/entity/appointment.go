package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is the slot a doctor attaches to a consultation request.
type Appointment struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ConsultationRequestID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"consultation_request_id"`
	DoctorID              uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID             uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	ScheduledAt           time.Time `gorm:"type:timestamptz;not null" json:"scheduled_at"`
	IsConfirmed           bool      `gorm:"not null;default:false" json:"is_confirmed"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}
