package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConsultationStatus represents the workflow state of a consultation request
type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusScheduled ConsultationStatus = "scheduled"
	ConsultationStatusConfirmed ConsultationStatus = "confirmed"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

// Forward-only transitions. Confirmed and cancelled are terminal.
var consultationTransitions = map[ConsultationStatus][]ConsultationStatus{
	ConsultationStatusPending:   {ConsultationStatusScheduled, ConsultationStatusCancelled},
	ConsultationStatusScheduled: {ConsultationStatusConfirmed, ConsultationStatusCancelled},
}

func ParseConsultationStatus(s string) (ConsultationStatus, bool) {
	switch st := ConsultationStatus(s); st {
	case ConsultationStatusPending, ConsultationStatusScheduled, ConsultationStatusConfirmed, ConsultationStatusCancelled:
		return st, true
	}
	return "", false
}

func (s ConsultationStatus) CanTransitionTo(next ConsultationStatus) bool {
	for _, allowed := range consultationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ConsultationStatus) IsTerminal() bool {
	return len(consultationTransitions[s]) == 0
}

// ConsultationRequest is a patient-initiated request for a doctor visit
type ConsultationRequest struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID      *uuid.UUID         `gorm:"type:uuid;index" json:"doctor_id"`
	Message       string             `gorm:"type:text;not null" json:"message"`
	Status        ConsultationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AppointmentID *uuid.UUID         `gorm:"type:uuid" json:"appointment_id"`
	CancelReason  *string            `gorm:"type:text" json:"cancel_reason,omitempty"`
	CancelledBy   *uuid.UUID         `gorm:"type:uuid" json:"cancelled_by,omitempty"`
	CreatedAt     time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient     *User        `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor      *User        `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (ConsultationRequest) TableName() string {
	return "consultation_requests"
}

func (c *ConsultationRequest) IsPending() bool {
	return c.Status == ConsultationStatusPending
}

func (c *ConsultationRequest) IsScheduled() bool {
	return c.Status == ConsultationStatusScheduled
}

// Confirmable requires a scheduled status and a linked appointment.
func (c *ConsultationRequest) Confirmable() bool {
	return c.IsScheduled() && c.AppointmentID != nil
}

// AssignedTo reports whether doctorID is the assigned doctor.
func (c *ConsultationRequest) AssignedTo(doctorID uuid.UUID) bool {
	return c.DoctorID != nil && *c.DoctorID == doctorID
}

// ConsultationState is the part of a request a transition was decided on.
type ConsultationState struct {
	Status   ConsultationStatus
	DoctorID *uuid.UUID
}

func (c *ConsultationRequest) State() ConsultationState {
	return ConsultationState{Status: c.Status, DoctorID: c.DoctorID}
}

// ConsultationFilter is a domain-level filter for listing requests.
type ConsultationFilter struct {
	PatientID *uuid.UUID
	// DoctorID restricts to requests assigned to the doctor plus unassigned pending ones.
	DoctorID *uuid.UUID
	Status   *ConsultationStatus
	Search   string
}
