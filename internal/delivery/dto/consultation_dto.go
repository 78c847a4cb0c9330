package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateConsultationRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type ScheduleConsultationRequest struct {
	// ScheduledAt accepts RFC 3339 or "YYYY-MM-DDTHH:MM" (UTC).
	ScheduledAt string `json:"scheduled_at" validate:"required"`
}

type CancelConsultationRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}

type ConsultationQuery struct {
	Search string
	Status string
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	IsConfirmed bool      `json:"is_confirmed"`
}

type ConsultationResponse struct {
	ID           uuid.UUID            `json:"id"`
	Message      string               `json:"message"`
	Status       string               `json:"status"`
	Patient      *UserSummary         `json:"patient,omitempty"`
	Doctor       *UserSummary         `json:"doctor,omitempty"`
	Appointment  *AppointmentResponse `json:"appointment,omitempty"`
	CancelReason *string              `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

type ConsultationListResponse struct {
	Consultations []ConsultationResponse `json:"consultations"`
	Total         int                    `json:"total"`
}
