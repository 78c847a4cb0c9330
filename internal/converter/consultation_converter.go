package converter

import (
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
)

// ConsultationToResponse converts a ConsultationRequest entity to ConsultationResponse DTO
func ConsultationToResponse(req *entity.ConsultationRequest) *dto.ConsultationResponse {
	if req == nil {
		return nil
	}

	response := &dto.ConsultationResponse{
		ID:           req.ID,
		Message:      req.Message,
		Status:       string(req.Status),
		Patient:      UserToSummary(req.Patient),
		Doctor:       UserToSummary(req.Doctor),
		CancelReason: req.CancelReason,
		CreatedAt:    req.CreatedAt,
		UpdatedAt:    req.UpdatedAt,
	}

	// Include appointment info if available
	if req.Appointment != nil {
		response.Appointment = &dto.AppointmentResponse{
			ID:          req.Appointment.ID,
			ScheduledAt: req.Appointment.ScheduledAt,
			IsConfirmed: req.Appointment.IsConfirmed,
		}
	}

	return response
}

// ConsultationsToResponses converts a slice of ConsultationRequest entities to slice of ConsultationResponse DTOs
func ConsultationsToResponses(requests []entity.ConsultationRequest) []dto.ConsultationResponse {
	responses := make([]dto.ConsultationResponse, len(requests))
	for i := range requests {
		responses[i] = *ConsultationToResponse(&requests[i])
	}
	return responses
}
