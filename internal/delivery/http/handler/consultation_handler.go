package handler

import (
	"net/http"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/usecase"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/response"
)

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
	}
}

// CreateRequest handles a patient's consultation request
// @Summary Request a consultation
// @Tags Consultations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateConsultationRequest true "Consultation Request"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /consultation-request [post]
func (h *ConsultationHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	patient, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateConsultationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	consultation, err := h.consultationUsecase.Create(r.Context(), patient, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Consultation request created successfully", consultation)
}

func (h *ConsultationHandler) GetMyConsultations(w http.ResponseWriter, r *http.Request) {
	patient, ok := currentUser(w, r)
	if !ok {
		return
	}

	result, err := h.consultationUsecase.ListForPatient(r.Context(), patient, consultationQuery(r))
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Consultations retrieved successfully", result)
}

func (h *ConsultationHandler) GetConsultations(w http.ResponseWriter, r *http.Request) {
	doctor, ok := currentUser(w, r)
	if !ok {
		return
	}

	result, err := h.consultationUsecase.ListForDoctor(r.Context(), doctor, consultationQuery(r))
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Consultations retrieved successfully", result)
}

// Schedule handles a doctor scheduling a pending request
// @Summary Schedule a consultation
// @Tags Consultations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Consultation request ID"
// @Param request body dto.ScheduleConsultationRequest true "Schedule Request"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /consultations/{id}/schedule [put]
func (h *ConsultationHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	doctor, ok := currentUser(w, r)
	if !ok {
		return
	}
	requestID, ok := pathUUID(w, r, "id", "consultation request")
	if !ok {
		return
	}

	var req dto.ScheduleConsultationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	consultation, err := h.consultationUsecase.Schedule(r.Context(), doctor, requestID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Consultation scheduled successfully", consultation)
}

// Cancel accepts an optional JSON body carrying a reason.
func (h *ConsultationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}
	requestID, ok := pathUUID(w, r, "id", "consultation request")
	if !ok {
		return
	}

	var req dto.CancelConsultationRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	consultation, err := h.consultationUsecase.Cancel(r.Context(), actor, requestID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Consultation cancelled successfully", consultation)
}

// ConfirmAppointment takes the consultation request id in the path.
func (h *ConsultationHandler) ConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	patient, ok := currentUser(w, r)
	if !ok {
		return
	}
	requestID, ok := pathUUID(w, r, "id", "consultation request")
	if !ok {
		return
	}

	consultation, err := h.consultationUsecase.Confirm(r.Context(), patient, requestID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment confirmed successfully", consultation)
}

func consultationQuery(r *http.Request) dto.ConsultationQuery {
	query := r.URL.Query()
	return dto.ConsultationQuery{
		Search: query.Get("search"),
		Status: query.Get("status"),
	}
}
