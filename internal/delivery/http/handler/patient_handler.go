package handler

import (
	"net/http"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/usecase"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/response"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
	}
}

func (h *PatientHandler) SearchPatients(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	result, err := h.patientUsecase.Search(r.Context(), r.URL.Query().Get("search"), page, limit)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Patients retrieved successfully", result.Patients, response.NewMeta(page, limit, result.Total))
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	viewer, ok := currentUser(w, r)
	if !ok {
		return
	}
	patientID, ok := pathUUID(w, r, "id", "patient")
	if !ok {
		return
	}

	patient, err := h.patientUsecase.Get(r.Context(), viewer, patientID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// GetMyMedicalRecord returns the caller's own record.
func (h *PatientHandler) GetMyMedicalRecord(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	patient, err := h.patientUsecase.Get(r.Context(), user, user.ID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved successfully", patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	editor, ok := currentUser(w, r)
	if !ok {
		return
	}
	patientID, ok := pathUUID(w, r, "id", "patient")
	if !ok {
		return
	}

	var req dto.UpdatePatientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), editor, patientID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) UpdateMedicalHistory(w http.ResponseWriter, r *http.Request) {
	editor, ok := currentUser(w, r)
	if !ok {
		return
	}
	patientID, ok := pathUUID(w, r, "id", "patient")
	if !ok {
		return
	}

	var req dto.UpdateMedicalHistoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	patient, err := h.patientUsecase.UpdateMedicalHistory(r.Context(), editor, patientID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Medical history updated successfully", patient)
}

func (h *PatientHandler) UpdateBiometrics(w http.ResponseWriter, r *http.Request) {
	editor, ok := currentUser(w, r)
	if !ok {
		return
	}
	patientID, ok := pathUUID(w, r, "id", "patient")
	if !ok {
		return
	}

	var req dto.UpdateBiometricsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	patient, err := h.patientUsecase.UpdateBiometrics(r.Context(), editor, patientID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Biometric data updated successfully", patient)
}
