package converter

import (
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/validator"
)

// PatientToResponse converts a Patient entity (with its user, biometrics and
// medical history preloaded) to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:             patient.UserID,
		User:           UserToResponse(patient.User),
		BloodGroup:     patient.BloodGroup,
		SSN:            patient.SSN,
		BiometricData:  BiometricToResponse(patient.BiometricData),
		MedicalHistory: MedicalHistoryToResponse(patient.MedicalHistory),
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

func BiometricToResponse(data *entity.BiometricData) *dto.BiometricResponse {
	if data == nil {
		return nil
	}

	return &dto.BiometricResponse{
		Height:    data.Height,
		Weight:    data.Weight,
		BMI:       data.BMI(),
		UpdatedAt: data.UpdatedAt,
	}
}

func MedicalHistoryToResponse(history *entity.MedicalHistory) *dto.MedicalHistoryResponse {
	if history == nil {
		return nil
	}

	response := &dto.MedicalHistoryResponse{
		CongenitalDiseases:    history.CongenitalDiseases,
		GeneralDiseases:       history.GeneralDiseases,
		SurgicalInterventions: history.SurgicalInterventions,
		Allergies:             history.Allergies,
		UpdatedAt:             history.UpdatedAt,
	}
	if history.AllergySeverity != nil {
		severity := string(*history.AllergySeverity)
		response.AllergySeverity = &severity
	}
	if history.LastSurgeryDate != nil {
		date := history.LastSurgeryDate.Format(validator.DateLayout)
		response.LastSurgeryDate = &date
	}

	return response
}
