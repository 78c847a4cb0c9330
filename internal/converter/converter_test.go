package converter

import (
	"testing"
	"time"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 9, 5, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "now", TimeAgo(now, now))
	assert.Equal(t, "3 minutes ago", TimeAgo(now.Add(-3*time.Minute), now))
	assert.Equal(t, "2 hours ago", TimeAgo(now.Add(-2*time.Hour), now))
}

func TestUserToResponse(t *testing.T) {
	birthdate := time.Date(2001, 2, 3, 0, 0, 0, 0, time.UTC)
	user := &entity.User{
		ID:        uuid.New(),
		Name:      "A",
		Email:     "a@esi-sba.dz",
		Password:  "hash",
		RoleID:    entity.RoleStudent,
		Birthdate: &birthdate,
	}

	resp := UserToResponse(user)
	require.NotNil(t, resp)
	assert.Equal(t, "student", resp.Role)
	assert.Equal(t, "2001-02-03", *resp.Birthdate)
	assert.True(t, resp.IsActive)
	assert.Nil(t, UserToResponse(nil))
}

func TestPatientToResponse(t *testing.T) {
	severity := entity.AllergySeverityModerate
	patient := &entity.Patient{
		UserID: uuid.New(),
		User:   &entity.User{Name: "A", RoleID: entity.RoleTeacher},
		BiometricData: &entity.BiometricData{
			Height: decimal.NewFromInt(200),
			Weight: decimal.NewFromInt(100),
		},
		MedicalHistory: &entity.MedicalHistory{AllergySeverity: &severity},
	}

	resp := PatientToResponse(patient)
	require.NotNil(t, resp)
	assert.Nil(t, resp.BloodGroup)
	assert.True(t, decimal.NewFromInt(25).Equal(resp.BiometricData.BMI))
	assert.Equal(t, "moderate", *resp.MedicalHistory.AllergySeverity)
	assert.Nil(t, resp.MedicalHistory.LastSurgeryDate)
}

func TestConsultationToResponse(t *testing.T) {
	req := &entity.ConsultationRequest{
		ID:      uuid.New(),
		Message: "knee pain",
		Status:  entity.ConsultationStatusScheduled,
		Appointment: &entity.Appointment{
			ID:          uuid.New(),
			ScheduledAt: time.Date(2025, 9, 5, 9, 0, 0, 0, time.UTC),
		},
	}

	resp := ConsultationToResponse(req)
	require.NotNil(t, resp)
	assert.Equal(t, "scheduled", resp.Status)
	assert.Nil(t, resp.Doctor)
	assert.Equal(t, req.Appointment.ScheduledAt, resp.Appointment.ScheduledAt)
}
