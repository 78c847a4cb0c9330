package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/usecase"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfileHandler_GetProfile(t *testing.T) {
	profiles := new(mockProfileUsecase)
	h := NewProfileHandler(profiles)
	user := newUser(entity.RoleTeacher)
	profiles.On("View", mock.Anything, user).Return(&dto.UserResponse{ID: user.ID, Name: user.Name, Role: "teacher"}, nil)

	rec := serve(h.GetProfile, newRequest(http.MethodGet, "/api/v1/profile", nil, user, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "teacher", data["role"])
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	profiles := new(mockProfileUsecase)
	h := NewProfileHandler(profiles)
	user := newUser(entity.RoleStudent)
	profiles.On("Update", mock.Anything, user, mock.MatchedBy(func(req *dto.UpdateProfileRequest) bool {
		return req.PhoneNum != nil && *req.PhoneNum == "0555000000" && req.Name == nil
	})).Return(&dto.UserResponse{ID: user.ID}, nil)

	rec := serve(h.UpdateProfile, newRequest(http.MethodPut, "/api/v1/profile/update", jsonBody(t, map[string]string{"phone_num": "0555000000"}), user, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	profiles.AssertExpectations(t)
}

func TestProfileHandler_UpdatePassword(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantField   string
	}{
		{"success", nil, http.StatusOK, "Password updated successfully", ""},
		{"wrong current password", usecase.ErrCurrentPasswordMismatch, http.StatusBadRequest, "current password is incorrect", ""},
		{"confirmation mismatch", apperror.FieldError("new_password_confirmation", "new password confirmation does not match"), http.StatusBadRequest, "new password confirmation does not match", "new_password_confirmation"},
		{"storage failure", errors.New("connection reset"), http.StatusInternalServerError, "Failed to update password", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := new(mockProfileUsecase)
			h := NewProfileHandler(profiles)
			user := newUser(entity.RoleStudent)
			profiles.On("ChangePassword", mock.Anything, user, mock.MatchedBy(func(req *dto.ChangePasswordRequest) bool {
				return req.CurrentPassword == "old-password" && req.NewPassword == "new-password"
			})).Return(tt.err)

			body := jsonBody(t, map[string]string{
				"current_password":          "old-password",
				"new_password":              "new-password",
				"new_password_confirmation": "new-password",
			})
			rec := serve(h.UpdatePassword, newRequest(http.MethodPut, "/api/v1/profile/update-password", body, user, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeBody(t, rec)
			assert.Equal(t, tt.wantMessage, resp["message"])
			if tt.wantField != "" {
				assert.Contains(t, resp["error"], tt.wantField)
			}
		})
	}
}
