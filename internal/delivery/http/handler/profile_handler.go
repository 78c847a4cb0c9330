package handler

import (
	"net/http"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/usecase"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/apperror"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/response"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
	}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := h.profileUsecase.View(r.Context(), user)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.profileUsecase.Update(r.Context(), user, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}

// UpdatePassword answers every rejected change with 400.
func (h *ProfileHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.profileUsecase.ChangePassword(r.Context(), user, &req); err != nil {
		if !apperror.IsKnown(err) {
			response.InternalServerError(w, "Failed to update password")
			return
		}
		var fields interface{}
		if f := apperror.FieldsOf(err); len(f) > 0 {
			fields = f
		}
		response.Error(w, http.StatusBadRequest, err.Error(), fields)
		return
	}

	response.Success(w, http.StatusOK, "Password updated successfully", nil)
}
