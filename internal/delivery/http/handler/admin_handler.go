package handler

import (
	"net/http"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/usecase"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/apperror"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/response"

	"github.com/gorilla/mux"
)

// Upper bound for the in-memory part of an import upload.
const maxImportMemory = 10 << 20

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	authUsecase  usecase.AuthUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase, authUsecase usecase.AuthUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		authUsecase:  authUsecase,
	}
}

// GetUserCounts returns how many students, teachers and employees are registered.
func (h *AdminHandler) GetUserCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.adminUsecase.UserCounts(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User counts retrieved successfully", counts)
}

// GetUsers serves both /admin/users and /admin/users/{role}.
func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	users, err := h.adminUsecase.ListUsers(r.Context(), mux.Vars(r)["role"], r.URL.Query().Get("search"), page, limit)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Users retrieved successfully", users.Users, response.NewMeta(page, limit, users.Total))
}

func (h *AdminHandler) GetRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.adminUsecase.ListRoles(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Roles retrieved successfully", roles)
}

func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	admin, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authUsecase.CreateUser(r.Context(), admin, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", user)
}

// ImportUsers reads an xlsx workbook from the multipart field "file".
func (h *AdminHandler) ImportUsers(w http.ResponseWriter, r *http.Request) {
	admin, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxImportMemory); err != nil {
		response.AppError(w, apperror.FieldError("file", "file must be sent as multipart/form-data"))
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		response.AppError(w, apperror.FieldError("file", "file is required"))
		return
	}
	defer file.Close()

	result, err := h.adminUsecase.ImportUsers(r.Context(), admin, file)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Users imported", result)
}
