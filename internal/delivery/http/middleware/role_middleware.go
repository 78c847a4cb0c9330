package middleware

import (
	"net/http"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
)

// RequireAdmin is a convenience middleware for admin-only endpoints
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireRole(entity.RoleAdmin)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func (m *AuthMiddleware) RequireDoctor(next http.Handler) http.Handler {
	return m.RequireRole(entity.RoleDoctor)(next)
}

// RequirePatient admits students, teachers and employers.
func (m *AuthMiddleware) RequirePatient(next http.Handler) http.Handler {
	return m.RequireRole(entity.PatientRoles()...)(next)
}

// RequireStaff admits admins, doctors and doctor assistants.
func (m *AuthMiddleware) RequireStaff(next http.Handler) http.Handler {
	return m.RequireRole(entity.StaffRoles()...)(next)
}

// RequireClinician is for endpoints that edit medical records.
func (m *AuthMiddleware) RequireClinician(next http.Handler) http.Handler {
	return m.RequireRole(entity.RoleDoctor, entity.RoleDoctorAssistant)(next)
}

// RequirePatientOrDoctor guards actions both sides of a consultation may take.
func (m *AuthMiddleware) RequirePatientOrDoctor(next http.Handler) http.Handler {
	return m.RequireRole(append(entity.PatientRoles(), entity.RoleDoctor)...)(next)
}
