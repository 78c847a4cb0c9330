package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/mocks"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/service"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/testutil"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func echoUser(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUserFromContext(r.Context())
		if !assert.True(t, ok) {
			return
		}
		token, _ := GetTokenFromContext(r.Context())
		w.Write([]byte(user.Name + ":" + token))
	})
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Name: "amina", RoleID: entity.RoleStudent}

	tests := []struct {
		name       string
		header     string
		guardErr   error
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer good", nil, http.StatusOK, "amina:good"},
		{"missing header", "", nil, http.StatusUnauthorized, "Authorization header is required"},
		{"wrong scheme", "Basic abc", nil, http.StatusUnauthorized, "Invalid authorization header format"},
		{"revoked", "Bearer good", service.ErrTokenInvalid, http.StatusUnauthorized, "invalid or revoked token"},
		{"deactivated", "Bearer good", service.ErrAccountUnavailable, http.StatusUnauthorized, "account is not available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := new(mocks.MockAccessGuard)
			if tt.guardErr != nil {
				guard.On("Authorize", mock.Anything, "good", []entity.Role(nil)).Return(nil, tt.guardErr)
			} else {
				guard.On("Authorize", mock.Anything, "good", []entity.Role(nil)).Return(user, nil).Maybe()
			}
			m := NewAuthMiddleware(guard)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			m.Authenticate(echoUser(t)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthMiddleware_RequireRolePassesRolesToGuard(t *testing.T) {
	guard := new(mocks.MockAccessGuard)
	guard.On("Authorize", mock.Anything, "tok", []entity.Role{entity.RoleAdmin}).Return(nil, service.ErrRoleNotAllowed)
	m := NewAuthMiddleware(guard)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	m.RequireAdmin(echoUser(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	guard.AssertExpectations(t)
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })

	t.Run("listed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://clinic.esi-sba.dz")
		rec := httptest.NewRecorder()
		NewCORSMiddleware([]string{"https://clinic.esi-sba.dz"}).Handle(next).ServeHTTP(rec, req)

		assert.Equal(t, "https://clinic.esi-sba.dz", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("unlisted origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		NewCORSMiddleware([]string{"https://clinic.esi-sba.dz"}).Handle(next).ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		rec := httptest.NewRecorder()
		NewCORSMiddleware([]string{"*"}).Handle(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLoggingMiddleware_RecordsRouteTemplate(t *testing.T) {
	collector := metrics.NewCollector("test")
	router := mux.NewRouter()
	router.Use(NewLoggingMiddleware(testutil.NewLogger(), collector).Handle)
	router.HandleFunc("/patients/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/patients/"+uuid.NewString(), nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	expected := `
# HELP test_http_requests_total Total number of HTTP requests
# TYPE test_http_requests_total counter
test_http_requests_total{method="GET",route="/patients/{id}",status_code="404"} 2
`
	assert.NoError(t, promtestutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected), "test_http_requests_total"))
}
