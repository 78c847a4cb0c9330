package http

import (
	"net/http"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/http/handler"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/http/middleware"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/metrics"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	profileHandler      *handler.ProfileHandler
	adminHandler        *handler.AdminHandler
	auditLogHandler     *handler.AuditLogHandler
	consultationHandler *handler.ConsultationHandler
	notificationHandler *handler.NotificationHandler
	patientHandler      *handler.PatientHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
	metrics             *metrics.Collector
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	adminHandler *handler.AdminHandler,
	auditLogHandler *handler.AuditLogHandler,
	consultationHandler *handler.ConsultationHandler,
	notificationHandler *handler.NotificationHandler,
	patientHandler *handler.PatientHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	collector *metrics.Collector,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		profileHandler:      profileHandler,
		adminHandler:        adminHandler,
		auditLogHandler:     auditLogHandler,
		consultationHandler: consultationHandler,
		notificationHandler: notificationHandler,
		patientHandler:      patientHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
		metrics:             collector,
	}
}

// Setup registers every route and returns the handler to serve. CORS wraps the
// router so preflight requests are answered before route matching.
func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	auth := r.authMiddleware

	// Public
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	api.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)
	api.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Any authenticated user
	api.Handle("/logout", auth.Authenticate(http.HandlerFunc(r.authHandler.Logout))).Methods(http.MethodPost)

	profile := api.PathPrefix("/profile").Subrouter()
	profile.Use(auth.Authenticate)
	profile.HandleFunc("", r.profileHandler.GetProfile).Methods(http.MethodGet)
	profile.HandleFunc("/update", r.profileHandler.UpdateProfile).Methods(http.MethodPut)
	profile.HandleFunc("/update-password", r.profileHandler.UpdatePassword).Methods(http.MethodPut)

	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.Use(auth.Authenticate)
	notifications.HandleFunc("", r.notificationHandler.GetNotifications).Methods(http.MethodGet)
	notifications.HandleFunc("/unread-count", r.notificationHandler.GetUnreadCount).Methods(http.MethodGet)
	notifications.HandleFunc("/read-all", r.notificationHandler.MarkAllRead).Methods(http.MethodPut)
	notifications.HandleFunc("/{id}/read", r.notificationHandler.MarkRead).Methods(http.MethodPut)
	api.Handle("/notifications/{id}/approve", auth.RequireDoctor(http.HandlerFunc(r.notificationHandler.Approve))).Methods(http.MethodPost)
	api.Handle("/notifications/{id}/deny", auth.RequireDoctor(http.HandlerFunc(r.notificationHandler.Deny))).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/user-counts", r.adminHandler.GetUserCounts).Methods(http.MethodGet)
	admin.HandleFunc("/users", r.adminHandler.GetUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users", r.adminHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{role}", r.adminHandler.GetUsers).Methods(http.MethodGet)
	admin.HandleFunc("/roles", r.adminHandler.GetRoles).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)
	api.Handle("/import-users", auth.RequireAdmin(http.HandlerFunc(r.adminHandler.ImportUsers))).Methods(http.MethodPost)

	// Consultation workflow
	api.Handle("/consultation-request", auth.RequirePatient(http.HandlerFunc(r.consultationHandler.CreateRequest))).Methods(http.MethodPost)
	api.Handle("/consultations/user", auth.RequirePatient(http.HandlerFunc(r.consultationHandler.GetMyConsultations))).Methods(http.MethodGet)
	api.Handle("/consultations", auth.RequireDoctor(http.HandlerFunc(r.consultationHandler.GetConsultations))).Methods(http.MethodGet)
	api.Handle("/consultations/{id}/schedule", auth.RequireDoctor(http.HandlerFunc(r.consultationHandler.Schedule))).Methods(http.MethodPut)
	api.Handle("/consultations/{id}/cancel", auth.RequirePatientOrDoctor(http.HandlerFunc(r.consultationHandler.Cancel))).Methods(http.MethodPut)
	api.Handle("/appointments/{id}/confirm", auth.RequirePatient(http.HandlerFunc(r.consultationHandler.ConfirmAppointment))).Methods(http.MethodPut)

	// Patient records. GET /patients/{id} is also open to the patient themself,
	// the use case enforces that.
	api.Handle("/patients", auth.RequireStaff(http.HandlerFunc(r.patientHandler.SearchPatients))).Methods(http.MethodGet)
	api.Handle("/patients/{id}", auth.Authenticate(http.HandlerFunc(r.patientHandler.GetPatient))).Methods(http.MethodGet)
	api.Handle("/patients/{id}", auth.RequireClinician(http.HandlerFunc(r.patientHandler.UpdatePatient))).Methods(http.MethodPut)
	api.Handle("/patients/{id}/medical-history", auth.RequireClinician(http.HandlerFunc(r.patientHandler.UpdateMedicalHistory))).Methods(http.MethodPut)
	api.Handle("/patients/{id}/biometrics", auth.RequireClinician(http.HandlerFunc(r.patientHandler.UpdateBiometrics))).Methods(http.MethodPut)
	api.Handle("/patient/medical-record", auth.RequirePatient(http.HandlerFunc(r.patientHandler.GetMyMedicalRecord))).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "ok", map[string]string{"status": "ok"})
}
