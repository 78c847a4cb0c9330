package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ManelMostefaoui/E-Doc-sub002/config"
	deliveryHttp "github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/http"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/http/handler"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/http/middleware"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/infrastructure/cache"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/infrastructure/database"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/repository"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/service"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/usecase"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/jwt"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/metrics"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	metricsNamespace     = "edoc"
	sessionSweepInterval = time.Hour
	shutdownTimeout      = 10 * time.Second
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	SessionSync *service.SessionSyncService
	Log         *logrus.Logger
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := setupLogger(cfg.App)
	app.Log = log
	log.Info("Configuration loaded successfully")

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(cfg.DB, log); err != nil {
			return nil, err
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.SessionSync = service.NewSessionSyncService(db, redisClient, log, sessionSweepInterval)
	app.Server = initializeServer(cfg, log, db, redisClient)

	return app, nil
}

// setupLogger configures the shared logrus logger from LOG_LEVEL.
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator(cfg.Auth.EmailDomain)
	collector := metrics.NewCollector(metricsNamespace)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	patientRepo := repository.NewPatientRepository()
	medicalHistoryRepo := repository.NewMedicalHistoryRepository()
	biometricRepo := repository.NewBiometricRepository()
	consultationRepo := repository.NewConsultationRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	notificationRepo := repository.NewNotificationRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	tokens := service.NewTokenIssuer(log, jwtService, redisClient)
	guard := service.NewAccessGuard(db, log, tokens, userRepo)
	auditService := service.NewAuditService(log, auditLogRepo)
	notifier := service.NewNotifier(log, notificationRepo, collector)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, customValidator, userRepo, patientRepo, medicalHistoryRepo, tokens, auditService, collector)
	profileUsecase := usecase.NewProfileUsecase(db, log, cfg.Auth, customValidator, userRepo, tokens, auditService)
	consultationUsecase := usecase.NewConsultationUsecase(db, log, cfg.Workflow, customValidator, consultationRepo, appointmentRepo, userRepo, notifier, auditService, collector)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, notificationRepo, consultationUsecase)
	patientUsecase := usecase.NewPatientUsecase(db, log, customValidator, patientRepo, medicalHistoryRepo, biometricRepo, auditService)
	adminUsecase := usecase.NewAdminUsecase(db, log, userRepo, roleRepo, authUsecase, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase)
	profileHandler := handler.NewProfileHandler(profileUsecase)
	adminHandler := handler.NewAdminHandler(adminUsecase, authUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)
	consultationHandler := handler.NewConsultationHandler(consultationUsecase)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase)
	patientHandler := handler.NewPatientHandler(patientUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(guard)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)
	loggingMiddleware := middleware.NewLoggingMiddleware(log, collector)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		profileHandler,
		adminHandler,
		auditLogHandler,
		consultationHandler,
		notificationHandler,
		patientHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
		collector,
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	app.SessionSync.Start()

	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close stops background work and closes database and Redis connections.
func (app *App) Close() {
	if app.SessionSync != nil {
		app.SessionSync.Stop()
	}

	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
