package usecase

import (
	"context"
	"strings"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/converter"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/repository"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/service"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/apperror"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/metrics"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase interface {
	// Register is the public sign-up path, limited to patient-like roles.
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	// CreateUser lets an admin create an account with any role.
	CreateUser(ctx context.Context, admin *entity.User, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, user *entity.User, token string) error
}

type authUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	validator          *validator.CustomValidator
	userRepo           repository.UserRepository
	patientRepo        repository.PatientRepository
	medicalHistoryRepo repository.MedicalHistoryRepository
	tokens             service.TokenIssuer
	auditService       service.AuditService
	metrics            *metrics.Collector
	bcryptCost         int
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	medicalHistoryRepo repository.MedicalHistoryRepository,
	tokens service.TokenIssuer,
	auditService service.AuditService,
	collector *metrics.Collector,
) AuthUsecase {
	return &authUsecase{
		db:                 db,
		log:                log,
		validator:          validator,
		userRepo:           userRepo,
		patientRepo:        patientRepo,
		medicalHistoryRepo: medicalHistoryRepo,
		tokens:             tokens,
		auditService:       auditService,
		metrics:            collector,
		bcryptCost:         bcrypt.DefaultCost,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}
	role, _ := entity.ParseRole(req.Role)
	if !role.IsPatient() {
		return nil, ErrRegistrationRole
	}

	user, err := u.createUserWithDependents(ctx, nil, req)
	if err != nil {
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) CreateUser(ctx context.Context, admin *entity.User, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	user, err := u.createUserWithDependents(ctx, &admin.ID, req)
	if err != nil {
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// createUserWithDependents inserts the user and, for patient-like roles, its
// Patient and empty MedicalHistory rows in a single transaction. actorID is
// nil for self-registration.
func (u *authUsecase) createUserWithDependents(ctx context.Context, actorID *uuid.UUID, req *dto.RegisterRequest) (*entity.User, error) {
	role, ok := entity.ParseRole(req.Role)
	if !ok {
		return nil, ErrRegistrationRole
	}

	birthdate, err := parseDate("birthdate", req.Birthdate)
	if err != nil {
		return nil, err
	}

	// max=72 counts runes, bcrypt counts bytes.
	if len(req.Password) > maxPasswordBytes {
		return nil, apperror.FieldError("password", "password must be at most 72 bytes")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.bcryptCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	taken, err := u.userRepo.EmailTaken(tx, email, uuid.Nil)
	if err != nil {
		u.log.Warnf("Failed to check email uniqueness: %+v", err)
		return nil, err
	}
	if taken {
		return nil, ErrEmailAlreadyExists
	}

	active := true
	user := &entity.User{
		ID:        uuid.New(),
		RoleID:    role,
		Email:     email,
		Password:  string(hashedPassword),
		Name:      strings.TrimSpace(req.Name),
		Gender:    trimmed(req.Gender),
		Birthdate: birthdate,
		PhoneNum:  trimmed(req.PhoneNum),
		Address:   trimmed(req.Address),
		IsActive:  &active,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if role.IsPatient() {
		if err := u.patientRepo.Create(tx, &entity.Patient{UserID: user.ID}); err != nil {
			u.log.Warnf("Failed to create patient record: %+v", err)
			return nil, err
		}
		if err := u.medicalHistoryRepo.Create(tx, &entity.MedicalHistory{PatientID: user.ID}); err != nil {
			u.log.Warnf("Failed to create medical history: %+v", err)
			return nil, err
		}
	}

	auditActor := actorID
	if auditActor == nil {
		auditActor = &user.ID
	}
	if err := u.auditService.LogCreate(tx, auditActor, entity.AuditActionUserRegister, "user", user.ID.String(), converter.UserToResponse(user)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Registered %s account %s", role, user.ID)
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	// Read-only lookup, no transaction needed
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), strings.TrimSpace(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil || !user.Active() {
		u.metrics.RecordAuthAttempt(false)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		u.metrics.RecordAuthAttempt(false)
		return nil, ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	u.metrics.RecordAuthAttempt(true)

	// The session already exists; a lost audit row is logged, not surfaced.
	if err := u.auditService.LogEvent(u.db.WithContext(ctx), &user.ID, entity.AuditActionUserLogin, nil); err != nil {
		u.log.Warnf("Failed to audit login for %s: %+v", user.ID, err)
	}

	return &dto.LoginResponse{
		User:  converter.UserToResponse(user),
		Token: token,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, user *entity.User, token string) error {
	if err := u.tokens.Revoke(ctx, token); err != nil {
		return err
	}

	if err := u.auditService.LogEvent(u.db.WithContext(ctx), &user.ID, entity.AuditActionUserLogout, nil); err != nil {
		u.log.Warnf("Failed to audit logout for %s: %+v", user.ID, err)
	}

	return nil
}
