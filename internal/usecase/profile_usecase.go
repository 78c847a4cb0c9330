package usecase

import (
	"context"
	"strings"

	"github.com/ManelMostefaoui/E-Doc-sub002/config"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/converter"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/repository"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/service"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/apperror"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/validator"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	minPasswordLength = 8
	// bcrypt refuses longer input.
	maxPasswordBytes = 72
)

type ProfileUsecase interface {
	View(ctx context.Context, user *entity.User) (*dto.UserResponse, error)
	// Update applies only the supplied fields. An empty request writes nothing.
	Update(ctx context.Context, user *entity.User, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, user *entity.User, req *dto.ChangePasswordRequest) error
}

type profileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cfg          config.AuthConfig
	validator    *validator.CustomValidator
	userRepo     repository.UserRepository
	tokens       service.TokenIssuer
	auditService service.AuditService
	bcryptCost   int
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.AuthConfig,
	validator *validator.CustomValidator,
	userRepo repository.UserRepository,
	tokens service.TokenIssuer,
	auditService service.AuditService,
) ProfileUsecase {
	return &profileUsecase{
		db:           db,
		log:          log,
		cfg:          cfg,
		validator:    validator,
		userRepo:     userRepo,
		tokens:       tokens,
		auditService: auditService,
		bcryptCost:   bcrypt.DefaultCost,
	}
}

func (u *profileUsecase) View(ctx context.Context, user *entity.User) (*dto.UserResponse, error) {
	return converter.UserToResponse(user), nil
}

func (u *profileUsecase) Update(ctx context.Context, user *entity.User, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if req.IsEmpty() {
		return converter.UserToResponse(user), nil
	}
	if err := validate(u.validator, req); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperror.FieldError("name", "name is required")
		}
		fields["name"] = name
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.PhoneNum != nil {
		fields["phone_num"] = trimmed(req.PhoneNum)
	}
	if req.Address != nil {
		fields["address"] = trimmed(req.Address)
	}
	if req.Birthdate != nil {
		birthdate, err := parseDate("birthdate", req.Birthdate)
		if err != nil {
			return nil, err
		}
		fields["birthdate"] = birthdate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		taken, err := u.userRepo.EmailTaken(tx, email, user.ID)
		if err != nil {
			u.log.Warnf("Failed to check email uniqueness: %+v", err)
			return nil, err
		}
		if taken {
			return nil, ErrEmailAlreadyExists
		}
		fields["email"] = email
	}

	if err := u.userRepo.UpdateFields(tx, user.ID, fields); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update profile: %+v", err)
		return nil, err
	}

	updated, err := u.userRepo.FindByID(tx, user.ID)
	if err != nil {
		u.log.Warnf("Failed to reload profile: %+v", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	if err := u.auditService.LogUpdate(tx, &user.ID, entity.AuditActionProfileUpdate, "user", user.ID.String(),
		converter.UserToResponse(user), converter.UserToResponse(updated)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(updated), nil
}

func (u *profileUsecase) ChangePassword(ctx context.Context, user *entity.User, req *dto.ChangePasswordRequest) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrCurrentPasswordMismatch
	}

	if len(req.NewPassword) < minPasswordLength {
		return apperror.FieldError("new_password", "new_password must be at least 8 characters")
	}
	if len(req.NewPassword) > maxPasswordBytes {
		return apperror.FieldError("new_password", "new_password must be at most 72 bytes")
	}
	if req.NewPassword != req.NewPasswordConfirmation {
		return apperror.FieldError("new_password_confirmation", "new_password_confirmation does not match")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), u.bcryptCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.UpdatePassword(tx, user.ID, string(hashedPassword)); err != nil {
		u.log.Warnf("Failed to update password: %+v", err)
		return err
	}

	if err := u.auditService.LogEvent(tx, &user.ID, entity.AuditActionPasswordChange, nil); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	user.Password = string(hashedPassword)

	if u.cfg.PasswordChangeLogout {
		if err := u.tokens.RevokeAll(ctx, user.ID); err != nil {
			return err
		}
	}

	return nil
}
