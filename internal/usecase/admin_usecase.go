package usecase

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/converter"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/repository"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/infrastructure/spreadsheet"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/service"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Columns of the bulk import sheet. The first four are mandatory.
var importColumns = []string{"name", "email", "password", "role", "gender", "birthdate", "phone_num", "address"}

type AdminUsecase interface {
	UserCounts(ctx context.Context) (*dto.UserCountsResponse, error)
	// ListUsers filters by role name when role is non-empty.
	ListUsers(ctx context.Context, role, search string, page, limit int) (*dto.UserListResponse, error)
	ListRoles(ctx context.Context) ([]dto.RoleResponse, error)
	// ImportUsers registers every sheet row independently. A failing row is
	// reported and does not affect the others.
	ImportUsers(ctx context.Context, admin *entity.User, file io.Reader) (*dto.ImportUsersResponse, error)
}

type adminUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	auth         AuthUsecase
	auditService service.AuditService
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	auth AuthUsecase,
	auditService service.AuditService,
) AdminUsecase {
	return &adminUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		auth:         auth,
		auditService: auditService,
	}
}

func (u *adminUsecase) UserCounts(ctx context.Context) (*dto.UserCountsResponse, error) {
	counts, err := u.userRepo.CountByRole(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to count users: %+v", err)
		return nil, err
	}

	return &dto.UserCountsResponse{
		Students:  counts[entity.RoleStudent],
		Teachers:  counts[entity.RoleTeacher],
		Employees: counts[entity.RoleEmployer],
	}, nil
}

func (u *adminUsecase) ListUsers(ctx context.Context, role, search string, page, limit int) (*dto.UserListResponse, error) {
	limit, offset := pagination(page, limit)
	filter := repository.UserFilter{
		Search: strings.TrimSpace(search),
		Limit:  limit,
		Offset: offset,
	}
	if role != "" {
		parsed, ok := entity.ParseRole(role)
		if !ok {
			return nil, apperror.FieldError("role", "role must be one of: admin, doctor, doctor_assistant, student, teacher, employer")
		}
		filter.Role = &parsed
	}

	users, total, err := u.userRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: total,
	}, nil
}

func (u *adminUsecase) ListRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := u.roleRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list roles: %+v", err)
		return nil, err
	}

	responses := make([]dto.RoleResponse, len(roles))
	for i, role := range roles {
		responses[i] = dto.RoleResponse{
			ID:          int(role.ID),
			Name:        role.RoleName,
			Description: role.Description,
		}
	}
	return responses, nil
}

func (u *adminUsecase) ImportUsers(ctx context.Context, admin *entity.User, file io.Reader) (*dto.ImportUsersResponse, error) {
	rows, err := spreadsheet.ReadRows(file, importColumns[:4]...)
	if err != nil {
		return nil, apperror.FieldError("file", err.Error())
	}

	result := &dto.ImportUsersResponse{Errors: []dto.ImportRowError{}}
	for _, row := range rows {
		req := &dto.RegisterRequest{
			Name:      row.Get("name"),
			Email:     row.Get("email"),
			Password:  row.Get("password"),
			Role:      strings.ToLower(row.Get("role")),
			Gender:    lowered(row.Optional("gender")),
			Birthdate: row.Optional("birthdate"),
			PhoneNum:  row.Optional("phone_num"),
			Address:   row.Optional("address"),
		}

		if _, err := u.auth.CreateUser(ctx, admin, req); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportRowError{
				Row:    row.Line,
				Email:  req.Email,
				Errors: u.rowErrors(err),
			})
			continue
		}
		result.Created++
	}

	if err := u.auditService.LogEvent(u.db.WithContext(ctx), &admin.ID, entity.AuditActionUserImport, entity.JSON{
		"created": result.Created,
		"failed":  result.Failed,
	}); err != nil {
		u.log.Warnf("Failed to audit user import: %+v", err)
	}

	u.log.Infof("User import by %s: %d created, %d failed", admin.ID, result.Created, result.Failed)
	return result, nil
}

// rowErrors keeps client-safe messages and hides internal failures.
func (u *adminUsecase) rowErrors(err error) map[string]string {
	if fields := apperror.FieldsOf(err); len(fields) > 0 {
		return fields
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return map[string]string{"row": appErr.Error()}
	}
	u.log.Warnf("Failed to import row: %+v", err)
	return map[string]string{"row": "internal error"}
}

func lowered(value *string) *string {
	if value == nil {
		return nil
	}
	s := strings.ToLower(*value)
	return &s
}
