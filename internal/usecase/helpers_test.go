package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testDomain = "esi-sba.dz"

func newTestValidator() *validator.CustomValidator {
	return validator.NewValidator(testDomain)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newUser(role entity.Role, name string) *entity.User {
	active := true
	return &entity.User{
		ID:       uuid.New(),
		RoleID:   role,
		Name:     name,
		Email:    name + "@" + testDomain,
		IsActive: &active,
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func strPtr(s string) *string { return &s }

// mockConsultationUsecase stands in for the workflow behind notification actions.
type mockConsultationUsecase struct {
	mock.Mock
}

func (m *mockConsultationUsecase) Create(ctx context.Context, patient *entity.User, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	args := m.Called(ctx, patient, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConsultationResponse), args.Error(1)
}

func (m *mockConsultationUsecase) Schedule(ctx context.Context, doctor *entity.User, requestID uuid.UUID, req *dto.ScheduleConsultationRequest) (*dto.ConsultationResponse, error) {
	args := m.Called(ctx, doctor, requestID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConsultationResponse), args.Error(1)
}

func (m *mockConsultationUsecase) Confirm(ctx context.Context, patient *entity.User, requestID uuid.UUID) (*dto.ConsultationResponse, error) {
	args := m.Called(ctx, patient, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConsultationResponse), args.Error(1)
}

func (m *mockConsultationUsecase) Cancel(ctx context.Context, actor *entity.User, requestID uuid.UUID, req *dto.CancelConsultationRequest) (*dto.ConsultationResponse, error) {
	args := m.Called(ctx, actor, requestID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConsultationResponse), args.Error(1)
}

func (m *mockConsultationUsecase) ListForPatient(ctx context.Context, patient *entity.User, query dto.ConsultationQuery) (*dto.ConsultationListResponse, error) {
	args := m.Called(ctx, patient, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConsultationListResponse), args.Error(1)
}

func (m *mockConsultationUsecase) ListForDoctor(ctx context.Context, doctor *entity.User, query dto.ConsultationQuery) (*dto.ConsultationListResponse, error) {
	args := m.Called(ctx, doctor, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConsultationListResponse), args.Error(1)
}

// mockAuthUsecase stands in for account creation during bulk import.
type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *mockAuthUsecase) CreateUser(ctx context.Context, admin *entity.User, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, admin, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, user *entity.User, token string) error {
	args := m.Called(ctx, user, token)
	return args.Error(0)
}
