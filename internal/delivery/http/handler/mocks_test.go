package handler

import (
	"context"
	"io"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

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

type mockProfileUsecase struct {
	mock.Mock
}

func (m *mockProfileUsecase) View(ctx context.Context, user *entity.User) (*dto.UserResponse, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *mockProfileUsecase) Update(ctx context.Context, user *entity.User, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *mockProfileUsecase) ChangePassword(ctx context.Context, user *entity.User, req *dto.ChangePasswordRequest) error {
	args := m.Called(ctx, user, req)
	return args.Error(0)
}

type mockAdminUsecase struct {
	mock.Mock
}

func (m *mockAdminUsecase) UserCounts(ctx context.Context) (*dto.UserCountsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserCountsResponse), args.Error(1)
}

func (m *mockAdminUsecase) ListUsers(ctx context.Context, role, search string, page, limit int) (*dto.UserListResponse, error) {
	args := m.Called(ctx, role, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserListResponse), args.Error(1)
}

func (m *mockAdminUsecase) ListRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RoleResponse), args.Error(1)
}

func (m *mockAdminUsecase) ImportUsers(ctx context.Context, admin *entity.User, file io.Reader) (*dto.ImportUsersResponse, error) {
	args := m.Called(ctx, admin, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImportUsersResponse), args.Error(1)
}

type mockAuditLogUsecase struct {
	mock.Mock
}

func (m *mockAuditLogUsecase) GetAllAuditLogs(ctx context.Context, userID *uuid.UUID, action string, page, limit int) (*dto.AuditLogListResponse, error) {
	args := m.Called(ctx, userID, action, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuditLogListResponse), args.Error(1)
}

func (m *mockAuditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuditLogResponse), args.Error(1)
}

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

type mockNotificationUsecase struct {
	mock.Mock
}

func (m *mockNotificationUsecase) List(ctx context.Context, user *entity.User, page, limit int) (*dto.NotificationListResponse, error) {
	args := m.Called(ctx, user, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.NotificationListResponse), args.Error(1)
}

func (m *mockNotificationUsecase) UnreadCount(ctx context.Context, user *entity.User) (*dto.UnreadCountResponse, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UnreadCountResponse), args.Error(1)
}

func (m *mockNotificationUsecase) MarkRead(ctx context.Context, user *entity.User, id uuid.UUID) (*dto.MarkReadResponse, error) {
	args := m.Called(ctx, user, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MarkReadResponse), args.Error(1)
}

func (m *mockNotificationUsecase) MarkAllRead(ctx context.Context, user *entity.User) (*dto.MarkReadResponse, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MarkReadResponse), args.Error(1)
}

func (m *mockNotificationUsecase) Approve(ctx context.Context, doctor *entity.User, id uuid.UUID, req *dto.ApproveNotificationRequest) (*dto.ConsultationResponse, error) {
	args := m.Called(ctx, doctor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConsultationResponse), args.Error(1)
}

func (m *mockNotificationUsecase) Deny(ctx context.Context, doctor *entity.User, id uuid.UUID, req *dto.DenyNotificationRequest) (*dto.ConsultationResponse, error) {
	args := m.Called(ctx, doctor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConsultationResponse), args.Error(1)
}

type mockPatientUsecase struct {
	mock.Mock
}

func (m *mockPatientUsecase) Search(ctx context.Context, search string, page, limit int) (*dto.PatientListResponse, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientListResponse), args.Error(1)
}

func (m *mockPatientUsecase) Get(ctx context.Context, viewer *entity.User, patientID uuid.UUID) (*dto.PatientResponse, error) {
	args := m.Called(ctx, viewer, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientResponse), args.Error(1)
}

func (m *mockPatientUsecase) UpdatePatient(ctx context.Context, editor *entity.User, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	args := m.Called(ctx, editor, patientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientResponse), args.Error(1)
}

func (m *mockPatientUsecase) UpdateMedicalHistory(ctx context.Context, editor *entity.User, patientID uuid.UUID, req *dto.UpdateMedicalHistoryRequest) (*dto.PatientResponse, error) {
	args := m.Called(ctx, editor, patientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientResponse), args.Error(1)
}

func (m *mockPatientUsecase) UpdateBiometrics(ctx context.Context, editor *entity.User, patientID uuid.UUID, req *dto.UpdateBiometricsRequest) (*dto.PatientResponse, error) {
	args := m.Called(ctx, editor, patientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientResponse), args.Error(1)
}
