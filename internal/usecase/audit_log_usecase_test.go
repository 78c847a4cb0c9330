package usecase

import (
	"context"
	"testing"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/mocks"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuditLogUsecase_GetAllAuditLogs(t *testing.T) {
	db, _ := testutil.NewMockDB(t)
	repo := new(mocks.MockAuditLogRepository)
	u := NewAuditLogUsecase(db, testutil.NewLogger(), repo)

	user := newUser(entity.RoleAdmin, "root")
	repo.On("FindAll", mock.Anything, entity.AuditLogFilter{
		UserID: &user.ID,
		Action: entity.AuditActionUserLogin,
		Limit:  50,
		Offset: 100,
	}).Return([]entity.AuditLog{
		{ID: 7, UserID: &user.ID, User: user, Action: entity.AuditActionUserLogin},
	}, int64(101), nil)

	resp, err := u.GetAllAuditLogs(context.Background(), &user.ID, entity.AuditActionUserLogin, 3, 50)
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.Total)
	require.Len(t, resp.Logs, 1)
	assert.Equal(t, int64(7), resp.Logs[0].ID)
	assert.Equal(t, "root", resp.Logs[0].User.Name)
}

func TestAuditLogUsecase_GetAuditLog(t *testing.T) {
	db, _ := testutil.NewMockDB(t)
	repo := new(mocks.MockAuditLogRepository)
	u := NewAuditLogUsecase(db, testutil.NewLogger(), repo)

	userID := uuid.New()
	repo.On("FindByID", mock.Anything, int64(7)).Return(&entity.AuditLog{ID: 7, UserID: &userID, Action: entity.AuditActionUserLogout}, nil)
	repo.On("FindByID", mock.Anything, int64(8)).Return(nil, nil)

	found, err := u.GetAuditLog(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, entity.AuditActionUserLogout, found.Action)
	assert.Nil(t, found.User)

	_, err = u.GetAuditLog(context.Background(), 8)
	assert.ErrorIs(t, err, ErrAuditLogNotFound)
}
