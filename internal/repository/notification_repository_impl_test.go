package repository

import (
	"testing"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_MarkAsRead_ScopedToRecipient(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	id, userID := uuid.New(), uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET "is_read"=\$1 WHERE id = \$2 AND user_id = \$3`).
		WithArgs(true, id, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	affected, err := NewNotificationRepository().MarkAsRead(db, id, userID)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestNotificationRepository_CountUnread(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE user_id = \$1 AND is_read = \$2`).
		WithArgs(userID, false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := NewNotificationRepository().CountUnread(db, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
