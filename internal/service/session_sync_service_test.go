package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/service"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionSync(t *testing.T) (*service.SessionSyncService, sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	db, sql := testutil.NewMockDB(t)
	return service.NewSessionSyncService(db, client, testutil.NewLogger(), 0), sql, srv
}

func TestSessionSyncService_SweepRemovesInactiveSessions(t *testing.T) {
	svc, sql, srv := newSessionSync(t)
	deactivated, deleted, active := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, srv.Set(service.AccessTokenKeyPrefix+deactivated.String(), "t1"))
	require.NoError(t, srv.Set(service.AccessTokenKeyPrefix+active.String(), "t3"))

	// The soft-deleted user has no live session, so only one key is removed.
	sql.ExpectQuery(`SELECT "id" FROM "users" WHERE is_active = .* OR deleted_at IS NOT NULL ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).
			AddRow(deactivated.String()).
			AddRow(deleted.String()))

	removed, err := svc.Sweep(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)
	assert.False(t, srv.Exists(service.AccessTokenKeyPrefix+deactivated.String()))
	assert.True(t, srv.Exists(service.AccessTokenKeyPrefix+active.String()))
}

func TestSessionSyncService_SweepWithNothingToDo(t *testing.T) {
	svc, sql, _ := newSessionSync(t)
	sql.ExpectQuery(`SELECT "id" FROM "users"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	removed, err := svc.Sweep(context.Background())

	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestSessionSyncService_SweepErrors(t *testing.T) {
	t.Run("query failure", func(t *testing.T) {
		svc, sql, _ := newSessionSync(t)
		sql.ExpectQuery(`SELECT "id" FROM "users"`).WillReturnError(errors.New("connection reset"))

		_, err := svc.Sweep(context.Background())

		assert.ErrorContains(t, err, "query inactive users at offset 0")
	})

	t.Run("redis unavailable", func(t *testing.T) {
		svc, _, srv := newSessionSync(t)
		srv.Close()

		_, err := svc.Sweep(context.Background())

		assert.ErrorContains(t, err, "redis ping failed")
	})
}

func TestSessionSyncService_StopIsIdempotent(t *testing.T) {
	svc, _, _ := newSessionSync(t)

	svc.Stop()
	svc.Stop()
}
