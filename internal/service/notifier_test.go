package service_test

import (
	"testing"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/mocks"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/service"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/testutil"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/metrics"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifier_SkipsActorAndLinksRequest(t *testing.T) {
	db, _ := testutil.NewMockDB(t)
	repo := new(mocks.MockNotificationRepository)
	actor := &entity.User{ID: uuid.New()}
	request := &entity.ConsultationRequest{ID: uuid.New()}
	recipient := uuid.New()

	var written []entity.Notification
	repo.On("CreateBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { written = args.Get(1).([]entity.Notification) }).
		Return(nil)

	n := service.NewNotifier(testutil.NewLogger(), repo, metrics.NewCollector("test"))
	err := n.Notify(db, service.Event{
		Type:       entity.NotificationConsultationScheduled,
		Actor:      actor,
		Request:    request,
		Message:    "Your consultation has been scheduled",
		Recipients: []uuid.UUID{recipient, actor.ID},
	})
	require.NoError(t, err)

	require.Len(t, written, 1)
	assert.Equal(t, recipient, written[0].UserID)
	assert.Equal(t, actor.ID, *written[0].ActorID)
	assert.Equal(t, request.ID, *written[0].ConsultationRequestID)
	assert.False(t, written[0].IsRead)
	repo.AssertExpectations(t)
}
