package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationHandler_GetNotifications(t *testing.T) {
	user := newUser(entity.RoleStudent)
	notifications := new(mockNotificationUsecase)
	h := NewNotificationHandler(notifications)
	notifications.On("List", mock.Anything, user, 1, 10).Return(&dto.NotificationListResponse{
		Notifications: []dto.NotificationResponse{{Type: "consultation_scheduled", TimeAgo: "3 minutes ago"}},
		Total:         11,
		Unread:        2,
	}, nil)

	rec := serve(h.GetNotifications, newRequest(http.MethodGet, "/api/v1/notifications?limit=10", nil, user, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 2, body["data"].(map[string]interface{})["unread"])
	assert.EqualValues(t, 2, body["meta"].(map[string]interface{})["total_pages"])
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	user := newUser(entity.RoleStudent)
	id := uuid.New()

	notifications := new(mockNotificationUsecase)
	h := NewNotificationHandler(notifications)
	notifications.On("MarkRead", mock.Anything, user, id).Return(nil, usecase.ErrNotificationNotFound)

	rec := serve(h.MarkRead, newRequest(http.MethodPut, "/api/v1/notifications/x/read", nil, user, map[string]string{"id": id.String()}))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h.MarkRead, newRequest(http.MethodPut, "/api/v1/notifications/x/read", nil, user, map[string]string{"id": "x"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid notification ID", decodeBody(t, rec)["message"])
}

func TestNotificationHandler_MarkAllReadAndUnreadCount(t *testing.T) {
	user := newUser(entity.RoleDoctor)
	notifications := new(mockNotificationUsecase)
	h := NewNotificationHandler(notifications)
	notifications.On("MarkAllRead", mock.Anything, user).Return(&dto.MarkReadResponse{Updated: 4}, nil)
	notifications.On("UnreadCount", mock.Anything, user).Return(&dto.UnreadCountResponse{Unread: 0}, nil)

	rec := serve(h.MarkAllRead, newRequest(http.MethodPut, "/api/v1/notifications/read-all", nil, user, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 4, decodeBody(t, rec)["data"].(map[string]interface{})["updated"])

	rec = serve(h.GetUnreadCount, newRequest(http.MethodGet, "/api/v1/notifications/unread-count", nil, user, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, decodeBody(t, rec)["data"].(map[string]interface{})["unread"])
}

func TestNotificationHandler_ApproveAndDeny(t *testing.T) {
	doctor := newUser(entity.RoleDoctor)
	id := uuid.New()
	vars := map[string]string{"id": id.String()}

	t.Run("approve", func(t *testing.T) {
		notifications := new(mockNotificationUsecase)
		h := NewNotificationHandler(notifications)
		notifications.On("Approve", mock.Anything, doctor, id, &dto.ApproveNotificationRequest{ScheduledAt: "2025-09-05 09:00"}).
			Return(&dto.ConsultationResponse{Status: "scheduled"}, nil)

		rec := serve(h.Approve, newRequest(http.MethodPost, "/api/v1/notifications/x/approve", jsonBody(t, map[string]string{"scheduled_at": "2025-09-05 09:00"}), doctor, vars))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Consultation scheduled successfully", decodeBody(t, rec)["message"])
	})

	t.Run("approve requires a body", func(t *testing.T) {
		h := NewNotificationHandler(new(mockNotificationUsecase))

		rec := serve(h.Approve, newRequest(http.MethodPost, "/api/v1/notifications/x/approve", strings.NewReader(""), doctor, vars))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("deny on a non-actionable notification", func(t *testing.T) {
		notifications := new(mockNotificationUsecase)
		h := NewNotificationHandler(notifications)
		notifications.On("Deny", mock.Anything, doctor, id, &dto.DenyNotificationRequest{}).Return(nil, usecase.ErrNotificationNotActionable)

		rec := serve(h.Deny, newRequest(http.MethodPost, "/api/v1/notifications/x/deny", nil, doctor, vars))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "notification has no pending consultation request to act on", decodeBody(t, rec)["message"])
	})
}
