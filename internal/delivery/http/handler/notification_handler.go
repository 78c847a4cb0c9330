package handler

import (
	"net/http"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/usecase"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/response"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
	}
}

func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	page, limit := pageParams(r)

	feed, err := h.notificationUsecase.List(r.Context(), user, page, limit)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Notifications retrieved successfully", feed, response.NewMeta(page, limit, feed.Total))
}

func (h *NotificationHandler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	count, err := h.notificationUsecase.UnreadCount(r.Context(), user)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Unread count retrieved successfully", count)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id", "notification")
	if !ok {
		return
	}

	result, err := h.notificationUsecase.MarkRead(r.Context(), user, id)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Notification marked as read", result)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	result, err := h.notificationUsecase.MarkAllRead(r.Context(), user)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Notifications marked as read", result)
}

// Approve schedules the consultation behind a "requested" notification.
func (h *NotificationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	doctor, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id", "notification")
	if !ok {
		return
	}

	var req dto.ApproveNotificationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	consultation, err := h.notificationUsecase.Approve(r.Context(), doctor, id, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Consultation scheduled successfully", consultation)
}

// Deny cancels the consultation behind a "requested" notification.
func (h *NotificationHandler) Deny(w http.ResponseWriter, r *http.Request) {
	doctor, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id", "notification")
	if !ok {
		return
	}

	var req dto.DenyNotificationRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	consultation, err := h.notificationUsecase.Deny(r.Context(), doctor, id, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Consultation cancelled successfully", consultation)
}
