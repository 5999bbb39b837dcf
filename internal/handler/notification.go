// internal/handler/notification.go
package handler

import (
	"net/http"

	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/Ar-Dante/Quiz-platform/internal/service"
)

type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID, err := caller(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	userID, err := uuidParam(r, "user")
	if err != nil {
		handleError(w, r, err)
		return
	}
	items, err := h.notifications.List(r.Context(), userID, callerID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ListResponse[*model.Notification]{
		BaseResponse: BaseResponse{Ok: true},
		Items:        items,
		Total:        int64(len(items)),
		Limit:        len(items),
	})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	callerID, err := caller(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	userID, err := uuidParam(r, "user")
	if err != nil {
		handleError(w, r, err)
		return
	}
	notificationID, err := uuidParam(r, "notification")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := h.notifications.MarkRead(r.Context(), notificationID, userID, callerID); err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, message("Notification marked as read"))
}
