package notifications

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/handlers/apierr"
	"github.com/GlebRadaev/skillswap/internal/notifier"
	"github.com/GlebRadaev/skillswap/pkg/auth"
	"github.com/GlebRadaev/skillswap/pkg/utils"
)

type Service interface {
	List(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error)
}

type NotificationHandler struct {
	notificationService Service
	hub                 *notifier.Hub
}

func New(notificationService Service, hub *notifier.Hub) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		hub:                 hub,
	}
}

// List godoc
//
//	@Summary		List own notifications
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.Notification	"Notifications, newest first"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	list, err := h.notificationService.List(r.Context(), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	if list == nil {
		list = []domain.Notification{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// MarkRead godoc
//
//	@Summary		Mark a notification as read
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string				true	"Notification ID"
//	@Success		200	{object}	domain.Notification	"Updated notification"
//	@Failure		404	{object}	utils.Response		"Notification not found"
//	@Router			/api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	n, err := h.notificationService.MarkRead(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, n)
}

// Stream godoc
//
//	@Summary		Stream notifications
//	@Description	Upgrades to a websocket that receives every new notification of the caller as JSON.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Param			token	query	string	false	"JWT for clients that cannot set headers"
//	@Success		101
//	@Router			/api/ws/notifications [get]
func (h *NotificationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	notifier.ServeWS(w, r, h.hub, userID)
}
