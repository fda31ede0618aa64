package chats

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/dto"
	"github.com/GlebRadaev/skillswap/internal/handlers/apierr"
	"github.com/GlebRadaev/skillswap/pkg/auth"
	"github.com/GlebRadaev/skillswap/pkg/utils"
)

type Service interface {
	ListChats(ctx context.Context, userID string) ([]domain.Chat, error)
	SendMessage(ctx context.Context, chatID, senderID, text string) (*domain.Message, error)
	ListMessages(ctx context.Context, chatID, requesterID string) ([]domain.Message, error)
	SuggestMeetingPoint(ctx context.Context, chatID, senderID, location string, dateTime time.Time) (*domain.MeetingPoint, error)
	UpdateMeetingPointStatus(ctx context.Context, chatID, meetingPointID, requesterID string, status domain.MeetingPointStatus) (*domain.MeetingPoint, error)
	ListMeetingPoints(ctx context.Context, chatID, requesterID string) ([]domain.MeetingPoint, error)
}

type ChatHandler struct {
	chatService Service
}

func New(chatService Service) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// ListChats godoc
//
//	@Summary		List own chats
//	@Tags			Chats
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.Chat		"Chats, most recently active first"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/chats [get]
func (h *ChatHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	chats, err := h.chatService.ListChats(r.Context(), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	if chats == nil {
		chats = []domain.Chat{}
	}
	utils.RespondWithJSON(w, http.StatusOK, chats)
}

// SendMessage godoc
//
//	@Summary		Send a chat message
//	@Tags			Chats
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Chat ID"
//	@Param			request	body		dto.SendMessageRequestDTO	true	"Message"
//	@Success		201		{object}	domain.Message				"Stored message"
//	@Failure		400		{object}	utils.Response				"Empty message"
//	@Failure		403		{object}	utils.Response				"Not a participant"
//	@Failure		404		{object}	utils.Response				"Chat not found"
//	@Router			/api/chats/{id}/messages [post]
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.SendMessageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := h.chatService.SendMessage(r.Context(), chi.URLParam(r, "id"), userID, req.Text)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, msg)
}

// ListMessages godoc
//
//	@Summary		List chat messages
//	@Tags			Chats
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"Chat ID"
//	@Success		200	{array}		domain.Message	"Messages, oldest first"
//	@Failure		403	{object}	utils.Response	"Not a participant"
//	@Failure		404	{object}	utils.Response	"Chat not found"
//	@Router			/api/chats/{id}/messages [get]
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	messages, err := h.chatService.ListMessages(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	utils.RespondWithJSON(w, http.StatusOK, messages)
}

// SuggestMeetingPoint godoc
//
//	@Summary		Suggest a meeting point
//	@Tags			Chats
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Chat ID"
//	@Param			request	body		dto.SuggestMeetingPointRequestDTO	true	"Where and when"
//	@Success		201		{object}	domain.MeetingPoint					"Pending meeting point"
//	@Failure		400		{object}	utils.Response						"Missing location or time"
//	@Failure		403		{object}	utils.Response						"Not a participant"
//	@Router			/api/chats/{id}/meeting-points [post]
func (h *ChatHandler) SuggestMeetingPoint(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.SuggestMeetingPointRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	mp, err := h.chatService.SuggestMeetingPoint(r.Context(), chi.URLParam(r, "id"), userID, req.Location, req.DateTime)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, mp)
}

// UpdateMeetingPointStatus godoc
//
//	@Summary		Answer a meeting point
//	@Description	Accept or reject a pending meeting point suggested by the other participant.
//	@Tags			Chats
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Chat ID"
//	@Param			mpId	path		string								true	"Meeting point ID"
//	@Param			request	body		dto.MeetingPointStatusRequestDTO	true	"New status"
//	@Success		200		{object}	domain.MeetingPoint					"Answered meeting point"
//	@Failure		400		{object}	utils.Response						"Invalid status or already answered"
//	@Failure		403		{object}	utils.Response						"Not allowed to answer"
//	@Failure		404		{object}	utils.Response						"Meeting point not found"
//	@Router			/api/chats/{id}/meeting-points/{mpId}/status [post]
func (h *ChatHandler) UpdateMeetingPointStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.MeetingPointStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	mp, err := h.chatService.UpdateMeetingPointStatus(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "mpId"), userID, domain.MeetingPointStatus(req.Status))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, mp)
}

// ListMeetingPoints godoc
//
//	@Summary		List meeting points of a chat
//	@Tags			Chats
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string				true	"Chat ID"
//	@Success		200	{array}		domain.MeetingPoint	"Meeting points, newest first"
//	@Failure		403	{object}	utils.Response		"Not a participant"
//	@Failure		404	{object}	utils.Response		"Chat not found"
//	@Router			/api/chats/{id}/meeting-points [get]
func (h *ChatHandler) ListMeetingPoints(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	points, err := h.chatService.ListMeetingPoints(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	if points == nil {
		points = []domain.MeetingPoint{}
	}
	utils.RespondWithJSON(w, http.StatusOK, points)
}
