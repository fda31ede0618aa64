package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/skillswap/docs"
	chathandlers "github.com/GlebRadaev/skillswap/internal/handlers/chats"
	notificationhandlers "github.com/GlebRadaev/skillswap/internal/handlers/notifications"
	proposalhandlers "github.com/GlebRadaev/skillswap/internal/handlers/proposals"
	reviewhandlers "github.com/GlebRadaev/skillswap/internal/handlers/reviews"
	userhandlers "github.com/GlebRadaev/skillswap/internal/handlers/users"
	"github.com/GlebRadaev/skillswap/internal/service"
	"github.com/GlebRadaev/skillswap/pkg/auth"
	"github.com/GlebRadaev/skillswap/pkg/utils"
)

type UserHandler interface {
	CreateProfile(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	ListBadges(w http.ResponseWriter, r *http.Request)
	ListReviews(w http.ResponseWriter, r *http.Request)
}

type ProposalHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListReceived(w http.ResponseWriter, r *http.Request)
	ListSent(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Schedule(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
}

type ChatHandler interface {
	ListChats(w http.ResponseWriter, r *http.Request)
	SendMessage(w http.ResponseWriter, r *http.Request)
	ListMessages(w http.ResponseWriter, r *http.Request)
	SuggestMeetingPoint(w http.ResponseWriter, r *http.Request)
	UpdateMeetingPointStatus(w http.ResponseWriter, r *http.Request)
	ListMeetingPoints(w http.ResponseWriter, r *http.Request)
}

type ReviewHandler interface {
	CreateReview(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserHandler         UserHandler
	ProposalHandler     ProposalHandler
	ChatHandler         ChatHandler
	ReviewHandler       ReviewHandler
	NotificationHandler NotificationHandler

	tokens         auth.TokenValidator
	allowedOrigins []string
}

func New(s *service.Services, tokens auth.TokenValidator, allowedOrigins []string) *Handlers {
	return &Handlers{
		UserHandler:         userhandlers.New(s.UserService, s.LedgerService, s.BadgeService, s.ReviewService),
		ProposalHandler:     proposalhandlers.New(s.ProposalService, s.TradeService),
		ChatHandler:         chathandlers.New(s.ChatService),
		ReviewHandler:       reviewhandlers.New(s.ReviewService),
		NotificationHandler: notificationhandlers.New(s.NotificationService, s.Hub),
		tokens:              tokens,
		allowedOrigins:      allowedOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware(h.tokens))

		r.Route("/users", func(r chi.Router) {
			r.Post("/me", h.UserHandler.CreateProfile)
			r.Put("/me", h.UserHandler.UpdateProfile)
			r.Get("/{id}", h.UserHandler.GetProfile)
			r.Get("/{id}/balance", h.UserHandler.GetBalance)
			r.Get("/{id}/badges", h.UserHandler.ListBadges)
			r.Get("/{id}/reviews", h.UserHandler.ListReviews)
		})
		r.Route("/proposals", func(r chi.Router) {
			r.Post("/", h.ProposalHandler.Create)
			r.Get("/received", h.ProposalHandler.ListReceived)
			r.Get("/sent", h.ProposalHandler.ListSent)
			r.Get("/{id}", h.ProposalHandler.Get)
			r.Post("/{id}/accept", h.ProposalHandler.Accept)
			r.Post("/{id}/reject", h.ProposalHandler.Reject)
			r.Post("/{id}/cancel", h.ProposalHandler.Cancel)
			r.Post("/{id}/schedule", h.ProposalHandler.Schedule)
			r.Post("/{id}/complete", h.ProposalHandler.Complete)
		})
		r.Route("/chats", func(r chi.Router) {
			r.Get("/", h.ChatHandler.ListChats)
			r.Get("/{id}/messages", h.ChatHandler.ListMessages)
			r.Post("/{id}/messages", h.ChatHandler.SendMessage)
			r.Get("/{id}/meeting-points", h.ChatHandler.ListMeetingPoints)
			r.Post("/{id}/meeting-points", h.ChatHandler.SuggestMeetingPoint)
			r.Post("/{id}/meeting-points/{mpId}/status", h.ChatHandler.UpdateMeetingPointStatus)
		})
		r.Post("/reviews", h.ReviewHandler.CreateReview)
		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.NotificationHandler.List)
			r.Post("/{id}/read", h.NotificationHandler.MarkRead)
		})
		r.Get("/ws/notifications", h.NotificationHandler.Stream)
	})

	return r
}
