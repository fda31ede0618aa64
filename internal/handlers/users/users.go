package users

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/dto"
	"github.com/GlebRadaev/skillswap/internal/handlers/apierr"
	"github.com/GlebRadaev/skillswap/internal/service/userservice"
	"github.com/GlebRadaev/skillswap/pkg/auth"
	"github.com/GlebRadaev/skillswap/pkg/utils"
)

type ProfileService interface {
	CreateProfile(ctx context.Context, in userservice.CreateInput) (*domain.UserAccount, error)
	GetProfile(ctx context.Context, userID string) (*domain.UserAccount, error)
	UpdateProfile(ctx context.Context, userID string, upd userservice.ProfileUpdate) (*domain.UserAccount, error)
}

type LedgerService interface {
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)
}

type BadgeService interface {
	ListEarned(ctx context.Context, userID string) ([]domain.EarnedBadgeDetails, error)
}

type ReviewService interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Review, error)
	AverageRating(ctx context.Context, userID string) (float64, error)
}

type UserHandler struct {
	profiles ProfileService
	ledger   LedgerService
	badges   BadgeService
	reviews  ReviewService
}

func New(profiles ProfileService, ledger LedgerService, badges BadgeService, reviews ReviewService) *UserHandler {
	return &UserHandler{
		profiles: profiles,
		ledger:   ledger,
		badges:   badges,
		reviews:  reviews,
	}
}

func toProfileDTO(u *domain.UserAccount, rating float64) dto.ProfileResponseDTO {
	return dto.ProfileResponseDTO{
		ID:                       u.ID,
		Email:                    u.Email,
		Name:                     u.Name,
		Bio:                      u.Bio,
		AvatarURL:                u.AvatarURL,
		Skills:                   u.Skills,
		TimeBalance:              u.TimeBalance,
		CompletedTradesCount:     u.CompletedTradesCount,
		CompletedTradesAsTeacher: u.CompletedTradesAsTeacher,
		AverageRating:            rating,
		CreatedAt:                u.CreatedAt,
	}
}

// CreateProfile godoc
//
//	@Summary		Create own profile
//	@Description	Create the profile of the authenticated user with the initial time balance.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateProfileRequestDTO	true	"Profile data"
//	@Success		201		{object}	dto.ProfileResponseDTO		"Created profile"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/users/me [post]
func (h *UserHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.CreateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.profiles.CreateProfile(r.Context(), userservice.CreateInput{
		UserID: userID,
		Email:  req.Email,
		Name:   req.Name,
		Bio:    req.Bio,
		Skills: req.Skills,
	})
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toProfileDTO(user, 0))
}

// GetProfile godoc
//
//	@Summary		Get a profile
//	@Description	Get a user profile with the average rating of the reviews the user received.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"User ID"
//	@Success		200	{object}	dto.ProfileResponseDTO	"Profile"
//	@Failure		404	{object}	utils.Response			"User not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/users/{id} [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	user, err := h.profiles.GetProfile(r.Context(), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	rating, err := h.reviews.AverageRating(r.Context(), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProfileDTO(user, rating))
}

// UpdateProfile godoc
//
//	@Summary		Update own profile
//	@Description	Update name, bio, skills or avatar of the authenticated user. Omitted fields stay unchanged.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateProfileRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.ProfileResponseDTO		"Updated profile"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		404		{object}	utils.Response				"User not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/users/me [put]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.profiles.UpdateProfile(r.Context(), userID, userservice.ProfileUpdate{
		Name:      req.Name,
		Bio:       req.Bio,
		Skills:    req.Skills,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProfileDTO(user, 0))
}

// GetBalance godoc
//
//	@Summary		Get time balance
//	@Description	Get the time credit balance of a user.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"User ID"
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		404	{object}	utils.Response			"User not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/users/{id}/balance [get]
func (h *UserHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	balance, err := h.ledger.GetBalance(r.Context(), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		UserID:      userID,
		TimeBalance: balance,
	})
}

// ListBadges godoc
//
//	@Summary		List earned badges
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"User ID"
//	@Success		200	{array}		domain.EarnedBadgeDetails	"Earned badges, oldest first"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/users/{id}/badges [get]
func (h *UserHandler) ListBadges(w http.ResponseWriter, r *http.Request) {
	badges, err := h.badges.ListEarned(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	if badges == nil {
		badges = []domain.EarnedBadgeDetails{}
	}
	utils.RespondWithJSON(w, http.StatusOK, badges)
}

// ListReviews godoc
//
//	@Summary		List reviews received by a user
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"User ID"
//	@Success		200	{array}		domain.Review	"Reviews, newest first"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id}/reviews [get]
func (h *UserHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListForUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	utils.RespondWithJSON(w, http.StatusOK, reviews)
}
