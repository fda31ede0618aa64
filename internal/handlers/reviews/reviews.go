package reviews

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/dto"
	"github.com/GlebRadaev/skillswap/internal/handlers/apierr"
	"github.com/GlebRadaev/skillswap/pkg/auth"
	"github.com/GlebRadaev/skillswap/pkg/utils"
)

type Service interface {
	CreateReview(ctx context.Context, proposalID, reviewerID, revieweeID string, rating int, comment string) (*domain.Review, error)
}

type ReviewHandler struct {
	reviewService Service
}

func New(reviewService Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// CreateReview godoc
//
//	@Summary		Review a trade partner
//	@Description	Rate the other party of a completed proposal. One review per proposal and reviewer.
//	@Tags			Reviews
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateReviewRequestDTO	true	"Review"
//	@Success		201		{object}	domain.Review				"Stored review"
//	@Failure		400		{object}	utils.Response				"Invalid or duplicate review"
//	@Failure		403		{object}	utils.Response				"Not a party of the proposal"
//	@Failure		404		{object}	utils.Response				"Proposal not found"
//	@Failure		409		{object}	utils.Response				"Proposal is not completed"
//	@Router			/api/reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.CreateReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := h.reviewService.CreateReview(r.Context(), req.ProposalID, userID, req.RevieweeID, req.Rating, req.Comment)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, review)
}
