package proposals

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/dto"
	"github.com/GlebRadaev/skillswap/internal/handlers/apierr"
	"github.com/GlebRadaev/skillswap/internal/service/proposalservice"
	"github.com/GlebRadaev/skillswap/internal/service/tradeservice"
	"github.com/GlebRadaev/skillswap/pkg/auth"
	"github.com/GlebRadaev/skillswap/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, in proposalservice.CreateInput) (*domain.Proposal, error)
	Accept(ctx context.Context, proposalID, acceptorID string) (*domain.Proposal, error)
	Reject(ctx context.Context, proposalID, requesterID string) (*domain.Proposal, error)
	Cancel(ctx context.Context, proposalID, requesterID string) (*domain.Proposal, error)
	Schedule(ctx context.Context, proposalID, requesterID string) (*domain.Proposal, error)
	Get(ctx context.Context, proposalID, requesterID string) (*domain.Proposal, error)
	ListReceived(ctx context.Context, userID string) ([]domain.Proposal, error)
	ListSent(ctx context.Context, userID string) ([]domain.Proposal, error)
}

type TradeService interface {
	CompleteProposal(ctx context.Context, proposalID, studentID, teacherID string, hours float64) (*tradeservice.Receipt, error)
}

type ProposalHandler struct {
	proposalService Service
	tradeService    TradeService
}

func New(proposalService Service, tradeService TradeService) *ProposalHandler {
	return &ProposalHandler{
		proposalService: proposalService,
		tradeService:    tradeService,
	}
}

// Create godoc
//
//	@Summary		Propose a skill trade
//	@Description	Send a pending trade proposal to another user.
//	@Tags			Proposals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateProposalRequestDTO	true	"Proposal"
//	@Success		201		{object}	domain.Proposal					"Created proposal"
//	@Failure		400		{object}	utils.Response					"Invalid proposal"
//	@Failure		404		{object}	utils.Response					"Receiver not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/proposals [post]
func (h *ProposalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.CreateProposalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	proposal, err := h.proposalService.Create(r.Context(), proposalservice.CreateInput{
		SenderID:       userID,
		ReceiverID:     req.ReceiverID,
		SkillOffered:   req.SkillOffered,
		SkillRequested: req.SkillRequested,
		Message:        req.Message,
	})
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, proposal)
}

// Get godoc
//
//	@Summary		Get a proposal
//	@Tags			Proposals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"Proposal ID"
//	@Success		200	{object}	domain.Proposal	"Proposal"
//	@Failure		403	{object}	utils.Response	"Not a party of the proposal"
//	@Failure		404	{object}	utils.Response	"Proposal not found"
//	@Router			/api/proposals/{id} [get]
func (h *ProposalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	proposal, err := h.proposalService.Get(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, proposal)
}

// ListReceived godoc
//
//	@Summary		List received proposals
//	@Description	Proposals sent to the authenticated user that are pending, accepted or scheduled.
//	@Tags			Proposals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.Proposal	"Proposals, newest first"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/proposals/received [get]
func (h *ProposalHandler) ListReceived(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	h.respondList(w, r, h.proposalService.ListReceived, userID)
}

// ListSent godoc
//
//	@Summary		List sent proposals
//	@Tags			Proposals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.Proposal	"Proposals, newest first"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/proposals/sent [get]
func (h *ProposalHandler) ListSent(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	h.respondList(w, r, h.proposalService.ListSent, userID)
}

func (h *ProposalHandler) respondList(w http.ResponseWriter, r *http.Request, list func(context.Context, string) ([]domain.Proposal, error), userID string) {
	proposals, err := list(r.Context(), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	if proposals == nil {
		proposals = []domain.Proposal{}
	}
	utils.RespondWithJSON(w, http.StatusOK, proposals)
}

type transitionFunc func(ctx context.Context, proposalID, requesterID string) (*domain.Proposal, error)

func (h *ProposalHandler) transition(w http.ResponseWriter, r *http.Request, fn transitionFunc) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	proposal, err := fn(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, proposal)
}

// Accept godoc
//
//	@Summary		Accept a proposal
//	@Description	Accept a pending proposal addressed to the authenticated user and open its chat.
//	@Tags			Proposals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"Proposal ID"
//	@Success		200	{object}	domain.Proposal	"Accepted proposal"
//	@Failure		403	{object}	utils.Response	"Only the receiver can accept"
//	@Failure		404	{object}	utils.Response	"Proposal not found"
//	@Failure		409	{object}	utils.Response	"Proposal is not pending"
//	@Router			/api/proposals/{id}/accept [post]
func (h *ProposalHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.proposalService.Accept)
}

// Reject godoc
//
//	@Summary		Reject a proposal
//	@Tags			Proposals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"Proposal ID"
//	@Success		200	{object}	domain.Proposal	"Rejected proposal"
//	@Failure		403	{object}	utils.Response	"Only the receiver can reject"
//	@Failure		409	{object}	utils.Response	"Proposal is not pending"
//	@Router			/api/proposals/{id}/reject [post]
func (h *ProposalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.proposalService.Reject)
}

// Cancel godoc
//
//	@Summary		Cancel a proposal
//	@Tags			Proposals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"Proposal ID"
//	@Success		200	{object}	domain.Proposal	"Canceled proposal"
//	@Failure		403	{object}	utils.Response	"Only the sender can cancel"
//	@Failure		409	{object}	utils.Response	"Proposal is not pending"
//	@Router			/api/proposals/{id}/cancel [post]
func (h *ProposalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.proposalService.Cancel)
}

// Schedule godoc
//
//	@Summary		Schedule an accepted proposal
//	@Tags			Proposals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"Proposal ID"
//	@Success		200	{object}	domain.Proposal	"Scheduled proposal"
//	@Failure		403	{object}	utils.Response	"Not a party of the proposal"
//	@Failure		409	{object}	utils.Response	"Proposal is not accepted"
//	@Router			/api/proposals/{id}/schedule [post]
func (h *ProposalHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.proposalService.Schedule)
}

// Complete godoc
//
//	@Summary		Complete a trade
//	@Description	Transfer hours of time credit from the student to the teacher and close the proposal.
//	@Tags			Proposals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Proposal ID"
//	@Param			request	body		dto.CompleteProposalRequestDTO	true	"Trade parties and hours"
//	@Success		200		{object}	dto.CompleteProposalResponseDTO	"Completion receipt"
//	@Failure		400		{object}	utils.Response					"Invalid hours or parties"
//	@Failure		402		{object}	utils.Response					"Insufficient balance"
//	@Failure		403		{object}	utils.Response					"Not a party of the trade"
//	@Failure		404		{object}	utils.Response					"Proposal or user not found"
//	@Failure		409		{object}	utils.Response					"Proposal cannot be completed"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/proposals/{id}/complete [post]
func (h *ProposalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.CompleteProposalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if userID != req.StudentID && userID != req.TeacherID {
		utils.RespondWithError(w, http.StatusForbidden, "only a party of the trade can complete it")
		return
	}

	receipt, err := h.tradeService.CompleteProposal(r.Context(), chi.URLParam(r, "id"), req.StudentID, req.TeacherID, req.Hours)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CompleteProposalResponseDTO{
		ProposalID:     receipt.ProposalID,
		StudentID:      receipt.StudentID,
		TeacherID:      receipt.TeacherID,
		Hours:          receipt.Hours,
		StudentBalance: receipt.StudentBalance,
		TeacherBalance: receipt.TeacherBalance,
		CompletedAt:    receipt.CompletedAt,
		StudentBadges:  receipt.StudentBadges,
		TeacherBadges:  receipt.TeacherBadges,
	})
}
