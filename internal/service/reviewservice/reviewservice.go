package reviewservice

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/skillswap/internal/docstore"
	"github.com/GlebRadaev/skillswap/internal/domain"
)

type Transactor interface {
	RunTransaction(ctx context.Context, fn docstore.TxFunc) error
}

type ReviewRepo interface {
	GetTx(ctx context.Context, tx docstore.Getter, reviewID string) (*domain.Review, error)
	CreateTx(ctx context.Context, tx docstore.Tx, review *domain.Review) error
	ListByReviewee(ctx context.Context, userID string) ([]domain.Review, error)
}

type ProposalRepo interface {
	GetTx(ctx context.Context, tx docstore.Getter, proposalID string) (*domain.Proposal, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID, message string, kind domain.NotificationKind, linkID string)
}

type Service struct {
	tx        Transactor
	reviews   ReviewRepo
	proposals ProposalRepo
	notifier  Notifier
}

func New(tx Transactor, reviews ReviewRepo, proposals ProposalRepo, notifier Notifier) *Service {
	return &Service{
		tx:        tx,
		reviews:   reviews,
		proposals: proposals,
		notifier:  notifier,
	}
}

// reviewID is one per (proposal, reviewer).
func reviewID(proposalID, reviewerID string) string {
	return proposalID + "_" + reviewerID
}

func (s *Service) CreateReview(ctx context.Context, proposalID, reviewerID, revieweeID string, rating int, comment string) (*domain.Review, error) {
	review := &domain.Review{
		ID:         reviewID(proposalID, reviewerID),
		ProposalID: proposalID,
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		Rating:     rating,
		Comment:    strings.TrimSpace(comment),
		CreatedAt:  time.Now().UTC(),
	}
	if proposalID == "" {
		return nil, domain.NewValidationError("proposal is required")
	}
	if err := review.Validate(); err != nil {
		return nil, err
	}

	err := s.tx.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		proposal, err := s.proposals.GetTx(ctx, tx, proposalID)
		if err != nil {
			return err
		}
		existing, err := s.reviews.GetTx(ctx, tx, review.ID)
		if err != nil {
			return err
		}
		if proposal == nil {
			return domain.NewNotFoundError("proposal", proposalID)
		}
		if !proposal.IsParty(reviewerID) || proposal.Counterpart(reviewerID) != revieweeID {
			return domain.NewAuthorizationError("only the parties of a trade can review each other")
		}
		if proposal.Status != domain.ProposalCompleted {
			return &domain.InvalidStateError{Action: "reviewed", Current: proposal.Status}
		}
		if existing != nil {
			return domain.NewValidationError("you have already reviewed this trade")
		}
		return s.reviews.CreateTx(ctx, tx, review)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, revieweeID, "You received a new review", domain.NotificationReview, proposalID)
	return review, nil
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]domain.Review, error) {
	reviews, err := s.reviews.ListByReviewee(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list reviews", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return reviews, nil
}

// AverageRating is 0 for users without reviews.
func (s *Service) AverageRating(ctx context.Context, userID string) (float64, error) {
	reviews, err := s.ListForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(reviews) == 0 {
		return 0, nil
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(reviews)), nil
}
