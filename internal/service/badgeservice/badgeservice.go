package badgeservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/skillswap/internal/docstore"
	"github.com/GlebRadaev/skillswap/internal/domain"
)

type BadgeRepo interface {
	AwardTx(ctx context.Context, tx docstore.Tx, userID string, earned *domain.EarnedBadge) error
	Create(ctx context.Context, userID string, earned *domain.EarnedBadge) error
	FindEarned(ctx context.Context, userID, badgeID string) ([]domain.EarnedBadge, error)
	ListEarned(ctx context.Context, userID string) ([]domain.EarnedBadge, error)
}

type Thresholds struct {
	FirstTrade    int
	MasterTeacher int
}

var DefaultThresholds = Thresholds{FirstTrade: 1, MasterTeacher: 10}

type rule struct {
	badgeID string
	matches func(domain.Counters) bool
}

type Service struct {
	repo  BadgeRepo
	rules []rule
}

func New(repo BadgeRepo, thresholds Thresholds) *Service {
	return &Service{
		repo: repo,
		rules: []rule{
			{
				badgeID: domain.BadgeFirstTrade,
				matches: func(c domain.Counters) bool { return c.CompletedTradesCount == thresholds.FirstTrade },
			},
			{
				badgeID: domain.BadgeMasterTeacher,
				matches: func(c domain.Counters) bool { return c.CompletedTradesAsTeacher == thresholds.MasterTeacher },
			},
		},
	}
}

// EvaluateAndAward checks the post-update counters against the rule table and
// writes every earned badge through tx. The document id is the badge id, so a
// user holds each badge at most once.
func (s *Service) EvaluateAndAward(ctx context.Context, tx docstore.Tx, userID string, counters domain.Counters) ([]string, error) {
	var awarded []string
	now := time.Now().UTC()
	for _, r := range s.rules {
		if !r.matches(counters) {
			continue
		}
		earned := &domain.EarnedBadge{ID: r.badgeID, BadgeID: r.badgeID, EarnedAt: now}
		if err := s.repo.AwardTx(ctx, tx, userID, earned); err != nil {
			return nil, err
		}
		awarded = append(awarded, r.badgeID)
	}
	return awarded, nil
}

// AwardBadge grants badgeID outside any transaction unless the user already has it.
func (s *Service) AwardBadge(ctx context.Context, userID, badgeID string) (bool, error) {
	if domain.LookupBadge(badgeID) == nil {
		return false, domain.NewNotFoundError("badge", badgeID)
	}
	existing, err := s.repo.FindEarned(ctx, userID, badgeID)
	if err != nil {
		zap.L().Error("failed to check earned badges", zap.String("user_id", userID), zap.Error(err))
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}
	earned := &domain.EarnedBadge{ID: uuid.NewString(), BadgeID: badgeID, EarnedAt: time.Now().UTC()}
	if err := s.repo.Create(ctx, userID, earned); err != nil {
		return false, err
	}
	zap.L().Info("badge awarded", zap.String("user_id", userID), zap.String("badge_id", badgeID))
	return true, nil
}

func (s *Service) GetBadgeDetails(badgeID string) *domain.Badge {
	return domain.LookupBadge(badgeID)
}

func (s *Service) ListEarned(ctx context.Context, userID string) ([]domain.EarnedBadgeDetails, error) {
	earned, err := s.repo.ListEarned(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list earned badges", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	out := make([]domain.EarnedBadgeDetails, len(earned))
	for i, e := range earned {
		out[i] = domain.EarnedBadgeDetails{EarnedBadge: e, Badge: s.GetBadgeDetails(e.BadgeID)}
	}
	return out, nil
}
