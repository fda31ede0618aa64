package badgerepo

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/GlebRadaev/skillswap/internal/docstore"
	"github.com/GlebRadaev/skillswap/internal/domain"
)

type Repository struct {
	store docstore.Store
}

func New(store docstore.Store) *Repository {
	return &Repository{
		store: store,
	}
}

// AwardTx writes the earned badge through tx without checking for an existing one.
func (repo *Repository) AwardTx(ctx context.Context, tx docstore.Tx, userID string, earned *domain.EarnedBadge) error {
	return tx.Set(ctx, docstore.Doc(docstore.EarnedBadges(userID), earned.ID), earned)
}

func (repo *Repository) Create(ctx context.Context, userID string, earned *domain.EarnedBadge) error {
	if err := repo.store.Set(ctx, docstore.Doc(docstore.EarnedBadges(userID), earned.ID), earned); err != nil {
		zap.L().Error("can't save earned badge", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) FindEarned(ctx context.Context, userID, badgeID string) ([]domain.EarnedBadge, error) {
	snaps, err := repo.store.Query(ctx, docstore.EarnedBadges(userID), docstore.Where("badgeId", docstore.OpEqual, badgeID))
	if err != nil {
		zap.L().Error("can't query earned badges", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return docstore.DecodeAll[domain.EarnedBadge](snaps)
}

// ListEarned returns the user's badges in the order they were earned.
func (repo *Repository) ListEarned(ctx context.Context, userID string) ([]domain.EarnedBadge, error) {
	snaps, err := repo.store.Query(ctx, docstore.EarnedBadges(userID))
	if err != nil {
		zap.L().Error("can't query earned badges", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	earned, err := docstore.DecodeAll[domain.EarnedBadge](snaps)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(earned, func(i, j int) bool {
		return earned[i].EarnedAt.Before(earned[j].EarnedAt)
	})
	return earned, nil
}

// SeedCatalog stores the catalog entries under badges/{id}.
func (repo *Repository) SeedCatalog(ctx context.Context, badges []domain.Badge) error {
	for _, b := range badges {
		if err := repo.store.Set(ctx, docstore.Doc(docstore.Badges, b.ID), b); err != nil {
			zap.L().Error("can't seed badge", zap.String("badge_id", b.ID), zap.Error(err))
			return err
		}
	}
	return nil
}
