package reviewrepo

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

func ref(reviewID string) docstore.Ref {
	return docstore.Doc(docstore.Reviews, reviewID)
}

func (repo *Repository) GetTx(ctx context.Context, tx docstore.Getter, reviewID string) (*domain.Review, error) {
	review, err := docstore.Load[domain.Review](ctx, tx, ref(reviewID))
	if err != nil {
		zap.L().Error("can't load review", zap.String("review_id", reviewID), zap.Error(err))
		return nil, err
	}
	return review, nil
}

func (repo *Repository) CreateTx(ctx context.Context, tx docstore.Tx, review *domain.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}
	return tx.Set(ctx, ref(review.ID), review)
}

// ListByReviewee returns reviews written about userID, newest first.
func (repo *Repository) ListByReviewee(ctx context.Context, userID string) ([]domain.Review, error) {
	snaps, err := repo.store.Query(ctx, docstore.Reviews, docstore.Where("revieweeId", docstore.OpEqual, userID))
	if err != nil {
		zap.L().Error("can't query reviews", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	reviews, err := docstore.DecodeAll[domain.Review](snaps)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}
