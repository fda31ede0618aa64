package userrepo

import (
	"context"

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

func ref(userID string) docstore.Ref {
	return docstore.Doc(docstore.Users, userID)
}

// Get returns nil, nil when the user does not exist.
func (repo *Repository) Get(ctx context.Context, userID string) (*domain.UserAccount, error) {
	return repo.GetTx(ctx, repo.store, userID)
}

func (repo *Repository) GetTx(ctx context.Context, tx docstore.Getter, userID string) (*domain.UserAccount, error) {
	user, err := docstore.Load[domain.UserAccount](ctx, tx, ref(userID))
	if err != nil {
		zap.L().Error("can't load user", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if err := user.Validate(); err != nil {
		zap.L().Error("stored user is invalid", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) CreateTx(ctx context.Context, tx docstore.Tx, user *domain.UserAccount) error {
	if err := user.Validate(); err != nil {
		return err
	}
	return tx.Set(ctx, ref(user.ID), user)
}

func (repo *Repository) UpdateTx(ctx context.Context, tx docstore.Tx, user *domain.UserAccount) error {
	if err := user.Validate(); err != nil {
		return err
	}
	return tx.Update(ctx, ref(user.ID), user)
}
