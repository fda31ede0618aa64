package notificationrepo

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

func ref(notificationID string) docstore.Ref {
	return docstore.Doc(docstore.Notifications, notificationID)
}

func (repo *Repository) Create(ctx context.Context, n *domain.Notification) error {
	if err := repo.store.Set(ctx, ref(n.ID), n); err != nil {
		zap.L().Error("can't save notification", zap.String("user_id", n.UserID), zap.Error(err))
		return err
	}
	return nil
}

// ListByUser returns the user's notifications, newest first.
func (repo *Repository) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	snaps, err := repo.store.Query(ctx, docstore.Notifications, docstore.Where("userId", docstore.OpEqual, userID))
	if err != nil {
		zap.L().Error("can't query notifications", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	notifications, err := docstore.DecodeAll[domain.Notification](snaps)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

// MarkRead flags the notification as read. It returns nil, nil when the
// notification does not exist or belongs to someone else.
func (repo *Repository) MarkRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	var marked *domain.Notification
	err := repo.store.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		marked = nil
		n, err := docstore.Load[domain.Notification](ctx, tx, ref(notificationID))
		if err != nil || n == nil || n.UserID != userID {
			return err
		}
		n.IsRead = true
		marked = n
		return tx.Update(ctx, ref(notificationID), n)
	})
	if err != nil {
		zap.L().Error("can't mark notification read", zap.String("notification_id", notificationID), zap.Error(err))
		return nil, err
	}
	return marked, nil
}
