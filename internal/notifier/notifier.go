package notifier

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/skillswap/internal/domain"
)

const persistTimeout = 5 * time.Second

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error)
}

type Pusher interface {
	Send(n domain.Notification) int
}

// Service records notifications and pushes them to connected clients. Delivery
// happens on the worker pool so callers never wait on it.
type Service struct {
	repo NotificationRepo
	hub  Pusher
	pool *WorkerPool
}

func New(repo NotificationRepo, hub Pusher, workers int) *Service {
	return &Service{
		repo: repo,
		hub:  hub,
		pool: NewWorkerPool(workers, workers*64),
	}
}

// Notify never fails the caller. Problems are logged and the notification is
// dropped.
func (s *Service) Notify(ctx context.Context, userID, message string, kind domain.NotificationKind, linkID string) {
	if userID == "" {
		return
	}
	n := &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Message:   message,
		Kind:      kind,
		LinkID:    linkID,
		CreatedAt: time.Now().UTC(),
	}
	err := s.pool.AddTask(ctx, func() error {
		return s.deliver(n)
	})
	if err != nil {
		zap.L().Warn("notification dropped",
			zap.String("user_id", userID),
			zap.String("type", string(kind)),
			zap.Error(err),
		)
	}
}

func (s *Service) deliver(n *domain.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	s.hub.Send(*n)
	return nil
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	n, err := s.repo.MarkRead(ctx, userID, notificationID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.NewNotFoundError("notification", notificationID)
	}
	return n, nil
}

// Close waits for queued notifications to be delivered.
func (s *Service) Close() {
	s.pool.Close()
}
