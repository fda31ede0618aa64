package chatrepo

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

func ref(chatID string) docstore.Ref {
	return docstore.Doc(docstore.Chats, chatID)
}

func meetingPointRef(chatID, meetingPointID string) docstore.Ref {
	return docstore.Doc(docstore.MeetingPoints(chatID), meetingPointID)
}

// Get returns nil, nil when the chat does not exist.
func (repo *Repository) Get(ctx context.Context, chatID string) (*domain.Chat, error) {
	return repo.GetTx(ctx, repo.store, chatID)
}

func (repo *Repository) GetTx(ctx context.Context, tx docstore.Getter, chatID string) (*domain.Chat, error) {
	chat, err := docstore.Load[domain.Chat](ctx, tx, ref(chatID))
	if err != nil {
		zap.L().Error("can't load chat", zap.String("chat_id", chatID), zap.Error(err))
		return nil, err
	}
	if chat == nil {
		return nil, nil
	}
	if err := chat.Validate(); err != nil {
		return nil, err
	}
	return chat, nil
}

func (repo *Repository) CreateTx(ctx context.Context, tx docstore.Tx, chat *domain.Chat) error {
	if err := chat.Validate(); err != nil {
		return err
	}
	return tx.Set(ctx, ref(chat.ID), chat)
}

func (repo *Repository) UpdateTx(ctx context.Context, tx docstore.Tx, chat *domain.Chat) error {
	if err := chat.Validate(); err != nil {
		return err
	}
	return tx.Update(ctx, ref(chat.ID), chat)
}

// ListByParticipant returns the user's chats, most recent activity first.
func (repo *Repository) ListByParticipant(ctx context.Context, userID string) ([]domain.Chat, error) {
	snaps, err := repo.store.Query(ctx, docstore.Chats, docstore.Where("participants", docstore.OpArrayContains, userID))
	if err != nil {
		zap.L().Error("can't query chats", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	chats, err := docstore.DecodeAll[domain.Chat](snaps)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(chats, func(i, j int) bool {
		return chats[i].UpdatedAt.After(chats[j].UpdatedAt)
	})
	return chats, nil
}

func (repo *Repository) AddMessageTx(ctx context.Context, tx docstore.Tx, chatID string, msg *domain.Message) error {
	return tx.Set(ctx, docstore.Doc(docstore.Messages(chatID), msg.ID), msg)
}

// ListMessages returns the chat history, oldest first.
func (repo *Repository) ListMessages(ctx context.Context, chatID string) ([]domain.Message, error) {
	snaps, err := repo.store.Query(ctx, docstore.Messages(chatID))
	if err != nil {
		zap.L().Error("can't query messages", zap.String("chat_id", chatID), zap.Error(err))
		return nil, err
	}
	messages, err := docstore.DecodeAll[domain.Message](snaps)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

func (repo *Repository) GetMeetingPointTx(ctx context.Context, tx docstore.Getter, chatID, meetingPointID string) (*domain.MeetingPoint, error) {
	mp, err := docstore.Load[domain.MeetingPoint](ctx, tx, meetingPointRef(chatID, meetingPointID))
	if err != nil {
		zap.L().Error("can't load meeting point", zap.String("chat_id", chatID), zap.Error(err))
		return nil, err
	}
	return mp, nil
}

func (repo *Repository) AddMeetingPointTx(ctx context.Context, tx docstore.Tx, mp *domain.MeetingPoint) error {
	return tx.Set(ctx, meetingPointRef(mp.ChatID, mp.ID), mp)
}

func (repo *Repository) UpdateMeetingPointTx(ctx context.Context, tx docstore.Tx, mp *domain.MeetingPoint) error {
	return tx.Update(ctx, meetingPointRef(mp.ChatID, mp.ID), mp)
}

// ListMeetingPoints returns the chat's meeting points, newest first.
func (repo *Repository) ListMeetingPoints(ctx context.Context, chatID string) ([]domain.MeetingPoint, error) {
	snaps, err := repo.store.Query(ctx, docstore.MeetingPoints(chatID))
	if err != nil {
		zap.L().Error("can't query meeting points", zap.String("chat_id", chatID), zap.Error(err))
		return nil, err
	}
	points, err := docstore.DecodeAll[domain.MeetingPoint](snaps)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].CreatedAt.After(points[j].CreatedAt)
	})
	return points, nil
}
