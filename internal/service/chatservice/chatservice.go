package chatservice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/skillswap/internal/docstore"
	"github.com/GlebRadaev/skillswap/internal/domain"
)

type Transactor interface {
	RunTransaction(ctx context.Context, fn docstore.TxFunc) error
}

type ChatRepo interface {
	Get(ctx context.Context, chatID string) (*domain.Chat, error)
	GetTx(ctx context.Context, tx docstore.Getter, chatID string) (*domain.Chat, error)
	UpdateTx(ctx context.Context, tx docstore.Tx, chat *domain.Chat) error
	ListByParticipant(ctx context.Context, userID string) ([]domain.Chat, error)
	AddMessageTx(ctx context.Context, tx docstore.Tx, chatID string, msg *domain.Message) error
	ListMessages(ctx context.Context, chatID string) ([]domain.Message, error)
	GetMeetingPointTx(ctx context.Context, tx docstore.Getter, chatID, meetingPointID string) (*domain.MeetingPoint, error)
	AddMeetingPointTx(ctx context.Context, tx docstore.Tx, mp *domain.MeetingPoint) error
	UpdateMeetingPointTx(ctx context.Context, tx docstore.Tx, mp *domain.MeetingPoint) error
	ListMeetingPoints(ctx context.Context, chatID string) ([]domain.MeetingPoint, error)
}

type ProposalRepo interface {
	GetTx(ctx context.Context, tx docstore.Getter, proposalID string) (*domain.Proposal, error)
	UpdateTx(ctx context.Context, tx docstore.Tx, proposal *domain.Proposal) error
}

type Notifier interface {
	Notify(ctx context.Context, userID, message string, kind domain.NotificationKind, linkID string)
}

type Service struct {
	tx        Transactor
	chats     ChatRepo
	proposals ProposalRepo
	notifier  Notifier
}

func New(tx Transactor, chats ChatRepo, proposals ProposalRepo, notifier Notifier) *Service {
	return &Service{
		tx:        tx,
		chats:     chats,
		proposals: proposals,
		notifier:  notifier,
	}
}

func chatForParticipant(chat *domain.Chat, chatID, userID string) error {
	if chat == nil {
		return domain.NewNotFoundError("chat", chatID)
	}
	if !chat.HasParticipant(userID) {
		return domain.NewAuthorizationError("you are not a participant of this chat")
	}
	return nil
}

// SendMessage stores the message and refreshes the chat preview in one transaction.
func (s *Service) SendMessage(ctx context.Context, chatID, senderID, text string) (*domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError("message text is required")
	}

	var (
		msg       *domain.Message
		recipient string
	)
	err := s.tx.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		chat, err := s.chats.GetTx(ctx, tx, chatID)
		if err != nil {
			return err
		}
		if err := chatForParticipant(chat, chatID, senderID); err != nil {
			return err
		}

		now := time.Now().UTC()
		msg = &domain.Message{ID: uuid.NewString(), SenderID: senderID, Text: text, CreatedAt: now}
		chat.LastMessage = &domain.LastMessage{Text: text, SenderID: senderID, CreatedAt: now}
		chat.UpdatedAt = now
		if err := s.chats.UpdateTx(ctx, tx, chat); err != nil {
			return err
		}
		recipient = chat.OtherParticipant(senderID)
		return s.chats.AddMessageTx(ctx, tx, chatID, msg)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, recipient, "You have a new message", domain.NotificationChat, chatID)
	return msg, nil
}

func (s *Service) ListMessages(ctx context.Context, chatID, requesterID string) ([]domain.Message, error) {
	chat, err := s.chats.Get(ctx, chatID)
	if err != nil {
		zap.L().Error("failed to get chat", zap.String("chat_id", chatID), zap.Error(err))
		return nil, err
	}
	if err := chatForParticipant(chat, chatID, requesterID); err != nil {
		return nil, err
	}
	return s.chats.ListMessages(ctx, chatID)
}

func (s *Service) ListChats(ctx context.Context, userID string) ([]domain.Chat, error) {
	chats, err := s.chats.ListByParticipant(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list chats", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return chats, nil
}

func (s *Service) SuggestMeetingPoint(ctx context.Context, chatID, senderID, location string, dateTime time.Time) (*domain.MeetingPoint, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, domain.NewValidationError("location is required")
	}
	if dateTime.IsZero() {
		return nil, domain.NewValidationError("date and time are required")
	}

	var (
		mp        *domain.MeetingPoint
		recipient string
	)
	err := s.tx.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		chat, err := s.chats.GetTx(ctx, tx, chatID)
		if err != nil {
			return err
		}
		if err := chatForParticipant(chat, chatID, senderID); err != nil {
			return err
		}
		mp = &domain.MeetingPoint{
			ID:        uuid.NewString(),
			ChatID:    chatID,
			SenderID:  senderID,
			Location:  location,
			DateTime:  dateTime.UTC(),
			Status:    domain.MeetingPointPending,
			CreatedAt: time.Now().UTC(),
		}
		recipient = chat.OtherParticipant(senderID)
		return s.chats.AddMeetingPointTx(ctx, tx, mp)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, recipient, "A meeting point was suggested", domain.NotificationChat, chatID)
	return mp, nil
}

// UpdateMeetingPointStatus answers a pending meeting point. Accepting it also
// schedules the chat's proposal when that proposal is still accepted.
func (s *Service) UpdateMeetingPointStatus(ctx context.Context, chatID, meetingPointID, requesterID string, status domain.MeetingPointStatus) (*domain.MeetingPoint, error) {
	if status != domain.MeetingPointAccepted && status != domain.MeetingPointRejected {
		return nil, domain.NewValidationError("status must be accepted or rejected")
	}

	var answered *domain.MeetingPoint
	err := s.tx.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		chat, err := s.chats.GetTx(ctx, tx, chatID)
		if err != nil {
			return err
		}
		mp, err := s.chats.GetMeetingPointTx(ctx, tx, chatID, meetingPointID)
		if err != nil {
			return err
		}
		proposal, err := s.proposals.GetTx(ctx, tx, chatID)
		if err != nil {
			return err
		}

		if err := chatForParticipant(chat, chatID, requesterID); err != nil {
			return err
		}
		if mp == nil {
			return domain.NewNotFoundError("meeting point", meetingPointID)
		}
		if mp.SenderID == requesterID {
			return domain.NewAuthorizationError("only the other participant can answer this meeting point")
		}
		if mp.Status != domain.MeetingPointPending {
			return domain.NewValidationError("meeting point was already %s", mp.Status)
		}

		mp.Status = status
		if err := s.chats.UpdateMeetingPointTx(ctx, tx, mp); err != nil {
			return err
		}
		if status == domain.MeetingPointAccepted && proposal != nil && proposal.Status == domain.ProposalAccepted {
			if err := proposal.Transition(domain.ProposalScheduled); err != nil {
				return err
			}
			proposal.UpdatedAt = time.Now().UTC()
			if err := s.proposals.UpdateTx(ctx, tx, proposal); err != nil {
				return err
			}
		}
		answered = mp
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, answered.SenderID, "Your meeting point was "+string(answered.Status), domain.NotificationChat, chatID)
	return answered, nil
}

func (s *Service) ListMeetingPoints(ctx context.Context, chatID, requesterID string) ([]domain.MeetingPoint, error) {
	chat, err := s.chats.Get(ctx, chatID)
	if err != nil {
		zap.L().Error("failed to get chat", zap.String("chat_id", chatID), zap.Error(err))
		return nil, err
	}
	if err := chatForParticipant(chat, chatID, requesterID); err != nil {
		return nil, err
	}
	return s.chats.ListMeetingPoints(ctx, chatID)
}
