package proposalservice

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

type UserRepo interface {
	GetTx(ctx context.Context, tx docstore.Getter, userID string) (*domain.UserAccount, error)
}

type ProposalRepo interface {
	Get(ctx context.Context, proposalID string) (*domain.Proposal, error)
	GetTx(ctx context.Context, tx docstore.Getter, proposalID string) (*domain.Proposal, error)
	CreateTx(ctx context.Context, tx docstore.Tx, proposal *domain.Proposal) error
	UpdateTx(ctx context.Context, tx docstore.Tx, proposal *domain.Proposal) error
	ListByReceiver(ctx context.Context, userID string, statuses ...domain.ProposalStatus) ([]domain.Proposal, error)
	ListBySender(ctx context.Context, userID string) ([]domain.Proposal, error)
}

type ChatRepo interface {
	CreateTx(ctx context.Context, tx docstore.Tx, chat *domain.Chat) error
	AddMessageTx(ctx context.Context, tx docstore.Tx, chatID string, msg *domain.Message) error
}

type Notifier interface {
	Notify(ctx context.Context, userID, message string, kind domain.NotificationKind, linkID string)
}

type Service struct {
	tx        Transactor
	users     UserRepo
	proposals ProposalRepo
	chats     ChatRepo
	notifier  Notifier
}

func New(tx Transactor, users UserRepo, proposals ProposalRepo, chats ChatRepo, notifier Notifier) *Service {
	return &Service{
		tx:        tx,
		users:     users,
		proposals: proposals,
		chats:     chats,
		notifier:  notifier,
	}
}

// receivedStatuses are the statuses a receiver still has to act on or follow up.
var receivedStatuses = []domain.ProposalStatus{
	domain.ProposalPending,
	domain.ProposalAccepted,
	domain.ProposalScheduled,
}

type CreateInput struct {
	SenderID       string
	ReceiverID     string
	SkillOffered   string
	SkillRequested string
	Message        string
}

func (in CreateInput) validate() error {
	fields := []struct{ name, value string }{
		{"sender", in.SenderID},
		{"receiver", in.ReceiverID},
		{"skill offered", in.SkillOffered},
		{"skill requested", in.SkillRequested},
		{"message", in.Message},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return domain.NewValidationError("%s is required", f.name)
		}
	}
	if in.SenderID == in.ReceiverID {
		return domain.NewValidationError("you cannot send a proposal to yourself")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Proposal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	proposal := &domain.Proposal{
		ID:             uuid.NewString(),
		SenderID:       in.SenderID,
		ReceiverID:     in.ReceiverID,
		SkillOffered:   strings.TrimSpace(in.SkillOffered),
		SkillRequested: strings.TrimSpace(in.SkillRequested),
		Message:        strings.TrimSpace(in.Message),
		Status:         domain.ProposalPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.tx.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		for _, userID := range []string{in.SenderID, in.ReceiverID} {
			user, err := s.users.GetTx(ctx, tx, userID)
			if err != nil {
				return err
			}
			if user == nil {
				return domain.NewNotFoundError("user", userID)
			}
		}
		return s.proposals.CreateTx(ctx, tx, proposal)
	})
	if err != nil {
		zap.L().Debug("failed to create proposal", zap.String("sender_id", in.SenderID), zap.Error(err))
		return nil, err
	}

	s.notifier.Notify(ctx, proposal.ReceiverID, "You received a new trade proposal", domain.NotificationProposal, proposal.ID)
	return proposal, nil
}

// transition loads the proposal, lets check authorize the requester and moves it to next.
func (s *Service) transition(ctx context.Context, proposalID string, next domain.ProposalStatus, check func(p *domain.Proposal) error) (*domain.Proposal, error) {
	var updated *domain.Proposal
	err := s.tx.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		p, err := s.proposals.GetTx(ctx, tx, proposalID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NewNotFoundError("proposal", proposalID)
		}
		if err := check(p); err != nil {
			return err
		}
		if err := p.Transition(next); err != nil {
			return err
		}
		p.UpdatedAt = time.Now().UTC()
		if err := s.proposals.UpdateTx(ctx, tx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) Cancel(ctx context.Context, proposalID, requesterID string) (*domain.Proposal, error) {
	return s.transition(ctx, proposalID, domain.ProposalCanceled, func(p *domain.Proposal) error {
		if p.SenderID != requesterID {
			return domain.NewAuthorizationError("only the sender can cancel this proposal")
		}
		return nil
	})
}

func (s *Service) Reject(ctx context.Context, proposalID, requesterID string) (*domain.Proposal, error) {
	p, err := s.transition(ctx, proposalID, domain.ProposalRejected, func(p *domain.Proposal) error {
		if p.ReceiverID != requesterID {
			return domain.NewAuthorizationError("only the receiver can reject this proposal")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, p.SenderID, "Your trade proposal was rejected", domain.NotificationProposal, p.ID)
	return p, nil
}

func (s *Service) Schedule(ctx context.Context, proposalID, requesterID string) (*domain.Proposal, error) {
	p, err := s.transition(ctx, proposalID, domain.ProposalScheduled, func(p *domain.Proposal) error {
		if !p.IsParty(requesterID) {
			return domain.NewAuthorizationError("only a participant can schedule this trade")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, p.Counterpart(requesterID), "Your trade was scheduled", domain.NotificationProposal, p.ID)
	return p, nil
}

// Accept moves a pending proposal to accepted and opens its chat in the same
// transaction. The chat id is the proposal id and its first message is the
// proposal message.
func (s *Service) Accept(ctx context.Context, proposalID, acceptorID string) (*domain.Proposal, error) {
	var accepted *domain.Proposal
	err := s.tx.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		p, err := s.proposals.GetTx(ctx, tx, proposalID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NewNotFoundError("proposal", proposalID)
		}
		if p.ReceiverID != acceptorID {
			return domain.NewAuthorizationError("only the receiver can accept this proposal")
		}
		if err := p.Transition(domain.ProposalAccepted); err != nil {
			return err
		}

		now := time.Now().UTC()
		chat := &domain.Chat{
			ID:           p.ID,
			Participants: []string{p.SenderID, p.ReceiverID},
			CreatedAt:    now,
			UpdatedAt:    now,
			LastMessage:  &domain.LastMessage{Text: p.Message, SenderID: p.SenderID, CreatedAt: now},
		}
		if err := s.chats.CreateTx(ctx, tx, chat); err != nil {
			return err
		}
		first := &domain.Message{ID: uuid.NewString(), SenderID: p.SenderID, Text: p.Message, CreatedAt: now}
		if err := s.chats.AddMessageTx(ctx, tx, chat.ID, first); err != nil {
			return err
		}

		p.ChatID = chat.ID
		p.UpdatedAt = now
		if err := s.proposals.UpdateTx(ctx, tx, p); err != nil {
			return err
		}
		accepted = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, accepted.SenderID, "Your trade proposal was accepted", domain.NotificationProposal, accepted.ID)
	return accepted, nil
}

// Get returns the proposal to one of its parties.
func (s *Service) Get(ctx context.Context, proposalID, requesterID string) (*domain.Proposal, error) {
	p, err := s.proposals.Get(ctx, proposalID)
	if err != nil {
		zap.L().Error("failed to get proposal", zap.String("proposal_id", proposalID), zap.Error(err))
		return nil, err
	}
	if p == nil {
		return nil, domain.NewNotFoundError("proposal", proposalID)
	}
	if !p.IsParty(requesterID) {
		return nil, domain.NewAuthorizationError("you are not a party of this proposal")
	}
	return p, nil
}

func (s *Service) ListReceived(ctx context.Context, userID string) ([]domain.Proposal, error) {
	proposals, err := s.proposals.ListByReceiver(ctx, userID, receivedStatuses...)
	if err != nil {
		zap.L().Error("failed to list received proposals", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return proposals, nil
}

func (s *Service) ListSent(ctx context.Context, userID string) ([]domain.Proposal, error) {
	proposals, err := s.proposals.ListBySender(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list sent proposals", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return proposals, nil
}
