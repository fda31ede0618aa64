package tradeservice

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/skillswap/internal/docstore"
	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/service/ledgerservice"
)

type Transactor interface {
	RunTransaction(ctx context.Context, fn docstore.TxFunc) error
}

type UserRepo interface {
	GetTx(ctx context.Context, tx docstore.Getter, userID string) (*domain.UserAccount, error)
	UpdateTx(ctx context.Context, tx docstore.Tx, user *domain.UserAccount) error
}

type ProposalRepo interface {
	GetTx(ctx context.Context, tx docstore.Getter, proposalID string) (*domain.Proposal, error)
	UpdateTx(ctx context.Context, tx docstore.Tx, proposal *domain.Proposal) error
}

type BadgeAwarder interface {
	EvaluateAndAward(ctx context.Context, tx docstore.Tx, userID string, counters domain.Counters) ([]string, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID, message string, kind domain.NotificationKind, linkID string)
}

type Service struct {
	tx        Transactor
	users     UserRepo
	proposals ProposalRepo
	badges    BadgeAwarder
	notifier  Notifier
}

func New(tx Transactor, users UserRepo, proposals ProposalRepo, badges BadgeAwarder, notifier Notifier) *Service {
	return &Service{
		tx:        tx,
		users:     users,
		proposals: proposals,
		badges:    badges,
		notifier:  notifier,
	}
}

// Receipt describes a committed completion.
type Receipt struct {
	ProposalID     string
	StudentID      string
	TeacherID      string
	Hours          decimal.Decimal
	StudentBalance decimal.Decimal
	TeacherBalance decimal.Decimal
	CompletedAt    time.Time
	StudentBadges  []string
	TeacherBadges  []string
}

// CompleteProposal moves hours of time credit from the student to the teacher,
// bumps both trade counters, marks the proposal completed and awards badges,
// all in one transaction. It is the only operation that changes balances.
func (s *Service) CompleteProposal(ctx context.Context, proposalID, studentID, teacherID string, hours float64) (*Receipt, error) {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return nil, domain.NewValidationError("hours must be a finite number greater than zero")
	}
	if studentID == "" || teacherID == "" {
		return nil, domain.NewValidationError("student and teacher are required")
	}
	if studentID == teacherID {
		return nil, domain.NewValidationError("student and teacher must be different users")
	}
	amount := decimal.NewFromFloat(hours)

	var receipt *Receipt
	err := s.tx.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		receipt = nil
		var (
			proposal         *domain.Proposal
			student, teacher *domain.UserAccount
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			proposal, err = s.proposals.GetTx(gctx, tx, proposalID)
			return err
		})
		g.Go(func() error {
			var err error
			student, err = s.users.GetTx(gctx, tx, studentID)
			return err
		})
		g.Go(func() error {
			var err error
			teacher, err = s.users.GetTx(gctx, tx, teacherID)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		if proposal == nil {
			return domain.NewNotFoundError("proposal", proposalID)
		}
		if student == nil {
			return domain.NewNotFoundError("user", studentID)
		}
		if teacher == nil {
			return domain.NewNotFoundError("user", teacherID)
		}
		if err := proposal.Transition(domain.ProposalCompleted); err != nil {
			return err
		}
		studentBalance, teacherBalance, err := ledgerservice.ApplyTransfer(student.TimeBalance, teacher.TimeBalance, amount)
		if err != nil {
			return err
		}
		if !proposal.IsParty(studentID) || !proposal.IsParty(teacherID) {
			return domain.NewAuthorizationError("student and teacher must be the parties of the proposal")
		}

		now := time.Now().UTC()
		student.TimeBalance = studentBalance
		student.CompletedTradesCount++
		teacher.TimeBalance = teacherBalance
		teacher.CompletedTradesCount++
		teacher.CompletedTradesAsTeacher++
		proposal.CompletedAt = &now
		proposal.UpdatedAt = now

		if err := s.users.UpdateTx(ctx, tx, student); err != nil {
			return err
		}
		if err := s.users.UpdateTx(ctx, tx, teacher); err != nil {
			return err
		}
		if err := s.proposals.UpdateTx(ctx, tx, proposal); err != nil {
			return err
		}
		studentBadges, err := s.badges.EvaluateAndAward(ctx, tx, studentID, student.Counters())
		if err != nil {
			return err
		}
		teacherBadges, err := s.badges.EvaluateAndAward(ctx, tx, teacherID, teacher.Counters())
		if err != nil {
			return err
		}

		receipt = &Receipt{
			ProposalID:     proposalID,
			StudentID:      studentID,
			TeacherID:      teacherID,
			Hours:          amount,
			StudentBalance: studentBalance,
			TeacherBalance: teacherBalance,
			CompletedAt:    now,
			StudentBadges:  studentBadges,
			TeacherBadges:  teacherBadges,
		}
		return nil
	})
	if err != nil {
		zap.L().Debug("trade completion failed", zap.String("proposal_id", proposalID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("trade completed",
		zap.String("proposal_id", proposalID),
		zap.String("hours", amount.String()),
	)
	msg := fmt.Sprintf("Trade completed: %s hours transferred", amount.String())
	s.notifier.Notify(ctx, studentID, msg, domain.NotificationProposal, proposalID)
	s.notifier.Notify(ctx, teacherID, msg, domain.NotificationProposal, proposalID)
	return receipt, nil
}
