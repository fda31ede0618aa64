package ledgerservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/skillswap/internal/domain"
)

type UserRepo interface {
	Get(ctx context.Context, userID string) (*domain.UserAccount, error)
}

type Service struct {
	users UserRepo
}

func New(users UserRepo) *Service {
	return &Service{
		users: users,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.String("user_id", userID), zap.Error(err))
		return decimal.Zero, err
	}
	if user == nil {
		return decimal.Zero, domain.NewNotFoundError("user", userID)
	}
	return user.TimeBalance, nil
}

// ApplyTransfer moves hours from the student to the teacher. The sum of both
// balances is unchanged and the student balance never drops below zero.
func ApplyTransfer(studentBalance, teacherBalance, hours decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if !hours.IsPositive() {
		return studentBalance, teacherBalance, domain.NewValidationError("hours must be greater than zero")
	}
	if studentBalance.LessThan(hours) {
		return studentBalance, teacherBalance, &domain.InsufficientBalanceError{Balance: studentBalance, Hours: hours}
	}
	return studentBalance.Sub(hours), teacherBalance.Add(hours), nil
}
