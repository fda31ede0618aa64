package userservice

import (
	"context"
	"net/mail"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/skillswap/internal/docstore"
	"github.com/GlebRadaev/skillswap/internal/domain"
)

type Transactor interface {
	RunTransaction(ctx context.Context, fn docstore.TxFunc) error
}

type UserRepo interface {
	Get(ctx context.Context, userID string) (*domain.UserAccount, error)
	GetTx(ctx context.Context, tx docstore.Getter, userID string) (*domain.UserAccount, error)
	CreateTx(ctx context.Context, tx docstore.Tx, user *domain.UserAccount) error
	UpdateTx(ctx context.Context, tx docstore.Tx, user *domain.UserAccount) error
}

type Service struct {
	tx             Transactor
	users          UserRepo
	initialBalance decimal.Decimal
}

func New(tx Transactor, users UserRepo, initialBalance decimal.Decimal) *Service {
	return &Service{
		tx:             tx,
		users:          users,
		initialBalance: initialBalance,
	}
}

type CreateInput struct {
	UserID string
	Email  string
	Name   string
	Bio    string
	Skills []string
}

// ProfileUpdate holds the editable profile fields; nil leaves a field unchanged.
type ProfileUpdate struct {
	Name      *string
	Bio       *string
	Skills    []string
	AvatarURL *string
}

// NormalizeSkills trims, lower-cases and de-duplicates skills, sorted for stable output.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (s *Service) CreateProfile(ctx context.Context, in CreateInput) (*domain.UserAccount, error) {
	name := strings.TrimSpace(in.Name)
	if in.UserID == "" {
		return nil, domain.NewValidationError("user id is required")
	}
	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, domain.NewValidationError("email %q is invalid", in.Email)
	}

	user := &domain.UserAccount{
		ID:            in.UserID,
		Email:         strings.TrimSpace(in.Email),
		Name:          name,
		NameLowercase: strings.ToLower(name),
		Bio:           strings.TrimSpace(in.Bio),
		Skills:        NormalizeSkills(in.Skills),
		TimeBalance:   s.initialBalance,
		CreatedAt:     time.Now().UTC(),
	}
	err := s.tx.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		existing, err := s.users.GetTx(ctx, tx, in.UserID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.NewValidationError("profile %s already exists", in.UserID)
		}
		return s.users.CreateTx(ctx, tx, user)
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("profile created", zap.String("user_id", user.ID))
	return user, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.UserAccount, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user", userID)
	}
	return user, nil
}

// UpdateProfile edits name, bio, skills and avatar only. Balance and trade
// counters are carried over from the same transactional read.
func (s *Service) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*domain.UserAccount, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, domain.NewValidationError("name cannot be empty")
	}

	var updated *domain.UserAccount
	err := s.tx.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		user, err := s.users.GetTx(ctx, tx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.NewNotFoundError("user", userID)
		}
		if upd.Name != nil {
			user.Name = strings.TrimSpace(*upd.Name)
			user.NameLowercase = strings.ToLower(user.Name)
		}
		if upd.Bio != nil {
			user.Bio = strings.TrimSpace(*upd.Bio)
		}
		if upd.Skills != nil {
			user.Skills = NormalizeSkills(upd.Skills)
		}
		if upd.AvatarURL != nil {
			user.AvatarURL = strings.TrimSpace(*upd.AvatarURL)
		}
		if err := s.users.UpdateTx(ctx, tx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
