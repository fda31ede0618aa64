package service

import (
	"github.com/GlebRadaev/skillswap/internal/config"
	"github.com/GlebRadaev/skillswap/internal/handlers/chats"
	"github.com/GlebRadaev/skillswap/internal/handlers/proposals"
	"github.com/GlebRadaev/skillswap/internal/handlers/reviews"
	"github.com/GlebRadaev/skillswap/internal/handlers/users"
	"github.com/GlebRadaev/skillswap/internal/notifier"
	"github.com/GlebRadaev/skillswap/internal/repo"
	"github.com/GlebRadaev/skillswap/internal/service/badgeservice"
	"github.com/GlebRadaev/skillswap/internal/service/chatservice"
	"github.com/GlebRadaev/skillswap/internal/service/ledgerservice"
	"github.com/GlebRadaev/skillswap/internal/service/proposalservice"
	"github.com/GlebRadaev/skillswap/internal/service/reviewservice"
	"github.com/GlebRadaev/skillswap/internal/service/tradeservice"
	"github.com/GlebRadaev/skillswap/internal/service/userservice"
)

type Services struct {
	UserService         users.ProfileService
	LedgerService       users.LedgerService
	BadgeService        users.BadgeService
	ReviewService       *reviewservice.Service
	ProposalService     proposals.Service
	TradeService        proposals.TradeService
	ChatService         chats.Service
	NotificationService *notifier.Service
	Hub                 *notifier.Hub
}

// compile-time checks that the review service serves both handler packages
var (
	_ users.ReviewService = (*reviewservice.Service)(nil)
	_ reviews.Service     = (*reviewservice.Service)(nil)
)

func New(repos *repo.Repositories, cfg *config.Config) *Services {
	hub := notifier.NewHub()
	notificationService := notifier.New(repos.Notifications, hub, cfg.NotifierWorkers)
	badgeService := badgeservice.New(repos.Badges, badgeservice.Thresholds{
		FirstTrade:    cfg.FirstTradeAt,
		MasterTeacher: cfg.MasterTeacherAt,
	})

	return &Services{
		UserService:         userservice.New(repos.Store, repos.Users, cfg.InitialBalance),
		LedgerService:       ledgerservice.New(repos.Users),
		BadgeService:        badgeService,
		ReviewService:       reviewservice.New(repos.Store, repos.Reviews, repos.Proposals, notificationService),
		ProposalService:     proposalservice.New(repos.Store, repos.Users, repos.Proposals, repos.Chats, notificationService),
		TradeService:        tradeservice.New(repos.Store, repos.Users, repos.Proposals, badgeService, notificationService),
		ChatService:         chatservice.New(repos.Store, repos.Chats, repos.Proposals, notificationService),
		NotificationService: notificationService,
		Hub:                 hub,
	}
}

// Close drains pending notifications.
func (s *Services) Close() {
	s.NotificationService.Close()
}
