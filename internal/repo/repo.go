package repo

import (
	"github.com/GlebRadaev/skillswap/internal/docstore"
	badgerepo "github.com/GlebRadaev/skillswap/internal/repo/badge-repo"
	chatrepo "github.com/GlebRadaev/skillswap/internal/repo/chat-repo"
	notificationrepo "github.com/GlebRadaev/skillswap/internal/repo/notification-repo"
	proposalrepo "github.com/GlebRadaev/skillswap/internal/repo/proposal-repo"
	reviewrepo "github.com/GlebRadaev/skillswap/internal/repo/review-repo"
	userrepo "github.com/GlebRadaev/skillswap/internal/repo/user-repo"
)

type Repositories struct {
	Store         docstore.Store
	Users         *userrepo.Repository
	Proposals     *proposalrepo.Repository
	Chats         *chatrepo.Repository
	Badges        *badgerepo.Repository
	Reviews       *reviewrepo.Repository
	Notifications *notificationrepo.Repository
}

func New(store docstore.Store) *Repositories {
	return &Repositories{
		Store:         store,
		Users:         userrepo.New(store),
		Proposals:     proposalrepo.New(store),
		Chats:         chatrepo.New(store),
		Badges:        badgerepo.New(store),
		Reviews:       reviewrepo.New(store),
		Notifications: notificationrepo.New(store),
	}
}
