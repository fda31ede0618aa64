package notifier

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/GlebRadaev/skillswap/internal/domain"
)

// Hub tracks the websocket clients of every connected user.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(userID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*Client]struct{})
	}
	h.clients[userID][client] = struct{}{}
}

func (h *Hub) Unregister(userID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		return
	}
	delete(h.clients[userID], client)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

// Send pushes n to every client of its user and returns how many took it.
// Clients with a full buffer are skipped.
func (h *Hub) Send(n domain.Notification) int {
	payload, err := json.Marshal(n)
	if err != nil {
		zap.L().Error("can't encode notification", zap.Error(err))
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	delivered := 0
	for client := range h.clients[n.UserID] {
		select {
		case client.send <- payload:
			delivered++
		default:
		}
	}
	return delivered
}

func (h *Hub) Connected(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}
