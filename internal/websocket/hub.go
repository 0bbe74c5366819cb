package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/minhngdev/lingopad/internal/model"
)

// Event is a real-time chat notification pushed to one user's open
// connections.
type Event struct {
	Type     string                      `json:"type"`
	Messages []model.ConversationMessage `json:"messages,omitempty"`
}

// NewExchangeEvent wraps freshly stored conversation turns for delivery.
func NewExchangeEvent(messages []model.ConversationMessage) Event {
	return Event{Type: "chat_exchange", Messages: messages}
}

// Hub maintains the set of active WebSocket clients keyed by user and
// delivers events to all connections a user has open.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*Client]struct{}
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[int64]map[*Client]struct{}),
		logger:  logger,
	}
}

// Register adds a client to the hub under its user id.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*Client]struct{})
	}
	h.clients[c.userID][c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes a client from the hub and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if conns, ok := h.clients[c.userID]; ok {
		if _, ok := conns[c]; ok {
			delete(conns, c)
			close(c.send)
		}
		if len(conns) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()
}

// Send delivers an event to every connection the user has open. Connections
// with a full buffer are skipped rather than blocked on.
func (h *Hub) Send(userID int64, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("marshal event", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[userID] {
		select {
		case c.send <- data:
		default:
			// Client buffer full, drop rather than block the hub
		}
	}
}

// ClientCount returns the number of connections across all users.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, conns := range h.clients {
		n += len(conns)
	}
	return n
}
