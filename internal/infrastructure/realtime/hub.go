// Package realtime pushes committed chat messages to the participants'
// open websocket connections.
package realtime

import (
	"encoding/json"
	"sync"

	"github.com/nhadat/marketplace/internal/application/chat/dto"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

const EventMessage = "message"

// Event is the envelope written to every connection.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub tracks connections per user. A user may hold several connections
// (tabs, devices); each receives every event addressed to that user.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*Client]struct{}
	logger  logger.Interface
}

func NewHub(log logger.Interface) *Hub {
	return &Hub{
		clients: make(map[uint]map[*Client]struct{}),
		logger:  log,
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.userID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}
	h.logger.Debugw("websocket client registered", "user_id", c.userID, "connections", len(set))
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.userID]
	if !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
}

// ConnectionCount returns the number of open connections for userID.
func (h *Hub) ConnectionCount(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// PublishMessage never blocks: a connection whose buffer is full misses the
// event and catches up from the message history.
func (h *Hub) PublishMessage(recipients []uint, msg *dto.MessageResponse) {
	payload, err := json.Marshal(Event{Type: EventMessage, Data: msg})
	if err != nil {
		h.logger.Errorw("failed to encode websocket event", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, userID := range recipients {
		for c := range h.clients[userID] {
			if !c.enqueue(payload) {
				h.logger.Warnw("websocket send buffer full, dropping event", "user_id", userID)
			}
		}
	}
}

// CloseAll disconnects every client. Used on shutdown.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	all := make([]*Client, 0)
	for _, set := range h.clients {
		for c := range set {
			all = append(all, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range all {
		c.Close()
	}
}
