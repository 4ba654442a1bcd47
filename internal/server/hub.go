package server

import (
	"sync"
)

// Hub tracks live sessions.
type Hub struct {
	mu       sync.RWMutex
	sessions map[*Session]bool
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{
		sessions: make(map[*Session]bool),
	}
}

// Register adds a session.
func (h *Hub) Register(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s] = true
}

// Unregister removes a session and closes its send queue.
func (h *Hub) Unregister(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[s]; ok {
		delete(h.sessions, s)
		s.closeSend()
	}
}

// ClientCount returns the number of live sessions.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// CloseAll disconnects every session.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.sessions {
		s.conn.Close()
	}
}
