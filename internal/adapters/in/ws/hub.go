package ws

import (
	"log/slog"
	"sync"

	"orderboard/internal/core/ports"
)

// Hub owns the subscriber set and implements the broadcast fanout. Sessions
// subscribe on connect and are dropped on disconnect; a failed send drops the
// session immediately instead of stalling the others.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]ports.Session
	logger   *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		sessions: make(map[string]ports.Session),
		logger:   logger.With("component", "ws_hub"),
	}
}

// Subscribe adds a session to the fanout set.
func (h *Hub) Subscribe(s ports.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s.ID()] = s

	h.logger.Info("Session subscribed", "sessionId", s.ID(), "sessions", len(h.sessions))
}

// Unsubscribe removes a session from the fanout set.
func (h *Hub) Unsubscribe(s ports.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, s.ID())

	h.logger.Info("Session unsubscribed", "sessionId", s.ID(), "sessions", len(h.sessions))
}

// Broadcast pushes an event to every connected session. Send failures only
// cost the failing session its connection; the fanout continues.
func (h *Hub) Broadcast(event string, data any) {
	h.mu.RLock()
	targets := make([]ports.Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	for _, s := range targets {
		if err := s.Send(event, data); err != nil {
			h.logger.Debug("Broadcast to session failed",
				"sessionId", s.ID(), "event", event, "error", err)
		}
	}
}
