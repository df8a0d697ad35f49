package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// sendBufferSize bounds the per-session outbound queue. A session that
	// cannot drain this many frames is considered dead.
	sendBufferSize = 64

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second
)

// Session is one connected websocket actor. Writes go through a buffered
// channel drained by a single writer goroutine, so Send is safe to call from
// the dispatch loop and from broadcasts without interleaving frames.
type Session struct {
	id     string
	conn   *websocket.Conn
	out    chan []byte
	logger *slog.Logger

	closeOnce sync.Once
	closed    chan struct{}
}

// NewSession wraps an upgraded connection and starts its writer.
func NewSession(conn *websocket.Conn, logger *slog.Logger) *Session {
	s := &Session{
		id:     uuid.NewString(),
		conn:   conn,
		out:    make(chan []byte, sendBufferSize),
		closed: make(chan struct{}),
		logger: logger.With("component", "ws_session"),
	}

	go s.writePump()
	return s
}

// ID identifies the session for logging.
func (s *Session) ID() string {
	return s.id
}

// Send serializes data into an {event, data} envelope and queues it. Returns
// an error when the session is closed or its queue is full; the caller treats
// both as a dead session.
func (s *Session) Send(event string, data any) error {
	frame, err := json.Marshal(outEnvelope{Event: event, Data: toWire(data)})
	if err != nil {
		return err
	}

	select {
	case <-s.closed:
		return websocket.ErrCloseSent
	case s.out <- frame:
		return nil
	default:
		// A full queue means the client stopped reading. Drop the session
		// rather than block the dispatcher.
		s.Close()
		return websocket.ErrCloseSent
	}
}

// Close shuts the session down. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
		_ = s.conn.Close()
	})
}

// Closed reports session shutdown to the gateway's read loop.
func (s *Session) Closed() <-chan struct{} {
	return s.closed
}

func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.Close()
	}()

	for {
		select {
		case <-s.closed:
			return
		case frame := <-s.out:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				s.logger.Debug("Write failed, dropping session",
					"sessionId", s.id, "error", err)
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
