package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Zander1983/WindAndSolar/pkg/assumptions"
	"github.com/Zander1983/WindAndSolar/pkg/spec"
)

const sendQueueSize = 64

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Session is one live recompute connection. Every accepted message replaces
// the session snapshot and bumps its revision; results for superseded
// revisions are dropped instead of sent.
type Session struct {
	id     string
	server *Server
	conn   *websocket.Conn
	send   chan []byte
	log    *zap.Logger

	mu       sync.Mutex
	snap     snapshot
	revision uint64
	closed   bool
}

func (s *Server) handleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	id := uuid.NewString()
	sess := &Session{
		id:     id,
		server: s,
		conn:   conn,
		send:   make(chan []byte, sendQueueSize),
		log:    s.log.With(zap.String("session", id)),
		snap:   emptySnapshot(s.cfg.Assumptions),
	}

	s.hub.Register(sess)
	go sess.writePump()
	sess.log.Info("session opened", zap.Int("sessions", s.hub.ClientCount()))

	sess.enqueue(TypeSessionReady, SessionReadyPayload{
		SessionID:   id,
		Assumptions: s.cfg.Assumptions,
		Versions:    assumptions.Versions(),
	})
	sess.recompute(0, sess.snap)

	sess.readPump()
}

func (sess *Session) readPump() {
	defer func() {
		sess.server.hub.Unregister(sess)
		sess.conn.Close()
		sess.log.Info("session closed")
	}()

	for {
		_, msg, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				sess.log.Warn("websocket read error", zap.Error(err))
			}
			return
		}
		sess.handleMessage(msg)
	}
}

func (sess *Session) writePump() {
	defer sess.conn.Close()
	for msg := range sess.send {
		if err := sess.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

func (sess *Session) handleMessage(msg []byte) {
	var env Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		sess.reject(fmt.Errorf("invalid message: %w", err))
		return
	}

	next, err := sess.apply(env)
	if err != nil {
		sess.reject(err)
		return
	}

	sess.mu.Lock()
	sess.revision++
	sess.snap = next
	rev := sess.revision
	sess.mu.Unlock()

	sess.log.Debug("snapshot replaced", zap.String("type", env.Type), zap.Uint64("revision", rev))
	go sess.recompute(rev, next)
}

// apply builds the snapshot that results from env without touching the
// session.
func (sess *Session) apply(env Envelope) (snapshot, error) {
	sess.mu.Lock()
	next := sess.snap
	sess.mu.Unlock()

	switch env.Type {
	case TypeInputsUpdate:
		var p InputsUpdatePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return snapshot{}, fmt.Errorf("invalid %s payload: %w", env.Type, err)
		}
		next.Inputs = p.Inputs

	case TypeParametersUpdate:
		var p ParametersUpdatePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return snapshot{}, fmt.Errorf("invalid %s payload: %w", env.Type, err)
		}
		params := spec.DefaultParameters()
		if len(p.Parameters) > 0 {
			if err := json.Unmarshal(p.Parameters, &params); err != nil {
				return snapshot{}, fmt.Errorf("invalid parameters: %w", err)
			}
		}
		next.Parameters = params

	case TypeAssumptionsSet:
		var p AssumptionsSetPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return snapshot{}, fmt.Errorf("invalid %s payload: %w", env.Type, err)
		}
		if _, err := assumptions.Lookup(p.Version); err != nil {
			return snapshot{}, err
		}
		next.Assumptions = p.Version

	case TypePresetSelect:
		var p PresetSelectPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return snapshot{}, fmt.Errorf("invalid %s payload: %w", env.Type, err)
		}
		sc, err := sess.server.presets.Get(p.Name)
		if err != nil {
			return snapshot{}, err
		}
		next.Inputs = sc.Inputs
		if p.WithParameters {
			next.Parameters = sc.Parameters
		}

	case TypeSessionReset:
		next = emptySnapshot(sess.server.cfg.Assumptions)

	default:
		return snapshot{}, fmt.Errorf("unknown message type %q", env.Type)
	}
	return next, nil
}

// recompute sizes snap and sends the result unless a newer revision has
// replaced it in the meantime.
func (sess *Session) recompute(rev uint64, snap snapshot) {
	out, err := sess.server.sizer.size(snap)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if rev != sess.revision {
		sess.log.Debug("dropping stale result", zap.Uint64("revision", rev), zap.Uint64("current", sess.revision))
		return
	}
	if err != nil {
		sess.enqueueLocked(TypeError, ErrorPayload{Message: err.Error(), Revision: rev})
		return
	}
	sess.enqueueLocked(TypeResult, ResultPayload{Revision: rev, outcome: out})
}

func (sess *Session) reject(err error) {
	sess.log.Debug("message rejected", zap.Error(err))
	sess.mu.Lock()
	rev := sess.revision
	sess.mu.Unlock()
	sess.enqueue(TypeError, ErrorPayload{Message: err.Error(), Revision: rev})
}

func (sess *Session) enqueue(msgType string, payload any) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.enqueueLocked(msgType, payload)
}

func (sess *Session) enqueueLocked(msgType string, payload any) {
	if sess.closed {
		return
	}
	msg, err := NewEnvelope(msgType, payload)
	if err != nil {
		sess.log.Error("encoding message", zap.String("type", msgType), zap.Error(err))
		return
	}
	select {
	case sess.send <- msg:
	default:
		sess.log.Warn("send queue full, dropping message", zap.String("type", msgType))
	}
}

func (sess *Session) closeSend() {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if !sess.closed {
		sess.closed = true
		close(sess.send)
	}
}
