package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	sseBufferSize     = 16
	heartbeatInterval = 30 * time.Second
	sseContentType    = "text/event-stream"
)

var errConnSaturated = errors.New("connection buffer full")

// sseConn is a live server-sent-events connection handle. Send never blocks:
// events for a saturated peer are dropped, which matches the at-most-once
// delivery model.
type sseConn struct {
	events chan sseEvent
}

type sseEvent struct {
	name string
	data []byte
}

func newSSEConn() *sseConn {
	return &sseConn{events: make(chan sseEvent, sseBufferSize)}
}

// Send queues an event for the connection's write loop.
func (c *sseConn) Send(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding event payload: %w", err)
	}

	select {
	case c.events <- sseEvent{name: event, data: data}:
		return nil
	default:
		return errConnSaturated
	}
}

// handleEvents streams events to the authenticated account over SSE. The
// connection is registered in the presence registry for the lifetime of the
// request and deregistered on any disconnect.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeMessage(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	accountID, _ := AccountFromContext(r.Context())

	w.Header().Set("Content-Type", sseContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	conn := newSSEConn()
	s.registry.Register(accountID, conn)
	defer s.registry.Deregister(accountID, conn)

	if s.logger != nil {
		s.logger.Debug("event stream opened", "account_id", accountID)
	}

	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			if s.logger != nil {
				s.logger.Debug("event stream closed", "account_id", accountID)
			}
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case ev := <-conn.events:
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.name, ev.data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
