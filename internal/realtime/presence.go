// Package realtime tracks live connections per account and delivers
// best-effort event pushes to them. Presence is process-local and ephemeral:
// it starts empty, is never persisted, and is not a source of truth for any
// business decision.
package realtime

import "sync"

// Conn is the minimal surface the registry needs from a live connection.
// Connections are owned by the transport layer; the registry only holds a
// reference. Send must not block on a slow or dead peer.
type Conn interface {
	Send(event string, payload any) error
}

// Registry maps account IDs to their live connections. An account may hold
// several connections at once (multiple tabs, devices).
type Registry struct {
	mu    sync.RWMutex
	conns map[string]map[Conn]struct{}
}

// NewRegistry creates an empty presence registry.
func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]map[Conn]struct{})}
}

// Register adds a connection to the account's live set. No-op on an empty
// account ID.
func (r *Registry) Register(accountID string, c Conn) {
	if accountID == "" || c == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.conns[accountID]
	if !ok {
		set = make(map[Conn]struct{})
		r.conns[accountID] = set
	}
	set[c] = struct{}{}
}

// Deregister removes a connection from the account's live set, pruning the
// entry entirely once the set is empty.
func (r *Registry) Deregister(accountID string, c Conn) {
	if accountID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.conns[accountID]
	if !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(r.conns, accountID)
	}
}

// LiveConns returns a snapshot of the account's live connections. The
// returned slice is the caller's to keep; later Register/Deregister calls
// don't affect it.
func (r *Registry) LiveConns(accountID string) []Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.conns[accountID]
	if len(set) == 0 {
		return nil
	}
	out := make([]Conn, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}

// Accounts returns the number of accounts with at least one live connection.
func (r *Registry) Accounts() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
