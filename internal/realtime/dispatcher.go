package realtime

import "log/slog"

// Dispatcher pushes events to an account's live connections. Delivery is
// at-most-once: no queue, no retry, no persistence. The business state a
// notification describes has already committed before Notify is called.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher backed by the given registry.
func NewDispatcher(registry *Registry, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, logger: logger}
}

// Notify pushes (event, payload) to every live connection for the account,
// independently: one dead or slow connection never blocks the others. It
// reports whether any delivery was attempted; a false return means the event
// was dropped because nobody was listening.
func (d *Dispatcher) Notify(accountID, event string, payload any) bool {
	if accountID == "" {
		return false
	}

	conns := d.registry.LiveConns(accountID)
	if len(conns) == 0 {
		return false
	}

	for _, c := range conns {
		if err := c.Send(event, payload); err != nil && d.logger != nil {
			d.logger.Debug("event push failed",
				"account_id", accountID,
				"event", event,
				"error", err,
			)
		}
	}

	return true
}
