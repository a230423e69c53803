// Package state derives the single externally observable SyncStatus
// from connectivity, queue depth and the outcome of the last sync pass.
//
// The machine owns no sync state of its own: Status recomputes the
// answer from its sources on every call. The only thing it remembers is
// the last status it published, so subscribers hear each transition
// exactly once.
package state

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aceup/plansync/internal/models"
)

// ConnectionSource exposes the network monitor's current state.
type ConnectionSource interface {
	State() models.ConnectionState
}

// QueueSource exposes the pending queue depth.
type QueueSource interface {
	Len(ctx context.Context) (int, error)
}

// PassSource exposes the coordinator's pass bookkeeping.
type PassSource interface {
	// InFlight reports whether a sync pass is currently running.
	InFlight() bool
	// LastFailed reports whether the most recent pass errored.
	LastFailed() bool
}

// Machine composes the three sources into one of the five statuses.
type Machine struct {
	conn   ConnectionSource
	queue  QueueSource
	pass   PassSource
	logger *slog.Logger

	mu        sync.Mutex
	subs      map[int]func(models.SyncStatus)
	nextSubID int
	published models.SyncStatus
}

// NewMachine wires the machine to its sources. The initial published
// status is offline, matching the monitor's fail-safe default.
func NewMachine(conn ConnectionSource, queue QueueSource, pass PassSource, logger *slog.Logger) *Machine {
	return &Machine{
		conn:      conn,
		queue:     queue,
		pass:      pass,
		logger:    logger,
		subs:      make(map[int]func(models.SyncStatus)),
		published: models.StatusOffline,
	}
}

// Status derives the current sync status. A queued local edit reports
// pending even without connectivity: the edit is safe locally and
// awaiting replay, which is what the user needs to know. Offline is
// reserved for an empty queue with no link. Online, an in-flight pass
// beats a failed one, and a failed pass beats a non-empty queue.
func (m *Machine) Status(ctx context.Context) models.SyncStatus {
	if !m.conn.State().Online {
		n, err := m.queue.Len(ctx)
		if err != nil {
			m.logger.Warn("failed to read queue depth", "error", err)
			return models.StatusOffline
		}
		if n > 0 {
			return models.StatusPending
		}
		return models.StatusOffline
	}
	if m.pass.InFlight() {
		return models.StatusSyncing
	}
	if m.pass.LastFailed() {
		return models.StatusFailed
	}

	n, err := m.queue.Len(ctx)
	if err != nil {
		// Queue unreadable: report failed rather than pretend synced.
		m.logger.Warn("failed to read queue depth", "error", err)
		return models.StatusFailed
	}
	if n > 0 {
		return models.StatusPending
	}
	return models.StatusSynced
}

// Recompute re-derives the status and notifies subscribers if it
// changed since the last notification.
func (m *Machine) Recompute(ctx context.Context) models.SyncStatus {
	status := m.Status(ctx)

	m.mu.Lock()
	if status == m.published {
		m.mu.Unlock()
		return status
	}
	prev := m.published
	m.published = status
	subs := make([]func(models.SyncStatus), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	m.logger.Info("sync status changed", "from", prev, "to", status)
	for _, fn := range subs {
		fn(status)
	}
	return status
}

// Subscribe registers a status-change callback and returns a function
// that removes it.
func (m *Machine) Subscribe(fn func(models.SyncStatus)) func() {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}
