// Package netmon owns the client's view of network connectivity.
//
// The monitor is fed by OS reachability callbacks through Report and is
// the only writer of ConnectionState; every other component reads it.
// Until the first callback arrives the state is offline — connectivity
// is never assumed optimistically.
package netmon

import (
	"log/slog"
	"sync"
	"time"

	"github.com/aceup/plansync/internal/models"
)

// RestoredWindow is how long the "connection restored" event stays
// visible after an offline-to-online transition. Display feedback only,
// it carries no retry obligation.
const RestoredWindow = 3 * time.Second

// Event describes one connectivity transition.
type Event struct {
	State models.ConnectionState
	// Restored is set on the offline-to-online transition.
	Restored bool
}

// Monitor tracks the current ConnectionState and notifies subscribers
// on transitions.
type Monitor struct {
	logger     *slog.Logger
	subs       map[int]func(Event)
	now        func() time.Time
	state      models.ConnectionState
	restoredAt time.Time
	nextSubID  int
	mu         sync.RWMutex
}

// New creates a monitor in the fail-safe offline state.
func New(logger *slog.Logger) *Monitor {
	return &Monitor{
		logger: logger,
		subs:   make(map[int]func(Event)),
		now:    time.Now,
		state:  models.Disconnected(),
	}
}

// State returns the current connection state.
func (m *Monitor) State() models.ConnectionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Report records a connectivity transition from the OS reachability
// callback. Reporting an unchanged state is a no-op.
func (m *Monitor) Report(state models.ConnectionState) {
	m.mu.Lock()
	if state == m.state {
		m.mu.Unlock()
		return
	}

	restored := !m.state.Online && state.Online
	m.state = state
	if restored {
		m.restoredAt = m.now()
	}

	// Copy subscribers so callbacks run outside the lock.
	subs := make([]func(Event), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	m.logger.Info("connectivity changed",
		"online", state.Online,
		"type", state.Type,
		"restored", restored)

	ev := Event{State: state, Restored: restored}
	for _, fn := range subs {
		fn(ev)
	}
}

// RecentlyRestored reports whether the connection came back within the
// display window before now.
func (m *Monitor) RecentlyRestored(now time.Time) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.restoredAt.IsZero() || !m.state.Online {
		return false
	}
	return now.Sub(m.restoredAt) < RestoredWindow
}

// Subscribe registers a transition callback and returns a function that
// removes it.
func (m *Monitor) Subscribe(fn func(Event)) func() {
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
