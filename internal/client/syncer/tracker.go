package syncer

import "sync"

// PassTracker is the shared bookkeeping of sync pass execution. The
// coordinator writes it; the state machine reads it through the
// state.PassSource interface.
type PassTracker struct {
	mu         sync.RWMutex
	summary    *SyncSummary
	err        error
	inFlight   bool
	lastFailed bool
}

// NewPassTracker returns a tracker with no pass recorded.
func NewPassTracker() *PassTracker {
	return &PassTracker{}
}

// Begin marks a pass as in flight.
func (t *PassTracker) Begin() {
	t.mu.Lock()
	t.inFlight = true
	t.mu.Unlock()
}

// Finish records the pass outcome and clears the in-flight flag.
func (t *PassTracker) Finish(summary *SyncSummary, err error) {
	t.mu.Lock()
	t.inFlight = false
	t.lastFailed = err != nil
	t.summary = summary
	t.err = err
	t.mu.Unlock()
}

// InFlight reports whether a pass is currently running.
func (t *PassTracker) InFlight() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.inFlight
}

// LastFailed reports whether the most recent pass errored.
func (t *PassTracker) LastFailed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lastFailed
}

// Last returns the most recent pass outcome. The summary is nil when no
// pass has run yet.
func (t *PassTracker) Last() (*SyncSummary, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.summary, t.err
}
