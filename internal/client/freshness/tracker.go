// Package freshness tracks the age of locally cached data and decides
// whether offline operation is still allowed.
package freshness

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aceup/plansync/internal/client/storage"
)

// DefaultStalenessWindow is the maximum age of cached data before
// offline operation is disallowed.
const DefaultStalenessWindow = 7 * 24 * time.Hour

// Tracker records the last successful full sync and derives staleness
// verdicts from it. Pure bookkeeping over a single persisted timestamp.
type Tracker struct {
	meta   storage.MetadataStorage
	logger *slog.Logger
	window time.Duration
}

// New creates a tracker. window <= 0 selects DefaultStalenessWindow.
func New(meta storage.MetadataStorage, window time.Duration, logger *slog.Logger) *Tracker {
	if window <= 0 {
		window = DefaultStalenessWindow
	}
	return &Tracker{
		meta:   meta,
		logger: logger,
		window: window,
	}
}

// Window returns the configured staleness window.
func (t *Tracker) Window() time.Duration {
	return t.window
}

// RecordSuccessfulSync persists the completion time of a full pass that
// finished without error.
func (t *Tracker) RecordSuccessfulSync(ctx context.Context, at time.Time) error {
	if err := t.meta.SaveLastSyncTime(ctx, at); err != nil {
		return fmt.Errorf("failed to record successful sync: %w", err)
	}
	t.logger.Debug("sync freshness recorded", "at", at)
	return nil
}

// LastSuccessfulSyncAt returns the last recorded sync time. The bool is
// false when no pass has ever succeeded.
func (t *Tracker) LastSuccessfulSyncAt(ctx context.Context) (time.Time, bool, error) {
	last, err := t.meta.LastSyncTime(ctx)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read last sync time: %w", err)
	}
	return last, !last.IsZero(), nil
}

// IsStale reports whether cached data is too old for offline operation.
// Never-synced counts as stale; the boundary of exactly one window
// elapsed counts as stale too.
func (t *Tracker) IsStale(ctx context.Context, now time.Time) (bool, error) {
	last, ok, err := t.LastSuccessfulSyncAt(ctx)
	if err != nil {
		return true, err
	}
	if !ok {
		return true, nil
	}
	return now.Sub(last) >= t.window, nil
}

// CanWorkOffline holds iff cached data exists and is younger than the
// staleness window.
func (t *Tracker) CanWorkOffline(ctx context.Context, now time.Time) (bool, error) {
	stale, err := t.IsStale(ctx, now)
	if err != nil {
		return false, err
	}
	return !stale, nil
}

// DaysRemaining returns how many whole days of offline operation are
// left, floored at zero. User-facing messaging only, never a
// correctness gate.
func (t *Tracker) DaysRemaining(ctx context.Context, now time.Time) (int, error) {
	last, ok, err := t.LastSuccessfulSyncAt(ctx)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	remaining := t.window - now.Sub(last)
	if remaining <= 0 {
		return 0, nil
	}
	return int(remaining / (24 * time.Hour)), nil
}

// Clear forgets the recorded sync time. Used when cached data is wiped.
func (t *Tracker) Clear(ctx context.Context) error {
	if err := t.meta.ClearLastSyncTime(ctx); err != nil {
		return fmt.Errorf("failed to clear freshness: %w", err)
	}
	return nil
}
