// Package diag is the read-only projection of the sync engine for
// operator and user-facing summaries. It observes; it never triggers.
package diag

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/aceup/plansync/internal/client/freshness"
	"github.com/aceup/plansync/internal/client/netmon"
	"github.com/aceup/plansync/internal/client/queue"
	"github.com/aceup/plansync/internal/client/state"
	"github.com/aceup/plansync/internal/client/syncer"
	"github.com/aceup/plansync/internal/models"
)

// Snapshot is one consistent view of the engine's externally relevant
// state.
type Snapshot struct {
	TakenAt        time.Time
	Status         models.SyncStatus
	Connection     models.ConnectionState
	PendingCount   int
	PendingByType  map[models.DataType]int
	LastSyncAt     time.Time
	LastSyncAgo    string
	EverSynced     bool
	CanWorkOffline bool
	DaysRemaining  int
	NextRetryAt    time.Time
	RetryScheduled bool
	// Rejections carries the per-operation errors of the last pass,
	// the one failure class that must reach the user individually.
	Rejections []syncer.Rejection
}

// RetryScheduler exposes the coordinator's armed backoff timer.
type RetryScheduler interface {
	NextRetryAt() (time.Time, bool)
}

// Reporter aggregates the engine's components into snapshots.
type Reporter struct {
	machine *state.Machine
	queue   *queue.Queue
	fresh   *freshness.Tracker
	monitor *netmon.Monitor
	tracker *syncer.PassTracker
	retries RetryScheduler
	now     func() time.Time
}

// NewReporter wires the reporter to its sources.
func NewReporter(
	machine *state.Machine,
	q *queue.Queue,
	fresh *freshness.Tracker,
	monitor *netmon.Monitor,
	tracker *syncer.PassTracker,
	retries RetryScheduler,
) *Reporter {
	return &Reporter{
		machine: machine,
		queue:   q,
		fresh:   fresh,
		monitor: monitor,
		tracker: tracker,
		retries: retries,
		now:     time.Now,
	}
}

// Snapshot collects the current state. Read-only: no call in here
// mutates the engine.
func (r *Reporter) Snapshot(ctx context.Context) (*Snapshot, error) {
	now := r.now()

	snap := &Snapshot{
		TakenAt:    now,
		Status:     r.machine.Status(ctx),
		Connection: r.monitor.State(),
	}

	n, err := r.queue.Len(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending count: %w", err)
	}
	snap.PendingCount = n

	snap.PendingByType, err = r.queue.CountByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending breakdown: %w", err)
	}

	last, ever, err := r.fresh.LastSuccessfulSyncAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read freshness: %w", err)
	}
	snap.LastSyncAt = last
	snap.EverSynced = ever
	if ever {
		snap.LastSyncAgo = humanize.RelTime(last, now, "ago", "from now")
	} else {
		snap.LastSyncAgo = "never"
	}

	snap.CanWorkOffline, err = r.fresh.CanWorkOffline(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to derive offline verdict: %w", err)
	}
	snap.DaysRemaining, err = r.fresh.DaysRemaining(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to derive days remaining: %w", err)
	}

	if summary, _ := r.tracker.Last(); summary != nil {
		snap.Rejections = summary.Rejections
	}
	if r.retries != nil {
		snap.NextRetryAt, snap.RetryScheduled = r.retries.NextRetryAt()
	}

	return snap, nil
}
