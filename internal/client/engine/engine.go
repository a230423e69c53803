// Package engine is the composition root of the sync engine. It wires
// the monitor, queue, freshness tracker, state machine, coordinator and
// reporter into one explicitly constructed instance; there are no
// package-level singletons, tests build their own engine per case.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	clientapi "github.com/aceup/plansync/internal/client/api"
	"github.com/aceup/plansync/internal/client/diag"
	"github.com/aceup/plansync/internal/client/freshness"
	"github.com/aceup/plansync/internal/client/netmon"
	"github.com/aceup/plansync/internal/client/queue"
	"github.com/aceup/plansync/internal/client/state"
	"github.com/aceup/plansync/internal/client/storage/boltdb"
	"github.com/aceup/plansync/internal/client/syncer"
	"github.com/aceup/plansync/internal/config"
	"github.com/aceup/plansync/internal/metrics"
	"github.com/aceup/plansync/internal/models"
	pkgapi "github.com/aceup/plansync/pkg/api"
)

// Engine bundles the sync components behind the surface the
// presentation layer uses: read the snapshot, submit mutations, force a
// sync, clear cached data.
type Engine struct {
	cfg      config.Client
	store    *boltdb.Storage
	monitor  *netmon.Monitor
	queue    *queue.Queue
	fresh    *freshness.Tracker
	machine  *state.Machine
	coord    *syncer.Coordinator
	reporter *diag.Reporter
	metrics  *metrics.Engine
	logger   *slog.Logger
}

// New constructs the engine. The caller owns the prometheus registerer
// and the logger; Close releases the local store.
func New(ctx context.Context, cfg config.Client, reg prometheus.Registerer, logger *slog.Logger) (*Engine, error) {
	store, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	m := metrics.NewEngine(reg)
	monitor := netmon.New(logger)
	q := queue.New(store, cfg.MaxQueueDepth, logger)
	fresh := freshness.New(store, cfg.StalenessWindow.Std(), logger)
	tracker := syncer.NewPassTracker()
	machine := state.NewMachine(monitor, q, tracker, logger)
	remote := clientapi.NewClient(cfg.ServerURL, cfg.RequestTimeout.Std())
	coord := syncer.New(cfg, remote, q, fresh, store, monitor, tracker, machine, m, logger)
	reporter := diag.NewReporter(machine, q, fresh, monitor, tracker, coord)

	return &Engine{
		cfg:      cfg,
		store:    store,
		monitor:  monitor,
		queue:    q,
		fresh:    fresh,
		machine:  machine,
		coord:    coord,
		reporter: reporter,
		metrics:  m,
		logger:   logger,
	}, nil
}

// Start launches the coordinator's background loop.
func (e *Engine) Start() {
	e.coord.Start()
}

// Close stops background work and releases the local store.
func (e *Engine) Close() error {
	e.coord.Stop()
	if err := e.store.Close(); err != nil {
		return fmt.Errorf("failed to close local store: %w", err)
	}
	return nil
}

// ReportConnectivity is the entry point for OS reachability callbacks.
func (e *Engine) ReportConnectivity(connState models.ConnectionState) {
	e.monitor.Report(connState)
}

// Status derives the current sync status.
func (e *Engine) Status(ctx context.Context) models.SyncStatus {
	return e.machine.Status(ctx)
}

// SubscribeStatus registers a status-change callback.
func (e *Engine) SubscribeStatus(fn func(models.SyncStatus)) func() {
	return e.machine.Subscribe(fn)
}

// Snapshot returns the diagnostics projection.
func (e *Engine) Snapshot(ctx context.Context) (*diag.Snapshot, error) {
	return e.reporter.Snapshot(ctx)
}

// SubmitOperation records a local mutation. The operation is queued
// durably first; while online, an inline sync pass is kicked off so a
// healthy connection drains it immediately instead of waiting for the
// next trigger.
func (e *Engine) SubmitOperation(ctx context.Context, dataType models.DataType, kind models.OperationKind, payload []byte) (*models.PendingOperation, error) {
	op, err := e.queue.Enqueue(ctx, dataType, kind, payload)
	if err != nil {
		return nil, err
	}

	if n, lenErr := e.queue.Len(ctx); lenErr == nil {
		e.metrics.PendingOperations.Set(float64(n))
	}
	e.machine.Recompute(ctx)

	if e.monitor.State().Online {
		e.coord.TriggerAsync("local mutation while online")
	}

	return op, nil
}

// ForceSyncNow bypasses backoff and runs a pass immediately.
// Returns api.ErrNotConnected while offline.
func (e *Engine) ForceSyncNow(ctx context.Context) (*syncer.SyncSummary, error) {
	return e.coord.ForceSyncNow(ctx)
}

// CachedRecords reads one category from the local cache; works offline.
func (e *Engine) CachedRecords(ctx context.Context, dataType models.DataType) ([]pkgapi.Record, error) {
	return e.store.ListCategory(ctx, dataType)
}

// ClearCachedData wipes the record cache and the freshness timestamp,
// and optionally the pending queue. Destructive; the caller must pass
// confirmed=true after an explicit user confirmation.
func (e *Engine) ClearCachedData(ctx context.Context, includeQueue, confirmed bool) error {
	if !confirmed {
		return queue.ErrNotConfirmed
	}

	if err := e.store.ClearCache(ctx); err != nil {
		return fmt.Errorf("failed to clear record cache: %w", err)
	}
	if err := e.fresh.Clear(ctx); err != nil {
		return err
	}

	if includeQueue {
		if err := e.queue.ClearAll(ctx, true); err != nil {
			return err
		}
		e.metrics.PendingOperations.Set(0)
	}

	e.machine.Recompute(ctx)
	e.logger.Warn("cached data cleared", "include_queue", includeQueue)
	return nil
}

// RecentlyRestored reports whether connectivity came back within the
// display window. UI feedback only.
func (e *Engine) RecentlyRestored() bool {
	return e.monitor.RecentlyRestored(time.Now())
}
