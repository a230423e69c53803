// Package syncer implements the sync coordinator: one full pass pushes
// queued operations in FIFO order, pulls authoritative state for every
// data category and records freshness. At most one pass is ever in
// flight; concurrent requests coalesce onto it.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aceup/plansync/internal/client/api"
	"github.com/aceup/plansync/internal/client/freshness"
	"github.com/aceup/plansync/internal/client/netmon"
	"github.com/aceup/plansync/internal/client/queue"
	"github.com/aceup/plansync/internal/client/state"
	"github.com/aceup/plansync/internal/client/storage"
	"github.com/aceup/plansync/internal/config"
	"github.com/aceup/plansync/internal/metrics"
	"github.com/aceup/plansync/internal/models"
	pkgapi "github.com/aceup/plansync/pkg/api"
)

// Coordinator owns the pending queue and freshness tracker during sync
// and drives retry scheduling. All pass execution is serialized.
type Coordinator struct {
	cfg     config.Client
	remote  api.RemoteStore
	queue   *queue.Queue
	fresh   *freshness.Tracker
	cache   storage.CacheStorage
	monitor *netmon.Monitor
	tracker *PassTracker
	machine *state.Machine
	metrics *metrics.Engine
	logger  *slog.Logger
	now     func() time.Time

	mu         sync.Mutex
	running    chan struct{}
	retryTimer *time.Timer
	retryAt    time.Time

	triggerCh   chan string
	cancel      context.CancelFunc
	unsubscribe func()
	wg          sync.WaitGroup
}

// New creates a coordinator. The tracker must be the same instance the
// state machine reads.
func New(
	cfg config.Client,
	remote api.RemoteStore,
	q *queue.Queue,
	fresh *freshness.Tracker,
	cache storage.CacheStorage,
	monitor *netmon.Monitor,
	tracker *PassTracker,
	machine *state.Machine,
	m *metrics.Engine,
	logger *slog.Logger,
) *Coordinator {
	return &Coordinator{
		cfg:       cfg,
		remote:    remote,
		queue:     q,
		fresh:     fresh,
		cache:     cache,
		monitor:   monitor,
		tracker:   tracker,
		machine:   machine,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
		triggerCh: make(chan string, 1),
	}
}

// Start launches the background loop: auto-sync ticks, connectivity
// triggers and backoff retries all funnel through one goroutine.
func (c *Coordinator) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.unsubscribe = c.monitor.Subscribe(func(ev netmon.Event) {
		c.machine.Recompute(ctx)
		if !ev.Restored {
			return
		}
		n, err := c.queue.Len(ctx)
		if err != nil {
			c.logger.Warn("failed to read queue depth on reconnect", "error", err)
			return
		}
		if n > 0 {
			c.TriggerAsync("connectivity restored")
		}
	})

	c.wg.Add(1)
	go c.loop(ctx)
}

// Stop tears the coordinator down cleanly. An in-flight pass is
// cancelled; operations it already acknowledged stay acknowledged,
// nothing else is touched.
func (c *Coordinator) Stop() {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
	c.cancelRetry()
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
}

func (c *Coordinator) loop(ctx context.Context) {
	defer c.wg.Done()

	var tick <-chan time.Time
	if c.cfg.AutoSync.Enabled {
		ticker := time.NewTicker(c.cfg.AutoSync.Interval.Std())
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case reason := <-c.triggerCh:
			c.runTriggered(ctx, reason)
		case <-tick:
			c.runTriggered(ctx, "auto-sync interval")
		}
	}
}

func (c *Coordinator) runTriggered(ctx context.Context, reason string) {
	if !c.monitor.State().Online {
		return
	}
	c.logger.Info("starting sync pass", "trigger", reason)
	if _, err := c.PerformFullSync(ctx); err != nil {
		c.logger.Warn("sync pass failed", "trigger", reason, "error", err)
	}
}

// TriggerAsync nudges the background loop to run a pass. Non-blocking;
// a nudge arriving while one is already queued is dropped.
func (c *Coordinator) TriggerAsync(reason string) {
	select {
	case c.triggerCh <- reason:
	default:
	}
}

// ForceSyncNow bypasses any scheduled backoff and runs a pass
// immediately. Returns api.ErrNotConnected while offline; that is a
// no-op, not a fatal condition.
func (c *Coordinator) ForceSyncNow(ctx context.Context) (*SyncSummary, error) {
	if !c.monitor.State().Online {
		return nil, api.ErrNotConnected
	}
	c.cancelRetry()
	return c.PerformFullSync(ctx)
}

// PerformFullSync runs one full pass. If a pass is already in flight
// the call coalesces into it and returns that pass's result.
func (c *Coordinator) PerformFullSync(ctx context.Context) (*SyncSummary, error) {
	if !c.monitor.State().Online {
		return nil, api.ErrNotConnected
	}

	c.mu.Lock()
	if ch := c.running; ch != nil {
		c.mu.Unlock()
		c.logger.Debug("sync requested while a pass is in flight, coalescing")
		select {
		case <-ch:
			return c.tracker.Last()
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	ch := make(chan struct{})
	c.running = ch
	c.mu.Unlock()

	summary, err := c.runPass(ctx)

	c.mu.Lock()
	c.running = nil
	c.mu.Unlock()
	close(ch)

	return summary, err
}

// runPass executes the push and pull phases. Atomicity is per
// operation: partial progress is kept, the freshness timestamp is only
// written when the entire pass succeeded.
func (c *Coordinator) runPass(ctx context.Context) (*SyncSummary, error) {
	c.tracker.Begin()
	c.machine.Recompute(ctx)

	summary := &SyncSummary{StartedAt: c.now()}

	err := c.push(ctx, summary)
	if err == nil {
		err = c.pull(ctx, summary)
	}

	if err == nil {
		if ferr := c.fresh.RecordSuccessfulSync(ctx, c.now()); ferr != nil {
			// Remote work succeeded; a local bookkeeping failure only
			// shortens the offline window.
			c.logger.Warn("failed to record sync freshness", "error", ferr)
		}
	}

	summary.FinishedAt = c.now()
	c.tracker.Finish(summary, err)
	c.machine.Recompute(ctx)
	c.observePass(ctx, summary, err)
	c.scheduleRetryIfNeeded(ctx)

	if err != nil {
		c.logger.Error("sync pass failed",
			"pushed", summary.Pushed,
			"acked", summary.Acked,
			"requeued", summary.Requeued,
			"error", err)
		return summary, err
	}

	c.logger.Info("sync pass completed",
		"pushed", summary.Pushed,
		"acked", summary.Acked,
		"requeued", summary.Requeued,
		"rejected", len(summary.Rejections),
		"pulled", summary.Pulled,
		"duration_ms", summary.FinishedAt.Sub(summary.StartedAt).Milliseconds())
	return summary, nil
}

// push replays the oldest batch in FIFO order. Transient failures are
// absorbed per operation and never abort the rest of the batch;
// rejections drain the operation so it cannot poison the queue.
func (c *Coordinator) push(ctx context.Context, summary *SyncSummary) error {
	ops, err := c.queue.PeekBatch(ctx, c.cfg.BatchLimit)
	if err != nil {
		return fmt.Errorf("failed to read pending batch: %w", err)
	}
	summary.Pushed = len(ops)

	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !c.monitor.State().Online {
			return api.ErrNotConnected
		}

		opCtx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout.Std())
		replayErr := c.remote.ApplyOperation(opCtx, wireOperation(op))
		cancel()

		var rejection *api.RejectionError
		switch {
		case replayErr == nil:
			if err := c.queue.Acknowledge(ctx, op.ID); err != nil {
				return fmt.Errorf("failed to acknowledge operation %s: %w", op.ID, err)
			}
			summary.Acked++
			c.metrics.OperationsReplayed.WithLabelValues(metrics.OutcomeAcked).Inc()

		case errors.As(replayErr, &rejection):
			// Drain, never retry, surface to the user.
			if err := c.queue.Acknowledge(ctx, op.ID); err != nil {
				return fmt.Errorf("failed to drain rejected operation %s: %w", op.ID, err)
			}
			summary.Rejections = append(summary.Rejections, Rejection{
				OperationID: op.ID,
				DataType:    op.DataType,
				Kind:        op.Kind,
				Reason:      rejection.Reason,
			})
			c.metrics.OperationsReplayed.WithLabelValues(metrics.OutcomeRejected).Inc()
			c.logger.Error("operation rejected by remote, dropped from queue",
				"operation_id", op.ID,
				"data_type", op.DataType,
				"kind", op.Kind,
				"reason", rejection.Reason)

		default:
			// Timeout or transient failure: leave in place for the
			// next pass.
			attempts, rqErr := c.queue.RequeueWithBackoff(ctx, op.ID)
			if rqErr != nil {
				return fmt.Errorf("failed to requeue operation %s: %w", op.ID, rqErr)
			}
			summary.Requeued++
			c.metrics.OperationsReplayed.WithLabelValues(metrics.OutcomeRequeued).Inc()
			c.logger.Warn("operation replay failed, will retry",
				"operation_id", op.ID,
				"attempts", attempts,
				"error", replayErr)
		}
	}

	return nil
}

// pull fetches authoritative state for every category. Any failure
// fails the whole pass and leaves the cache exactly as it was for the
// failing category; freshness is not recorded.
func (c *Coordinator) pull(ctx context.Context, summary *SyncSummary) error {
	var since *time.Time
	if last, ok, err := c.fresh.LastSuccessfulSyncAt(ctx); err == nil && ok {
		since = &last
	}

	for _, dataType := range models.AllDataTypes() {
		dtCtx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout.Std())
		records, err := c.remote.FetchAuthoritative(dtCtx, dataType, since)
		cancel()
		if err != nil {
			return &PullError{DataType: dataType, Err: err}
		}

		if since == nil {
			err = c.cache.ReplaceCategory(ctx, dataType, records)
		} else {
			err = c.cache.UpsertRecords(ctx, dataType, records)
		}
		if err != nil {
			return fmt.Errorf("failed to cache %s records: %w", dataType, err)
		}

		summary.Pulled += len(records)
	}

	return nil
}

// scheduleRetryIfNeeded arms the backoff timer when operations remain
// queued or the last pass failed. The delay grows with the max attempt
// count across the queue, capped by config.
func (c *Coordinator) scheduleRetryIfNeeded(ctx context.Context) {
	n, err := c.queue.Len(ctx)
	if err != nil {
		c.logger.Warn("failed to read queue depth for retry scheduling", "error", err)
		return
	}
	if n == 0 && !c.tracker.LastFailed() {
		c.cancelRetry()
		return
	}
	if !c.monitor.State().Online {
		// Connectivity restore will trigger the next pass.
		c.cancelRetry()
		return
	}

	attempts, err := c.queue.MaxAttempts(ctx)
	if err != nil {
		c.logger.Warn("failed to read max attempts", "error", err)
		attempts = 1
	}

	delay := retryDelay(c.cfg.Retry, attempts)

	c.mu.Lock()
	if c.retryTimer != nil {
		c.retryTimer.Stop()
	}
	c.retryAt = c.now().Add(delay)
	c.retryTimer = time.AfterFunc(delay, func() {
		c.TriggerAsync("backoff retry")
	})
	c.mu.Unlock()

	c.logger.Info("retry scheduled", "delay", delay, "attempts", attempts)
}

// NextRetryAt reports when the armed backoff timer fires, if any.
func (c *Coordinator) NextRetryAt() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.retryTimer == nil {
		return time.Time{}, false
	}
	return c.retryAt, true
}

// RetryDelay exposes the backoff schedule for a given attempt count.
func (c *Coordinator) RetryDelay(attempts int) time.Duration {
	return retryDelay(c.cfg.Retry, attempts)
}

func (c *Coordinator) cancelRetry() {
	c.mu.Lock()
	if c.retryTimer != nil {
		c.retryTimer.Stop()
		c.retryTimer = nil
	}
	c.mu.Unlock()
}

func (c *Coordinator) observePass(ctx context.Context, summary *SyncSummary, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultFailed
	}
	c.metrics.SyncPasses.WithLabelValues(result).Inc()
	c.metrics.PassDuration.Observe(summary.FinishedAt.Sub(summary.StartedAt).Seconds())

	if n, lenErr := c.queue.Len(ctx); lenErr == nil {
		c.metrics.PendingOperations.Set(float64(n))
	}
}

// wireOperation converts a queued operation to its wire form.
func wireOperation(op *models.PendingOperation) pkgapi.Operation {
	return pkgapi.Operation{
		CreatedAt: op.CreatedAt,
		ID:        op.ID,
		DataType:  string(op.DataType),
		Kind:      string(op.Kind),
		Payload:   op.Payload,
	}
}
