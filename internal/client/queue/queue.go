// Package queue implements the pending operation queue: an ordered,
// durable log of mutations applied locally but not yet acknowledged by
// the remote store.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aceup/plansync/internal/client/storage"
	"github.com/aceup/plansync/internal/models"
)

// ErrNotConfirmed is returned when a destructive queue operation is
// invoked without explicit confirmation.
var ErrNotConfirmed = errors.New("destructive operation requires explicit confirmation")

// DefaultMaxDepth bounds the queue before enqueue reports storage full.
const DefaultMaxDepth = 10000

// Queue is the single-writer service over the durable operation log.
// FIFO order is preserved; operations are never reordered, merged or
// deduplicated.
type Queue struct {
	store    storage.QueueStorage
	logger   *slog.Logger
	now      func() time.Time
	maxDepth int
}

// New creates a queue over the given storage. maxDepth <= 0 selects
// DefaultMaxDepth.
func New(store storage.QueueStorage, maxDepth int, logger *slog.Logger) *Queue {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Queue{
		store:    store,
		logger:   logger,
		now:      time.Now,
		maxDepth: maxDepth,
	}
}

// Enqueue appends a new operation to the tail of the queue and returns
// it with its assigned id and sequence number. Never blocks on network.
// Returns storage.ErrStorageFull when the queue cannot accept more
// operations; that error is non-retryable and must be surfaced to the
// user.
func (q *Queue) Enqueue(ctx context.Context, dataType models.DataType, kind models.OperationKind, payload []byte) (*models.PendingOperation, error) {
	if !dataType.Valid() {
		return nil, fmt.Errorf("unknown data type %q", dataType)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown operation kind %q", kind)
	}

	n, err := q.store.Len(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check queue depth: %w", err)
	}
	if n >= q.maxDepth {
		return nil, fmt.Errorf("queue holds %d operations: %w", n, storage.ErrStorageFull)
	}

	op := &models.PendingOperation{
		ID:        uuid.NewString(),
		DataType:  dataType,
		Kind:      kind,
		Payload:   payload,
		CreatedAt: q.now(),
	}

	if _, err := q.store.Append(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to enqueue operation: %w", err)
	}

	q.logger.Debug("operation enqueued",
		"operation_id", op.ID,
		"data_type", op.DataType,
		"kind", op.Kind,
		"seq", op.Seq)

	return op, nil
}

// PeekBatch returns up to limit of the oldest operations without
// removing them, in insertion order.
func (q *Queue) PeekBatch(ctx context.Context, limit int) ([]*models.PendingOperation, error) {
	ops, err := q.store.PeekBatch(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to peek batch: %w", err)
	}
	return ops, nil
}

// Acknowledge removes an operation after confirmed remote application.
// Idempotent: acknowledging an already-removed id is a no-op.
func (q *Queue) Acknowledge(ctx context.Context, id string) error {
	removed, err := q.store.Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to acknowledge operation: %w", err)
	}
	if !removed {
		q.logger.Debug("acknowledge of unknown operation ignored", "operation_id", id)
	}
	return nil
}

// RequeueWithBackoff increments the attempt counter of a failed
// operation, leaving it in place for the next pass. Returns the new
// attempt count.
func (q *Queue) RequeueWithBackoff(ctx context.Context, id string) (int, error) {
	attempts, err := q.store.IncrementAttempts(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue operation: %w", err)
	}

	q.logger.Debug("operation requeued", "operation_id", id, "attempts", attempts)
	return attempts, nil
}

// Len returns the number of queued operations.
func (q *Queue) Len(ctx context.Context) (int, error) {
	return q.store.Len(ctx)
}

// CountByType returns the per-category pending breakdown.
func (q *Queue) CountByType(ctx context.Context) (map[models.DataType]int, error) {
	return q.store.CountByType(ctx)
}

// MaxAttempts returns the highest attempt counter across the queue;
// the coordinator seeds retry backoff with it.
func (q *Queue) MaxAttempts(ctx context.Context) (int, error) {
	return q.store.MaxAttempts(ctx)
}

// ClearAll empties the queue unconditionally. Administrative recovery
// path only: queued mutations are lost. The caller must pass
// confirmed=true or ErrNotConfirmed is returned.
func (q *Queue) ClearAll(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	n, err := q.store.Len(ctx)
	if err == nil && n > 0 {
		q.logger.Warn("clearing pending operation queue", "dropped", n)
	}

	if err := q.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}
	return nil
}
