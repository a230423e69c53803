package storage

import (
	"context"

	"github.com/aceup/plansync/internal/models"
)

//go:generate moq -out queuestorage_mock.go . QueueStorage

// QueueStorage defines the durable log of pending operations.
// Entries are keyed by a monotonically increasing sequence number so
// FIFO order survives process restarts.
type QueueStorage interface {
	// Append stores a new operation at the tail of the queue and
	// returns the sequence number assigned to it.
	// Returns ErrStorageFull when the queue cannot grow.
	Append(ctx context.Context, op *models.PendingOperation) (uint64, error)

	// PeekBatch returns up to limit of the oldest operations without
	// removing them, in insertion order.
	PeekBatch(ctx context.Context, limit int) ([]*models.PendingOperation, error)

	// Remove deletes the operation with the given id.
	// Removing an unknown id is a no-op; the returned bool reports
	// whether the operation was present.
	Remove(ctx context.Context, id string) (bool, error)

	// IncrementAttempts bumps the attempt counter of the operation with
	// the given id, leaving it in place, and returns the new count.
	// Returns ErrOperationNotFound for unknown ids.
	IncrementAttempts(ctx context.Context, id string) (int, error)

	// Len returns the number of queued operations.
	Len(ctx context.Context) (int, error)

	// CountByType returns the number of queued operations per data
	// category. Categories with no operations are omitted.
	CountByType(ctx context.Context) (map[models.DataType]int, error)

	// MaxAttempts returns the highest attempt counter across all queued
	// operations, or 0 for an empty queue.
	MaxAttempts(ctx context.Context) (int, error)

	// Clear removes every queued operation unconditionally.
	// Administrative recovery path only.
	Clear(ctx context.Context) error
}
