package syncer

import (
	"fmt"
	"time"

	"github.com/aceup/plansync/internal/models"
)

// SyncSummary reports the outcome of one full sync pass.
type SyncSummary struct {
	StartedAt  time.Time
	FinishedAt time.Time
	// Pushed is the number of queued operations the pass picked up.
	Pushed int
	// Acked is the number of operations acknowledged by the remote.
	Acked int
	// Requeued is the number of operations left in place for retry.
	Requeued int
	// Pulled is the number of authoritative records received.
	Pulled int
	// Rejections lists operations the remote refused irrecoverably.
	// These were drained from the queue and must reach the user.
	Rejections []Rejection
}

// Rejection is the user-visible record of a drained poison-pill
// operation.
type Rejection struct {
	OperationID string
	DataType    models.DataType
	Kind        models.OperationKind
	Reason      string
}

// PullError marks a failed authoritative pull. The whole pass is failed
// and the cache left untouched for the failing category.
type PullError struct {
	Err      error
	DataType models.DataType
}

func (e *PullError) Error() string {
	return fmt.Sprintf("failed to pull %s records: %v", e.DataType, e.Err)
}

func (e *PullError) Unwrap() error {
	return e.Err
}
