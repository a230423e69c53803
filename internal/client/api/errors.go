package api

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned when a remote call is requested while the
// device is offline. Recoverable: the caller waits for connectivity.
var ErrNotConnected = errors.New("not connected")

// RejectionError reports that the remote store refused an operation as
// malformed or irrecoverably conflicting. The operation must be drained
// from the queue, never retried, and surfaced to the user.
type RejectionError struct {
	OperationID string
	Reason      string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("operation %s rejected by remote: %s", e.OperationID, e.Reason)
}

// TransientError wraps a recoverable remote failure (network error,
// timeout, server 5xx). The coordinator absorbs these with backoff.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient remote error: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err should be retried with backoff.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
