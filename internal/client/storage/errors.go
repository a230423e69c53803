package storage

import "errors"

// Common client storage errors
var (
	// ErrOperationNotFound indicates that no pending operation exists
	// with the given id
	ErrOperationNotFound = errors.New("pending operation not found")

	// ErrStorageFull indicates that the local queue cannot accept new
	// operations; non-retryable, the caller must surface it to the user
	ErrStorageFull = errors.New("local operation storage is full")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrNoCachedData indicates that no cached records exist for the
	// requested category
	ErrNoCachedData = errors.New("no cached data for category")
)
