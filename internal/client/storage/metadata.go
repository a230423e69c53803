package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadatastorage_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client sync metadata
type MetadataStorage interface {
	// SaveLastSyncTime saves the timestamp of the last successful full
	// sync pass
	SaveLastSyncTime(ctx context.Context, t time.Time) error

	// LastSyncTime retrieves the timestamp of the last successful full
	// sync pass. Returns the zero time if no pass has succeeded yet.
	LastSyncTime(ctx context.Context) (time.Time, error)

	// ClearLastSyncTime removes the stored timestamp. Used when cached
	// data is wiped.
	ClearLastSyncTime(ctx context.Context) error
}
