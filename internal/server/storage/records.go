package storage

import (
	"context"
	"errors"
	"time"

	"github.com/aceup/plansync/pkg/api"
)

// Common server storage errors
var (
	// ErrRecordNotFound indicates that no record exists with the given
	// id and category
	ErrRecordNotFound = errors.New("record not found")

	// ErrMalformedOperation indicates that an operation payload cannot
	// be applied; the server rejects it so the client drains it
	ErrMalformedOperation = errors.New("malformed operation")
)

//go:generate moq -out records_mock.go . RecordStorage

// RecordStorage defines the server-side authoritative record store.
type RecordStorage interface {
	// UpsertRecord applies a create/update if the incoming record is
	// newer than the stored one (last-write-wins by updated_at).
	// Returns whether the record was applied.
	UpsertRecord(ctx context.Context, record api.Record) (bool, error)

	// DeleteRecord soft-deletes a record, keeping a tombstone so
	// incremental pulls propagate the deletion.
	DeleteRecord(ctx context.Context, dataType, id string, at time.Time) error

	// ListRecordsSince returns records of one category changed strictly
	// after since. A zero since returns everything, tombstones included.
	ListRecordsSince(ctx context.Context, dataType string, since time.Time) ([]api.Record, error)
}
