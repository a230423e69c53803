package storage

import (
	"context"

	"github.com/aceup/plansync/internal/models"
	"github.com/aceup/plansync/pkg/api"
)

//go:generate moq -out cachestorage_mock.go . CacheStorage

// CacheStorage defines the local cache of authoritative records pulled
// from the remote store. Read paths stay available offline.
type CacheStorage interface {
	// ReplaceCategory atomically replaces all cached records of one
	// data category with the given authoritative set. Used for full
	// pulls.
	ReplaceCategory(ctx context.Context, dataType models.DataType, records []api.Record) error

	// UpsertRecords merges incrementally pulled records into one data
	// category, keeping unchanged cached records in place.
	UpsertRecords(ctx context.Context, dataType models.DataType, records []api.Record) error

	// ListCategory returns the live cached records of one data
	// category; tombstoned records are stored but never returned.
	// Returns ErrNoCachedData if the category has never been pulled.
	ListCategory(ctx context.Context, dataType models.DataType) ([]api.Record, error)

	// ClearCache removes all cached records for every category.
	ClearCache(ctx context.Context) error
}
