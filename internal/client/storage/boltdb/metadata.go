package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/aceup/plansync/internal/client/storage"
)

const (
	keyLastSyncTime = "last_sync_time"
)

// SaveLastSyncTime saves the timestamp of the last successful full sync
func (s *Storage) SaveLastSyncTime(ctx context.Context, t time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		value := make([]byte, 8)
		binary.BigEndian.PutUint64(value, uint64(t.UnixNano()))

		if err := bucket.Put([]byte(keyLastSyncTime), value); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}

		return nil
	})
}

// LastSyncTime retrieves the timestamp of the last successful full sync.
// Returns the zero time if no sync has succeeded yet.
func (s *Storage) LastSyncTime(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var t time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		value := bucket.Get([]byte(keyLastSyncTime))
		if value == nil {
			// Never synced
			return nil
		}

		t = time.Unix(0, int64(binary.BigEndian.Uint64(value)))
		return nil
	})

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return t, nil
}

// ClearLastSyncTime removes the stored timestamp
func (s *Storage) ClearLastSyncTime(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		if err := bucket.Delete([]byte(keyLastSyncTime)); err != nil {
			return fmt.Errorf("failed to clear last sync time: %w", err)
		}
		return nil
	})
}
