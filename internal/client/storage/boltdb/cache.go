package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/aceup/plansync/internal/client/storage"
	"github.com/aceup/plansync/internal/models"
	"github.com/aceup/plansync/pkg/api"
)

// ReplaceCategory atomically replaces all cached records of one data
// category with the given authoritative set. One nested bucket per
// category keeps the replace a cheap delete-and-recreate.
func (s *Storage) ReplaceCategory(ctx context.Context, dataType models.DataType, records []api.Record) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		parent := tx.Bucket(bucketRecords)
		if parent == nil {
			return fmt.Errorf("records bucket not found")
		}

		name := []byte(dataType)
		if parent.Bucket(name) != nil {
			if err := parent.DeleteBucket(name); err != nil {
				return fmt.Errorf("failed to drop category bucket: %w", err)
			}
		}

		bucket, err := parent.CreateBucket(name)
		if err != nil {
			return fmt.Errorf("failed to create category bucket: %w", err)
		}

		for i := range records {
			data, err := json.Marshal(&records[i])
			if err != nil {
				return fmt.Errorf("failed to marshal record: %w", err)
			}
			if err := bucket.Put([]byte(records[i].ID), data); err != nil {
				return fmt.Errorf("failed to save record: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// UpsertRecords merges incrementally pulled records into one data
// category. Missing category buckets are created so an incremental
// pull before any full pull still lands.
func (s *Storage) UpsertRecords(ctx context.Context, dataType models.DataType, records []api.Record) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if len(records) == 0 {
		return nil
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		parent := tx.Bucket(bucketRecords)
		if parent == nil {
			return fmt.Errorf("records bucket not found")
		}

		bucket, err := parent.CreateBucketIfNotExists([]byte(dataType))
		if err != nil {
			return fmt.Errorf("failed to create category bucket: %w", err)
		}

		for i := range records {
			data, err := json.Marshal(&records[i])
			if err != nil {
				return fmt.Errorf("failed to marshal record: %w", err)
			}
			if err := bucket.Put([]byte(records[i].ID), data); err != nil {
				return fmt.Errorf("failed to save record: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// ListCategory returns the live cached records of one data category.
// Tombstones stay stored so incremental pulls keep suppressing deleted
// records, but they never surface in reads.
func (s *Storage) ListCategory(ctx context.Context, dataType models.DataType) ([]api.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []api.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		parent := tx.Bucket(bucketRecords)
		if parent == nil {
			return fmt.Errorf("records bucket not found")
		}

		bucket := parent.Bucket([]byte(dataType))
		if bucket == nil {
			return storage.ErrNoCachedData
		}

		return bucket.ForEach(func(k, v []byte) error {
			var record api.Record
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("failed to unmarshal record: %w", err)
			}
			if record.Deleted {
				return nil
			}
			records = append(records, record)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// ClearCache removes all cached records for every category
func (s *Storage) ClearCache(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketRecords); err != nil {
			return fmt.Errorf("failed to delete records bucket: %w", err)
		}
		if _, err := tx.CreateBucket(bucketRecords); err != nil {
			return fmt.Errorf("failed to recreate records bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
