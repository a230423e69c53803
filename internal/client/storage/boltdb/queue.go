package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"syscall"

	"go.etcd.io/bbolt"

	"github.com/aceup/plansync/internal/client/storage"
	"github.com/aceup/plansync/internal/models"
)

// Append stores a new operation at the tail of the queue.
// The bucket key is the big-endian sequence number from NextSequence,
// so a cursor walk yields operations in insertion order across restarts.
func (s *Storage) Append(ctx context.Context, op *models.PendingOperation) (uint64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var seq uint64

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}
		index := tx.Bucket(bucketQueueIdx)
		if index == nil {
			return fmt.Errorf("queue index bucket not found")
		}

		next, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate sequence: %w", err)
		}
		seq = next
		op.Seq = next

		data, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("failed to marshal operation: %w", err)
		}

		key := seqKey(next)
		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save operation: %w", err)
		}

		// id -> seq index for acknowledge/requeue by id
		if err := index.Put([]byte(op.ID), key); err != nil {
			return fmt.Errorf("failed to index operation: %w", err)
		}

		return nil
	})

	if err != nil {
		return 0, mapAppendError(err)
	}

	return seq, nil
}

// mapAppendError surfaces an exhausted volume as ErrStorageFull. bolt
// has no sentinel of its own for it; the ENOSPC from the mmap grow or
// page flush arrives wrapped in the transaction error.
func mapAppendError(err error) error {
	if errors.Is(err, syscall.ENOSPC) {
		return storage.ErrStorageFull
	}
	return fmt.Errorf("transaction failed: %w", err)
}

// PeekBatch returns up to limit of the oldest operations without
// removing them.
func (s *Storage) PeekBatch(ctx context.Context, limit int) ([]*models.PendingOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}
	if limit <= 0 {
		return nil, nil
	}

	var ops []*models.PendingOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		c := bucket.Cursor()
		for k, v := c.First(); k != nil && len(ops) < limit; k, v = c.Next() {
			op := &models.PendingOperation{}
			if err := json.Unmarshal(v, op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			ops = append(ops, op)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return ops, nil
}

// Remove deletes the operation with the given id. Unknown ids are a
// no-op; the returned bool reports whether the operation was present.
func (s *Storage) Remove(ctx context.Context, id string) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	removed := false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		index := tx.Bucket(bucketQueueIdx)
		if bucket == nil || index == nil {
			return fmt.Errorf("queue buckets not found")
		}

		key := index.Get([]byte(id))
		if key == nil {
			return nil
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete operation: %w", err)
		}
		if err := index.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete index entry: %w", err)
		}

		removed = true
		return nil
	})

	if err != nil {
		return false, fmt.Errorf("transaction failed: %w", err)
	}

	return removed, nil
}

// IncrementAttempts bumps the attempt counter of one operation in place.
func (s *Storage) IncrementAttempts(ctx context.Context, id string) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var attempts int

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		index := tx.Bucket(bucketQueueIdx)
		if bucket == nil || index == nil {
			return fmt.Errorf("queue buckets not found")
		}

		key := index.Get([]byte(id))
		if key == nil {
			return storage.ErrOperationNotFound
		}

		data := bucket.Get(key)
		if data == nil {
			return storage.ErrOperationNotFound
		}

		op := &models.PendingOperation{}
		if err := json.Unmarshal(data, op); err != nil {
			return fmt.Errorf("failed to unmarshal operation: %w", err)
		}

		op.Attempts++
		attempts = op.Attempts

		updated, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("failed to marshal operation: %w", err)
		}
		if err := bucket.Put(key, updated); err != nil {
			return fmt.Errorf("failed to save operation: %w", err)
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	return attempts, nil
}

// Len returns the number of queued operations.
func (s *Storage) Len(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}
		n = bucket.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}

// CountByType returns the number of queued operations per data category.
func (s *Storage) CountByType(ctx context.Context) (map[models.DataType]int, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	counts := make(map[models.DataType]int)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}
		return bucket.ForEach(func(k, v []byte) error {
			op := &models.PendingOperation{}
			if err := json.Unmarshal(v, op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			counts[op.DataType]++
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return counts, nil
}

// MaxAttempts returns the highest attempt counter across the queue.
func (s *Storage) MaxAttempts(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	max := 0
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}
		return bucket.ForEach(func(k, v []byte) error {
			op := &models.PendingOperation{}
			if err := json.Unmarshal(v, op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			if op.Attempts > max {
				max = op.Attempts
			}
			return nil
		})
	})
	if err != nil {
		return 0, err
	}

	return max, nil
}

// Clear removes every queued operation unconditionally.
func (s *Storage) Clear(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketQueue, bucketQueueIdx} {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("failed to delete bucket %s: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("failed to recreate bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// seqKey encodes a sequence number as a big-endian bucket key so byte
// order equals numeric order.
func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
