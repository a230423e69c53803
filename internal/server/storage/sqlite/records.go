package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/aceup/plansync/pkg/api"
)

// UpsertRecord applies a create/update with last-write-wins semantics:
// the incoming record lands only if its updated_at is newer than the
// stored one.
func (s *Storage) UpsertRecord(ctx context.Context, record api.Record) (bool, error) {
	updatedAt := record.UpdatedAt.UTC().UnixNano()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, data_type, data, updated_at, deleted)
		VALUES (?, ?, ?, ?, 0)
		ON CONFLICT (data_type, id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at,
			deleted = 0
		WHERE excluded.updated_at > records.updated_at`,
		record.ID, record.DataType, []byte(record.Data), updatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to upsert record: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return n > 0, nil
}

// DeleteRecord soft-deletes a record, writing a tombstone so
// incremental pulls propagate the deletion. Deleting an unknown record
// still creates a tombstone: the client may replay a delete for a
// record the server never saw.
func (s *Storage) DeleteRecord(ctx context.Context, dataType, id string, at time.Time) error {
	updatedAt := at.UTC().UnixNano()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, data_type, data, updated_at, deleted)
		VALUES (?, ?, ?, ?, 1)
		ON CONFLICT (data_type, id) DO UPDATE SET
			updated_at = excluded.updated_at,
			deleted = 1
		WHERE excluded.updated_at > records.updated_at`,
		id, dataType, []byte("{}"), updatedAt)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return nil
}

// ListRecordsSince returns records of one category changed strictly
// after since, oldest first. A zero since returns everything.
func (s *Storage) ListRecordsSince(ctx context.Context, dataType string, since time.Time) ([]api.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, data_type, data, updated_at, deleted
		FROM records
		WHERE data_type = ? AND updated_at > ?
		ORDER BY updated_at ASC`,
		dataType, since.UTC().UnixNano())
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []api.Record
	for rows.Next() {
		var (
			record    api.Record
			data      []byte
			updatedAt int64
			deleted   int
		)
		if err := rows.Scan(&record.ID, &record.DataType, &data, &updatedAt, &deleted); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		record.Data = data
		record.UpdatedAt = time.Unix(0, updatedAt).UTC()
		record.Deleted = deleted != 0
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}
