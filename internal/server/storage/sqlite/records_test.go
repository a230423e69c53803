package sqlite

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aceup/plansync/pkg/api"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func record(id string, updatedAt time.Time, payload string) api.Record {
	return api.Record{
		ID:        id,
		DataType:  "assignment",
		Data:      json.RawMessage(payload),
		UpdatedAt: updatedAt,
	}
}

func TestUpsertRecord_Insert(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	applied, err := store.UpsertRecord(ctx, record("a1", time.Now().UTC(), `{"id":"a1"}`))
	require.NoError(t, err)
	assert.True(t, applied)

	records, err := store.ListRecordsSince(ctx, "assignment", time.Time{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a1", records[0].ID)
	assert.False(t, records[0].Deleted)
}

func TestUpsertRecord_NewerWins(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	base := time.Now().UTC()
	_, err := store.UpsertRecord(ctx, record("a1", base, `{"v":1}`))
	require.NoError(t, err)

	applied, err := store.UpsertRecord(ctx, record("a1", base.Add(time.Second), `{"v":2}`))
	require.NoError(t, err)
	assert.True(t, applied)

	records, err := store.ListRecordsSince(ctx, "assignment", time.Time{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.JSONEq(t, `{"v":2}`, string(records[0].Data))
}

func TestUpsertRecord_OlderLoses(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	base := time.Now().UTC()
	_, err := store.UpsertRecord(ctx, record("a1", base, `{"v":2}`))
	require.NoError(t, err)

	// A stale replay arrives after the fact; last write wins
	applied, err := store.UpsertRecord(ctx, record("a1", base.Add(-time.Minute), `{"v":1}`))
	require.NoError(t, err)
	assert.False(t, applied)

	records, err := store.ListRecordsSince(ctx, "assignment", time.Time{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.JSONEq(t, `{"v":2}`, string(records[0].Data))
}

func TestUpsertRecord_RevivesTombstone(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	base := time.Now().UTC()
	_, err := store.UpsertRecord(ctx, record("a1", base, `{"v":1}`))
	require.NoError(t, err)
	require.NoError(t, store.DeleteRecord(ctx, "assignment", "a1", base.Add(time.Second)))

	applied, err := store.UpsertRecord(ctx, record("a1", base.Add(2*time.Second), `{"v":3}`))
	require.NoError(t, err)
	assert.True(t, applied)

	records, err := store.ListRecordsSince(ctx, "assignment", time.Time{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Deleted)
}

func TestDeleteRecord_WritesTombstone(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	base := time.Now().UTC()
	_, err := store.UpsertRecord(ctx, record("a1", base, `{"v":1}`))
	require.NoError(t, err)
	require.NoError(t, store.DeleteRecord(ctx, "assignment", "a1", base.Add(time.Second)))

	records, err := store.ListRecordsSince(ctx, "assignment", time.Time{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Deleted)
}

func TestDeleteRecord_UnknownRecordStillTombstones(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	// A replayed delete may reference a record the server never saw
	require.NoError(t, store.DeleteRecord(ctx, "assignment", "ghost", time.Now().UTC()))

	records, err := store.ListRecordsSince(ctx, "assignment", time.Time{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ghost", records[0].ID)
	assert.True(t, records[0].Deleted)
}

func TestListRecordsSince_FiltersStrictlyAfter(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	_, err := store.UpsertRecord(ctx, record("old", base, `{}`))
	require.NoError(t, err)
	_, err = store.UpsertRecord(ctx, record("new", base.Add(time.Minute), `{}`))
	require.NoError(t, err)

	records, err := store.ListRecordsSince(ctx, "assignment", base)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "new", records[0].ID)
}

func TestListRecordsSince_OrderedByUpdate(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	base := time.Now().UTC()
	_, err := store.UpsertRecord(ctx, record("third", base.Add(2*time.Second), `{}`))
	require.NoError(t, err)
	_, err = store.UpsertRecord(ctx, record("first", base, `{}`))
	require.NoError(t, err)
	_, err = store.UpsertRecord(ctx, record("second", base.Add(time.Second), `{}`))
	require.NoError(t, err)

	records, err := store.ListRecordsSince(ctx, "assignment", time.Time{})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "first", records[0].ID)
	assert.Equal(t, "second", records[1].ID)
	assert.Equal(t, "third", records[2].ID)
}

func TestListRecordsSince_IsolatesCategories(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	now := time.Now().UTC()
	_, err := store.UpsertRecord(ctx, record("a1", now, `{}`))
	require.NoError(t, err)
	_, err = store.UpsertRecord(ctx, api.Record{
		ID: "c1", DataType: "course", Data: json.RawMessage(`{}`), UpdatedAt: now,
	})
	require.NoError(t, err)

	records, err := store.ListRecordsSince(ctx, "course", time.Time{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "c1", records[0].ID)
}
