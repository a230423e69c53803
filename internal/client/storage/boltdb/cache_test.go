package boltdb

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aceup/plansync/internal/client/storage"
	"github.com/aceup/plansync/internal/models"
	"github.com/aceup/plansync/pkg/api"
)

func newTestRecord(id string, dataType models.DataType) api.Record {
	return api.Record{
		ID:        id,
		DataType:  string(dataType),
		Data:      json.RawMessage(`{"id":"` + id + `","title":"Essay draft"}`),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestListCategory_NeverPulled(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.ListCategory(context.Background(), models.DataTypeAssignment)
	assert.ErrorIs(t, err, storage.ErrNoCachedData)
}

func TestReplaceCategory_RoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	records := []api.Record{
		newTestRecord("r1", models.DataTypeAssignment),
		newTestRecord("r2", models.DataTypeAssignment),
	}
	require.NoError(t, store.ReplaceCategory(ctx, models.DataTypeAssignment, records))

	got, err := store.ListCategory(ctx, models.DataTypeAssignment)
	require.NoError(t, err)
	require.Len(t, got, 2)

	ids := []string{got[0].ID, got[1].ID}
	assert.ElementsMatch(t, []string{"r1", "r2"}, ids)
}

func TestReplaceCategory_DropsStaleRecords(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceCategory(ctx, models.DataTypeCourse, []api.Record{
		newTestRecord("old-1", models.DataTypeCourse),
		newTestRecord("old-2", models.DataTypeCourse),
	}))
	require.NoError(t, store.ReplaceCategory(ctx, models.DataTypeCourse, []api.Record{
		newTestRecord("new-1", models.DataTypeCourse),
	}))

	got, err := store.ListCategory(ctx, models.DataTypeCourse)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new-1", got[0].ID)
}

func TestReplaceCategory_EmptySetStillCounts(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	// An empty authoritative pull is a valid cache state, distinct from
	// never pulled.
	require.NoError(t, store.ReplaceCategory(ctx, models.DataTypeTeacher, nil))

	got, err := store.ListCategory(ctx, models.DataTypeTeacher)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReplaceCategory_IsolatesCategories(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceCategory(ctx, models.DataTypeAssignment, []api.Record{
		newTestRecord("a1", models.DataTypeAssignment),
	}))
	require.NoError(t, store.ReplaceCategory(ctx, models.DataTypeCourse, []api.Record{
		newTestRecord("c1", models.DataTypeCourse),
	}))

	// Replacing one category leaves the other untouched
	require.NoError(t, store.ReplaceCategory(ctx, models.DataTypeAssignment, nil))

	got, err := store.ListCategory(ctx, models.DataTypeCourse)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)
}

func TestUpsertRecords_MergesIntoExisting(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceCategory(ctx, models.DataTypeAssignment, []api.Record{
		newTestRecord("a1", models.DataTypeAssignment),
	}))
	require.NoError(t, store.UpsertRecords(ctx, models.DataTypeAssignment, []api.Record{
		newTestRecord("a2", models.DataTypeAssignment),
	}))

	got, err := store.ListCategory(ctx, models.DataTypeAssignment)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestUpsertRecords_OverwritesByID(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	original := newTestRecord("a1", models.DataTypeAssignment)
	require.NoError(t, store.ReplaceCategory(ctx, models.DataTypeAssignment, []api.Record{original}))

	updated := original
	updated.Data = json.RawMessage(`{"id":"a1","title":"Essay final"}`)
	require.NoError(t, store.UpsertRecords(ctx, models.DataTypeAssignment, []api.Record{updated}))

	got, err := store.ListCategory(ctx, models.DataTypeAssignment)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.JSONEq(t, string(updated.Data), string(got[0].Data))
}

func TestListCategory_HidesTombstones(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	live := newTestRecord("a1", models.DataTypeAssignment)
	dead := newTestRecord("a2", models.DataTypeAssignment)
	dead.Deleted = true
	require.NoError(t, store.ReplaceCategory(ctx, models.DataTypeAssignment, []api.Record{live, dead}))

	got, err := store.ListCategory(ctx, models.DataTypeAssignment)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)

	// A later pull reviving the record makes it visible again
	revived := newTestRecord("a2", models.DataTypeAssignment)
	require.NoError(t, store.UpsertRecords(ctx, models.DataTypeAssignment, []api.Record{revived}))

	got, err = store.ListCategory(ctx, models.DataTypeAssignment)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListCategory_AllTombstonedIsEmptyNotMissing(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	dead := newTestRecord("a1", models.DataTypeAssignment)
	dead.Deleted = true
	require.NoError(t, store.ReplaceCategory(ctx, models.DataTypeAssignment, []api.Record{dead}))

	got, err := store.ListCategory(ctx, models.DataTypeAssignment)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClearCache(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceCategory(ctx, models.DataTypeAssignment, []api.Record{
		newTestRecord("a1", models.DataTypeAssignment),
	}))
	require.NoError(t, store.ClearCache(ctx))

	_, err := store.ListCategory(ctx, models.DataTypeAssignment)
	assert.ErrorIs(t, err, storage.ErrNoCachedData)
}
