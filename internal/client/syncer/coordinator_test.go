package syncer

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aceup/plansync/internal/client/api"
	"github.com/aceup/plansync/internal/client/freshness"
	"github.com/aceup/plansync/internal/client/netmon"
	"github.com/aceup/plansync/internal/client/queue"
	"github.com/aceup/plansync/internal/client/state"
	"github.com/aceup/plansync/internal/client/storage/boltdb"
	"github.com/aceup/plansync/internal/config"
	"github.com/aceup/plansync/internal/metrics"
	"github.com/aceup/plansync/internal/models"
	pkgapi "github.com/aceup/plansync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// fixture wires a coordinator over a real bolt store and a mocked
// remote, the way the engine does.
type fixture struct {
	coord   *Coordinator
	remote  *api.RemoteStoreMock
	store   *boltdb.Storage
	queue   *queue.Queue
	fresh   *freshness.Tracker
	monitor *netmon.Monitor
	tracker *PassTracker
	machine *state.Machine
}

// ackingRemote acknowledges every operation and returns empty pulls.
func ackingRemote() *api.RemoteStoreMock {
	return &api.RemoteStoreMock{
		ApplyOperationFunc: func(ctx context.Context, op pkgapi.Operation) error {
			return nil
		},
		FetchAuthoritativeFunc: func(ctx context.Context, dataType models.DataType, since *time.Time) ([]pkgapi.Record, error) {
			return nil, nil
		},
	}
}

func newFixture(t *testing.T, remote *api.RemoteStoreMock) *fixture {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	cfg := config.Default().Client
	cfg.AutoSync.Enabled = false
	cfg.RequestTimeout = config.Duration(2 * time.Second)

	logger := testLogger()
	monitor := netmon.New(logger)
	q := queue.New(store, 0, logger)
	fresh := freshness.New(store, 0, logger)
	tracker := NewPassTracker()
	machine := state.NewMachine(monitor, q, tracker, logger)
	m := metrics.NewEngine(prometheus.NewRegistry())

	coord := New(cfg, remote, q, fresh, store, monitor, tracker, machine, m, logger)

	return &fixture{
		coord:   coord,
		remote:  remote,
		store:   store,
		queue:   q,
		fresh:   fresh,
		monitor: monitor,
		tracker: tracker,
		machine: machine,
	}
}

func (f *fixture) goOnline() {
	f.monitor.Report(models.ConnectionState{Online: true, Type: models.ConnectionWifi})
}

func (f *fixture) enqueue(t *testing.T, dataType models.DataType) *models.PendingOperation {
	t.Helper()
	op, err := f.queue.Enqueue(context.Background(), dataType, models.OperationCreate, []byte(`{"id":"entity-1"}`))
	require.NoError(t, err)
	return op
}

func TestPerformFullSync_OfflineIsNotConnected(t *testing.T) {
	f := newFixture(t, ackingRemote())

	_, err := f.coord.PerformFullSync(context.Background())
	assert.ErrorIs(t, err, api.ErrNotConnected)
	assert.Empty(t, f.remote.ApplyOperationCalls())
	assert.Empty(t, f.remote.FetchAuthoritativeCalls())
}

func TestPerformFullSync_DrainsQueueAndRecordsFreshness(t *testing.T) {
	f := newFixture(t, ackingRemote())
	f.goOnline()
	ctx := context.Background()

	f.enqueue(t, models.DataTypeAssignment)
	f.enqueue(t, models.DataTypeCourse)

	summary, err := f.coord.PerformFullSync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Pushed)
	assert.Equal(t, 2, summary.Acked)
	assert.Equal(t, 0, summary.Requeued)
	assert.Empty(t, summary.Rejections)

	n, err := f.queue.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, ever, err := f.fresh.LastSuccessfulSyncAt(ctx)
	require.NoError(t, err)
	assert.True(t, ever)

	assert.Equal(t, models.StatusSynced, f.machine.Status(ctx))

	// One pull per data category
	assert.Len(t, f.remote.FetchAuthoritativeCalls(), len(models.AllDataTypes()))
}

func TestPerformFullSync_PushesInFIFOOrder(t *testing.T) {
	f := newFixture(t, ackingRemote())
	f.goOnline()

	first := f.enqueue(t, models.DataTypeAssignment)
	second := f.enqueue(t, models.DataTypeAssignment)
	third := f.enqueue(t, models.DataTypeAssignment)

	_, err := f.coord.PerformFullSync(context.Background())
	require.NoError(t, err)

	calls := f.remote.ApplyOperationCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, first.ID, calls[0].Op.ID)
	assert.Equal(t, second.ID, calls[1].Op.ID)
	assert.Equal(t, third.ID, calls[2].Op.ID)
}

func TestPerformFullSync_CachesPulledRecords(t *testing.T) {
	remote := ackingRemote()
	remote.FetchAuthoritativeFunc = func(ctx context.Context, dataType models.DataType, since *time.Time) ([]pkgapi.Record, error) {
		if dataType != models.DataTypeAssignment {
			return nil, nil
		}
		return []pkgapi.Record{
			{ID: "a1", DataType: string(dataType), Data: []byte(`{"id":"a1"}`), UpdatedAt: time.Now().UTC()},
		}, nil
	}

	f := newFixture(t, remote)
	f.goOnline()
	ctx := context.Background()

	summary, err := f.coord.PerformFullSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Pulled)

	records, err := f.store.ListCategory(ctx, models.DataTypeAssignment)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a1", records[0].ID)

	// Empty categories are cached as empty, not missing
	records, err = f.store.ListCategory(ctx, models.DataTypeCourse)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPerformFullSync_RejectionDrainsOperation(t *testing.T) {
	var poison string
	remote := ackingRemote()
	remote.ApplyOperationFunc = func(ctx context.Context, op pkgapi.Operation) error {
		if op.ID == poison {
			return &api.RejectionError{OperationID: op.ID, Reason: "payload is missing entity id"}
		}
		return nil
	}

	f := newFixture(t, remote)
	f.goOnline()
	ctx := context.Background()

	bad := f.enqueue(t, models.DataTypeAssignment)
	good := f.enqueue(t, models.DataTypeCourse)
	poison = bad.ID

	summary, err := f.coord.PerformFullSync(ctx)
	require.NoError(t, err)

	// The rejected operation is drained, the good one acknowledged;
	// the queue cannot be poisoned.
	assert.Equal(t, 1, summary.Acked)
	require.Len(t, summary.Rejections, 1)
	assert.Equal(t, bad.ID, summary.Rejections[0].OperationID)
	assert.Equal(t, models.DataTypeAssignment, summary.Rejections[0].DataType)
	assert.Equal(t, "payload is missing entity id", summary.Rejections[0].Reason)

	n, err := f.queue.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_ = good
	assert.Equal(t, models.StatusSynced, f.machine.Status(ctx))
}

func TestPerformFullSync_TransientFailureRequeues(t *testing.T) {
	remote := ackingRemote()
	remote.ApplyOperationFunc = func(ctx context.Context, op pkgapi.Operation) error {
		return &api.TransientError{Err: errors.New("gateway timeout")}
	}

	f := newFixture(t, remote)
	f.goOnline()
	ctx := context.Background()

	op := f.enqueue(t, models.DataTypeAssignment)

	// Three consecutive passes, each timing out on the same operation
	for pass := 1; pass <= 3; pass++ {
		summary, err := f.coord.PerformFullSync(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Requeued)
		assert.Equal(t, 0, summary.Acked)

		attempts, err := f.queue.MaxAttempts(ctx)
		require.NoError(t, err)
		assert.Equal(t, pass, attempts)
	}

	// Operation still queued, never silently dropped
	ops, err := f.queue.PeekBatch(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, op.ID, ops[0].ID)
	assert.Equal(t, 3, ops[0].Attempts)

	// Backoff grows with the attempt count and a retry is armed
	assert.Less(t, f.coord.RetryDelay(1), f.coord.RetryDelay(2))
	assert.Less(t, f.coord.RetryDelay(2), f.coord.RetryDelay(3))
	_, armed := f.coord.NextRetryAt()
	assert.True(t, armed)

	// Push absorbed the failure, so the pass itself succeeded and the
	// queue keeps the engine in pending.
	assert.Equal(t, models.StatusPending, f.machine.Status(ctx))
}

func TestPerformFullSync_PullFailureFailsPass(t *testing.T) {
	remote := ackingRemote()
	remote.FetchAuthoritativeFunc = func(ctx context.Context, dataType models.DataType, since *time.Time) ([]pkgapi.Record, error) {
		return nil, &api.TransientError{Err: errors.New("service unavailable")}
	}

	f := newFixture(t, remote)
	f.goOnline()
	ctx := context.Background()

	_, err := f.coord.PerformFullSync(ctx)
	require.Error(t, err)

	var pullErr *PullError
	require.ErrorAs(t, err, &pullErr)
	assert.Equal(t, models.DataTypeAssignment, pullErr.DataType)

	// Freshness is only recorded on a fully successful pass
	_, ever, ferr := f.fresh.LastSuccessfulSyncAt(ctx)
	require.NoError(t, ferr)
	assert.False(t, ever)

	assert.True(t, f.tracker.LastFailed())
	assert.Equal(t, models.StatusFailed, f.machine.Status(ctx))

	_, armed := f.coord.NextRetryAt()
	assert.True(t, armed)
}

func TestPerformFullSync_OfflineMidBatchAborts(t *testing.T) {
	var f *fixture
	remote := ackingRemote()
	remote.ApplyOperationFunc = func(ctx context.Context, op pkgapi.Operation) error {
		// Connectivity drops right after the first operation lands
		defer f.monitor.Report(models.Disconnected())
		return nil
	}

	f = newFixture(t, remote)
	f.goOnline()
	ctx := context.Background()

	f.enqueue(t, models.DataTypeAssignment)
	f.enqueue(t, models.DataTypeCourse)

	summary, err := f.coord.PerformFullSync(ctx)
	require.ErrorIs(t, err, api.ErrNotConnected)

	// Partial progress is kept: the acknowledged operation stays
	// acknowledged, the rest wait for reconnect.
	assert.Equal(t, 1, summary.Acked)

	n, err := f.queue.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPerformFullSync_SecondPassPullsIncrementally(t *testing.T) {
	remote := ackingRemote()
	pulled := map[string][]pkgapi.Record{
		"full": {{ID: "a1", DataType: "assignment", Data: []byte(`{"id":"a1"}`), UpdatedAt: time.Now().UTC()}},
		"incr": {{ID: "a2", DataType: "assignment", Data: []byte(`{"id":"a2"}`), UpdatedAt: time.Now().UTC()}},
	}
	remote.FetchAuthoritativeFunc = func(ctx context.Context, dataType models.DataType, since *time.Time) ([]pkgapi.Record, error) {
		if dataType != models.DataTypeAssignment {
			return nil, nil
		}
		if since == nil {
			return pulled["full"], nil
		}
		return pulled["incr"], nil
	}

	f := newFixture(t, remote)
	f.goOnline()
	ctx := context.Background()

	_, err := f.coord.PerformFullSync(ctx)
	require.NoError(t, err)
	_, err = f.coord.PerformFullSync(ctx)
	require.NoError(t, err)

	calls := f.remote.FetchAuthoritativeCalls()
	perPass := len(models.AllDataTypes())
	require.Len(t, calls, 2*perPass)
	assert.Nil(t, calls[0].Since)
	assert.NotNil(t, calls[perPass].Since)

	// The incremental pull merged instead of clobbering
	records, err := f.store.ListCategory(ctx, models.DataTypeAssignment)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestPerformFullSync_ConcurrentCallsCoalesce(t *testing.T) {
	release := make(chan struct{})
	remote := ackingRemote()
	remote.ApplyOperationFunc = func(ctx context.Context, op pkgapi.Operation) error {
		<-release
		return nil
	}

	f := newFixture(t, remote)
	f.goOnline()
	ctx := context.Background()

	f.enqueue(t, models.DataTypeAssignment)

	type result struct {
		summary *SyncSummary
		err     error
	}
	results := make(chan result, 2)

	go func() {
		s, err := f.coord.PerformFullSync(ctx)
		results <- result{s, err}
	}()

	require.Eventually(t, f.tracker.InFlight, time.Second, 5*time.Millisecond)

	go func() {
		s, err := f.coord.PerformFullSync(ctx)
		results <- result{s, err}
	}()

	// Give the second call a moment to coalesce, then let the pass run
	time.Sleep(20 * time.Millisecond)
	close(release)

	first := <-results
	second := <-results
	require.NoError(t, first.err)
	require.NoError(t, second.err)

	// One pass served both callers: the operation was replayed once
	assert.Len(t, f.remote.ApplyOperationCalls(), 1)
	assert.Equal(t, first.summary, second.summary)
}

func TestForceSyncNow_Offline(t *testing.T) {
	f := newFixture(t, ackingRemote())

	_, err := f.coord.ForceSyncNow(context.Background())
	assert.ErrorIs(t, err, api.ErrNotConnected)
}

func TestForceSyncNow_CancelsScheduledRetry(t *testing.T) {
	failing := true
	remote := ackingRemote()
	remote.ApplyOperationFunc = func(ctx context.Context, op pkgapi.Operation) error {
		if failing {
			return &api.TransientError{Err: errors.New("timeout")}
		}
		return nil
	}

	f := newFixture(t, remote)
	f.goOnline()
	ctx := context.Background()

	f.enqueue(t, models.DataTypeAssignment)

	_, err := f.coord.PerformFullSync(ctx)
	require.NoError(t, err)
	_, armed := f.coord.NextRetryAt()
	require.True(t, armed)

	// The user hits "sync now"; the backoff schedule must not delay it
	failing = false
	summary, err := f.coord.ForceSyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Acked)

	_, armed = f.coord.NextRetryAt()
	assert.False(t, armed)
}

func TestStart_ReconnectWithPendingTriggersPass(t *testing.T) {
	f := newFixture(t, ackingRemote())
	ctx := context.Background()

	f.enqueue(t, models.DataTypeAssignment)

	f.coord.Start()
	defer f.coord.Stop()

	f.goOnline()

	require.Eventually(t, func() bool {
		n, err := f.queue.Len(ctx)
		return err == nil && n == 0
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, models.StatusSynced, f.machine.Status(ctx))
}

func TestStart_ReconnectWithEmptyQueueStaysIdle(t *testing.T) {
	f := newFixture(t, ackingRemote())

	f.coord.Start()
	defer f.coord.Stop()

	f.goOnline()

	// No pending work, so reconnect alone must not start a pass
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, f.remote.FetchAuthoritativeCalls())
}
