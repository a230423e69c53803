package state

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aceup/plansync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

type fakeConn struct {
	online bool
}

func (f *fakeConn) State() models.ConnectionState {
	if f.online {
		return models.ConnectionState{Online: true, Type: models.ConnectionWifi}
	}
	return models.Disconnected()
}

type fakeQueue struct {
	n   int
	err error
}

func (f *fakeQueue) Len(ctx context.Context) (int, error) {
	return f.n, f.err
}

type fakePass struct {
	inFlight   bool
	lastFailed bool
}

func (f *fakePass) InFlight() bool   { return f.inFlight }
func (f *fakePass) LastFailed() bool { return f.lastFailed }

func TestStatus_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		online   bool
		inFlight bool
		failed   bool
		pending  int
		want     models.SyncStatus
	}{
		{"offline with empty queue", false, true, true, 0, models.StatusOffline},
		{"queued edit while offline is pending", false, false, false, 5, models.StatusPending},
		{"syncing beats failed", true, true, true, 5, models.StatusSyncing},
		{"failed beats pending", true, false, true, 5, models.StatusFailed},
		{"pending beats synced", true, false, false, 5, models.StatusPending},
		{"all clear is synced", true, false, false, 0, models.StatusSynced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(
				&fakeConn{online: tt.online},
				&fakeQueue{n: tt.pending},
				&fakePass{inFlight: tt.inFlight, lastFailed: tt.failed},
				testLogger(),
			)
			assert.Equal(t, tt.want, m.Status(context.Background()))
		})
	}
}

// Enqueueing while offline must surface the queued edit, not the
// missing link: the operation is durably stored and awaiting replay.
func TestStatus_OfflineMutationBecomesPending(t *testing.T) {
	queue := &fakeQueue{}
	m := NewMachine(&fakeConn{online: false}, queue, &fakePass{}, testLogger())
	ctx := context.Background()

	assert.Equal(t, models.StatusOffline, m.Status(ctx))

	queue.n = 1
	assert.Equal(t, models.StatusPending, m.Status(ctx))
}

func TestStatus_QueueUnreadableReportsFailed(t *testing.T) {
	m := NewMachine(
		&fakeConn{online: true},
		&fakeQueue{err: errors.New("db closed")},
		&fakePass{},
		testLogger(),
	)
	assert.Equal(t, models.StatusFailed, m.Status(context.Background()))
}

func TestStatus_QueueUnreadableWhileOffline(t *testing.T) {
	// Without connectivity there is no retry to schedule, so an
	// unreadable queue degrades to plain offline.
	m := NewMachine(
		&fakeConn{online: false},
		&fakeQueue{err: errors.New("db closed")},
		&fakePass{},
		testLogger(),
	)
	assert.Equal(t, models.StatusOffline, m.Status(context.Background()))
}

func TestRecompute_NotifiesOnChange(t *testing.T) {
	conn := &fakeConn{online: false}
	queue := &fakeQueue{}
	m := NewMachine(conn, queue, &fakePass{}, testLogger())

	var seen []models.SyncStatus
	m.Subscribe(func(s models.SyncStatus) {
		seen = append(seen, s)
	})

	// Initial published status is offline; recomputing offline again is
	// silent.
	m.Recompute(context.Background())
	assert.Empty(t, seen)

	conn.online = true
	m.Recompute(context.Background())
	assert.Equal(t, []models.SyncStatus{models.StatusSynced}, seen)

	queue.n = 2
	m.Recompute(context.Background())
	assert.Equal(t, []models.SyncStatus{models.StatusSynced, models.StatusPending}, seen)

	// Same status again stays silent
	m.Recompute(context.Background())
	assert.Len(t, seen, 2)
}

func TestRecompute_OfflineOnlineCycle(t *testing.T) {
	conn := &fakeConn{online: true}
	queue := &fakeQueue{n: 1}
	m := NewMachine(conn, queue, &fakePass{}, testLogger())

	var seen []models.SyncStatus
	m.Subscribe(func(s models.SyncStatus) {
		seen = append(seen, s)
	})

	m.Recompute(context.Background())

	// Losing the link does not change what the user sees: the edit is
	// still queued.
	conn.online = false
	m.Recompute(context.Background())

	// Once the queue drains, the missing link is the story.
	queue.n = 0
	m.Recompute(context.Background())

	conn.online = true
	m.Recompute(context.Background())

	assert.Equal(t, []models.SyncStatus{
		models.StatusPending,
		models.StatusOffline,
		models.StatusSynced,
	}, seen)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	conn := &fakeConn{online: false}
	m := NewMachine(conn, &fakeQueue{}, &fakePass{}, testLogger())

	calls := 0
	unsubscribe := m.Subscribe(func(s models.SyncStatus) { calls++ })

	conn.online = true
	m.Recompute(context.Background())
	unsubscribe()
	conn.online = false
	m.Recompute(context.Background())

	assert.Equal(t, 1, calls)
}
