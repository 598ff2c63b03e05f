package async

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcordova-gis/geoingest/constants"
	"github.com/jcordova-gis/geoingest/internal/upload"
)

type recorder struct {
	mu   sync.Mutex
	seen []uuid.UUID
	done chan struct{}
	want int
}

func newRecorder(want int) *recorder {
	return &recorder{done: make(chan struct{}), want: want}
}

func (r *recorder) handle(_ context.Context, p upload.TriggerPayload) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, p.JobID)
	if len(r.seen) == r.want {
		close(r.done)
	}
}

func (r *recorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for handler calls")
	}
}

func trigger() upload.TriggerPayload {
	return upload.TriggerPayload{
		Kind:      constants.KindRawData,
		JobID:     uuid.New(),
		ProjectID: uuid.New(),
	}
}

func TestQueueProcessesEnqueuedPayloads(t *testing.T) {
	rec := newRecorder(3)
	q := NewUploadQueue(rec.handle, slog.Default(), WithWorkers(2))

	want := make(map[uuid.UUID]bool)
	for i := 0; i < 3; i++ {
		p := trigger()
		want[p.JobID] = true
		require.NoError(t, q.Enqueue(context.Background(), p))
	}

	rec.wait(t)
	q.Shutdown(context.Background())

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Len(t, rec.seen, 3)
	for _, id := range rec.seen {
		assert.True(t, want[id])
	}
}

func TestQueueShutdownDrainsInFlightWork(t *testing.T) {
	started := make(chan struct{})
	finished := make(chan struct{})
	q := NewUploadQueue(func(ctx context.Context, p upload.TriggerPayload) {
		close(started)
		time.Sleep(50 * time.Millisecond)
		close(finished)
	}, slog.Default(), WithWorkers(1))

	require.NoError(t, q.Enqueue(context.Background(), trigger()))
	<-started

	q.Shutdown(context.Background())

	select {
	case <-finished:
	default:
		t.Fatal("shutdown returned before in-flight work finished")
	}
}

func TestQueueEnqueueAfterShutdownIsDropped(t *testing.T) {
	rec := newRecorder(1)
	q := NewUploadQueue(rec.handle, slog.Default(), WithWorkers(1))
	q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), trigger()))

	select {
	case <-rec.done:
		t.Fatal("handler should not run after shutdown")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestQueueHandlerReceivesDeadline(t *testing.T) {
	got := make(chan bool, 1)
	q := NewUploadQueue(func(ctx context.Context, p upload.TriggerPayload) {
		_, ok := ctx.Deadline()
		got <- ok
	}, slog.Default(), WithWorkers(1), WithProcessTimeout(time.Minute))

	require.NoError(t, q.Enqueue(context.Background(), trigger()))

	select {
	case ok := <-got:
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("handler never ran")
	}
	q.Shutdown(context.Background())
}
