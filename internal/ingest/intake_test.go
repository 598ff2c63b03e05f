package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcordova-gis/geoingest/internal/upload"
)

type fakeQueue struct {
	payloads []upload.TriggerPayload
	fail     error
}

func (q *fakeQueue) Enqueue(_ context.Context, p upload.TriggerPayload) error {
	if q.fail != nil {
		return q.fail
	}
	q.payloads = append(q.payloads, p)
	return nil
}

func stageVectorUpload(t *testing.T, dir string) (sidecarPath string, jobID uuid.UUID) {
	t.Helper()
	jobID = uuid.New()

	staged := filepath.Join(dir, "parcels.geojson")
	require.NoError(t, os.WriteFile(staged, []byte(`{"type":"FeatureCollection","features":[]}`), 0o644))

	payload := fmt.Sprintf(`{
		"kind": "VECTOR_LAYER",
		"job_id": %q,
		"project_id": %q,
		"storage_path": %q
	}`, jobID, uuid.New(), staged)

	sidecarPath = staged + ".info"
	require.NoError(t, os.WriteFile(sidecarPath, []byte(payload), 0o644))
	return sidecarPath, jobID
}

func TestIntakeEnqueuesValidSidecar(t *testing.T) {
	dir := t.TempDir()
	sidecar, jobID := stageVectorUpload(t, dir)

	q := &fakeQueue{}
	in := NewIntake(q, slog.Default())
	in.handle(context.Background(), sidecar)

	require.Len(t, q.payloads, 1)
	assert.Equal(t, jobID, q.payloads[0].JobID)
}

func TestIntakeSkipsMalformedSidecar(t *testing.T) {
	dir := t.TempDir()
	sidecar := filepath.Join(dir, "broken.tif.info")
	require.NoError(t, os.WriteFile(sidecar, []byte(`{"kind": "UNKNOWN"}`), 0o644))

	q := &fakeQueue{}
	NewIntake(q, slog.Default()).handle(context.Background(), sidecar)

	assert.Empty(t, q.payloads)
}

func TestIntakeSkipsSidecarWithMissingStagedFile(t *testing.T) {
	dir := t.TempDir()
	payload := fmt.Sprintf(`{
		"kind": "VECTOR_LAYER",
		"job_id": %q,
		"project_id": %q,
		"storage_path": %q
	}`, uuid.New(), uuid.New(), filepath.Join(dir, "nope.geojson"))

	sidecar := filepath.Join(dir, "nope.geojson.info")
	require.NoError(t, os.WriteFile(sidecar, []byte(payload), 0o644))

	q := &fakeQueue{}
	NewIntake(q, slog.Default()).handle(context.Background(), sidecar)

	assert.Empty(t, q.payloads)
}

func TestIntakeRunDrainsEventChannel(t *testing.T) {
	dir := t.TempDir()
	sidecar, jobID := stageVectorUpload(t, dir)

	events := make(chan string, 1)
	events <- sidecar
	close(events)

	q := &fakeQueue{}
	NewIntake(q, slog.Default()).Run(context.Background(), events)

	require.Len(t, q.payloads, 1)
	assert.Equal(t, jobID, q.payloads[0].JobID)
}

func TestWatcherEmitsNewSidecars(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, slog.Default(), WatchConfig{Root: dir})
	require.NoError(t, err)

	sidecar, _ := stageVectorUpload(t, dir)

	select {
	case got := <-events:
		assert.Equal(t, sidecar, got)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for sidecar event")
	}
}

func TestWatcherInitialScanFindsExistingSidecars(t *testing.T) {
	dir := t.TempDir()
	sidecar, _ := stageVectorUpload(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, slog.Default(), WatchConfig{Root: dir, InitialScan: true})
	require.NoError(t, err)

	got := <-events
	assert.Equal(t, sidecar, got)
}

func TestWatcherCancelWithPendingDebounce(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, slog.Default(), WatchConfig{
		Root:     dir,
		Debounce: 300 * time.Millisecond,
	})
	require.NoError(t, err)

	// Arm the debounce timer, then cancel before it fires. The late
	// timer must not write to the closed event channel.
	stageVectorUpload(t, dir)
	time.Sleep(100 * time.Millisecond)
	cancel()
	time.Sleep(400 * time.Millisecond)

	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-time.After(5 * time.Second):
			t.Fatal("event channel never closed after cancellation")
		}
	}
}

func TestWatcherDebounceCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, slog.Default(), WatchConfig{
		Root:     dir,
		Debounce: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	sidecar, _ := stageVectorUpload(t, dir)
	// Rewrite the sidecar a few times in quick succession.
	for i := 0; i < 3; i++ {
		data, rerr := os.ReadFile(sidecar)
		require.NoError(t, rerr)
		require.NoError(t, os.WriteFile(sidecar, data, 0o644))
	}

	select {
	case got := <-events:
		assert.Equal(t, sidecar, got)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for debounced event")
	}
}

func TestWatcherRequiresRoot(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), slog.Default(), WatchConfig{})
	require.Error(t, err)
}
