package upload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWorkspaceCleanupKeepsOutputs(t *testing.T) {
	base := t.TempDir()
	ws, err := NewRunWorkspace(base, uuid.New(), nil)
	require.NoError(t, err)
	require.DirExists(t, ws.Root())

	src := ws.SourcePath("ortho.tif")
	require.NoError(t, os.WriteFile(src, []byte("copy"), 0o644))

	out := filepath.Join(base, "ortho.cog.tif")
	require.NoError(t, os.WriteFile(out, []byte("cog"), 0o644))
	ws.TrackOutput(out)

	ws.Cleanup()
	assert.NoDirExists(t, ws.Root())
	assert.FileExists(t, out, "success-path cleanup keeps durable outputs")
}

func TestRunWorkspaceDiscardRemovesEverything(t *testing.T) {
	base := t.TempDir()
	ws, err := NewRunWorkspace(base, uuid.New(), nil)
	require.NoError(t, err)

	out := filepath.Join(base, "survey.copc.laz")
	require.NoError(t, os.WriteFile(out, []byte("partial"), 0o644))
	require.NoError(t, os.MkdirAll(out+"_tmp", 0o755))
	ws.TrackOutput(out)

	ws.Discard()
	assert.NoDirExists(t, ws.Root())
	assert.NoFileExists(t, out)
	assert.NoDirExists(t, out+"_tmp")
}

func TestRunWorkspaceNamesAreJobScoped(t *testing.T) {
	base := t.TempDir()
	a, err := NewRunWorkspace(base, uuid.New(), nil)
	require.NoError(t, err)
	b, err := NewRunWorkspace(base, uuid.New(), nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.Root(), b.Root())
}

func TestCopyFileStreams(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	payload := make([]byte, 1<<20)
	for i := range payload {
		payload[i] = byte(i % 251)
	}
	require.NoError(t, os.WriteFile(src, payload, 0o644))

	require.NoError(t, copyFile(src, dst, 64*1024))
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
