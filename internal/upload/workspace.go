package upload

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Chunk sizes for streaming copies. Uploads can be multi-gigabyte, so a
// file is never read fully into memory.
const (
	copyBufferSize    = 32 * 1024 * 1024
	rawCopyBufferSize = 128 * 1024 * 1024
)

// RunWorkspace owns every filesystem path one processing run creates.
// It replaces parent/grandparent path arithmetic with an explicit value
// object: the run copies its input into the workspace root, registers
// any durable outputs it produces, and tears everything down through a
// single call on the failure path.
type RunWorkspace struct {
	root    string
	outputs []string
	logger  *slog.Logger
}

// NewRunWorkspace creates the run directory under baseDir, named after
// the job so concurrent runs cannot collide.
func NewRunWorkspace(baseDir string, jobID uuid.UUID, logger *slog.Logger) (*RunWorkspace, error) {
	if logger == nil {
		logger = slog.Default()
	}
	root := filepath.Join(baseDir, fmt.Sprintf(".upload-%s", jobID))
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &RunWorkspace{root: root, logger: logger}, nil
}

// Root returns the run directory.
func (w *RunWorkspace) Root() string {
	return w.root
}

// SourcePath returns the workspace location for the copied input file.
func (w *RunWorkspace) SourcePath(name string) string {
	return filepath.Join(w.root, filepath.Base(name))
}

// TrackOutput registers a durable artifact produced by this run so a
// later Discard can remove it.
func (w *RunWorkspace) TrackOutput(path string) {
	w.outputs = append(w.outputs, path)
}

// Cleanup removes the run directory, leaving tracked outputs in place.
// Used on the success path; errors are logged, never escalated.
func (w *RunWorkspace) Cleanup() {
	if err := os.RemoveAll(w.root); err != nil {
		w.logger.Warn("failed to remove run workspace", "root", w.root, "error", err)
	}
}

// Discard removes the run directory and every tracked output, including
// engine working directories left next to an output. Used on the
// failure path; errors are logged, never escalated.
func (w *RunWorkspace) Discard() {
	for _, out := range w.outputs {
		for _, p := range []string{out, out + "_tmp"} {
			if err := os.RemoveAll(p); err != nil {
				w.logger.Warn("failed to remove run output", "path", p, "error", err)
			}
		}
	}
	w.Cleanup()
}

// copyFile streams src into dst using a bounded buffer.
func copyFile(src, dst string, bufSize int) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	buf := make([]byte, bufSize)
	if _, err := io.CopyBuffer(out, in, buf); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
