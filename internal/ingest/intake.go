package ingest

import (
	"context"
	"log/slog"
	"os"

	"github.com/jcordova-gis/geoingest/internal/upload"
)

// Enqueuer accepts parsed triggers for background processing.
type Enqueuer interface {
	Enqueue(ctx context.Context, p upload.TriggerPayload) error
}

// Intake turns discovered sidecar files into queued upload triggers.
type Intake struct {
	queue  Enqueuer
	logger *slog.Logger
}

func NewIntake(queue Enqueuer, logger *slog.Logger) *Intake {
	return &Intake{queue: queue, logger: logger}
}

// Run consumes watcher events until the channel closes or ctx is
// cancelled. Malformed sidecars are logged and skipped; the staged
// files stay in place for operator inspection.
func (i *Intake) Run(ctx context.Context, events <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-events:
			if !ok {
				return
			}
			i.handle(ctx, path)
		}
	}
}

func (i *Intake) handle(ctx context.Context, sidecarPath string) {
	data, err := os.ReadFile(sidecarPath)
	if err != nil {
		i.logger.Error("failed to read upload sidecar", "path", sidecarPath, "error", err)
		return
	}

	p, err := upload.ParsePayload(data)
	if err != nil {
		i.logger.Error("rejecting malformed upload sidecar", "path", sidecarPath, "error", err)
		return
	}

	if _, err := os.Stat(p.StoragePath); err != nil {
		i.logger.Error("sidecar references missing staged file",
			"path", sidecarPath, "storage_path", p.StoragePath, "error", err)
		return
	}

	if err := i.queue.Enqueue(ctx, p); err != nil {
		i.logger.Error("failed to enqueue upload trigger", "job_id", p.JobID, "error", err)
		return
	}
	i.logger.Info("discovered staged upload", "job_id", p.JobID, "kind", p.Kind, "path", p.StoragePath)
}
