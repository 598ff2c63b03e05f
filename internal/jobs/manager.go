// Package jobs owns the lifecycle of background processing jobs. The
// Manager is the single writer for job state; external callers only
// poll the persisted record.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jcordova-gis/geoingest/constants"
	"github.com/jcordova-gis/geoingest/internal/common"
	"github.com/jcordova-gis/geoingest/internal/entity"
)

// Repository loads and persists job records. Get wraps
// common.ErrNotFound when no job matches the id.
type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	Update(ctx context.Context, job *entity.Job) error
}

// Manager drives the CREATED -> STARTED -> COMPLETED state machine.
// Every transition is persisted before the method returns, so a status
// poll immediately afterwards sees the new state. Guaranteeing a single
// terminal Complete call per job is the caller's responsibility.
type Manager struct {
	repo   Repository
	logger *slog.Logger
}

func NewManager(repo Repository, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{repo: repo, logger: logger}
}

// Load fetches the job for id; a missing job surfaces as an error
// wrapping common.ErrNotFound.
func (m *Manager) Load(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	job, err := m.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// Start moves the job into STARTED/IN_PROGRESS and records the start time.
func (m *Manager) Start(ctx context.Context, job *entity.Job) error {
	now := time.Now().UTC()
	job.State = constants.JobStateStarted
	job.Status = constants.JobStatusInProgress
	job.StartTime = &now
	if err := m.repo.Update(ctx, job); err != nil {
		return common.WrapError(err, "persist job start")
	}
	m.logger.Info("job started", "job_id", job.ID, "name", job.Name)
	return nil
}

// Complete moves the job into COMPLETED with the given outcome, records
// the end time, and attaches the optional diagnostic payload.
func (m *Manager) Complete(ctx context.Context, job *entity.Job, status constants.JobStatus, extra map[string]any) error {
	if status != constants.JobStatusSuccess && status != constants.JobStatusFailed {
		return common.NewAppError("INVALID_TRANSITION",
			fmt.Sprintf("terminal status must be SUCCESS or FAILED, got %s", status),
			common.ErrInvalidInput)
	}

	now := time.Now().UTC()
	job.State = constants.JobStateCompleted
	job.Status = status
	job.EndTime = &now
	if extra != nil {
		if b, err := json.Marshal(extra); err == nil {
			job.Extra = b
		} else {
			m.logger.Warn("dropping unencodable job extra payload", "job_id", job.ID, "error", err)
		}
	}
	if err := m.repo.Update(ctx, job); err != nil {
		return common.WrapError(err, "persist job completion")
	}

	if status == constants.JobStatusFailed {
		m.logger.Warn("job failed", "job_id", job.ID, "name", job.Name)
	} else {
		m.logger.Info("job finished", "job_id", job.ID, "name", job.Name)
	}
	return nil
}
