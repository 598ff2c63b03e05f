package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jcordova-gis/geoingest/constants"
	"github.com/jcordova-gis/geoingest/gen/ent"
	"github.com/jcordova-gis/geoingest/internal/common"
	"github.com/jcordova-gis/geoingest/internal/entity"
)

// JobRepository satisfies jobs.Repository on top of Ent.
type JobRepository struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) *JobRepository {
	return &JobRepository{ent: entc, log: log}
}

func (r *JobRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	row, err := r.ent.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("job %s: %w", id, common.ErrNotFound)
		}
		r.log.Error("job lookup failed", "job_id", id, "err", err)
		return nil, fmt.Errorf("job %s: %w", id, common.ErrDatabase)
	}
	return jobFromRow(row), nil
}

func (r *JobRepository) Update(ctx context.Context, job *entity.Job) error {
	q := r.ent.Job.
		UpdateOneID(job.ID).
		SetName(job.Name).
		SetState(string(job.State))
	if job.Status != "" {
		q = q.SetStatus(string(job.Status))
	}
	if job.Extra != nil {
		q = q.SetExtra(job.Extra)
	}
	q = q.SetNillableStartTime(job.StartTime).
		SetNillableEndTime(job.EndTime).
		SetNillableDataProductID(job.DataProductID).
		SetNillableRawDataID(job.RawDataID)

	if _, err := q.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("job %s: %w", job.ID, common.ErrNotFound)
		}
		r.log.Error("job update failed", "job_id", job.ID, "err", err)
		return fmt.Errorf("job %s: %w", job.ID, common.ErrDatabase)
	}
	return nil
}

func jobFromRow(row *ent.Job) *entity.Job {
	j := &entity.Job{
		ID:            row.ID,
		Name:          row.Name,
		State:         constants.JobState(row.State),
		Extra:         row.Extra,
		StartTime:     row.StartTime,
		EndTime:       row.EndTime,
		DataProductID: row.DataProductID,
		RawDataID:     row.RawDataID,
	}
	if row.Status != nil {
		j.Status = constants.JobStatus(*row.Status)
	}
	return j
}
