package jobs

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcordova-gis/geoingest/constants"
	"github.com/jcordova-gis/geoingest/internal/common"
	"github.com/jcordova-gis/geoingest/internal/entity"
)

type memoryRepo struct {
	mu      sync.Mutex
	jobs    map[uuid.UUID]*entity.Job
	updates int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{jobs: map[uuid.UUID]*entity.Job{}}
}

func (m *memoryRepo) add(job *entity.Job) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *job
	m.jobs[job.ID] = &cp
}

func (m *memoryRepo) Get(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "job "+id.String())
	}
	cp := *j
	return &cp, nil
}

func (m *memoryRepo) Update(_ context.Context, job *entity.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	cp := *job
	m.jobs[job.ID] = &cp
	return nil
}

func newCreatedJob(repo *memoryRepo) *entity.Job {
	job := &entity.Job{ID: uuid.New(), Name: "upload-raster", State: constants.JobStateCreated}
	repo.add(job)
	return job
}

func TestLoadMissingJob(t *testing.T) {
	m := NewManager(newMemoryRepo(), nil)
	_, err := m.Load(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestStartPersistsTransition(t *testing.T) {
	repo := newMemoryRepo()
	job := newCreatedJob(repo)
	m := NewManager(repo, nil)

	require.NoError(t, m.Start(context.Background(), job))

	// a poll right after the call already observes the new state
	stored, err := repo.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStateStarted, stored.State)
	assert.Equal(t, constants.JobStatusInProgress, stored.Status)
	require.NotNil(t, stored.StartTime)
	assert.Nil(t, stored.EndTime)
}

func TestCompleteSuccess(t *testing.T) {
	repo := newMemoryRepo()
	job := newCreatedJob(repo)
	m := NewManager(repo, nil)
	require.NoError(t, m.Start(context.Background(), job))

	require.NoError(t, m.Complete(context.Background(), job, constants.JobStatusSuccess, nil))

	stored, err := repo.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStateCompleted, stored.State)
	assert.Equal(t, constants.JobStatusSuccess, stored.Status)
	require.NotNil(t, stored.EndTime, "end_time set iff state is COMPLETED")
}

func TestCompleteFailedWithExtra(t *testing.T) {
	repo := newMemoryRepo()
	job := newCreatedJob(repo)
	m := NewManager(repo, nil)
	require.NoError(t, m.Start(context.Background(), job))

	extra := map[string]any{"status": 0, "detail": "engine exited non-zero"}
	require.NoError(t, m.Complete(context.Background(), job, constants.JobStatusFailed, extra))

	stored, err := repo.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, stored.Status)
	assert.JSONEq(t, `{"status":0,"detail":"engine exited non-zero"}`, string(stored.Extra))
}

func TestCompleteRejectsNonTerminalStatus(t *testing.T) {
	repo := newMemoryRepo()
	job := newCreatedJob(repo)
	m := NewManager(repo, nil)
	require.NoError(t, m.Start(context.Background(), job))
	updatesBefore := repo.updates

	err := m.Complete(context.Background(), job, constants.JobStatusInProgress, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Equal(t, updatesBefore, repo.updates, "invalid transition must not persist")
}

func TestCompleteLastWriterWins(t *testing.T) {
	repo := newMemoryRepo()
	job := newCreatedJob(repo)
	m := NewManager(repo, nil)
	require.NoError(t, m.Start(context.Background(), job))

	require.NoError(t, m.Complete(context.Background(), job, constants.JobStatusSuccess, nil))
	require.NoError(t, m.Complete(context.Background(), job, constants.JobStatusFailed, nil))

	stored, err := repo.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, stored.Status,
		"manager does not arbitrate; single terminal call is the orchestrator's contract")
}
