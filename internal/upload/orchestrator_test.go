package upload

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jcordova-gis/geoingest/constants"
	"github.com/jcordova-gis/geoingest/internal/common"
	"github.com/jcordova-gis/geoingest/internal/convert"
	"github.com/jcordova-gis/geoingest/internal/entity"
	"github.com/jcordova-gis/geoingest/internal/jobs"
	"github.com/jcordova-gis/geoingest/internal/vector"
)

// ---- in-memory repositories ----

type memJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.Job
}

func newMemJobRepo() *memJobRepo { return &memJobRepo{jobs: map[uuid.UUID]*entity.Job{}} }

func (m *memJobRepo) add(j *entity.Job) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *j
	m.jobs[j.ID] = &cp
}

func (m *memJobRepo) Get(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "job")
	}
	cp := *j
	return &cp, nil
}

func (m *memJobRepo) Update(_ context.Context, j *entity.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *j
	m.jobs[j.ID] = &cp
	return nil
}

type memProductRepo struct {
	mu          sync.Mutex
	products    map[uuid.UUID]*entity.DataProduct
	failUpdates bool
	updates     int
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[uuid.UUID]*entity.DataProduct{}}
}

func (m *memProductRepo) add(p *entity.DataProduct) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.products[p.ID] = &cp
}

func (m *memProductRepo) Get(_ context.Context, id uuid.UUID) (*entity.DataProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "data product")
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) Update(_ context.Context, p *entity.DataProduct) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failUpdates {
		return errors.New("db down")
	}
	m.updates++
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

type memRawRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.RawData
}

func newMemRawRepo() *memRawRepo { return &memRawRepo{rows: map[uuid.UUID]*entity.RawData{}} }

func (m *memRawRepo) add(r *entity.RawData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.rows[r.ID] = &cp
}

func (m *memRawRepo) Get(_ context.Context, id uuid.UUID) (*entity.RawData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "raw data")
	}
	cp := *r
	return &cp, nil
}

func (m *memRawRepo) Update(_ context.Context, r *entity.RawData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.rows[r.ID] = &cp
	return nil
}

// ---- scripted engine runner ----

type scriptRunner struct {
	stdout map[string][]byte
	fail   map[string]bool
	calls  []string
}

func newScriptRunner() *scriptRunner {
	return &scriptRunner{stdout: map[string][]byte{}, fail: map[string]bool{}}
}

func (s *scriptRunner) Run(_ context.Context, name string, _ *slog.Logger, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name)
	if s.fail[name] {
		return nil, []byte("engine blew up"), errors.New("exit status 1")
	}
	// engines that produce an output file
	if name == "gdal_translate" && len(args) > 0 {
		_ = os.WriteFile(args[len(args)-1], []byte("cog"), 0o644)
	}
	if name == "untwine" {
		for i, a := range args {
			if a == "-o" && i+1 < len(args) {
				_ = os.WriteFile(args[i+1], []byte("copc"), 0o644)
			}
		}
	}
	return s.stdout[name], nil, nil
}

// ---- fixture ----

type fixture struct {
	jobs         *memJobRepo
	products     *memProductRepo
	raws         *memRawRepo
	runner       *scriptRunner
	featureStore *fakeFeatureStore
	orch         *Orchestrator

	stagingDir string
	staticDir  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.Default()
	engines := common.EngineConfig{
		GDALInfo:      "gdalinfo",
		GDALTranslate: "gdal_translate",
		GDALWarp:      "gdalwarp",
		PDAL:          "pdal",
		Untwine:       "untwine",
		OGR2OGR:       "ogr2ogr",
	}

	f := &fixture{
		jobs:       newMemJobRepo(),
		products:   newMemProductRepo(),
		raws:       newMemRawRepo(),
		runner:     newScriptRunner(),
		stagingDir: t.TempDir(),
		staticDir:  t.TempDir(),
	}
	manager := jobs.NewManager(f.jobs, logger)
	f.featureStore = &fakeFeatureStore{}
	f.orch = NewOrchestrator(
		manager,
		f.products,
		f.raws,
		convert.NewRasterConverter(f.runner, engines, logger),
		convert.NewPointCloudConverter(f.runner, engines, logger),
		vector.NewIngestor(f.featureStore, f.runner, engines, vector.Config{}, logger),
		logger,
	)
	return f
}

type fakeFeatureStore struct {
	mu     sync.Mutex
	layers []*entity.VectorLayer
}

func (s *fakeFeatureStore) SaveLayer(_ context.Context, l *entity.VectorLayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layers = append(s.layers, l)
	return nil
}

func (f *fixture) stage(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(f.stagingDir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	require.NoError(t, os.WriteFile(path+constants.InfoSuffix, []byte(`{"meta":true}`), 0o644))
	return path
}

func (f *fixture) newJob(name string) *entity.Job {
	j := &entity.Job{ID: uuid.New(), Name: name, State: constants.JobStateCreated}
	f.jobs.add(j)
	return j
}

func (f *fixture) newRawData() *entity.RawData {
	r := &entity.RawData{ID: uuid.New(), ProjectID: uuid.New(), IsActive: true}
	f.raws.add(r)
	return r
}

func (f *fixture) newProduct(kind constants.UploadKind) *entity.DataProduct {
	p := &entity.DataProduct{ID: uuid.New(), ProjectID: uuid.New(), DataType: kind, IsActive: true}
	f.products.add(p)
	return p
}

func (f *fixture) jobAfter(t *testing.T, id uuid.UUID) *entity.Job {
	t.Helper()
	j, err := f.jobs.Get(context.Background(), id)
	require.NoError(t, err)
	return j
}

const rasterInfoJSON = `{
	"stac": {"proj:epsg": 4326},
	"wgs84Extent": {"type":"Polygon","coordinates":[[[-86.95,40.40],[-86.95,40.45],[-86.90,40.45],[-86.90,40.40],[-86.95,40.40]]]},
	"bands": [{"band":1,"minimum":12,"maximum":240}]
}`
