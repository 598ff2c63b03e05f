package vector

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcordova-gis/geoingest/internal/common"
	"github.com/jcordova-gis/geoingest/internal/entity"
)

type fakeStore struct {
	layers []*entity.VectorLayer
	err    error
}

func (s *fakeStore) SaveLayer(_ context.Context, layer *entity.VectorLayer) error {
	if s.err != nil {
		return s.err
	}
	s.layers = append(s.layers, layer)
	return nil
}

type noopRunner struct{}

func (noopRunner) Run(_ context.Context, _ string, _ *slog.Logger, _ ...string) ([]byte, []byte, error) {
	return nil, nil, nil
}

const pointsGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{"type":"Feature","geometry":{"type":"Point","coordinates":[-86.9,40.4]},"properties":{"name":"a"}},
		{"type":"Feature","geometry":{"type":"Point","coordinates":[-86.8,40.5]},"properties":{"name":"b"}}
	]
}`

const mixedGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{"type":"Feature","geometry":{"type":"Point","coordinates":[-86.9,40.4]},"properties":{}},
		{"type":"Feature","geometry":{"type":"LineString","coordinates":[[-86.9,40.4],[-86.8,40.5]]},"properties":{}}
	]
}`

func writeLayer(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func newTestIngestor(store *fakeStore, cfg Config) *Ingestor {
	return NewIngestor(store, noopRunner{}, common.EngineConfig{OGR2OGR: "ogr2ogr"}, cfg, slog.Default())
}

func TestIngestGeoJSON(t *testing.T) {
	store := &fakeStore{}
	ing := newTestIngestor(store, Config{})
	projectID := uuid.New()

	res, err := ing.Ingest(context.Background(), writeLayer(t, "plots.geojson", pointsGeoJSON), "plots.geojson", projectID)
	require.NoError(t, err)

	assert.Equal(t, 2, res.FeatureCount)
	assert.Equal(t, "Point", res.GeometryType)
	assert.Zero(t, res.GeometryMismatches)

	require.Len(t, store.layers, 1, "exactly one batch persistence call")
	layer := store.layers[0]
	assert.Equal(t, projectID, layer.ProjectID)
	assert.Equal(t, "plots", layer.LayerName)
	require.Len(t, layer.Features, 2)
	assert.JSONEq(t, `{"type":"Point","coordinates":[-86.9,40.4]}`, string(layer.Features[0].Geometry))
}

func TestIngestZeroFeatures(t *testing.T) {
	store := &fakeStore{}
	ing := newTestIngestor(store, Config{})

	_, err := ing.Ingest(context.Background(),
		writeLayer(t, "empty.geojson", `{"type":"FeatureCollection","features":[]}`),
		"empty.geojson", uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, store.layers, "no persistence on validation failure")
}

func TestIngestFeatureLimit(t *testing.T) {
	store := &fakeStore{}
	ing := newTestIngestor(store, Config{FeatureLimit: 1})

	_, err := ing.Ingest(context.Background(), writeLayer(t, "plots.geojson", pointsGeoJSON), "plots.geojson", uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, store.layers)
}

func TestIngestMixedGeometriesWarnPolicy(t *testing.T) {
	store := &fakeStore{}
	ing := newTestIngestor(store, Config{})

	res, err := ing.Ingest(context.Background(), writeLayer(t, "mixed.geojson", mixedGeoJSON), "mixed.geojson", uuid.New())
	require.NoError(t, err, "default policy logs mismatches and continues")
	assert.Equal(t, 1, res.GeometryMismatches)
	assert.Len(t, store.layers, 1)
}

func TestIngestMixedGeometriesRejectPolicy(t *testing.T) {
	store := &fakeStore{}
	ing := newTestIngestor(store, Config{RejectMixedGeometries: true})

	_, err := ing.Ingest(context.Background(), writeLayer(t, "mixed.geojson", mixedGeoJSON), "mixed.geojson", uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, store.layers)
}

func TestIngestMultiVariantIsConsistent(t *testing.T) {
	const multi = `{
		"type": "FeatureCollection",
		"features": [
			{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]},"properties":{}},
			{"type":"Feature","geometry":{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,0]]]]},"properties":{}}
		]
	}`
	store := &fakeStore{}
	ing := newTestIngestor(store, Config{RejectMixedGeometries: true})

	res, err := ing.Ingest(context.Background(), writeLayer(t, "parcels.geojson", multi), "parcels.geojson", uuid.New())
	require.NoError(t, err)
	assert.Zero(t, res.GeometryMismatches)
}

func TestIngestCorruptFile(t *testing.T) {
	store := &fakeStore{}
	ing := newTestIngestor(store, Config{})

	_, err := ing.Ingest(context.Background(), writeLayer(t, "bad.geojson", "not geojson"), "bad.geojson", uuid.New())
	require.Error(t, err)
	assert.Empty(t, store.layers)
}

func TestIngestStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("db down")}
	ing := newTestIngestor(store, Config{})

	_, err := ing.Ingest(context.Background(), writeLayer(t, "plots.geojson", pointsGeoJSON), "plots.geojson", uuid.New())
	require.Error(t, err)
	assert.ErrorContains(t, err, "persist vector layer")
}
