package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jcordova-gis/geoingest/internal/entity"
)

type fakeFeatureSource struct {
	features []entity.VectorFeature
	err      error
}

func (f *fakeFeatureSource) ListFeatures(_ context.Context, _ uuid.UUID, _ string) ([]entity.VectorFeature, error) {
	return f.features, f.err
}

func feature(geomType string, props map[string]any) entity.VectorFeature {
	raw, _ := json.Marshal(props)
	return entity.VectorFeature{
		ID:           uuid.New(),
		LayerName:    "parcels",
		GeometryType: geomType,
		Geometry:     json.RawMessage(`{"type":"Point","coordinates":[0,0]}`),
		Properties:   raw,
	}
}

func readRows(t *testing.T, workbook []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Attributes")
	require.NoError(t, err)
	return rows
}

func TestExportAttributesXLSX(t *testing.T) {
	src := &fakeFeatureSource{features: []entity.VectorFeature{
		feature("Point", map[string]any{"name": "well-1", "depth": 42.5}),
		feature("Point", map[string]any{"name": "well-2", "owner": "acme"}),
	}}
	svc := NewService(src, slog.Default())

	out, err := svc.ExportAttributesXLSX(context.Background(), uuid.New(), "parcels")
	require.NoError(t, err)

	rows := readRows(t, out)
	require.Len(t, rows, 3)

	// Union of property keys, sorted, after the fixed columns.
	assert.Equal(t, []string{"Feature ID", "Geometry Type", "depth", "name", "owner"}, rows[0])
	assert.Equal(t, "Point", rows[1][1])
	assert.Equal(t, "well-1", rows[1][3])
	assert.Equal(t, "well-2", rows[2][3])
	assert.Equal(t, "acme", rows[2][4])
}

func TestExportEmptyLayerProducesHeaderOnly(t *testing.T) {
	svc := NewService(&fakeFeatureSource{}, slog.Default())

	out, err := svc.ExportAttributesXLSX(context.Background(), uuid.New(), "parcels")
	require.NoError(t, err)

	rows := readRows(t, out)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Feature ID", "Geometry Type"}, rows[0])
}

func TestExportNestedPropertiesFlattenedToJSON(t *testing.T) {
	src := &fakeFeatureSource{features: []entity.VectorFeature{
		feature("Polygon", map[string]any{"tags": []any{"a", "b"}}),
	}}
	svc := NewService(src, slog.Default())

	out, err := svc.ExportAttributesXLSX(context.Background(), uuid.New(), "zones")
	require.NoError(t, err)

	rows := readRows(t, out)
	require.Len(t, rows, 2)
	assert.JSONEq(t, `["a","b"]`, rows[1][2])
}

func TestExportPropagatesStoreFailure(t *testing.T) {
	svc := NewService(&fakeFeatureSource{err: errors.New("boom")}, slog.Default())

	_, err := svc.ExportAttributesXLSX(context.Background(), uuid.New(), "parcels")
	require.Error(t, err)
}
