package upload

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcordova-gis/geoingest/constants"
)

func TestParsePayloadRaster(t *testing.T) {
	jobID, productID, projectID := uuid.New(), uuid.New(), uuid.New()
	data := fmt.Sprintf(`{
		"kind": "RASTER",
		"job_id": %q,
		"data_product_id": %q,
		"project_id": %q,
		"storage_path": "/staging/abc123",
		"destination_path": "/static/products/ortho.cog.tif",
		"original_filename": "ortho.tif",
		"project_to_utm": true
	}`, jobID, productID, projectID)

	p, err := ParsePayload([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, constants.KindRaster, p.Kind)
	assert.Equal(t, jobID, p.JobID)
	require.NotNil(t, p.DataProductID)
	assert.Equal(t, productID, *p.DataProductID)
	assert.True(t, p.ProjectToUTM)
}

func TestParsePayloadRejectsUnknownKind(t *testing.T) {
	data := fmt.Sprintf(`{"kind":"MESH","job_id":%q,"project_id":%q,"storage_path":"/s/x"}`,
		uuid.New(), uuid.New())
	_, err := ParsePayload([]byte(data))
	require.Error(t, err)
}

func TestParsePayloadRasterRequiresProductAndDestination(t *testing.T) {
	data := fmt.Sprintf(`{"kind":"RASTER","job_id":%q,"project_id":%q,"storage_path":"/s/x"}`,
		uuid.New(), uuid.New())
	_, err := ParsePayload([]byte(data))
	require.Error(t, err)
}

func TestParsePayloadVectorMinimal(t *testing.T) {
	data := fmt.Sprintf(`{"kind":"VECTOR_LAYER","job_id":%q,"project_id":%q,"storage_path":"/s/plots.geojson","original_filename":"plots.geojson"}`,
		uuid.New(), uuid.New())
	p, err := ParsePayload([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, constants.KindVectorLayer, p.Kind)
}

func TestParsePayloadNotJSON(t *testing.T) {
	_, err := ParsePayload([]byte("definitely not json"))
	require.Error(t, err)
}

func TestParsePayloadBadUUID(t *testing.T) {
	data := `{"kind":"VECTOR_LAYER","job_id":"not-a-uuid","project_id":"also-not","storage_path":"/s/x"}`
	_, err := ParsePayload([]byte(data))
	require.Error(t, err)
}
