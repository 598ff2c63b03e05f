package upload

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcordova-gis/geoingest/constants"
)

func TestProcessRasterSuccess(t *testing.T) {
	f := newFixture(t)
	f.runner.stdout["gdalinfo"] = []byte(rasterInfoJSON)

	job := f.newJob("upload-raster")
	product := f.newProduct(constants.KindRaster)
	staged := f.stage(t, "ortho.tif", "tif bytes")
	dest := filepath.Join(f.staticDir, product.ID.String(), "ortho.cog.tif")

	f.orch.ProcessRaster(context.Background(), TriggerPayload{
		Kind:             constants.KindRaster,
		JobID:            job.ID,
		DataProductID:    &product.ID,
		ProjectID:        product.ProjectID,
		StoragePath:      staged,
		DestinationPath:  dest,
		OriginalFilename: "ortho.tif",
	})

	after := f.jobAfter(t, job.ID)
	assert.Equal(t, constants.JobStateCompleted, after.State)
	assert.Equal(t, constants.JobStatusSuccess, after.Status)
	require.NotNil(t, after.EndTime)

	stored, err := f.products.Get(context.Background(), product.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsInitialProcessingCompleted)
	assert.Equal(t, dest, stored.Filepath)
	assert.NotEmpty(t, stored.Metadata)
	assert.NotEmpty(t, stored.DefaultSymbology)

	assert.FileExists(t, dest)
	assert.NoFileExists(t, staged, "staged upload removed after consumption")
	assert.NoFileExists(t, staged+constants.InfoSuffix, "sidecar removed after consumption")

	// run workspace is gone
	entries, err := os.ReadDir(filepath.Dir(dest))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ortho.cog.tif", entries[0].Name())

	assert.NotContains(t, f.runner.calls, "gdalwarp", "no re-projection requested")
}

func TestProcessRasterEngineFailure(t *testing.T) {
	f := newFixture(t)
	f.runner.stdout["gdalinfo"] = []byte(rasterInfoJSON)
	f.runner.fail["gdal_translate"] = true

	job := f.newJob("upload-raster")
	product := f.newProduct(constants.KindRaster)
	staged := f.stage(t, "ortho.tif", "tif bytes")
	dest := filepath.Join(f.staticDir, product.ID.String(), "ortho.cog.tif")

	f.orch.ProcessRaster(context.Background(), TriggerPayload{
		Kind:             constants.KindRaster,
		JobID:            job.ID,
		DataProductID:    &product.ID,
		StoragePath:      staged,
		DestinationPath:  dest,
		OriginalFilename: "ortho.tif",
	})

	after := f.jobAfter(t, job.ID)
	assert.Equal(t, constants.JobStateCompleted, after.State)
	assert.Equal(t, constants.JobStatusFailed, after.Status)
	assert.Contains(t, string(after.Extra), "CONVERSION_ERROR")

	// nothing of the run survives
	entries, err := os.ReadDir(filepath.Dir(dest))
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoFileExists(t, staged)

	stored, err := f.products.Get(context.Background(), product.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsInitialProcessingCompleted)
}

func TestProcessRasterPersistFailureAfterConversion(t *testing.T) {
	f := newFixture(t)
	f.runner.stdout["gdalinfo"] = []byte(rasterInfoJSON)
	f.products.failUpdates = true

	job := f.newJob("upload-raster")
	product := f.newProduct(constants.KindRaster)
	staged := f.stage(t, "ortho.tif", "tif bytes")
	dest := filepath.Join(f.staticDir, product.ID.String(), "ortho.cog.tif")

	f.orch.ProcessRaster(context.Background(), TriggerPayload{
		JobID:            job.ID,
		DataProductID:    &product.ID,
		StoragePath:      staged,
		DestinationPath:  dest,
		OriginalFilename: "ortho.tif",
	})

	after := f.jobAfter(t, job.ID)
	assert.Equal(t, constants.JobStatusFailed, after.Status,
		"conversion success alone does not imply job success")
	assert.NoFileExists(t, dest)
}

func TestProcessRasterJobMissing(t *testing.T) {
	f := newFixture(t)
	product := f.newProduct(constants.KindRaster)
	staged := f.stage(t, "ortho.tif", "tif bytes")

	f.orch.ProcessRaster(context.Background(), TriggerPayload{
		JobID:            uuid.New(),
		DataProductID:    &product.ID,
		StoragePath:      staged,
		DestinationPath:  filepath.Join(f.staticDir, "ortho.cog.tif"),
		OriginalFilename: "ortho.tif",
	})

	// silent abort, but staged files are still cleaned up best-effort
	assert.NoFileExists(t, staged)
	assert.NoFileExists(t, staged+constants.InfoSuffix)
	assert.Empty(t, f.runner.calls)
}

func TestProcessRasterProductMissing(t *testing.T) {
	f := newFixture(t)
	job := f.newJob("upload-raster")
	staged := f.stage(t, "ortho.tif", "tif bytes")
	missing := uuid.New()

	f.orch.ProcessRaster(context.Background(), TriggerPayload{
		JobID:            job.ID,
		DataProductID:    &missing,
		StoragePath:      staged,
		DestinationPath:  filepath.Join(f.staticDir, "ortho.cog.tif"),
		OriginalFilename: "ortho.tif",
	})

	after := f.jobAfter(t, job.ID)
	assert.Equal(t, constants.JobStateCompleted, after.State)
	assert.Equal(t, constants.JobStatusFailed, after.Status)
	assert.NoFileExists(t, staged)
}

func TestProcessPointCloudCOPCPassthrough(t *testing.T) {
	f := newFixture(t)
	job := f.newJob("upload-point-cloud")
	product := f.newProduct(constants.KindPointCloud)
	staged := f.stage(t, "survey.copc.laz", "already optimized")
	dest := filepath.Join(f.staticDir, product.ID.String(), "survey.copc.laz")

	f.orch.ProcessPointCloud(context.Background(), TriggerPayload{
		Kind:             constants.KindPointCloud,
		JobID:            job.ID,
		DataProductID:    &product.ID,
		StoragePath:      staged,
		DestinationPath:  dest,
		OriginalFilename: "survey.copc.laz",
		ProjectToUTM:     true,
	})

	after := f.jobAfter(t, job.ID)
	assert.Equal(t, constants.JobStatusSuccess, after.Status)
	assert.Empty(t, f.runner.calls, "no conversion engine for an already optimized upload")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "already optimized", string(data))

	stored, err := f.products.Get(context.Background(), product.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsInitialProcessingCompleted)
}

func TestProcessPointCloudInvalidCentroidStillSucceeds(t *testing.T) {
	f := newFixture(t)
	// projected source coordinates: centroid far outside lat/lon range
	f.runner.stdout["pdal"] = []byte(`{"summary":{"bounds":{"minx":500000,"maxx":501000,"miny":4400000,"maxy":4401000}}}`)

	job := f.newJob("upload-point-cloud")
	product := f.newProduct(constants.KindPointCloud)
	staged := f.stage(t, "survey.las", "las bytes")
	dest := filepath.Join(f.staticDir, product.ID.String(), "survey.copc.laz")

	f.orch.ProcessPointCloud(context.Background(), TriggerPayload{
		JobID:            job.ID,
		DataProductID:    &product.ID,
		StoragePath:      staged,
		DestinationPath:  dest,
		OriginalFilename: "survey.las",
		ProjectToUTM:     true,
	})

	after := f.jobAfter(t, job.ID)
	assert.Equal(t, constants.JobStatusSuccess, after.Status,
		"out-of-range centroid skips re-projection but does not fail the job")
	assert.Contains(t, f.runner.calls, "untwine")
	assert.FileExists(t, dest)
}

func TestProcessPointCloudEngineFailure(t *testing.T) {
	f := newFixture(t)
	f.runner.fail["untwine"] = true

	job := f.newJob("upload-point-cloud")
	product := f.newProduct(constants.KindPointCloud)
	staged := f.stage(t, "survey.las", "las bytes")
	dest := filepath.Join(f.staticDir, product.ID.String(), "survey.copc.laz")

	f.orch.ProcessPointCloud(context.Background(), TriggerPayload{
		JobID:            job.ID,
		DataProductID:    &product.ID,
		StoragePath:      staged,
		DestinationPath:  dest,
		OriginalFilename: "survey.las",
	})

	after := f.jobAfter(t, job.ID)
	assert.Equal(t, constants.JobStatusFailed, after.Status)

	entries, err := os.ReadDir(filepath.Dir(dest))
	require.NoError(t, err)
	assert.Empty(t, entries, "no staging or output artifacts survive a failed run")
	assert.NoFileExists(t, staged)
}

func TestProcessRawDataSuccess(t *testing.T) {
	f := newFixture(t)
	job := f.newJob("upload-raw-data")
	row := f.newRawData()
	staged := f.stage(t, "flight.zip", "zip bytes")
	dest := filepath.Join(f.staticDir, "flight.zip")

	f.orch.ProcessRawData(context.Background(), TriggerPayload{
		Kind:             constants.KindRawData,
		JobID:            job.ID,
		RawDataID:        &row.ID,
		StoragePath:      staged,
		DestinationPath:  dest,
		OriginalFilename: "flight.zip",
	})

	after := f.jobAfter(t, job.ID)
	assert.Equal(t, constants.JobStatusSuccess, after.Status)
	assert.FileExists(t, dest)
	assert.NoFileExists(t, staged)

	stored, err := f.raws.Get(context.Background(), row.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsInitialProcessingCompleted)
	assert.Equal(t, dest, stored.Filepath)
}

func TestProcessVectorLayerSuccess(t *testing.T) {
	f := newFixture(t)
	job := f.newJob("upload-vector-layer")
	staged := f.stage(t, "plots.geojson", `{
		"type":"FeatureCollection",
		"features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[-86.9,40.4]},"properties":{"name":"a"}}]
	}`)

	f.orch.ProcessVectorLayer(context.Background(), TriggerPayload{
		Kind:             constants.KindVectorLayer,
		JobID:            job.ID,
		ProjectID:        uuid.New(),
		StoragePath:      staged,
		OriginalFilename: "plots.geojson",
	})

	after := f.jobAfter(t, job.ID)
	assert.Equal(t, constants.JobStatusSuccess, after.Status)
	assert.Len(t, f.featureStore.layers, 1)
	assert.NoFileExists(t, staged)
}

func TestProcessVectorLayerZeroFeatures(t *testing.T) {
	f := newFixture(t)
	job := f.newJob("upload-vector-layer")
	staged := f.stage(t, "empty.geojson", `{"type":"FeatureCollection","features":[]}`)

	f.orch.ProcessVectorLayer(context.Background(), TriggerPayload{
		JobID:            job.ID,
		ProjectID:        uuid.New(),
		StoragePath:      staged,
		OriginalFilename: "empty.geojson",
	})

	after := f.jobAfter(t, job.ID)
	assert.Equal(t, constants.JobStateCompleted, after.State)
	assert.Equal(t, constants.JobStatusFailed, after.Status)
	assert.Contains(t, string(after.Extra), "NO_FEATURES")
	assert.Empty(t, f.featureStore.layers, "no persistence call for an empty layer")
}

func TestProcessVectorLayerFileMissing(t *testing.T) {
	f := newFixture(t)
	job := f.newJob("upload-vector-layer")

	f.orch.ProcessVectorLayer(context.Background(), TriggerPayload{
		JobID:            job.ID,
		ProjectID:        uuid.New(),
		StoragePath:      filepath.Join(f.stagingDir, "gone.geojson"),
		OriginalFilename: "gone.geojson",
	})

	after := f.jobAfter(t, job.ID)
	assert.Equal(t, constants.JobStatusFailed, after.Status)
}
