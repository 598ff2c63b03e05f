package convert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcordova-gis/geoingest/internal/common"
)

func testEngines() common.EngineConfig {
	return common.EngineConfig{
		GDALInfo:      "gdalinfo",
		GDALTranslate: "gdal_translate",
		GDALWarp:      "gdalwarp",
		PDAL:          "pdal",
		Untwine:       "untwine",
		OGR2OGR:       "ogr2ogr",
	}
}

func gdalInfoJSON(epsg int, minLon, minLat, maxLon, maxLat float64, bands int) []byte {
	bandJSON := ""
	for i := 1; i <= bands; i++ {
		if i > 1 {
			bandJSON += ","
		}
		bandJSON += fmt.Sprintf(`{"band":%d,"minimum":%d,"maximum":%d}`, i, (i-1)*10, 200+i*10)
	}
	return []byte(fmt.Sprintf(`{
		"stac": {"proj:epsg": %d},
		"wgs84Extent": {"type":"Polygon","coordinates":[[[%g,%g],[%g,%g],[%g,%g],[%g,%g],[%g,%g]]]},
		"bands": [%s]
	}`, epsg,
		minLon, minLat, minLon, maxLat, maxLon, maxLat, maxLon, minLat, minLon, minLat,
		bandJSON))
}

func TestRasterRunSingleBand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "dsm.tif")
	out := filepath.Join(dir, "dsm.cog.tif")
	require.NoError(t, os.WriteFile(src, []byte("tif"), 0o644))

	r := newFakeRunner()
	r.stdout["gdalinfo"] = gdalInfoJSON(4326, -86.95, 40.40, -86.90, 40.45, 1)
	r.touchLast["gdal_translate"] = true

	c := NewRasterConverter(r, testEngines(), slog.Default())
	res, err := c.Run(context.Background(), src, out, RasterOptions{})
	require.NoError(t, err)

	assert.Equal(t, out, res.OutputPath)
	assert.FileExists(t, out)
	assert.Equal(t, 4326, res.Metadata.EPSG)
	assert.InDelta(t, -86.95, res.Metadata.Bounds.MinX, 1e-9)
	assert.InDelta(t, 40.45, res.Metadata.Bounds.MaxY, 1e-9)
	require.Len(t, res.Metadata.Bands, 1)
	assert.Equal(t, "singleband", res.Symbology.Mode)
	assert.False(t, r.called("gdalwarp"))
}

func TestRasterRunIdempotentMetadata(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ortho.tif")
	out := filepath.Join(dir, "ortho.cog.tif")
	require.NoError(t, os.WriteFile(src, []byte("tif"), 0o644))

	run := func() RasterResult {
		r := newFakeRunner()
		r.stdout["gdalinfo"] = gdalInfoJSON(4326, -86.95, 40.40, -86.90, 40.45, 3)
		r.touchLast["gdal_translate"] = true
		c := NewRasterConverter(r, testEngines(), slog.Default())
		res, err := c.Run(context.Background(), src, out, RasterOptions{})
		require.NoError(t, err)
		return res
	}

	first := run()
	second := run()
	assert.Equal(t, first.Metadata, second.Metadata)
	assert.Equal(t, first.Symbology, second.Symbology)
	assert.Equal(t, "rgb", first.Symbology.Mode)
}

func TestRasterRunProjectToUTM(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ortho.tif")
	out := filepath.Join(dir, "ortho.cog.tif")
	require.NoError(t, os.WriteFile(src, []byte("tif"), 0o644))

	r := newFakeRunner()
	r.stdout["gdalinfo"] = gdalInfoJSON(4326, -86.95, 40.40, -86.90, 40.45, 1)
	r.touchLast["gdalwarp"] = true
	r.touchLast["gdal_translate"] = true

	c := NewRasterConverter(r, testEngines(), slog.Default())
	res, err := c.Run(context.Background(), src, out, RasterOptions{ProjectToUTM: true})
	require.NoError(t, err)

	// centroid (40.425, -86.925) lands in UTM zone 16 north
	assert.True(t, containsArg(r.argsFor("gdalwarp"), "EPSG:32616"))
	assert.Equal(t, 32616, res.Metadata.EPSG)
	assert.NoFileExists(t, out+".utm.tif")
}

func TestRasterRunProjectToUTMInvalidCentroid(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ortho.tif")
	out := filepath.Join(dir, "ortho.cog.tif")
	require.NoError(t, os.WriteFile(src, []byte("tif"), 0o644))

	r := newFakeRunner()
	// extent outside valid geographic bounds: re-projection must be skipped
	r.stdout["gdalinfo"] = gdalInfoJSON(0, 500000, 4400000, 501000, 4401000, 1)
	r.touchLast["gdal_translate"] = true

	c := NewRasterConverter(r, testEngines(), slog.Default())
	res, err := c.Run(context.Background(), src, out, RasterOptions{ProjectToUTM: true})
	require.NoError(t, err)
	assert.False(t, r.called("gdalwarp"))
	assert.Equal(t, 0, res.Metadata.EPSG)
}

func TestRasterRunEngineFailureRemovesOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ortho.tif")
	out := filepath.Join(dir, "ortho.cog.tif")
	require.NoError(t, os.WriteFile(src, []byte("tif"), 0o644))
	// a partial output left over from the failed engine
	require.NoError(t, os.WriteFile(out, []byte("partial"), 0o644))

	r := newFakeRunner()
	r.stdout["gdalinfo"] = gdalInfoJSON(4326, -86.95, 40.40, -86.90, 40.45, 1)
	r.fail["gdal_translate"] = true
	r.stderr["gdal_translate"] = []byte("ERROR 1: out of memory")

	c := NewRasterConverter(r, testEngines(), slog.Default())
	_, err := c.Run(context.Background(), src, out, RasterOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "gdal_translate")
	assert.NoFileExists(t, out)
}

func TestRasterRunMalformedInfo(t *testing.T) {
	r := newFakeRunner()
	r.stdout["gdalinfo"] = []byte("not json")

	c := NewRasterConverter(r, testEngines(), slog.Default())
	_, err := c.Run(context.Background(), "in.tif", "out.tif", RasterOptions{})
	require.Error(t, err)
}
