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
)

func pdalSummaryJSON(minx, maxx, miny, maxy float64) []byte {
	return []byte(fmt.Sprintf(
		`{"summary":{"bounds":{"minx":%g,"maxx":%g,"miny":%g,"maxy":%g}}}`,
		minx, maxx, miny, maxy))
}

func TestPointCloudRunConvert(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "survey.las")
	out := filepath.Join(dir, "survey.copc.laz")
	require.NoError(t, os.WriteFile(src, []byte("las"), 0o644))
	// engine working directory left behind by untwine
	require.NoError(t, os.MkdirAll(out+"_tmp", 0o755))

	r := newFakeRunner()
	r.touchLast["untwine"] = true

	c := NewPointCloudConverter(r, testEngines(), slog.Default())
	res, err := c.Run(context.Background(), src, out, PointCloudOptions{})
	require.NoError(t, err)

	assert.Equal(t, out, res.OutputPath)
	assert.False(t, res.CopiedThrough)
	assert.FileExists(t, out)
	assert.NoDirExists(t, out+"_tmp")
	assert.False(t, r.called("pdal"))
	assert.False(t, containsArg(r.argsFor("untwine"), "--a_srs"))
}

func TestPointCloudRunCOPCPassthrough(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "survey.copc.laz")
	out := filepath.Join(dir, "out", "survey.copc.laz")
	require.NoError(t, os.MkdirAll(filepath.Dir(out), 0o755))
	require.NoError(t, os.WriteFile(src, []byte("copc bytes"), 0o644))

	r := newFakeRunner()
	c := NewPointCloudConverter(r, testEngines(), slog.Default())
	res, err := c.Run(context.Background(), src, out, PointCloudOptions{ProjectToUTM: true})
	require.NoError(t, err)

	assert.True(t, res.CopiedThrough)
	assert.Empty(t, r.calls, "no engine may run for an already optimized input")
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "copc bytes", string(data))
}

func TestPointCloudRunProjectToUTM(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "survey.las")
	out := filepath.Join(dir, "survey.copc.laz")
	require.NoError(t, os.WriteFile(src, []byte("las"), 0o644))

	r := newFakeRunner()
	r.stdout["pdal"] = pdalSummaryJSON(-86.95, -86.90, 40.40, 40.45)
	r.touchLast["untwine"] = true

	c := NewPointCloudConverter(r, testEngines(), slog.Default())
	res, err := c.Run(context.Background(), src, out, PointCloudOptions{ProjectToUTM: true})
	require.NoError(t, err)

	assert.Equal(t, 32616, res.EPSG)
	assert.True(t, containsArg(r.argsFor("untwine"), "EPSG:32616"))
}

func TestPointCloudRunCentroidOutsideBoundsSkipsProjection(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "survey.las")
	out := filepath.Join(dir, "survey.copc.laz")
	require.NoError(t, os.WriteFile(src, []byte("las"), 0o644))

	r := newFakeRunner()
	// projected coordinates: centroid far outside lat/lon range
	r.stdout["pdal"] = pdalSummaryJSON(500000, 501000, 4400000, 4401000)
	r.touchLast["untwine"] = true

	c := NewPointCloudConverter(r, testEngines(), slog.Default())
	res, err := c.Run(context.Background(), src, out, PointCloudOptions{ProjectToUTM: true})
	require.NoError(t, err, "out-of-range centroid is reported, not fatal")

	assert.Equal(t, 0, res.EPSG)
	assert.False(t, containsArg(r.argsFor("untwine"), "--a_srs"))
}

func TestPointCloudRunEngineFailure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "survey.las")
	out := filepath.Join(dir, "survey.copc.laz")
	require.NoError(t, os.WriteFile(src, []byte("las"), 0o644))
	require.NoError(t, os.WriteFile(out, []byte("partial"), 0o644))
	require.NoError(t, os.MkdirAll(out+"_tmp", 0o755))

	r := newFakeRunner()
	r.fail["untwine"] = true
	r.stderr["untwine"] = []byte("Unable to open file")

	c := NewPointCloudConverter(r, testEngines(), slog.Default())
	_, err := c.Run(context.Background(), src, out, PointCloudOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "untwine")
	assert.NoFileExists(t, out)
	assert.NoDirExists(t, out+"_tmp")
}

func TestDefaultSymbologyDeterministic(t *testing.T) {
	bands := []BandStats{{Band: 1, Min: 0, Max: 255}}
	assert.Equal(t, DefaultSymbology(bands), DefaultSymbology(bands))

	rgb := DefaultSymbology([]BandStats{{Band: 1}, {Band: 2}, {Band: 3}, {Band: 4}})
	assert.Equal(t, "rgb", rgb.Mode)
	require.NotNil(t, rgb.Blue)
	assert.Equal(t, 3, rgb.Blue.Band)

	two := DefaultSymbology([]BandStats{{Band: 1, Min: 5, Max: 9}, {Band: 2}})
	assert.Equal(t, "singleband", two.Mode)
	assert.Equal(t, 5.0, two.Min)
}
