package convert

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/jcordova-gis/geoingest/constants"
	"github.com/jcordova-gis/geoingest/internal/common"
	"github.com/jcordova-gis/geoingest/internal/geo"
)

// copyBufferSize is the chunk size for pass-through copies; uploads can
// be multi-gigabyte so the file is never held in memory at once.
const copyBufferSize = 32 * 1024 * 1024

// PointCloudOptions controls one point cloud conversion run.
type PointCloudOptions struct {
	ProjectToUTM bool
}

// PointCloudResult is returned on a successful point cloud conversion.
type PointCloudResult struct {
	OutputPath string
	// CopiedThrough is true when the input was already cloud optimized
	// and no engine was invoked.
	CopiedThrough bool
	// EPSG is the target CRS passed to the engine, 0 when the source
	// CRS was left untouched.
	EPSG int
}

// PointCloudConverter turns an uploaded LAS/LAZ file into a compressed
// cloud-optimized point cloud using untwine, reading summary metadata
// through pdal when re-projection is requested.
type PointCloudConverter struct {
	runner Runner
	cfg    common.EngineConfig
	logger *slog.Logger
}

func NewPointCloudConverter(runner Runner, cfg common.EngineConfig, logger *slog.Logger) *PointCloudConverter {
	if logger == nil {
		logger = slog.Default()
	}
	return &PointCloudConverter{runner: runner, cfg: cfg, logger: logger}
}

// pdal info --summary output, reduced to the fields we read.
type pdalSummary struct {
	Summary struct {
		Bounds geo.Bounds `json:"bounds"`
	} `json:"summary"`
}

// Run converts srcPath into a cloud-optimized point cloud at outPath.
// Inputs already named *.copc.laz are copied through unchanged. With
// ProjectToUTM set, the bounding-box centroid picks the target UTM zone;
// a centroid outside geographic bounds means the source CRS is assumed
// non-geographic and is left untouched.
func (c *PointCloudConverter) Run(ctx context.Context, srcPath, outPath string, opts PointCloudOptions) (PointCloudResult, error) {
	if constants.IsCOPC(srcPath) {
		if err := copyFileBuffered(srcPath, outPath); err != nil {
			removeArtifacts(c.logger, outPath)
			return PointCloudResult{}, common.NewAppError("CONVERSION_ERROR", "copy cloud-optimized point cloud", err)
		}
		return PointCloudResult{OutputPath: outPath, CopiedThrough: true}, nil
	}

	epsg := 0
	if opts.ProjectToUTM {
		bounds, err := c.summary(ctx, srcPath)
		if err != nil {
			return PointCloudResult{}, err
		}
		lat, lon := bounds.Centroid()
		code, rerr := geo.ResolveUTMZone(lat, lon)
		if rerr != nil {
			// reported, not fatal: the source CRS stays as-is
			c.logger.Warn("point cloud centroid outside geographic bounds, keeping source CRS",
				"src", srcPath, "lat", lat, "lon", lon)
		} else {
			epsg = code
		}
	}

	args := []string{"-i", srcPath, "-o", outPath}
	if epsg != 0 {
		args = append(args, "--a_srs", geo.EPSGString(epsg))
	}

	tmpDir := outPath + "_tmp"
	if _, errb, err := c.runner.Run(ctx, c.cfg.Untwine, c.logger, args...); err != nil {
		removeArtifacts(c.logger, outPath)
		removeTree(c.logger, tmpDir)
		return PointCloudResult{}, engineError("untwine", errb, err)
	}

	// untwine leaves its working directory behind on some versions
	removeTree(c.logger, tmpDir)

	return PointCloudResult{OutputPath: outPath, EPSG: epsg}, nil
}

func (c *PointCloudConverter) summary(ctx context.Context, srcPath string) (geo.Bounds, error) {
	out, errb, err := c.runner.Run(ctx, c.cfg.PDAL, c.logger, "info", "--summary", srcPath)
	if err != nil {
		return geo.Bounds{}, engineError("pdal info", errb, err)
	}
	var s pdalSummary
	if err := json.Unmarshal(out, &s); err != nil {
		return geo.Bounds{}, common.NewAppError("CONVERSION_ERROR", "malformed pdal summary output", err)
	}
	return s.Summary.Bounds, nil
}

func removeTree(logger *slog.Logger, path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := os.RemoveAll(path); err != nil {
		logger.Warn("failed to remove engine working directory", "path", path, "error", err)
	}
}

func copyFileBuffered(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	buf := make([]byte, copyBufferSize)
	if _, err := io.CopyBuffer(out, in, buf); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
