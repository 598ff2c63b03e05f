// runconvert runs a single conversion against local files, bypassing
// the daemon and the database. Useful for checking engine installs and
// debugging a problem upload.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jcordova-gis/geoingest/internal/common"
	"github.com/jcordova-gis/geoingest/internal/convert"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	kind := flag.String("kind", "raster", "conversion kind: raster or pointcloud")
	utm := flag.Bool("utm", false, "re-project the output to the centroid's UTM zone")
	timeout := flag.Duration("timeout", 30*time.Minute, "conversion timeout")
	flag.Parse()

	if flag.NArg() != 2 {
		logger.Error("usage", "cmd", "runconvert [-kind raster|pointcloud] [-utm] <src> <dest>")
		os.Exit(2)
	}
	src, dest := flag.Arg(0), flag.Arg(1)

	cfg := common.LoadConfig()
	runner := convert.NewExecRunner()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	start := time.Now()
	switch strings.ToLower(*kind) {
	case "raster":
		conv := convert.NewRasterConverter(runner, cfg.Engines, logger)
		res, err := conv.Run(ctx, src, dest, convert.RasterOptions{ProjectToUTM: *utm})
		if err != nil {
			logger.Error("raster conversion failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
			os.Exit(1)
		}
		meta, _ := json.Marshal(res.Metadata)
		logger.Info("raster conversion OK",
			"output", res.OutputPath,
			"metadata", string(meta),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	case "pointcloud":
		conv := convert.NewPointCloudConverter(runner, cfg.Engines, logger)
		res, err := conv.Run(ctx, src, dest, convert.PointCloudOptions{ProjectToUTM: *utm})
		if err != nil {
			logger.Error("point cloud conversion failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
			os.Exit(1)
		}
		logger.Info("point cloud conversion OK",
			"output", res.OutputPath,
			"copied_through", res.CopiedThrough,
			"epsg", res.EPSG,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	default:
		logger.Error("unknown kind", "kind", *kind)
		os.Exit(2)
	}
}
