package convert

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/paulmach/orb/geojson"

	"github.com/jcordova-gis/geoingest/internal/common"
	"github.com/jcordova-gis/geoingest/internal/geo"
)

// Fixed COG creation options. Keeping these constant makes a re-run on
// the same source produce an equivalent optimized file.
var cogCreationArgs = []string{
	"-of", "COG",
	"-co", "COMPRESS=DEFLATE",
	"-co", "BLOCKSIZE=512",
	"-co", "OVERVIEW_RESAMPLING=AVERAGE",
	"-co", "BIGTIFF=IF_SAFER",
}

// RasterOptions controls one raster conversion run.
type RasterOptions struct {
	ProjectToUTM bool
}

// BandStats holds the value range reported for one raster band.
type BandStats struct {
	Band int     `json:"band"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// RasterMetadata is the derived spatial metadata for a converted raster.
type RasterMetadata struct {
	Bounds geo.Bounds  `json:"bounds"`
	EPSG   int         `json:"epsg,omitempty"`
	Bands  []BandStats `json:"bands"`
}

// RasterResult is returned on a successful raster conversion.
type RasterResult struct {
	OutputPath string
	Metadata   RasterMetadata
	Symbology  Symbology
}

// RasterConverter turns an uploaded GeoTIFF into a cloud-optimized
// raster and extracts its spatial metadata.
type RasterConverter struct {
	runner Runner
	cfg    common.EngineConfig
	logger *slog.Logger
}

func NewRasterConverter(runner Runner, cfg common.EngineConfig, logger *slog.Logger) *RasterConverter {
	if logger == nil {
		logger = slog.Default()
	}
	return &RasterConverter{runner: runner, cfg: cfg, logger: logger}
}

// gdalinfo -json output, reduced to the fields we read.
type gdalInfoReport struct {
	WGS84Extent *geojson.Geometry `json:"wgs84Extent"`
	STAC        struct {
		EPSG *int `json:"proj:epsg"`
	} `json:"stac"`
	Bands []struct {
		Band    int      `json:"band"`
		Minimum *float64 `json:"minimum"`
		Maximum *float64 `json:"maximum"`
	} `json:"bands"`
}

// Run converts srcPath into a cloud-optimized raster at outPath. With
// ProjectToUTM set it first warps the source into the UTM zone of its
// centroid; a centroid outside geographic bounds downgrades this to a
// warning and the source CRS is kept.
func (c *RasterConverter) Run(ctx context.Context, srcPath, outPath string, opts RasterOptions) (RasterResult, error) {
	info, err := c.inspect(ctx, srcPath)
	if err != nil {
		return RasterResult{}, err
	}

	md := RasterMetadata{}
	if info.STAC.EPSG != nil {
		md.EPSG = *info.STAC.EPSG
	}
	for _, b := range info.Bands {
		s := BandStats{Band: b.Band}
		if b.Minimum != nil {
			s.Min = *b.Minimum
		}
		if b.Maximum != nil {
			s.Max = *b.Maximum
		}
		md.Bands = append(md.Bands, s)
	}
	if info.WGS84Extent != nil {
		bound := info.WGS84Extent.Geometry().Bound()
		md.Bounds = geo.Bounds{MinX: bound.Min[0], MinY: bound.Min[1], MaxX: bound.Max[0], MaxY: bound.Max[1]}
	}

	translateSrc := srcPath
	var warpPath string
	if opts.ProjectToUTM {
		lat, lon := md.Bounds.Centroid()
		code, rerr := geo.ResolveUTMZone(lat, lon)
		if rerr != nil {
			// non-fatal: keep the source CRS
			c.logger.Warn("skipping UTM re-projection", "src", srcPath, "lat", lat, "lon", lon, "error", rerr)
		} else {
			warpPath = outPath + ".utm.tif"
			if _, errb, werr := c.runner.Run(ctx, c.cfg.GDALWarp, c.logger,
				"-t_srs", geo.EPSGString(code), "-r", "bilinear", srcPath, warpPath); werr != nil {
				removeArtifacts(c.logger, warpPath)
				return RasterResult{}, engineError("gdalwarp", errb, werr)
			}
			translateSrc = warpPath
			md.EPSG = code
		}
	}

	args := append([]string{}, cogCreationArgs...)
	args = append(args, translateSrc, outPath)
	if _, errb, terr := c.runner.Run(ctx, c.cfg.GDALTranslate, c.logger, args...); terr != nil {
		removeArtifacts(c.logger, warpPath, outPath)
		return RasterResult{}, engineError("gdal_translate", errb, terr)
	}
	removeArtifacts(c.logger, warpPath)

	return RasterResult{
		OutputPath: outPath,
		Metadata:   md,
		Symbology:  DefaultSymbology(md.Bands),
	}, nil
}

func (c *RasterConverter) inspect(ctx context.Context, srcPath string) (gdalInfoReport, error) {
	out, errb, err := c.runner.Run(ctx, c.cfg.GDALInfo, c.logger, "-json", "-stats", srcPath)
	if err != nil {
		return gdalInfoReport{}, engineError("gdalinfo", errb, err)
	}
	var info gdalInfoReport
	if err := json.Unmarshal(out, &info); err != nil {
		return gdalInfoReport{}, common.NewAppError("CONVERSION_ERROR", "malformed gdalinfo output", err)
	}
	if len(info.Bands) == 0 {
		return gdalInfoReport{}, common.NewAppError("CONVERSION_ERROR", "raster has no bands", common.ErrConversion)
	}
	return info, nil
}

func engineError(engine string, stderr []byte, err error) error {
	msg := fmt.Sprintf("%s: %s", engine, truncate(string(stderr), 2<<10))
	return common.NewAppError("CONVERSION_ERROR", msg, fmt.Errorf("%w: %w", common.ErrConversion, err))
}

func removeArtifacts(logger *slog.Logger, paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			logger.Warn("failed to remove conversion artifact", "path", p, "error", err)
		}
	}
}
