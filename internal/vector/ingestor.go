// Package vector validates uploaded vector-layer files and loads their
// features for batch persistence. GeoJSON is parsed natively; other
// formats (shapefile, GeoPackage) go through ogr2ogr first.
package vector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"github.com/jcordova-gis/geoingest/constants"
	"github.com/jcordova-gis/geoingest/internal/common"
	"github.com/jcordova-gis/geoingest/internal/convert"
	"github.com/jcordova-gis/geoingest/internal/entity"
)

// FeatureStore persists a parsed vector layer in one batch operation.
type FeatureStore interface {
	SaveLayer(ctx context.Context, layer *entity.VectorLayer) error
}

// Config holds the ingestion policy knobs.
type Config struct {
	// FeatureLimit caps how many features one upload may carry; zero
	// disables the cap.
	FeatureLimit int
	// RejectMixedGeometries aborts ingestion on inconsistent geometry
	// types instead of logging each deviation.
	RejectMixedGeometries bool
}

// IngestResult summarizes a successful ingestion.
type IngestResult struct {
	FeatureCount       int
	GeometryType       string
	GeometryMismatches int
}

// Ingestor validates and loads vector-layer files.
type Ingestor struct {
	store   FeatureStore
	runner  convert.Runner
	engines common.EngineConfig
	cfg     Config
	logger  *slog.Logger
}

func NewIngestor(store FeatureStore, runner convert.Runner, engines common.EngineConfig, cfg Config, logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{store: store, runner: runner, engines: engines, cfg: cfg, logger: logger}
}

// Ingest reads the vector file at path, enforces the feature policy, and
// hands the parsed feature set to the store in one batch associated with
// the project. No partial persistence happens on any failure.
func (i *Ingestor) Ingest(ctx context.Context, path, originalName string, projectID uuid.UUID) (IngestResult, error) {
	fc, err := i.read(ctx, path)
	if err != nil {
		return IngestResult{}, err
	}

	if len(fc.Features) == 0 {
		return IngestResult{}, common.NewAppError("NO_FEATURES",
			"vector layer must have at least one feature", common.ErrValidation)
	}
	if i.cfg.FeatureLimit > 0 && len(fc.Features) > i.cfg.FeatureLimit {
		return IngestResult{}, common.NewAppError("FEATURE_LIMIT_EXCEEDED",
			fmt.Sprintf("vector layer has %d features, limit is %d", len(fc.Features), i.cfg.FeatureLimit),
			common.ErrValidation)
	}

	mismatches := 0
	var expected string
	for idx, f := range fc.Features {
		if f.Geometry == nil {
			return IngestResult{}, common.NewAppError("INVALID_GEOMETRY",
				fmt.Sprintf("feature %d has no geometry", idx), common.ErrValidation)
		}
		if idx == 0 {
			// the first feature sets the expected geometry type
			expected = f.Geometry.GeoJSONType()
			continue
		}
		if !geometryMatch(expected, f.Geometry.GeoJSONType()) {
			mismatches++
			i.logger.Error("inconsistent geometry type in vector layer",
				"file", originalName, "feature", idx,
				"expected", expected, "actual", f.Geometry.GeoJSONType())
		}
	}
	if mismatches > 0 && i.cfg.RejectMixedGeometries {
		return IngestResult{}, common.NewAppError("GEOMETRY_MISMATCH",
			fmt.Sprintf("%d features deviate from geometry type %s", mismatches, expected),
			common.ErrValidation)
	}

	layer := &entity.VectorLayer{
		ProjectID:        projectID,
		LayerName:        layerName(originalName),
		OriginalFilename: originalName,
	}
	for _, f := range fc.Features {
		geom, err := geojson.NewGeometry(f.Geometry).MarshalJSON()
		if err != nil {
			return IngestResult{}, common.NewAppError("INVALID_GEOMETRY", "encode feature geometry", err)
		}
		var props json.RawMessage
		if len(f.Properties) > 0 {
			if b, err := json.Marshal(f.Properties); err == nil {
				props = b
			}
		}
		layer.Features = append(layer.Features, entity.VectorFeature{
			ID:           uuid.New(),
			LayerName:    layer.LayerName,
			GeometryType: f.Geometry.GeoJSONType(),
			Geometry:     geom,
			Properties:   props,
		})
	}

	if err := i.store.SaveLayer(ctx, layer); err != nil {
		return IngestResult{}, common.WrapError(err, "persist vector layer")
	}

	return IngestResult{
		FeatureCount:       len(layer.Features),
		GeometryType:       expected,
		GeometryMismatches: mismatches,
	}, nil
}

func (i *Ingestor) read(ctx context.Context, path string) (*geojson.FeatureCollection, error) {
	src := path
	ext := constants.NormalizeExt(filepath.Ext(path))
	if ext != "geojson" && ext != "json" {
		// convert shapefile/GeoPackage/zip archives to GeoJSON first
		tmp := path + ".geojson"
		defer func() { _ = os.Remove(tmp) }()
		if _, errb, err := i.runner.Run(ctx, i.engines.OGR2OGR, i.logger, "-f", "GeoJSON", tmp, path); err != nil {
			msg := fmt.Sprintf("ogr2ogr: %s", strings.TrimSpace(string(errb)))
			return nil, common.NewAppError("UNREADABLE_FILE", msg, fmt.Errorf("%w: %w", common.ErrValidation, err))
		}
		src = tmp
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, common.NewAppError("UNREADABLE_FILE", "read vector layer file", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, common.NewAppError("UNREADABLE_FILE", "parse vector layer file",
			fmt.Errorf("%w: %w", common.ErrValidation, err))
	}
	return fc, nil
}

// geometryMatch treats a geometry and its Multi variant as consistent,
// matching how mixed single/multi shapefiles are read in practice.
func geometryMatch(expected, actual string) bool {
	if expected == actual {
		return true
	}
	return strings.TrimPrefix(expected, "Multi") == strings.TrimPrefix(actual, "Multi")
}

func layerName(originalName string) string {
	base := filepath.Base(originalName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
