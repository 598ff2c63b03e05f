package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/jcordova-gis/geoingest/internal/entity"
)

// FeatureSource lists the stored features of a project's vector layer.
type FeatureSource interface {
	ListFeatures(ctx context.Context, projectID uuid.UUID, layerName string) ([]entity.VectorFeature, error)
}

// Service is a tiny façade over the feature store that produces XLSX
// attribute tables for download.
type Service struct {
	features FeatureSource
	logger   *slog.Logger
}

func NewService(features FeatureSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{features: features, logger: logger}
}

// ExportAttributesXLSX returns an XLSX workbook (as bytes) with one row
// per feature of the named layer. Property columns are the union of all
// property keys seen across the layer, sorted for a stable layout.
func (s *Service) ExportAttributesXLSX(ctx context.Context, projectID uuid.UUID, layerName string) ([]byte, error) {
	start := time.Now()

	feats, err := s.features.ListFeatures(ctx, projectID, layerName)
	if err != nil {
		return nil, fmt.Errorf("query features: %w", err)
	}

	props := make([]map[string]any, len(feats))
	keySet := map[string]struct{}{}
	for i, feat := range feats {
		if len(feat.Properties) == 0 {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(feat.Properties, &m); err != nil {
			s.logger.Warn("skipping unreadable feature properties",
				"feature_id", feat.ID.String(), "error", err)
			continue
		}
		props[i] = m
		for k := range m {
			keySet[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f := excelize.NewFile()
	const sheet = "Attributes"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := append([]string{"Feature ID", "Geometry Type"}, keys...)
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for i, feat := range feats {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, feat.ID.String())
		write(2, feat.GeometryType)

		for j, k := range keys {
			if props[i] == nil {
				continue
			}
			v, ok := props[i][k]
			if !ok || v == nil {
				continue
			}
			write(3+j, cellValue(v))
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 38) // feature id
	_ = f.SetColWidth(sheet, "B", "B", 16) // geometry type

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"project_id", projectID.String(),
		"layer", layerName,
		"rows", len(feats),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// cellValue keeps scalar properties typed and flattens anything nested
// back to JSON text.
func cellValue(v any) any {
	switch v.(type) {
	case string, float64, bool:
		return v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}
