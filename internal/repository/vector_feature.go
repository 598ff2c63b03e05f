package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jcordova-gis/geoingest/gen/ent"
	"github.com/jcordova-gis/geoingest/gen/ent/vectorfeature"
	"github.com/jcordova-gis/geoingest/internal/common"
	"github.com/jcordova-gis/geoingest/internal/entity"
)

// VectorFeatureRepository satisfies vector.FeatureStore and
// export.FeatureSource on top of Ent.
type VectorFeatureRepository struct {
	ent *ent.Client
	log *slog.Logger
}

func NewVectorFeatureRepository(entc *ent.Client, log *slog.Logger) *VectorFeatureRepository {
	return &VectorFeatureRepository{ent: entc, log: log}
}

// SaveLayer writes all features of one uploaded layer in a single
// transaction, so a partially ingested layer never becomes visible.
func (r *VectorFeatureRepository) SaveLayer(ctx context.Context, layer *entity.VectorLayer) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		r.log.Error("begin layer transaction failed", "layer", layer.LayerName, "err", err)
		return fmt.Errorf("layer %s: %w", layer.LayerName, common.ErrDatabase)
	}

	builders := make([]*ent.VectorFeatureCreate, len(layer.Features))
	for i, feat := range layer.Features {
		builders[i] = tx.VectorFeature.
			Create().
			SetID(feat.ID).
			SetProjectID(layer.ProjectID).
			SetLayerName(layer.LayerName).
			SetOriginalFilename(layer.OriginalFilename).
			SetGeometryType(feat.GeometryType).
			SetGeometry(feat.Geometry).
			SetProperties(feat.Properties)
	}
	if _, err := tx.VectorFeature.CreateBulk(builders...).Save(ctx); err != nil {
		_ = tx.Rollback()
		r.log.Error("layer bulk insert failed", "layer", layer.LayerName, "err", err)
		return fmt.Errorf("layer %s: %w", layer.LayerName, common.ErrDatabase)
	}
	if err := tx.Commit(); err != nil {
		r.log.Error("layer commit failed", "layer", layer.LayerName, "err", err)
		return fmt.Errorf("layer %s: %w", layer.LayerName, common.ErrDatabase)
	}

	r.log.Info("layer persisted", "layer", layer.LayerName, "features", len(layer.Features))
	return nil
}

func (r *VectorFeatureRepository) ListFeatures(ctx context.Context, projectID uuid.UUID, layerName string) ([]entity.VectorFeature, error) {
	rows, err := r.ent.VectorFeature.
		Query().
		Where(
			vectorfeature.ProjectID(projectID),
			vectorfeature.LayerName(layerName),
		).
		All(ctx)
	if err != nil {
		r.log.Error("layer query failed", "layer", layerName, "err", err)
		return nil, fmt.Errorf("layer %s: %w", layerName, common.ErrDatabase)
	}

	feats := make([]entity.VectorFeature, len(rows))
	for i, row := range rows {
		feats[i] = entity.VectorFeature{
			ID:           row.ID,
			LayerName:    row.LayerName,
			GeometryType: row.GeometryType,
			Geometry:     row.Geometry,
			Properties:   row.Properties,
		}
	}
	return feats, nil
}
