package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jcordova-gis/geoingest/gen/ent"
	"github.com/jcordova-gis/geoingest/internal/common"
	"github.com/jcordova-gis/geoingest/internal/entity"
)

// RawDataRepository satisfies upload.RawDataRepository on top of Ent.
type RawDataRepository struct {
	ent *ent.Client
	log *slog.Logger
}

func NewRawDataRepository(entc *ent.Client, log *slog.Logger) *RawDataRepository {
	return &RawDataRepository{ent: entc, log: log}
}

func (r *RawDataRepository) Get(ctx context.Context, id uuid.UUID) (*entity.RawData, error) {
	row, err := r.ent.RawData.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("raw data %s: %w", id, common.ErrNotFound)
		}
		r.log.Error("raw data lookup failed", "raw_data_id", id, "err", err)
		return nil, fmt.Errorf("raw data %s: %w", id, common.ErrDatabase)
	}
	return &entity.RawData{
		ID:                           row.ID,
		ProjectID:                    row.ProjectID,
		Filepath:                     row.Filepath,
		OriginalFilename:             row.OriginalFilename,
		IsActive:                     row.IsActive,
		IsInitialProcessingCompleted: row.IsInitialProcessingCompleted,
		DeactivatedAt:                row.DeactivatedAt,
		CreatedAt:                    row.CreatedAt,
		UpdatedAt:                    row.UpdatedAt,
	}, nil
}

func (r *RawDataRepository) Update(ctx context.Context, raw *entity.RawData) error {
	_, err := r.ent.RawData.
		UpdateOneID(raw.ID).
		SetFilepath(raw.Filepath).
		SetOriginalFilename(raw.OriginalFilename).
		SetIsActive(raw.IsActive).
		SetIsInitialProcessingCompleted(raw.IsInitialProcessingCompleted).
		SetNillableDeactivatedAt(raw.DeactivatedAt).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("raw data %s: %w", raw.ID, common.ErrNotFound)
		}
		r.log.Error("raw data update failed", "raw_data_id", raw.ID, "err", err)
		return fmt.Errorf("raw data %s: %w", raw.ID, common.ErrDatabase)
	}
	return nil
}
