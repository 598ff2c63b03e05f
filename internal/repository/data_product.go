package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jcordova-gis/geoingest/constants"
	"github.com/jcordova-gis/geoingest/gen/ent"
	"github.com/jcordova-gis/geoingest/internal/common"
	"github.com/jcordova-gis/geoingest/internal/entity"
)

// DataProductRepository satisfies upload.DataProductRepository on top of Ent.
type DataProductRepository struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDataProductRepository(entc *ent.Client, log *slog.Logger) *DataProductRepository {
	return &DataProductRepository{ent: entc, log: log}
}

func (r *DataProductRepository) Get(ctx context.Context, id uuid.UUID) (*entity.DataProduct, error) {
	row, err := r.ent.DataProduct.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("data product %s: %w", id, common.ErrNotFound)
		}
		r.log.Error("data product lookup failed", "data_product_id", id, "err", err)
		return nil, fmt.Errorf("data product %s: %w", id, common.ErrDatabase)
	}
	return &entity.DataProduct{
		ID:                           row.ID,
		ProjectID:                    row.ProjectID,
		DataType:                     constants.UploadKind(row.DataType),
		Filepath:                     row.Filepath,
		OriginalFilename:             row.OriginalFilename,
		Metadata:                     row.Metadata,
		DefaultSymbology:             row.DefaultSymbology,
		IsActive:                     row.IsActive,
		IsInitialProcessingCompleted: row.IsInitialProcessingCompleted,
		DeactivatedAt:                row.DeactivatedAt,
		CreatedAt:                    row.CreatedAt,
		UpdatedAt:                    row.UpdatedAt,
	}, nil
}

func (r *DataProductRepository) Update(ctx context.Context, product *entity.DataProduct) error {
	q := r.ent.DataProduct.
		UpdateOneID(product.ID).
		SetFilepath(product.Filepath).
		SetOriginalFilename(product.OriginalFilename).
		SetIsActive(product.IsActive).
		SetIsInitialProcessingCompleted(product.IsInitialProcessingCompleted).
		SetNillableDeactivatedAt(product.DeactivatedAt)
	if product.Metadata != nil {
		q = q.SetMetadata(product.Metadata)
	}
	if product.DefaultSymbology != nil {
		q = q.SetDefaultSymbology(product.DefaultSymbology)
	}

	if _, err := q.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("data product %s: %w", product.ID, common.ErrNotFound)
		}
		r.log.Error("data product update failed", "data_product_id", product.ID, "err", err)
		return fmt.Errorf("data product %s: %w", product.ID, common.ErrDatabase)
	}
	return nil
}
