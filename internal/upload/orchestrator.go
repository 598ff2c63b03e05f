// Package upload coordinates one processing run per finished upload:
// it copies staged bytes into durable storage, drives the right
// converter or ingestor, persists results through the repositories, and
// guarantees cleanup of temporary and partial artifacts on every exit
// path. Failures never propagate past this package; the job record is
// the only channel for failure visibility.
package upload

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jcordova-gis/geoingest/constants"
	"github.com/jcordova-gis/geoingest/internal/common"
	"github.com/jcordova-gis/geoingest/internal/convert"
	"github.com/jcordova-gis/geoingest/internal/entity"
	"github.com/jcordova-gis/geoingest/internal/jobs"
	"github.com/jcordova-gis/geoingest/internal/vector"
)

// DataProductRepository loads and persists data product records.
type DataProductRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.DataProduct, error)
	Update(ctx context.Context, product *entity.DataProduct) error
}

// RawDataRepository loads and persists raw data records.
type RawDataRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.RawData, error)
	Update(ctx context.Context, raw *entity.RawData) error
}

// RasterConverter is the raster conversion capability.
type RasterConverter interface {
	Run(ctx context.Context, srcPath, outPath string, opts convert.RasterOptions) (convert.RasterResult, error)
}

// PointCloudConverter is the point cloud conversion capability.
type PointCloudConverter interface {
	Run(ctx context.Context, srcPath, outPath string, opts convert.PointCloudOptions) (convert.PointCloudResult, error)
}

// VectorIngestor is the vector-layer ingestion capability.
type VectorIngestor interface {
	Ingest(ctx context.Context, path, originalName string, projectID uuid.UUID) (vector.IngestResult, error)
}

// Orchestrator runs the per-upload processing template. One instance is
// shared by all workers; each run is sequential within itself and the
// design assumes at most one active run per target record (enforced by
// the dispatch layer, not here).
type Orchestrator struct {
	jobs       *jobs.Manager
	products   DataProductRepository
	rawData    RawDataRepository
	raster     RasterConverter
	pointCloud PointCloudConverter
	vector     VectorIngestor
	logger     *slog.Logger
}

func NewOrchestrator(
	manager *jobs.Manager,
	products DataProductRepository,
	rawData RawDataRepository,
	raster RasterConverter,
	pointCloud PointCloudConverter,
	ingestor VectorIngestor,
	logger *slog.Logger,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		jobs:       manager,
		products:   products,
		rawData:    rawData,
		raster:     raster,
		pointCloud: pointCloud,
		vector:     ingestor,
		logger:     logger,
	}
}

// Process dispatches a validated trigger payload to the processing path
// for its upload kind. It never returns an error: every failure is
// absorbed into the job record and the logs.
func (o *Orchestrator) Process(ctx context.Context, p TriggerPayload) {
	switch p.Kind {
	case constants.KindRaster:
		o.ProcessRaster(ctx, p)
	case constants.KindPointCloud:
		o.ProcessPointCloud(ctx, p)
	case constants.KindVectorLayer:
		o.ProcessVectorLayer(ctx, p)
	case constants.KindRawData:
		o.ProcessRawData(ctx, p)
	default:
		o.logger.Error("unknown upload kind", "kind", p.Kind, "job_id", p.JobID)
	}
}

// ProcessRaster converts an uploaded GeoTIFF into a cloud-optimized
// raster and updates the target data product.
func (o *Orchestrator) ProcessRaster(ctx context.Context, p TriggerPayload) {
	defer o.removeStaged(p)

	job, product, ok := o.resolveProduct(ctx, p)
	if !ok {
		return
	}
	if err := o.jobs.Start(ctx, job); err != nil {
		o.logger.Error("failed to start job", "job_id", p.JobID, "error", err)
		return
	}

	ws, err := NewRunWorkspace(filepath.Dir(p.DestinationPath), p.JobID, o.logger)
	if err != nil {
		o.completeFailed(ctx, job, "WORKSPACE_ERROR", err.Error())
		return
	}
	ws.TrackOutput(p.DestinationPath)

	srcCopy := ws.SourcePath(p.OriginalFilename)
	if err := copyFile(p.StoragePath, srcCopy, copyBufferSize); err != nil {
		ws.Discard()
		o.completeFailed(ctx, job, "COPY_ERROR", err.Error())
		return
	}

	res, err := o.raster.Run(ctx, srcCopy, p.DestinationPath, convert.RasterOptions{ProjectToUTM: p.ProjectToUTM})
	if err != nil {
		ws.Discard()
		o.completeFailed(ctx, job, "CONVERSION_ERROR", err.Error())
		return
	}

	// metadata checkpoint: path and derived properties in one write
	product.Filepath = res.OutputPath
	product.Metadata = mustJSON(res.Metadata)
	product.DefaultSymbology = mustJSON(res.Symbology)
	if err := o.products.Update(ctx, product); err != nil {
		ws.Discard()
		o.completeFailed(ctx, job, "PERSIST_ERROR", err.Error())
		return
	}

	// completion checkpoint: only after conversion and metadata persist
	product.IsInitialProcessingCompleted = true
	if err := o.products.Update(ctx, product); err != nil {
		ws.Discard()
		o.completeFailed(ctx, job, "PERSIST_ERROR", err.Error())
		return
	}

	ws.Cleanup()
	o.completeSuccess(ctx, job)
}

// ProcessPointCloud converts an uploaded LAS/LAZ file into a compressed
// cloud-optimized point cloud and updates the target data product.
func (o *Orchestrator) ProcessPointCloud(ctx context.Context, p TriggerPayload) {
	defer o.removeStaged(p)

	job, product, ok := o.resolveProduct(ctx, p)
	if !ok {
		return
	}
	if err := o.jobs.Start(ctx, job); err != nil {
		o.logger.Error("failed to start job", "job_id", p.JobID, "error", err)
		return
	}

	ws, err := NewRunWorkspace(filepath.Dir(p.DestinationPath), p.JobID, o.logger)
	if err != nil {
		o.completeFailed(ctx, job, "WORKSPACE_ERROR", err.Error())
		return
	}
	ws.TrackOutput(p.DestinationPath)

	srcCopy := ws.SourcePath(p.OriginalFilename)
	if err := copyFile(p.StoragePath, srcCopy, copyBufferSize); err != nil {
		ws.Discard()
		o.completeFailed(ctx, job, "COPY_ERROR", err.Error())
		return
	}

	res, err := o.pointCloud.Run(ctx, srcCopy, p.DestinationPath, convert.PointCloudOptions{ProjectToUTM: p.ProjectToUTM})
	if err != nil {
		ws.Discard()
		o.completeFailed(ctx, job, "CONVERSION_ERROR", err.Error())
		return
	}

	product.Filepath = res.OutputPath
	product.IsInitialProcessingCompleted = true
	if err := o.products.Update(ctx, product); err != nil {
		ws.Discard()
		o.completeFailed(ctx, job, "PERSIST_ERROR", err.Error())
		return
	}

	ws.Cleanup()
	o.completeSuccess(ctx, job)
}

// ProcessRawData copies an uploaded archive into durable storage with
// no conversion and updates the raw data record.
func (o *Orchestrator) ProcessRawData(ctx context.Context, p TriggerPayload) {
	defer o.removeStaged(p)

	job, err := o.jobs.Load(ctx, p.JobID)
	if err != nil {
		// the job cannot report its own failure if it cannot be located
		o.logger.Error("could not find job for upload process", "job_id", p.JobID, "error", err)
		return
	}

	if p.RawDataID == nil {
		o.failBeforeWork(ctx, job, "NOT_FOUND", "payload carries no raw data id")
		return
	}
	raw, err := o.rawData.Get(ctx, *p.RawDataID)
	if err != nil {
		o.logger.Error("could not find raw data record for upload process", "raw_data_id", p.RawDataID, "error", err)
		o.failBeforeWork(ctx, job, "NOT_FOUND", "raw data record not found")
		return
	}

	if err := o.jobs.Start(ctx, job); err != nil {
		o.logger.Error("failed to start job", "job_id", p.JobID, "error", err)
		return
	}

	if err := copyFile(p.StoragePath, p.DestinationPath, rawCopyBufferSize); err != nil {
		o.removePartial(p.DestinationPath)
		o.completeFailed(ctx, job, "COPY_ERROR", err.Error())
		return
	}

	raw.Filepath = p.DestinationPath
	raw.IsInitialProcessingCompleted = true
	if err := o.rawData.Update(ctx, raw); err != nil {
		o.removePartial(p.DestinationPath)
		o.completeFailed(ctx, job, "PERSIST_ERROR", err.Error())
		return
	}

	o.completeSuccess(ctx, job)
}

// ProcessVectorLayer validates an uploaded vector file and persists its
// features against the project in one batch.
func (o *Orchestrator) ProcessVectorLayer(ctx context.Context, p TriggerPayload) {
	defer o.removeStaged(p)

	job, err := o.jobs.Load(ctx, p.JobID)
	if err != nil {
		o.logger.Error("could not find job for upload process", "job_id", p.JobID, "error", err)
		return
	}
	if err := o.jobs.Start(ctx, job); err != nil {
		o.logger.Error("failed to start job", "job_id", p.JobID, "error", err)
		return
	}

	if _, err := os.Stat(p.StoragePath); err != nil {
		o.completeFailed(ctx, job, "NOT_FOUND", "cannot find uploaded file on disk")
		return
	}

	res, err := o.vector.Ingest(ctx, p.StoragePath, p.OriginalFilename, p.ProjectID)
	if err != nil {
		code := "INGEST_ERROR"
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			code = appErr.Code
		}
		o.completeFailed(ctx, job, code, err.Error())
		return
	}

	o.logger.Info("vector layer ingested",
		"job_id", job.ID, "features", res.FeatureCount,
		"geometry_type", res.GeometryType, "mismatches", res.GeometryMismatches)
	o.completeSuccess(ctx, job)
}

// resolveProduct performs steps 1-2 of the template: load the job, then
// the target data product. A missing job aborts silently; a missing
// product fails the job.
func (o *Orchestrator) resolveProduct(ctx context.Context, p TriggerPayload) (*entity.Job, *entity.DataProduct, bool) {
	job, err := o.jobs.Load(ctx, p.JobID)
	if err != nil {
		o.logger.Error("could not find job for upload process", "job_id", p.JobID, "error", err)
		return nil, nil, false
	}

	if p.DataProductID == nil {
		o.failBeforeWork(ctx, job, "NOT_FOUND", "payload carries no data product id")
		return nil, nil, false
	}
	product, err := o.products.Get(ctx, *p.DataProductID)
	if err != nil {
		o.logger.Error("could not find data product for upload process", "data_product_id", p.DataProductID, "error", err)
		o.failBeforeWork(ctx, job, "NOT_FOUND", "data product not found")
		return nil, nil, false
	}
	return job, product, true
}

// failBeforeWork marks a job FAILED before any processing happened.
// The state machine does not skip STARTED, so the job is started first.
func (o *Orchestrator) failBeforeWork(ctx context.Context, job *entity.Job, code, detail string) {
	if err := o.jobs.Start(ctx, job); err != nil {
		o.logger.Error("failed to start job", "job_id", job.ID, "error", err)
		return
	}
	o.completeFailed(ctx, job, code, detail)
}

func (o *Orchestrator) completeFailed(ctx context.Context, job *entity.Job, code, detail string) {
	extra := map[string]any{"status": 0, "code": code, "detail": detail}
	if err := o.jobs.Complete(ctx, job, constants.JobStatusFailed, extra); err != nil {
		o.logger.Error("failed to persist job failure", "job_id", job.ID, "error", err)
	}
}

func (o *Orchestrator) completeSuccess(ctx context.Context, job *entity.Job) {
	if err := o.jobs.Complete(ctx, job, constants.JobStatusSuccess, nil); err != nil {
		o.logger.Error("failed to persist job success", "job_id", job.ID, "error", err)
	}
}

// removeStaged deletes the consumed upload and its sidecar from staging
// storage. Runs on every exit path; errors are logged, never escalated.
func (o *Orchestrator) removeStaged(p TriggerPayload) {
	for _, path := range []string{p.StoragePath, p.StoragePath + constants.InfoSuffix} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			o.logger.Warn("unable to clean up staged upload", "path", path, "error", err)
		}
	}
}

func (o *Orchestrator) removePartial(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		o.logger.Warn("unable to remove partial output", "path", path, "error", err)
	}
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
