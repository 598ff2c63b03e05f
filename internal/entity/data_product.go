package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jcordova-gis/geoingest/constants"
)

// DataProduct is the persisted artifact a processing job produces or
// updates: a cloud-optimized raster or point cloud plus derived metadata.
// A product with IsInitialProcessingCompleted false must not be exposed
// to end users as ready.
type DataProduct struct {
	ID               uuid.UUID            `json:"id"`
	ProjectID        uuid.UUID            `json:"project_id"`
	DataType         constants.UploadKind `json:"data_type"`
	Filepath         string               `json:"filepath"`
	OriginalFilename string               `json:"original_filename"`
	// Metadata carries the derived spatial properties: bounding box,
	// coordinate system, per-band statistics.
	Metadata json.RawMessage `json:"metadata,omitempty"`
	// DefaultSymbology is the visualization suggestion derived during
	// conversion (grayscale/RGB ramp, value range).
	DefaultSymbology json.RawMessage `json:"default_symbology,omitempty"`

	IsActive                     bool       `json:"is_active"`
	IsInitialProcessingCompleted bool       `json:"is_initial_processing_completed"`
	DeactivatedAt                *time.Time `json:"deactivated_at,omitempty"`
	CreatedAt                    time.Time  `json:"created_at"`
	UpdatedAt                    time.Time  `json:"updated_at"`
}
