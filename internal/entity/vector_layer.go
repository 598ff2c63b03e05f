package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

// VectorFeature is one parsed feature from an uploaded vector layer,
// ready for batch persistence against a project.
type VectorFeature struct {
	ID           uuid.UUID `json:"id"`
	LayerName    string    `json:"layer_name"`
	GeometryType string    `json:"geometry_type"`
	// Geometry is the GeoJSON-encoded geometry.
	Geometry   json.RawMessage `json:"geometry"`
	Properties json.RawMessage `json:"properties,omitempty"`
}

// VectorLayer groups the features of one uploaded file for a single
// batch write.
type VectorLayer struct {
	ProjectID        uuid.UUID       `json:"project_id"`
	LayerName        string          `json:"layer_name"`
	OriginalFilename string          `json:"original_filename"`
	Features         []VectorFeature `json:"features"`
}
