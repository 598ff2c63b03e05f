package entity

import (
	"time"

	"github.com/google/uuid"
)

// RawData is an unprocessed upload (typically a .zip of flight imagery)
// that is copied into durable storage without conversion.
type RawData struct {
	ID                           uuid.UUID  `json:"id"`
	ProjectID                    uuid.UUID  `json:"project_id"`
	Filepath                     string     `json:"filepath"`
	OriginalFilename             string     `json:"original_filename"`
	IsActive                     bool       `json:"is_active"`
	IsInitialProcessingCompleted bool       `json:"is_initial_processing_completed"`
	DeactivatedAt                *time.Time `json:"deactivated_at,omitempty"`
	CreatedAt                    time.Time  `json:"created_at"`
	UpdatedAt                    time.Time  `json:"updated_at"`
}
