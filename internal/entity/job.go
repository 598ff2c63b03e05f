package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jcordova-gis/geoingest/constants"
)

// Job represents one long-running background operation. It is the single
// record external callers poll for progress; the pipeline never deletes it.
type Job struct {
	ID            uuid.UUID           `json:"id"`
	Name          string              `json:"name"`
	State         constants.JobState  `json:"state"`
	Status        constants.JobStatus `json:"status,omitempty"`
	Extra         json.RawMessage     `json:"extra,omitempty"`
	StartTime     *time.Time          `json:"start_time,omitempty"`
	EndTime       *time.Time          `json:"end_time,omitempty"`
	DataProductID *uuid.UUID          `json:"data_product_id,omitempty"`
	RawDataID     *uuid.UUID          `json:"raw_data_id,omitempty"`
}

// Terminal reports whether the job has reached its final state.
func (j *Job) Terminal() bool {
	return j.State == constants.JobStateCompleted
}
