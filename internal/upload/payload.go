package upload

import (
	"bytes"
	_ "embed"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jcordova-gis/geoingest/constants"
	"github.com/jcordova-gis/geoingest/internal/common"
)

//go:embed payload_schema.json
var payloadSchemaJSON string

var payloadSchema = mustCompilePayloadSchema()

func mustCompilePayloadSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.AssertFormat = true
	if err := c.AddResource("payload_schema.json", bytes.NewReader([]byte(payloadSchemaJSON))); err != nil {
		panic(err)
	}
	return c.MustCompile("payload_schema.json")
}

// TriggerPayload is the message handed to the pipeline when an upload
// finishes: identifiers for the job and target record plus the staged
// and destination file locations.
type TriggerPayload struct {
	Kind             constants.UploadKind `json:"kind"`
	JobID            uuid.UUID            `json:"job_id"`
	DataProductID    *uuid.UUID           `json:"data_product_id,omitempty"`
	RawDataID        *uuid.UUID           `json:"raw_data_id,omitempty"`
	ProjectID        uuid.UUID            `json:"project_id"`
	UserID           uuid.UUID            `json:"user_id"`
	StoragePath      string               `json:"storage_path"`
	DestinationPath  string               `json:"destination_path,omitempty"`
	OriginalFilename string               `json:"original_filename,omitempty"`
	ProjectToUTM     bool                 `json:"project_to_utm,omitempty"`
}

// ParsePayload decodes and validates a trigger payload against the
// embedded JSON Schema before anything is dispatched on it.
func ParsePayload(data []byte) (TriggerPayload, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return TriggerPayload{}, common.NewAppError("INVALID_PAYLOAD", "payload is not valid JSON", err)
	}
	if err := payloadSchema.Validate(raw); err != nil {
		return TriggerPayload{}, common.NewAppError("INVALID_PAYLOAD", "payload failed schema validation", err)
	}

	var p TriggerPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return TriggerPayload{}, common.NewAppError("INVALID_PAYLOAD", "decode payload", err)
	}
	return p, nil
}
