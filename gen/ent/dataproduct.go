// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jcordova-gis/geoingest/gen/ent/dataproduct"
)

// DataProduct is the model entity for the DataProduct schema.
type DataProduct struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID uuid.UUID `json:"project_id,omitempty"`
	// DataType holds the value of the "data_type" field.
	DataType string `json:"data_type,omitempty"`
	// Filepath holds the value of the "filepath" field.
	Filepath string `json:"filepath,omitempty"`
	// OriginalFilename holds the value of the "original_filename" field.
	OriginalFilename string `json:"original_filename,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata json.RawMessage `json:"metadata,omitempty"`
	// DefaultSymbology holds the value of the "default_symbology" field.
	DefaultSymbology json.RawMessage `json:"default_symbology,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// IsInitialProcessingCompleted holds the value of the "is_initial_processing_completed" field.
	IsInitialProcessingCompleted bool `json:"is_initial_processing_completed,omitempty"`
	// DeactivatedAt holds the value of the "deactivated_at" field.
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DataProductQuery when eager-loading is set.
	Edges        DataProductEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DataProductEdges holds the relations/edges for other nodes in the graph.
type DataProductEdges struct {
	// Jobs holds the value of the jobs edge.
	Jobs []*Job `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e DataProductEdges) JobsOrErr() ([]*Job, error) {
	if e.loadedTypes[0] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DataProduct) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dataproduct.FieldMetadata, dataproduct.FieldDefaultSymbology:
			values[i] = new([]byte)
		case dataproduct.FieldIsActive, dataproduct.FieldIsInitialProcessingCompleted:
			values[i] = new(sql.NullBool)
		case dataproduct.FieldDataType, dataproduct.FieldFilepath, dataproduct.FieldOriginalFilename:
			values[i] = new(sql.NullString)
		case dataproduct.FieldDeactivatedAt, dataproduct.FieldCreatedAt, dataproduct.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case dataproduct.FieldID, dataproduct.FieldProjectID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DataProduct fields.
func (_m *DataProduct) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dataproduct.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case dataproduct.FieldProjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value != nil {
				_m.ProjectID = *value
			}
		case dataproduct.FieldDataType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_type", values[i])
			} else if value.Valid {
				_m.DataType = value.String
			}
		case dataproduct.FieldFilepath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filepath", values[i])
			} else if value.Valid {
				_m.Filepath = value.String
			}
		case dataproduct.FieldOriginalFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_filename", values[i])
			} else if value.Valid {
				_m.OriginalFilename = value.String
			}
		case dataproduct.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case dataproduct.FieldDefaultSymbology:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field default_symbology", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DefaultSymbology); err != nil {
					return fmt.Errorf("unmarshal field default_symbology: %w", err)
				}
			}
		case dataproduct.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case dataproduct.FieldIsInitialProcessingCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_initial_processing_completed", values[i])
			} else if value.Valid {
				_m.IsInitialProcessingCompleted = value.Bool
			}
		case dataproduct.FieldDeactivatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deactivated_at", values[i])
			} else if value.Valid {
				_m.DeactivatedAt = new(time.Time)
				*_m.DeactivatedAt = value.Time
			}
		case dataproduct.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dataproduct.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DataProduct.
// This includes values selected through modifiers, order, etc.
func (_m *DataProduct) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJobs queries the "jobs" edge of the DataProduct entity.
func (_m *DataProduct) QueryJobs() *JobQuery {
	return NewDataProductClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this DataProduct.
// Note that you need to call DataProduct.Unwrap() before calling this method if this DataProduct
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DataProduct) Update() *DataProductUpdateOne {
	return NewDataProductClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DataProduct entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DataProduct) Unwrap() *DataProduct {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DataProduct is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DataProduct) String() string {
	var builder strings.Builder
	builder.WriteString("DataProduct(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("data_type=")
	builder.WriteString(_m.DataType)
	builder.WriteString(", ")
	builder.WriteString("filepath=")
	builder.WriteString(_m.Filepath)
	builder.WriteString(", ")
	builder.WriteString("original_filename=")
	builder.WriteString(_m.OriginalFilename)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("default_symbology=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultSymbology))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("is_initial_processing_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsInitialProcessingCompleted))
	builder.WriteString(", ")
	if v := _m.DeactivatedAt; v != nil {
		builder.WriteString("deactivated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DataProducts is a parsable slice of DataProduct.
type DataProducts []*DataProduct
