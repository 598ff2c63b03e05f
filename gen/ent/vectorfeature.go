// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jcordova-gis/geoingest/gen/ent/vectorfeature"
)

// VectorFeature is the model entity for the VectorFeature schema.
type VectorFeature struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID uuid.UUID `json:"project_id,omitempty"`
	// LayerName holds the value of the "layer_name" field.
	LayerName string `json:"layer_name,omitempty"`
	// OriginalFilename holds the value of the "original_filename" field.
	OriginalFilename string `json:"original_filename,omitempty"`
	// GeometryType holds the value of the "geometry_type" field.
	GeometryType string `json:"geometry_type,omitempty"`
	// Geometry holds the value of the "geometry" field.
	Geometry json.RawMessage `json:"geometry,omitempty"`
	// Properties holds the value of the "properties" field.
	Properties   json.RawMessage `json:"properties,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VectorFeature) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vectorfeature.FieldGeometry, vectorfeature.FieldProperties:
			values[i] = new([]byte)
		case vectorfeature.FieldLayerName, vectorfeature.FieldOriginalFilename, vectorfeature.FieldGeometryType:
			values[i] = new(sql.NullString)
		case vectorfeature.FieldID, vectorfeature.FieldProjectID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VectorFeature fields.
func (_m *VectorFeature) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vectorfeature.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case vectorfeature.FieldProjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value != nil {
				_m.ProjectID = *value
			}
		case vectorfeature.FieldLayerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field layer_name", values[i])
			} else if value.Valid {
				_m.LayerName = value.String
			}
		case vectorfeature.FieldOriginalFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_filename", values[i])
			} else if value.Valid {
				_m.OriginalFilename = value.String
			}
		case vectorfeature.FieldGeometryType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field geometry_type", values[i])
			} else if value.Valid {
				_m.GeometryType = value.String
			}
		case vectorfeature.FieldGeometry:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field geometry", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Geometry); err != nil {
					return fmt.Errorf("unmarshal field geometry: %w", err)
				}
			}
		case vectorfeature.FieldProperties:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field properties", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Properties); err != nil {
					return fmt.Errorf("unmarshal field properties: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VectorFeature.
// This includes values selected through modifiers, order, etc.
func (_m *VectorFeature) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VectorFeature.
// Note that you need to call VectorFeature.Unwrap() before calling this method if this VectorFeature
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VectorFeature) Update() *VectorFeatureUpdateOne {
	return NewVectorFeatureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VectorFeature entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VectorFeature) Unwrap() *VectorFeature {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VectorFeature is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VectorFeature) String() string {
	var builder strings.Builder
	builder.WriteString("VectorFeature(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("layer_name=")
	builder.WriteString(_m.LayerName)
	builder.WriteString(", ")
	builder.WriteString("original_filename=")
	builder.WriteString(_m.OriginalFilename)
	builder.WriteString(", ")
	builder.WriteString("geometry_type=")
	builder.WriteString(_m.GeometryType)
	builder.WriteString(", ")
	builder.WriteString("geometry=")
	builder.WriteString(fmt.Sprintf("%v", _m.Geometry))
	builder.WriteString(", ")
	builder.WriteString("properties=")
	builder.WriteString(fmt.Sprintf("%v", _m.Properties))
	builder.WriteByte(')')
	return builder.String()
}

// VectorFeatures is a parsable slice of VectorFeature.
type VectorFeatures []*VectorFeature
