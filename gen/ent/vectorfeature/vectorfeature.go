// Code generated by ent, DO NOT EDIT.

package vectorfeature

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the vectorfeature type in the database.
	Label = "vector_feature"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldLayerName holds the string denoting the layer_name field in the database.
	FieldLayerName = "layer_name"
	// FieldOriginalFilename holds the string denoting the original_filename field in the database.
	FieldOriginalFilename = "original_filename"
	// FieldGeometryType holds the string denoting the geometry_type field in the database.
	FieldGeometryType = "geometry_type"
	// FieldGeometry holds the string denoting the geometry field in the database.
	FieldGeometry = "geometry"
	// FieldProperties holds the string denoting the properties field in the database.
	FieldProperties = "properties"
	// Table holds the table name of the vectorfeature in the database.
	Table = "vector_features"
)

// Columns holds all SQL columns for vectorfeature fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldLayerName,
	FieldOriginalFilename,
	FieldGeometryType,
	FieldGeometry,
	FieldProperties,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LayerNameValidator is a validator for the "layer_name" field. It is called by the builders before save.
	LayerNameValidator func(string) error
	// GeometryTypeValidator is a validator for the "geometry_type" field. It is called by the builders before save.
	GeometryTypeValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the VectorFeature queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByLayerName orders the results by the layer_name field.
func ByLayerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLayerName, opts...).ToFunc()
}

// ByOriginalFilename orders the results by the original_filename field.
func ByOriginalFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalFilename, opts...).ToFunc()
}

// ByGeometryType orders the results by the geometry_type field.
func ByGeometryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeometryType, opts...).ToFunc()
}
