// Code generated by ent, DO NOT EDIT.

package job

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExtra holds the string denoting the extra field in the database.
	FieldExtra = "extra"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldDataProductID holds the string denoting the data_product_id field in the database.
	FieldDataProductID = "data_product_id"
	// FieldRawDataID holds the string denoting the raw_data_id field in the database.
	FieldRawDataID = "raw_data_id"
	// EdgeDataProduct holds the string denoting the data_product edge name in mutations.
	EdgeDataProduct = "data_product"
	// EdgeRawData holds the string denoting the raw_data edge name in mutations.
	EdgeRawData = "raw_data"
	// Table holds the table name of the job in the database.
	Table = "jobs"
	// DataProductTable is the table that holds the data_product relation/edge.
	DataProductTable = "jobs"
	// DataProductInverseTable is the table name for the DataProduct entity.
	// It exists in this package in order to avoid circular dependency with the "dataproduct" package.
	DataProductInverseTable = "data_products"
	// DataProductColumn is the table column denoting the data_product relation/edge.
	DataProductColumn = "data_product_id"
	// RawDataTable is the table that holds the raw_data relation/edge.
	RawDataTable = "jobs"
	// RawDataInverseTable is the table name for the RawData entity.
	// It exists in this package in order to avoid circular dependency with the "rawdata" package.
	RawDataInverseTable = "raw_data"
	// RawDataColumn is the table column denoting the raw_data relation/edge.
	RawDataColumn = "raw_data_id"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldState,
	FieldStatus,
	FieldExtra,
	FieldStartTime,
	FieldEndTime,
	FieldDataProductID,
	FieldRawDataID,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultState holds the default value on creation for the "state" field.
	DefaultState string
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByDataProductID orders the results by the data_product_id field.
func ByDataProductID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataProductID, opts...).ToFunc()
}

// ByRawDataID orders the results by the raw_data_id field.
func ByRawDataID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawDataID, opts...).ToFunc()
}

// ByDataProductField orders the results by data_product field.
func ByDataProductField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDataProductStep(), sql.OrderByField(field, opts...))
	}
}

// ByRawDataField orders the results by raw_data field.
func ByRawDataField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRawDataStep(), sql.OrderByField(field, opts...))
	}
}
func newDataProductStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DataProductInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DataProductTable, DataProductColumn),
	)
}
func newRawDataStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RawDataInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RawDataTable, RawDataColumn),
	)
}
