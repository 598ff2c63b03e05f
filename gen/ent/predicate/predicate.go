// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DataProduct is the predicate function for dataproduct builders.
type DataProduct func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// RawData is the predicate function for rawdata builders.
type RawData func(*sql.Selector)

// VectorFeature is the predicate function for vectorfeature builders.
type VectorFeature func(*sql.Selector)
