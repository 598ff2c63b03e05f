// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jcordova-gis/geoingest/gen/ent/dataproduct"
	"github.com/jcordova-gis/geoingest/gen/ent/job"
	"github.com/jcordova-gis/geoingest/gen/ent/predicate"
)

// DataProductUpdate is the builder for updating DataProduct entities.
type DataProductUpdate struct {
	config
	hooks    []Hook
	mutation *DataProductMutation
}

// Where appends a list predicates to the DataProductUpdate builder.
func (_u *DataProductUpdate) Where(ps ...predicate.DataProduct) *DataProductUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *DataProductUpdate) SetProjectID(v uuid.UUID) *DataProductUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *DataProductUpdate) SetNillableProjectID(v *uuid.UUID) *DataProductUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetDataType sets the "data_type" field.
func (_u *DataProductUpdate) SetDataType(v string) *DataProductUpdate {
	_u.mutation.SetDataType(v)
	return _u
}

// SetNillableDataType sets the "data_type" field if the given value is not nil.
func (_u *DataProductUpdate) SetNillableDataType(v *string) *DataProductUpdate {
	if v != nil {
		_u.SetDataType(*v)
	}
	return _u
}

// SetFilepath sets the "filepath" field.
func (_u *DataProductUpdate) SetFilepath(v string) *DataProductUpdate {
	_u.mutation.SetFilepath(v)
	return _u
}

// SetNillableFilepath sets the "filepath" field if the given value is not nil.
func (_u *DataProductUpdate) SetNillableFilepath(v *string) *DataProductUpdate {
	if v != nil {
		_u.SetFilepath(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *DataProductUpdate) SetOriginalFilename(v string) *DataProductUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *DataProductUpdate) SetNillableOriginalFilename(v *string) *DataProductUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *DataProductUpdate) SetMetadata(v json.RawMessage) *DataProductUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// AppendMetadata appends value to the "metadata" field.
func (_u *DataProductUpdate) AppendMetadata(v json.RawMessage) *DataProductUpdate {
	_u.mutation.AppendMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *DataProductUpdate) ClearMetadata() *DataProductUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetDefaultSymbology sets the "default_symbology" field.
func (_u *DataProductUpdate) SetDefaultSymbology(v json.RawMessage) *DataProductUpdate {
	_u.mutation.SetDefaultSymbology(v)
	return _u
}

// AppendDefaultSymbology appends value to the "default_symbology" field.
func (_u *DataProductUpdate) AppendDefaultSymbology(v json.RawMessage) *DataProductUpdate {
	_u.mutation.AppendDefaultSymbology(v)
	return _u
}

// ClearDefaultSymbology clears the value of the "default_symbology" field.
func (_u *DataProductUpdate) ClearDefaultSymbology() *DataProductUpdate {
	_u.mutation.ClearDefaultSymbology()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DataProductUpdate) SetIsActive(v bool) *DataProductUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DataProductUpdate) SetNillableIsActive(v *bool) *DataProductUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetIsInitialProcessingCompleted sets the "is_initial_processing_completed" field.
func (_u *DataProductUpdate) SetIsInitialProcessingCompleted(v bool) *DataProductUpdate {
	_u.mutation.SetIsInitialProcessingCompleted(v)
	return _u
}

// SetNillableIsInitialProcessingCompleted sets the "is_initial_processing_completed" field if the given value is not nil.
func (_u *DataProductUpdate) SetNillableIsInitialProcessingCompleted(v *bool) *DataProductUpdate {
	if v != nil {
		_u.SetIsInitialProcessingCompleted(*v)
	}
	return _u
}

// SetDeactivatedAt sets the "deactivated_at" field.
func (_u *DataProductUpdate) SetDeactivatedAt(v time.Time) *DataProductUpdate {
	_u.mutation.SetDeactivatedAt(v)
	return _u
}

// SetNillableDeactivatedAt sets the "deactivated_at" field if the given value is not nil.
func (_u *DataProductUpdate) SetNillableDeactivatedAt(v *time.Time) *DataProductUpdate {
	if v != nil {
		_u.SetDeactivatedAt(*v)
	}
	return _u
}

// ClearDeactivatedAt clears the value of the "deactivated_at" field.
func (_u *DataProductUpdate) ClearDeactivatedAt() *DataProductUpdate {
	_u.mutation.ClearDeactivatedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DataProductUpdate) SetCreatedAt(v time.Time) *DataProductUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DataProductUpdate) SetNillableCreatedAt(v *time.Time) *DataProductUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DataProductUpdate) SetUpdatedAt(v time.Time) *DataProductUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *DataProductUpdate) AddJobIDs(ids ...uuid.UUID) *DataProductUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *DataProductUpdate) AddJobs(v ...*Job) *DataProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the DataProductMutation object of the builder.
func (_u *DataProductUpdate) Mutation() *DataProductMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *DataProductUpdate) ClearJobs() *DataProductUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *DataProductUpdate) RemoveJobIDs(ids ...uuid.UUID) *DataProductUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *DataProductUpdate) RemoveJobs(v ...*Job) *DataProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DataProductUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DataProductUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DataProductUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DataProductUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DataProductUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dataproduct.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DataProductUpdate) check() error {
	if v, ok := _u.mutation.DataType(); ok {
		if err := dataproduct.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "DataProduct.data_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filepath(); ok {
		if err := dataproduct.FilepathValidator(v); err != nil {
			return &ValidationError{Name: "filepath", err: fmt.Errorf(`ent: validator failed for field "DataProduct.filepath": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := dataproduct.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "DataProduct.original_filename": %w`, err)}
		}
	}
	return nil
}

func (_u *DataProductUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataproduct.Table, dataproduct.Columns, sqlgraph.NewFieldSpec(dataproduct.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(dataproduct.FieldProjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DataType(); ok {
		_spec.SetField(dataproduct.FieldDataType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filepath(); ok {
		_spec.SetField(dataproduct.FieldFilepath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(dataproduct.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(dataproduct.FieldMetadata, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetadata(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dataproduct.FieldMetadata, value)
		})
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(dataproduct.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.DefaultSymbology(); ok {
		_spec.SetField(dataproduct.FieldDefaultSymbology, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDefaultSymbology(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dataproduct.FieldDefaultSymbology, value)
		})
	}
	if _u.mutation.DefaultSymbologyCleared() {
		_spec.ClearField(dataproduct.FieldDefaultSymbology, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(dataproduct.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsInitialProcessingCompleted(); ok {
		_spec.SetField(dataproduct.FieldIsInitialProcessingCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeactivatedAt(); ok {
		_spec.SetField(dataproduct.FieldDeactivatedAt, field.TypeTime, value)
	}
	if _u.mutation.DeactivatedAtCleared() {
		_spec.ClearField(dataproduct.FieldDeactivatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(dataproduct.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dataproduct.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataproduct.JobsTable,
			Columns: []string{dataproduct.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataproduct.JobsTable,
			Columns: []string{dataproduct.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataproduct.JobsTable,
			Columns: []string{dataproduct.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataproduct.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DataProductUpdateOne is the builder for updating a single DataProduct entity.
type DataProductUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DataProductMutation
}

// SetProjectID sets the "project_id" field.
func (_u *DataProductUpdateOne) SetProjectID(v uuid.UUID) *DataProductUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *DataProductUpdateOne) SetNillableProjectID(v *uuid.UUID) *DataProductUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetDataType sets the "data_type" field.
func (_u *DataProductUpdateOne) SetDataType(v string) *DataProductUpdateOne {
	_u.mutation.SetDataType(v)
	return _u
}

// SetNillableDataType sets the "data_type" field if the given value is not nil.
func (_u *DataProductUpdateOne) SetNillableDataType(v *string) *DataProductUpdateOne {
	if v != nil {
		_u.SetDataType(*v)
	}
	return _u
}

// SetFilepath sets the "filepath" field.
func (_u *DataProductUpdateOne) SetFilepath(v string) *DataProductUpdateOne {
	_u.mutation.SetFilepath(v)
	return _u
}

// SetNillableFilepath sets the "filepath" field if the given value is not nil.
func (_u *DataProductUpdateOne) SetNillableFilepath(v *string) *DataProductUpdateOne {
	if v != nil {
		_u.SetFilepath(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *DataProductUpdateOne) SetOriginalFilename(v string) *DataProductUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *DataProductUpdateOne) SetNillableOriginalFilename(v *string) *DataProductUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *DataProductUpdateOne) SetMetadata(v json.RawMessage) *DataProductUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// AppendMetadata appends value to the "metadata" field.
func (_u *DataProductUpdateOne) AppendMetadata(v json.RawMessage) *DataProductUpdateOne {
	_u.mutation.AppendMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *DataProductUpdateOne) ClearMetadata() *DataProductUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetDefaultSymbology sets the "default_symbology" field.
func (_u *DataProductUpdateOne) SetDefaultSymbology(v json.RawMessage) *DataProductUpdateOne {
	_u.mutation.SetDefaultSymbology(v)
	return _u
}

// AppendDefaultSymbology appends value to the "default_symbology" field.
func (_u *DataProductUpdateOne) AppendDefaultSymbology(v json.RawMessage) *DataProductUpdateOne {
	_u.mutation.AppendDefaultSymbology(v)
	return _u
}

// ClearDefaultSymbology clears the value of the "default_symbology" field.
func (_u *DataProductUpdateOne) ClearDefaultSymbology() *DataProductUpdateOne {
	_u.mutation.ClearDefaultSymbology()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DataProductUpdateOne) SetIsActive(v bool) *DataProductUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DataProductUpdateOne) SetNillableIsActive(v *bool) *DataProductUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetIsInitialProcessingCompleted sets the "is_initial_processing_completed" field.
func (_u *DataProductUpdateOne) SetIsInitialProcessingCompleted(v bool) *DataProductUpdateOne {
	_u.mutation.SetIsInitialProcessingCompleted(v)
	return _u
}

// SetNillableIsInitialProcessingCompleted sets the "is_initial_processing_completed" field if the given value is not nil.
func (_u *DataProductUpdateOne) SetNillableIsInitialProcessingCompleted(v *bool) *DataProductUpdateOne {
	if v != nil {
		_u.SetIsInitialProcessingCompleted(*v)
	}
	return _u
}

// SetDeactivatedAt sets the "deactivated_at" field.
func (_u *DataProductUpdateOne) SetDeactivatedAt(v time.Time) *DataProductUpdateOne {
	_u.mutation.SetDeactivatedAt(v)
	return _u
}

// SetNillableDeactivatedAt sets the "deactivated_at" field if the given value is not nil.
func (_u *DataProductUpdateOne) SetNillableDeactivatedAt(v *time.Time) *DataProductUpdateOne {
	if v != nil {
		_u.SetDeactivatedAt(*v)
	}
	return _u
}

// ClearDeactivatedAt clears the value of the "deactivated_at" field.
func (_u *DataProductUpdateOne) ClearDeactivatedAt() *DataProductUpdateOne {
	_u.mutation.ClearDeactivatedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DataProductUpdateOne) SetCreatedAt(v time.Time) *DataProductUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DataProductUpdateOne) SetNillableCreatedAt(v *time.Time) *DataProductUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DataProductUpdateOne) SetUpdatedAt(v time.Time) *DataProductUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *DataProductUpdateOne) AddJobIDs(ids ...uuid.UUID) *DataProductUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *DataProductUpdateOne) AddJobs(v ...*Job) *DataProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the DataProductMutation object of the builder.
func (_u *DataProductUpdateOne) Mutation() *DataProductMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *DataProductUpdateOne) ClearJobs() *DataProductUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *DataProductUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *DataProductUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *DataProductUpdateOne) RemoveJobs(v ...*Job) *DataProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the DataProductUpdate builder.
func (_u *DataProductUpdateOne) Where(ps ...predicate.DataProduct) *DataProductUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DataProductUpdateOne) Select(field string, fields ...string) *DataProductUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DataProduct entity.
func (_u *DataProductUpdateOne) Save(ctx context.Context) (*DataProduct, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DataProductUpdateOne) SaveX(ctx context.Context) *DataProduct {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DataProductUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DataProductUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DataProductUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dataproduct.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DataProductUpdateOne) check() error {
	if v, ok := _u.mutation.DataType(); ok {
		if err := dataproduct.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "DataProduct.data_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filepath(); ok {
		if err := dataproduct.FilepathValidator(v); err != nil {
			return &ValidationError{Name: "filepath", err: fmt.Errorf(`ent: validator failed for field "DataProduct.filepath": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := dataproduct.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "DataProduct.original_filename": %w`, err)}
		}
	}
	return nil
}

func (_u *DataProductUpdateOne) sqlSave(ctx context.Context) (_node *DataProduct, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataproduct.Table, dataproduct.Columns, sqlgraph.NewFieldSpec(dataproduct.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DataProduct.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dataproduct.FieldID)
		for _, f := range fields {
			if !dataproduct.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dataproduct.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(dataproduct.FieldProjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DataType(); ok {
		_spec.SetField(dataproduct.FieldDataType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filepath(); ok {
		_spec.SetField(dataproduct.FieldFilepath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(dataproduct.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(dataproduct.FieldMetadata, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetadata(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dataproduct.FieldMetadata, value)
		})
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(dataproduct.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.DefaultSymbology(); ok {
		_spec.SetField(dataproduct.FieldDefaultSymbology, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDefaultSymbology(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dataproduct.FieldDefaultSymbology, value)
		})
	}
	if _u.mutation.DefaultSymbologyCleared() {
		_spec.ClearField(dataproduct.FieldDefaultSymbology, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(dataproduct.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsInitialProcessingCompleted(); ok {
		_spec.SetField(dataproduct.FieldIsInitialProcessingCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeactivatedAt(); ok {
		_spec.SetField(dataproduct.FieldDeactivatedAt, field.TypeTime, value)
	}
	if _u.mutation.DeactivatedAtCleared() {
		_spec.ClearField(dataproduct.FieldDeactivatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(dataproduct.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dataproduct.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataproduct.JobsTable,
			Columns: []string{dataproduct.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataproduct.JobsTable,
			Columns: []string{dataproduct.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataproduct.JobsTable,
			Columns: []string{dataproduct.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DataProduct{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataproduct.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
