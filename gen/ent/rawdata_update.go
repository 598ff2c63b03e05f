// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jcordova-gis/geoingest/gen/ent/job"
	"github.com/jcordova-gis/geoingest/gen/ent/predicate"
	"github.com/jcordova-gis/geoingest/gen/ent/rawdata"
)

// RawDataUpdate is the builder for updating RawData entities.
type RawDataUpdate struct {
	config
	hooks    []Hook
	mutation *RawDataMutation
}

// Where appends a list predicates to the RawDataUpdate builder.
func (_u *RawDataUpdate) Where(ps ...predicate.RawData) *RawDataUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *RawDataUpdate) SetProjectID(v uuid.UUID) *RawDataUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *RawDataUpdate) SetNillableProjectID(v *uuid.UUID) *RawDataUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetFilepath sets the "filepath" field.
func (_u *RawDataUpdate) SetFilepath(v string) *RawDataUpdate {
	_u.mutation.SetFilepath(v)
	return _u
}

// SetNillableFilepath sets the "filepath" field if the given value is not nil.
func (_u *RawDataUpdate) SetNillableFilepath(v *string) *RawDataUpdate {
	if v != nil {
		_u.SetFilepath(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *RawDataUpdate) SetOriginalFilename(v string) *RawDataUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *RawDataUpdate) SetNillableOriginalFilename(v *string) *RawDataUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *RawDataUpdate) SetIsActive(v bool) *RawDataUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *RawDataUpdate) SetNillableIsActive(v *bool) *RawDataUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetIsInitialProcessingCompleted sets the "is_initial_processing_completed" field.
func (_u *RawDataUpdate) SetIsInitialProcessingCompleted(v bool) *RawDataUpdate {
	_u.mutation.SetIsInitialProcessingCompleted(v)
	return _u
}

// SetNillableIsInitialProcessingCompleted sets the "is_initial_processing_completed" field if the given value is not nil.
func (_u *RawDataUpdate) SetNillableIsInitialProcessingCompleted(v *bool) *RawDataUpdate {
	if v != nil {
		_u.SetIsInitialProcessingCompleted(*v)
	}
	return _u
}

// SetDeactivatedAt sets the "deactivated_at" field.
func (_u *RawDataUpdate) SetDeactivatedAt(v time.Time) *RawDataUpdate {
	_u.mutation.SetDeactivatedAt(v)
	return _u
}

// SetNillableDeactivatedAt sets the "deactivated_at" field if the given value is not nil.
func (_u *RawDataUpdate) SetNillableDeactivatedAt(v *time.Time) *RawDataUpdate {
	if v != nil {
		_u.SetDeactivatedAt(*v)
	}
	return _u
}

// ClearDeactivatedAt clears the value of the "deactivated_at" field.
func (_u *RawDataUpdate) ClearDeactivatedAt() *RawDataUpdate {
	_u.mutation.ClearDeactivatedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RawDataUpdate) SetCreatedAt(v time.Time) *RawDataUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RawDataUpdate) SetNillableCreatedAt(v *time.Time) *RawDataUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RawDataUpdate) SetUpdatedAt(v time.Time) *RawDataUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *RawDataUpdate) AddJobIDs(ids ...uuid.UUID) *RawDataUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *RawDataUpdate) AddJobs(v ...*Job) *RawDataUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the RawDataMutation object of the builder.
func (_u *RawDataUpdate) Mutation() *RawDataMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *RawDataUpdate) ClearJobs() *RawDataUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *RawDataUpdate) RemoveJobIDs(ids ...uuid.UUID) *RawDataUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *RawDataUpdate) RemoveJobs(v ...*Job) *RawDataUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RawDataUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RawDataUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RawDataUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RawDataUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RawDataUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := rawdata.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RawDataUpdate) check() error {
	if v, ok := _u.mutation.Filepath(); ok {
		if err := rawdata.FilepathValidator(v); err != nil {
			return &ValidationError{Name: "filepath", err: fmt.Errorf(`ent: validator failed for field "RawData.filepath": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := rawdata.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "RawData.original_filename": %w`, err)}
		}
	}
	return nil
}

func (_u *RawDataUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rawdata.Table, rawdata.Columns, sqlgraph.NewFieldSpec(rawdata.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(rawdata.FieldProjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Filepath(); ok {
		_spec.SetField(rawdata.FieldFilepath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(rawdata.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(rawdata.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsInitialProcessingCompleted(); ok {
		_spec.SetField(rawdata.FieldIsInitialProcessingCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeactivatedAt(); ok {
		_spec.SetField(rawdata.FieldDeactivatedAt, field.TypeTime, value)
	}
	if _u.mutation.DeactivatedAtCleared() {
		_spec.ClearField(rawdata.FieldDeactivatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(rawdata.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(rawdata.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawdata.JobsTable,
			Columns: []string{rawdata.JobsColumn},
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
			Table:   rawdata.JobsTable,
			Columns: []string{rawdata.JobsColumn},
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
			Table:   rawdata.JobsTable,
			Columns: []string{rawdata.JobsColumn},
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
			err = &NotFoundError{rawdata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RawDataUpdateOne is the builder for updating a single RawData entity.
type RawDataUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RawDataMutation
}

// SetProjectID sets the "project_id" field.
func (_u *RawDataUpdateOne) SetProjectID(v uuid.UUID) *RawDataUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *RawDataUpdateOne) SetNillableProjectID(v *uuid.UUID) *RawDataUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetFilepath sets the "filepath" field.
func (_u *RawDataUpdateOne) SetFilepath(v string) *RawDataUpdateOne {
	_u.mutation.SetFilepath(v)
	return _u
}

// SetNillableFilepath sets the "filepath" field if the given value is not nil.
func (_u *RawDataUpdateOne) SetNillableFilepath(v *string) *RawDataUpdateOne {
	if v != nil {
		_u.SetFilepath(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *RawDataUpdateOne) SetOriginalFilename(v string) *RawDataUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *RawDataUpdateOne) SetNillableOriginalFilename(v *string) *RawDataUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *RawDataUpdateOne) SetIsActive(v bool) *RawDataUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *RawDataUpdateOne) SetNillableIsActive(v *bool) *RawDataUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetIsInitialProcessingCompleted sets the "is_initial_processing_completed" field.
func (_u *RawDataUpdateOne) SetIsInitialProcessingCompleted(v bool) *RawDataUpdateOne {
	_u.mutation.SetIsInitialProcessingCompleted(v)
	return _u
}

// SetNillableIsInitialProcessingCompleted sets the "is_initial_processing_completed" field if the given value is not nil.
func (_u *RawDataUpdateOne) SetNillableIsInitialProcessingCompleted(v *bool) *RawDataUpdateOne {
	if v != nil {
		_u.SetIsInitialProcessingCompleted(*v)
	}
	return _u
}

// SetDeactivatedAt sets the "deactivated_at" field.
func (_u *RawDataUpdateOne) SetDeactivatedAt(v time.Time) *RawDataUpdateOne {
	_u.mutation.SetDeactivatedAt(v)
	return _u
}

// SetNillableDeactivatedAt sets the "deactivated_at" field if the given value is not nil.
func (_u *RawDataUpdateOne) SetNillableDeactivatedAt(v *time.Time) *RawDataUpdateOne {
	if v != nil {
		_u.SetDeactivatedAt(*v)
	}
	return _u
}

// ClearDeactivatedAt clears the value of the "deactivated_at" field.
func (_u *RawDataUpdateOne) ClearDeactivatedAt() *RawDataUpdateOne {
	_u.mutation.ClearDeactivatedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RawDataUpdateOne) SetCreatedAt(v time.Time) *RawDataUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RawDataUpdateOne) SetNillableCreatedAt(v *time.Time) *RawDataUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RawDataUpdateOne) SetUpdatedAt(v time.Time) *RawDataUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *RawDataUpdateOne) AddJobIDs(ids ...uuid.UUID) *RawDataUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *RawDataUpdateOne) AddJobs(v ...*Job) *RawDataUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the RawDataMutation object of the builder.
func (_u *RawDataUpdateOne) Mutation() *RawDataMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *RawDataUpdateOne) ClearJobs() *RawDataUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *RawDataUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *RawDataUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *RawDataUpdateOne) RemoveJobs(v ...*Job) *RawDataUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the RawDataUpdate builder.
func (_u *RawDataUpdateOne) Where(ps ...predicate.RawData) *RawDataUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RawDataUpdateOne) Select(field string, fields ...string) *RawDataUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RawData entity.
func (_u *RawDataUpdateOne) Save(ctx context.Context) (*RawData, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RawDataUpdateOne) SaveX(ctx context.Context) *RawData {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RawDataUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RawDataUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RawDataUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := rawdata.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RawDataUpdateOne) check() error {
	if v, ok := _u.mutation.Filepath(); ok {
		if err := rawdata.FilepathValidator(v); err != nil {
			return &ValidationError{Name: "filepath", err: fmt.Errorf(`ent: validator failed for field "RawData.filepath": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := rawdata.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "RawData.original_filename": %w`, err)}
		}
	}
	return nil
}

func (_u *RawDataUpdateOne) sqlSave(ctx context.Context) (_node *RawData, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rawdata.Table, rawdata.Columns, sqlgraph.NewFieldSpec(rawdata.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RawData.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rawdata.FieldID)
		for _, f := range fields {
			if !rawdata.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rawdata.FieldID {
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
		_spec.SetField(rawdata.FieldProjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Filepath(); ok {
		_spec.SetField(rawdata.FieldFilepath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(rawdata.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(rawdata.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsInitialProcessingCompleted(); ok {
		_spec.SetField(rawdata.FieldIsInitialProcessingCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeactivatedAt(); ok {
		_spec.SetField(rawdata.FieldDeactivatedAt, field.TypeTime, value)
	}
	if _u.mutation.DeactivatedAtCleared() {
		_spec.ClearField(rawdata.FieldDeactivatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(rawdata.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(rawdata.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawdata.JobsTable,
			Columns: []string{rawdata.JobsColumn},
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
			Table:   rawdata.JobsTable,
			Columns: []string{rawdata.JobsColumn},
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
			Table:   rawdata.JobsTable,
			Columns: []string{rawdata.JobsColumn},
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
	_node = &RawData{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rawdata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
