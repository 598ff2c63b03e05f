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
	"github.com/jcordova-gis/geoingest/gen/ent/rawdata"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *JobUpdate) SetName(v string) *JobUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *JobUpdate) SetNillableName(v *string) *JobUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *JobUpdate) SetState(v string) *JobUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *JobUpdate) SetNillableState(v *string) *JobUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v string) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *string) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *JobUpdate) ClearStatus() *JobUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetExtra sets the "extra" field.
func (_u *JobUpdate) SetExtra(v json.RawMessage) *JobUpdate {
	_u.mutation.SetExtra(v)
	return _u
}

// AppendExtra appends value to the "extra" field.
func (_u *JobUpdate) AppendExtra(v json.RawMessage) *JobUpdate {
	_u.mutation.AppendExtra(v)
	return _u
}

// ClearExtra clears the value of the "extra" field.
func (_u *JobUpdate) ClearExtra() *JobUpdate {
	_u.mutation.ClearExtra()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *JobUpdate) SetStartTime(v time.Time) *JobUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartTime(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *JobUpdate) ClearStartTime() *JobUpdate {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *JobUpdate) SetEndTime(v time.Time) *JobUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *JobUpdate) SetNillableEndTime(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *JobUpdate) ClearEndTime() *JobUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetDataProductID sets the "data_product_id" field.
func (_u *JobUpdate) SetDataProductID(v uuid.UUID) *JobUpdate {
	_u.mutation.SetDataProductID(v)
	return _u
}

// SetNillableDataProductID sets the "data_product_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDataProductID(v *uuid.UUID) *JobUpdate {
	if v != nil {
		_u.SetDataProductID(*v)
	}
	return _u
}

// ClearDataProductID clears the value of the "data_product_id" field.
func (_u *JobUpdate) ClearDataProductID() *JobUpdate {
	_u.mutation.ClearDataProductID()
	return _u
}

// SetRawDataID sets the "raw_data_id" field.
func (_u *JobUpdate) SetRawDataID(v uuid.UUID) *JobUpdate {
	_u.mutation.SetRawDataID(v)
	return _u
}

// SetNillableRawDataID sets the "raw_data_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRawDataID(v *uuid.UUID) *JobUpdate {
	if v != nil {
		_u.SetRawDataID(*v)
	}
	return _u
}

// ClearRawDataID clears the value of the "raw_data_id" field.
func (_u *JobUpdate) ClearRawDataID() *JobUpdate {
	_u.mutation.ClearRawDataID()
	return _u
}

// SetDataProduct sets the "data_product" edge to the DataProduct entity.
func (_u *JobUpdate) SetDataProduct(v *DataProduct) *JobUpdate {
	return _u.SetDataProductID(v.ID)
}

// SetRawData sets the "raw_data" edge to the RawData entity.
func (_u *JobUpdate) SetRawData(v *RawData) *JobUpdate {
	return _u.SetRawDataID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearDataProduct clears the "data_product" edge to the DataProduct entity.
func (_u *JobUpdate) ClearDataProduct() *JobUpdate {
	_u.mutation.ClearDataProduct()
	return _u
}

// ClearRawData clears the "raw_data" edge to the RawData entity.
func (_u *JobUpdate) ClearRawData() *JobUpdate {
	_u.mutation.ClearRawData()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := job.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Job.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := job.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Job.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(job.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(job.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(job.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Extra(); ok {
		_spec.SetField(job.FieldExtra, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtra(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldExtra, value)
		})
	}
	if _u.mutation.ExtraCleared() {
		_spec.ClearField(job.FieldExtra, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(job.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(job.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(job.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(job.FieldEndTime, field.TypeTime)
	}
	if _u.mutation.DataProductCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.DataProductTable,
			Columns: []string{job.DataProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataproduct.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DataProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.DataProductTable,
			Columns: []string{job.DataProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataproduct.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RawDataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.RawDataTable,
			Columns: []string{job.RawDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rawdata.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RawDataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.RawDataTable,
			Columns: []string{job.RawDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rawdata.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetName sets the "name" field.
func (_u *JobUpdateOne) SetName(v string) *JobUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableName(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *JobUpdateOne) SetState(v string) *JobUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableState(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v string) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *JobUpdateOne) ClearStatus() *JobUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetExtra sets the "extra" field.
func (_u *JobUpdateOne) SetExtra(v json.RawMessage) *JobUpdateOne {
	_u.mutation.SetExtra(v)
	return _u
}

// AppendExtra appends value to the "extra" field.
func (_u *JobUpdateOne) AppendExtra(v json.RawMessage) *JobUpdateOne {
	_u.mutation.AppendExtra(v)
	return _u
}

// ClearExtra clears the value of the "extra" field.
func (_u *JobUpdateOne) ClearExtra() *JobUpdateOne {
	_u.mutation.ClearExtra()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *JobUpdateOne) SetStartTime(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartTime(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *JobUpdateOne) ClearStartTime() *JobUpdateOne {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *JobUpdateOne) SetEndTime(v time.Time) *JobUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableEndTime(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *JobUpdateOne) ClearEndTime() *JobUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetDataProductID sets the "data_product_id" field.
func (_u *JobUpdateOne) SetDataProductID(v uuid.UUID) *JobUpdateOne {
	_u.mutation.SetDataProductID(v)
	return _u
}

// SetNillableDataProductID sets the "data_product_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDataProductID(v *uuid.UUID) *JobUpdateOne {
	if v != nil {
		_u.SetDataProductID(*v)
	}
	return _u
}

// ClearDataProductID clears the value of the "data_product_id" field.
func (_u *JobUpdateOne) ClearDataProductID() *JobUpdateOne {
	_u.mutation.ClearDataProductID()
	return _u
}

// SetRawDataID sets the "raw_data_id" field.
func (_u *JobUpdateOne) SetRawDataID(v uuid.UUID) *JobUpdateOne {
	_u.mutation.SetRawDataID(v)
	return _u
}

// SetNillableRawDataID sets the "raw_data_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRawDataID(v *uuid.UUID) *JobUpdateOne {
	if v != nil {
		_u.SetRawDataID(*v)
	}
	return _u
}

// ClearRawDataID clears the value of the "raw_data_id" field.
func (_u *JobUpdateOne) ClearRawDataID() *JobUpdateOne {
	_u.mutation.ClearRawDataID()
	return _u
}

// SetDataProduct sets the "data_product" edge to the DataProduct entity.
func (_u *JobUpdateOne) SetDataProduct(v *DataProduct) *JobUpdateOne {
	return _u.SetDataProductID(v.ID)
}

// SetRawData sets the "raw_data" edge to the RawData entity.
func (_u *JobUpdateOne) SetRawData(v *RawData) *JobUpdateOne {
	return _u.SetRawDataID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearDataProduct clears the "data_product" edge to the DataProduct entity.
func (_u *JobUpdateOne) ClearDataProduct() *JobUpdateOne {
	_u.mutation.ClearDataProduct()
	return _u
}

// ClearRawData clears the "raw_data" edge to the RawData entity.
func (_u *JobUpdateOne) ClearRawData() *JobUpdateOne {
	_u.mutation.ClearRawData()
	return _u
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := job.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Job.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := job.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Job.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(job.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(job.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(job.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Extra(); ok {
		_spec.SetField(job.FieldExtra, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtra(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldExtra, value)
		})
	}
	if _u.mutation.ExtraCleared() {
		_spec.ClearField(job.FieldExtra, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(job.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(job.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(job.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(job.FieldEndTime, field.TypeTime)
	}
	if _u.mutation.DataProductCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.DataProductTable,
			Columns: []string{job.DataProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataproduct.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DataProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.DataProductTable,
			Columns: []string{job.DataProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataproduct.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RawDataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.RawDataTable,
			Columns: []string{job.RawDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rawdata.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RawDataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.RawDataTable,
			Columns: []string{job.RawDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rawdata.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
