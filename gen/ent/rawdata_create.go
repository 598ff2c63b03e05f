// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jcordova-gis/geoingest/gen/ent/job"
	"github.com/jcordova-gis/geoingest/gen/ent/rawdata"
)

// RawDataCreate is the builder for creating a RawData entity.
type RawDataCreate struct {
	config
	mutation *RawDataMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *RawDataCreate) SetProjectID(v uuid.UUID) *RawDataCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetFilepath sets the "filepath" field.
func (_c *RawDataCreate) SetFilepath(v string) *RawDataCreate {
	_c.mutation.SetFilepath(v)
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *RawDataCreate) SetOriginalFilename(v string) *RawDataCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *RawDataCreate) SetIsActive(v bool) *RawDataCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *RawDataCreate) SetNillableIsActive(v *bool) *RawDataCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetIsInitialProcessingCompleted sets the "is_initial_processing_completed" field.
func (_c *RawDataCreate) SetIsInitialProcessingCompleted(v bool) *RawDataCreate {
	_c.mutation.SetIsInitialProcessingCompleted(v)
	return _c
}

// SetNillableIsInitialProcessingCompleted sets the "is_initial_processing_completed" field if the given value is not nil.
func (_c *RawDataCreate) SetNillableIsInitialProcessingCompleted(v *bool) *RawDataCreate {
	if v != nil {
		_c.SetIsInitialProcessingCompleted(*v)
	}
	return _c
}

// SetDeactivatedAt sets the "deactivated_at" field.
func (_c *RawDataCreate) SetDeactivatedAt(v time.Time) *RawDataCreate {
	_c.mutation.SetDeactivatedAt(v)
	return _c
}

// SetNillableDeactivatedAt sets the "deactivated_at" field if the given value is not nil.
func (_c *RawDataCreate) SetNillableDeactivatedAt(v *time.Time) *RawDataCreate {
	if v != nil {
		_c.SetDeactivatedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RawDataCreate) SetCreatedAt(v time.Time) *RawDataCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RawDataCreate) SetNillableCreatedAt(v *time.Time) *RawDataCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RawDataCreate) SetUpdatedAt(v time.Time) *RawDataCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RawDataCreate) SetNillableUpdatedAt(v *time.Time) *RawDataCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RawDataCreate) SetID(v uuid.UUID) *RawDataCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RawDataCreate) SetNillableID(v *uuid.UUID) *RawDataCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_c *RawDataCreate) AddJobIDs(ids ...uuid.UUID) *RawDataCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_c *RawDataCreate) AddJobs(v ...*Job) *RawDataCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the RawDataMutation object of the builder.
func (_c *RawDataCreate) Mutation() *RawDataMutation {
	return _c.mutation
}

// Save creates the RawData in the database.
func (_c *RawDataCreate) Save(ctx context.Context) (*RawData, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RawDataCreate) SaveX(ctx context.Context) *RawData {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RawDataCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RawDataCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RawDataCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := rawdata.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.IsInitialProcessingCompleted(); !ok {
		v := rawdata.DefaultIsInitialProcessingCompleted
		_c.mutation.SetIsInitialProcessingCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rawdata.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := rawdata.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := rawdata.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RawDataCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "RawData.project_id"`)}
	}
	if _, ok := _c.mutation.Filepath(); !ok {
		return &ValidationError{Name: "filepath", err: errors.New(`ent: missing required field "RawData.filepath"`)}
	}
	if v, ok := _c.mutation.Filepath(); ok {
		if err := rawdata.FilepathValidator(v); err != nil {
			return &ValidationError{Name: "filepath", err: fmt.Errorf(`ent: validator failed for field "RawData.filepath": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalFilename(); !ok {
		return &ValidationError{Name: "original_filename", err: errors.New(`ent: missing required field "RawData.original_filename"`)}
	}
	if v, ok := _c.mutation.OriginalFilename(); ok {
		if err := rawdata.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "RawData.original_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "RawData.is_active"`)}
	}
	if _, ok := _c.mutation.IsInitialProcessingCompleted(); !ok {
		return &ValidationError{Name: "is_initial_processing_completed", err: errors.New(`ent: missing required field "RawData.is_initial_processing_completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RawData.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RawData.updated_at"`)}
	}
	return nil
}

func (_c *RawDataCreate) sqlSave(ctx context.Context) (*RawData, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RawDataCreate) createSpec() (*RawData, *sqlgraph.CreateSpec) {
	var (
		_node = &RawData{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rawdata.Table, sqlgraph.NewFieldSpec(rawdata.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(rawdata.FieldProjectID, field.TypeUUID, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Filepath(); ok {
		_spec.SetField(rawdata.FieldFilepath, field.TypeString, value)
		_node.Filepath = value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(rawdata.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(rawdata.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.IsInitialProcessingCompleted(); ok {
		_spec.SetField(rawdata.FieldIsInitialProcessingCompleted, field.TypeBool, value)
		_node.IsInitialProcessingCompleted = value
	}
	if value, ok := _c.mutation.DeactivatedAt(); ok {
		_spec.SetField(rawdata.FieldDeactivatedAt, field.TypeTime, value)
		_node.DeactivatedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rawdata.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(rawdata.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RawDataCreateBulk is the builder for creating many RawData entities in bulk.
type RawDataCreateBulk struct {
	config
	err      error
	builders []*RawDataCreate
}

// Save creates the RawData entities in the database.
func (_c *RawDataCreateBulk) Save(ctx context.Context) ([]*RawData, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RawData, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RawDataMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RawDataCreateBulk) SaveX(ctx context.Context) []*RawData {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RawDataCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RawDataCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
