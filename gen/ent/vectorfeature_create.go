// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jcordova-gis/geoingest/gen/ent/vectorfeature"
)

// VectorFeatureCreate is the builder for creating a VectorFeature entity.
type VectorFeatureCreate struct {
	config
	mutation *VectorFeatureMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *VectorFeatureCreate) SetProjectID(v uuid.UUID) *VectorFeatureCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetLayerName sets the "layer_name" field.
func (_c *VectorFeatureCreate) SetLayerName(v string) *VectorFeatureCreate {
	_c.mutation.SetLayerName(v)
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *VectorFeatureCreate) SetOriginalFilename(v string) *VectorFeatureCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_c *VectorFeatureCreate) SetNillableOriginalFilename(v *string) *VectorFeatureCreate {
	if v != nil {
		_c.SetOriginalFilename(*v)
	}
	return _c
}

// SetGeometryType sets the "geometry_type" field.
func (_c *VectorFeatureCreate) SetGeometryType(v string) *VectorFeatureCreate {
	_c.mutation.SetGeometryType(v)
	return _c
}

// SetGeometry sets the "geometry" field.
func (_c *VectorFeatureCreate) SetGeometry(v json.RawMessage) *VectorFeatureCreate {
	_c.mutation.SetGeometry(v)
	return _c
}

// SetProperties sets the "properties" field.
func (_c *VectorFeatureCreate) SetProperties(v json.RawMessage) *VectorFeatureCreate {
	_c.mutation.SetProperties(v)
	return _c
}

// SetID sets the "id" field.
func (_c *VectorFeatureCreate) SetID(v uuid.UUID) *VectorFeatureCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VectorFeatureCreate) SetNillableID(v *uuid.UUID) *VectorFeatureCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the VectorFeatureMutation object of the builder.
func (_c *VectorFeatureCreate) Mutation() *VectorFeatureMutation {
	return _c.mutation
}

// Save creates the VectorFeature in the database.
func (_c *VectorFeatureCreate) Save(ctx context.Context) (*VectorFeature, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VectorFeatureCreate) SaveX(ctx context.Context) *VectorFeature {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VectorFeatureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VectorFeatureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VectorFeatureCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := vectorfeature.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VectorFeatureCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "VectorFeature.project_id"`)}
	}
	if _, ok := _c.mutation.LayerName(); !ok {
		return &ValidationError{Name: "layer_name", err: errors.New(`ent: missing required field "VectorFeature.layer_name"`)}
	}
	if v, ok := _c.mutation.LayerName(); ok {
		if err := vectorfeature.LayerNameValidator(v); err != nil {
			return &ValidationError{Name: "layer_name", err: fmt.Errorf(`ent: validator failed for field "VectorFeature.layer_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GeometryType(); !ok {
		return &ValidationError{Name: "geometry_type", err: errors.New(`ent: missing required field "VectorFeature.geometry_type"`)}
	}
	if v, ok := _c.mutation.GeometryType(); ok {
		if err := vectorfeature.GeometryTypeValidator(v); err != nil {
			return &ValidationError{Name: "geometry_type", err: fmt.Errorf(`ent: validator failed for field "VectorFeature.geometry_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Geometry(); !ok {
		return &ValidationError{Name: "geometry", err: errors.New(`ent: missing required field "VectorFeature.geometry"`)}
	}
	return nil
}

func (_c *VectorFeatureCreate) sqlSave(ctx context.Context) (*VectorFeature, error) {
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

func (_c *VectorFeatureCreate) createSpec() (*VectorFeature, *sqlgraph.CreateSpec) {
	var (
		_node = &VectorFeature{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vectorfeature.Table, sqlgraph.NewFieldSpec(vectorfeature.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(vectorfeature.FieldProjectID, field.TypeUUID, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.LayerName(); ok {
		_spec.SetField(vectorfeature.FieldLayerName, field.TypeString, value)
		_node.LayerName = value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(vectorfeature.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.GeometryType(); ok {
		_spec.SetField(vectorfeature.FieldGeometryType, field.TypeString, value)
		_node.GeometryType = value
	}
	if value, ok := _c.mutation.Geometry(); ok {
		_spec.SetField(vectorfeature.FieldGeometry, field.TypeJSON, value)
		_node.Geometry = value
	}
	if value, ok := _c.mutation.Properties(); ok {
		_spec.SetField(vectorfeature.FieldProperties, field.TypeJSON, value)
		_node.Properties = value
	}
	return _node, _spec
}

// VectorFeatureCreateBulk is the builder for creating many VectorFeature entities in bulk.
type VectorFeatureCreateBulk struct {
	config
	err      error
	builders []*VectorFeatureCreate
}

// Save creates the VectorFeature entities in the database.
func (_c *VectorFeatureCreateBulk) Save(ctx context.Context) ([]*VectorFeature, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VectorFeature, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VectorFeatureMutation)
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
func (_c *VectorFeatureCreateBulk) SaveX(ctx context.Context) []*VectorFeature {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VectorFeatureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VectorFeatureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
