// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jcordova-gis/geoingest/gen/ent/predicate"
	"github.com/jcordova-gis/geoingest/gen/ent/vectorfeature"
)

// VectorFeatureUpdate is the builder for updating VectorFeature entities.
type VectorFeatureUpdate struct {
	config
	hooks    []Hook
	mutation *VectorFeatureMutation
}

// Where appends a list predicates to the VectorFeatureUpdate builder.
func (_u *VectorFeatureUpdate) Where(ps ...predicate.VectorFeature) *VectorFeatureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *VectorFeatureUpdate) SetProjectID(v uuid.UUID) *VectorFeatureUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *VectorFeatureUpdate) SetNillableProjectID(v *uuid.UUID) *VectorFeatureUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetLayerName sets the "layer_name" field.
func (_u *VectorFeatureUpdate) SetLayerName(v string) *VectorFeatureUpdate {
	_u.mutation.SetLayerName(v)
	return _u
}

// SetNillableLayerName sets the "layer_name" field if the given value is not nil.
func (_u *VectorFeatureUpdate) SetNillableLayerName(v *string) *VectorFeatureUpdate {
	if v != nil {
		_u.SetLayerName(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *VectorFeatureUpdate) SetOriginalFilename(v string) *VectorFeatureUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *VectorFeatureUpdate) SetNillableOriginalFilename(v *string) *VectorFeatureUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (_u *VectorFeatureUpdate) ClearOriginalFilename() *VectorFeatureUpdate {
	_u.mutation.ClearOriginalFilename()
	return _u
}

// SetGeometryType sets the "geometry_type" field.
func (_u *VectorFeatureUpdate) SetGeometryType(v string) *VectorFeatureUpdate {
	_u.mutation.SetGeometryType(v)
	return _u
}

// SetNillableGeometryType sets the "geometry_type" field if the given value is not nil.
func (_u *VectorFeatureUpdate) SetNillableGeometryType(v *string) *VectorFeatureUpdate {
	if v != nil {
		_u.SetGeometryType(*v)
	}
	return _u
}

// SetGeometry sets the "geometry" field.
func (_u *VectorFeatureUpdate) SetGeometry(v json.RawMessage) *VectorFeatureUpdate {
	_u.mutation.SetGeometry(v)
	return _u
}

// AppendGeometry appends value to the "geometry" field.
func (_u *VectorFeatureUpdate) AppendGeometry(v json.RawMessage) *VectorFeatureUpdate {
	_u.mutation.AppendGeometry(v)
	return _u
}

// SetProperties sets the "properties" field.
func (_u *VectorFeatureUpdate) SetProperties(v json.RawMessage) *VectorFeatureUpdate {
	_u.mutation.SetProperties(v)
	return _u
}

// AppendProperties appends value to the "properties" field.
func (_u *VectorFeatureUpdate) AppendProperties(v json.RawMessage) *VectorFeatureUpdate {
	_u.mutation.AppendProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *VectorFeatureUpdate) ClearProperties() *VectorFeatureUpdate {
	_u.mutation.ClearProperties()
	return _u
}

// Mutation returns the VectorFeatureMutation object of the builder.
func (_u *VectorFeatureUpdate) Mutation() *VectorFeatureMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VectorFeatureUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VectorFeatureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VectorFeatureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VectorFeatureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VectorFeatureUpdate) check() error {
	if v, ok := _u.mutation.LayerName(); ok {
		if err := vectorfeature.LayerNameValidator(v); err != nil {
			return &ValidationError{Name: "layer_name", err: fmt.Errorf(`ent: validator failed for field "VectorFeature.layer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GeometryType(); ok {
		if err := vectorfeature.GeometryTypeValidator(v); err != nil {
			return &ValidationError{Name: "geometry_type", err: fmt.Errorf(`ent: validator failed for field "VectorFeature.geometry_type": %w`, err)}
		}
	}
	return nil
}

func (_u *VectorFeatureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vectorfeature.Table, vectorfeature.Columns, sqlgraph.NewFieldSpec(vectorfeature.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(vectorfeature.FieldProjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.LayerName(); ok {
		_spec.SetField(vectorfeature.FieldLayerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(vectorfeature.FieldOriginalFilename, field.TypeString, value)
	}
	if _u.mutation.OriginalFilenameCleared() {
		_spec.ClearField(vectorfeature.FieldOriginalFilename, field.TypeString)
	}
	if value, ok := _u.mutation.GeometryType(); ok {
		_spec.SetField(vectorfeature.FieldGeometryType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Geometry(); ok {
		_spec.SetField(vectorfeature.FieldGeometry, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeometry(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vectorfeature.FieldGeometry, value)
		})
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(vectorfeature.FieldProperties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProperties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vectorfeature.FieldProperties, value)
		})
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(vectorfeature.FieldProperties, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vectorfeature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VectorFeatureUpdateOne is the builder for updating a single VectorFeature entity.
type VectorFeatureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VectorFeatureMutation
}

// SetProjectID sets the "project_id" field.
func (_u *VectorFeatureUpdateOne) SetProjectID(v uuid.UUID) *VectorFeatureUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *VectorFeatureUpdateOne) SetNillableProjectID(v *uuid.UUID) *VectorFeatureUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetLayerName sets the "layer_name" field.
func (_u *VectorFeatureUpdateOne) SetLayerName(v string) *VectorFeatureUpdateOne {
	_u.mutation.SetLayerName(v)
	return _u
}

// SetNillableLayerName sets the "layer_name" field if the given value is not nil.
func (_u *VectorFeatureUpdateOne) SetNillableLayerName(v *string) *VectorFeatureUpdateOne {
	if v != nil {
		_u.SetLayerName(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *VectorFeatureUpdateOne) SetOriginalFilename(v string) *VectorFeatureUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *VectorFeatureUpdateOne) SetNillableOriginalFilename(v *string) *VectorFeatureUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (_u *VectorFeatureUpdateOne) ClearOriginalFilename() *VectorFeatureUpdateOne {
	_u.mutation.ClearOriginalFilename()
	return _u
}

// SetGeometryType sets the "geometry_type" field.
func (_u *VectorFeatureUpdateOne) SetGeometryType(v string) *VectorFeatureUpdateOne {
	_u.mutation.SetGeometryType(v)
	return _u
}

// SetNillableGeometryType sets the "geometry_type" field if the given value is not nil.
func (_u *VectorFeatureUpdateOne) SetNillableGeometryType(v *string) *VectorFeatureUpdateOne {
	if v != nil {
		_u.SetGeometryType(*v)
	}
	return _u
}

// SetGeometry sets the "geometry" field.
func (_u *VectorFeatureUpdateOne) SetGeometry(v json.RawMessage) *VectorFeatureUpdateOne {
	_u.mutation.SetGeometry(v)
	return _u
}

// AppendGeometry appends value to the "geometry" field.
func (_u *VectorFeatureUpdateOne) AppendGeometry(v json.RawMessage) *VectorFeatureUpdateOne {
	_u.mutation.AppendGeometry(v)
	return _u
}

// SetProperties sets the "properties" field.
func (_u *VectorFeatureUpdateOne) SetProperties(v json.RawMessage) *VectorFeatureUpdateOne {
	_u.mutation.SetProperties(v)
	return _u
}

// AppendProperties appends value to the "properties" field.
func (_u *VectorFeatureUpdateOne) AppendProperties(v json.RawMessage) *VectorFeatureUpdateOne {
	_u.mutation.AppendProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *VectorFeatureUpdateOne) ClearProperties() *VectorFeatureUpdateOne {
	_u.mutation.ClearProperties()
	return _u
}

// Mutation returns the VectorFeatureMutation object of the builder.
func (_u *VectorFeatureUpdateOne) Mutation() *VectorFeatureMutation {
	return _u.mutation
}

// Where appends a list predicates to the VectorFeatureUpdate builder.
func (_u *VectorFeatureUpdateOne) Where(ps ...predicate.VectorFeature) *VectorFeatureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VectorFeatureUpdateOne) Select(field string, fields ...string) *VectorFeatureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VectorFeature entity.
func (_u *VectorFeatureUpdateOne) Save(ctx context.Context) (*VectorFeature, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VectorFeatureUpdateOne) SaveX(ctx context.Context) *VectorFeature {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VectorFeatureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VectorFeatureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VectorFeatureUpdateOne) check() error {
	if v, ok := _u.mutation.LayerName(); ok {
		if err := vectorfeature.LayerNameValidator(v); err != nil {
			return &ValidationError{Name: "layer_name", err: fmt.Errorf(`ent: validator failed for field "VectorFeature.layer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GeometryType(); ok {
		if err := vectorfeature.GeometryTypeValidator(v); err != nil {
			return &ValidationError{Name: "geometry_type", err: fmt.Errorf(`ent: validator failed for field "VectorFeature.geometry_type": %w`, err)}
		}
	}
	return nil
}

func (_u *VectorFeatureUpdateOne) sqlSave(ctx context.Context) (_node *VectorFeature, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vectorfeature.Table, vectorfeature.Columns, sqlgraph.NewFieldSpec(vectorfeature.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VectorFeature.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vectorfeature.FieldID)
		for _, f := range fields {
			if !vectorfeature.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vectorfeature.FieldID {
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
		_spec.SetField(vectorfeature.FieldProjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.LayerName(); ok {
		_spec.SetField(vectorfeature.FieldLayerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(vectorfeature.FieldOriginalFilename, field.TypeString, value)
	}
	if _u.mutation.OriginalFilenameCleared() {
		_spec.ClearField(vectorfeature.FieldOriginalFilename, field.TypeString)
	}
	if value, ok := _u.mutation.GeometryType(); ok {
		_spec.SetField(vectorfeature.FieldGeometryType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Geometry(); ok {
		_spec.SetField(vectorfeature.FieldGeometry, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeometry(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vectorfeature.FieldGeometry, value)
		})
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(vectorfeature.FieldProperties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProperties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vectorfeature.FieldProperties, value)
		})
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(vectorfeature.FieldProperties, field.TypeJSON)
	}
	_node = &VectorFeature{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vectorfeature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
