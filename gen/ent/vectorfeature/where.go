// Code generated by ent, DO NOT EDIT.

package vectorfeature

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jcordova-gis/geoingest/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldEQ(FieldProjectID, v))
}

// LayerName applies equality check predicate on the "layer_name" field. It's identical to LayerNameEQ.
func LayerName(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldEQ(FieldLayerName, v))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldEQ(FieldOriginalFilename, v))
}

// GeometryType applies equality check predicate on the "geometry_type" field. It's identical to GeometryTypeEQ.
func GeometryType(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldEQ(FieldGeometryType, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v uuid.UUID) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldLTE(FieldProjectID, v))
}

// LayerNameEQ applies the EQ predicate on the "layer_name" field.
func LayerNameEQ(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldEQ(FieldLayerName, v))
}

// LayerNameNEQ applies the NEQ predicate on the "layer_name" field.
func LayerNameNEQ(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldNEQ(FieldLayerName, v))
}

// LayerNameIn applies the In predicate on the "layer_name" field.
func LayerNameIn(vs ...string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldIn(FieldLayerName, vs...))
}

// LayerNameNotIn applies the NotIn predicate on the "layer_name" field.
func LayerNameNotIn(vs ...string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldNotIn(FieldLayerName, vs...))
}

// LayerNameGT applies the GT predicate on the "layer_name" field.
func LayerNameGT(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldGT(FieldLayerName, v))
}

// LayerNameGTE applies the GTE predicate on the "layer_name" field.
func LayerNameGTE(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldGTE(FieldLayerName, v))
}

// LayerNameLT applies the LT predicate on the "layer_name" field.
func LayerNameLT(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldLT(FieldLayerName, v))
}

// LayerNameLTE applies the LTE predicate on the "layer_name" field.
func LayerNameLTE(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldLTE(FieldLayerName, v))
}

// LayerNameContains applies the Contains predicate on the "layer_name" field.
func LayerNameContains(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldContains(FieldLayerName, v))
}

// LayerNameHasPrefix applies the HasPrefix predicate on the "layer_name" field.
func LayerNameHasPrefix(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldHasPrefix(FieldLayerName, v))
}

// LayerNameHasSuffix applies the HasSuffix predicate on the "layer_name" field.
func LayerNameHasSuffix(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldHasSuffix(FieldLayerName, v))
}

// LayerNameEqualFold applies the EqualFold predicate on the "layer_name" field.
func LayerNameEqualFold(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldEqualFold(FieldLayerName, v))
}

// LayerNameContainsFold applies the ContainsFold predicate on the "layer_name" field.
func LayerNameContainsFold(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldContainsFold(FieldLayerName, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameIsNil applies the IsNil predicate on the "original_filename" field.
func OriginalFilenameIsNil() predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldIsNull(FieldOriginalFilename))
}

// OriginalFilenameNotNil applies the NotNil predicate on the "original_filename" field.
func OriginalFilenameNotNil() predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldNotNull(FieldOriginalFilename))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// GeometryTypeEQ applies the EQ predicate on the "geometry_type" field.
func GeometryTypeEQ(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldEQ(FieldGeometryType, v))
}

// GeometryTypeNEQ applies the NEQ predicate on the "geometry_type" field.
func GeometryTypeNEQ(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldNEQ(FieldGeometryType, v))
}

// GeometryTypeIn applies the In predicate on the "geometry_type" field.
func GeometryTypeIn(vs ...string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldIn(FieldGeometryType, vs...))
}

// GeometryTypeNotIn applies the NotIn predicate on the "geometry_type" field.
func GeometryTypeNotIn(vs ...string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldNotIn(FieldGeometryType, vs...))
}

// GeometryTypeGT applies the GT predicate on the "geometry_type" field.
func GeometryTypeGT(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldGT(FieldGeometryType, v))
}

// GeometryTypeGTE applies the GTE predicate on the "geometry_type" field.
func GeometryTypeGTE(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldGTE(FieldGeometryType, v))
}

// GeometryTypeLT applies the LT predicate on the "geometry_type" field.
func GeometryTypeLT(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldLT(FieldGeometryType, v))
}

// GeometryTypeLTE applies the LTE predicate on the "geometry_type" field.
func GeometryTypeLTE(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldLTE(FieldGeometryType, v))
}

// GeometryTypeContains applies the Contains predicate on the "geometry_type" field.
func GeometryTypeContains(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldContains(FieldGeometryType, v))
}

// GeometryTypeHasPrefix applies the HasPrefix predicate on the "geometry_type" field.
func GeometryTypeHasPrefix(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldHasPrefix(FieldGeometryType, v))
}

// GeometryTypeHasSuffix applies the HasSuffix predicate on the "geometry_type" field.
func GeometryTypeHasSuffix(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldHasSuffix(FieldGeometryType, v))
}

// GeometryTypeEqualFold applies the EqualFold predicate on the "geometry_type" field.
func GeometryTypeEqualFold(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldEqualFold(FieldGeometryType, v))
}

// GeometryTypeContainsFold applies the ContainsFold predicate on the "geometry_type" field.
func GeometryTypeContainsFold(v string) predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldContainsFold(FieldGeometryType, v))
}

// PropertiesIsNil applies the IsNil predicate on the "properties" field.
func PropertiesIsNil() predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldIsNull(FieldProperties))
}

// PropertiesNotNil applies the NotNil predicate on the "properties" field.
func PropertiesNotNil() predicate.VectorFeature {
	return predicate.VectorFeature(sql.FieldNotNull(FieldProperties))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VectorFeature) predicate.VectorFeature {
	return predicate.VectorFeature(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VectorFeature) predicate.VectorFeature {
	return predicate.VectorFeature(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VectorFeature) predicate.VectorFeature {
	return predicate.VectorFeature(sql.NotPredicates(p))
}
