// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/jcordova-gis/geoingest/db/ent/schema"
	"github.com/jcordova-gis/geoingest/gen/ent/dataproduct"
	"github.com/jcordova-gis/geoingest/gen/ent/job"
	"github.com/jcordova-gis/geoingest/gen/ent/rawdata"
	"github.com/jcordova-gis/geoingest/gen/ent/vectorfeature"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	dataproductFields := schema.DataProduct{}.Fields()
	_ = dataproductFields
	// dataproductDescDataType is the schema descriptor for data_type field.
	dataproductDescDataType := dataproductFields[2].Descriptor()
	// dataproduct.DataTypeValidator is a validator for the "data_type" field. It is called by the builders before save.
	dataproduct.DataTypeValidator = func() func(string) error {
		validators := dataproductDescDataType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(data_type string) error {
			for _, fn := range fns {
				if err := fn(data_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// dataproductDescFilepath is the schema descriptor for filepath field.
	dataproductDescFilepath := dataproductFields[3].Descriptor()
	// dataproduct.FilepathValidator is a validator for the "filepath" field. It is called by the builders before save.
	dataproduct.FilepathValidator = dataproductDescFilepath.Validators[0].(func(string) error)
	// dataproductDescOriginalFilename is the schema descriptor for original_filename field.
	dataproductDescOriginalFilename := dataproductFields[4].Descriptor()
	// dataproduct.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	dataproduct.OriginalFilenameValidator = dataproductDescOriginalFilename.Validators[0].(func(string) error)
	// dataproductDescIsActive is the schema descriptor for is_active field.
	dataproductDescIsActive := dataproductFields[7].Descriptor()
	// dataproduct.DefaultIsActive holds the default value on creation for the is_active field.
	dataproduct.DefaultIsActive = dataproductDescIsActive.Default.(bool)
	// dataproductDescIsInitialProcessingCompleted is the schema descriptor for is_initial_processing_completed field.
	dataproductDescIsInitialProcessingCompleted := dataproductFields[8].Descriptor()
	// dataproduct.DefaultIsInitialProcessingCompleted holds the default value on creation for the is_initial_processing_completed field.
	dataproduct.DefaultIsInitialProcessingCompleted = dataproductDescIsInitialProcessingCompleted.Default.(bool)
	// dataproductDescCreatedAt is the schema descriptor for created_at field.
	dataproductDescCreatedAt := dataproductFields[10].Descriptor()
	// dataproduct.DefaultCreatedAt holds the default value on creation for the created_at field.
	dataproduct.DefaultCreatedAt = dataproductDescCreatedAt.Default.(func() time.Time)
	// dataproductDescUpdatedAt is the schema descriptor for updated_at field.
	dataproductDescUpdatedAt := dataproductFields[11].Descriptor()
	// dataproduct.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dataproduct.DefaultUpdatedAt = dataproductDescUpdatedAt.Default.(func() time.Time)
	// dataproduct.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dataproduct.UpdateDefaultUpdatedAt = dataproductDescUpdatedAt.UpdateDefault.(func() time.Time)
	// dataproductDescID is the schema descriptor for id field.
	dataproductDescID := dataproductFields[0].Descriptor()
	// dataproduct.DefaultID holds the default value on creation for the id field.
	dataproduct.DefaultID = dataproductDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescName is the schema descriptor for name field.
	jobDescName := jobFields[1].Descriptor()
	// job.NameValidator is a validator for the "name" field. It is called by the builders before save.
	job.NameValidator = jobDescName.Validators[0].(func(string) error)
	// jobDescState is the schema descriptor for state field.
	jobDescState := jobFields[2].Descriptor()
	// job.DefaultState holds the default value on creation for the state field.
	job.DefaultState = jobDescState.Default.(string)
	// job.StateValidator is a validator for the "state" field. It is called by the builders before save.
	job.StateValidator = jobDescState.Validators[0].(func(string) error)
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[3].Descriptor()
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = jobDescStatus.Validators[0].(func(string) error)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	rawdataFields := schema.RawData{}.Fields()
	_ = rawdataFields
	// rawdataDescFilepath is the schema descriptor for filepath field.
	rawdataDescFilepath := rawdataFields[2].Descriptor()
	// rawdata.FilepathValidator is a validator for the "filepath" field. It is called by the builders before save.
	rawdata.FilepathValidator = rawdataDescFilepath.Validators[0].(func(string) error)
	// rawdataDescOriginalFilename is the schema descriptor for original_filename field.
	rawdataDescOriginalFilename := rawdataFields[3].Descriptor()
	// rawdata.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	rawdata.OriginalFilenameValidator = rawdataDescOriginalFilename.Validators[0].(func(string) error)
	// rawdataDescIsActive is the schema descriptor for is_active field.
	rawdataDescIsActive := rawdataFields[4].Descriptor()
	// rawdata.DefaultIsActive holds the default value on creation for the is_active field.
	rawdata.DefaultIsActive = rawdataDescIsActive.Default.(bool)
	// rawdataDescIsInitialProcessingCompleted is the schema descriptor for is_initial_processing_completed field.
	rawdataDescIsInitialProcessingCompleted := rawdataFields[5].Descriptor()
	// rawdata.DefaultIsInitialProcessingCompleted holds the default value on creation for the is_initial_processing_completed field.
	rawdata.DefaultIsInitialProcessingCompleted = rawdataDescIsInitialProcessingCompleted.Default.(bool)
	// rawdataDescCreatedAt is the schema descriptor for created_at field.
	rawdataDescCreatedAt := rawdataFields[7].Descriptor()
	// rawdata.DefaultCreatedAt holds the default value on creation for the created_at field.
	rawdata.DefaultCreatedAt = rawdataDescCreatedAt.Default.(func() time.Time)
	// rawdataDescUpdatedAt is the schema descriptor for updated_at field.
	rawdataDescUpdatedAt := rawdataFields[8].Descriptor()
	// rawdata.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	rawdata.DefaultUpdatedAt = rawdataDescUpdatedAt.Default.(func() time.Time)
	// rawdata.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	rawdata.UpdateDefaultUpdatedAt = rawdataDescUpdatedAt.UpdateDefault.(func() time.Time)
	// rawdataDescID is the schema descriptor for id field.
	rawdataDescID := rawdataFields[0].Descriptor()
	// rawdata.DefaultID holds the default value on creation for the id field.
	rawdata.DefaultID = rawdataDescID.Default.(func() uuid.UUID)
	vectorfeatureFields := schema.VectorFeature{}.Fields()
	_ = vectorfeatureFields
	// vectorfeatureDescLayerName is the schema descriptor for layer_name field.
	vectorfeatureDescLayerName := vectorfeatureFields[2].Descriptor()
	// vectorfeature.LayerNameValidator is a validator for the "layer_name" field. It is called by the builders before save.
	vectorfeature.LayerNameValidator = vectorfeatureDescLayerName.Validators[0].(func(string) error)
	// vectorfeatureDescGeometryType is the schema descriptor for geometry_type field.
	vectorfeatureDescGeometryType := vectorfeatureFields[4].Descriptor()
	// vectorfeature.GeometryTypeValidator is a validator for the "geometry_type" field. It is called by the builders before save.
	vectorfeature.GeometryTypeValidator = vectorfeatureDescGeometryType.Validators[0].(func(string) error)
	// vectorfeatureDescID is the schema descriptor for id field.
	vectorfeatureDescID := vectorfeatureFields[0].Descriptor()
	// vectorfeature.DefaultID holds the default value on creation for the id field.
	vectorfeature.DefaultID = vectorfeatureDescID.Default.(func() uuid.UUID)
}
