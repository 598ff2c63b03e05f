// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DataProductsColumns holds the columns for the "data_products" table.
	DataProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "project_id", Type: field.TypeUUID},
		{Name: "data_type", Type: field.TypeString},
		{Name: "filepath", Type: field.TypeString},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "default_symbology", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "is_initial_processing_completed", Type: field.TypeBool, Default: false},
		{Name: "deactivated_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DataProductsTable holds the schema information for the "data_products" table.
	DataProductsTable = &schema.Table{
		Name:       "data_products",
		Columns:    DataProductsColumns,
		PrimaryKey: []*schema.Column{DataProductsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dataproduct_project_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{DataProductsColumns[1], DataProductsColumns[7]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "state", Type: field.TypeString, Default: "CREATED"},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "extra", Type: field.TypeJSON, Nullable: true},
		{Name: "start_time", Type: field.TypeTime, Nullable: true},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "data_product_id", Type: field.TypeUUID, Nullable: true},
		{Name: "raw_data_id", Type: field.TypeUUID, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_data_products_jobs",
				Columns:    []*schema.Column{JobsColumns[7]},
				RefColumns: []*schema.Column{DataProductsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "jobs_raw_data_jobs",
				Columns:    []*schema.Column{JobsColumns[8]},
				RefColumns: []*schema.Column{RawDataColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_state_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[3]},
			},
			{
				Name:    "job_data_product_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[7]},
			},
			{
				Name:    "job_raw_data_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[8]},
			},
		},
	}
	// RawDataColumns holds the columns for the "raw_data" table.
	RawDataColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "project_id", Type: field.TypeUUID},
		{Name: "filepath", Type: field.TypeString},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "is_initial_processing_completed", Type: field.TypeBool, Default: false},
		{Name: "deactivated_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RawDataTable holds the schema information for the "raw_data" table.
	RawDataTable = &schema.Table{
		Name:       "raw_data",
		Columns:    RawDataColumns,
		PrimaryKey: []*schema.Column{RawDataColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rawdata_project_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{RawDataColumns[1], RawDataColumns[4]},
			},
		},
	}
	// VectorFeaturesColumns holds the columns for the "vector_features" table.
	VectorFeaturesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "project_id", Type: field.TypeUUID},
		{Name: "layer_name", Type: field.TypeString},
		{Name: "original_filename", Type: field.TypeString, Nullable: true},
		{Name: "geometry_type", Type: field.TypeString},
		{Name: "geometry", Type: field.TypeJSON, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "properties", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
	}
	// VectorFeaturesTable holds the schema information for the "vector_features" table.
	VectorFeaturesTable = &schema.Table{
		Name:       "vector_features",
		Columns:    VectorFeaturesColumns,
		PrimaryKey: []*schema.Column{VectorFeaturesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vectorfeature_project_id_layer_name",
				Unique:  false,
				Columns: []*schema.Column{VectorFeaturesColumns[1], VectorFeaturesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DataProductsTable,
		JobsTable,
		RawDataTable,
		VectorFeaturesTable,
	}
)

func init() {
	DataProductsTable.Annotation = &entsql.Annotation{
		Table: "data_products",
	}
	JobsTable.ForeignKeys[0].RefTable = DataProductsTable
	JobsTable.ForeignKeys[1].RefTable = RawDataTable
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	RawDataTable.Annotation = &entsql.Annotation{
		Table: "raw_data",
	}
	VectorFeaturesTable.Annotation = &entsql.Annotation{
		Table: "vector_features",
	}
}
