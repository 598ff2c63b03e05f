package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/jcordova-gis/geoingest/constants"
	"github.com/jcordova-gis/geoingest/db/ent/schema/utils"
)

type DataProduct struct{ ent.Schema }

func (DataProduct) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "data_products"},
	}
}

func (DataProduct) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("data_type").NotEmpty().
			Validate(utils.EnumValidator(constants.UploadKinds...)),
		field.String("filepath").NotEmpty(),
		field.String("original_filename").NotEmpty(),
		field.JSON("metadata", json.RawMessage{}).Optional(),
		field.JSON("default_symbology", json.RawMessage{}).Optional(),
		field.Bool("is_active").Default(true),
		field.Bool("is_initial_processing_completed").Default(false),
		field.Time("deactivated_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (DataProduct) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", Job.Type),
	}
}

func (DataProduct) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "is_active"),
	}
}
