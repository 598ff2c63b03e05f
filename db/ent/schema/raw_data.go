package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type RawData struct{ ent.Schema }

func (RawData) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "raw_data"},
	}
}

func (RawData) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("filepath").NotEmpty(),
		field.String("original_filename").NotEmpty(),
		field.Bool("is_active").Default(true),
		field.Bool("is_initial_processing_completed").Default(false),
		field.Time("deactivated_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (RawData) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", Job.Type),
	}
}

func (RawData) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "is_active"),
	}
}
