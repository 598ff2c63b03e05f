package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type VectorFeature struct{ ent.Schema }

func (VectorFeature) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vector_features"},
	}
}

func (VectorFeature) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("layer_name").NotEmpty(),
		field.String("original_filename").Optional(),
		field.String("geometry_type").NotEmpty(),
		// GeoJSON geometry as stored text; spatial indexing lives in the
		// tile layer, not here.
		field.JSON("geometry", json.RawMessage{}).
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.JSON("properties", json.RawMessage{}).Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
	}
}

func (VectorFeature) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "layer_name"),
	}
}
