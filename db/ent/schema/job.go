package schema

import (
	"encoding/json"

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

type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("state").Default(string(constants.JobStateCreated)).
			Validate(utils.EnumValidator(constants.JobStates...)),
		field.String("status").Optional().Nillable().
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.JSON("extra", json.RawMessage{}).Optional(),
		field.Time("start_time").Optional().Nillable(),
		field.Time("end_time").Optional().Nillable(),
		// explicit FKs
		field.UUID("data_product_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("raw_data_id", uuid.UUID{}).Optional().Nillable(),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("data_product", DataProduct.Type).
			Ref("jobs").
			Field("data_product_id").
			Unique(),
		edge.From("raw_data", RawData.Type).
			Ref("jobs").
			Field("raw_data_id").
			Unique(),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state", "status"),
		index.Fields("data_product_id"),
		index.Fields("raw_data_id"),
	}
}
