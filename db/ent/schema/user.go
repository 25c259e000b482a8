package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type User struct{ ent.Schema }

func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "users"},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("email").NotEmpty().Unique(),
		field.String("first_name").Optional().Nillable(),
		field.String("last_name").Optional().Nillable(),
		field.Int("points").Default(0).NonNegative(),
		// Badge keys as a JSON array; set semantics are enforced in code, the
		// column only ever grows.
		field.Strings("badges").Default([]string{}),
		field.Int("bills_analyzed_count").Default(0).NonNegative(),
		field.Float("total_consumption_reduced").Default(0).Min(0),
		// Optimistic concurrency token for the analysis read-modify-write.
		field.Int("version").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("results", BillResult.Type),
		edge.To("jobs", AnalysisJob.Type),
	}
}
