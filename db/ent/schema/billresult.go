package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// EnergyReading is one period entry inside a bill's energy_usage column.
type EnergyReading struct {
	Month       string  `json:"month,omitempty"`
	Consumption float64 `json:"consumption"`
}

// BillResult rows are append-only: created once per analysis, never updated.
// The newest row per user (by analysis_date) is the user's latest result.
type BillResult struct{ ent.Schema }

func (BillResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bill_results"},
	}
}

func (BillResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}).Immutable(),
		field.Float("total_consumption").Min(0).Immutable(),
		field.Float("carbon_kg").Min(0).Immutable(),
		field.Float("total_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}).
			Immutable(),
		field.JSON("energy_usage", []EnergyReading{}).Immutable(),
		field.String("savings_tip").Immutable(),
		field.String("bill_id").Optional().Nillable().Immutable(),
		field.String("bill_date").Optional().Nillable().Immutable(),
		field.Time("analysis_date").Default(time.Now).Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (BillResult) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY results -> ONE user (FK: bill_results.user_id)
		edge.From("user", User.Type).
			Ref("results").
			Field("user_id").
			Required().
			Unique().
			Immutable(),
		// ONE result -> MANY jobs
		edge.To("jobs", AnalysisJob.Type),
	}
}

// History reads are "newest N for user"; index the sort the query uses.
func (BillResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "analysis_date"),
	}
}
