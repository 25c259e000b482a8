package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// AnalysisJob tracks one ingestion attempt over an uploaded bill image.
type AnalysisJob struct{ ent.Schema }

func (AnalysisJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "analysis_jobs"},
	}
}

func (AnalysisJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("result_id", uuid.UUID{}).Optional().Nillable(),
		field.String("filename").NotEmpty(),
		field.String("status").NotEmpty(),
		field.Text("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bytes("extracted_json").Optional(),
		field.String("error_message").Optional().Nillable(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (AnalysisJob) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY jobs -> ONE user (FK: analysis_jobs.user_id)
		edge.From("user", User.Type).
			Ref("jobs").
			Field("user_id").
			Required().
			Unique(),
		// OPTIONAL: MANY jobs -> ONE result (FK: analysis_jobs.result_id)
		edge.From("result", BillResult.Type).
			Ref("jobs").
			Field("result_id").
			Unique(),
	}
}
