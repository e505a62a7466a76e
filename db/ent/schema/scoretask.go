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

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/db/ent/schema/utils"
)

type ScoreTask struct{ ent.Schema }

func (ScoreTask) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "score_tasks"},
	}
}

func (ScoreTask) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("job_id", uuid.UUID{}),
		field.String("doc_ref").NotEmpty(),
		field.String("doc_name").Default(""),
		field.String("view_url").Optional().Nillable(),
		field.String("preview_url").Optional().Nillable(),
		field.Enum("status").
			Values("pending", "downloaded", "scored", "failed").
			Default("pending"),
		field.String("text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("gpa").Optional().Nillable(),
		field.String("school_year").Optional().Nillable().
			Validate(utils.EnumValidator(constants.SchoolYearsAsStrings()...)),
		field.Int("num_internships").Optional().Nillable(),
		// score and breakdown are set together; breakdown values are
		// pre-penalty, score is post-penalty and clamped.
		field.Int("score").Optional().Nillable().
			Min(0).Max(100),
		field.Int("gpa_contribution").Optional().Nillable(),
		field.Int("experience_contribution").Optional().Nillable(),
		field.Int("impact_quality_contribution").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ScoreTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("tasks").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (ScoreTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "status"),
		index.Fields("job_id", "school_year"),
		index.Fields("job_id", "score"),
	}
}
