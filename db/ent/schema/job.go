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

type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("source_ref").NotEmpty(),
		field.String("name").NotEmpty(),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE job -> MANY tasks; tasks are cascade-scoped to the job.
		edge.To("tasks", ScoreTask.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "status"),
	}
}
