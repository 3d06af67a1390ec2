package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// BlockExecution is the audit record of a single block run.
type BlockExecution struct{ ent.Schema }

// Fields of the BlockExecution.
func (BlockExecution) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("block_id").NotEmpty().Comment("Stable id of the executed block"),
		field.String("block_name").NotEmpty(),
		field.Enum("status").Values("ok", "error"),
		field.JSON("input", map[string]interface{}{}).
			SchemaType(map[string]string{
				dialect.MySQL:    "json",
				dialect.Postgres: "jsonb",
			}).Comment("Block input with credential fields stripped"),
		field.JSON("output", map[string]interface{}{}).
			Optional().
			SchemaType(map[string]string{
				dialect.MySQL:    "json",
				dialect.Postgres: "jsonb",
			}),
		field.String("error_message").Optional(),
		field.Int64("duration_ms"),
		field.Time("started_at").SchemaType(map[string]string{
			dialect.MySQL:    "timestamp",
			dialect.Postgres: "timestamptz",
		}),
		field.Time("finished_at").SchemaType(map[string]string{
			dialect.MySQL:    "timestamp",
			dialect.Postgres: "timestamptz",
		}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the BlockExecution.
func (BlockExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("runner", User.Type).Ref("executions").Unique(),
		edge.From("account", SocialAccount.Type).Ref("executions").Unique(),
	}
}

// Indexes of the BlockExecution.
func (BlockExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("block_id"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
