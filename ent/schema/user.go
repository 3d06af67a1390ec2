// Package schema provides database schema definitions for the moderation
// blocks service: User, Identity, SocialAccount, and BlockExecution.
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct{ ent.Schema }

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("display_name").Optional(),
		field.Bool("is_active").Default(true),
		field.Time("last_login_at").Optional().SchemaType(map[string]string{
			dialect.MySQL:    "timestamp",
			dialect.Postgres: "timestamptz",
		}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("identities", Identity.Type),
		edge.To("social_accounts", SocialAccount.Type),
		edge.To("executions", BlockExecution.Type),
	}
}
