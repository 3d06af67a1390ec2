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

// SocialAccount holds a connected X account and its stored credential.
// The access token is sealed with the service secret key before it is
// written; plaintext tokens never reach the database.
type SocialAccount struct{ ent.Schema }

// Fields of the SocialAccount.
func (SocialAccount) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.Enum("provider").Values("x").Default("x"),
		field.String("handle").NotEmpty().Comment("Screen name on the provider, without the @"),
		field.String("provider_user_id").NotEmpty().Comment("Numeric user id on the provider"),
		field.String("access_token_sealed").NotEmpty().Sensitive().Comment("Encrypted OAuth2 access token"),
		field.JSON("scopes", []string{}).Optional().
			SchemaType(map[string]string{
				dialect.MySQL:    "json",
				dialect.Postgres: "jsonb",
			}),
		field.String("label").Optional().Comment("Free-form label shown in the UI"),
		field.Bool("is_active").Default(true),
		field.Time("last_used_at").Optional().SchemaType(map[string]string{
			dialect.MySQL:    "timestamp",
			dialect.Postgres: "timestamptz",
		}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the SocialAccount.
func (SocialAccount) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).Ref("social_accounts").Unique().Required(),
		edge.To("executions", BlockExecution.Type),
	}
}

// Indexes of the SocialAccount.
func (SocialAccount) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider", "provider_user_id").Edges("owner").Unique(),
		index.Fields("handle"),
	}
}
