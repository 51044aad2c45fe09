package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// User holds proxy-managed virtual user accounts. A virtual user is keyed by
// the (username, key_hash) pair: logging in with the same username and
// password always resolves to the same user, while the same username with a
// different password creates a distinct one.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("username").
			NotEmpty(),
		// Storage-grade hash (bcrypt) used to verify logins.
		field.String("password_hash").
			Sensitive().
			NotEmpty(),
		// Deterministic hex SHA-256 of the password. Part of the user's
		// identity and the input for deriving the credential sealing key.
		field.String("key_hash").
			Sensitive().
			NotEmpty(),
		// The bearer token the proxy issues to clients in place of any
		// upstream access token.
		field.String("virtual_key").
			Unique().
			Sensitive().
			NotEmpty(),
		field.Bool("is_admin").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("mappings", ServerMapping.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sessions", AuthSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		// Same username + same password → same user.
		index.Fields("username", "key_hash").
			Unique(),
	}
}
