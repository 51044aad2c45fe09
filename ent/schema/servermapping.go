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

// ServerMapping links a virtual user to their account on one upstream server.
// The upstream password is stored sealed under a key derived from the user's
// own proxy password; the proxy can only decrypt it while handling a request
// that carries the user's credentials or a session derived from them.
type ServerMapping struct {
	ent.Schema
}

func (ServerMapping) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		// The username on the upstream server. Usually equals the virtual
		// username but may differ when an admin maps accounts manually.
		field.String("remote_username").
			NotEmpty(),
		// AES-256-GCM sealed upstream password, base64(nonce||ciphertext).
		field.String("encrypted_password").
			Sensitive().
			NotEmpty(),
		// The same password sealed under the admin master key, when one is
		// configured. Lets an admin re-encrypt mappings after a password
		// reset without knowing the upstream password.
		field.String("recovery_password").
			Sensitive().
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ServerMapping) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("mappings").
			Unique().
			Required(),
		edge.From("server", Server.Type).
			Ref("mappings").
			Unique().
			Required(),
		// Deleting a mapping deletes every session authenticated through it.
		edge.To("sessions", AuthSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (ServerMapping) Indexes() []ent.Index {
	return []ent.Index{
		// One mapping per (user, server) pair.
		index.Edges("user", "server").
			Unique(),
	}
}
