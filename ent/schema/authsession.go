package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AuthSession stores one upstream-issued access token obtained by logging a
// user's mapping into its server from a specific device. Clients never see
// these tokens; they authenticate with the user's virtual key and the proxy
// swaps in the upstream token per request.
type AuthSession struct {
	ent.Schema
}

func (AuthSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		// The real access token issued by the upstream server.
		field.String("access_token").
			Sensitive().
			NotEmpty(),
		// The user's ID on the upstream server.
		field.String("remote_user_id").
			NotEmpty(),
		// Client identity captured from the authorization header at login.
		field.String("device_id").
			NotEmpty(),
		field.String("device_name").
			Optional(),
		field.String("client").
			Optional(),
		field.String("client_version").
			Optional(),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("last_seen").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (AuthSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("sessions").
			Unique().
			Required(),
		edge.From("mapping", ServerMapping.Type).
			Ref("sessions").
			Unique().
			Required(),
	}
}

func (AuthSession) Indexes() []ent.Index {
	return []ent.Index{
		// One session per device per mapping; re-login replaces it.
		index.Fields("device_id").
			Edges("user", "mapping").
			Unique(),
	}
}
