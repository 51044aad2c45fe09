package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AuditLog records administrative and authentication events.
type AuditLog struct {
	ent.Schema
}

func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		// Who performed the action: an admin username, a virtual username,
		// or "system" for background tasks.
		field.String("actor").
			NotEmpty(),
		field.Enum("actor_type").
			Values("admin", "user", "system").
			Default("system"),
		field.Enum("action").
			Values("create", "update", "delete", "login", "logout", "password_change", "session_reset"),
		field.String("resource_type").
			NotEmpty(),
		field.String("resource_id").
			Optional(),
		field.String("detail").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("resource_type", "resource_id"),
	}
}
