package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// APIKey grants programmatic access to the admin REST surface. Only the
// SHA-256 of the key is stored; the plaintext is returned exactly once at
// creation time.
type APIKey struct {
	ent.Schema
}

func (APIKey) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").
			NotEmpty(),
		field.String("key_hash").
			Unique().
			Sensitive().
			NotEmpty(),
		// First characters of the plaintext key, shown in listings so admins
		// can tell keys apart without revealing them.
		field.String("key_prefix").
			NotEmpty().
			MaxLen(8),
		field.String("created_by").
			NotEmpty(),
		field.Time("last_used_at").
			Optional().
			Nillable(),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
