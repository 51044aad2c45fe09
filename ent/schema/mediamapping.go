package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// MediaMapping is one row of the persistent bijection between upstream item
// IDs and the opaque virtual IDs the proxy exposes. A given (original_id,
// server) pair maps to exactly one virtual ID for the lifetime of the row.
type MediaMapping struct {
	ent.Schema
}

func (MediaMapping) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		// Proxy-minted ID, UUID in simple form (32 hex chars). Carries no
		// information about the owning server or the original ID.
		field.String("virtual_id").
			Unique().
			NotEmpty(),
		// The item ID as reported by the upstream server, normalized to
		// simple form when it is a UUID.
		field.String("original_id").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (MediaMapping) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("server", Server.Type).
			Ref("media_mappings").
			Unique().
			Required(),
	}
}

func (MediaMapping) Indexes() []ent.Index {
	return []ent.Index{
		// The same upstream item always gets the same virtual ID.
		index.Fields("original_id").
			Edges("server").
			Unique(),
	}
}
