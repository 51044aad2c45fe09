package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// MergedLibrarySource binds one upstream library to a merged library.
// Priority orders fan-out and decides which source wins when deduplication
// groups items across servers.
type MergedLibrarySource struct {
	ent.Schema
}

func (MergedLibrarySource) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		// The library's item ID on the upstream server (not virtualized).
		field.String("library_id").
			NotEmpty(),
		field.String("library_name").
			Optional(),
		field.Int("priority").
			Default(100),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (MergedLibrarySource) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("merged_library", MergedLibrary.Type).
			Ref("sources").
			Unique().
			Required(),
		edge.From("server", Server.Type).
			Ref("library_sources").
			Unique().
			Required(),
	}
}

func (MergedLibrarySource) Indexes() []ent.Index {
	return []ent.Index{
		// A given upstream library joins a merged library at most once.
		index.Fields("library_id").
			Edges("merged_library", "server").
			Unique(),
	}
}
