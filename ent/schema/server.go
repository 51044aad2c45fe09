package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Server represents an upstream Jellyfin server the proxy federates.
type Server struct {
	ent.Schema
}

func (Server) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").
			Unique().
			NotEmpty(),
		field.String("url").
			NotEmpty().
			Comment("Base URL of the upstream Jellyfin server, trailing-slash-normalized, e.g. https://media.example.com"),
		// Higher priority servers win: they are tried first during login,
		// lead federated merges and act as the primary source for
		// deduplicated merged-library items.
		field.Int("priority").
			Default(100),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Server) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("mappings", ServerMapping.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("media_mappings", MediaMapping.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("health_checks", HealthCheck.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("library_sources", MergedLibrarySource.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
