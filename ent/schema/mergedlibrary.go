package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// MergedLibrary is a virtual library that presents the union of one library
// per upstream server as a single collection, with optional cross-server
// deduplication.
type MergedLibrary struct {
	ent.Schema
}

func (MergedLibrary) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		// Exposed to clients as the library's item ID, "merged-" + uuid.
		field.String("virtual_id").
			Unique().
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.Enum("collection_type").
			Values("movies", "tvshows", "music", "books", "mixed").
			Default("mixed"),
		field.Enum("dedup_strategy").
			Values("provider_ids", "name_year", "none").
			Default("provider_ids"),
		field.String("created_by").
			Optional(),
		// Global libraries appear in every user's views.
		field.Bool("is_global").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (MergedLibrary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sources", MergedLibrarySource.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
