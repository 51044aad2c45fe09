package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// HealthCheck is one recorded probe of an upstream server. The health monitor
// appends a row per check and prunes rows past the retention window; uptime
// and response-time statistics aggregate over these rows.
type HealthCheck struct {
	ent.Schema
}

func (HealthCheck) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Bool("healthy"),
		field.Int64("response_time_ms").
			Optional().
			Nillable(),
		// Server version reported by /System/Info/Public.
		field.String("version").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("checked_at").
			Default(time.Now).
			Immutable(),
	}
}

func (HealthCheck) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("server", Server.Type).
			Ref("health_checks").
			Unique().
			Required(),
	}
}

func (HealthCheck) Indexes() []ent.Index {
	return []ent.Index{
		// Stats and pruning both scan by server and time window.
		index.Fields("checked_at").
			Edges("server"),
	}
}
