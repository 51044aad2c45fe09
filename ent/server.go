// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jellyswarrm/jellyswarrm/ent/server"
)

// Server is the model entity for the Server schema.
type Server struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Base URL of the upstream Jellyfin server, trailing-slash-normalized, e.g. https://media.example.com
	URL string `json:"url,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ServerQuery when eager-loading is set.
	Edges        ServerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ServerEdges holds the relations/edges for other nodes in the graph.
type ServerEdges struct {
	// Mappings holds the value of the mappings edge.
	Mappings []*ServerMapping `json:"mappings,omitempty"`
	// MediaMappings holds the value of the media_mappings edge.
	MediaMappings []*MediaMapping `json:"media_mappings,omitempty"`
	// HealthChecks holds the value of the health_checks edge.
	HealthChecks []*HealthCheck `json:"health_checks,omitempty"`
	// LibrarySources holds the value of the library_sources edge.
	LibrarySources []*MergedLibrarySource `json:"library_sources,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// MappingsOrErr returns the Mappings value or an error if the edge
// was not loaded in eager-loading.
func (e ServerEdges) MappingsOrErr() ([]*ServerMapping, error) {
	if e.loadedTypes[0] {
		return e.Mappings, nil
	}
	return nil, &NotLoadedError{edge: "mappings"}
}

// MediaMappingsOrErr returns the MediaMappings value or an error if the edge
// was not loaded in eager-loading.
func (e ServerEdges) MediaMappingsOrErr() ([]*MediaMapping, error) {
	if e.loadedTypes[1] {
		return e.MediaMappings, nil
	}
	return nil, &NotLoadedError{edge: "media_mappings"}
}

// HealthChecksOrErr returns the HealthChecks value or an error if the edge
// was not loaded in eager-loading.
func (e ServerEdges) HealthChecksOrErr() ([]*HealthCheck, error) {
	if e.loadedTypes[2] {
		return e.HealthChecks, nil
	}
	return nil, &NotLoadedError{edge: "health_checks"}
}

// LibrarySourcesOrErr returns the LibrarySources value or an error if the edge
// was not loaded in eager-loading.
func (e ServerEdges) LibrarySourcesOrErr() ([]*MergedLibrarySource, error) {
	if e.loadedTypes[3] {
		return e.LibrarySources, nil
	}
	return nil, &NotLoadedError{edge: "library_sources"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Server) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case server.FieldPriority:
			values[i] = new(sql.NullInt64)
		case server.FieldName, server.FieldURL:
			values[i] = new(sql.NullString)
		case server.FieldCreatedAt, server.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case server.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Server fields.
func (_m *Server) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case server.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case server.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case server.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case server.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case server.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case server.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Server.
// This includes values selected through modifiers, order, etc.
func (_m *Server) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMappings queries the "mappings" edge of the Server entity.
func (_m *Server) QueryMappings() *ServerMappingQuery {
	return NewServerClient(_m.config).QueryMappings(_m)
}

// QueryMediaMappings queries the "media_mappings" edge of the Server entity.
func (_m *Server) QueryMediaMappings() *MediaMappingQuery {
	return NewServerClient(_m.config).QueryMediaMappings(_m)
}

// QueryHealthChecks queries the "health_checks" edge of the Server entity.
func (_m *Server) QueryHealthChecks() *HealthCheckQuery {
	return NewServerClient(_m.config).QueryHealthChecks(_m)
}

// QueryLibrarySources queries the "library_sources" edge of the Server entity.
func (_m *Server) QueryLibrarySources() *MergedLibrarySourceQuery {
	return NewServerClient(_m.config).QueryLibrarySources(_m)
}

// Update returns a builder for updating this Server.
// Note that you need to call Server.Unwrap() before calling this method if this Server
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Server) Update() *ServerUpdateOne {
	return NewServerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Server entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Server) Unwrap() *Server {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Server is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Server) String() string {
	var builder strings.Builder
	builder.WriteString("Server(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Servers is a parsable slice of Server.
type Servers []*Server
