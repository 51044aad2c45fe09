// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jellyswarrm/jellyswarrm/ent/mediamapping"
	"github.com/jellyswarrm/jellyswarrm/ent/server"
)

// MediaMapping is the model entity for the MediaMapping schema.
type MediaMapping struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// VirtualID holds the value of the "virtual_id" field.
	VirtualID string `json:"virtual_id,omitempty"`
	// OriginalID holds the value of the "original_id" field.
	OriginalID string `json:"original_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MediaMappingQuery when eager-loading is set.
	Edges                 MediaMappingEdges `json:"edges"`
	server_media_mappings *uuid.UUID
	selectValues          sql.SelectValues
}

// MediaMappingEdges holds the relations/edges for other nodes in the graph.
type MediaMappingEdges struct {
	// Server holds the value of the server edge.
	Server *Server `json:"server,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ServerOrErr returns the Server value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MediaMappingEdges) ServerOrErr() (*Server, error) {
	if e.Server != nil {
		return e.Server, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: server.Label}
	}
	return nil, &NotLoadedError{edge: "server"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MediaMapping) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mediamapping.FieldVirtualID, mediamapping.FieldOriginalID:
			values[i] = new(sql.NullString)
		case mediamapping.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case mediamapping.FieldID:
			values[i] = new(uuid.UUID)
		case mediamapping.ForeignKeys[0]: // server_media_mappings
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MediaMapping fields.
func (_m *MediaMapping) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mediamapping.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case mediamapping.FieldVirtualID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field virtual_id", values[i])
			} else if value.Valid {
				_m.VirtualID = value.String
			}
		case mediamapping.FieldOriginalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_id", values[i])
			} else if value.Valid {
				_m.OriginalID = value.String
			}
		case mediamapping.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case mediamapping.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field server_media_mappings", values[i])
			} else if value.Valid {
				_m.server_media_mappings = new(uuid.UUID)
				*_m.server_media_mappings = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MediaMapping.
// This includes values selected through modifiers, order, etc.
func (_m *MediaMapping) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryServer queries the "server" edge of the MediaMapping entity.
func (_m *MediaMapping) QueryServer() *ServerQuery {
	return NewMediaMappingClient(_m.config).QueryServer(_m)
}

// Update returns a builder for updating this MediaMapping.
// Note that you need to call MediaMapping.Unwrap() before calling this method if this MediaMapping
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MediaMapping) Update() *MediaMappingUpdateOne {
	return NewMediaMappingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MediaMapping entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MediaMapping) Unwrap() *MediaMapping {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MediaMapping is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MediaMapping) String() string {
	var builder strings.Builder
	builder.WriteString("MediaMapping(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("virtual_id=")
	builder.WriteString(_m.VirtualID)
	builder.WriteString(", ")
	builder.WriteString("original_id=")
	builder.WriteString(_m.OriginalID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MediaMappings is a parsable slice of MediaMapping.
type MediaMappings []*MediaMapping
