// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrary"
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrarysource"
	"github.com/jellyswarrm/jellyswarrm/ent/server"
)

// MergedLibrarySource is the model entity for the MergedLibrarySource schema.
type MergedLibrarySource struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// LibraryID holds the value of the "library_id" field.
	LibraryID string `json:"library_id,omitempty"`
	// LibraryName holds the value of the "library_name" field.
	LibraryName string `json:"library_name,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MergedLibrarySourceQuery when eager-loading is set.
	Edges                  MergedLibrarySourceEdges `json:"edges"`
	merged_library_sources *uuid.UUID
	server_library_sources *uuid.UUID
	selectValues           sql.SelectValues
}

// MergedLibrarySourceEdges holds the relations/edges for other nodes in the graph.
type MergedLibrarySourceEdges struct {
	// MergedLibrary holds the value of the merged_library edge.
	MergedLibrary *MergedLibrary `json:"merged_library,omitempty"`
	// Server holds the value of the server edge.
	Server *Server `json:"server,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MergedLibraryOrErr returns the MergedLibrary value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MergedLibrarySourceEdges) MergedLibraryOrErr() (*MergedLibrary, error) {
	if e.MergedLibrary != nil {
		return e.MergedLibrary, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: mergedlibrary.Label}
	}
	return nil, &NotLoadedError{edge: "merged_library"}
}

// ServerOrErr returns the Server value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MergedLibrarySourceEdges) ServerOrErr() (*Server, error) {
	if e.Server != nil {
		return e.Server, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: server.Label}
	}
	return nil, &NotLoadedError{edge: "server"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MergedLibrarySource) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mergedlibrarysource.FieldPriority:
			values[i] = new(sql.NullInt64)
		case mergedlibrarysource.FieldLibraryID, mergedlibrarysource.FieldLibraryName:
			values[i] = new(sql.NullString)
		case mergedlibrarysource.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case mergedlibrarysource.FieldID:
			values[i] = new(uuid.UUID)
		case mergedlibrarysource.ForeignKeys[0]: // merged_library_sources
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case mergedlibrarysource.ForeignKeys[1]: // server_library_sources
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MergedLibrarySource fields.
func (_m *MergedLibrarySource) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mergedlibrarysource.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case mergedlibrarysource.FieldLibraryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field library_id", values[i])
			} else if value.Valid {
				_m.LibraryID = value.String
			}
		case mergedlibrarysource.FieldLibraryName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field library_name", values[i])
			} else if value.Valid {
				_m.LibraryName = value.String
			}
		case mergedlibrarysource.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case mergedlibrarysource.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case mergedlibrarysource.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field merged_library_sources", values[i])
			} else if value.Valid {
				_m.merged_library_sources = new(uuid.UUID)
				*_m.merged_library_sources = *value.S.(*uuid.UUID)
			}
		case mergedlibrarysource.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field server_library_sources", values[i])
			} else if value.Valid {
				_m.server_library_sources = new(uuid.UUID)
				*_m.server_library_sources = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MergedLibrarySource.
// This includes values selected through modifiers, order, etc.
func (_m *MergedLibrarySource) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMergedLibrary queries the "merged_library" edge of the MergedLibrarySource entity.
func (_m *MergedLibrarySource) QueryMergedLibrary() *MergedLibraryQuery {
	return NewMergedLibrarySourceClient(_m.config).QueryMergedLibrary(_m)
}

// QueryServer queries the "server" edge of the MergedLibrarySource entity.
func (_m *MergedLibrarySource) QueryServer() *ServerQuery {
	return NewMergedLibrarySourceClient(_m.config).QueryServer(_m)
}

// Update returns a builder for updating this MergedLibrarySource.
// Note that you need to call MergedLibrarySource.Unwrap() before calling this method if this MergedLibrarySource
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MergedLibrarySource) Update() *MergedLibrarySourceUpdateOne {
	return NewMergedLibrarySourceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MergedLibrarySource entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MergedLibrarySource) Unwrap() *MergedLibrarySource {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MergedLibrarySource is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MergedLibrarySource) String() string {
	var builder strings.Builder
	builder.WriteString("MergedLibrarySource(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("library_id=")
	builder.WriteString(_m.LibraryID)
	builder.WriteString(", ")
	builder.WriteString("library_name=")
	builder.WriteString(_m.LibraryName)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MergedLibrarySources is a parsable slice of MergedLibrarySource.
type MergedLibrarySources []*MergedLibrarySource
