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
	"github.com/jellyswarrm/jellyswarrm/ent/servermapping"
	"github.com/jellyswarrm/jellyswarrm/ent/user"
)

// ServerMapping is the model entity for the ServerMapping schema.
type ServerMapping struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RemoteUsername holds the value of the "remote_username" field.
	RemoteUsername string `json:"remote_username,omitempty"`
	// EncryptedPassword holds the value of the "encrypted_password" field.
	EncryptedPassword string `json:"-"`
	// RecoveryPassword holds the value of the "recovery_password" field.
	RecoveryPassword *string `json:"-"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ServerMappingQuery when eager-loading is set.
	Edges           ServerMappingEdges `json:"edges"`
	server_mappings *uuid.UUID
	user_mappings   *uuid.UUID
	selectValues    sql.SelectValues
}

// ServerMappingEdges holds the relations/edges for other nodes in the graph.
type ServerMappingEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Server holds the value of the server edge.
	Server *Server `json:"server,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*AuthSession `json:"sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ServerMappingEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// ServerOrErr returns the Server value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ServerMappingEdges) ServerOrErr() (*Server, error) {
	if e.Server != nil {
		return e.Server, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: server.Label}
	}
	return nil, &NotLoadedError{edge: "server"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e ServerMappingEdges) SessionsOrErr() ([]*AuthSession, error) {
	if e.loadedTypes[2] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ServerMapping) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case servermapping.FieldRemoteUsername, servermapping.FieldEncryptedPassword, servermapping.FieldRecoveryPassword:
			values[i] = new(sql.NullString)
		case servermapping.FieldCreatedAt, servermapping.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case servermapping.FieldID:
			values[i] = new(uuid.UUID)
		case servermapping.ForeignKeys[0]: // server_mappings
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case servermapping.ForeignKeys[1]: // user_mappings
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ServerMapping fields.
func (_m *ServerMapping) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case servermapping.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case servermapping.FieldRemoteUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field remote_username", values[i])
			} else if value.Valid {
				_m.RemoteUsername = value.String
			}
		case servermapping.FieldEncryptedPassword:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field encrypted_password", values[i])
			} else if value.Valid {
				_m.EncryptedPassword = value.String
			}
		case servermapping.FieldRecoveryPassword:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_password", values[i])
			} else if value.Valid {
				_m.RecoveryPassword = new(string)
				*_m.RecoveryPassword = value.String
			}
		case servermapping.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case servermapping.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case servermapping.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field server_mappings", values[i])
			} else if value.Valid {
				_m.server_mappings = new(uuid.UUID)
				*_m.server_mappings = *value.S.(*uuid.UUID)
			}
		case servermapping.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_mappings", values[i])
			} else if value.Valid {
				_m.user_mappings = new(uuid.UUID)
				*_m.user_mappings = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ServerMapping.
// This includes values selected through modifiers, order, etc.
func (_m *ServerMapping) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the ServerMapping entity.
func (_m *ServerMapping) QueryUser() *UserQuery {
	return NewServerMappingClient(_m.config).QueryUser(_m)
}

// QueryServer queries the "server" edge of the ServerMapping entity.
func (_m *ServerMapping) QueryServer() *ServerQuery {
	return NewServerMappingClient(_m.config).QueryServer(_m)
}

// QuerySessions queries the "sessions" edge of the ServerMapping entity.
func (_m *ServerMapping) QuerySessions() *AuthSessionQuery {
	return NewServerMappingClient(_m.config).QuerySessions(_m)
}

// Update returns a builder for updating this ServerMapping.
// Note that you need to call ServerMapping.Unwrap() before calling this method if this ServerMapping
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ServerMapping) Update() *ServerMappingUpdateOne {
	return NewServerMappingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ServerMapping entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ServerMapping) Unwrap() *ServerMapping {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ServerMapping is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ServerMapping) String() string {
	var builder strings.Builder
	builder.WriteString("ServerMapping(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("remote_username=")
	builder.WriteString(_m.RemoteUsername)
	builder.WriteString(", ")
	builder.WriteString("encrypted_password=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("recovery_password=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ServerMappings is a parsable slice of ServerMapping.
type ServerMappings []*ServerMapping
