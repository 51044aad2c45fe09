// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jellyswarrm/jellyswarrm/ent/healthcheck"
	"github.com/jellyswarrm/jellyswarrm/ent/server"
)

// HealthCheck is the model entity for the HealthCheck schema.
type HealthCheck struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Healthy holds the value of the "healthy" field.
	Healthy bool `json:"healthy,omitempty"`
	// ResponseTimeMs holds the value of the "response_time_ms" field.
	ResponseTimeMs *int64 `json:"response_time_ms,omitempty"`
	// Version holds the value of the "version" field.
	Version *string `json:"version,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CheckedAt holds the value of the "checked_at" field.
	CheckedAt time.Time `json:"checked_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HealthCheckQuery when eager-loading is set.
	Edges                HealthCheckEdges `json:"edges"`
	server_health_checks *uuid.UUID
	selectValues         sql.SelectValues
}

// HealthCheckEdges holds the relations/edges for other nodes in the graph.
type HealthCheckEdges struct {
	// Server holds the value of the server edge.
	Server *Server `json:"server,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ServerOrErr returns the Server value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HealthCheckEdges) ServerOrErr() (*Server, error) {
	if e.Server != nil {
		return e.Server, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: server.Label}
	}
	return nil, &NotLoadedError{edge: "server"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HealthCheck) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case healthcheck.FieldHealthy:
			values[i] = new(sql.NullBool)
		case healthcheck.FieldResponseTimeMs:
			values[i] = new(sql.NullInt64)
		case healthcheck.FieldVersion, healthcheck.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case healthcheck.FieldCheckedAt:
			values[i] = new(sql.NullTime)
		case healthcheck.FieldID:
			values[i] = new(uuid.UUID)
		case healthcheck.ForeignKeys[0]: // server_health_checks
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HealthCheck fields.
func (_m *HealthCheck) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case healthcheck.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case healthcheck.FieldHealthy:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field healthy", values[i])
			} else if value.Valid {
				_m.Healthy = value.Bool
			}
		case healthcheck.FieldResponseTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_time_ms", values[i])
			} else if value.Valid {
				_m.ResponseTimeMs = new(int64)
				*_m.ResponseTimeMs = value.Int64
			}
		case healthcheck.FieldVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = new(string)
				*_m.Version = value.String
			}
		case healthcheck.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case healthcheck.FieldCheckedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field checked_at", values[i])
			} else if value.Valid {
				_m.CheckedAt = value.Time
			}
		case healthcheck.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field server_health_checks", values[i])
			} else if value.Valid {
				_m.server_health_checks = new(uuid.UUID)
				*_m.server_health_checks = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HealthCheck.
// This includes values selected through modifiers, order, etc.
func (_m *HealthCheck) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryServer queries the "server" edge of the HealthCheck entity.
func (_m *HealthCheck) QueryServer() *ServerQuery {
	return NewHealthCheckClient(_m.config).QueryServer(_m)
}

// Update returns a builder for updating this HealthCheck.
// Note that you need to call HealthCheck.Unwrap() before calling this method if this HealthCheck
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HealthCheck) Update() *HealthCheckUpdateOne {
	return NewHealthCheckClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HealthCheck entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HealthCheck) Unwrap() *HealthCheck {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HealthCheck is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HealthCheck) String() string {
	var builder strings.Builder
	builder.WriteString("HealthCheck(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("healthy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Healthy))
	builder.WriteString(", ")
	if v := _m.ResponseTimeMs; v != nil {
		builder.WriteString("response_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Version; v != nil {
		builder.WriteString("version=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("checked_at=")
	builder.WriteString(_m.CheckedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HealthChecks is a parsable slice of HealthCheck.
type HealthChecks []*HealthCheck
