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
)

// MergedLibrary is the model entity for the MergedLibrary schema.
type MergedLibrary struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// VirtualID holds the value of the "virtual_id" field.
	VirtualID string `json:"virtual_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// CollectionType holds the value of the "collection_type" field.
	CollectionType mergedlibrary.CollectionType `json:"collection_type,omitempty"`
	// DedupStrategy holds the value of the "dedup_strategy" field.
	DedupStrategy mergedlibrary.DedupStrategy `json:"dedup_strategy,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// IsGlobal holds the value of the "is_global" field.
	IsGlobal bool `json:"is_global,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MergedLibraryQuery when eager-loading is set.
	Edges        MergedLibraryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MergedLibraryEdges holds the relations/edges for other nodes in the graph.
type MergedLibraryEdges struct {
	// Sources holds the value of the sources edge.
	Sources []*MergedLibrarySource `json:"sources,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SourcesOrErr returns the Sources value or an error if the edge
// was not loaded in eager-loading.
func (e MergedLibraryEdges) SourcesOrErr() ([]*MergedLibrarySource, error) {
	if e.loadedTypes[0] {
		return e.Sources, nil
	}
	return nil, &NotLoadedError{edge: "sources"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MergedLibrary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mergedlibrary.FieldIsGlobal:
			values[i] = new(sql.NullBool)
		case mergedlibrary.FieldVirtualID, mergedlibrary.FieldName, mergedlibrary.FieldCollectionType, mergedlibrary.FieldDedupStrategy, mergedlibrary.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case mergedlibrary.FieldCreatedAt, mergedlibrary.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case mergedlibrary.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MergedLibrary fields.
func (_m *MergedLibrary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mergedlibrary.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case mergedlibrary.FieldVirtualID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field virtual_id", values[i])
			} else if value.Valid {
				_m.VirtualID = value.String
			}
		case mergedlibrary.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case mergedlibrary.FieldCollectionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field collection_type", values[i])
			} else if value.Valid {
				_m.CollectionType = mergedlibrary.CollectionType(value.String)
			}
		case mergedlibrary.FieldDedupStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dedup_strategy", values[i])
			} else if value.Valid {
				_m.DedupStrategy = mergedlibrary.DedupStrategy(value.String)
			}
		case mergedlibrary.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case mergedlibrary.FieldIsGlobal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_global", values[i])
			} else if value.Valid {
				_m.IsGlobal = value.Bool
			}
		case mergedlibrary.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case mergedlibrary.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MergedLibrary.
// This includes values selected through modifiers, order, etc.
func (_m *MergedLibrary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySources queries the "sources" edge of the MergedLibrary entity.
func (_m *MergedLibrary) QuerySources() *MergedLibrarySourceQuery {
	return NewMergedLibraryClient(_m.config).QuerySources(_m)
}

// Update returns a builder for updating this MergedLibrary.
// Note that you need to call MergedLibrary.Unwrap() before calling this method if this MergedLibrary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MergedLibrary) Update() *MergedLibraryUpdateOne {
	return NewMergedLibraryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MergedLibrary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MergedLibrary) Unwrap() *MergedLibrary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MergedLibrary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MergedLibrary) String() string {
	var builder strings.Builder
	builder.WriteString("MergedLibrary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("virtual_id=")
	builder.WriteString(_m.VirtualID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("collection_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.CollectionType))
	builder.WriteString(", ")
	builder.WriteString("dedup_strategy=")
	builder.WriteString(fmt.Sprintf("%v", _m.DedupStrategy))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("is_global=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsGlobal))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MergedLibraries is a parsable slice of MergedLibrary.
type MergedLibraries []*MergedLibrary
