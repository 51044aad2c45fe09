// Code generated by ent, DO NOT EDIT.

package mediamapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the mediamapping type in the database.
	Label = "media_mapping"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVirtualID holds the string denoting the virtual_id field in the database.
	FieldVirtualID = "virtual_id"
	// FieldOriginalID holds the string denoting the original_id field in the database.
	FieldOriginalID = "original_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeServer holds the string denoting the server edge name in mutations.
	EdgeServer = "server"
	// Table holds the table name of the mediamapping in the database.
	Table = "media_mappings"
	// ServerTable is the table that holds the server relation/edge.
	ServerTable = "media_mappings"
	// ServerInverseTable is the table name for the Server entity.
	// It exists in this package in order to avoid circular dependency with the "server" package.
	ServerInverseTable = "servers"
	// ServerColumn is the table column denoting the server relation/edge.
	ServerColumn = "server_media_mappings"
)

// Columns holds all SQL columns for mediamapping fields.
var Columns = []string{
	FieldID,
	FieldVirtualID,
	FieldOriginalID,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "media_mappings"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"server_media_mappings",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// VirtualIDValidator is a validator for the "virtual_id" field. It is called by the builders before save.
	VirtualIDValidator func(string) error
	// OriginalIDValidator is a validator for the "original_id" field. It is called by the builders before save.
	OriginalIDValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MediaMapping queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVirtualID orders the results by the virtual_id field.
func ByVirtualID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVirtualID, opts...).ToFunc()
}

// ByOriginalID orders the results by the original_id field.
func ByOriginalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByServerField orders the results by server field.
func ByServerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newServerStep(), sql.OrderByField(field, opts...))
	}
}
func newServerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ServerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ServerTable, ServerColumn),
	)
}
