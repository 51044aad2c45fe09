// Code generated by ent, DO NOT EDIT.

package mergedlibrarysource

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the mergedlibrarysource type in the database.
	Label = "merged_library_source"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLibraryID holds the string denoting the library_id field in the database.
	FieldLibraryID = "library_id"
	// FieldLibraryName holds the string denoting the library_name field in the database.
	FieldLibraryName = "library_name"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeMergedLibrary holds the string denoting the merged_library edge name in mutations.
	EdgeMergedLibrary = "merged_library"
	// EdgeServer holds the string denoting the server edge name in mutations.
	EdgeServer = "server"
	// Table holds the table name of the mergedlibrarysource in the database.
	Table = "merged_library_sources"
	// MergedLibraryTable is the table that holds the merged_library relation/edge.
	MergedLibraryTable = "merged_library_sources"
	// MergedLibraryInverseTable is the table name for the MergedLibrary entity.
	// It exists in this package in order to avoid circular dependency with the "mergedlibrary" package.
	MergedLibraryInverseTable = "merged_libraries"
	// MergedLibraryColumn is the table column denoting the merged_library relation/edge.
	MergedLibraryColumn = "merged_library_sources"
	// ServerTable is the table that holds the server relation/edge.
	ServerTable = "merged_library_sources"
	// ServerInverseTable is the table name for the Server entity.
	// It exists in this package in order to avoid circular dependency with the "server" package.
	ServerInverseTable = "servers"
	// ServerColumn is the table column denoting the server relation/edge.
	ServerColumn = "server_library_sources"
)

// Columns holds all SQL columns for mergedlibrarysource fields.
var Columns = []string{
	FieldID,
	FieldLibraryID,
	FieldLibraryName,
	FieldPriority,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "merged_library_sources"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"merged_library_sources",
	"server_library_sources",
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
	// LibraryIDValidator is a validator for the "library_id" field. It is called by the builders before save.
	LibraryIDValidator func(string) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MergedLibrarySource queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLibraryID orders the results by the library_id field.
func ByLibraryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLibraryID, opts...).ToFunc()
}

// ByLibraryName orders the results by the library_name field.
func ByLibraryName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLibraryName, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByMergedLibraryField orders the results by merged_library field.
func ByMergedLibraryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMergedLibraryStep(), sql.OrderByField(field, opts...))
	}
}

// ByServerField orders the results by server field.
func ByServerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newServerStep(), sql.OrderByField(field, opts...))
	}
}
func newMergedLibraryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MergedLibraryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MergedLibraryTable, MergedLibraryColumn),
	)
}
func newServerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ServerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ServerTable, ServerColumn),
	)
}
