// Code generated by ent, DO NOT EDIT.

package server

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the server type in the database.
	Label = "server"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMappings holds the string denoting the mappings edge name in mutations.
	EdgeMappings = "mappings"
	// EdgeMediaMappings holds the string denoting the media_mappings edge name in mutations.
	EdgeMediaMappings = "media_mappings"
	// EdgeHealthChecks holds the string denoting the health_checks edge name in mutations.
	EdgeHealthChecks = "health_checks"
	// EdgeLibrarySources holds the string denoting the library_sources edge name in mutations.
	EdgeLibrarySources = "library_sources"
	// Table holds the table name of the server in the database.
	Table = "servers"
	// MappingsTable is the table that holds the mappings relation/edge.
	MappingsTable = "server_mappings"
	// MappingsInverseTable is the table name for the ServerMapping entity.
	// It exists in this package in order to avoid circular dependency with the "servermapping" package.
	MappingsInverseTable = "server_mappings"
	// MappingsColumn is the table column denoting the mappings relation/edge.
	MappingsColumn = "server_mappings"
	// MediaMappingsTable is the table that holds the media_mappings relation/edge.
	MediaMappingsTable = "media_mappings"
	// MediaMappingsInverseTable is the table name for the MediaMapping entity.
	// It exists in this package in order to avoid circular dependency with the "mediamapping" package.
	MediaMappingsInverseTable = "media_mappings"
	// MediaMappingsColumn is the table column denoting the media_mappings relation/edge.
	MediaMappingsColumn = "server_media_mappings"
	// HealthChecksTable is the table that holds the health_checks relation/edge.
	HealthChecksTable = "health_checks"
	// HealthChecksInverseTable is the table name for the HealthCheck entity.
	// It exists in this package in order to avoid circular dependency with the "healthcheck" package.
	HealthChecksInverseTable = "health_checks"
	// HealthChecksColumn is the table column denoting the health_checks relation/edge.
	HealthChecksColumn = "server_health_checks"
	// LibrarySourcesTable is the table that holds the library_sources relation/edge.
	LibrarySourcesTable = "merged_library_sources"
	// LibrarySourcesInverseTable is the table name for the MergedLibrarySource entity.
	// It exists in this package in order to avoid circular dependency with the "mergedlibrarysource" package.
	LibrarySourcesInverseTable = "merged_library_sources"
	// LibrarySourcesColumn is the table column denoting the library_sources relation/edge.
	LibrarySourcesColumn = "server_library_sources"
)

// Columns holds all SQL columns for server fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldURL,
	FieldPriority,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// URLValidator is a validator for the "url" field. It is called by the builders before save.
	URLValidator func(string) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Server queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMappingsCount orders the results by mappings count.
func ByMappingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMappingsStep(), opts...)
	}
}

// ByMappings orders the results by mappings terms.
func ByMappings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMappingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMediaMappingsCount orders the results by media_mappings count.
func ByMediaMappingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMediaMappingsStep(), opts...)
	}
}

// ByMediaMappings orders the results by media_mappings terms.
func ByMediaMappings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMediaMappingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByHealthChecksCount orders the results by health_checks count.
func ByHealthChecksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHealthChecksStep(), opts...)
	}
}

// ByHealthChecks orders the results by health_checks terms.
func ByHealthChecks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHealthChecksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLibrarySourcesCount orders the results by library_sources count.
func ByLibrarySourcesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLibrarySourcesStep(), opts...)
	}
}

// ByLibrarySources orders the results by library_sources terms.
func ByLibrarySources(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLibrarySourcesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMappingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MappingsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MappingsTable, MappingsColumn),
	)
}
func newMediaMappingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MediaMappingsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MediaMappingsTable, MediaMappingsColumn),
	)
}
func newHealthChecksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HealthChecksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HealthChecksTable, HealthChecksColumn),
	)
}
func newLibrarySourcesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LibrarySourcesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LibrarySourcesTable, LibrarySourcesColumn),
	)
}
