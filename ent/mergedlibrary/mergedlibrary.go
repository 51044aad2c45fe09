// Code generated by ent, DO NOT EDIT.

package mergedlibrary

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the mergedlibrary type in the database.
	Label = "merged_library"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVirtualID holds the string denoting the virtual_id field in the database.
	FieldVirtualID = "virtual_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCollectionType holds the string denoting the collection_type field in the database.
	FieldCollectionType = "collection_type"
	// FieldDedupStrategy holds the string denoting the dedup_strategy field in the database.
	FieldDedupStrategy = "dedup_strategy"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldIsGlobal holds the string denoting the is_global field in the database.
	FieldIsGlobal = "is_global"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSources holds the string denoting the sources edge name in mutations.
	EdgeSources = "sources"
	// Table holds the table name of the mergedlibrary in the database.
	Table = "merged_libraries"
	// SourcesTable is the table that holds the sources relation/edge.
	SourcesTable = "merged_library_sources"
	// SourcesInverseTable is the table name for the MergedLibrarySource entity.
	// It exists in this package in order to avoid circular dependency with the "mergedlibrarysource" package.
	SourcesInverseTable = "merged_library_sources"
	// SourcesColumn is the table column denoting the sources relation/edge.
	SourcesColumn = "merged_library_sources"
)

// Columns holds all SQL columns for mergedlibrary fields.
var Columns = []string{
	FieldID,
	FieldVirtualID,
	FieldName,
	FieldCollectionType,
	FieldDedupStrategy,
	FieldCreatedBy,
	FieldIsGlobal,
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
	// VirtualIDValidator is a validator for the "virtual_id" field. It is called by the builders before save.
	VirtualIDValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultIsGlobal holds the default value on creation for the "is_global" field.
	DefaultIsGlobal bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// CollectionType defines the type for the "collection_type" enum field.
type CollectionType string

// CollectionTypeMixed is the default value of the CollectionType enum.
const DefaultCollectionType = CollectionTypeMixed

// CollectionType values.
const (
	CollectionTypeMovies  CollectionType = "movies"
	CollectionTypeTvshows CollectionType = "tvshows"
	CollectionTypeMusic   CollectionType = "music"
	CollectionTypeBooks   CollectionType = "books"
	CollectionTypeMixed   CollectionType = "mixed"
)

func (ct CollectionType) String() string {
	return string(ct)
}

// CollectionTypeValidator is a validator for the "collection_type" field enum values. It is called by the builders before save.
func CollectionTypeValidator(ct CollectionType) error {
	switch ct {
	case CollectionTypeMovies, CollectionTypeTvshows, CollectionTypeMusic, CollectionTypeBooks, CollectionTypeMixed:
		return nil
	default:
		return fmt.Errorf("mergedlibrary: invalid enum value for collection_type field: %q", ct)
	}
}

// DedupStrategy defines the type for the "dedup_strategy" enum field.
type DedupStrategy string

// DedupStrategyProviderIds is the default value of the DedupStrategy enum.
const DefaultDedupStrategy = DedupStrategyProviderIds

// DedupStrategy values.
const (
	DedupStrategyProviderIds DedupStrategy = "provider_ids"
	DedupStrategyNameYear    DedupStrategy = "name_year"
	DedupStrategyNone        DedupStrategy = "none"
)

func (ds DedupStrategy) String() string {
	return string(ds)
}

// DedupStrategyValidator is a validator for the "dedup_strategy" field enum values. It is called by the builders before save.
func DedupStrategyValidator(ds DedupStrategy) error {
	switch ds {
	case DedupStrategyProviderIds, DedupStrategyNameYear, DedupStrategyNone:
		return nil
	default:
		return fmt.Errorf("mergedlibrary: invalid enum value for dedup_strategy field: %q", ds)
	}
}

// OrderOption defines the ordering options for the MergedLibrary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVirtualID orders the results by the virtual_id field.
func ByVirtualID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVirtualID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCollectionType orders the results by the collection_type field.
func ByCollectionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollectionType, opts...).ToFunc()
}

// ByDedupStrategy orders the results by the dedup_strategy field.
func ByDedupStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDedupStrategy, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByIsGlobal orders the results by the is_global field.
func ByIsGlobal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsGlobal, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySourcesCount orders the results by sources count.
func BySourcesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSourcesStep(), opts...)
	}
}

// BySources orders the results by sources terms.
func BySources(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourcesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSourcesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourcesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SourcesTable, SourcesColumn),
	)
}
