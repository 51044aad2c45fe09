// Code generated by ent, DO NOT EDIT.

package mergedlibrary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jellyswarrm/jellyswarrm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldLTE(FieldID, id))
}

// VirtualID applies equality check predicate on the "virtual_id" field. It's identical to VirtualIDEQ.
func VirtualID(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEQ(FieldVirtualID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEQ(FieldName, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEQ(FieldCreatedBy, v))
}

// IsGlobal applies equality check predicate on the "is_global" field. It's identical to IsGlobalEQ.
func IsGlobal(v bool) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEQ(FieldIsGlobal, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEQ(FieldUpdatedAt, v))
}

// VirtualIDEQ applies the EQ predicate on the "virtual_id" field.
func VirtualIDEQ(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEQ(FieldVirtualID, v))
}

// VirtualIDNEQ applies the NEQ predicate on the "virtual_id" field.
func VirtualIDNEQ(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNEQ(FieldVirtualID, v))
}

// VirtualIDIn applies the In predicate on the "virtual_id" field.
func VirtualIDIn(vs ...string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldIn(FieldVirtualID, vs...))
}

// VirtualIDNotIn applies the NotIn predicate on the "virtual_id" field.
func VirtualIDNotIn(vs ...string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNotIn(FieldVirtualID, vs...))
}

// VirtualIDGT applies the GT predicate on the "virtual_id" field.
func VirtualIDGT(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldGT(FieldVirtualID, v))
}

// VirtualIDGTE applies the GTE predicate on the "virtual_id" field.
func VirtualIDGTE(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldGTE(FieldVirtualID, v))
}

// VirtualIDLT applies the LT predicate on the "virtual_id" field.
func VirtualIDLT(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldLT(FieldVirtualID, v))
}

// VirtualIDLTE applies the LTE predicate on the "virtual_id" field.
func VirtualIDLTE(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldLTE(FieldVirtualID, v))
}

// VirtualIDContains applies the Contains predicate on the "virtual_id" field.
func VirtualIDContains(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldContains(FieldVirtualID, v))
}

// VirtualIDHasPrefix applies the HasPrefix predicate on the "virtual_id" field.
func VirtualIDHasPrefix(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldHasPrefix(FieldVirtualID, v))
}

// VirtualIDHasSuffix applies the HasSuffix predicate on the "virtual_id" field.
func VirtualIDHasSuffix(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldHasSuffix(FieldVirtualID, v))
}

// VirtualIDEqualFold applies the EqualFold predicate on the "virtual_id" field.
func VirtualIDEqualFold(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEqualFold(FieldVirtualID, v))
}

// VirtualIDContainsFold applies the ContainsFold predicate on the "virtual_id" field.
func VirtualIDContainsFold(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldContainsFold(FieldVirtualID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldContainsFold(FieldName, v))
}

// CollectionTypeEQ applies the EQ predicate on the "collection_type" field.
func CollectionTypeEQ(v CollectionType) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEQ(FieldCollectionType, v))
}

// CollectionTypeNEQ applies the NEQ predicate on the "collection_type" field.
func CollectionTypeNEQ(v CollectionType) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNEQ(FieldCollectionType, v))
}

// CollectionTypeIn applies the In predicate on the "collection_type" field.
func CollectionTypeIn(vs ...CollectionType) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldIn(FieldCollectionType, vs...))
}

// CollectionTypeNotIn applies the NotIn predicate on the "collection_type" field.
func CollectionTypeNotIn(vs ...CollectionType) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNotIn(FieldCollectionType, vs...))
}

// DedupStrategyEQ applies the EQ predicate on the "dedup_strategy" field.
func DedupStrategyEQ(v DedupStrategy) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEQ(FieldDedupStrategy, v))
}

// DedupStrategyNEQ applies the NEQ predicate on the "dedup_strategy" field.
func DedupStrategyNEQ(v DedupStrategy) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNEQ(FieldDedupStrategy, v))
}

// DedupStrategyIn applies the In predicate on the "dedup_strategy" field.
func DedupStrategyIn(vs ...DedupStrategy) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldIn(FieldDedupStrategy, vs...))
}

// DedupStrategyNotIn applies the NotIn predicate on the "dedup_strategy" field.
func DedupStrategyNotIn(vs ...DedupStrategy) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNotIn(FieldDedupStrategy, vs...))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldContainsFold(FieldCreatedBy, v))
}

// IsGlobalEQ applies the EQ predicate on the "is_global" field.
func IsGlobalEQ(v bool) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEQ(FieldIsGlobal, v))
}

// IsGlobalNEQ applies the NEQ predicate on the "is_global" field.
func IsGlobalNEQ(v bool) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNEQ(FieldIsGlobal, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSources applies the HasEdge predicate on the "sources" edge.
func HasSources() predicate.MergedLibrary {
	return predicate.MergedLibrary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SourcesTable, SourcesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourcesWith applies the HasEdge predicate on the "sources" edge with a given conditions (other predicates).
func HasSourcesWith(preds ...predicate.MergedLibrarySource) predicate.MergedLibrary {
	return predicate.MergedLibrary(func(s *sql.Selector) {
		step := newSourcesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MergedLibrary) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MergedLibrary) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MergedLibrary) predicate.MergedLibrary {
	return predicate.MergedLibrary(sql.NotPredicates(p))
}
