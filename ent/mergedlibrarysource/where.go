// Code generated by ent, DO NOT EDIT.

package mergedlibrarysource

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jellyswarrm/jellyswarrm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldLTE(FieldID, id))
}

// LibraryID applies equality check predicate on the "library_id" field. It's identical to LibraryIDEQ.
func LibraryID(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldEQ(FieldLibraryID, v))
}

// LibraryName applies equality check predicate on the "library_name" field. It's identical to LibraryNameEQ.
func LibraryName(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldEQ(FieldLibraryName, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldEQ(FieldPriority, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldEQ(FieldCreatedAt, v))
}

// LibraryIDEQ applies the EQ predicate on the "library_id" field.
func LibraryIDEQ(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldEQ(FieldLibraryID, v))
}

// LibraryIDNEQ applies the NEQ predicate on the "library_id" field.
func LibraryIDNEQ(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldNEQ(FieldLibraryID, v))
}

// LibraryIDIn applies the In predicate on the "library_id" field.
func LibraryIDIn(vs ...string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldIn(FieldLibraryID, vs...))
}

// LibraryIDNotIn applies the NotIn predicate on the "library_id" field.
func LibraryIDNotIn(vs ...string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldNotIn(FieldLibraryID, vs...))
}

// LibraryIDGT applies the GT predicate on the "library_id" field.
func LibraryIDGT(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldGT(FieldLibraryID, v))
}

// LibraryIDGTE applies the GTE predicate on the "library_id" field.
func LibraryIDGTE(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldGTE(FieldLibraryID, v))
}

// LibraryIDLT applies the LT predicate on the "library_id" field.
func LibraryIDLT(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldLT(FieldLibraryID, v))
}

// LibraryIDLTE applies the LTE predicate on the "library_id" field.
func LibraryIDLTE(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldLTE(FieldLibraryID, v))
}

// LibraryIDContains applies the Contains predicate on the "library_id" field.
func LibraryIDContains(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldContains(FieldLibraryID, v))
}

// LibraryIDHasPrefix applies the HasPrefix predicate on the "library_id" field.
func LibraryIDHasPrefix(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldHasPrefix(FieldLibraryID, v))
}

// LibraryIDHasSuffix applies the HasSuffix predicate on the "library_id" field.
func LibraryIDHasSuffix(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldHasSuffix(FieldLibraryID, v))
}

// LibraryIDEqualFold applies the EqualFold predicate on the "library_id" field.
func LibraryIDEqualFold(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldEqualFold(FieldLibraryID, v))
}

// LibraryIDContainsFold applies the ContainsFold predicate on the "library_id" field.
func LibraryIDContainsFold(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldContainsFold(FieldLibraryID, v))
}

// LibraryNameEQ applies the EQ predicate on the "library_name" field.
func LibraryNameEQ(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldEQ(FieldLibraryName, v))
}

// LibraryNameNEQ applies the NEQ predicate on the "library_name" field.
func LibraryNameNEQ(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldNEQ(FieldLibraryName, v))
}

// LibraryNameIn applies the In predicate on the "library_name" field.
func LibraryNameIn(vs ...string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldIn(FieldLibraryName, vs...))
}

// LibraryNameNotIn applies the NotIn predicate on the "library_name" field.
func LibraryNameNotIn(vs ...string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldNotIn(FieldLibraryName, vs...))
}

// LibraryNameGT applies the GT predicate on the "library_name" field.
func LibraryNameGT(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldGT(FieldLibraryName, v))
}

// LibraryNameGTE applies the GTE predicate on the "library_name" field.
func LibraryNameGTE(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldGTE(FieldLibraryName, v))
}

// LibraryNameLT applies the LT predicate on the "library_name" field.
func LibraryNameLT(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldLT(FieldLibraryName, v))
}

// LibraryNameLTE applies the LTE predicate on the "library_name" field.
func LibraryNameLTE(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldLTE(FieldLibraryName, v))
}

// LibraryNameContains applies the Contains predicate on the "library_name" field.
func LibraryNameContains(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldContains(FieldLibraryName, v))
}

// LibraryNameHasPrefix applies the HasPrefix predicate on the "library_name" field.
func LibraryNameHasPrefix(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldHasPrefix(FieldLibraryName, v))
}

// LibraryNameHasSuffix applies the HasSuffix predicate on the "library_name" field.
func LibraryNameHasSuffix(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldHasSuffix(FieldLibraryName, v))
}

// LibraryNameIsNil applies the IsNil predicate on the "library_name" field.
func LibraryNameIsNil() predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldIsNull(FieldLibraryName))
}

// LibraryNameNotNil applies the NotNil predicate on the "library_name" field.
func LibraryNameNotNil() predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldNotNull(FieldLibraryName))
}

// LibraryNameEqualFold applies the EqualFold predicate on the "library_name" field.
func LibraryNameEqualFold(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldEqualFold(FieldLibraryName, v))
}

// LibraryNameContainsFold applies the ContainsFold predicate on the "library_name" field.
func LibraryNameContainsFold(v string) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldContainsFold(FieldLibraryName, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldLTE(FieldPriority, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMergedLibrary applies the HasEdge predicate on the "merged_library" edge.
func HasMergedLibrary() predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MergedLibraryTable, MergedLibraryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMergedLibraryWith applies the HasEdge predicate on the "merged_library" edge with a given conditions (other predicates).
func HasMergedLibraryWith(preds ...predicate.MergedLibrary) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(func(s *sql.Selector) {
		step := newMergedLibraryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasServer applies the HasEdge predicate on the "server" edge.
func HasServer() predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ServerTable, ServerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasServerWith applies the HasEdge predicate on the "server" edge with a given conditions (other predicates).
func HasServerWith(preds ...predicate.Server) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(func(s *sql.Selector) {
		step := newServerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MergedLibrarySource) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MergedLibrarySource) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MergedLibrarySource) predicate.MergedLibrarySource {
	return predicate.MergedLibrarySource(sql.NotPredicates(p))
}
