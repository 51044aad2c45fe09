// Code generated by ent, DO NOT EDIT.

package mediamapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jellyswarrm/jellyswarrm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldLTE(FieldID, id))
}

// VirtualID applies equality check predicate on the "virtual_id" field. It's identical to VirtualIDEQ.
func VirtualID(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldEQ(FieldVirtualID, v))
}

// OriginalID applies equality check predicate on the "original_id" field. It's identical to OriginalIDEQ.
func OriginalID(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldEQ(FieldOriginalID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// VirtualIDEQ applies the EQ predicate on the "virtual_id" field.
func VirtualIDEQ(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldEQ(FieldVirtualID, v))
}

// VirtualIDNEQ applies the NEQ predicate on the "virtual_id" field.
func VirtualIDNEQ(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldNEQ(FieldVirtualID, v))
}

// VirtualIDIn applies the In predicate on the "virtual_id" field.
func VirtualIDIn(vs ...string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldIn(FieldVirtualID, vs...))
}

// VirtualIDNotIn applies the NotIn predicate on the "virtual_id" field.
func VirtualIDNotIn(vs ...string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldNotIn(FieldVirtualID, vs...))
}

// VirtualIDGT applies the GT predicate on the "virtual_id" field.
func VirtualIDGT(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldGT(FieldVirtualID, v))
}

// VirtualIDGTE applies the GTE predicate on the "virtual_id" field.
func VirtualIDGTE(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldGTE(FieldVirtualID, v))
}

// VirtualIDLT applies the LT predicate on the "virtual_id" field.
func VirtualIDLT(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldLT(FieldVirtualID, v))
}

// VirtualIDLTE applies the LTE predicate on the "virtual_id" field.
func VirtualIDLTE(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldLTE(FieldVirtualID, v))
}

// VirtualIDContains applies the Contains predicate on the "virtual_id" field.
func VirtualIDContains(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldContains(FieldVirtualID, v))
}

// VirtualIDHasPrefix applies the HasPrefix predicate on the "virtual_id" field.
func VirtualIDHasPrefix(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldHasPrefix(FieldVirtualID, v))
}

// VirtualIDHasSuffix applies the HasSuffix predicate on the "virtual_id" field.
func VirtualIDHasSuffix(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldHasSuffix(FieldVirtualID, v))
}

// VirtualIDEqualFold applies the EqualFold predicate on the "virtual_id" field.
func VirtualIDEqualFold(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldEqualFold(FieldVirtualID, v))
}

// VirtualIDContainsFold applies the ContainsFold predicate on the "virtual_id" field.
func VirtualIDContainsFold(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldContainsFold(FieldVirtualID, v))
}

// OriginalIDEQ applies the EQ predicate on the "original_id" field.
func OriginalIDEQ(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldEQ(FieldOriginalID, v))
}

// OriginalIDNEQ applies the NEQ predicate on the "original_id" field.
func OriginalIDNEQ(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldNEQ(FieldOriginalID, v))
}

// OriginalIDIn applies the In predicate on the "original_id" field.
func OriginalIDIn(vs ...string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldIn(FieldOriginalID, vs...))
}

// OriginalIDNotIn applies the NotIn predicate on the "original_id" field.
func OriginalIDNotIn(vs ...string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldNotIn(FieldOriginalID, vs...))
}

// OriginalIDGT applies the GT predicate on the "original_id" field.
func OriginalIDGT(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldGT(FieldOriginalID, v))
}

// OriginalIDGTE applies the GTE predicate on the "original_id" field.
func OriginalIDGTE(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldGTE(FieldOriginalID, v))
}

// OriginalIDLT applies the LT predicate on the "original_id" field.
func OriginalIDLT(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldLT(FieldOriginalID, v))
}

// OriginalIDLTE applies the LTE predicate on the "original_id" field.
func OriginalIDLTE(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldLTE(FieldOriginalID, v))
}

// OriginalIDContains applies the Contains predicate on the "original_id" field.
func OriginalIDContains(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldContains(FieldOriginalID, v))
}

// OriginalIDHasPrefix applies the HasPrefix predicate on the "original_id" field.
func OriginalIDHasPrefix(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldHasPrefix(FieldOriginalID, v))
}

// OriginalIDHasSuffix applies the HasSuffix predicate on the "original_id" field.
func OriginalIDHasSuffix(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldHasSuffix(FieldOriginalID, v))
}

// OriginalIDEqualFold applies the EqualFold predicate on the "original_id" field.
func OriginalIDEqualFold(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldEqualFold(FieldOriginalID, v))
}

// OriginalIDContainsFold applies the ContainsFold predicate on the "original_id" field.
func OriginalIDContainsFold(v string) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldContainsFold(FieldOriginalID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MediaMapping {
	return predicate.MediaMapping(sql.FieldLTE(FieldCreatedAt, v))
}

// HasServer applies the HasEdge predicate on the "server" edge.
func HasServer() predicate.MediaMapping {
	return predicate.MediaMapping(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ServerTable, ServerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasServerWith applies the HasEdge predicate on the "server" edge with a given conditions (other predicates).
func HasServerWith(preds ...predicate.Server) predicate.MediaMapping {
	return predicate.MediaMapping(func(s *sql.Selector) {
		step := newServerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MediaMapping) predicate.MediaMapping {
	return predicate.MediaMapping(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MediaMapping) predicate.MediaMapping {
	return predicate.MediaMapping(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MediaMapping) predicate.MediaMapping {
	return predicate.MediaMapping(sql.NotPredicates(p))
}
