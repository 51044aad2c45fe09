// Code generated by ent, DO NOT EDIT.

package healthcheck

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jellyswarrm/jellyswarrm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldLTE(FieldID, id))
}

// Healthy applies equality check predicate on the "healthy" field. It's identical to HealthyEQ.
func Healthy(v bool) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldEQ(FieldHealthy, v))
}

// ResponseTimeMs applies equality check predicate on the "response_time_ms" field. It's identical to ResponseTimeMsEQ.
func ResponseTimeMs(v int64) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldEQ(FieldResponseTimeMs, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldEQ(FieldVersion, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldEQ(FieldErrorMessage, v))
}

// CheckedAt applies equality check predicate on the "checked_at" field. It's identical to CheckedAtEQ.
func CheckedAt(v time.Time) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldEQ(FieldCheckedAt, v))
}

// HealthyEQ applies the EQ predicate on the "healthy" field.
func HealthyEQ(v bool) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldEQ(FieldHealthy, v))
}

// HealthyNEQ applies the NEQ predicate on the "healthy" field.
func HealthyNEQ(v bool) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldNEQ(FieldHealthy, v))
}

// ResponseTimeMsEQ applies the EQ predicate on the "response_time_ms" field.
func ResponseTimeMsEQ(v int64) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsNEQ applies the NEQ predicate on the "response_time_ms" field.
func ResponseTimeMsNEQ(v int64) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldNEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsIn applies the In predicate on the "response_time_ms" field.
func ResponseTimeMsIn(vs ...int64) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsNotIn applies the NotIn predicate on the "response_time_ms" field.
func ResponseTimeMsNotIn(vs ...int64) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldNotIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsGT applies the GT predicate on the "response_time_ms" field.
func ResponseTimeMsGT(v int64) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldGT(FieldResponseTimeMs, v))
}

// ResponseTimeMsGTE applies the GTE predicate on the "response_time_ms" field.
func ResponseTimeMsGTE(v int64) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldGTE(FieldResponseTimeMs, v))
}

// ResponseTimeMsLT applies the LT predicate on the "response_time_ms" field.
func ResponseTimeMsLT(v int64) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldLT(FieldResponseTimeMs, v))
}

// ResponseTimeMsLTE applies the LTE predicate on the "response_time_ms" field.
func ResponseTimeMsLTE(v int64) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldLTE(FieldResponseTimeMs, v))
}

// ResponseTimeMsIsNil applies the IsNil predicate on the "response_time_ms" field.
func ResponseTimeMsIsNil() predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldIsNull(FieldResponseTimeMs))
}

// ResponseTimeMsNotNil applies the NotNil predicate on the "response_time_ms" field.
func ResponseTimeMsNotNil() predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldNotNull(FieldResponseTimeMs))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldLTE(FieldVersion, v))
}

// VersionContains applies the Contains predicate on the "version" field.
func VersionContains(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldContains(FieldVersion, v))
}

// VersionHasPrefix applies the HasPrefix predicate on the "version" field.
func VersionHasPrefix(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldHasPrefix(FieldVersion, v))
}

// VersionHasSuffix applies the HasSuffix predicate on the "version" field.
func VersionHasSuffix(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldHasSuffix(FieldVersion, v))
}

// VersionIsNil applies the IsNil predicate on the "version" field.
func VersionIsNil() predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldIsNull(FieldVersion))
}

// VersionNotNil applies the NotNil predicate on the "version" field.
func VersionNotNil() predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldNotNull(FieldVersion))
}

// VersionEqualFold applies the EqualFold predicate on the "version" field.
func VersionEqualFold(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldEqualFold(FieldVersion, v))
}

// VersionContainsFold applies the ContainsFold predicate on the "version" field.
func VersionContainsFold(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldContainsFold(FieldVersion, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CheckedAtEQ applies the EQ predicate on the "checked_at" field.
func CheckedAtEQ(v time.Time) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldEQ(FieldCheckedAt, v))
}

// CheckedAtNEQ applies the NEQ predicate on the "checked_at" field.
func CheckedAtNEQ(v time.Time) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldNEQ(FieldCheckedAt, v))
}

// CheckedAtIn applies the In predicate on the "checked_at" field.
func CheckedAtIn(vs ...time.Time) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldIn(FieldCheckedAt, vs...))
}

// CheckedAtNotIn applies the NotIn predicate on the "checked_at" field.
func CheckedAtNotIn(vs ...time.Time) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldNotIn(FieldCheckedAt, vs...))
}

// CheckedAtGT applies the GT predicate on the "checked_at" field.
func CheckedAtGT(v time.Time) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldGT(FieldCheckedAt, v))
}

// CheckedAtGTE applies the GTE predicate on the "checked_at" field.
func CheckedAtGTE(v time.Time) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldGTE(FieldCheckedAt, v))
}

// CheckedAtLT applies the LT predicate on the "checked_at" field.
func CheckedAtLT(v time.Time) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldLT(FieldCheckedAt, v))
}

// CheckedAtLTE applies the LTE predicate on the "checked_at" field.
func CheckedAtLTE(v time.Time) predicate.HealthCheck {
	return predicate.HealthCheck(sql.FieldLTE(FieldCheckedAt, v))
}

// HasServer applies the HasEdge predicate on the "server" edge.
func HasServer() predicate.HealthCheck {
	return predicate.HealthCheck(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ServerTable, ServerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasServerWith applies the HasEdge predicate on the "server" edge with a given conditions (other predicates).
func HasServerWith(preds ...predicate.Server) predicate.HealthCheck {
	return predicate.HealthCheck(func(s *sql.Selector) {
		step := newServerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HealthCheck) predicate.HealthCheck {
	return predicate.HealthCheck(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HealthCheck) predicate.HealthCheck {
	return predicate.HealthCheck(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HealthCheck) predicate.HealthCheck {
	return predicate.HealthCheck(sql.NotPredicates(p))
}
