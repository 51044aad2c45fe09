// Code generated by ent, DO NOT EDIT.

package servermapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jellyswarrm/jellyswarrm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldLTE(FieldID, id))
}

// RemoteUsername applies equality check predicate on the "remote_username" field. It's identical to RemoteUsernameEQ.
func RemoteUsername(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldEQ(FieldRemoteUsername, v))
}

// EncryptedPassword applies equality check predicate on the "encrypted_password" field. It's identical to EncryptedPasswordEQ.
func EncryptedPassword(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldEQ(FieldEncryptedPassword, v))
}

// RecoveryPassword applies equality check predicate on the "recovery_password" field. It's identical to RecoveryPasswordEQ.
func RecoveryPassword(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldEQ(FieldRecoveryPassword, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// RemoteUsernameEQ applies the EQ predicate on the "remote_username" field.
func RemoteUsernameEQ(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldEQ(FieldRemoteUsername, v))
}

// RemoteUsernameNEQ applies the NEQ predicate on the "remote_username" field.
func RemoteUsernameNEQ(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldNEQ(FieldRemoteUsername, v))
}

// RemoteUsernameIn applies the In predicate on the "remote_username" field.
func RemoteUsernameIn(vs ...string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldIn(FieldRemoteUsername, vs...))
}

// RemoteUsernameNotIn applies the NotIn predicate on the "remote_username" field.
func RemoteUsernameNotIn(vs ...string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldNotIn(FieldRemoteUsername, vs...))
}

// RemoteUsernameGT applies the GT predicate on the "remote_username" field.
func RemoteUsernameGT(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldGT(FieldRemoteUsername, v))
}

// RemoteUsernameGTE applies the GTE predicate on the "remote_username" field.
func RemoteUsernameGTE(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldGTE(FieldRemoteUsername, v))
}

// RemoteUsernameLT applies the LT predicate on the "remote_username" field.
func RemoteUsernameLT(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldLT(FieldRemoteUsername, v))
}

// RemoteUsernameLTE applies the LTE predicate on the "remote_username" field.
func RemoteUsernameLTE(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldLTE(FieldRemoteUsername, v))
}

// RemoteUsernameContains applies the Contains predicate on the "remote_username" field.
func RemoteUsernameContains(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldContains(FieldRemoteUsername, v))
}

// RemoteUsernameHasPrefix applies the HasPrefix predicate on the "remote_username" field.
func RemoteUsernameHasPrefix(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldHasPrefix(FieldRemoteUsername, v))
}

// RemoteUsernameHasSuffix applies the HasSuffix predicate on the "remote_username" field.
func RemoteUsernameHasSuffix(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldHasSuffix(FieldRemoteUsername, v))
}

// RemoteUsernameEqualFold applies the EqualFold predicate on the "remote_username" field.
func RemoteUsernameEqualFold(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldEqualFold(FieldRemoteUsername, v))
}

// RemoteUsernameContainsFold applies the ContainsFold predicate on the "remote_username" field.
func RemoteUsernameContainsFold(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldContainsFold(FieldRemoteUsername, v))
}

// EncryptedPasswordEQ applies the EQ predicate on the "encrypted_password" field.
func EncryptedPasswordEQ(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldEQ(FieldEncryptedPassword, v))
}

// EncryptedPasswordNEQ applies the NEQ predicate on the "encrypted_password" field.
func EncryptedPasswordNEQ(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldNEQ(FieldEncryptedPassword, v))
}

// EncryptedPasswordIn applies the In predicate on the "encrypted_password" field.
func EncryptedPasswordIn(vs ...string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldIn(FieldEncryptedPassword, vs...))
}

// EncryptedPasswordNotIn applies the NotIn predicate on the "encrypted_password" field.
func EncryptedPasswordNotIn(vs ...string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldNotIn(FieldEncryptedPassword, vs...))
}

// EncryptedPasswordGT applies the GT predicate on the "encrypted_password" field.
func EncryptedPasswordGT(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldGT(FieldEncryptedPassword, v))
}

// EncryptedPasswordGTE applies the GTE predicate on the "encrypted_password" field.
func EncryptedPasswordGTE(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldGTE(FieldEncryptedPassword, v))
}

// EncryptedPasswordLT applies the LT predicate on the "encrypted_password" field.
func EncryptedPasswordLT(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldLT(FieldEncryptedPassword, v))
}

// EncryptedPasswordLTE applies the LTE predicate on the "encrypted_password" field.
func EncryptedPasswordLTE(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldLTE(FieldEncryptedPassword, v))
}

// EncryptedPasswordContains applies the Contains predicate on the "encrypted_password" field.
func EncryptedPasswordContains(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldContains(FieldEncryptedPassword, v))
}

// EncryptedPasswordHasPrefix applies the HasPrefix predicate on the "encrypted_password" field.
func EncryptedPasswordHasPrefix(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldHasPrefix(FieldEncryptedPassword, v))
}

// EncryptedPasswordHasSuffix applies the HasSuffix predicate on the "encrypted_password" field.
func EncryptedPasswordHasSuffix(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldHasSuffix(FieldEncryptedPassword, v))
}

// EncryptedPasswordEqualFold applies the EqualFold predicate on the "encrypted_password" field.
func EncryptedPasswordEqualFold(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldEqualFold(FieldEncryptedPassword, v))
}

// EncryptedPasswordContainsFold applies the ContainsFold predicate on the "encrypted_password" field.
func EncryptedPasswordContainsFold(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldContainsFold(FieldEncryptedPassword, v))
}

// RecoveryPasswordEQ applies the EQ predicate on the "recovery_password" field.
func RecoveryPasswordEQ(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldEQ(FieldRecoveryPassword, v))
}

// RecoveryPasswordNEQ applies the NEQ predicate on the "recovery_password" field.
func RecoveryPasswordNEQ(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldNEQ(FieldRecoveryPassword, v))
}

// RecoveryPasswordIn applies the In predicate on the "recovery_password" field.
func RecoveryPasswordIn(vs ...string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldIn(FieldRecoveryPassword, vs...))
}

// RecoveryPasswordNotIn applies the NotIn predicate on the "recovery_password" field.
func RecoveryPasswordNotIn(vs ...string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldNotIn(FieldRecoveryPassword, vs...))
}

// RecoveryPasswordGT applies the GT predicate on the "recovery_password" field.
func RecoveryPasswordGT(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldGT(FieldRecoveryPassword, v))
}

// RecoveryPasswordGTE applies the GTE predicate on the "recovery_password" field.
func RecoveryPasswordGTE(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldGTE(FieldRecoveryPassword, v))
}

// RecoveryPasswordLT applies the LT predicate on the "recovery_password" field.
func RecoveryPasswordLT(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldLT(FieldRecoveryPassword, v))
}

// RecoveryPasswordLTE applies the LTE predicate on the "recovery_password" field.
func RecoveryPasswordLTE(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldLTE(FieldRecoveryPassword, v))
}

// RecoveryPasswordContains applies the Contains predicate on the "recovery_password" field.
func RecoveryPasswordContains(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldContains(FieldRecoveryPassword, v))
}

// RecoveryPasswordHasPrefix applies the HasPrefix predicate on the "recovery_password" field.
func RecoveryPasswordHasPrefix(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldHasPrefix(FieldRecoveryPassword, v))
}

// RecoveryPasswordHasSuffix applies the HasSuffix predicate on the "recovery_password" field.
func RecoveryPasswordHasSuffix(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldHasSuffix(FieldRecoveryPassword, v))
}

// RecoveryPasswordIsNil applies the IsNil predicate on the "recovery_password" field.
func RecoveryPasswordIsNil() predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldIsNull(FieldRecoveryPassword))
}

// RecoveryPasswordNotNil applies the NotNil predicate on the "recovery_password" field.
func RecoveryPasswordNotNil() predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldNotNull(FieldRecoveryPassword))
}

// RecoveryPasswordEqualFold applies the EqualFold predicate on the "recovery_password" field.
func RecoveryPasswordEqualFold(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldEqualFold(FieldRecoveryPassword, v))
}

// RecoveryPasswordContainsFold applies the ContainsFold predicate on the "recovery_password" field.
func RecoveryPasswordContainsFold(v string) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldContainsFold(FieldRecoveryPassword, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ServerMapping {
	return predicate.ServerMapping(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.ServerMapping {
	return predicate.ServerMapping(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.ServerMapping {
	return predicate.ServerMapping(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasServer applies the HasEdge predicate on the "server" edge.
func HasServer() predicate.ServerMapping {
	return predicate.ServerMapping(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ServerTable, ServerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasServerWith applies the HasEdge predicate on the "server" edge with a given conditions (other predicates).
func HasServerWith(preds ...predicate.Server) predicate.ServerMapping {
	return predicate.ServerMapping(func(s *sql.Selector) {
		step := newServerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.ServerMapping {
	return predicate.ServerMapping(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.AuthSession) predicate.ServerMapping {
	return predicate.ServerMapping(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ServerMapping) predicate.ServerMapping {
	return predicate.ServerMapping(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ServerMapping) predicate.ServerMapping {
	return predicate.ServerMapping(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ServerMapping) predicate.ServerMapping {
	return predicate.ServerMapping(sql.NotPredicates(p))
}
