// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jellyswarrm/jellyswarrm/ent/authsession"
	"github.com/jellyswarrm/jellyswarrm/ent/predicate"
	"github.com/jellyswarrm/jellyswarrm/ent/server"
	"github.com/jellyswarrm/jellyswarrm/ent/servermapping"
	"github.com/jellyswarrm/jellyswarrm/ent/user"
)

// ServerMappingUpdate is the builder for updating ServerMapping entities.
type ServerMappingUpdate struct {
	config
	hooks    []Hook
	mutation *ServerMappingMutation
}

// Where appends a list predicates to the ServerMappingUpdate builder.
func (_u *ServerMappingUpdate) Where(ps ...predicate.ServerMapping) *ServerMappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRemoteUsername sets the "remote_username" field.
func (_u *ServerMappingUpdate) SetRemoteUsername(v string) *ServerMappingUpdate {
	_u.mutation.SetRemoteUsername(v)
	return _u
}

// SetNillableRemoteUsername sets the "remote_username" field if the given value is not nil.
func (_u *ServerMappingUpdate) SetNillableRemoteUsername(v *string) *ServerMappingUpdate {
	if v != nil {
		_u.SetRemoteUsername(*v)
	}
	return _u
}

// SetEncryptedPassword sets the "encrypted_password" field.
func (_u *ServerMappingUpdate) SetEncryptedPassword(v string) *ServerMappingUpdate {
	_u.mutation.SetEncryptedPassword(v)
	return _u
}

// SetNillableEncryptedPassword sets the "encrypted_password" field if the given value is not nil.
func (_u *ServerMappingUpdate) SetNillableEncryptedPassword(v *string) *ServerMappingUpdate {
	if v != nil {
		_u.SetEncryptedPassword(*v)
	}
	return _u
}

// SetRecoveryPassword sets the "recovery_password" field.
func (_u *ServerMappingUpdate) SetRecoveryPassword(v string) *ServerMappingUpdate {
	_u.mutation.SetRecoveryPassword(v)
	return _u
}

// SetNillableRecoveryPassword sets the "recovery_password" field if the given value is not nil.
func (_u *ServerMappingUpdate) SetNillableRecoveryPassword(v *string) *ServerMappingUpdate {
	if v != nil {
		_u.SetRecoveryPassword(*v)
	}
	return _u
}

// ClearRecoveryPassword clears the value of the "recovery_password" field.
func (_u *ServerMappingUpdate) ClearRecoveryPassword() *ServerMappingUpdate {
	_u.mutation.ClearRecoveryPassword()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServerMappingUpdate) SetUpdatedAt(v time.Time) *ServerMappingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *ServerMappingUpdate) SetUserID(id uuid.UUID) *ServerMappingUpdate {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ServerMappingUpdate) SetUser(v *User) *ServerMappingUpdate {
	return _u.SetUserID(v.ID)
}

// SetServerID sets the "server" edge to the Server entity by ID.
func (_u *ServerMappingUpdate) SetServerID(id uuid.UUID) *ServerMappingUpdate {
	_u.mutation.SetServerID(id)
	return _u
}

// SetServer sets the "server" edge to the Server entity.
func (_u *ServerMappingUpdate) SetServer(v *Server) *ServerMappingUpdate {
	return _u.SetServerID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the AuthSession entity by IDs.
func (_u *ServerMappingUpdate) AddSessionIDs(ids ...uuid.UUID) *ServerMappingUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the AuthSession entity.
func (_u *ServerMappingUpdate) AddSessions(v ...*AuthSession) *ServerMappingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the ServerMappingMutation object of the builder.
func (_u *ServerMappingUpdate) Mutation() *ServerMappingMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ServerMappingUpdate) ClearUser() *ServerMappingUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearServer clears the "server" edge to the Server entity.
func (_u *ServerMappingUpdate) ClearServer() *ServerMappingUpdate {
	_u.mutation.ClearServer()
	return _u
}

// ClearSessions clears all "sessions" edges to the AuthSession entity.
func (_u *ServerMappingUpdate) ClearSessions() *ServerMappingUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to AuthSession entities by IDs.
func (_u *ServerMappingUpdate) RemoveSessionIDs(ids ...uuid.UUID) *ServerMappingUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to AuthSession entities.
func (_u *ServerMappingUpdate) RemoveSessions(v ...*AuthSession) *ServerMappingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServerMappingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServerMappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServerMappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServerMappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServerMappingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := servermapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServerMappingUpdate) check() error {
	if v, ok := _u.mutation.RemoteUsername(); ok {
		if err := servermapping.RemoteUsernameValidator(v); err != nil {
			return &ValidationError{Name: "remote_username", err: fmt.Errorf(`ent: validator failed for field "ServerMapping.remote_username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EncryptedPassword(); ok {
		if err := servermapping.EncryptedPasswordValidator(v); err != nil {
			return &ValidationError{Name: "encrypted_password", err: fmt.Errorf(`ent: validator failed for field "ServerMapping.encrypted_password": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ServerMapping.user"`)
	}
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ServerMapping.server"`)
	}
	return nil
}

func (_u *ServerMappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servermapping.Table, servermapping.Columns, sqlgraph.NewFieldSpec(servermapping.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RemoteUsername(); ok {
		_spec.SetField(servermapping.FieldRemoteUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.EncryptedPassword(); ok {
		_spec.SetField(servermapping.FieldEncryptedPassword, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecoveryPassword(); ok {
		_spec.SetField(servermapping.FieldRecoveryPassword, field.TypeString, value)
	}
	if _u.mutation.RecoveryPasswordCleared() {
		_spec.ClearField(servermapping.FieldRecoveryPassword, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(servermapping.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   servermapping.UserTable,
			Columns: []string{servermapping.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   servermapping.UserTable,
			Columns: []string{servermapping.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ServerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   servermapping.ServerTable,
			Columns: []string{servermapping.ServerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(server.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   servermapping.ServerTable,
			Columns: []string{servermapping.ServerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(server.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   servermapping.SessionsTable,
			Columns: []string{servermapping.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   servermapping.SessionsTable,
			Columns: []string{servermapping.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   servermapping.SessionsTable,
			Columns: []string{servermapping.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servermapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServerMappingUpdateOne is the builder for updating a single ServerMapping entity.
type ServerMappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServerMappingMutation
}

// SetRemoteUsername sets the "remote_username" field.
func (_u *ServerMappingUpdateOne) SetRemoteUsername(v string) *ServerMappingUpdateOne {
	_u.mutation.SetRemoteUsername(v)
	return _u
}

// SetNillableRemoteUsername sets the "remote_username" field if the given value is not nil.
func (_u *ServerMappingUpdateOne) SetNillableRemoteUsername(v *string) *ServerMappingUpdateOne {
	if v != nil {
		_u.SetRemoteUsername(*v)
	}
	return _u
}

// SetEncryptedPassword sets the "encrypted_password" field.
func (_u *ServerMappingUpdateOne) SetEncryptedPassword(v string) *ServerMappingUpdateOne {
	_u.mutation.SetEncryptedPassword(v)
	return _u
}

// SetNillableEncryptedPassword sets the "encrypted_password" field if the given value is not nil.
func (_u *ServerMappingUpdateOne) SetNillableEncryptedPassword(v *string) *ServerMappingUpdateOne {
	if v != nil {
		_u.SetEncryptedPassword(*v)
	}
	return _u
}

// SetRecoveryPassword sets the "recovery_password" field.
func (_u *ServerMappingUpdateOne) SetRecoveryPassword(v string) *ServerMappingUpdateOne {
	_u.mutation.SetRecoveryPassword(v)
	return _u
}

// SetNillableRecoveryPassword sets the "recovery_password" field if the given value is not nil.
func (_u *ServerMappingUpdateOne) SetNillableRecoveryPassword(v *string) *ServerMappingUpdateOne {
	if v != nil {
		_u.SetRecoveryPassword(*v)
	}
	return _u
}

// ClearRecoveryPassword clears the value of the "recovery_password" field.
func (_u *ServerMappingUpdateOne) ClearRecoveryPassword() *ServerMappingUpdateOne {
	_u.mutation.ClearRecoveryPassword()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServerMappingUpdateOne) SetUpdatedAt(v time.Time) *ServerMappingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *ServerMappingUpdateOne) SetUserID(id uuid.UUID) *ServerMappingUpdateOne {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ServerMappingUpdateOne) SetUser(v *User) *ServerMappingUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetServerID sets the "server" edge to the Server entity by ID.
func (_u *ServerMappingUpdateOne) SetServerID(id uuid.UUID) *ServerMappingUpdateOne {
	_u.mutation.SetServerID(id)
	return _u
}

// SetServer sets the "server" edge to the Server entity.
func (_u *ServerMappingUpdateOne) SetServer(v *Server) *ServerMappingUpdateOne {
	return _u.SetServerID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the AuthSession entity by IDs.
func (_u *ServerMappingUpdateOne) AddSessionIDs(ids ...uuid.UUID) *ServerMappingUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the AuthSession entity.
func (_u *ServerMappingUpdateOne) AddSessions(v ...*AuthSession) *ServerMappingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the ServerMappingMutation object of the builder.
func (_u *ServerMappingUpdateOne) Mutation() *ServerMappingMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ServerMappingUpdateOne) ClearUser() *ServerMappingUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearServer clears the "server" edge to the Server entity.
func (_u *ServerMappingUpdateOne) ClearServer() *ServerMappingUpdateOne {
	_u.mutation.ClearServer()
	return _u
}

// ClearSessions clears all "sessions" edges to the AuthSession entity.
func (_u *ServerMappingUpdateOne) ClearSessions() *ServerMappingUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to AuthSession entities by IDs.
func (_u *ServerMappingUpdateOne) RemoveSessionIDs(ids ...uuid.UUID) *ServerMappingUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to AuthSession entities.
func (_u *ServerMappingUpdateOne) RemoveSessions(v ...*AuthSession) *ServerMappingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Where appends a list predicates to the ServerMappingUpdate builder.
func (_u *ServerMappingUpdateOne) Where(ps ...predicate.ServerMapping) *ServerMappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServerMappingUpdateOne) Select(field string, fields ...string) *ServerMappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServerMapping entity.
func (_u *ServerMappingUpdateOne) Save(ctx context.Context) (*ServerMapping, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServerMappingUpdateOne) SaveX(ctx context.Context) *ServerMapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServerMappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServerMappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServerMappingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := servermapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServerMappingUpdateOne) check() error {
	if v, ok := _u.mutation.RemoteUsername(); ok {
		if err := servermapping.RemoteUsernameValidator(v); err != nil {
			return &ValidationError{Name: "remote_username", err: fmt.Errorf(`ent: validator failed for field "ServerMapping.remote_username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EncryptedPassword(); ok {
		if err := servermapping.EncryptedPasswordValidator(v); err != nil {
			return &ValidationError{Name: "encrypted_password", err: fmt.Errorf(`ent: validator failed for field "ServerMapping.encrypted_password": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ServerMapping.user"`)
	}
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ServerMapping.server"`)
	}
	return nil
}

func (_u *ServerMappingUpdateOne) sqlSave(ctx context.Context) (_node *ServerMapping, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(servermapping.Table, servermapping.Columns, sqlgraph.NewFieldSpec(servermapping.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ServerMapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, servermapping.FieldID)
		for _, f := range fields {
			if !servermapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != servermapping.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RemoteUsername(); ok {
		_spec.SetField(servermapping.FieldRemoteUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.EncryptedPassword(); ok {
		_spec.SetField(servermapping.FieldEncryptedPassword, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecoveryPassword(); ok {
		_spec.SetField(servermapping.FieldRecoveryPassword, field.TypeString, value)
	}
	if _u.mutation.RecoveryPasswordCleared() {
		_spec.ClearField(servermapping.FieldRecoveryPassword, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(servermapping.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   servermapping.UserTable,
			Columns: []string{servermapping.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   servermapping.UserTable,
			Columns: []string{servermapping.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ServerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   servermapping.ServerTable,
			Columns: []string{servermapping.ServerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(server.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   servermapping.ServerTable,
			Columns: []string{servermapping.ServerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(server.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   servermapping.SessionsTable,
			Columns: []string{servermapping.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   servermapping.SessionsTable,
			Columns: []string{servermapping.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   servermapping.SessionsTable,
			Columns: []string{servermapping.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ServerMapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{servermapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
