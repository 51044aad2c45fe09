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
	"github.com/jellyswarrm/jellyswarrm/ent/servermapping"
	"github.com/jellyswarrm/jellyswarrm/ent/user"
)

// AuthSessionUpdate is the builder for updating AuthSession entities.
type AuthSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AuthSessionMutation
}

// Where appends a list predicates to the AuthSessionUpdate builder.
func (_u *AuthSessionUpdate) Where(ps ...predicate.AuthSession) *AuthSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccessToken sets the "access_token" field.
func (_u *AuthSessionUpdate) SetAccessToken(v string) *AuthSessionUpdate {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *AuthSessionUpdate) SetNillableAccessToken(v *string) *AuthSessionUpdate {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// SetRemoteUserID sets the "remote_user_id" field.
func (_u *AuthSessionUpdate) SetRemoteUserID(v string) *AuthSessionUpdate {
	_u.mutation.SetRemoteUserID(v)
	return _u
}

// SetNillableRemoteUserID sets the "remote_user_id" field if the given value is not nil.
func (_u *AuthSessionUpdate) SetNillableRemoteUserID(v *string) *AuthSessionUpdate {
	if v != nil {
		_u.SetRemoteUserID(*v)
	}
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *AuthSessionUpdate) SetDeviceID(v string) *AuthSessionUpdate {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *AuthSessionUpdate) SetNillableDeviceID(v *string) *AuthSessionUpdate {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetDeviceName sets the "device_name" field.
func (_u *AuthSessionUpdate) SetDeviceName(v string) *AuthSessionUpdate {
	_u.mutation.SetDeviceName(v)
	return _u
}

// SetNillableDeviceName sets the "device_name" field if the given value is not nil.
func (_u *AuthSessionUpdate) SetNillableDeviceName(v *string) *AuthSessionUpdate {
	if v != nil {
		_u.SetDeviceName(*v)
	}
	return _u
}

// ClearDeviceName clears the value of the "device_name" field.
func (_u *AuthSessionUpdate) ClearDeviceName() *AuthSessionUpdate {
	_u.mutation.ClearDeviceName()
	return _u
}

// SetClient sets the "client" field.
func (_u *AuthSessionUpdate) SetClient(v string) *AuthSessionUpdate {
	_u.mutation.SetClient(v)
	return _u
}

// SetNillableClient sets the "client" field if the given value is not nil.
func (_u *AuthSessionUpdate) SetNillableClient(v *string) *AuthSessionUpdate {
	if v != nil {
		_u.SetClient(*v)
	}
	return _u
}

// ClearClient clears the value of the "client" field.
func (_u *AuthSessionUpdate) ClearClient() *AuthSessionUpdate {
	_u.mutation.ClearClient()
	return _u
}

// SetClientVersion sets the "client_version" field.
func (_u *AuthSessionUpdate) SetClientVersion(v string) *AuthSessionUpdate {
	_u.mutation.SetClientVersion(v)
	return _u
}

// SetNillableClientVersion sets the "client_version" field if the given value is not nil.
func (_u *AuthSessionUpdate) SetNillableClientVersion(v *string) *AuthSessionUpdate {
	if v != nil {
		_u.SetClientVersion(*v)
	}
	return _u
}

// ClearClientVersion clears the value of the "client_version" field.
func (_u *AuthSessionUpdate) ClearClientVersion() *AuthSessionUpdate {
	_u.mutation.ClearClientVersion()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *AuthSessionUpdate) SetExpiresAt(v time.Time) *AuthSessionUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *AuthSessionUpdate) SetNillableExpiresAt(v *time.Time) *AuthSessionUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *AuthSessionUpdate) ClearExpiresAt() *AuthSessionUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *AuthSessionUpdate) SetLastSeen(v time.Time) *AuthSessionUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *AuthSessionUpdate) SetNillableLastSeen(v *time.Time) *AuthSessionUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *AuthSessionUpdate) SetUserID(id uuid.UUID) *AuthSessionUpdate {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *AuthSessionUpdate) SetUser(v *User) *AuthSessionUpdate {
	return _u.SetUserID(v.ID)
}

// SetMappingID sets the "mapping" edge to the ServerMapping entity by ID.
func (_u *AuthSessionUpdate) SetMappingID(id uuid.UUID) *AuthSessionUpdate {
	_u.mutation.SetMappingID(id)
	return _u
}

// SetMapping sets the "mapping" edge to the ServerMapping entity.
func (_u *AuthSessionUpdate) SetMapping(v *ServerMapping) *AuthSessionUpdate {
	return _u.SetMappingID(v.ID)
}

// Mutation returns the AuthSessionMutation object of the builder.
func (_u *AuthSessionUpdate) Mutation() *AuthSessionMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *AuthSessionUpdate) ClearUser() *AuthSessionUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearMapping clears the "mapping" edge to the ServerMapping entity.
func (_u *AuthSessionUpdate) ClearMapping() *AuthSessionUpdate {
	_u.mutation.ClearMapping()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuthSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuthSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuthSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuthSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuthSessionUpdate) check() error {
	if v, ok := _u.mutation.AccessToken(); ok {
		if err := authsession.AccessTokenValidator(v); err != nil {
			return &ValidationError{Name: "access_token", err: fmt.Errorf(`ent: validator failed for field "AuthSession.access_token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RemoteUserID(); ok {
		if err := authsession.RemoteUserIDValidator(v); err != nil {
			return &ValidationError{Name: "remote_user_id", err: fmt.Errorf(`ent: validator failed for field "AuthSession.remote_user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeviceID(); ok {
		if err := authsession.DeviceIDValidator(v); err != nil {
			return &ValidationError{Name: "device_id", err: fmt.Errorf(`ent: validator failed for field "AuthSession.device_id": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuthSession.user"`)
	}
	if _u.mutation.MappingCleared() && len(_u.mutation.MappingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuthSession.mapping"`)
	}
	return nil
}

func (_u *AuthSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(authsession.Table, authsession.Columns, sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(authsession.FieldAccessToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.RemoteUserID(); ok {
		_spec.SetField(authsession.FieldRemoteUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(authsession.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceName(); ok {
		_spec.SetField(authsession.FieldDeviceName, field.TypeString, value)
	}
	if _u.mutation.DeviceNameCleared() {
		_spec.ClearField(authsession.FieldDeviceName, field.TypeString)
	}
	if value, ok := _u.mutation.GetClient(); ok {
		_spec.SetField(authsession.FieldClient, field.TypeString, value)
	}
	if _u.mutation.ClientCleared() {
		_spec.ClearField(authsession.FieldClient, field.TypeString)
	}
	if value, ok := _u.mutation.ClientVersion(); ok {
		_spec.SetField(authsession.FieldClientVersion, field.TypeString, value)
	}
	if _u.mutation.ClientVersionCleared() {
		_spec.ClearField(authsession.FieldClientVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(authsession.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(authsession.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(authsession.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   authsession.UserTable,
			Columns: []string{authsession.UserColumn},
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
			Table:   authsession.UserTable,
			Columns: []string{authsession.UserColumn},
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
	if _u.mutation.MappingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   authsession.MappingTable,
			Columns: []string{authsession.MappingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servermapping.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MappingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   authsession.MappingTable,
			Columns: []string{authsession.MappingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servermapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{authsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuthSessionUpdateOne is the builder for updating a single AuthSession entity.
type AuthSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuthSessionMutation
}

// SetAccessToken sets the "access_token" field.
func (_u *AuthSessionUpdateOne) SetAccessToken(v string) *AuthSessionUpdateOne {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *AuthSessionUpdateOne) SetNillableAccessToken(v *string) *AuthSessionUpdateOne {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// SetRemoteUserID sets the "remote_user_id" field.
func (_u *AuthSessionUpdateOne) SetRemoteUserID(v string) *AuthSessionUpdateOne {
	_u.mutation.SetRemoteUserID(v)
	return _u
}

// SetNillableRemoteUserID sets the "remote_user_id" field if the given value is not nil.
func (_u *AuthSessionUpdateOne) SetNillableRemoteUserID(v *string) *AuthSessionUpdateOne {
	if v != nil {
		_u.SetRemoteUserID(*v)
	}
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *AuthSessionUpdateOne) SetDeviceID(v string) *AuthSessionUpdateOne {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *AuthSessionUpdateOne) SetNillableDeviceID(v *string) *AuthSessionUpdateOne {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// SetDeviceName sets the "device_name" field.
func (_u *AuthSessionUpdateOne) SetDeviceName(v string) *AuthSessionUpdateOne {
	_u.mutation.SetDeviceName(v)
	return _u
}

// SetNillableDeviceName sets the "device_name" field if the given value is not nil.
func (_u *AuthSessionUpdateOne) SetNillableDeviceName(v *string) *AuthSessionUpdateOne {
	if v != nil {
		_u.SetDeviceName(*v)
	}
	return _u
}

// ClearDeviceName clears the value of the "device_name" field.
func (_u *AuthSessionUpdateOne) ClearDeviceName() *AuthSessionUpdateOne {
	_u.mutation.ClearDeviceName()
	return _u
}

// SetClient sets the "client" field.
func (_u *AuthSessionUpdateOne) SetClient(v string) *AuthSessionUpdateOne {
	_u.mutation.SetClient(v)
	return _u
}

// SetNillableClient sets the "client" field if the given value is not nil.
func (_u *AuthSessionUpdateOne) SetNillableClient(v *string) *AuthSessionUpdateOne {
	if v != nil {
		_u.SetClient(*v)
	}
	return _u
}

// ClearClient clears the value of the "client" field.
func (_u *AuthSessionUpdateOne) ClearClient() *AuthSessionUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// SetClientVersion sets the "client_version" field.
func (_u *AuthSessionUpdateOne) SetClientVersion(v string) *AuthSessionUpdateOne {
	_u.mutation.SetClientVersion(v)
	return _u
}

// SetNillableClientVersion sets the "client_version" field if the given value is not nil.
func (_u *AuthSessionUpdateOne) SetNillableClientVersion(v *string) *AuthSessionUpdateOne {
	if v != nil {
		_u.SetClientVersion(*v)
	}
	return _u
}

// ClearClientVersion clears the value of the "client_version" field.
func (_u *AuthSessionUpdateOne) ClearClientVersion() *AuthSessionUpdateOne {
	_u.mutation.ClearClientVersion()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *AuthSessionUpdateOne) SetExpiresAt(v time.Time) *AuthSessionUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *AuthSessionUpdateOne) SetNillableExpiresAt(v *time.Time) *AuthSessionUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *AuthSessionUpdateOne) ClearExpiresAt() *AuthSessionUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *AuthSessionUpdateOne) SetLastSeen(v time.Time) *AuthSessionUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *AuthSessionUpdateOne) SetNillableLastSeen(v *time.Time) *AuthSessionUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *AuthSessionUpdateOne) SetUserID(id uuid.UUID) *AuthSessionUpdateOne {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *AuthSessionUpdateOne) SetUser(v *User) *AuthSessionUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetMappingID sets the "mapping" edge to the ServerMapping entity by ID.
func (_u *AuthSessionUpdateOne) SetMappingID(id uuid.UUID) *AuthSessionUpdateOne {
	_u.mutation.SetMappingID(id)
	return _u
}

// SetMapping sets the "mapping" edge to the ServerMapping entity.
func (_u *AuthSessionUpdateOne) SetMapping(v *ServerMapping) *AuthSessionUpdateOne {
	return _u.SetMappingID(v.ID)
}

// Mutation returns the AuthSessionMutation object of the builder.
func (_u *AuthSessionUpdateOne) Mutation() *AuthSessionMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *AuthSessionUpdateOne) ClearUser() *AuthSessionUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearMapping clears the "mapping" edge to the ServerMapping entity.
func (_u *AuthSessionUpdateOne) ClearMapping() *AuthSessionUpdateOne {
	_u.mutation.ClearMapping()
	return _u
}

// Where appends a list predicates to the AuthSessionUpdate builder.
func (_u *AuthSessionUpdateOne) Where(ps ...predicate.AuthSession) *AuthSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuthSessionUpdateOne) Select(field string, fields ...string) *AuthSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuthSession entity.
func (_u *AuthSessionUpdateOne) Save(ctx context.Context) (*AuthSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuthSessionUpdateOne) SaveX(ctx context.Context) *AuthSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuthSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuthSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuthSessionUpdateOne) check() error {
	if v, ok := _u.mutation.AccessToken(); ok {
		if err := authsession.AccessTokenValidator(v); err != nil {
			return &ValidationError{Name: "access_token", err: fmt.Errorf(`ent: validator failed for field "AuthSession.access_token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RemoteUserID(); ok {
		if err := authsession.RemoteUserIDValidator(v); err != nil {
			return &ValidationError{Name: "remote_user_id", err: fmt.Errorf(`ent: validator failed for field "AuthSession.remote_user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeviceID(); ok {
		if err := authsession.DeviceIDValidator(v); err != nil {
			return &ValidationError{Name: "device_id", err: fmt.Errorf(`ent: validator failed for field "AuthSession.device_id": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuthSession.user"`)
	}
	if _u.mutation.MappingCleared() && len(_u.mutation.MappingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuthSession.mapping"`)
	}
	return nil
}

func (_u *AuthSessionUpdateOne) sqlSave(ctx context.Context) (_node *AuthSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(authsession.Table, authsession.Columns, sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuthSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, authsession.FieldID)
		for _, f := range fields {
			if !authsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != authsession.FieldID {
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
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(authsession.FieldAccessToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.RemoteUserID(); ok {
		_spec.SetField(authsession.FieldRemoteUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(authsession.FieldDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceName(); ok {
		_spec.SetField(authsession.FieldDeviceName, field.TypeString, value)
	}
	if _u.mutation.DeviceNameCleared() {
		_spec.ClearField(authsession.FieldDeviceName, field.TypeString)
	}
	if value, ok := _u.mutation.GetClient(); ok {
		_spec.SetField(authsession.FieldClient, field.TypeString, value)
	}
	if _u.mutation.ClientCleared() {
		_spec.ClearField(authsession.FieldClient, field.TypeString)
	}
	if value, ok := _u.mutation.ClientVersion(); ok {
		_spec.SetField(authsession.FieldClientVersion, field.TypeString, value)
	}
	if _u.mutation.ClientVersionCleared() {
		_spec.ClearField(authsession.FieldClientVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(authsession.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(authsession.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(authsession.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   authsession.UserTable,
			Columns: []string{authsession.UserColumn},
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
			Table:   authsession.UserTable,
			Columns: []string{authsession.UserColumn},
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
	if _u.mutation.MappingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   authsession.MappingTable,
			Columns: []string{authsession.MappingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servermapping.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MappingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   authsession.MappingTable,
			Columns: []string{authsession.MappingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servermapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AuthSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{authsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
