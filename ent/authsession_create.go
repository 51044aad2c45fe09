// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jellyswarrm/jellyswarrm/ent/authsession"
	"github.com/jellyswarrm/jellyswarrm/ent/servermapping"
	"github.com/jellyswarrm/jellyswarrm/ent/user"
)

// AuthSessionCreate is the builder for creating a AuthSession entity.
type AuthSessionCreate struct {
	config
	mutation *AuthSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccessToken sets the "access_token" field.
func (_c *AuthSessionCreate) SetAccessToken(v string) *AuthSessionCreate {
	_c.mutation.SetAccessToken(v)
	return _c
}

// SetRemoteUserID sets the "remote_user_id" field.
func (_c *AuthSessionCreate) SetRemoteUserID(v string) *AuthSessionCreate {
	_c.mutation.SetRemoteUserID(v)
	return _c
}

// SetDeviceID sets the "device_id" field.
func (_c *AuthSessionCreate) SetDeviceID(v string) *AuthSessionCreate {
	_c.mutation.SetDeviceID(v)
	return _c
}

// SetDeviceName sets the "device_name" field.
func (_c *AuthSessionCreate) SetDeviceName(v string) *AuthSessionCreate {
	_c.mutation.SetDeviceName(v)
	return _c
}

// SetNillableDeviceName sets the "device_name" field if the given value is not nil.
func (_c *AuthSessionCreate) SetNillableDeviceName(v *string) *AuthSessionCreate {
	if v != nil {
		_c.SetDeviceName(*v)
	}
	return _c
}

// SetClient sets the "client" field.
func (_c *AuthSessionCreate) SetClient(v string) *AuthSessionCreate {
	_c.mutation.SetClient(v)
	return _c
}

// SetNillableClient sets the "client" field if the given value is not nil.
func (_c *AuthSessionCreate) SetNillableClient(v *string) *AuthSessionCreate {
	if v != nil {
		_c.SetClient(*v)
	}
	return _c
}

// SetClientVersion sets the "client_version" field.
func (_c *AuthSessionCreate) SetClientVersion(v string) *AuthSessionCreate {
	_c.mutation.SetClientVersion(v)
	return _c
}

// SetNillableClientVersion sets the "client_version" field if the given value is not nil.
func (_c *AuthSessionCreate) SetNillableClientVersion(v *string) *AuthSessionCreate {
	if v != nil {
		_c.SetClientVersion(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *AuthSessionCreate) SetExpiresAt(v time.Time) *AuthSessionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *AuthSessionCreate) SetNillableExpiresAt(v *time.Time) *AuthSessionCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *AuthSessionCreate) SetLastSeen(v time.Time) *AuthSessionCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *AuthSessionCreate) SetNillableLastSeen(v *time.Time) *AuthSessionCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuthSessionCreate) SetCreatedAt(v time.Time) *AuthSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuthSessionCreate) SetNillableCreatedAt(v *time.Time) *AuthSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuthSessionCreate) SetID(v uuid.UUID) *AuthSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AuthSessionCreate) SetNillableID(v *uuid.UUID) *AuthSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_c *AuthSessionCreate) SetUserID(id uuid.UUID) *AuthSessionCreate {
	_c.mutation.SetUserID(id)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *AuthSessionCreate) SetUser(v *User) *AuthSessionCreate {
	return _c.SetUserID(v.ID)
}

// SetMappingID sets the "mapping" edge to the ServerMapping entity by ID.
func (_c *AuthSessionCreate) SetMappingID(id uuid.UUID) *AuthSessionCreate {
	_c.mutation.SetMappingID(id)
	return _c
}

// SetMapping sets the "mapping" edge to the ServerMapping entity.
func (_c *AuthSessionCreate) SetMapping(v *ServerMapping) *AuthSessionCreate {
	return _c.SetMappingID(v.ID)
}

// Mutation returns the AuthSessionMutation object of the builder.
func (_c *AuthSessionCreate) Mutation() *AuthSessionMutation {
	return _c.mutation
}

// Save creates the AuthSession in the database.
func (_c *AuthSessionCreate) Save(ctx context.Context) (*AuthSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuthSessionCreate) SaveX(ctx context.Context) *AuthSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuthSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuthSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuthSessionCreate) defaults() {
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := authsession.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := authsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := authsession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuthSessionCreate) check() error {
	if _, ok := _c.mutation.AccessToken(); !ok {
		return &ValidationError{Name: "access_token", err: errors.New(`ent: missing required field "AuthSession.access_token"`)}
	}
	if v, ok := _c.mutation.AccessToken(); ok {
		if err := authsession.AccessTokenValidator(v); err != nil {
			return &ValidationError{Name: "access_token", err: fmt.Errorf(`ent: validator failed for field "AuthSession.access_token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RemoteUserID(); !ok {
		return &ValidationError{Name: "remote_user_id", err: errors.New(`ent: missing required field "AuthSession.remote_user_id"`)}
	}
	if v, ok := _c.mutation.RemoteUserID(); ok {
		if err := authsession.RemoteUserIDValidator(v); err != nil {
			return &ValidationError{Name: "remote_user_id", err: fmt.Errorf(`ent: validator failed for field "AuthSession.remote_user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeviceID(); !ok {
		return &ValidationError{Name: "device_id", err: errors.New(`ent: missing required field "AuthSession.device_id"`)}
	}
	if v, ok := _c.mutation.DeviceID(); ok {
		if err := authsession.DeviceIDValidator(v); err != nil {
			return &ValidationError{Name: "device_id", err: fmt.Errorf(`ent: validator failed for field "AuthSession.device_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "AuthSession.last_seen"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuthSession.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "AuthSession.user"`)}
	}
	if len(_c.mutation.MappingIDs()) == 0 {
		return &ValidationError{Name: "mapping", err: errors.New(`ent: missing required edge "AuthSession.mapping"`)}
	}
	return nil
}

func (_c *AuthSessionCreate) sqlSave(ctx context.Context) (*AuthSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuthSessionCreate) createSpec() (*AuthSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AuthSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(authsession.Table, sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.AccessToken(); ok {
		_spec.SetField(authsession.FieldAccessToken, field.TypeString, value)
		_node.AccessToken = value
	}
	if value, ok := _c.mutation.RemoteUserID(); ok {
		_spec.SetField(authsession.FieldRemoteUserID, field.TypeString, value)
		_node.RemoteUserID = value
	}
	if value, ok := _c.mutation.DeviceID(); ok {
		_spec.SetField(authsession.FieldDeviceID, field.TypeString, value)
		_node.DeviceID = value
	}
	if value, ok := _c.mutation.DeviceName(); ok {
		_spec.SetField(authsession.FieldDeviceName, field.TypeString, value)
		_node.DeviceName = value
	}
	if value, ok := _c.mutation.GetClient(); ok {
		_spec.SetField(authsession.FieldClient, field.TypeString, value)
		_node.Client = value
	}
	if value, ok := _c.mutation.ClientVersion(); ok {
		_spec.SetField(authsession.FieldClientVersion, field.TypeString, value)
		_node.ClientVersion = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(authsession.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(authsession.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(authsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.user_sessions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MappingIDs(); len(nodes) > 0 {
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
		_node.server_mapping_sessions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuthSession.Create().
//		SetAccessToken(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuthSessionUpsert) {
//			SetAccessToken(v+v).
//		}).
//		Exec(ctx)
func (_c *AuthSessionCreate) OnConflict(opts ...sql.ConflictOption) *AuthSessionUpsertOne {
	_c.conflict = opts
	return &AuthSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuthSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuthSessionCreate) OnConflictColumns(columns ...string) *AuthSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuthSessionUpsertOne{
		create: _c,
	}
}

type (
	// AuthSessionUpsertOne is the builder for "upsert"-ing
	//  one AuthSession node.
	AuthSessionUpsertOne struct {
		create *AuthSessionCreate
	}

	// AuthSessionUpsert is the "OnConflict" setter.
	AuthSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetAccessToken sets the "access_token" field.
func (u *AuthSessionUpsert) SetAccessToken(v string) *AuthSessionUpsert {
	u.Set(authsession.FieldAccessToken, v)
	return u
}

// UpdateAccessToken sets the "access_token" field to the value that was provided on create.
func (u *AuthSessionUpsert) UpdateAccessToken() *AuthSessionUpsert {
	u.SetExcluded(authsession.FieldAccessToken)
	return u
}

// SetRemoteUserID sets the "remote_user_id" field.
func (u *AuthSessionUpsert) SetRemoteUserID(v string) *AuthSessionUpsert {
	u.Set(authsession.FieldRemoteUserID, v)
	return u
}

// UpdateRemoteUserID sets the "remote_user_id" field to the value that was provided on create.
func (u *AuthSessionUpsert) UpdateRemoteUserID() *AuthSessionUpsert {
	u.SetExcluded(authsession.FieldRemoteUserID)
	return u
}

// SetDeviceID sets the "device_id" field.
func (u *AuthSessionUpsert) SetDeviceID(v string) *AuthSessionUpsert {
	u.Set(authsession.FieldDeviceID, v)
	return u
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *AuthSessionUpsert) UpdateDeviceID() *AuthSessionUpsert {
	u.SetExcluded(authsession.FieldDeviceID)
	return u
}

// SetDeviceName sets the "device_name" field.
func (u *AuthSessionUpsert) SetDeviceName(v string) *AuthSessionUpsert {
	u.Set(authsession.FieldDeviceName, v)
	return u
}

// UpdateDeviceName sets the "device_name" field to the value that was provided on create.
func (u *AuthSessionUpsert) UpdateDeviceName() *AuthSessionUpsert {
	u.SetExcluded(authsession.FieldDeviceName)
	return u
}

// ClearDeviceName clears the value of the "device_name" field.
func (u *AuthSessionUpsert) ClearDeviceName() *AuthSessionUpsert {
	u.SetNull(authsession.FieldDeviceName)
	return u
}

// SetClient sets the "client" field.
func (u *AuthSessionUpsert) SetClient(v string) *AuthSessionUpsert {
	u.Set(authsession.FieldClient, v)
	return u
}

// UpdateClient sets the "client" field to the value that was provided on create.
func (u *AuthSessionUpsert) UpdateClient() *AuthSessionUpsert {
	u.SetExcluded(authsession.FieldClient)
	return u
}

// ClearClient clears the value of the "client" field.
func (u *AuthSessionUpsert) ClearClient() *AuthSessionUpsert {
	u.SetNull(authsession.FieldClient)
	return u
}

// SetClientVersion sets the "client_version" field.
func (u *AuthSessionUpsert) SetClientVersion(v string) *AuthSessionUpsert {
	u.Set(authsession.FieldClientVersion, v)
	return u
}

// UpdateClientVersion sets the "client_version" field to the value that was provided on create.
func (u *AuthSessionUpsert) UpdateClientVersion() *AuthSessionUpsert {
	u.SetExcluded(authsession.FieldClientVersion)
	return u
}

// ClearClientVersion clears the value of the "client_version" field.
func (u *AuthSessionUpsert) ClearClientVersion() *AuthSessionUpsert {
	u.SetNull(authsession.FieldClientVersion)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *AuthSessionUpsert) SetExpiresAt(v time.Time) *AuthSessionUpsert {
	u.Set(authsession.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *AuthSessionUpsert) UpdateExpiresAt() *AuthSessionUpsert {
	u.SetExcluded(authsession.FieldExpiresAt)
	return u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *AuthSessionUpsert) ClearExpiresAt() *AuthSessionUpsert {
	u.SetNull(authsession.FieldExpiresAt)
	return u
}

// SetLastSeen sets the "last_seen" field.
func (u *AuthSessionUpsert) SetLastSeen(v time.Time) *AuthSessionUpsert {
	u.Set(authsession.FieldLastSeen, v)
	return u
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *AuthSessionUpsert) UpdateLastSeen() *AuthSessionUpsert {
	u.SetExcluded(authsession.FieldLastSeen)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AuthSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(authsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuthSessionUpsertOne) UpdateNewValues() *AuthSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(authsession.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(authsession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuthSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuthSessionUpsertOne) Ignore() *AuthSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuthSessionUpsertOne) DoNothing() *AuthSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuthSessionCreate.OnConflict
// documentation for more info.
func (u *AuthSessionUpsertOne) Update(set func(*AuthSessionUpsert)) *AuthSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuthSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccessToken sets the "access_token" field.
func (u *AuthSessionUpsertOne) SetAccessToken(v string) *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.SetAccessToken(v)
	})
}

// UpdateAccessToken sets the "access_token" field to the value that was provided on create.
func (u *AuthSessionUpsertOne) UpdateAccessToken() *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.UpdateAccessToken()
	})
}

// SetRemoteUserID sets the "remote_user_id" field.
func (u *AuthSessionUpsertOne) SetRemoteUserID(v string) *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.SetRemoteUserID(v)
	})
}

// UpdateRemoteUserID sets the "remote_user_id" field to the value that was provided on create.
func (u *AuthSessionUpsertOne) UpdateRemoteUserID() *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.UpdateRemoteUserID()
	})
}

// SetDeviceID sets the "device_id" field.
func (u *AuthSessionUpsertOne) SetDeviceID(v string) *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *AuthSessionUpsertOne) UpdateDeviceID() *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.UpdateDeviceID()
	})
}

// SetDeviceName sets the "device_name" field.
func (u *AuthSessionUpsertOne) SetDeviceName(v string) *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.SetDeviceName(v)
	})
}

// UpdateDeviceName sets the "device_name" field to the value that was provided on create.
func (u *AuthSessionUpsertOne) UpdateDeviceName() *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.UpdateDeviceName()
	})
}

// ClearDeviceName clears the value of the "device_name" field.
func (u *AuthSessionUpsertOne) ClearDeviceName() *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.ClearDeviceName()
	})
}

// SetClient sets the "client" field.
func (u *AuthSessionUpsertOne) SetClient(v string) *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.SetClient(v)
	})
}

// UpdateClient sets the "client" field to the value that was provided on create.
func (u *AuthSessionUpsertOne) UpdateClient() *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.UpdateClient()
	})
}

// ClearClient clears the value of the "client" field.
func (u *AuthSessionUpsertOne) ClearClient() *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.ClearClient()
	})
}

// SetClientVersion sets the "client_version" field.
func (u *AuthSessionUpsertOne) SetClientVersion(v string) *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.SetClientVersion(v)
	})
}

// UpdateClientVersion sets the "client_version" field to the value that was provided on create.
func (u *AuthSessionUpsertOne) UpdateClientVersion() *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.UpdateClientVersion()
	})
}

// ClearClientVersion clears the value of the "client_version" field.
func (u *AuthSessionUpsertOne) ClearClientVersion() *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.ClearClientVersion()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *AuthSessionUpsertOne) SetExpiresAt(v time.Time) *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *AuthSessionUpsertOne) UpdateExpiresAt() *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *AuthSessionUpsertOne) ClearExpiresAt() *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.ClearExpiresAt()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *AuthSessionUpsertOne) SetLastSeen(v time.Time) *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *AuthSessionUpsertOne) UpdateLastSeen() *AuthSessionUpsertOne {
	return u.Update(func(s *AuthSessionUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *AuthSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuthSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuthSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuthSessionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuthSessionUpsertOne.ID is not supported by MySQL driver. Use AuthSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuthSessionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuthSessionCreateBulk is the builder for creating many AuthSession entities in bulk.
type AuthSessionCreateBulk struct {
	config
	err      error
	builders []*AuthSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the AuthSession entities in the database.
func (_c *AuthSessionCreateBulk) Save(ctx context.Context) ([]*AuthSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuthSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuthSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AuthSessionCreateBulk) SaveX(ctx context.Context) []*AuthSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuthSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuthSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuthSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuthSessionUpsert) {
//			SetAccessToken(v+v).
//		}).
//		Exec(ctx)
func (_c *AuthSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuthSessionUpsertBulk {
	_c.conflict = opts
	return &AuthSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuthSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuthSessionCreateBulk) OnConflictColumns(columns ...string) *AuthSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuthSessionUpsertBulk{
		create: _c,
	}
}

// AuthSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of AuthSession nodes.
type AuthSessionUpsertBulk struct {
	create *AuthSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AuthSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(authsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuthSessionUpsertBulk) UpdateNewValues() *AuthSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(authsession.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(authsession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuthSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuthSessionUpsertBulk) Ignore() *AuthSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuthSessionUpsertBulk) DoNothing() *AuthSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuthSessionCreateBulk.OnConflict
// documentation for more info.
func (u *AuthSessionUpsertBulk) Update(set func(*AuthSessionUpsert)) *AuthSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuthSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccessToken sets the "access_token" field.
func (u *AuthSessionUpsertBulk) SetAccessToken(v string) *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.SetAccessToken(v)
	})
}

// UpdateAccessToken sets the "access_token" field to the value that was provided on create.
func (u *AuthSessionUpsertBulk) UpdateAccessToken() *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.UpdateAccessToken()
	})
}

// SetRemoteUserID sets the "remote_user_id" field.
func (u *AuthSessionUpsertBulk) SetRemoteUserID(v string) *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.SetRemoteUserID(v)
	})
}

// UpdateRemoteUserID sets the "remote_user_id" field to the value that was provided on create.
func (u *AuthSessionUpsertBulk) UpdateRemoteUserID() *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.UpdateRemoteUserID()
	})
}

// SetDeviceID sets the "device_id" field.
func (u *AuthSessionUpsertBulk) SetDeviceID(v string) *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.SetDeviceID(v)
	})
}

// UpdateDeviceID sets the "device_id" field to the value that was provided on create.
func (u *AuthSessionUpsertBulk) UpdateDeviceID() *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.UpdateDeviceID()
	})
}

// SetDeviceName sets the "device_name" field.
func (u *AuthSessionUpsertBulk) SetDeviceName(v string) *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.SetDeviceName(v)
	})
}

// UpdateDeviceName sets the "device_name" field to the value that was provided on create.
func (u *AuthSessionUpsertBulk) UpdateDeviceName() *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.UpdateDeviceName()
	})
}

// ClearDeviceName clears the value of the "device_name" field.
func (u *AuthSessionUpsertBulk) ClearDeviceName() *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.ClearDeviceName()
	})
}

// SetClient sets the "client" field.
func (u *AuthSessionUpsertBulk) SetClient(v string) *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.SetClient(v)
	})
}

// UpdateClient sets the "client" field to the value that was provided on create.
func (u *AuthSessionUpsertBulk) UpdateClient() *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.UpdateClient()
	})
}

// ClearClient clears the value of the "client" field.
func (u *AuthSessionUpsertBulk) ClearClient() *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.ClearClient()
	})
}

// SetClientVersion sets the "client_version" field.
func (u *AuthSessionUpsertBulk) SetClientVersion(v string) *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.SetClientVersion(v)
	})
}

// UpdateClientVersion sets the "client_version" field to the value that was provided on create.
func (u *AuthSessionUpsertBulk) UpdateClientVersion() *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.UpdateClientVersion()
	})
}

// ClearClientVersion clears the value of the "client_version" field.
func (u *AuthSessionUpsertBulk) ClearClientVersion() *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.ClearClientVersion()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *AuthSessionUpsertBulk) SetExpiresAt(v time.Time) *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *AuthSessionUpsertBulk) UpdateExpiresAt() *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *AuthSessionUpsertBulk) ClearExpiresAt() *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.ClearExpiresAt()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *AuthSessionUpsertBulk) SetLastSeen(v time.Time) *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *AuthSessionUpsertBulk) UpdateLastSeen() *AuthSessionUpsertBulk {
	return u.Update(func(s *AuthSessionUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *AuthSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuthSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuthSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuthSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
