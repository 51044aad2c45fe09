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
	"github.com/jellyswarrm/jellyswarrm/ent/server"
	"github.com/jellyswarrm/jellyswarrm/ent/servermapping"
	"github.com/jellyswarrm/jellyswarrm/ent/user"
)

// ServerMappingCreate is the builder for creating a ServerMapping entity.
type ServerMappingCreate struct {
	config
	mutation *ServerMappingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRemoteUsername sets the "remote_username" field.
func (_c *ServerMappingCreate) SetRemoteUsername(v string) *ServerMappingCreate {
	_c.mutation.SetRemoteUsername(v)
	return _c
}

// SetEncryptedPassword sets the "encrypted_password" field.
func (_c *ServerMappingCreate) SetEncryptedPassword(v string) *ServerMappingCreate {
	_c.mutation.SetEncryptedPassword(v)
	return _c
}

// SetRecoveryPassword sets the "recovery_password" field.
func (_c *ServerMappingCreate) SetRecoveryPassword(v string) *ServerMappingCreate {
	_c.mutation.SetRecoveryPassword(v)
	return _c
}

// SetNillableRecoveryPassword sets the "recovery_password" field if the given value is not nil.
func (_c *ServerMappingCreate) SetNillableRecoveryPassword(v *string) *ServerMappingCreate {
	if v != nil {
		_c.SetRecoveryPassword(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServerMappingCreate) SetCreatedAt(v time.Time) *ServerMappingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServerMappingCreate) SetNillableCreatedAt(v *time.Time) *ServerMappingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ServerMappingCreate) SetUpdatedAt(v time.Time) *ServerMappingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ServerMappingCreate) SetNillableUpdatedAt(v *time.Time) *ServerMappingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServerMappingCreate) SetID(v uuid.UUID) *ServerMappingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ServerMappingCreate) SetNillableID(v *uuid.UUID) *ServerMappingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_c *ServerMappingCreate) SetUserID(id uuid.UUID) *ServerMappingCreate {
	_c.mutation.SetUserID(id)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *ServerMappingCreate) SetUser(v *User) *ServerMappingCreate {
	return _c.SetUserID(v.ID)
}

// SetServerID sets the "server" edge to the Server entity by ID.
func (_c *ServerMappingCreate) SetServerID(id uuid.UUID) *ServerMappingCreate {
	_c.mutation.SetServerID(id)
	return _c
}

// SetServer sets the "server" edge to the Server entity.
func (_c *ServerMappingCreate) SetServer(v *Server) *ServerMappingCreate {
	return _c.SetServerID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the AuthSession entity by IDs.
func (_c *ServerMappingCreate) AddSessionIDs(ids ...uuid.UUID) *ServerMappingCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the AuthSession entity.
func (_c *ServerMappingCreate) AddSessions(v ...*AuthSession) *ServerMappingCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// Mutation returns the ServerMappingMutation object of the builder.
func (_c *ServerMappingCreate) Mutation() *ServerMappingMutation {
	return _c.mutation
}

// Save creates the ServerMapping in the database.
func (_c *ServerMappingCreate) Save(ctx context.Context) (*ServerMapping, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServerMappingCreate) SaveX(ctx context.Context) *ServerMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServerMappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServerMappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServerMappingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := servermapping.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := servermapping.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := servermapping.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServerMappingCreate) check() error {
	if _, ok := _c.mutation.RemoteUsername(); !ok {
		return &ValidationError{Name: "remote_username", err: errors.New(`ent: missing required field "ServerMapping.remote_username"`)}
	}
	if v, ok := _c.mutation.RemoteUsername(); ok {
		if err := servermapping.RemoteUsernameValidator(v); err != nil {
			return &ValidationError{Name: "remote_username", err: fmt.Errorf(`ent: validator failed for field "ServerMapping.remote_username": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EncryptedPassword(); !ok {
		return &ValidationError{Name: "encrypted_password", err: errors.New(`ent: missing required field "ServerMapping.encrypted_password"`)}
	}
	if v, ok := _c.mutation.EncryptedPassword(); ok {
		if err := servermapping.EncryptedPasswordValidator(v); err != nil {
			return &ValidationError{Name: "encrypted_password", err: fmt.Errorf(`ent: validator failed for field "ServerMapping.encrypted_password": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ServerMapping.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ServerMapping.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "ServerMapping.user"`)}
	}
	if len(_c.mutation.ServerIDs()) == 0 {
		return &ValidationError{Name: "server", err: errors.New(`ent: missing required edge "ServerMapping.server"`)}
	}
	return nil
}

func (_c *ServerMappingCreate) sqlSave(ctx context.Context) (*ServerMapping, error) {
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

func (_c *ServerMappingCreate) createSpec() (*ServerMapping, *sqlgraph.CreateSpec) {
	var (
		_node = &ServerMapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(servermapping.Table, sqlgraph.NewFieldSpec(servermapping.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RemoteUsername(); ok {
		_spec.SetField(servermapping.FieldRemoteUsername, field.TypeString, value)
		_node.RemoteUsername = value
	}
	if value, ok := _c.mutation.EncryptedPassword(); ok {
		_spec.SetField(servermapping.FieldEncryptedPassword, field.TypeString, value)
		_node.EncryptedPassword = value
	}
	if value, ok := _c.mutation.RecoveryPassword(); ok {
		_spec.SetField(servermapping.FieldRecoveryPassword, field.TypeString, value)
		_node.RecoveryPassword = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(servermapping.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(servermapping.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.user_mappings = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ServerIDs(); len(nodes) > 0 {
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
		_node.server_mappings = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ServerMapping.Create().
//		SetRemoteUsername(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ServerMappingUpsert) {
//			SetRemoteUsername(v+v).
//		}).
//		Exec(ctx)
func (_c *ServerMappingCreate) OnConflict(opts ...sql.ConflictOption) *ServerMappingUpsertOne {
	_c.conflict = opts
	return &ServerMappingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ServerMapping.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ServerMappingCreate) OnConflictColumns(columns ...string) *ServerMappingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ServerMappingUpsertOne{
		create: _c,
	}
}

type (
	// ServerMappingUpsertOne is the builder for "upsert"-ing
	//  one ServerMapping node.
	ServerMappingUpsertOne struct {
		create *ServerMappingCreate
	}

	// ServerMappingUpsert is the "OnConflict" setter.
	ServerMappingUpsert struct {
		*sql.UpdateSet
	}
)

// SetRemoteUsername sets the "remote_username" field.
func (u *ServerMappingUpsert) SetRemoteUsername(v string) *ServerMappingUpsert {
	u.Set(servermapping.FieldRemoteUsername, v)
	return u
}

// UpdateRemoteUsername sets the "remote_username" field to the value that was provided on create.
func (u *ServerMappingUpsert) UpdateRemoteUsername() *ServerMappingUpsert {
	u.SetExcluded(servermapping.FieldRemoteUsername)
	return u
}

// SetEncryptedPassword sets the "encrypted_password" field.
func (u *ServerMappingUpsert) SetEncryptedPassword(v string) *ServerMappingUpsert {
	u.Set(servermapping.FieldEncryptedPassword, v)
	return u
}

// UpdateEncryptedPassword sets the "encrypted_password" field to the value that was provided on create.
func (u *ServerMappingUpsert) UpdateEncryptedPassword() *ServerMappingUpsert {
	u.SetExcluded(servermapping.FieldEncryptedPassword)
	return u
}

// SetRecoveryPassword sets the "recovery_password" field.
func (u *ServerMappingUpsert) SetRecoveryPassword(v string) *ServerMappingUpsert {
	u.Set(servermapping.FieldRecoveryPassword, v)
	return u
}

// UpdateRecoveryPassword sets the "recovery_password" field to the value that was provided on create.
func (u *ServerMappingUpsert) UpdateRecoveryPassword() *ServerMappingUpsert {
	u.SetExcluded(servermapping.FieldRecoveryPassword)
	return u
}

// ClearRecoveryPassword clears the value of the "recovery_password" field.
func (u *ServerMappingUpsert) ClearRecoveryPassword() *ServerMappingUpsert {
	u.SetNull(servermapping.FieldRecoveryPassword)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ServerMappingUpsert) SetUpdatedAt(v time.Time) *ServerMappingUpsert {
	u.Set(servermapping.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ServerMappingUpsert) UpdateUpdatedAt() *ServerMappingUpsert {
	u.SetExcluded(servermapping.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ServerMapping.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(servermapping.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ServerMappingUpsertOne) UpdateNewValues() *ServerMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(servermapping.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(servermapping.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ServerMapping.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ServerMappingUpsertOne) Ignore() *ServerMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ServerMappingUpsertOne) DoNothing() *ServerMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ServerMappingCreate.OnConflict
// documentation for more info.
func (u *ServerMappingUpsertOne) Update(set func(*ServerMappingUpsert)) *ServerMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ServerMappingUpsert{UpdateSet: update})
	}))
	return u
}

// SetRemoteUsername sets the "remote_username" field.
func (u *ServerMappingUpsertOne) SetRemoteUsername(v string) *ServerMappingUpsertOne {
	return u.Update(func(s *ServerMappingUpsert) {
		s.SetRemoteUsername(v)
	})
}

// UpdateRemoteUsername sets the "remote_username" field to the value that was provided on create.
func (u *ServerMappingUpsertOne) UpdateRemoteUsername() *ServerMappingUpsertOne {
	return u.Update(func(s *ServerMappingUpsert) {
		s.UpdateRemoteUsername()
	})
}

// SetEncryptedPassword sets the "encrypted_password" field.
func (u *ServerMappingUpsertOne) SetEncryptedPassword(v string) *ServerMappingUpsertOne {
	return u.Update(func(s *ServerMappingUpsert) {
		s.SetEncryptedPassword(v)
	})
}

// UpdateEncryptedPassword sets the "encrypted_password" field to the value that was provided on create.
func (u *ServerMappingUpsertOne) UpdateEncryptedPassword() *ServerMappingUpsertOne {
	return u.Update(func(s *ServerMappingUpsert) {
		s.UpdateEncryptedPassword()
	})
}

// SetRecoveryPassword sets the "recovery_password" field.
func (u *ServerMappingUpsertOne) SetRecoveryPassword(v string) *ServerMappingUpsertOne {
	return u.Update(func(s *ServerMappingUpsert) {
		s.SetRecoveryPassword(v)
	})
}

// UpdateRecoveryPassword sets the "recovery_password" field to the value that was provided on create.
func (u *ServerMappingUpsertOne) UpdateRecoveryPassword() *ServerMappingUpsertOne {
	return u.Update(func(s *ServerMappingUpsert) {
		s.UpdateRecoveryPassword()
	})
}

// ClearRecoveryPassword clears the value of the "recovery_password" field.
func (u *ServerMappingUpsertOne) ClearRecoveryPassword() *ServerMappingUpsertOne {
	return u.Update(func(s *ServerMappingUpsert) {
		s.ClearRecoveryPassword()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ServerMappingUpsertOne) SetUpdatedAt(v time.Time) *ServerMappingUpsertOne {
	return u.Update(func(s *ServerMappingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ServerMappingUpsertOne) UpdateUpdatedAt() *ServerMappingUpsertOne {
	return u.Update(func(s *ServerMappingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ServerMappingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ServerMappingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ServerMappingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ServerMappingUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ServerMappingUpsertOne.ID is not supported by MySQL driver. Use ServerMappingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ServerMappingUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ServerMappingCreateBulk is the builder for creating many ServerMapping entities in bulk.
type ServerMappingCreateBulk struct {
	config
	err      error
	builders []*ServerMappingCreate
	conflict []sql.ConflictOption
}

// Save creates the ServerMapping entities in the database.
func (_c *ServerMappingCreateBulk) Save(ctx context.Context) ([]*ServerMapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ServerMapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServerMappingMutation)
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
func (_c *ServerMappingCreateBulk) SaveX(ctx context.Context) []*ServerMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServerMappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServerMappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ServerMapping.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ServerMappingUpsert) {
//			SetRemoteUsername(v+v).
//		}).
//		Exec(ctx)
func (_c *ServerMappingCreateBulk) OnConflict(opts ...sql.ConflictOption) *ServerMappingUpsertBulk {
	_c.conflict = opts
	return &ServerMappingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ServerMapping.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ServerMappingCreateBulk) OnConflictColumns(columns ...string) *ServerMappingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ServerMappingUpsertBulk{
		create: _c,
	}
}

// ServerMappingUpsertBulk is the builder for "upsert"-ing
// a bulk of ServerMapping nodes.
type ServerMappingUpsertBulk struct {
	create *ServerMappingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ServerMapping.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(servermapping.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ServerMappingUpsertBulk) UpdateNewValues() *ServerMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(servermapping.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(servermapping.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ServerMapping.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ServerMappingUpsertBulk) Ignore() *ServerMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ServerMappingUpsertBulk) DoNothing() *ServerMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ServerMappingCreateBulk.OnConflict
// documentation for more info.
func (u *ServerMappingUpsertBulk) Update(set func(*ServerMappingUpsert)) *ServerMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ServerMappingUpsert{UpdateSet: update})
	}))
	return u
}

// SetRemoteUsername sets the "remote_username" field.
func (u *ServerMappingUpsertBulk) SetRemoteUsername(v string) *ServerMappingUpsertBulk {
	return u.Update(func(s *ServerMappingUpsert) {
		s.SetRemoteUsername(v)
	})
}

// UpdateRemoteUsername sets the "remote_username" field to the value that was provided on create.
func (u *ServerMappingUpsertBulk) UpdateRemoteUsername() *ServerMappingUpsertBulk {
	return u.Update(func(s *ServerMappingUpsert) {
		s.UpdateRemoteUsername()
	})
}

// SetEncryptedPassword sets the "encrypted_password" field.
func (u *ServerMappingUpsertBulk) SetEncryptedPassword(v string) *ServerMappingUpsertBulk {
	return u.Update(func(s *ServerMappingUpsert) {
		s.SetEncryptedPassword(v)
	})
}

// UpdateEncryptedPassword sets the "encrypted_password" field to the value that was provided on create.
func (u *ServerMappingUpsertBulk) UpdateEncryptedPassword() *ServerMappingUpsertBulk {
	return u.Update(func(s *ServerMappingUpsert) {
		s.UpdateEncryptedPassword()
	})
}

// SetRecoveryPassword sets the "recovery_password" field.
func (u *ServerMappingUpsertBulk) SetRecoveryPassword(v string) *ServerMappingUpsertBulk {
	return u.Update(func(s *ServerMappingUpsert) {
		s.SetRecoveryPassword(v)
	})
}

// UpdateRecoveryPassword sets the "recovery_password" field to the value that was provided on create.
func (u *ServerMappingUpsertBulk) UpdateRecoveryPassword() *ServerMappingUpsertBulk {
	return u.Update(func(s *ServerMappingUpsert) {
		s.UpdateRecoveryPassword()
	})
}

// ClearRecoveryPassword clears the value of the "recovery_password" field.
func (u *ServerMappingUpsertBulk) ClearRecoveryPassword() *ServerMappingUpsertBulk {
	return u.Update(func(s *ServerMappingUpsert) {
		s.ClearRecoveryPassword()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ServerMappingUpsertBulk) SetUpdatedAt(v time.Time) *ServerMappingUpsertBulk {
	return u.Update(func(s *ServerMappingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ServerMappingUpsertBulk) UpdateUpdatedAt() *ServerMappingUpsertBulk {
	return u.Update(func(s *ServerMappingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ServerMappingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ServerMappingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ServerMappingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ServerMappingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
