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
	"github.com/jellyswarrm/jellyswarrm/ent/mediamapping"
	"github.com/jellyswarrm/jellyswarrm/ent/server"
)

// MediaMappingCreate is the builder for creating a MediaMapping entity.
type MediaMappingCreate struct {
	config
	mutation *MediaMappingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetVirtualID sets the "virtual_id" field.
func (_c *MediaMappingCreate) SetVirtualID(v string) *MediaMappingCreate {
	_c.mutation.SetVirtualID(v)
	return _c
}

// SetOriginalID sets the "original_id" field.
func (_c *MediaMappingCreate) SetOriginalID(v string) *MediaMappingCreate {
	_c.mutation.SetOriginalID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MediaMappingCreate) SetCreatedAt(v time.Time) *MediaMappingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MediaMappingCreate) SetNillableCreatedAt(v *time.Time) *MediaMappingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MediaMappingCreate) SetID(v uuid.UUID) *MediaMappingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MediaMappingCreate) SetNillableID(v *uuid.UUID) *MediaMappingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetServerID sets the "server" edge to the Server entity by ID.
func (_c *MediaMappingCreate) SetServerID(id uuid.UUID) *MediaMappingCreate {
	_c.mutation.SetServerID(id)
	return _c
}

// SetServer sets the "server" edge to the Server entity.
func (_c *MediaMappingCreate) SetServer(v *Server) *MediaMappingCreate {
	return _c.SetServerID(v.ID)
}

// Mutation returns the MediaMappingMutation object of the builder.
func (_c *MediaMappingCreate) Mutation() *MediaMappingMutation {
	return _c.mutation
}

// Save creates the MediaMapping in the database.
func (_c *MediaMappingCreate) Save(ctx context.Context) (*MediaMapping, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MediaMappingCreate) SaveX(ctx context.Context) *MediaMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MediaMappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MediaMappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MediaMappingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mediamapping.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := mediamapping.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MediaMappingCreate) check() error {
	if _, ok := _c.mutation.VirtualID(); !ok {
		return &ValidationError{Name: "virtual_id", err: errors.New(`ent: missing required field "MediaMapping.virtual_id"`)}
	}
	if v, ok := _c.mutation.VirtualID(); ok {
		if err := mediamapping.VirtualIDValidator(v); err != nil {
			return &ValidationError{Name: "virtual_id", err: fmt.Errorf(`ent: validator failed for field "MediaMapping.virtual_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalID(); !ok {
		return &ValidationError{Name: "original_id", err: errors.New(`ent: missing required field "MediaMapping.original_id"`)}
	}
	if v, ok := _c.mutation.OriginalID(); ok {
		if err := mediamapping.OriginalIDValidator(v); err != nil {
			return &ValidationError{Name: "original_id", err: fmt.Errorf(`ent: validator failed for field "MediaMapping.original_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MediaMapping.created_at"`)}
	}
	if len(_c.mutation.ServerIDs()) == 0 {
		return &ValidationError{Name: "server", err: errors.New(`ent: missing required edge "MediaMapping.server"`)}
	}
	return nil
}

func (_c *MediaMappingCreate) sqlSave(ctx context.Context) (*MediaMapping, error) {
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

func (_c *MediaMappingCreate) createSpec() (*MediaMapping, *sqlgraph.CreateSpec) {
	var (
		_node = &MediaMapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mediamapping.Table, sqlgraph.NewFieldSpec(mediamapping.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VirtualID(); ok {
		_spec.SetField(mediamapping.FieldVirtualID, field.TypeString, value)
		_node.VirtualID = value
	}
	if value, ok := _c.mutation.OriginalID(); ok {
		_spec.SetField(mediamapping.FieldOriginalID, field.TypeString, value)
		_node.OriginalID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mediamapping.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ServerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mediamapping.ServerTable,
			Columns: []string{mediamapping.ServerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(server.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.server_media_mappings = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MediaMapping.Create().
//		SetVirtualID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MediaMappingUpsert) {
//			SetVirtualID(v+v).
//		}).
//		Exec(ctx)
func (_c *MediaMappingCreate) OnConflict(opts ...sql.ConflictOption) *MediaMappingUpsertOne {
	_c.conflict = opts
	return &MediaMappingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MediaMapping.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MediaMappingCreate) OnConflictColumns(columns ...string) *MediaMappingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MediaMappingUpsertOne{
		create: _c,
	}
}

type (
	// MediaMappingUpsertOne is the builder for "upsert"-ing
	//  one MediaMapping node.
	MediaMappingUpsertOne struct {
		create *MediaMappingCreate
	}

	// MediaMappingUpsert is the "OnConflict" setter.
	MediaMappingUpsert struct {
		*sql.UpdateSet
	}
)

// SetVirtualID sets the "virtual_id" field.
func (u *MediaMappingUpsert) SetVirtualID(v string) *MediaMappingUpsert {
	u.Set(mediamapping.FieldVirtualID, v)
	return u
}

// UpdateVirtualID sets the "virtual_id" field to the value that was provided on create.
func (u *MediaMappingUpsert) UpdateVirtualID() *MediaMappingUpsert {
	u.SetExcluded(mediamapping.FieldVirtualID)
	return u
}

// SetOriginalID sets the "original_id" field.
func (u *MediaMappingUpsert) SetOriginalID(v string) *MediaMappingUpsert {
	u.Set(mediamapping.FieldOriginalID, v)
	return u
}

// UpdateOriginalID sets the "original_id" field to the value that was provided on create.
func (u *MediaMappingUpsert) UpdateOriginalID() *MediaMappingUpsert {
	u.SetExcluded(mediamapping.FieldOriginalID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MediaMapping.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mediamapping.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MediaMappingUpsertOne) UpdateNewValues() *MediaMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mediamapping.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mediamapping.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MediaMapping.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MediaMappingUpsertOne) Ignore() *MediaMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MediaMappingUpsertOne) DoNothing() *MediaMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MediaMappingCreate.OnConflict
// documentation for more info.
func (u *MediaMappingUpsertOne) Update(set func(*MediaMappingUpsert)) *MediaMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MediaMappingUpsert{UpdateSet: update})
	}))
	return u
}

// SetVirtualID sets the "virtual_id" field.
func (u *MediaMappingUpsertOne) SetVirtualID(v string) *MediaMappingUpsertOne {
	return u.Update(func(s *MediaMappingUpsert) {
		s.SetVirtualID(v)
	})
}

// UpdateVirtualID sets the "virtual_id" field to the value that was provided on create.
func (u *MediaMappingUpsertOne) UpdateVirtualID() *MediaMappingUpsertOne {
	return u.Update(func(s *MediaMappingUpsert) {
		s.UpdateVirtualID()
	})
}

// SetOriginalID sets the "original_id" field.
func (u *MediaMappingUpsertOne) SetOriginalID(v string) *MediaMappingUpsertOne {
	return u.Update(func(s *MediaMappingUpsert) {
		s.SetOriginalID(v)
	})
}

// UpdateOriginalID sets the "original_id" field to the value that was provided on create.
func (u *MediaMappingUpsertOne) UpdateOriginalID() *MediaMappingUpsertOne {
	return u.Update(func(s *MediaMappingUpsert) {
		s.UpdateOriginalID()
	})
}

// Exec executes the query.
func (u *MediaMappingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MediaMappingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MediaMappingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MediaMappingUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MediaMappingUpsertOne.ID is not supported by MySQL driver. Use MediaMappingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MediaMappingUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MediaMappingCreateBulk is the builder for creating many MediaMapping entities in bulk.
type MediaMappingCreateBulk struct {
	config
	err      error
	builders []*MediaMappingCreate
	conflict []sql.ConflictOption
}

// Save creates the MediaMapping entities in the database.
func (_c *MediaMappingCreateBulk) Save(ctx context.Context) ([]*MediaMapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MediaMapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MediaMappingMutation)
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
func (_c *MediaMappingCreateBulk) SaveX(ctx context.Context) []*MediaMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MediaMappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MediaMappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MediaMapping.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MediaMappingUpsert) {
//			SetVirtualID(v+v).
//		}).
//		Exec(ctx)
func (_c *MediaMappingCreateBulk) OnConflict(opts ...sql.ConflictOption) *MediaMappingUpsertBulk {
	_c.conflict = opts
	return &MediaMappingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MediaMapping.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MediaMappingCreateBulk) OnConflictColumns(columns ...string) *MediaMappingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MediaMappingUpsertBulk{
		create: _c,
	}
}

// MediaMappingUpsertBulk is the builder for "upsert"-ing
// a bulk of MediaMapping nodes.
type MediaMappingUpsertBulk struct {
	create *MediaMappingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MediaMapping.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mediamapping.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MediaMappingUpsertBulk) UpdateNewValues() *MediaMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mediamapping.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mediamapping.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MediaMapping.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MediaMappingUpsertBulk) Ignore() *MediaMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MediaMappingUpsertBulk) DoNothing() *MediaMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MediaMappingCreateBulk.OnConflict
// documentation for more info.
func (u *MediaMappingUpsertBulk) Update(set func(*MediaMappingUpsert)) *MediaMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MediaMappingUpsert{UpdateSet: update})
	}))
	return u
}

// SetVirtualID sets the "virtual_id" field.
func (u *MediaMappingUpsertBulk) SetVirtualID(v string) *MediaMappingUpsertBulk {
	return u.Update(func(s *MediaMappingUpsert) {
		s.SetVirtualID(v)
	})
}

// UpdateVirtualID sets the "virtual_id" field to the value that was provided on create.
func (u *MediaMappingUpsertBulk) UpdateVirtualID() *MediaMappingUpsertBulk {
	return u.Update(func(s *MediaMappingUpsert) {
		s.UpdateVirtualID()
	})
}

// SetOriginalID sets the "original_id" field.
func (u *MediaMappingUpsertBulk) SetOriginalID(v string) *MediaMappingUpsertBulk {
	return u.Update(func(s *MediaMappingUpsert) {
		s.SetOriginalID(v)
	})
}

// UpdateOriginalID sets the "original_id" field to the value that was provided on create.
func (u *MediaMappingUpsertBulk) UpdateOriginalID() *MediaMappingUpsertBulk {
	return u.Update(func(s *MediaMappingUpsert) {
		s.UpdateOriginalID()
	})
}

// Exec executes the query.
func (u *MediaMappingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MediaMappingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MediaMappingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MediaMappingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
