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
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrary"
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrarysource"
	"github.com/jellyswarrm/jellyswarrm/ent/server"
)

// MergedLibrarySourceCreate is the builder for creating a MergedLibrarySource entity.
type MergedLibrarySourceCreate struct {
	config
	mutation *MergedLibrarySourceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLibraryID sets the "library_id" field.
func (_c *MergedLibrarySourceCreate) SetLibraryID(v string) *MergedLibrarySourceCreate {
	_c.mutation.SetLibraryID(v)
	return _c
}

// SetLibraryName sets the "library_name" field.
func (_c *MergedLibrarySourceCreate) SetLibraryName(v string) *MergedLibrarySourceCreate {
	_c.mutation.SetLibraryName(v)
	return _c
}

// SetNillableLibraryName sets the "library_name" field if the given value is not nil.
func (_c *MergedLibrarySourceCreate) SetNillableLibraryName(v *string) *MergedLibrarySourceCreate {
	if v != nil {
		_c.SetLibraryName(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *MergedLibrarySourceCreate) SetPriority(v int) *MergedLibrarySourceCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *MergedLibrarySourceCreate) SetNillablePriority(v *int) *MergedLibrarySourceCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MergedLibrarySourceCreate) SetCreatedAt(v time.Time) *MergedLibrarySourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MergedLibrarySourceCreate) SetNillableCreatedAt(v *time.Time) *MergedLibrarySourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MergedLibrarySourceCreate) SetID(v uuid.UUID) *MergedLibrarySourceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MergedLibrarySourceCreate) SetNillableID(v *uuid.UUID) *MergedLibrarySourceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMergedLibraryID sets the "merged_library" edge to the MergedLibrary entity by ID.
func (_c *MergedLibrarySourceCreate) SetMergedLibraryID(id uuid.UUID) *MergedLibrarySourceCreate {
	_c.mutation.SetMergedLibraryID(id)
	return _c
}

// SetMergedLibrary sets the "merged_library" edge to the MergedLibrary entity.
func (_c *MergedLibrarySourceCreate) SetMergedLibrary(v *MergedLibrary) *MergedLibrarySourceCreate {
	return _c.SetMergedLibraryID(v.ID)
}

// SetServerID sets the "server" edge to the Server entity by ID.
func (_c *MergedLibrarySourceCreate) SetServerID(id uuid.UUID) *MergedLibrarySourceCreate {
	_c.mutation.SetServerID(id)
	return _c
}

// SetServer sets the "server" edge to the Server entity.
func (_c *MergedLibrarySourceCreate) SetServer(v *Server) *MergedLibrarySourceCreate {
	return _c.SetServerID(v.ID)
}

// Mutation returns the MergedLibrarySourceMutation object of the builder.
func (_c *MergedLibrarySourceCreate) Mutation() *MergedLibrarySourceMutation {
	return _c.mutation
}

// Save creates the MergedLibrarySource in the database.
func (_c *MergedLibrarySourceCreate) Save(ctx context.Context) (*MergedLibrarySource, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MergedLibrarySourceCreate) SaveX(ctx context.Context) *MergedLibrarySource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MergedLibrarySourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MergedLibrarySourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MergedLibrarySourceCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := mergedlibrarysource.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mergedlibrarysource.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := mergedlibrarysource.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MergedLibrarySourceCreate) check() error {
	if _, ok := _c.mutation.LibraryID(); !ok {
		return &ValidationError{Name: "library_id", err: errors.New(`ent: missing required field "MergedLibrarySource.library_id"`)}
	}
	if v, ok := _c.mutation.LibraryID(); ok {
		if err := mergedlibrarysource.LibraryIDValidator(v); err != nil {
			return &ValidationError{Name: "library_id", err: fmt.Errorf(`ent: validator failed for field "MergedLibrarySource.library_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "MergedLibrarySource.priority"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MergedLibrarySource.created_at"`)}
	}
	if len(_c.mutation.MergedLibraryIDs()) == 0 {
		return &ValidationError{Name: "merged_library", err: errors.New(`ent: missing required edge "MergedLibrarySource.merged_library"`)}
	}
	if len(_c.mutation.ServerIDs()) == 0 {
		return &ValidationError{Name: "server", err: errors.New(`ent: missing required edge "MergedLibrarySource.server"`)}
	}
	return nil
}

func (_c *MergedLibrarySourceCreate) sqlSave(ctx context.Context) (*MergedLibrarySource, error) {
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

func (_c *MergedLibrarySourceCreate) createSpec() (*MergedLibrarySource, *sqlgraph.CreateSpec) {
	var (
		_node = &MergedLibrarySource{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mergedlibrarysource.Table, sqlgraph.NewFieldSpec(mergedlibrarysource.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LibraryID(); ok {
		_spec.SetField(mergedlibrarysource.FieldLibraryID, field.TypeString, value)
		_node.LibraryID = value
	}
	if value, ok := _c.mutation.LibraryName(); ok {
		_spec.SetField(mergedlibrarysource.FieldLibraryName, field.TypeString, value)
		_node.LibraryName = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(mergedlibrarysource.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mergedlibrarysource.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MergedLibraryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mergedlibrarysource.MergedLibraryTable,
			Columns: []string{mergedlibrarysource.MergedLibraryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mergedlibrary.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.merged_library_sources = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ServerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mergedlibrarysource.ServerTable,
			Columns: []string{mergedlibrarysource.ServerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(server.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.server_library_sources = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MergedLibrarySource.Create().
//		SetLibraryID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MergedLibrarySourceUpsert) {
//			SetLibraryID(v+v).
//		}).
//		Exec(ctx)
func (_c *MergedLibrarySourceCreate) OnConflict(opts ...sql.ConflictOption) *MergedLibrarySourceUpsertOne {
	_c.conflict = opts
	return &MergedLibrarySourceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MergedLibrarySource.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MergedLibrarySourceCreate) OnConflictColumns(columns ...string) *MergedLibrarySourceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MergedLibrarySourceUpsertOne{
		create: _c,
	}
}

type (
	// MergedLibrarySourceUpsertOne is the builder for "upsert"-ing
	//  one MergedLibrarySource node.
	MergedLibrarySourceUpsertOne struct {
		create *MergedLibrarySourceCreate
	}

	// MergedLibrarySourceUpsert is the "OnConflict" setter.
	MergedLibrarySourceUpsert struct {
		*sql.UpdateSet
	}
)

// SetLibraryID sets the "library_id" field.
func (u *MergedLibrarySourceUpsert) SetLibraryID(v string) *MergedLibrarySourceUpsert {
	u.Set(mergedlibrarysource.FieldLibraryID, v)
	return u
}

// UpdateLibraryID sets the "library_id" field to the value that was provided on create.
func (u *MergedLibrarySourceUpsert) UpdateLibraryID() *MergedLibrarySourceUpsert {
	u.SetExcluded(mergedlibrarysource.FieldLibraryID)
	return u
}

// SetLibraryName sets the "library_name" field.
func (u *MergedLibrarySourceUpsert) SetLibraryName(v string) *MergedLibrarySourceUpsert {
	u.Set(mergedlibrarysource.FieldLibraryName, v)
	return u
}

// UpdateLibraryName sets the "library_name" field to the value that was provided on create.
func (u *MergedLibrarySourceUpsert) UpdateLibraryName() *MergedLibrarySourceUpsert {
	u.SetExcluded(mergedlibrarysource.FieldLibraryName)
	return u
}

// ClearLibraryName clears the value of the "library_name" field.
func (u *MergedLibrarySourceUpsert) ClearLibraryName() *MergedLibrarySourceUpsert {
	u.SetNull(mergedlibrarysource.FieldLibraryName)
	return u
}

// SetPriority sets the "priority" field.
func (u *MergedLibrarySourceUpsert) SetPriority(v int) *MergedLibrarySourceUpsert {
	u.Set(mergedlibrarysource.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *MergedLibrarySourceUpsert) UpdatePriority() *MergedLibrarySourceUpsert {
	u.SetExcluded(mergedlibrarysource.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *MergedLibrarySourceUpsert) AddPriority(v int) *MergedLibrarySourceUpsert {
	u.Add(mergedlibrarysource.FieldPriority, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MergedLibrarySource.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mergedlibrarysource.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MergedLibrarySourceUpsertOne) UpdateNewValues() *MergedLibrarySourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mergedlibrarysource.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mergedlibrarysource.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MergedLibrarySource.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MergedLibrarySourceUpsertOne) Ignore() *MergedLibrarySourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MergedLibrarySourceUpsertOne) DoNothing() *MergedLibrarySourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MergedLibrarySourceCreate.OnConflict
// documentation for more info.
func (u *MergedLibrarySourceUpsertOne) Update(set func(*MergedLibrarySourceUpsert)) *MergedLibrarySourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MergedLibrarySourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetLibraryID sets the "library_id" field.
func (u *MergedLibrarySourceUpsertOne) SetLibraryID(v string) *MergedLibrarySourceUpsertOne {
	return u.Update(func(s *MergedLibrarySourceUpsert) {
		s.SetLibraryID(v)
	})
}

// UpdateLibraryID sets the "library_id" field to the value that was provided on create.
func (u *MergedLibrarySourceUpsertOne) UpdateLibraryID() *MergedLibrarySourceUpsertOne {
	return u.Update(func(s *MergedLibrarySourceUpsert) {
		s.UpdateLibraryID()
	})
}

// SetLibraryName sets the "library_name" field.
func (u *MergedLibrarySourceUpsertOne) SetLibraryName(v string) *MergedLibrarySourceUpsertOne {
	return u.Update(func(s *MergedLibrarySourceUpsert) {
		s.SetLibraryName(v)
	})
}

// UpdateLibraryName sets the "library_name" field to the value that was provided on create.
func (u *MergedLibrarySourceUpsertOne) UpdateLibraryName() *MergedLibrarySourceUpsertOne {
	return u.Update(func(s *MergedLibrarySourceUpsert) {
		s.UpdateLibraryName()
	})
}

// ClearLibraryName clears the value of the "library_name" field.
func (u *MergedLibrarySourceUpsertOne) ClearLibraryName() *MergedLibrarySourceUpsertOne {
	return u.Update(func(s *MergedLibrarySourceUpsert) {
		s.ClearLibraryName()
	})
}

// SetPriority sets the "priority" field.
func (u *MergedLibrarySourceUpsertOne) SetPriority(v int) *MergedLibrarySourceUpsertOne {
	return u.Update(func(s *MergedLibrarySourceUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *MergedLibrarySourceUpsertOne) AddPriority(v int) *MergedLibrarySourceUpsertOne {
	return u.Update(func(s *MergedLibrarySourceUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *MergedLibrarySourceUpsertOne) UpdatePriority() *MergedLibrarySourceUpsertOne {
	return u.Update(func(s *MergedLibrarySourceUpsert) {
		s.UpdatePriority()
	})
}

// Exec executes the query.
func (u *MergedLibrarySourceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MergedLibrarySourceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MergedLibrarySourceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MergedLibrarySourceUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MergedLibrarySourceUpsertOne.ID is not supported by MySQL driver. Use MergedLibrarySourceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MergedLibrarySourceUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MergedLibrarySourceCreateBulk is the builder for creating many MergedLibrarySource entities in bulk.
type MergedLibrarySourceCreateBulk struct {
	config
	err      error
	builders []*MergedLibrarySourceCreate
	conflict []sql.ConflictOption
}

// Save creates the MergedLibrarySource entities in the database.
func (_c *MergedLibrarySourceCreateBulk) Save(ctx context.Context) ([]*MergedLibrarySource, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MergedLibrarySource, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MergedLibrarySourceMutation)
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
func (_c *MergedLibrarySourceCreateBulk) SaveX(ctx context.Context) []*MergedLibrarySource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MergedLibrarySourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MergedLibrarySourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MergedLibrarySource.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MergedLibrarySourceUpsert) {
//			SetLibraryID(v+v).
//		}).
//		Exec(ctx)
func (_c *MergedLibrarySourceCreateBulk) OnConflict(opts ...sql.ConflictOption) *MergedLibrarySourceUpsertBulk {
	_c.conflict = opts
	return &MergedLibrarySourceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MergedLibrarySource.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MergedLibrarySourceCreateBulk) OnConflictColumns(columns ...string) *MergedLibrarySourceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MergedLibrarySourceUpsertBulk{
		create: _c,
	}
}

// MergedLibrarySourceUpsertBulk is the builder for "upsert"-ing
// a bulk of MergedLibrarySource nodes.
type MergedLibrarySourceUpsertBulk struct {
	create *MergedLibrarySourceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MergedLibrarySource.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mergedlibrarysource.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MergedLibrarySourceUpsertBulk) UpdateNewValues() *MergedLibrarySourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mergedlibrarysource.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mergedlibrarysource.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MergedLibrarySource.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MergedLibrarySourceUpsertBulk) Ignore() *MergedLibrarySourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MergedLibrarySourceUpsertBulk) DoNothing() *MergedLibrarySourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MergedLibrarySourceCreateBulk.OnConflict
// documentation for more info.
func (u *MergedLibrarySourceUpsertBulk) Update(set func(*MergedLibrarySourceUpsert)) *MergedLibrarySourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MergedLibrarySourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetLibraryID sets the "library_id" field.
func (u *MergedLibrarySourceUpsertBulk) SetLibraryID(v string) *MergedLibrarySourceUpsertBulk {
	return u.Update(func(s *MergedLibrarySourceUpsert) {
		s.SetLibraryID(v)
	})
}

// UpdateLibraryID sets the "library_id" field to the value that was provided on create.
func (u *MergedLibrarySourceUpsertBulk) UpdateLibraryID() *MergedLibrarySourceUpsertBulk {
	return u.Update(func(s *MergedLibrarySourceUpsert) {
		s.UpdateLibraryID()
	})
}

// SetLibraryName sets the "library_name" field.
func (u *MergedLibrarySourceUpsertBulk) SetLibraryName(v string) *MergedLibrarySourceUpsertBulk {
	return u.Update(func(s *MergedLibrarySourceUpsert) {
		s.SetLibraryName(v)
	})
}

// UpdateLibraryName sets the "library_name" field to the value that was provided on create.
func (u *MergedLibrarySourceUpsertBulk) UpdateLibraryName() *MergedLibrarySourceUpsertBulk {
	return u.Update(func(s *MergedLibrarySourceUpsert) {
		s.UpdateLibraryName()
	})
}

// ClearLibraryName clears the value of the "library_name" field.
func (u *MergedLibrarySourceUpsertBulk) ClearLibraryName() *MergedLibrarySourceUpsertBulk {
	return u.Update(func(s *MergedLibrarySourceUpsert) {
		s.ClearLibraryName()
	})
}

// SetPriority sets the "priority" field.
func (u *MergedLibrarySourceUpsertBulk) SetPriority(v int) *MergedLibrarySourceUpsertBulk {
	return u.Update(func(s *MergedLibrarySourceUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *MergedLibrarySourceUpsertBulk) AddPriority(v int) *MergedLibrarySourceUpsertBulk {
	return u.Update(func(s *MergedLibrarySourceUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *MergedLibrarySourceUpsertBulk) UpdatePriority() *MergedLibrarySourceUpsertBulk {
	return u.Update(func(s *MergedLibrarySourceUpsert) {
		s.UpdatePriority()
	})
}

// Exec executes the query.
func (u *MergedLibrarySourceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MergedLibrarySourceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MergedLibrarySourceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MergedLibrarySourceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
