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
)

// MergedLibraryCreate is the builder for creating a MergedLibrary entity.
type MergedLibraryCreate struct {
	config
	mutation *MergedLibraryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetVirtualID sets the "virtual_id" field.
func (_c *MergedLibraryCreate) SetVirtualID(v string) *MergedLibraryCreate {
	_c.mutation.SetVirtualID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *MergedLibraryCreate) SetName(v string) *MergedLibraryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCollectionType sets the "collection_type" field.
func (_c *MergedLibraryCreate) SetCollectionType(v mergedlibrary.CollectionType) *MergedLibraryCreate {
	_c.mutation.SetCollectionType(v)
	return _c
}

// SetNillableCollectionType sets the "collection_type" field if the given value is not nil.
func (_c *MergedLibraryCreate) SetNillableCollectionType(v *mergedlibrary.CollectionType) *MergedLibraryCreate {
	if v != nil {
		_c.SetCollectionType(*v)
	}
	return _c
}

// SetDedupStrategy sets the "dedup_strategy" field.
func (_c *MergedLibraryCreate) SetDedupStrategy(v mergedlibrary.DedupStrategy) *MergedLibraryCreate {
	_c.mutation.SetDedupStrategy(v)
	return _c
}

// SetNillableDedupStrategy sets the "dedup_strategy" field if the given value is not nil.
func (_c *MergedLibraryCreate) SetNillableDedupStrategy(v *mergedlibrary.DedupStrategy) *MergedLibraryCreate {
	if v != nil {
		_c.SetDedupStrategy(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *MergedLibraryCreate) SetCreatedBy(v string) *MergedLibraryCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *MergedLibraryCreate) SetNillableCreatedBy(v *string) *MergedLibraryCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetIsGlobal sets the "is_global" field.
func (_c *MergedLibraryCreate) SetIsGlobal(v bool) *MergedLibraryCreate {
	_c.mutation.SetIsGlobal(v)
	return _c
}

// SetNillableIsGlobal sets the "is_global" field if the given value is not nil.
func (_c *MergedLibraryCreate) SetNillableIsGlobal(v *bool) *MergedLibraryCreate {
	if v != nil {
		_c.SetIsGlobal(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MergedLibraryCreate) SetCreatedAt(v time.Time) *MergedLibraryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MergedLibraryCreate) SetNillableCreatedAt(v *time.Time) *MergedLibraryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MergedLibraryCreate) SetUpdatedAt(v time.Time) *MergedLibraryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MergedLibraryCreate) SetNillableUpdatedAt(v *time.Time) *MergedLibraryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MergedLibraryCreate) SetID(v uuid.UUID) *MergedLibraryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MergedLibraryCreate) SetNillableID(v *uuid.UUID) *MergedLibraryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddSourceIDs adds the "sources" edge to the MergedLibrarySource entity by IDs.
func (_c *MergedLibraryCreate) AddSourceIDs(ids ...uuid.UUID) *MergedLibraryCreate {
	_c.mutation.AddSourceIDs(ids...)
	return _c
}

// AddSources adds the "sources" edges to the MergedLibrarySource entity.
func (_c *MergedLibraryCreate) AddSources(v ...*MergedLibrarySource) *MergedLibraryCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSourceIDs(ids...)
}

// Mutation returns the MergedLibraryMutation object of the builder.
func (_c *MergedLibraryCreate) Mutation() *MergedLibraryMutation {
	return _c.mutation
}

// Save creates the MergedLibrary in the database.
func (_c *MergedLibraryCreate) Save(ctx context.Context) (*MergedLibrary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MergedLibraryCreate) SaveX(ctx context.Context) *MergedLibrary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MergedLibraryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MergedLibraryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MergedLibraryCreate) defaults() {
	if _, ok := _c.mutation.CollectionType(); !ok {
		v := mergedlibrary.DefaultCollectionType
		_c.mutation.SetCollectionType(v)
	}
	if _, ok := _c.mutation.DedupStrategy(); !ok {
		v := mergedlibrary.DefaultDedupStrategy
		_c.mutation.SetDedupStrategy(v)
	}
	if _, ok := _c.mutation.IsGlobal(); !ok {
		v := mergedlibrary.DefaultIsGlobal
		_c.mutation.SetIsGlobal(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mergedlibrary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mergedlibrary.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := mergedlibrary.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MergedLibraryCreate) check() error {
	if _, ok := _c.mutation.VirtualID(); !ok {
		return &ValidationError{Name: "virtual_id", err: errors.New(`ent: missing required field "MergedLibrary.virtual_id"`)}
	}
	if v, ok := _c.mutation.VirtualID(); ok {
		if err := mergedlibrary.VirtualIDValidator(v); err != nil {
			return &ValidationError{Name: "virtual_id", err: fmt.Errorf(`ent: validator failed for field "MergedLibrary.virtual_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "MergedLibrary.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := mergedlibrary.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MergedLibrary.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CollectionType(); !ok {
		return &ValidationError{Name: "collection_type", err: errors.New(`ent: missing required field "MergedLibrary.collection_type"`)}
	}
	if v, ok := _c.mutation.CollectionType(); ok {
		if err := mergedlibrary.CollectionTypeValidator(v); err != nil {
			return &ValidationError{Name: "collection_type", err: fmt.Errorf(`ent: validator failed for field "MergedLibrary.collection_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DedupStrategy(); !ok {
		return &ValidationError{Name: "dedup_strategy", err: errors.New(`ent: missing required field "MergedLibrary.dedup_strategy"`)}
	}
	if v, ok := _c.mutation.DedupStrategy(); ok {
		if err := mergedlibrary.DedupStrategyValidator(v); err != nil {
			return &ValidationError{Name: "dedup_strategy", err: fmt.Errorf(`ent: validator failed for field "MergedLibrary.dedup_strategy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsGlobal(); !ok {
		return &ValidationError{Name: "is_global", err: errors.New(`ent: missing required field "MergedLibrary.is_global"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MergedLibrary.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MergedLibrary.updated_at"`)}
	}
	return nil
}

func (_c *MergedLibraryCreate) sqlSave(ctx context.Context) (*MergedLibrary, error) {
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

func (_c *MergedLibraryCreate) createSpec() (*MergedLibrary, *sqlgraph.CreateSpec) {
	var (
		_node = &MergedLibrary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mergedlibrary.Table, sqlgraph.NewFieldSpec(mergedlibrary.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VirtualID(); ok {
		_spec.SetField(mergedlibrary.FieldVirtualID, field.TypeString, value)
		_node.VirtualID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(mergedlibrary.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.CollectionType(); ok {
		_spec.SetField(mergedlibrary.FieldCollectionType, field.TypeEnum, value)
		_node.CollectionType = value
	}
	if value, ok := _c.mutation.DedupStrategy(); ok {
		_spec.SetField(mergedlibrary.FieldDedupStrategy, field.TypeEnum, value)
		_node.DedupStrategy = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(mergedlibrary.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.IsGlobal(); ok {
		_spec.SetField(mergedlibrary.FieldIsGlobal, field.TypeBool, value)
		_node.IsGlobal = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mergedlibrary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mergedlibrary.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SourcesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mergedlibrary.SourcesTable,
			Columns: []string{mergedlibrary.SourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mergedlibrarysource.FieldID, field.TypeUUID),
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
//	client.MergedLibrary.Create().
//		SetVirtualID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MergedLibraryUpsert) {
//			SetVirtualID(v+v).
//		}).
//		Exec(ctx)
func (_c *MergedLibraryCreate) OnConflict(opts ...sql.ConflictOption) *MergedLibraryUpsertOne {
	_c.conflict = opts
	return &MergedLibraryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MergedLibrary.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MergedLibraryCreate) OnConflictColumns(columns ...string) *MergedLibraryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MergedLibraryUpsertOne{
		create: _c,
	}
}

type (
	// MergedLibraryUpsertOne is the builder for "upsert"-ing
	//  one MergedLibrary node.
	MergedLibraryUpsertOne struct {
		create *MergedLibraryCreate
	}

	// MergedLibraryUpsert is the "OnConflict" setter.
	MergedLibraryUpsert struct {
		*sql.UpdateSet
	}
)

// SetVirtualID sets the "virtual_id" field.
func (u *MergedLibraryUpsert) SetVirtualID(v string) *MergedLibraryUpsert {
	u.Set(mergedlibrary.FieldVirtualID, v)
	return u
}

// UpdateVirtualID sets the "virtual_id" field to the value that was provided on create.
func (u *MergedLibraryUpsert) UpdateVirtualID() *MergedLibraryUpsert {
	u.SetExcluded(mergedlibrary.FieldVirtualID)
	return u
}

// SetName sets the "name" field.
func (u *MergedLibraryUpsert) SetName(v string) *MergedLibraryUpsert {
	u.Set(mergedlibrary.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MergedLibraryUpsert) UpdateName() *MergedLibraryUpsert {
	u.SetExcluded(mergedlibrary.FieldName)
	return u
}

// SetCollectionType sets the "collection_type" field.
func (u *MergedLibraryUpsert) SetCollectionType(v mergedlibrary.CollectionType) *MergedLibraryUpsert {
	u.Set(mergedlibrary.FieldCollectionType, v)
	return u
}

// UpdateCollectionType sets the "collection_type" field to the value that was provided on create.
func (u *MergedLibraryUpsert) UpdateCollectionType() *MergedLibraryUpsert {
	u.SetExcluded(mergedlibrary.FieldCollectionType)
	return u
}

// SetDedupStrategy sets the "dedup_strategy" field.
func (u *MergedLibraryUpsert) SetDedupStrategy(v mergedlibrary.DedupStrategy) *MergedLibraryUpsert {
	u.Set(mergedlibrary.FieldDedupStrategy, v)
	return u
}

// UpdateDedupStrategy sets the "dedup_strategy" field to the value that was provided on create.
func (u *MergedLibraryUpsert) UpdateDedupStrategy() *MergedLibraryUpsert {
	u.SetExcluded(mergedlibrary.FieldDedupStrategy)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *MergedLibraryUpsert) SetCreatedBy(v string) *MergedLibraryUpsert {
	u.Set(mergedlibrary.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *MergedLibraryUpsert) UpdateCreatedBy() *MergedLibraryUpsert {
	u.SetExcluded(mergedlibrary.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *MergedLibraryUpsert) ClearCreatedBy() *MergedLibraryUpsert {
	u.SetNull(mergedlibrary.FieldCreatedBy)
	return u
}

// SetIsGlobal sets the "is_global" field.
func (u *MergedLibraryUpsert) SetIsGlobal(v bool) *MergedLibraryUpsert {
	u.Set(mergedlibrary.FieldIsGlobal, v)
	return u
}

// UpdateIsGlobal sets the "is_global" field to the value that was provided on create.
func (u *MergedLibraryUpsert) UpdateIsGlobal() *MergedLibraryUpsert {
	u.SetExcluded(mergedlibrary.FieldIsGlobal)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MergedLibraryUpsert) SetUpdatedAt(v time.Time) *MergedLibraryUpsert {
	u.Set(mergedlibrary.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MergedLibraryUpsert) UpdateUpdatedAt() *MergedLibraryUpsert {
	u.SetExcluded(mergedlibrary.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MergedLibrary.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mergedlibrary.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MergedLibraryUpsertOne) UpdateNewValues() *MergedLibraryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mergedlibrary.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mergedlibrary.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MergedLibrary.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MergedLibraryUpsertOne) Ignore() *MergedLibraryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MergedLibraryUpsertOne) DoNothing() *MergedLibraryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MergedLibraryCreate.OnConflict
// documentation for more info.
func (u *MergedLibraryUpsertOne) Update(set func(*MergedLibraryUpsert)) *MergedLibraryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MergedLibraryUpsert{UpdateSet: update})
	}))
	return u
}

// SetVirtualID sets the "virtual_id" field.
func (u *MergedLibraryUpsertOne) SetVirtualID(v string) *MergedLibraryUpsertOne {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.SetVirtualID(v)
	})
}

// UpdateVirtualID sets the "virtual_id" field to the value that was provided on create.
func (u *MergedLibraryUpsertOne) UpdateVirtualID() *MergedLibraryUpsertOne {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.UpdateVirtualID()
	})
}

// SetName sets the "name" field.
func (u *MergedLibraryUpsertOne) SetName(v string) *MergedLibraryUpsertOne {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MergedLibraryUpsertOne) UpdateName() *MergedLibraryUpsertOne {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.UpdateName()
	})
}

// SetCollectionType sets the "collection_type" field.
func (u *MergedLibraryUpsertOne) SetCollectionType(v mergedlibrary.CollectionType) *MergedLibraryUpsertOne {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.SetCollectionType(v)
	})
}

// UpdateCollectionType sets the "collection_type" field to the value that was provided on create.
func (u *MergedLibraryUpsertOne) UpdateCollectionType() *MergedLibraryUpsertOne {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.UpdateCollectionType()
	})
}

// SetDedupStrategy sets the "dedup_strategy" field.
func (u *MergedLibraryUpsertOne) SetDedupStrategy(v mergedlibrary.DedupStrategy) *MergedLibraryUpsertOne {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.SetDedupStrategy(v)
	})
}

// UpdateDedupStrategy sets the "dedup_strategy" field to the value that was provided on create.
func (u *MergedLibraryUpsertOne) UpdateDedupStrategy() *MergedLibraryUpsertOne {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.UpdateDedupStrategy()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *MergedLibraryUpsertOne) SetCreatedBy(v string) *MergedLibraryUpsertOne {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *MergedLibraryUpsertOne) UpdateCreatedBy() *MergedLibraryUpsertOne {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *MergedLibraryUpsertOne) ClearCreatedBy() *MergedLibraryUpsertOne {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.ClearCreatedBy()
	})
}

// SetIsGlobal sets the "is_global" field.
func (u *MergedLibraryUpsertOne) SetIsGlobal(v bool) *MergedLibraryUpsertOne {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.SetIsGlobal(v)
	})
}

// UpdateIsGlobal sets the "is_global" field to the value that was provided on create.
func (u *MergedLibraryUpsertOne) UpdateIsGlobal() *MergedLibraryUpsertOne {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.UpdateIsGlobal()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MergedLibraryUpsertOne) SetUpdatedAt(v time.Time) *MergedLibraryUpsertOne {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MergedLibraryUpsertOne) UpdateUpdatedAt() *MergedLibraryUpsertOne {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MergedLibraryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MergedLibraryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MergedLibraryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MergedLibraryUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MergedLibraryUpsertOne.ID is not supported by MySQL driver. Use MergedLibraryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MergedLibraryUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MergedLibraryCreateBulk is the builder for creating many MergedLibrary entities in bulk.
type MergedLibraryCreateBulk struct {
	config
	err      error
	builders []*MergedLibraryCreate
	conflict []sql.ConflictOption
}

// Save creates the MergedLibrary entities in the database.
func (_c *MergedLibraryCreateBulk) Save(ctx context.Context) ([]*MergedLibrary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MergedLibrary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MergedLibraryMutation)
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
func (_c *MergedLibraryCreateBulk) SaveX(ctx context.Context) []*MergedLibrary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MergedLibraryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MergedLibraryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MergedLibrary.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MergedLibraryUpsert) {
//			SetVirtualID(v+v).
//		}).
//		Exec(ctx)
func (_c *MergedLibraryCreateBulk) OnConflict(opts ...sql.ConflictOption) *MergedLibraryUpsertBulk {
	_c.conflict = opts
	return &MergedLibraryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MergedLibrary.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MergedLibraryCreateBulk) OnConflictColumns(columns ...string) *MergedLibraryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MergedLibraryUpsertBulk{
		create: _c,
	}
}

// MergedLibraryUpsertBulk is the builder for "upsert"-ing
// a bulk of MergedLibrary nodes.
type MergedLibraryUpsertBulk struct {
	create *MergedLibraryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MergedLibrary.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mergedlibrary.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MergedLibraryUpsertBulk) UpdateNewValues() *MergedLibraryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mergedlibrary.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mergedlibrary.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MergedLibrary.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MergedLibraryUpsertBulk) Ignore() *MergedLibraryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MergedLibraryUpsertBulk) DoNothing() *MergedLibraryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MergedLibraryCreateBulk.OnConflict
// documentation for more info.
func (u *MergedLibraryUpsertBulk) Update(set func(*MergedLibraryUpsert)) *MergedLibraryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MergedLibraryUpsert{UpdateSet: update})
	}))
	return u
}

// SetVirtualID sets the "virtual_id" field.
func (u *MergedLibraryUpsertBulk) SetVirtualID(v string) *MergedLibraryUpsertBulk {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.SetVirtualID(v)
	})
}

// UpdateVirtualID sets the "virtual_id" field to the value that was provided on create.
func (u *MergedLibraryUpsertBulk) UpdateVirtualID() *MergedLibraryUpsertBulk {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.UpdateVirtualID()
	})
}

// SetName sets the "name" field.
func (u *MergedLibraryUpsertBulk) SetName(v string) *MergedLibraryUpsertBulk {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MergedLibraryUpsertBulk) UpdateName() *MergedLibraryUpsertBulk {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.UpdateName()
	})
}

// SetCollectionType sets the "collection_type" field.
func (u *MergedLibraryUpsertBulk) SetCollectionType(v mergedlibrary.CollectionType) *MergedLibraryUpsertBulk {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.SetCollectionType(v)
	})
}

// UpdateCollectionType sets the "collection_type" field to the value that was provided on create.
func (u *MergedLibraryUpsertBulk) UpdateCollectionType() *MergedLibraryUpsertBulk {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.UpdateCollectionType()
	})
}

// SetDedupStrategy sets the "dedup_strategy" field.
func (u *MergedLibraryUpsertBulk) SetDedupStrategy(v mergedlibrary.DedupStrategy) *MergedLibraryUpsertBulk {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.SetDedupStrategy(v)
	})
}

// UpdateDedupStrategy sets the "dedup_strategy" field to the value that was provided on create.
func (u *MergedLibraryUpsertBulk) UpdateDedupStrategy() *MergedLibraryUpsertBulk {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.UpdateDedupStrategy()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *MergedLibraryUpsertBulk) SetCreatedBy(v string) *MergedLibraryUpsertBulk {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *MergedLibraryUpsertBulk) UpdateCreatedBy() *MergedLibraryUpsertBulk {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *MergedLibraryUpsertBulk) ClearCreatedBy() *MergedLibraryUpsertBulk {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.ClearCreatedBy()
	})
}

// SetIsGlobal sets the "is_global" field.
func (u *MergedLibraryUpsertBulk) SetIsGlobal(v bool) *MergedLibraryUpsertBulk {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.SetIsGlobal(v)
	})
}

// UpdateIsGlobal sets the "is_global" field to the value that was provided on create.
func (u *MergedLibraryUpsertBulk) UpdateIsGlobal() *MergedLibraryUpsertBulk {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.UpdateIsGlobal()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MergedLibraryUpsertBulk) SetUpdatedAt(v time.Time) *MergedLibraryUpsertBulk {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MergedLibraryUpsertBulk) UpdateUpdatedAt() *MergedLibraryUpsertBulk {
	return u.Update(func(s *MergedLibraryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MergedLibraryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MergedLibraryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MergedLibraryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MergedLibraryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
