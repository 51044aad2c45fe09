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
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrary"
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrarysource"
	"github.com/jellyswarrm/jellyswarrm/ent/predicate"
)

// MergedLibraryUpdate is the builder for updating MergedLibrary entities.
type MergedLibraryUpdate struct {
	config
	hooks    []Hook
	mutation *MergedLibraryMutation
}

// Where appends a list predicates to the MergedLibraryUpdate builder.
func (_u *MergedLibraryUpdate) Where(ps ...predicate.MergedLibrary) *MergedLibraryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVirtualID sets the "virtual_id" field.
func (_u *MergedLibraryUpdate) SetVirtualID(v string) *MergedLibraryUpdate {
	_u.mutation.SetVirtualID(v)
	return _u
}

// SetNillableVirtualID sets the "virtual_id" field if the given value is not nil.
func (_u *MergedLibraryUpdate) SetNillableVirtualID(v *string) *MergedLibraryUpdate {
	if v != nil {
		_u.SetVirtualID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MergedLibraryUpdate) SetName(v string) *MergedLibraryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MergedLibraryUpdate) SetNillableName(v *string) *MergedLibraryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCollectionType sets the "collection_type" field.
func (_u *MergedLibraryUpdate) SetCollectionType(v mergedlibrary.CollectionType) *MergedLibraryUpdate {
	_u.mutation.SetCollectionType(v)
	return _u
}

// SetNillableCollectionType sets the "collection_type" field if the given value is not nil.
func (_u *MergedLibraryUpdate) SetNillableCollectionType(v *mergedlibrary.CollectionType) *MergedLibraryUpdate {
	if v != nil {
		_u.SetCollectionType(*v)
	}
	return _u
}

// SetDedupStrategy sets the "dedup_strategy" field.
func (_u *MergedLibraryUpdate) SetDedupStrategy(v mergedlibrary.DedupStrategy) *MergedLibraryUpdate {
	_u.mutation.SetDedupStrategy(v)
	return _u
}

// SetNillableDedupStrategy sets the "dedup_strategy" field if the given value is not nil.
func (_u *MergedLibraryUpdate) SetNillableDedupStrategy(v *mergedlibrary.DedupStrategy) *MergedLibraryUpdate {
	if v != nil {
		_u.SetDedupStrategy(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *MergedLibraryUpdate) SetCreatedBy(v string) *MergedLibraryUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *MergedLibraryUpdate) SetNillableCreatedBy(v *string) *MergedLibraryUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *MergedLibraryUpdate) ClearCreatedBy() *MergedLibraryUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetIsGlobal sets the "is_global" field.
func (_u *MergedLibraryUpdate) SetIsGlobal(v bool) *MergedLibraryUpdate {
	_u.mutation.SetIsGlobal(v)
	return _u
}

// SetNillableIsGlobal sets the "is_global" field if the given value is not nil.
func (_u *MergedLibraryUpdate) SetNillableIsGlobal(v *bool) *MergedLibraryUpdate {
	if v != nil {
		_u.SetIsGlobal(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MergedLibraryUpdate) SetUpdatedAt(v time.Time) *MergedLibraryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSourceIDs adds the "sources" edge to the MergedLibrarySource entity by IDs.
func (_u *MergedLibraryUpdate) AddSourceIDs(ids ...uuid.UUID) *MergedLibraryUpdate {
	_u.mutation.AddSourceIDs(ids...)
	return _u
}

// AddSources adds the "sources" edges to the MergedLibrarySource entity.
func (_u *MergedLibraryUpdate) AddSources(v ...*MergedLibrarySource) *MergedLibraryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceIDs(ids...)
}

// Mutation returns the MergedLibraryMutation object of the builder.
func (_u *MergedLibraryUpdate) Mutation() *MergedLibraryMutation {
	return _u.mutation
}

// ClearSources clears all "sources" edges to the MergedLibrarySource entity.
func (_u *MergedLibraryUpdate) ClearSources() *MergedLibraryUpdate {
	_u.mutation.ClearSources()
	return _u
}

// RemoveSourceIDs removes the "sources" edge to MergedLibrarySource entities by IDs.
func (_u *MergedLibraryUpdate) RemoveSourceIDs(ids ...uuid.UUID) *MergedLibraryUpdate {
	_u.mutation.RemoveSourceIDs(ids...)
	return _u
}

// RemoveSources removes "sources" edges to MergedLibrarySource entities.
func (_u *MergedLibraryUpdate) RemoveSources(v ...*MergedLibrarySource) *MergedLibraryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MergedLibraryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MergedLibraryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MergedLibraryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MergedLibraryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MergedLibraryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mergedlibrary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MergedLibraryUpdate) check() error {
	if v, ok := _u.mutation.VirtualID(); ok {
		if err := mergedlibrary.VirtualIDValidator(v); err != nil {
			return &ValidationError{Name: "virtual_id", err: fmt.Errorf(`ent: validator failed for field "MergedLibrary.virtual_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := mergedlibrary.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MergedLibrary.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CollectionType(); ok {
		if err := mergedlibrary.CollectionTypeValidator(v); err != nil {
			return &ValidationError{Name: "collection_type", err: fmt.Errorf(`ent: validator failed for field "MergedLibrary.collection_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DedupStrategy(); ok {
		if err := mergedlibrary.DedupStrategyValidator(v); err != nil {
			return &ValidationError{Name: "dedup_strategy", err: fmt.Errorf(`ent: validator failed for field "MergedLibrary.dedup_strategy": %w`, err)}
		}
	}
	return nil
}

func (_u *MergedLibraryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mergedlibrary.Table, mergedlibrary.Columns, sqlgraph.NewFieldSpec(mergedlibrary.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VirtualID(); ok {
		_spec.SetField(mergedlibrary.FieldVirtualID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(mergedlibrary.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CollectionType(); ok {
		_spec.SetField(mergedlibrary.FieldCollectionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DedupStrategy(); ok {
		_spec.SetField(mergedlibrary.FieldDedupStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(mergedlibrary.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(mergedlibrary.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.IsGlobal(); ok {
		_spec.SetField(mergedlibrary.FieldIsGlobal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mergedlibrary.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourcesIDs(); len(nodes) > 0 && !_u.mutation.SourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourcesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mergedlibrary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MergedLibraryUpdateOne is the builder for updating a single MergedLibrary entity.
type MergedLibraryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MergedLibraryMutation
}

// SetVirtualID sets the "virtual_id" field.
func (_u *MergedLibraryUpdateOne) SetVirtualID(v string) *MergedLibraryUpdateOne {
	_u.mutation.SetVirtualID(v)
	return _u
}

// SetNillableVirtualID sets the "virtual_id" field if the given value is not nil.
func (_u *MergedLibraryUpdateOne) SetNillableVirtualID(v *string) *MergedLibraryUpdateOne {
	if v != nil {
		_u.SetVirtualID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MergedLibraryUpdateOne) SetName(v string) *MergedLibraryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MergedLibraryUpdateOne) SetNillableName(v *string) *MergedLibraryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCollectionType sets the "collection_type" field.
func (_u *MergedLibraryUpdateOne) SetCollectionType(v mergedlibrary.CollectionType) *MergedLibraryUpdateOne {
	_u.mutation.SetCollectionType(v)
	return _u
}

// SetNillableCollectionType sets the "collection_type" field if the given value is not nil.
func (_u *MergedLibraryUpdateOne) SetNillableCollectionType(v *mergedlibrary.CollectionType) *MergedLibraryUpdateOne {
	if v != nil {
		_u.SetCollectionType(*v)
	}
	return _u
}

// SetDedupStrategy sets the "dedup_strategy" field.
func (_u *MergedLibraryUpdateOne) SetDedupStrategy(v mergedlibrary.DedupStrategy) *MergedLibraryUpdateOne {
	_u.mutation.SetDedupStrategy(v)
	return _u
}

// SetNillableDedupStrategy sets the "dedup_strategy" field if the given value is not nil.
func (_u *MergedLibraryUpdateOne) SetNillableDedupStrategy(v *mergedlibrary.DedupStrategy) *MergedLibraryUpdateOne {
	if v != nil {
		_u.SetDedupStrategy(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *MergedLibraryUpdateOne) SetCreatedBy(v string) *MergedLibraryUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *MergedLibraryUpdateOne) SetNillableCreatedBy(v *string) *MergedLibraryUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *MergedLibraryUpdateOne) ClearCreatedBy() *MergedLibraryUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetIsGlobal sets the "is_global" field.
func (_u *MergedLibraryUpdateOne) SetIsGlobal(v bool) *MergedLibraryUpdateOne {
	_u.mutation.SetIsGlobal(v)
	return _u
}

// SetNillableIsGlobal sets the "is_global" field if the given value is not nil.
func (_u *MergedLibraryUpdateOne) SetNillableIsGlobal(v *bool) *MergedLibraryUpdateOne {
	if v != nil {
		_u.SetIsGlobal(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MergedLibraryUpdateOne) SetUpdatedAt(v time.Time) *MergedLibraryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSourceIDs adds the "sources" edge to the MergedLibrarySource entity by IDs.
func (_u *MergedLibraryUpdateOne) AddSourceIDs(ids ...uuid.UUID) *MergedLibraryUpdateOne {
	_u.mutation.AddSourceIDs(ids...)
	return _u
}

// AddSources adds the "sources" edges to the MergedLibrarySource entity.
func (_u *MergedLibraryUpdateOne) AddSources(v ...*MergedLibrarySource) *MergedLibraryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceIDs(ids...)
}

// Mutation returns the MergedLibraryMutation object of the builder.
func (_u *MergedLibraryUpdateOne) Mutation() *MergedLibraryMutation {
	return _u.mutation
}

// ClearSources clears all "sources" edges to the MergedLibrarySource entity.
func (_u *MergedLibraryUpdateOne) ClearSources() *MergedLibraryUpdateOne {
	_u.mutation.ClearSources()
	return _u
}

// RemoveSourceIDs removes the "sources" edge to MergedLibrarySource entities by IDs.
func (_u *MergedLibraryUpdateOne) RemoveSourceIDs(ids ...uuid.UUID) *MergedLibraryUpdateOne {
	_u.mutation.RemoveSourceIDs(ids...)
	return _u
}

// RemoveSources removes "sources" edges to MergedLibrarySource entities.
func (_u *MergedLibraryUpdateOne) RemoveSources(v ...*MergedLibrarySource) *MergedLibraryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceIDs(ids...)
}

// Where appends a list predicates to the MergedLibraryUpdate builder.
func (_u *MergedLibraryUpdateOne) Where(ps ...predicate.MergedLibrary) *MergedLibraryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MergedLibraryUpdateOne) Select(field string, fields ...string) *MergedLibraryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MergedLibrary entity.
func (_u *MergedLibraryUpdateOne) Save(ctx context.Context) (*MergedLibrary, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MergedLibraryUpdateOne) SaveX(ctx context.Context) *MergedLibrary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MergedLibraryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MergedLibraryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MergedLibraryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mergedlibrary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MergedLibraryUpdateOne) check() error {
	if v, ok := _u.mutation.VirtualID(); ok {
		if err := mergedlibrary.VirtualIDValidator(v); err != nil {
			return &ValidationError{Name: "virtual_id", err: fmt.Errorf(`ent: validator failed for field "MergedLibrary.virtual_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := mergedlibrary.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MergedLibrary.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CollectionType(); ok {
		if err := mergedlibrary.CollectionTypeValidator(v); err != nil {
			return &ValidationError{Name: "collection_type", err: fmt.Errorf(`ent: validator failed for field "MergedLibrary.collection_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DedupStrategy(); ok {
		if err := mergedlibrary.DedupStrategyValidator(v); err != nil {
			return &ValidationError{Name: "dedup_strategy", err: fmt.Errorf(`ent: validator failed for field "MergedLibrary.dedup_strategy": %w`, err)}
		}
	}
	return nil
}

func (_u *MergedLibraryUpdateOne) sqlSave(ctx context.Context) (_node *MergedLibrary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mergedlibrary.Table, mergedlibrary.Columns, sqlgraph.NewFieldSpec(mergedlibrary.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MergedLibrary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mergedlibrary.FieldID)
		for _, f := range fields {
			if !mergedlibrary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mergedlibrary.FieldID {
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
	if value, ok := _u.mutation.VirtualID(); ok {
		_spec.SetField(mergedlibrary.FieldVirtualID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(mergedlibrary.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CollectionType(); ok {
		_spec.SetField(mergedlibrary.FieldCollectionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DedupStrategy(); ok {
		_spec.SetField(mergedlibrary.FieldDedupStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(mergedlibrary.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(mergedlibrary.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.IsGlobal(); ok {
		_spec.SetField(mergedlibrary.FieldIsGlobal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mergedlibrary.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourcesIDs(); len(nodes) > 0 && !_u.mutation.SourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourcesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MergedLibrary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mergedlibrary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
