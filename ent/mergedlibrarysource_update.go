// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrary"
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrarysource"
	"github.com/jellyswarrm/jellyswarrm/ent/predicate"
	"github.com/jellyswarrm/jellyswarrm/ent/server"
)

// MergedLibrarySourceUpdate is the builder for updating MergedLibrarySource entities.
type MergedLibrarySourceUpdate struct {
	config
	hooks    []Hook
	mutation *MergedLibrarySourceMutation
}

// Where appends a list predicates to the MergedLibrarySourceUpdate builder.
func (_u *MergedLibrarySourceUpdate) Where(ps ...predicate.MergedLibrarySource) *MergedLibrarySourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLibraryID sets the "library_id" field.
func (_u *MergedLibrarySourceUpdate) SetLibraryID(v string) *MergedLibrarySourceUpdate {
	_u.mutation.SetLibraryID(v)
	return _u
}

// SetNillableLibraryID sets the "library_id" field if the given value is not nil.
func (_u *MergedLibrarySourceUpdate) SetNillableLibraryID(v *string) *MergedLibrarySourceUpdate {
	if v != nil {
		_u.SetLibraryID(*v)
	}
	return _u
}

// SetLibraryName sets the "library_name" field.
func (_u *MergedLibrarySourceUpdate) SetLibraryName(v string) *MergedLibrarySourceUpdate {
	_u.mutation.SetLibraryName(v)
	return _u
}

// SetNillableLibraryName sets the "library_name" field if the given value is not nil.
func (_u *MergedLibrarySourceUpdate) SetNillableLibraryName(v *string) *MergedLibrarySourceUpdate {
	if v != nil {
		_u.SetLibraryName(*v)
	}
	return _u
}

// ClearLibraryName clears the value of the "library_name" field.
func (_u *MergedLibrarySourceUpdate) ClearLibraryName() *MergedLibrarySourceUpdate {
	_u.mutation.ClearLibraryName()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *MergedLibrarySourceUpdate) SetPriority(v int) *MergedLibrarySourceUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *MergedLibrarySourceUpdate) SetNillablePriority(v *int) *MergedLibrarySourceUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *MergedLibrarySourceUpdate) AddPriority(v int) *MergedLibrarySourceUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetMergedLibraryID sets the "merged_library" edge to the MergedLibrary entity by ID.
func (_u *MergedLibrarySourceUpdate) SetMergedLibraryID(id uuid.UUID) *MergedLibrarySourceUpdate {
	_u.mutation.SetMergedLibraryID(id)
	return _u
}

// SetMergedLibrary sets the "merged_library" edge to the MergedLibrary entity.
func (_u *MergedLibrarySourceUpdate) SetMergedLibrary(v *MergedLibrary) *MergedLibrarySourceUpdate {
	return _u.SetMergedLibraryID(v.ID)
}

// SetServerID sets the "server" edge to the Server entity by ID.
func (_u *MergedLibrarySourceUpdate) SetServerID(id uuid.UUID) *MergedLibrarySourceUpdate {
	_u.mutation.SetServerID(id)
	return _u
}

// SetServer sets the "server" edge to the Server entity.
func (_u *MergedLibrarySourceUpdate) SetServer(v *Server) *MergedLibrarySourceUpdate {
	return _u.SetServerID(v.ID)
}

// Mutation returns the MergedLibrarySourceMutation object of the builder.
func (_u *MergedLibrarySourceUpdate) Mutation() *MergedLibrarySourceMutation {
	return _u.mutation
}

// ClearMergedLibrary clears the "merged_library" edge to the MergedLibrary entity.
func (_u *MergedLibrarySourceUpdate) ClearMergedLibrary() *MergedLibrarySourceUpdate {
	_u.mutation.ClearMergedLibrary()
	return _u
}

// ClearServer clears the "server" edge to the Server entity.
func (_u *MergedLibrarySourceUpdate) ClearServer() *MergedLibrarySourceUpdate {
	_u.mutation.ClearServer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MergedLibrarySourceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MergedLibrarySourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MergedLibrarySourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MergedLibrarySourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MergedLibrarySourceUpdate) check() error {
	if v, ok := _u.mutation.LibraryID(); ok {
		if err := mergedlibrarysource.LibraryIDValidator(v); err != nil {
			return &ValidationError{Name: "library_id", err: fmt.Errorf(`ent: validator failed for field "MergedLibrarySource.library_id": %w`, err)}
		}
	}
	if _u.mutation.MergedLibraryCleared() && len(_u.mutation.MergedLibraryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MergedLibrarySource.merged_library"`)
	}
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MergedLibrarySource.server"`)
	}
	return nil
}

func (_u *MergedLibrarySourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mergedlibrarysource.Table, mergedlibrarysource.Columns, sqlgraph.NewFieldSpec(mergedlibrarysource.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LibraryID(); ok {
		_spec.SetField(mergedlibrarysource.FieldLibraryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LibraryName(); ok {
		_spec.SetField(mergedlibrarysource.FieldLibraryName, field.TypeString, value)
	}
	if _u.mutation.LibraryNameCleared() {
		_spec.ClearField(mergedlibrarysource.FieldLibraryName, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(mergedlibrarysource.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(mergedlibrarysource.FieldPriority, field.TypeInt, value)
	}
	if _u.mutation.MergedLibraryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MergedLibraryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ServerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mergedlibrarysource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MergedLibrarySourceUpdateOne is the builder for updating a single MergedLibrarySource entity.
type MergedLibrarySourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MergedLibrarySourceMutation
}

// SetLibraryID sets the "library_id" field.
func (_u *MergedLibrarySourceUpdateOne) SetLibraryID(v string) *MergedLibrarySourceUpdateOne {
	_u.mutation.SetLibraryID(v)
	return _u
}

// SetNillableLibraryID sets the "library_id" field if the given value is not nil.
func (_u *MergedLibrarySourceUpdateOne) SetNillableLibraryID(v *string) *MergedLibrarySourceUpdateOne {
	if v != nil {
		_u.SetLibraryID(*v)
	}
	return _u
}

// SetLibraryName sets the "library_name" field.
func (_u *MergedLibrarySourceUpdateOne) SetLibraryName(v string) *MergedLibrarySourceUpdateOne {
	_u.mutation.SetLibraryName(v)
	return _u
}

// SetNillableLibraryName sets the "library_name" field if the given value is not nil.
func (_u *MergedLibrarySourceUpdateOne) SetNillableLibraryName(v *string) *MergedLibrarySourceUpdateOne {
	if v != nil {
		_u.SetLibraryName(*v)
	}
	return _u
}

// ClearLibraryName clears the value of the "library_name" field.
func (_u *MergedLibrarySourceUpdateOne) ClearLibraryName() *MergedLibrarySourceUpdateOne {
	_u.mutation.ClearLibraryName()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *MergedLibrarySourceUpdateOne) SetPriority(v int) *MergedLibrarySourceUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *MergedLibrarySourceUpdateOne) SetNillablePriority(v *int) *MergedLibrarySourceUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *MergedLibrarySourceUpdateOne) AddPriority(v int) *MergedLibrarySourceUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetMergedLibraryID sets the "merged_library" edge to the MergedLibrary entity by ID.
func (_u *MergedLibrarySourceUpdateOne) SetMergedLibraryID(id uuid.UUID) *MergedLibrarySourceUpdateOne {
	_u.mutation.SetMergedLibraryID(id)
	return _u
}

// SetMergedLibrary sets the "merged_library" edge to the MergedLibrary entity.
func (_u *MergedLibrarySourceUpdateOne) SetMergedLibrary(v *MergedLibrary) *MergedLibrarySourceUpdateOne {
	return _u.SetMergedLibraryID(v.ID)
}

// SetServerID sets the "server" edge to the Server entity by ID.
func (_u *MergedLibrarySourceUpdateOne) SetServerID(id uuid.UUID) *MergedLibrarySourceUpdateOne {
	_u.mutation.SetServerID(id)
	return _u
}

// SetServer sets the "server" edge to the Server entity.
func (_u *MergedLibrarySourceUpdateOne) SetServer(v *Server) *MergedLibrarySourceUpdateOne {
	return _u.SetServerID(v.ID)
}

// Mutation returns the MergedLibrarySourceMutation object of the builder.
func (_u *MergedLibrarySourceUpdateOne) Mutation() *MergedLibrarySourceMutation {
	return _u.mutation
}

// ClearMergedLibrary clears the "merged_library" edge to the MergedLibrary entity.
func (_u *MergedLibrarySourceUpdateOne) ClearMergedLibrary() *MergedLibrarySourceUpdateOne {
	_u.mutation.ClearMergedLibrary()
	return _u
}

// ClearServer clears the "server" edge to the Server entity.
func (_u *MergedLibrarySourceUpdateOne) ClearServer() *MergedLibrarySourceUpdateOne {
	_u.mutation.ClearServer()
	return _u
}

// Where appends a list predicates to the MergedLibrarySourceUpdate builder.
func (_u *MergedLibrarySourceUpdateOne) Where(ps ...predicate.MergedLibrarySource) *MergedLibrarySourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MergedLibrarySourceUpdateOne) Select(field string, fields ...string) *MergedLibrarySourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MergedLibrarySource entity.
func (_u *MergedLibrarySourceUpdateOne) Save(ctx context.Context) (*MergedLibrarySource, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MergedLibrarySourceUpdateOne) SaveX(ctx context.Context) *MergedLibrarySource {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MergedLibrarySourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MergedLibrarySourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MergedLibrarySourceUpdateOne) check() error {
	if v, ok := _u.mutation.LibraryID(); ok {
		if err := mergedlibrarysource.LibraryIDValidator(v); err != nil {
			return &ValidationError{Name: "library_id", err: fmt.Errorf(`ent: validator failed for field "MergedLibrarySource.library_id": %w`, err)}
		}
	}
	if _u.mutation.MergedLibraryCleared() && len(_u.mutation.MergedLibraryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MergedLibrarySource.merged_library"`)
	}
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MergedLibrarySource.server"`)
	}
	return nil
}

func (_u *MergedLibrarySourceUpdateOne) sqlSave(ctx context.Context) (_node *MergedLibrarySource, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mergedlibrarysource.Table, mergedlibrarysource.Columns, sqlgraph.NewFieldSpec(mergedlibrarysource.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MergedLibrarySource.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mergedlibrarysource.FieldID)
		for _, f := range fields {
			if !mergedlibrarysource.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mergedlibrarysource.FieldID {
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
	if value, ok := _u.mutation.LibraryID(); ok {
		_spec.SetField(mergedlibrarysource.FieldLibraryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LibraryName(); ok {
		_spec.SetField(mergedlibrarysource.FieldLibraryName, field.TypeString, value)
	}
	if _u.mutation.LibraryNameCleared() {
		_spec.ClearField(mergedlibrarysource.FieldLibraryName, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(mergedlibrarysource.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(mergedlibrarysource.FieldPriority, field.TypeInt, value)
	}
	if _u.mutation.MergedLibraryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MergedLibraryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ServerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MergedLibrarySource{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mergedlibrarysource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
