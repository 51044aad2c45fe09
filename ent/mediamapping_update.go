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
	"github.com/jellyswarrm/jellyswarrm/ent/mediamapping"
	"github.com/jellyswarrm/jellyswarrm/ent/predicate"
	"github.com/jellyswarrm/jellyswarrm/ent/server"
)

// MediaMappingUpdate is the builder for updating MediaMapping entities.
type MediaMappingUpdate struct {
	config
	hooks    []Hook
	mutation *MediaMappingMutation
}

// Where appends a list predicates to the MediaMappingUpdate builder.
func (_u *MediaMappingUpdate) Where(ps ...predicate.MediaMapping) *MediaMappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVirtualID sets the "virtual_id" field.
func (_u *MediaMappingUpdate) SetVirtualID(v string) *MediaMappingUpdate {
	_u.mutation.SetVirtualID(v)
	return _u
}

// SetNillableVirtualID sets the "virtual_id" field if the given value is not nil.
func (_u *MediaMappingUpdate) SetNillableVirtualID(v *string) *MediaMappingUpdate {
	if v != nil {
		_u.SetVirtualID(*v)
	}
	return _u
}

// SetOriginalID sets the "original_id" field.
func (_u *MediaMappingUpdate) SetOriginalID(v string) *MediaMappingUpdate {
	_u.mutation.SetOriginalID(v)
	return _u
}

// SetNillableOriginalID sets the "original_id" field if the given value is not nil.
func (_u *MediaMappingUpdate) SetNillableOriginalID(v *string) *MediaMappingUpdate {
	if v != nil {
		_u.SetOriginalID(*v)
	}
	return _u
}

// SetServerID sets the "server" edge to the Server entity by ID.
func (_u *MediaMappingUpdate) SetServerID(id uuid.UUID) *MediaMappingUpdate {
	_u.mutation.SetServerID(id)
	return _u
}

// SetServer sets the "server" edge to the Server entity.
func (_u *MediaMappingUpdate) SetServer(v *Server) *MediaMappingUpdate {
	return _u.SetServerID(v.ID)
}

// Mutation returns the MediaMappingMutation object of the builder.
func (_u *MediaMappingUpdate) Mutation() *MediaMappingMutation {
	return _u.mutation
}

// ClearServer clears the "server" edge to the Server entity.
func (_u *MediaMappingUpdate) ClearServer() *MediaMappingUpdate {
	_u.mutation.ClearServer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MediaMappingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MediaMappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MediaMappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MediaMappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MediaMappingUpdate) check() error {
	if v, ok := _u.mutation.VirtualID(); ok {
		if err := mediamapping.VirtualIDValidator(v); err != nil {
			return &ValidationError{Name: "virtual_id", err: fmt.Errorf(`ent: validator failed for field "MediaMapping.virtual_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalID(); ok {
		if err := mediamapping.OriginalIDValidator(v); err != nil {
			return &ValidationError{Name: "original_id", err: fmt.Errorf(`ent: validator failed for field "MediaMapping.original_id": %w`, err)}
		}
	}
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MediaMapping.server"`)
	}
	return nil
}

func (_u *MediaMappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mediamapping.Table, mediamapping.Columns, sqlgraph.NewFieldSpec(mediamapping.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VirtualID(); ok {
		_spec.SetField(mediamapping.FieldVirtualID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalID(); ok {
		_spec.SetField(mediamapping.FieldOriginalID, field.TypeString, value)
	}
	if _u.mutation.ServerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mediamapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MediaMappingUpdateOne is the builder for updating a single MediaMapping entity.
type MediaMappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MediaMappingMutation
}

// SetVirtualID sets the "virtual_id" field.
func (_u *MediaMappingUpdateOne) SetVirtualID(v string) *MediaMappingUpdateOne {
	_u.mutation.SetVirtualID(v)
	return _u
}

// SetNillableVirtualID sets the "virtual_id" field if the given value is not nil.
func (_u *MediaMappingUpdateOne) SetNillableVirtualID(v *string) *MediaMappingUpdateOne {
	if v != nil {
		_u.SetVirtualID(*v)
	}
	return _u
}

// SetOriginalID sets the "original_id" field.
func (_u *MediaMappingUpdateOne) SetOriginalID(v string) *MediaMappingUpdateOne {
	_u.mutation.SetOriginalID(v)
	return _u
}

// SetNillableOriginalID sets the "original_id" field if the given value is not nil.
func (_u *MediaMappingUpdateOne) SetNillableOriginalID(v *string) *MediaMappingUpdateOne {
	if v != nil {
		_u.SetOriginalID(*v)
	}
	return _u
}

// SetServerID sets the "server" edge to the Server entity by ID.
func (_u *MediaMappingUpdateOne) SetServerID(id uuid.UUID) *MediaMappingUpdateOne {
	_u.mutation.SetServerID(id)
	return _u
}

// SetServer sets the "server" edge to the Server entity.
func (_u *MediaMappingUpdateOne) SetServer(v *Server) *MediaMappingUpdateOne {
	return _u.SetServerID(v.ID)
}

// Mutation returns the MediaMappingMutation object of the builder.
func (_u *MediaMappingUpdateOne) Mutation() *MediaMappingMutation {
	return _u.mutation
}

// ClearServer clears the "server" edge to the Server entity.
func (_u *MediaMappingUpdateOne) ClearServer() *MediaMappingUpdateOne {
	_u.mutation.ClearServer()
	return _u
}

// Where appends a list predicates to the MediaMappingUpdate builder.
func (_u *MediaMappingUpdateOne) Where(ps ...predicate.MediaMapping) *MediaMappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MediaMappingUpdateOne) Select(field string, fields ...string) *MediaMappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MediaMapping entity.
func (_u *MediaMappingUpdateOne) Save(ctx context.Context) (*MediaMapping, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MediaMappingUpdateOne) SaveX(ctx context.Context) *MediaMapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MediaMappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MediaMappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MediaMappingUpdateOne) check() error {
	if v, ok := _u.mutation.VirtualID(); ok {
		if err := mediamapping.VirtualIDValidator(v); err != nil {
			return &ValidationError{Name: "virtual_id", err: fmt.Errorf(`ent: validator failed for field "MediaMapping.virtual_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalID(); ok {
		if err := mediamapping.OriginalIDValidator(v); err != nil {
			return &ValidationError{Name: "original_id", err: fmt.Errorf(`ent: validator failed for field "MediaMapping.original_id": %w`, err)}
		}
	}
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MediaMapping.server"`)
	}
	return nil
}

func (_u *MediaMappingUpdateOne) sqlSave(ctx context.Context) (_node *MediaMapping, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mediamapping.Table, mediamapping.Columns, sqlgraph.NewFieldSpec(mediamapping.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MediaMapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mediamapping.FieldID)
		for _, f := range fields {
			if !mediamapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mediamapping.FieldID {
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
		_spec.SetField(mediamapping.FieldVirtualID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalID(); ok {
		_spec.SetField(mediamapping.FieldOriginalID, field.TypeString, value)
	}
	if _u.mutation.ServerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MediaMapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mediamapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
