// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrary"
	"github.com/jellyswarrm/jellyswarrm/ent/predicate"
)

// MergedLibraryDelete is the builder for deleting a MergedLibrary entity.
type MergedLibraryDelete struct {
	config
	hooks    []Hook
	mutation *MergedLibraryMutation
}

// Where appends a list predicates to the MergedLibraryDelete builder.
func (_d *MergedLibraryDelete) Where(ps ...predicate.MergedLibrary) *MergedLibraryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MergedLibraryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MergedLibraryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MergedLibraryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(mergedlibrary.Table, sqlgraph.NewFieldSpec(mergedlibrary.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MergedLibraryDeleteOne is the builder for deleting a single MergedLibrary entity.
type MergedLibraryDeleteOne struct {
	_d *MergedLibraryDelete
}

// Where appends a list predicates to the MergedLibraryDelete builder.
func (_d *MergedLibraryDeleteOne) Where(ps ...predicate.MergedLibrary) *MergedLibraryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MergedLibraryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{mergedlibrary.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MergedLibraryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
