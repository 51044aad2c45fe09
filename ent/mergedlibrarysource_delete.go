// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrarysource"
	"github.com/jellyswarrm/jellyswarrm/ent/predicate"
)

// MergedLibrarySourceDelete is the builder for deleting a MergedLibrarySource entity.
type MergedLibrarySourceDelete struct {
	config
	hooks    []Hook
	mutation *MergedLibrarySourceMutation
}

// Where appends a list predicates to the MergedLibrarySourceDelete builder.
func (_d *MergedLibrarySourceDelete) Where(ps ...predicate.MergedLibrarySource) *MergedLibrarySourceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MergedLibrarySourceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MergedLibrarySourceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MergedLibrarySourceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(mergedlibrarysource.Table, sqlgraph.NewFieldSpec(mergedlibrarysource.FieldID, field.TypeUUID))
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

// MergedLibrarySourceDeleteOne is the builder for deleting a single MergedLibrarySource entity.
type MergedLibrarySourceDeleteOne struct {
	_d *MergedLibrarySourceDelete
}

// Where appends a list predicates to the MergedLibrarySourceDelete builder.
func (_d *MergedLibrarySourceDeleteOne) Where(ps ...predicate.MergedLibrarySource) *MergedLibrarySourceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MergedLibrarySourceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{mergedlibrarysource.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MergedLibrarySourceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
