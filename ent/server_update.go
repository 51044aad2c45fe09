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
	"github.com/jellyswarrm/jellyswarrm/ent/healthcheck"
	"github.com/jellyswarrm/jellyswarrm/ent/mediamapping"
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrarysource"
	"github.com/jellyswarrm/jellyswarrm/ent/predicate"
	"github.com/jellyswarrm/jellyswarrm/ent/server"
	"github.com/jellyswarrm/jellyswarrm/ent/servermapping"
)

// ServerUpdate is the builder for updating Server entities.
type ServerUpdate struct {
	config
	hooks    []Hook
	mutation *ServerMutation
}

// Where appends a list predicates to the ServerUpdate builder.
func (_u *ServerUpdate) Where(ps ...predicate.Server) *ServerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ServerUpdate) SetName(v string) *ServerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableName(v *string) *ServerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ServerUpdate) SetURL(v string) *ServerUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableURL(v *string) *ServerUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ServerUpdate) SetPriority(v int) *ServerUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ServerUpdate) SetNillablePriority(v *int) *ServerUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ServerUpdate) AddPriority(v int) *ServerUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServerUpdate) SetUpdatedAt(v time.Time) *ServerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMappingIDs adds the "mappings" edge to the ServerMapping entity by IDs.
func (_u *ServerUpdate) AddMappingIDs(ids ...uuid.UUID) *ServerUpdate {
	_u.mutation.AddMappingIDs(ids...)
	return _u
}

// AddMappings adds the "mappings" edges to the ServerMapping entity.
func (_u *ServerUpdate) AddMappings(v ...*ServerMapping) *ServerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMappingIDs(ids...)
}

// AddMediaMappingIDs adds the "media_mappings" edge to the MediaMapping entity by IDs.
func (_u *ServerUpdate) AddMediaMappingIDs(ids ...uuid.UUID) *ServerUpdate {
	_u.mutation.AddMediaMappingIDs(ids...)
	return _u
}

// AddMediaMappings adds the "media_mappings" edges to the MediaMapping entity.
func (_u *ServerUpdate) AddMediaMappings(v ...*MediaMapping) *ServerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMediaMappingIDs(ids...)
}

// AddHealthCheckIDs adds the "health_checks" edge to the HealthCheck entity by IDs.
func (_u *ServerUpdate) AddHealthCheckIDs(ids ...uuid.UUID) *ServerUpdate {
	_u.mutation.AddHealthCheckIDs(ids...)
	return _u
}

// AddHealthChecks adds the "health_checks" edges to the HealthCheck entity.
func (_u *ServerUpdate) AddHealthChecks(v ...*HealthCheck) *ServerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHealthCheckIDs(ids...)
}

// AddLibrarySourceIDs adds the "library_sources" edge to the MergedLibrarySource entity by IDs.
func (_u *ServerUpdate) AddLibrarySourceIDs(ids ...uuid.UUID) *ServerUpdate {
	_u.mutation.AddLibrarySourceIDs(ids...)
	return _u
}

// AddLibrarySources adds the "library_sources" edges to the MergedLibrarySource entity.
func (_u *ServerUpdate) AddLibrarySources(v ...*MergedLibrarySource) *ServerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLibrarySourceIDs(ids...)
}

// Mutation returns the ServerMutation object of the builder.
func (_u *ServerUpdate) Mutation() *ServerMutation {
	return _u.mutation
}

// ClearMappings clears all "mappings" edges to the ServerMapping entity.
func (_u *ServerUpdate) ClearMappings() *ServerUpdate {
	_u.mutation.ClearMappings()
	return _u
}

// RemoveMappingIDs removes the "mappings" edge to ServerMapping entities by IDs.
func (_u *ServerUpdate) RemoveMappingIDs(ids ...uuid.UUID) *ServerUpdate {
	_u.mutation.RemoveMappingIDs(ids...)
	return _u
}

// RemoveMappings removes "mappings" edges to ServerMapping entities.
func (_u *ServerUpdate) RemoveMappings(v ...*ServerMapping) *ServerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMappingIDs(ids...)
}

// ClearMediaMappings clears all "media_mappings" edges to the MediaMapping entity.
func (_u *ServerUpdate) ClearMediaMappings() *ServerUpdate {
	_u.mutation.ClearMediaMappings()
	return _u
}

// RemoveMediaMappingIDs removes the "media_mappings" edge to MediaMapping entities by IDs.
func (_u *ServerUpdate) RemoveMediaMappingIDs(ids ...uuid.UUID) *ServerUpdate {
	_u.mutation.RemoveMediaMappingIDs(ids...)
	return _u
}

// RemoveMediaMappings removes "media_mappings" edges to MediaMapping entities.
func (_u *ServerUpdate) RemoveMediaMappings(v ...*MediaMapping) *ServerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMediaMappingIDs(ids...)
}

// ClearHealthChecks clears all "health_checks" edges to the HealthCheck entity.
func (_u *ServerUpdate) ClearHealthChecks() *ServerUpdate {
	_u.mutation.ClearHealthChecks()
	return _u
}

// RemoveHealthCheckIDs removes the "health_checks" edge to HealthCheck entities by IDs.
func (_u *ServerUpdate) RemoveHealthCheckIDs(ids ...uuid.UUID) *ServerUpdate {
	_u.mutation.RemoveHealthCheckIDs(ids...)
	return _u
}

// RemoveHealthChecks removes "health_checks" edges to HealthCheck entities.
func (_u *ServerUpdate) RemoveHealthChecks(v ...*HealthCheck) *ServerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHealthCheckIDs(ids...)
}

// ClearLibrarySources clears all "library_sources" edges to the MergedLibrarySource entity.
func (_u *ServerUpdate) ClearLibrarySources() *ServerUpdate {
	_u.mutation.ClearLibrarySources()
	return _u
}

// RemoveLibrarySourceIDs removes the "library_sources" edge to MergedLibrarySource entities by IDs.
func (_u *ServerUpdate) RemoveLibrarySourceIDs(ids ...uuid.UUID) *ServerUpdate {
	_u.mutation.RemoveLibrarySourceIDs(ids...)
	return _u
}

// RemoveLibrarySources removes "library_sources" edges to MergedLibrarySource entities.
func (_u *ServerUpdate) RemoveLibrarySources(v ...*MergedLibrarySource) *ServerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLibrarySourceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := server.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServerUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := server.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Server.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := server.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Server.url": %w`, err)}
		}
	}
	return nil
}

func (_u *ServerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(server.Table, server.Columns, sqlgraph.NewFieldSpec(server.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(server.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(server.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(server.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(server.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(server.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.MappingsTable,
			Columns: []string{server.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servermapping.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMappingsIDs(); len(nodes) > 0 && !_u.mutation.MappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.MappingsTable,
			Columns: []string{server.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servermapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MappingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.MappingsTable,
			Columns: []string{server.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servermapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MediaMappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.MediaMappingsTable,
			Columns: []string{server.MediaMappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediamapping.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMediaMappingsIDs(); len(nodes) > 0 && !_u.mutation.MediaMappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.MediaMappingsTable,
			Columns: []string{server.MediaMappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediamapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MediaMappingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.MediaMappingsTable,
			Columns: []string{server.MediaMappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediamapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HealthChecksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.HealthChecksTable,
			Columns: []string{server.HealthChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(healthcheck.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHealthChecksIDs(); len(nodes) > 0 && !_u.mutation.HealthChecksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.HealthChecksTable,
			Columns: []string{server.HealthChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(healthcheck.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HealthChecksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.HealthChecksTable,
			Columns: []string{server.HealthChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(healthcheck.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LibrarySourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.LibrarySourcesTable,
			Columns: []string{server.LibrarySourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mergedlibrarysource.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLibrarySourcesIDs(); len(nodes) > 0 && !_u.mutation.LibrarySourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.LibrarySourcesTable,
			Columns: []string{server.LibrarySourcesColumn},
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
	if nodes := _u.mutation.LibrarySourcesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.LibrarySourcesTable,
			Columns: []string{server.LibrarySourcesColumn},
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
			err = &NotFoundError{server.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServerUpdateOne is the builder for updating a single Server entity.
type ServerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServerMutation
}

// SetName sets the "name" field.
func (_u *ServerUpdateOne) SetName(v string) *ServerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableName(v *string) *ServerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ServerUpdateOne) SetURL(v string) *ServerUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableURL(v *string) *ServerUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ServerUpdateOne) SetPriority(v int) *ServerUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillablePriority(v *int) *ServerUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ServerUpdateOne) AddPriority(v int) *ServerUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServerUpdateOne) SetUpdatedAt(v time.Time) *ServerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMappingIDs adds the "mappings" edge to the ServerMapping entity by IDs.
func (_u *ServerUpdateOne) AddMappingIDs(ids ...uuid.UUID) *ServerUpdateOne {
	_u.mutation.AddMappingIDs(ids...)
	return _u
}

// AddMappings adds the "mappings" edges to the ServerMapping entity.
func (_u *ServerUpdateOne) AddMappings(v ...*ServerMapping) *ServerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMappingIDs(ids...)
}

// AddMediaMappingIDs adds the "media_mappings" edge to the MediaMapping entity by IDs.
func (_u *ServerUpdateOne) AddMediaMappingIDs(ids ...uuid.UUID) *ServerUpdateOne {
	_u.mutation.AddMediaMappingIDs(ids...)
	return _u
}

// AddMediaMappings adds the "media_mappings" edges to the MediaMapping entity.
func (_u *ServerUpdateOne) AddMediaMappings(v ...*MediaMapping) *ServerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMediaMappingIDs(ids...)
}

// AddHealthCheckIDs adds the "health_checks" edge to the HealthCheck entity by IDs.
func (_u *ServerUpdateOne) AddHealthCheckIDs(ids ...uuid.UUID) *ServerUpdateOne {
	_u.mutation.AddHealthCheckIDs(ids...)
	return _u
}

// AddHealthChecks adds the "health_checks" edges to the HealthCheck entity.
func (_u *ServerUpdateOne) AddHealthChecks(v ...*HealthCheck) *ServerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHealthCheckIDs(ids...)
}

// AddLibrarySourceIDs adds the "library_sources" edge to the MergedLibrarySource entity by IDs.
func (_u *ServerUpdateOne) AddLibrarySourceIDs(ids ...uuid.UUID) *ServerUpdateOne {
	_u.mutation.AddLibrarySourceIDs(ids...)
	return _u
}

// AddLibrarySources adds the "library_sources" edges to the MergedLibrarySource entity.
func (_u *ServerUpdateOne) AddLibrarySources(v ...*MergedLibrarySource) *ServerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLibrarySourceIDs(ids...)
}

// Mutation returns the ServerMutation object of the builder.
func (_u *ServerUpdateOne) Mutation() *ServerMutation {
	return _u.mutation
}

// ClearMappings clears all "mappings" edges to the ServerMapping entity.
func (_u *ServerUpdateOne) ClearMappings() *ServerUpdateOne {
	_u.mutation.ClearMappings()
	return _u
}

// RemoveMappingIDs removes the "mappings" edge to ServerMapping entities by IDs.
func (_u *ServerUpdateOne) RemoveMappingIDs(ids ...uuid.UUID) *ServerUpdateOne {
	_u.mutation.RemoveMappingIDs(ids...)
	return _u
}

// RemoveMappings removes "mappings" edges to ServerMapping entities.
func (_u *ServerUpdateOne) RemoveMappings(v ...*ServerMapping) *ServerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMappingIDs(ids...)
}

// ClearMediaMappings clears all "media_mappings" edges to the MediaMapping entity.
func (_u *ServerUpdateOne) ClearMediaMappings() *ServerUpdateOne {
	_u.mutation.ClearMediaMappings()
	return _u
}

// RemoveMediaMappingIDs removes the "media_mappings" edge to MediaMapping entities by IDs.
func (_u *ServerUpdateOne) RemoveMediaMappingIDs(ids ...uuid.UUID) *ServerUpdateOne {
	_u.mutation.RemoveMediaMappingIDs(ids...)
	return _u
}

// RemoveMediaMappings removes "media_mappings" edges to MediaMapping entities.
func (_u *ServerUpdateOne) RemoveMediaMappings(v ...*MediaMapping) *ServerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMediaMappingIDs(ids...)
}

// ClearHealthChecks clears all "health_checks" edges to the HealthCheck entity.
func (_u *ServerUpdateOne) ClearHealthChecks() *ServerUpdateOne {
	_u.mutation.ClearHealthChecks()
	return _u
}

// RemoveHealthCheckIDs removes the "health_checks" edge to HealthCheck entities by IDs.
func (_u *ServerUpdateOne) RemoveHealthCheckIDs(ids ...uuid.UUID) *ServerUpdateOne {
	_u.mutation.RemoveHealthCheckIDs(ids...)
	return _u
}

// RemoveHealthChecks removes "health_checks" edges to HealthCheck entities.
func (_u *ServerUpdateOne) RemoveHealthChecks(v ...*HealthCheck) *ServerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHealthCheckIDs(ids...)
}

// ClearLibrarySources clears all "library_sources" edges to the MergedLibrarySource entity.
func (_u *ServerUpdateOne) ClearLibrarySources() *ServerUpdateOne {
	_u.mutation.ClearLibrarySources()
	return _u
}

// RemoveLibrarySourceIDs removes the "library_sources" edge to MergedLibrarySource entities by IDs.
func (_u *ServerUpdateOne) RemoveLibrarySourceIDs(ids ...uuid.UUID) *ServerUpdateOne {
	_u.mutation.RemoveLibrarySourceIDs(ids...)
	return _u
}

// RemoveLibrarySources removes "library_sources" edges to MergedLibrarySource entities.
func (_u *ServerUpdateOne) RemoveLibrarySources(v ...*MergedLibrarySource) *ServerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLibrarySourceIDs(ids...)
}

// Where appends a list predicates to the ServerUpdate builder.
func (_u *ServerUpdateOne) Where(ps ...predicate.Server) *ServerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServerUpdateOne) Select(field string, fields ...string) *ServerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Server entity.
func (_u *ServerUpdateOne) Save(ctx context.Context) (*Server, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServerUpdateOne) SaveX(ctx context.Context) *Server {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := server.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServerUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := server.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Server.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := server.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Server.url": %w`, err)}
		}
	}
	return nil
}

func (_u *ServerUpdateOne) sqlSave(ctx context.Context) (_node *Server, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(server.Table, server.Columns, sqlgraph.NewFieldSpec(server.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Server.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, server.FieldID)
		for _, f := range fields {
			if !server.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != server.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(server.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(server.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(server.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(server.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(server.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.MappingsTable,
			Columns: []string{server.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servermapping.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMappingsIDs(); len(nodes) > 0 && !_u.mutation.MappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.MappingsTable,
			Columns: []string{server.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servermapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MappingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.MappingsTable,
			Columns: []string{server.MappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(servermapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MediaMappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.MediaMappingsTable,
			Columns: []string{server.MediaMappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediamapping.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMediaMappingsIDs(); len(nodes) > 0 && !_u.mutation.MediaMappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.MediaMappingsTable,
			Columns: []string{server.MediaMappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediamapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MediaMappingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.MediaMappingsTable,
			Columns: []string{server.MediaMappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediamapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HealthChecksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.HealthChecksTable,
			Columns: []string{server.HealthChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(healthcheck.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHealthChecksIDs(); len(nodes) > 0 && !_u.mutation.HealthChecksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.HealthChecksTable,
			Columns: []string{server.HealthChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(healthcheck.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HealthChecksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.HealthChecksTable,
			Columns: []string{server.HealthChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(healthcheck.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LibrarySourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.LibrarySourcesTable,
			Columns: []string{server.LibrarySourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mergedlibrarysource.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLibrarySourcesIDs(); len(nodes) > 0 && !_u.mutation.LibrarySourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.LibrarySourcesTable,
			Columns: []string{server.LibrarySourcesColumn},
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
	if nodes := _u.mutation.LibrarySourcesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   server.LibrarySourcesTable,
			Columns: []string{server.LibrarySourcesColumn},
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
	_node = &Server{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{server.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
