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
	"github.com/jellyswarrm/jellyswarrm/ent/healthcheck"
	"github.com/jellyswarrm/jellyswarrm/ent/predicate"
	"github.com/jellyswarrm/jellyswarrm/ent/server"
)

// HealthCheckUpdate is the builder for updating HealthCheck entities.
type HealthCheckUpdate struct {
	config
	hooks    []Hook
	mutation *HealthCheckMutation
}

// Where appends a list predicates to the HealthCheckUpdate builder.
func (_u *HealthCheckUpdate) Where(ps ...predicate.HealthCheck) *HealthCheckUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHealthy sets the "healthy" field.
func (_u *HealthCheckUpdate) SetHealthy(v bool) *HealthCheckUpdate {
	_u.mutation.SetHealthy(v)
	return _u
}

// SetNillableHealthy sets the "healthy" field if the given value is not nil.
func (_u *HealthCheckUpdate) SetNillableHealthy(v *bool) *HealthCheckUpdate {
	if v != nil {
		_u.SetHealthy(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *HealthCheckUpdate) SetResponseTimeMs(v int64) *HealthCheckUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *HealthCheckUpdate) SetNillableResponseTimeMs(v *int64) *HealthCheckUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *HealthCheckUpdate) AddResponseTimeMs(v int64) *HealthCheckUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// ClearResponseTimeMs clears the value of the "response_time_ms" field.
func (_u *HealthCheckUpdate) ClearResponseTimeMs() *HealthCheckUpdate {
	_u.mutation.ClearResponseTimeMs()
	return _u
}

// SetVersion sets the "version" field.
func (_u *HealthCheckUpdate) SetVersion(v string) *HealthCheckUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *HealthCheckUpdate) SetNillableVersion(v *string) *HealthCheckUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// ClearVersion clears the value of the "version" field.
func (_u *HealthCheckUpdate) ClearVersion() *HealthCheckUpdate {
	_u.mutation.ClearVersion()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *HealthCheckUpdate) SetErrorMessage(v string) *HealthCheckUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *HealthCheckUpdate) SetNillableErrorMessage(v *string) *HealthCheckUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *HealthCheckUpdate) ClearErrorMessage() *HealthCheckUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetServerID sets the "server" edge to the Server entity by ID.
func (_u *HealthCheckUpdate) SetServerID(id uuid.UUID) *HealthCheckUpdate {
	_u.mutation.SetServerID(id)
	return _u
}

// SetServer sets the "server" edge to the Server entity.
func (_u *HealthCheckUpdate) SetServer(v *Server) *HealthCheckUpdate {
	return _u.SetServerID(v.ID)
}

// Mutation returns the HealthCheckMutation object of the builder.
func (_u *HealthCheckUpdate) Mutation() *HealthCheckMutation {
	return _u.mutation
}

// ClearServer clears the "server" edge to the Server entity.
func (_u *HealthCheckUpdate) ClearServer() *HealthCheckUpdate {
	_u.mutation.ClearServer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HealthCheckUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HealthCheckUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HealthCheckUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HealthCheckUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HealthCheckUpdate) check() error {
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HealthCheck.server"`)
	}
	return nil
}

func (_u *HealthCheckUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(healthcheck.Table, healthcheck.Columns, sqlgraph.NewFieldSpec(healthcheck.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Healthy(); ok {
		_spec.SetField(healthcheck.FieldHealthy, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(healthcheck.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(healthcheck.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.ResponseTimeMsCleared() {
		_spec.ClearField(healthcheck.FieldResponseTimeMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(healthcheck.FieldVersion, field.TypeString, value)
	}
	if _u.mutation.VersionCleared() {
		_spec.ClearField(healthcheck.FieldVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(healthcheck.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(healthcheck.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.ServerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   healthcheck.ServerTable,
			Columns: []string{healthcheck.ServerColumn},
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
			Table:   healthcheck.ServerTable,
			Columns: []string{healthcheck.ServerColumn},
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
			err = &NotFoundError{healthcheck.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HealthCheckUpdateOne is the builder for updating a single HealthCheck entity.
type HealthCheckUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HealthCheckMutation
}

// SetHealthy sets the "healthy" field.
func (_u *HealthCheckUpdateOne) SetHealthy(v bool) *HealthCheckUpdateOne {
	_u.mutation.SetHealthy(v)
	return _u
}

// SetNillableHealthy sets the "healthy" field if the given value is not nil.
func (_u *HealthCheckUpdateOne) SetNillableHealthy(v *bool) *HealthCheckUpdateOne {
	if v != nil {
		_u.SetHealthy(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *HealthCheckUpdateOne) SetResponseTimeMs(v int64) *HealthCheckUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *HealthCheckUpdateOne) SetNillableResponseTimeMs(v *int64) *HealthCheckUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *HealthCheckUpdateOne) AddResponseTimeMs(v int64) *HealthCheckUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// ClearResponseTimeMs clears the value of the "response_time_ms" field.
func (_u *HealthCheckUpdateOne) ClearResponseTimeMs() *HealthCheckUpdateOne {
	_u.mutation.ClearResponseTimeMs()
	return _u
}

// SetVersion sets the "version" field.
func (_u *HealthCheckUpdateOne) SetVersion(v string) *HealthCheckUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *HealthCheckUpdateOne) SetNillableVersion(v *string) *HealthCheckUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// ClearVersion clears the value of the "version" field.
func (_u *HealthCheckUpdateOne) ClearVersion() *HealthCheckUpdateOne {
	_u.mutation.ClearVersion()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *HealthCheckUpdateOne) SetErrorMessage(v string) *HealthCheckUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *HealthCheckUpdateOne) SetNillableErrorMessage(v *string) *HealthCheckUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *HealthCheckUpdateOne) ClearErrorMessage() *HealthCheckUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetServerID sets the "server" edge to the Server entity by ID.
func (_u *HealthCheckUpdateOne) SetServerID(id uuid.UUID) *HealthCheckUpdateOne {
	_u.mutation.SetServerID(id)
	return _u
}

// SetServer sets the "server" edge to the Server entity.
func (_u *HealthCheckUpdateOne) SetServer(v *Server) *HealthCheckUpdateOne {
	return _u.SetServerID(v.ID)
}

// Mutation returns the HealthCheckMutation object of the builder.
func (_u *HealthCheckUpdateOne) Mutation() *HealthCheckMutation {
	return _u.mutation
}

// ClearServer clears the "server" edge to the Server entity.
func (_u *HealthCheckUpdateOne) ClearServer() *HealthCheckUpdateOne {
	_u.mutation.ClearServer()
	return _u
}

// Where appends a list predicates to the HealthCheckUpdate builder.
func (_u *HealthCheckUpdateOne) Where(ps ...predicate.HealthCheck) *HealthCheckUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HealthCheckUpdateOne) Select(field string, fields ...string) *HealthCheckUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HealthCheck entity.
func (_u *HealthCheckUpdateOne) Save(ctx context.Context) (*HealthCheck, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HealthCheckUpdateOne) SaveX(ctx context.Context) *HealthCheck {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HealthCheckUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HealthCheckUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HealthCheckUpdateOne) check() error {
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HealthCheck.server"`)
	}
	return nil
}

func (_u *HealthCheckUpdateOne) sqlSave(ctx context.Context) (_node *HealthCheck, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(healthcheck.Table, healthcheck.Columns, sqlgraph.NewFieldSpec(healthcheck.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HealthCheck.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, healthcheck.FieldID)
		for _, f := range fields {
			if !healthcheck.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != healthcheck.FieldID {
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
	if value, ok := _u.mutation.Healthy(); ok {
		_spec.SetField(healthcheck.FieldHealthy, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(healthcheck.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(healthcheck.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.ResponseTimeMsCleared() {
		_spec.ClearField(healthcheck.FieldResponseTimeMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(healthcheck.FieldVersion, field.TypeString, value)
	}
	if _u.mutation.VersionCleared() {
		_spec.ClearField(healthcheck.FieldVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(healthcheck.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(healthcheck.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.ServerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   healthcheck.ServerTable,
			Columns: []string{healthcheck.ServerColumn},
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
			Table:   healthcheck.ServerTable,
			Columns: []string{healthcheck.ServerColumn},
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
	_node = &HealthCheck{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{healthcheck.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
