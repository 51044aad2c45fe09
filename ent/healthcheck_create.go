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
	"github.com/jellyswarrm/jellyswarrm/ent/healthcheck"
	"github.com/jellyswarrm/jellyswarrm/ent/server"
)

// HealthCheckCreate is the builder for creating a HealthCheck entity.
type HealthCheckCreate struct {
	config
	mutation *HealthCheckMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetHealthy sets the "healthy" field.
func (_c *HealthCheckCreate) SetHealthy(v bool) *HealthCheckCreate {
	_c.mutation.SetHealthy(v)
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *HealthCheckCreate) SetResponseTimeMs(v int64) *HealthCheckCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_c *HealthCheckCreate) SetNillableResponseTimeMs(v *int64) *HealthCheckCreate {
	if v != nil {
		_c.SetResponseTimeMs(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *HealthCheckCreate) SetVersion(v string) *HealthCheckCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *HealthCheckCreate) SetNillableVersion(v *string) *HealthCheckCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *HealthCheckCreate) SetErrorMessage(v string) *HealthCheckCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *HealthCheckCreate) SetNillableErrorMessage(v *string) *HealthCheckCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCheckedAt sets the "checked_at" field.
func (_c *HealthCheckCreate) SetCheckedAt(v time.Time) *HealthCheckCreate {
	_c.mutation.SetCheckedAt(v)
	return _c
}

// SetNillableCheckedAt sets the "checked_at" field if the given value is not nil.
func (_c *HealthCheckCreate) SetNillableCheckedAt(v *time.Time) *HealthCheckCreate {
	if v != nil {
		_c.SetCheckedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HealthCheckCreate) SetID(v uuid.UUID) *HealthCheckCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *HealthCheckCreate) SetNillableID(v *uuid.UUID) *HealthCheckCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetServerID sets the "server" edge to the Server entity by ID.
func (_c *HealthCheckCreate) SetServerID(id uuid.UUID) *HealthCheckCreate {
	_c.mutation.SetServerID(id)
	return _c
}

// SetServer sets the "server" edge to the Server entity.
func (_c *HealthCheckCreate) SetServer(v *Server) *HealthCheckCreate {
	return _c.SetServerID(v.ID)
}

// Mutation returns the HealthCheckMutation object of the builder.
func (_c *HealthCheckCreate) Mutation() *HealthCheckMutation {
	return _c.mutation
}

// Save creates the HealthCheck in the database.
func (_c *HealthCheckCreate) Save(ctx context.Context) (*HealthCheck, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HealthCheckCreate) SaveX(ctx context.Context) *HealthCheck {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HealthCheckCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HealthCheckCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HealthCheckCreate) defaults() {
	if _, ok := _c.mutation.CheckedAt(); !ok {
		v := healthcheck.DefaultCheckedAt()
		_c.mutation.SetCheckedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := healthcheck.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HealthCheckCreate) check() error {
	if _, ok := _c.mutation.Healthy(); !ok {
		return &ValidationError{Name: "healthy", err: errors.New(`ent: missing required field "HealthCheck.healthy"`)}
	}
	if _, ok := _c.mutation.CheckedAt(); !ok {
		return &ValidationError{Name: "checked_at", err: errors.New(`ent: missing required field "HealthCheck.checked_at"`)}
	}
	if len(_c.mutation.ServerIDs()) == 0 {
		return &ValidationError{Name: "server", err: errors.New(`ent: missing required edge "HealthCheck.server"`)}
	}
	return nil
}

func (_c *HealthCheckCreate) sqlSave(ctx context.Context) (*HealthCheck, error) {
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

func (_c *HealthCheckCreate) createSpec() (*HealthCheck, *sqlgraph.CreateSpec) {
	var (
		_node = &HealthCheck{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(healthcheck.Table, sqlgraph.NewFieldSpec(healthcheck.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Healthy(); ok {
		_spec.SetField(healthcheck.FieldHealthy, field.TypeBool, value)
		_node.Healthy = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(healthcheck.FieldResponseTimeMs, field.TypeInt64, value)
		_node.ResponseTimeMs = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(healthcheck.FieldVersion, field.TypeString, value)
		_node.Version = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(healthcheck.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CheckedAt(); ok {
		_spec.SetField(healthcheck.FieldCheckedAt, field.TypeTime, value)
		_node.CheckedAt = value
	}
	if nodes := _c.mutation.ServerIDs(); len(nodes) > 0 {
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
		_node.server_health_checks = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HealthCheck.Create().
//		SetHealthy(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HealthCheckUpsert) {
//			SetHealthy(v+v).
//		}).
//		Exec(ctx)
func (_c *HealthCheckCreate) OnConflict(opts ...sql.ConflictOption) *HealthCheckUpsertOne {
	_c.conflict = opts
	return &HealthCheckUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HealthCheck.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HealthCheckCreate) OnConflictColumns(columns ...string) *HealthCheckUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HealthCheckUpsertOne{
		create: _c,
	}
}

type (
	// HealthCheckUpsertOne is the builder for "upsert"-ing
	//  one HealthCheck node.
	HealthCheckUpsertOne struct {
		create *HealthCheckCreate
	}

	// HealthCheckUpsert is the "OnConflict" setter.
	HealthCheckUpsert struct {
		*sql.UpdateSet
	}
)

// SetHealthy sets the "healthy" field.
func (u *HealthCheckUpsert) SetHealthy(v bool) *HealthCheckUpsert {
	u.Set(healthcheck.FieldHealthy, v)
	return u
}

// UpdateHealthy sets the "healthy" field to the value that was provided on create.
func (u *HealthCheckUpsert) UpdateHealthy() *HealthCheckUpsert {
	u.SetExcluded(healthcheck.FieldHealthy)
	return u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (u *HealthCheckUpsert) SetResponseTimeMs(v int64) *HealthCheckUpsert {
	u.Set(healthcheck.FieldResponseTimeMs, v)
	return u
}

// UpdateResponseTimeMs sets the "response_time_ms" field to the value that was provided on create.
func (u *HealthCheckUpsert) UpdateResponseTimeMs() *HealthCheckUpsert {
	u.SetExcluded(healthcheck.FieldResponseTimeMs)
	return u
}

// AddResponseTimeMs adds v to the "response_time_ms" field.
func (u *HealthCheckUpsert) AddResponseTimeMs(v int64) *HealthCheckUpsert {
	u.Add(healthcheck.FieldResponseTimeMs, v)
	return u
}

// ClearResponseTimeMs clears the value of the "response_time_ms" field.
func (u *HealthCheckUpsert) ClearResponseTimeMs() *HealthCheckUpsert {
	u.SetNull(healthcheck.FieldResponseTimeMs)
	return u
}

// SetVersion sets the "version" field.
func (u *HealthCheckUpsert) SetVersion(v string) *HealthCheckUpsert {
	u.Set(healthcheck.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *HealthCheckUpsert) UpdateVersion() *HealthCheckUpsert {
	u.SetExcluded(healthcheck.FieldVersion)
	return u
}

// ClearVersion clears the value of the "version" field.
func (u *HealthCheckUpsert) ClearVersion() *HealthCheckUpsert {
	u.SetNull(healthcheck.FieldVersion)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *HealthCheckUpsert) SetErrorMessage(v string) *HealthCheckUpsert {
	u.Set(healthcheck.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *HealthCheckUpsert) UpdateErrorMessage() *HealthCheckUpsert {
	u.SetExcluded(healthcheck.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *HealthCheckUpsert) ClearErrorMessage() *HealthCheckUpsert {
	u.SetNull(healthcheck.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.HealthCheck.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(healthcheck.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HealthCheckUpsertOne) UpdateNewValues() *HealthCheckUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(healthcheck.FieldID)
		}
		if _, exists := u.create.mutation.CheckedAt(); exists {
			s.SetIgnore(healthcheck.FieldCheckedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HealthCheck.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HealthCheckUpsertOne) Ignore() *HealthCheckUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HealthCheckUpsertOne) DoNothing() *HealthCheckUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HealthCheckCreate.OnConflict
// documentation for more info.
func (u *HealthCheckUpsertOne) Update(set func(*HealthCheckUpsert)) *HealthCheckUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HealthCheckUpsert{UpdateSet: update})
	}))
	return u
}

// SetHealthy sets the "healthy" field.
func (u *HealthCheckUpsertOne) SetHealthy(v bool) *HealthCheckUpsertOne {
	return u.Update(func(s *HealthCheckUpsert) {
		s.SetHealthy(v)
	})
}

// UpdateHealthy sets the "healthy" field to the value that was provided on create.
func (u *HealthCheckUpsertOne) UpdateHealthy() *HealthCheckUpsertOne {
	return u.Update(func(s *HealthCheckUpsert) {
		s.UpdateHealthy()
	})
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (u *HealthCheckUpsertOne) SetResponseTimeMs(v int64) *HealthCheckUpsertOne {
	return u.Update(func(s *HealthCheckUpsert) {
		s.SetResponseTimeMs(v)
	})
}

// AddResponseTimeMs adds v to the "response_time_ms" field.
func (u *HealthCheckUpsertOne) AddResponseTimeMs(v int64) *HealthCheckUpsertOne {
	return u.Update(func(s *HealthCheckUpsert) {
		s.AddResponseTimeMs(v)
	})
}

// UpdateResponseTimeMs sets the "response_time_ms" field to the value that was provided on create.
func (u *HealthCheckUpsertOne) UpdateResponseTimeMs() *HealthCheckUpsertOne {
	return u.Update(func(s *HealthCheckUpsert) {
		s.UpdateResponseTimeMs()
	})
}

// ClearResponseTimeMs clears the value of the "response_time_ms" field.
func (u *HealthCheckUpsertOne) ClearResponseTimeMs() *HealthCheckUpsertOne {
	return u.Update(func(s *HealthCheckUpsert) {
		s.ClearResponseTimeMs()
	})
}

// SetVersion sets the "version" field.
func (u *HealthCheckUpsertOne) SetVersion(v string) *HealthCheckUpsertOne {
	return u.Update(func(s *HealthCheckUpsert) {
		s.SetVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *HealthCheckUpsertOne) UpdateVersion() *HealthCheckUpsertOne {
	return u.Update(func(s *HealthCheckUpsert) {
		s.UpdateVersion()
	})
}

// ClearVersion clears the value of the "version" field.
func (u *HealthCheckUpsertOne) ClearVersion() *HealthCheckUpsertOne {
	return u.Update(func(s *HealthCheckUpsert) {
		s.ClearVersion()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *HealthCheckUpsertOne) SetErrorMessage(v string) *HealthCheckUpsertOne {
	return u.Update(func(s *HealthCheckUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *HealthCheckUpsertOne) UpdateErrorMessage() *HealthCheckUpsertOne {
	return u.Update(func(s *HealthCheckUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *HealthCheckUpsertOne) ClearErrorMessage() *HealthCheckUpsertOne {
	return u.Update(func(s *HealthCheckUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *HealthCheckUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HealthCheckCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HealthCheckUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HealthCheckUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: HealthCheckUpsertOne.ID is not supported by MySQL driver. Use HealthCheckUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HealthCheckUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HealthCheckCreateBulk is the builder for creating many HealthCheck entities in bulk.
type HealthCheckCreateBulk struct {
	config
	err      error
	builders []*HealthCheckCreate
	conflict []sql.ConflictOption
}

// Save creates the HealthCheck entities in the database.
func (_c *HealthCheckCreateBulk) Save(ctx context.Context) ([]*HealthCheck, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HealthCheck, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HealthCheckMutation)
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
func (_c *HealthCheckCreateBulk) SaveX(ctx context.Context) []*HealthCheck {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HealthCheckCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HealthCheckCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HealthCheck.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HealthCheckUpsert) {
//			SetHealthy(v+v).
//		}).
//		Exec(ctx)
func (_c *HealthCheckCreateBulk) OnConflict(opts ...sql.ConflictOption) *HealthCheckUpsertBulk {
	_c.conflict = opts
	return &HealthCheckUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HealthCheck.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HealthCheckCreateBulk) OnConflictColumns(columns ...string) *HealthCheckUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HealthCheckUpsertBulk{
		create: _c,
	}
}

// HealthCheckUpsertBulk is the builder for "upsert"-ing
// a bulk of HealthCheck nodes.
type HealthCheckUpsertBulk struct {
	create *HealthCheckCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HealthCheck.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(healthcheck.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HealthCheckUpsertBulk) UpdateNewValues() *HealthCheckUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(healthcheck.FieldID)
			}
			if _, exists := b.mutation.CheckedAt(); exists {
				s.SetIgnore(healthcheck.FieldCheckedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HealthCheck.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HealthCheckUpsertBulk) Ignore() *HealthCheckUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HealthCheckUpsertBulk) DoNothing() *HealthCheckUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HealthCheckCreateBulk.OnConflict
// documentation for more info.
func (u *HealthCheckUpsertBulk) Update(set func(*HealthCheckUpsert)) *HealthCheckUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HealthCheckUpsert{UpdateSet: update})
	}))
	return u
}

// SetHealthy sets the "healthy" field.
func (u *HealthCheckUpsertBulk) SetHealthy(v bool) *HealthCheckUpsertBulk {
	return u.Update(func(s *HealthCheckUpsert) {
		s.SetHealthy(v)
	})
}

// UpdateHealthy sets the "healthy" field to the value that was provided on create.
func (u *HealthCheckUpsertBulk) UpdateHealthy() *HealthCheckUpsertBulk {
	return u.Update(func(s *HealthCheckUpsert) {
		s.UpdateHealthy()
	})
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (u *HealthCheckUpsertBulk) SetResponseTimeMs(v int64) *HealthCheckUpsertBulk {
	return u.Update(func(s *HealthCheckUpsert) {
		s.SetResponseTimeMs(v)
	})
}

// AddResponseTimeMs adds v to the "response_time_ms" field.
func (u *HealthCheckUpsertBulk) AddResponseTimeMs(v int64) *HealthCheckUpsertBulk {
	return u.Update(func(s *HealthCheckUpsert) {
		s.AddResponseTimeMs(v)
	})
}

// UpdateResponseTimeMs sets the "response_time_ms" field to the value that was provided on create.
func (u *HealthCheckUpsertBulk) UpdateResponseTimeMs() *HealthCheckUpsertBulk {
	return u.Update(func(s *HealthCheckUpsert) {
		s.UpdateResponseTimeMs()
	})
}

// ClearResponseTimeMs clears the value of the "response_time_ms" field.
func (u *HealthCheckUpsertBulk) ClearResponseTimeMs() *HealthCheckUpsertBulk {
	return u.Update(func(s *HealthCheckUpsert) {
		s.ClearResponseTimeMs()
	})
}

// SetVersion sets the "version" field.
func (u *HealthCheckUpsertBulk) SetVersion(v string) *HealthCheckUpsertBulk {
	return u.Update(func(s *HealthCheckUpsert) {
		s.SetVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *HealthCheckUpsertBulk) UpdateVersion() *HealthCheckUpsertBulk {
	return u.Update(func(s *HealthCheckUpsert) {
		s.UpdateVersion()
	})
}

// ClearVersion clears the value of the "version" field.
func (u *HealthCheckUpsertBulk) ClearVersion() *HealthCheckUpsertBulk {
	return u.Update(func(s *HealthCheckUpsert) {
		s.ClearVersion()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *HealthCheckUpsertBulk) SetErrorMessage(v string) *HealthCheckUpsertBulk {
	return u.Update(func(s *HealthCheckUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *HealthCheckUpsertBulk) UpdateErrorMessage() *HealthCheckUpsertBulk {
	return u.Update(func(s *HealthCheckUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *HealthCheckUpsertBulk) ClearErrorMessage() *HealthCheckUpsertBulk {
	return u.Update(func(s *HealthCheckUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *HealthCheckUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the HealthCheckCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HealthCheckCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HealthCheckUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
