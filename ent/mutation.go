// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jellyswarrm/jellyswarrm/ent/apikey"
	"github.com/jellyswarrm/jellyswarrm/ent/auditlog"
	"github.com/jellyswarrm/jellyswarrm/ent/authsession"
	"github.com/jellyswarrm/jellyswarrm/ent/healthcheck"
	"github.com/jellyswarrm/jellyswarrm/ent/mediamapping"
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrary"
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrarysource"
	"github.com/jellyswarrm/jellyswarrm/ent/predicate"
	"github.com/jellyswarrm/jellyswarrm/ent/server"
	"github.com/jellyswarrm/jellyswarrm/ent/servermapping"
	"github.com/jellyswarrm/jellyswarrm/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAPIKey              = "APIKey"
	TypeAuditLog            = "AuditLog"
	TypeAuthSession         = "AuthSession"
	TypeHealthCheck         = "HealthCheck"
	TypeMediaMapping        = "MediaMapping"
	TypeMergedLibrary       = "MergedLibrary"
	TypeMergedLibrarySource = "MergedLibrarySource"
	TypeServer              = "Server"
	TypeServerMapping       = "ServerMapping"
	TypeUser                = "User"
)

// APIKeyMutation represents an operation that mutates the APIKey nodes in the graph.
type APIKeyMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	key_hash      *string
	key_prefix    *string
	created_by    *string
	last_used_at  *time.Time
	expires_at    *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*APIKey, error)
	predicates    []predicate.APIKey
}

var _ ent.Mutation = (*APIKeyMutation)(nil)

// apikeyOption allows management of the mutation configuration using functional options.
type apikeyOption func(*APIKeyMutation)

// newAPIKeyMutation creates new mutation for the APIKey entity.
func newAPIKeyMutation(c config, op Op, opts ...apikeyOption) *APIKeyMutation {
	m := &APIKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeAPIKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAPIKeyID sets the ID field of the mutation.
func withAPIKeyID(id uuid.UUID) apikeyOption {
	return func(m *APIKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *APIKey
		)
		m.oldValue = func(ctx context.Context) (*APIKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().APIKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAPIKey sets the old APIKey of the mutation.
func withAPIKey(node *APIKey) apikeyOption {
	return func(m *APIKeyMutation) {
		m.oldValue = func(context.Context) (*APIKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m APIKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m APIKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of APIKey entities.
func (m *APIKeyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *APIKeyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *APIKeyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().APIKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *APIKeyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *APIKeyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *APIKeyMutation) ResetName() {
	m.name = nil
}

// SetKeyHash sets the "key_hash" field.
func (m *APIKeyMutation) SetKeyHash(s string) {
	m.key_hash = &s
}

// KeyHash returns the value of the "key_hash" field in the mutation.
func (m *APIKeyMutation) KeyHash() (r string, exists bool) {
	v := m.key_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyHash returns the old "key_hash" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldKeyHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyHash: %w", err)
	}
	return oldValue.KeyHash, nil
}

// ResetKeyHash resets all changes to the "key_hash" field.
func (m *APIKeyMutation) ResetKeyHash() {
	m.key_hash = nil
}

// SetKeyPrefix sets the "key_prefix" field.
func (m *APIKeyMutation) SetKeyPrefix(s string) {
	m.key_prefix = &s
}

// KeyPrefix returns the value of the "key_prefix" field in the mutation.
func (m *APIKeyMutation) KeyPrefix() (r string, exists bool) {
	v := m.key_prefix
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyPrefix returns the old "key_prefix" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldKeyPrefix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyPrefix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyPrefix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyPrefix: %w", err)
	}
	return oldValue.KeyPrefix, nil
}

// ResetKeyPrefix resets all changes to the "key_prefix" field.
func (m *APIKeyMutation) ResetKeyPrefix() {
	m.key_prefix = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *APIKeyMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *APIKeyMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *APIKeyMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *APIKeyMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *APIKeyMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *APIKeyMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[apikey.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *APIKeyMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[apikey.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *APIKeyMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, apikey.FieldLastUsedAt)
}

// SetExpiresAt sets the "expires_at" field.
func (m *APIKeyMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *APIKeyMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *APIKeyMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[apikey.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *APIKeyMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[apikey.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *APIKeyMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, apikey.FieldExpiresAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *APIKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *APIKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *APIKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the APIKeyMutation builder.
func (m *APIKeyMutation) Where(ps ...predicate.APIKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the APIKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *APIKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.APIKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *APIKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *APIKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (APIKey).
func (m *APIKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *APIKeyMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, apikey.FieldName)
	}
	if m.key_hash != nil {
		fields = append(fields, apikey.FieldKeyHash)
	}
	if m.key_prefix != nil {
		fields = append(fields, apikey.FieldKeyPrefix)
	}
	if m.created_by != nil {
		fields = append(fields, apikey.FieldCreatedBy)
	}
	if m.last_used_at != nil {
		fields = append(fields, apikey.FieldLastUsedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, apikey.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, apikey.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *APIKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apikey.FieldName:
		return m.Name()
	case apikey.FieldKeyHash:
		return m.KeyHash()
	case apikey.FieldKeyPrefix:
		return m.KeyPrefix()
	case apikey.FieldCreatedBy:
		return m.CreatedBy()
	case apikey.FieldLastUsedAt:
		return m.LastUsedAt()
	case apikey.FieldExpiresAt:
		return m.ExpiresAt()
	case apikey.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *APIKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apikey.FieldName:
		return m.OldName(ctx)
	case apikey.FieldKeyHash:
		return m.OldKeyHash(ctx)
	case apikey.FieldKeyPrefix:
		return m.OldKeyPrefix(ctx)
	case apikey.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case apikey.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case apikey.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case apikey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown APIKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apikey.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case apikey.FieldKeyHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyHash(v)
		return nil
	case apikey.FieldKeyPrefix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyPrefix(v)
		return nil
	case apikey.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case apikey.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case apikey.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case apikey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown APIKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *APIKeyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *APIKeyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown APIKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *APIKeyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(apikey.FieldLastUsedAt) {
		fields = append(fields, apikey.FieldLastUsedAt)
	}
	if m.FieldCleared(apikey.FieldExpiresAt) {
		fields = append(fields, apikey.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *APIKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *APIKeyMutation) ClearField(name string) error {
	switch name {
	case apikey.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	case apikey.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown APIKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *APIKeyMutation) ResetField(name string) error {
	switch name {
	case apikey.FieldName:
		m.ResetName()
		return nil
	case apikey.FieldKeyHash:
		m.ResetKeyHash()
		return nil
	case apikey.FieldKeyPrefix:
		m.ResetKeyPrefix()
		return nil
	case apikey.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case apikey.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case apikey.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case apikey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown APIKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *APIKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *APIKeyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *APIKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *APIKeyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *APIKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *APIKeyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *APIKeyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown APIKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *APIKeyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown APIKey edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	actor         *string
	actor_type    *auditlog.ActorType
	action        *auditlog.Action
	resource_type *string
	resource_id   *string
	detail        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id uuid.UUID) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
}

// SetActorType sets the "actor_type" field.
func (m *AuditLogMutation) SetActorType(at auditlog.ActorType) {
	m.actor_type = &at
}

// ActorType returns the value of the "actor_type" field in the mutation.
func (m *AuditLogMutation) ActorType() (r auditlog.ActorType, exists bool) {
	v := m.actor_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActorType returns the old "actor_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActorType(ctx context.Context) (v auditlog.ActorType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorType: %w", err)
	}
	return oldValue.ActorType, nil
}

// ResetActorType resets all changes to the "actor_type" field.
func (m *AuditLogMutation) ResetActorType() {
	m.actor_type = nil
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(a auditlog.Action) {
	m.action = &a
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r auditlog.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v auditlog.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetResourceType sets the "resource_type" field.
func (m *AuditLogMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *AuditLogMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *AuditLogMutation) ResetResourceType() {
	m.resource_type = nil
}

// SetResourceID sets the "resource_id" field.
func (m *AuditLogMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *AuditLogMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *AuditLogMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[auditlog.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *AuditLogMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *AuditLogMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, auditlog.FieldResourceID)
}

// SetDetail sets the "detail" field.
func (m *AuditLogMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *AuditLogMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *AuditLogMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[auditlog.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *AuditLogMutation) DetailCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *AuditLogMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, auditlog.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.actor_type != nil {
		fields = append(fields, auditlog.FieldActorType)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.resource_type != nil {
		fields = append(fields, auditlog.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, auditlog.FieldResourceID)
	}
	if m.detail != nil {
		fields = append(fields, auditlog.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldActorType:
		return m.ActorType()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldResourceType:
		return m.ResourceType()
	case auditlog.FieldResourceID:
		return m.ResourceID()
	case auditlog.FieldDetail:
		return m.Detail()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldActorType:
		return m.OldActorType(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldResourceType:
		return m.OldResourceType(ctx)
	case auditlog.FieldResourceID:
		return m.OldResourceID(ctx)
	case auditlog.FieldDetail:
		return m.OldDetail(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldActorType:
		v, ok := value.(auditlog.ActorType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorType(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(auditlog.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case auditlog.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case auditlog.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldResourceID) {
		fields = append(fields, auditlog.FieldResourceID)
	}
	if m.FieldCleared(auditlog.FieldDetail) {
		fields = append(fields, auditlog.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldResourceID:
		m.ClearResourceID()
		return nil
	case auditlog.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldActorType:
		m.ResetActorType()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldResourceType:
		m.ResetResourceType()
		return nil
	case auditlog.FieldResourceID:
		m.ResetResourceID()
		return nil
	case auditlog.FieldDetail:
		m.ResetDetail()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// AuthSessionMutation represents an operation that mutates the AuthSession nodes in the graph.
type AuthSessionMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	access_token   *string
	remote_user_id *string
	device_id      *string
	device_name    *string
	client         *string
	client_version *string
	expires_at     *time.Time
	last_seen      *time.Time
	created_at     *time.Time
	clearedFields  map[string]struct{}
	user           *uuid.UUID
	cleareduser    bool
	mapping        *uuid.UUID
	clearedmapping bool
	done           bool
	oldValue       func(context.Context) (*AuthSession, error)
	predicates     []predicate.AuthSession
}

var _ ent.Mutation = (*AuthSessionMutation)(nil)

// authsessionOption allows management of the mutation configuration using functional options.
type authsessionOption func(*AuthSessionMutation)

// newAuthSessionMutation creates new mutation for the AuthSession entity.
func newAuthSessionMutation(c config, op Op, opts ...authsessionOption) *AuthSessionMutation {
	m := &AuthSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAuthSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuthSessionID sets the ID field of the mutation.
func withAuthSessionID(id uuid.UUID) authsessionOption {
	return func(m *AuthSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AuthSession
		)
		m.oldValue = func(ctx context.Context) (*AuthSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuthSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuthSession sets the old AuthSession of the mutation.
func withAuthSession(node *AuthSession) authsessionOption {
	return func(m *AuthSessionMutation) {
		m.oldValue = func(context.Context) (*AuthSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuthSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuthSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuthSession entities.
func (m *AuthSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuthSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuthSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuthSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccessToken sets the "access_token" field.
func (m *AuthSessionMutation) SetAccessToken(s string) {
	m.access_token = &s
}

// AccessToken returns the value of the "access_token" field in the mutation.
func (m *AuthSessionMutation) AccessToken() (r string, exists bool) {
	v := m.access_token
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessToken returns the old "access_token" field's value of the AuthSession entity.
// If the AuthSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthSessionMutation) OldAccessToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessToken: %w", err)
	}
	return oldValue.AccessToken, nil
}

// ResetAccessToken resets all changes to the "access_token" field.
func (m *AuthSessionMutation) ResetAccessToken() {
	m.access_token = nil
}

// SetRemoteUserID sets the "remote_user_id" field.
func (m *AuthSessionMutation) SetRemoteUserID(s string) {
	m.remote_user_id = &s
}

// RemoteUserID returns the value of the "remote_user_id" field in the mutation.
func (m *AuthSessionMutation) RemoteUserID() (r string, exists bool) {
	v := m.remote_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRemoteUserID returns the old "remote_user_id" field's value of the AuthSession entity.
// If the AuthSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthSessionMutation) OldRemoteUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemoteUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemoteUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemoteUserID: %w", err)
	}
	return oldValue.RemoteUserID, nil
}

// ResetRemoteUserID resets all changes to the "remote_user_id" field.
func (m *AuthSessionMutation) ResetRemoteUserID() {
	m.remote_user_id = nil
}

// SetDeviceID sets the "device_id" field.
func (m *AuthSessionMutation) SetDeviceID(s string) {
	m.device_id = &s
}

// DeviceID returns the value of the "device_id" field in the mutation.
func (m *AuthSessionMutation) DeviceID() (r string, exists bool) {
	v := m.device_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceID returns the old "device_id" field's value of the AuthSession entity.
// If the AuthSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthSessionMutation) OldDeviceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceID: %w", err)
	}
	return oldValue.DeviceID, nil
}

// ResetDeviceID resets all changes to the "device_id" field.
func (m *AuthSessionMutation) ResetDeviceID() {
	m.device_id = nil
}

// SetDeviceName sets the "device_name" field.
func (m *AuthSessionMutation) SetDeviceName(s string) {
	m.device_name = &s
}

// DeviceName returns the value of the "device_name" field in the mutation.
func (m *AuthSessionMutation) DeviceName() (r string, exists bool) {
	v := m.device_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceName returns the old "device_name" field's value of the AuthSession entity.
// If the AuthSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthSessionMutation) OldDeviceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceName: %w", err)
	}
	return oldValue.DeviceName, nil
}

// ClearDeviceName clears the value of the "device_name" field.
func (m *AuthSessionMutation) ClearDeviceName() {
	m.device_name = nil
	m.clearedFields[authsession.FieldDeviceName] = struct{}{}
}

// DeviceNameCleared returns if the "device_name" field was cleared in this mutation.
func (m *AuthSessionMutation) DeviceNameCleared() bool {
	_, ok := m.clearedFields[authsession.FieldDeviceName]
	return ok
}

// ResetDeviceName resets all changes to the "device_name" field.
func (m *AuthSessionMutation) ResetDeviceName() {
	m.device_name = nil
	delete(m.clearedFields, authsession.FieldDeviceName)
}

// SetClient sets the "client" field.
func (m *AuthSessionMutation) SetClient(s string) {
	m.client = &s
}

// GetClient returns the value of the "client" field in the mutation.
func (m *AuthSessionMutation) GetClient() (r string, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClient returns the old "client" field's value of the AuthSession entity.
// If the AuthSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthSessionMutation) OldClient(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClient is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClient requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClient: %w", err)
	}
	return oldValue.Client, nil
}

// ClearClient clears the value of the "client" field.
func (m *AuthSessionMutation) ClearClient() {
	m.client = nil
	m.clearedFields[authsession.FieldClient] = struct{}{}
}

// ClientCleared returns if the "client" field was cleared in this mutation.
func (m *AuthSessionMutation) ClientCleared() bool {
	_, ok := m.clearedFields[authsession.FieldClient]
	return ok
}

// ResetClient resets all changes to the "client" field.
func (m *AuthSessionMutation) ResetClient() {
	m.client = nil
	delete(m.clearedFields, authsession.FieldClient)
}

// SetClientVersion sets the "client_version" field.
func (m *AuthSessionMutation) SetClientVersion(s string) {
	m.client_version = &s
}

// ClientVersion returns the value of the "client_version" field in the mutation.
func (m *AuthSessionMutation) ClientVersion() (r string, exists bool) {
	v := m.client_version
	if v == nil {
		return
	}
	return *v, true
}

// OldClientVersion returns the old "client_version" field's value of the AuthSession entity.
// If the AuthSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthSessionMutation) OldClientVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientVersion: %w", err)
	}
	return oldValue.ClientVersion, nil
}

// ClearClientVersion clears the value of the "client_version" field.
func (m *AuthSessionMutation) ClearClientVersion() {
	m.client_version = nil
	m.clearedFields[authsession.FieldClientVersion] = struct{}{}
}

// ClientVersionCleared returns if the "client_version" field was cleared in this mutation.
func (m *AuthSessionMutation) ClientVersionCleared() bool {
	_, ok := m.clearedFields[authsession.FieldClientVersion]
	return ok
}

// ResetClientVersion resets all changes to the "client_version" field.
func (m *AuthSessionMutation) ResetClientVersion() {
	m.client_version = nil
	delete(m.clearedFields, authsession.FieldClientVersion)
}

// SetExpiresAt sets the "expires_at" field.
func (m *AuthSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *AuthSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the AuthSession entity.
// If the AuthSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthSessionMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *AuthSessionMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[authsession.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *AuthSessionMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[authsession.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *AuthSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, authsession.FieldExpiresAt)
}

// SetLastSeen sets the "last_seen" field.
func (m *AuthSessionMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *AuthSessionMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the AuthSession entity.
// If the AuthSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthSessionMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *AuthSessionMutation) ResetLastSeen() {
	m.last_seen = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AuthSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuthSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuthSession entity.
// If the AuthSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuthSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *AuthSessionMutation) SetUserID(id uuid.UUID) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *AuthSessionMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *AuthSessionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *AuthSessionMutation) UserID() (id uuid.UUID, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *AuthSessionMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *AuthSessionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// SetMappingID sets the "mapping" edge to the ServerMapping entity by id.
func (m *AuthSessionMutation) SetMappingID(id uuid.UUID) {
	m.mapping = &id
}

// ClearMapping clears the "mapping" edge to the ServerMapping entity.
func (m *AuthSessionMutation) ClearMapping() {
	m.clearedmapping = true
}

// MappingCleared reports if the "mapping" edge to the ServerMapping entity was cleared.
func (m *AuthSessionMutation) MappingCleared() bool {
	return m.clearedmapping
}

// MappingID returns the "mapping" edge ID in the mutation.
func (m *AuthSessionMutation) MappingID() (id uuid.UUID, exists bool) {
	if m.mapping != nil {
		return *m.mapping, true
	}
	return
}

// MappingIDs returns the "mapping" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MappingID instead. It exists only for internal usage by the builders.
func (m *AuthSessionMutation) MappingIDs() (ids []uuid.UUID) {
	if id := m.mapping; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMapping resets all changes to the "mapping" edge.
func (m *AuthSessionMutation) ResetMapping() {
	m.mapping = nil
	m.clearedmapping = false
}

// Where appends a list predicates to the AuthSessionMutation builder.
func (m *AuthSessionMutation) Where(ps ...predicate.AuthSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuthSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuthSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuthSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuthSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuthSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuthSession).
func (m *AuthSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuthSessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.access_token != nil {
		fields = append(fields, authsession.FieldAccessToken)
	}
	if m.remote_user_id != nil {
		fields = append(fields, authsession.FieldRemoteUserID)
	}
	if m.device_id != nil {
		fields = append(fields, authsession.FieldDeviceID)
	}
	if m.device_name != nil {
		fields = append(fields, authsession.FieldDeviceName)
	}
	if m.client != nil {
		fields = append(fields, authsession.FieldClient)
	}
	if m.client_version != nil {
		fields = append(fields, authsession.FieldClientVersion)
	}
	if m.expires_at != nil {
		fields = append(fields, authsession.FieldExpiresAt)
	}
	if m.last_seen != nil {
		fields = append(fields, authsession.FieldLastSeen)
	}
	if m.created_at != nil {
		fields = append(fields, authsession.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuthSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case authsession.FieldAccessToken:
		return m.AccessToken()
	case authsession.FieldRemoteUserID:
		return m.RemoteUserID()
	case authsession.FieldDeviceID:
		return m.DeviceID()
	case authsession.FieldDeviceName:
		return m.DeviceName()
	case authsession.FieldClient:
		return m.GetClient()
	case authsession.FieldClientVersion:
		return m.ClientVersion()
	case authsession.FieldExpiresAt:
		return m.ExpiresAt()
	case authsession.FieldLastSeen:
		return m.LastSeen()
	case authsession.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuthSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case authsession.FieldAccessToken:
		return m.OldAccessToken(ctx)
	case authsession.FieldRemoteUserID:
		return m.OldRemoteUserID(ctx)
	case authsession.FieldDeviceID:
		return m.OldDeviceID(ctx)
	case authsession.FieldDeviceName:
		return m.OldDeviceName(ctx)
	case authsession.FieldClient:
		return m.OldClient(ctx)
	case authsession.FieldClientVersion:
		return m.OldClientVersion(ctx)
	case authsession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case authsession.FieldLastSeen:
		return m.OldLastSeen(ctx)
	case authsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuthSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuthSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case authsession.FieldAccessToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessToken(v)
		return nil
	case authsession.FieldRemoteUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemoteUserID(v)
		return nil
	case authsession.FieldDeviceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceID(v)
		return nil
	case authsession.FieldDeviceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceName(v)
		return nil
	case authsession.FieldClient:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClient(v)
		return nil
	case authsession.FieldClientVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientVersion(v)
		return nil
	case authsession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case authsession.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	case authsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuthSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuthSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuthSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuthSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuthSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuthSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(authsession.FieldDeviceName) {
		fields = append(fields, authsession.FieldDeviceName)
	}
	if m.FieldCleared(authsession.FieldClient) {
		fields = append(fields, authsession.FieldClient)
	}
	if m.FieldCleared(authsession.FieldClientVersion) {
		fields = append(fields, authsession.FieldClientVersion)
	}
	if m.FieldCleared(authsession.FieldExpiresAt) {
		fields = append(fields, authsession.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuthSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuthSessionMutation) ClearField(name string) error {
	switch name {
	case authsession.FieldDeviceName:
		m.ClearDeviceName()
		return nil
	case authsession.FieldClient:
		m.ClearClient()
		return nil
	case authsession.FieldClientVersion:
		m.ClearClientVersion()
		return nil
	case authsession.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown AuthSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuthSessionMutation) ResetField(name string) error {
	switch name {
	case authsession.FieldAccessToken:
		m.ResetAccessToken()
		return nil
	case authsession.FieldRemoteUserID:
		m.ResetRemoteUserID()
		return nil
	case authsession.FieldDeviceID:
		m.ResetDeviceID()
		return nil
	case authsession.FieldDeviceName:
		m.ResetDeviceName()
		return nil
	case authsession.FieldClient:
		m.ResetClient()
		return nil
	case authsession.FieldClientVersion:
		m.ResetClientVersion()
		return nil
	case authsession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case authsession.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	case authsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuthSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuthSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, authsession.EdgeUser)
	}
	if m.mapping != nil {
		edges = append(edges, authsession.EdgeMapping)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuthSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case authsession.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case authsession.EdgeMapping:
		if id := m.mapping; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuthSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuthSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuthSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, authsession.EdgeUser)
	}
	if m.clearedmapping {
		edges = append(edges, authsession.EdgeMapping)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuthSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case authsession.EdgeUser:
		return m.cleareduser
	case authsession.EdgeMapping:
		return m.clearedmapping
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuthSessionMutation) ClearEdge(name string) error {
	switch name {
	case authsession.EdgeUser:
		m.ClearUser()
		return nil
	case authsession.EdgeMapping:
		m.ClearMapping()
		return nil
	}
	return fmt.Errorf("unknown AuthSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuthSessionMutation) ResetEdge(name string) error {
	switch name {
	case authsession.EdgeUser:
		m.ResetUser()
		return nil
	case authsession.EdgeMapping:
		m.ResetMapping()
		return nil
	}
	return fmt.Errorf("unknown AuthSession edge %s", name)
}

// HealthCheckMutation represents an operation that mutates the HealthCheck nodes in the graph.
type HealthCheckMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	healthy             *bool
	response_time_ms    *int64
	addresponse_time_ms *int64
	version             *string
	error_message       *string
	checked_at          *time.Time
	clearedFields       map[string]struct{}
	server              *uuid.UUID
	clearedserver       bool
	done                bool
	oldValue            func(context.Context) (*HealthCheck, error)
	predicates          []predicate.HealthCheck
}

var _ ent.Mutation = (*HealthCheckMutation)(nil)

// healthcheckOption allows management of the mutation configuration using functional options.
type healthcheckOption func(*HealthCheckMutation)

// newHealthCheckMutation creates new mutation for the HealthCheck entity.
func newHealthCheckMutation(c config, op Op, opts ...healthcheckOption) *HealthCheckMutation {
	m := &HealthCheckMutation{
		config:        c,
		op:            op,
		typ:           TypeHealthCheck,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHealthCheckID sets the ID field of the mutation.
func withHealthCheckID(id uuid.UUID) healthcheckOption {
	return func(m *HealthCheckMutation) {
		var (
			err   error
			once  sync.Once
			value *HealthCheck
		)
		m.oldValue = func(ctx context.Context) (*HealthCheck, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HealthCheck.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHealthCheck sets the old HealthCheck of the mutation.
func withHealthCheck(node *HealthCheck) healthcheckOption {
	return func(m *HealthCheckMutation) {
		m.oldValue = func(context.Context) (*HealthCheck, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HealthCheckMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HealthCheckMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HealthCheck entities.
func (m *HealthCheckMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HealthCheckMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HealthCheckMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HealthCheck.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHealthy sets the "healthy" field.
func (m *HealthCheckMutation) SetHealthy(b bool) {
	m.healthy = &b
}

// Healthy returns the value of the "healthy" field in the mutation.
func (m *HealthCheckMutation) Healthy() (r bool, exists bool) {
	v := m.healthy
	if v == nil {
		return
	}
	return *v, true
}

// OldHealthy returns the old "healthy" field's value of the HealthCheck entity.
// If the HealthCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthCheckMutation) OldHealthy(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealthy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealthy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealthy: %w", err)
	}
	return oldValue.Healthy, nil
}

// ResetHealthy resets all changes to the "healthy" field.
func (m *HealthCheckMutation) ResetHealthy() {
	m.healthy = nil
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *HealthCheckMutation) SetResponseTimeMs(i int64) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *HealthCheckMutation) ResponseTimeMs() (r int64, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the HealthCheck entity.
// If the HealthCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthCheckMutation) OldResponseTimeMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *HealthCheckMutation) AddResponseTimeMs(i int64) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *HealthCheckMutation) AddedResponseTimeMs() (r int64, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearResponseTimeMs clears the value of the "response_time_ms" field.
func (m *HealthCheckMutation) ClearResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
	m.clearedFields[healthcheck.FieldResponseTimeMs] = struct{}{}
}

// ResponseTimeMsCleared returns if the "response_time_ms" field was cleared in this mutation.
func (m *HealthCheckMutation) ResponseTimeMsCleared() bool {
	_, ok := m.clearedFields[healthcheck.FieldResponseTimeMs]
	return ok
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *HealthCheckMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
	delete(m.clearedFields, healthcheck.FieldResponseTimeMs)
}

// SetVersion sets the "version" field.
func (m *HealthCheckMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *HealthCheckMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the HealthCheck entity.
// If the HealthCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthCheckMutation) OldVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ClearVersion clears the value of the "version" field.
func (m *HealthCheckMutation) ClearVersion() {
	m.version = nil
	m.clearedFields[healthcheck.FieldVersion] = struct{}{}
}

// VersionCleared returns if the "version" field was cleared in this mutation.
func (m *HealthCheckMutation) VersionCleared() bool {
	_, ok := m.clearedFields[healthcheck.FieldVersion]
	return ok
}

// ResetVersion resets all changes to the "version" field.
func (m *HealthCheckMutation) ResetVersion() {
	m.version = nil
	delete(m.clearedFields, healthcheck.FieldVersion)
}

// SetErrorMessage sets the "error_message" field.
func (m *HealthCheckMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *HealthCheckMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the HealthCheck entity.
// If the HealthCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthCheckMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *HealthCheckMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[healthcheck.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *HealthCheckMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[healthcheck.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *HealthCheckMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, healthcheck.FieldErrorMessage)
}

// SetCheckedAt sets the "checked_at" field.
func (m *HealthCheckMutation) SetCheckedAt(t time.Time) {
	m.checked_at = &t
}

// CheckedAt returns the value of the "checked_at" field in the mutation.
func (m *HealthCheckMutation) CheckedAt() (r time.Time, exists bool) {
	v := m.checked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckedAt returns the old "checked_at" field's value of the HealthCheck entity.
// If the HealthCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthCheckMutation) OldCheckedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckedAt: %w", err)
	}
	return oldValue.CheckedAt, nil
}

// ResetCheckedAt resets all changes to the "checked_at" field.
func (m *HealthCheckMutation) ResetCheckedAt() {
	m.checked_at = nil
}

// SetServerID sets the "server" edge to the Server entity by id.
func (m *HealthCheckMutation) SetServerID(id uuid.UUID) {
	m.server = &id
}

// ClearServer clears the "server" edge to the Server entity.
func (m *HealthCheckMutation) ClearServer() {
	m.clearedserver = true
}

// ServerCleared reports if the "server" edge to the Server entity was cleared.
func (m *HealthCheckMutation) ServerCleared() bool {
	return m.clearedserver
}

// ServerID returns the "server" edge ID in the mutation.
func (m *HealthCheckMutation) ServerID() (id uuid.UUID, exists bool) {
	if m.server != nil {
		return *m.server, true
	}
	return
}

// ServerIDs returns the "server" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ServerID instead. It exists only for internal usage by the builders.
func (m *HealthCheckMutation) ServerIDs() (ids []uuid.UUID) {
	if id := m.server; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetServer resets all changes to the "server" edge.
func (m *HealthCheckMutation) ResetServer() {
	m.server = nil
	m.clearedserver = false
}

// Where appends a list predicates to the HealthCheckMutation builder.
func (m *HealthCheckMutation) Where(ps ...predicate.HealthCheck) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HealthCheckMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HealthCheckMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HealthCheck, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HealthCheckMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HealthCheckMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HealthCheck).
func (m *HealthCheckMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HealthCheckMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.healthy != nil {
		fields = append(fields, healthcheck.FieldHealthy)
	}
	if m.response_time_ms != nil {
		fields = append(fields, healthcheck.FieldResponseTimeMs)
	}
	if m.version != nil {
		fields = append(fields, healthcheck.FieldVersion)
	}
	if m.error_message != nil {
		fields = append(fields, healthcheck.FieldErrorMessage)
	}
	if m.checked_at != nil {
		fields = append(fields, healthcheck.FieldCheckedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HealthCheckMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case healthcheck.FieldHealthy:
		return m.Healthy()
	case healthcheck.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case healthcheck.FieldVersion:
		return m.Version()
	case healthcheck.FieldErrorMessage:
		return m.ErrorMessage()
	case healthcheck.FieldCheckedAt:
		return m.CheckedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HealthCheckMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case healthcheck.FieldHealthy:
		return m.OldHealthy(ctx)
	case healthcheck.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case healthcheck.FieldVersion:
		return m.OldVersion(ctx)
	case healthcheck.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case healthcheck.FieldCheckedAt:
		return m.OldCheckedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HealthCheck field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HealthCheckMutation) SetField(name string, value ent.Value) error {
	switch name {
	case healthcheck.FieldHealthy:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealthy(v)
		return nil
	case healthcheck.FieldResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case healthcheck.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case healthcheck.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case healthcheck.FieldCheckedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HealthCheck field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HealthCheckMutation) AddedFields() []string {
	var fields []string
	if m.addresponse_time_ms != nil {
		fields = append(fields, healthcheck.FieldResponseTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HealthCheckMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case healthcheck.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HealthCheckMutation) AddField(name string, value ent.Value) error {
	switch name {
	case healthcheck.FieldResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown HealthCheck numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HealthCheckMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(healthcheck.FieldResponseTimeMs) {
		fields = append(fields, healthcheck.FieldResponseTimeMs)
	}
	if m.FieldCleared(healthcheck.FieldVersion) {
		fields = append(fields, healthcheck.FieldVersion)
	}
	if m.FieldCleared(healthcheck.FieldErrorMessage) {
		fields = append(fields, healthcheck.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HealthCheckMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HealthCheckMutation) ClearField(name string) error {
	switch name {
	case healthcheck.FieldResponseTimeMs:
		m.ClearResponseTimeMs()
		return nil
	case healthcheck.FieldVersion:
		m.ClearVersion()
		return nil
	case healthcheck.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown HealthCheck nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HealthCheckMutation) ResetField(name string) error {
	switch name {
	case healthcheck.FieldHealthy:
		m.ResetHealthy()
		return nil
	case healthcheck.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case healthcheck.FieldVersion:
		m.ResetVersion()
		return nil
	case healthcheck.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case healthcheck.FieldCheckedAt:
		m.ResetCheckedAt()
		return nil
	}
	return fmt.Errorf("unknown HealthCheck field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HealthCheckMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.server != nil {
		edges = append(edges, healthcheck.EdgeServer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HealthCheckMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case healthcheck.EdgeServer:
		if id := m.server; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HealthCheckMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HealthCheckMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HealthCheckMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedserver {
		edges = append(edges, healthcheck.EdgeServer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HealthCheckMutation) EdgeCleared(name string) bool {
	switch name {
	case healthcheck.EdgeServer:
		return m.clearedserver
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HealthCheckMutation) ClearEdge(name string) error {
	switch name {
	case healthcheck.EdgeServer:
		m.ClearServer()
		return nil
	}
	return fmt.Errorf("unknown HealthCheck unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HealthCheckMutation) ResetEdge(name string) error {
	switch name {
	case healthcheck.EdgeServer:
		m.ResetServer()
		return nil
	}
	return fmt.Errorf("unknown HealthCheck edge %s", name)
}

// MediaMappingMutation represents an operation that mutates the MediaMapping nodes in the graph.
type MediaMappingMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	virtual_id    *string
	original_id   *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	server        *uuid.UUID
	clearedserver bool
	done          bool
	oldValue      func(context.Context) (*MediaMapping, error)
	predicates    []predicate.MediaMapping
}

var _ ent.Mutation = (*MediaMappingMutation)(nil)

// mediamappingOption allows management of the mutation configuration using functional options.
type mediamappingOption func(*MediaMappingMutation)

// newMediaMappingMutation creates new mutation for the MediaMapping entity.
func newMediaMappingMutation(c config, op Op, opts ...mediamappingOption) *MediaMappingMutation {
	m := &MediaMappingMutation{
		config:        c,
		op:            op,
		typ:           TypeMediaMapping,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMediaMappingID sets the ID field of the mutation.
func withMediaMappingID(id uuid.UUID) mediamappingOption {
	return func(m *MediaMappingMutation) {
		var (
			err   error
			once  sync.Once
			value *MediaMapping
		)
		m.oldValue = func(ctx context.Context) (*MediaMapping, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MediaMapping.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMediaMapping sets the old MediaMapping of the mutation.
func withMediaMapping(node *MediaMapping) mediamappingOption {
	return func(m *MediaMappingMutation) {
		m.oldValue = func(context.Context) (*MediaMapping, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MediaMappingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MediaMappingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MediaMapping entities.
func (m *MediaMappingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MediaMappingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MediaMappingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MediaMapping.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVirtualID sets the "virtual_id" field.
func (m *MediaMappingMutation) SetVirtualID(s string) {
	m.virtual_id = &s
}

// VirtualID returns the value of the "virtual_id" field in the mutation.
func (m *MediaMappingMutation) VirtualID() (r string, exists bool) {
	v := m.virtual_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVirtualID returns the old "virtual_id" field's value of the MediaMapping entity.
// If the MediaMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMappingMutation) OldVirtualID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVirtualID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVirtualID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVirtualID: %w", err)
	}
	return oldValue.VirtualID, nil
}

// ResetVirtualID resets all changes to the "virtual_id" field.
func (m *MediaMappingMutation) ResetVirtualID() {
	m.virtual_id = nil
}

// SetOriginalID sets the "original_id" field.
func (m *MediaMappingMutation) SetOriginalID(s string) {
	m.original_id = &s
}

// OriginalID returns the value of the "original_id" field in the mutation.
func (m *MediaMappingMutation) OriginalID() (r string, exists bool) {
	v := m.original_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalID returns the old "original_id" field's value of the MediaMapping entity.
// If the MediaMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMappingMutation) OldOriginalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalID: %w", err)
	}
	return oldValue.OriginalID, nil
}

// ResetOriginalID resets all changes to the "original_id" field.
func (m *MediaMappingMutation) ResetOriginalID() {
	m.original_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MediaMappingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MediaMappingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MediaMapping entity.
// If the MediaMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMappingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MediaMappingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetServerID sets the "server" edge to the Server entity by id.
func (m *MediaMappingMutation) SetServerID(id uuid.UUID) {
	m.server = &id
}

// ClearServer clears the "server" edge to the Server entity.
func (m *MediaMappingMutation) ClearServer() {
	m.clearedserver = true
}

// ServerCleared reports if the "server" edge to the Server entity was cleared.
func (m *MediaMappingMutation) ServerCleared() bool {
	return m.clearedserver
}

// ServerID returns the "server" edge ID in the mutation.
func (m *MediaMappingMutation) ServerID() (id uuid.UUID, exists bool) {
	if m.server != nil {
		return *m.server, true
	}
	return
}

// ServerIDs returns the "server" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ServerID instead. It exists only for internal usage by the builders.
func (m *MediaMappingMutation) ServerIDs() (ids []uuid.UUID) {
	if id := m.server; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetServer resets all changes to the "server" edge.
func (m *MediaMappingMutation) ResetServer() {
	m.server = nil
	m.clearedserver = false
}

// Where appends a list predicates to the MediaMappingMutation builder.
func (m *MediaMappingMutation) Where(ps ...predicate.MediaMapping) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MediaMappingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MediaMappingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MediaMapping, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MediaMappingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MediaMappingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MediaMapping).
func (m *MediaMappingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MediaMappingMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.virtual_id != nil {
		fields = append(fields, mediamapping.FieldVirtualID)
	}
	if m.original_id != nil {
		fields = append(fields, mediamapping.FieldOriginalID)
	}
	if m.created_at != nil {
		fields = append(fields, mediamapping.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MediaMappingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mediamapping.FieldVirtualID:
		return m.VirtualID()
	case mediamapping.FieldOriginalID:
		return m.OriginalID()
	case mediamapping.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MediaMappingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mediamapping.FieldVirtualID:
		return m.OldVirtualID(ctx)
	case mediamapping.FieldOriginalID:
		return m.OldOriginalID(ctx)
	case mediamapping.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MediaMapping field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MediaMappingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mediamapping.FieldVirtualID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVirtualID(v)
		return nil
	case mediamapping.FieldOriginalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalID(v)
		return nil
	case mediamapping.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MediaMapping field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MediaMappingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MediaMappingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MediaMappingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MediaMapping numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MediaMappingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MediaMappingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MediaMappingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MediaMapping nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MediaMappingMutation) ResetField(name string) error {
	switch name {
	case mediamapping.FieldVirtualID:
		m.ResetVirtualID()
		return nil
	case mediamapping.FieldOriginalID:
		m.ResetOriginalID()
		return nil
	case mediamapping.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MediaMapping field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MediaMappingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.server != nil {
		edges = append(edges, mediamapping.EdgeServer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MediaMappingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mediamapping.EdgeServer:
		if id := m.server; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MediaMappingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MediaMappingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MediaMappingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedserver {
		edges = append(edges, mediamapping.EdgeServer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MediaMappingMutation) EdgeCleared(name string) bool {
	switch name {
	case mediamapping.EdgeServer:
		return m.clearedserver
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MediaMappingMutation) ClearEdge(name string) error {
	switch name {
	case mediamapping.EdgeServer:
		m.ClearServer()
		return nil
	}
	return fmt.Errorf("unknown MediaMapping unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MediaMappingMutation) ResetEdge(name string) error {
	switch name {
	case mediamapping.EdgeServer:
		m.ResetServer()
		return nil
	}
	return fmt.Errorf("unknown MediaMapping edge %s", name)
}

// MergedLibraryMutation represents an operation that mutates the MergedLibrary nodes in the graph.
type MergedLibraryMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	virtual_id      *string
	name            *string
	collection_type *mergedlibrary.CollectionType
	dedup_strategy  *mergedlibrary.DedupStrategy
	created_by      *string
	is_global       *bool
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	sources         map[uuid.UUID]struct{}
	removedsources  map[uuid.UUID]struct{}
	clearedsources  bool
	done            bool
	oldValue        func(context.Context) (*MergedLibrary, error)
	predicates      []predicate.MergedLibrary
}

var _ ent.Mutation = (*MergedLibraryMutation)(nil)

// mergedlibraryOption allows management of the mutation configuration using functional options.
type mergedlibraryOption func(*MergedLibraryMutation)

// newMergedLibraryMutation creates new mutation for the MergedLibrary entity.
func newMergedLibraryMutation(c config, op Op, opts ...mergedlibraryOption) *MergedLibraryMutation {
	m := &MergedLibraryMutation{
		config:        c,
		op:            op,
		typ:           TypeMergedLibrary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMergedLibraryID sets the ID field of the mutation.
func withMergedLibraryID(id uuid.UUID) mergedlibraryOption {
	return func(m *MergedLibraryMutation) {
		var (
			err   error
			once  sync.Once
			value *MergedLibrary
		)
		m.oldValue = func(ctx context.Context) (*MergedLibrary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MergedLibrary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMergedLibrary sets the old MergedLibrary of the mutation.
func withMergedLibrary(node *MergedLibrary) mergedlibraryOption {
	return func(m *MergedLibraryMutation) {
		m.oldValue = func(context.Context) (*MergedLibrary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MergedLibraryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MergedLibraryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MergedLibrary entities.
func (m *MergedLibraryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MergedLibraryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MergedLibraryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MergedLibrary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVirtualID sets the "virtual_id" field.
func (m *MergedLibraryMutation) SetVirtualID(s string) {
	m.virtual_id = &s
}

// VirtualID returns the value of the "virtual_id" field in the mutation.
func (m *MergedLibraryMutation) VirtualID() (r string, exists bool) {
	v := m.virtual_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVirtualID returns the old "virtual_id" field's value of the MergedLibrary entity.
// If the MergedLibrary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedLibraryMutation) OldVirtualID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVirtualID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVirtualID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVirtualID: %w", err)
	}
	return oldValue.VirtualID, nil
}

// ResetVirtualID resets all changes to the "virtual_id" field.
func (m *MergedLibraryMutation) ResetVirtualID() {
	m.virtual_id = nil
}

// SetName sets the "name" field.
func (m *MergedLibraryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MergedLibraryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the MergedLibrary entity.
// If the MergedLibrary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedLibraryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MergedLibraryMutation) ResetName() {
	m.name = nil
}

// SetCollectionType sets the "collection_type" field.
func (m *MergedLibraryMutation) SetCollectionType(mt mergedlibrary.CollectionType) {
	m.collection_type = &mt
}

// CollectionType returns the value of the "collection_type" field in the mutation.
func (m *MergedLibraryMutation) CollectionType() (r mergedlibrary.CollectionType, exists bool) {
	v := m.collection_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectionType returns the old "collection_type" field's value of the MergedLibrary entity.
// If the MergedLibrary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedLibraryMutation) OldCollectionType(ctx context.Context) (v mergedlibrary.CollectionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectionType: %w", err)
	}
	return oldValue.CollectionType, nil
}

// ResetCollectionType resets all changes to the "collection_type" field.
func (m *MergedLibraryMutation) ResetCollectionType() {
	m.collection_type = nil
}

// SetDedupStrategy sets the "dedup_strategy" field.
func (m *MergedLibraryMutation) SetDedupStrategy(ms mergedlibrary.DedupStrategy) {
	m.dedup_strategy = &ms
}

// DedupStrategy returns the value of the "dedup_strategy" field in the mutation.
func (m *MergedLibraryMutation) DedupStrategy() (r mergedlibrary.DedupStrategy, exists bool) {
	v := m.dedup_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupStrategy returns the old "dedup_strategy" field's value of the MergedLibrary entity.
// If the MergedLibrary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedLibraryMutation) OldDedupStrategy(ctx context.Context) (v mergedlibrary.DedupStrategy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupStrategy: %w", err)
	}
	return oldValue.DedupStrategy, nil
}

// ResetDedupStrategy resets all changes to the "dedup_strategy" field.
func (m *MergedLibraryMutation) ResetDedupStrategy() {
	m.dedup_strategy = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *MergedLibraryMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *MergedLibraryMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the MergedLibrary entity.
// If the MergedLibrary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedLibraryMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *MergedLibraryMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[mergedlibrary.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *MergedLibraryMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[mergedlibrary.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *MergedLibraryMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, mergedlibrary.FieldCreatedBy)
}

// SetIsGlobal sets the "is_global" field.
func (m *MergedLibraryMutation) SetIsGlobal(b bool) {
	m.is_global = &b
}

// IsGlobal returns the value of the "is_global" field in the mutation.
func (m *MergedLibraryMutation) IsGlobal() (r bool, exists bool) {
	v := m.is_global
	if v == nil {
		return
	}
	return *v, true
}

// OldIsGlobal returns the old "is_global" field's value of the MergedLibrary entity.
// If the MergedLibrary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedLibraryMutation) OldIsGlobal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsGlobal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsGlobal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsGlobal: %w", err)
	}
	return oldValue.IsGlobal, nil
}

// ResetIsGlobal resets all changes to the "is_global" field.
func (m *MergedLibraryMutation) ResetIsGlobal() {
	m.is_global = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MergedLibraryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MergedLibraryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MergedLibrary entity.
// If the MergedLibrary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedLibraryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MergedLibraryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MergedLibraryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MergedLibraryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MergedLibrary entity.
// If the MergedLibrary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedLibraryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MergedLibraryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddSourceIDs adds the "sources" edge to the MergedLibrarySource entity by ids.
func (m *MergedLibraryMutation) AddSourceIDs(ids ...uuid.UUID) {
	if m.sources == nil {
		m.sources = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sources[ids[i]] = struct{}{}
	}
}

// ClearSources clears the "sources" edge to the MergedLibrarySource entity.
func (m *MergedLibraryMutation) ClearSources() {
	m.clearedsources = true
}

// SourcesCleared reports if the "sources" edge to the MergedLibrarySource entity was cleared.
func (m *MergedLibraryMutation) SourcesCleared() bool {
	return m.clearedsources
}

// RemoveSourceIDs removes the "sources" edge to the MergedLibrarySource entity by IDs.
func (m *MergedLibraryMutation) RemoveSourceIDs(ids ...uuid.UUID) {
	if m.removedsources == nil {
		m.removedsources = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sources, ids[i])
		m.removedsources[ids[i]] = struct{}{}
	}
}

// RemovedSources returns the removed IDs of the "sources" edge to the MergedLibrarySource entity.
func (m *MergedLibraryMutation) RemovedSourcesIDs() (ids []uuid.UUID) {
	for id := range m.removedsources {
		ids = append(ids, id)
	}
	return
}

// SourcesIDs returns the "sources" edge IDs in the mutation.
func (m *MergedLibraryMutation) SourcesIDs() (ids []uuid.UUID) {
	for id := range m.sources {
		ids = append(ids, id)
	}
	return
}

// ResetSources resets all changes to the "sources" edge.
func (m *MergedLibraryMutation) ResetSources() {
	m.sources = nil
	m.clearedsources = false
	m.removedsources = nil
}

// Where appends a list predicates to the MergedLibraryMutation builder.
func (m *MergedLibraryMutation) Where(ps ...predicate.MergedLibrary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MergedLibraryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MergedLibraryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MergedLibrary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MergedLibraryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MergedLibraryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MergedLibrary).
func (m *MergedLibraryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MergedLibraryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.virtual_id != nil {
		fields = append(fields, mergedlibrary.FieldVirtualID)
	}
	if m.name != nil {
		fields = append(fields, mergedlibrary.FieldName)
	}
	if m.collection_type != nil {
		fields = append(fields, mergedlibrary.FieldCollectionType)
	}
	if m.dedup_strategy != nil {
		fields = append(fields, mergedlibrary.FieldDedupStrategy)
	}
	if m.created_by != nil {
		fields = append(fields, mergedlibrary.FieldCreatedBy)
	}
	if m.is_global != nil {
		fields = append(fields, mergedlibrary.FieldIsGlobal)
	}
	if m.created_at != nil {
		fields = append(fields, mergedlibrary.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, mergedlibrary.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MergedLibraryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mergedlibrary.FieldVirtualID:
		return m.VirtualID()
	case mergedlibrary.FieldName:
		return m.Name()
	case mergedlibrary.FieldCollectionType:
		return m.CollectionType()
	case mergedlibrary.FieldDedupStrategy:
		return m.DedupStrategy()
	case mergedlibrary.FieldCreatedBy:
		return m.CreatedBy()
	case mergedlibrary.FieldIsGlobal:
		return m.IsGlobal()
	case mergedlibrary.FieldCreatedAt:
		return m.CreatedAt()
	case mergedlibrary.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MergedLibraryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mergedlibrary.FieldVirtualID:
		return m.OldVirtualID(ctx)
	case mergedlibrary.FieldName:
		return m.OldName(ctx)
	case mergedlibrary.FieldCollectionType:
		return m.OldCollectionType(ctx)
	case mergedlibrary.FieldDedupStrategy:
		return m.OldDedupStrategy(ctx)
	case mergedlibrary.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case mergedlibrary.FieldIsGlobal:
		return m.OldIsGlobal(ctx)
	case mergedlibrary.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mergedlibrary.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MergedLibrary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MergedLibraryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mergedlibrary.FieldVirtualID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVirtualID(v)
		return nil
	case mergedlibrary.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case mergedlibrary.FieldCollectionType:
		v, ok := value.(mergedlibrary.CollectionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectionType(v)
		return nil
	case mergedlibrary.FieldDedupStrategy:
		v, ok := value.(mergedlibrary.DedupStrategy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupStrategy(v)
		return nil
	case mergedlibrary.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case mergedlibrary.FieldIsGlobal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsGlobal(v)
		return nil
	case mergedlibrary.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mergedlibrary.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MergedLibrary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MergedLibraryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MergedLibraryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MergedLibraryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MergedLibrary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MergedLibraryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mergedlibrary.FieldCreatedBy) {
		fields = append(fields, mergedlibrary.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MergedLibraryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MergedLibraryMutation) ClearField(name string) error {
	switch name {
	case mergedlibrary.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown MergedLibrary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MergedLibraryMutation) ResetField(name string) error {
	switch name {
	case mergedlibrary.FieldVirtualID:
		m.ResetVirtualID()
		return nil
	case mergedlibrary.FieldName:
		m.ResetName()
		return nil
	case mergedlibrary.FieldCollectionType:
		m.ResetCollectionType()
		return nil
	case mergedlibrary.FieldDedupStrategy:
		m.ResetDedupStrategy()
		return nil
	case mergedlibrary.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case mergedlibrary.FieldIsGlobal:
		m.ResetIsGlobal()
		return nil
	case mergedlibrary.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mergedlibrary.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MergedLibrary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MergedLibraryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.sources != nil {
		edges = append(edges, mergedlibrary.EdgeSources)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MergedLibraryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mergedlibrary.EdgeSources:
		ids := make([]ent.Value, 0, len(m.sources))
		for id := range m.sources {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MergedLibraryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsources != nil {
		edges = append(edges, mergedlibrary.EdgeSources)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MergedLibraryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case mergedlibrary.EdgeSources:
		ids := make([]ent.Value, 0, len(m.removedsources))
		for id := range m.removedsources {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MergedLibraryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsources {
		edges = append(edges, mergedlibrary.EdgeSources)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MergedLibraryMutation) EdgeCleared(name string) bool {
	switch name {
	case mergedlibrary.EdgeSources:
		return m.clearedsources
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MergedLibraryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown MergedLibrary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MergedLibraryMutation) ResetEdge(name string) error {
	switch name {
	case mergedlibrary.EdgeSources:
		m.ResetSources()
		return nil
	}
	return fmt.Errorf("unknown MergedLibrary edge %s", name)
}

// MergedLibrarySourceMutation represents an operation that mutates the MergedLibrarySource nodes in the graph.
type MergedLibrarySourceMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	library_id            *string
	library_name          *string
	priority              *int
	addpriority           *int
	created_at            *time.Time
	clearedFields         map[string]struct{}
	merged_library        *uuid.UUID
	clearedmerged_library bool
	server                *uuid.UUID
	clearedserver         bool
	done                  bool
	oldValue              func(context.Context) (*MergedLibrarySource, error)
	predicates            []predicate.MergedLibrarySource
}

var _ ent.Mutation = (*MergedLibrarySourceMutation)(nil)

// mergedlibrarysourceOption allows management of the mutation configuration using functional options.
type mergedlibrarysourceOption func(*MergedLibrarySourceMutation)

// newMergedLibrarySourceMutation creates new mutation for the MergedLibrarySource entity.
func newMergedLibrarySourceMutation(c config, op Op, opts ...mergedlibrarysourceOption) *MergedLibrarySourceMutation {
	m := &MergedLibrarySourceMutation{
		config:        c,
		op:            op,
		typ:           TypeMergedLibrarySource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMergedLibrarySourceID sets the ID field of the mutation.
func withMergedLibrarySourceID(id uuid.UUID) mergedlibrarysourceOption {
	return func(m *MergedLibrarySourceMutation) {
		var (
			err   error
			once  sync.Once
			value *MergedLibrarySource
		)
		m.oldValue = func(ctx context.Context) (*MergedLibrarySource, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MergedLibrarySource.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMergedLibrarySource sets the old MergedLibrarySource of the mutation.
func withMergedLibrarySource(node *MergedLibrarySource) mergedlibrarysourceOption {
	return func(m *MergedLibrarySourceMutation) {
		m.oldValue = func(context.Context) (*MergedLibrarySource, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MergedLibrarySourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MergedLibrarySourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MergedLibrarySource entities.
func (m *MergedLibrarySourceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MergedLibrarySourceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MergedLibrarySourceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MergedLibrarySource.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLibraryID sets the "library_id" field.
func (m *MergedLibrarySourceMutation) SetLibraryID(s string) {
	m.library_id = &s
}

// LibraryID returns the value of the "library_id" field in the mutation.
func (m *MergedLibrarySourceMutation) LibraryID() (r string, exists bool) {
	v := m.library_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLibraryID returns the old "library_id" field's value of the MergedLibrarySource entity.
// If the MergedLibrarySource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedLibrarySourceMutation) OldLibraryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLibraryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLibraryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLibraryID: %w", err)
	}
	return oldValue.LibraryID, nil
}

// ResetLibraryID resets all changes to the "library_id" field.
func (m *MergedLibrarySourceMutation) ResetLibraryID() {
	m.library_id = nil
}

// SetLibraryName sets the "library_name" field.
func (m *MergedLibrarySourceMutation) SetLibraryName(s string) {
	m.library_name = &s
}

// LibraryName returns the value of the "library_name" field in the mutation.
func (m *MergedLibrarySourceMutation) LibraryName() (r string, exists bool) {
	v := m.library_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLibraryName returns the old "library_name" field's value of the MergedLibrarySource entity.
// If the MergedLibrarySource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedLibrarySourceMutation) OldLibraryName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLibraryName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLibraryName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLibraryName: %w", err)
	}
	return oldValue.LibraryName, nil
}

// ClearLibraryName clears the value of the "library_name" field.
func (m *MergedLibrarySourceMutation) ClearLibraryName() {
	m.library_name = nil
	m.clearedFields[mergedlibrarysource.FieldLibraryName] = struct{}{}
}

// LibraryNameCleared returns if the "library_name" field was cleared in this mutation.
func (m *MergedLibrarySourceMutation) LibraryNameCleared() bool {
	_, ok := m.clearedFields[mergedlibrarysource.FieldLibraryName]
	return ok
}

// ResetLibraryName resets all changes to the "library_name" field.
func (m *MergedLibrarySourceMutation) ResetLibraryName() {
	m.library_name = nil
	delete(m.clearedFields, mergedlibrarysource.FieldLibraryName)
}

// SetPriority sets the "priority" field.
func (m *MergedLibrarySourceMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *MergedLibrarySourceMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the MergedLibrarySource entity.
// If the MergedLibrarySource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedLibrarySourceMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *MergedLibrarySourceMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *MergedLibrarySourceMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *MergedLibrarySourceMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MergedLibrarySourceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MergedLibrarySourceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MergedLibrarySource entity.
// If the MergedLibrarySource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedLibrarySourceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MergedLibrarySourceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetMergedLibraryID sets the "merged_library" edge to the MergedLibrary entity by id.
func (m *MergedLibrarySourceMutation) SetMergedLibraryID(id uuid.UUID) {
	m.merged_library = &id
}

// ClearMergedLibrary clears the "merged_library" edge to the MergedLibrary entity.
func (m *MergedLibrarySourceMutation) ClearMergedLibrary() {
	m.clearedmerged_library = true
}

// MergedLibraryCleared reports if the "merged_library" edge to the MergedLibrary entity was cleared.
func (m *MergedLibrarySourceMutation) MergedLibraryCleared() bool {
	return m.clearedmerged_library
}

// MergedLibraryID returns the "merged_library" edge ID in the mutation.
func (m *MergedLibrarySourceMutation) MergedLibraryID() (id uuid.UUID, exists bool) {
	if m.merged_library != nil {
		return *m.merged_library, true
	}
	return
}

// MergedLibraryIDs returns the "merged_library" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MergedLibraryID instead. It exists only for internal usage by the builders.
func (m *MergedLibrarySourceMutation) MergedLibraryIDs() (ids []uuid.UUID) {
	if id := m.merged_library; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMergedLibrary resets all changes to the "merged_library" edge.
func (m *MergedLibrarySourceMutation) ResetMergedLibrary() {
	m.merged_library = nil
	m.clearedmerged_library = false
}

// SetServerID sets the "server" edge to the Server entity by id.
func (m *MergedLibrarySourceMutation) SetServerID(id uuid.UUID) {
	m.server = &id
}

// ClearServer clears the "server" edge to the Server entity.
func (m *MergedLibrarySourceMutation) ClearServer() {
	m.clearedserver = true
}

// ServerCleared reports if the "server" edge to the Server entity was cleared.
func (m *MergedLibrarySourceMutation) ServerCleared() bool {
	return m.clearedserver
}

// ServerID returns the "server" edge ID in the mutation.
func (m *MergedLibrarySourceMutation) ServerID() (id uuid.UUID, exists bool) {
	if m.server != nil {
		return *m.server, true
	}
	return
}

// ServerIDs returns the "server" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ServerID instead. It exists only for internal usage by the builders.
func (m *MergedLibrarySourceMutation) ServerIDs() (ids []uuid.UUID) {
	if id := m.server; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetServer resets all changes to the "server" edge.
func (m *MergedLibrarySourceMutation) ResetServer() {
	m.server = nil
	m.clearedserver = false
}

// Where appends a list predicates to the MergedLibrarySourceMutation builder.
func (m *MergedLibrarySourceMutation) Where(ps ...predicate.MergedLibrarySource) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MergedLibrarySourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MergedLibrarySourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MergedLibrarySource, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MergedLibrarySourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MergedLibrarySourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MergedLibrarySource).
func (m *MergedLibrarySourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MergedLibrarySourceMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.library_id != nil {
		fields = append(fields, mergedlibrarysource.FieldLibraryID)
	}
	if m.library_name != nil {
		fields = append(fields, mergedlibrarysource.FieldLibraryName)
	}
	if m.priority != nil {
		fields = append(fields, mergedlibrarysource.FieldPriority)
	}
	if m.created_at != nil {
		fields = append(fields, mergedlibrarysource.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MergedLibrarySourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mergedlibrarysource.FieldLibraryID:
		return m.LibraryID()
	case mergedlibrarysource.FieldLibraryName:
		return m.LibraryName()
	case mergedlibrarysource.FieldPriority:
		return m.Priority()
	case mergedlibrarysource.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MergedLibrarySourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mergedlibrarysource.FieldLibraryID:
		return m.OldLibraryID(ctx)
	case mergedlibrarysource.FieldLibraryName:
		return m.OldLibraryName(ctx)
	case mergedlibrarysource.FieldPriority:
		return m.OldPriority(ctx)
	case mergedlibrarysource.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MergedLibrarySource field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MergedLibrarySourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mergedlibrarysource.FieldLibraryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLibraryID(v)
		return nil
	case mergedlibrarysource.FieldLibraryName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLibraryName(v)
		return nil
	case mergedlibrarysource.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case mergedlibrarysource.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MergedLibrarySource field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MergedLibrarySourceMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, mergedlibrarysource.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MergedLibrarySourceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mergedlibrarysource.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MergedLibrarySourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mergedlibrarysource.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown MergedLibrarySource numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MergedLibrarySourceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mergedlibrarysource.FieldLibraryName) {
		fields = append(fields, mergedlibrarysource.FieldLibraryName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MergedLibrarySourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MergedLibrarySourceMutation) ClearField(name string) error {
	switch name {
	case mergedlibrarysource.FieldLibraryName:
		m.ClearLibraryName()
		return nil
	}
	return fmt.Errorf("unknown MergedLibrarySource nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MergedLibrarySourceMutation) ResetField(name string) error {
	switch name {
	case mergedlibrarysource.FieldLibraryID:
		m.ResetLibraryID()
		return nil
	case mergedlibrarysource.FieldLibraryName:
		m.ResetLibraryName()
		return nil
	case mergedlibrarysource.FieldPriority:
		m.ResetPriority()
		return nil
	case mergedlibrarysource.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MergedLibrarySource field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MergedLibrarySourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.merged_library != nil {
		edges = append(edges, mergedlibrarysource.EdgeMergedLibrary)
	}
	if m.server != nil {
		edges = append(edges, mergedlibrarysource.EdgeServer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MergedLibrarySourceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mergedlibrarysource.EdgeMergedLibrary:
		if id := m.merged_library; id != nil {
			return []ent.Value{*id}
		}
	case mergedlibrarysource.EdgeServer:
		if id := m.server; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MergedLibrarySourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MergedLibrarySourceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MergedLibrarySourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmerged_library {
		edges = append(edges, mergedlibrarysource.EdgeMergedLibrary)
	}
	if m.clearedserver {
		edges = append(edges, mergedlibrarysource.EdgeServer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MergedLibrarySourceMutation) EdgeCleared(name string) bool {
	switch name {
	case mergedlibrarysource.EdgeMergedLibrary:
		return m.clearedmerged_library
	case mergedlibrarysource.EdgeServer:
		return m.clearedserver
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MergedLibrarySourceMutation) ClearEdge(name string) error {
	switch name {
	case mergedlibrarysource.EdgeMergedLibrary:
		m.ClearMergedLibrary()
		return nil
	case mergedlibrarysource.EdgeServer:
		m.ClearServer()
		return nil
	}
	return fmt.Errorf("unknown MergedLibrarySource unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MergedLibrarySourceMutation) ResetEdge(name string) error {
	switch name {
	case mergedlibrarysource.EdgeMergedLibrary:
		m.ResetMergedLibrary()
		return nil
	case mergedlibrarysource.EdgeServer:
		m.ResetServer()
		return nil
	}
	return fmt.Errorf("unknown MergedLibrarySource edge %s", name)
}

// ServerMutation represents an operation that mutates the Server nodes in the graph.
type ServerMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	name                   *string
	url                    *string
	priority               *int
	addpriority            *int
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	mappings               map[uuid.UUID]struct{}
	removedmappings        map[uuid.UUID]struct{}
	clearedmappings        bool
	media_mappings         map[uuid.UUID]struct{}
	removedmedia_mappings  map[uuid.UUID]struct{}
	clearedmedia_mappings  bool
	health_checks          map[uuid.UUID]struct{}
	removedhealth_checks   map[uuid.UUID]struct{}
	clearedhealth_checks   bool
	library_sources        map[uuid.UUID]struct{}
	removedlibrary_sources map[uuid.UUID]struct{}
	clearedlibrary_sources bool
	done                   bool
	oldValue               func(context.Context) (*Server, error)
	predicates             []predicate.Server
}

var _ ent.Mutation = (*ServerMutation)(nil)

// serverOption allows management of the mutation configuration using functional options.
type serverOption func(*ServerMutation)

// newServerMutation creates new mutation for the Server entity.
func newServerMutation(c config, op Op, opts ...serverOption) *ServerMutation {
	m := &ServerMutation{
		config:        c,
		op:            op,
		typ:           TypeServer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServerID sets the ID field of the mutation.
func withServerID(id uuid.UUID) serverOption {
	return func(m *ServerMutation) {
		var (
			err   error
			once  sync.Once
			value *Server
		)
		m.oldValue = func(ctx context.Context) (*Server, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Server.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServer sets the old Server of the mutation.
func withServer(node *Server) serverOption {
	return func(m *ServerMutation) {
		m.oldValue = func(context.Context) (*Server, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Server entities.
func (m *ServerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Server.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ServerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ServerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ServerMutation) ResetName() {
	m.name = nil
}

// SetURL sets the "url" field.
func (m *ServerMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ServerMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *ServerMutation) ResetURL() {
	m.url = nil
}

// SetPriority sets the "priority" field.
func (m *ServerMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ServerMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *ServerMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *ServerMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *ServerMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ServerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ServerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ServerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ServerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ServerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ServerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMappingIDs adds the "mappings" edge to the ServerMapping entity by ids.
func (m *ServerMutation) AddMappingIDs(ids ...uuid.UUID) {
	if m.mappings == nil {
		m.mappings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.mappings[ids[i]] = struct{}{}
	}
}

// ClearMappings clears the "mappings" edge to the ServerMapping entity.
func (m *ServerMutation) ClearMappings() {
	m.clearedmappings = true
}

// MappingsCleared reports if the "mappings" edge to the ServerMapping entity was cleared.
func (m *ServerMutation) MappingsCleared() bool {
	return m.clearedmappings
}

// RemoveMappingIDs removes the "mappings" edge to the ServerMapping entity by IDs.
func (m *ServerMutation) RemoveMappingIDs(ids ...uuid.UUID) {
	if m.removedmappings == nil {
		m.removedmappings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.mappings, ids[i])
		m.removedmappings[ids[i]] = struct{}{}
	}
}

// RemovedMappings returns the removed IDs of the "mappings" edge to the ServerMapping entity.
func (m *ServerMutation) RemovedMappingsIDs() (ids []uuid.UUID) {
	for id := range m.removedmappings {
		ids = append(ids, id)
	}
	return
}

// MappingsIDs returns the "mappings" edge IDs in the mutation.
func (m *ServerMutation) MappingsIDs() (ids []uuid.UUID) {
	for id := range m.mappings {
		ids = append(ids, id)
	}
	return
}

// ResetMappings resets all changes to the "mappings" edge.
func (m *ServerMutation) ResetMappings() {
	m.mappings = nil
	m.clearedmappings = false
	m.removedmappings = nil
}

// AddMediaMappingIDs adds the "media_mappings" edge to the MediaMapping entity by ids.
func (m *ServerMutation) AddMediaMappingIDs(ids ...uuid.UUID) {
	if m.media_mappings == nil {
		m.media_mappings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.media_mappings[ids[i]] = struct{}{}
	}
}

// ClearMediaMappings clears the "media_mappings" edge to the MediaMapping entity.
func (m *ServerMutation) ClearMediaMappings() {
	m.clearedmedia_mappings = true
}

// MediaMappingsCleared reports if the "media_mappings" edge to the MediaMapping entity was cleared.
func (m *ServerMutation) MediaMappingsCleared() bool {
	return m.clearedmedia_mappings
}

// RemoveMediaMappingIDs removes the "media_mappings" edge to the MediaMapping entity by IDs.
func (m *ServerMutation) RemoveMediaMappingIDs(ids ...uuid.UUID) {
	if m.removedmedia_mappings == nil {
		m.removedmedia_mappings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.media_mappings, ids[i])
		m.removedmedia_mappings[ids[i]] = struct{}{}
	}
}

// RemovedMediaMappings returns the removed IDs of the "media_mappings" edge to the MediaMapping entity.
func (m *ServerMutation) RemovedMediaMappingsIDs() (ids []uuid.UUID) {
	for id := range m.removedmedia_mappings {
		ids = append(ids, id)
	}
	return
}

// MediaMappingsIDs returns the "media_mappings" edge IDs in the mutation.
func (m *ServerMutation) MediaMappingsIDs() (ids []uuid.UUID) {
	for id := range m.media_mappings {
		ids = append(ids, id)
	}
	return
}

// ResetMediaMappings resets all changes to the "media_mappings" edge.
func (m *ServerMutation) ResetMediaMappings() {
	m.media_mappings = nil
	m.clearedmedia_mappings = false
	m.removedmedia_mappings = nil
}

// AddHealthCheckIDs adds the "health_checks" edge to the HealthCheck entity by ids.
func (m *ServerMutation) AddHealthCheckIDs(ids ...uuid.UUID) {
	if m.health_checks == nil {
		m.health_checks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.health_checks[ids[i]] = struct{}{}
	}
}

// ClearHealthChecks clears the "health_checks" edge to the HealthCheck entity.
func (m *ServerMutation) ClearHealthChecks() {
	m.clearedhealth_checks = true
}

// HealthChecksCleared reports if the "health_checks" edge to the HealthCheck entity was cleared.
func (m *ServerMutation) HealthChecksCleared() bool {
	return m.clearedhealth_checks
}

// RemoveHealthCheckIDs removes the "health_checks" edge to the HealthCheck entity by IDs.
func (m *ServerMutation) RemoveHealthCheckIDs(ids ...uuid.UUID) {
	if m.removedhealth_checks == nil {
		m.removedhealth_checks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.health_checks, ids[i])
		m.removedhealth_checks[ids[i]] = struct{}{}
	}
}

// RemovedHealthChecks returns the removed IDs of the "health_checks" edge to the HealthCheck entity.
func (m *ServerMutation) RemovedHealthChecksIDs() (ids []uuid.UUID) {
	for id := range m.removedhealth_checks {
		ids = append(ids, id)
	}
	return
}

// HealthChecksIDs returns the "health_checks" edge IDs in the mutation.
func (m *ServerMutation) HealthChecksIDs() (ids []uuid.UUID) {
	for id := range m.health_checks {
		ids = append(ids, id)
	}
	return
}

// ResetHealthChecks resets all changes to the "health_checks" edge.
func (m *ServerMutation) ResetHealthChecks() {
	m.health_checks = nil
	m.clearedhealth_checks = false
	m.removedhealth_checks = nil
}

// AddLibrarySourceIDs adds the "library_sources" edge to the MergedLibrarySource entity by ids.
func (m *ServerMutation) AddLibrarySourceIDs(ids ...uuid.UUID) {
	if m.library_sources == nil {
		m.library_sources = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.library_sources[ids[i]] = struct{}{}
	}
}

// ClearLibrarySources clears the "library_sources" edge to the MergedLibrarySource entity.
func (m *ServerMutation) ClearLibrarySources() {
	m.clearedlibrary_sources = true
}

// LibrarySourcesCleared reports if the "library_sources" edge to the MergedLibrarySource entity was cleared.
func (m *ServerMutation) LibrarySourcesCleared() bool {
	return m.clearedlibrary_sources
}

// RemoveLibrarySourceIDs removes the "library_sources" edge to the MergedLibrarySource entity by IDs.
func (m *ServerMutation) RemoveLibrarySourceIDs(ids ...uuid.UUID) {
	if m.removedlibrary_sources == nil {
		m.removedlibrary_sources = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.library_sources, ids[i])
		m.removedlibrary_sources[ids[i]] = struct{}{}
	}
}

// RemovedLibrarySources returns the removed IDs of the "library_sources" edge to the MergedLibrarySource entity.
func (m *ServerMutation) RemovedLibrarySourcesIDs() (ids []uuid.UUID) {
	for id := range m.removedlibrary_sources {
		ids = append(ids, id)
	}
	return
}

// LibrarySourcesIDs returns the "library_sources" edge IDs in the mutation.
func (m *ServerMutation) LibrarySourcesIDs() (ids []uuid.UUID) {
	for id := range m.library_sources {
		ids = append(ids, id)
	}
	return
}

// ResetLibrarySources resets all changes to the "library_sources" edge.
func (m *ServerMutation) ResetLibrarySources() {
	m.library_sources = nil
	m.clearedlibrary_sources = false
	m.removedlibrary_sources = nil
}

// Where appends a list predicates to the ServerMutation builder.
func (m *ServerMutation) Where(ps ...predicate.Server) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Server, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Server).
func (m *ServerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServerMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, server.FieldName)
	}
	if m.url != nil {
		fields = append(fields, server.FieldURL)
	}
	if m.priority != nil {
		fields = append(fields, server.FieldPriority)
	}
	if m.created_at != nil {
		fields = append(fields, server.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, server.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case server.FieldName:
		return m.Name()
	case server.FieldURL:
		return m.URL()
	case server.FieldPriority:
		return m.Priority()
	case server.FieldCreatedAt:
		return m.CreatedAt()
	case server.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case server.FieldName:
		return m.OldName(ctx)
	case server.FieldURL:
		return m.OldURL(ctx)
	case server.FieldPriority:
		return m.OldPriority(ctx)
	case server.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case server.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Server field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case server.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case server.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case server.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case server.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case server.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Server field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServerMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, server.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case server.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case server.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Server numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Server nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServerMutation) ResetField(name string) error {
	switch name {
	case server.FieldName:
		m.ResetName()
		return nil
	case server.FieldURL:
		m.ResetURL()
		return nil
	case server.FieldPriority:
		m.ResetPriority()
		return nil
	case server.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case server.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Server field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServerMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.mappings != nil {
		edges = append(edges, server.EdgeMappings)
	}
	if m.media_mappings != nil {
		edges = append(edges, server.EdgeMediaMappings)
	}
	if m.health_checks != nil {
		edges = append(edges, server.EdgeHealthChecks)
	}
	if m.library_sources != nil {
		edges = append(edges, server.EdgeLibrarySources)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case server.EdgeMappings:
		ids := make([]ent.Value, 0, len(m.mappings))
		for id := range m.mappings {
			ids = append(ids, id)
		}
		return ids
	case server.EdgeMediaMappings:
		ids := make([]ent.Value, 0, len(m.media_mappings))
		for id := range m.media_mappings {
			ids = append(ids, id)
		}
		return ids
	case server.EdgeHealthChecks:
		ids := make([]ent.Value, 0, len(m.health_checks))
		for id := range m.health_checks {
			ids = append(ids, id)
		}
		return ids
	case server.EdgeLibrarySources:
		ids := make([]ent.Value, 0, len(m.library_sources))
		for id := range m.library_sources {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedmappings != nil {
		edges = append(edges, server.EdgeMappings)
	}
	if m.removedmedia_mappings != nil {
		edges = append(edges, server.EdgeMediaMappings)
	}
	if m.removedhealth_checks != nil {
		edges = append(edges, server.EdgeHealthChecks)
	}
	if m.removedlibrary_sources != nil {
		edges = append(edges, server.EdgeLibrarySources)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case server.EdgeMappings:
		ids := make([]ent.Value, 0, len(m.removedmappings))
		for id := range m.removedmappings {
			ids = append(ids, id)
		}
		return ids
	case server.EdgeMediaMappings:
		ids := make([]ent.Value, 0, len(m.removedmedia_mappings))
		for id := range m.removedmedia_mappings {
			ids = append(ids, id)
		}
		return ids
	case server.EdgeHealthChecks:
		ids := make([]ent.Value, 0, len(m.removedhealth_checks))
		for id := range m.removedhealth_checks {
			ids = append(ids, id)
		}
		return ids
	case server.EdgeLibrarySources:
		ids := make([]ent.Value, 0, len(m.removedlibrary_sources))
		for id := range m.removedlibrary_sources {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedmappings {
		edges = append(edges, server.EdgeMappings)
	}
	if m.clearedmedia_mappings {
		edges = append(edges, server.EdgeMediaMappings)
	}
	if m.clearedhealth_checks {
		edges = append(edges, server.EdgeHealthChecks)
	}
	if m.clearedlibrary_sources {
		edges = append(edges, server.EdgeLibrarySources)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServerMutation) EdgeCleared(name string) bool {
	switch name {
	case server.EdgeMappings:
		return m.clearedmappings
	case server.EdgeMediaMappings:
		return m.clearedmedia_mappings
	case server.EdgeHealthChecks:
		return m.clearedhealth_checks
	case server.EdgeLibrarySources:
		return m.clearedlibrary_sources
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServerMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Server unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServerMutation) ResetEdge(name string) error {
	switch name {
	case server.EdgeMappings:
		m.ResetMappings()
		return nil
	case server.EdgeMediaMappings:
		m.ResetMediaMappings()
		return nil
	case server.EdgeHealthChecks:
		m.ResetHealthChecks()
		return nil
	case server.EdgeLibrarySources:
		m.ResetLibrarySources()
		return nil
	}
	return fmt.Errorf("unknown Server edge %s", name)
}

// ServerMappingMutation represents an operation that mutates the ServerMapping nodes in the graph.
type ServerMappingMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	remote_username    *string
	encrypted_password *string
	recovery_password  *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	user               *uuid.UUID
	cleareduser        bool
	server             *uuid.UUID
	clearedserver      bool
	sessions           map[uuid.UUID]struct{}
	removedsessions    map[uuid.UUID]struct{}
	clearedsessions    bool
	done               bool
	oldValue           func(context.Context) (*ServerMapping, error)
	predicates         []predicate.ServerMapping
}

var _ ent.Mutation = (*ServerMappingMutation)(nil)

// servermappingOption allows management of the mutation configuration using functional options.
type servermappingOption func(*ServerMappingMutation)

// newServerMappingMutation creates new mutation for the ServerMapping entity.
func newServerMappingMutation(c config, op Op, opts ...servermappingOption) *ServerMappingMutation {
	m := &ServerMappingMutation{
		config:        c,
		op:            op,
		typ:           TypeServerMapping,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServerMappingID sets the ID field of the mutation.
func withServerMappingID(id uuid.UUID) servermappingOption {
	return func(m *ServerMappingMutation) {
		var (
			err   error
			once  sync.Once
			value *ServerMapping
		)
		m.oldValue = func(ctx context.Context) (*ServerMapping, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ServerMapping.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServerMapping sets the old ServerMapping of the mutation.
func withServerMapping(node *ServerMapping) servermappingOption {
	return func(m *ServerMappingMutation) {
		m.oldValue = func(context.Context) (*ServerMapping, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServerMappingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServerMappingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ServerMapping entities.
func (m *ServerMappingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServerMappingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServerMappingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ServerMapping.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRemoteUsername sets the "remote_username" field.
func (m *ServerMappingMutation) SetRemoteUsername(s string) {
	m.remote_username = &s
}

// RemoteUsername returns the value of the "remote_username" field in the mutation.
func (m *ServerMappingMutation) RemoteUsername() (r string, exists bool) {
	v := m.remote_username
	if v == nil {
		return
	}
	return *v, true
}

// OldRemoteUsername returns the old "remote_username" field's value of the ServerMapping entity.
// If the ServerMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMappingMutation) OldRemoteUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemoteUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemoteUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemoteUsername: %w", err)
	}
	return oldValue.RemoteUsername, nil
}

// ResetRemoteUsername resets all changes to the "remote_username" field.
func (m *ServerMappingMutation) ResetRemoteUsername() {
	m.remote_username = nil
}

// SetEncryptedPassword sets the "encrypted_password" field.
func (m *ServerMappingMutation) SetEncryptedPassword(s string) {
	m.encrypted_password = &s
}

// EncryptedPassword returns the value of the "encrypted_password" field in the mutation.
func (m *ServerMappingMutation) EncryptedPassword() (r string, exists bool) {
	v := m.encrypted_password
	if v == nil {
		return
	}
	return *v, true
}

// OldEncryptedPassword returns the old "encrypted_password" field's value of the ServerMapping entity.
// If the ServerMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMappingMutation) OldEncryptedPassword(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncryptedPassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncryptedPassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncryptedPassword: %w", err)
	}
	return oldValue.EncryptedPassword, nil
}

// ResetEncryptedPassword resets all changes to the "encrypted_password" field.
func (m *ServerMappingMutation) ResetEncryptedPassword() {
	m.encrypted_password = nil
}

// SetRecoveryPassword sets the "recovery_password" field.
func (m *ServerMappingMutation) SetRecoveryPassword(s string) {
	m.recovery_password = &s
}

// RecoveryPassword returns the value of the "recovery_password" field in the mutation.
func (m *ServerMappingMutation) RecoveryPassword() (r string, exists bool) {
	v := m.recovery_password
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryPassword returns the old "recovery_password" field's value of the ServerMapping entity.
// If the ServerMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMappingMutation) OldRecoveryPassword(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryPassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryPassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryPassword: %w", err)
	}
	return oldValue.RecoveryPassword, nil
}

// ClearRecoveryPassword clears the value of the "recovery_password" field.
func (m *ServerMappingMutation) ClearRecoveryPassword() {
	m.recovery_password = nil
	m.clearedFields[servermapping.FieldRecoveryPassword] = struct{}{}
}

// RecoveryPasswordCleared returns if the "recovery_password" field was cleared in this mutation.
func (m *ServerMappingMutation) RecoveryPasswordCleared() bool {
	_, ok := m.clearedFields[servermapping.FieldRecoveryPassword]
	return ok
}

// ResetRecoveryPassword resets all changes to the "recovery_password" field.
func (m *ServerMappingMutation) ResetRecoveryPassword() {
	m.recovery_password = nil
	delete(m.clearedFields, servermapping.FieldRecoveryPassword)
}

// SetCreatedAt sets the "created_at" field.
func (m *ServerMappingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ServerMappingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ServerMapping entity.
// If the ServerMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMappingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ServerMappingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ServerMappingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ServerMappingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ServerMapping entity.
// If the ServerMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMappingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ServerMappingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *ServerMappingMutation) SetUserID(id uuid.UUID) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *ServerMappingMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ServerMappingMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *ServerMappingMutation) UserID() (id uuid.UUID, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ServerMappingMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ServerMappingMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// SetServerID sets the "server" edge to the Server entity by id.
func (m *ServerMappingMutation) SetServerID(id uuid.UUID) {
	m.server = &id
}

// ClearServer clears the "server" edge to the Server entity.
func (m *ServerMappingMutation) ClearServer() {
	m.clearedserver = true
}

// ServerCleared reports if the "server" edge to the Server entity was cleared.
func (m *ServerMappingMutation) ServerCleared() bool {
	return m.clearedserver
}

// ServerID returns the "server" edge ID in the mutation.
func (m *ServerMappingMutation) ServerID() (id uuid.UUID, exists bool) {
	if m.server != nil {
		return *m.server, true
	}
	return
}

// ServerIDs returns the "server" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ServerID instead. It exists only for internal usage by the builders.
func (m *ServerMappingMutation) ServerIDs() (ids []uuid.UUID) {
	if id := m.server; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetServer resets all changes to the "server" edge.
func (m *ServerMappingMutation) ResetServer() {
	m.server = nil
	m.clearedserver = false
}

// AddSessionIDs adds the "sessions" edge to the AuthSession entity by ids.
func (m *ServerMappingMutation) AddSessionIDs(ids ...uuid.UUID) {
	if m.sessions == nil {
		m.sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the AuthSession entity.
func (m *ServerMappingMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the AuthSession entity was cleared.
func (m *ServerMappingMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the AuthSession entity by IDs.
func (m *ServerMappingMutation) RemoveSessionIDs(ids ...uuid.UUID) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the AuthSession entity.
func (m *ServerMappingMutation) RemovedSessionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *ServerMappingMutation) SessionsIDs() (ids []uuid.UUID) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *ServerMappingMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the ServerMappingMutation builder.
func (m *ServerMappingMutation) Where(ps ...predicate.ServerMapping) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServerMappingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServerMappingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ServerMapping, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServerMappingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServerMappingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ServerMapping).
func (m *ServerMappingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServerMappingMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.remote_username != nil {
		fields = append(fields, servermapping.FieldRemoteUsername)
	}
	if m.encrypted_password != nil {
		fields = append(fields, servermapping.FieldEncryptedPassword)
	}
	if m.recovery_password != nil {
		fields = append(fields, servermapping.FieldRecoveryPassword)
	}
	if m.created_at != nil {
		fields = append(fields, servermapping.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, servermapping.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServerMappingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case servermapping.FieldRemoteUsername:
		return m.RemoteUsername()
	case servermapping.FieldEncryptedPassword:
		return m.EncryptedPassword()
	case servermapping.FieldRecoveryPassword:
		return m.RecoveryPassword()
	case servermapping.FieldCreatedAt:
		return m.CreatedAt()
	case servermapping.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServerMappingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case servermapping.FieldRemoteUsername:
		return m.OldRemoteUsername(ctx)
	case servermapping.FieldEncryptedPassword:
		return m.OldEncryptedPassword(ctx)
	case servermapping.FieldRecoveryPassword:
		return m.OldRecoveryPassword(ctx)
	case servermapping.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case servermapping.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ServerMapping field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServerMappingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case servermapping.FieldRemoteUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemoteUsername(v)
		return nil
	case servermapping.FieldEncryptedPassword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncryptedPassword(v)
		return nil
	case servermapping.FieldRecoveryPassword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryPassword(v)
		return nil
	case servermapping.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case servermapping.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ServerMapping field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServerMappingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServerMappingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServerMappingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ServerMapping numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServerMappingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(servermapping.FieldRecoveryPassword) {
		fields = append(fields, servermapping.FieldRecoveryPassword)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServerMappingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServerMappingMutation) ClearField(name string) error {
	switch name {
	case servermapping.FieldRecoveryPassword:
		m.ClearRecoveryPassword()
		return nil
	}
	return fmt.Errorf("unknown ServerMapping nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServerMappingMutation) ResetField(name string) error {
	switch name {
	case servermapping.FieldRemoteUsername:
		m.ResetRemoteUsername()
		return nil
	case servermapping.FieldEncryptedPassword:
		m.ResetEncryptedPassword()
		return nil
	case servermapping.FieldRecoveryPassword:
		m.ResetRecoveryPassword()
		return nil
	case servermapping.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case servermapping.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ServerMapping field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServerMappingMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.user != nil {
		edges = append(edges, servermapping.EdgeUser)
	}
	if m.server != nil {
		edges = append(edges, servermapping.EdgeServer)
	}
	if m.sessions != nil {
		edges = append(edges, servermapping.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServerMappingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case servermapping.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case servermapping.EdgeServer:
		if id := m.server; id != nil {
			return []ent.Value{*id}
		}
	case servermapping.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServerMappingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsessions != nil {
		edges = append(edges, servermapping.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServerMappingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case servermapping.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServerMappingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareduser {
		edges = append(edges, servermapping.EdgeUser)
	}
	if m.clearedserver {
		edges = append(edges, servermapping.EdgeServer)
	}
	if m.clearedsessions {
		edges = append(edges, servermapping.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServerMappingMutation) EdgeCleared(name string) bool {
	switch name {
	case servermapping.EdgeUser:
		return m.cleareduser
	case servermapping.EdgeServer:
		return m.clearedserver
	case servermapping.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServerMappingMutation) ClearEdge(name string) error {
	switch name {
	case servermapping.EdgeUser:
		m.ClearUser()
		return nil
	case servermapping.EdgeServer:
		m.ClearServer()
		return nil
	}
	return fmt.Errorf("unknown ServerMapping unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServerMappingMutation) ResetEdge(name string) error {
	switch name {
	case servermapping.EdgeUser:
		m.ResetUser()
		return nil
	case servermapping.EdgeServer:
		m.ResetServer()
		return nil
	case servermapping.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown ServerMapping edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	username        *string
	password_hash   *string
	key_hash        *string
	virtual_key     *string
	is_admin        *bool
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	mappings        map[uuid.UUID]struct{}
	removedmappings map[uuid.UUID]struct{}
	clearedmappings bool
	sessions        map[uuid.UUID]struct{}
	removedsessions map[uuid.UUID]struct{}
	clearedsessions bool
	done            bool
	oldValue        func(context.Context) (*User, error)
	predicates      []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetKeyHash sets the "key_hash" field.
func (m *UserMutation) SetKeyHash(s string) {
	m.key_hash = &s
}

// KeyHash returns the value of the "key_hash" field in the mutation.
func (m *UserMutation) KeyHash() (r string, exists bool) {
	v := m.key_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyHash returns the old "key_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldKeyHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyHash: %w", err)
	}
	return oldValue.KeyHash, nil
}

// ResetKeyHash resets all changes to the "key_hash" field.
func (m *UserMutation) ResetKeyHash() {
	m.key_hash = nil
}

// SetVirtualKey sets the "virtual_key" field.
func (m *UserMutation) SetVirtualKey(s string) {
	m.virtual_key = &s
}

// VirtualKey returns the value of the "virtual_key" field in the mutation.
func (m *UserMutation) VirtualKey() (r string, exists bool) {
	v := m.virtual_key
	if v == nil {
		return
	}
	return *v, true
}

// OldVirtualKey returns the old "virtual_key" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldVirtualKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVirtualKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVirtualKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVirtualKey: %w", err)
	}
	return oldValue.VirtualKey, nil
}

// ResetVirtualKey resets all changes to the "virtual_key" field.
func (m *UserMutation) ResetVirtualKey() {
	m.virtual_key = nil
}

// SetIsAdmin sets the "is_admin" field.
func (m *UserMutation) SetIsAdmin(b bool) {
	m.is_admin = &b
}

// IsAdmin returns the value of the "is_admin" field in the mutation.
func (m *UserMutation) IsAdmin() (r bool, exists bool) {
	v := m.is_admin
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAdmin returns the old "is_admin" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsAdmin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAdmin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAdmin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAdmin: %w", err)
	}
	return oldValue.IsAdmin, nil
}

// ResetIsAdmin resets all changes to the "is_admin" field.
func (m *UserMutation) ResetIsAdmin() {
	m.is_admin = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMappingIDs adds the "mappings" edge to the ServerMapping entity by ids.
func (m *UserMutation) AddMappingIDs(ids ...uuid.UUID) {
	if m.mappings == nil {
		m.mappings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.mappings[ids[i]] = struct{}{}
	}
}

// ClearMappings clears the "mappings" edge to the ServerMapping entity.
func (m *UserMutation) ClearMappings() {
	m.clearedmappings = true
}

// MappingsCleared reports if the "mappings" edge to the ServerMapping entity was cleared.
func (m *UserMutation) MappingsCleared() bool {
	return m.clearedmappings
}

// RemoveMappingIDs removes the "mappings" edge to the ServerMapping entity by IDs.
func (m *UserMutation) RemoveMappingIDs(ids ...uuid.UUID) {
	if m.removedmappings == nil {
		m.removedmappings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.mappings, ids[i])
		m.removedmappings[ids[i]] = struct{}{}
	}
}

// RemovedMappings returns the removed IDs of the "mappings" edge to the ServerMapping entity.
func (m *UserMutation) RemovedMappingsIDs() (ids []uuid.UUID) {
	for id := range m.removedmappings {
		ids = append(ids, id)
	}
	return
}

// MappingsIDs returns the "mappings" edge IDs in the mutation.
func (m *UserMutation) MappingsIDs() (ids []uuid.UUID) {
	for id := range m.mappings {
		ids = append(ids, id)
	}
	return
}

// ResetMappings resets all changes to the "mappings" edge.
func (m *UserMutation) ResetMappings() {
	m.mappings = nil
	m.clearedmappings = false
	m.removedmappings = nil
}

// AddSessionIDs adds the "sessions" edge to the AuthSession entity by ids.
func (m *UserMutation) AddSessionIDs(ids ...uuid.UUID) {
	if m.sessions == nil {
		m.sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the AuthSession entity.
func (m *UserMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the AuthSession entity was cleared.
func (m *UserMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the AuthSession entity by IDs.
func (m *UserMutation) RemoveSessionIDs(ids ...uuid.UUID) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the AuthSession entity.
func (m *UserMutation) RemovedSessionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *UserMutation) SessionsIDs() (ids []uuid.UUID) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *UserMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.key_hash != nil {
		fields = append(fields, user.FieldKeyHash)
	}
	if m.virtual_key != nil {
		fields = append(fields, user.FieldVirtualKey)
	}
	if m.is_admin != nil {
		fields = append(fields, user.FieldIsAdmin)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldUsername:
		return m.Username()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldKeyHash:
		return m.KeyHash()
	case user.FieldVirtualKey:
		return m.VirtualKey()
	case user.FieldIsAdmin:
		return m.IsAdmin()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldKeyHash:
		return m.OldKeyHash(ctx)
	case user.FieldVirtualKey:
		return m.OldVirtualKey(ctx)
	case user.FieldIsAdmin:
		return m.OldIsAdmin(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldKeyHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyHash(v)
		return nil
	case user.FieldVirtualKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVirtualKey(v)
		return nil
	case user.FieldIsAdmin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAdmin(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldKeyHash:
		m.ResetKeyHash()
		return nil
	case user.FieldVirtualKey:
		m.ResetVirtualKey()
		return nil
	case user.FieldIsAdmin:
		m.ResetIsAdmin()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.mappings != nil {
		edges = append(edges, user.EdgeMappings)
	}
	if m.sessions != nil {
		edges = append(edges, user.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeMappings:
		ids := make([]ent.Value, 0, len(m.mappings))
		for id := range m.mappings {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmappings != nil {
		edges = append(edges, user.EdgeMappings)
	}
	if m.removedsessions != nil {
		edges = append(edges, user.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeMappings:
		ids := make([]ent.Value, 0, len(m.removedmappings))
		for id := range m.removedmappings {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmappings {
		edges = append(edges, user.EdgeMappings)
	}
	if m.clearedsessions {
		edges = append(edges, user.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeMappings:
		return m.clearedmappings
	case user.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeMappings:
		m.ResetMappings()
		return nil
	case user.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
