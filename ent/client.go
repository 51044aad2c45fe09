// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/jellyswarrm/jellyswarrm/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jellyswarrm/jellyswarrm/ent/apikey"
	"github.com/jellyswarrm/jellyswarrm/ent/auditlog"
	"github.com/jellyswarrm/jellyswarrm/ent/authsession"
	"github.com/jellyswarrm/jellyswarrm/ent/healthcheck"
	"github.com/jellyswarrm/jellyswarrm/ent/mediamapping"
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrary"
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrarysource"
	"github.com/jellyswarrm/jellyswarrm/ent/server"
	"github.com/jellyswarrm/jellyswarrm/ent/servermapping"
	"github.com/jellyswarrm/jellyswarrm/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// APIKey is the client for interacting with the APIKey builders.
	APIKey *APIKeyClient
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// AuthSession is the client for interacting with the AuthSession builders.
	AuthSession *AuthSessionClient
	// HealthCheck is the client for interacting with the HealthCheck builders.
	HealthCheck *HealthCheckClient
	// MediaMapping is the client for interacting with the MediaMapping builders.
	MediaMapping *MediaMappingClient
	// MergedLibrary is the client for interacting with the MergedLibrary builders.
	MergedLibrary *MergedLibraryClient
	// MergedLibrarySource is the client for interacting with the MergedLibrarySource builders.
	MergedLibrarySource *MergedLibrarySourceClient
	// Server is the client for interacting with the Server builders.
	Server *ServerClient
	// ServerMapping is the client for interacting with the ServerMapping builders.
	ServerMapping *ServerMappingClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.APIKey = NewAPIKeyClient(c.config)
	c.AuditLog = NewAuditLogClient(c.config)
	c.AuthSession = NewAuthSessionClient(c.config)
	c.HealthCheck = NewHealthCheckClient(c.config)
	c.MediaMapping = NewMediaMappingClient(c.config)
	c.MergedLibrary = NewMergedLibraryClient(c.config)
	c.MergedLibrarySource = NewMergedLibrarySourceClient(c.config)
	c.Server = NewServerClient(c.config)
	c.ServerMapping = NewServerMappingClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		APIKey:              NewAPIKeyClient(cfg),
		AuditLog:            NewAuditLogClient(cfg),
		AuthSession:         NewAuthSessionClient(cfg),
		HealthCheck:         NewHealthCheckClient(cfg),
		MediaMapping:        NewMediaMappingClient(cfg),
		MergedLibrary:       NewMergedLibraryClient(cfg),
		MergedLibrarySource: NewMergedLibrarySourceClient(cfg),
		Server:              NewServerClient(cfg),
		ServerMapping:       NewServerMappingClient(cfg),
		User:                NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		APIKey:              NewAPIKeyClient(cfg),
		AuditLog:            NewAuditLogClient(cfg),
		AuthSession:         NewAuthSessionClient(cfg),
		HealthCheck:         NewHealthCheckClient(cfg),
		MediaMapping:        NewMediaMappingClient(cfg),
		MergedLibrary:       NewMergedLibraryClient(cfg),
		MergedLibrarySource: NewMergedLibrarySourceClient(cfg),
		Server:              NewServerClient(cfg),
		ServerMapping:       NewServerMappingClient(cfg),
		User:                NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		APIKey.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.APIKey, c.AuditLog, c.AuthSession, c.HealthCheck, c.MediaMapping,
		c.MergedLibrary, c.MergedLibrarySource, c.Server, c.ServerMapping, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.APIKey, c.AuditLog, c.AuthSession, c.HealthCheck, c.MediaMapping,
		c.MergedLibrary, c.MergedLibrarySource, c.Server, c.ServerMapping, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *APIKeyMutation:
		return c.APIKey.mutate(ctx, m)
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *AuthSessionMutation:
		return c.AuthSession.mutate(ctx, m)
	case *HealthCheckMutation:
		return c.HealthCheck.mutate(ctx, m)
	case *MediaMappingMutation:
		return c.MediaMapping.mutate(ctx, m)
	case *MergedLibraryMutation:
		return c.MergedLibrary.mutate(ctx, m)
	case *MergedLibrarySourceMutation:
		return c.MergedLibrarySource.mutate(ctx, m)
	case *ServerMutation:
		return c.Server.mutate(ctx, m)
	case *ServerMappingMutation:
		return c.ServerMapping.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// APIKeyClient is a client for the APIKey schema.
type APIKeyClient struct {
	config
}

// NewAPIKeyClient returns a client for the APIKey from the given config.
func NewAPIKeyClient(c config) *APIKeyClient {
	return &APIKeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `apikey.Hooks(f(g(h())))`.
func (c *APIKeyClient) Use(hooks ...Hook) {
	c.hooks.APIKey = append(c.hooks.APIKey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `apikey.Intercept(f(g(h())))`.
func (c *APIKeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.APIKey = append(c.inters.APIKey, interceptors...)
}

// Create returns a builder for creating a APIKey entity.
func (c *APIKeyClient) Create() *APIKeyCreate {
	mutation := newAPIKeyMutation(c.config, OpCreate)
	return &APIKeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of APIKey entities.
func (c *APIKeyClient) CreateBulk(builders ...*APIKeyCreate) *APIKeyCreateBulk {
	return &APIKeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *APIKeyClient) MapCreateBulk(slice any, setFunc func(*APIKeyCreate, int)) *APIKeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &APIKeyCreateBulk{err: fmt.Errorf("calling to APIKeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*APIKeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &APIKeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for APIKey.
func (c *APIKeyClient) Update() *APIKeyUpdate {
	mutation := newAPIKeyMutation(c.config, OpUpdate)
	return &APIKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *APIKeyClient) UpdateOne(_m *APIKey) *APIKeyUpdateOne {
	mutation := newAPIKeyMutation(c.config, OpUpdateOne, withAPIKey(_m))
	return &APIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *APIKeyClient) UpdateOneID(id uuid.UUID) *APIKeyUpdateOne {
	mutation := newAPIKeyMutation(c.config, OpUpdateOne, withAPIKeyID(id))
	return &APIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for APIKey.
func (c *APIKeyClient) Delete() *APIKeyDelete {
	mutation := newAPIKeyMutation(c.config, OpDelete)
	return &APIKeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *APIKeyClient) DeleteOne(_m *APIKey) *APIKeyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *APIKeyClient) DeleteOneID(id uuid.UUID) *APIKeyDeleteOne {
	builder := c.Delete().Where(apikey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &APIKeyDeleteOne{builder}
}

// Query returns a query builder for APIKey.
func (c *APIKeyClient) Query() *APIKeyQuery {
	return &APIKeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAPIKey},
		inters: c.Interceptors(),
	}
}

// Get returns a APIKey entity by its id.
func (c *APIKeyClient) Get(ctx context.Context, id uuid.UUID) (*APIKey, error) {
	return c.Query().Where(apikey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *APIKeyClient) GetX(ctx context.Context, id uuid.UUID) *APIKey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *APIKeyClient) Hooks() []Hook {
	return c.hooks.APIKey
}

// Interceptors returns the client interceptors.
func (c *APIKeyClient) Interceptors() []Interceptor {
	return c.inters.APIKey
}

func (c *APIKeyClient) mutate(ctx context.Context, m *APIKeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&APIKeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&APIKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&APIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&APIKeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown APIKey mutation op: %q", m.Op())
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id uuid.UUID) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id uuid.UUID) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id uuid.UUID) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id uuid.UUID) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// AuthSessionClient is a client for the AuthSession schema.
type AuthSessionClient struct {
	config
}

// NewAuthSessionClient returns a client for the AuthSession from the given config.
func NewAuthSessionClient(c config) *AuthSessionClient {
	return &AuthSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `authsession.Hooks(f(g(h())))`.
func (c *AuthSessionClient) Use(hooks ...Hook) {
	c.hooks.AuthSession = append(c.hooks.AuthSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `authsession.Intercept(f(g(h())))`.
func (c *AuthSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuthSession = append(c.inters.AuthSession, interceptors...)
}

// Create returns a builder for creating a AuthSession entity.
func (c *AuthSessionClient) Create() *AuthSessionCreate {
	mutation := newAuthSessionMutation(c.config, OpCreate)
	return &AuthSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuthSession entities.
func (c *AuthSessionClient) CreateBulk(builders ...*AuthSessionCreate) *AuthSessionCreateBulk {
	return &AuthSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuthSessionClient) MapCreateBulk(slice any, setFunc func(*AuthSessionCreate, int)) *AuthSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuthSessionCreateBulk{err: fmt.Errorf("calling to AuthSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuthSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuthSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuthSession.
func (c *AuthSessionClient) Update() *AuthSessionUpdate {
	mutation := newAuthSessionMutation(c.config, OpUpdate)
	return &AuthSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuthSessionClient) UpdateOne(_m *AuthSession) *AuthSessionUpdateOne {
	mutation := newAuthSessionMutation(c.config, OpUpdateOne, withAuthSession(_m))
	return &AuthSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuthSessionClient) UpdateOneID(id uuid.UUID) *AuthSessionUpdateOne {
	mutation := newAuthSessionMutation(c.config, OpUpdateOne, withAuthSessionID(id))
	return &AuthSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuthSession.
func (c *AuthSessionClient) Delete() *AuthSessionDelete {
	mutation := newAuthSessionMutation(c.config, OpDelete)
	return &AuthSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuthSessionClient) DeleteOne(_m *AuthSession) *AuthSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuthSessionClient) DeleteOneID(id uuid.UUID) *AuthSessionDeleteOne {
	builder := c.Delete().Where(authsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuthSessionDeleteOne{builder}
}

// Query returns a query builder for AuthSession.
func (c *AuthSessionClient) Query() *AuthSessionQuery {
	return &AuthSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuthSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AuthSession entity by its id.
func (c *AuthSessionClient) Get(ctx context.Context, id uuid.UUID) (*AuthSession, error) {
	return c.Query().Where(authsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuthSessionClient) GetX(ctx context.Context, id uuid.UUID) *AuthSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a AuthSession.
func (c *AuthSessionClient) QueryUser(_m *AuthSession) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(authsession.Table, authsession.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, authsession.UserTable, authsession.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMapping queries the mapping edge of a AuthSession.
func (c *AuthSessionClient) QueryMapping(_m *AuthSession) *ServerMappingQuery {
	query := (&ServerMappingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(authsession.Table, authsession.FieldID, id),
			sqlgraph.To(servermapping.Table, servermapping.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, authsession.MappingTable, authsession.MappingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuthSessionClient) Hooks() []Hook {
	return c.hooks.AuthSession
}

// Interceptors returns the client interceptors.
func (c *AuthSessionClient) Interceptors() []Interceptor {
	return c.inters.AuthSession
}

func (c *AuthSessionClient) mutate(ctx context.Context, m *AuthSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuthSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuthSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuthSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuthSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuthSession mutation op: %q", m.Op())
	}
}

// HealthCheckClient is a client for the HealthCheck schema.
type HealthCheckClient struct {
	config
}

// NewHealthCheckClient returns a client for the HealthCheck from the given config.
func NewHealthCheckClient(c config) *HealthCheckClient {
	return &HealthCheckClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `healthcheck.Hooks(f(g(h())))`.
func (c *HealthCheckClient) Use(hooks ...Hook) {
	c.hooks.HealthCheck = append(c.hooks.HealthCheck, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `healthcheck.Intercept(f(g(h())))`.
func (c *HealthCheckClient) Intercept(interceptors ...Interceptor) {
	c.inters.HealthCheck = append(c.inters.HealthCheck, interceptors...)
}

// Create returns a builder for creating a HealthCheck entity.
func (c *HealthCheckClient) Create() *HealthCheckCreate {
	mutation := newHealthCheckMutation(c.config, OpCreate)
	return &HealthCheckCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HealthCheck entities.
func (c *HealthCheckClient) CreateBulk(builders ...*HealthCheckCreate) *HealthCheckCreateBulk {
	return &HealthCheckCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HealthCheckClient) MapCreateBulk(slice any, setFunc func(*HealthCheckCreate, int)) *HealthCheckCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HealthCheckCreateBulk{err: fmt.Errorf("calling to HealthCheckClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HealthCheckCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HealthCheckCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HealthCheck.
func (c *HealthCheckClient) Update() *HealthCheckUpdate {
	mutation := newHealthCheckMutation(c.config, OpUpdate)
	return &HealthCheckUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HealthCheckClient) UpdateOne(_m *HealthCheck) *HealthCheckUpdateOne {
	mutation := newHealthCheckMutation(c.config, OpUpdateOne, withHealthCheck(_m))
	return &HealthCheckUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HealthCheckClient) UpdateOneID(id uuid.UUID) *HealthCheckUpdateOne {
	mutation := newHealthCheckMutation(c.config, OpUpdateOne, withHealthCheckID(id))
	return &HealthCheckUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HealthCheck.
func (c *HealthCheckClient) Delete() *HealthCheckDelete {
	mutation := newHealthCheckMutation(c.config, OpDelete)
	return &HealthCheckDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HealthCheckClient) DeleteOne(_m *HealthCheck) *HealthCheckDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HealthCheckClient) DeleteOneID(id uuid.UUID) *HealthCheckDeleteOne {
	builder := c.Delete().Where(healthcheck.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HealthCheckDeleteOne{builder}
}

// Query returns a query builder for HealthCheck.
func (c *HealthCheckClient) Query() *HealthCheckQuery {
	return &HealthCheckQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHealthCheck},
		inters: c.Interceptors(),
	}
}

// Get returns a HealthCheck entity by its id.
func (c *HealthCheckClient) Get(ctx context.Context, id uuid.UUID) (*HealthCheck, error) {
	return c.Query().Where(healthcheck.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HealthCheckClient) GetX(ctx context.Context, id uuid.UUID) *HealthCheck {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryServer queries the server edge of a HealthCheck.
func (c *HealthCheckClient) QueryServer(_m *HealthCheck) *ServerQuery {
	query := (&ServerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(healthcheck.Table, healthcheck.FieldID, id),
			sqlgraph.To(server.Table, server.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, healthcheck.ServerTable, healthcheck.ServerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HealthCheckClient) Hooks() []Hook {
	return c.hooks.HealthCheck
}

// Interceptors returns the client interceptors.
func (c *HealthCheckClient) Interceptors() []Interceptor {
	return c.inters.HealthCheck
}

func (c *HealthCheckClient) mutate(ctx context.Context, m *HealthCheckMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HealthCheckCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HealthCheckUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HealthCheckUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HealthCheckDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HealthCheck mutation op: %q", m.Op())
	}
}

// MediaMappingClient is a client for the MediaMapping schema.
type MediaMappingClient struct {
	config
}

// NewMediaMappingClient returns a client for the MediaMapping from the given config.
func NewMediaMappingClient(c config) *MediaMappingClient {
	return &MediaMappingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mediamapping.Hooks(f(g(h())))`.
func (c *MediaMappingClient) Use(hooks ...Hook) {
	c.hooks.MediaMapping = append(c.hooks.MediaMapping, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mediamapping.Intercept(f(g(h())))`.
func (c *MediaMappingClient) Intercept(interceptors ...Interceptor) {
	c.inters.MediaMapping = append(c.inters.MediaMapping, interceptors...)
}

// Create returns a builder for creating a MediaMapping entity.
func (c *MediaMappingClient) Create() *MediaMappingCreate {
	mutation := newMediaMappingMutation(c.config, OpCreate)
	return &MediaMappingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MediaMapping entities.
func (c *MediaMappingClient) CreateBulk(builders ...*MediaMappingCreate) *MediaMappingCreateBulk {
	return &MediaMappingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MediaMappingClient) MapCreateBulk(slice any, setFunc func(*MediaMappingCreate, int)) *MediaMappingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MediaMappingCreateBulk{err: fmt.Errorf("calling to MediaMappingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MediaMappingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MediaMappingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MediaMapping.
func (c *MediaMappingClient) Update() *MediaMappingUpdate {
	mutation := newMediaMappingMutation(c.config, OpUpdate)
	return &MediaMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MediaMappingClient) UpdateOne(_m *MediaMapping) *MediaMappingUpdateOne {
	mutation := newMediaMappingMutation(c.config, OpUpdateOne, withMediaMapping(_m))
	return &MediaMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MediaMappingClient) UpdateOneID(id uuid.UUID) *MediaMappingUpdateOne {
	mutation := newMediaMappingMutation(c.config, OpUpdateOne, withMediaMappingID(id))
	return &MediaMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MediaMapping.
func (c *MediaMappingClient) Delete() *MediaMappingDelete {
	mutation := newMediaMappingMutation(c.config, OpDelete)
	return &MediaMappingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MediaMappingClient) DeleteOne(_m *MediaMapping) *MediaMappingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MediaMappingClient) DeleteOneID(id uuid.UUID) *MediaMappingDeleteOne {
	builder := c.Delete().Where(mediamapping.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MediaMappingDeleteOne{builder}
}

// Query returns a query builder for MediaMapping.
func (c *MediaMappingClient) Query() *MediaMappingQuery {
	return &MediaMappingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMediaMapping},
		inters: c.Interceptors(),
	}
}

// Get returns a MediaMapping entity by its id.
func (c *MediaMappingClient) Get(ctx context.Context, id uuid.UUID) (*MediaMapping, error) {
	return c.Query().Where(mediamapping.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MediaMappingClient) GetX(ctx context.Context, id uuid.UUID) *MediaMapping {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryServer queries the server edge of a MediaMapping.
func (c *MediaMappingClient) QueryServer(_m *MediaMapping) *ServerQuery {
	query := (&ServerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mediamapping.Table, mediamapping.FieldID, id),
			sqlgraph.To(server.Table, server.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mediamapping.ServerTable, mediamapping.ServerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MediaMappingClient) Hooks() []Hook {
	return c.hooks.MediaMapping
}

// Interceptors returns the client interceptors.
func (c *MediaMappingClient) Interceptors() []Interceptor {
	return c.inters.MediaMapping
}

func (c *MediaMappingClient) mutate(ctx context.Context, m *MediaMappingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MediaMappingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MediaMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MediaMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MediaMappingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MediaMapping mutation op: %q", m.Op())
	}
}

// MergedLibraryClient is a client for the MergedLibrary schema.
type MergedLibraryClient struct {
	config
}

// NewMergedLibraryClient returns a client for the MergedLibrary from the given config.
func NewMergedLibraryClient(c config) *MergedLibraryClient {
	return &MergedLibraryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mergedlibrary.Hooks(f(g(h())))`.
func (c *MergedLibraryClient) Use(hooks ...Hook) {
	c.hooks.MergedLibrary = append(c.hooks.MergedLibrary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mergedlibrary.Intercept(f(g(h())))`.
func (c *MergedLibraryClient) Intercept(interceptors ...Interceptor) {
	c.inters.MergedLibrary = append(c.inters.MergedLibrary, interceptors...)
}

// Create returns a builder for creating a MergedLibrary entity.
func (c *MergedLibraryClient) Create() *MergedLibraryCreate {
	mutation := newMergedLibraryMutation(c.config, OpCreate)
	return &MergedLibraryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MergedLibrary entities.
func (c *MergedLibraryClient) CreateBulk(builders ...*MergedLibraryCreate) *MergedLibraryCreateBulk {
	return &MergedLibraryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MergedLibraryClient) MapCreateBulk(slice any, setFunc func(*MergedLibraryCreate, int)) *MergedLibraryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MergedLibraryCreateBulk{err: fmt.Errorf("calling to MergedLibraryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MergedLibraryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MergedLibraryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MergedLibrary.
func (c *MergedLibraryClient) Update() *MergedLibraryUpdate {
	mutation := newMergedLibraryMutation(c.config, OpUpdate)
	return &MergedLibraryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MergedLibraryClient) UpdateOne(_m *MergedLibrary) *MergedLibraryUpdateOne {
	mutation := newMergedLibraryMutation(c.config, OpUpdateOne, withMergedLibrary(_m))
	return &MergedLibraryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MergedLibraryClient) UpdateOneID(id uuid.UUID) *MergedLibraryUpdateOne {
	mutation := newMergedLibraryMutation(c.config, OpUpdateOne, withMergedLibraryID(id))
	return &MergedLibraryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MergedLibrary.
func (c *MergedLibraryClient) Delete() *MergedLibraryDelete {
	mutation := newMergedLibraryMutation(c.config, OpDelete)
	return &MergedLibraryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MergedLibraryClient) DeleteOne(_m *MergedLibrary) *MergedLibraryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MergedLibraryClient) DeleteOneID(id uuid.UUID) *MergedLibraryDeleteOne {
	builder := c.Delete().Where(mergedlibrary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MergedLibraryDeleteOne{builder}
}

// Query returns a query builder for MergedLibrary.
func (c *MergedLibraryClient) Query() *MergedLibraryQuery {
	return &MergedLibraryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMergedLibrary},
		inters: c.Interceptors(),
	}
}

// Get returns a MergedLibrary entity by its id.
func (c *MergedLibraryClient) Get(ctx context.Context, id uuid.UUID) (*MergedLibrary, error) {
	return c.Query().Where(mergedlibrary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MergedLibraryClient) GetX(ctx context.Context, id uuid.UUID) *MergedLibrary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySources queries the sources edge of a MergedLibrary.
func (c *MergedLibraryClient) QuerySources(_m *MergedLibrary) *MergedLibrarySourceQuery {
	query := (&MergedLibrarySourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mergedlibrary.Table, mergedlibrary.FieldID, id),
			sqlgraph.To(mergedlibrarysource.Table, mergedlibrarysource.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, mergedlibrary.SourcesTable, mergedlibrary.SourcesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MergedLibraryClient) Hooks() []Hook {
	return c.hooks.MergedLibrary
}

// Interceptors returns the client interceptors.
func (c *MergedLibraryClient) Interceptors() []Interceptor {
	return c.inters.MergedLibrary
}

func (c *MergedLibraryClient) mutate(ctx context.Context, m *MergedLibraryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MergedLibraryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MergedLibraryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MergedLibraryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MergedLibraryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MergedLibrary mutation op: %q", m.Op())
	}
}

// MergedLibrarySourceClient is a client for the MergedLibrarySource schema.
type MergedLibrarySourceClient struct {
	config
}

// NewMergedLibrarySourceClient returns a client for the MergedLibrarySource from the given config.
func NewMergedLibrarySourceClient(c config) *MergedLibrarySourceClient {
	return &MergedLibrarySourceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mergedlibrarysource.Hooks(f(g(h())))`.
func (c *MergedLibrarySourceClient) Use(hooks ...Hook) {
	c.hooks.MergedLibrarySource = append(c.hooks.MergedLibrarySource, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mergedlibrarysource.Intercept(f(g(h())))`.
func (c *MergedLibrarySourceClient) Intercept(interceptors ...Interceptor) {
	c.inters.MergedLibrarySource = append(c.inters.MergedLibrarySource, interceptors...)
}

// Create returns a builder for creating a MergedLibrarySource entity.
func (c *MergedLibrarySourceClient) Create() *MergedLibrarySourceCreate {
	mutation := newMergedLibrarySourceMutation(c.config, OpCreate)
	return &MergedLibrarySourceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MergedLibrarySource entities.
func (c *MergedLibrarySourceClient) CreateBulk(builders ...*MergedLibrarySourceCreate) *MergedLibrarySourceCreateBulk {
	return &MergedLibrarySourceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MergedLibrarySourceClient) MapCreateBulk(slice any, setFunc func(*MergedLibrarySourceCreate, int)) *MergedLibrarySourceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MergedLibrarySourceCreateBulk{err: fmt.Errorf("calling to MergedLibrarySourceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MergedLibrarySourceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MergedLibrarySourceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MergedLibrarySource.
func (c *MergedLibrarySourceClient) Update() *MergedLibrarySourceUpdate {
	mutation := newMergedLibrarySourceMutation(c.config, OpUpdate)
	return &MergedLibrarySourceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MergedLibrarySourceClient) UpdateOne(_m *MergedLibrarySource) *MergedLibrarySourceUpdateOne {
	mutation := newMergedLibrarySourceMutation(c.config, OpUpdateOne, withMergedLibrarySource(_m))
	return &MergedLibrarySourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MergedLibrarySourceClient) UpdateOneID(id uuid.UUID) *MergedLibrarySourceUpdateOne {
	mutation := newMergedLibrarySourceMutation(c.config, OpUpdateOne, withMergedLibrarySourceID(id))
	return &MergedLibrarySourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MergedLibrarySource.
func (c *MergedLibrarySourceClient) Delete() *MergedLibrarySourceDelete {
	mutation := newMergedLibrarySourceMutation(c.config, OpDelete)
	return &MergedLibrarySourceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MergedLibrarySourceClient) DeleteOne(_m *MergedLibrarySource) *MergedLibrarySourceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MergedLibrarySourceClient) DeleteOneID(id uuid.UUID) *MergedLibrarySourceDeleteOne {
	builder := c.Delete().Where(mergedlibrarysource.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MergedLibrarySourceDeleteOne{builder}
}

// Query returns a query builder for MergedLibrarySource.
func (c *MergedLibrarySourceClient) Query() *MergedLibrarySourceQuery {
	return &MergedLibrarySourceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMergedLibrarySource},
		inters: c.Interceptors(),
	}
}

// Get returns a MergedLibrarySource entity by its id.
func (c *MergedLibrarySourceClient) Get(ctx context.Context, id uuid.UUID) (*MergedLibrarySource, error) {
	return c.Query().Where(mergedlibrarysource.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MergedLibrarySourceClient) GetX(ctx context.Context, id uuid.UUID) *MergedLibrarySource {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMergedLibrary queries the merged_library edge of a MergedLibrarySource.
func (c *MergedLibrarySourceClient) QueryMergedLibrary(_m *MergedLibrarySource) *MergedLibraryQuery {
	query := (&MergedLibraryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mergedlibrarysource.Table, mergedlibrarysource.FieldID, id),
			sqlgraph.To(mergedlibrary.Table, mergedlibrary.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mergedlibrarysource.MergedLibraryTable, mergedlibrarysource.MergedLibraryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryServer queries the server edge of a MergedLibrarySource.
func (c *MergedLibrarySourceClient) QueryServer(_m *MergedLibrarySource) *ServerQuery {
	query := (&ServerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mergedlibrarysource.Table, mergedlibrarysource.FieldID, id),
			sqlgraph.To(server.Table, server.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mergedlibrarysource.ServerTable, mergedlibrarysource.ServerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MergedLibrarySourceClient) Hooks() []Hook {
	return c.hooks.MergedLibrarySource
}

// Interceptors returns the client interceptors.
func (c *MergedLibrarySourceClient) Interceptors() []Interceptor {
	return c.inters.MergedLibrarySource
}

func (c *MergedLibrarySourceClient) mutate(ctx context.Context, m *MergedLibrarySourceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MergedLibrarySourceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MergedLibrarySourceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MergedLibrarySourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MergedLibrarySourceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MergedLibrarySource mutation op: %q", m.Op())
	}
}

// ServerClient is a client for the Server schema.
type ServerClient struct {
	config
}

// NewServerClient returns a client for the Server from the given config.
func NewServerClient(c config) *ServerClient {
	return &ServerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `server.Hooks(f(g(h())))`.
func (c *ServerClient) Use(hooks ...Hook) {
	c.hooks.Server = append(c.hooks.Server, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `server.Intercept(f(g(h())))`.
func (c *ServerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Server = append(c.inters.Server, interceptors...)
}

// Create returns a builder for creating a Server entity.
func (c *ServerClient) Create() *ServerCreate {
	mutation := newServerMutation(c.config, OpCreate)
	return &ServerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Server entities.
func (c *ServerClient) CreateBulk(builders ...*ServerCreate) *ServerCreateBulk {
	return &ServerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServerClient) MapCreateBulk(slice any, setFunc func(*ServerCreate, int)) *ServerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServerCreateBulk{err: fmt.Errorf("calling to ServerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Server.
func (c *ServerClient) Update() *ServerUpdate {
	mutation := newServerMutation(c.config, OpUpdate)
	return &ServerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServerClient) UpdateOne(_m *Server) *ServerUpdateOne {
	mutation := newServerMutation(c.config, OpUpdateOne, withServer(_m))
	return &ServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServerClient) UpdateOneID(id uuid.UUID) *ServerUpdateOne {
	mutation := newServerMutation(c.config, OpUpdateOne, withServerID(id))
	return &ServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Server.
func (c *ServerClient) Delete() *ServerDelete {
	mutation := newServerMutation(c.config, OpDelete)
	return &ServerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServerClient) DeleteOne(_m *Server) *ServerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServerClient) DeleteOneID(id uuid.UUID) *ServerDeleteOne {
	builder := c.Delete().Where(server.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServerDeleteOne{builder}
}

// Query returns a query builder for Server.
func (c *ServerClient) Query() *ServerQuery {
	return &ServerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServer},
		inters: c.Interceptors(),
	}
}

// Get returns a Server entity by its id.
func (c *ServerClient) Get(ctx context.Context, id uuid.UUID) (*Server, error) {
	return c.Query().Where(server.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServerClient) GetX(ctx context.Context, id uuid.UUID) *Server {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMappings queries the mappings edge of a Server.
func (c *ServerClient) QueryMappings(_m *Server) *ServerMappingQuery {
	query := (&ServerMappingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(server.Table, server.FieldID, id),
			sqlgraph.To(servermapping.Table, servermapping.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, server.MappingsTable, server.MappingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMediaMappings queries the media_mappings edge of a Server.
func (c *ServerClient) QueryMediaMappings(_m *Server) *MediaMappingQuery {
	query := (&MediaMappingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(server.Table, server.FieldID, id),
			sqlgraph.To(mediamapping.Table, mediamapping.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, server.MediaMappingsTable, server.MediaMappingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHealthChecks queries the health_checks edge of a Server.
func (c *ServerClient) QueryHealthChecks(_m *Server) *HealthCheckQuery {
	query := (&HealthCheckClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(server.Table, server.FieldID, id),
			sqlgraph.To(healthcheck.Table, healthcheck.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, server.HealthChecksTable, server.HealthChecksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLibrarySources queries the library_sources edge of a Server.
func (c *ServerClient) QueryLibrarySources(_m *Server) *MergedLibrarySourceQuery {
	query := (&MergedLibrarySourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(server.Table, server.FieldID, id),
			sqlgraph.To(mergedlibrarysource.Table, mergedlibrarysource.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, server.LibrarySourcesTable, server.LibrarySourcesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ServerClient) Hooks() []Hook {
	return c.hooks.Server
}

// Interceptors returns the client interceptors.
func (c *ServerClient) Interceptors() []Interceptor {
	return c.inters.Server
}

func (c *ServerClient) mutate(ctx context.Context, m *ServerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Server mutation op: %q", m.Op())
	}
}

// ServerMappingClient is a client for the ServerMapping schema.
type ServerMappingClient struct {
	config
}

// NewServerMappingClient returns a client for the ServerMapping from the given config.
func NewServerMappingClient(c config) *ServerMappingClient {
	return &ServerMappingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `servermapping.Hooks(f(g(h())))`.
func (c *ServerMappingClient) Use(hooks ...Hook) {
	c.hooks.ServerMapping = append(c.hooks.ServerMapping, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `servermapping.Intercept(f(g(h())))`.
func (c *ServerMappingClient) Intercept(interceptors ...Interceptor) {
	c.inters.ServerMapping = append(c.inters.ServerMapping, interceptors...)
}

// Create returns a builder for creating a ServerMapping entity.
func (c *ServerMappingClient) Create() *ServerMappingCreate {
	mutation := newServerMappingMutation(c.config, OpCreate)
	return &ServerMappingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ServerMapping entities.
func (c *ServerMappingClient) CreateBulk(builders ...*ServerMappingCreate) *ServerMappingCreateBulk {
	return &ServerMappingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServerMappingClient) MapCreateBulk(slice any, setFunc func(*ServerMappingCreate, int)) *ServerMappingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServerMappingCreateBulk{err: fmt.Errorf("calling to ServerMappingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServerMappingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServerMappingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ServerMapping.
func (c *ServerMappingClient) Update() *ServerMappingUpdate {
	mutation := newServerMappingMutation(c.config, OpUpdate)
	return &ServerMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServerMappingClient) UpdateOne(_m *ServerMapping) *ServerMappingUpdateOne {
	mutation := newServerMappingMutation(c.config, OpUpdateOne, withServerMapping(_m))
	return &ServerMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServerMappingClient) UpdateOneID(id uuid.UUID) *ServerMappingUpdateOne {
	mutation := newServerMappingMutation(c.config, OpUpdateOne, withServerMappingID(id))
	return &ServerMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ServerMapping.
func (c *ServerMappingClient) Delete() *ServerMappingDelete {
	mutation := newServerMappingMutation(c.config, OpDelete)
	return &ServerMappingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServerMappingClient) DeleteOne(_m *ServerMapping) *ServerMappingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServerMappingClient) DeleteOneID(id uuid.UUID) *ServerMappingDeleteOne {
	builder := c.Delete().Where(servermapping.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServerMappingDeleteOne{builder}
}

// Query returns a query builder for ServerMapping.
func (c *ServerMappingClient) Query() *ServerMappingQuery {
	return &ServerMappingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServerMapping},
		inters: c.Interceptors(),
	}
}

// Get returns a ServerMapping entity by its id.
func (c *ServerMappingClient) Get(ctx context.Context, id uuid.UUID) (*ServerMapping, error) {
	return c.Query().Where(servermapping.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServerMappingClient) GetX(ctx context.Context, id uuid.UUID) *ServerMapping {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a ServerMapping.
func (c *ServerMappingClient) QueryUser(_m *ServerMapping) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(servermapping.Table, servermapping.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, servermapping.UserTable, servermapping.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryServer queries the server edge of a ServerMapping.
func (c *ServerMappingClient) QueryServer(_m *ServerMapping) *ServerQuery {
	query := (&ServerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(servermapping.Table, servermapping.FieldID, id),
			sqlgraph.To(server.Table, server.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, servermapping.ServerTable, servermapping.ServerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a ServerMapping.
func (c *ServerMappingClient) QuerySessions(_m *ServerMapping) *AuthSessionQuery {
	query := (&AuthSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(servermapping.Table, servermapping.FieldID, id),
			sqlgraph.To(authsession.Table, authsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, servermapping.SessionsTable, servermapping.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ServerMappingClient) Hooks() []Hook {
	return c.hooks.ServerMapping
}

// Interceptors returns the client interceptors.
func (c *ServerMappingClient) Interceptors() []Interceptor {
	return c.inters.ServerMapping
}

func (c *ServerMappingClient) mutate(ctx context.Context, m *ServerMappingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServerMappingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServerMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServerMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServerMappingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ServerMapping mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMappings queries the mappings edge of a User.
func (c *UserClient) QueryMappings(_m *User) *ServerMappingQuery {
	query := (&ServerMappingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(servermapping.Table, servermapping.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.MappingsTable, user.MappingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a User.
func (c *UserClient) QuerySessions(_m *User) *AuthSessionQuery {
	query := (&AuthSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(authsession.Table, authsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.SessionsTable, user.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		APIKey, AuditLog, AuthSession, HealthCheck, MediaMapping, MergedLibrary,
		MergedLibrarySource, Server, ServerMapping, User []ent.Hook
	}
	inters struct {
		APIKey, AuditLog, AuthSession, HealthCheck, MediaMapping, MergedLibrary,
		MergedLibrarySource, Server, ServerMapping, User []ent.Interceptor
	}
)
