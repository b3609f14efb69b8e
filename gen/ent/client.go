// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/joseph-ayodele/spendsync/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/joseph-ayodele/spendsync/gen/ent/categoryoverride"
	"github.com/joseph-ayodele/spendsync/gen/ent/merchantmapping"
	"github.com/joseph-ayodele/spendsync/gen/ent/synccursor"
	"github.com/joseph-ayodele/spendsync/gen/ent/transaction"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CategoryOverride is the client for interacting with the CategoryOverride builders.
	CategoryOverride *CategoryOverrideClient
	// MerchantMapping is the client for interacting with the MerchantMapping builders.
	MerchantMapping *MerchantMappingClient
	// SyncCursor is the client for interacting with the SyncCursor builders.
	SyncCursor *SyncCursorClient
	// Transaction is the client for interacting with the Transaction builders.
	Transaction *TransactionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CategoryOverride = NewCategoryOverrideClient(c.config)
	c.MerchantMapping = NewMerchantMappingClient(c.config)
	c.SyncCursor = NewSyncCursorClient(c.config)
	c.Transaction = NewTransactionClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		CategoryOverride: NewCategoryOverrideClient(cfg),
		MerchantMapping:  NewMerchantMappingClient(cfg),
		SyncCursor:       NewSyncCursorClient(cfg),
		Transaction:      NewTransactionClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		CategoryOverride: NewCategoryOverrideClient(cfg),
		MerchantMapping:  NewMerchantMappingClient(cfg),
		SyncCursor:       NewSyncCursorClient(cfg),
		Transaction:      NewTransactionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CategoryOverride.
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
	c.CategoryOverride.Use(hooks...)
	c.MerchantMapping.Use(hooks...)
	c.SyncCursor.Use(hooks...)
	c.Transaction.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CategoryOverride.Intercept(interceptors...)
	c.MerchantMapping.Intercept(interceptors...)
	c.SyncCursor.Intercept(interceptors...)
	c.Transaction.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CategoryOverrideMutation:
		return c.CategoryOverride.mutate(ctx, m)
	case *MerchantMappingMutation:
		return c.MerchantMapping.mutate(ctx, m)
	case *SyncCursorMutation:
		return c.SyncCursor.mutate(ctx, m)
	case *TransactionMutation:
		return c.Transaction.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CategoryOverrideClient is a client for the CategoryOverride schema.
type CategoryOverrideClient struct {
	config
}

// NewCategoryOverrideClient returns a client for the CategoryOverride from the given config.
func NewCategoryOverrideClient(c config) *CategoryOverrideClient {
	return &CategoryOverrideClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `categoryoverride.Hooks(f(g(h())))`.
func (c *CategoryOverrideClient) Use(hooks ...Hook) {
	c.hooks.CategoryOverride = append(c.hooks.CategoryOverride, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `categoryoverride.Intercept(f(g(h())))`.
func (c *CategoryOverrideClient) Intercept(interceptors ...Interceptor) {
	c.inters.CategoryOverride = append(c.inters.CategoryOverride, interceptors...)
}

// Create returns a builder for creating a CategoryOverride entity.
func (c *CategoryOverrideClient) Create() *CategoryOverrideCreate {
	mutation := newCategoryOverrideMutation(c.config, OpCreate)
	return &CategoryOverrideCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CategoryOverride entities.
func (c *CategoryOverrideClient) CreateBulk(builders ...*CategoryOverrideCreate) *CategoryOverrideCreateBulk {
	return &CategoryOverrideCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CategoryOverrideClient) MapCreateBulk(slice any, setFunc func(*CategoryOverrideCreate, int)) *CategoryOverrideCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CategoryOverrideCreateBulk{err: fmt.Errorf("calling to CategoryOverrideClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CategoryOverrideCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CategoryOverrideCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CategoryOverride.
func (c *CategoryOverrideClient) Update() *CategoryOverrideUpdate {
	mutation := newCategoryOverrideMutation(c.config, OpUpdate)
	return &CategoryOverrideUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CategoryOverrideClient) UpdateOne(_m *CategoryOverride) *CategoryOverrideUpdateOne {
	mutation := newCategoryOverrideMutation(c.config, OpUpdateOne, withCategoryOverride(_m))
	return &CategoryOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CategoryOverrideClient) UpdateOneID(id int) *CategoryOverrideUpdateOne {
	mutation := newCategoryOverrideMutation(c.config, OpUpdateOne, withCategoryOverrideID(id))
	return &CategoryOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CategoryOverride.
func (c *CategoryOverrideClient) Delete() *CategoryOverrideDelete {
	mutation := newCategoryOverrideMutation(c.config, OpDelete)
	return &CategoryOverrideDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CategoryOverrideClient) DeleteOne(_m *CategoryOverride) *CategoryOverrideDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CategoryOverrideClient) DeleteOneID(id int) *CategoryOverrideDeleteOne {
	builder := c.Delete().Where(categoryoverride.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CategoryOverrideDeleteOne{builder}
}

// Query returns a query builder for CategoryOverride.
func (c *CategoryOverrideClient) Query() *CategoryOverrideQuery {
	return &CategoryOverrideQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCategoryOverride},
		inters: c.Interceptors(),
	}
}

// Get returns a CategoryOverride entity by its id.
func (c *CategoryOverrideClient) Get(ctx context.Context, id int) (*CategoryOverride, error) {
	return c.Query().Where(categoryoverride.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CategoryOverrideClient) GetX(ctx context.Context, id int) *CategoryOverride {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CategoryOverrideClient) Hooks() []Hook {
	return c.hooks.CategoryOverride
}

// Interceptors returns the client interceptors.
func (c *CategoryOverrideClient) Interceptors() []Interceptor {
	return c.inters.CategoryOverride
}

func (c *CategoryOverrideClient) mutate(ctx context.Context, m *CategoryOverrideMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CategoryOverrideCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CategoryOverrideUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CategoryOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CategoryOverrideDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CategoryOverride mutation op: %q", m.Op())
	}
}

// MerchantMappingClient is a client for the MerchantMapping schema.
type MerchantMappingClient struct {
	config
}

// NewMerchantMappingClient returns a client for the MerchantMapping from the given config.
func NewMerchantMappingClient(c config) *MerchantMappingClient {
	return &MerchantMappingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `merchantmapping.Hooks(f(g(h())))`.
func (c *MerchantMappingClient) Use(hooks ...Hook) {
	c.hooks.MerchantMapping = append(c.hooks.MerchantMapping, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `merchantmapping.Intercept(f(g(h())))`.
func (c *MerchantMappingClient) Intercept(interceptors ...Interceptor) {
	c.inters.MerchantMapping = append(c.inters.MerchantMapping, interceptors...)
}

// Create returns a builder for creating a MerchantMapping entity.
func (c *MerchantMappingClient) Create() *MerchantMappingCreate {
	mutation := newMerchantMappingMutation(c.config, OpCreate)
	return &MerchantMappingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MerchantMapping entities.
func (c *MerchantMappingClient) CreateBulk(builders ...*MerchantMappingCreate) *MerchantMappingCreateBulk {
	return &MerchantMappingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MerchantMappingClient) MapCreateBulk(slice any, setFunc func(*MerchantMappingCreate, int)) *MerchantMappingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MerchantMappingCreateBulk{err: fmt.Errorf("calling to MerchantMappingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MerchantMappingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MerchantMappingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MerchantMapping.
func (c *MerchantMappingClient) Update() *MerchantMappingUpdate {
	mutation := newMerchantMappingMutation(c.config, OpUpdate)
	return &MerchantMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MerchantMappingClient) UpdateOne(_m *MerchantMapping) *MerchantMappingUpdateOne {
	mutation := newMerchantMappingMutation(c.config, OpUpdateOne, withMerchantMapping(_m))
	return &MerchantMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MerchantMappingClient) UpdateOneID(id int) *MerchantMappingUpdateOne {
	mutation := newMerchantMappingMutation(c.config, OpUpdateOne, withMerchantMappingID(id))
	return &MerchantMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MerchantMapping.
func (c *MerchantMappingClient) Delete() *MerchantMappingDelete {
	mutation := newMerchantMappingMutation(c.config, OpDelete)
	return &MerchantMappingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MerchantMappingClient) DeleteOne(_m *MerchantMapping) *MerchantMappingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MerchantMappingClient) DeleteOneID(id int) *MerchantMappingDeleteOne {
	builder := c.Delete().Where(merchantmapping.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MerchantMappingDeleteOne{builder}
}

// Query returns a query builder for MerchantMapping.
func (c *MerchantMappingClient) Query() *MerchantMappingQuery {
	return &MerchantMappingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMerchantMapping},
		inters: c.Interceptors(),
	}
}

// Get returns a MerchantMapping entity by its id.
func (c *MerchantMappingClient) Get(ctx context.Context, id int) (*MerchantMapping, error) {
	return c.Query().Where(merchantmapping.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MerchantMappingClient) GetX(ctx context.Context, id int) *MerchantMapping {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MerchantMappingClient) Hooks() []Hook {
	return c.hooks.MerchantMapping
}

// Interceptors returns the client interceptors.
func (c *MerchantMappingClient) Interceptors() []Interceptor {
	return c.inters.MerchantMapping
}

func (c *MerchantMappingClient) mutate(ctx context.Context, m *MerchantMappingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MerchantMappingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MerchantMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MerchantMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MerchantMappingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MerchantMapping mutation op: %q", m.Op())
	}
}

// SyncCursorClient is a client for the SyncCursor schema.
type SyncCursorClient struct {
	config
}

// NewSyncCursorClient returns a client for the SyncCursor from the given config.
func NewSyncCursorClient(c config) *SyncCursorClient {
	return &SyncCursorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `synccursor.Hooks(f(g(h())))`.
func (c *SyncCursorClient) Use(hooks ...Hook) {
	c.hooks.SyncCursor = append(c.hooks.SyncCursor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `synccursor.Intercept(f(g(h())))`.
func (c *SyncCursorClient) Intercept(interceptors ...Interceptor) {
	c.inters.SyncCursor = append(c.inters.SyncCursor, interceptors...)
}

// Create returns a builder for creating a SyncCursor entity.
func (c *SyncCursorClient) Create() *SyncCursorCreate {
	mutation := newSyncCursorMutation(c.config, OpCreate)
	return &SyncCursorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SyncCursor entities.
func (c *SyncCursorClient) CreateBulk(builders ...*SyncCursorCreate) *SyncCursorCreateBulk {
	return &SyncCursorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SyncCursorClient) MapCreateBulk(slice any, setFunc func(*SyncCursorCreate, int)) *SyncCursorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SyncCursorCreateBulk{err: fmt.Errorf("calling to SyncCursorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SyncCursorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SyncCursorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SyncCursor.
func (c *SyncCursorClient) Update() *SyncCursorUpdate {
	mutation := newSyncCursorMutation(c.config, OpUpdate)
	return &SyncCursorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SyncCursorClient) UpdateOne(_m *SyncCursor) *SyncCursorUpdateOne {
	mutation := newSyncCursorMutation(c.config, OpUpdateOne, withSyncCursor(_m))
	return &SyncCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SyncCursorClient) UpdateOneID(id int) *SyncCursorUpdateOne {
	mutation := newSyncCursorMutation(c.config, OpUpdateOne, withSyncCursorID(id))
	return &SyncCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SyncCursor.
func (c *SyncCursorClient) Delete() *SyncCursorDelete {
	mutation := newSyncCursorMutation(c.config, OpDelete)
	return &SyncCursorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SyncCursorClient) DeleteOne(_m *SyncCursor) *SyncCursorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SyncCursorClient) DeleteOneID(id int) *SyncCursorDeleteOne {
	builder := c.Delete().Where(synccursor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SyncCursorDeleteOne{builder}
}

// Query returns a query builder for SyncCursor.
func (c *SyncCursorClient) Query() *SyncCursorQuery {
	return &SyncCursorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSyncCursor},
		inters: c.Interceptors(),
	}
}

// Get returns a SyncCursor entity by its id.
func (c *SyncCursorClient) Get(ctx context.Context, id int) (*SyncCursor, error) {
	return c.Query().Where(synccursor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SyncCursorClient) GetX(ctx context.Context, id int) *SyncCursor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SyncCursorClient) Hooks() []Hook {
	return c.hooks.SyncCursor
}

// Interceptors returns the client interceptors.
func (c *SyncCursorClient) Interceptors() []Interceptor {
	return c.inters.SyncCursor
}

func (c *SyncCursorClient) mutate(ctx context.Context, m *SyncCursorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SyncCursorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SyncCursorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SyncCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SyncCursorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SyncCursor mutation op: %q", m.Op())
	}
}

// TransactionClient is a client for the Transaction schema.
type TransactionClient struct {
	config
}

// NewTransactionClient returns a client for the Transaction from the given config.
func NewTransactionClient(c config) *TransactionClient {
	return &TransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transaction.Hooks(f(g(h())))`.
func (c *TransactionClient) Use(hooks ...Hook) {
	c.hooks.Transaction = append(c.hooks.Transaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transaction.Intercept(f(g(h())))`.
func (c *TransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Transaction = append(c.inters.Transaction, interceptors...)
}

// Create returns a builder for creating a Transaction entity.
func (c *TransactionClient) Create() *TransactionCreate {
	mutation := newTransactionMutation(c.config, OpCreate)
	return &TransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Transaction entities.
func (c *TransactionClient) CreateBulk(builders ...*TransactionCreate) *TransactionCreateBulk {
	return &TransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TransactionClient) MapCreateBulk(slice any, setFunc func(*TransactionCreate, int)) *TransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TransactionCreateBulk{err: fmt.Errorf("calling to TransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Transaction.
func (c *TransactionClient) Update() *TransactionUpdate {
	mutation := newTransactionMutation(c.config, OpUpdate)
	return &TransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TransactionClient) UpdateOne(_m *Transaction) *TransactionUpdateOne {
	mutation := newTransactionMutation(c.config, OpUpdateOne, withTransaction(_m))
	return &TransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TransactionClient) UpdateOneID(id int64) *TransactionUpdateOne {
	mutation := newTransactionMutation(c.config, OpUpdateOne, withTransactionID(id))
	return &TransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Transaction.
func (c *TransactionClient) Delete() *TransactionDelete {
	mutation := newTransactionMutation(c.config, OpDelete)
	return &TransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TransactionClient) DeleteOne(_m *Transaction) *TransactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TransactionClient) DeleteOneID(id int64) *TransactionDeleteOne {
	builder := c.Delete().Where(transaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TransactionDeleteOne{builder}
}

// Query returns a query builder for Transaction.
func (c *TransactionClient) Query() *TransactionQuery {
	return &TransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a Transaction entity by its id.
func (c *TransactionClient) Get(ctx context.Context, id int64) (*Transaction, error) {
	return c.Query().Where(transaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TransactionClient) GetX(ctx context.Context, id int64) *Transaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TransactionClient) Hooks() []Hook {
	return c.hooks.Transaction
}

// Interceptors returns the client interceptors.
func (c *TransactionClient) Interceptors() []Interceptor {
	return c.inters.Transaction
}

func (c *TransactionClient) mutate(ctx context.Context, m *TransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Transaction mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CategoryOverride, MerchantMapping, SyncCursor, Transaction []ent.Hook
	}
	inters struct {
		CategoryOverride, MerchantMapping, SyncCursor, Transaction []ent.Interceptor
	}
)
