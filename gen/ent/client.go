// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/avesh-singh/neet-pg-checker/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/admissionrecord"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/processedfile"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/verificationrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AdmissionRecord is the client for interacting with the AdmissionRecord builders.
	AdmissionRecord *AdmissionRecordClient
	// ProcessedFile is the client for interacting with the ProcessedFile builders.
	ProcessedFile *ProcessedFileClient
	// VerificationRecord is the client for interacting with the VerificationRecord builders.
	VerificationRecord *VerificationRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AdmissionRecord = NewAdmissionRecordClient(c.config)
	c.ProcessedFile = NewProcessedFileClient(c.config)
	c.VerificationRecord = NewVerificationRecordClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		AdmissionRecord:    NewAdmissionRecordClient(cfg),
		ProcessedFile:      NewProcessedFileClient(cfg),
		VerificationRecord: NewVerificationRecordClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		AdmissionRecord:    NewAdmissionRecordClient(cfg),
		ProcessedFile:      NewProcessedFileClient(cfg),
		VerificationRecord: NewVerificationRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AdmissionRecord.
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
	c.AdmissionRecord.Use(hooks...)
	c.ProcessedFile.Use(hooks...)
	c.VerificationRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AdmissionRecord.Intercept(interceptors...)
	c.ProcessedFile.Intercept(interceptors...)
	c.VerificationRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdmissionRecordMutation:
		return c.AdmissionRecord.mutate(ctx, m)
	case *ProcessedFileMutation:
		return c.ProcessedFile.mutate(ctx, m)
	case *VerificationRecordMutation:
		return c.VerificationRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AdmissionRecordClient is a client for the AdmissionRecord schema.
type AdmissionRecordClient struct {
	config
}

// NewAdmissionRecordClient returns a client for the AdmissionRecord from the given config.
func NewAdmissionRecordClient(c config) *AdmissionRecordClient {
	return &AdmissionRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `admissionrecord.Hooks(f(g(h())))`.
func (c *AdmissionRecordClient) Use(hooks ...Hook) {
	c.hooks.AdmissionRecord = append(c.hooks.AdmissionRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `admissionrecord.Intercept(f(g(h())))`.
func (c *AdmissionRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdmissionRecord = append(c.inters.AdmissionRecord, interceptors...)
}

// Create returns a builder for creating a AdmissionRecord entity.
func (c *AdmissionRecordClient) Create() *AdmissionRecordCreate {
	mutation := newAdmissionRecordMutation(c.config, OpCreate)
	return &AdmissionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdmissionRecord entities.
func (c *AdmissionRecordClient) CreateBulk(builders ...*AdmissionRecordCreate) *AdmissionRecordCreateBulk {
	return &AdmissionRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdmissionRecordClient) MapCreateBulk(slice any, setFunc func(*AdmissionRecordCreate, int)) *AdmissionRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdmissionRecordCreateBulk{err: fmt.Errorf("calling to AdmissionRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdmissionRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdmissionRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdmissionRecord.
func (c *AdmissionRecordClient) Update() *AdmissionRecordUpdate {
	mutation := newAdmissionRecordMutation(c.config, OpUpdate)
	return &AdmissionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdmissionRecordClient) UpdateOne(_m *AdmissionRecord) *AdmissionRecordUpdateOne {
	mutation := newAdmissionRecordMutation(c.config, OpUpdateOne, withAdmissionRecord(_m))
	return &AdmissionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdmissionRecordClient) UpdateOneID(id uuid.UUID) *AdmissionRecordUpdateOne {
	mutation := newAdmissionRecordMutation(c.config, OpUpdateOne, withAdmissionRecordID(id))
	return &AdmissionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdmissionRecord.
func (c *AdmissionRecordClient) Delete() *AdmissionRecordDelete {
	mutation := newAdmissionRecordMutation(c.config, OpDelete)
	return &AdmissionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdmissionRecordClient) DeleteOne(_m *AdmissionRecord) *AdmissionRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdmissionRecordClient) DeleteOneID(id uuid.UUID) *AdmissionRecordDeleteOne {
	builder := c.Delete().Where(admissionrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdmissionRecordDeleteOne{builder}
}

// Query returns a query builder for AdmissionRecord.
func (c *AdmissionRecordClient) Query() *AdmissionRecordQuery {
	return &AdmissionRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdmissionRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a AdmissionRecord entity by its id.
func (c *AdmissionRecordClient) Get(ctx context.Context, id uuid.UUID) (*AdmissionRecord, error) {
	return c.Query().Where(admissionrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdmissionRecordClient) GetX(ctx context.Context, id uuid.UUID) *AdmissionRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVerifications queries the verifications edge of a AdmissionRecord.
func (c *AdmissionRecordClient) QueryVerifications(_m *AdmissionRecord) *VerificationRecordQuery {
	query := (&VerificationRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(admissionrecord.Table, admissionrecord.FieldID, id),
			sqlgraph.To(verificationrecord.Table, verificationrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, admissionrecord.VerificationsTable, admissionrecord.VerificationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AdmissionRecordClient) Hooks() []Hook {
	return c.hooks.AdmissionRecord
}

// Interceptors returns the client interceptors.
func (c *AdmissionRecordClient) Interceptors() []Interceptor {
	return c.inters.AdmissionRecord
}

func (c *AdmissionRecordClient) mutate(ctx context.Context, m *AdmissionRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdmissionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdmissionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdmissionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdmissionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AdmissionRecord mutation op: %q", m.Op())
	}
}

// ProcessedFileClient is a client for the ProcessedFile schema.
type ProcessedFileClient struct {
	config
}

// NewProcessedFileClient returns a client for the ProcessedFile from the given config.
func NewProcessedFileClient(c config) *ProcessedFileClient {
	return &ProcessedFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processedfile.Hooks(f(g(h())))`.
func (c *ProcessedFileClient) Use(hooks ...Hook) {
	c.hooks.ProcessedFile = append(c.hooks.ProcessedFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processedfile.Intercept(f(g(h())))`.
func (c *ProcessedFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessedFile = append(c.inters.ProcessedFile, interceptors...)
}

// Create returns a builder for creating a ProcessedFile entity.
func (c *ProcessedFileClient) Create() *ProcessedFileCreate {
	mutation := newProcessedFileMutation(c.config, OpCreate)
	return &ProcessedFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessedFile entities.
func (c *ProcessedFileClient) CreateBulk(builders ...*ProcessedFileCreate) *ProcessedFileCreateBulk {
	return &ProcessedFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessedFileClient) MapCreateBulk(slice any, setFunc func(*ProcessedFileCreate, int)) *ProcessedFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessedFileCreateBulk{err: fmt.Errorf("calling to ProcessedFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessedFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessedFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessedFile.
func (c *ProcessedFileClient) Update() *ProcessedFileUpdate {
	mutation := newProcessedFileMutation(c.config, OpUpdate)
	return &ProcessedFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessedFileClient) UpdateOne(_m *ProcessedFile) *ProcessedFileUpdateOne {
	mutation := newProcessedFileMutation(c.config, OpUpdateOne, withProcessedFile(_m))
	return &ProcessedFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessedFileClient) UpdateOneID(id uuid.UUID) *ProcessedFileUpdateOne {
	mutation := newProcessedFileMutation(c.config, OpUpdateOne, withProcessedFileID(id))
	return &ProcessedFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessedFile.
func (c *ProcessedFileClient) Delete() *ProcessedFileDelete {
	mutation := newProcessedFileMutation(c.config, OpDelete)
	return &ProcessedFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessedFileClient) DeleteOne(_m *ProcessedFile) *ProcessedFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessedFileClient) DeleteOneID(id uuid.UUID) *ProcessedFileDeleteOne {
	builder := c.Delete().Where(processedfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessedFileDeleteOne{builder}
}

// Query returns a query builder for ProcessedFile.
func (c *ProcessedFileClient) Query() *ProcessedFileQuery {
	return &ProcessedFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessedFile},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessedFile entity by its id.
func (c *ProcessedFileClient) Get(ctx context.Context, id uuid.UUID) (*ProcessedFile, error) {
	return c.Query().Where(processedfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessedFileClient) GetX(ctx context.Context, id uuid.UUID) *ProcessedFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVerifications queries the verifications edge of a ProcessedFile.
func (c *ProcessedFileClient) QueryVerifications(_m *ProcessedFile) *VerificationRecordQuery {
	query := (&VerificationRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processedfile.Table, processedfile.FieldID, id),
			sqlgraph.To(verificationrecord.Table, verificationrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, processedfile.VerificationsTable, processedfile.VerificationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessedFileClient) Hooks() []Hook {
	return c.hooks.ProcessedFile
}

// Interceptors returns the client interceptors.
func (c *ProcessedFileClient) Interceptors() []Interceptor {
	return c.inters.ProcessedFile
}

func (c *ProcessedFileClient) mutate(ctx context.Context, m *ProcessedFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessedFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessedFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessedFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessedFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessedFile mutation op: %q", m.Op())
	}
}

// VerificationRecordClient is a client for the VerificationRecord schema.
type VerificationRecordClient struct {
	config
}

// NewVerificationRecordClient returns a client for the VerificationRecord from the given config.
func NewVerificationRecordClient(c config) *VerificationRecordClient {
	return &VerificationRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verificationrecord.Hooks(f(g(h())))`.
func (c *VerificationRecordClient) Use(hooks ...Hook) {
	c.hooks.VerificationRecord = append(c.hooks.VerificationRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verificationrecord.Intercept(f(g(h())))`.
func (c *VerificationRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.VerificationRecord = append(c.inters.VerificationRecord, interceptors...)
}

// Create returns a builder for creating a VerificationRecord entity.
func (c *VerificationRecordClient) Create() *VerificationRecordCreate {
	mutation := newVerificationRecordMutation(c.config, OpCreate)
	return &VerificationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VerificationRecord entities.
func (c *VerificationRecordClient) CreateBulk(builders ...*VerificationRecordCreate) *VerificationRecordCreateBulk {
	return &VerificationRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerificationRecordClient) MapCreateBulk(slice any, setFunc func(*VerificationRecordCreate, int)) *VerificationRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerificationRecordCreateBulk{err: fmt.Errorf("calling to VerificationRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerificationRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerificationRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VerificationRecord.
func (c *VerificationRecordClient) Update() *VerificationRecordUpdate {
	mutation := newVerificationRecordMutation(c.config, OpUpdate)
	return &VerificationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerificationRecordClient) UpdateOne(_m *VerificationRecord) *VerificationRecordUpdateOne {
	mutation := newVerificationRecordMutation(c.config, OpUpdateOne, withVerificationRecord(_m))
	return &VerificationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerificationRecordClient) UpdateOneID(id uuid.UUID) *VerificationRecordUpdateOne {
	mutation := newVerificationRecordMutation(c.config, OpUpdateOne, withVerificationRecordID(id))
	return &VerificationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VerificationRecord.
func (c *VerificationRecordClient) Delete() *VerificationRecordDelete {
	mutation := newVerificationRecordMutation(c.config, OpDelete)
	return &VerificationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerificationRecordClient) DeleteOne(_m *VerificationRecord) *VerificationRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerificationRecordClient) DeleteOneID(id uuid.UUID) *VerificationRecordDeleteOne {
	builder := c.Delete().Where(verificationrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerificationRecordDeleteOne{builder}
}

// Query returns a query builder for VerificationRecord.
func (c *VerificationRecordClient) Query() *VerificationRecordQuery {
	return &VerificationRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerificationRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a VerificationRecord entity by its id.
func (c *VerificationRecordClient) Get(ctx context.Context, id uuid.UUID) (*VerificationRecord, error) {
	return c.Query().Where(verificationrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerificationRecordClient) GetX(ctx context.Context, id uuid.UUID) *VerificationRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRecord queries the record edge of a VerificationRecord.
func (c *VerificationRecordClient) QueryRecord(_m *VerificationRecord) *AdmissionRecordQuery {
	query := (&AdmissionRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verificationrecord.Table, verificationrecord.FieldID, id),
			sqlgraph.To(admissionrecord.Table, admissionrecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, verificationrecord.RecordTable, verificationrecord.RecordColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFile queries the file edge of a VerificationRecord.
func (c *VerificationRecordClient) QueryFile(_m *VerificationRecord) *ProcessedFileQuery {
	query := (&ProcessedFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verificationrecord.Table, verificationrecord.FieldID, id),
			sqlgraph.To(processedfile.Table, processedfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, verificationrecord.FileTable, verificationrecord.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VerificationRecordClient) Hooks() []Hook {
	return c.hooks.VerificationRecord
}

// Interceptors returns the client interceptors.
func (c *VerificationRecordClient) Interceptors() []Interceptor {
	return c.inters.VerificationRecord
}

func (c *VerificationRecordClient) mutate(ctx context.Context, m *VerificationRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerificationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerificationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerificationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerificationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VerificationRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AdmissionRecord, ProcessedFile, VerificationRecord []ent.Hook
	}
	inters struct {
		AdmissionRecord, ProcessedFile, VerificationRecord []ent.Interceptor
	}
)
