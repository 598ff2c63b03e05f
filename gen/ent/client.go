// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/jcordova-gis/geoingest/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jcordova-gis/geoingest/gen/ent/dataproduct"
	"github.com/jcordova-gis/geoingest/gen/ent/job"
	"github.com/jcordova-gis/geoingest/gen/ent/rawdata"
	"github.com/jcordova-gis/geoingest/gen/ent/vectorfeature"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DataProduct is the client for interacting with the DataProduct builders.
	DataProduct *DataProductClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// RawData is the client for interacting with the RawData builders.
	RawData *RawDataClient
	// VectorFeature is the client for interacting with the VectorFeature builders.
	VectorFeature *VectorFeatureClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DataProduct = NewDataProductClient(c.config)
	c.Job = NewJobClient(c.config)
	c.RawData = NewRawDataClient(c.config)
	c.VectorFeature = NewVectorFeatureClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		DataProduct:   NewDataProductClient(cfg),
		Job:           NewJobClient(cfg),
		RawData:       NewRawDataClient(cfg),
		VectorFeature: NewVectorFeatureClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		DataProduct:   NewDataProductClient(cfg),
		Job:           NewJobClient(cfg),
		RawData:       NewRawDataClient(cfg),
		VectorFeature: NewVectorFeatureClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DataProduct.
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
	c.DataProduct.Use(hooks...)
	c.Job.Use(hooks...)
	c.RawData.Use(hooks...)
	c.VectorFeature.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DataProduct.Intercept(interceptors...)
	c.Job.Intercept(interceptors...)
	c.RawData.Intercept(interceptors...)
	c.VectorFeature.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DataProductMutation:
		return c.DataProduct.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *RawDataMutation:
		return c.RawData.mutate(ctx, m)
	case *VectorFeatureMutation:
		return c.VectorFeature.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DataProductClient is a client for the DataProduct schema.
type DataProductClient struct {
	config
}

// NewDataProductClient returns a client for the DataProduct from the given config.
func NewDataProductClient(c config) *DataProductClient {
	return &DataProductClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dataproduct.Hooks(f(g(h())))`.
func (c *DataProductClient) Use(hooks ...Hook) {
	c.hooks.DataProduct = append(c.hooks.DataProduct, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dataproduct.Intercept(f(g(h())))`.
func (c *DataProductClient) Intercept(interceptors ...Interceptor) {
	c.inters.DataProduct = append(c.inters.DataProduct, interceptors...)
}

// Create returns a builder for creating a DataProduct entity.
func (c *DataProductClient) Create() *DataProductCreate {
	mutation := newDataProductMutation(c.config, OpCreate)
	return &DataProductCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DataProduct entities.
func (c *DataProductClient) CreateBulk(builders ...*DataProductCreate) *DataProductCreateBulk {
	return &DataProductCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DataProductClient) MapCreateBulk(slice any, setFunc func(*DataProductCreate, int)) *DataProductCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DataProductCreateBulk{err: fmt.Errorf("calling to DataProductClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DataProductCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DataProductCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DataProduct.
func (c *DataProductClient) Update() *DataProductUpdate {
	mutation := newDataProductMutation(c.config, OpUpdate)
	return &DataProductUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DataProductClient) UpdateOne(_m *DataProduct) *DataProductUpdateOne {
	mutation := newDataProductMutation(c.config, OpUpdateOne, withDataProduct(_m))
	return &DataProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DataProductClient) UpdateOneID(id uuid.UUID) *DataProductUpdateOne {
	mutation := newDataProductMutation(c.config, OpUpdateOne, withDataProductID(id))
	return &DataProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DataProduct.
func (c *DataProductClient) Delete() *DataProductDelete {
	mutation := newDataProductMutation(c.config, OpDelete)
	return &DataProductDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DataProductClient) DeleteOne(_m *DataProduct) *DataProductDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DataProductClient) DeleteOneID(id uuid.UUID) *DataProductDeleteOne {
	builder := c.Delete().Where(dataproduct.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DataProductDeleteOne{builder}
}

// Query returns a query builder for DataProduct.
func (c *DataProductClient) Query() *DataProductQuery {
	return &DataProductQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDataProduct},
		inters: c.Interceptors(),
	}
}

// Get returns a DataProduct entity by its id.
func (c *DataProductClient) Get(ctx context.Context, id uuid.UUID) (*DataProduct, error) {
	return c.Query().Where(dataproduct.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DataProductClient) GetX(ctx context.Context, id uuid.UUID) *DataProduct {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a DataProduct.
func (c *DataProductClient) QueryJobs(_m *DataProduct) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dataproduct.Table, dataproduct.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dataproduct.JobsTable, dataproduct.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DataProductClient) Hooks() []Hook {
	return c.hooks.DataProduct
}

// Interceptors returns the client interceptors.
func (c *DataProductClient) Interceptors() []Interceptor {
	return c.inters.DataProduct
}

func (c *DataProductClient) mutate(ctx context.Context, m *DataProductMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DataProductCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DataProductUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DataProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DataProductDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DataProduct mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id uuid.UUID) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id uuid.UUID) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id uuid.UUID) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id uuid.UUID) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDataProduct queries the data_product edge of a Job.
func (c *JobClient) QueryDataProduct(_m *Job) *DataProductQuery {
	query := (&DataProductClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(dataproduct.Table, dataproduct.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, job.DataProductTable, job.DataProductColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRawData queries the raw_data edge of a Job.
func (c *JobClient) QueryRawData(_m *Job) *RawDataQuery {
	query := (&RawDataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(rawdata.Table, rawdata.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, job.RawDataTable, job.RawDataColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// RawDataClient is a client for the RawData schema.
type RawDataClient struct {
	config
}

// NewRawDataClient returns a client for the RawData from the given config.
func NewRawDataClient(c config) *RawDataClient {
	return &RawDataClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rawdata.Hooks(f(g(h())))`.
func (c *RawDataClient) Use(hooks ...Hook) {
	c.hooks.RawData = append(c.hooks.RawData, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rawdata.Intercept(f(g(h())))`.
func (c *RawDataClient) Intercept(interceptors ...Interceptor) {
	c.inters.RawData = append(c.inters.RawData, interceptors...)
}

// Create returns a builder for creating a RawData entity.
func (c *RawDataClient) Create() *RawDataCreate {
	mutation := newRawDataMutation(c.config, OpCreate)
	return &RawDataCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RawData entities.
func (c *RawDataClient) CreateBulk(builders ...*RawDataCreate) *RawDataCreateBulk {
	return &RawDataCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RawDataClient) MapCreateBulk(slice any, setFunc func(*RawDataCreate, int)) *RawDataCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RawDataCreateBulk{err: fmt.Errorf("calling to RawDataClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RawDataCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RawDataCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RawData.
func (c *RawDataClient) Update() *RawDataUpdate {
	mutation := newRawDataMutation(c.config, OpUpdate)
	return &RawDataUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RawDataClient) UpdateOne(_m *RawData) *RawDataUpdateOne {
	mutation := newRawDataMutation(c.config, OpUpdateOne, withRawData(_m))
	return &RawDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RawDataClient) UpdateOneID(id uuid.UUID) *RawDataUpdateOne {
	mutation := newRawDataMutation(c.config, OpUpdateOne, withRawDataID(id))
	return &RawDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RawData.
func (c *RawDataClient) Delete() *RawDataDelete {
	mutation := newRawDataMutation(c.config, OpDelete)
	return &RawDataDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RawDataClient) DeleteOne(_m *RawData) *RawDataDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RawDataClient) DeleteOneID(id uuid.UUID) *RawDataDeleteOne {
	builder := c.Delete().Where(rawdata.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RawDataDeleteOne{builder}
}

// Query returns a query builder for RawData.
func (c *RawDataClient) Query() *RawDataQuery {
	return &RawDataQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRawData},
		inters: c.Interceptors(),
	}
}

// Get returns a RawData entity by its id.
func (c *RawDataClient) Get(ctx context.Context, id uuid.UUID) (*RawData, error) {
	return c.Query().Where(rawdata.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RawDataClient) GetX(ctx context.Context, id uuid.UUID) *RawData {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a RawData.
func (c *RawDataClient) QueryJobs(_m *RawData) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rawdata.Table, rawdata.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, rawdata.JobsTable, rawdata.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RawDataClient) Hooks() []Hook {
	return c.hooks.RawData
}

// Interceptors returns the client interceptors.
func (c *RawDataClient) Interceptors() []Interceptor {
	return c.inters.RawData
}

func (c *RawDataClient) mutate(ctx context.Context, m *RawDataMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RawDataCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RawDataUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RawDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RawDataDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RawData mutation op: %q", m.Op())
	}
}

// VectorFeatureClient is a client for the VectorFeature schema.
type VectorFeatureClient struct {
	config
}

// NewVectorFeatureClient returns a client for the VectorFeature from the given config.
func NewVectorFeatureClient(c config) *VectorFeatureClient {
	return &VectorFeatureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vectorfeature.Hooks(f(g(h())))`.
func (c *VectorFeatureClient) Use(hooks ...Hook) {
	c.hooks.VectorFeature = append(c.hooks.VectorFeature, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vectorfeature.Intercept(f(g(h())))`.
func (c *VectorFeatureClient) Intercept(interceptors ...Interceptor) {
	c.inters.VectorFeature = append(c.inters.VectorFeature, interceptors...)
}

// Create returns a builder for creating a VectorFeature entity.
func (c *VectorFeatureClient) Create() *VectorFeatureCreate {
	mutation := newVectorFeatureMutation(c.config, OpCreate)
	return &VectorFeatureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VectorFeature entities.
func (c *VectorFeatureClient) CreateBulk(builders ...*VectorFeatureCreate) *VectorFeatureCreateBulk {
	return &VectorFeatureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VectorFeatureClient) MapCreateBulk(slice any, setFunc func(*VectorFeatureCreate, int)) *VectorFeatureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VectorFeatureCreateBulk{err: fmt.Errorf("calling to VectorFeatureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VectorFeatureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VectorFeatureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VectorFeature.
func (c *VectorFeatureClient) Update() *VectorFeatureUpdate {
	mutation := newVectorFeatureMutation(c.config, OpUpdate)
	return &VectorFeatureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VectorFeatureClient) UpdateOne(_m *VectorFeature) *VectorFeatureUpdateOne {
	mutation := newVectorFeatureMutation(c.config, OpUpdateOne, withVectorFeature(_m))
	return &VectorFeatureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VectorFeatureClient) UpdateOneID(id uuid.UUID) *VectorFeatureUpdateOne {
	mutation := newVectorFeatureMutation(c.config, OpUpdateOne, withVectorFeatureID(id))
	return &VectorFeatureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VectorFeature.
func (c *VectorFeatureClient) Delete() *VectorFeatureDelete {
	mutation := newVectorFeatureMutation(c.config, OpDelete)
	return &VectorFeatureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VectorFeatureClient) DeleteOne(_m *VectorFeature) *VectorFeatureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VectorFeatureClient) DeleteOneID(id uuid.UUID) *VectorFeatureDeleteOne {
	builder := c.Delete().Where(vectorfeature.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VectorFeatureDeleteOne{builder}
}

// Query returns a query builder for VectorFeature.
func (c *VectorFeatureClient) Query() *VectorFeatureQuery {
	return &VectorFeatureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVectorFeature},
		inters: c.Interceptors(),
	}
}

// Get returns a VectorFeature entity by its id.
func (c *VectorFeatureClient) Get(ctx context.Context, id uuid.UUID) (*VectorFeature, error) {
	return c.Query().Where(vectorfeature.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VectorFeatureClient) GetX(ctx context.Context, id uuid.UUID) *VectorFeature {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VectorFeatureClient) Hooks() []Hook {
	return c.hooks.VectorFeature
}

// Interceptors returns the client interceptors.
func (c *VectorFeatureClient) Interceptors() []Interceptor {
	return c.inters.VectorFeature
}

func (c *VectorFeatureClient) mutate(ctx context.Context, m *VectorFeatureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VectorFeatureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VectorFeatureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VectorFeatureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VectorFeatureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VectorFeature mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DataProduct, Job, RawData, VectorFeature []ent.Hook
	}
	inters struct {
		DataProduct, Job, RawData, VectorFeature []ent.Interceptor
	}
)
