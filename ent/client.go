// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/promsight/promsight/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/promsight/promsight/ent/alertwindow"
	"github.com/promsight/promsight/ent/anomaly"
	"github.com/promsight/promsight/ent/incident"
	"github.com/promsight/promsight/ent/metricsbatch"
	"github.com/promsight/promsight/ent/notificationconfig"
	"github.com/promsight/promsight/ent/rcarecord"
	"github.com/promsight/promsight/ent/target"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AlertWindow is the client for interacting with the AlertWindow builders.
	AlertWindow *AlertWindowClient
	// Anomaly is the client for interacting with the Anomaly builders.
	Anomaly *AnomalyClient
	// Incident is the client for interacting with the Incident builders.
	Incident *IncidentClient
	// MetricsBatch is the client for interacting with the MetricsBatch builders.
	MetricsBatch *MetricsBatchClient
	// NotificationConfig is the client for interacting with the NotificationConfig builders.
	NotificationConfig *NotificationConfigClient
	// RCARecord is the client for interacting with the RCARecord builders.
	RCARecord *RCARecordClient
	// Target is the client for interacting with the Target builders.
	Target *TargetClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AlertWindow = NewAlertWindowClient(c.config)
	c.Anomaly = NewAnomalyClient(c.config)
	c.Incident = NewIncidentClient(c.config)
	c.MetricsBatch = NewMetricsBatchClient(c.config)
	c.NotificationConfig = NewNotificationConfigClient(c.config)
	c.RCARecord = NewRCARecordClient(c.config)
	c.Target = NewTargetClient(c.config)
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
		AlertWindow:        NewAlertWindowClient(cfg),
		Anomaly:            NewAnomalyClient(cfg),
		Incident:           NewIncidentClient(cfg),
		MetricsBatch:       NewMetricsBatchClient(cfg),
		NotificationConfig: NewNotificationConfigClient(cfg),
		RCARecord:          NewRCARecordClient(cfg),
		Target:             NewTargetClient(cfg),
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
		AlertWindow:        NewAlertWindowClient(cfg),
		Anomaly:            NewAnomalyClient(cfg),
		Incident:           NewIncidentClient(cfg),
		MetricsBatch:       NewMetricsBatchClient(cfg),
		NotificationConfig: NewNotificationConfigClient(cfg),
		RCARecord:          NewRCARecordClient(cfg),
		Target:             NewTargetClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AlertWindow.
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
		c.AlertWindow, c.Anomaly, c.Incident, c.MetricsBatch, c.NotificationConfig,
		c.RCARecord, c.Target,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AlertWindow, c.Anomaly, c.Incident, c.MetricsBatch, c.NotificationConfig,
		c.RCARecord, c.Target,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AlertWindowMutation:
		return c.AlertWindow.mutate(ctx, m)
	case *AnomalyMutation:
		return c.Anomaly.mutate(ctx, m)
	case *IncidentMutation:
		return c.Incident.mutate(ctx, m)
	case *MetricsBatchMutation:
		return c.MetricsBatch.mutate(ctx, m)
	case *NotificationConfigMutation:
		return c.NotificationConfig.mutate(ctx, m)
	case *RCARecordMutation:
		return c.RCARecord.mutate(ctx, m)
	case *TargetMutation:
		return c.Target.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AlertWindowClient is a client for the AlertWindow schema.
type AlertWindowClient struct {
	config
}

// NewAlertWindowClient returns a client for the AlertWindow from the given config.
func NewAlertWindowClient(c config) *AlertWindowClient {
	return &AlertWindowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `alertwindow.Hooks(f(g(h())))`.
func (c *AlertWindowClient) Use(hooks ...Hook) {
	c.hooks.AlertWindow = append(c.hooks.AlertWindow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `alertwindow.Intercept(f(g(h())))`.
func (c *AlertWindowClient) Intercept(interceptors ...Interceptor) {
	c.inters.AlertWindow = append(c.inters.AlertWindow, interceptors...)
}

// Create returns a builder for creating a AlertWindow entity.
func (c *AlertWindowClient) Create() *AlertWindowCreate {
	mutation := newAlertWindowMutation(c.config, OpCreate)
	return &AlertWindowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AlertWindow entities.
func (c *AlertWindowClient) CreateBulk(builders ...*AlertWindowCreate) *AlertWindowCreateBulk {
	return &AlertWindowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlertWindowClient) MapCreateBulk(slice any, setFunc func(*AlertWindowCreate, int)) *AlertWindowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlertWindowCreateBulk{err: fmt.Errorf("calling to AlertWindowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlertWindowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlertWindowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AlertWindow.
func (c *AlertWindowClient) Update() *AlertWindowUpdate {
	mutation := newAlertWindowMutation(c.config, OpUpdate)
	return &AlertWindowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlertWindowClient) UpdateOne(_m *AlertWindow) *AlertWindowUpdateOne {
	mutation := newAlertWindowMutation(c.config, OpUpdateOne, withAlertWindow(_m))
	return &AlertWindowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlertWindowClient) UpdateOneID(id string) *AlertWindowUpdateOne {
	mutation := newAlertWindowMutation(c.config, OpUpdateOne, withAlertWindowID(id))
	return &AlertWindowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AlertWindow.
func (c *AlertWindowClient) Delete() *AlertWindowDelete {
	mutation := newAlertWindowMutation(c.config, OpDelete)
	return &AlertWindowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlertWindowClient) DeleteOne(_m *AlertWindow) *AlertWindowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlertWindowClient) DeleteOneID(id string) *AlertWindowDeleteOne {
	builder := c.Delete().Where(alertwindow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlertWindowDeleteOne{builder}
}

// Query returns a query builder for AlertWindow.
func (c *AlertWindowClient) Query() *AlertWindowQuery {
	return &AlertWindowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlertWindow},
		inters: c.Interceptors(),
	}
}

// Get returns a AlertWindow entity by its id.
func (c *AlertWindowClient) Get(ctx context.Context, id string) (*AlertWindow, error) {
	return c.Query().Where(alertwindow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlertWindowClient) GetX(ctx context.Context, id string) *AlertWindow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AlertWindowClient) Hooks() []Hook {
	return c.hooks.AlertWindow
}

// Interceptors returns the client interceptors.
func (c *AlertWindowClient) Interceptors() []Interceptor {
	return c.inters.AlertWindow
}

func (c *AlertWindowClient) mutate(ctx context.Context, m *AlertWindowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlertWindowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlertWindowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlertWindowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlertWindowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AlertWindow mutation op: %q", m.Op())
	}
}

// AnomalyClient is a client for the Anomaly schema.
type AnomalyClient struct {
	config
}

// NewAnomalyClient returns a client for the Anomaly from the given config.
func NewAnomalyClient(c config) *AnomalyClient {
	return &AnomalyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `anomaly.Hooks(f(g(h())))`.
func (c *AnomalyClient) Use(hooks ...Hook) {
	c.hooks.Anomaly = append(c.hooks.Anomaly, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `anomaly.Intercept(f(g(h())))`.
func (c *AnomalyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Anomaly = append(c.inters.Anomaly, interceptors...)
}

// Create returns a builder for creating a Anomaly entity.
func (c *AnomalyClient) Create() *AnomalyCreate {
	mutation := newAnomalyMutation(c.config, OpCreate)
	return &AnomalyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Anomaly entities.
func (c *AnomalyClient) CreateBulk(builders ...*AnomalyCreate) *AnomalyCreateBulk {
	return &AnomalyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnomalyClient) MapCreateBulk(slice any, setFunc func(*AnomalyCreate, int)) *AnomalyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnomalyCreateBulk{err: fmt.Errorf("calling to AnomalyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnomalyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnomalyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Anomaly.
func (c *AnomalyClient) Update() *AnomalyUpdate {
	mutation := newAnomalyMutation(c.config, OpUpdate)
	return &AnomalyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnomalyClient) UpdateOne(_m *Anomaly) *AnomalyUpdateOne {
	mutation := newAnomalyMutation(c.config, OpUpdateOne, withAnomaly(_m))
	return &AnomalyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnomalyClient) UpdateOneID(id string) *AnomalyUpdateOne {
	mutation := newAnomalyMutation(c.config, OpUpdateOne, withAnomalyID(id))
	return &AnomalyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Anomaly.
func (c *AnomalyClient) Delete() *AnomalyDelete {
	mutation := newAnomalyMutation(c.config, OpDelete)
	return &AnomalyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnomalyClient) DeleteOne(_m *Anomaly) *AnomalyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnomalyClient) DeleteOneID(id string) *AnomalyDeleteOne {
	builder := c.Delete().Where(anomaly.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnomalyDeleteOne{builder}
}

// Query returns a query builder for Anomaly.
func (c *AnomalyClient) Query() *AnomalyQuery {
	return &AnomalyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnomaly},
		inters: c.Interceptors(),
	}
}

// Get returns a Anomaly entity by its id.
func (c *AnomalyClient) Get(ctx context.Context, id string) (*Anomaly, error) {
	return c.Query().Where(anomaly.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnomalyClient) GetX(ctx context.Context, id string) *Anomaly {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnomalyClient) Hooks() []Hook {
	return c.hooks.Anomaly
}

// Interceptors returns the client interceptors.
func (c *AnomalyClient) Interceptors() []Interceptor {
	return c.inters.Anomaly
}

func (c *AnomalyClient) mutate(ctx context.Context, m *AnomalyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnomalyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnomalyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnomalyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnomalyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Anomaly mutation op: %q", m.Op())
	}
}

// IncidentClient is a client for the Incident schema.
type IncidentClient struct {
	config
}

// NewIncidentClient returns a client for the Incident from the given config.
func NewIncidentClient(c config) *IncidentClient {
	return &IncidentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `incident.Hooks(f(g(h())))`.
func (c *IncidentClient) Use(hooks ...Hook) {
	c.hooks.Incident = append(c.hooks.Incident, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `incident.Intercept(f(g(h())))`.
func (c *IncidentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Incident = append(c.inters.Incident, interceptors...)
}

// Create returns a builder for creating a Incident entity.
func (c *IncidentClient) Create() *IncidentCreate {
	mutation := newIncidentMutation(c.config, OpCreate)
	return &IncidentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Incident entities.
func (c *IncidentClient) CreateBulk(builders ...*IncidentCreate) *IncidentCreateBulk {
	return &IncidentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IncidentClient) MapCreateBulk(slice any, setFunc func(*IncidentCreate, int)) *IncidentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IncidentCreateBulk{err: fmt.Errorf("calling to IncidentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IncidentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IncidentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Incident.
func (c *IncidentClient) Update() *IncidentUpdate {
	mutation := newIncidentMutation(c.config, OpUpdate)
	return &IncidentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IncidentClient) UpdateOne(_m *Incident) *IncidentUpdateOne {
	mutation := newIncidentMutation(c.config, OpUpdateOne, withIncident(_m))
	return &IncidentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IncidentClient) UpdateOneID(id string) *IncidentUpdateOne {
	mutation := newIncidentMutation(c.config, OpUpdateOne, withIncidentID(id))
	return &IncidentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Incident.
func (c *IncidentClient) Delete() *IncidentDelete {
	mutation := newIncidentMutation(c.config, OpDelete)
	return &IncidentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IncidentClient) DeleteOne(_m *Incident) *IncidentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IncidentClient) DeleteOneID(id string) *IncidentDeleteOne {
	builder := c.Delete().Where(incident.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IncidentDeleteOne{builder}
}

// Query returns a query builder for Incident.
func (c *IncidentClient) Query() *IncidentQuery {
	return &IncidentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIncident},
		inters: c.Interceptors(),
	}
}

// Get returns a Incident entity by its id.
func (c *IncidentClient) Get(ctx context.Context, id string) (*Incident, error) {
	return c.Query().Where(incident.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IncidentClient) GetX(ctx context.Context, id string) *Incident {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IncidentClient) Hooks() []Hook {
	return c.hooks.Incident
}

// Interceptors returns the client interceptors.
func (c *IncidentClient) Interceptors() []Interceptor {
	return c.inters.Incident
}

func (c *IncidentClient) mutate(ctx context.Context, m *IncidentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IncidentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IncidentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IncidentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IncidentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Incident mutation op: %q", m.Op())
	}
}

// MetricsBatchClient is a client for the MetricsBatch schema.
type MetricsBatchClient struct {
	config
}

// NewMetricsBatchClient returns a client for the MetricsBatch from the given config.
func NewMetricsBatchClient(c config) *MetricsBatchClient {
	return &MetricsBatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `metricsbatch.Hooks(f(g(h())))`.
func (c *MetricsBatchClient) Use(hooks ...Hook) {
	c.hooks.MetricsBatch = append(c.hooks.MetricsBatch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `metricsbatch.Intercept(f(g(h())))`.
func (c *MetricsBatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.MetricsBatch = append(c.inters.MetricsBatch, interceptors...)
}

// Create returns a builder for creating a MetricsBatch entity.
func (c *MetricsBatchClient) Create() *MetricsBatchCreate {
	mutation := newMetricsBatchMutation(c.config, OpCreate)
	return &MetricsBatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MetricsBatch entities.
func (c *MetricsBatchClient) CreateBulk(builders ...*MetricsBatchCreate) *MetricsBatchCreateBulk {
	return &MetricsBatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MetricsBatchClient) MapCreateBulk(slice any, setFunc func(*MetricsBatchCreate, int)) *MetricsBatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MetricsBatchCreateBulk{err: fmt.Errorf("calling to MetricsBatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MetricsBatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MetricsBatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MetricsBatch.
func (c *MetricsBatchClient) Update() *MetricsBatchUpdate {
	mutation := newMetricsBatchMutation(c.config, OpUpdate)
	return &MetricsBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MetricsBatchClient) UpdateOne(_m *MetricsBatch) *MetricsBatchUpdateOne {
	mutation := newMetricsBatchMutation(c.config, OpUpdateOne, withMetricsBatch(_m))
	return &MetricsBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MetricsBatchClient) UpdateOneID(id string) *MetricsBatchUpdateOne {
	mutation := newMetricsBatchMutation(c.config, OpUpdateOne, withMetricsBatchID(id))
	return &MetricsBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MetricsBatch.
func (c *MetricsBatchClient) Delete() *MetricsBatchDelete {
	mutation := newMetricsBatchMutation(c.config, OpDelete)
	return &MetricsBatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MetricsBatchClient) DeleteOne(_m *MetricsBatch) *MetricsBatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MetricsBatchClient) DeleteOneID(id string) *MetricsBatchDeleteOne {
	builder := c.Delete().Where(metricsbatch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MetricsBatchDeleteOne{builder}
}

// Query returns a query builder for MetricsBatch.
func (c *MetricsBatchClient) Query() *MetricsBatchQuery {
	return &MetricsBatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMetricsBatch},
		inters: c.Interceptors(),
	}
}

// Get returns a MetricsBatch entity by its id.
func (c *MetricsBatchClient) Get(ctx context.Context, id string) (*MetricsBatch, error) {
	return c.Query().Where(metricsbatch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MetricsBatchClient) GetX(ctx context.Context, id string) *MetricsBatch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MetricsBatchClient) Hooks() []Hook {
	return c.hooks.MetricsBatch
}

// Interceptors returns the client interceptors.
func (c *MetricsBatchClient) Interceptors() []Interceptor {
	return c.inters.MetricsBatch
}

func (c *MetricsBatchClient) mutate(ctx context.Context, m *MetricsBatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MetricsBatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MetricsBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MetricsBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MetricsBatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MetricsBatch mutation op: %q", m.Op())
	}
}

// NotificationConfigClient is a client for the NotificationConfig schema.
type NotificationConfigClient struct {
	config
}

// NewNotificationConfigClient returns a client for the NotificationConfig from the given config.
func NewNotificationConfigClient(c config) *NotificationConfigClient {
	return &NotificationConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notificationconfig.Hooks(f(g(h())))`.
func (c *NotificationConfigClient) Use(hooks ...Hook) {
	c.hooks.NotificationConfig = append(c.hooks.NotificationConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notificationconfig.Intercept(f(g(h())))`.
func (c *NotificationConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.NotificationConfig = append(c.inters.NotificationConfig, interceptors...)
}

// Create returns a builder for creating a NotificationConfig entity.
func (c *NotificationConfigClient) Create() *NotificationConfigCreate {
	mutation := newNotificationConfigMutation(c.config, OpCreate)
	return &NotificationConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NotificationConfig entities.
func (c *NotificationConfigClient) CreateBulk(builders ...*NotificationConfigCreate) *NotificationConfigCreateBulk {
	return &NotificationConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationConfigClient) MapCreateBulk(slice any, setFunc func(*NotificationConfigCreate, int)) *NotificationConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationConfigCreateBulk{err: fmt.Errorf("calling to NotificationConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NotificationConfig.
func (c *NotificationConfigClient) Update() *NotificationConfigUpdate {
	mutation := newNotificationConfigMutation(c.config, OpUpdate)
	return &NotificationConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationConfigClient) UpdateOne(_m *NotificationConfig) *NotificationConfigUpdateOne {
	mutation := newNotificationConfigMutation(c.config, OpUpdateOne, withNotificationConfig(_m))
	return &NotificationConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationConfigClient) UpdateOneID(id string) *NotificationConfigUpdateOne {
	mutation := newNotificationConfigMutation(c.config, OpUpdateOne, withNotificationConfigID(id))
	return &NotificationConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NotificationConfig.
func (c *NotificationConfigClient) Delete() *NotificationConfigDelete {
	mutation := newNotificationConfigMutation(c.config, OpDelete)
	return &NotificationConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationConfigClient) DeleteOne(_m *NotificationConfig) *NotificationConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationConfigClient) DeleteOneID(id string) *NotificationConfigDeleteOne {
	builder := c.Delete().Where(notificationconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationConfigDeleteOne{builder}
}

// Query returns a query builder for NotificationConfig.
func (c *NotificationConfigClient) Query() *NotificationConfigQuery {
	return &NotificationConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotificationConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a NotificationConfig entity by its id.
func (c *NotificationConfigClient) Get(ctx context.Context, id string) (*NotificationConfig, error) {
	return c.Query().Where(notificationconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationConfigClient) GetX(ctx context.Context, id string) *NotificationConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationConfigClient) Hooks() []Hook {
	return c.hooks.NotificationConfig
}

// Interceptors returns the client interceptors.
func (c *NotificationConfigClient) Interceptors() []Interceptor {
	return c.inters.NotificationConfig
}

func (c *NotificationConfigClient) mutate(ctx context.Context, m *NotificationConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NotificationConfig mutation op: %q", m.Op())
	}
}

// RCARecordClient is a client for the RCARecord schema.
type RCARecordClient struct {
	config
}

// NewRCARecordClient returns a client for the RCARecord from the given config.
func NewRCARecordClient(c config) *RCARecordClient {
	return &RCARecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rcarecord.Hooks(f(g(h())))`.
func (c *RCARecordClient) Use(hooks ...Hook) {
	c.hooks.RCARecord = append(c.hooks.RCARecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rcarecord.Intercept(f(g(h())))`.
func (c *RCARecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.RCARecord = append(c.inters.RCARecord, interceptors...)
}

// Create returns a builder for creating a RCARecord entity.
func (c *RCARecordClient) Create() *RCARecordCreate {
	mutation := newRCARecordMutation(c.config, OpCreate)
	return &RCARecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RCARecord entities.
func (c *RCARecordClient) CreateBulk(builders ...*RCARecordCreate) *RCARecordCreateBulk {
	return &RCARecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RCARecordClient) MapCreateBulk(slice any, setFunc func(*RCARecordCreate, int)) *RCARecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RCARecordCreateBulk{err: fmt.Errorf("calling to RCARecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RCARecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RCARecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RCARecord.
func (c *RCARecordClient) Update() *RCARecordUpdate {
	mutation := newRCARecordMutation(c.config, OpUpdate)
	return &RCARecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RCARecordClient) UpdateOne(_m *RCARecord) *RCARecordUpdateOne {
	mutation := newRCARecordMutation(c.config, OpUpdateOne, withRCARecord(_m))
	return &RCARecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RCARecordClient) UpdateOneID(id string) *RCARecordUpdateOne {
	mutation := newRCARecordMutation(c.config, OpUpdateOne, withRCARecordID(id))
	return &RCARecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RCARecord.
func (c *RCARecordClient) Delete() *RCARecordDelete {
	mutation := newRCARecordMutation(c.config, OpDelete)
	return &RCARecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RCARecordClient) DeleteOne(_m *RCARecord) *RCARecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RCARecordClient) DeleteOneID(id string) *RCARecordDeleteOne {
	builder := c.Delete().Where(rcarecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RCARecordDeleteOne{builder}
}

// Query returns a query builder for RCARecord.
func (c *RCARecordClient) Query() *RCARecordQuery {
	return &RCARecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRCARecord},
		inters: c.Interceptors(),
	}
}

// Get returns a RCARecord entity by its id.
func (c *RCARecordClient) Get(ctx context.Context, id string) (*RCARecord, error) {
	return c.Query().Where(rcarecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RCARecordClient) GetX(ctx context.Context, id string) *RCARecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RCARecordClient) Hooks() []Hook {
	return c.hooks.RCARecord
}

// Interceptors returns the client interceptors.
func (c *RCARecordClient) Interceptors() []Interceptor {
	return c.inters.RCARecord
}

func (c *RCARecordClient) mutate(ctx context.Context, m *RCARecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RCARecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RCARecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RCARecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RCARecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RCARecord mutation op: %q", m.Op())
	}
}

// TargetClient is a client for the Target schema.
type TargetClient struct {
	config
}

// NewTargetClient returns a client for the Target from the given config.
func NewTargetClient(c config) *TargetClient {
	return &TargetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `target.Hooks(f(g(h())))`.
func (c *TargetClient) Use(hooks ...Hook) {
	c.hooks.Target = append(c.hooks.Target, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `target.Intercept(f(g(h())))`.
func (c *TargetClient) Intercept(interceptors ...Interceptor) {
	c.inters.Target = append(c.inters.Target, interceptors...)
}

// Create returns a builder for creating a Target entity.
func (c *TargetClient) Create() *TargetCreate {
	mutation := newTargetMutation(c.config, OpCreate)
	return &TargetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Target entities.
func (c *TargetClient) CreateBulk(builders ...*TargetCreate) *TargetCreateBulk {
	return &TargetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TargetClient) MapCreateBulk(slice any, setFunc func(*TargetCreate, int)) *TargetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TargetCreateBulk{err: fmt.Errorf("calling to TargetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TargetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TargetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Target.
func (c *TargetClient) Update() *TargetUpdate {
	mutation := newTargetMutation(c.config, OpUpdate)
	return &TargetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TargetClient) UpdateOne(_m *Target) *TargetUpdateOne {
	mutation := newTargetMutation(c.config, OpUpdateOne, withTarget(_m))
	return &TargetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TargetClient) UpdateOneID(id string) *TargetUpdateOne {
	mutation := newTargetMutation(c.config, OpUpdateOne, withTargetID(id))
	return &TargetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Target.
func (c *TargetClient) Delete() *TargetDelete {
	mutation := newTargetMutation(c.config, OpDelete)
	return &TargetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TargetClient) DeleteOne(_m *Target) *TargetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TargetClient) DeleteOneID(id string) *TargetDeleteOne {
	builder := c.Delete().Where(target.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TargetDeleteOne{builder}
}

// Query returns a query builder for Target.
func (c *TargetClient) Query() *TargetQuery {
	return &TargetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTarget},
		inters: c.Interceptors(),
	}
}

// Get returns a Target entity by its id.
func (c *TargetClient) Get(ctx context.Context, id string) (*Target, error) {
	return c.Query().Where(target.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TargetClient) GetX(ctx context.Context, id string) *Target {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TargetClient) Hooks() []Hook {
	return c.hooks.Target
}

// Interceptors returns the client interceptors.
func (c *TargetClient) Interceptors() []Interceptor {
	return c.inters.Target
}

func (c *TargetClient) mutate(ctx context.Context, m *TargetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TargetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TargetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TargetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TargetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Target mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AlertWindow, Anomaly, Incident, MetricsBatch, NotificationConfig, RCARecord,
		Target []ent.Hook
	}
	inters struct {
		AlertWindow, Anomaly, Incident, MetricsBatch, NotificationConfig, RCARecord,
		Target []ent.Interceptor
	}
)
