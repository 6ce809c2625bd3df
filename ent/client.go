// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/focussessionevent"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/llmrequestevent"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/topiccompletionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// FocusSessionEvent is the client for interacting with the FocusSessionEvent builders.
	FocusSessionEvent *FocusSessionEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// TopicCompletionEvent is the client for interacting with the TopicCompletionEvent builders.
	TopicCompletionEvent *TopicCompletionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.FocusSessionEvent = NewFocusSessionEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.TopicCompletionEvent = NewTopicCompletionEventClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		FocusSessionEvent:    NewFocusSessionEventClient(cfg),
		LLMRequestEvent:      NewLLMRequestEventClient(cfg),
		TopicCompletionEvent: NewTopicCompletionEventClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		FocusSessionEvent:    NewFocusSessionEventClient(cfg),
		LLMRequestEvent:      NewLLMRequestEventClient(cfg),
		TopicCompletionEvent: NewTopicCompletionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		FocusSessionEvent.
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
	c.FocusSessionEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.TopicCompletionEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.FocusSessionEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.TopicCompletionEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *FocusSessionEventMutation:
		return c.FocusSessionEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *TopicCompletionEventMutation:
		return c.TopicCompletionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// FocusSessionEventClient is a client for the FocusSessionEvent schema.
type FocusSessionEventClient struct {
	config
}

// NewFocusSessionEventClient returns a client for the FocusSessionEvent from the given config.
func NewFocusSessionEventClient(c config) *FocusSessionEventClient {
	return &FocusSessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `focussessionevent.Hooks(f(g(h())))`.
func (c *FocusSessionEventClient) Use(hooks ...Hook) {
	c.hooks.FocusSessionEvent = append(c.hooks.FocusSessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `focussessionevent.Intercept(f(g(h())))`.
func (c *FocusSessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.FocusSessionEvent = append(c.inters.FocusSessionEvent, interceptors...)
}

// Create returns a builder for creating a FocusSessionEvent entity.
func (c *FocusSessionEventClient) Create() *FocusSessionEventCreate {
	mutation := newFocusSessionEventMutation(c.config, OpCreate)
	return &FocusSessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FocusSessionEvent entities.
func (c *FocusSessionEventClient) CreateBulk(builders ...*FocusSessionEventCreate) *FocusSessionEventCreateBulk {
	return &FocusSessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FocusSessionEventClient) MapCreateBulk(slice any, setFunc func(*FocusSessionEventCreate, int)) *FocusSessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FocusSessionEventCreateBulk{err: fmt.Errorf("calling to FocusSessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FocusSessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FocusSessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FocusSessionEvent.
func (c *FocusSessionEventClient) Update() *FocusSessionEventUpdate {
	mutation := newFocusSessionEventMutation(c.config, OpUpdate)
	return &FocusSessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FocusSessionEventClient) UpdateOne(_m *FocusSessionEvent) *FocusSessionEventUpdateOne {
	mutation := newFocusSessionEventMutation(c.config, OpUpdateOne, withFocusSessionEvent(_m))
	return &FocusSessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FocusSessionEventClient) UpdateOneID(id int) *FocusSessionEventUpdateOne {
	mutation := newFocusSessionEventMutation(c.config, OpUpdateOne, withFocusSessionEventID(id))
	return &FocusSessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FocusSessionEvent.
func (c *FocusSessionEventClient) Delete() *FocusSessionEventDelete {
	mutation := newFocusSessionEventMutation(c.config, OpDelete)
	return &FocusSessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FocusSessionEventClient) DeleteOne(_m *FocusSessionEvent) *FocusSessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FocusSessionEventClient) DeleteOneID(id int) *FocusSessionEventDeleteOne {
	builder := c.Delete().Where(focussessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FocusSessionEventDeleteOne{builder}
}

// Query returns a query builder for FocusSessionEvent.
func (c *FocusSessionEventClient) Query() *FocusSessionEventQuery {
	return &FocusSessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFocusSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a FocusSessionEvent entity by its id.
func (c *FocusSessionEventClient) Get(ctx context.Context, id int) (*FocusSessionEvent, error) {
	return c.Query().Where(focussessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FocusSessionEventClient) GetX(ctx context.Context, id int) *FocusSessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FocusSessionEventClient) Hooks() []Hook {
	return c.hooks.FocusSessionEvent
}

// Interceptors returns the client interceptors.
func (c *FocusSessionEventClient) Interceptors() []Interceptor {
	return c.inters.FocusSessionEvent
}

func (c *FocusSessionEventClient) mutate(ctx context.Context, m *FocusSessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FocusSessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FocusSessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FocusSessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FocusSessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FocusSessionEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// TopicCompletionEventClient is a client for the TopicCompletionEvent schema.
type TopicCompletionEventClient struct {
	config
}

// NewTopicCompletionEventClient returns a client for the TopicCompletionEvent from the given config.
func NewTopicCompletionEventClient(c config) *TopicCompletionEventClient {
	return &TopicCompletionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topiccompletionevent.Hooks(f(g(h())))`.
func (c *TopicCompletionEventClient) Use(hooks ...Hook) {
	c.hooks.TopicCompletionEvent = append(c.hooks.TopicCompletionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topiccompletionevent.Intercept(f(g(h())))`.
func (c *TopicCompletionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicCompletionEvent = append(c.inters.TopicCompletionEvent, interceptors...)
}

// Create returns a builder for creating a TopicCompletionEvent entity.
func (c *TopicCompletionEventClient) Create() *TopicCompletionEventCreate {
	mutation := newTopicCompletionEventMutation(c.config, OpCreate)
	return &TopicCompletionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicCompletionEvent entities.
func (c *TopicCompletionEventClient) CreateBulk(builders ...*TopicCompletionEventCreate) *TopicCompletionEventCreateBulk {
	return &TopicCompletionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicCompletionEventClient) MapCreateBulk(slice any, setFunc func(*TopicCompletionEventCreate, int)) *TopicCompletionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicCompletionEventCreateBulk{err: fmt.Errorf("calling to TopicCompletionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicCompletionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicCompletionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicCompletionEvent.
func (c *TopicCompletionEventClient) Update() *TopicCompletionEventUpdate {
	mutation := newTopicCompletionEventMutation(c.config, OpUpdate)
	return &TopicCompletionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicCompletionEventClient) UpdateOne(_m *TopicCompletionEvent) *TopicCompletionEventUpdateOne {
	mutation := newTopicCompletionEventMutation(c.config, OpUpdateOne, withTopicCompletionEvent(_m))
	return &TopicCompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicCompletionEventClient) UpdateOneID(id int) *TopicCompletionEventUpdateOne {
	mutation := newTopicCompletionEventMutation(c.config, OpUpdateOne, withTopicCompletionEventID(id))
	return &TopicCompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicCompletionEvent.
func (c *TopicCompletionEventClient) Delete() *TopicCompletionEventDelete {
	mutation := newTopicCompletionEventMutation(c.config, OpDelete)
	return &TopicCompletionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicCompletionEventClient) DeleteOne(_m *TopicCompletionEvent) *TopicCompletionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicCompletionEventClient) DeleteOneID(id int) *TopicCompletionEventDeleteOne {
	builder := c.Delete().Where(topiccompletionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicCompletionEventDeleteOne{builder}
}

// Query returns a query builder for TopicCompletionEvent.
func (c *TopicCompletionEventClient) Query() *TopicCompletionEventQuery {
	return &TopicCompletionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicCompletionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicCompletionEvent entity by its id.
func (c *TopicCompletionEventClient) Get(ctx context.Context, id int) (*TopicCompletionEvent, error) {
	return c.Query().Where(topiccompletionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicCompletionEventClient) GetX(ctx context.Context, id int) *TopicCompletionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicCompletionEventClient) Hooks() []Hook {
	return c.hooks.TopicCompletionEvent
}

// Interceptors returns the client interceptors.
func (c *TopicCompletionEventClient) Interceptors() []Interceptor {
	return c.inters.TopicCompletionEvent
}

func (c *TopicCompletionEventClient) mutate(ctx context.Context, m *TopicCompletionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicCompletionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicCompletionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicCompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicCompletionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicCompletionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		FocusSessionEvent, LLMRequestEvent, TopicCompletionEvent []ent.Hook
	}
	inters struct {
		FocusSessionEvent, LLMRequestEvent, TopicCompletionEvent []ent.Interceptor
	}
)
