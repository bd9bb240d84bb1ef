// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/menuqr/menuqr/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/category"
	"github.com/menuqr/menuqr/ent/itempairfrequency"
	"github.com/menuqr/menuqr/ent/menuitem"
	"github.com/menuqr/menuqr/ent/order"
	"github.com/menuqr/menuqr/ent/orderitem"
	"github.com/menuqr/menuqr/ent/recommendationevent"
	"github.com/menuqr/menuqr/ent/staffuser"
	"github.com/menuqr/menuqr/ent/table"
	"github.com/menuqr/menuqr/ent/waiteralert"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Business is the client for interacting with the Business builders.
	Business *BusinessClient
	// Category is the client for interacting with the Category builders.
	Category *CategoryClient
	// ItemPairFrequency is the client for interacting with the ItemPairFrequency builders.
	ItemPairFrequency *ItemPairFrequencyClient
	// MenuItem is the client for interacting with the MenuItem builders.
	MenuItem *MenuItemClient
	// Order is the client for interacting with the Order builders.
	Order *OrderClient
	// OrderItem is the client for interacting with the OrderItem builders.
	OrderItem *OrderItemClient
	// RecommendationEvent is the client for interacting with the RecommendationEvent builders.
	RecommendationEvent *RecommendationEventClient
	// StaffUser is the client for interacting with the StaffUser builders.
	StaffUser *StaffUserClient
	// Table is the client for interacting with the Table builders.
	Table *TableClient
	// WaiterAlert is the client for interacting with the WaiterAlert builders.
	WaiterAlert *WaiterAlertClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Business = NewBusinessClient(c.config)
	c.Category = NewCategoryClient(c.config)
	c.ItemPairFrequency = NewItemPairFrequencyClient(c.config)
	c.MenuItem = NewMenuItemClient(c.config)
	c.Order = NewOrderClient(c.config)
	c.OrderItem = NewOrderItemClient(c.config)
	c.RecommendationEvent = NewRecommendationEventClient(c.config)
	c.StaffUser = NewStaffUserClient(c.config)
	c.Table = NewTableClient(c.config)
	c.WaiterAlert = NewWaiterAlertClient(c.config)
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
		Business:            NewBusinessClient(cfg),
		Category:            NewCategoryClient(cfg),
		ItemPairFrequency:   NewItemPairFrequencyClient(cfg),
		MenuItem:            NewMenuItemClient(cfg),
		Order:               NewOrderClient(cfg),
		OrderItem:           NewOrderItemClient(cfg),
		RecommendationEvent: NewRecommendationEventClient(cfg),
		StaffUser:           NewStaffUserClient(cfg),
		Table:               NewTableClient(cfg),
		WaiterAlert:         NewWaiterAlertClient(cfg),
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
		Business:            NewBusinessClient(cfg),
		Category:            NewCategoryClient(cfg),
		ItemPairFrequency:   NewItemPairFrequencyClient(cfg),
		MenuItem:            NewMenuItemClient(cfg),
		Order:               NewOrderClient(cfg),
		OrderItem:           NewOrderItemClient(cfg),
		RecommendationEvent: NewRecommendationEventClient(cfg),
		StaffUser:           NewStaffUserClient(cfg),
		Table:               NewTableClient(cfg),
		WaiterAlert:         NewWaiterAlertClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Business.
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
		c.Business, c.Category, c.ItemPairFrequency, c.MenuItem, c.Order, c.OrderItem,
		c.RecommendationEvent, c.StaffUser, c.Table, c.WaiterAlert,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Business, c.Category, c.ItemPairFrequency, c.MenuItem, c.Order, c.OrderItem,
		c.RecommendationEvent, c.StaffUser, c.Table, c.WaiterAlert,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BusinessMutation:
		return c.Business.mutate(ctx, m)
	case *CategoryMutation:
		return c.Category.mutate(ctx, m)
	case *ItemPairFrequencyMutation:
		return c.ItemPairFrequency.mutate(ctx, m)
	case *MenuItemMutation:
		return c.MenuItem.mutate(ctx, m)
	case *OrderMutation:
		return c.Order.mutate(ctx, m)
	case *OrderItemMutation:
		return c.OrderItem.mutate(ctx, m)
	case *RecommendationEventMutation:
		return c.RecommendationEvent.mutate(ctx, m)
	case *StaffUserMutation:
		return c.StaffUser.mutate(ctx, m)
	case *TableMutation:
		return c.Table.mutate(ctx, m)
	case *WaiterAlertMutation:
		return c.WaiterAlert.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BusinessClient is a client for the Business schema.
type BusinessClient struct {
	config
}

// NewBusinessClient returns a client for the Business from the given config.
func NewBusinessClient(c config) *BusinessClient {
	return &BusinessClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `business.Hooks(f(g(h())))`.
func (c *BusinessClient) Use(hooks ...Hook) {
	c.hooks.Business = append(c.hooks.Business, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `business.Intercept(f(g(h())))`.
func (c *BusinessClient) Intercept(interceptors ...Interceptor) {
	c.inters.Business = append(c.inters.Business, interceptors...)
}

// Create returns a builder for creating a Business entity.
func (c *BusinessClient) Create() *BusinessCreate {
	mutation := newBusinessMutation(c.config, OpCreate)
	return &BusinessCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Business entities.
func (c *BusinessClient) CreateBulk(builders ...*BusinessCreate) *BusinessCreateBulk {
	return &BusinessCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusinessClient) MapCreateBulk(slice any, setFunc func(*BusinessCreate, int)) *BusinessCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusinessCreateBulk{err: fmt.Errorf("calling to BusinessClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusinessCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusinessCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Business.
func (c *BusinessClient) Update() *BusinessUpdate {
	mutation := newBusinessMutation(c.config, OpUpdate)
	return &BusinessUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusinessClient) UpdateOne(_m *Business) *BusinessUpdateOne {
	mutation := newBusinessMutation(c.config, OpUpdateOne, withBusiness(_m))
	return &BusinessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusinessClient) UpdateOneID(id int) *BusinessUpdateOne {
	mutation := newBusinessMutation(c.config, OpUpdateOne, withBusinessID(id))
	return &BusinessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Business.
func (c *BusinessClient) Delete() *BusinessDelete {
	mutation := newBusinessMutation(c.config, OpDelete)
	return &BusinessDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusinessClient) DeleteOne(_m *Business) *BusinessDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusinessClient) DeleteOneID(id int) *BusinessDeleteOne {
	builder := c.Delete().Where(business.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusinessDeleteOne{builder}
}

// Query returns a query builder for Business.
func (c *BusinessClient) Query() *BusinessQuery {
	return &BusinessQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusiness},
		inters: c.Interceptors(),
	}
}

// Get returns a Business entity by its id.
func (c *BusinessClient) Get(ctx context.Context, id int) (*Business, error) {
	return c.Query().Where(business.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusinessClient) GetX(ctx context.Context, id int) *Business {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCategories queries the categories edge of a Business.
func (c *BusinessClient) QueryCategories(_m *Business) *CategoryQuery {
	query := (&CategoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, id),
			sqlgraph.To(category.Table, category.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, business.CategoriesTable, business.CategoriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTables queries the tables edge of a Business.
func (c *BusinessClient) QueryTables(_m *Business) *TableQuery {
	query := (&TableClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, id),
			sqlgraph.To(table.Table, table.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, business.TablesTable, business.TablesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOrders queries the orders edge of a Business.
func (c *BusinessClient) QueryOrders(_m *Business) *OrderQuery {
	query := (&OrderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, id),
			sqlgraph.To(order.Table, order.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, business.OrdersTable, business.OrdersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItemPairs queries the item_pairs edge of a Business.
func (c *BusinessClient) QueryItemPairs(_m *Business) *ItemPairFrequencyQuery {
	query := (&ItemPairFrequencyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, id),
			sqlgraph.To(itempairfrequency.Table, itempairfrequency.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, business.ItemPairsTable, business.ItemPairsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRecommendationEvents queries the recommendation_events edge of a Business.
func (c *BusinessClient) QueryRecommendationEvents(_m *Business) *RecommendationEventQuery {
	query := (&RecommendationEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, id),
			sqlgraph.To(recommendationevent.Table, recommendationevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, business.RecommendationEventsTable, business.RecommendationEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStaff queries the staff edge of a Business.
func (c *BusinessClient) QueryStaff(_m *Business) *StaffUserQuery {
	query := (&StaffUserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, id),
			sqlgraph.To(staffuser.Table, staffuser.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, business.StaffTable, business.StaffColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWaiterAlerts queries the waiter_alerts edge of a Business.
func (c *BusinessClient) QueryWaiterAlerts(_m *Business) *WaiterAlertQuery {
	query := (&WaiterAlertClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, id),
			sqlgraph.To(waiteralert.Table, waiteralert.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, business.WaiterAlertsTable, business.WaiterAlertsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BusinessClient) Hooks() []Hook {
	return c.hooks.Business
}

// Interceptors returns the client interceptors.
func (c *BusinessClient) Interceptors() []Interceptor {
	return c.inters.Business
}

func (c *BusinessClient) mutate(ctx context.Context, m *BusinessMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusinessCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusinessUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusinessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusinessDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Business mutation op: %q", m.Op())
	}
}

// CategoryClient is a client for the Category schema.
type CategoryClient struct {
	config
}

// NewCategoryClient returns a client for the Category from the given config.
func NewCategoryClient(c config) *CategoryClient {
	return &CategoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `category.Hooks(f(g(h())))`.
func (c *CategoryClient) Use(hooks ...Hook) {
	c.hooks.Category = append(c.hooks.Category, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `category.Intercept(f(g(h())))`.
func (c *CategoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Category = append(c.inters.Category, interceptors...)
}

// Create returns a builder for creating a Category entity.
func (c *CategoryClient) Create() *CategoryCreate {
	mutation := newCategoryMutation(c.config, OpCreate)
	return &CategoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Category entities.
func (c *CategoryClient) CreateBulk(builders ...*CategoryCreate) *CategoryCreateBulk {
	return &CategoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CategoryClient) MapCreateBulk(slice any, setFunc func(*CategoryCreate, int)) *CategoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CategoryCreateBulk{err: fmt.Errorf("calling to CategoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CategoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CategoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Category.
func (c *CategoryClient) Update() *CategoryUpdate {
	mutation := newCategoryMutation(c.config, OpUpdate)
	return &CategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CategoryClient) UpdateOne(_m *Category) *CategoryUpdateOne {
	mutation := newCategoryMutation(c.config, OpUpdateOne, withCategory(_m))
	return &CategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CategoryClient) UpdateOneID(id int) *CategoryUpdateOne {
	mutation := newCategoryMutation(c.config, OpUpdateOne, withCategoryID(id))
	return &CategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Category.
func (c *CategoryClient) Delete() *CategoryDelete {
	mutation := newCategoryMutation(c.config, OpDelete)
	return &CategoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CategoryClient) DeleteOne(_m *Category) *CategoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CategoryClient) DeleteOneID(id int) *CategoryDeleteOne {
	builder := c.Delete().Where(category.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CategoryDeleteOne{builder}
}

// Query returns a query builder for Category.
func (c *CategoryClient) Query() *CategoryQuery {
	return &CategoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCategory},
		inters: c.Interceptors(),
	}
}

// Get returns a Category entity by its id.
func (c *CategoryClient) Get(ctx context.Context, id int) (*Category, error) {
	return c.Query().Where(category.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CategoryClient) GetX(ctx context.Context, id int) *Category {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBusiness queries the business edge of a Category.
func (c *CategoryClient) QueryBusiness(_m *Category) *BusinessQuery {
	query := (&BusinessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(category.Table, category.FieldID, id),
			sqlgraph.To(business.Table, business.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, category.BusinessTable, category.BusinessColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMenuItems queries the menu_items edge of a Category.
func (c *CategoryClient) QueryMenuItems(_m *Category) *MenuItemQuery {
	query := (&MenuItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(category.Table, category.FieldID, id),
			sqlgraph.To(menuitem.Table, menuitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, category.MenuItemsTable, category.MenuItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CategoryClient) Hooks() []Hook {
	return c.hooks.Category
}

// Interceptors returns the client interceptors.
func (c *CategoryClient) Interceptors() []Interceptor {
	return c.inters.Category
}

func (c *CategoryClient) mutate(ctx context.Context, m *CategoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CategoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CategoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Category mutation op: %q", m.Op())
	}
}

// ItemPairFrequencyClient is a client for the ItemPairFrequency schema.
type ItemPairFrequencyClient struct {
	config
}

// NewItemPairFrequencyClient returns a client for the ItemPairFrequency from the given config.
func NewItemPairFrequencyClient(c config) *ItemPairFrequencyClient {
	return &ItemPairFrequencyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `itempairfrequency.Hooks(f(g(h())))`.
func (c *ItemPairFrequencyClient) Use(hooks ...Hook) {
	c.hooks.ItemPairFrequency = append(c.hooks.ItemPairFrequency, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `itempairfrequency.Intercept(f(g(h())))`.
func (c *ItemPairFrequencyClient) Intercept(interceptors ...Interceptor) {
	c.inters.ItemPairFrequency = append(c.inters.ItemPairFrequency, interceptors...)
}

// Create returns a builder for creating a ItemPairFrequency entity.
func (c *ItemPairFrequencyClient) Create() *ItemPairFrequencyCreate {
	mutation := newItemPairFrequencyMutation(c.config, OpCreate)
	return &ItemPairFrequencyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ItemPairFrequency entities.
func (c *ItemPairFrequencyClient) CreateBulk(builders ...*ItemPairFrequencyCreate) *ItemPairFrequencyCreateBulk {
	return &ItemPairFrequencyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ItemPairFrequencyClient) MapCreateBulk(slice any, setFunc func(*ItemPairFrequencyCreate, int)) *ItemPairFrequencyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ItemPairFrequencyCreateBulk{err: fmt.Errorf("calling to ItemPairFrequencyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ItemPairFrequencyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ItemPairFrequencyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ItemPairFrequency.
func (c *ItemPairFrequencyClient) Update() *ItemPairFrequencyUpdate {
	mutation := newItemPairFrequencyMutation(c.config, OpUpdate)
	return &ItemPairFrequencyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ItemPairFrequencyClient) UpdateOne(_m *ItemPairFrequency) *ItemPairFrequencyUpdateOne {
	mutation := newItemPairFrequencyMutation(c.config, OpUpdateOne, withItemPairFrequency(_m))
	return &ItemPairFrequencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ItemPairFrequencyClient) UpdateOneID(id int) *ItemPairFrequencyUpdateOne {
	mutation := newItemPairFrequencyMutation(c.config, OpUpdateOne, withItemPairFrequencyID(id))
	return &ItemPairFrequencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ItemPairFrequency.
func (c *ItemPairFrequencyClient) Delete() *ItemPairFrequencyDelete {
	mutation := newItemPairFrequencyMutation(c.config, OpDelete)
	return &ItemPairFrequencyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ItemPairFrequencyClient) DeleteOne(_m *ItemPairFrequency) *ItemPairFrequencyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ItemPairFrequencyClient) DeleteOneID(id int) *ItemPairFrequencyDeleteOne {
	builder := c.Delete().Where(itempairfrequency.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ItemPairFrequencyDeleteOne{builder}
}

// Query returns a query builder for ItemPairFrequency.
func (c *ItemPairFrequencyClient) Query() *ItemPairFrequencyQuery {
	return &ItemPairFrequencyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeItemPairFrequency},
		inters: c.Interceptors(),
	}
}

// Get returns a ItemPairFrequency entity by its id.
func (c *ItemPairFrequencyClient) Get(ctx context.Context, id int) (*ItemPairFrequency, error) {
	return c.Query().Where(itempairfrequency.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ItemPairFrequencyClient) GetX(ctx context.Context, id int) *ItemPairFrequency {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBusiness queries the business edge of a ItemPairFrequency.
func (c *ItemPairFrequencyClient) QueryBusiness(_m *ItemPairFrequency) *BusinessQuery {
	query := (&BusinessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(itempairfrequency.Table, itempairfrequency.FieldID, id),
			sqlgraph.To(business.Table, business.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, itempairfrequency.BusinessTable, itempairfrequency.BusinessColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ItemPairFrequencyClient) Hooks() []Hook {
	return c.hooks.ItemPairFrequency
}

// Interceptors returns the client interceptors.
func (c *ItemPairFrequencyClient) Interceptors() []Interceptor {
	return c.inters.ItemPairFrequency
}

func (c *ItemPairFrequencyClient) mutate(ctx context.Context, m *ItemPairFrequencyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ItemPairFrequencyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ItemPairFrequencyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ItemPairFrequencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ItemPairFrequencyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ItemPairFrequency mutation op: %q", m.Op())
	}
}

// MenuItemClient is a client for the MenuItem schema.
type MenuItemClient struct {
	config
}

// NewMenuItemClient returns a client for the MenuItem from the given config.
func NewMenuItemClient(c config) *MenuItemClient {
	return &MenuItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `menuitem.Hooks(f(g(h())))`.
func (c *MenuItemClient) Use(hooks ...Hook) {
	c.hooks.MenuItem = append(c.hooks.MenuItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `menuitem.Intercept(f(g(h())))`.
func (c *MenuItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.MenuItem = append(c.inters.MenuItem, interceptors...)
}

// Create returns a builder for creating a MenuItem entity.
func (c *MenuItemClient) Create() *MenuItemCreate {
	mutation := newMenuItemMutation(c.config, OpCreate)
	return &MenuItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MenuItem entities.
func (c *MenuItemClient) CreateBulk(builders ...*MenuItemCreate) *MenuItemCreateBulk {
	return &MenuItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MenuItemClient) MapCreateBulk(slice any, setFunc func(*MenuItemCreate, int)) *MenuItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MenuItemCreateBulk{err: fmt.Errorf("calling to MenuItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MenuItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MenuItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MenuItem.
func (c *MenuItemClient) Update() *MenuItemUpdate {
	mutation := newMenuItemMutation(c.config, OpUpdate)
	return &MenuItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MenuItemClient) UpdateOne(_m *MenuItem) *MenuItemUpdateOne {
	mutation := newMenuItemMutation(c.config, OpUpdateOne, withMenuItem(_m))
	return &MenuItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MenuItemClient) UpdateOneID(id int) *MenuItemUpdateOne {
	mutation := newMenuItemMutation(c.config, OpUpdateOne, withMenuItemID(id))
	return &MenuItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MenuItem.
func (c *MenuItemClient) Delete() *MenuItemDelete {
	mutation := newMenuItemMutation(c.config, OpDelete)
	return &MenuItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MenuItemClient) DeleteOne(_m *MenuItem) *MenuItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MenuItemClient) DeleteOneID(id int) *MenuItemDeleteOne {
	builder := c.Delete().Where(menuitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MenuItemDeleteOne{builder}
}

// Query returns a query builder for MenuItem.
func (c *MenuItemClient) Query() *MenuItemQuery {
	return &MenuItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMenuItem},
		inters: c.Interceptors(),
	}
}

// Get returns a MenuItem entity by its id.
func (c *MenuItemClient) Get(ctx context.Context, id int) (*MenuItem, error) {
	return c.Query().Where(menuitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MenuItemClient) GetX(ctx context.Context, id int) *MenuItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCategory queries the category edge of a MenuItem.
func (c *MenuItemClient) QueryCategory(_m *MenuItem) *CategoryQuery {
	query := (&CategoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(menuitem.Table, menuitem.FieldID, id),
			sqlgraph.To(category.Table, category.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, menuitem.CategoryTable, menuitem.CategoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOrderItems queries the order_items edge of a MenuItem.
func (c *MenuItemClient) QueryOrderItems(_m *MenuItem) *OrderItemQuery {
	query := (&OrderItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(menuitem.Table, menuitem.FieldID, id),
			sqlgraph.To(orderitem.Table, orderitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, menuitem.OrderItemsTable, menuitem.OrderItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MenuItemClient) Hooks() []Hook {
	return c.hooks.MenuItem
}

// Interceptors returns the client interceptors.
func (c *MenuItemClient) Interceptors() []Interceptor {
	return c.inters.MenuItem
}

func (c *MenuItemClient) mutate(ctx context.Context, m *MenuItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MenuItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MenuItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MenuItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MenuItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MenuItem mutation op: %q", m.Op())
	}
}

// OrderClient is a client for the Order schema.
type OrderClient struct {
	config
}

// NewOrderClient returns a client for the Order from the given config.
func NewOrderClient(c config) *OrderClient {
	return &OrderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `order.Hooks(f(g(h())))`.
func (c *OrderClient) Use(hooks ...Hook) {
	c.hooks.Order = append(c.hooks.Order, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `order.Intercept(f(g(h())))`.
func (c *OrderClient) Intercept(interceptors ...Interceptor) {
	c.inters.Order = append(c.inters.Order, interceptors...)
}

// Create returns a builder for creating a Order entity.
func (c *OrderClient) Create() *OrderCreate {
	mutation := newOrderMutation(c.config, OpCreate)
	return &OrderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Order entities.
func (c *OrderClient) CreateBulk(builders ...*OrderCreate) *OrderCreateBulk {
	return &OrderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderClient) MapCreateBulk(slice any, setFunc func(*OrderCreate, int)) *OrderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderCreateBulk{err: fmt.Errorf("calling to OrderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Order.
func (c *OrderClient) Update() *OrderUpdate {
	mutation := newOrderMutation(c.config, OpUpdate)
	return &OrderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderClient) UpdateOne(_m *Order) *OrderUpdateOne {
	mutation := newOrderMutation(c.config, OpUpdateOne, withOrder(_m))
	return &OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderClient) UpdateOneID(id uuid.UUID) *OrderUpdateOne {
	mutation := newOrderMutation(c.config, OpUpdateOne, withOrderID(id))
	return &OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Order.
func (c *OrderClient) Delete() *OrderDelete {
	mutation := newOrderMutation(c.config, OpDelete)
	return &OrderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderClient) DeleteOne(_m *Order) *OrderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderClient) DeleteOneID(id uuid.UUID) *OrderDeleteOne {
	builder := c.Delete().Where(order.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderDeleteOne{builder}
}

// Query returns a query builder for Order.
func (c *OrderClient) Query() *OrderQuery {
	return &OrderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrder},
		inters: c.Interceptors(),
	}
}

// Get returns a Order entity by its id.
func (c *OrderClient) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	return c.Query().Where(order.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderClient) GetX(ctx context.Context, id uuid.UUID) *Order {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBusiness queries the business edge of a Order.
func (c *OrderClient) QueryBusiness(_m *Order) *BusinessQuery {
	query := (&BusinessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(order.Table, order.FieldID, id),
			sqlgraph.To(business.Table, business.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, order.BusinessTable, order.BusinessColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTable queries the table edge of a Order.
func (c *OrderClient) QueryTable(_m *Order) *TableQuery {
	query := (&TableClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(order.Table, order.FieldID, id),
			sqlgraph.To(table.Table, table.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, order.TableTable, order.TableColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a Order.
func (c *OrderClient) QueryItems(_m *Order) *OrderItemQuery {
	query := (&OrderItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(order.Table, order.FieldID, id),
			sqlgraph.To(orderitem.Table, orderitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, order.ItemsTable, order.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderClient) Hooks() []Hook {
	return c.hooks.Order
}

// Interceptors returns the client interceptors.
func (c *OrderClient) Interceptors() []Interceptor {
	return c.inters.Order
}

func (c *OrderClient) mutate(ctx context.Context, m *OrderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Order mutation op: %q", m.Op())
	}
}

// OrderItemClient is a client for the OrderItem schema.
type OrderItemClient struct {
	config
}

// NewOrderItemClient returns a client for the OrderItem from the given config.
func NewOrderItemClient(c config) *OrderItemClient {
	return &OrderItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orderitem.Hooks(f(g(h())))`.
func (c *OrderItemClient) Use(hooks ...Hook) {
	c.hooks.OrderItem = append(c.hooks.OrderItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orderitem.Intercept(f(g(h())))`.
func (c *OrderItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrderItem = append(c.inters.OrderItem, interceptors...)
}

// Create returns a builder for creating a OrderItem entity.
func (c *OrderItemClient) Create() *OrderItemCreate {
	mutation := newOrderItemMutation(c.config, OpCreate)
	return &OrderItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrderItem entities.
func (c *OrderItemClient) CreateBulk(builders ...*OrderItemCreate) *OrderItemCreateBulk {
	return &OrderItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderItemClient) MapCreateBulk(slice any, setFunc func(*OrderItemCreate, int)) *OrderItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderItemCreateBulk{err: fmt.Errorf("calling to OrderItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrderItem.
func (c *OrderItemClient) Update() *OrderItemUpdate {
	mutation := newOrderItemMutation(c.config, OpUpdate)
	return &OrderItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderItemClient) UpdateOne(_m *OrderItem) *OrderItemUpdateOne {
	mutation := newOrderItemMutation(c.config, OpUpdateOne, withOrderItem(_m))
	return &OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderItemClient) UpdateOneID(id int) *OrderItemUpdateOne {
	mutation := newOrderItemMutation(c.config, OpUpdateOne, withOrderItemID(id))
	return &OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrderItem.
func (c *OrderItemClient) Delete() *OrderItemDelete {
	mutation := newOrderItemMutation(c.config, OpDelete)
	return &OrderItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderItemClient) DeleteOne(_m *OrderItem) *OrderItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderItemClient) DeleteOneID(id int) *OrderItemDeleteOne {
	builder := c.Delete().Where(orderitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderItemDeleteOne{builder}
}

// Query returns a query builder for OrderItem.
func (c *OrderItemClient) Query() *OrderItemQuery {
	return &OrderItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrderItem},
		inters: c.Interceptors(),
	}
}

// Get returns a OrderItem entity by its id.
func (c *OrderItemClient) Get(ctx context.Context, id int) (*OrderItem, error) {
	return c.Query().Where(orderitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderItemClient) GetX(ctx context.Context, id int) *OrderItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrder queries the order edge of a OrderItem.
func (c *OrderItemClient) QueryOrder(_m *OrderItem) *OrderQuery {
	query := (&OrderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderitem.Table, orderitem.FieldID, id),
			sqlgraph.To(order.Table, order.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, orderitem.OrderTable, orderitem.OrderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMenuItem queries the menu_item edge of a OrderItem.
func (c *OrderItemClient) QueryMenuItem(_m *OrderItem) *MenuItemQuery {
	query := (&MenuItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderitem.Table, orderitem.FieldID, id),
			sqlgraph.To(menuitem.Table, menuitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, orderitem.MenuItemTable, orderitem.MenuItemColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderItemClient) Hooks() []Hook {
	return c.hooks.OrderItem
}

// Interceptors returns the client interceptors.
func (c *OrderItemClient) Interceptors() []Interceptor {
	return c.inters.OrderItem
}

func (c *OrderItemClient) mutate(ctx context.Context, m *OrderItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrderItem mutation op: %q", m.Op())
	}
}

// RecommendationEventClient is a client for the RecommendationEvent schema.
type RecommendationEventClient struct {
	config
}

// NewRecommendationEventClient returns a client for the RecommendationEvent from the given config.
func NewRecommendationEventClient(c config) *RecommendationEventClient {
	return &RecommendationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recommendationevent.Hooks(f(g(h())))`.
func (c *RecommendationEventClient) Use(hooks ...Hook) {
	c.hooks.RecommendationEvent = append(c.hooks.RecommendationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recommendationevent.Intercept(f(g(h())))`.
func (c *RecommendationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RecommendationEvent = append(c.inters.RecommendationEvent, interceptors...)
}

// Create returns a builder for creating a RecommendationEvent entity.
func (c *RecommendationEventClient) Create() *RecommendationEventCreate {
	mutation := newRecommendationEventMutation(c.config, OpCreate)
	return &RecommendationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RecommendationEvent entities.
func (c *RecommendationEventClient) CreateBulk(builders ...*RecommendationEventCreate) *RecommendationEventCreateBulk {
	return &RecommendationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecommendationEventClient) MapCreateBulk(slice any, setFunc func(*RecommendationEventCreate, int)) *RecommendationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecommendationEventCreateBulk{err: fmt.Errorf("calling to RecommendationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecommendationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecommendationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RecommendationEvent.
func (c *RecommendationEventClient) Update() *RecommendationEventUpdate {
	mutation := newRecommendationEventMutation(c.config, OpUpdate)
	return &RecommendationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecommendationEventClient) UpdateOne(_m *RecommendationEvent) *RecommendationEventUpdateOne {
	mutation := newRecommendationEventMutation(c.config, OpUpdateOne, withRecommendationEvent(_m))
	return &RecommendationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecommendationEventClient) UpdateOneID(id int) *RecommendationEventUpdateOne {
	mutation := newRecommendationEventMutation(c.config, OpUpdateOne, withRecommendationEventID(id))
	return &RecommendationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RecommendationEvent.
func (c *RecommendationEventClient) Delete() *RecommendationEventDelete {
	mutation := newRecommendationEventMutation(c.config, OpDelete)
	return &RecommendationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecommendationEventClient) DeleteOne(_m *RecommendationEvent) *RecommendationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecommendationEventClient) DeleteOneID(id int) *RecommendationEventDeleteOne {
	builder := c.Delete().Where(recommendationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecommendationEventDeleteOne{builder}
}

// Query returns a query builder for RecommendationEvent.
func (c *RecommendationEventClient) Query() *RecommendationEventQuery {
	return &RecommendationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecommendationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RecommendationEvent entity by its id.
func (c *RecommendationEventClient) Get(ctx context.Context, id int) (*RecommendationEvent, error) {
	return c.Query().Where(recommendationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecommendationEventClient) GetX(ctx context.Context, id int) *RecommendationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBusiness queries the business edge of a RecommendationEvent.
func (c *RecommendationEventClient) QueryBusiness(_m *RecommendationEvent) *BusinessQuery {
	query := (&BusinessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(recommendationevent.Table, recommendationevent.FieldID, id),
			sqlgraph.To(business.Table, business.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, recommendationevent.BusinessTable, recommendationevent.BusinessColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RecommendationEventClient) Hooks() []Hook {
	return c.hooks.RecommendationEvent
}

// Interceptors returns the client interceptors.
func (c *RecommendationEventClient) Interceptors() []Interceptor {
	return c.inters.RecommendationEvent
}

func (c *RecommendationEventClient) mutate(ctx context.Context, m *RecommendationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecommendationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecommendationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecommendationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecommendationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RecommendationEvent mutation op: %q", m.Op())
	}
}

// StaffUserClient is a client for the StaffUser schema.
type StaffUserClient struct {
	config
}

// NewStaffUserClient returns a client for the StaffUser from the given config.
func NewStaffUserClient(c config) *StaffUserClient {
	return &StaffUserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `staffuser.Hooks(f(g(h())))`.
func (c *StaffUserClient) Use(hooks ...Hook) {
	c.hooks.StaffUser = append(c.hooks.StaffUser, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `staffuser.Intercept(f(g(h())))`.
func (c *StaffUserClient) Intercept(interceptors ...Interceptor) {
	c.inters.StaffUser = append(c.inters.StaffUser, interceptors...)
}

// Create returns a builder for creating a StaffUser entity.
func (c *StaffUserClient) Create() *StaffUserCreate {
	mutation := newStaffUserMutation(c.config, OpCreate)
	return &StaffUserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StaffUser entities.
func (c *StaffUserClient) CreateBulk(builders ...*StaffUserCreate) *StaffUserCreateBulk {
	return &StaffUserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StaffUserClient) MapCreateBulk(slice any, setFunc func(*StaffUserCreate, int)) *StaffUserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StaffUserCreateBulk{err: fmt.Errorf("calling to StaffUserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StaffUserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StaffUserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StaffUser.
func (c *StaffUserClient) Update() *StaffUserUpdate {
	mutation := newStaffUserMutation(c.config, OpUpdate)
	return &StaffUserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StaffUserClient) UpdateOne(_m *StaffUser) *StaffUserUpdateOne {
	mutation := newStaffUserMutation(c.config, OpUpdateOne, withStaffUser(_m))
	return &StaffUserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StaffUserClient) UpdateOneID(id int) *StaffUserUpdateOne {
	mutation := newStaffUserMutation(c.config, OpUpdateOne, withStaffUserID(id))
	return &StaffUserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StaffUser.
func (c *StaffUserClient) Delete() *StaffUserDelete {
	mutation := newStaffUserMutation(c.config, OpDelete)
	return &StaffUserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StaffUserClient) DeleteOne(_m *StaffUser) *StaffUserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StaffUserClient) DeleteOneID(id int) *StaffUserDeleteOne {
	builder := c.Delete().Where(staffuser.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StaffUserDeleteOne{builder}
}

// Query returns a query builder for StaffUser.
func (c *StaffUserClient) Query() *StaffUserQuery {
	return &StaffUserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStaffUser},
		inters: c.Interceptors(),
	}
}

// Get returns a StaffUser entity by its id.
func (c *StaffUserClient) Get(ctx context.Context, id int) (*StaffUser, error) {
	return c.Query().Where(staffuser.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StaffUserClient) GetX(ctx context.Context, id int) *StaffUser {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBusiness queries the business edge of a StaffUser.
func (c *StaffUserClient) QueryBusiness(_m *StaffUser) *BusinessQuery {
	query := (&BusinessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(staffuser.Table, staffuser.FieldID, id),
			sqlgraph.To(business.Table, business.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, staffuser.BusinessTable, staffuser.BusinessColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StaffUserClient) Hooks() []Hook {
	return c.hooks.StaffUser
}

// Interceptors returns the client interceptors.
func (c *StaffUserClient) Interceptors() []Interceptor {
	return c.inters.StaffUser
}

func (c *StaffUserClient) mutate(ctx context.Context, m *StaffUserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StaffUserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StaffUserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StaffUserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StaffUserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StaffUser mutation op: %q", m.Op())
	}
}

// TableClient is a client for the Table schema.
type TableClient struct {
	config
}

// NewTableClient returns a client for the Table from the given config.
func NewTableClient(c config) *TableClient {
	return &TableClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `table.Hooks(f(g(h())))`.
func (c *TableClient) Use(hooks ...Hook) {
	c.hooks.Table = append(c.hooks.Table, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `table.Intercept(f(g(h())))`.
func (c *TableClient) Intercept(interceptors ...Interceptor) {
	c.inters.Table = append(c.inters.Table, interceptors...)
}

// Create returns a builder for creating a Table entity.
func (c *TableClient) Create() *TableCreate {
	mutation := newTableMutation(c.config, OpCreate)
	return &TableCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Table entities.
func (c *TableClient) CreateBulk(builders ...*TableCreate) *TableCreateBulk {
	return &TableCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TableClient) MapCreateBulk(slice any, setFunc func(*TableCreate, int)) *TableCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TableCreateBulk{err: fmt.Errorf("calling to TableClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TableCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TableCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Table.
func (c *TableClient) Update() *TableUpdate {
	mutation := newTableMutation(c.config, OpUpdate)
	return &TableUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TableClient) UpdateOne(_m *Table) *TableUpdateOne {
	mutation := newTableMutation(c.config, OpUpdateOne, withTable(_m))
	return &TableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TableClient) UpdateOneID(id int) *TableUpdateOne {
	mutation := newTableMutation(c.config, OpUpdateOne, withTableID(id))
	return &TableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Table.
func (c *TableClient) Delete() *TableDelete {
	mutation := newTableMutation(c.config, OpDelete)
	return &TableDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TableClient) DeleteOne(_m *Table) *TableDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TableClient) DeleteOneID(id int) *TableDeleteOne {
	builder := c.Delete().Where(table.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TableDeleteOne{builder}
}

// Query returns a query builder for Table.
func (c *TableClient) Query() *TableQuery {
	return &TableQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTable},
		inters: c.Interceptors(),
	}
}

// Get returns a Table entity by its id.
func (c *TableClient) Get(ctx context.Context, id int) (*Table, error) {
	return c.Query().Where(table.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TableClient) GetX(ctx context.Context, id int) *Table {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBusiness queries the business edge of a Table.
func (c *TableClient) QueryBusiness(_m *Table) *BusinessQuery {
	query := (&BusinessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(table.Table, table.FieldID, id),
			sqlgraph.To(business.Table, business.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, table.BusinessTable, table.BusinessColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOrders queries the orders edge of a Table.
func (c *TableClient) QueryOrders(_m *Table) *OrderQuery {
	query := (&OrderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(table.Table, table.FieldID, id),
			sqlgraph.To(order.Table, order.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, table.OrdersTable, table.OrdersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWaiterAlerts queries the waiter_alerts edge of a Table.
func (c *TableClient) QueryWaiterAlerts(_m *Table) *WaiterAlertQuery {
	query := (&WaiterAlertClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(table.Table, table.FieldID, id),
			sqlgraph.To(waiteralert.Table, waiteralert.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, table.WaiterAlertsTable, table.WaiterAlertsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TableClient) Hooks() []Hook {
	return c.hooks.Table
}

// Interceptors returns the client interceptors.
func (c *TableClient) Interceptors() []Interceptor {
	return c.inters.Table
}

func (c *TableClient) mutate(ctx context.Context, m *TableMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TableCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TableUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TableDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Table mutation op: %q", m.Op())
	}
}

// WaiterAlertClient is a client for the WaiterAlert schema.
type WaiterAlertClient struct {
	config
}

// NewWaiterAlertClient returns a client for the WaiterAlert from the given config.
func NewWaiterAlertClient(c config) *WaiterAlertClient {
	return &WaiterAlertClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `waiteralert.Hooks(f(g(h())))`.
func (c *WaiterAlertClient) Use(hooks ...Hook) {
	c.hooks.WaiterAlert = append(c.hooks.WaiterAlert, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `waiteralert.Intercept(f(g(h())))`.
func (c *WaiterAlertClient) Intercept(interceptors ...Interceptor) {
	c.inters.WaiterAlert = append(c.inters.WaiterAlert, interceptors...)
}

// Create returns a builder for creating a WaiterAlert entity.
func (c *WaiterAlertClient) Create() *WaiterAlertCreate {
	mutation := newWaiterAlertMutation(c.config, OpCreate)
	return &WaiterAlertCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WaiterAlert entities.
func (c *WaiterAlertClient) CreateBulk(builders ...*WaiterAlertCreate) *WaiterAlertCreateBulk {
	return &WaiterAlertCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WaiterAlertClient) MapCreateBulk(slice any, setFunc func(*WaiterAlertCreate, int)) *WaiterAlertCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WaiterAlertCreateBulk{err: fmt.Errorf("calling to WaiterAlertClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WaiterAlertCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WaiterAlertCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WaiterAlert.
func (c *WaiterAlertClient) Update() *WaiterAlertUpdate {
	mutation := newWaiterAlertMutation(c.config, OpUpdate)
	return &WaiterAlertUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WaiterAlertClient) UpdateOne(_m *WaiterAlert) *WaiterAlertUpdateOne {
	mutation := newWaiterAlertMutation(c.config, OpUpdateOne, withWaiterAlert(_m))
	return &WaiterAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WaiterAlertClient) UpdateOneID(id int) *WaiterAlertUpdateOne {
	mutation := newWaiterAlertMutation(c.config, OpUpdateOne, withWaiterAlertID(id))
	return &WaiterAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WaiterAlert.
func (c *WaiterAlertClient) Delete() *WaiterAlertDelete {
	mutation := newWaiterAlertMutation(c.config, OpDelete)
	return &WaiterAlertDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WaiterAlertClient) DeleteOne(_m *WaiterAlert) *WaiterAlertDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WaiterAlertClient) DeleteOneID(id int) *WaiterAlertDeleteOne {
	builder := c.Delete().Where(waiteralert.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WaiterAlertDeleteOne{builder}
}

// Query returns a query builder for WaiterAlert.
func (c *WaiterAlertClient) Query() *WaiterAlertQuery {
	return &WaiterAlertQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWaiterAlert},
		inters: c.Interceptors(),
	}
}

// Get returns a WaiterAlert entity by its id.
func (c *WaiterAlertClient) Get(ctx context.Context, id int) (*WaiterAlert, error) {
	return c.Query().Where(waiteralert.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WaiterAlertClient) GetX(ctx context.Context, id int) *WaiterAlert {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBusiness queries the business edge of a WaiterAlert.
func (c *WaiterAlertClient) QueryBusiness(_m *WaiterAlert) *BusinessQuery {
	query := (&BusinessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(waiteralert.Table, waiteralert.FieldID, id),
			sqlgraph.To(business.Table, business.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, waiteralert.BusinessTable, waiteralert.BusinessColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTable queries the table edge of a WaiterAlert.
func (c *WaiterAlertClient) QueryTable(_m *WaiterAlert) *TableQuery {
	query := (&TableClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(waiteralert.Table, waiteralert.FieldID, id),
			sqlgraph.To(table.Table, table.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, waiteralert.TableTable, waiteralert.TableColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WaiterAlertClient) Hooks() []Hook {
	return c.hooks.WaiterAlert
}

// Interceptors returns the client interceptors.
func (c *WaiterAlertClient) Interceptors() []Interceptor {
	return c.inters.WaiterAlert
}

func (c *WaiterAlertClient) mutate(ctx context.Context, m *WaiterAlertMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WaiterAlertCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WaiterAlertUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WaiterAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WaiterAlertDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WaiterAlert mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Business, Category, ItemPairFrequency, MenuItem, Order, OrderItem,
		RecommendationEvent, StaffUser, Table, WaiterAlert []ent.Hook
	}
	inters struct {
		Business, Category, ItemPairFrequency, MenuItem, Order, OrderItem,
		RecommendationEvent, StaffUser, Table, WaiterAlert []ent.Interceptor
	}
)
