// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/category"
	"github.com/menuqr/menuqr/ent/itempairfrequency"
	"github.com/menuqr/menuqr/ent/order"
	"github.com/menuqr/menuqr/ent/predicate"
	"github.com/menuqr/menuqr/ent/recommendationevent"
	"github.com/menuqr/menuqr/ent/staffuser"
	"github.com/menuqr/menuqr/ent/table"
	"github.com/menuqr/menuqr/ent/waiteralert"
)

// BusinessQuery is the builder for querying Business entities.
type BusinessQuery struct {
	config
	ctx                      *QueryContext
	order                    []business.OrderOption
	inters                   []Interceptor
	predicates               []predicate.Business
	withCategories           *CategoryQuery
	withTables               *TableQuery
	withOrders               *OrderQuery
	withItemPairs            *ItemPairFrequencyQuery
	withRecommendationEvents *RecommendationEventQuery
	withStaff                *StaffUserQuery
	withWaiterAlerts         *WaiterAlertQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BusinessQuery builder.
func (_q *BusinessQuery) Where(ps ...predicate.Business) *BusinessQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BusinessQuery) Limit(limit int) *BusinessQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BusinessQuery) Offset(offset int) *BusinessQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BusinessQuery) Unique(unique bool) *BusinessQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BusinessQuery) Order(o ...business.OrderOption) *BusinessQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCategories chains the current query on the "categories" edge.
func (_q *BusinessQuery) QueryCategories() *CategoryQuery {
	query := (&CategoryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, selector),
			sqlgraph.To(category.Table, category.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, business.CategoriesTable, business.CategoriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTables chains the current query on the "tables" edge.
func (_q *BusinessQuery) QueryTables() *TableQuery {
	query := (&TableClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, selector),
			sqlgraph.To(table.Table, table.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, business.TablesTable, business.TablesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOrders chains the current query on the "orders" edge.
func (_q *BusinessQuery) QueryOrders() *OrderQuery {
	query := (&OrderClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, selector),
			sqlgraph.To(order.Table, order.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, business.OrdersTable, business.OrdersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryItemPairs chains the current query on the "item_pairs" edge.
func (_q *BusinessQuery) QueryItemPairs() *ItemPairFrequencyQuery {
	query := (&ItemPairFrequencyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, selector),
			sqlgraph.To(itempairfrequency.Table, itempairfrequency.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, business.ItemPairsTable, business.ItemPairsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRecommendationEvents chains the current query on the "recommendation_events" edge.
func (_q *BusinessQuery) QueryRecommendationEvents() *RecommendationEventQuery {
	query := (&RecommendationEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, selector),
			sqlgraph.To(recommendationevent.Table, recommendationevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, business.RecommendationEventsTable, business.RecommendationEventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStaff chains the current query on the "staff" edge.
func (_q *BusinessQuery) QueryStaff() *StaffUserQuery {
	query := (&StaffUserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, selector),
			sqlgraph.To(staffuser.Table, staffuser.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, business.StaffTable, business.StaffColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryWaiterAlerts chains the current query on the "waiter_alerts" edge.
func (_q *BusinessQuery) QueryWaiterAlerts() *WaiterAlertQuery {
	query := (&WaiterAlertClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, selector),
			sqlgraph.To(waiteralert.Table, waiteralert.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, business.WaiterAlertsTable, business.WaiterAlertsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Business entity from the query.
// Returns a *NotFoundError when no Business was found.
func (_q *BusinessQuery) First(ctx context.Context) (*Business, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{business.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BusinessQuery) FirstX(ctx context.Context) *Business {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Business ID from the query.
// Returns a *NotFoundError when no Business ID was found.
func (_q *BusinessQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{business.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BusinessQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Business entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Business entity is found.
// Returns a *NotFoundError when no Business entities are found.
func (_q *BusinessQuery) Only(ctx context.Context) (*Business, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{business.Label}
	default:
		return nil, &NotSingularError{business.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BusinessQuery) OnlyX(ctx context.Context) *Business {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Business ID in the query.
// Returns a *NotSingularError when more than one Business ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BusinessQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{business.Label}
	default:
		err = &NotSingularError{business.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BusinessQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Businesses.
func (_q *BusinessQuery) All(ctx context.Context) ([]*Business, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Business, *BusinessQuery]()
	return withInterceptors[[]*Business](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BusinessQuery) AllX(ctx context.Context) []*Business {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Business IDs.
func (_q *BusinessQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(business.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BusinessQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BusinessQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BusinessQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BusinessQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BusinessQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *BusinessQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BusinessQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BusinessQuery) Clone() *BusinessQuery {
	if _q == nil {
		return nil
	}
	return &BusinessQuery{
		config:                   _q.config,
		ctx:                      _q.ctx.Clone(),
		order:                    append([]business.OrderOption{}, _q.order...),
		inters:                   append([]Interceptor{}, _q.inters...),
		predicates:               append([]predicate.Business{}, _q.predicates...),
		withCategories:           _q.withCategories.Clone(),
		withTables:               _q.withTables.Clone(),
		withOrders:               _q.withOrders.Clone(),
		withItemPairs:            _q.withItemPairs.Clone(),
		withRecommendationEvents: _q.withRecommendationEvents.Clone(),
		withStaff:                _q.withStaff.Clone(),
		withWaiterAlerts:         _q.withWaiterAlerts.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCategories tells the query-builder to eager-load the nodes that are connected to
// the "categories" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BusinessQuery) WithCategories(opts ...func(*CategoryQuery)) *BusinessQuery {
	query := (&CategoryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCategories = query
	return _q
}

// WithTables tells the query-builder to eager-load the nodes that are connected to
// the "tables" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BusinessQuery) WithTables(opts ...func(*TableQuery)) *BusinessQuery {
	query := (&TableClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTables = query
	return _q
}

// WithOrders tells the query-builder to eager-load the nodes that are connected to
// the "orders" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BusinessQuery) WithOrders(opts ...func(*OrderQuery)) *BusinessQuery {
	query := (&OrderClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOrders = query
	return _q
}

// WithItemPairs tells the query-builder to eager-load the nodes that are connected to
// the "item_pairs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BusinessQuery) WithItemPairs(opts ...func(*ItemPairFrequencyQuery)) *BusinessQuery {
	query := (&ItemPairFrequencyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withItemPairs = query
	return _q
}

// WithRecommendationEvents tells the query-builder to eager-load the nodes that are connected to
// the "recommendation_events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BusinessQuery) WithRecommendationEvents(opts ...func(*RecommendationEventQuery)) *BusinessQuery {
	query := (&RecommendationEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRecommendationEvents = query
	return _q
}

// WithStaff tells the query-builder to eager-load the nodes that are connected to
// the "staff" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BusinessQuery) WithStaff(opts ...func(*StaffUserQuery)) *BusinessQuery {
	query := (&StaffUserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStaff = query
	return _q
}

// WithWaiterAlerts tells the query-builder to eager-load the nodes that are connected to
// the "waiter_alerts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BusinessQuery) WithWaiterAlerts(opts ...func(*WaiterAlertQuery)) *BusinessQuery {
	query := (&WaiterAlertClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWaiterAlerts = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Business.Query().
//		GroupBy(business.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BusinessQuery) GroupBy(field string, fields ...string) *BusinessGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BusinessGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = business.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Business.Query().
//		Select(business.FieldName).
//		Scan(ctx, &v)
func (_q *BusinessQuery) Select(fields ...string) *BusinessSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BusinessSelect{BusinessQuery: _q}
	sbuild.label = business.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BusinessSelect configured with the given aggregations.
func (_q *BusinessQuery) Aggregate(fns ...AggregateFunc) *BusinessSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BusinessQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !business.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *BusinessQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Business, error) {
	var (
		nodes       = []*Business{}
		_spec       = _q.querySpec()
		loadedTypes = [7]bool{
			_q.withCategories != nil,
			_q.withTables != nil,
			_q.withOrders != nil,
			_q.withItemPairs != nil,
			_q.withRecommendationEvents != nil,
			_q.withStaff != nil,
			_q.withWaiterAlerts != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Business).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Business{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withCategories; query != nil {
		if err := _q.loadCategories(ctx, query, nodes,
			func(n *Business) { n.Edges.Categories = []*Category{} },
			func(n *Business, e *Category) { n.Edges.Categories = append(n.Edges.Categories, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTables; query != nil {
		if err := _q.loadTables(ctx, query, nodes,
			func(n *Business) { n.Edges.Tables = []*Table{} },
			func(n *Business, e *Table) { n.Edges.Tables = append(n.Edges.Tables, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOrders; query != nil {
		if err := _q.loadOrders(ctx, query, nodes,
			func(n *Business) { n.Edges.Orders = []*Order{} },
			func(n *Business, e *Order) { n.Edges.Orders = append(n.Edges.Orders, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withItemPairs; query != nil {
		if err := _q.loadItemPairs(ctx, query, nodes,
			func(n *Business) { n.Edges.ItemPairs = []*ItemPairFrequency{} },
			func(n *Business, e *ItemPairFrequency) { n.Edges.ItemPairs = append(n.Edges.ItemPairs, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRecommendationEvents; query != nil {
		if err := _q.loadRecommendationEvents(ctx, query, nodes,
			func(n *Business) { n.Edges.RecommendationEvents = []*RecommendationEvent{} },
			func(n *Business, e *RecommendationEvent) {
				n.Edges.RecommendationEvents = append(n.Edges.RecommendationEvents, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withStaff; query != nil {
		if err := _q.loadStaff(ctx, query, nodes,
			func(n *Business) { n.Edges.Staff = []*StaffUser{} },
			func(n *Business, e *StaffUser) { n.Edges.Staff = append(n.Edges.Staff, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withWaiterAlerts; query != nil {
		if err := _q.loadWaiterAlerts(ctx, query, nodes,
			func(n *Business) { n.Edges.WaiterAlerts = []*WaiterAlert{} },
			func(n *Business, e *WaiterAlert) { n.Edges.WaiterAlerts = append(n.Edges.WaiterAlerts, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BusinessQuery) loadCategories(ctx context.Context, query *CategoryQuery, nodes []*Business, init func(*Business), assign func(*Business, *Category)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Business)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(category.FieldBusinessID)
	}
	query.Where(predicate.Category(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(business.CategoriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BusinessID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "business_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *BusinessQuery) loadTables(ctx context.Context, query *TableQuery, nodes []*Business, init func(*Business), assign func(*Business, *Table)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Business)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(table.FieldBusinessID)
	}
	query.Where(predicate.Table(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(business.TablesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BusinessID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "business_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *BusinessQuery) loadOrders(ctx context.Context, query *OrderQuery, nodes []*Business, init func(*Business), assign func(*Business, *Order)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Business)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(order.FieldBusinessID)
	}
	query.Where(predicate.Order(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(business.OrdersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BusinessID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "business_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *BusinessQuery) loadItemPairs(ctx context.Context, query *ItemPairFrequencyQuery, nodes []*Business, init func(*Business), assign func(*Business, *ItemPairFrequency)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Business)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(itempairfrequency.FieldBusinessID)
	}
	query.Where(predicate.ItemPairFrequency(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(business.ItemPairsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BusinessID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "business_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *BusinessQuery) loadRecommendationEvents(ctx context.Context, query *RecommendationEventQuery, nodes []*Business, init func(*Business), assign func(*Business, *RecommendationEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Business)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(recommendationevent.FieldBusinessID)
	}
	query.Where(predicate.RecommendationEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(business.RecommendationEventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BusinessID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "business_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *BusinessQuery) loadStaff(ctx context.Context, query *StaffUserQuery, nodes []*Business, init func(*Business), assign func(*Business, *StaffUser)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Business)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(staffuser.FieldBusinessID)
	}
	query.Where(predicate.StaffUser(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(business.StaffColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BusinessID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "business_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *BusinessQuery) loadWaiterAlerts(ctx context.Context, query *WaiterAlertQuery, nodes []*Business, init func(*Business), assign func(*Business, *WaiterAlert)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Business)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(waiteralert.FieldBusinessID)
	}
	query.Where(predicate.WaiterAlert(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(business.WaiterAlertsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BusinessID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "business_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *BusinessQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BusinessQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(business.Table, business.Columns, sqlgraph.NewFieldSpec(business.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, business.FieldID)
		for i := range fields {
			if fields[i] != business.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *BusinessQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(business.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = business.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// BusinessGroupBy is the group-by builder for Business entities.
type BusinessGroupBy struct {
	selector
	build *BusinessQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BusinessGroupBy) Aggregate(fns ...AggregateFunc) *BusinessGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BusinessGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BusinessQuery, *BusinessGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BusinessGroupBy) sqlScan(ctx context.Context, root *BusinessQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// BusinessSelect is the builder for selecting fields of Business entities.
type BusinessSelect struct {
	*BusinessQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BusinessSelect) Aggregate(fns ...AggregateFunc) *BusinessSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BusinessSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BusinessQuery, *BusinessSelect](ctx, _s.BusinessQuery, _s, _s.inters, v)
}

func (_s *BusinessSelect) sqlScan(ctx context.Context, root *BusinessQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
