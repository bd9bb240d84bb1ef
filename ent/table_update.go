// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/order"
	"github.com/menuqr/menuqr/ent/predicate"
	"github.com/menuqr/menuqr/ent/table"
	"github.com/menuqr/menuqr/ent/waiteralert"
)

// TableUpdate is the builder for updating Table entities.
type TableUpdate struct {
	config
	hooks    []Hook
	mutation *TableMutation
}

// Where appends a list predicates to the TableUpdate builder.
func (_u *TableUpdate) Where(ps ...predicate.Table) *TableUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *TableUpdate) SetBusinessID(v int) *TableUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *TableUpdate) SetNillableBusinessID(v *int) *TableUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetTableNumber sets the "table_number" field.
func (_u *TableUpdate) SetTableNumber(v string) *TableUpdate {
	_u.mutation.SetTableNumber(v)
	return _u
}

// SetNillableTableNumber sets the "table_number" field if the given value is not nil.
func (_u *TableUpdate) SetNillableTableNumber(v *string) *TableUpdate {
	if v != nil {
		_u.SetTableNumber(*v)
	}
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *TableUpdate) SetCapacity(v int) *TableUpdate {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *TableUpdate) SetNillableCapacity(v *int) *TableUpdate {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *TableUpdate) AddCapacity(v int) *TableUpdate {
	_u.mutation.AddCapacity(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TableUpdate) SetStatus(v table.Status) *TableUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TableUpdate) SetNillableStatus(v *table.Status) *TableUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TableUpdate) SetUpdatedAt(v time.Time) *TableUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *TableUpdate) SetBusiness(v *Business) *TableUpdate {
	return _u.SetBusinessID(v.ID)
}

// AddOrderIDs adds the "orders" edge to the Order entity by IDs.
func (_u *TableUpdate) AddOrderIDs(ids ...uuid.UUID) *TableUpdate {
	_u.mutation.AddOrderIDs(ids...)
	return _u
}

// AddOrders adds the "orders" edges to the Order entity.
func (_u *TableUpdate) AddOrders(v ...*Order) *TableUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderIDs(ids...)
}

// AddWaiterAlertIDs adds the "waiter_alerts" edge to the WaiterAlert entity by IDs.
func (_u *TableUpdate) AddWaiterAlertIDs(ids ...int) *TableUpdate {
	_u.mutation.AddWaiterAlertIDs(ids...)
	return _u
}

// AddWaiterAlerts adds the "waiter_alerts" edges to the WaiterAlert entity.
func (_u *TableUpdate) AddWaiterAlerts(v ...*WaiterAlert) *TableUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWaiterAlertIDs(ids...)
}

// Mutation returns the TableMutation object of the builder.
func (_u *TableUpdate) Mutation() *TableMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *TableUpdate) ClearBusiness() *TableUpdate {
	_u.mutation.ClearBusiness()
	return _u
}

// ClearOrders clears all "orders" edges to the Order entity.
func (_u *TableUpdate) ClearOrders() *TableUpdate {
	_u.mutation.ClearOrders()
	return _u
}

// RemoveOrderIDs removes the "orders" edge to Order entities by IDs.
func (_u *TableUpdate) RemoveOrderIDs(ids ...uuid.UUID) *TableUpdate {
	_u.mutation.RemoveOrderIDs(ids...)
	return _u
}

// RemoveOrders removes "orders" edges to Order entities.
func (_u *TableUpdate) RemoveOrders(v ...*Order) *TableUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderIDs(ids...)
}

// ClearWaiterAlerts clears all "waiter_alerts" edges to the WaiterAlert entity.
func (_u *TableUpdate) ClearWaiterAlerts() *TableUpdate {
	_u.mutation.ClearWaiterAlerts()
	return _u
}

// RemoveWaiterAlertIDs removes the "waiter_alerts" edge to WaiterAlert entities by IDs.
func (_u *TableUpdate) RemoveWaiterAlertIDs(ids ...int) *TableUpdate {
	_u.mutation.RemoveWaiterAlertIDs(ids...)
	return _u
}

// RemoveWaiterAlerts removes "waiter_alerts" edges to WaiterAlert entities.
func (_u *TableUpdate) RemoveWaiterAlerts(v ...*WaiterAlert) *TableUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWaiterAlertIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TableUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TableUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TableUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TableUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TableUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := table.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TableUpdate) check() error {
	if v, ok := _u.mutation.TableNumber(); ok {
		if err := table.TableNumberValidator(v); err != nil {
			return &ValidationError{Name: "table_number", err: fmt.Errorf(`ent: validator failed for field "Table.table_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Capacity(); ok {
		if err := table.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`ent: validator failed for field "Table.capacity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := table.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Table.status": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Table.business"`)
	}
	return nil
}

func (_u *TableUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(table.Table, table.Columns, sqlgraph.NewFieldSpec(table.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TableNumber(); ok {
		_spec.SetField(table.FieldTableNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(table.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(table.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(table.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(table.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BusinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   table.BusinessTable,
			Columns: []string{table.BusinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(business.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   table.BusinessTable,
			Columns: []string{table.BusinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(business.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrdersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   table.OrdersTable,
			Columns: []string{table.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrdersIDs(); len(nodes) > 0 && !_u.mutation.OrdersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   table.OrdersTable,
			Columns: []string{table.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrdersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   table.OrdersTable,
			Columns: []string{table.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WaiterAlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   table.WaiterAlertsTable,
			Columns: []string{table.WaiterAlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(waiteralert.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWaiterAlertsIDs(); len(nodes) > 0 && !_u.mutation.WaiterAlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   table.WaiterAlertsTable,
			Columns: []string{table.WaiterAlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(waiteralert.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WaiterAlertsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   table.WaiterAlertsTable,
			Columns: []string{table.WaiterAlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(waiteralert.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{table.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TableUpdateOne is the builder for updating a single Table entity.
type TableUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TableMutation
}

// SetBusinessID sets the "business_id" field.
func (_u *TableUpdateOne) SetBusinessID(v int) *TableUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *TableUpdateOne) SetNillableBusinessID(v *int) *TableUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetTableNumber sets the "table_number" field.
func (_u *TableUpdateOne) SetTableNumber(v string) *TableUpdateOne {
	_u.mutation.SetTableNumber(v)
	return _u
}

// SetNillableTableNumber sets the "table_number" field if the given value is not nil.
func (_u *TableUpdateOne) SetNillableTableNumber(v *string) *TableUpdateOne {
	if v != nil {
		_u.SetTableNumber(*v)
	}
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *TableUpdateOne) SetCapacity(v int) *TableUpdateOne {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *TableUpdateOne) SetNillableCapacity(v *int) *TableUpdateOne {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *TableUpdateOne) AddCapacity(v int) *TableUpdateOne {
	_u.mutation.AddCapacity(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TableUpdateOne) SetStatus(v table.Status) *TableUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TableUpdateOne) SetNillableStatus(v *table.Status) *TableUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TableUpdateOne) SetUpdatedAt(v time.Time) *TableUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *TableUpdateOne) SetBusiness(v *Business) *TableUpdateOne {
	return _u.SetBusinessID(v.ID)
}

// AddOrderIDs adds the "orders" edge to the Order entity by IDs.
func (_u *TableUpdateOne) AddOrderIDs(ids ...uuid.UUID) *TableUpdateOne {
	_u.mutation.AddOrderIDs(ids...)
	return _u
}

// AddOrders adds the "orders" edges to the Order entity.
func (_u *TableUpdateOne) AddOrders(v ...*Order) *TableUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderIDs(ids...)
}

// AddWaiterAlertIDs adds the "waiter_alerts" edge to the WaiterAlert entity by IDs.
func (_u *TableUpdateOne) AddWaiterAlertIDs(ids ...int) *TableUpdateOne {
	_u.mutation.AddWaiterAlertIDs(ids...)
	return _u
}

// AddWaiterAlerts adds the "waiter_alerts" edges to the WaiterAlert entity.
func (_u *TableUpdateOne) AddWaiterAlerts(v ...*WaiterAlert) *TableUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWaiterAlertIDs(ids...)
}

// Mutation returns the TableMutation object of the builder.
func (_u *TableUpdateOne) Mutation() *TableMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *TableUpdateOne) ClearBusiness() *TableUpdateOne {
	_u.mutation.ClearBusiness()
	return _u
}

// ClearOrders clears all "orders" edges to the Order entity.
func (_u *TableUpdateOne) ClearOrders() *TableUpdateOne {
	_u.mutation.ClearOrders()
	return _u
}

// RemoveOrderIDs removes the "orders" edge to Order entities by IDs.
func (_u *TableUpdateOne) RemoveOrderIDs(ids ...uuid.UUID) *TableUpdateOne {
	_u.mutation.RemoveOrderIDs(ids...)
	return _u
}

// RemoveOrders removes "orders" edges to Order entities.
func (_u *TableUpdateOne) RemoveOrders(v ...*Order) *TableUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderIDs(ids...)
}

// ClearWaiterAlerts clears all "waiter_alerts" edges to the WaiterAlert entity.
func (_u *TableUpdateOne) ClearWaiterAlerts() *TableUpdateOne {
	_u.mutation.ClearWaiterAlerts()
	return _u
}

// RemoveWaiterAlertIDs removes the "waiter_alerts" edge to WaiterAlert entities by IDs.
func (_u *TableUpdateOne) RemoveWaiterAlertIDs(ids ...int) *TableUpdateOne {
	_u.mutation.RemoveWaiterAlertIDs(ids...)
	return _u
}

// RemoveWaiterAlerts removes "waiter_alerts" edges to WaiterAlert entities.
func (_u *TableUpdateOne) RemoveWaiterAlerts(v ...*WaiterAlert) *TableUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWaiterAlertIDs(ids...)
}

// Where appends a list predicates to the TableUpdate builder.
func (_u *TableUpdateOne) Where(ps ...predicate.Table) *TableUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TableUpdateOne) Select(field string, fields ...string) *TableUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Table entity.
func (_u *TableUpdateOne) Save(ctx context.Context) (*Table, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TableUpdateOne) SaveX(ctx context.Context) *Table {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TableUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TableUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TableUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := table.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TableUpdateOne) check() error {
	if v, ok := _u.mutation.TableNumber(); ok {
		if err := table.TableNumberValidator(v); err != nil {
			return &ValidationError{Name: "table_number", err: fmt.Errorf(`ent: validator failed for field "Table.table_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Capacity(); ok {
		if err := table.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`ent: validator failed for field "Table.capacity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := table.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Table.status": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Table.business"`)
	}
	return nil
}

func (_u *TableUpdateOne) sqlSave(ctx context.Context) (_node *Table, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(table.Table, table.Columns, sqlgraph.NewFieldSpec(table.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Table.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, table.FieldID)
		for _, f := range fields {
			if !table.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != table.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TableNumber(); ok {
		_spec.SetField(table.FieldTableNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(table.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(table.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(table.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(table.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BusinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   table.BusinessTable,
			Columns: []string{table.BusinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(business.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   table.BusinessTable,
			Columns: []string{table.BusinessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(business.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrdersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   table.OrdersTable,
			Columns: []string{table.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrdersIDs(); len(nodes) > 0 && !_u.mutation.OrdersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   table.OrdersTable,
			Columns: []string{table.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrdersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   table.OrdersTable,
			Columns: []string{table.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WaiterAlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   table.WaiterAlertsTable,
			Columns: []string{table.WaiterAlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(waiteralert.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWaiterAlertsIDs(); len(nodes) > 0 && !_u.mutation.WaiterAlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   table.WaiterAlertsTable,
			Columns: []string{table.WaiterAlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(waiteralert.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WaiterAlertsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   table.WaiterAlertsTable,
			Columns: []string{table.WaiterAlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(waiteralert.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Table{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{table.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
