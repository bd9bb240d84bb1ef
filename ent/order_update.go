// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/order"
	"github.com/menuqr/menuqr/ent/orderitem"
	"github.com/menuqr/menuqr/ent/predicate"
	"github.com/menuqr/menuqr/ent/table"
)

// OrderUpdate is the builder for updating Order entities.
type OrderUpdate struct {
	config
	hooks    []Hook
	mutation *OrderMutation
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdate) Where(ps ...predicate.Order) *OrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *OrderUpdate) SetBusinessID(v int) *OrderUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableBusinessID(v *int) *OrderUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *OrderUpdate) SetLocation(v string) *OrderUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableLocation(v *string) *OrderUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetTableID sets the "table_id" field.
func (_u *OrderUpdate) SetTableID(v int) *OrderUpdate {
	_u.mutation.SetTableID(v)
	return _u
}

// SetNillableTableID sets the "table_id" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableTableID(v *int) *OrderUpdate {
	if v != nil {
		_u.SetTableID(*v)
	}
	return _u
}

// ClearTableID clears the value of the "table_id" field.
func (_u *OrderUpdate) ClearTableID() *OrderUpdate {
	_u.mutation.ClearTableID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderUpdate) SetStatus(v order.Status) *OrderUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableStatus(v *order.Status) *OrderUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *OrderUpdate) SetPaymentMethod(v order.PaymentMethod) *OrderUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *OrderUpdate) SetNillablePaymentMethod(v *order.PaymentMethod) *OrderUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *OrderUpdate) SetPaymentStatus(v order.PaymentStatus) *OrderUpdate {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *OrderUpdate) SetNillablePaymentStatus(v *order.PaymentStatus) *OrderUpdate {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *OrderUpdate) SetSubtotal(v float64) *OrderUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableSubtotal(v *float64) *OrderUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *OrderUpdate) AddSubtotal(v float64) *OrderUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *OrderUpdate) SetTaxAmount(v float64) *OrderUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableTaxAmount(v *float64) *OrderUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *OrderUpdate) AddTaxAmount(v float64) *OrderUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// SetTipAmount sets the "tip_amount" field.
func (_u *OrderUpdate) SetTipAmount(v float64) *OrderUpdate {
	_u.mutation.ResetTipAmount()
	_u.mutation.SetTipAmount(v)
	return _u
}

// SetNillableTipAmount sets the "tip_amount" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableTipAmount(v *float64) *OrderUpdate {
	if v != nil {
		_u.SetTipAmount(*v)
	}
	return _u
}

// AddTipAmount adds value to the "tip_amount" field.
func (_u *OrderUpdate) AddTipAmount(v float64) *OrderUpdate {
	_u.mutation.AddTipAmount(v)
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *OrderUpdate) SetTotalPrice(v float64) *OrderUpdate {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableTotalPrice(v *float64) *OrderUpdate {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *OrderUpdate) AddTotalPrice(v float64) *OrderUpdate {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// SetSpecialRequests sets the "special_requests" field.
func (_u *OrderUpdate) SetSpecialRequests(v string) *OrderUpdate {
	_u.mutation.SetSpecialRequests(v)
	return _u
}

// SetNillableSpecialRequests sets the "special_requests" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableSpecialRequests(v *string) *OrderUpdate {
	if v != nil {
		_u.SetSpecialRequests(*v)
	}
	return _u
}

// ClearSpecialRequests clears the value of the "special_requests" field.
func (_u *OrderUpdate) ClearSpecialRequests() *OrderUpdate {
	_u.mutation.ClearSpecialRequests()
	return _u
}

// SetItemsSnapshot sets the "items_snapshot" field.
func (_u *OrderUpdate) SetItemsSnapshot(v []map[string]interface{}) *OrderUpdate {
	_u.mutation.SetItemsSnapshot(v)
	return _u
}

// AppendItemsSnapshot appends value to the "items_snapshot" field.
func (_u *OrderUpdate) AppendItemsSnapshot(v []map[string]interface{}) *OrderUpdate {
	_u.mutation.AppendItemsSnapshot(v)
	return _u
}

// ClearItemsSnapshot clears the value of the "items_snapshot" field.
func (_u *OrderUpdate) ClearItemsSnapshot() *OrderUpdate {
	_u.mutation.ClearItemsSnapshot()
	return _u
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (_u *OrderUpdate) SetStatusChangedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetStatusChangedAt(v)
	return _u
}

// SetNillableStatusChangedAt sets the "status_changed_at" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableStatusChangedAt(v *time.Time) *OrderUpdate {
	if v != nil {
		_u.SetStatusChangedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderUpdate) SetUpdatedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *OrderUpdate) SetBusiness(v *Business) *OrderUpdate {
	return _u.SetBusinessID(v.ID)
}

// SetTable sets the "table" edge to the Table entity.
func (_u *OrderUpdate) SetTable(v *Table) *OrderUpdate {
	return _u.SetTableID(v.ID)
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_u *OrderUpdate) AddItemIDs(ids ...int) *OrderUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_u *OrderUpdate) AddItems(v ...*OrderItem) *OrderUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdate) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *OrderUpdate) ClearBusiness() *OrderUpdate {
	_u.mutation.ClearBusiness()
	return _u
}

// ClearTable clears the "table" edge to the Table entity.
func (_u *OrderUpdate) ClearTable() *OrderUpdate {
	_u.mutation.ClearTable()
	return _u
}

// ClearItems clears all "items" edges to the OrderItem entity.
func (_u *OrderUpdate) ClearItems() *OrderUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to OrderItem entities by IDs.
func (_u *OrderUpdate) RemoveItemIDs(ids ...int) *OrderUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to OrderItem entities.
func (_u *OrderUpdate) RemoveItems(v ...*OrderItem) *OrderUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdate) check() error {
	if v, ok := _u.mutation.Location(); ok {
		if err := order.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Order.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Order.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMethod(); ok {
		if err := order.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "Order.payment_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := order.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Order.payment_status": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Order.business"`)
	}
	return nil
}

func (_u *OrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(order.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(order.FieldPaymentMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(order.FieldPaymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(order.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(order.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(order.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(order.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TipAmount(); ok {
		_spec.SetField(order.FieldTipAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTipAmount(); ok {
		_spec.AddField(order.FieldTipAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(order.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(order.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SpecialRequests(); ok {
		_spec.SetField(order.FieldSpecialRequests, field.TypeString, value)
	}
	if _u.mutation.SpecialRequestsCleared() {
		_spec.ClearField(order.FieldSpecialRequests, field.TypeString)
	}
	if value, ok := _u.mutation.ItemsSnapshot(); ok {
		_spec.SetField(order.FieldItemsSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItemsSnapshot(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, order.FieldItemsSnapshot, value)
		})
	}
	if _u.mutation.ItemsSnapshotCleared() {
		_spec.ClearField(order.FieldItemsSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.StatusChangedAt(); ok {
		_spec.SetField(order.FieldStatusChangedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BusinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   order.BusinessTable,
			Columns: []string{order.BusinessColumn},
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
			Table:   order.BusinessTable,
			Columns: []string{order.BusinessColumn},
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
	if _u.mutation.TableCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   order.TableTable,
			Columns: []string{order.TableColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(table.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TableIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   order.TableTable,
			Columns: []string{order.TableColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(table.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderUpdateOne is the builder for updating a single Order entity.
type OrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderMutation
}

// SetBusinessID sets the "business_id" field.
func (_u *OrderUpdateOne) SetBusinessID(v int) *OrderUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableBusinessID(v *int) *OrderUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *OrderUpdateOne) SetLocation(v string) *OrderUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableLocation(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetTableID sets the "table_id" field.
func (_u *OrderUpdateOne) SetTableID(v int) *OrderUpdateOne {
	_u.mutation.SetTableID(v)
	return _u
}

// SetNillableTableID sets the "table_id" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableTableID(v *int) *OrderUpdateOne {
	if v != nil {
		_u.SetTableID(*v)
	}
	return _u
}

// ClearTableID clears the value of the "table_id" field.
func (_u *OrderUpdateOne) ClearTableID() *OrderUpdateOne {
	_u.mutation.ClearTableID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderUpdateOne) SetStatus(v order.Status) *OrderUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableStatus(v *order.Status) *OrderUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *OrderUpdateOne) SetPaymentMethod(v order.PaymentMethod) *OrderUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillablePaymentMethod(v *order.PaymentMethod) *OrderUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *OrderUpdateOne) SetPaymentStatus(v order.PaymentStatus) *OrderUpdateOne {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillablePaymentStatus(v *order.PaymentStatus) *OrderUpdateOne {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *OrderUpdateOne) SetSubtotal(v float64) *OrderUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableSubtotal(v *float64) *OrderUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *OrderUpdateOne) AddSubtotal(v float64) *OrderUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *OrderUpdateOne) SetTaxAmount(v float64) *OrderUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableTaxAmount(v *float64) *OrderUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *OrderUpdateOne) AddTaxAmount(v float64) *OrderUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// SetTipAmount sets the "tip_amount" field.
func (_u *OrderUpdateOne) SetTipAmount(v float64) *OrderUpdateOne {
	_u.mutation.ResetTipAmount()
	_u.mutation.SetTipAmount(v)
	return _u
}

// SetNillableTipAmount sets the "tip_amount" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableTipAmount(v *float64) *OrderUpdateOne {
	if v != nil {
		_u.SetTipAmount(*v)
	}
	return _u
}

// AddTipAmount adds value to the "tip_amount" field.
func (_u *OrderUpdateOne) AddTipAmount(v float64) *OrderUpdateOne {
	_u.mutation.AddTipAmount(v)
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *OrderUpdateOne) SetTotalPrice(v float64) *OrderUpdateOne {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableTotalPrice(v *float64) *OrderUpdateOne {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *OrderUpdateOne) AddTotalPrice(v float64) *OrderUpdateOne {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// SetSpecialRequests sets the "special_requests" field.
func (_u *OrderUpdateOne) SetSpecialRequests(v string) *OrderUpdateOne {
	_u.mutation.SetSpecialRequests(v)
	return _u
}

// SetNillableSpecialRequests sets the "special_requests" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableSpecialRequests(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetSpecialRequests(*v)
	}
	return _u
}

// ClearSpecialRequests clears the value of the "special_requests" field.
func (_u *OrderUpdateOne) ClearSpecialRequests() *OrderUpdateOne {
	_u.mutation.ClearSpecialRequests()
	return _u
}

// SetItemsSnapshot sets the "items_snapshot" field.
func (_u *OrderUpdateOne) SetItemsSnapshot(v []map[string]interface{}) *OrderUpdateOne {
	_u.mutation.SetItemsSnapshot(v)
	return _u
}

// AppendItemsSnapshot appends value to the "items_snapshot" field.
func (_u *OrderUpdateOne) AppendItemsSnapshot(v []map[string]interface{}) *OrderUpdateOne {
	_u.mutation.AppendItemsSnapshot(v)
	return _u
}

// ClearItemsSnapshot clears the value of the "items_snapshot" field.
func (_u *OrderUpdateOne) ClearItemsSnapshot() *OrderUpdateOne {
	_u.mutation.ClearItemsSnapshot()
	return _u
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (_u *OrderUpdateOne) SetStatusChangedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetStatusChangedAt(v)
	return _u
}

// SetNillableStatusChangedAt sets the "status_changed_at" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableStatusChangedAt(v *time.Time) *OrderUpdateOne {
	if v != nil {
		_u.SetStatusChangedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderUpdateOne) SetUpdatedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *OrderUpdateOne) SetBusiness(v *Business) *OrderUpdateOne {
	return _u.SetBusinessID(v.ID)
}

// SetTable sets the "table" edge to the Table entity.
func (_u *OrderUpdateOne) SetTable(v *Table) *OrderUpdateOne {
	return _u.SetTableID(v.ID)
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_u *OrderUpdateOne) AddItemIDs(ids ...int) *OrderUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_u *OrderUpdateOne) AddItems(v ...*OrderItem) *OrderUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdateOne) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *OrderUpdateOne) ClearBusiness() *OrderUpdateOne {
	_u.mutation.ClearBusiness()
	return _u
}

// ClearTable clears the "table" edge to the Table entity.
func (_u *OrderUpdateOne) ClearTable() *OrderUpdateOne {
	_u.mutation.ClearTable()
	return _u
}

// ClearItems clears all "items" edges to the OrderItem entity.
func (_u *OrderUpdateOne) ClearItems() *OrderUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to OrderItem entities by IDs.
func (_u *OrderUpdateOne) RemoveItemIDs(ids ...int) *OrderUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to OrderItem entities.
func (_u *OrderUpdateOne) RemoveItems(v ...*OrderItem) *OrderUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdateOne) Where(ps ...predicate.Order) *OrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderUpdateOne) Select(field string, fields ...string) *OrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Order entity.
func (_u *OrderUpdateOne) Save(ctx context.Context) (*Order, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdateOne) SaveX(ctx context.Context) *Order {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdateOne) check() error {
	if v, ok := _u.mutation.Location(); ok {
		if err := order.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Order.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Order.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMethod(); ok {
		if err := order.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "Order.payment_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := order.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Order.payment_status": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Order.business"`)
	}
	return nil
}

func (_u *OrderUpdateOne) sqlSave(ctx context.Context) (_node *Order, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Order.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, order.FieldID)
		for _, f := range fields {
			if !order.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != order.FieldID {
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
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(order.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(order.FieldPaymentMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(order.FieldPaymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(order.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(order.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(order.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(order.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TipAmount(); ok {
		_spec.SetField(order.FieldTipAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTipAmount(); ok {
		_spec.AddField(order.FieldTipAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(order.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(order.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SpecialRequests(); ok {
		_spec.SetField(order.FieldSpecialRequests, field.TypeString, value)
	}
	if _u.mutation.SpecialRequestsCleared() {
		_spec.ClearField(order.FieldSpecialRequests, field.TypeString)
	}
	if value, ok := _u.mutation.ItemsSnapshot(); ok {
		_spec.SetField(order.FieldItemsSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItemsSnapshot(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, order.FieldItemsSnapshot, value)
		})
	}
	if _u.mutation.ItemsSnapshotCleared() {
		_spec.ClearField(order.FieldItemsSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.StatusChangedAt(); ok {
		_spec.SetField(order.FieldStatusChangedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BusinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   order.BusinessTable,
			Columns: []string{order.BusinessColumn},
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
			Table:   order.BusinessTable,
			Columns: []string{order.BusinessColumn},
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
	if _u.mutation.TableCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   order.TableTable,
			Columns: []string{order.TableColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(table.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TableIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   order.TableTable,
			Columns: []string{order.TableColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(table.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Order{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
