// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/order"
	"github.com/menuqr/menuqr/ent/orderitem"
	"github.com/menuqr/menuqr/ent/table"
)

// OrderCreate is the builder for creating a Order entity.
type OrderCreate struct {
	config
	mutation *OrderMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBusinessID sets the "business_id" field.
func (_c *OrderCreate) SetBusinessID(v int) *OrderCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *OrderCreate) SetLocation(v string) *OrderCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetTableID sets the "table_id" field.
func (_c *OrderCreate) SetTableID(v int) *OrderCreate {
	_c.mutation.SetTableID(v)
	return _c
}

// SetNillableTableID sets the "table_id" field if the given value is not nil.
func (_c *OrderCreate) SetNillableTableID(v *int) *OrderCreate {
	if v != nil {
		_c.SetTableID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *OrderCreate) SetStatus(v order.Status) *OrderCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OrderCreate) SetNillableStatus(v *order.Status) *OrderCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPaymentMethod sets the "payment_method" field.
func (_c *OrderCreate) SetPaymentMethod(v order.PaymentMethod) *OrderCreate {
	_c.mutation.SetPaymentMethod(v)
	return _c
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_c *OrderCreate) SetNillablePaymentMethod(v *order.PaymentMethod) *OrderCreate {
	if v != nil {
		_c.SetPaymentMethod(*v)
	}
	return _c
}

// SetPaymentStatus sets the "payment_status" field.
func (_c *OrderCreate) SetPaymentStatus(v order.PaymentStatus) *OrderCreate {
	_c.mutation.SetPaymentStatus(v)
	return _c
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_c *OrderCreate) SetNillablePaymentStatus(v *order.PaymentStatus) *OrderCreate {
	if v != nil {
		_c.SetPaymentStatus(*v)
	}
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *OrderCreate) SetSubtotal(v float64) *OrderCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_c *OrderCreate) SetNillableSubtotal(v *float64) *OrderCreate {
	if v != nil {
		_c.SetSubtotal(*v)
	}
	return _c
}

// SetTaxAmount sets the "tax_amount" field.
func (_c *OrderCreate) SetTaxAmount(v float64) *OrderCreate {
	_c.mutation.SetTaxAmount(v)
	return _c
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_c *OrderCreate) SetNillableTaxAmount(v *float64) *OrderCreate {
	if v != nil {
		_c.SetTaxAmount(*v)
	}
	return _c
}

// SetTipAmount sets the "tip_amount" field.
func (_c *OrderCreate) SetTipAmount(v float64) *OrderCreate {
	_c.mutation.SetTipAmount(v)
	return _c
}

// SetNillableTipAmount sets the "tip_amount" field if the given value is not nil.
func (_c *OrderCreate) SetNillableTipAmount(v *float64) *OrderCreate {
	if v != nil {
		_c.SetTipAmount(*v)
	}
	return _c
}

// SetTotalPrice sets the "total_price" field.
func (_c *OrderCreate) SetTotalPrice(v float64) *OrderCreate {
	_c.mutation.SetTotalPrice(v)
	return _c
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_c *OrderCreate) SetNillableTotalPrice(v *float64) *OrderCreate {
	if v != nil {
		_c.SetTotalPrice(*v)
	}
	return _c
}

// SetSpecialRequests sets the "special_requests" field.
func (_c *OrderCreate) SetSpecialRequests(v string) *OrderCreate {
	_c.mutation.SetSpecialRequests(v)
	return _c
}

// SetNillableSpecialRequests sets the "special_requests" field if the given value is not nil.
func (_c *OrderCreate) SetNillableSpecialRequests(v *string) *OrderCreate {
	if v != nil {
		_c.SetSpecialRequests(*v)
	}
	return _c
}

// SetItemsSnapshot sets the "items_snapshot" field.
func (_c *OrderCreate) SetItemsSnapshot(v []map[string]interface{}) *OrderCreate {
	_c.mutation.SetItemsSnapshot(v)
	return _c
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (_c *OrderCreate) SetStatusChangedAt(v time.Time) *OrderCreate {
	_c.mutation.SetStatusChangedAt(v)
	return _c
}

// SetNillableStatusChangedAt sets the "status_changed_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableStatusChangedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetStatusChangedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrderCreate) SetCreatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCreatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OrderCreate) SetUpdatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableUpdatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrderCreate) SetID(v uuid.UUID) *OrderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OrderCreate) SetNillableID(v *uuid.UUID) *OrderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBusiness sets the "business" edge to the Business entity.
func (_c *OrderCreate) SetBusiness(v *Business) *OrderCreate {
	return _c.SetBusinessID(v.ID)
}

// SetTable sets the "table" edge to the Table entity.
func (_c *OrderCreate) SetTable(v *Table) *OrderCreate {
	return _c.SetTableID(v.ID)
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_c *OrderCreate) AddItemIDs(ids ...int) *OrderCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_c *OrderCreate) AddItems(v ...*OrderItem) *OrderCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_c *OrderCreate) Mutation() *OrderMutation {
	return _c.mutation
}

// Save creates the Order in the database.
func (_c *OrderCreate) Save(ctx context.Context) (*Order, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderCreate) SaveX(ctx context.Context) *Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := order.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PaymentMethod(); !ok {
		v := order.DefaultPaymentMethod
		_c.mutation.SetPaymentMethod(v)
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		v := order.DefaultPaymentStatus
		_c.mutation.SetPaymentStatus(v)
	}
	if _, ok := _c.mutation.Subtotal(); !ok {
		v := order.DefaultSubtotal
		_c.mutation.SetSubtotal(v)
	}
	if _, ok := _c.mutation.TaxAmount(); !ok {
		v := order.DefaultTaxAmount
		_c.mutation.SetTaxAmount(v)
	}
	if _, ok := _c.mutation.TipAmount(); !ok {
		v := order.DefaultTipAmount
		_c.mutation.SetTipAmount(v)
	}
	if _, ok := _c.mutation.TotalPrice(); !ok {
		v := order.DefaultTotalPrice
		_c.mutation.SetTotalPrice(v)
	}
	if _, ok := _c.mutation.StatusChangedAt(); !ok {
		v := order.DefaultStatusChangedAt()
		_c.mutation.SetStatusChangedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := order.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := order.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := order.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "Order.business_id"`)}
	}
	if _, ok := _c.mutation.Location(); !ok {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required field "Order.location"`)}
	}
	if v, ok := _c.mutation.Location(); ok {
		if err := order.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Order.location": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Order.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Order.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaymentMethod(); !ok {
		return &ValidationError{Name: "payment_method", err: errors.New(`ent: missing required field "Order.payment_method"`)}
	}
	if v, ok := _c.mutation.PaymentMethod(); ok {
		if err := order.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "Order.payment_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		return &ValidationError{Name: "payment_status", err: errors.New(`ent: missing required field "Order.payment_status"`)}
	}
	if v, ok := _c.mutation.PaymentStatus(); ok {
		if err := order.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Order.payment_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subtotal(); !ok {
		return &ValidationError{Name: "subtotal", err: errors.New(`ent: missing required field "Order.subtotal"`)}
	}
	if _, ok := _c.mutation.TaxAmount(); !ok {
		return &ValidationError{Name: "tax_amount", err: errors.New(`ent: missing required field "Order.tax_amount"`)}
	}
	if _, ok := _c.mutation.TipAmount(); !ok {
		return &ValidationError{Name: "tip_amount", err: errors.New(`ent: missing required field "Order.tip_amount"`)}
	}
	if _, ok := _c.mutation.TotalPrice(); !ok {
		return &ValidationError{Name: "total_price", err: errors.New(`ent: missing required field "Order.total_price"`)}
	}
	if _, ok := _c.mutation.StatusChangedAt(); !ok {
		return &ValidationError{Name: "status_changed_at", err: errors.New(`ent: missing required field "Order.status_changed_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Order.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Order.updated_at"`)}
	}
	if len(_c.mutation.BusinessIDs()) == 0 {
		return &ValidationError{Name: "business", err: errors.New(`ent: missing required edge "Order.business"`)}
	}
	return nil
}

func (_c *OrderCreate) sqlSave(ctx context.Context) (*Order, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrderCreate) createSpec() (*Order, *sqlgraph.CreateSpec) {
	var (
		_node = &Order{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(order.Table, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(order.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PaymentMethod(); ok {
		_spec.SetField(order.FieldPaymentMethod, field.TypeEnum, value)
		_node.PaymentMethod = value
	}
	if value, ok := _c.mutation.PaymentStatus(); ok {
		_spec.SetField(order.FieldPaymentStatus, field.TypeEnum, value)
		_node.PaymentStatus = value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(order.FieldSubtotal, field.TypeFloat64, value)
		_node.Subtotal = value
	}
	if value, ok := _c.mutation.TaxAmount(); ok {
		_spec.SetField(order.FieldTaxAmount, field.TypeFloat64, value)
		_node.TaxAmount = value
	}
	if value, ok := _c.mutation.TipAmount(); ok {
		_spec.SetField(order.FieldTipAmount, field.TypeFloat64, value)
		_node.TipAmount = value
	}
	if value, ok := _c.mutation.TotalPrice(); ok {
		_spec.SetField(order.FieldTotalPrice, field.TypeFloat64, value)
		_node.TotalPrice = value
	}
	if value, ok := _c.mutation.SpecialRequests(); ok {
		_spec.SetField(order.FieldSpecialRequests, field.TypeString, value)
		_node.SpecialRequests = value
	}
	if value, ok := _c.mutation.ItemsSnapshot(); ok {
		_spec.SetField(order.FieldItemsSnapshot, field.TypeJSON, value)
		_node.ItemsSnapshot = value
	}
	if value, ok := _c.mutation.StatusChangedAt(); ok {
		_spec.SetField(order.FieldStatusChangedAt, field.TypeTime, value)
		_node.StatusChangedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BusinessIDs(); len(nodes) > 0 {
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
		_node.BusinessID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TableIDs(); len(nodes) > 0 {
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
		_node.TableID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Order.Create().
//		SetBusinessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderCreate) OnConflict(opts ...sql.ConflictOption) *OrderUpsertOne {
	_c.conflict = opts
	return &OrderUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderCreate) OnConflictColumns(columns ...string) *OrderUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderUpsertOne{
		create: _c,
	}
}

type (
	// OrderUpsertOne is the builder for "upsert"-ing
	//  one Order node.
	OrderUpsertOne struct {
		create *OrderCreate
	}

	// OrderUpsert is the "OnConflict" setter.
	OrderUpsert struct {
		*sql.UpdateSet
	}
)

// SetBusinessID sets the "business_id" field.
func (u *OrderUpsert) SetBusinessID(v int) *OrderUpsert {
	u.Set(order.FieldBusinessID, v)
	return u
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *OrderUpsert) UpdateBusinessID() *OrderUpsert {
	u.SetExcluded(order.FieldBusinessID)
	return u
}

// SetLocation sets the "location" field.
func (u *OrderUpsert) SetLocation(v string) *OrderUpsert {
	u.Set(order.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *OrderUpsert) UpdateLocation() *OrderUpsert {
	u.SetExcluded(order.FieldLocation)
	return u
}

// SetTableID sets the "table_id" field.
func (u *OrderUpsert) SetTableID(v int) *OrderUpsert {
	u.Set(order.FieldTableID, v)
	return u
}

// UpdateTableID sets the "table_id" field to the value that was provided on create.
func (u *OrderUpsert) UpdateTableID() *OrderUpsert {
	u.SetExcluded(order.FieldTableID)
	return u
}

// ClearTableID clears the value of the "table_id" field.
func (u *OrderUpsert) ClearTableID() *OrderUpsert {
	u.SetNull(order.FieldTableID)
	return u
}

// SetStatus sets the "status" field.
func (u *OrderUpsert) SetStatus(v order.Status) *OrderUpsert {
	u.Set(order.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OrderUpsert) UpdateStatus() *OrderUpsert {
	u.SetExcluded(order.FieldStatus)
	return u
}

// SetPaymentMethod sets the "payment_method" field.
func (u *OrderUpsert) SetPaymentMethod(v order.PaymentMethod) *OrderUpsert {
	u.Set(order.FieldPaymentMethod, v)
	return u
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *OrderUpsert) UpdatePaymentMethod() *OrderUpsert {
	u.SetExcluded(order.FieldPaymentMethod)
	return u
}

// SetPaymentStatus sets the "payment_status" field.
func (u *OrderUpsert) SetPaymentStatus(v order.PaymentStatus) *OrderUpsert {
	u.Set(order.FieldPaymentStatus, v)
	return u
}

// UpdatePaymentStatus sets the "payment_status" field to the value that was provided on create.
func (u *OrderUpsert) UpdatePaymentStatus() *OrderUpsert {
	u.SetExcluded(order.FieldPaymentStatus)
	return u
}

// SetSubtotal sets the "subtotal" field.
func (u *OrderUpsert) SetSubtotal(v float64) *OrderUpsert {
	u.Set(order.FieldSubtotal, v)
	return u
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *OrderUpsert) UpdateSubtotal() *OrderUpsert {
	u.SetExcluded(order.FieldSubtotal)
	return u
}

// AddSubtotal adds v to the "subtotal" field.
func (u *OrderUpsert) AddSubtotal(v float64) *OrderUpsert {
	u.Add(order.FieldSubtotal, v)
	return u
}

// SetTaxAmount sets the "tax_amount" field.
func (u *OrderUpsert) SetTaxAmount(v float64) *OrderUpsert {
	u.Set(order.FieldTaxAmount, v)
	return u
}

// UpdateTaxAmount sets the "tax_amount" field to the value that was provided on create.
func (u *OrderUpsert) UpdateTaxAmount() *OrderUpsert {
	u.SetExcluded(order.FieldTaxAmount)
	return u
}

// AddTaxAmount adds v to the "tax_amount" field.
func (u *OrderUpsert) AddTaxAmount(v float64) *OrderUpsert {
	u.Add(order.FieldTaxAmount, v)
	return u
}

// SetTipAmount sets the "tip_amount" field.
func (u *OrderUpsert) SetTipAmount(v float64) *OrderUpsert {
	u.Set(order.FieldTipAmount, v)
	return u
}

// UpdateTipAmount sets the "tip_amount" field to the value that was provided on create.
func (u *OrderUpsert) UpdateTipAmount() *OrderUpsert {
	u.SetExcluded(order.FieldTipAmount)
	return u
}

// AddTipAmount adds v to the "tip_amount" field.
func (u *OrderUpsert) AddTipAmount(v float64) *OrderUpsert {
	u.Add(order.FieldTipAmount, v)
	return u
}

// SetTotalPrice sets the "total_price" field.
func (u *OrderUpsert) SetTotalPrice(v float64) *OrderUpsert {
	u.Set(order.FieldTotalPrice, v)
	return u
}

// UpdateTotalPrice sets the "total_price" field to the value that was provided on create.
func (u *OrderUpsert) UpdateTotalPrice() *OrderUpsert {
	u.SetExcluded(order.FieldTotalPrice)
	return u
}

// AddTotalPrice adds v to the "total_price" field.
func (u *OrderUpsert) AddTotalPrice(v float64) *OrderUpsert {
	u.Add(order.FieldTotalPrice, v)
	return u
}

// SetSpecialRequests sets the "special_requests" field.
func (u *OrderUpsert) SetSpecialRequests(v string) *OrderUpsert {
	u.Set(order.FieldSpecialRequests, v)
	return u
}

// UpdateSpecialRequests sets the "special_requests" field to the value that was provided on create.
func (u *OrderUpsert) UpdateSpecialRequests() *OrderUpsert {
	u.SetExcluded(order.FieldSpecialRequests)
	return u
}

// ClearSpecialRequests clears the value of the "special_requests" field.
func (u *OrderUpsert) ClearSpecialRequests() *OrderUpsert {
	u.SetNull(order.FieldSpecialRequests)
	return u
}

// SetItemsSnapshot sets the "items_snapshot" field.
func (u *OrderUpsert) SetItemsSnapshot(v []map[string]interface{}) *OrderUpsert {
	u.Set(order.FieldItemsSnapshot, v)
	return u
}

// UpdateItemsSnapshot sets the "items_snapshot" field to the value that was provided on create.
func (u *OrderUpsert) UpdateItemsSnapshot() *OrderUpsert {
	u.SetExcluded(order.FieldItemsSnapshot)
	return u
}

// ClearItemsSnapshot clears the value of the "items_snapshot" field.
func (u *OrderUpsert) ClearItemsSnapshot() *OrderUpsert {
	u.SetNull(order.FieldItemsSnapshot)
	return u
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (u *OrderUpsert) SetStatusChangedAt(v time.Time) *OrderUpsert {
	u.Set(order.FieldStatusChangedAt, v)
	return u
}

// UpdateStatusChangedAt sets the "status_changed_at" field to the value that was provided on create.
func (u *OrderUpsert) UpdateStatusChangedAt() *OrderUpsert {
	u.SetExcluded(order.FieldStatusChangedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OrderUpsert) SetUpdatedAt(v time.Time) *OrderUpsert {
	u.Set(order.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OrderUpsert) UpdateUpdatedAt() *OrderUpsert {
	u.SetExcluded(order.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(order.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OrderUpsertOne) UpdateNewValues() *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(order.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(order.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Order.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OrderUpsertOne) Ignore() *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderUpsertOne) DoNothing() *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderCreate.OnConflict
// documentation for more info.
func (u *OrderUpsertOne) Update(set func(*OrderUpsert)) *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetBusinessID sets the "business_id" field.
func (u *OrderUpsertOne) SetBusinessID(v int) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetBusinessID(v)
	})
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateBusinessID() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateBusinessID()
	})
}

// SetLocation sets the "location" field.
func (u *OrderUpsertOne) SetLocation(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateLocation() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateLocation()
	})
}

// SetTableID sets the "table_id" field.
func (u *OrderUpsertOne) SetTableID(v int) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetTableID(v)
	})
}

// UpdateTableID sets the "table_id" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateTableID() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTableID()
	})
}

// ClearTableID clears the value of the "table_id" field.
func (u *OrderUpsertOne) ClearTableID() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearTableID()
	})
}

// SetStatus sets the "status" field.
func (u *OrderUpsertOne) SetStatus(v order.Status) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateStatus() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateStatus()
	})
}

// SetPaymentMethod sets the "payment_method" field.
func (u *OrderUpsertOne) SetPaymentMethod(v order.PaymentMethod) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetPaymentMethod(v)
	})
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdatePaymentMethod() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdatePaymentMethod()
	})
}

// SetPaymentStatus sets the "payment_status" field.
func (u *OrderUpsertOne) SetPaymentStatus(v order.PaymentStatus) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetPaymentStatus(v)
	})
}

// UpdatePaymentStatus sets the "payment_status" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdatePaymentStatus() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdatePaymentStatus()
	})
}

// SetSubtotal sets the "subtotal" field.
func (u *OrderUpsertOne) SetSubtotal(v float64) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetSubtotal(v)
	})
}

// AddSubtotal adds v to the "subtotal" field.
func (u *OrderUpsertOne) AddSubtotal(v float64) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.AddSubtotal(v)
	})
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateSubtotal() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateSubtotal()
	})
}

// SetTaxAmount sets the "tax_amount" field.
func (u *OrderUpsertOne) SetTaxAmount(v float64) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetTaxAmount(v)
	})
}

// AddTaxAmount adds v to the "tax_amount" field.
func (u *OrderUpsertOne) AddTaxAmount(v float64) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.AddTaxAmount(v)
	})
}

// UpdateTaxAmount sets the "tax_amount" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateTaxAmount() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTaxAmount()
	})
}

// SetTipAmount sets the "tip_amount" field.
func (u *OrderUpsertOne) SetTipAmount(v float64) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetTipAmount(v)
	})
}

// AddTipAmount adds v to the "tip_amount" field.
func (u *OrderUpsertOne) AddTipAmount(v float64) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.AddTipAmount(v)
	})
}

// UpdateTipAmount sets the "tip_amount" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateTipAmount() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTipAmount()
	})
}

// SetTotalPrice sets the "total_price" field.
func (u *OrderUpsertOne) SetTotalPrice(v float64) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetTotalPrice(v)
	})
}

// AddTotalPrice adds v to the "total_price" field.
func (u *OrderUpsertOne) AddTotalPrice(v float64) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.AddTotalPrice(v)
	})
}

// UpdateTotalPrice sets the "total_price" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateTotalPrice() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTotalPrice()
	})
}

// SetSpecialRequests sets the "special_requests" field.
func (u *OrderUpsertOne) SetSpecialRequests(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetSpecialRequests(v)
	})
}

// UpdateSpecialRequests sets the "special_requests" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateSpecialRequests() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateSpecialRequests()
	})
}

// ClearSpecialRequests clears the value of the "special_requests" field.
func (u *OrderUpsertOne) ClearSpecialRequests() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearSpecialRequests()
	})
}

// SetItemsSnapshot sets the "items_snapshot" field.
func (u *OrderUpsertOne) SetItemsSnapshot(v []map[string]interface{}) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetItemsSnapshot(v)
	})
}

// UpdateItemsSnapshot sets the "items_snapshot" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateItemsSnapshot() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateItemsSnapshot()
	})
}

// ClearItemsSnapshot clears the value of the "items_snapshot" field.
func (u *OrderUpsertOne) ClearItemsSnapshot() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearItemsSnapshot()
	})
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (u *OrderUpsertOne) SetStatusChangedAt(v time.Time) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetStatusChangedAt(v)
	})
}

// UpdateStatusChangedAt sets the "status_changed_at" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateStatusChangedAt() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateStatusChangedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OrderUpsertOne) SetUpdatedAt(v time.Time) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateUpdatedAt() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *OrderUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrderCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OrderUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OrderUpsertOne.ID is not supported by MySQL driver. Use OrderUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OrderUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OrderCreateBulk is the builder for creating many Order entities in bulk.
type OrderCreateBulk struct {
	config
	err      error
	builders []*OrderCreate
	conflict []sql.ConflictOption
}

// Save creates the Order entities in the database.
func (_c *OrderCreateBulk) Save(ctx context.Context) ([]*Order, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Order, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OrderCreateBulk) SaveX(ctx context.Context) []*Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Order.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderCreateBulk) OnConflict(opts ...sql.ConflictOption) *OrderUpsertBulk {
	_c.conflict = opts
	return &OrderUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderCreateBulk) OnConflictColumns(columns ...string) *OrderUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderUpsertBulk{
		create: _c,
	}
}

// OrderUpsertBulk is the builder for "upsert"-ing
// a bulk of Order nodes.
type OrderUpsertBulk struct {
	create *OrderCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(order.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OrderUpsertBulk) UpdateNewValues() *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(order.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(order.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OrderUpsertBulk) Ignore() *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderUpsertBulk) DoNothing() *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderCreateBulk.OnConflict
// documentation for more info.
func (u *OrderUpsertBulk) Update(set func(*OrderUpsert)) *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetBusinessID sets the "business_id" field.
func (u *OrderUpsertBulk) SetBusinessID(v int) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetBusinessID(v)
	})
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateBusinessID() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateBusinessID()
	})
}

// SetLocation sets the "location" field.
func (u *OrderUpsertBulk) SetLocation(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateLocation() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateLocation()
	})
}

// SetTableID sets the "table_id" field.
func (u *OrderUpsertBulk) SetTableID(v int) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetTableID(v)
	})
}

// UpdateTableID sets the "table_id" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateTableID() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTableID()
	})
}

// ClearTableID clears the value of the "table_id" field.
func (u *OrderUpsertBulk) ClearTableID() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearTableID()
	})
}

// SetStatus sets the "status" field.
func (u *OrderUpsertBulk) SetStatus(v order.Status) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateStatus() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateStatus()
	})
}

// SetPaymentMethod sets the "payment_method" field.
func (u *OrderUpsertBulk) SetPaymentMethod(v order.PaymentMethod) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetPaymentMethod(v)
	})
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdatePaymentMethod() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdatePaymentMethod()
	})
}

// SetPaymentStatus sets the "payment_status" field.
func (u *OrderUpsertBulk) SetPaymentStatus(v order.PaymentStatus) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetPaymentStatus(v)
	})
}

// UpdatePaymentStatus sets the "payment_status" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdatePaymentStatus() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdatePaymentStatus()
	})
}

// SetSubtotal sets the "subtotal" field.
func (u *OrderUpsertBulk) SetSubtotal(v float64) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetSubtotal(v)
	})
}

// AddSubtotal adds v to the "subtotal" field.
func (u *OrderUpsertBulk) AddSubtotal(v float64) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.AddSubtotal(v)
	})
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateSubtotal() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateSubtotal()
	})
}

// SetTaxAmount sets the "tax_amount" field.
func (u *OrderUpsertBulk) SetTaxAmount(v float64) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetTaxAmount(v)
	})
}

// AddTaxAmount adds v to the "tax_amount" field.
func (u *OrderUpsertBulk) AddTaxAmount(v float64) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.AddTaxAmount(v)
	})
}

// UpdateTaxAmount sets the "tax_amount" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateTaxAmount() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTaxAmount()
	})
}

// SetTipAmount sets the "tip_amount" field.
func (u *OrderUpsertBulk) SetTipAmount(v float64) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetTipAmount(v)
	})
}

// AddTipAmount adds v to the "tip_amount" field.
func (u *OrderUpsertBulk) AddTipAmount(v float64) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.AddTipAmount(v)
	})
}

// UpdateTipAmount sets the "tip_amount" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateTipAmount() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTipAmount()
	})
}

// SetTotalPrice sets the "total_price" field.
func (u *OrderUpsertBulk) SetTotalPrice(v float64) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetTotalPrice(v)
	})
}

// AddTotalPrice adds v to the "total_price" field.
func (u *OrderUpsertBulk) AddTotalPrice(v float64) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.AddTotalPrice(v)
	})
}

// UpdateTotalPrice sets the "total_price" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateTotalPrice() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTotalPrice()
	})
}

// SetSpecialRequests sets the "special_requests" field.
func (u *OrderUpsertBulk) SetSpecialRequests(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetSpecialRequests(v)
	})
}

// UpdateSpecialRequests sets the "special_requests" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateSpecialRequests() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateSpecialRequests()
	})
}

// ClearSpecialRequests clears the value of the "special_requests" field.
func (u *OrderUpsertBulk) ClearSpecialRequests() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearSpecialRequests()
	})
}

// SetItemsSnapshot sets the "items_snapshot" field.
func (u *OrderUpsertBulk) SetItemsSnapshot(v []map[string]interface{}) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetItemsSnapshot(v)
	})
}

// UpdateItemsSnapshot sets the "items_snapshot" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateItemsSnapshot() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateItemsSnapshot()
	})
}

// ClearItemsSnapshot clears the value of the "items_snapshot" field.
func (u *OrderUpsertBulk) ClearItemsSnapshot() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearItemsSnapshot()
	})
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (u *OrderUpsertBulk) SetStatusChangedAt(v time.Time) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetStatusChangedAt(v)
	})
}

// UpdateStatusChangedAt sets the "status_changed_at" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateStatusChangedAt() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateStatusChangedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OrderUpsertBulk) SetUpdatedAt(v time.Time) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateUpdatedAt() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *OrderUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OrderCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrderCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
