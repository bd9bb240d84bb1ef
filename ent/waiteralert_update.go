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
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/predicate"
	"github.com/menuqr/menuqr/ent/table"
	"github.com/menuqr/menuqr/ent/waiteralert"
)

// WaiterAlertUpdate is the builder for updating WaiterAlert entities.
type WaiterAlertUpdate struct {
	config
	hooks    []Hook
	mutation *WaiterAlertMutation
}

// Where appends a list predicates to the WaiterAlertUpdate builder.
func (_u *WaiterAlertUpdate) Where(ps ...predicate.WaiterAlert) *WaiterAlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *WaiterAlertUpdate) SetBusinessID(v int) *WaiterAlertUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *WaiterAlertUpdate) SetNillableBusinessID(v *int) *WaiterAlertUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetTableID sets the "table_id" field.
func (_u *WaiterAlertUpdate) SetTableID(v int) *WaiterAlertUpdate {
	_u.mutation.SetTableID(v)
	return _u
}

// SetNillableTableID sets the "table_id" field if the given value is not nil.
func (_u *WaiterAlertUpdate) SetNillableTableID(v *int) *WaiterAlertUpdate {
	if v != nil {
		_u.SetTableID(*v)
	}
	return _u
}

// SetAlertType sets the "alert_type" field.
func (_u *WaiterAlertUpdate) SetAlertType(v waiteralert.AlertType) *WaiterAlertUpdate {
	_u.mutation.SetAlertType(v)
	return _u
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_u *WaiterAlertUpdate) SetNillableAlertType(v *waiteralert.AlertType) *WaiterAlertUpdate {
	if v != nil {
		_u.SetAlertType(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *WaiterAlertUpdate) SetMessage(v string) *WaiterAlertUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *WaiterAlertUpdate) SetNillableMessage(v *string) *WaiterAlertUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *WaiterAlertUpdate) ClearMessage() *WaiterAlertUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WaiterAlertUpdate) SetStatus(v waiteralert.Status) *WaiterAlertUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WaiterAlertUpdate) SetNillableStatus(v *waiteralert.Status) *WaiterAlertUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_u *WaiterAlertUpdate) SetAcknowledgedAt(v time.Time) *WaiterAlertUpdate {
	_u.mutation.SetAcknowledgedAt(v)
	return _u
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_u *WaiterAlertUpdate) SetNillableAcknowledgedAt(v *time.Time) *WaiterAlertUpdate {
	if v != nil {
		_u.SetAcknowledgedAt(*v)
	}
	return _u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (_u *WaiterAlertUpdate) ClearAcknowledgedAt() *WaiterAlertUpdate {
	_u.mutation.ClearAcknowledgedAt()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *WaiterAlertUpdate) SetResolvedAt(v time.Time) *WaiterAlertUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *WaiterAlertUpdate) SetNillableResolvedAt(v *time.Time) *WaiterAlertUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *WaiterAlertUpdate) ClearResolvedAt() *WaiterAlertUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *WaiterAlertUpdate) SetBusiness(v *Business) *WaiterAlertUpdate {
	return _u.SetBusinessID(v.ID)
}

// SetTable sets the "table" edge to the Table entity.
func (_u *WaiterAlertUpdate) SetTable(v *Table) *WaiterAlertUpdate {
	return _u.SetTableID(v.ID)
}

// Mutation returns the WaiterAlertMutation object of the builder.
func (_u *WaiterAlertUpdate) Mutation() *WaiterAlertMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *WaiterAlertUpdate) ClearBusiness() *WaiterAlertUpdate {
	_u.mutation.ClearBusiness()
	return _u
}

// ClearTable clears the "table" edge to the Table entity.
func (_u *WaiterAlertUpdate) ClearTable() *WaiterAlertUpdate {
	_u.mutation.ClearTable()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WaiterAlertUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WaiterAlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WaiterAlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WaiterAlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WaiterAlertUpdate) check() error {
	if v, ok := _u.mutation.AlertType(); ok {
		if err := waiteralert.AlertTypeValidator(v); err != nil {
			return &ValidationError{Name: "alert_type", err: fmt.Errorf(`ent: validator failed for field "WaiterAlert.alert_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := waiteralert.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "WaiterAlert.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := waiteralert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WaiterAlert.status": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WaiterAlert.business"`)
	}
	if _u.mutation.TableCleared() && len(_u.mutation.TableIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WaiterAlert.table"`)
	}
	return nil
}

func (_u *WaiterAlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(waiteralert.Table, waiteralert.Columns, sqlgraph.NewFieldSpec(waiteralert.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AlertType(); ok {
		_spec.SetField(waiteralert.FieldAlertType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(waiteralert.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(waiteralert.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(waiteralert.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AcknowledgedAt(); ok {
		_spec.SetField(waiteralert.FieldAcknowledgedAt, field.TypeTime, value)
	}
	if _u.mutation.AcknowledgedAtCleared() {
		_spec.ClearField(waiteralert.FieldAcknowledgedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(waiteralert.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(waiteralert.FieldResolvedAt, field.TypeTime)
	}
	if _u.mutation.BusinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   waiteralert.BusinessTable,
			Columns: []string{waiteralert.BusinessColumn},
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
			Table:   waiteralert.BusinessTable,
			Columns: []string{waiteralert.BusinessColumn},
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
			Table:   waiteralert.TableTable,
			Columns: []string{waiteralert.TableColumn},
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
			Table:   waiteralert.TableTable,
			Columns: []string{waiteralert.TableColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{waiteralert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WaiterAlertUpdateOne is the builder for updating a single WaiterAlert entity.
type WaiterAlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WaiterAlertMutation
}

// SetBusinessID sets the "business_id" field.
func (_u *WaiterAlertUpdateOne) SetBusinessID(v int) *WaiterAlertUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *WaiterAlertUpdateOne) SetNillableBusinessID(v *int) *WaiterAlertUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetTableID sets the "table_id" field.
func (_u *WaiterAlertUpdateOne) SetTableID(v int) *WaiterAlertUpdateOne {
	_u.mutation.SetTableID(v)
	return _u
}

// SetNillableTableID sets the "table_id" field if the given value is not nil.
func (_u *WaiterAlertUpdateOne) SetNillableTableID(v *int) *WaiterAlertUpdateOne {
	if v != nil {
		_u.SetTableID(*v)
	}
	return _u
}

// SetAlertType sets the "alert_type" field.
func (_u *WaiterAlertUpdateOne) SetAlertType(v waiteralert.AlertType) *WaiterAlertUpdateOne {
	_u.mutation.SetAlertType(v)
	return _u
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_u *WaiterAlertUpdateOne) SetNillableAlertType(v *waiteralert.AlertType) *WaiterAlertUpdateOne {
	if v != nil {
		_u.SetAlertType(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *WaiterAlertUpdateOne) SetMessage(v string) *WaiterAlertUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *WaiterAlertUpdateOne) SetNillableMessage(v *string) *WaiterAlertUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *WaiterAlertUpdateOne) ClearMessage() *WaiterAlertUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WaiterAlertUpdateOne) SetStatus(v waiteralert.Status) *WaiterAlertUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WaiterAlertUpdateOne) SetNillableStatus(v *waiteralert.Status) *WaiterAlertUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_u *WaiterAlertUpdateOne) SetAcknowledgedAt(v time.Time) *WaiterAlertUpdateOne {
	_u.mutation.SetAcknowledgedAt(v)
	return _u
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_u *WaiterAlertUpdateOne) SetNillableAcknowledgedAt(v *time.Time) *WaiterAlertUpdateOne {
	if v != nil {
		_u.SetAcknowledgedAt(*v)
	}
	return _u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (_u *WaiterAlertUpdateOne) ClearAcknowledgedAt() *WaiterAlertUpdateOne {
	_u.mutation.ClearAcknowledgedAt()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *WaiterAlertUpdateOne) SetResolvedAt(v time.Time) *WaiterAlertUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *WaiterAlertUpdateOne) SetNillableResolvedAt(v *time.Time) *WaiterAlertUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *WaiterAlertUpdateOne) ClearResolvedAt() *WaiterAlertUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *WaiterAlertUpdateOne) SetBusiness(v *Business) *WaiterAlertUpdateOne {
	return _u.SetBusinessID(v.ID)
}

// SetTable sets the "table" edge to the Table entity.
func (_u *WaiterAlertUpdateOne) SetTable(v *Table) *WaiterAlertUpdateOne {
	return _u.SetTableID(v.ID)
}

// Mutation returns the WaiterAlertMutation object of the builder.
func (_u *WaiterAlertUpdateOne) Mutation() *WaiterAlertMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *WaiterAlertUpdateOne) ClearBusiness() *WaiterAlertUpdateOne {
	_u.mutation.ClearBusiness()
	return _u
}

// ClearTable clears the "table" edge to the Table entity.
func (_u *WaiterAlertUpdateOne) ClearTable() *WaiterAlertUpdateOne {
	_u.mutation.ClearTable()
	return _u
}

// Where appends a list predicates to the WaiterAlertUpdate builder.
func (_u *WaiterAlertUpdateOne) Where(ps ...predicate.WaiterAlert) *WaiterAlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WaiterAlertUpdateOne) Select(field string, fields ...string) *WaiterAlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WaiterAlert entity.
func (_u *WaiterAlertUpdateOne) Save(ctx context.Context) (*WaiterAlert, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WaiterAlertUpdateOne) SaveX(ctx context.Context) *WaiterAlert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WaiterAlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WaiterAlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WaiterAlertUpdateOne) check() error {
	if v, ok := _u.mutation.AlertType(); ok {
		if err := waiteralert.AlertTypeValidator(v); err != nil {
			return &ValidationError{Name: "alert_type", err: fmt.Errorf(`ent: validator failed for field "WaiterAlert.alert_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := waiteralert.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "WaiterAlert.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := waiteralert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WaiterAlert.status": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WaiterAlert.business"`)
	}
	if _u.mutation.TableCleared() && len(_u.mutation.TableIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WaiterAlert.table"`)
	}
	return nil
}

func (_u *WaiterAlertUpdateOne) sqlSave(ctx context.Context) (_node *WaiterAlert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(waiteralert.Table, waiteralert.Columns, sqlgraph.NewFieldSpec(waiteralert.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WaiterAlert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, waiteralert.FieldID)
		for _, f := range fields {
			if !waiteralert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != waiteralert.FieldID {
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
	if value, ok := _u.mutation.AlertType(); ok {
		_spec.SetField(waiteralert.FieldAlertType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(waiteralert.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(waiteralert.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(waiteralert.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AcknowledgedAt(); ok {
		_spec.SetField(waiteralert.FieldAcknowledgedAt, field.TypeTime, value)
	}
	if _u.mutation.AcknowledgedAtCleared() {
		_spec.ClearField(waiteralert.FieldAcknowledgedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(waiteralert.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(waiteralert.FieldResolvedAt, field.TypeTime)
	}
	if _u.mutation.BusinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   waiteralert.BusinessTable,
			Columns: []string{waiteralert.BusinessColumn},
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
			Table:   waiteralert.BusinessTable,
			Columns: []string{waiteralert.BusinessColumn},
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
			Table:   waiteralert.TableTable,
			Columns: []string{waiteralert.TableColumn},
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
			Table:   waiteralert.TableTable,
			Columns: []string{waiteralert.TableColumn},
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
	_node = &WaiterAlert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{waiteralert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
