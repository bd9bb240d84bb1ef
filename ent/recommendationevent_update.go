// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/predicate"
	"github.com/menuqr/menuqr/ent/recommendationevent"
)

// RecommendationEventUpdate is the builder for updating RecommendationEvent entities.
type RecommendationEventUpdate struct {
	config
	hooks    []Hook
	mutation *RecommendationEventMutation
}

// Where appends a list predicates to the RecommendationEventUpdate builder.
func (_u *RecommendationEventUpdate) Where(ps ...predicate.RecommendationEvent) *RecommendationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *RecommendationEventUpdate) SetBusinessID(v int) *RecommendationEventUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *RecommendationEventUpdate) SetNillableBusinessID(v *int) *RecommendationEventUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetSourceItemID sets the "source_item_id" field.
func (_u *RecommendationEventUpdate) SetSourceItemID(v int) *RecommendationEventUpdate {
	_u.mutation.ResetSourceItemID()
	_u.mutation.SetSourceItemID(v)
	return _u
}

// SetNillableSourceItemID sets the "source_item_id" field if the given value is not nil.
func (_u *RecommendationEventUpdate) SetNillableSourceItemID(v *int) *RecommendationEventUpdate {
	if v != nil {
		_u.SetSourceItemID(*v)
	}
	return _u
}

// AddSourceItemID adds value to the "source_item_id" field.
func (_u *RecommendationEventUpdate) AddSourceItemID(v int) *RecommendationEventUpdate {
	_u.mutation.AddSourceItemID(v)
	return _u
}

// ClearSourceItemID clears the value of the "source_item_id" field.
func (_u *RecommendationEventUpdate) ClearSourceItemID() *RecommendationEventUpdate {
	_u.mutation.ClearSourceItemID()
	return _u
}

// SetRecommendedItemID sets the "recommended_item_id" field.
func (_u *RecommendationEventUpdate) SetRecommendedItemID(v int) *RecommendationEventUpdate {
	_u.mutation.ResetRecommendedItemID()
	_u.mutation.SetRecommendedItemID(v)
	return _u
}

// SetNillableRecommendedItemID sets the "recommended_item_id" field if the given value is not nil.
func (_u *RecommendationEventUpdate) SetNillableRecommendedItemID(v *int) *RecommendationEventUpdate {
	if v != nil {
		_u.SetRecommendedItemID(*v)
	}
	return _u
}

// AddRecommendedItemID adds value to the "recommended_item_id" field.
func (_u *RecommendationEventUpdate) AddRecommendedItemID(v int) *RecommendationEventUpdate {
	_u.mutation.AddRecommendedItemID(v)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *RecommendationEventUpdate) SetEventType(v recommendationevent.EventType) *RecommendationEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *RecommendationEventUpdate) SetNillableEventType(v *recommendationevent.EventType) *RecommendationEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *RecommendationEventUpdate) SetOrderID(v uuid.UUID) *RecommendationEventUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *RecommendationEventUpdate) SetNillableOrderID(v *uuid.UUID) *RecommendationEventUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *RecommendationEventUpdate) ClearOrderID() *RecommendationEventUpdate {
	_u.mutation.ClearOrderID()
	return _u
}

// SetRevenue sets the "revenue" field.
func (_u *RecommendationEventUpdate) SetRevenue(v float64) *RecommendationEventUpdate {
	_u.mutation.ResetRevenue()
	_u.mutation.SetRevenue(v)
	return _u
}

// SetNillableRevenue sets the "revenue" field if the given value is not nil.
func (_u *RecommendationEventUpdate) SetNillableRevenue(v *float64) *RecommendationEventUpdate {
	if v != nil {
		_u.SetRevenue(*v)
	}
	return _u
}

// AddRevenue adds value to the "revenue" field.
func (_u *RecommendationEventUpdate) AddRevenue(v float64) *RecommendationEventUpdate {
	_u.mutation.AddRevenue(v)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *RecommendationEventUpdate) SetBusiness(v *Business) *RecommendationEventUpdate {
	return _u.SetBusinessID(v.ID)
}

// Mutation returns the RecommendationEventMutation object of the builder.
func (_u *RecommendationEventUpdate) Mutation() *RecommendationEventMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *RecommendationEventUpdate) ClearBusiness() *RecommendationEventUpdate {
	_u.mutation.ClearBusiness()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecommendationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecommendationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := recommendationevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvent.event_type": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecommendationEvent.business"`)
	}
	return nil
}

func (_u *RecommendationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendationevent.Table, recommendationevent.Columns, sqlgraph.NewFieldSpec(recommendationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceItemID(); ok {
		_spec.SetField(recommendationevent.FieldSourceItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceItemID(); ok {
		_spec.AddField(recommendationevent.FieldSourceItemID, field.TypeInt, value)
	}
	if _u.mutation.SourceItemIDCleared() {
		_spec.ClearField(recommendationevent.FieldSourceItemID, field.TypeInt)
	}
	if value, ok := _u.mutation.RecommendedItemID(); ok {
		_spec.SetField(recommendationevent.FieldRecommendedItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecommendedItemID(); ok {
		_spec.AddField(recommendationevent.FieldRecommendedItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(recommendationevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(recommendationevent.FieldOrderID, field.TypeUUID, value)
	}
	if _u.mutation.OrderIDCleared() {
		_spec.ClearField(recommendationevent.FieldOrderID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Revenue(); ok {
		_spec.SetField(recommendationevent.FieldRevenue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRevenue(); ok {
		_spec.AddField(recommendationevent.FieldRevenue, field.TypeFloat64, value)
	}
	if _u.mutation.BusinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recommendationevent.BusinessTable,
			Columns: []string{recommendationevent.BusinessColumn},
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
			Table:   recommendationevent.BusinessTable,
			Columns: []string{recommendationevent.BusinessColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecommendationEventUpdateOne is the builder for updating a single RecommendationEvent entity.
type RecommendationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecommendationEventMutation
}

// SetBusinessID sets the "business_id" field.
func (_u *RecommendationEventUpdateOne) SetBusinessID(v int) *RecommendationEventUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *RecommendationEventUpdateOne) SetNillableBusinessID(v *int) *RecommendationEventUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetSourceItemID sets the "source_item_id" field.
func (_u *RecommendationEventUpdateOne) SetSourceItemID(v int) *RecommendationEventUpdateOne {
	_u.mutation.ResetSourceItemID()
	_u.mutation.SetSourceItemID(v)
	return _u
}

// SetNillableSourceItemID sets the "source_item_id" field if the given value is not nil.
func (_u *RecommendationEventUpdateOne) SetNillableSourceItemID(v *int) *RecommendationEventUpdateOne {
	if v != nil {
		_u.SetSourceItemID(*v)
	}
	return _u
}

// AddSourceItemID adds value to the "source_item_id" field.
func (_u *RecommendationEventUpdateOne) AddSourceItemID(v int) *RecommendationEventUpdateOne {
	_u.mutation.AddSourceItemID(v)
	return _u
}

// ClearSourceItemID clears the value of the "source_item_id" field.
func (_u *RecommendationEventUpdateOne) ClearSourceItemID() *RecommendationEventUpdateOne {
	_u.mutation.ClearSourceItemID()
	return _u
}

// SetRecommendedItemID sets the "recommended_item_id" field.
func (_u *RecommendationEventUpdateOne) SetRecommendedItemID(v int) *RecommendationEventUpdateOne {
	_u.mutation.ResetRecommendedItemID()
	_u.mutation.SetRecommendedItemID(v)
	return _u
}

// SetNillableRecommendedItemID sets the "recommended_item_id" field if the given value is not nil.
func (_u *RecommendationEventUpdateOne) SetNillableRecommendedItemID(v *int) *RecommendationEventUpdateOne {
	if v != nil {
		_u.SetRecommendedItemID(*v)
	}
	return _u
}

// AddRecommendedItemID adds value to the "recommended_item_id" field.
func (_u *RecommendationEventUpdateOne) AddRecommendedItemID(v int) *RecommendationEventUpdateOne {
	_u.mutation.AddRecommendedItemID(v)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *RecommendationEventUpdateOne) SetEventType(v recommendationevent.EventType) *RecommendationEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *RecommendationEventUpdateOne) SetNillableEventType(v *recommendationevent.EventType) *RecommendationEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *RecommendationEventUpdateOne) SetOrderID(v uuid.UUID) *RecommendationEventUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *RecommendationEventUpdateOne) SetNillableOrderID(v *uuid.UUID) *RecommendationEventUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *RecommendationEventUpdateOne) ClearOrderID() *RecommendationEventUpdateOne {
	_u.mutation.ClearOrderID()
	return _u
}

// SetRevenue sets the "revenue" field.
func (_u *RecommendationEventUpdateOne) SetRevenue(v float64) *RecommendationEventUpdateOne {
	_u.mutation.ResetRevenue()
	_u.mutation.SetRevenue(v)
	return _u
}

// SetNillableRevenue sets the "revenue" field if the given value is not nil.
func (_u *RecommendationEventUpdateOne) SetNillableRevenue(v *float64) *RecommendationEventUpdateOne {
	if v != nil {
		_u.SetRevenue(*v)
	}
	return _u
}

// AddRevenue adds value to the "revenue" field.
func (_u *RecommendationEventUpdateOne) AddRevenue(v float64) *RecommendationEventUpdateOne {
	_u.mutation.AddRevenue(v)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *RecommendationEventUpdateOne) SetBusiness(v *Business) *RecommendationEventUpdateOne {
	return _u.SetBusinessID(v.ID)
}

// Mutation returns the RecommendationEventMutation object of the builder.
func (_u *RecommendationEventUpdateOne) Mutation() *RecommendationEventMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *RecommendationEventUpdateOne) ClearBusiness() *RecommendationEventUpdateOne {
	_u.mutation.ClearBusiness()
	return _u
}

// Where appends a list predicates to the RecommendationEventUpdate builder.
func (_u *RecommendationEventUpdateOne) Where(ps ...predicate.RecommendationEvent) *RecommendationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecommendationEventUpdateOne) Select(field string, fields ...string) *RecommendationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecommendationEvent entity.
func (_u *RecommendationEventUpdateOne) Save(ctx context.Context) (*RecommendationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationEventUpdateOne) SaveX(ctx context.Context) *RecommendationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecommendationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := recommendationevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvent.event_type": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecommendationEvent.business"`)
	}
	return nil
}

func (_u *RecommendationEventUpdateOne) sqlSave(ctx context.Context) (_node *RecommendationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendationevent.Table, recommendationevent.Columns, sqlgraph.NewFieldSpec(recommendationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecommendationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recommendationevent.FieldID)
		for _, f := range fields {
			if !recommendationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recommendationevent.FieldID {
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
	if value, ok := _u.mutation.SourceItemID(); ok {
		_spec.SetField(recommendationevent.FieldSourceItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceItemID(); ok {
		_spec.AddField(recommendationevent.FieldSourceItemID, field.TypeInt, value)
	}
	if _u.mutation.SourceItemIDCleared() {
		_spec.ClearField(recommendationevent.FieldSourceItemID, field.TypeInt)
	}
	if value, ok := _u.mutation.RecommendedItemID(); ok {
		_spec.SetField(recommendationevent.FieldRecommendedItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecommendedItemID(); ok {
		_spec.AddField(recommendationevent.FieldRecommendedItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(recommendationevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(recommendationevent.FieldOrderID, field.TypeUUID, value)
	}
	if _u.mutation.OrderIDCleared() {
		_spec.ClearField(recommendationevent.FieldOrderID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Revenue(); ok {
		_spec.SetField(recommendationevent.FieldRevenue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRevenue(); ok {
		_spec.AddField(recommendationevent.FieldRevenue, field.TypeFloat64, value)
	}
	if _u.mutation.BusinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recommendationevent.BusinessTable,
			Columns: []string{recommendationevent.BusinessColumn},
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
			Table:   recommendationevent.BusinessTable,
			Columns: []string{recommendationevent.BusinessColumn},
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
	_node = &RecommendationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
