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
	"github.com/menuqr/menuqr/ent/itempairfrequency"
	"github.com/menuqr/menuqr/ent/predicate"
)

// ItemPairFrequencyUpdate is the builder for updating ItemPairFrequency entities.
type ItemPairFrequencyUpdate struct {
	config
	hooks    []Hook
	mutation *ItemPairFrequencyMutation
}

// Where appends a list predicates to the ItemPairFrequencyUpdate builder.
func (_u *ItemPairFrequencyUpdate) Where(ps ...predicate.ItemPairFrequency) *ItemPairFrequencyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *ItemPairFrequencyUpdate) SetBusinessID(v int) *ItemPairFrequencyUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *ItemPairFrequencyUpdate) SetNillableBusinessID(v *int) *ItemPairFrequencyUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetItemAID sets the "item_a_id" field.
func (_u *ItemPairFrequencyUpdate) SetItemAID(v int) *ItemPairFrequencyUpdate {
	_u.mutation.ResetItemAID()
	_u.mutation.SetItemAID(v)
	return _u
}

// SetNillableItemAID sets the "item_a_id" field if the given value is not nil.
func (_u *ItemPairFrequencyUpdate) SetNillableItemAID(v *int) *ItemPairFrequencyUpdate {
	if v != nil {
		_u.SetItemAID(*v)
	}
	return _u
}

// AddItemAID adds value to the "item_a_id" field.
func (_u *ItemPairFrequencyUpdate) AddItemAID(v int) *ItemPairFrequencyUpdate {
	_u.mutation.AddItemAID(v)
	return _u
}

// SetItemBID sets the "item_b_id" field.
func (_u *ItemPairFrequencyUpdate) SetItemBID(v int) *ItemPairFrequencyUpdate {
	_u.mutation.ResetItemBID()
	_u.mutation.SetItemBID(v)
	return _u
}

// SetNillableItemBID sets the "item_b_id" field if the given value is not nil.
func (_u *ItemPairFrequencyUpdate) SetNillableItemBID(v *int) *ItemPairFrequencyUpdate {
	if v != nil {
		_u.SetItemBID(*v)
	}
	return _u
}

// AddItemBID adds value to the "item_b_id" field.
func (_u *ItemPairFrequencyUpdate) AddItemBID(v int) *ItemPairFrequencyUpdate {
	_u.mutation.AddItemBID(v)
	return _u
}

// SetTimesTogether sets the "times_together" field.
func (_u *ItemPairFrequencyUpdate) SetTimesTogether(v int) *ItemPairFrequencyUpdate {
	_u.mutation.ResetTimesTogether()
	_u.mutation.SetTimesTogether(v)
	return _u
}

// SetNillableTimesTogether sets the "times_together" field if the given value is not nil.
func (_u *ItemPairFrequencyUpdate) SetNillableTimesTogether(v *int) *ItemPairFrequencyUpdate {
	if v != nil {
		_u.SetTimesTogether(*v)
	}
	return _u
}

// AddTimesTogether adds value to the "times_together" field.
func (_u *ItemPairFrequencyUpdate) AddTimesTogether(v int) *ItemPairFrequencyUpdate {
	_u.mutation.AddTimesTogether(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ItemPairFrequencyUpdate) SetConfidence(v float64) *ItemPairFrequencyUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ItemPairFrequencyUpdate) SetNillableConfidence(v *float64) *ItemPairFrequencyUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ItemPairFrequencyUpdate) AddConfidence(v float64) *ItemPairFrequencyUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTimesRecommended sets the "times_recommended" field.
func (_u *ItemPairFrequencyUpdate) SetTimesRecommended(v int) *ItemPairFrequencyUpdate {
	_u.mutation.ResetTimesRecommended()
	_u.mutation.SetTimesRecommended(v)
	return _u
}

// SetNillableTimesRecommended sets the "times_recommended" field if the given value is not nil.
func (_u *ItemPairFrequencyUpdate) SetNillableTimesRecommended(v *int) *ItemPairFrequencyUpdate {
	if v != nil {
		_u.SetTimesRecommended(*v)
	}
	return _u
}

// AddTimesRecommended adds value to the "times_recommended" field.
func (_u *ItemPairFrequencyUpdate) AddTimesRecommended(v int) *ItemPairFrequencyUpdate {
	_u.mutation.AddTimesRecommended(v)
	return _u
}

// SetTimesConverted sets the "times_converted" field.
func (_u *ItemPairFrequencyUpdate) SetTimesConverted(v int) *ItemPairFrequencyUpdate {
	_u.mutation.ResetTimesConverted()
	_u.mutation.SetTimesConverted(v)
	return _u
}

// SetNillableTimesConverted sets the "times_converted" field if the given value is not nil.
func (_u *ItemPairFrequencyUpdate) SetNillableTimesConverted(v *int) *ItemPairFrequencyUpdate {
	if v != nil {
		_u.SetTimesConverted(*v)
	}
	return _u
}

// AddTimesConverted adds value to the "times_converted" field.
func (_u *ItemPairFrequencyUpdate) AddTimesConverted(v int) *ItemPairFrequencyUpdate {
	_u.mutation.AddTimesConverted(v)
	return _u
}

// SetRevenueGenerated sets the "revenue_generated" field.
func (_u *ItemPairFrequencyUpdate) SetRevenueGenerated(v float64) *ItemPairFrequencyUpdate {
	_u.mutation.ResetRevenueGenerated()
	_u.mutation.SetRevenueGenerated(v)
	return _u
}

// SetNillableRevenueGenerated sets the "revenue_generated" field if the given value is not nil.
func (_u *ItemPairFrequencyUpdate) SetNillableRevenueGenerated(v *float64) *ItemPairFrequencyUpdate {
	if v != nil {
		_u.SetRevenueGenerated(*v)
	}
	return _u
}

// AddRevenueGenerated adds value to the "revenue_generated" field.
func (_u *ItemPairFrequencyUpdate) AddRevenueGenerated(v float64) *ItemPairFrequencyUpdate {
	_u.mutation.AddRevenueGenerated(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItemPairFrequencyUpdate) SetUpdatedAt(v time.Time) *ItemPairFrequencyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *ItemPairFrequencyUpdate) SetBusiness(v *Business) *ItemPairFrequencyUpdate {
	return _u.SetBusinessID(v.ID)
}

// Mutation returns the ItemPairFrequencyMutation object of the builder.
func (_u *ItemPairFrequencyUpdate) Mutation() *ItemPairFrequencyMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *ItemPairFrequencyUpdate) ClearBusiness() *ItemPairFrequencyUpdate {
	_u.mutation.ClearBusiness()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemPairFrequencyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemPairFrequencyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemPairFrequencyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemPairFrequencyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItemPairFrequencyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := itempairfrequency.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemPairFrequencyUpdate) check() error {
	if v, ok := _u.mutation.TimesTogether(); ok {
		if err := itempairfrequency.TimesTogetherValidator(v); err != nil {
			return &ValidationError{Name: "times_together", err: fmt.Errorf(`ent: validator failed for field "ItemPairFrequency.times_together": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ItemPairFrequency.business"`)
	}
	return nil
}

func (_u *ItemPairFrequencyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itempairfrequency.Table, itempairfrequency.Columns, sqlgraph.NewFieldSpec(itempairfrequency.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemAID(); ok {
		_spec.SetField(itempairfrequency.FieldItemAID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemAID(); ok {
		_spec.AddField(itempairfrequency.FieldItemAID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemBID(); ok {
		_spec.SetField(itempairfrequency.FieldItemBID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemBID(); ok {
		_spec.AddField(itempairfrequency.FieldItemBID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimesTogether(); ok {
		_spec.SetField(itempairfrequency.FieldTimesTogether, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesTogether(); ok {
		_spec.AddField(itempairfrequency.FieldTimesTogether, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(itempairfrequency.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(itempairfrequency.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimesRecommended(); ok {
		_spec.SetField(itempairfrequency.FieldTimesRecommended, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesRecommended(); ok {
		_spec.AddField(itempairfrequency.FieldTimesRecommended, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimesConverted(); ok {
		_spec.SetField(itempairfrequency.FieldTimesConverted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesConverted(); ok {
		_spec.AddField(itempairfrequency.FieldTimesConverted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RevenueGenerated(); ok {
		_spec.SetField(itempairfrequency.FieldRevenueGenerated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRevenueGenerated(); ok {
		_spec.AddField(itempairfrequency.FieldRevenueGenerated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(itempairfrequency.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BusinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   itempairfrequency.BusinessTable,
			Columns: []string{itempairfrequency.BusinessColumn},
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
			Table:   itempairfrequency.BusinessTable,
			Columns: []string{itempairfrequency.BusinessColumn},
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
			err = &NotFoundError{itempairfrequency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemPairFrequencyUpdateOne is the builder for updating a single ItemPairFrequency entity.
type ItemPairFrequencyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemPairFrequencyMutation
}

// SetBusinessID sets the "business_id" field.
func (_u *ItemPairFrequencyUpdateOne) SetBusinessID(v int) *ItemPairFrequencyUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *ItemPairFrequencyUpdateOne) SetNillableBusinessID(v *int) *ItemPairFrequencyUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetItemAID sets the "item_a_id" field.
func (_u *ItemPairFrequencyUpdateOne) SetItemAID(v int) *ItemPairFrequencyUpdateOne {
	_u.mutation.ResetItemAID()
	_u.mutation.SetItemAID(v)
	return _u
}

// SetNillableItemAID sets the "item_a_id" field if the given value is not nil.
func (_u *ItemPairFrequencyUpdateOne) SetNillableItemAID(v *int) *ItemPairFrequencyUpdateOne {
	if v != nil {
		_u.SetItemAID(*v)
	}
	return _u
}

// AddItemAID adds value to the "item_a_id" field.
func (_u *ItemPairFrequencyUpdateOne) AddItemAID(v int) *ItemPairFrequencyUpdateOne {
	_u.mutation.AddItemAID(v)
	return _u
}

// SetItemBID sets the "item_b_id" field.
func (_u *ItemPairFrequencyUpdateOne) SetItemBID(v int) *ItemPairFrequencyUpdateOne {
	_u.mutation.ResetItemBID()
	_u.mutation.SetItemBID(v)
	return _u
}

// SetNillableItemBID sets the "item_b_id" field if the given value is not nil.
func (_u *ItemPairFrequencyUpdateOne) SetNillableItemBID(v *int) *ItemPairFrequencyUpdateOne {
	if v != nil {
		_u.SetItemBID(*v)
	}
	return _u
}

// AddItemBID adds value to the "item_b_id" field.
func (_u *ItemPairFrequencyUpdateOne) AddItemBID(v int) *ItemPairFrequencyUpdateOne {
	_u.mutation.AddItemBID(v)
	return _u
}

// SetTimesTogether sets the "times_together" field.
func (_u *ItemPairFrequencyUpdateOne) SetTimesTogether(v int) *ItemPairFrequencyUpdateOne {
	_u.mutation.ResetTimesTogether()
	_u.mutation.SetTimesTogether(v)
	return _u
}

// SetNillableTimesTogether sets the "times_together" field if the given value is not nil.
func (_u *ItemPairFrequencyUpdateOne) SetNillableTimesTogether(v *int) *ItemPairFrequencyUpdateOne {
	if v != nil {
		_u.SetTimesTogether(*v)
	}
	return _u
}

// AddTimesTogether adds value to the "times_together" field.
func (_u *ItemPairFrequencyUpdateOne) AddTimesTogether(v int) *ItemPairFrequencyUpdateOne {
	_u.mutation.AddTimesTogether(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ItemPairFrequencyUpdateOne) SetConfidence(v float64) *ItemPairFrequencyUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ItemPairFrequencyUpdateOne) SetNillableConfidence(v *float64) *ItemPairFrequencyUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ItemPairFrequencyUpdateOne) AddConfidence(v float64) *ItemPairFrequencyUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTimesRecommended sets the "times_recommended" field.
func (_u *ItemPairFrequencyUpdateOne) SetTimesRecommended(v int) *ItemPairFrequencyUpdateOne {
	_u.mutation.ResetTimesRecommended()
	_u.mutation.SetTimesRecommended(v)
	return _u
}

// SetNillableTimesRecommended sets the "times_recommended" field if the given value is not nil.
func (_u *ItemPairFrequencyUpdateOne) SetNillableTimesRecommended(v *int) *ItemPairFrequencyUpdateOne {
	if v != nil {
		_u.SetTimesRecommended(*v)
	}
	return _u
}

// AddTimesRecommended adds value to the "times_recommended" field.
func (_u *ItemPairFrequencyUpdateOne) AddTimesRecommended(v int) *ItemPairFrequencyUpdateOne {
	_u.mutation.AddTimesRecommended(v)
	return _u
}

// SetTimesConverted sets the "times_converted" field.
func (_u *ItemPairFrequencyUpdateOne) SetTimesConverted(v int) *ItemPairFrequencyUpdateOne {
	_u.mutation.ResetTimesConverted()
	_u.mutation.SetTimesConverted(v)
	return _u
}

// SetNillableTimesConverted sets the "times_converted" field if the given value is not nil.
func (_u *ItemPairFrequencyUpdateOne) SetNillableTimesConverted(v *int) *ItemPairFrequencyUpdateOne {
	if v != nil {
		_u.SetTimesConverted(*v)
	}
	return _u
}

// AddTimesConverted adds value to the "times_converted" field.
func (_u *ItemPairFrequencyUpdateOne) AddTimesConverted(v int) *ItemPairFrequencyUpdateOne {
	_u.mutation.AddTimesConverted(v)
	return _u
}

// SetRevenueGenerated sets the "revenue_generated" field.
func (_u *ItemPairFrequencyUpdateOne) SetRevenueGenerated(v float64) *ItemPairFrequencyUpdateOne {
	_u.mutation.ResetRevenueGenerated()
	_u.mutation.SetRevenueGenerated(v)
	return _u
}

// SetNillableRevenueGenerated sets the "revenue_generated" field if the given value is not nil.
func (_u *ItemPairFrequencyUpdateOne) SetNillableRevenueGenerated(v *float64) *ItemPairFrequencyUpdateOne {
	if v != nil {
		_u.SetRevenueGenerated(*v)
	}
	return _u
}

// AddRevenueGenerated adds value to the "revenue_generated" field.
func (_u *ItemPairFrequencyUpdateOne) AddRevenueGenerated(v float64) *ItemPairFrequencyUpdateOne {
	_u.mutation.AddRevenueGenerated(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItemPairFrequencyUpdateOne) SetUpdatedAt(v time.Time) *ItemPairFrequencyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *ItemPairFrequencyUpdateOne) SetBusiness(v *Business) *ItemPairFrequencyUpdateOne {
	return _u.SetBusinessID(v.ID)
}

// Mutation returns the ItemPairFrequencyMutation object of the builder.
func (_u *ItemPairFrequencyUpdateOne) Mutation() *ItemPairFrequencyMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *ItemPairFrequencyUpdateOne) ClearBusiness() *ItemPairFrequencyUpdateOne {
	_u.mutation.ClearBusiness()
	return _u
}

// Where appends a list predicates to the ItemPairFrequencyUpdate builder.
func (_u *ItemPairFrequencyUpdateOne) Where(ps ...predicate.ItemPairFrequency) *ItemPairFrequencyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemPairFrequencyUpdateOne) Select(field string, fields ...string) *ItemPairFrequencyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ItemPairFrequency entity.
func (_u *ItemPairFrequencyUpdateOne) Save(ctx context.Context) (*ItemPairFrequency, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemPairFrequencyUpdateOne) SaveX(ctx context.Context) *ItemPairFrequency {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemPairFrequencyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemPairFrequencyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItemPairFrequencyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := itempairfrequency.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemPairFrequencyUpdateOne) check() error {
	if v, ok := _u.mutation.TimesTogether(); ok {
		if err := itempairfrequency.TimesTogetherValidator(v); err != nil {
			return &ValidationError{Name: "times_together", err: fmt.Errorf(`ent: validator failed for field "ItemPairFrequency.times_together": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ItemPairFrequency.business"`)
	}
	return nil
}

func (_u *ItemPairFrequencyUpdateOne) sqlSave(ctx context.Context) (_node *ItemPairFrequency, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itempairfrequency.Table, itempairfrequency.Columns, sqlgraph.NewFieldSpec(itempairfrequency.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ItemPairFrequency.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itempairfrequency.FieldID)
		for _, f := range fields {
			if !itempairfrequency.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != itempairfrequency.FieldID {
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
	if value, ok := _u.mutation.ItemAID(); ok {
		_spec.SetField(itempairfrequency.FieldItemAID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemAID(); ok {
		_spec.AddField(itempairfrequency.FieldItemAID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemBID(); ok {
		_spec.SetField(itempairfrequency.FieldItemBID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemBID(); ok {
		_spec.AddField(itempairfrequency.FieldItemBID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimesTogether(); ok {
		_spec.SetField(itempairfrequency.FieldTimesTogether, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesTogether(); ok {
		_spec.AddField(itempairfrequency.FieldTimesTogether, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(itempairfrequency.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(itempairfrequency.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimesRecommended(); ok {
		_spec.SetField(itempairfrequency.FieldTimesRecommended, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesRecommended(); ok {
		_spec.AddField(itempairfrequency.FieldTimesRecommended, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimesConverted(); ok {
		_spec.SetField(itempairfrequency.FieldTimesConverted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesConverted(); ok {
		_spec.AddField(itempairfrequency.FieldTimesConverted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RevenueGenerated(); ok {
		_spec.SetField(itempairfrequency.FieldRevenueGenerated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRevenueGenerated(); ok {
		_spec.AddField(itempairfrequency.FieldRevenueGenerated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(itempairfrequency.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BusinessCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   itempairfrequency.BusinessTable,
			Columns: []string{itempairfrequency.BusinessColumn},
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
			Table:   itempairfrequency.BusinessTable,
			Columns: []string{itempairfrequency.BusinessColumn},
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
	_node = &ItemPairFrequency{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itempairfrequency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
