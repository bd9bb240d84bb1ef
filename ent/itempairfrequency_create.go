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
)

// ItemPairFrequencyCreate is the builder for creating a ItemPairFrequency entity.
type ItemPairFrequencyCreate struct {
	config
	mutation *ItemPairFrequencyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBusinessID sets the "business_id" field.
func (_c *ItemPairFrequencyCreate) SetBusinessID(v int) *ItemPairFrequencyCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetItemAID sets the "item_a_id" field.
func (_c *ItemPairFrequencyCreate) SetItemAID(v int) *ItemPairFrequencyCreate {
	_c.mutation.SetItemAID(v)
	return _c
}

// SetItemBID sets the "item_b_id" field.
func (_c *ItemPairFrequencyCreate) SetItemBID(v int) *ItemPairFrequencyCreate {
	_c.mutation.SetItemBID(v)
	return _c
}

// SetTimesTogether sets the "times_together" field.
func (_c *ItemPairFrequencyCreate) SetTimesTogether(v int) *ItemPairFrequencyCreate {
	_c.mutation.SetTimesTogether(v)
	return _c
}

// SetNillableTimesTogether sets the "times_together" field if the given value is not nil.
func (_c *ItemPairFrequencyCreate) SetNillableTimesTogether(v *int) *ItemPairFrequencyCreate {
	if v != nil {
		_c.SetTimesTogether(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ItemPairFrequencyCreate) SetConfidence(v float64) *ItemPairFrequencyCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ItemPairFrequencyCreate) SetNillableConfidence(v *float64) *ItemPairFrequencyCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetTimesRecommended sets the "times_recommended" field.
func (_c *ItemPairFrequencyCreate) SetTimesRecommended(v int) *ItemPairFrequencyCreate {
	_c.mutation.SetTimesRecommended(v)
	return _c
}

// SetNillableTimesRecommended sets the "times_recommended" field if the given value is not nil.
func (_c *ItemPairFrequencyCreate) SetNillableTimesRecommended(v *int) *ItemPairFrequencyCreate {
	if v != nil {
		_c.SetTimesRecommended(*v)
	}
	return _c
}

// SetTimesConverted sets the "times_converted" field.
func (_c *ItemPairFrequencyCreate) SetTimesConverted(v int) *ItemPairFrequencyCreate {
	_c.mutation.SetTimesConverted(v)
	return _c
}

// SetNillableTimesConverted sets the "times_converted" field if the given value is not nil.
func (_c *ItemPairFrequencyCreate) SetNillableTimesConverted(v *int) *ItemPairFrequencyCreate {
	if v != nil {
		_c.SetTimesConverted(*v)
	}
	return _c
}

// SetRevenueGenerated sets the "revenue_generated" field.
func (_c *ItemPairFrequencyCreate) SetRevenueGenerated(v float64) *ItemPairFrequencyCreate {
	_c.mutation.SetRevenueGenerated(v)
	return _c
}

// SetNillableRevenueGenerated sets the "revenue_generated" field if the given value is not nil.
func (_c *ItemPairFrequencyCreate) SetNillableRevenueGenerated(v *float64) *ItemPairFrequencyCreate {
	if v != nil {
		_c.SetRevenueGenerated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ItemPairFrequencyCreate) SetCreatedAt(v time.Time) *ItemPairFrequencyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ItemPairFrequencyCreate) SetNillableCreatedAt(v *time.Time) *ItemPairFrequencyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ItemPairFrequencyCreate) SetUpdatedAt(v time.Time) *ItemPairFrequencyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ItemPairFrequencyCreate) SetNillableUpdatedAt(v *time.Time) *ItemPairFrequencyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBusiness sets the "business" edge to the Business entity.
func (_c *ItemPairFrequencyCreate) SetBusiness(v *Business) *ItemPairFrequencyCreate {
	return _c.SetBusinessID(v.ID)
}

// Mutation returns the ItemPairFrequencyMutation object of the builder.
func (_c *ItemPairFrequencyCreate) Mutation() *ItemPairFrequencyMutation {
	return _c.mutation
}

// Save creates the ItemPairFrequency in the database.
func (_c *ItemPairFrequencyCreate) Save(ctx context.Context) (*ItemPairFrequency, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemPairFrequencyCreate) SaveX(ctx context.Context) *ItemPairFrequency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemPairFrequencyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemPairFrequencyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemPairFrequencyCreate) defaults() {
	if _, ok := _c.mutation.TimesTogether(); !ok {
		v := itempairfrequency.DefaultTimesTogether
		_c.mutation.SetTimesTogether(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := itempairfrequency.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.TimesRecommended(); !ok {
		v := itempairfrequency.DefaultTimesRecommended
		_c.mutation.SetTimesRecommended(v)
	}
	if _, ok := _c.mutation.TimesConverted(); !ok {
		v := itempairfrequency.DefaultTimesConverted
		_c.mutation.SetTimesConverted(v)
	}
	if _, ok := _c.mutation.RevenueGenerated(); !ok {
		v := itempairfrequency.DefaultRevenueGenerated
		_c.mutation.SetRevenueGenerated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := itempairfrequency.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := itempairfrequency.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemPairFrequencyCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "ItemPairFrequency.business_id"`)}
	}
	if _, ok := _c.mutation.ItemAID(); !ok {
		return &ValidationError{Name: "item_a_id", err: errors.New(`ent: missing required field "ItemPairFrequency.item_a_id"`)}
	}
	if _, ok := _c.mutation.ItemBID(); !ok {
		return &ValidationError{Name: "item_b_id", err: errors.New(`ent: missing required field "ItemPairFrequency.item_b_id"`)}
	}
	if _, ok := _c.mutation.TimesTogether(); !ok {
		return &ValidationError{Name: "times_together", err: errors.New(`ent: missing required field "ItemPairFrequency.times_together"`)}
	}
	if v, ok := _c.mutation.TimesTogether(); ok {
		if err := itempairfrequency.TimesTogetherValidator(v); err != nil {
			return &ValidationError{Name: "times_together", err: fmt.Errorf(`ent: validator failed for field "ItemPairFrequency.times_together": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ItemPairFrequency.confidence"`)}
	}
	if _, ok := _c.mutation.TimesRecommended(); !ok {
		return &ValidationError{Name: "times_recommended", err: errors.New(`ent: missing required field "ItemPairFrequency.times_recommended"`)}
	}
	if _, ok := _c.mutation.TimesConverted(); !ok {
		return &ValidationError{Name: "times_converted", err: errors.New(`ent: missing required field "ItemPairFrequency.times_converted"`)}
	}
	if _, ok := _c.mutation.RevenueGenerated(); !ok {
		return &ValidationError{Name: "revenue_generated", err: errors.New(`ent: missing required field "ItemPairFrequency.revenue_generated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ItemPairFrequency.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ItemPairFrequency.updated_at"`)}
	}
	if len(_c.mutation.BusinessIDs()) == 0 {
		return &ValidationError{Name: "business", err: errors.New(`ent: missing required edge "ItemPairFrequency.business"`)}
	}
	return nil
}

func (_c *ItemPairFrequencyCreate) sqlSave(ctx context.Context) (*ItemPairFrequency, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ItemPairFrequencyCreate) createSpec() (*ItemPairFrequency, *sqlgraph.CreateSpec) {
	var (
		_node = &ItemPairFrequency{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(itempairfrequency.Table, sqlgraph.NewFieldSpec(itempairfrequency.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ItemAID(); ok {
		_spec.SetField(itempairfrequency.FieldItemAID, field.TypeInt, value)
		_node.ItemAID = value
	}
	if value, ok := _c.mutation.ItemBID(); ok {
		_spec.SetField(itempairfrequency.FieldItemBID, field.TypeInt, value)
		_node.ItemBID = value
	}
	if value, ok := _c.mutation.TimesTogether(); ok {
		_spec.SetField(itempairfrequency.FieldTimesTogether, field.TypeInt, value)
		_node.TimesTogether = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(itempairfrequency.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.TimesRecommended(); ok {
		_spec.SetField(itempairfrequency.FieldTimesRecommended, field.TypeInt, value)
		_node.TimesRecommended = value
	}
	if value, ok := _c.mutation.TimesConverted(); ok {
		_spec.SetField(itempairfrequency.FieldTimesConverted, field.TypeInt, value)
		_node.TimesConverted = value
	}
	if value, ok := _c.mutation.RevenueGenerated(); ok {
		_spec.SetField(itempairfrequency.FieldRevenueGenerated, field.TypeFloat64, value)
		_node.RevenueGenerated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(itempairfrequency.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(itempairfrequency.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BusinessIDs(); len(nodes) > 0 {
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
		_node.BusinessID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ItemPairFrequency.Create().
//		SetBusinessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ItemPairFrequencyUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *ItemPairFrequencyCreate) OnConflict(opts ...sql.ConflictOption) *ItemPairFrequencyUpsertOne {
	_c.conflict = opts
	return &ItemPairFrequencyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ItemPairFrequency.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ItemPairFrequencyCreate) OnConflictColumns(columns ...string) *ItemPairFrequencyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ItemPairFrequencyUpsertOne{
		create: _c,
	}
}

type (
	// ItemPairFrequencyUpsertOne is the builder for "upsert"-ing
	//  one ItemPairFrequency node.
	ItemPairFrequencyUpsertOne struct {
		create *ItemPairFrequencyCreate
	}

	// ItemPairFrequencyUpsert is the "OnConflict" setter.
	ItemPairFrequencyUpsert struct {
		*sql.UpdateSet
	}
)

// SetBusinessID sets the "business_id" field.
func (u *ItemPairFrequencyUpsert) SetBusinessID(v int) *ItemPairFrequencyUpsert {
	u.Set(itempairfrequency.FieldBusinessID, v)
	return u
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsert) UpdateBusinessID() *ItemPairFrequencyUpsert {
	u.SetExcluded(itempairfrequency.FieldBusinessID)
	return u
}

// SetItemAID sets the "item_a_id" field.
func (u *ItemPairFrequencyUpsert) SetItemAID(v int) *ItemPairFrequencyUpsert {
	u.Set(itempairfrequency.FieldItemAID, v)
	return u
}

// UpdateItemAID sets the "item_a_id" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsert) UpdateItemAID() *ItemPairFrequencyUpsert {
	u.SetExcluded(itempairfrequency.FieldItemAID)
	return u
}

// AddItemAID adds v to the "item_a_id" field.
func (u *ItemPairFrequencyUpsert) AddItemAID(v int) *ItemPairFrequencyUpsert {
	u.Add(itempairfrequency.FieldItemAID, v)
	return u
}

// SetItemBID sets the "item_b_id" field.
func (u *ItemPairFrequencyUpsert) SetItemBID(v int) *ItemPairFrequencyUpsert {
	u.Set(itempairfrequency.FieldItemBID, v)
	return u
}

// UpdateItemBID sets the "item_b_id" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsert) UpdateItemBID() *ItemPairFrequencyUpsert {
	u.SetExcluded(itempairfrequency.FieldItemBID)
	return u
}

// AddItemBID adds v to the "item_b_id" field.
func (u *ItemPairFrequencyUpsert) AddItemBID(v int) *ItemPairFrequencyUpsert {
	u.Add(itempairfrequency.FieldItemBID, v)
	return u
}

// SetTimesTogether sets the "times_together" field.
func (u *ItemPairFrequencyUpsert) SetTimesTogether(v int) *ItemPairFrequencyUpsert {
	u.Set(itempairfrequency.FieldTimesTogether, v)
	return u
}

// UpdateTimesTogether sets the "times_together" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsert) UpdateTimesTogether() *ItemPairFrequencyUpsert {
	u.SetExcluded(itempairfrequency.FieldTimesTogether)
	return u
}

// AddTimesTogether adds v to the "times_together" field.
func (u *ItemPairFrequencyUpsert) AddTimesTogether(v int) *ItemPairFrequencyUpsert {
	u.Add(itempairfrequency.FieldTimesTogether, v)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *ItemPairFrequencyUpsert) SetConfidence(v float64) *ItemPairFrequencyUpsert {
	u.Set(itempairfrequency.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsert) UpdateConfidence() *ItemPairFrequencyUpsert {
	u.SetExcluded(itempairfrequency.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *ItemPairFrequencyUpsert) AddConfidence(v float64) *ItemPairFrequencyUpsert {
	u.Add(itempairfrequency.FieldConfidence, v)
	return u
}

// SetTimesRecommended sets the "times_recommended" field.
func (u *ItemPairFrequencyUpsert) SetTimesRecommended(v int) *ItemPairFrequencyUpsert {
	u.Set(itempairfrequency.FieldTimesRecommended, v)
	return u
}

// UpdateTimesRecommended sets the "times_recommended" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsert) UpdateTimesRecommended() *ItemPairFrequencyUpsert {
	u.SetExcluded(itempairfrequency.FieldTimesRecommended)
	return u
}

// AddTimesRecommended adds v to the "times_recommended" field.
func (u *ItemPairFrequencyUpsert) AddTimesRecommended(v int) *ItemPairFrequencyUpsert {
	u.Add(itempairfrequency.FieldTimesRecommended, v)
	return u
}

// SetTimesConverted sets the "times_converted" field.
func (u *ItemPairFrequencyUpsert) SetTimesConverted(v int) *ItemPairFrequencyUpsert {
	u.Set(itempairfrequency.FieldTimesConverted, v)
	return u
}

// UpdateTimesConverted sets the "times_converted" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsert) UpdateTimesConverted() *ItemPairFrequencyUpsert {
	u.SetExcluded(itempairfrequency.FieldTimesConverted)
	return u
}

// AddTimesConverted adds v to the "times_converted" field.
func (u *ItemPairFrequencyUpsert) AddTimesConverted(v int) *ItemPairFrequencyUpsert {
	u.Add(itempairfrequency.FieldTimesConverted, v)
	return u
}

// SetRevenueGenerated sets the "revenue_generated" field.
func (u *ItemPairFrequencyUpsert) SetRevenueGenerated(v float64) *ItemPairFrequencyUpsert {
	u.Set(itempairfrequency.FieldRevenueGenerated, v)
	return u
}

// UpdateRevenueGenerated sets the "revenue_generated" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsert) UpdateRevenueGenerated() *ItemPairFrequencyUpsert {
	u.SetExcluded(itempairfrequency.FieldRevenueGenerated)
	return u
}

// AddRevenueGenerated adds v to the "revenue_generated" field.
func (u *ItemPairFrequencyUpsert) AddRevenueGenerated(v float64) *ItemPairFrequencyUpsert {
	u.Add(itempairfrequency.FieldRevenueGenerated, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ItemPairFrequencyUpsert) SetUpdatedAt(v time.Time) *ItemPairFrequencyUpsert {
	u.Set(itempairfrequency.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsert) UpdateUpdatedAt() *ItemPairFrequencyUpsert {
	u.SetExcluded(itempairfrequency.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ItemPairFrequency.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ItemPairFrequencyUpsertOne) UpdateNewValues() *ItemPairFrequencyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(itempairfrequency.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ItemPairFrequency.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ItemPairFrequencyUpsertOne) Ignore() *ItemPairFrequencyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ItemPairFrequencyUpsertOne) DoNothing() *ItemPairFrequencyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ItemPairFrequencyCreate.OnConflict
// documentation for more info.
func (u *ItemPairFrequencyUpsertOne) Update(set func(*ItemPairFrequencyUpsert)) *ItemPairFrequencyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ItemPairFrequencyUpsert{UpdateSet: update})
	}))
	return u
}

// SetBusinessID sets the "business_id" field.
func (u *ItemPairFrequencyUpsertOne) SetBusinessID(v int) *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetBusinessID(v)
	})
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertOne) UpdateBusinessID() *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateBusinessID()
	})
}

// SetItemAID sets the "item_a_id" field.
func (u *ItemPairFrequencyUpsertOne) SetItemAID(v int) *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetItemAID(v)
	})
}

// AddItemAID adds v to the "item_a_id" field.
func (u *ItemPairFrequencyUpsertOne) AddItemAID(v int) *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.AddItemAID(v)
	})
}

// UpdateItemAID sets the "item_a_id" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertOne) UpdateItemAID() *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateItemAID()
	})
}

// SetItemBID sets the "item_b_id" field.
func (u *ItemPairFrequencyUpsertOne) SetItemBID(v int) *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetItemBID(v)
	})
}

// AddItemBID adds v to the "item_b_id" field.
func (u *ItemPairFrequencyUpsertOne) AddItemBID(v int) *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.AddItemBID(v)
	})
}

// UpdateItemBID sets the "item_b_id" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertOne) UpdateItemBID() *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateItemBID()
	})
}

// SetTimesTogether sets the "times_together" field.
func (u *ItemPairFrequencyUpsertOne) SetTimesTogether(v int) *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetTimesTogether(v)
	})
}

// AddTimesTogether adds v to the "times_together" field.
func (u *ItemPairFrequencyUpsertOne) AddTimesTogether(v int) *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.AddTimesTogether(v)
	})
}

// UpdateTimesTogether sets the "times_together" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertOne) UpdateTimesTogether() *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateTimesTogether()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ItemPairFrequencyUpsertOne) SetConfidence(v float64) *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ItemPairFrequencyUpsertOne) AddConfidence(v float64) *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertOne) UpdateConfidence() *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateConfidence()
	})
}

// SetTimesRecommended sets the "times_recommended" field.
func (u *ItemPairFrequencyUpsertOne) SetTimesRecommended(v int) *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetTimesRecommended(v)
	})
}

// AddTimesRecommended adds v to the "times_recommended" field.
func (u *ItemPairFrequencyUpsertOne) AddTimesRecommended(v int) *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.AddTimesRecommended(v)
	})
}

// UpdateTimesRecommended sets the "times_recommended" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertOne) UpdateTimesRecommended() *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateTimesRecommended()
	})
}

// SetTimesConverted sets the "times_converted" field.
func (u *ItemPairFrequencyUpsertOne) SetTimesConverted(v int) *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetTimesConverted(v)
	})
}

// AddTimesConverted adds v to the "times_converted" field.
func (u *ItemPairFrequencyUpsertOne) AddTimesConverted(v int) *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.AddTimesConverted(v)
	})
}

// UpdateTimesConverted sets the "times_converted" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertOne) UpdateTimesConverted() *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateTimesConverted()
	})
}

// SetRevenueGenerated sets the "revenue_generated" field.
func (u *ItemPairFrequencyUpsertOne) SetRevenueGenerated(v float64) *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetRevenueGenerated(v)
	})
}

// AddRevenueGenerated adds v to the "revenue_generated" field.
func (u *ItemPairFrequencyUpsertOne) AddRevenueGenerated(v float64) *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.AddRevenueGenerated(v)
	})
}

// UpdateRevenueGenerated sets the "revenue_generated" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertOne) UpdateRevenueGenerated() *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateRevenueGenerated()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ItemPairFrequencyUpsertOne) SetUpdatedAt(v time.Time) *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertOne) UpdateUpdatedAt() *ItemPairFrequencyUpsertOne {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ItemPairFrequencyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ItemPairFrequencyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ItemPairFrequencyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ItemPairFrequencyUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ItemPairFrequencyUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ItemPairFrequencyCreateBulk is the builder for creating many ItemPairFrequency entities in bulk.
type ItemPairFrequencyCreateBulk struct {
	config
	err      error
	builders []*ItemPairFrequencyCreate
	conflict []sql.ConflictOption
}

// Save creates the ItemPairFrequency entities in the database.
func (_c *ItemPairFrequencyCreateBulk) Save(ctx context.Context) ([]*ItemPairFrequency, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ItemPairFrequency, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemPairFrequencyMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ItemPairFrequencyCreateBulk) SaveX(ctx context.Context) []*ItemPairFrequency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemPairFrequencyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemPairFrequencyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ItemPairFrequency.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ItemPairFrequencyUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *ItemPairFrequencyCreateBulk) OnConflict(opts ...sql.ConflictOption) *ItemPairFrequencyUpsertBulk {
	_c.conflict = opts
	return &ItemPairFrequencyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ItemPairFrequency.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ItemPairFrequencyCreateBulk) OnConflictColumns(columns ...string) *ItemPairFrequencyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ItemPairFrequencyUpsertBulk{
		create: _c,
	}
}

// ItemPairFrequencyUpsertBulk is the builder for "upsert"-ing
// a bulk of ItemPairFrequency nodes.
type ItemPairFrequencyUpsertBulk struct {
	create *ItemPairFrequencyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ItemPairFrequency.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ItemPairFrequencyUpsertBulk) UpdateNewValues() *ItemPairFrequencyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(itempairfrequency.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ItemPairFrequency.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ItemPairFrequencyUpsertBulk) Ignore() *ItemPairFrequencyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ItemPairFrequencyUpsertBulk) DoNothing() *ItemPairFrequencyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ItemPairFrequencyCreateBulk.OnConflict
// documentation for more info.
func (u *ItemPairFrequencyUpsertBulk) Update(set func(*ItemPairFrequencyUpsert)) *ItemPairFrequencyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ItemPairFrequencyUpsert{UpdateSet: update})
	}))
	return u
}

// SetBusinessID sets the "business_id" field.
func (u *ItemPairFrequencyUpsertBulk) SetBusinessID(v int) *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetBusinessID(v)
	})
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertBulk) UpdateBusinessID() *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateBusinessID()
	})
}

// SetItemAID sets the "item_a_id" field.
func (u *ItemPairFrequencyUpsertBulk) SetItemAID(v int) *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetItemAID(v)
	})
}

// AddItemAID adds v to the "item_a_id" field.
func (u *ItemPairFrequencyUpsertBulk) AddItemAID(v int) *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.AddItemAID(v)
	})
}

// UpdateItemAID sets the "item_a_id" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertBulk) UpdateItemAID() *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateItemAID()
	})
}

// SetItemBID sets the "item_b_id" field.
func (u *ItemPairFrequencyUpsertBulk) SetItemBID(v int) *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetItemBID(v)
	})
}

// AddItemBID adds v to the "item_b_id" field.
func (u *ItemPairFrequencyUpsertBulk) AddItemBID(v int) *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.AddItemBID(v)
	})
}

// UpdateItemBID sets the "item_b_id" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertBulk) UpdateItemBID() *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateItemBID()
	})
}

// SetTimesTogether sets the "times_together" field.
func (u *ItemPairFrequencyUpsertBulk) SetTimesTogether(v int) *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetTimesTogether(v)
	})
}

// AddTimesTogether adds v to the "times_together" field.
func (u *ItemPairFrequencyUpsertBulk) AddTimesTogether(v int) *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.AddTimesTogether(v)
	})
}

// UpdateTimesTogether sets the "times_together" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertBulk) UpdateTimesTogether() *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateTimesTogether()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ItemPairFrequencyUpsertBulk) SetConfidence(v float64) *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ItemPairFrequencyUpsertBulk) AddConfidence(v float64) *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertBulk) UpdateConfidence() *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateConfidence()
	})
}

// SetTimesRecommended sets the "times_recommended" field.
func (u *ItemPairFrequencyUpsertBulk) SetTimesRecommended(v int) *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetTimesRecommended(v)
	})
}

// AddTimesRecommended adds v to the "times_recommended" field.
func (u *ItemPairFrequencyUpsertBulk) AddTimesRecommended(v int) *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.AddTimesRecommended(v)
	})
}

// UpdateTimesRecommended sets the "times_recommended" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertBulk) UpdateTimesRecommended() *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateTimesRecommended()
	})
}

// SetTimesConverted sets the "times_converted" field.
func (u *ItemPairFrequencyUpsertBulk) SetTimesConverted(v int) *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetTimesConverted(v)
	})
}

// AddTimesConverted adds v to the "times_converted" field.
func (u *ItemPairFrequencyUpsertBulk) AddTimesConverted(v int) *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.AddTimesConverted(v)
	})
}

// UpdateTimesConverted sets the "times_converted" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertBulk) UpdateTimesConverted() *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateTimesConverted()
	})
}

// SetRevenueGenerated sets the "revenue_generated" field.
func (u *ItemPairFrequencyUpsertBulk) SetRevenueGenerated(v float64) *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetRevenueGenerated(v)
	})
}

// AddRevenueGenerated adds v to the "revenue_generated" field.
func (u *ItemPairFrequencyUpsertBulk) AddRevenueGenerated(v float64) *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.AddRevenueGenerated(v)
	})
}

// UpdateRevenueGenerated sets the "revenue_generated" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertBulk) UpdateRevenueGenerated() *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateRevenueGenerated()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ItemPairFrequencyUpsertBulk) SetUpdatedAt(v time.Time) *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ItemPairFrequencyUpsertBulk) UpdateUpdatedAt() *ItemPairFrequencyUpsertBulk {
	return u.Update(func(s *ItemPairFrequencyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ItemPairFrequencyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ItemPairFrequencyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ItemPairFrequencyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ItemPairFrequencyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
