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
	"github.com/menuqr/menuqr/ent/recommendationevent"
)

// RecommendationEventCreate is the builder for creating a RecommendationEvent entity.
type RecommendationEventCreate struct {
	config
	mutation *RecommendationEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBusinessID sets the "business_id" field.
func (_c *RecommendationEventCreate) SetBusinessID(v int) *RecommendationEventCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetSourceItemID sets the "source_item_id" field.
func (_c *RecommendationEventCreate) SetSourceItemID(v int) *RecommendationEventCreate {
	_c.mutation.SetSourceItemID(v)
	return _c
}

// SetNillableSourceItemID sets the "source_item_id" field if the given value is not nil.
func (_c *RecommendationEventCreate) SetNillableSourceItemID(v *int) *RecommendationEventCreate {
	if v != nil {
		_c.SetSourceItemID(*v)
	}
	return _c
}

// SetRecommendedItemID sets the "recommended_item_id" field.
func (_c *RecommendationEventCreate) SetRecommendedItemID(v int) *RecommendationEventCreate {
	_c.mutation.SetRecommendedItemID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *RecommendationEventCreate) SetEventType(v recommendationevent.EventType) *RecommendationEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *RecommendationEventCreate) SetOrderID(v uuid.UUID) *RecommendationEventCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_c *RecommendationEventCreate) SetNillableOrderID(v *uuid.UUID) *RecommendationEventCreate {
	if v != nil {
		_c.SetOrderID(*v)
	}
	return _c
}

// SetRevenue sets the "revenue" field.
func (_c *RecommendationEventCreate) SetRevenue(v float64) *RecommendationEventCreate {
	_c.mutation.SetRevenue(v)
	return _c
}

// SetNillableRevenue sets the "revenue" field if the given value is not nil.
func (_c *RecommendationEventCreate) SetNillableRevenue(v *float64) *RecommendationEventCreate {
	if v != nil {
		_c.SetRevenue(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecommendationEventCreate) SetCreatedAt(v time.Time) *RecommendationEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecommendationEventCreate) SetNillableCreatedAt(v *time.Time) *RecommendationEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetBusiness sets the "business" edge to the Business entity.
func (_c *RecommendationEventCreate) SetBusiness(v *Business) *RecommendationEventCreate {
	return _c.SetBusinessID(v.ID)
}

// Mutation returns the RecommendationEventMutation object of the builder.
func (_c *RecommendationEventCreate) Mutation() *RecommendationEventMutation {
	return _c.mutation
}

// Save creates the RecommendationEvent in the database.
func (_c *RecommendationEventCreate) Save(ctx context.Context) (*RecommendationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecommendationEventCreate) SaveX(ctx context.Context) *RecommendationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecommendationEventCreate) defaults() {
	if _, ok := _c.mutation.Revenue(); !ok {
		v := recommendationevent.DefaultRevenue
		_c.mutation.SetRevenue(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recommendationevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecommendationEventCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "RecommendationEvent.business_id"`)}
	}
	if _, ok := _c.mutation.RecommendedItemID(); !ok {
		return &ValidationError{Name: "recommended_item_id", err: errors.New(`ent: missing required field "RecommendationEvent.recommended_item_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "RecommendationEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := recommendationevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "RecommendationEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Revenue(); !ok {
		return &ValidationError{Name: "revenue", err: errors.New(`ent: missing required field "RecommendationEvent.revenue"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RecommendationEvent.created_at"`)}
	}
	if len(_c.mutation.BusinessIDs()) == 0 {
		return &ValidationError{Name: "business", err: errors.New(`ent: missing required edge "RecommendationEvent.business"`)}
	}
	return nil
}

func (_c *RecommendationEventCreate) sqlSave(ctx context.Context) (*RecommendationEvent, error) {
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

func (_c *RecommendationEventCreate) createSpec() (*RecommendationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RecommendationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recommendationevent.Table, sqlgraph.NewFieldSpec(recommendationevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SourceItemID(); ok {
		_spec.SetField(recommendationevent.FieldSourceItemID, field.TypeInt, value)
		_node.SourceItemID = &value
	}
	if value, ok := _c.mutation.RecommendedItemID(); ok {
		_spec.SetField(recommendationevent.FieldRecommendedItemID, field.TypeInt, value)
		_node.RecommendedItemID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(recommendationevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(recommendationevent.FieldOrderID, field.TypeUUID, value)
		_node.OrderID = &value
	}
	if value, ok := _c.mutation.Revenue(); ok {
		_spec.SetField(recommendationevent.FieldRevenue, field.TypeFloat64, value)
		_node.Revenue = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recommendationevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BusinessIDs(); len(nodes) > 0 {
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
		_node.BusinessID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RecommendationEvent.Create().
//		SetBusinessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecommendationEventUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *RecommendationEventCreate) OnConflict(opts ...sql.ConflictOption) *RecommendationEventUpsertOne {
	_c.conflict = opts
	return &RecommendationEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RecommendationEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RecommendationEventCreate) OnConflictColumns(columns ...string) *RecommendationEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RecommendationEventUpsertOne{
		create: _c,
	}
}

type (
	// RecommendationEventUpsertOne is the builder for "upsert"-ing
	//  one RecommendationEvent node.
	RecommendationEventUpsertOne struct {
		create *RecommendationEventCreate
	}

	// RecommendationEventUpsert is the "OnConflict" setter.
	RecommendationEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetBusinessID sets the "business_id" field.
func (u *RecommendationEventUpsert) SetBusinessID(v int) *RecommendationEventUpsert {
	u.Set(recommendationevent.FieldBusinessID, v)
	return u
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *RecommendationEventUpsert) UpdateBusinessID() *RecommendationEventUpsert {
	u.SetExcluded(recommendationevent.FieldBusinessID)
	return u
}

// SetSourceItemID sets the "source_item_id" field.
func (u *RecommendationEventUpsert) SetSourceItemID(v int) *RecommendationEventUpsert {
	u.Set(recommendationevent.FieldSourceItemID, v)
	return u
}

// UpdateSourceItemID sets the "source_item_id" field to the value that was provided on create.
func (u *RecommendationEventUpsert) UpdateSourceItemID() *RecommendationEventUpsert {
	u.SetExcluded(recommendationevent.FieldSourceItemID)
	return u
}

// AddSourceItemID adds v to the "source_item_id" field.
func (u *RecommendationEventUpsert) AddSourceItemID(v int) *RecommendationEventUpsert {
	u.Add(recommendationevent.FieldSourceItemID, v)
	return u
}

// ClearSourceItemID clears the value of the "source_item_id" field.
func (u *RecommendationEventUpsert) ClearSourceItemID() *RecommendationEventUpsert {
	u.SetNull(recommendationevent.FieldSourceItemID)
	return u
}

// SetRecommendedItemID sets the "recommended_item_id" field.
func (u *RecommendationEventUpsert) SetRecommendedItemID(v int) *RecommendationEventUpsert {
	u.Set(recommendationevent.FieldRecommendedItemID, v)
	return u
}

// UpdateRecommendedItemID sets the "recommended_item_id" field to the value that was provided on create.
func (u *RecommendationEventUpsert) UpdateRecommendedItemID() *RecommendationEventUpsert {
	u.SetExcluded(recommendationevent.FieldRecommendedItemID)
	return u
}

// AddRecommendedItemID adds v to the "recommended_item_id" field.
func (u *RecommendationEventUpsert) AddRecommendedItemID(v int) *RecommendationEventUpsert {
	u.Add(recommendationevent.FieldRecommendedItemID, v)
	return u
}

// SetEventType sets the "event_type" field.
func (u *RecommendationEventUpsert) SetEventType(v recommendationevent.EventType) *RecommendationEventUpsert {
	u.Set(recommendationevent.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *RecommendationEventUpsert) UpdateEventType() *RecommendationEventUpsert {
	u.SetExcluded(recommendationevent.FieldEventType)
	return u
}

// SetOrderID sets the "order_id" field.
func (u *RecommendationEventUpsert) SetOrderID(v uuid.UUID) *RecommendationEventUpsert {
	u.Set(recommendationevent.FieldOrderID, v)
	return u
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *RecommendationEventUpsert) UpdateOrderID() *RecommendationEventUpsert {
	u.SetExcluded(recommendationevent.FieldOrderID)
	return u
}

// ClearOrderID clears the value of the "order_id" field.
func (u *RecommendationEventUpsert) ClearOrderID() *RecommendationEventUpsert {
	u.SetNull(recommendationevent.FieldOrderID)
	return u
}

// SetRevenue sets the "revenue" field.
func (u *RecommendationEventUpsert) SetRevenue(v float64) *RecommendationEventUpsert {
	u.Set(recommendationevent.FieldRevenue, v)
	return u
}

// UpdateRevenue sets the "revenue" field to the value that was provided on create.
func (u *RecommendationEventUpsert) UpdateRevenue() *RecommendationEventUpsert {
	u.SetExcluded(recommendationevent.FieldRevenue)
	return u
}

// AddRevenue adds v to the "revenue" field.
func (u *RecommendationEventUpsert) AddRevenue(v float64) *RecommendationEventUpsert {
	u.Add(recommendationevent.FieldRevenue, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.RecommendationEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RecommendationEventUpsertOne) UpdateNewValues() *RecommendationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(recommendationevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RecommendationEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RecommendationEventUpsertOne) Ignore() *RecommendationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecommendationEventUpsertOne) DoNothing() *RecommendationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecommendationEventCreate.OnConflict
// documentation for more info.
func (u *RecommendationEventUpsertOne) Update(set func(*RecommendationEventUpsert)) *RecommendationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecommendationEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetBusinessID sets the "business_id" field.
func (u *RecommendationEventUpsertOne) SetBusinessID(v int) *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.SetBusinessID(v)
	})
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *RecommendationEventUpsertOne) UpdateBusinessID() *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.UpdateBusinessID()
	})
}

// SetSourceItemID sets the "source_item_id" field.
func (u *RecommendationEventUpsertOne) SetSourceItemID(v int) *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.SetSourceItemID(v)
	})
}

// AddSourceItemID adds v to the "source_item_id" field.
func (u *RecommendationEventUpsertOne) AddSourceItemID(v int) *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.AddSourceItemID(v)
	})
}

// UpdateSourceItemID sets the "source_item_id" field to the value that was provided on create.
func (u *RecommendationEventUpsertOne) UpdateSourceItemID() *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.UpdateSourceItemID()
	})
}

// ClearSourceItemID clears the value of the "source_item_id" field.
func (u *RecommendationEventUpsertOne) ClearSourceItemID() *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.ClearSourceItemID()
	})
}

// SetRecommendedItemID sets the "recommended_item_id" field.
func (u *RecommendationEventUpsertOne) SetRecommendedItemID(v int) *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.SetRecommendedItemID(v)
	})
}

// AddRecommendedItemID adds v to the "recommended_item_id" field.
func (u *RecommendationEventUpsertOne) AddRecommendedItemID(v int) *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.AddRecommendedItemID(v)
	})
}

// UpdateRecommendedItemID sets the "recommended_item_id" field to the value that was provided on create.
func (u *RecommendationEventUpsertOne) UpdateRecommendedItemID() *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.UpdateRecommendedItemID()
	})
}

// SetEventType sets the "event_type" field.
func (u *RecommendationEventUpsertOne) SetEventType(v recommendationevent.EventType) *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *RecommendationEventUpsertOne) UpdateEventType() *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.UpdateEventType()
	})
}

// SetOrderID sets the "order_id" field.
func (u *RecommendationEventUpsertOne) SetOrderID(v uuid.UUID) *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *RecommendationEventUpsertOne) UpdateOrderID() *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.UpdateOrderID()
	})
}

// ClearOrderID clears the value of the "order_id" field.
func (u *RecommendationEventUpsertOne) ClearOrderID() *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.ClearOrderID()
	})
}

// SetRevenue sets the "revenue" field.
func (u *RecommendationEventUpsertOne) SetRevenue(v float64) *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.SetRevenue(v)
	})
}

// AddRevenue adds v to the "revenue" field.
func (u *RecommendationEventUpsertOne) AddRevenue(v float64) *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.AddRevenue(v)
	})
}

// UpdateRevenue sets the "revenue" field to the value that was provided on create.
func (u *RecommendationEventUpsertOne) UpdateRevenue() *RecommendationEventUpsertOne {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.UpdateRevenue()
	})
}

// Exec executes the query.
func (u *RecommendationEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RecommendationEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecommendationEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RecommendationEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RecommendationEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RecommendationEventCreateBulk is the builder for creating many RecommendationEvent entities in bulk.
type RecommendationEventCreateBulk struct {
	config
	err      error
	builders []*RecommendationEventCreate
	conflict []sql.ConflictOption
}

// Save creates the RecommendationEvent entities in the database.
func (_c *RecommendationEventCreateBulk) Save(ctx context.Context) ([]*RecommendationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecommendationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecommendationEventMutation)
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
func (_c *RecommendationEventCreateBulk) SaveX(ctx context.Context) []*RecommendationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RecommendationEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecommendationEventUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *RecommendationEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *RecommendationEventUpsertBulk {
	_c.conflict = opts
	return &RecommendationEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RecommendationEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RecommendationEventCreateBulk) OnConflictColumns(columns ...string) *RecommendationEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RecommendationEventUpsertBulk{
		create: _c,
	}
}

// RecommendationEventUpsertBulk is the builder for "upsert"-ing
// a bulk of RecommendationEvent nodes.
type RecommendationEventUpsertBulk struct {
	create *RecommendationEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RecommendationEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RecommendationEventUpsertBulk) UpdateNewValues() *RecommendationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(recommendationevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RecommendationEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RecommendationEventUpsertBulk) Ignore() *RecommendationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecommendationEventUpsertBulk) DoNothing() *RecommendationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecommendationEventCreateBulk.OnConflict
// documentation for more info.
func (u *RecommendationEventUpsertBulk) Update(set func(*RecommendationEventUpsert)) *RecommendationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecommendationEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetBusinessID sets the "business_id" field.
func (u *RecommendationEventUpsertBulk) SetBusinessID(v int) *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.SetBusinessID(v)
	})
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *RecommendationEventUpsertBulk) UpdateBusinessID() *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.UpdateBusinessID()
	})
}

// SetSourceItemID sets the "source_item_id" field.
func (u *RecommendationEventUpsertBulk) SetSourceItemID(v int) *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.SetSourceItemID(v)
	})
}

// AddSourceItemID adds v to the "source_item_id" field.
func (u *RecommendationEventUpsertBulk) AddSourceItemID(v int) *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.AddSourceItemID(v)
	})
}

// UpdateSourceItemID sets the "source_item_id" field to the value that was provided on create.
func (u *RecommendationEventUpsertBulk) UpdateSourceItemID() *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.UpdateSourceItemID()
	})
}

// ClearSourceItemID clears the value of the "source_item_id" field.
func (u *RecommendationEventUpsertBulk) ClearSourceItemID() *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.ClearSourceItemID()
	})
}

// SetRecommendedItemID sets the "recommended_item_id" field.
func (u *RecommendationEventUpsertBulk) SetRecommendedItemID(v int) *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.SetRecommendedItemID(v)
	})
}

// AddRecommendedItemID adds v to the "recommended_item_id" field.
func (u *RecommendationEventUpsertBulk) AddRecommendedItemID(v int) *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.AddRecommendedItemID(v)
	})
}

// UpdateRecommendedItemID sets the "recommended_item_id" field to the value that was provided on create.
func (u *RecommendationEventUpsertBulk) UpdateRecommendedItemID() *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.UpdateRecommendedItemID()
	})
}

// SetEventType sets the "event_type" field.
func (u *RecommendationEventUpsertBulk) SetEventType(v recommendationevent.EventType) *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *RecommendationEventUpsertBulk) UpdateEventType() *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.UpdateEventType()
	})
}

// SetOrderID sets the "order_id" field.
func (u *RecommendationEventUpsertBulk) SetOrderID(v uuid.UUID) *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *RecommendationEventUpsertBulk) UpdateOrderID() *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.UpdateOrderID()
	})
}

// ClearOrderID clears the value of the "order_id" field.
func (u *RecommendationEventUpsertBulk) ClearOrderID() *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.ClearOrderID()
	})
}

// SetRevenue sets the "revenue" field.
func (u *RecommendationEventUpsertBulk) SetRevenue(v float64) *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.SetRevenue(v)
	})
}

// AddRevenue adds v to the "revenue" field.
func (u *RecommendationEventUpsertBulk) AddRevenue(v float64) *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.AddRevenue(v)
	})
}

// UpdateRevenue sets the "revenue" field to the value that was provided on create.
func (u *RecommendationEventUpsertBulk) UpdateRevenue() *RecommendationEventUpsertBulk {
	return u.Update(func(s *RecommendationEventUpsert) {
		s.UpdateRevenue()
	})
}

// Exec executes the query.
func (u *RecommendationEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RecommendationEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RecommendationEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecommendationEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
