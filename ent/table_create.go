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
	"github.com/menuqr/menuqr/ent/table"
	"github.com/menuqr/menuqr/ent/waiteralert"
)

// TableCreate is the builder for creating a Table entity.
type TableCreate struct {
	config
	mutation *TableMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBusinessID sets the "business_id" field.
func (_c *TableCreate) SetBusinessID(v int) *TableCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetTableNumber sets the "table_number" field.
func (_c *TableCreate) SetTableNumber(v string) *TableCreate {
	_c.mutation.SetTableNumber(v)
	return _c
}

// SetCapacity sets the "capacity" field.
func (_c *TableCreate) SetCapacity(v int) *TableCreate {
	_c.mutation.SetCapacity(v)
	return _c
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_c *TableCreate) SetNillableCapacity(v *int) *TableCreate {
	if v != nil {
		_c.SetCapacity(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TableCreate) SetStatus(v table.Status) *TableCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TableCreate) SetNillableStatus(v *table.Status) *TableCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TableCreate) SetCreatedAt(v time.Time) *TableCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TableCreate) SetNillableCreatedAt(v *time.Time) *TableCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TableCreate) SetUpdatedAt(v time.Time) *TableCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TableCreate) SetNillableUpdatedAt(v *time.Time) *TableCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBusiness sets the "business" edge to the Business entity.
func (_c *TableCreate) SetBusiness(v *Business) *TableCreate {
	return _c.SetBusinessID(v.ID)
}

// AddOrderIDs adds the "orders" edge to the Order entity by IDs.
func (_c *TableCreate) AddOrderIDs(ids ...uuid.UUID) *TableCreate {
	_c.mutation.AddOrderIDs(ids...)
	return _c
}

// AddOrders adds the "orders" edges to the Order entity.
func (_c *TableCreate) AddOrders(v ...*Order) *TableCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOrderIDs(ids...)
}

// AddWaiterAlertIDs adds the "waiter_alerts" edge to the WaiterAlert entity by IDs.
func (_c *TableCreate) AddWaiterAlertIDs(ids ...int) *TableCreate {
	_c.mutation.AddWaiterAlertIDs(ids...)
	return _c
}

// AddWaiterAlerts adds the "waiter_alerts" edges to the WaiterAlert entity.
func (_c *TableCreate) AddWaiterAlerts(v ...*WaiterAlert) *TableCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWaiterAlertIDs(ids...)
}

// Mutation returns the TableMutation object of the builder.
func (_c *TableCreate) Mutation() *TableMutation {
	return _c.mutation
}

// Save creates the Table in the database.
func (_c *TableCreate) Save(ctx context.Context) (*Table, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TableCreate) SaveX(ctx context.Context) *Table {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TableCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TableCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TableCreate) defaults() {
	if _, ok := _c.mutation.Capacity(); !ok {
		v := table.DefaultCapacity
		_c.mutation.SetCapacity(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := table.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := table.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := table.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TableCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "Table.business_id"`)}
	}
	if _, ok := _c.mutation.TableNumber(); !ok {
		return &ValidationError{Name: "table_number", err: errors.New(`ent: missing required field "Table.table_number"`)}
	}
	if v, ok := _c.mutation.TableNumber(); ok {
		if err := table.TableNumberValidator(v); err != nil {
			return &ValidationError{Name: "table_number", err: fmt.Errorf(`ent: validator failed for field "Table.table_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Capacity(); !ok {
		return &ValidationError{Name: "capacity", err: errors.New(`ent: missing required field "Table.capacity"`)}
	}
	if v, ok := _c.mutation.Capacity(); ok {
		if err := table.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`ent: validator failed for field "Table.capacity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Table.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := table.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Table.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Table.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Table.updated_at"`)}
	}
	if len(_c.mutation.BusinessIDs()) == 0 {
		return &ValidationError{Name: "business", err: errors.New(`ent: missing required edge "Table.business"`)}
	}
	return nil
}

func (_c *TableCreate) sqlSave(ctx context.Context) (*Table, error) {
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

func (_c *TableCreate) createSpec() (*Table, *sqlgraph.CreateSpec) {
	var (
		_node = &Table{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(table.Table, sqlgraph.NewFieldSpec(table.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TableNumber(); ok {
		_spec.SetField(table.FieldTableNumber, field.TypeString, value)
		_node.TableNumber = value
	}
	if value, ok := _c.mutation.Capacity(); ok {
		_spec.SetField(table.FieldCapacity, field.TypeInt, value)
		_node.Capacity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(table.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(table.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(table.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BusinessIDs(); len(nodes) > 0 {
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
		_node.BusinessID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OrdersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WaiterAlertsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Table.Create().
//		SetBusinessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TableUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *TableCreate) OnConflict(opts ...sql.ConflictOption) *TableUpsertOne {
	_c.conflict = opts
	return &TableUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Table.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TableCreate) OnConflictColumns(columns ...string) *TableUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TableUpsertOne{
		create: _c,
	}
}

type (
	// TableUpsertOne is the builder for "upsert"-ing
	//  one Table node.
	TableUpsertOne struct {
		create *TableCreate
	}

	// TableUpsert is the "OnConflict" setter.
	TableUpsert struct {
		*sql.UpdateSet
	}
)

// SetBusinessID sets the "business_id" field.
func (u *TableUpsert) SetBusinessID(v int) *TableUpsert {
	u.Set(table.FieldBusinessID, v)
	return u
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *TableUpsert) UpdateBusinessID() *TableUpsert {
	u.SetExcluded(table.FieldBusinessID)
	return u
}

// SetTableNumber sets the "table_number" field.
func (u *TableUpsert) SetTableNumber(v string) *TableUpsert {
	u.Set(table.FieldTableNumber, v)
	return u
}

// UpdateTableNumber sets the "table_number" field to the value that was provided on create.
func (u *TableUpsert) UpdateTableNumber() *TableUpsert {
	u.SetExcluded(table.FieldTableNumber)
	return u
}

// SetCapacity sets the "capacity" field.
func (u *TableUpsert) SetCapacity(v int) *TableUpsert {
	u.Set(table.FieldCapacity, v)
	return u
}

// UpdateCapacity sets the "capacity" field to the value that was provided on create.
func (u *TableUpsert) UpdateCapacity() *TableUpsert {
	u.SetExcluded(table.FieldCapacity)
	return u
}

// AddCapacity adds v to the "capacity" field.
func (u *TableUpsert) AddCapacity(v int) *TableUpsert {
	u.Add(table.FieldCapacity, v)
	return u
}

// SetStatus sets the "status" field.
func (u *TableUpsert) SetStatus(v table.Status) *TableUpsert {
	u.Set(table.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TableUpsert) UpdateStatus() *TableUpsert {
	u.SetExcluded(table.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TableUpsert) SetUpdatedAt(v time.Time) *TableUpsert {
	u.Set(table.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TableUpsert) UpdateUpdatedAt() *TableUpsert {
	u.SetExcluded(table.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Table.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TableUpsertOne) UpdateNewValues() *TableUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(table.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Table.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TableUpsertOne) Ignore() *TableUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TableUpsertOne) DoNothing() *TableUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TableCreate.OnConflict
// documentation for more info.
func (u *TableUpsertOne) Update(set func(*TableUpsert)) *TableUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TableUpsert{UpdateSet: update})
	}))
	return u
}

// SetBusinessID sets the "business_id" field.
func (u *TableUpsertOne) SetBusinessID(v int) *TableUpsertOne {
	return u.Update(func(s *TableUpsert) {
		s.SetBusinessID(v)
	})
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *TableUpsertOne) UpdateBusinessID() *TableUpsertOne {
	return u.Update(func(s *TableUpsert) {
		s.UpdateBusinessID()
	})
}

// SetTableNumber sets the "table_number" field.
func (u *TableUpsertOne) SetTableNumber(v string) *TableUpsertOne {
	return u.Update(func(s *TableUpsert) {
		s.SetTableNumber(v)
	})
}

// UpdateTableNumber sets the "table_number" field to the value that was provided on create.
func (u *TableUpsertOne) UpdateTableNumber() *TableUpsertOne {
	return u.Update(func(s *TableUpsert) {
		s.UpdateTableNumber()
	})
}

// SetCapacity sets the "capacity" field.
func (u *TableUpsertOne) SetCapacity(v int) *TableUpsertOne {
	return u.Update(func(s *TableUpsert) {
		s.SetCapacity(v)
	})
}

// AddCapacity adds v to the "capacity" field.
func (u *TableUpsertOne) AddCapacity(v int) *TableUpsertOne {
	return u.Update(func(s *TableUpsert) {
		s.AddCapacity(v)
	})
}

// UpdateCapacity sets the "capacity" field to the value that was provided on create.
func (u *TableUpsertOne) UpdateCapacity() *TableUpsertOne {
	return u.Update(func(s *TableUpsert) {
		s.UpdateCapacity()
	})
}

// SetStatus sets the "status" field.
func (u *TableUpsertOne) SetStatus(v table.Status) *TableUpsertOne {
	return u.Update(func(s *TableUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TableUpsertOne) UpdateStatus() *TableUpsertOne {
	return u.Update(func(s *TableUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TableUpsertOne) SetUpdatedAt(v time.Time) *TableUpsertOne {
	return u.Update(func(s *TableUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TableUpsertOne) UpdateUpdatedAt() *TableUpsertOne {
	return u.Update(func(s *TableUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TableUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TableCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TableUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TableUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TableUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TableCreateBulk is the builder for creating many Table entities in bulk.
type TableCreateBulk struct {
	config
	err      error
	builders []*TableCreate
	conflict []sql.ConflictOption
}

// Save creates the Table entities in the database.
func (_c *TableCreateBulk) Save(ctx context.Context) ([]*Table, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Table, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TableMutation)
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
func (_c *TableCreateBulk) SaveX(ctx context.Context) []*Table {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TableCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TableCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Table.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TableUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *TableCreateBulk) OnConflict(opts ...sql.ConflictOption) *TableUpsertBulk {
	_c.conflict = opts
	return &TableUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Table.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TableCreateBulk) OnConflictColumns(columns ...string) *TableUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TableUpsertBulk{
		create: _c,
	}
}

// TableUpsertBulk is the builder for "upsert"-ing
// a bulk of Table nodes.
type TableUpsertBulk struct {
	create *TableCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Table.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TableUpsertBulk) UpdateNewValues() *TableUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(table.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Table.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TableUpsertBulk) Ignore() *TableUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TableUpsertBulk) DoNothing() *TableUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TableCreateBulk.OnConflict
// documentation for more info.
func (u *TableUpsertBulk) Update(set func(*TableUpsert)) *TableUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TableUpsert{UpdateSet: update})
	}))
	return u
}

// SetBusinessID sets the "business_id" field.
func (u *TableUpsertBulk) SetBusinessID(v int) *TableUpsertBulk {
	return u.Update(func(s *TableUpsert) {
		s.SetBusinessID(v)
	})
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *TableUpsertBulk) UpdateBusinessID() *TableUpsertBulk {
	return u.Update(func(s *TableUpsert) {
		s.UpdateBusinessID()
	})
}

// SetTableNumber sets the "table_number" field.
func (u *TableUpsertBulk) SetTableNumber(v string) *TableUpsertBulk {
	return u.Update(func(s *TableUpsert) {
		s.SetTableNumber(v)
	})
}

// UpdateTableNumber sets the "table_number" field to the value that was provided on create.
func (u *TableUpsertBulk) UpdateTableNumber() *TableUpsertBulk {
	return u.Update(func(s *TableUpsert) {
		s.UpdateTableNumber()
	})
}

// SetCapacity sets the "capacity" field.
func (u *TableUpsertBulk) SetCapacity(v int) *TableUpsertBulk {
	return u.Update(func(s *TableUpsert) {
		s.SetCapacity(v)
	})
}

// AddCapacity adds v to the "capacity" field.
func (u *TableUpsertBulk) AddCapacity(v int) *TableUpsertBulk {
	return u.Update(func(s *TableUpsert) {
		s.AddCapacity(v)
	})
}

// UpdateCapacity sets the "capacity" field to the value that was provided on create.
func (u *TableUpsertBulk) UpdateCapacity() *TableUpsertBulk {
	return u.Update(func(s *TableUpsert) {
		s.UpdateCapacity()
	})
}

// SetStatus sets the "status" field.
func (u *TableUpsertBulk) SetStatus(v table.Status) *TableUpsertBulk {
	return u.Update(func(s *TableUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TableUpsertBulk) UpdateStatus() *TableUpsertBulk {
	return u.Update(func(s *TableUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TableUpsertBulk) SetUpdatedAt(v time.Time) *TableUpsertBulk {
	return u.Update(func(s *TableUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TableUpsertBulk) UpdateUpdatedAt() *TableUpsertBulk {
	return u.Update(func(s *TableUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TableUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TableCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TableCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TableUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
