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
	"github.com/menuqr/menuqr/ent/table"
	"github.com/menuqr/menuqr/ent/waiteralert"
)

// WaiterAlertCreate is the builder for creating a WaiterAlert entity.
type WaiterAlertCreate struct {
	config
	mutation *WaiterAlertMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBusinessID sets the "business_id" field.
func (_c *WaiterAlertCreate) SetBusinessID(v int) *WaiterAlertCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetTableID sets the "table_id" field.
func (_c *WaiterAlertCreate) SetTableID(v int) *WaiterAlertCreate {
	_c.mutation.SetTableID(v)
	return _c
}

// SetAlertType sets the "alert_type" field.
func (_c *WaiterAlertCreate) SetAlertType(v waiteralert.AlertType) *WaiterAlertCreate {
	_c.mutation.SetAlertType(v)
	return _c
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_c *WaiterAlertCreate) SetNillableAlertType(v *waiteralert.AlertType) *WaiterAlertCreate {
	if v != nil {
		_c.SetAlertType(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *WaiterAlertCreate) SetMessage(v string) *WaiterAlertCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *WaiterAlertCreate) SetNillableMessage(v *string) *WaiterAlertCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WaiterAlertCreate) SetStatus(v waiteralert.Status) *WaiterAlertCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WaiterAlertCreate) SetNillableStatus(v *waiteralert.Status) *WaiterAlertCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_c *WaiterAlertCreate) SetAcknowledgedAt(v time.Time) *WaiterAlertCreate {
	_c.mutation.SetAcknowledgedAt(v)
	return _c
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_c *WaiterAlertCreate) SetNillableAcknowledgedAt(v *time.Time) *WaiterAlertCreate {
	if v != nil {
		_c.SetAcknowledgedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *WaiterAlertCreate) SetResolvedAt(v time.Time) *WaiterAlertCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *WaiterAlertCreate) SetNillableResolvedAt(v *time.Time) *WaiterAlertCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WaiterAlertCreate) SetCreatedAt(v time.Time) *WaiterAlertCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WaiterAlertCreate) SetNillableCreatedAt(v *time.Time) *WaiterAlertCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetBusiness sets the "business" edge to the Business entity.
func (_c *WaiterAlertCreate) SetBusiness(v *Business) *WaiterAlertCreate {
	return _c.SetBusinessID(v.ID)
}

// SetTable sets the "table" edge to the Table entity.
func (_c *WaiterAlertCreate) SetTable(v *Table) *WaiterAlertCreate {
	return _c.SetTableID(v.ID)
}

// Mutation returns the WaiterAlertMutation object of the builder.
func (_c *WaiterAlertCreate) Mutation() *WaiterAlertMutation {
	return _c.mutation
}

// Save creates the WaiterAlert in the database.
func (_c *WaiterAlertCreate) Save(ctx context.Context) (*WaiterAlert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WaiterAlertCreate) SaveX(ctx context.Context) *WaiterAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WaiterAlertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WaiterAlertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WaiterAlertCreate) defaults() {
	if _, ok := _c.mutation.AlertType(); !ok {
		v := waiteralert.DefaultAlertType
		_c.mutation.SetAlertType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := waiteralert.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := waiteralert.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WaiterAlertCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "WaiterAlert.business_id"`)}
	}
	if _, ok := _c.mutation.TableID(); !ok {
		return &ValidationError{Name: "table_id", err: errors.New(`ent: missing required field "WaiterAlert.table_id"`)}
	}
	if _, ok := _c.mutation.AlertType(); !ok {
		return &ValidationError{Name: "alert_type", err: errors.New(`ent: missing required field "WaiterAlert.alert_type"`)}
	}
	if v, ok := _c.mutation.AlertType(); ok {
		if err := waiteralert.AlertTypeValidator(v); err != nil {
			return &ValidationError{Name: "alert_type", err: fmt.Errorf(`ent: validator failed for field "WaiterAlert.alert_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Message(); ok {
		if err := waiteralert.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "WaiterAlert.message": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WaiterAlert.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := waiteralert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WaiterAlert.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WaiterAlert.created_at"`)}
	}
	if len(_c.mutation.BusinessIDs()) == 0 {
		return &ValidationError{Name: "business", err: errors.New(`ent: missing required edge "WaiterAlert.business"`)}
	}
	if len(_c.mutation.TableIDs()) == 0 {
		return &ValidationError{Name: "table", err: errors.New(`ent: missing required edge "WaiterAlert.table"`)}
	}
	return nil
}

func (_c *WaiterAlertCreate) sqlSave(ctx context.Context) (*WaiterAlert, error) {
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

func (_c *WaiterAlertCreate) createSpec() (*WaiterAlert, *sqlgraph.CreateSpec) {
	var (
		_node = &WaiterAlert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(waiteralert.Table, sqlgraph.NewFieldSpec(waiteralert.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.AlertType(); ok {
		_spec.SetField(waiteralert.FieldAlertType, field.TypeEnum, value)
		_node.AlertType = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(waiteralert.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(waiteralert.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AcknowledgedAt(); ok {
		_spec.SetField(waiteralert.FieldAcknowledgedAt, field.TypeTime, value)
		_node.AcknowledgedAt = &value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(waiteralert.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(waiteralert.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BusinessIDs(); len(nodes) > 0 {
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
		_node.BusinessID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TableIDs(); len(nodes) > 0 {
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
		_node.TableID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WaiterAlert.Create().
//		SetBusinessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WaiterAlertUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *WaiterAlertCreate) OnConflict(opts ...sql.ConflictOption) *WaiterAlertUpsertOne {
	_c.conflict = opts
	return &WaiterAlertUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WaiterAlert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WaiterAlertCreate) OnConflictColumns(columns ...string) *WaiterAlertUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WaiterAlertUpsertOne{
		create: _c,
	}
}

type (
	// WaiterAlertUpsertOne is the builder for "upsert"-ing
	//  one WaiterAlert node.
	WaiterAlertUpsertOne struct {
		create *WaiterAlertCreate
	}

	// WaiterAlertUpsert is the "OnConflict" setter.
	WaiterAlertUpsert struct {
		*sql.UpdateSet
	}
)

// SetBusinessID sets the "business_id" field.
func (u *WaiterAlertUpsert) SetBusinessID(v int) *WaiterAlertUpsert {
	u.Set(waiteralert.FieldBusinessID, v)
	return u
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *WaiterAlertUpsert) UpdateBusinessID() *WaiterAlertUpsert {
	u.SetExcluded(waiteralert.FieldBusinessID)
	return u
}

// SetTableID sets the "table_id" field.
func (u *WaiterAlertUpsert) SetTableID(v int) *WaiterAlertUpsert {
	u.Set(waiteralert.FieldTableID, v)
	return u
}

// UpdateTableID sets the "table_id" field to the value that was provided on create.
func (u *WaiterAlertUpsert) UpdateTableID() *WaiterAlertUpsert {
	u.SetExcluded(waiteralert.FieldTableID)
	return u
}

// SetAlertType sets the "alert_type" field.
func (u *WaiterAlertUpsert) SetAlertType(v waiteralert.AlertType) *WaiterAlertUpsert {
	u.Set(waiteralert.FieldAlertType, v)
	return u
}

// UpdateAlertType sets the "alert_type" field to the value that was provided on create.
func (u *WaiterAlertUpsert) UpdateAlertType() *WaiterAlertUpsert {
	u.SetExcluded(waiteralert.FieldAlertType)
	return u
}

// SetMessage sets the "message" field.
func (u *WaiterAlertUpsert) SetMessage(v string) *WaiterAlertUpsert {
	u.Set(waiteralert.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *WaiterAlertUpsert) UpdateMessage() *WaiterAlertUpsert {
	u.SetExcluded(waiteralert.FieldMessage)
	return u
}

// ClearMessage clears the value of the "message" field.
func (u *WaiterAlertUpsert) ClearMessage() *WaiterAlertUpsert {
	u.SetNull(waiteralert.FieldMessage)
	return u
}

// SetStatus sets the "status" field.
func (u *WaiterAlertUpsert) SetStatus(v waiteralert.Status) *WaiterAlertUpsert {
	u.Set(waiteralert.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WaiterAlertUpsert) UpdateStatus() *WaiterAlertUpsert {
	u.SetExcluded(waiteralert.FieldStatus)
	return u
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (u *WaiterAlertUpsert) SetAcknowledgedAt(v time.Time) *WaiterAlertUpsert {
	u.Set(waiteralert.FieldAcknowledgedAt, v)
	return u
}

// UpdateAcknowledgedAt sets the "acknowledged_at" field to the value that was provided on create.
func (u *WaiterAlertUpsert) UpdateAcknowledgedAt() *WaiterAlertUpsert {
	u.SetExcluded(waiteralert.FieldAcknowledgedAt)
	return u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (u *WaiterAlertUpsert) ClearAcknowledgedAt() *WaiterAlertUpsert {
	u.SetNull(waiteralert.FieldAcknowledgedAt)
	return u
}

// SetResolvedAt sets the "resolved_at" field.
func (u *WaiterAlertUpsert) SetResolvedAt(v time.Time) *WaiterAlertUpsert {
	u.Set(waiteralert.FieldResolvedAt, v)
	return u
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *WaiterAlertUpsert) UpdateResolvedAt() *WaiterAlertUpsert {
	u.SetExcluded(waiteralert.FieldResolvedAt)
	return u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *WaiterAlertUpsert) ClearResolvedAt() *WaiterAlertUpsert {
	u.SetNull(waiteralert.FieldResolvedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.WaiterAlert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WaiterAlertUpsertOne) UpdateNewValues() *WaiterAlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(waiteralert.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WaiterAlert.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WaiterAlertUpsertOne) Ignore() *WaiterAlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WaiterAlertUpsertOne) DoNothing() *WaiterAlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WaiterAlertCreate.OnConflict
// documentation for more info.
func (u *WaiterAlertUpsertOne) Update(set func(*WaiterAlertUpsert)) *WaiterAlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WaiterAlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetBusinessID sets the "business_id" field.
func (u *WaiterAlertUpsertOne) SetBusinessID(v int) *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.SetBusinessID(v)
	})
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *WaiterAlertUpsertOne) UpdateBusinessID() *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.UpdateBusinessID()
	})
}

// SetTableID sets the "table_id" field.
func (u *WaiterAlertUpsertOne) SetTableID(v int) *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.SetTableID(v)
	})
}

// UpdateTableID sets the "table_id" field to the value that was provided on create.
func (u *WaiterAlertUpsertOne) UpdateTableID() *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.UpdateTableID()
	})
}

// SetAlertType sets the "alert_type" field.
func (u *WaiterAlertUpsertOne) SetAlertType(v waiteralert.AlertType) *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.SetAlertType(v)
	})
}

// UpdateAlertType sets the "alert_type" field to the value that was provided on create.
func (u *WaiterAlertUpsertOne) UpdateAlertType() *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.UpdateAlertType()
	})
}

// SetMessage sets the "message" field.
func (u *WaiterAlertUpsertOne) SetMessage(v string) *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *WaiterAlertUpsertOne) UpdateMessage() *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.UpdateMessage()
	})
}

// ClearMessage clears the value of the "message" field.
func (u *WaiterAlertUpsertOne) ClearMessage() *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.ClearMessage()
	})
}

// SetStatus sets the "status" field.
func (u *WaiterAlertUpsertOne) SetStatus(v waiteralert.Status) *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WaiterAlertUpsertOne) UpdateStatus() *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.UpdateStatus()
	})
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (u *WaiterAlertUpsertOne) SetAcknowledgedAt(v time.Time) *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.SetAcknowledgedAt(v)
	})
}

// UpdateAcknowledgedAt sets the "acknowledged_at" field to the value that was provided on create.
func (u *WaiterAlertUpsertOne) UpdateAcknowledgedAt() *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.UpdateAcknowledgedAt()
	})
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (u *WaiterAlertUpsertOne) ClearAcknowledgedAt() *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.ClearAcknowledgedAt()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *WaiterAlertUpsertOne) SetResolvedAt(v time.Time) *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *WaiterAlertUpsertOne) UpdateResolvedAt() *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *WaiterAlertUpsertOne) ClearResolvedAt() *WaiterAlertUpsertOne {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *WaiterAlertUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WaiterAlertCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WaiterAlertUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WaiterAlertUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WaiterAlertUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WaiterAlertCreateBulk is the builder for creating many WaiterAlert entities in bulk.
type WaiterAlertCreateBulk struct {
	config
	err      error
	builders []*WaiterAlertCreate
	conflict []sql.ConflictOption
}

// Save creates the WaiterAlert entities in the database.
func (_c *WaiterAlertCreateBulk) Save(ctx context.Context) ([]*WaiterAlert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WaiterAlert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WaiterAlertMutation)
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
func (_c *WaiterAlertCreateBulk) SaveX(ctx context.Context) []*WaiterAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WaiterAlertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WaiterAlertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WaiterAlert.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WaiterAlertUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *WaiterAlertCreateBulk) OnConflict(opts ...sql.ConflictOption) *WaiterAlertUpsertBulk {
	_c.conflict = opts
	return &WaiterAlertUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WaiterAlert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WaiterAlertCreateBulk) OnConflictColumns(columns ...string) *WaiterAlertUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WaiterAlertUpsertBulk{
		create: _c,
	}
}

// WaiterAlertUpsertBulk is the builder for "upsert"-ing
// a bulk of WaiterAlert nodes.
type WaiterAlertUpsertBulk struct {
	create *WaiterAlertCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WaiterAlert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WaiterAlertUpsertBulk) UpdateNewValues() *WaiterAlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(waiteralert.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WaiterAlert.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WaiterAlertUpsertBulk) Ignore() *WaiterAlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WaiterAlertUpsertBulk) DoNothing() *WaiterAlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WaiterAlertCreateBulk.OnConflict
// documentation for more info.
func (u *WaiterAlertUpsertBulk) Update(set func(*WaiterAlertUpsert)) *WaiterAlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WaiterAlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetBusinessID sets the "business_id" field.
func (u *WaiterAlertUpsertBulk) SetBusinessID(v int) *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.SetBusinessID(v)
	})
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *WaiterAlertUpsertBulk) UpdateBusinessID() *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.UpdateBusinessID()
	})
}

// SetTableID sets the "table_id" field.
func (u *WaiterAlertUpsertBulk) SetTableID(v int) *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.SetTableID(v)
	})
}

// UpdateTableID sets the "table_id" field to the value that was provided on create.
func (u *WaiterAlertUpsertBulk) UpdateTableID() *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.UpdateTableID()
	})
}

// SetAlertType sets the "alert_type" field.
func (u *WaiterAlertUpsertBulk) SetAlertType(v waiteralert.AlertType) *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.SetAlertType(v)
	})
}

// UpdateAlertType sets the "alert_type" field to the value that was provided on create.
func (u *WaiterAlertUpsertBulk) UpdateAlertType() *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.UpdateAlertType()
	})
}

// SetMessage sets the "message" field.
func (u *WaiterAlertUpsertBulk) SetMessage(v string) *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *WaiterAlertUpsertBulk) UpdateMessage() *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.UpdateMessage()
	})
}

// ClearMessage clears the value of the "message" field.
func (u *WaiterAlertUpsertBulk) ClearMessage() *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.ClearMessage()
	})
}

// SetStatus sets the "status" field.
func (u *WaiterAlertUpsertBulk) SetStatus(v waiteralert.Status) *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WaiterAlertUpsertBulk) UpdateStatus() *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.UpdateStatus()
	})
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (u *WaiterAlertUpsertBulk) SetAcknowledgedAt(v time.Time) *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.SetAcknowledgedAt(v)
	})
}

// UpdateAcknowledgedAt sets the "acknowledged_at" field to the value that was provided on create.
func (u *WaiterAlertUpsertBulk) UpdateAcknowledgedAt() *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.UpdateAcknowledgedAt()
	})
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (u *WaiterAlertUpsertBulk) ClearAcknowledgedAt() *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.ClearAcknowledgedAt()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *WaiterAlertUpsertBulk) SetResolvedAt(v time.Time) *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *WaiterAlertUpsertBulk) UpdateResolvedAt() *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *WaiterAlertUpsertBulk) ClearResolvedAt() *WaiterAlertUpsertBulk {
	return u.Update(func(s *WaiterAlertUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *WaiterAlertUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WaiterAlertCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WaiterAlertCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WaiterAlertUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
