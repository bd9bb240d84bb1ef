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
	"github.com/menuqr/menuqr/ent/staffuser"
)

// StaffUserCreate is the builder for creating a StaffUser entity.
type StaffUserCreate struct {
	config
	mutation *StaffUserMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBusinessID sets the "business_id" field.
func (_c *StaffUserCreate) SetBusinessID(v int) *StaffUserCreate {
	_c.mutation.SetBusinessID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *StaffUserCreate) SetEmail(v string) *StaffUserCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *StaffUserCreate) SetPasswordHash(v string) *StaffUserCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *StaffUserCreate) SetFullName(v string) *StaffUserCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_c *StaffUserCreate) SetNillableFullName(v *string) *StaffUserCreate {
	if v != nil {
		_c.SetFullName(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *StaffUserCreate) SetRole(v staffuser.Role) *StaffUserCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *StaffUserCreate) SetNillableRole(v *staffuser.Role) *StaffUserCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *StaffUserCreate) SetIsActive(v bool) *StaffUserCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *StaffUserCreate) SetNillableIsActive(v *bool) *StaffUserCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetLastLoginAt sets the "last_login_at" field.
func (_c *StaffUserCreate) SetLastLoginAt(v time.Time) *StaffUserCreate {
	_c.mutation.SetLastLoginAt(v)
	return _c
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_c *StaffUserCreate) SetNillableLastLoginAt(v *time.Time) *StaffUserCreate {
	if v != nil {
		_c.SetLastLoginAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StaffUserCreate) SetCreatedAt(v time.Time) *StaffUserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StaffUserCreate) SetNillableCreatedAt(v *time.Time) *StaffUserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StaffUserCreate) SetUpdatedAt(v time.Time) *StaffUserCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StaffUserCreate) SetNillableUpdatedAt(v *time.Time) *StaffUserCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBusiness sets the "business" edge to the Business entity.
func (_c *StaffUserCreate) SetBusiness(v *Business) *StaffUserCreate {
	return _c.SetBusinessID(v.ID)
}

// Mutation returns the StaffUserMutation object of the builder.
func (_c *StaffUserCreate) Mutation() *StaffUserMutation {
	return _c.mutation
}

// Save creates the StaffUser in the database.
func (_c *StaffUserCreate) Save(ctx context.Context) (*StaffUser, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StaffUserCreate) SaveX(ctx context.Context) *StaffUser {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StaffUserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StaffUserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StaffUserCreate) defaults() {
	if _, ok := _c.mutation.Role(); !ok {
		v := staffuser.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := staffuser.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := staffuser.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := staffuser.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StaffUserCreate) check() error {
	if _, ok := _c.mutation.BusinessID(); !ok {
		return &ValidationError{Name: "business_id", err: errors.New(`ent: missing required field "StaffUser.business_id"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "StaffUser.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := staffuser.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "StaffUser.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PasswordHash(); !ok {
		return &ValidationError{Name: "password_hash", err: errors.New(`ent: missing required field "StaffUser.password_hash"`)}
	}
	if v, ok := _c.mutation.PasswordHash(); ok {
		if err := staffuser.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "StaffUser.password_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "StaffUser.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := staffuser.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "StaffUser.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "StaffUser.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StaffUser.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StaffUser.updated_at"`)}
	}
	if len(_c.mutation.BusinessIDs()) == 0 {
		return &ValidationError{Name: "business", err: errors.New(`ent: missing required edge "StaffUser.business"`)}
	}
	return nil
}

func (_c *StaffUserCreate) sqlSave(ctx context.Context) (*StaffUser, error) {
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

func (_c *StaffUserCreate) createSpec() (*StaffUser, *sqlgraph.CreateSpec) {
	var (
		_node = &StaffUser{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(staffuser.Table, sqlgraph.NewFieldSpec(staffuser.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(staffuser.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(staffuser.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(staffuser.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(staffuser.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(staffuser.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.LastLoginAt(); ok {
		_spec.SetField(staffuser.FieldLastLoginAt, field.TypeTime, value)
		_node.LastLoginAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(staffuser.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(staffuser.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BusinessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   staffuser.BusinessTable,
			Columns: []string{staffuser.BusinessColumn},
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
//	client.StaffUser.Create().
//		SetBusinessID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StaffUserUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *StaffUserCreate) OnConflict(opts ...sql.ConflictOption) *StaffUserUpsertOne {
	_c.conflict = opts
	return &StaffUserUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StaffUser.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StaffUserCreate) OnConflictColumns(columns ...string) *StaffUserUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StaffUserUpsertOne{
		create: _c,
	}
}

type (
	// StaffUserUpsertOne is the builder for "upsert"-ing
	//  one StaffUser node.
	StaffUserUpsertOne struct {
		create *StaffUserCreate
	}

	// StaffUserUpsert is the "OnConflict" setter.
	StaffUserUpsert struct {
		*sql.UpdateSet
	}
)

// SetBusinessID sets the "business_id" field.
func (u *StaffUserUpsert) SetBusinessID(v int) *StaffUserUpsert {
	u.Set(staffuser.FieldBusinessID, v)
	return u
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *StaffUserUpsert) UpdateBusinessID() *StaffUserUpsert {
	u.SetExcluded(staffuser.FieldBusinessID)
	return u
}

// SetEmail sets the "email" field.
func (u *StaffUserUpsert) SetEmail(v string) *StaffUserUpsert {
	u.Set(staffuser.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *StaffUserUpsert) UpdateEmail() *StaffUserUpsert {
	u.SetExcluded(staffuser.FieldEmail)
	return u
}

// SetPasswordHash sets the "password_hash" field.
func (u *StaffUserUpsert) SetPasswordHash(v string) *StaffUserUpsert {
	u.Set(staffuser.FieldPasswordHash, v)
	return u
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *StaffUserUpsert) UpdatePasswordHash() *StaffUserUpsert {
	u.SetExcluded(staffuser.FieldPasswordHash)
	return u
}

// SetFullName sets the "full_name" field.
func (u *StaffUserUpsert) SetFullName(v string) *StaffUserUpsert {
	u.Set(staffuser.FieldFullName, v)
	return u
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *StaffUserUpsert) UpdateFullName() *StaffUserUpsert {
	u.SetExcluded(staffuser.FieldFullName)
	return u
}

// ClearFullName clears the value of the "full_name" field.
func (u *StaffUserUpsert) ClearFullName() *StaffUserUpsert {
	u.SetNull(staffuser.FieldFullName)
	return u
}

// SetRole sets the "role" field.
func (u *StaffUserUpsert) SetRole(v staffuser.Role) *StaffUserUpsert {
	u.Set(staffuser.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *StaffUserUpsert) UpdateRole() *StaffUserUpsert {
	u.SetExcluded(staffuser.FieldRole)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *StaffUserUpsert) SetIsActive(v bool) *StaffUserUpsert {
	u.Set(staffuser.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *StaffUserUpsert) UpdateIsActive() *StaffUserUpsert {
	u.SetExcluded(staffuser.FieldIsActive)
	return u
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *StaffUserUpsert) SetLastLoginAt(v time.Time) *StaffUserUpsert {
	u.Set(staffuser.FieldLastLoginAt, v)
	return u
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *StaffUserUpsert) UpdateLastLoginAt() *StaffUserUpsert {
	u.SetExcluded(staffuser.FieldLastLoginAt)
	return u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *StaffUserUpsert) ClearLastLoginAt() *StaffUserUpsert {
	u.SetNull(staffuser.FieldLastLoginAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StaffUserUpsert) SetUpdatedAt(v time.Time) *StaffUserUpsert {
	u.Set(staffuser.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StaffUserUpsert) UpdateUpdatedAt() *StaffUserUpsert {
	u.SetExcluded(staffuser.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.StaffUser.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StaffUserUpsertOne) UpdateNewValues() *StaffUserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(staffuser.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StaffUser.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StaffUserUpsertOne) Ignore() *StaffUserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StaffUserUpsertOne) DoNothing() *StaffUserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StaffUserCreate.OnConflict
// documentation for more info.
func (u *StaffUserUpsertOne) Update(set func(*StaffUserUpsert)) *StaffUserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StaffUserUpsert{UpdateSet: update})
	}))
	return u
}

// SetBusinessID sets the "business_id" field.
func (u *StaffUserUpsertOne) SetBusinessID(v int) *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.SetBusinessID(v)
	})
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *StaffUserUpsertOne) UpdateBusinessID() *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.UpdateBusinessID()
	})
}

// SetEmail sets the "email" field.
func (u *StaffUserUpsertOne) SetEmail(v string) *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *StaffUserUpsertOne) UpdateEmail() *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.UpdateEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *StaffUserUpsertOne) SetPasswordHash(v string) *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *StaffUserUpsertOne) UpdatePasswordHash() *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.UpdatePasswordHash()
	})
}

// SetFullName sets the "full_name" field.
func (u *StaffUserUpsertOne) SetFullName(v string) *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *StaffUserUpsertOne) UpdateFullName() *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.UpdateFullName()
	})
}

// ClearFullName clears the value of the "full_name" field.
func (u *StaffUserUpsertOne) ClearFullName() *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.ClearFullName()
	})
}

// SetRole sets the "role" field.
func (u *StaffUserUpsertOne) SetRole(v staffuser.Role) *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *StaffUserUpsertOne) UpdateRole() *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.UpdateRole()
	})
}

// SetIsActive sets the "is_active" field.
func (u *StaffUserUpsertOne) SetIsActive(v bool) *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *StaffUserUpsertOne) UpdateIsActive() *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.UpdateIsActive()
	})
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *StaffUserUpsertOne) SetLastLoginAt(v time.Time) *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.SetLastLoginAt(v)
	})
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *StaffUserUpsertOne) UpdateLastLoginAt() *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.UpdateLastLoginAt()
	})
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *StaffUserUpsertOne) ClearLastLoginAt() *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.ClearLastLoginAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StaffUserUpsertOne) SetUpdatedAt(v time.Time) *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StaffUserUpsertOne) UpdateUpdatedAt() *StaffUserUpsertOne {
	return u.Update(func(s *StaffUserUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StaffUserUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StaffUserCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StaffUserUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StaffUserUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StaffUserUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StaffUserCreateBulk is the builder for creating many StaffUser entities in bulk.
type StaffUserCreateBulk struct {
	config
	err      error
	builders []*StaffUserCreate
	conflict []sql.ConflictOption
}

// Save creates the StaffUser entities in the database.
func (_c *StaffUserCreateBulk) Save(ctx context.Context) ([]*StaffUser, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StaffUser, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StaffUserMutation)
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
func (_c *StaffUserCreateBulk) SaveX(ctx context.Context) []*StaffUser {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StaffUserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StaffUserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StaffUser.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StaffUserUpsert) {
//			SetBusinessID(v+v).
//		}).
//		Exec(ctx)
func (_c *StaffUserCreateBulk) OnConflict(opts ...sql.ConflictOption) *StaffUserUpsertBulk {
	_c.conflict = opts
	return &StaffUserUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StaffUser.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StaffUserCreateBulk) OnConflictColumns(columns ...string) *StaffUserUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StaffUserUpsertBulk{
		create: _c,
	}
}

// StaffUserUpsertBulk is the builder for "upsert"-ing
// a bulk of StaffUser nodes.
type StaffUserUpsertBulk struct {
	create *StaffUserCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StaffUser.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StaffUserUpsertBulk) UpdateNewValues() *StaffUserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(staffuser.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StaffUser.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StaffUserUpsertBulk) Ignore() *StaffUserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StaffUserUpsertBulk) DoNothing() *StaffUserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StaffUserCreateBulk.OnConflict
// documentation for more info.
func (u *StaffUserUpsertBulk) Update(set func(*StaffUserUpsert)) *StaffUserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StaffUserUpsert{UpdateSet: update})
	}))
	return u
}

// SetBusinessID sets the "business_id" field.
func (u *StaffUserUpsertBulk) SetBusinessID(v int) *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.SetBusinessID(v)
	})
}

// UpdateBusinessID sets the "business_id" field to the value that was provided on create.
func (u *StaffUserUpsertBulk) UpdateBusinessID() *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.UpdateBusinessID()
	})
}

// SetEmail sets the "email" field.
func (u *StaffUserUpsertBulk) SetEmail(v string) *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *StaffUserUpsertBulk) UpdateEmail() *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.UpdateEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *StaffUserUpsertBulk) SetPasswordHash(v string) *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *StaffUserUpsertBulk) UpdatePasswordHash() *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.UpdatePasswordHash()
	})
}

// SetFullName sets the "full_name" field.
func (u *StaffUserUpsertBulk) SetFullName(v string) *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *StaffUserUpsertBulk) UpdateFullName() *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.UpdateFullName()
	})
}

// ClearFullName clears the value of the "full_name" field.
func (u *StaffUserUpsertBulk) ClearFullName() *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.ClearFullName()
	})
}

// SetRole sets the "role" field.
func (u *StaffUserUpsertBulk) SetRole(v staffuser.Role) *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *StaffUserUpsertBulk) UpdateRole() *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.UpdateRole()
	})
}

// SetIsActive sets the "is_active" field.
func (u *StaffUserUpsertBulk) SetIsActive(v bool) *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *StaffUserUpsertBulk) UpdateIsActive() *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.UpdateIsActive()
	})
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *StaffUserUpsertBulk) SetLastLoginAt(v time.Time) *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.SetLastLoginAt(v)
	})
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *StaffUserUpsertBulk) UpdateLastLoginAt() *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.UpdateLastLoginAt()
	})
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *StaffUserUpsertBulk) ClearLastLoginAt() *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.ClearLastLoginAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StaffUserUpsertBulk) SetUpdatedAt(v time.Time) *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StaffUserUpsertBulk) UpdateUpdatedAt() *StaffUserUpsertBulk {
	return u.Update(func(s *StaffUserUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StaffUserUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StaffUserCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StaffUserCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StaffUserUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
