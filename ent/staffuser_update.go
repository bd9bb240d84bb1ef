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
	"github.com/menuqr/menuqr/ent/staffuser"
)

// StaffUserUpdate is the builder for updating StaffUser entities.
type StaffUserUpdate struct {
	config
	hooks    []Hook
	mutation *StaffUserMutation
}

// Where appends a list predicates to the StaffUserUpdate builder.
func (_u *StaffUserUpdate) Where(ps ...predicate.StaffUser) *StaffUserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBusinessID sets the "business_id" field.
func (_u *StaffUserUpdate) SetBusinessID(v int) *StaffUserUpdate {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *StaffUserUpdate) SetNillableBusinessID(v *int) *StaffUserUpdate {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *StaffUserUpdate) SetEmail(v string) *StaffUserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *StaffUserUpdate) SetNillableEmail(v *string) *StaffUserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *StaffUserUpdate) SetPasswordHash(v string) *StaffUserUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *StaffUserUpdate) SetNillablePasswordHash(v *string) *StaffUserUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *StaffUserUpdate) SetFullName(v string) *StaffUserUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *StaffUserUpdate) SetNillableFullName(v *string) *StaffUserUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// ClearFullName clears the value of the "full_name" field.
func (_u *StaffUserUpdate) ClearFullName() *StaffUserUpdate {
	_u.mutation.ClearFullName()
	return _u
}

// SetRole sets the "role" field.
func (_u *StaffUserUpdate) SetRole(v staffuser.Role) *StaffUserUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *StaffUserUpdate) SetNillableRole(v *staffuser.Role) *StaffUserUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *StaffUserUpdate) SetIsActive(v bool) *StaffUserUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *StaffUserUpdate) SetNillableIsActive(v *bool) *StaffUserUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *StaffUserUpdate) SetLastLoginAt(v time.Time) *StaffUserUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *StaffUserUpdate) SetNillableLastLoginAt(v *time.Time) *StaffUserUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *StaffUserUpdate) ClearLastLoginAt() *StaffUserUpdate {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StaffUserUpdate) SetUpdatedAt(v time.Time) *StaffUserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *StaffUserUpdate) SetBusiness(v *Business) *StaffUserUpdate {
	return _u.SetBusinessID(v.ID)
}

// Mutation returns the StaffUserMutation object of the builder.
func (_u *StaffUserUpdate) Mutation() *StaffUserMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *StaffUserUpdate) ClearBusiness() *StaffUserUpdate {
	_u.mutation.ClearBusiness()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StaffUserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StaffUserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StaffUserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StaffUserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StaffUserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := staffuser.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StaffUserUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := staffuser.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "StaffUser.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordHash(); ok {
		if err := staffuser.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "StaffUser.password_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := staffuser.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "StaffUser.role": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StaffUser.business"`)
	}
	return nil
}

func (_u *StaffUserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(staffuser.Table, staffuser.Columns, sqlgraph.NewFieldSpec(staffuser.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(staffuser.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(staffuser.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(staffuser.FieldFullName, field.TypeString, value)
	}
	if _u.mutation.FullNameCleared() {
		_spec.ClearField(staffuser.FieldFullName, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(staffuser.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(staffuser.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(staffuser.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(staffuser.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(staffuser.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BusinessCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staffuser.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StaffUserUpdateOne is the builder for updating a single StaffUser entity.
type StaffUserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StaffUserMutation
}

// SetBusinessID sets the "business_id" field.
func (_u *StaffUserUpdateOne) SetBusinessID(v int) *StaffUserUpdateOne {
	_u.mutation.SetBusinessID(v)
	return _u
}

// SetNillableBusinessID sets the "business_id" field if the given value is not nil.
func (_u *StaffUserUpdateOne) SetNillableBusinessID(v *int) *StaffUserUpdateOne {
	if v != nil {
		_u.SetBusinessID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *StaffUserUpdateOne) SetEmail(v string) *StaffUserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *StaffUserUpdateOne) SetNillableEmail(v *string) *StaffUserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *StaffUserUpdateOne) SetPasswordHash(v string) *StaffUserUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *StaffUserUpdateOne) SetNillablePasswordHash(v *string) *StaffUserUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *StaffUserUpdateOne) SetFullName(v string) *StaffUserUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *StaffUserUpdateOne) SetNillableFullName(v *string) *StaffUserUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// ClearFullName clears the value of the "full_name" field.
func (_u *StaffUserUpdateOne) ClearFullName() *StaffUserUpdateOne {
	_u.mutation.ClearFullName()
	return _u
}

// SetRole sets the "role" field.
func (_u *StaffUserUpdateOne) SetRole(v staffuser.Role) *StaffUserUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *StaffUserUpdateOne) SetNillableRole(v *staffuser.Role) *StaffUserUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *StaffUserUpdateOne) SetIsActive(v bool) *StaffUserUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *StaffUserUpdateOne) SetNillableIsActive(v *bool) *StaffUserUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *StaffUserUpdateOne) SetLastLoginAt(v time.Time) *StaffUserUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *StaffUserUpdateOne) SetNillableLastLoginAt(v *time.Time) *StaffUserUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *StaffUserUpdateOne) ClearLastLoginAt() *StaffUserUpdateOne {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StaffUserUpdateOne) SetUpdatedAt(v time.Time) *StaffUserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBusiness sets the "business" edge to the Business entity.
func (_u *StaffUserUpdateOne) SetBusiness(v *Business) *StaffUserUpdateOne {
	return _u.SetBusinessID(v.ID)
}

// Mutation returns the StaffUserMutation object of the builder.
func (_u *StaffUserUpdateOne) Mutation() *StaffUserMutation {
	return _u.mutation
}

// ClearBusiness clears the "business" edge to the Business entity.
func (_u *StaffUserUpdateOne) ClearBusiness() *StaffUserUpdateOne {
	_u.mutation.ClearBusiness()
	return _u
}

// Where appends a list predicates to the StaffUserUpdate builder.
func (_u *StaffUserUpdateOne) Where(ps ...predicate.StaffUser) *StaffUserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StaffUserUpdateOne) Select(field string, fields ...string) *StaffUserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StaffUser entity.
func (_u *StaffUserUpdateOne) Save(ctx context.Context) (*StaffUser, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StaffUserUpdateOne) SaveX(ctx context.Context) *StaffUser {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StaffUserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StaffUserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StaffUserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := staffuser.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StaffUserUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := staffuser.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "StaffUser.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordHash(); ok {
		if err := staffuser.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "StaffUser.password_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := staffuser.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "StaffUser.role": %w`, err)}
		}
	}
	if _u.mutation.BusinessCleared() && len(_u.mutation.BusinessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StaffUser.business"`)
	}
	return nil
}

func (_u *StaffUserUpdateOne) sqlSave(ctx context.Context) (_node *StaffUser, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(staffuser.Table, staffuser.Columns, sqlgraph.NewFieldSpec(staffuser.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StaffUser.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, staffuser.FieldID)
		for _, f := range fields {
			if !staffuser.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != staffuser.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(staffuser.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(staffuser.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(staffuser.FieldFullName, field.TypeString, value)
	}
	if _u.mutation.FullNameCleared() {
		_spec.ClearField(staffuser.FieldFullName, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(staffuser.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(staffuser.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(staffuser.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(staffuser.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(staffuser.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BusinessCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BusinessIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StaffUser{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staffuser.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
