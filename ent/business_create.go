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
	"github.com/menuqr/menuqr/ent/category"
	"github.com/menuqr/menuqr/ent/itempairfrequency"
	"github.com/menuqr/menuqr/ent/order"
	"github.com/menuqr/menuqr/ent/recommendationevent"
	"github.com/menuqr/menuqr/ent/staffuser"
	"github.com/menuqr/menuqr/ent/table"
	"github.com/menuqr/menuqr/ent/waiteralert"
)

// BusinessCreate is the builder for creating a Business entity.
type BusinessCreate struct {
	config
	mutation *BusinessMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *BusinessCreate) SetName(v string) *BusinessCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetBusinessType sets the "business_type" field.
func (_c *BusinessCreate) SetBusinessType(v business.BusinessType) *BusinessCreate {
	_c.mutation.SetBusinessType(v)
	return _c
}

// SetNillableBusinessType sets the "business_type" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableBusinessType(v *business.BusinessType) *BusinessCreate {
	if v != nil {
		_c.SetBusinessType(*v)
	}
	return _c
}

// SetSlug sets the "slug" field.
func (_c *BusinessCreate) SetSlug(v string) *BusinessCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *BusinessCreate) SetCurrencyCode(v string) *BusinessCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableCurrencyCode(v *string) *BusinessCreate {
	if v != nil {
		_c.SetCurrencyCode(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *BusinessCreate) SetTimezone(v string) *BusinessCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableTimezone(v *string) *BusinessCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetLogoKey sets the "logo_key" field.
func (_c *BusinessCreate) SetLogoKey(v string) *BusinessCreate {
	_c.mutation.SetLogoKey(v)
	return _c
}

// SetNillableLogoKey sets the "logo_key" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableLogoKey(v *string) *BusinessCreate {
	if v != nil {
		_c.SetLogoKey(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *BusinessCreate) SetIsActive(v bool) *BusinessCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableIsActive(v *bool) *BusinessCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetEnableTableManagement sets the "enable_table_management" field.
func (_c *BusinessCreate) SetEnableTableManagement(v bool) *BusinessCreate {
	_c.mutation.SetEnableTableManagement(v)
	return _c
}

// SetNillableEnableTableManagement sets the "enable_table_management" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableEnableTableManagement(v *bool) *BusinessCreate {
	if v != nil {
		_c.SetEnableTableManagement(*v)
	}
	return _c
}

// SetEnableWaiterAlerts sets the "enable_waiter_alerts" field.
func (_c *BusinessCreate) SetEnableWaiterAlerts(v bool) *BusinessCreate {
	_c.mutation.SetEnableWaiterAlerts(v)
	return _c
}

// SetNillableEnableWaiterAlerts sets the "enable_waiter_alerts" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableEnableWaiterAlerts(v *bool) *BusinessCreate {
	if v != nil {
		_c.SetEnableWaiterAlerts(*v)
	}
	return _c
}

// SetEnableRoomCharging sets the "enable_room_charging" field.
func (_c *BusinessCreate) SetEnableRoomCharging(v bool) *BusinessCreate {
	_c.mutation.SetEnableRoomCharging(v)
	return _c
}

// SetNillableEnableRoomCharging sets the "enable_room_charging" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableEnableRoomCharging(v *bool) *BusinessCreate {
	if v != nil {
		_c.SetEnableRoomCharging(*v)
	}
	return _c
}

// SetMenuTheme sets the "menu_theme" field.
func (_c *BusinessCreate) SetMenuTheme(v business.MenuTheme) *BusinessCreate {
	_c.mutation.SetMenuTheme(v)
	return _c
}

// SetNillableMenuTheme sets the "menu_theme" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableMenuTheme(v *business.MenuTheme) *BusinessCreate {
	if v != nil {
		_c.SetMenuTheme(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BusinessCreate) SetCreatedAt(v time.Time) *BusinessCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableCreatedAt(v *time.Time) *BusinessCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BusinessCreate) SetUpdatedAt(v time.Time) *BusinessCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableUpdatedAt(v *time.Time) *BusinessCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddCategoryIDs adds the "categories" edge to the Category entity by IDs.
func (_c *BusinessCreate) AddCategoryIDs(ids ...int) *BusinessCreate {
	_c.mutation.AddCategoryIDs(ids...)
	return _c
}

// AddCategories adds the "categories" edges to the Category entity.
func (_c *BusinessCreate) AddCategories(v ...*Category) *BusinessCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCategoryIDs(ids...)
}

// AddTableIDs adds the "tables" edge to the Table entity by IDs.
func (_c *BusinessCreate) AddTableIDs(ids ...int) *BusinessCreate {
	_c.mutation.AddTableIDs(ids...)
	return _c
}

// AddTables adds the "tables" edges to the Table entity.
func (_c *BusinessCreate) AddTables(v ...*Table) *BusinessCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTableIDs(ids...)
}

// AddOrderIDs adds the "orders" edge to the Order entity by IDs.
func (_c *BusinessCreate) AddOrderIDs(ids ...uuid.UUID) *BusinessCreate {
	_c.mutation.AddOrderIDs(ids...)
	return _c
}

// AddOrders adds the "orders" edges to the Order entity.
func (_c *BusinessCreate) AddOrders(v ...*Order) *BusinessCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOrderIDs(ids...)
}

// AddItemPairIDs adds the "item_pairs" edge to the ItemPairFrequency entity by IDs.
func (_c *BusinessCreate) AddItemPairIDs(ids ...int) *BusinessCreate {
	_c.mutation.AddItemPairIDs(ids...)
	return _c
}

// AddItemPairs adds the "item_pairs" edges to the ItemPairFrequency entity.
func (_c *BusinessCreate) AddItemPairs(v ...*ItemPairFrequency) *BusinessCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemPairIDs(ids...)
}

// AddRecommendationEventIDs adds the "recommendation_events" edge to the RecommendationEvent entity by IDs.
func (_c *BusinessCreate) AddRecommendationEventIDs(ids ...int) *BusinessCreate {
	_c.mutation.AddRecommendationEventIDs(ids...)
	return _c
}

// AddRecommendationEvents adds the "recommendation_events" edges to the RecommendationEvent entity.
func (_c *BusinessCreate) AddRecommendationEvents(v ...*RecommendationEvent) *BusinessCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecommendationEventIDs(ids...)
}

// AddStaffIDs adds the "staff" edge to the StaffUser entity by IDs.
func (_c *BusinessCreate) AddStaffIDs(ids ...int) *BusinessCreate {
	_c.mutation.AddStaffIDs(ids...)
	return _c
}

// AddStaff adds the "staff" edges to the StaffUser entity.
func (_c *BusinessCreate) AddStaff(v ...*StaffUser) *BusinessCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStaffIDs(ids...)
}

// AddWaiterAlertIDs adds the "waiter_alerts" edge to the WaiterAlert entity by IDs.
func (_c *BusinessCreate) AddWaiterAlertIDs(ids ...int) *BusinessCreate {
	_c.mutation.AddWaiterAlertIDs(ids...)
	return _c
}

// AddWaiterAlerts adds the "waiter_alerts" edges to the WaiterAlert entity.
func (_c *BusinessCreate) AddWaiterAlerts(v ...*WaiterAlert) *BusinessCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWaiterAlertIDs(ids...)
}

// Mutation returns the BusinessMutation object of the builder.
func (_c *BusinessCreate) Mutation() *BusinessMutation {
	return _c.mutation
}

// Save creates the Business in the database.
func (_c *BusinessCreate) Save(ctx context.Context) (*Business, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusinessCreate) SaveX(ctx context.Context) *Business {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusinessCreate) defaults() {
	if _, ok := _c.mutation.BusinessType(); !ok {
		v := business.DefaultBusinessType
		_c.mutation.SetBusinessType(v)
	}
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		v := business.DefaultCurrencyCode
		_c.mutation.SetCurrencyCode(v)
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		v := business.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := business.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.EnableTableManagement(); !ok {
		v := business.DefaultEnableTableManagement
		_c.mutation.SetEnableTableManagement(v)
	}
	if _, ok := _c.mutation.EnableWaiterAlerts(); !ok {
		v := business.DefaultEnableWaiterAlerts
		_c.mutation.SetEnableWaiterAlerts(v)
	}
	if _, ok := _c.mutation.EnableRoomCharging(); !ok {
		v := business.DefaultEnableRoomCharging
		_c.mutation.SetEnableRoomCharging(v)
	}
	if _, ok := _c.mutation.MenuTheme(); !ok {
		v := business.DefaultMenuTheme
		_c.mutation.SetMenuTheme(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := business.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := business.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusinessCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Business.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := business.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Business.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BusinessType(); !ok {
		return &ValidationError{Name: "business_type", err: errors.New(`ent: missing required field "Business.business_type"`)}
	}
	if v, ok := _c.mutation.BusinessType(); ok {
		if err := business.BusinessTypeValidator(v); err != nil {
			return &ValidationError{Name: "business_type", err: fmt.Errorf(`ent: validator failed for field "Business.business_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Business.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := business.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Business.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		return &ValidationError{Name: "currency_code", err: errors.New(`ent: missing required field "Business.currency_code"`)}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := business.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Business.currency_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "Business.timezone"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Business.is_active"`)}
	}
	if _, ok := _c.mutation.EnableTableManagement(); !ok {
		return &ValidationError{Name: "enable_table_management", err: errors.New(`ent: missing required field "Business.enable_table_management"`)}
	}
	if _, ok := _c.mutation.EnableWaiterAlerts(); !ok {
		return &ValidationError{Name: "enable_waiter_alerts", err: errors.New(`ent: missing required field "Business.enable_waiter_alerts"`)}
	}
	if _, ok := _c.mutation.EnableRoomCharging(); !ok {
		return &ValidationError{Name: "enable_room_charging", err: errors.New(`ent: missing required field "Business.enable_room_charging"`)}
	}
	if _, ok := _c.mutation.MenuTheme(); !ok {
		return &ValidationError{Name: "menu_theme", err: errors.New(`ent: missing required field "Business.menu_theme"`)}
	}
	if v, ok := _c.mutation.MenuTheme(); ok {
		if err := business.MenuThemeValidator(v); err != nil {
			return &ValidationError{Name: "menu_theme", err: fmt.Errorf(`ent: validator failed for field "Business.menu_theme": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Business.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Business.updated_at"`)}
	}
	return nil
}

func (_c *BusinessCreate) sqlSave(ctx context.Context) (*Business, error) {
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

func (_c *BusinessCreate) createSpec() (*Business, *sqlgraph.CreateSpec) {
	var (
		_node = &Business{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(business.Table, sqlgraph.NewFieldSpec(business.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(business.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.BusinessType(); ok {
		_spec.SetField(business.FieldBusinessType, field.TypeEnum, value)
		_node.BusinessType = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(business.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(business.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(business.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.LogoKey(); ok {
		_spec.SetField(business.FieldLogoKey, field.TypeString, value)
		_node.LogoKey = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(business.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.EnableTableManagement(); ok {
		_spec.SetField(business.FieldEnableTableManagement, field.TypeBool, value)
		_node.EnableTableManagement = value
	}
	if value, ok := _c.mutation.EnableWaiterAlerts(); ok {
		_spec.SetField(business.FieldEnableWaiterAlerts, field.TypeBool, value)
		_node.EnableWaiterAlerts = value
	}
	if value, ok := _c.mutation.EnableRoomCharging(); ok {
		_spec.SetField(business.FieldEnableRoomCharging, field.TypeBool, value)
		_node.EnableRoomCharging = value
	}
	if value, ok := _c.mutation.MenuTheme(); ok {
		_spec.SetField(business.FieldMenuTheme, field.TypeEnum, value)
		_node.MenuTheme = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(business.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(business.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CategoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   business.CategoriesTable,
			Columns: []string{business.CategoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TablesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   business.TablesTable,
			Columns: []string{business.TablesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(table.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OrdersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   business.OrdersTable,
			Columns: []string{business.OrdersColumn},
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
	if nodes := _c.mutation.ItemPairsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   business.ItemPairsTable,
			Columns: []string{business.ItemPairsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(itempairfrequency.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecommendationEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   business.RecommendationEventsTable,
			Columns: []string{business.RecommendationEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recommendationevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StaffIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   business.StaffTable,
			Columns: []string{business.StaffColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(staffuser.FieldID, field.TypeInt),
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
			Table:   business.WaiterAlertsTable,
			Columns: []string{business.WaiterAlertsColumn},
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
//	client.Business.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BusinessUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *BusinessCreate) OnConflict(opts ...sql.ConflictOption) *BusinessUpsertOne {
	_c.conflict = opts
	return &BusinessUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Business.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BusinessCreate) OnConflictColumns(columns ...string) *BusinessUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BusinessUpsertOne{
		create: _c,
	}
}

type (
	// BusinessUpsertOne is the builder for "upsert"-ing
	//  one Business node.
	BusinessUpsertOne struct {
		create *BusinessCreate
	}

	// BusinessUpsert is the "OnConflict" setter.
	BusinessUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *BusinessUpsert) SetName(v string) *BusinessUpsert {
	u.Set(business.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateName() *BusinessUpsert {
	u.SetExcluded(business.FieldName)
	return u
}

// SetBusinessType sets the "business_type" field.
func (u *BusinessUpsert) SetBusinessType(v business.BusinessType) *BusinessUpsert {
	u.Set(business.FieldBusinessType, v)
	return u
}

// UpdateBusinessType sets the "business_type" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateBusinessType() *BusinessUpsert {
	u.SetExcluded(business.FieldBusinessType)
	return u
}

// SetSlug sets the "slug" field.
func (u *BusinessUpsert) SetSlug(v string) *BusinessUpsert {
	u.Set(business.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateSlug() *BusinessUpsert {
	u.SetExcluded(business.FieldSlug)
	return u
}

// SetCurrencyCode sets the "currency_code" field.
func (u *BusinessUpsert) SetCurrencyCode(v string) *BusinessUpsert {
	u.Set(business.FieldCurrencyCode, v)
	return u
}

// UpdateCurrencyCode sets the "currency_code" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateCurrencyCode() *BusinessUpsert {
	u.SetExcluded(business.FieldCurrencyCode)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *BusinessUpsert) SetTimezone(v string) *BusinessUpsert {
	u.Set(business.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateTimezone() *BusinessUpsert {
	u.SetExcluded(business.FieldTimezone)
	return u
}

// SetLogoKey sets the "logo_key" field.
func (u *BusinessUpsert) SetLogoKey(v string) *BusinessUpsert {
	u.Set(business.FieldLogoKey, v)
	return u
}

// UpdateLogoKey sets the "logo_key" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateLogoKey() *BusinessUpsert {
	u.SetExcluded(business.FieldLogoKey)
	return u
}

// ClearLogoKey clears the value of the "logo_key" field.
func (u *BusinessUpsert) ClearLogoKey() *BusinessUpsert {
	u.SetNull(business.FieldLogoKey)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *BusinessUpsert) SetIsActive(v bool) *BusinessUpsert {
	u.Set(business.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateIsActive() *BusinessUpsert {
	u.SetExcluded(business.FieldIsActive)
	return u
}

// SetEnableTableManagement sets the "enable_table_management" field.
func (u *BusinessUpsert) SetEnableTableManagement(v bool) *BusinessUpsert {
	u.Set(business.FieldEnableTableManagement, v)
	return u
}

// UpdateEnableTableManagement sets the "enable_table_management" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateEnableTableManagement() *BusinessUpsert {
	u.SetExcluded(business.FieldEnableTableManagement)
	return u
}

// SetEnableWaiterAlerts sets the "enable_waiter_alerts" field.
func (u *BusinessUpsert) SetEnableWaiterAlerts(v bool) *BusinessUpsert {
	u.Set(business.FieldEnableWaiterAlerts, v)
	return u
}

// UpdateEnableWaiterAlerts sets the "enable_waiter_alerts" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateEnableWaiterAlerts() *BusinessUpsert {
	u.SetExcluded(business.FieldEnableWaiterAlerts)
	return u
}

// SetEnableRoomCharging sets the "enable_room_charging" field.
func (u *BusinessUpsert) SetEnableRoomCharging(v bool) *BusinessUpsert {
	u.Set(business.FieldEnableRoomCharging, v)
	return u
}

// UpdateEnableRoomCharging sets the "enable_room_charging" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateEnableRoomCharging() *BusinessUpsert {
	u.SetExcluded(business.FieldEnableRoomCharging)
	return u
}

// SetMenuTheme sets the "menu_theme" field.
func (u *BusinessUpsert) SetMenuTheme(v business.MenuTheme) *BusinessUpsert {
	u.Set(business.FieldMenuTheme, v)
	return u
}

// UpdateMenuTheme sets the "menu_theme" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateMenuTheme() *BusinessUpsert {
	u.SetExcluded(business.FieldMenuTheme)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BusinessUpsert) SetUpdatedAt(v time.Time) *BusinessUpsert {
	u.Set(business.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BusinessUpsert) UpdateUpdatedAt() *BusinessUpsert {
	u.SetExcluded(business.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Business.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BusinessUpsertOne) UpdateNewValues() *BusinessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(business.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Business.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BusinessUpsertOne) Ignore() *BusinessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BusinessUpsertOne) DoNothing() *BusinessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BusinessCreate.OnConflict
// documentation for more info.
func (u *BusinessUpsertOne) Update(set func(*BusinessUpsert)) *BusinessUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BusinessUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *BusinessUpsertOne) SetName(v string) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateName() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateName()
	})
}

// SetBusinessType sets the "business_type" field.
func (u *BusinessUpsertOne) SetBusinessType(v business.BusinessType) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetBusinessType(v)
	})
}

// UpdateBusinessType sets the "business_type" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateBusinessType() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateBusinessType()
	})
}

// SetSlug sets the "slug" field.
func (u *BusinessUpsertOne) SetSlug(v string) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateSlug() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateSlug()
	})
}

// SetCurrencyCode sets the "currency_code" field.
func (u *BusinessUpsertOne) SetCurrencyCode(v string) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetCurrencyCode(v)
	})
}

// UpdateCurrencyCode sets the "currency_code" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateCurrencyCode() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateCurrencyCode()
	})
}

// SetTimezone sets the "timezone" field.
func (u *BusinessUpsertOne) SetTimezone(v string) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateTimezone() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateTimezone()
	})
}

// SetLogoKey sets the "logo_key" field.
func (u *BusinessUpsertOne) SetLogoKey(v string) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetLogoKey(v)
	})
}

// UpdateLogoKey sets the "logo_key" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateLogoKey() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateLogoKey()
	})
}

// ClearLogoKey clears the value of the "logo_key" field.
func (u *BusinessUpsertOne) ClearLogoKey() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.ClearLogoKey()
	})
}

// SetIsActive sets the "is_active" field.
func (u *BusinessUpsertOne) SetIsActive(v bool) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateIsActive() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateIsActive()
	})
}

// SetEnableTableManagement sets the "enable_table_management" field.
func (u *BusinessUpsertOne) SetEnableTableManagement(v bool) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetEnableTableManagement(v)
	})
}

// UpdateEnableTableManagement sets the "enable_table_management" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateEnableTableManagement() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateEnableTableManagement()
	})
}

// SetEnableWaiterAlerts sets the "enable_waiter_alerts" field.
func (u *BusinessUpsertOne) SetEnableWaiterAlerts(v bool) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetEnableWaiterAlerts(v)
	})
}

// UpdateEnableWaiterAlerts sets the "enable_waiter_alerts" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateEnableWaiterAlerts() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateEnableWaiterAlerts()
	})
}

// SetEnableRoomCharging sets the "enable_room_charging" field.
func (u *BusinessUpsertOne) SetEnableRoomCharging(v bool) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetEnableRoomCharging(v)
	})
}

// UpdateEnableRoomCharging sets the "enable_room_charging" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateEnableRoomCharging() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateEnableRoomCharging()
	})
}

// SetMenuTheme sets the "menu_theme" field.
func (u *BusinessUpsertOne) SetMenuTheme(v business.MenuTheme) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetMenuTheme(v)
	})
}

// UpdateMenuTheme sets the "menu_theme" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateMenuTheme() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateMenuTheme()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BusinessUpsertOne) SetUpdatedAt(v time.Time) *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BusinessUpsertOne) UpdateUpdatedAt() *BusinessUpsertOne {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BusinessUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BusinessCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BusinessUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BusinessUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BusinessUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BusinessCreateBulk is the builder for creating many Business entities in bulk.
type BusinessCreateBulk struct {
	config
	err      error
	builders []*BusinessCreate
	conflict []sql.ConflictOption
}

// Save creates the Business entities in the database.
func (_c *BusinessCreateBulk) Save(ctx context.Context) ([]*Business, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Business, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusinessMutation)
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
func (_c *BusinessCreateBulk) SaveX(ctx context.Context) []*Business {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Business.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BusinessUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *BusinessCreateBulk) OnConflict(opts ...sql.ConflictOption) *BusinessUpsertBulk {
	_c.conflict = opts
	return &BusinessUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Business.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BusinessCreateBulk) OnConflictColumns(columns ...string) *BusinessUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BusinessUpsertBulk{
		create: _c,
	}
}

// BusinessUpsertBulk is the builder for "upsert"-ing
// a bulk of Business nodes.
type BusinessUpsertBulk struct {
	create *BusinessCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Business.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BusinessUpsertBulk) UpdateNewValues() *BusinessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(business.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Business.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BusinessUpsertBulk) Ignore() *BusinessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BusinessUpsertBulk) DoNothing() *BusinessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BusinessCreateBulk.OnConflict
// documentation for more info.
func (u *BusinessUpsertBulk) Update(set func(*BusinessUpsert)) *BusinessUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BusinessUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *BusinessUpsertBulk) SetName(v string) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateName() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateName()
	})
}

// SetBusinessType sets the "business_type" field.
func (u *BusinessUpsertBulk) SetBusinessType(v business.BusinessType) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetBusinessType(v)
	})
}

// UpdateBusinessType sets the "business_type" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateBusinessType() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateBusinessType()
	})
}

// SetSlug sets the "slug" field.
func (u *BusinessUpsertBulk) SetSlug(v string) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateSlug() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateSlug()
	})
}

// SetCurrencyCode sets the "currency_code" field.
func (u *BusinessUpsertBulk) SetCurrencyCode(v string) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetCurrencyCode(v)
	})
}

// UpdateCurrencyCode sets the "currency_code" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateCurrencyCode() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateCurrencyCode()
	})
}

// SetTimezone sets the "timezone" field.
func (u *BusinessUpsertBulk) SetTimezone(v string) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateTimezone() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateTimezone()
	})
}

// SetLogoKey sets the "logo_key" field.
func (u *BusinessUpsertBulk) SetLogoKey(v string) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetLogoKey(v)
	})
}

// UpdateLogoKey sets the "logo_key" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateLogoKey() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateLogoKey()
	})
}

// ClearLogoKey clears the value of the "logo_key" field.
func (u *BusinessUpsertBulk) ClearLogoKey() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.ClearLogoKey()
	})
}

// SetIsActive sets the "is_active" field.
func (u *BusinessUpsertBulk) SetIsActive(v bool) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateIsActive() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateIsActive()
	})
}

// SetEnableTableManagement sets the "enable_table_management" field.
func (u *BusinessUpsertBulk) SetEnableTableManagement(v bool) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetEnableTableManagement(v)
	})
}

// UpdateEnableTableManagement sets the "enable_table_management" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateEnableTableManagement() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateEnableTableManagement()
	})
}

// SetEnableWaiterAlerts sets the "enable_waiter_alerts" field.
func (u *BusinessUpsertBulk) SetEnableWaiterAlerts(v bool) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetEnableWaiterAlerts(v)
	})
}

// UpdateEnableWaiterAlerts sets the "enable_waiter_alerts" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateEnableWaiterAlerts() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateEnableWaiterAlerts()
	})
}

// SetEnableRoomCharging sets the "enable_room_charging" field.
func (u *BusinessUpsertBulk) SetEnableRoomCharging(v bool) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetEnableRoomCharging(v)
	})
}

// UpdateEnableRoomCharging sets the "enable_room_charging" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateEnableRoomCharging() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateEnableRoomCharging()
	})
}

// SetMenuTheme sets the "menu_theme" field.
func (u *BusinessUpsertBulk) SetMenuTheme(v business.MenuTheme) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetMenuTheme(v)
	})
}

// UpdateMenuTheme sets the "menu_theme" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateMenuTheme() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateMenuTheme()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BusinessUpsertBulk) SetUpdatedAt(v time.Time) *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BusinessUpsertBulk) UpdateUpdatedAt() *BusinessUpsertBulk {
	return u.Update(func(s *BusinessUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BusinessUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BusinessCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BusinessCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BusinessUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
