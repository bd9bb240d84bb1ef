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
	"github.com/menuqr/menuqr/ent/predicate"
	"github.com/menuqr/menuqr/ent/recommendationevent"
	"github.com/menuqr/menuqr/ent/staffuser"
	"github.com/menuqr/menuqr/ent/table"
	"github.com/menuqr/menuqr/ent/waiteralert"
)

// BusinessUpdate is the builder for updating Business entities.
type BusinessUpdate struct {
	config
	hooks    []Hook
	mutation *BusinessMutation
}

// Where appends a list predicates to the BusinessUpdate builder.
func (_u *BusinessUpdate) Where(ps ...predicate.Business) *BusinessUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *BusinessUpdate) SetName(v string) *BusinessUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableName(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetBusinessType sets the "business_type" field.
func (_u *BusinessUpdate) SetBusinessType(v business.BusinessType) *BusinessUpdate {
	_u.mutation.SetBusinessType(v)
	return _u
}

// SetNillableBusinessType sets the "business_type" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableBusinessType(v *business.BusinessType) *BusinessUpdate {
	if v != nil {
		_u.SetBusinessType(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *BusinessUpdate) SetSlug(v string) *BusinessUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableSlug(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *BusinessUpdate) SetCurrencyCode(v string) *BusinessUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableCurrencyCode(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *BusinessUpdate) SetTimezone(v string) *BusinessUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableTimezone(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetLogoKey sets the "logo_key" field.
func (_u *BusinessUpdate) SetLogoKey(v string) *BusinessUpdate {
	_u.mutation.SetLogoKey(v)
	return _u
}

// SetNillableLogoKey sets the "logo_key" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableLogoKey(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetLogoKey(*v)
	}
	return _u
}

// ClearLogoKey clears the value of the "logo_key" field.
func (_u *BusinessUpdate) ClearLogoKey() *BusinessUpdate {
	_u.mutation.ClearLogoKey()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *BusinessUpdate) SetIsActive(v bool) *BusinessUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableIsActive(v *bool) *BusinessUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetEnableTableManagement sets the "enable_table_management" field.
func (_u *BusinessUpdate) SetEnableTableManagement(v bool) *BusinessUpdate {
	_u.mutation.SetEnableTableManagement(v)
	return _u
}

// SetNillableEnableTableManagement sets the "enable_table_management" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableEnableTableManagement(v *bool) *BusinessUpdate {
	if v != nil {
		_u.SetEnableTableManagement(*v)
	}
	return _u
}

// SetEnableWaiterAlerts sets the "enable_waiter_alerts" field.
func (_u *BusinessUpdate) SetEnableWaiterAlerts(v bool) *BusinessUpdate {
	_u.mutation.SetEnableWaiterAlerts(v)
	return _u
}

// SetNillableEnableWaiterAlerts sets the "enable_waiter_alerts" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableEnableWaiterAlerts(v *bool) *BusinessUpdate {
	if v != nil {
		_u.SetEnableWaiterAlerts(*v)
	}
	return _u
}

// SetEnableRoomCharging sets the "enable_room_charging" field.
func (_u *BusinessUpdate) SetEnableRoomCharging(v bool) *BusinessUpdate {
	_u.mutation.SetEnableRoomCharging(v)
	return _u
}

// SetNillableEnableRoomCharging sets the "enable_room_charging" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableEnableRoomCharging(v *bool) *BusinessUpdate {
	if v != nil {
		_u.SetEnableRoomCharging(*v)
	}
	return _u
}

// SetMenuTheme sets the "menu_theme" field.
func (_u *BusinessUpdate) SetMenuTheme(v business.MenuTheme) *BusinessUpdate {
	_u.mutation.SetMenuTheme(v)
	return _u
}

// SetNillableMenuTheme sets the "menu_theme" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableMenuTheme(v *business.MenuTheme) *BusinessUpdate {
	if v != nil {
		_u.SetMenuTheme(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessUpdate) SetUpdatedAt(v time.Time) *BusinessUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCategoryIDs adds the "categories" edge to the Category entity by IDs.
func (_u *BusinessUpdate) AddCategoryIDs(ids ...int) *BusinessUpdate {
	_u.mutation.AddCategoryIDs(ids...)
	return _u
}

// AddCategories adds the "categories" edges to the Category entity.
func (_u *BusinessUpdate) AddCategories(v ...*Category) *BusinessUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCategoryIDs(ids...)
}

// AddTableIDs adds the "tables" edge to the Table entity by IDs.
func (_u *BusinessUpdate) AddTableIDs(ids ...int) *BusinessUpdate {
	_u.mutation.AddTableIDs(ids...)
	return _u
}

// AddTables adds the "tables" edges to the Table entity.
func (_u *BusinessUpdate) AddTables(v ...*Table) *BusinessUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTableIDs(ids...)
}

// AddOrderIDs adds the "orders" edge to the Order entity by IDs.
func (_u *BusinessUpdate) AddOrderIDs(ids ...uuid.UUID) *BusinessUpdate {
	_u.mutation.AddOrderIDs(ids...)
	return _u
}

// AddOrders adds the "orders" edges to the Order entity.
func (_u *BusinessUpdate) AddOrders(v ...*Order) *BusinessUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderIDs(ids...)
}

// AddItemPairIDs adds the "item_pairs" edge to the ItemPairFrequency entity by IDs.
func (_u *BusinessUpdate) AddItemPairIDs(ids ...int) *BusinessUpdate {
	_u.mutation.AddItemPairIDs(ids...)
	return _u
}

// AddItemPairs adds the "item_pairs" edges to the ItemPairFrequency entity.
func (_u *BusinessUpdate) AddItemPairs(v ...*ItemPairFrequency) *BusinessUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemPairIDs(ids...)
}

// AddRecommendationEventIDs adds the "recommendation_events" edge to the RecommendationEvent entity by IDs.
func (_u *BusinessUpdate) AddRecommendationEventIDs(ids ...int) *BusinessUpdate {
	_u.mutation.AddRecommendationEventIDs(ids...)
	return _u
}

// AddRecommendationEvents adds the "recommendation_events" edges to the RecommendationEvent entity.
func (_u *BusinessUpdate) AddRecommendationEvents(v ...*RecommendationEvent) *BusinessUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecommendationEventIDs(ids...)
}

// AddStaffIDs adds the "staff" edge to the StaffUser entity by IDs.
func (_u *BusinessUpdate) AddStaffIDs(ids ...int) *BusinessUpdate {
	_u.mutation.AddStaffIDs(ids...)
	return _u
}

// AddStaff adds the "staff" edges to the StaffUser entity.
func (_u *BusinessUpdate) AddStaff(v ...*StaffUser) *BusinessUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStaffIDs(ids...)
}

// AddWaiterAlertIDs adds the "waiter_alerts" edge to the WaiterAlert entity by IDs.
func (_u *BusinessUpdate) AddWaiterAlertIDs(ids ...int) *BusinessUpdate {
	_u.mutation.AddWaiterAlertIDs(ids...)
	return _u
}

// AddWaiterAlerts adds the "waiter_alerts" edges to the WaiterAlert entity.
func (_u *BusinessUpdate) AddWaiterAlerts(v ...*WaiterAlert) *BusinessUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWaiterAlertIDs(ids...)
}

// Mutation returns the BusinessMutation object of the builder.
func (_u *BusinessUpdate) Mutation() *BusinessMutation {
	return _u.mutation
}

// ClearCategories clears all "categories" edges to the Category entity.
func (_u *BusinessUpdate) ClearCategories() *BusinessUpdate {
	_u.mutation.ClearCategories()
	return _u
}

// RemoveCategoryIDs removes the "categories" edge to Category entities by IDs.
func (_u *BusinessUpdate) RemoveCategoryIDs(ids ...int) *BusinessUpdate {
	_u.mutation.RemoveCategoryIDs(ids...)
	return _u
}

// RemoveCategories removes "categories" edges to Category entities.
func (_u *BusinessUpdate) RemoveCategories(v ...*Category) *BusinessUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCategoryIDs(ids...)
}

// ClearTables clears all "tables" edges to the Table entity.
func (_u *BusinessUpdate) ClearTables() *BusinessUpdate {
	_u.mutation.ClearTables()
	return _u
}

// RemoveTableIDs removes the "tables" edge to Table entities by IDs.
func (_u *BusinessUpdate) RemoveTableIDs(ids ...int) *BusinessUpdate {
	_u.mutation.RemoveTableIDs(ids...)
	return _u
}

// RemoveTables removes "tables" edges to Table entities.
func (_u *BusinessUpdate) RemoveTables(v ...*Table) *BusinessUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTableIDs(ids...)
}

// ClearOrders clears all "orders" edges to the Order entity.
func (_u *BusinessUpdate) ClearOrders() *BusinessUpdate {
	_u.mutation.ClearOrders()
	return _u
}

// RemoveOrderIDs removes the "orders" edge to Order entities by IDs.
func (_u *BusinessUpdate) RemoveOrderIDs(ids ...uuid.UUID) *BusinessUpdate {
	_u.mutation.RemoveOrderIDs(ids...)
	return _u
}

// RemoveOrders removes "orders" edges to Order entities.
func (_u *BusinessUpdate) RemoveOrders(v ...*Order) *BusinessUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderIDs(ids...)
}

// ClearItemPairs clears all "item_pairs" edges to the ItemPairFrequency entity.
func (_u *BusinessUpdate) ClearItemPairs() *BusinessUpdate {
	_u.mutation.ClearItemPairs()
	return _u
}

// RemoveItemPairIDs removes the "item_pairs" edge to ItemPairFrequency entities by IDs.
func (_u *BusinessUpdate) RemoveItemPairIDs(ids ...int) *BusinessUpdate {
	_u.mutation.RemoveItemPairIDs(ids...)
	return _u
}

// RemoveItemPairs removes "item_pairs" edges to ItemPairFrequency entities.
func (_u *BusinessUpdate) RemoveItemPairs(v ...*ItemPairFrequency) *BusinessUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemPairIDs(ids...)
}

// ClearRecommendationEvents clears all "recommendation_events" edges to the RecommendationEvent entity.
func (_u *BusinessUpdate) ClearRecommendationEvents() *BusinessUpdate {
	_u.mutation.ClearRecommendationEvents()
	return _u
}

// RemoveRecommendationEventIDs removes the "recommendation_events" edge to RecommendationEvent entities by IDs.
func (_u *BusinessUpdate) RemoveRecommendationEventIDs(ids ...int) *BusinessUpdate {
	_u.mutation.RemoveRecommendationEventIDs(ids...)
	return _u
}

// RemoveRecommendationEvents removes "recommendation_events" edges to RecommendationEvent entities.
func (_u *BusinessUpdate) RemoveRecommendationEvents(v ...*RecommendationEvent) *BusinessUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecommendationEventIDs(ids...)
}

// ClearStaff clears all "staff" edges to the StaffUser entity.
func (_u *BusinessUpdate) ClearStaff() *BusinessUpdate {
	_u.mutation.ClearStaff()
	return _u
}

// RemoveStaffIDs removes the "staff" edge to StaffUser entities by IDs.
func (_u *BusinessUpdate) RemoveStaffIDs(ids ...int) *BusinessUpdate {
	_u.mutation.RemoveStaffIDs(ids...)
	return _u
}

// RemoveStaff removes "staff" edges to StaffUser entities.
func (_u *BusinessUpdate) RemoveStaff(v ...*StaffUser) *BusinessUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStaffIDs(ids...)
}

// ClearWaiterAlerts clears all "waiter_alerts" edges to the WaiterAlert entity.
func (_u *BusinessUpdate) ClearWaiterAlerts() *BusinessUpdate {
	_u.mutation.ClearWaiterAlerts()
	return _u
}

// RemoveWaiterAlertIDs removes the "waiter_alerts" edge to WaiterAlert entities by IDs.
func (_u *BusinessUpdate) RemoveWaiterAlertIDs(ids ...int) *BusinessUpdate {
	_u.mutation.RemoveWaiterAlertIDs(ids...)
	return _u
}

// RemoveWaiterAlerts removes "waiter_alerts" edges to WaiterAlert entities.
func (_u *BusinessUpdate) RemoveWaiterAlerts(v ...*WaiterAlert) *BusinessUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWaiterAlertIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusinessUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusinessUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := business.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := business.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Business.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BusinessType(); ok {
		if err := business.BusinessTypeValidator(v); err != nil {
			return &ValidationError{Name: "business_type", err: fmt.Errorf(`ent: validator failed for field "Business.business_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := business.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Business.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := business.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Business.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MenuTheme(); ok {
		if err := business.MenuThemeValidator(v); err != nil {
			return &ValidationError{Name: "menu_theme", err: fmt.Errorf(`ent: validator failed for field "Business.menu_theme": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(business.Table, business.Columns, sqlgraph.NewFieldSpec(business.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(business.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BusinessType(); ok {
		_spec.SetField(business.FieldBusinessType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(business.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(business.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(business.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.LogoKey(); ok {
		_spec.SetField(business.FieldLogoKey, field.TypeString, value)
	}
	if _u.mutation.LogoKeyCleared() {
		_spec.ClearField(business.FieldLogoKey, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(business.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EnableTableManagement(); ok {
		_spec.SetField(business.FieldEnableTableManagement, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EnableWaiterAlerts(); ok {
		_spec.SetField(business.FieldEnableWaiterAlerts, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EnableRoomCharging(); ok {
		_spec.SetField(business.FieldEnableRoomCharging, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MenuTheme(); ok {
		_spec.SetField(business.FieldMenuTheme, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(business.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CategoriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCategoriesIDs(); len(nodes) > 0 && !_u.mutation.CategoriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TablesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTablesIDs(); len(nodes) > 0 && !_u.mutation.TablesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TablesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrdersIDs(); len(nodes) > 0 && !_u.mutation.OrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrdersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemPairsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemPairsIDs(); len(nodes) > 0 && !_u.mutation.ItemPairsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemPairsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecommendationEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecommendationEventsIDs(); len(nodes) > 0 && !_u.mutation.RecommendationEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecommendationEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StaffCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStaffIDs(); len(nodes) > 0 && !_u.mutation.StaffCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StaffIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WaiterAlertsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWaiterAlertsIDs(); len(nodes) > 0 && !_u.mutation.WaiterAlertsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WaiterAlertsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{business.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusinessUpdateOne is the builder for updating a single Business entity.
type BusinessUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusinessMutation
}

// SetName sets the "name" field.
func (_u *BusinessUpdateOne) SetName(v string) *BusinessUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableName(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetBusinessType sets the "business_type" field.
func (_u *BusinessUpdateOne) SetBusinessType(v business.BusinessType) *BusinessUpdateOne {
	_u.mutation.SetBusinessType(v)
	return _u
}

// SetNillableBusinessType sets the "business_type" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableBusinessType(v *business.BusinessType) *BusinessUpdateOne {
	if v != nil {
		_u.SetBusinessType(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *BusinessUpdateOne) SetSlug(v string) *BusinessUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableSlug(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *BusinessUpdateOne) SetCurrencyCode(v string) *BusinessUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableCurrencyCode(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *BusinessUpdateOne) SetTimezone(v string) *BusinessUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableTimezone(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetLogoKey sets the "logo_key" field.
func (_u *BusinessUpdateOne) SetLogoKey(v string) *BusinessUpdateOne {
	_u.mutation.SetLogoKey(v)
	return _u
}

// SetNillableLogoKey sets the "logo_key" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableLogoKey(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetLogoKey(*v)
	}
	return _u
}

// ClearLogoKey clears the value of the "logo_key" field.
func (_u *BusinessUpdateOne) ClearLogoKey() *BusinessUpdateOne {
	_u.mutation.ClearLogoKey()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *BusinessUpdateOne) SetIsActive(v bool) *BusinessUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableIsActive(v *bool) *BusinessUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetEnableTableManagement sets the "enable_table_management" field.
func (_u *BusinessUpdateOne) SetEnableTableManagement(v bool) *BusinessUpdateOne {
	_u.mutation.SetEnableTableManagement(v)
	return _u
}

// SetNillableEnableTableManagement sets the "enable_table_management" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableEnableTableManagement(v *bool) *BusinessUpdateOne {
	if v != nil {
		_u.SetEnableTableManagement(*v)
	}
	return _u
}

// SetEnableWaiterAlerts sets the "enable_waiter_alerts" field.
func (_u *BusinessUpdateOne) SetEnableWaiterAlerts(v bool) *BusinessUpdateOne {
	_u.mutation.SetEnableWaiterAlerts(v)
	return _u
}

// SetNillableEnableWaiterAlerts sets the "enable_waiter_alerts" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableEnableWaiterAlerts(v *bool) *BusinessUpdateOne {
	if v != nil {
		_u.SetEnableWaiterAlerts(*v)
	}
	return _u
}

// SetEnableRoomCharging sets the "enable_room_charging" field.
func (_u *BusinessUpdateOne) SetEnableRoomCharging(v bool) *BusinessUpdateOne {
	_u.mutation.SetEnableRoomCharging(v)
	return _u
}

// SetNillableEnableRoomCharging sets the "enable_room_charging" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableEnableRoomCharging(v *bool) *BusinessUpdateOne {
	if v != nil {
		_u.SetEnableRoomCharging(*v)
	}
	return _u
}

// SetMenuTheme sets the "menu_theme" field.
func (_u *BusinessUpdateOne) SetMenuTheme(v business.MenuTheme) *BusinessUpdateOne {
	_u.mutation.SetMenuTheme(v)
	return _u
}

// SetNillableMenuTheme sets the "menu_theme" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableMenuTheme(v *business.MenuTheme) *BusinessUpdateOne {
	if v != nil {
		_u.SetMenuTheme(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessUpdateOne) SetUpdatedAt(v time.Time) *BusinessUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCategoryIDs adds the "categories" edge to the Category entity by IDs.
func (_u *BusinessUpdateOne) AddCategoryIDs(ids ...int) *BusinessUpdateOne {
	_u.mutation.AddCategoryIDs(ids...)
	return _u
}

// AddCategories adds the "categories" edges to the Category entity.
func (_u *BusinessUpdateOne) AddCategories(v ...*Category) *BusinessUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCategoryIDs(ids...)
}

// AddTableIDs adds the "tables" edge to the Table entity by IDs.
func (_u *BusinessUpdateOne) AddTableIDs(ids ...int) *BusinessUpdateOne {
	_u.mutation.AddTableIDs(ids...)
	return _u
}

// AddTables adds the "tables" edges to the Table entity.
func (_u *BusinessUpdateOne) AddTables(v ...*Table) *BusinessUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTableIDs(ids...)
}

// AddOrderIDs adds the "orders" edge to the Order entity by IDs.
func (_u *BusinessUpdateOne) AddOrderIDs(ids ...uuid.UUID) *BusinessUpdateOne {
	_u.mutation.AddOrderIDs(ids...)
	return _u
}

// AddOrders adds the "orders" edges to the Order entity.
func (_u *BusinessUpdateOne) AddOrders(v ...*Order) *BusinessUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderIDs(ids...)
}

// AddItemPairIDs adds the "item_pairs" edge to the ItemPairFrequency entity by IDs.
func (_u *BusinessUpdateOne) AddItemPairIDs(ids ...int) *BusinessUpdateOne {
	_u.mutation.AddItemPairIDs(ids...)
	return _u
}

// AddItemPairs adds the "item_pairs" edges to the ItemPairFrequency entity.
func (_u *BusinessUpdateOne) AddItemPairs(v ...*ItemPairFrequency) *BusinessUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemPairIDs(ids...)
}

// AddRecommendationEventIDs adds the "recommendation_events" edge to the RecommendationEvent entity by IDs.
func (_u *BusinessUpdateOne) AddRecommendationEventIDs(ids ...int) *BusinessUpdateOne {
	_u.mutation.AddRecommendationEventIDs(ids...)
	return _u
}

// AddRecommendationEvents adds the "recommendation_events" edges to the RecommendationEvent entity.
func (_u *BusinessUpdateOne) AddRecommendationEvents(v ...*RecommendationEvent) *BusinessUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecommendationEventIDs(ids...)
}

// AddStaffIDs adds the "staff" edge to the StaffUser entity by IDs.
func (_u *BusinessUpdateOne) AddStaffIDs(ids ...int) *BusinessUpdateOne {
	_u.mutation.AddStaffIDs(ids...)
	return _u
}

// AddStaff adds the "staff" edges to the StaffUser entity.
func (_u *BusinessUpdateOne) AddStaff(v ...*StaffUser) *BusinessUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStaffIDs(ids...)
}

// AddWaiterAlertIDs adds the "waiter_alerts" edge to the WaiterAlert entity by IDs.
func (_u *BusinessUpdateOne) AddWaiterAlertIDs(ids ...int) *BusinessUpdateOne {
	_u.mutation.AddWaiterAlertIDs(ids...)
	return _u
}

// AddWaiterAlerts adds the "waiter_alerts" edges to the WaiterAlert entity.
func (_u *BusinessUpdateOne) AddWaiterAlerts(v ...*WaiterAlert) *BusinessUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWaiterAlertIDs(ids...)
}

// Mutation returns the BusinessMutation object of the builder.
func (_u *BusinessUpdateOne) Mutation() *BusinessMutation {
	return _u.mutation
}

// ClearCategories clears all "categories" edges to the Category entity.
func (_u *BusinessUpdateOne) ClearCategories() *BusinessUpdateOne {
	_u.mutation.ClearCategories()
	return _u
}

// RemoveCategoryIDs removes the "categories" edge to Category entities by IDs.
func (_u *BusinessUpdateOne) RemoveCategoryIDs(ids ...int) *BusinessUpdateOne {
	_u.mutation.RemoveCategoryIDs(ids...)
	return _u
}

// RemoveCategories removes "categories" edges to Category entities.
func (_u *BusinessUpdateOne) RemoveCategories(v ...*Category) *BusinessUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCategoryIDs(ids...)
}

// ClearTables clears all "tables" edges to the Table entity.
func (_u *BusinessUpdateOne) ClearTables() *BusinessUpdateOne {
	_u.mutation.ClearTables()
	return _u
}

// RemoveTableIDs removes the "tables" edge to Table entities by IDs.
func (_u *BusinessUpdateOne) RemoveTableIDs(ids ...int) *BusinessUpdateOne {
	_u.mutation.RemoveTableIDs(ids...)
	return _u
}

// RemoveTables removes "tables" edges to Table entities.
func (_u *BusinessUpdateOne) RemoveTables(v ...*Table) *BusinessUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTableIDs(ids...)
}

// ClearOrders clears all "orders" edges to the Order entity.
func (_u *BusinessUpdateOne) ClearOrders() *BusinessUpdateOne {
	_u.mutation.ClearOrders()
	return _u
}

// RemoveOrderIDs removes the "orders" edge to Order entities by IDs.
func (_u *BusinessUpdateOne) RemoveOrderIDs(ids ...uuid.UUID) *BusinessUpdateOne {
	_u.mutation.RemoveOrderIDs(ids...)
	return _u
}

// RemoveOrders removes "orders" edges to Order entities.
func (_u *BusinessUpdateOne) RemoveOrders(v ...*Order) *BusinessUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderIDs(ids...)
}

// ClearItemPairs clears all "item_pairs" edges to the ItemPairFrequency entity.
func (_u *BusinessUpdateOne) ClearItemPairs() *BusinessUpdateOne {
	_u.mutation.ClearItemPairs()
	return _u
}

// RemoveItemPairIDs removes the "item_pairs" edge to ItemPairFrequency entities by IDs.
func (_u *BusinessUpdateOne) RemoveItemPairIDs(ids ...int) *BusinessUpdateOne {
	_u.mutation.RemoveItemPairIDs(ids...)
	return _u
}

// RemoveItemPairs removes "item_pairs" edges to ItemPairFrequency entities.
func (_u *BusinessUpdateOne) RemoveItemPairs(v ...*ItemPairFrequency) *BusinessUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemPairIDs(ids...)
}

// ClearRecommendationEvents clears all "recommendation_events" edges to the RecommendationEvent entity.
func (_u *BusinessUpdateOne) ClearRecommendationEvents() *BusinessUpdateOne {
	_u.mutation.ClearRecommendationEvents()
	return _u
}

// RemoveRecommendationEventIDs removes the "recommendation_events" edge to RecommendationEvent entities by IDs.
func (_u *BusinessUpdateOne) RemoveRecommendationEventIDs(ids ...int) *BusinessUpdateOne {
	_u.mutation.RemoveRecommendationEventIDs(ids...)
	return _u
}

// RemoveRecommendationEvents removes "recommendation_events" edges to RecommendationEvent entities.
func (_u *BusinessUpdateOne) RemoveRecommendationEvents(v ...*RecommendationEvent) *BusinessUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecommendationEventIDs(ids...)
}

// ClearStaff clears all "staff" edges to the StaffUser entity.
func (_u *BusinessUpdateOne) ClearStaff() *BusinessUpdateOne {
	_u.mutation.ClearStaff()
	return _u
}

// RemoveStaffIDs removes the "staff" edge to StaffUser entities by IDs.
func (_u *BusinessUpdateOne) RemoveStaffIDs(ids ...int) *BusinessUpdateOne {
	_u.mutation.RemoveStaffIDs(ids...)
	return _u
}

// RemoveStaff removes "staff" edges to StaffUser entities.
func (_u *BusinessUpdateOne) RemoveStaff(v ...*StaffUser) *BusinessUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStaffIDs(ids...)
}

// ClearWaiterAlerts clears all "waiter_alerts" edges to the WaiterAlert entity.
func (_u *BusinessUpdateOne) ClearWaiterAlerts() *BusinessUpdateOne {
	_u.mutation.ClearWaiterAlerts()
	return _u
}

// RemoveWaiterAlertIDs removes the "waiter_alerts" edge to WaiterAlert entities by IDs.
func (_u *BusinessUpdateOne) RemoveWaiterAlertIDs(ids ...int) *BusinessUpdateOne {
	_u.mutation.RemoveWaiterAlertIDs(ids...)
	return _u
}

// RemoveWaiterAlerts removes "waiter_alerts" edges to WaiterAlert entities.
func (_u *BusinessUpdateOne) RemoveWaiterAlerts(v ...*WaiterAlert) *BusinessUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWaiterAlertIDs(ids...)
}

// Where appends a list predicates to the BusinessUpdate builder.
func (_u *BusinessUpdateOne) Where(ps ...predicate.Business) *BusinessUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusinessUpdateOne) Select(field string, fields ...string) *BusinessUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Business entity.
func (_u *BusinessUpdateOne) Save(ctx context.Context) (*Business, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessUpdateOne) SaveX(ctx context.Context) *Business {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusinessUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := business.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := business.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Business.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BusinessType(); ok {
		if err := business.BusinessTypeValidator(v); err != nil {
			return &ValidationError{Name: "business_type", err: fmt.Errorf(`ent: validator failed for field "Business.business_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := business.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Business.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := business.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Business.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MenuTheme(); ok {
		if err := business.MenuThemeValidator(v); err != nil {
			return &ValidationError{Name: "menu_theme", err: fmt.Errorf(`ent: validator failed for field "Business.menu_theme": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessUpdateOne) sqlSave(ctx context.Context) (_node *Business, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(business.Table, business.Columns, sqlgraph.NewFieldSpec(business.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Business.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, business.FieldID)
		for _, f := range fields {
			if !business.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != business.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(business.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BusinessType(); ok {
		_spec.SetField(business.FieldBusinessType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(business.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(business.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(business.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.LogoKey(); ok {
		_spec.SetField(business.FieldLogoKey, field.TypeString, value)
	}
	if _u.mutation.LogoKeyCleared() {
		_spec.ClearField(business.FieldLogoKey, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(business.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EnableTableManagement(); ok {
		_spec.SetField(business.FieldEnableTableManagement, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EnableWaiterAlerts(); ok {
		_spec.SetField(business.FieldEnableWaiterAlerts, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EnableRoomCharging(); ok {
		_spec.SetField(business.FieldEnableRoomCharging, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MenuTheme(); ok {
		_spec.SetField(business.FieldMenuTheme, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(business.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CategoriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCategoriesIDs(); len(nodes) > 0 && !_u.mutation.CategoriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TablesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTablesIDs(); len(nodes) > 0 && !_u.mutation.TablesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TablesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrdersIDs(); len(nodes) > 0 && !_u.mutation.OrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrdersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemPairsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemPairsIDs(); len(nodes) > 0 && !_u.mutation.ItemPairsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemPairsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecommendationEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecommendationEventsIDs(); len(nodes) > 0 && !_u.mutation.RecommendationEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecommendationEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StaffCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStaffIDs(); len(nodes) > 0 && !_u.mutation.StaffCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StaffIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WaiterAlertsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWaiterAlertsIDs(); len(nodes) > 0 && !_u.mutation.WaiterAlertsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WaiterAlertsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Business{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{business.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
