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
	"github.com/menuqr/menuqr/ent/category"
	"github.com/menuqr/menuqr/ent/menuitem"
	"github.com/menuqr/menuqr/ent/orderitem"
	"github.com/menuqr/menuqr/ent/predicate"
)

// MenuItemUpdate is the builder for updating MenuItem entities.
type MenuItemUpdate struct {
	config
	hooks    []Hook
	mutation *MenuItemMutation
}

// Where appends a list predicates to the MenuItemUpdate builder.
func (_u *MenuItemUpdate) Where(ps ...predicate.MenuItem) *MenuItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *MenuItemUpdate) SetCategoryID(v int) *MenuItemUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableCategoryID(v *int) *MenuItemUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MenuItemUpdate) SetName(v string) *MenuItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableName(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MenuItemUpdate) SetDescription(v string) *MenuItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableDescription(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MenuItemUpdate) ClearDescription() *MenuItemUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPrice sets the "price" field.
func (_u *MenuItemUpdate) SetPrice(v float64) *MenuItemUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillablePrice(v *float64) *MenuItemUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *MenuItemUpdate) AddPrice(v float64) *MenuItemUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetImageKey sets the "image_key" field.
func (_u *MenuItemUpdate) SetImageKey(v string) *MenuItemUpdate {
	_u.mutation.SetImageKey(v)
	return _u
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableImageKey(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetImageKey(*v)
	}
	return _u
}

// ClearImageKey clears the value of the "image_key" field.
func (_u *MenuItemUpdate) ClearImageKey() *MenuItemUpdate {
	_u.mutation.ClearImageKey()
	return _u
}

// SetIsAvailable sets the "is_available" field.
func (_u *MenuItemUpdate) SetIsAvailable(v bool) *MenuItemUpdate {
	_u.mutation.SetIsAvailable(v)
	return _u
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableIsAvailable(v *bool) *MenuItemUpdate {
	if v != nil {
		_u.SetIsAvailable(*v)
	}
	return _u
}

// SetIsVegetarian sets the "is_vegetarian" field.
func (_u *MenuItemUpdate) SetIsVegetarian(v bool) *MenuItemUpdate {
	_u.mutation.SetIsVegetarian(v)
	return _u
}

// SetNillableIsVegetarian sets the "is_vegetarian" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableIsVegetarian(v *bool) *MenuItemUpdate {
	if v != nil {
		_u.SetIsVegetarian(*v)
	}
	return _u
}

// SetIsVegan sets the "is_vegan" field.
func (_u *MenuItemUpdate) SetIsVegan(v bool) *MenuItemUpdate {
	_u.mutation.SetIsVegan(v)
	return _u
}

// SetNillableIsVegan sets the "is_vegan" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableIsVegan(v *bool) *MenuItemUpdate {
	if v != nil {
		_u.SetIsVegan(*v)
	}
	return _u
}

// SetIsGlutenFree sets the "is_gluten_free" field.
func (_u *MenuItemUpdate) SetIsGlutenFree(v bool) *MenuItemUpdate {
	_u.mutation.SetIsGlutenFree(v)
	return _u
}

// SetNillableIsGlutenFree sets the "is_gluten_free" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableIsGlutenFree(v *bool) *MenuItemUpdate {
	if v != nil {
		_u.SetIsGlutenFree(*v)
	}
	return _u
}

// SetIsFeatured sets the "is_featured" field.
func (_u *MenuItemUpdate) SetIsFeatured(v bool) *MenuItemUpdate {
	_u.mutation.SetIsFeatured(v)
	return _u
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableIsFeatured(v *bool) *MenuItemUpdate {
	if v != nil {
		_u.SetIsFeatured(*v)
	}
	return _u
}

// SetIsDailySpecial sets the "is_daily_special" field.
func (_u *MenuItemUpdate) SetIsDailySpecial(v bool) *MenuItemUpdate {
	_u.mutation.SetIsDailySpecial(v)
	return _u
}

// SetNillableIsDailySpecial sets the "is_daily_special" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableIsDailySpecial(v *bool) *MenuItemUpdate {
	if v != nil {
		_u.SetIsDailySpecial(*v)
	}
	return _u
}

// SetSpiceLevel sets the "spice_level" field.
func (_u *MenuItemUpdate) SetSpiceLevel(v menuitem.SpiceLevel) *MenuItemUpdate {
	_u.mutation.SetSpiceLevel(v)
	return _u
}

// SetNillableSpiceLevel sets the "spice_level" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableSpiceLevel(v *menuitem.SpiceLevel) *MenuItemUpdate {
	if v != nil {
		_u.SetSpiceLevel(*v)
	}
	return _u
}

// SetAllergens sets the "allergens" field.
func (_u *MenuItemUpdate) SetAllergens(v string) *MenuItemUpdate {
	_u.mutation.SetAllergens(v)
	return _u
}

// SetNillableAllergens sets the "allergens" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillableAllergens(v *string) *MenuItemUpdate {
	if v != nil {
		_u.SetAllergens(*v)
	}
	return _u
}

// ClearAllergens clears the value of the "allergens" field.
func (_u *MenuItemUpdate) ClearAllergens() *MenuItemUpdate {
	_u.mutation.ClearAllergens()
	return _u
}

// SetPrepTimeMinutes sets the "prep_time_minutes" field.
func (_u *MenuItemUpdate) SetPrepTimeMinutes(v int) *MenuItemUpdate {
	_u.mutation.ResetPrepTimeMinutes()
	_u.mutation.SetPrepTimeMinutes(v)
	return _u
}

// SetNillablePrepTimeMinutes sets the "prep_time_minutes" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillablePrepTimeMinutes(v *int) *MenuItemUpdate {
	if v != nil {
		_u.SetPrepTimeMinutes(*v)
	}
	return _u
}

// AddPrepTimeMinutes adds value to the "prep_time_minutes" field.
func (_u *MenuItemUpdate) AddPrepTimeMinutes(v int) *MenuItemUpdate {
	_u.mutation.AddPrepTimeMinutes(v)
	return _u
}

// SetPopularityScore sets the "popularity_score" field.
func (_u *MenuItemUpdate) SetPopularityScore(v int) *MenuItemUpdate {
	_u.mutation.ResetPopularityScore()
	_u.mutation.SetPopularityScore(v)
	return _u
}

// SetNillablePopularityScore sets the "popularity_score" field if the given value is not nil.
func (_u *MenuItemUpdate) SetNillablePopularityScore(v *int) *MenuItemUpdate {
	if v != nil {
		_u.SetPopularityScore(*v)
	}
	return _u
}

// AddPopularityScore adds value to the "popularity_score" field.
func (_u *MenuItemUpdate) AddPopularityScore(v int) *MenuItemUpdate {
	_u.mutation.AddPopularityScore(v)
	return _u
}

// SetCustomizationOptions sets the "customization_options" field.
func (_u *MenuItemUpdate) SetCustomizationOptions(v map[string]interface{}) *MenuItemUpdate {
	_u.mutation.SetCustomizationOptions(v)
	return _u
}

// ClearCustomizationOptions clears the value of the "customization_options" field.
func (_u *MenuItemUpdate) ClearCustomizationOptions() *MenuItemUpdate {
	_u.mutation.ClearCustomizationOptions()
	return _u
}

// SetNutritionalInfo sets the "nutritional_info" field.
func (_u *MenuItemUpdate) SetNutritionalInfo(v map[string]interface{}) *MenuItemUpdate {
	_u.mutation.SetNutritionalInfo(v)
	return _u
}

// ClearNutritionalInfo clears the value of the "nutritional_info" field.
func (_u *MenuItemUpdate) ClearNutritionalInfo() *MenuItemUpdate {
	_u.mutation.ClearNutritionalInfo()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MenuItemUpdate) SetUpdatedAt(v time.Time) *MenuItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *MenuItemUpdate) SetCategory(v *Category) *MenuItemUpdate {
	return _u.SetCategoryID(v.ID)
}

// AddOrderItemIDs adds the "order_items" edge to the OrderItem entity by IDs.
func (_u *MenuItemUpdate) AddOrderItemIDs(ids ...int) *MenuItemUpdate {
	_u.mutation.AddOrderItemIDs(ids...)
	return _u
}

// AddOrderItems adds the "order_items" edges to the OrderItem entity.
func (_u *MenuItemUpdate) AddOrderItems(v ...*OrderItem) *MenuItemUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderItemIDs(ids...)
}

// Mutation returns the MenuItemMutation object of the builder.
func (_u *MenuItemUpdate) Mutation() *MenuItemMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *MenuItemUpdate) ClearCategory() *MenuItemUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// ClearOrderItems clears all "order_items" edges to the OrderItem entity.
func (_u *MenuItemUpdate) ClearOrderItems() *MenuItemUpdate {
	_u.mutation.ClearOrderItems()
	return _u
}

// RemoveOrderItemIDs removes the "order_items" edge to OrderItem entities by IDs.
func (_u *MenuItemUpdate) RemoveOrderItemIDs(ids ...int) *MenuItemUpdate {
	_u.mutation.RemoveOrderItemIDs(ids...)
	return _u
}

// RemoveOrderItems removes "order_items" edges to OrderItem entities.
func (_u *MenuItemUpdate) RemoveOrderItems(v ...*OrderItem) *MenuItemUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MenuItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MenuItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MenuItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MenuItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MenuItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := menuitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MenuItemUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := menuitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MenuItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := menuitem.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "MenuItem.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SpiceLevel(); ok {
		if err := menuitem.SpiceLevelValidator(v); err != nil {
			return &ValidationError{Name: "spice_level", err: fmt.Errorf(`ent: validator failed for field "MenuItem.spice_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrepTimeMinutes(); ok {
		if err := menuitem.PrepTimeMinutesValidator(v); err != nil {
			return &ValidationError{Name: "prep_time_minutes", err: fmt.Errorf(`ent: validator failed for field "MenuItem.prep_time_minutes": %w`, err)}
		}
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MenuItem.category"`)
	}
	return nil
}

func (_u *MenuItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(menuitem.Table, menuitem.Columns, sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(menuitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(menuitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(menuitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(menuitem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(menuitem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ImageKey(); ok {
		_spec.SetField(menuitem.FieldImageKey, field.TypeString, value)
	}
	if _u.mutation.ImageKeyCleared() {
		_spec.ClearField(menuitem.FieldImageKey, field.TypeString)
	}
	if value, ok := _u.mutation.IsAvailable(); ok {
		_spec.SetField(menuitem.FieldIsAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsVegetarian(); ok {
		_spec.SetField(menuitem.FieldIsVegetarian, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsVegan(); ok {
		_spec.SetField(menuitem.FieldIsVegan, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsGlutenFree(); ok {
		_spec.SetField(menuitem.FieldIsGlutenFree, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsFeatured(); ok {
		_spec.SetField(menuitem.FieldIsFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsDailySpecial(); ok {
		_spec.SetField(menuitem.FieldIsDailySpecial, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SpiceLevel(); ok {
		_spec.SetField(menuitem.FieldSpiceLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Allergens(); ok {
		_spec.SetField(menuitem.FieldAllergens, field.TypeString, value)
	}
	if _u.mutation.AllergensCleared() {
		_spec.ClearField(menuitem.FieldAllergens, field.TypeString)
	}
	if value, ok := _u.mutation.PrepTimeMinutes(); ok {
		_spec.SetField(menuitem.FieldPrepTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrepTimeMinutes(); ok {
		_spec.AddField(menuitem.FieldPrepTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PopularityScore(); ok {
		_spec.SetField(menuitem.FieldPopularityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPopularityScore(); ok {
		_spec.AddField(menuitem.FieldPopularityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CustomizationOptions(); ok {
		_spec.SetField(menuitem.FieldCustomizationOptions, field.TypeJSON, value)
	}
	if _u.mutation.CustomizationOptionsCleared() {
		_spec.ClearField(menuitem.FieldCustomizationOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.NutritionalInfo(); ok {
		_spec.SetField(menuitem.FieldNutritionalInfo, field.TypeJSON, value)
	}
	if _u.mutation.NutritionalInfoCleared() {
		_spec.ClearField(menuitem.FieldNutritionalInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(menuitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   menuitem.CategoryTable,
			Columns: []string{menuitem.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   menuitem.CategoryTable,
			Columns: []string{menuitem.CategoryColumn},
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
	if _u.mutation.OrderItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menuitem.OrderItemsTable,
			Columns: []string{menuitem.OrderItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrderItemsIDs(); len(nodes) > 0 && !_u.mutation.OrderItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menuitem.OrderItemsTable,
			Columns: []string{menuitem.OrderItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menuitem.OrderItemsTable,
			Columns: []string{menuitem.OrderItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{menuitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MenuItemUpdateOne is the builder for updating a single MenuItem entity.
type MenuItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MenuItemMutation
}

// SetCategoryID sets the "category_id" field.
func (_u *MenuItemUpdateOne) SetCategoryID(v int) *MenuItemUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableCategoryID(v *int) *MenuItemUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MenuItemUpdateOne) SetName(v string) *MenuItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableName(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MenuItemUpdateOne) SetDescription(v string) *MenuItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableDescription(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MenuItemUpdateOne) ClearDescription() *MenuItemUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPrice sets the "price" field.
func (_u *MenuItemUpdateOne) SetPrice(v float64) *MenuItemUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillablePrice(v *float64) *MenuItemUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *MenuItemUpdateOne) AddPrice(v float64) *MenuItemUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetImageKey sets the "image_key" field.
func (_u *MenuItemUpdateOne) SetImageKey(v string) *MenuItemUpdateOne {
	_u.mutation.SetImageKey(v)
	return _u
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableImageKey(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetImageKey(*v)
	}
	return _u
}

// ClearImageKey clears the value of the "image_key" field.
func (_u *MenuItemUpdateOne) ClearImageKey() *MenuItemUpdateOne {
	_u.mutation.ClearImageKey()
	return _u
}

// SetIsAvailable sets the "is_available" field.
func (_u *MenuItemUpdateOne) SetIsAvailable(v bool) *MenuItemUpdateOne {
	_u.mutation.SetIsAvailable(v)
	return _u
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableIsAvailable(v *bool) *MenuItemUpdateOne {
	if v != nil {
		_u.SetIsAvailable(*v)
	}
	return _u
}

// SetIsVegetarian sets the "is_vegetarian" field.
func (_u *MenuItemUpdateOne) SetIsVegetarian(v bool) *MenuItemUpdateOne {
	_u.mutation.SetIsVegetarian(v)
	return _u
}

// SetNillableIsVegetarian sets the "is_vegetarian" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableIsVegetarian(v *bool) *MenuItemUpdateOne {
	if v != nil {
		_u.SetIsVegetarian(*v)
	}
	return _u
}

// SetIsVegan sets the "is_vegan" field.
func (_u *MenuItemUpdateOne) SetIsVegan(v bool) *MenuItemUpdateOne {
	_u.mutation.SetIsVegan(v)
	return _u
}

// SetNillableIsVegan sets the "is_vegan" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableIsVegan(v *bool) *MenuItemUpdateOne {
	if v != nil {
		_u.SetIsVegan(*v)
	}
	return _u
}

// SetIsGlutenFree sets the "is_gluten_free" field.
func (_u *MenuItemUpdateOne) SetIsGlutenFree(v bool) *MenuItemUpdateOne {
	_u.mutation.SetIsGlutenFree(v)
	return _u
}

// SetNillableIsGlutenFree sets the "is_gluten_free" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableIsGlutenFree(v *bool) *MenuItemUpdateOne {
	if v != nil {
		_u.SetIsGlutenFree(*v)
	}
	return _u
}

// SetIsFeatured sets the "is_featured" field.
func (_u *MenuItemUpdateOne) SetIsFeatured(v bool) *MenuItemUpdateOne {
	_u.mutation.SetIsFeatured(v)
	return _u
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableIsFeatured(v *bool) *MenuItemUpdateOne {
	if v != nil {
		_u.SetIsFeatured(*v)
	}
	return _u
}

// SetIsDailySpecial sets the "is_daily_special" field.
func (_u *MenuItemUpdateOne) SetIsDailySpecial(v bool) *MenuItemUpdateOne {
	_u.mutation.SetIsDailySpecial(v)
	return _u
}

// SetNillableIsDailySpecial sets the "is_daily_special" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableIsDailySpecial(v *bool) *MenuItemUpdateOne {
	if v != nil {
		_u.SetIsDailySpecial(*v)
	}
	return _u
}

// SetSpiceLevel sets the "spice_level" field.
func (_u *MenuItemUpdateOne) SetSpiceLevel(v menuitem.SpiceLevel) *MenuItemUpdateOne {
	_u.mutation.SetSpiceLevel(v)
	return _u
}

// SetNillableSpiceLevel sets the "spice_level" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableSpiceLevel(v *menuitem.SpiceLevel) *MenuItemUpdateOne {
	if v != nil {
		_u.SetSpiceLevel(*v)
	}
	return _u
}

// SetAllergens sets the "allergens" field.
func (_u *MenuItemUpdateOne) SetAllergens(v string) *MenuItemUpdateOne {
	_u.mutation.SetAllergens(v)
	return _u
}

// SetNillableAllergens sets the "allergens" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillableAllergens(v *string) *MenuItemUpdateOne {
	if v != nil {
		_u.SetAllergens(*v)
	}
	return _u
}

// ClearAllergens clears the value of the "allergens" field.
func (_u *MenuItemUpdateOne) ClearAllergens() *MenuItemUpdateOne {
	_u.mutation.ClearAllergens()
	return _u
}

// SetPrepTimeMinutes sets the "prep_time_minutes" field.
func (_u *MenuItemUpdateOne) SetPrepTimeMinutes(v int) *MenuItemUpdateOne {
	_u.mutation.ResetPrepTimeMinutes()
	_u.mutation.SetPrepTimeMinutes(v)
	return _u
}

// SetNillablePrepTimeMinutes sets the "prep_time_minutes" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillablePrepTimeMinutes(v *int) *MenuItemUpdateOne {
	if v != nil {
		_u.SetPrepTimeMinutes(*v)
	}
	return _u
}

// AddPrepTimeMinutes adds value to the "prep_time_minutes" field.
func (_u *MenuItemUpdateOne) AddPrepTimeMinutes(v int) *MenuItemUpdateOne {
	_u.mutation.AddPrepTimeMinutes(v)
	return _u
}

// SetPopularityScore sets the "popularity_score" field.
func (_u *MenuItemUpdateOne) SetPopularityScore(v int) *MenuItemUpdateOne {
	_u.mutation.ResetPopularityScore()
	_u.mutation.SetPopularityScore(v)
	return _u
}

// SetNillablePopularityScore sets the "popularity_score" field if the given value is not nil.
func (_u *MenuItemUpdateOne) SetNillablePopularityScore(v *int) *MenuItemUpdateOne {
	if v != nil {
		_u.SetPopularityScore(*v)
	}
	return _u
}

// AddPopularityScore adds value to the "popularity_score" field.
func (_u *MenuItemUpdateOne) AddPopularityScore(v int) *MenuItemUpdateOne {
	_u.mutation.AddPopularityScore(v)
	return _u
}

// SetCustomizationOptions sets the "customization_options" field.
func (_u *MenuItemUpdateOne) SetCustomizationOptions(v map[string]interface{}) *MenuItemUpdateOne {
	_u.mutation.SetCustomizationOptions(v)
	return _u
}

// ClearCustomizationOptions clears the value of the "customization_options" field.
func (_u *MenuItemUpdateOne) ClearCustomizationOptions() *MenuItemUpdateOne {
	_u.mutation.ClearCustomizationOptions()
	return _u
}

// SetNutritionalInfo sets the "nutritional_info" field.
func (_u *MenuItemUpdateOne) SetNutritionalInfo(v map[string]interface{}) *MenuItemUpdateOne {
	_u.mutation.SetNutritionalInfo(v)
	return _u
}

// ClearNutritionalInfo clears the value of the "nutritional_info" field.
func (_u *MenuItemUpdateOne) ClearNutritionalInfo() *MenuItemUpdateOne {
	_u.mutation.ClearNutritionalInfo()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MenuItemUpdateOne) SetUpdatedAt(v time.Time) *MenuItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *MenuItemUpdateOne) SetCategory(v *Category) *MenuItemUpdateOne {
	return _u.SetCategoryID(v.ID)
}

// AddOrderItemIDs adds the "order_items" edge to the OrderItem entity by IDs.
func (_u *MenuItemUpdateOne) AddOrderItemIDs(ids ...int) *MenuItemUpdateOne {
	_u.mutation.AddOrderItemIDs(ids...)
	return _u
}

// AddOrderItems adds the "order_items" edges to the OrderItem entity.
func (_u *MenuItemUpdateOne) AddOrderItems(v ...*OrderItem) *MenuItemUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderItemIDs(ids...)
}

// Mutation returns the MenuItemMutation object of the builder.
func (_u *MenuItemUpdateOne) Mutation() *MenuItemMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *MenuItemUpdateOne) ClearCategory() *MenuItemUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// ClearOrderItems clears all "order_items" edges to the OrderItem entity.
func (_u *MenuItemUpdateOne) ClearOrderItems() *MenuItemUpdateOne {
	_u.mutation.ClearOrderItems()
	return _u
}

// RemoveOrderItemIDs removes the "order_items" edge to OrderItem entities by IDs.
func (_u *MenuItemUpdateOne) RemoveOrderItemIDs(ids ...int) *MenuItemUpdateOne {
	_u.mutation.RemoveOrderItemIDs(ids...)
	return _u
}

// RemoveOrderItems removes "order_items" edges to OrderItem entities.
func (_u *MenuItemUpdateOne) RemoveOrderItems(v ...*OrderItem) *MenuItemUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderItemIDs(ids...)
}

// Where appends a list predicates to the MenuItemUpdate builder.
func (_u *MenuItemUpdateOne) Where(ps ...predicate.MenuItem) *MenuItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MenuItemUpdateOne) Select(field string, fields ...string) *MenuItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MenuItem entity.
func (_u *MenuItemUpdateOne) Save(ctx context.Context) (*MenuItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MenuItemUpdateOne) SaveX(ctx context.Context) *MenuItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MenuItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MenuItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MenuItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := menuitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MenuItemUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := menuitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MenuItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := menuitem.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "MenuItem.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SpiceLevel(); ok {
		if err := menuitem.SpiceLevelValidator(v); err != nil {
			return &ValidationError{Name: "spice_level", err: fmt.Errorf(`ent: validator failed for field "MenuItem.spice_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrepTimeMinutes(); ok {
		if err := menuitem.PrepTimeMinutesValidator(v); err != nil {
			return &ValidationError{Name: "prep_time_minutes", err: fmt.Errorf(`ent: validator failed for field "MenuItem.prep_time_minutes": %w`, err)}
		}
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MenuItem.category"`)
	}
	return nil
}

func (_u *MenuItemUpdateOne) sqlSave(ctx context.Context) (_node *MenuItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(menuitem.Table, menuitem.Columns, sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MenuItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, menuitem.FieldID)
		for _, f := range fields {
			if !menuitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != menuitem.FieldID {
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
		_spec.SetField(menuitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(menuitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(menuitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(menuitem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(menuitem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ImageKey(); ok {
		_spec.SetField(menuitem.FieldImageKey, field.TypeString, value)
	}
	if _u.mutation.ImageKeyCleared() {
		_spec.ClearField(menuitem.FieldImageKey, field.TypeString)
	}
	if value, ok := _u.mutation.IsAvailable(); ok {
		_spec.SetField(menuitem.FieldIsAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsVegetarian(); ok {
		_spec.SetField(menuitem.FieldIsVegetarian, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsVegan(); ok {
		_spec.SetField(menuitem.FieldIsVegan, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsGlutenFree(); ok {
		_spec.SetField(menuitem.FieldIsGlutenFree, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsFeatured(); ok {
		_spec.SetField(menuitem.FieldIsFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsDailySpecial(); ok {
		_spec.SetField(menuitem.FieldIsDailySpecial, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SpiceLevel(); ok {
		_spec.SetField(menuitem.FieldSpiceLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Allergens(); ok {
		_spec.SetField(menuitem.FieldAllergens, field.TypeString, value)
	}
	if _u.mutation.AllergensCleared() {
		_spec.ClearField(menuitem.FieldAllergens, field.TypeString)
	}
	if value, ok := _u.mutation.PrepTimeMinutes(); ok {
		_spec.SetField(menuitem.FieldPrepTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrepTimeMinutes(); ok {
		_spec.AddField(menuitem.FieldPrepTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PopularityScore(); ok {
		_spec.SetField(menuitem.FieldPopularityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPopularityScore(); ok {
		_spec.AddField(menuitem.FieldPopularityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CustomizationOptions(); ok {
		_spec.SetField(menuitem.FieldCustomizationOptions, field.TypeJSON, value)
	}
	if _u.mutation.CustomizationOptionsCleared() {
		_spec.ClearField(menuitem.FieldCustomizationOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.NutritionalInfo(); ok {
		_spec.SetField(menuitem.FieldNutritionalInfo, field.TypeJSON, value)
	}
	if _u.mutation.NutritionalInfoCleared() {
		_spec.ClearField(menuitem.FieldNutritionalInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(menuitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   menuitem.CategoryTable,
			Columns: []string{menuitem.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   menuitem.CategoryTable,
			Columns: []string{menuitem.CategoryColumn},
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
	if _u.mutation.OrderItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menuitem.OrderItemsTable,
			Columns: []string{menuitem.OrderItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrderItemsIDs(); len(nodes) > 0 && !_u.mutation.OrderItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menuitem.OrderItemsTable,
			Columns: []string{menuitem.OrderItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   menuitem.OrderItemsTable,
			Columns: []string{menuitem.OrderItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MenuItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{menuitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
