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
)

// MenuItemCreate is the builder for creating a MenuItem entity.
type MenuItemCreate struct {
	config
	mutation *MenuItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCategoryID sets the "category_id" field.
func (_c *MenuItemCreate) SetCategoryID(v int) *MenuItemCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *MenuItemCreate) SetName(v string) *MenuItemCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MenuItemCreate) SetDescription(v string) *MenuItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableDescription(v *string) *MenuItemCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *MenuItemCreate) SetPrice(v float64) *MenuItemCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetImageKey sets the "image_key" field.
func (_c *MenuItemCreate) SetImageKey(v string) *MenuItemCreate {
	_c.mutation.SetImageKey(v)
	return _c
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableImageKey(v *string) *MenuItemCreate {
	if v != nil {
		_c.SetImageKey(*v)
	}
	return _c
}

// SetIsAvailable sets the "is_available" field.
func (_c *MenuItemCreate) SetIsAvailable(v bool) *MenuItemCreate {
	_c.mutation.SetIsAvailable(v)
	return _c
}

// SetNillableIsAvailable sets the "is_available" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableIsAvailable(v *bool) *MenuItemCreate {
	if v != nil {
		_c.SetIsAvailable(*v)
	}
	return _c
}

// SetIsVegetarian sets the "is_vegetarian" field.
func (_c *MenuItemCreate) SetIsVegetarian(v bool) *MenuItemCreate {
	_c.mutation.SetIsVegetarian(v)
	return _c
}

// SetNillableIsVegetarian sets the "is_vegetarian" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableIsVegetarian(v *bool) *MenuItemCreate {
	if v != nil {
		_c.SetIsVegetarian(*v)
	}
	return _c
}

// SetIsVegan sets the "is_vegan" field.
func (_c *MenuItemCreate) SetIsVegan(v bool) *MenuItemCreate {
	_c.mutation.SetIsVegan(v)
	return _c
}

// SetNillableIsVegan sets the "is_vegan" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableIsVegan(v *bool) *MenuItemCreate {
	if v != nil {
		_c.SetIsVegan(*v)
	}
	return _c
}

// SetIsGlutenFree sets the "is_gluten_free" field.
func (_c *MenuItemCreate) SetIsGlutenFree(v bool) *MenuItemCreate {
	_c.mutation.SetIsGlutenFree(v)
	return _c
}

// SetNillableIsGlutenFree sets the "is_gluten_free" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableIsGlutenFree(v *bool) *MenuItemCreate {
	if v != nil {
		_c.SetIsGlutenFree(*v)
	}
	return _c
}

// SetIsFeatured sets the "is_featured" field.
func (_c *MenuItemCreate) SetIsFeatured(v bool) *MenuItemCreate {
	_c.mutation.SetIsFeatured(v)
	return _c
}

// SetNillableIsFeatured sets the "is_featured" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableIsFeatured(v *bool) *MenuItemCreate {
	if v != nil {
		_c.SetIsFeatured(*v)
	}
	return _c
}

// SetIsDailySpecial sets the "is_daily_special" field.
func (_c *MenuItemCreate) SetIsDailySpecial(v bool) *MenuItemCreate {
	_c.mutation.SetIsDailySpecial(v)
	return _c
}

// SetNillableIsDailySpecial sets the "is_daily_special" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableIsDailySpecial(v *bool) *MenuItemCreate {
	if v != nil {
		_c.SetIsDailySpecial(*v)
	}
	return _c
}

// SetSpiceLevel sets the "spice_level" field.
func (_c *MenuItemCreate) SetSpiceLevel(v menuitem.SpiceLevel) *MenuItemCreate {
	_c.mutation.SetSpiceLevel(v)
	return _c
}

// SetNillableSpiceLevel sets the "spice_level" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableSpiceLevel(v *menuitem.SpiceLevel) *MenuItemCreate {
	if v != nil {
		_c.SetSpiceLevel(*v)
	}
	return _c
}

// SetAllergens sets the "allergens" field.
func (_c *MenuItemCreate) SetAllergens(v string) *MenuItemCreate {
	_c.mutation.SetAllergens(v)
	return _c
}

// SetNillableAllergens sets the "allergens" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableAllergens(v *string) *MenuItemCreate {
	if v != nil {
		_c.SetAllergens(*v)
	}
	return _c
}

// SetPrepTimeMinutes sets the "prep_time_minutes" field.
func (_c *MenuItemCreate) SetPrepTimeMinutes(v int) *MenuItemCreate {
	_c.mutation.SetPrepTimeMinutes(v)
	return _c
}

// SetNillablePrepTimeMinutes sets the "prep_time_minutes" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillablePrepTimeMinutes(v *int) *MenuItemCreate {
	if v != nil {
		_c.SetPrepTimeMinutes(*v)
	}
	return _c
}

// SetPopularityScore sets the "popularity_score" field.
func (_c *MenuItemCreate) SetPopularityScore(v int) *MenuItemCreate {
	_c.mutation.SetPopularityScore(v)
	return _c
}

// SetNillablePopularityScore sets the "popularity_score" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillablePopularityScore(v *int) *MenuItemCreate {
	if v != nil {
		_c.SetPopularityScore(*v)
	}
	return _c
}

// SetCustomizationOptions sets the "customization_options" field.
func (_c *MenuItemCreate) SetCustomizationOptions(v map[string]interface{}) *MenuItemCreate {
	_c.mutation.SetCustomizationOptions(v)
	return _c
}

// SetNutritionalInfo sets the "nutritional_info" field.
func (_c *MenuItemCreate) SetNutritionalInfo(v map[string]interface{}) *MenuItemCreate {
	_c.mutation.SetNutritionalInfo(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MenuItemCreate) SetCreatedAt(v time.Time) *MenuItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableCreatedAt(v *time.Time) *MenuItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MenuItemCreate) SetUpdatedAt(v time.Time) *MenuItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MenuItemCreate) SetNillableUpdatedAt(v *time.Time) *MenuItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCategory sets the "category" edge to the Category entity.
func (_c *MenuItemCreate) SetCategory(v *Category) *MenuItemCreate {
	return _c.SetCategoryID(v.ID)
}

// AddOrderItemIDs adds the "order_items" edge to the OrderItem entity by IDs.
func (_c *MenuItemCreate) AddOrderItemIDs(ids ...int) *MenuItemCreate {
	_c.mutation.AddOrderItemIDs(ids...)
	return _c
}

// AddOrderItems adds the "order_items" edges to the OrderItem entity.
func (_c *MenuItemCreate) AddOrderItems(v ...*OrderItem) *MenuItemCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOrderItemIDs(ids...)
}

// Mutation returns the MenuItemMutation object of the builder.
func (_c *MenuItemCreate) Mutation() *MenuItemMutation {
	return _c.mutation
}

// Save creates the MenuItem in the database.
func (_c *MenuItemCreate) Save(ctx context.Context) (*MenuItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MenuItemCreate) SaveX(ctx context.Context) *MenuItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MenuItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MenuItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MenuItemCreate) defaults() {
	if _, ok := _c.mutation.IsAvailable(); !ok {
		v := menuitem.DefaultIsAvailable
		_c.mutation.SetIsAvailable(v)
	}
	if _, ok := _c.mutation.IsVegetarian(); !ok {
		v := menuitem.DefaultIsVegetarian
		_c.mutation.SetIsVegetarian(v)
	}
	if _, ok := _c.mutation.IsVegan(); !ok {
		v := menuitem.DefaultIsVegan
		_c.mutation.SetIsVegan(v)
	}
	if _, ok := _c.mutation.IsGlutenFree(); !ok {
		v := menuitem.DefaultIsGlutenFree
		_c.mutation.SetIsGlutenFree(v)
	}
	if _, ok := _c.mutation.IsFeatured(); !ok {
		v := menuitem.DefaultIsFeatured
		_c.mutation.SetIsFeatured(v)
	}
	if _, ok := _c.mutation.IsDailySpecial(); !ok {
		v := menuitem.DefaultIsDailySpecial
		_c.mutation.SetIsDailySpecial(v)
	}
	if _, ok := _c.mutation.SpiceLevel(); !ok {
		v := menuitem.DefaultSpiceLevel
		_c.mutation.SetSpiceLevel(v)
	}
	if _, ok := _c.mutation.PrepTimeMinutes(); !ok {
		v := menuitem.DefaultPrepTimeMinutes
		_c.mutation.SetPrepTimeMinutes(v)
	}
	if _, ok := _c.mutation.PopularityScore(); !ok {
		v := menuitem.DefaultPopularityScore
		_c.mutation.SetPopularityScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := menuitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := menuitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MenuItemCreate) check() error {
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "MenuItem.category_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "MenuItem.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := menuitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MenuItem.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "MenuItem.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := menuitem.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "MenuItem.price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsAvailable(); !ok {
		return &ValidationError{Name: "is_available", err: errors.New(`ent: missing required field "MenuItem.is_available"`)}
	}
	if _, ok := _c.mutation.IsVegetarian(); !ok {
		return &ValidationError{Name: "is_vegetarian", err: errors.New(`ent: missing required field "MenuItem.is_vegetarian"`)}
	}
	if _, ok := _c.mutation.IsVegan(); !ok {
		return &ValidationError{Name: "is_vegan", err: errors.New(`ent: missing required field "MenuItem.is_vegan"`)}
	}
	if _, ok := _c.mutation.IsGlutenFree(); !ok {
		return &ValidationError{Name: "is_gluten_free", err: errors.New(`ent: missing required field "MenuItem.is_gluten_free"`)}
	}
	if _, ok := _c.mutation.IsFeatured(); !ok {
		return &ValidationError{Name: "is_featured", err: errors.New(`ent: missing required field "MenuItem.is_featured"`)}
	}
	if _, ok := _c.mutation.IsDailySpecial(); !ok {
		return &ValidationError{Name: "is_daily_special", err: errors.New(`ent: missing required field "MenuItem.is_daily_special"`)}
	}
	if _, ok := _c.mutation.SpiceLevel(); !ok {
		return &ValidationError{Name: "spice_level", err: errors.New(`ent: missing required field "MenuItem.spice_level"`)}
	}
	if v, ok := _c.mutation.SpiceLevel(); ok {
		if err := menuitem.SpiceLevelValidator(v); err != nil {
			return &ValidationError{Name: "spice_level", err: fmt.Errorf(`ent: validator failed for field "MenuItem.spice_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PrepTimeMinutes(); !ok {
		return &ValidationError{Name: "prep_time_minutes", err: errors.New(`ent: missing required field "MenuItem.prep_time_minutes"`)}
	}
	if v, ok := _c.mutation.PrepTimeMinutes(); ok {
		if err := menuitem.PrepTimeMinutesValidator(v); err != nil {
			return &ValidationError{Name: "prep_time_minutes", err: fmt.Errorf(`ent: validator failed for field "MenuItem.prep_time_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PopularityScore(); !ok {
		return &ValidationError{Name: "popularity_score", err: errors.New(`ent: missing required field "MenuItem.popularity_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MenuItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MenuItem.updated_at"`)}
	}
	if len(_c.mutation.CategoryIDs()) == 0 {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required edge "MenuItem.category"`)}
	}
	return nil
}

func (_c *MenuItemCreate) sqlSave(ctx context.Context) (*MenuItem, error) {
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

func (_c *MenuItemCreate) createSpec() (*MenuItem, *sqlgraph.CreateSpec) {
	var (
		_node = &MenuItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(menuitem.Table, sqlgraph.NewFieldSpec(menuitem.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(menuitem.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(menuitem.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(menuitem.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.ImageKey(); ok {
		_spec.SetField(menuitem.FieldImageKey, field.TypeString, value)
		_node.ImageKey = value
	}
	if value, ok := _c.mutation.IsAvailable(); ok {
		_spec.SetField(menuitem.FieldIsAvailable, field.TypeBool, value)
		_node.IsAvailable = value
	}
	if value, ok := _c.mutation.IsVegetarian(); ok {
		_spec.SetField(menuitem.FieldIsVegetarian, field.TypeBool, value)
		_node.IsVegetarian = value
	}
	if value, ok := _c.mutation.IsVegan(); ok {
		_spec.SetField(menuitem.FieldIsVegan, field.TypeBool, value)
		_node.IsVegan = value
	}
	if value, ok := _c.mutation.IsGlutenFree(); ok {
		_spec.SetField(menuitem.FieldIsGlutenFree, field.TypeBool, value)
		_node.IsGlutenFree = value
	}
	if value, ok := _c.mutation.IsFeatured(); ok {
		_spec.SetField(menuitem.FieldIsFeatured, field.TypeBool, value)
		_node.IsFeatured = value
	}
	if value, ok := _c.mutation.IsDailySpecial(); ok {
		_spec.SetField(menuitem.FieldIsDailySpecial, field.TypeBool, value)
		_node.IsDailySpecial = value
	}
	if value, ok := _c.mutation.SpiceLevel(); ok {
		_spec.SetField(menuitem.FieldSpiceLevel, field.TypeEnum, value)
		_node.SpiceLevel = value
	}
	if value, ok := _c.mutation.Allergens(); ok {
		_spec.SetField(menuitem.FieldAllergens, field.TypeString, value)
		_node.Allergens = value
	}
	if value, ok := _c.mutation.PrepTimeMinutes(); ok {
		_spec.SetField(menuitem.FieldPrepTimeMinutes, field.TypeInt, value)
		_node.PrepTimeMinutes = value
	}
	if value, ok := _c.mutation.PopularityScore(); ok {
		_spec.SetField(menuitem.FieldPopularityScore, field.TypeInt, value)
		_node.PopularityScore = value
	}
	if value, ok := _c.mutation.CustomizationOptions(); ok {
		_spec.SetField(menuitem.FieldCustomizationOptions, field.TypeJSON, value)
		_node.CustomizationOptions = value
	}
	if value, ok := _c.mutation.NutritionalInfo(); ok {
		_spec.SetField(menuitem.FieldNutritionalInfo, field.TypeJSON, value)
		_node.NutritionalInfo = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(menuitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(menuitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_node.CategoryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OrderItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MenuItem.Create().
//		SetCategoryID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MenuItemUpsert) {
//			SetCategoryID(v+v).
//		}).
//		Exec(ctx)
func (_c *MenuItemCreate) OnConflict(opts ...sql.ConflictOption) *MenuItemUpsertOne {
	_c.conflict = opts
	return &MenuItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MenuItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MenuItemCreate) OnConflictColumns(columns ...string) *MenuItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MenuItemUpsertOne{
		create: _c,
	}
}

type (
	// MenuItemUpsertOne is the builder for "upsert"-ing
	//  one MenuItem node.
	MenuItemUpsertOne struct {
		create *MenuItemCreate
	}

	// MenuItemUpsert is the "OnConflict" setter.
	MenuItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetCategoryID sets the "category_id" field.
func (u *MenuItemUpsert) SetCategoryID(v int) *MenuItemUpsert {
	u.Set(menuitem.FieldCategoryID, v)
	return u
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdateCategoryID() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldCategoryID)
	return u
}

// SetName sets the "name" field.
func (u *MenuItemUpsert) SetName(v string) *MenuItemUpsert {
	u.Set(menuitem.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdateName() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *MenuItemUpsert) SetDescription(v string) *MenuItemUpsert {
	u.Set(menuitem.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdateDescription() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *MenuItemUpsert) ClearDescription() *MenuItemUpsert {
	u.SetNull(menuitem.FieldDescription)
	return u
}

// SetPrice sets the "price" field.
func (u *MenuItemUpsert) SetPrice(v float64) *MenuItemUpsert {
	u.Set(menuitem.FieldPrice, v)
	return u
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdatePrice() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldPrice)
	return u
}

// AddPrice adds v to the "price" field.
func (u *MenuItemUpsert) AddPrice(v float64) *MenuItemUpsert {
	u.Add(menuitem.FieldPrice, v)
	return u
}

// SetImageKey sets the "image_key" field.
func (u *MenuItemUpsert) SetImageKey(v string) *MenuItemUpsert {
	u.Set(menuitem.FieldImageKey, v)
	return u
}

// UpdateImageKey sets the "image_key" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdateImageKey() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldImageKey)
	return u
}

// ClearImageKey clears the value of the "image_key" field.
func (u *MenuItemUpsert) ClearImageKey() *MenuItemUpsert {
	u.SetNull(menuitem.FieldImageKey)
	return u
}

// SetIsAvailable sets the "is_available" field.
func (u *MenuItemUpsert) SetIsAvailable(v bool) *MenuItemUpsert {
	u.Set(menuitem.FieldIsAvailable, v)
	return u
}

// UpdateIsAvailable sets the "is_available" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdateIsAvailable() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldIsAvailable)
	return u
}

// SetIsVegetarian sets the "is_vegetarian" field.
func (u *MenuItemUpsert) SetIsVegetarian(v bool) *MenuItemUpsert {
	u.Set(menuitem.FieldIsVegetarian, v)
	return u
}

// UpdateIsVegetarian sets the "is_vegetarian" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdateIsVegetarian() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldIsVegetarian)
	return u
}

// SetIsVegan sets the "is_vegan" field.
func (u *MenuItemUpsert) SetIsVegan(v bool) *MenuItemUpsert {
	u.Set(menuitem.FieldIsVegan, v)
	return u
}

// UpdateIsVegan sets the "is_vegan" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdateIsVegan() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldIsVegan)
	return u
}

// SetIsGlutenFree sets the "is_gluten_free" field.
func (u *MenuItemUpsert) SetIsGlutenFree(v bool) *MenuItemUpsert {
	u.Set(menuitem.FieldIsGlutenFree, v)
	return u
}

// UpdateIsGlutenFree sets the "is_gluten_free" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdateIsGlutenFree() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldIsGlutenFree)
	return u
}

// SetIsFeatured sets the "is_featured" field.
func (u *MenuItemUpsert) SetIsFeatured(v bool) *MenuItemUpsert {
	u.Set(menuitem.FieldIsFeatured, v)
	return u
}

// UpdateIsFeatured sets the "is_featured" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdateIsFeatured() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldIsFeatured)
	return u
}

// SetIsDailySpecial sets the "is_daily_special" field.
func (u *MenuItemUpsert) SetIsDailySpecial(v bool) *MenuItemUpsert {
	u.Set(menuitem.FieldIsDailySpecial, v)
	return u
}

// UpdateIsDailySpecial sets the "is_daily_special" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdateIsDailySpecial() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldIsDailySpecial)
	return u
}

// SetSpiceLevel sets the "spice_level" field.
func (u *MenuItemUpsert) SetSpiceLevel(v menuitem.SpiceLevel) *MenuItemUpsert {
	u.Set(menuitem.FieldSpiceLevel, v)
	return u
}

// UpdateSpiceLevel sets the "spice_level" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdateSpiceLevel() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldSpiceLevel)
	return u
}

// SetAllergens sets the "allergens" field.
func (u *MenuItemUpsert) SetAllergens(v string) *MenuItemUpsert {
	u.Set(menuitem.FieldAllergens, v)
	return u
}

// UpdateAllergens sets the "allergens" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdateAllergens() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldAllergens)
	return u
}

// ClearAllergens clears the value of the "allergens" field.
func (u *MenuItemUpsert) ClearAllergens() *MenuItemUpsert {
	u.SetNull(menuitem.FieldAllergens)
	return u
}

// SetPrepTimeMinutes sets the "prep_time_minutes" field.
func (u *MenuItemUpsert) SetPrepTimeMinutes(v int) *MenuItemUpsert {
	u.Set(menuitem.FieldPrepTimeMinutes, v)
	return u
}

// UpdatePrepTimeMinutes sets the "prep_time_minutes" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdatePrepTimeMinutes() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldPrepTimeMinutes)
	return u
}

// AddPrepTimeMinutes adds v to the "prep_time_minutes" field.
func (u *MenuItemUpsert) AddPrepTimeMinutes(v int) *MenuItemUpsert {
	u.Add(menuitem.FieldPrepTimeMinutes, v)
	return u
}

// SetPopularityScore sets the "popularity_score" field.
func (u *MenuItemUpsert) SetPopularityScore(v int) *MenuItemUpsert {
	u.Set(menuitem.FieldPopularityScore, v)
	return u
}

// UpdatePopularityScore sets the "popularity_score" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdatePopularityScore() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldPopularityScore)
	return u
}

// AddPopularityScore adds v to the "popularity_score" field.
func (u *MenuItemUpsert) AddPopularityScore(v int) *MenuItemUpsert {
	u.Add(menuitem.FieldPopularityScore, v)
	return u
}

// SetCustomizationOptions sets the "customization_options" field.
func (u *MenuItemUpsert) SetCustomizationOptions(v map[string]interface{}) *MenuItemUpsert {
	u.Set(menuitem.FieldCustomizationOptions, v)
	return u
}

// UpdateCustomizationOptions sets the "customization_options" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdateCustomizationOptions() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldCustomizationOptions)
	return u
}

// ClearCustomizationOptions clears the value of the "customization_options" field.
func (u *MenuItemUpsert) ClearCustomizationOptions() *MenuItemUpsert {
	u.SetNull(menuitem.FieldCustomizationOptions)
	return u
}

// SetNutritionalInfo sets the "nutritional_info" field.
func (u *MenuItemUpsert) SetNutritionalInfo(v map[string]interface{}) *MenuItemUpsert {
	u.Set(menuitem.FieldNutritionalInfo, v)
	return u
}

// UpdateNutritionalInfo sets the "nutritional_info" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdateNutritionalInfo() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldNutritionalInfo)
	return u
}

// ClearNutritionalInfo clears the value of the "nutritional_info" field.
func (u *MenuItemUpsert) ClearNutritionalInfo() *MenuItemUpsert {
	u.SetNull(menuitem.FieldNutritionalInfo)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MenuItemUpsert) SetUpdatedAt(v time.Time) *MenuItemUpsert {
	u.Set(menuitem.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MenuItemUpsert) UpdateUpdatedAt() *MenuItemUpsert {
	u.SetExcluded(menuitem.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MenuItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MenuItemUpsertOne) UpdateNewValues() *MenuItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(menuitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MenuItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MenuItemUpsertOne) Ignore() *MenuItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MenuItemUpsertOne) DoNothing() *MenuItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MenuItemCreate.OnConflict
// documentation for more info.
func (u *MenuItemUpsertOne) Update(set func(*MenuItemUpsert)) *MenuItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MenuItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetCategoryID sets the "category_id" field.
func (u *MenuItemUpsertOne) SetCategoryID(v int) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdateCategoryID() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateCategoryID()
	})
}

// SetName sets the "name" field.
func (u *MenuItemUpsertOne) SetName(v string) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdateName() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *MenuItemUpsertOne) SetDescription(v string) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdateDescription() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *MenuItemUpsertOne) ClearDescription() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.ClearDescription()
	})
}

// SetPrice sets the "price" field.
func (u *MenuItemUpsertOne) SetPrice(v float64) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *MenuItemUpsertOne) AddPrice(v float64) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdatePrice() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdatePrice()
	})
}

// SetImageKey sets the "image_key" field.
func (u *MenuItemUpsertOne) SetImageKey(v string) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetImageKey(v)
	})
}

// UpdateImageKey sets the "image_key" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdateImageKey() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateImageKey()
	})
}

// ClearImageKey clears the value of the "image_key" field.
func (u *MenuItemUpsertOne) ClearImageKey() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.ClearImageKey()
	})
}

// SetIsAvailable sets the "is_available" field.
func (u *MenuItemUpsertOne) SetIsAvailable(v bool) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetIsAvailable(v)
	})
}

// UpdateIsAvailable sets the "is_available" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdateIsAvailable() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateIsAvailable()
	})
}

// SetIsVegetarian sets the "is_vegetarian" field.
func (u *MenuItemUpsertOne) SetIsVegetarian(v bool) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetIsVegetarian(v)
	})
}

// UpdateIsVegetarian sets the "is_vegetarian" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdateIsVegetarian() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateIsVegetarian()
	})
}

// SetIsVegan sets the "is_vegan" field.
func (u *MenuItemUpsertOne) SetIsVegan(v bool) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetIsVegan(v)
	})
}

// UpdateIsVegan sets the "is_vegan" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdateIsVegan() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateIsVegan()
	})
}

// SetIsGlutenFree sets the "is_gluten_free" field.
func (u *MenuItemUpsertOne) SetIsGlutenFree(v bool) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetIsGlutenFree(v)
	})
}

// UpdateIsGlutenFree sets the "is_gluten_free" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdateIsGlutenFree() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateIsGlutenFree()
	})
}

// SetIsFeatured sets the "is_featured" field.
func (u *MenuItemUpsertOne) SetIsFeatured(v bool) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetIsFeatured(v)
	})
}

// UpdateIsFeatured sets the "is_featured" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdateIsFeatured() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateIsFeatured()
	})
}

// SetIsDailySpecial sets the "is_daily_special" field.
func (u *MenuItemUpsertOne) SetIsDailySpecial(v bool) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetIsDailySpecial(v)
	})
}

// UpdateIsDailySpecial sets the "is_daily_special" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdateIsDailySpecial() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateIsDailySpecial()
	})
}

// SetSpiceLevel sets the "spice_level" field.
func (u *MenuItemUpsertOne) SetSpiceLevel(v menuitem.SpiceLevel) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetSpiceLevel(v)
	})
}

// UpdateSpiceLevel sets the "spice_level" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdateSpiceLevel() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateSpiceLevel()
	})
}

// SetAllergens sets the "allergens" field.
func (u *MenuItemUpsertOne) SetAllergens(v string) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetAllergens(v)
	})
}

// UpdateAllergens sets the "allergens" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdateAllergens() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateAllergens()
	})
}

// ClearAllergens clears the value of the "allergens" field.
func (u *MenuItemUpsertOne) ClearAllergens() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.ClearAllergens()
	})
}

// SetPrepTimeMinutes sets the "prep_time_minutes" field.
func (u *MenuItemUpsertOne) SetPrepTimeMinutes(v int) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetPrepTimeMinutes(v)
	})
}

// AddPrepTimeMinutes adds v to the "prep_time_minutes" field.
func (u *MenuItemUpsertOne) AddPrepTimeMinutes(v int) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.AddPrepTimeMinutes(v)
	})
}

// UpdatePrepTimeMinutes sets the "prep_time_minutes" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdatePrepTimeMinutes() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdatePrepTimeMinutes()
	})
}

// SetPopularityScore sets the "popularity_score" field.
func (u *MenuItemUpsertOne) SetPopularityScore(v int) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetPopularityScore(v)
	})
}

// AddPopularityScore adds v to the "popularity_score" field.
func (u *MenuItemUpsertOne) AddPopularityScore(v int) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.AddPopularityScore(v)
	})
}

// UpdatePopularityScore sets the "popularity_score" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdatePopularityScore() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdatePopularityScore()
	})
}

// SetCustomizationOptions sets the "customization_options" field.
func (u *MenuItemUpsertOne) SetCustomizationOptions(v map[string]interface{}) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetCustomizationOptions(v)
	})
}

// UpdateCustomizationOptions sets the "customization_options" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdateCustomizationOptions() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateCustomizationOptions()
	})
}

// ClearCustomizationOptions clears the value of the "customization_options" field.
func (u *MenuItemUpsertOne) ClearCustomizationOptions() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.ClearCustomizationOptions()
	})
}

// SetNutritionalInfo sets the "nutritional_info" field.
func (u *MenuItemUpsertOne) SetNutritionalInfo(v map[string]interface{}) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetNutritionalInfo(v)
	})
}

// UpdateNutritionalInfo sets the "nutritional_info" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdateNutritionalInfo() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateNutritionalInfo()
	})
}

// ClearNutritionalInfo clears the value of the "nutritional_info" field.
func (u *MenuItemUpsertOne) ClearNutritionalInfo() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.ClearNutritionalInfo()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MenuItemUpsertOne) SetUpdatedAt(v time.Time) *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MenuItemUpsertOne) UpdateUpdatedAt() *MenuItemUpsertOne {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MenuItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MenuItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MenuItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MenuItemUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MenuItemUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MenuItemCreateBulk is the builder for creating many MenuItem entities in bulk.
type MenuItemCreateBulk struct {
	config
	err      error
	builders []*MenuItemCreate
	conflict []sql.ConflictOption
}

// Save creates the MenuItem entities in the database.
func (_c *MenuItemCreateBulk) Save(ctx context.Context) ([]*MenuItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MenuItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MenuItemMutation)
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
func (_c *MenuItemCreateBulk) SaveX(ctx context.Context) []*MenuItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MenuItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MenuItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MenuItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MenuItemUpsert) {
//			SetCategoryID(v+v).
//		}).
//		Exec(ctx)
func (_c *MenuItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *MenuItemUpsertBulk {
	_c.conflict = opts
	return &MenuItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MenuItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MenuItemCreateBulk) OnConflictColumns(columns ...string) *MenuItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MenuItemUpsertBulk{
		create: _c,
	}
}

// MenuItemUpsertBulk is the builder for "upsert"-ing
// a bulk of MenuItem nodes.
type MenuItemUpsertBulk struct {
	create *MenuItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MenuItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MenuItemUpsertBulk) UpdateNewValues() *MenuItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(menuitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MenuItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MenuItemUpsertBulk) Ignore() *MenuItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MenuItemUpsertBulk) DoNothing() *MenuItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MenuItemCreateBulk.OnConflict
// documentation for more info.
func (u *MenuItemUpsertBulk) Update(set func(*MenuItemUpsert)) *MenuItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MenuItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetCategoryID sets the "category_id" field.
func (u *MenuItemUpsertBulk) SetCategoryID(v int) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdateCategoryID() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateCategoryID()
	})
}

// SetName sets the "name" field.
func (u *MenuItemUpsertBulk) SetName(v string) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdateName() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *MenuItemUpsertBulk) SetDescription(v string) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdateDescription() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *MenuItemUpsertBulk) ClearDescription() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.ClearDescription()
	})
}

// SetPrice sets the "price" field.
func (u *MenuItemUpsertBulk) SetPrice(v float64) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *MenuItemUpsertBulk) AddPrice(v float64) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdatePrice() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdatePrice()
	})
}

// SetImageKey sets the "image_key" field.
func (u *MenuItemUpsertBulk) SetImageKey(v string) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetImageKey(v)
	})
}

// UpdateImageKey sets the "image_key" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdateImageKey() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateImageKey()
	})
}

// ClearImageKey clears the value of the "image_key" field.
func (u *MenuItemUpsertBulk) ClearImageKey() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.ClearImageKey()
	})
}

// SetIsAvailable sets the "is_available" field.
func (u *MenuItemUpsertBulk) SetIsAvailable(v bool) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetIsAvailable(v)
	})
}

// UpdateIsAvailable sets the "is_available" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdateIsAvailable() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateIsAvailable()
	})
}

// SetIsVegetarian sets the "is_vegetarian" field.
func (u *MenuItemUpsertBulk) SetIsVegetarian(v bool) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetIsVegetarian(v)
	})
}

// UpdateIsVegetarian sets the "is_vegetarian" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdateIsVegetarian() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateIsVegetarian()
	})
}

// SetIsVegan sets the "is_vegan" field.
func (u *MenuItemUpsertBulk) SetIsVegan(v bool) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetIsVegan(v)
	})
}

// UpdateIsVegan sets the "is_vegan" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdateIsVegan() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateIsVegan()
	})
}

// SetIsGlutenFree sets the "is_gluten_free" field.
func (u *MenuItemUpsertBulk) SetIsGlutenFree(v bool) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetIsGlutenFree(v)
	})
}

// UpdateIsGlutenFree sets the "is_gluten_free" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdateIsGlutenFree() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateIsGlutenFree()
	})
}

// SetIsFeatured sets the "is_featured" field.
func (u *MenuItemUpsertBulk) SetIsFeatured(v bool) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetIsFeatured(v)
	})
}

// UpdateIsFeatured sets the "is_featured" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdateIsFeatured() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateIsFeatured()
	})
}

// SetIsDailySpecial sets the "is_daily_special" field.
func (u *MenuItemUpsertBulk) SetIsDailySpecial(v bool) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetIsDailySpecial(v)
	})
}

// UpdateIsDailySpecial sets the "is_daily_special" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdateIsDailySpecial() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateIsDailySpecial()
	})
}

// SetSpiceLevel sets the "spice_level" field.
func (u *MenuItemUpsertBulk) SetSpiceLevel(v menuitem.SpiceLevel) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetSpiceLevel(v)
	})
}

// UpdateSpiceLevel sets the "spice_level" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdateSpiceLevel() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateSpiceLevel()
	})
}

// SetAllergens sets the "allergens" field.
func (u *MenuItemUpsertBulk) SetAllergens(v string) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetAllergens(v)
	})
}

// UpdateAllergens sets the "allergens" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdateAllergens() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateAllergens()
	})
}

// ClearAllergens clears the value of the "allergens" field.
func (u *MenuItemUpsertBulk) ClearAllergens() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.ClearAllergens()
	})
}

// SetPrepTimeMinutes sets the "prep_time_minutes" field.
func (u *MenuItemUpsertBulk) SetPrepTimeMinutes(v int) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetPrepTimeMinutes(v)
	})
}

// AddPrepTimeMinutes adds v to the "prep_time_minutes" field.
func (u *MenuItemUpsertBulk) AddPrepTimeMinutes(v int) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.AddPrepTimeMinutes(v)
	})
}

// UpdatePrepTimeMinutes sets the "prep_time_minutes" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdatePrepTimeMinutes() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdatePrepTimeMinutes()
	})
}

// SetPopularityScore sets the "popularity_score" field.
func (u *MenuItemUpsertBulk) SetPopularityScore(v int) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetPopularityScore(v)
	})
}

// AddPopularityScore adds v to the "popularity_score" field.
func (u *MenuItemUpsertBulk) AddPopularityScore(v int) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.AddPopularityScore(v)
	})
}

// UpdatePopularityScore sets the "popularity_score" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdatePopularityScore() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdatePopularityScore()
	})
}

// SetCustomizationOptions sets the "customization_options" field.
func (u *MenuItemUpsertBulk) SetCustomizationOptions(v map[string]interface{}) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetCustomizationOptions(v)
	})
}

// UpdateCustomizationOptions sets the "customization_options" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdateCustomizationOptions() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateCustomizationOptions()
	})
}

// ClearCustomizationOptions clears the value of the "customization_options" field.
func (u *MenuItemUpsertBulk) ClearCustomizationOptions() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.ClearCustomizationOptions()
	})
}

// SetNutritionalInfo sets the "nutritional_info" field.
func (u *MenuItemUpsertBulk) SetNutritionalInfo(v map[string]interface{}) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetNutritionalInfo(v)
	})
}

// UpdateNutritionalInfo sets the "nutritional_info" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdateNutritionalInfo() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateNutritionalInfo()
	})
}

// ClearNutritionalInfo clears the value of the "nutritional_info" field.
func (u *MenuItemUpsertBulk) ClearNutritionalInfo() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.ClearNutritionalInfo()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MenuItemUpsertBulk) SetUpdatedAt(v time.Time) *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MenuItemUpsertBulk) UpdateUpdatedAt() *MenuItemUpsertBulk {
	return u.Update(func(s *MenuItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MenuItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MenuItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MenuItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MenuItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
