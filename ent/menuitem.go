// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/menuqr/menuqr/ent/category"
	"github.com/menuqr/menuqr/ent/menuitem"
)

// MenuItem is the model entity for the MenuItem schema.
type MenuItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Category this item belongs to
	CategoryID int `json:"category_id,omitempty"`
	// Item name
	Name string `json:"name,omitempty"`
	// Item description
	Description string `json:"description,omitempty"`
	// Current price
	Price float64 `json:"price,omitempty"`
	// Object storage key of the item image
	ImageKey string `json:"image_key,omitempty"`
	// Toggle for out-of-stock items
	IsAvailable bool `json:"is_available,omitempty"`
	// IsVegetarian holds the value of the "is_vegetarian" field.
	IsVegetarian bool `json:"is_vegetarian,omitempty"`
	// IsVegan holds the value of the "is_vegan" field.
	IsVegan bool `json:"is_vegan,omitempty"`
	// IsGlutenFree holds the value of the "is_gluten_free" field.
	IsGlutenFree bool `json:"is_gluten_free,omitempty"`
	// Chef's recommendation / popular item
	IsFeatured bool `json:"is_featured,omitempty"`
	// Today's special offer
	IsDailySpecial bool `json:"is_daily_special,omitempty"`
	// Spiciness level of the dish
	SpiceLevel menuitem.SpiceLevel `json:"spice_level,omitempty"`
	// Common allergens (e.g. 'Nuts, Dairy, Shellfish')
	Allergens string `json:"allergens,omitempty"`
	// Estimated preparation time in minutes
	PrepTimeMinutes int `json:"prep_time_minutes,omitempty"`
	// Incremented every time the item is ordered
	PopularityScore int `json:"popularity_score,omitempty"`
	// Add-ons, sizes, extras
	CustomizationOptions map[string]interface{} `json:"customization_options,omitempty"`
	// Calories, protein, carbs, etc.
	NutritionalInfo map[string]interface{} `json:"nutritional_info,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MenuItemQuery when eager-loading is set.
	Edges        MenuItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MenuItemEdges holds the relations/edges for other nodes in the graph.
type MenuItemEdges struct {
	// Category this item belongs to
	Category *Category `json:"category,omitempty"`
	// Order lines referencing this item
	OrderItems []*OrderItem `json:"order_items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CategoryOrErr returns the Category value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MenuItemEdges) CategoryOrErr() (*Category, error) {
	if e.Category != nil {
		return e.Category, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: category.Label}
	}
	return nil, &NotLoadedError{edge: "category"}
}

// OrderItemsOrErr returns the OrderItems value or an error if the edge
// was not loaded in eager-loading.
func (e MenuItemEdges) OrderItemsOrErr() ([]*OrderItem, error) {
	if e.loadedTypes[1] {
		return e.OrderItems, nil
	}
	return nil, &NotLoadedError{edge: "order_items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MenuItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case menuitem.FieldCustomizationOptions, menuitem.FieldNutritionalInfo:
			values[i] = new([]byte)
		case menuitem.FieldIsAvailable, menuitem.FieldIsVegetarian, menuitem.FieldIsVegan, menuitem.FieldIsGlutenFree, menuitem.FieldIsFeatured, menuitem.FieldIsDailySpecial:
			values[i] = new(sql.NullBool)
		case menuitem.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case menuitem.FieldID, menuitem.FieldCategoryID, menuitem.FieldPrepTimeMinutes, menuitem.FieldPopularityScore:
			values[i] = new(sql.NullInt64)
		case menuitem.FieldName, menuitem.FieldDescription, menuitem.FieldImageKey, menuitem.FieldSpiceLevel, menuitem.FieldAllergens:
			values[i] = new(sql.NullString)
		case menuitem.FieldCreatedAt, menuitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MenuItem fields.
func (_m *MenuItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case menuitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case menuitem.FieldCategoryID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value.Valid {
				_m.CategoryID = int(value.Int64)
			}
		case menuitem.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case menuitem.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case menuitem.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Float64
			}
		case menuitem.FieldImageKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_key", values[i])
			} else if value.Valid {
				_m.ImageKey = value.String
			}
		case menuitem.FieldIsAvailable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_available", values[i])
			} else if value.Valid {
				_m.IsAvailable = value.Bool
			}
		case menuitem.FieldIsVegetarian:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_vegetarian", values[i])
			} else if value.Valid {
				_m.IsVegetarian = value.Bool
			}
		case menuitem.FieldIsVegan:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_vegan", values[i])
			} else if value.Valid {
				_m.IsVegan = value.Bool
			}
		case menuitem.FieldIsGlutenFree:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_gluten_free", values[i])
			} else if value.Valid {
				_m.IsGlutenFree = value.Bool
			}
		case menuitem.FieldIsFeatured:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_featured", values[i])
			} else if value.Valid {
				_m.IsFeatured = value.Bool
			}
		case menuitem.FieldIsDailySpecial:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_daily_special", values[i])
			} else if value.Valid {
				_m.IsDailySpecial = value.Bool
			}
		case menuitem.FieldSpiceLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spice_level", values[i])
			} else if value.Valid {
				_m.SpiceLevel = menuitem.SpiceLevel(value.String)
			}
		case menuitem.FieldAllergens:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field allergens", values[i])
			} else if value.Valid {
				_m.Allergens = value.String
			}
		case menuitem.FieldPrepTimeMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prep_time_minutes", values[i])
			} else if value.Valid {
				_m.PrepTimeMinutes = int(value.Int64)
			}
		case menuitem.FieldPopularityScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field popularity_score", values[i])
			} else if value.Valid {
				_m.PopularityScore = int(value.Int64)
			}
		case menuitem.FieldCustomizationOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field customization_options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CustomizationOptions); err != nil {
					return fmt.Errorf("unmarshal field customization_options: %w", err)
				}
			}
		case menuitem.FieldNutritionalInfo:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field nutritional_info", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NutritionalInfo); err != nil {
					return fmt.Errorf("unmarshal field nutritional_info: %w", err)
				}
			}
		case menuitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case menuitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MenuItem.
// This includes values selected through modifiers, order, etc.
func (_m *MenuItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCategory queries the "category" edge of the MenuItem entity.
func (_m *MenuItem) QueryCategory() *CategoryQuery {
	return NewMenuItemClient(_m.config).QueryCategory(_m)
}

// QueryOrderItems queries the "order_items" edge of the MenuItem entity.
func (_m *MenuItem) QueryOrderItems() *OrderItemQuery {
	return NewMenuItemClient(_m.config).QueryOrderItems(_m)
}

// Update returns a builder for updating this MenuItem.
// Note that you need to call MenuItem.Unwrap() before calling this method if this MenuItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MenuItem) Update() *MenuItemUpdateOne {
	return NewMenuItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MenuItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MenuItem) Unwrap() *MenuItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MenuItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MenuItem) String() string {
	var builder strings.Builder
	builder.WriteString("MenuItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("category_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("image_key=")
	builder.WriteString(_m.ImageKey)
	builder.WriteString(", ")
	builder.WriteString("is_available=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAvailable))
	builder.WriteString(", ")
	builder.WriteString("is_vegetarian=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsVegetarian))
	builder.WriteString(", ")
	builder.WriteString("is_vegan=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsVegan))
	builder.WriteString(", ")
	builder.WriteString("is_gluten_free=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsGlutenFree))
	builder.WriteString(", ")
	builder.WriteString("is_featured=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsFeatured))
	builder.WriteString(", ")
	builder.WriteString("is_daily_special=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDailySpecial))
	builder.WriteString(", ")
	builder.WriteString("spice_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpiceLevel))
	builder.WriteString(", ")
	builder.WriteString("allergens=")
	builder.WriteString(_m.Allergens)
	builder.WriteString(", ")
	builder.WriteString("prep_time_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrepTimeMinutes))
	builder.WriteString(", ")
	builder.WriteString("popularity_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PopularityScore))
	builder.WriteString(", ")
	builder.WriteString("customization_options=")
	builder.WriteString(fmt.Sprintf("%v", _m.CustomizationOptions))
	builder.WriteString(", ")
	builder.WriteString("nutritional_info=")
	builder.WriteString(fmt.Sprintf("%v", _m.NutritionalInfo))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MenuItems is a parsable slice of MenuItem.
type MenuItems []*MenuItem
