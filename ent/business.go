// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/menuqr/menuqr/ent/business"
)

// Business is the model entity for the Business schema.
type Business struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Official business name
	Name string `json:"name,omitempty"`
	// Type of food business
	BusinessType business.BusinessType `json:"business_type,omitempty"`
	// URL-friendly identifier (e.g. 'bella-italia-doha')
	Slug string `json:"slug,omitempty"`
	// ISO 4217 currency code
	CurrencyCode string `json:"currency_code,omitempty"`
	// IANA timezone name (e.g. 'Asia/Qatar')
	Timezone string `json:"timezone,omitempty"`
	// Object storage key of the business logo
	LogoKey string `json:"logo_key,omitempty"`
	// Whether the public menu is accessible
	IsActive bool `json:"is_active,omitempty"`
	// Table tracking and status (restaurants)
	EnableTableManagement bool `json:"enable_table_management,omitempty"`
	// Allow customers to call waiters (restaurants)
	EnableWaiterAlerts bool `json:"enable_waiter_alerts,omitempty"`
	// Allow guests to charge orders to their room (hotels)
	EnableRoomCharging bool `json:"enable_room_charging,omitempty"`
	// Visual theme for the customer-facing menu
	MenuTheme business.MenuTheme `json:"menu_theme,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BusinessQuery when eager-loading is set.
	Edges        BusinessEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BusinessEdges holds the relations/edges for other nodes in the graph.
type BusinessEdges struct {
	// Menu categories of this business
	Categories []*Category `json:"categories,omitempty"`
	// Tables of this business
	Tables []*Table `json:"tables,omitempty"`
	// Orders placed at this business
	Orders []*Order `json:"orders,omitempty"`
	// Co-occurrence statistics for this business's menu items
	ItemPairs []*ItemPairFrequency `json:"item_pairs,omitempty"`
	// Impression/conversion log for this business
	RecommendationEvents []*RecommendationEvent `json:"recommendation_events,omitempty"`
	// Staff accounts of this business
	Staff []*StaffUser `json:"staff,omitempty"`
	// Waiter assistance requests
	WaiterAlerts []*WaiterAlert `json:"waiter_alerts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// CategoriesOrErr returns the Categories value or an error if the edge
// was not loaded in eager-loading.
func (e BusinessEdges) CategoriesOrErr() ([]*Category, error) {
	if e.loadedTypes[0] {
		return e.Categories, nil
	}
	return nil, &NotLoadedError{edge: "categories"}
}

// TablesOrErr returns the Tables value or an error if the edge
// was not loaded in eager-loading.
func (e BusinessEdges) TablesOrErr() ([]*Table, error) {
	if e.loadedTypes[1] {
		return e.Tables, nil
	}
	return nil, &NotLoadedError{edge: "tables"}
}

// OrdersOrErr returns the Orders value or an error if the edge
// was not loaded in eager-loading.
func (e BusinessEdges) OrdersOrErr() ([]*Order, error) {
	if e.loadedTypes[2] {
		return e.Orders, nil
	}
	return nil, &NotLoadedError{edge: "orders"}
}

// ItemPairsOrErr returns the ItemPairs value or an error if the edge
// was not loaded in eager-loading.
func (e BusinessEdges) ItemPairsOrErr() ([]*ItemPairFrequency, error) {
	if e.loadedTypes[3] {
		return e.ItemPairs, nil
	}
	return nil, &NotLoadedError{edge: "item_pairs"}
}

// RecommendationEventsOrErr returns the RecommendationEvents value or an error if the edge
// was not loaded in eager-loading.
func (e BusinessEdges) RecommendationEventsOrErr() ([]*RecommendationEvent, error) {
	if e.loadedTypes[4] {
		return e.RecommendationEvents, nil
	}
	return nil, &NotLoadedError{edge: "recommendation_events"}
}

// StaffOrErr returns the Staff value or an error if the edge
// was not loaded in eager-loading.
func (e BusinessEdges) StaffOrErr() ([]*StaffUser, error) {
	if e.loadedTypes[5] {
		return e.Staff, nil
	}
	return nil, &NotLoadedError{edge: "staff"}
}

// WaiterAlertsOrErr returns the WaiterAlerts value or an error if the edge
// was not loaded in eager-loading.
func (e BusinessEdges) WaiterAlertsOrErr() ([]*WaiterAlert, error) {
	if e.loadedTypes[6] {
		return e.WaiterAlerts, nil
	}
	return nil, &NotLoadedError{edge: "waiter_alerts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Business) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case business.FieldIsActive, business.FieldEnableTableManagement, business.FieldEnableWaiterAlerts, business.FieldEnableRoomCharging:
			values[i] = new(sql.NullBool)
		case business.FieldID:
			values[i] = new(sql.NullInt64)
		case business.FieldName, business.FieldBusinessType, business.FieldSlug, business.FieldCurrencyCode, business.FieldTimezone, business.FieldLogoKey, business.FieldMenuTheme:
			values[i] = new(sql.NullString)
		case business.FieldCreatedAt, business.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Business fields.
func (_m *Business) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case business.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case business.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case business.FieldBusinessType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_type", values[i])
			} else if value.Valid {
				_m.BusinessType = business.BusinessType(value.String)
			}
		case business.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case business.FieldCurrencyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency_code", values[i])
			} else if value.Valid {
				_m.CurrencyCode = value.String
			}
		case business.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case business.FieldLogoKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field logo_key", values[i])
			} else if value.Valid {
				_m.LogoKey = value.String
			}
		case business.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case business.FieldEnableTableManagement:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enable_table_management", values[i])
			} else if value.Valid {
				_m.EnableTableManagement = value.Bool
			}
		case business.FieldEnableWaiterAlerts:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enable_waiter_alerts", values[i])
			} else if value.Valid {
				_m.EnableWaiterAlerts = value.Bool
			}
		case business.FieldEnableRoomCharging:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enable_room_charging", values[i])
			} else if value.Valid {
				_m.EnableRoomCharging = value.Bool
			}
		case business.FieldMenuTheme:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field menu_theme", values[i])
			} else if value.Valid {
				_m.MenuTheme = business.MenuTheme(value.String)
			}
		case business.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case business.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Business.
// This includes values selected through modifiers, order, etc.
func (_m *Business) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCategories queries the "categories" edge of the Business entity.
func (_m *Business) QueryCategories() *CategoryQuery {
	return NewBusinessClient(_m.config).QueryCategories(_m)
}

// QueryTables queries the "tables" edge of the Business entity.
func (_m *Business) QueryTables() *TableQuery {
	return NewBusinessClient(_m.config).QueryTables(_m)
}

// QueryOrders queries the "orders" edge of the Business entity.
func (_m *Business) QueryOrders() *OrderQuery {
	return NewBusinessClient(_m.config).QueryOrders(_m)
}

// QueryItemPairs queries the "item_pairs" edge of the Business entity.
func (_m *Business) QueryItemPairs() *ItemPairFrequencyQuery {
	return NewBusinessClient(_m.config).QueryItemPairs(_m)
}

// QueryRecommendationEvents queries the "recommendation_events" edge of the Business entity.
func (_m *Business) QueryRecommendationEvents() *RecommendationEventQuery {
	return NewBusinessClient(_m.config).QueryRecommendationEvents(_m)
}

// QueryStaff queries the "staff" edge of the Business entity.
func (_m *Business) QueryStaff() *StaffUserQuery {
	return NewBusinessClient(_m.config).QueryStaff(_m)
}

// QueryWaiterAlerts queries the "waiter_alerts" edge of the Business entity.
func (_m *Business) QueryWaiterAlerts() *WaiterAlertQuery {
	return NewBusinessClient(_m.config).QueryWaiterAlerts(_m)
}

// Update returns a builder for updating this Business.
// Note that you need to call Business.Unwrap() before calling this method if this Business
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Business) Update() *BusinessUpdateOne {
	return NewBusinessClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Business entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Business) Unwrap() *Business {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Business is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Business) String() string {
	var builder strings.Builder
	builder.WriteString("Business(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("business_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.BusinessType))
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("currency_code=")
	builder.WriteString(_m.CurrencyCode)
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("logo_key=")
	builder.WriteString(_m.LogoKey)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("enable_table_management=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnableTableManagement))
	builder.WriteString(", ")
	builder.WriteString("enable_waiter_alerts=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnableWaiterAlerts))
	builder.WriteString(", ")
	builder.WriteString("enable_room_charging=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnableRoomCharging))
	builder.WriteString(", ")
	builder.WriteString("menu_theme=")
	builder.WriteString(fmt.Sprintf("%v", _m.MenuTheme))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Businesses is a parsable slice of Business.
type Businesses []*Business
