// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/order"
	"github.com/menuqr/menuqr/ent/table"
)

// Order is the model entity for the Order schema.
type Order struct {
	config `json:"-"`
	// ID of the ent.
	// External-facing order id
	ID uuid.UUID `json:"id,omitempty"`
	// Business the order was placed at
	BusinessID int `json:"business_id,omitempty"`
	// Room number, table number or other location identifier
	Location string `json:"location,omitempty"`
	// Associated table (restaurants)
	TableID *int `json:"table_id,omitempty"`
	// Order lifecycle status
	Status order.Status `json:"status,omitempty"`
	// PaymentMethod holds the value of the "payment_method" field.
	PaymentMethod order.PaymentMethod `json:"payment_method,omitempty"`
	// PaymentStatus holds the value of the "payment_status" field.
	PaymentStatus order.PaymentStatus `json:"payment_status,omitempty"`
	// Order subtotal before tax and tip
	Subtotal float64 `json:"subtotal,omitempty"`
	// TaxAmount holds the value of the "tax_amount" field.
	TaxAmount float64 `json:"tax_amount,omitempty"`
	// TipAmount holds the value of the "tip_amount" field.
	TipAmount float64 `json:"tip_amount,omitempty"`
	// Total including tax and tip
	TotalPrice float64 `json:"total_price,omitempty"`
	// Customer's special requests or notes
	SpecialRequests string `json:"special_requests,omitempty"`
	// Snapshot of items and prices at order time, for historical accuracy
	ItemsSnapshot []map[string]interface{} `json:"items_snapshot,omitempty"`
	// When the status was last changed
	StatusChangedAt time.Time `json:"status_changed_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrderQuery when eager-loading is set.
	Edges        OrderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OrderEdges holds the relations/edges for other nodes in the graph.
type OrderEdges struct {
	// Business the order belongs to
	Business *Business `json:"business,omitempty"`
	// Table the order was placed from
	Table *Table `json:"table,omitempty"`
	// Lines of this order
	Items []*OrderItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// BusinessOrErr returns the Business value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OrderEdges) BusinessOrErr() (*Business, error) {
	if e.Business != nil {
		return e.Business, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: business.Label}
	}
	return nil, &NotLoadedError{edge: "business"}
}

// TableOrErr returns the Table value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OrderEdges) TableOrErr() (*Table, error) {
	if e.Table != nil {
		return e.Table, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: table.Label}
	}
	return nil, &NotLoadedError{edge: "table"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e OrderEdges) ItemsOrErr() ([]*OrderItem, error) {
	if e.loadedTypes[2] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Order) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case order.FieldItemsSnapshot:
			values[i] = new([]byte)
		case order.FieldSubtotal, order.FieldTaxAmount, order.FieldTipAmount, order.FieldTotalPrice:
			values[i] = new(sql.NullFloat64)
		case order.FieldBusinessID, order.FieldTableID:
			values[i] = new(sql.NullInt64)
		case order.FieldLocation, order.FieldStatus, order.FieldPaymentMethod, order.FieldPaymentStatus, order.FieldSpecialRequests:
			values[i] = new(sql.NullString)
		case order.FieldStatusChangedAt, order.FieldCreatedAt, order.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case order.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Order fields.
func (_m *Order) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case order.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case order.FieldBusinessID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value.Valid {
				_m.BusinessID = int(value.Int64)
			}
		case order.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case order.FieldTableID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field table_id", values[i])
			} else if value.Valid {
				_m.TableID = new(int)
				*_m.TableID = int(value.Int64)
			}
		case order.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = order.Status(value.String)
			}
		case order.FieldPaymentMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_method", values[i])
			} else if value.Valid {
				_m.PaymentMethod = order.PaymentMethod(value.String)
			}
		case order.FieldPaymentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_status", values[i])
			} else if value.Valid {
				_m.PaymentStatus = order.PaymentStatus(value.String)
			}
		case order.FieldSubtotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field subtotal", values[i])
			} else if value.Valid {
				_m.Subtotal = value.Float64
			}
		case order.FieldTaxAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tax_amount", values[i])
			} else if value.Valid {
				_m.TaxAmount = value.Float64
			}
		case order.FieldTipAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tip_amount", values[i])
			} else if value.Valid {
				_m.TipAmount = value.Float64
			}
		case order.FieldTotalPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_price", values[i])
			} else if value.Valid {
				_m.TotalPrice = value.Float64
			}
		case order.FieldSpecialRequests:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field special_requests", values[i])
			} else if value.Valid {
				_m.SpecialRequests = value.String
			}
		case order.FieldItemsSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field items_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ItemsSnapshot); err != nil {
					return fmt.Errorf("unmarshal field items_snapshot: %w", err)
				}
			}
		case order.FieldStatusChangedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field status_changed_at", values[i])
			} else if value.Valid {
				_m.StatusChangedAt = value.Time
			}
		case order.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case order.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Order.
// This includes values selected through modifiers, order, etc.
func (_m *Order) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBusiness queries the "business" edge of the Order entity.
func (_m *Order) QueryBusiness() *BusinessQuery {
	return NewOrderClient(_m.config).QueryBusiness(_m)
}

// QueryTable queries the "table" edge of the Order entity.
func (_m *Order) QueryTable() *TableQuery {
	return NewOrderClient(_m.config).QueryTable(_m)
}

// QueryItems queries the "items" edge of the Order entity.
func (_m *Order) QueryItems() *OrderItemQuery {
	return NewOrderClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this Order.
// Note that you need to call Order.Unwrap() before calling this method if this Order
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Order) Update() *OrderUpdateOne {
	return NewOrderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Order entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Order) Unwrap() *Order {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Order is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Order) String() string {
	var builder strings.Builder
	builder.WriteString("Order(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("business_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BusinessID))
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	if v := _m.TableID; v != nil {
		builder.WriteString("table_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("payment_method=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentMethod))
	builder.WriteString(", ")
	builder.WriteString("payment_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentStatus))
	builder.WriteString(", ")
	builder.WriteString("subtotal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subtotal))
	builder.WriteString(", ")
	builder.WriteString("tax_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaxAmount))
	builder.WriteString(", ")
	builder.WriteString("tip_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TipAmount))
	builder.WriteString(", ")
	builder.WriteString("total_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPrice))
	builder.WriteString(", ")
	builder.WriteString("special_requests=")
	builder.WriteString(_m.SpecialRequests)
	builder.WriteString(", ")
	builder.WriteString("items_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemsSnapshot))
	builder.WriteString(", ")
	builder.WriteString("status_changed_at=")
	builder.WriteString(_m.StatusChangedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Orders is a parsable slice of Order.
type Orders []*Order
