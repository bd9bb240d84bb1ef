// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/table"
)

// Table is the model entity for the Table schema.
type Table struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning business
	BusinessID int `json:"business_id,omitempty"`
	// Table identifier (e.g. '5', 'A1', 'Patio-3')
	TableNumber string `json:"table_number,omitempty"`
	// Maximum number of guests
	Capacity int `json:"capacity,omitempty"`
	// Current seating status
	Status table.Status `json:"status,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TableQuery when eager-loading is set.
	Edges        TableEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TableEdges holds the relations/edges for other nodes in the graph.
type TableEdges struct {
	// Business this table belongs to
	Business *Business `json:"business,omitempty"`
	// Orders placed at this table
	Orders []*Order `json:"orders,omitempty"`
	// Assistance requests from this table
	WaiterAlerts []*WaiterAlert `json:"waiter_alerts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// BusinessOrErr returns the Business value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TableEdges) BusinessOrErr() (*Business, error) {
	if e.Business != nil {
		return e.Business, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: business.Label}
	}
	return nil, &NotLoadedError{edge: "business"}
}

// OrdersOrErr returns the Orders value or an error if the edge
// was not loaded in eager-loading.
func (e TableEdges) OrdersOrErr() ([]*Order, error) {
	if e.loadedTypes[1] {
		return e.Orders, nil
	}
	return nil, &NotLoadedError{edge: "orders"}
}

// WaiterAlertsOrErr returns the WaiterAlerts value or an error if the edge
// was not loaded in eager-loading.
func (e TableEdges) WaiterAlertsOrErr() ([]*WaiterAlert, error) {
	if e.loadedTypes[2] {
		return e.WaiterAlerts, nil
	}
	return nil, &NotLoadedError{edge: "waiter_alerts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Table) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case table.FieldID, table.FieldBusinessID, table.FieldCapacity:
			values[i] = new(sql.NullInt64)
		case table.FieldTableNumber, table.FieldStatus:
			values[i] = new(sql.NullString)
		case table.FieldCreatedAt, table.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Table fields.
func (_m *Table) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case table.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case table.FieldBusinessID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value.Valid {
				_m.BusinessID = int(value.Int64)
			}
		case table.FieldTableNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field table_number", values[i])
			} else if value.Valid {
				_m.TableNumber = value.String
			}
		case table.FieldCapacity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field capacity", values[i])
			} else if value.Valid {
				_m.Capacity = int(value.Int64)
			}
		case table.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = table.Status(value.String)
			}
		case table.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case table.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Table.
// This includes values selected through modifiers, order, etc.
func (_m *Table) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBusiness queries the "business" edge of the Table entity.
func (_m *Table) QueryBusiness() *BusinessQuery {
	return NewTableClient(_m.config).QueryBusiness(_m)
}

// QueryOrders queries the "orders" edge of the Table entity.
func (_m *Table) QueryOrders() *OrderQuery {
	return NewTableClient(_m.config).QueryOrders(_m)
}

// QueryWaiterAlerts queries the "waiter_alerts" edge of the Table entity.
func (_m *Table) QueryWaiterAlerts() *WaiterAlertQuery {
	return NewTableClient(_m.config).QueryWaiterAlerts(_m)
}

// Update returns a builder for updating this Table.
// Note that you need to call Table.Unwrap() before calling this method if this Table
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Table) Update() *TableUpdateOne {
	return NewTableClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Table entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Table) Unwrap() *Table {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Table is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Table) String() string {
	var builder strings.Builder
	builder.WriteString("Table(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("business_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BusinessID))
	builder.WriteString(", ")
	builder.WriteString("table_number=")
	builder.WriteString(_m.TableNumber)
	builder.WriteString(", ")
	builder.WriteString("capacity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Capacity))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tables is a parsable slice of Table.
type Tables []*Table
