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
	"github.com/menuqr/menuqr/ent/waiteralert"
)

// WaiterAlert is the model entity for the WaiterAlert schema.
type WaiterAlert struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning business
	BusinessID int `json:"business_id,omitempty"`
	// Table requesting assistance
	TableID int `json:"table_id,omitempty"`
	// Kind of request
	AlertType waiteralert.AlertType `json:"alert_type,omitempty"`
	// Optional free-text message from the customer
	Message string `json:"message,omitempty"`
	// Status holds the value of the "status" field.
	Status waiteralert.Status `json:"status,omitempty"`
	// When staff acknowledged the alert
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	// When the alert was resolved
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WaiterAlertQuery when eager-loading is set.
	Edges        WaiterAlertEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WaiterAlertEdges holds the relations/edges for other nodes in the graph.
type WaiterAlertEdges struct {
	// Business this alert belongs to
	Business *Business `json:"business,omitempty"`
	// Table that raised the alert
	Table *Table `json:"table,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BusinessOrErr returns the Business value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WaiterAlertEdges) BusinessOrErr() (*Business, error) {
	if e.Business != nil {
		return e.Business, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: business.Label}
	}
	return nil, &NotLoadedError{edge: "business"}
}

// TableOrErr returns the Table value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WaiterAlertEdges) TableOrErr() (*Table, error) {
	if e.Table != nil {
		return e.Table, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: table.Label}
	}
	return nil, &NotLoadedError{edge: "table"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WaiterAlert) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case waiteralert.FieldID, waiteralert.FieldBusinessID, waiteralert.FieldTableID:
			values[i] = new(sql.NullInt64)
		case waiteralert.FieldAlertType, waiteralert.FieldMessage, waiteralert.FieldStatus:
			values[i] = new(sql.NullString)
		case waiteralert.FieldAcknowledgedAt, waiteralert.FieldResolvedAt, waiteralert.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WaiterAlert fields.
func (_m *WaiterAlert) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case waiteralert.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case waiteralert.FieldBusinessID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value.Valid {
				_m.BusinessID = int(value.Int64)
			}
		case waiteralert.FieldTableID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field table_id", values[i])
			} else if value.Valid {
				_m.TableID = int(value.Int64)
			}
		case waiteralert.FieldAlertType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_type", values[i])
			} else if value.Valid {
				_m.AlertType = waiteralert.AlertType(value.String)
			}
		case waiteralert.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case waiteralert.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = waiteralert.Status(value.String)
			}
		case waiteralert.FieldAcknowledgedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field acknowledged_at", values[i])
			} else if value.Valid {
				_m.AcknowledgedAt = new(time.Time)
				*_m.AcknowledgedAt = value.Time
			}
		case waiteralert.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case waiteralert.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WaiterAlert.
// This includes values selected through modifiers, order, etc.
func (_m *WaiterAlert) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBusiness queries the "business" edge of the WaiterAlert entity.
func (_m *WaiterAlert) QueryBusiness() *BusinessQuery {
	return NewWaiterAlertClient(_m.config).QueryBusiness(_m)
}

// QueryTable queries the "table" edge of the WaiterAlert entity.
func (_m *WaiterAlert) QueryTable() *TableQuery {
	return NewWaiterAlertClient(_m.config).QueryTable(_m)
}

// Update returns a builder for updating this WaiterAlert.
// Note that you need to call WaiterAlert.Unwrap() before calling this method if this WaiterAlert
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WaiterAlert) Update() *WaiterAlertUpdateOne {
	return NewWaiterAlertClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WaiterAlert entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WaiterAlert) Unwrap() *WaiterAlert {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WaiterAlert is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WaiterAlert) String() string {
	var builder strings.Builder
	builder.WriteString("WaiterAlert(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("business_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BusinessID))
	builder.WriteString(", ")
	builder.WriteString("table_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TableID))
	builder.WriteString(", ")
	builder.WriteString("alert_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlertType))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.AcknowledgedAt; v != nil {
		builder.WriteString("acknowledged_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WaiterAlerts is a parsable slice of WaiterAlert.
type WaiterAlerts []*WaiterAlert
