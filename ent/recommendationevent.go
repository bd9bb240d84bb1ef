// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/recommendationevent"
)

// RecommendationEvent is the model entity for the RecommendationEvent schema.
type RecommendationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning business
	BusinessID int `json:"business_id,omitempty"`
	// Item that triggered the recommendation, if known
	SourceItemID *int `json:"source_item_id,omitempty"`
	// Item that was shown or bought
	RecommendedItemID int `json:"recommended_item_id,omitempty"`
	// What happened
	EventType recommendationevent.EventType `json:"event_type,omitempty"`
	// Order that produced a conversion
	OrderID *uuid.UUID `json:"order_id,omitempty"`
	// Revenue from the recommended item, conversions only
	Revenue float64 `json:"revenue,omitempty"`
	// Event timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecommendationEventQuery when eager-loading is set.
	Edges        RecommendationEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecommendationEventEdges holds the relations/edges for other nodes in the graph.
type RecommendationEventEdges struct {
	// Business this event belongs to
	Business *Business `json:"business,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BusinessOrErr returns the Business value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecommendationEventEdges) BusinessOrErr() (*Business, error) {
	if e.Business != nil {
		return e.Business, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: business.Label}
	}
	return nil, &NotLoadedError{edge: "business"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecommendationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recommendationevent.FieldOrderID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case recommendationevent.FieldRevenue:
			values[i] = new(sql.NullFloat64)
		case recommendationevent.FieldID, recommendationevent.FieldBusinessID, recommendationevent.FieldSourceItemID, recommendationevent.FieldRecommendedItemID:
			values[i] = new(sql.NullInt64)
		case recommendationevent.FieldEventType:
			values[i] = new(sql.NullString)
		case recommendationevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecommendationEvent fields.
func (_m *RecommendationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recommendationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case recommendationevent.FieldBusinessID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value.Valid {
				_m.BusinessID = int(value.Int64)
			}
		case recommendationevent.FieldSourceItemID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_item_id", values[i])
			} else if value.Valid {
				_m.SourceItemID = new(int)
				*_m.SourceItemID = int(value.Int64)
			}
		case recommendationevent.FieldRecommendedItemID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_item_id", values[i])
			} else if value.Valid {
				_m.RecommendedItemID = int(value.Int64)
			}
		case recommendationevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = recommendationevent.EventType(value.String)
			}
		case recommendationevent.FieldOrderID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value.Valid {
				_m.OrderID = new(uuid.UUID)
				*_m.OrderID = *value.S.(*uuid.UUID)
			}
		case recommendationevent.FieldRevenue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field revenue", values[i])
			} else if value.Valid {
				_m.Revenue = value.Float64
			}
		case recommendationevent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RecommendationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RecommendationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBusiness queries the "business" edge of the RecommendationEvent entity.
func (_m *RecommendationEvent) QueryBusiness() *BusinessQuery {
	return NewRecommendationEventClient(_m.config).QueryBusiness(_m)
}

// Update returns a builder for updating this RecommendationEvent.
// Note that you need to call RecommendationEvent.Unwrap() before calling this method if this RecommendationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RecommendationEvent) Update() *RecommendationEventUpdateOne {
	return NewRecommendationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RecommendationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RecommendationEvent) Unwrap() *RecommendationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RecommendationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RecommendationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RecommendationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("business_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BusinessID))
	builder.WriteString(", ")
	if v := _m.SourceItemID; v != nil {
		builder.WriteString("source_item_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("recommended_item_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecommendedItemID))
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventType))
	builder.WriteString(", ")
	if v := _m.OrderID; v != nil {
		builder.WriteString("order_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("revenue=")
	builder.WriteString(fmt.Sprintf("%v", _m.Revenue))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RecommendationEvents is a parsable slice of RecommendationEvent.
type RecommendationEvents []*RecommendationEvent
