// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/itempairfrequency"
)

// ItemPairFrequency is the model entity for the ItemPairFrequency schema.
type ItemPairFrequency struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning business; pairs never cross tenants
	BusinessID int `json:"business_id,omitempty"`
	// Smaller menu item id of the canonical pair
	ItemAID int `json:"item_a_id,omitempty"`
	// Larger menu item id of the canonical pair
	ItemBID int `json:"item_b_id,omitempty"`
	// Completed orders containing both items
	TimesTogether int `json:"times_together,omitempty"`
	// times_together / completed orders containing item_a
	Confidence float64 `json:"confidence,omitempty"`
	// Impressions attributed to this pair
	TimesRecommended int `json:"times_recommended,omitempty"`
	// Conversions attributed to this pair
	TimesConverted int `json:"times_converted,omitempty"`
	// Revenue attributed to this pair
	RevenueGenerated float64 `json:"revenue_generated,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ItemPairFrequencyQuery when eager-loading is set.
	Edges        ItemPairFrequencyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ItemPairFrequencyEdges holds the relations/edges for other nodes in the graph.
type ItemPairFrequencyEdges struct {
	// Business this pair belongs to
	Business *Business `json:"business,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BusinessOrErr returns the Business value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ItemPairFrequencyEdges) BusinessOrErr() (*Business, error) {
	if e.Business != nil {
		return e.Business, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: business.Label}
	}
	return nil, &NotLoadedError{edge: "business"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ItemPairFrequency) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case itempairfrequency.FieldConfidence, itempairfrequency.FieldRevenueGenerated:
			values[i] = new(sql.NullFloat64)
		case itempairfrequency.FieldID, itempairfrequency.FieldBusinessID, itempairfrequency.FieldItemAID, itempairfrequency.FieldItemBID, itempairfrequency.FieldTimesTogether, itempairfrequency.FieldTimesRecommended, itempairfrequency.FieldTimesConverted:
			values[i] = new(sql.NullInt64)
		case itempairfrequency.FieldCreatedAt, itempairfrequency.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ItemPairFrequency fields.
func (_m *ItemPairFrequency) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case itempairfrequency.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case itempairfrequency.FieldBusinessID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value.Valid {
				_m.BusinessID = int(value.Int64)
			}
		case itempairfrequency.FieldItemAID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_a_id", values[i])
			} else if value.Valid {
				_m.ItemAID = int(value.Int64)
			}
		case itempairfrequency.FieldItemBID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_b_id", values[i])
			} else if value.Valid {
				_m.ItemBID = int(value.Int64)
			}
		case itempairfrequency.FieldTimesTogether:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_together", values[i])
			} else if value.Valid {
				_m.TimesTogether = int(value.Int64)
			}
		case itempairfrequency.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case itempairfrequency.FieldTimesRecommended:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_recommended", values[i])
			} else if value.Valid {
				_m.TimesRecommended = int(value.Int64)
			}
		case itempairfrequency.FieldTimesConverted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_converted", values[i])
			} else if value.Valid {
				_m.TimesConverted = int(value.Int64)
			}
		case itempairfrequency.FieldRevenueGenerated:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field revenue_generated", values[i])
			} else if value.Valid {
				_m.RevenueGenerated = value.Float64
			}
		case itempairfrequency.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case itempairfrequency.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ItemPairFrequency.
// This includes values selected through modifiers, order, etc.
func (_m *ItemPairFrequency) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBusiness queries the "business" edge of the ItemPairFrequency entity.
func (_m *ItemPairFrequency) QueryBusiness() *BusinessQuery {
	return NewItemPairFrequencyClient(_m.config).QueryBusiness(_m)
}

// Update returns a builder for updating this ItemPairFrequency.
// Note that you need to call ItemPairFrequency.Unwrap() before calling this method if this ItemPairFrequency
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ItemPairFrequency) Update() *ItemPairFrequencyUpdateOne {
	return NewItemPairFrequencyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ItemPairFrequency entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ItemPairFrequency) Unwrap() *ItemPairFrequency {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ItemPairFrequency is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ItemPairFrequency) String() string {
	var builder strings.Builder
	builder.WriteString("ItemPairFrequency(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("business_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BusinessID))
	builder.WriteString(", ")
	builder.WriteString("item_a_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemAID))
	builder.WriteString(", ")
	builder.WriteString("item_b_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemBID))
	builder.WriteString(", ")
	builder.WriteString("times_together=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesTogether))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("times_recommended=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesRecommended))
	builder.WriteString(", ")
	builder.WriteString("times_converted=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesConverted))
	builder.WriteString(", ")
	builder.WriteString("revenue_generated=")
	builder.WriteString(fmt.Sprintf("%v", _m.RevenueGenerated))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ItemPairFrequencies is a parsable slice of ItemPairFrequency.
type ItemPairFrequencies []*ItemPairFrequency
