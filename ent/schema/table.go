package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Table holds the schema definition for the Table entity.
// A physical table in a restaurant, used for seating status and QR assignment.
type Table struct {
	ent.Schema
}

// Fields of the Table.
func (Table) Fields() []ent.Field {
	return []ent.Field{
		field.Int("business_id").
			Comment("Owning business"),
		field.String("table_number").
			NotEmpty().
			MaxLen(50).
			Comment("Table identifier (e.g. '5', 'A1', 'Patio-3')"),
		field.Int("capacity").
			Default(4).
			Min(1).
			Comment("Maximum number of guests"),
		field.Enum("status").
			Values("available", "occupied", "reserved", "cleaning").
			Default("available").
			Comment("Current seating status"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Table.
func (Table) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("business", Business.Type).
			Ref("tables").
			Field("business_id").
			Unique().
			Required().
			Comment("Business this table belongs to"),
		edge.To("orders", Order.Type).
			Comment("Orders placed at this table"),
		edge.To("waiter_alerts", WaiterAlert.Type).
			Comment("Assistance requests from this table"),
	}
}

// Indexes of the Table.
func (Table) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "table_number").Unique(),
		index.Fields("business_id", "status"),
	}
}
