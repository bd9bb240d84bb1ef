package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WaiterAlert holds the schema definition for the WaiterAlert entity.
// A customer's request for staff attention, raised from a table's QR page.
type WaiterAlert struct {
	ent.Schema
}

// Fields of the WaiterAlert.
func (WaiterAlert) Fields() []ent.Field {
	return []ent.Field{
		field.Int("business_id").
			Comment("Owning business"),
		field.Int("table_id").
			Comment("Table requesting assistance"),
		field.Enum("alert_type").
			Values("assistance", "bill_request", "complaint", "refill").
			Default("assistance").
			Comment("Kind of request"),
		field.String("message").
			Optional().
			MaxLen(500).
			Comment("Optional free-text message from the customer"),
		field.Enum("status").
			Values("pending", "acknowledged", "resolved").
			Default("pending"),
		field.Time("acknowledged_at").
			Optional().
			Nillable().
			Comment("When staff acknowledged the alert"),
		field.Time("resolved_at").
			Optional().
			Nillable().
			Comment("When the alert was resolved"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the WaiterAlert.
func (WaiterAlert) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("business", Business.Type).
			Ref("waiter_alerts").
			Field("business_id").
			Unique().
			Required().
			Comment("Business this alert belongs to"),
		edge.From("table", Table.Type).
			Ref("waiter_alerts").
			Field("table_id").
			Unique().
			Required().
			Comment("Table that raised the alert"),
	}
}

// Indexes of the WaiterAlert.
func (WaiterAlert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "status"),
		index.Fields("business_id", "created_at"),
	}
}
