package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Order holds the schema definition for the Order entity.
// A customer's order for one business. The UUID primary key doubles as the
// external-facing order number.
type Order struct {
	ent.Schema
}

// Fields of the Order.
func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Comment("External-facing order id"),
		field.Int("business_id").
			Comment("Business the order was placed at"),
		field.String("location").
			NotEmpty().
			MaxLen(50).
			Comment("Room number, table number or other location identifier"),
		field.Int("table_id").
			Optional().
			Nillable().
			Comment("Associated table (restaurants)"),
		field.Enum("status").
			Values("pending", "accepted", "preparing", "ready", "delivered", "completed", "cancelled").
			Default("pending").
			Comment("Order lifecycle status"),
		field.Enum("payment_method").
			Values("cash", "card", "room_charge", "online").
			Default("cash"),
		field.Enum("payment_status").
			Values("pending", "paid", "partial", "refunded").
			Default("pending"),
		field.Float("subtotal").
			Default(0).
			Comment("Order subtotal before tax and tip"),
		field.Float("tax_amount").
			Default(0),
		field.Float("tip_amount").
			Default(0),
		field.Float("total_price").
			Default(0).
			Comment("Total including tax and tip"),
		field.String("special_requests").
			Optional().
			Comment("Customer's special requests or notes"),
		field.JSON("items_snapshot", []map[string]interface{}{}).
			Optional().
			Comment("Snapshot of items and prices at order time, for historical accuracy"),
		field.Time("status_changed_at").
			Default(time.Now).
			Comment("When the status was last changed"),
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

// Edges of the Order.
func (Order) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("business", Business.Type).
			Ref("orders").
			Field("business_id").
			Unique().
			Required().
			Comment("Business the order belongs to"),
		edge.From("table", Table.Type).
			Ref("orders").
			Field("table_id").
			Unique().
			Comment("Table the order was placed from"),
		edge.To("items", OrderItem.Type).
			Comment("Lines of this order"),
	}
}

// Indexes of the Order.
func (Order) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "status"),
		index.Fields("business_id", "created_at"),
		index.Fields("status"),
	}
}
