package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// OrderItem holds the schema definition for the OrderItem entity.
// One menu item within a specific order, with its quantity and the price
// captured at order time. menu_item_id is nillable so order history survives
// menu item deletion.
type OrderItem struct {
	ent.Schema
}

// Fields of the OrderItem.
func (OrderItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("order_id", uuid.UUID{}).
			Comment("Order this line belongs to"),
		field.Int("menu_item_id").
			Optional().
			Nillable().
			Comment("Referenced menu item (kept nullable for history)"),
		field.Int("quantity").
			Default(1).
			Min(1),
		field.Float("price_at_order").
			Min(0).
			Comment("Price of a single unit when the order was placed"),
	}
}

// Edges of the OrderItem.
func (OrderItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("order", Order.Type).
			Ref("items").
			Field("order_id").
			Unique().
			Required().
			Comment("Order this line belongs to"),
		edge.From("menu_item", MenuItem.Type).
			Ref("order_items").
			Field("menu_item_id").
			Unique().
			Comment("Menu item this line references"),
	}
}

// Indexes of the OrderItem.
func (OrderItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_id", "menu_item_id").Unique(),
		index.Fields("menu_item_id"),
	}
}
