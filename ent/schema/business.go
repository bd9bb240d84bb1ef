package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Business holds the schema definition for the Business entity.
// A business is one tenant (hotel, restaurant, cafe or cloud kitchen);
// all menu, order and recommendation data is scoped to it.
type Business struct {
	ent.Schema
}

// Fields of the Business.
func (Business) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Official business name"),
		field.Enum("business_type").
			Values("hotel", "restaurant", "cafe", "cloud_kitchen").
			Default("restaurant").
			Comment("Type of food business"),
		field.String("slug").
			NotEmpty().
			Unique().
			Comment("URL-friendly identifier (e.g. 'bella-italia-doha')"),
		field.String("currency_code").
			MaxLen(3).
			Default("USD").
			Comment("ISO 4217 currency code"),
		field.String("timezone").
			Default("UTC").
			Comment("IANA timezone name (e.g. 'Asia/Qatar')"),
		field.String("logo_key").
			Optional().
			Comment("Object storage key of the business logo"),
		field.Bool("is_active").
			Default(true).
			Comment("Whether the public menu is accessible"),
		field.Bool("enable_table_management").
			Default(false).
			Comment("Table tracking and status (restaurants)"),
		field.Bool("enable_waiter_alerts").
			Default(false).
			Comment("Allow customers to call waiters (restaurants)"),
		field.Bool("enable_room_charging").
			Default(false).
			Comment("Allow guests to charge orders to their room (hotels)"),
		field.Enum("menu_theme").
			Values("modern", "dark").
			Default("modern").
			Comment("Visual theme for the customer-facing menu"),
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

// Edges of the Business.
func (Business) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("categories", Category.Type).
			Comment("Menu categories of this business"),
		edge.To("tables", Table.Type).
			Comment("Tables of this business"),
		edge.To("orders", Order.Type).
			Comment("Orders placed at this business"),
		edge.To("item_pairs", ItemPairFrequency.Type).
			Comment("Co-occurrence statistics for this business's menu items"),
		edge.To("recommendation_events", RecommendationEvent.Type).
			Comment("Impression/conversion log for this business"),
		edge.To("staff", StaffUser.Type).
			Comment("Staff accounts of this business"),
		edge.To("waiter_alerts", WaiterAlert.Type).
			Comment("Waiter assistance requests"),
	}
}

// Indexes of the Business.
func (Business) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
		index.Fields("business_type"),
		index.Fields("is_active"),
	}
}
