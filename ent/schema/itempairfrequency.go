package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ItemPairFrequency holds the schema definition for the ItemPairFrequency
// entity. One row per unordered pair of menu items that have been bought
// together at a business, plus the counters the recommendation engine keeps.
//
// Pairs are canonical: item_a_id is always the smaller id, so (A,B) and (B,A)
// share one row.
type ItemPairFrequency struct {
	ent.Schema
}

// Fields of the ItemPairFrequency.
func (ItemPairFrequency) Fields() []ent.Field {
	return []ent.Field{
		field.Int("business_id").
			Comment("Owning business; pairs never cross tenants"),
		field.Int("item_a_id").
			Comment("Smaller menu item id of the canonical pair"),
		field.Int("item_b_id").
			Comment("Larger menu item id of the canonical pair"),
		field.Int("times_together").
			Default(1).
			Min(1).
			Comment("Completed orders containing both items"),
		field.Float("confidence").
			Default(0).
			Comment("times_together / completed orders containing item_a"),
		field.Int("times_recommended").
			Default(0).
			Comment("Impressions attributed to this pair"),
		field.Int("times_converted").
			Default(0).
			Comment("Conversions attributed to this pair"),
		field.Float("revenue_generated").
			Default(0).
			Comment("Revenue attributed to this pair"),
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

// Edges of the ItemPairFrequency.
func (ItemPairFrequency) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("business", Business.Type).
			Ref("item_pairs").
			Field("business_id").
			Unique().
			Required().
			Comment("Business this pair belongs to"),
	}
}

// Indexes of the ItemPairFrequency.
func (ItemPairFrequency) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "item_a_id", "item_b_id").Unique(),
		index.Fields("business_id", "confidence"),
		index.Fields("item_a_id"),
		index.Fields("item_b_id"),
	}
}
