package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// RecommendationEvent holds the schema definition for the
// RecommendationEvent entity. An append-only log of recommendation
// impressions and conversions, used by the analytics reports.
type RecommendationEvent struct {
	ent.Schema
}

// Fields of the RecommendationEvent.
func (RecommendationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("business_id").
			Comment("Owning business"),
		field.Int("source_item_id").
			Optional().
			Nillable().
			Comment("Item that triggered the recommendation, if known"),
		field.Int("recommended_item_id").
			Comment("Item that was shown or bought"),
		field.Enum("event_type").
			Values("impression", "conversion").
			Comment("What happened"),
		field.UUID("order_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Order that produced a conversion"),
		field.Float("revenue").
			Default(0).
			Comment("Revenue from the recommended item, conversions only"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Event timestamp"),
	}
}

// Edges of the RecommendationEvent.
func (RecommendationEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("business", Business.Type).
			Ref("recommendation_events").
			Field("business_id").
			Unique().
			Required().
			Comment("Business this event belongs to"),
	}
}

// Indexes of the RecommendationEvent.
func (RecommendationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "event_type", "created_at"),
		index.Fields("recommended_item_id"),
	}
}
