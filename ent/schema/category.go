package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Category holds the schema definition for the Category entity.
// A menu section within one business (e.g. Starters, Main Courses, Drinks).
type Category struct {
	ent.Schema
}

// Fields of the Category.
func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.Int("business_id").
			Comment("Owning business"),
		field.String("name").
			NotEmpty().
			MaxLen(100).
			Comment("Category name (e.g. 'Starters', 'Desserts')"),
		field.Int("sort_order").
			Default(0).
			Min(0).
			Comment("Position of this category on the menu"),
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

// Edges of the Category.
func (Category) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("business", Business.Type).
			Ref("categories").
			Field("business_id").
			Unique().
			Required().
			Comment("Business this category belongs to"),
		edge.To("menu_items", MenuItem.Type).
			Comment("Items in this category"),
	}
}

// Indexes of the Category.
func (Category) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "name").Unique(),
		index.Fields("business_id", "sort_order"),
	}
}
