package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MenuItem holds the schema definition for the MenuItem entity.
// An individual dish or drink on a business's menu. The recommendation
// engine only reads its id, availability and display fields.
type MenuItem struct {
	ent.Schema
}

// Fields of the MenuItem.
func (MenuItem) Fields() []ent.Field {
	return []ent.Field{
		field.Int("category_id").
			Comment("Category this item belongs to"),
		field.String("name").
			NotEmpty().
			Comment("Item name"),
		field.String("description").
			Optional().
			Comment("Item description"),
		field.Float("price").
			Min(0).
			Comment("Current price"),
		field.String("image_key").
			Optional().
			Comment("Object storage key of the item image"),
		field.Bool("is_available").
			Default(true).
			Comment("Toggle for out-of-stock items"),
		field.Bool("is_vegetarian").
			Default(false),
		field.Bool("is_vegan").
			Default(false),
		field.Bool("is_gluten_free").
			Default(false),
		field.Bool("is_featured").
			Default(false).
			Comment("Chef's recommendation / popular item"),
		field.Bool("is_daily_special").
			Default(false).
			Comment("Today's special offer"),
		field.Enum("spice_level").
			Values("none", "mild", "medium", "hot", "extra_hot").
			Default("none").
			Comment("Spiciness level of the dish"),
		field.String("allergens").
			Optional().
			Comment("Common allergens (e.g. 'Nuts, Dairy, Shellfish')"),
		field.Int("prep_time_minutes").
			Default(15).
			Min(0).
			Comment("Estimated preparation time in minutes"),
		field.Int("popularity_score").
			Default(0).
			Comment("Incremented every time the item is ordered"),
		field.JSON("customization_options", map[string]interface{}{}).
			Optional().
			Comment("Add-ons, sizes, extras"),
		field.JSON("nutritional_info", map[string]interface{}{}).
			Optional().
			Comment("Calories, protein, carbs, etc."),
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

// Edges of the MenuItem.
func (MenuItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", Category.Type).
			Ref("menu_items").
			Field("category_id").
			Unique().
			Required().
			Comment("Category this item belongs to"),
		edge.To("order_items", OrderItem.Type).
			Comment("Order lines referencing this item"),
	}
}

// Indexes of the MenuItem.
func (MenuItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_id", "name").Unique(),
		index.Fields("is_available"),
		index.Fields("popularity_score"),
	}
}
