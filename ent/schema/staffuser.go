package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StaffUser holds the schema definition for the StaffUser entity.
// A staff account scoped to one business, used to access the management
// dashboard and order workflow.
type StaffUser struct {
	ent.Schema
}

// Fields of the StaffUser.
func (StaffUser) Fields() []ent.Field {
	return []ent.Field{
		field.Int("business_id").
			Comment("Business this account belongs to"),
		field.String("email").
			NotEmpty().
			Comment("Login email"),
		field.String("password_hash").
			NotEmpty().
			Sensitive().
			Comment("Bcrypt password hash"),
		field.String("full_name").
			Optional(),
		field.Enum("role").
			Values("owner", "manager", "waiter", "kitchen").
			Default("waiter").
			Comment("Staff role used for authorization"),
		field.Bool("is_active").
			Default(true),
		field.Time("last_login_at").
			Optional().
			Nillable().
			Comment("Last successful login"),
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

// Edges of the StaffUser.
func (StaffUser) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("business", Business.Type).
			Ref("staff").
			Field("business_id").
			Unique().
			Required().
			Comment("Business this account belongs to"),
	}
}

// Indexes of the StaffUser.
func (StaffUser) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("business_id", "role"),
	}
}
