// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BusinessesColumns holds the columns for the "businesses" table.
	BusinessesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "business_type", Type: field.TypeEnum, Enums: []string{"hotel", "restaurant", "cafe", "cloud_kitchen"}, Default: "restaurant"},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "currency_code", Type: field.TypeString, Size: 3, Default: "USD"},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "logo_key", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "enable_table_management", Type: field.TypeBool, Default: false},
		{Name: "enable_waiter_alerts", Type: field.TypeBool, Default: false},
		{Name: "enable_room_charging", Type: field.TypeBool, Default: false},
		{Name: "menu_theme", Type: field.TypeEnum, Enums: []string{"modern", "dark"}, Default: "modern"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BusinessesTable holds the schema information for the "businesses" table.
	BusinessesTable = &schema.Table{
		Name:       "businesses",
		Columns:    BusinessesColumns,
		PrimaryKey: []*schema.Column{BusinessesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "business_slug",
				Unique:  false,
				Columns: []*schema.Column{BusinessesColumns[3]},
			},
			{
				Name:    "business_business_type",
				Unique:  false,
				Columns: []*schema.Column{BusinessesColumns[2]},
			},
			{
				Name:    "business_is_active",
				Unique:  false,
				Columns: []*schema.Column{BusinessesColumns[7]},
			},
		},
	}
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "business_id", Type: field.TypeInt},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "categories_businesses_categories",
				Columns:    []*schema.Column{CategoriesColumns[5]},
				RefColumns: []*schema.Column{BusinessesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "category_business_id_name",
				Unique:  true,
				Columns: []*schema.Column{CategoriesColumns[5], CategoriesColumns[1]},
			},
			{
				Name:    "category_business_id_sort_order",
				Unique:  false,
				Columns: []*schema.Column{CategoriesColumns[5], CategoriesColumns[2]},
			},
		},
	}
	// ItemPairFrequenciesColumns holds the columns for the "item_pair_frequencies" table.
	ItemPairFrequenciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_a_id", Type: field.TypeInt},
		{Name: "item_b_id", Type: field.TypeInt},
		{Name: "times_together", Type: field.TypeInt, Default: 1},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "times_recommended", Type: field.TypeInt, Default: 0},
		{Name: "times_converted", Type: field.TypeInt, Default: 0},
		{Name: "revenue_generated", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "business_id", Type: field.TypeInt},
	}
	// ItemPairFrequenciesTable holds the schema information for the "item_pair_frequencies" table.
	ItemPairFrequenciesTable = &schema.Table{
		Name:       "item_pair_frequencies",
		Columns:    ItemPairFrequenciesColumns,
		PrimaryKey: []*schema.Column{ItemPairFrequenciesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "item_pair_frequencies_businesses_item_pairs",
				Columns:    []*schema.Column{ItemPairFrequenciesColumns[10]},
				RefColumns: []*schema.Column{BusinessesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "itempairfrequency_business_id_item_a_id_item_b_id",
				Unique:  true,
				Columns: []*schema.Column{ItemPairFrequenciesColumns[10], ItemPairFrequenciesColumns[1], ItemPairFrequenciesColumns[2]},
			},
			{
				Name:    "itempairfrequency_business_id_confidence",
				Unique:  false,
				Columns: []*schema.Column{ItemPairFrequenciesColumns[10], ItemPairFrequenciesColumns[4]},
			},
			{
				Name:    "itempairfrequency_item_a_id",
				Unique:  false,
				Columns: []*schema.Column{ItemPairFrequenciesColumns[1]},
			},
			{
				Name:    "itempairfrequency_item_b_id",
				Unique:  false,
				Columns: []*schema.Column{ItemPairFrequenciesColumns[2]},
			},
		},
	}
	// MenuItemsColumns holds the columns for the "menu_items" table.
	MenuItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "image_key", Type: field.TypeString, Nullable: true},
		{Name: "is_available", Type: field.TypeBool, Default: true},
		{Name: "is_vegetarian", Type: field.TypeBool, Default: false},
		{Name: "is_vegan", Type: field.TypeBool, Default: false},
		{Name: "is_gluten_free", Type: field.TypeBool, Default: false},
		{Name: "is_featured", Type: field.TypeBool, Default: false},
		{Name: "is_daily_special", Type: field.TypeBool, Default: false},
		{Name: "spice_level", Type: field.TypeEnum, Enums: []string{"none", "mild", "medium", "hot", "extra_hot"}, Default: "none"},
		{Name: "allergens", Type: field.TypeString, Nullable: true},
		{Name: "prep_time_minutes", Type: field.TypeInt, Default: 15},
		{Name: "popularity_score", Type: field.TypeInt, Default: 0},
		{Name: "customization_options", Type: field.TypeJSON, Nullable: true},
		{Name: "nutritional_info", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "category_id", Type: field.TypeInt},
	}
	// MenuItemsTable holds the schema information for the "menu_items" table.
	MenuItemsTable = &schema.Table{
		Name:       "menu_items",
		Columns:    MenuItemsColumns,
		PrimaryKey: []*schema.Column{MenuItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "menu_items_categories_menu_items",
				Columns:    []*schema.Column{MenuItemsColumns[19]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "menuitem_category_id_name",
				Unique:  true,
				Columns: []*schema.Column{MenuItemsColumns[19], MenuItemsColumns[1]},
			},
			{
				Name:    "menuitem_is_available",
				Unique:  false,
				Columns: []*schema.Column{MenuItemsColumns[5]},
			},
			{
				Name:    "menuitem_popularity_score",
				Unique:  false,
				Columns: []*schema.Column{MenuItemsColumns[14]},
			},
		},
	}
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "location", Type: field.TypeString, Size: 50},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "accepted", "preparing", "ready", "delivered", "completed", "cancelled"}, Default: "pending"},
		{Name: "payment_method", Type: field.TypeEnum, Enums: []string{"cash", "card", "room_charge", "online"}, Default: "cash"},
		{Name: "payment_status", Type: field.TypeEnum, Enums: []string{"pending", "paid", "partial", "refunded"}, Default: "pending"},
		{Name: "subtotal", Type: field.TypeFloat64, Default: 0},
		{Name: "tax_amount", Type: field.TypeFloat64, Default: 0},
		{Name: "tip_amount", Type: field.TypeFloat64, Default: 0},
		{Name: "total_price", Type: field.TypeFloat64, Default: 0},
		{Name: "special_requests", Type: field.TypeString, Nullable: true},
		{Name: "items_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "status_changed_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "business_id", Type: field.TypeInt},
		{Name: "table_id", Type: field.TypeInt, Nullable: true},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "orders_businesses_orders",
				Columns:    []*schema.Column{OrdersColumns[14]},
				RefColumns: []*schema.Column{BusinessesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "orders_tables_orders",
				Columns:    []*schema.Column{OrdersColumns[15]},
				RefColumns: []*schema.Column{TablesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "order_business_id_status",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[14], OrdersColumns[2]},
			},
			{
				Name:    "order_business_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[14], OrdersColumns[12]},
			},
			{
				Name:    "order_status",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[2]},
			},
		},
	}
	// OrderItemsColumns holds the columns for the "order_items" table.
	OrderItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "quantity", Type: field.TypeInt, Default: 1},
		{Name: "price_at_order", Type: field.TypeFloat64},
		{Name: "menu_item_id", Type: field.TypeInt, Nullable: true},
		{Name: "order_id", Type: field.TypeUUID},
	}
	// OrderItemsTable holds the schema information for the "order_items" table.
	OrderItemsTable = &schema.Table{
		Name:       "order_items",
		Columns:    OrderItemsColumns,
		PrimaryKey: []*schema.Column{OrderItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "order_items_menu_items_order_items",
				Columns:    []*schema.Column{OrderItemsColumns[3]},
				RefColumns: []*schema.Column{MenuItemsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "order_items_orders_items",
				Columns:    []*schema.Column{OrderItemsColumns[4]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "orderitem_order_id_menu_item_id",
				Unique:  true,
				Columns: []*schema.Column{OrderItemsColumns[4], OrderItemsColumns[3]},
			},
			{
				Name:    "orderitem_menu_item_id",
				Unique:  false,
				Columns: []*schema.Column{OrderItemsColumns[3]},
			},
		},
	}
	// RecommendationEventsColumns holds the columns for the "recommendation_events" table.
	RecommendationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_item_id", Type: field.TypeInt, Nullable: true},
		{Name: "recommended_item_id", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"impression", "conversion"}},
		{Name: "order_id", Type: field.TypeUUID, Nullable: true},
		{Name: "revenue", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "business_id", Type: field.TypeInt},
	}
	// RecommendationEventsTable holds the schema information for the "recommendation_events" table.
	RecommendationEventsTable = &schema.Table{
		Name:       "recommendation_events",
		Columns:    RecommendationEventsColumns,
		PrimaryKey: []*schema.Column{RecommendationEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recommendation_events_businesses_recommendation_events",
				Columns:    []*schema.Column{RecommendationEventsColumns[7]},
				RefColumns: []*schema.Column{BusinessesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "recommendationevent_business_id_event_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{RecommendationEventsColumns[7], RecommendationEventsColumns[3], RecommendationEventsColumns[6]},
			},
			{
				Name:    "recommendationevent_recommended_item_id",
				Unique:  false,
				Columns: []*schema.Column{RecommendationEventsColumns[2]},
			},
		},
	}
	// StaffUsersColumns holds the columns for the "staff_users" table.
	StaffUsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "full_name", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"owner", "manager", "waiter", "kitchen"}, Default: "waiter"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "business_id", Type: field.TypeInt},
	}
	// StaffUsersTable holds the schema information for the "staff_users" table.
	StaffUsersTable = &schema.Table{
		Name:       "staff_users",
		Columns:    StaffUsersColumns,
		PrimaryKey: []*schema.Column{StaffUsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "staff_users_businesses_staff",
				Columns:    []*schema.Column{StaffUsersColumns[9]},
				RefColumns: []*schema.Column{BusinessesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "staffuser_email",
				Unique:  true,
				Columns: []*schema.Column{StaffUsersColumns[1]},
			},
			{
				Name:    "staffuser_business_id_role",
				Unique:  false,
				Columns: []*schema.Column{StaffUsersColumns[9], StaffUsersColumns[4]},
			},
		},
	}
	// TablesColumns holds the columns for the "tables" table.
	TablesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "table_number", Type: field.TypeString, Size: 50},
		{Name: "capacity", Type: field.TypeInt, Default: 4},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"available", "occupied", "reserved", "cleaning"}, Default: "available"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "business_id", Type: field.TypeInt},
	}
	// TablesTable holds the schema information for the "tables" table.
	TablesTable = &schema.Table{
		Name:       "tables",
		Columns:    TablesColumns,
		PrimaryKey: []*schema.Column{TablesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tables_businesses_tables",
				Columns:    []*schema.Column{TablesColumns[6]},
				RefColumns: []*schema.Column{BusinessesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "table_business_id_table_number",
				Unique:  true,
				Columns: []*schema.Column{TablesColumns[6], TablesColumns[1]},
			},
			{
				Name:    "table_business_id_status",
				Unique:  false,
				Columns: []*schema.Column{TablesColumns[6], TablesColumns[3]},
			},
		},
	}
	// WaiterAlertsColumns holds the columns for the "waiter_alerts" table.
	WaiterAlertsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "alert_type", Type: field.TypeEnum, Enums: []string{"assistance", "bill_request", "complaint", "refill"}, Default: "assistance"},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "acknowledged", "resolved"}, Default: "pending"},
		{Name: "acknowledged_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "business_id", Type: field.TypeInt},
		{Name: "table_id", Type: field.TypeInt},
	}
	// WaiterAlertsTable holds the schema information for the "waiter_alerts" table.
	WaiterAlertsTable = &schema.Table{
		Name:       "waiter_alerts",
		Columns:    WaiterAlertsColumns,
		PrimaryKey: []*schema.Column{WaiterAlertsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "waiter_alerts_businesses_waiter_alerts",
				Columns:    []*schema.Column{WaiterAlertsColumns[7]},
				RefColumns: []*schema.Column{BusinessesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "waiter_alerts_tables_waiter_alerts",
				Columns:    []*schema.Column{WaiterAlertsColumns[8]},
				RefColumns: []*schema.Column{TablesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "waiteralert_business_id_status",
				Unique:  false,
				Columns: []*schema.Column{WaiterAlertsColumns[7], WaiterAlertsColumns[3]},
			},
			{
				Name:    "waiteralert_business_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{WaiterAlertsColumns[7], WaiterAlertsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BusinessesTable,
		CategoriesTable,
		ItemPairFrequenciesTable,
		MenuItemsTable,
		OrdersTable,
		OrderItemsTable,
		RecommendationEventsTable,
		StaffUsersTable,
		TablesTable,
		WaiterAlertsTable,
	}
)

func init() {
	CategoriesTable.ForeignKeys[0].RefTable = BusinessesTable
	ItemPairFrequenciesTable.ForeignKeys[0].RefTable = BusinessesTable
	MenuItemsTable.ForeignKeys[0].RefTable = CategoriesTable
	OrdersTable.ForeignKeys[0].RefTable = BusinessesTable
	OrdersTable.ForeignKeys[1].RefTable = TablesTable
	OrderItemsTable.ForeignKeys[0].RefTable = MenuItemsTable
	OrderItemsTable.ForeignKeys[1].RefTable = OrdersTable
	RecommendationEventsTable.ForeignKeys[0].RefTable = BusinessesTable
	StaffUsersTable.ForeignKeys[0].RefTable = BusinessesTable
	TablesTable.ForeignKeys[0].RefTable = BusinessesTable
	WaiterAlertsTable.ForeignKeys[0].RefTable = BusinessesTable
	WaiterAlertsTable.ForeignKeys[1].RefTable = TablesTable
}
