// Code generated by ent, DO NOT EDIT.

package business

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the business type in the database.
	Label = "business"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldBusinessType holds the string denoting the business_type field in the database.
	FieldBusinessType = "business_type"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldCurrencyCode holds the string denoting the currency_code field in the database.
	FieldCurrencyCode = "currency_code"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldLogoKey holds the string denoting the logo_key field in the database.
	FieldLogoKey = "logo_key"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldEnableTableManagement holds the string denoting the enable_table_management field in the database.
	FieldEnableTableManagement = "enable_table_management"
	// FieldEnableWaiterAlerts holds the string denoting the enable_waiter_alerts field in the database.
	FieldEnableWaiterAlerts = "enable_waiter_alerts"
	// FieldEnableRoomCharging holds the string denoting the enable_room_charging field in the database.
	FieldEnableRoomCharging = "enable_room_charging"
	// FieldMenuTheme holds the string denoting the menu_theme field in the database.
	FieldMenuTheme = "menu_theme"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCategories holds the string denoting the categories edge name in mutations.
	EdgeCategories = "categories"
	// EdgeTables holds the string denoting the tables edge name in mutations.
	EdgeTables = "tables"
	// EdgeOrders holds the string denoting the orders edge name in mutations.
	EdgeOrders = "orders"
	// EdgeItemPairs holds the string denoting the item_pairs edge name in mutations.
	EdgeItemPairs = "item_pairs"
	// EdgeRecommendationEvents holds the string denoting the recommendation_events edge name in mutations.
	EdgeRecommendationEvents = "recommendation_events"
	// EdgeStaff holds the string denoting the staff edge name in mutations.
	EdgeStaff = "staff"
	// EdgeWaiterAlerts holds the string denoting the waiter_alerts edge name in mutations.
	EdgeWaiterAlerts = "waiter_alerts"
	// Table holds the table name of the business in the database.
	Table = "businesses"
	// CategoriesTable is the table that holds the categories relation/edge.
	CategoriesTable = "categories"
	// CategoriesInverseTable is the table name for the Category entity.
	// It exists in this package in order to avoid circular dependency with the "category" package.
	CategoriesInverseTable = "categories"
	// CategoriesColumn is the table column denoting the categories relation/edge.
	CategoriesColumn = "business_id"
	// TablesTable is the table that holds the tables relation/edge.
	TablesTable = "tables"
	// TablesInverseTable is the table name for the Table entity.
	// It exists in this package in order to avoid circular dependency with the "table" package.
	TablesInverseTable = "tables"
	// TablesColumn is the table column denoting the tables relation/edge.
	TablesColumn = "business_id"
	// OrdersTable is the table that holds the orders relation/edge.
	OrdersTable = "orders"
	// OrdersInverseTable is the table name for the Order entity.
	// It exists in this package in order to avoid circular dependency with the "order" package.
	OrdersInverseTable = "orders"
	// OrdersColumn is the table column denoting the orders relation/edge.
	OrdersColumn = "business_id"
	// ItemPairsTable is the table that holds the item_pairs relation/edge.
	ItemPairsTable = "item_pair_frequencies"
	// ItemPairsInverseTable is the table name for the ItemPairFrequency entity.
	// It exists in this package in order to avoid circular dependency with the "itempairfrequency" package.
	ItemPairsInverseTable = "item_pair_frequencies"
	// ItemPairsColumn is the table column denoting the item_pairs relation/edge.
	ItemPairsColumn = "business_id"
	// RecommendationEventsTable is the table that holds the recommendation_events relation/edge.
	RecommendationEventsTable = "recommendation_events"
	// RecommendationEventsInverseTable is the table name for the RecommendationEvent entity.
	// It exists in this package in order to avoid circular dependency with the "recommendationevent" package.
	RecommendationEventsInverseTable = "recommendation_events"
	// RecommendationEventsColumn is the table column denoting the recommendation_events relation/edge.
	RecommendationEventsColumn = "business_id"
	// StaffTable is the table that holds the staff relation/edge.
	StaffTable = "staff_users"
	// StaffInverseTable is the table name for the StaffUser entity.
	// It exists in this package in order to avoid circular dependency with the "staffuser" package.
	StaffInverseTable = "staff_users"
	// StaffColumn is the table column denoting the staff relation/edge.
	StaffColumn = "business_id"
	// WaiterAlertsTable is the table that holds the waiter_alerts relation/edge.
	WaiterAlertsTable = "waiter_alerts"
	// WaiterAlertsInverseTable is the table name for the WaiterAlert entity.
	// It exists in this package in order to avoid circular dependency with the "waiteralert" package.
	WaiterAlertsInverseTable = "waiter_alerts"
	// WaiterAlertsColumn is the table column denoting the waiter_alerts relation/edge.
	WaiterAlertsColumn = "business_id"
)

// Columns holds all SQL columns for business fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldBusinessType,
	FieldSlug,
	FieldCurrencyCode,
	FieldTimezone,
	FieldLogoKey,
	FieldIsActive,
	FieldEnableTableManagement,
	FieldEnableWaiterAlerts,
	FieldEnableRoomCharging,
	FieldMenuTheme,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// DefaultCurrencyCode holds the default value on creation for the "currency_code" field.
	DefaultCurrencyCode string
	// CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	CurrencyCodeValidator func(string) error
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultEnableTableManagement holds the default value on creation for the "enable_table_management" field.
	DefaultEnableTableManagement bool
	// DefaultEnableWaiterAlerts holds the default value on creation for the "enable_waiter_alerts" field.
	DefaultEnableWaiterAlerts bool
	// DefaultEnableRoomCharging holds the default value on creation for the "enable_room_charging" field.
	DefaultEnableRoomCharging bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// BusinessType defines the type for the "business_type" enum field.
type BusinessType string

// BusinessTypeRestaurant is the default value of the BusinessType enum.
const DefaultBusinessType = BusinessTypeRestaurant

// BusinessType values.
const (
	BusinessTypeHotel        BusinessType = "hotel"
	BusinessTypeRestaurant   BusinessType = "restaurant"
	BusinessTypeCafe         BusinessType = "cafe"
	BusinessTypeCloudKitchen BusinessType = "cloud_kitchen"
)

func (bt BusinessType) String() string {
	return string(bt)
}

// BusinessTypeValidator is a validator for the "business_type" field enum values. It is called by the builders before save.
func BusinessTypeValidator(bt BusinessType) error {
	switch bt {
	case BusinessTypeHotel, BusinessTypeRestaurant, BusinessTypeCafe, BusinessTypeCloudKitchen:
		return nil
	default:
		return fmt.Errorf("business: invalid enum value for business_type field: %q", bt)
	}
}

// MenuTheme defines the type for the "menu_theme" enum field.
type MenuTheme string

// MenuThemeModern is the default value of the MenuTheme enum.
const DefaultMenuTheme = MenuThemeModern

// MenuTheme values.
const (
	MenuThemeModern MenuTheme = "modern"
	MenuThemeDark   MenuTheme = "dark"
)

func (mt MenuTheme) String() string {
	return string(mt)
}

// MenuThemeValidator is a validator for the "menu_theme" field enum values. It is called by the builders before save.
func MenuThemeValidator(mt MenuTheme) error {
	switch mt {
	case MenuThemeModern, MenuThemeDark:
		return nil
	default:
		return fmt.Errorf("business: invalid enum value for menu_theme field: %q", mt)
	}
}

// OrderOption defines the ordering options for the Business queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByBusinessType orders the results by the business_type field.
func ByBusinessType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessType, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByCurrencyCode orders the results by the currency_code field.
func ByCurrencyCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrencyCode, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByLogoKey orders the results by the logo_key field.
func ByLogoKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogoKey, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByEnableTableManagement orders the results by the enable_table_management field.
func ByEnableTableManagement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnableTableManagement, opts...).ToFunc()
}

// ByEnableWaiterAlerts orders the results by the enable_waiter_alerts field.
func ByEnableWaiterAlerts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnableWaiterAlerts, opts...).ToFunc()
}

// ByEnableRoomCharging orders the results by the enable_room_charging field.
func ByEnableRoomCharging(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnableRoomCharging, opts...).ToFunc()
}

// ByMenuTheme orders the results by the menu_theme field.
func ByMenuTheme(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMenuTheme, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCategoriesCount orders the results by categories count.
func ByCategoriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCategoriesStep(), opts...)
	}
}

// ByCategories orders the results by categories terms.
func ByCategories(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCategoriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTablesCount orders the results by tables count.
func ByTablesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTablesStep(), opts...)
	}
}

// ByTables orders the results by tables terms.
func ByTables(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTablesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOrdersCount orders the results by orders count.
func ByOrdersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOrdersStep(), opts...)
	}
}

// ByOrders orders the results by orders terms.
func ByOrders(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOrdersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByItemPairsCount orders the results by item_pairs count.
func ByItemPairsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemPairsStep(), opts...)
	}
}

// ByItemPairs orders the results by item_pairs terms.
func ByItemPairs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemPairsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRecommendationEventsCount orders the results by recommendation_events count.
func ByRecommendationEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecommendationEventsStep(), opts...)
	}
}

// ByRecommendationEvents orders the results by recommendation_events terms.
func ByRecommendationEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecommendationEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStaffCount orders the results by staff count.
func ByStaffCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStaffStep(), opts...)
	}
}

// ByStaff orders the results by staff terms.
func ByStaff(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStaffStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWaiterAlertsCount orders the results by waiter_alerts count.
func ByWaiterAlertsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWaiterAlertsStep(), opts...)
	}
}

// ByWaiterAlerts orders the results by waiter_alerts terms.
func ByWaiterAlerts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWaiterAlertsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCategoriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CategoriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CategoriesTable, CategoriesColumn),
	)
}
func newTablesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TablesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TablesTable, TablesColumn),
	)
}
func newOrdersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OrdersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OrdersTable, OrdersColumn),
	)
}
func newItemPairsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemPairsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemPairsTable, ItemPairsColumn),
	)
}
func newRecommendationEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecommendationEventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecommendationEventsTable, RecommendationEventsColumn),
	)
}
func newStaffStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StaffInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StaffTable, StaffColumn),
	)
}
func newWaiterAlertsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WaiterAlertsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WaiterAlertsTable, WaiterAlertsColumn),
	)
}
