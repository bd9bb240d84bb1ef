// Code generated by ent, DO NOT EDIT.

package menuitem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the menuitem type in the database.
	Label = "menu_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCategoryID holds the string denoting the category_id field in the database.
	FieldCategoryID = "category_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldImageKey holds the string denoting the image_key field in the database.
	FieldImageKey = "image_key"
	// FieldIsAvailable holds the string denoting the is_available field in the database.
	FieldIsAvailable = "is_available"
	// FieldIsVegetarian holds the string denoting the is_vegetarian field in the database.
	FieldIsVegetarian = "is_vegetarian"
	// FieldIsVegan holds the string denoting the is_vegan field in the database.
	FieldIsVegan = "is_vegan"
	// FieldIsGlutenFree holds the string denoting the is_gluten_free field in the database.
	FieldIsGlutenFree = "is_gluten_free"
	// FieldIsFeatured holds the string denoting the is_featured field in the database.
	FieldIsFeatured = "is_featured"
	// FieldIsDailySpecial holds the string denoting the is_daily_special field in the database.
	FieldIsDailySpecial = "is_daily_special"
	// FieldSpiceLevel holds the string denoting the spice_level field in the database.
	FieldSpiceLevel = "spice_level"
	// FieldAllergens holds the string denoting the allergens field in the database.
	FieldAllergens = "allergens"
	// FieldPrepTimeMinutes holds the string denoting the prep_time_minutes field in the database.
	FieldPrepTimeMinutes = "prep_time_minutes"
	// FieldPopularityScore holds the string denoting the popularity_score field in the database.
	FieldPopularityScore = "popularity_score"
	// FieldCustomizationOptions holds the string denoting the customization_options field in the database.
	FieldCustomizationOptions = "customization_options"
	// FieldNutritionalInfo holds the string denoting the nutritional_info field in the database.
	FieldNutritionalInfo = "nutritional_info"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCategory holds the string denoting the category edge name in mutations.
	EdgeCategory = "category"
	// EdgeOrderItems holds the string denoting the order_items edge name in mutations.
	EdgeOrderItems = "order_items"
	// Table holds the table name of the menuitem in the database.
	Table = "menu_items"
	// CategoryTable is the table that holds the category relation/edge.
	CategoryTable = "menu_items"
	// CategoryInverseTable is the table name for the Category entity.
	// It exists in this package in order to avoid circular dependency with the "category" package.
	CategoryInverseTable = "categories"
	// CategoryColumn is the table column denoting the category relation/edge.
	CategoryColumn = "category_id"
	// OrderItemsTable is the table that holds the order_items relation/edge.
	OrderItemsTable = "order_items"
	// OrderItemsInverseTable is the table name for the OrderItem entity.
	// It exists in this package in order to avoid circular dependency with the "orderitem" package.
	OrderItemsInverseTable = "order_items"
	// OrderItemsColumn is the table column denoting the order_items relation/edge.
	OrderItemsColumn = "menu_item_id"
)

// Columns holds all SQL columns for menuitem fields.
var Columns = []string{
	FieldID,
	FieldCategoryID,
	FieldName,
	FieldDescription,
	FieldPrice,
	FieldImageKey,
	FieldIsAvailable,
	FieldIsVegetarian,
	FieldIsVegan,
	FieldIsGlutenFree,
	FieldIsFeatured,
	FieldIsDailySpecial,
	FieldSpiceLevel,
	FieldAllergens,
	FieldPrepTimeMinutes,
	FieldPopularityScore,
	FieldCustomizationOptions,
	FieldNutritionalInfo,
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
	// PriceValidator is a validator for the "price" field. It is called by the builders before save.
	PriceValidator func(float64) error
	// DefaultIsAvailable holds the default value on creation for the "is_available" field.
	DefaultIsAvailable bool
	// DefaultIsVegetarian holds the default value on creation for the "is_vegetarian" field.
	DefaultIsVegetarian bool
	// DefaultIsVegan holds the default value on creation for the "is_vegan" field.
	DefaultIsVegan bool
	// DefaultIsGlutenFree holds the default value on creation for the "is_gluten_free" field.
	DefaultIsGlutenFree bool
	// DefaultIsFeatured holds the default value on creation for the "is_featured" field.
	DefaultIsFeatured bool
	// DefaultIsDailySpecial holds the default value on creation for the "is_daily_special" field.
	DefaultIsDailySpecial bool
	// DefaultPrepTimeMinutes holds the default value on creation for the "prep_time_minutes" field.
	DefaultPrepTimeMinutes int
	// PrepTimeMinutesValidator is a validator for the "prep_time_minutes" field. It is called by the builders before save.
	PrepTimeMinutesValidator func(int) error
	// DefaultPopularityScore holds the default value on creation for the "popularity_score" field.
	DefaultPopularityScore int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// SpiceLevel defines the type for the "spice_level" enum field.
type SpiceLevel string

// SpiceLevelNone is the default value of the SpiceLevel enum.
const DefaultSpiceLevel = SpiceLevelNone

// SpiceLevel values.
const (
	SpiceLevelNone     SpiceLevel = "none"
	SpiceLevelMild     SpiceLevel = "mild"
	SpiceLevelMedium   SpiceLevel = "medium"
	SpiceLevelHot      SpiceLevel = "hot"
	SpiceLevelExtraHot SpiceLevel = "extra_hot"
)

func (sl SpiceLevel) String() string {
	return string(sl)
}

// SpiceLevelValidator is a validator for the "spice_level" field enum values. It is called by the builders before save.
func SpiceLevelValidator(sl SpiceLevel) error {
	switch sl {
	case SpiceLevelNone, SpiceLevelMild, SpiceLevelMedium, SpiceLevelHot, SpiceLevelExtraHot:
		return nil
	default:
		return fmt.Errorf("menuitem: invalid enum value for spice_level field: %q", sl)
	}
}

// OrderOption defines the ordering options for the MenuItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCategoryID orders the results by the category_id field.
func ByCategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByImageKey orders the results by the image_key field.
func ByImageKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageKey, opts...).ToFunc()
}

// ByIsAvailable orders the results by the is_available field.
func ByIsAvailable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAvailable, opts...).ToFunc()
}

// ByIsVegetarian orders the results by the is_vegetarian field.
func ByIsVegetarian(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsVegetarian, opts...).ToFunc()
}

// ByIsVegan orders the results by the is_vegan field.
func ByIsVegan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsVegan, opts...).ToFunc()
}

// ByIsGlutenFree orders the results by the is_gluten_free field.
func ByIsGlutenFree(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsGlutenFree, opts...).ToFunc()
}

// ByIsFeatured orders the results by the is_featured field.
func ByIsFeatured(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFeatured, opts...).ToFunc()
}

// ByIsDailySpecial orders the results by the is_daily_special field.
func ByIsDailySpecial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDailySpecial, opts...).ToFunc()
}

// BySpiceLevel orders the results by the spice_level field.
func BySpiceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpiceLevel, opts...).ToFunc()
}

// ByAllergens orders the results by the allergens field.
func ByAllergens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllergens, opts...).ToFunc()
}

// ByPrepTimeMinutes orders the results by the prep_time_minutes field.
func ByPrepTimeMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrepTimeMinutes, opts...).ToFunc()
}

// ByPopularityScore orders the results by the popularity_score field.
func ByPopularityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPopularityScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCategoryField orders the results by category field.
func ByCategoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCategoryStep(), sql.OrderByField(field, opts...))
	}
}

// ByOrderItemsCount orders the results by order_items count.
func ByOrderItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOrderItemsStep(), opts...)
	}
}

// ByOrderItems orders the results by order_items terms.
func ByOrderItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOrderItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCategoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CategoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CategoryTable, CategoryColumn),
	)
}
func newOrderItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OrderItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OrderItemsTable, OrderItemsColumn),
	)
}
