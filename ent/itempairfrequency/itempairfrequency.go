// Code generated by ent, DO NOT EDIT.

package itempairfrequency

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the itempairfrequency type in the database.
	Label = "item_pair_frequency"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBusinessID holds the string denoting the business_id field in the database.
	FieldBusinessID = "business_id"
	// FieldItemAID holds the string denoting the item_a_id field in the database.
	FieldItemAID = "item_a_id"
	// FieldItemBID holds the string denoting the item_b_id field in the database.
	FieldItemBID = "item_b_id"
	// FieldTimesTogether holds the string denoting the times_together field in the database.
	FieldTimesTogether = "times_together"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldTimesRecommended holds the string denoting the times_recommended field in the database.
	FieldTimesRecommended = "times_recommended"
	// FieldTimesConverted holds the string denoting the times_converted field in the database.
	FieldTimesConverted = "times_converted"
	// FieldRevenueGenerated holds the string denoting the revenue_generated field in the database.
	FieldRevenueGenerated = "revenue_generated"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBusiness holds the string denoting the business edge name in mutations.
	EdgeBusiness = "business"
	// Table holds the table name of the itempairfrequency in the database.
	Table = "item_pair_frequencies"
	// BusinessTable is the table that holds the business relation/edge.
	BusinessTable = "item_pair_frequencies"
	// BusinessInverseTable is the table name for the Business entity.
	// It exists in this package in order to avoid circular dependency with the "business" package.
	BusinessInverseTable = "businesses"
	// BusinessColumn is the table column denoting the business relation/edge.
	BusinessColumn = "business_id"
)

// Columns holds all SQL columns for itempairfrequency fields.
var Columns = []string{
	FieldID,
	FieldBusinessID,
	FieldItemAID,
	FieldItemBID,
	FieldTimesTogether,
	FieldConfidence,
	FieldTimesRecommended,
	FieldTimesConverted,
	FieldRevenueGenerated,
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
	// DefaultTimesTogether holds the default value on creation for the "times_together" field.
	DefaultTimesTogether int
	// TimesTogetherValidator is a validator for the "times_together" field. It is called by the builders before save.
	TimesTogetherValidator func(int) error
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultTimesRecommended holds the default value on creation for the "times_recommended" field.
	DefaultTimesRecommended int
	// DefaultTimesConverted holds the default value on creation for the "times_converted" field.
	DefaultTimesConverted int
	// DefaultRevenueGenerated holds the default value on creation for the "revenue_generated" field.
	DefaultRevenueGenerated float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ItemPairFrequency queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBusinessID orders the results by the business_id field.
func ByBusinessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessID, opts...).ToFunc()
}

// ByItemAID orders the results by the item_a_id field.
func ByItemAID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemAID, opts...).ToFunc()
}

// ByItemBID orders the results by the item_b_id field.
func ByItemBID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemBID, opts...).ToFunc()
}

// ByTimesTogether orders the results by the times_together field.
func ByTimesTogether(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesTogether, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByTimesRecommended orders the results by the times_recommended field.
func ByTimesRecommended(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesRecommended, opts...).ToFunc()
}

// ByTimesConverted orders the results by the times_converted field.
func ByTimesConverted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesConverted, opts...).ToFunc()
}

// ByRevenueGenerated orders the results by the revenue_generated field.
func ByRevenueGenerated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevenueGenerated, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBusinessField orders the results by business field.
func ByBusinessField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBusinessStep(), sql.OrderByField(field, opts...))
	}
}
func newBusinessStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BusinessInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BusinessTable, BusinessColumn),
	)
}
