// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Business is the predicate function for business builders.
type Business func(*sql.Selector)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// ItemPairFrequency is the predicate function for itempairfrequency builders.
type ItemPairFrequency func(*sql.Selector)

// MenuItem is the predicate function for menuitem builders.
type MenuItem func(*sql.Selector)

// Order is the predicate function for order builders.
type Order func(*sql.Selector)

// OrderItem is the predicate function for orderitem builders.
type OrderItem func(*sql.Selector)

// RecommendationEvent is the predicate function for recommendationevent builders.
type RecommendationEvent func(*sql.Selector)

// StaffUser is the predicate function for staffuser builders.
type StaffUser func(*sql.Selector)

// Table is the predicate function for table builders.
type Table func(*sql.Selector)

// WaiterAlert is the predicate function for waiteralert builders.
type WaiterAlert func(*sql.Selector)
