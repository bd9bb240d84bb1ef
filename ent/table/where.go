// Code generated by ent, DO NOT EDIT.

package table

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/menuqr/menuqr/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Table {
	return predicate.Table(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Table {
	return predicate.Table(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Table {
	return predicate.Table(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Table {
	return predicate.Table(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Table {
	return predicate.Table(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Table {
	return predicate.Table(sql.FieldLTE(FieldID, id))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v int) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldBusinessID, v))
}

// TableNumber applies equality check predicate on the "table_number" field. It's identical to TableNumberEQ.
func TableNumber(v string) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldTableNumber, v))
}

// Capacity applies equality check predicate on the "capacity" field. It's identical to CapacityEQ.
func Capacity(v int) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldCapacity, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldUpdatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v int) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v int) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...int) predicate.Table {
	return predicate.Table(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...int) predicate.Table {
	return predicate.Table(sql.FieldNotIn(FieldBusinessID, vs...))
}

// TableNumberEQ applies the EQ predicate on the "table_number" field.
func TableNumberEQ(v string) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldTableNumber, v))
}

// TableNumberNEQ applies the NEQ predicate on the "table_number" field.
func TableNumberNEQ(v string) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldTableNumber, v))
}

// TableNumberIn applies the In predicate on the "table_number" field.
func TableNumberIn(vs ...string) predicate.Table {
	return predicate.Table(sql.FieldIn(FieldTableNumber, vs...))
}

// TableNumberNotIn applies the NotIn predicate on the "table_number" field.
func TableNumberNotIn(vs ...string) predicate.Table {
	return predicate.Table(sql.FieldNotIn(FieldTableNumber, vs...))
}

// TableNumberGT applies the GT predicate on the "table_number" field.
func TableNumberGT(v string) predicate.Table {
	return predicate.Table(sql.FieldGT(FieldTableNumber, v))
}

// TableNumberGTE applies the GTE predicate on the "table_number" field.
func TableNumberGTE(v string) predicate.Table {
	return predicate.Table(sql.FieldGTE(FieldTableNumber, v))
}

// TableNumberLT applies the LT predicate on the "table_number" field.
func TableNumberLT(v string) predicate.Table {
	return predicate.Table(sql.FieldLT(FieldTableNumber, v))
}

// TableNumberLTE applies the LTE predicate on the "table_number" field.
func TableNumberLTE(v string) predicate.Table {
	return predicate.Table(sql.FieldLTE(FieldTableNumber, v))
}

// TableNumberContains applies the Contains predicate on the "table_number" field.
func TableNumberContains(v string) predicate.Table {
	return predicate.Table(sql.FieldContains(FieldTableNumber, v))
}

// TableNumberHasPrefix applies the HasPrefix predicate on the "table_number" field.
func TableNumberHasPrefix(v string) predicate.Table {
	return predicate.Table(sql.FieldHasPrefix(FieldTableNumber, v))
}

// TableNumberHasSuffix applies the HasSuffix predicate on the "table_number" field.
func TableNumberHasSuffix(v string) predicate.Table {
	return predicate.Table(sql.FieldHasSuffix(FieldTableNumber, v))
}

// TableNumberEqualFold applies the EqualFold predicate on the "table_number" field.
func TableNumberEqualFold(v string) predicate.Table {
	return predicate.Table(sql.FieldEqualFold(FieldTableNumber, v))
}

// TableNumberContainsFold applies the ContainsFold predicate on the "table_number" field.
func TableNumberContainsFold(v string) predicate.Table {
	return predicate.Table(sql.FieldContainsFold(FieldTableNumber, v))
}

// CapacityEQ applies the EQ predicate on the "capacity" field.
func CapacityEQ(v int) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldCapacity, v))
}

// CapacityNEQ applies the NEQ predicate on the "capacity" field.
func CapacityNEQ(v int) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldCapacity, v))
}

// CapacityIn applies the In predicate on the "capacity" field.
func CapacityIn(vs ...int) predicate.Table {
	return predicate.Table(sql.FieldIn(FieldCapacity, vs...))
}

// CapacityNotIn applies the NotIn predicate on the "capacity" field.
func CapacityNotIn(vs ...int) predicate.Table {
	return predicate.Table(sql.FieldNotIn(FieldCapacity, vs...))
}

// CapacityGT applies the GT predicate on the "capacity" field.
func CapacityGT(v int) predicate.Table {
	return predicate.Table(sql.FieldGT(FieldCapacity, v))
}

// CapacityGTE applies the GTE predicate on the "capacity" field.
func CapacityGTE(v int) predicate.Table {
	return predicate.Table(sql.FieldGTE(FieldCapacity, v))
}

// CapacityLT applies the LT predicate on the "capacity" field.
func CapacityLT(v int) predicate.Table {
	return predicate.Table(sql.FieldLT(FieldCapacity, v))
}

// CapacityLTE applies the LTE predicate on the "capacity" field.
func CapacityLTE(v int) predicate.Table {
	return predicate.Table(sql.FieldLTE(FieldCapacity, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Table {
	return predicate.Table(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Table {
	return predicate.Table(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Table {
	return predicate.Table(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Table {
	return predicate.Table(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Table {
	return predicate.Table(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Table {
	return predicate.Table(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Table {
	return predicate.Table(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBusiness applies the HasEdge predicate on the "business" edge.
func HasBusiness() predicate.Table {
	return predicate.Table(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BusinessTable, BusinessColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBusinessWith applies the HasEdge predicate on the "business" edge with a given conditions (other predicates).
func HasBusinessWith(preds ...predicate.Business) predicate.Table {
	return predicate.Table(func(s *sql.Selector) {
		step := newBusinessStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOrders applies the HasEdge predicate on the "orders" edge.
func HasOrders() predicate.Table {
	return predicate.Table(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OrdersTable, OrdersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrdersWith applies the HasEdge predicate on the "orders" edge with a given conditions (other predicates).
func HasOrdersWith(preds ...predicate.Order) predicate.Table {
	return predicate.Table(func(s *sql.Selector) {
		step := newOrdersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWaiterAlerts applies the HasEdge predicate on the "waiter_alerts" edge.
func HasWaiterAlerts() predicate.Table {
	return predicate.Table(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WaiterAlertsTable, WaiterAlertsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWaiterAlertsWith applies the HasEdge predicate on the "waiter_alerts" edge with a given conditions (other predicates).
func HasWaiterAlertsWith(preds ...predicate.WaiterAlert) predicate.Table {
	return predicate.Table(func(s *sql.Selector) {
		step := newWaiterAlertsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Table) predicate.Table {
	return predicate.Table(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Table) predicate.Table {
	return predicate.Table(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Table) predicate.Table {
	return predicate.Table(sql.NotPredicates(p))
}
