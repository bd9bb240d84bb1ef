// Code generated by ent, DO NOT EDIT.

package orderitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/menuqr/menuqr/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldID, id))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldOrderID, v))
}

// MenuItemID applies equality check predicate on the "menu_item_id" field. It's identical to MenuItemIDEQ.
func MenuItemID(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldMenuItemID, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldQuantity, v))
}

// PriceAtOrder applies equality check predicate on the "price_at_order" field. It's identical to PriceAtOrderEQ.
func PriceAtOrder(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldPriceAtOrder, v))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldOrderID, vs...))
}

// MenuItemIDEQ applies the EQ predicate on the "menu_item_id" field.
func MenuItemIDEQ(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldMenuItemID, v))
}

// MenuItemIDNEQ applies the NEQ predicate on the "menu_item_id" field.
func MenuItemIDNEQ(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldMenuItemID, v))
}

// MenuItemIDIn applies the In predicate on the "menu_item_id" field.
func MenuItemIDIn(vs ...int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldMenuItemID, vs...))
}

// MenuItemIDNotIn applies the NotIn predicate on the "menu_item_id" field.
func MenuItemIDNotIn(vs ...int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldMenuItemID, vs...))
}

// MenuItemIDIsNil applies the IsNil predicate on the "menu_item_id" field.
func MenuItemIDIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldMenuItemID))
}

// MenuItemIDNotNil applies the NotNil predicate on the "menu_item_id" field.
func MenuItemIDNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldMenuItemID))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldQuantity, v))
}

// PriceAtOrderEQ applies the EQ predicate on the "price_at_order" field.
func PriceAtOrderEQ(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldPriceAtOrder, v))
}

// PriceAtOrderNEQ applies the NEQ predicate on the "price_at_order" field.
func PriceAtOrderNEQ(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldPriceAtOrder, v))
}

// PriceAtOrderIn applies the In predicate on the "price_at_order" field.
func PriceAtOrderIn(vs ...float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldPriceAtOrder, vs...))
}

// PriceAtOrderNotIn applies the NotIn predicate on the "price_at_order" field.
func PriceAtOrderNotIn(vs ...float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldPriceAtOrder, vs...))
}

// PriceAtOrderGT applies the GT predicate on the "price_at_order" field.
func PriceAtOrderGT(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldPriceAtOrder, v))
}

// PriceAtOrderGTE applies the GTE predicate on the "price_at_order" field.
func PriceAtOrderGTE(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldPriceAtOrder, v))
}

// PriceAtOrderLT applies the LT predicate on the "price_at_order" field.
func PriceAtOrderLT(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldPriceAtOrder, v))
}

// PriceAtOrderLTE applies the LTE predicate on the "price_at_order" field.
func PriceAtOrderLTE(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldPriceAtOrder, v))
}

// HasOrder applies the HasEdge predicate on the "order" edge.
func HasOrder() predicate.OrderItem {
	return predicate.OrderItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrderTable, OrderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrderWith applies the HasEdge predicate on the "order" edge with a given conditions (other predicates).
func HasOrderWith(preds ...predicate.Order) predicate.OrderItem {
	return predicate.OrderItem(func(s *sql.Selector) {
		step := newOrderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMenuItem applies the HasEdge predicate on the "menu_item" edge.
func HasMenuItem() predicate.OrderItem {
	return predicate.OrderItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MenuItemTable, MenuItemColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMenuItemWith applies the HasEdge predicate on the "menu_item" edge with a given conditions (other predicates).
func HasMenuItemWith(preds ...predicate.MenuItem) predicate.OrderItem {
	return predicate.OrderItem(func(s *sql.Selector) {
		step := newMenuItemStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrderItem) predicate.OrderItem {
	return predicate.OrderItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrderItem) predicate.OrderItem {
	return predicate.OrderItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrderItem) predicate.OrderItem {
	return predicate.OrderItem(sql.NotPredicates(p))
}
