// Code generated by ent, DO NOT EDIT.

package recommendationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/menuqr/menuqr/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLTE(FieldID, id))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldBusinessID, v))
}

// SourceItemID applies equality check predicate on the "source_item_id" field. It's identical to SourceItemIDEQ.
func SourceItemID(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldSourceItemID, v))
}

// RecommendedItemID applies equality check predicate on the "recommended_item_id" field. It's identical to RecommendedItemIDEQ.
func RecommendedItemID(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldRecommendedItemID, v))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v uuid.UUID) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldOrderID, v))
}

// Revenue applies equality check predicate on the "revenue" field. It's identical to RevenueEQ.
func Revenue(v float64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldRevenue, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotIn(FieldBusinessID, vs...))
}

// SourceItemIDEQ applies the EQ predicate on the "source_item_id" field.
func SourceItemIDEQ(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldSourceItemID, v))
}

// SourceItemIDNEQ applies the NEQ predicate on the "source_item_id" field.
func SourceItemIDNEQ(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNEQ(FieldSourceItemID, v))
}

// SourceItemIDIn applies the In predicate on the "source_item_id" field.
func SourceItemIDIn(vs ...int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIn(FieldSourceItemID, vs...))
}

// SourceItemIDNotIn applies the NotIn predicate on the "source_item_id" field.
func SourceItemIDNotIn(vs ...int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotIn(FieldSourceItemID, vs...))
}

// SourceItemIDGT applies the GT predicate on the "source_item_id" field.
func SourceItemIDGT(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGT(FieldSourceItemID, v))
}

// SourceItemIDGTE applies the GTE predicate on the "source_item_id" field.
func SourceItemIDGTE(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGTE(FieldSourceItemID, v))
}

// SourceItemIDLT applies the LT predicate on the "source_item_id" field.
func SourceItemIDLT(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLT(FieldSourceItemID, v))
}

// SourceItemIDLTE applies the LTE predicate on the "source_item_id" field.
func SourceItemIDLTE(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLTE(FieldSourceItemID, v))
}

// SourceItemIDIsNil applies the IsNil predicate on the "source_item_id" field.
func SourceItemIDIsNil() predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIsNull(FieldSourceItemID))
}

// SourceItemIDNotNil applies the NotNil predicate on the "source_item_id" field.
func SourceItemIDNotNil() predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotNull(FieldSourceItemID))
}

// RecommendedItemIDEQ applies the EQ predicate on the "recommended_item_id" field.
func RecommendedItemIDEQ(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldRecommendedItemID, v))
}

// RecommendedItemIDNEQ applies the NEQ predicate on the "recommended_item_id" field.
func RecommendedItemIDNEQ(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNEQ(FieldRecommendedItemID, v))
}

// RecommendedItemIDIn applies the In predicate on the "recommended_item_id" field.
func RecommendedItemIDIn(vs ...int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIn(FieldRecommendedItemID, vs...))
}

// RecommendedItemIDNotIn applies the NotIn predicate on the "recommended_item_id" field.
func RecommendedItemIDNotIn(vs ...int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotIn(FieldRecommendedItemID, vs...))
}

// RecommendedItemIDGT applies the GT predicate on the "recommended_item_id" field.
func RecommendedItemIDGT(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGT(FieldRecommendedItemID, v))
}

// RecommendedItemIDGTE applies the GTE predicate on the "recommended_item_id" field.
func RecommendedItemIDGTE(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGTE(FieldRecommendedItemID, v))
}

// RecommendedItemIDLT applies the LT predicate on the "recommended_item_id" field.
func RecommendedItemIDLT(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLT(FieldRecommendedItemID, v))
}

// RecommendedItemIDLTE applies the LTE predicate on the "recommended_item_id" field.
func RecommendedItemIDLTE(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLTE(FieldRecommendedItemID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v uuid.UUID) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v uuid.UUID) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...uuid.UUID) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...uuid.UUID) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotIn(FieldOrderID, vs...))
}

// OrderIDGT applies the GT predicate on the "order_id" field.
func OrderIDGT(v uuid.UUID) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGT(FieldOrderID, v))
}

// OrderIDGTE applies the GTE predicate on the "order_id" field.
func OrderIDGTE(v uuid.UUID) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGTE(FieldOrderID, v))
}

// OrderIDLT applies the LT predicate on the "order_id" field.
func OrderIDLT(v uuid.UUID) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLT(FieldOrderID, v))
}

// OrderIDLTE applies the LTE predicate on the "order_id" field.
func OrderIDLTE(v uuid.UUID) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLTE(FieldOrderID, v))
}

// OrderIDIsNil applies the IsNil predicate on the "order_id" field.
func OrderIDIsNil() predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIsNull(FieldOrderID))
}

// OrderIDNotNil applies the NotNil predicate on the "order_id" field.
func OrderIDNotNil() predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotNull(FieldOrderID))
}

// RevenueEQ applies the EQ predicate on the "revenue" field.
func RevenueEQ(v float64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldRevenue, v))
}

// RevenueNEQ applies the NEQ predicate on the "revenue" field.
func RevenueNEQ(v float64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNEQ(FieldRevenue, v))
}

// RevenueIn applies the In predicate on the "revenue" field.
func RevenueIn(vs ...float64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIn(FieldRevenue, vs...))
}

// RevenueNotIn applies the NotIn predicate on the "revenue" field.
func RevenueNotIn(vs ...float64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotIn(FieldRevenue, vs...))
}

// RevenueGT applies the GT predicate on the "revenue" field.
func RevenueGT(v float64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGT(FieldRevenue, v))
}

// RevenueGTE applies the GTE predicate on the "revenue" field.
func RevenueGTE(v float64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGTE(FieldRevenue, v))
}

// RevenueLT applies the LT predicate on the "revenue" field.
func RevenueLT(v float64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLT(FieldRevenue, v))
}

// RevenueLTE applies the LTE predicate on the "revenue" field.
func RevenueLTE(v float64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLTE(FieldRevenue, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBusiness applies the HasEdge predicate on the "business" edge.
func HasBusiness() predicate.RecommendationEvent {
	return predicate.RecommendationEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BusinessTable, BusinessColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBusinessWith applies the HasEdge predicate on the "business" edge with a given conditions (other predicates).
func HasBusinessWith(preds ...predicate.Business) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(func(s *sql.Selector) {
		step := newBusinessStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecommendationEvent) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecommendationEvent) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecommendationEvent) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.NotPredicates(p))
}
