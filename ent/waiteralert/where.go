// Code generated by ent, DO NOT EDIT.

package waiteralert

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/menuqr/menuqr/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldLTE(FieldID, id))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEQ(FieldBusinessID, v))
}

// TableID applies equality check predicate on the "table_id" field. It's identical to TableIDEQ.
func TableID(v int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEQ(FieldTableID, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEQ(FieldMessage, v))
}

// AcknowledgedAt applies equality check predicate on the "acknowledged_at" field. It's identical to AcknowledgedAtEQ.
func AcknowledgedAt(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEQ(FieldAcknowledgedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEQ(FieldResolvedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEQ(FieldCreatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNotIn(FieldBusinessID, vs...))
}

// TableIDEQ applies the EQ predicate on the "table_id" field.
func TableIDEQ(v int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEQ(FieldTableID, v))
}

// TableIDNEQ applies the NEQ predicate on the "table_id" field.
func TableIDNEQ(v int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNEQ(FieldTableID, v))
}

// TableIDIn applies the In predicate on the "table_id" field.
func TableIDIn(vs ...int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldIn(FieldTableID, vs...))
}

// TableIDNotIn applies the NotIn predicate on the "table_id" field.
func TableIDNotIn(vs ...int) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNotIn(FieldTableID, vs...))
}

// AlertTypeEQ applies the EQ predicate on the "alert_type" field.
func AlertTypeEQ(v AlertType) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEQ(FieldAlertType, v))
}

// AlertTypeNEQ applies the NEQ predicate on the "alert_type" field.
func AlertTypeNEQ(v AlertType) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNEQ(FieldAlertType, v))
}

// AlertTypeIn applies the In predicate on the "alert_type" field.
func AlertTypeIn(vs ...AlertType) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldIn(FieldAlertType, vs...))
}

// AlertTypeNotIn applies the NotIn predicate on the "alert_type" field.
func AlertTypeNotIn(vs ...AlertType) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNotIn(FieldAlertType, vs...))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldContainsFold(FieldMessage, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNotIn(FieldStatus, vs...))
}

// AcknowledgedAtEQ applies the EQ predicate on the "acknowledged_at" field.
func AcknowledgedAtEQ(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEQ(FieldAcknowledgedAt, v))
}

// AcknowledgedAtNEQ applies the NEQ predicate on the "acknowledged_at" field.
func AcknowledgedAtNEQ(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNEQ(FieldAcknowledgedAt, v))
}

// AcknowledgedAtIn applies the In predicate on the "acknowledged_at" field.
func AcknowledgedAtIn(vs ...time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldIn(FieldAcknowledgedAt, vs...))
}

// AcknowledgedAtNotIn applies the NotIn predicate on the "acknowledged_at" field.
func AcknowledgedAtNotIn(vs ...time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNotIn(FieldAcknowledgedAt, vs...))
}

// AcknowledgedAtGT applies the GT predicate on the "acknowledged_at" field.
func AcknowledgedAtGT(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldGT(FieldAcknowledgedAt, v))
}

// AcknowledgedAtGTE applies the GTE predicate on the "acknowledged_at" field.
func AcknowledgedAtGTE(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldGTE(FieldAcknowledgedAt, v))
}

// AcknowledgedAtLT applies the LT predicate on the "acknowledged_at" field.
func AcknowledgedAtLT(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldLT(FieldAcknowledgedAt, v))
}

// AcknowledgedAtLTE applies the LTE predicate on the "acknowledged_at" field.
func AcknowledgedAtLTE(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldLTE(FieldAcknowledgedAt, v))
}

// AcknowledgedAtIsNil applies the IsNil predicate on the "acknowledged_at" field.
func AcknowledgedAtIsNil() predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldIsNull(FieldAcknowledgedAt))
}

// AcknowledgedAtNotNil applies the NotNil predicate on the "acknowledged_at" field.
func AcknowledgedAtNotNil() predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNotNull(FieldAcknowledgedAt))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNotNull(FieldResolvedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBusiness applies the HasEdge predicate on the "business" edge.
func HasBusiness() predicate.WaiterAlert {
	return predicate.WaiterAlert(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BusinessTable, BusinessColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBusinessWith applies the HasEdge predicate on the "business" edge with a given conditions (other predicates).
func HasBusinessWith(preds ...predicate.Business) predicate.WaiterAlert {
	return predicate.WaiterAlert(func(s *sql.Selector) {
		step := newBusinessStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTable applies the HasEdge predicate on the "table" edge.
func HasTable() predicate.WaiterAlert {
	return predicate.WaiterAlert(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TableTable, TableColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTableWith applies the HasEdge predicate on the "table" edge with a given conditions (other predicates).
func HasTableWith(preds ...predicate.Table) predicate.WaiterAlert {
	return predicate.WaiterAlert(func(s *sql.Selector) {
		step := newTableStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WaiterAlert) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WaiterAlert) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WaiterAlert) predicate.WaiterAlert {
	return predicate.WaiterAlert(sql.NotPredicates(p))
}
