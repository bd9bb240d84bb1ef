// Code generated by ent, DO NOT EDIT.

package itempairfrequency

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/menuqr/menuqr/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLTE(FieldID, id))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldBusinessID, v))
}

// ItemAID applies equality check predicate on the "item_a_id" field. It's identical to ItemAIDEQ.
func ItemAID(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldItemAID, v))
}

// ItemBID applies equality check predicate on the "item_b_id" field. It's identical to ItemBIDEQ.
func ItemBID(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldItemBID, v))
}

// TimesTogether applies equality check predicate on the "times_together" field. It's identical to TimesTogetherEQ.
func TimesTogether(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldTimesTogether, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldConfidence, v))
}

// TimesRecommended applies equality check predicate on the "times_recommended" field. It's identical to TimesRecommendedEQ.
func TimesRecommended(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldTimesRecommended, v))
}

// TimesConverted applies equality check predicate on the "times_converted" field. It's identical to TimesConvertedEQ.
func TimesConverted(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldTimesConverted, v))
}

// RevenueGenerated applies equality check predicate on the "revenue_generated" field. It's identical to RevenueGeneratedEQ.
func RevenueGenerated(v float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldRevenueGenerated, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldUpdatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNotIn(FieldBusinessID, vs...))
}

// ItemAIDEQ applies the EQ predicate on the "item_a_id" field.
func ItemAIDEQ(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldItemAID, v))
}

// ItemAIDNEQ applies the NEQ predicate on the "item_a_id" field.
func ItemAIDNEQ(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNEQ(FieldItemAID, v))
}

// ItemAIDIn applies the In predicate on the "item_a_id" field.
func ItemAIDIn(vs ...int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldIn(FieldItemAID, vs...))
}

// ItemAIDNotIn applies the NotIn predicate on the "item_a_id" field.
func ItemAIDNotIn(vs ...int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNotIn(FieldItemAID, vs...))
}

// ItemAIDGT applies the GT predicate on the "item_a_id" field.
func ItemAIDGT(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGT(FieldItemAID, v))
}

// ItemAIDGTE applies the GTE predicate on the "item_a_id" field.
func ItemAIDGTE(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGTE(FieldItemAID, v))
}

// ItemAIDLT applies the LT predicate on the "item_a_id" field.
func ItemAIDLT(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLT(FieldItemAID, v))
}

// ItemAIDLTE applies the LTE predicate on the "item_a_id" field.
func ItemAIDLTE(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLTE(FieldItemAID, v))
}

// ItemBIDEQ applies the EQ predicate on the "item_b_id" field.
func ItemBIDEQ(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldItemBID, v))
}

// ItemBIDNEQ applies the NEQ predicate on the "item_b_id" field.
func ItemBIDNEQ(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNEQ(FieldItemBID, v))
}

// ItemBIDIn applies the In predicate on the "item_b_id" field.
func ItemBIDIn(vs ...int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldIn(FieldItemBID, vs...))
}

// ItemBIDNotIn applies the NotIn predicate on the "item_b_id" field.
func ItemBIDNotIn(vs ...int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNotIn(FieldItemBID, vs...))
}

// ItemBIDGT applies the GT predicate on the "item_b_id" field.
func ItemBIDGT(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGT(FieldItemBID, v))
}

// ItemBIDGTE applies the GTE predicate on the "item_b_id" field.
func ItemBIDGTE(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGTE(FieldItemBID, v))
}

// ItemBIDLT applies the LT predicate on the "item_b_id" field.
func ItemBIDLT(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLT(FieldItemBID, v))
}

// ItemBIDLTE applies the LTE predicate on the "item_b_id" field.
func ItemBIDLTE(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLTE(FieldItemBID, v))
}

// TimesTogetherEQ applies the EQ predicate on the "times_together" field.
func TimesTogetherEQ(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldTimesTogether, v))
}

// TimesTogetherNEQ applies the NEQ predicate on the "times_together" field.
func TimesTogetherNEQ(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNEQ(FieldTimesTogether, v))
}

// TimesTogetherIn applies the In predicate on the "times_together" field.
func TimesTogetherIn(vs ...int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldIn(FieldTimesTogether, vs...))
}

// TimesTogetherNotIn applies the NotIn predicate on the "times_together" field.
func TimesTogetherNotIn(vs ...int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNotIn(FieldTimesTogether, vs...))
}

// TimesTogetherGT applies the GT predicate on the "times_together" field.
func TimesTogetherGT(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGT(FieldTimesTogether, v))
}

// TimesTogetherGTE applies the GTE predicate on the "times_together" field.
func TimesTogetherGTE(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGTE(FieldTimesTogether, v))
}

// TimesTogetherLT applies the LT predicate on the "times_together" field.
func TimesTogetherLT(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLT(FieldTimesTogether, v))
}

// TimesTogetherLTE applies the LTE predicate on the "times_together" field.
func TimesTogetherLTE(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLTE(FieldTimesTogether, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLTE(FieldConfidence, v))
}

// TimesRecommendedEQ applies the EQ predicate on the "times_recommended" field.
func TimesRecommendedEQ(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldTimesRecommended, v))
}

// TimesRecommendedNEQ applies the NEQ predicate on the "times_recommended" field.
func TimesRecommendedNEQ(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNEQ(FieldTimesRecommended, v))
}

// TimesRecommendedIn applies the In predicate on the "times_recommended" field.
func TimesRecommendedIn(vs ...int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldIn(FieldTimesRecommended, vs...))
}

// TimesRecommendedNotIn applies the NotIn predicate on the "times_recommended" field.
func TimesRecommendedNotIn(vs ...int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNotIn(FieldTimesRecommended, vs...))
}

// TimesRecommendedGT applies the GT predicate on the "times_recommended" field.
func TimesRecommendedGT(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGT(FieldTimesRecommended, v))
}

// TimesRecommendedGTE applies the GTE predicate on the "times_recommended" field.
func TimesRecommendedGTE(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGTE(FieldTimesRecommended, v))
}

// TimesRecommendedLT applies the LT predicate on the "times_recommended" field.
func TimesRecommendedLT(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLT(FieldTimesRecommended, v))
}

// TimesRecommendedLTE applies the LTE predicate on the "times_recommended" field.
func TimesRecommendedLTE(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLTE(FieldTimesRecommended, v))
}

// TimesConvertedEQ applies the EQ predicate on the "times_converted" field.
func TimesConvertedEQ(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldTimesConverted, v))
}

// TimesConvertedNEQ applies the NEQ predicate on the "times_converted" field.
func TimesConvertedNEQ(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNEQ(FieldTimesConverted, v))
}

// TimesConvertedIn applies the In predicate on the "times_converted" field.
func TimesConvertedIn(vs ...int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldIn(FieldTimesConverted, vs...))
}

// TimesConvertedNotIn applies the NotIn predicate on the "times_converted" field.
func TimesConvertedNotIn(vs ...int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNotIn(FieldTimesConverted, vs...))
}

// TimesConvertedGT applies the GT predicate on the "times_converted" field.
func TimesConvertedGT(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGT(FieldTimesConverted, v))
}

// TimesConvertedGTE applies the GTE predicate on the "times_converted" field.
func TimesConvertedGTE(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGTE(FieldTimesConverted, v))
}

// TimesConvertedLT applies the LT predicate on the "times_converted" field.
func TimesConvertedLT(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLT(FieldTimesConverted, v))
}

// TimesConvertedLTE applies the LTE predicate on the "times_converted" field.
func TimesConvertedLTE(v int) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLTE(FieldTimesConverted, v))
}

// RevenueGeneratedEQ applies the EQ predicate on the "revenue_generated" field.
func RevenueGeneratedEQ(v float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldRevenueGenerated, v))
}

// RevenueGeneratedNEQ applies the NEQ predicate on the "revenue_generated" field.
func RevenueGeneratedNEQ(v float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNEQ(FieldRevenueGenerated, v))
}

// RevenueGeneratedIn applies the In predicate on the "revenue_generated" field.
func RevenueGeneratedIn(vs ...float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldIn(FieldRevenueGenerated, vs...))
}

// RevenueGeneratedNotIn applies the NotIn predicate on the "revenue_generated" field.
func RevenueGeneratedNotIn(vs ...float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNotIn(FieldRevenueGenerated, vs...))
}

// RevenueGeneratedGT applies the GT predicate on the "revenue_generated" field.
func RevenueGeneratedGT(v float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGT(FieldRevenueGenerated, v))
}

// RevenueGeneratedGTE applies the GTE predicate on the "revenue_generated" field.
func RevenueGeneratedGTE(v float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGTE(FieldRevenueGenerated, v))
}

// RevenueGeneratedLT applies the LT predicate on the "revenue_generated" field.
func RevenueGeneratedLT(v float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLT(FieldRevenueGenerated, v))
}

// RevenueGeneratedLTE applies the LTE predicate on the "revenue_generated" field.
func RevenueGeneratedLTE(v float64) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLTE(FieldRevenueGenerated, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBusiness applies the HasEdge predicate on the "business" edge.
func HasBusiness() predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BusinessTable, BusinessColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBusinessWith applies the HasEdge predicate on the "business" edge with a given conditions (other predicates).
func HasBusinessWith(preds ...predicate.Business) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(func(s *sql.Selector) {
		step := newBusinessStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ItemPairFrequency) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ItemPairFrequency) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ItemPairFrequency) predicate.ItemPairFrequency {
	return predicate.ItemPairFrequency(sql.NotPredicates(p))
}
