// Code generated by ent, DO NOT EDIT.

package order

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/menuqr/menuqr/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldID, id))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v int) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldBusinessID, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldLocation, v))
}

// TableID applies equality check predicate on the "table_id" field. It's identical to TableIDEQ.
func TableID(v int) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTableID, v))
}

// Subtotal applies equality check predicate on the "subtotal" field. It's identical to SubtotalEQ.
func Subtotal(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldSubtotal, v))
}

// TaxAmount applies equality check predicate on the "tax_amount" field. It's identical to TaxAmountEQ.
func TaxAmount(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTaxAmount, v))
}

// TipAmount applies equality check predicate on the "tip_amount" field. It's identical to TipAmountEQ.
func TipAmount(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTipAmount, v))
}

// TotalPrice applies equality check predicate on the "total_price" field. It's identical to TotalPriceEQ.
func TotalPrice(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTotalPrice, v))
}

// SpecialRequests applies equality check predicate on the "special_requests" field. It's identical to SpecialRequestsEQ.
func SpecialRequests(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldSpecialRequests, v))
}

// StatusChangedAt applies equality check predicate on the "status_changed_at" field. It's identical to StatusChangedAtEQ.
func StatusChangedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldStatusChangedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v int) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v int) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...int) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...int) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldBusinessID, vs...))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldLocation, v))
}

// TableIDEQ applies the EQ predicate on the "table_id" field.
func TableIDEQ(v int) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTableID, v))
}

// TableIDNEQ applies the NEQ predicate on the "table_id" field.
func TableIDNEQ(v int) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldTableID, v))
}

// TableIDIn applies the In predicate on the "table_id" field.
func TableIDIn(vs ...int) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldTableID, vs...))
}

// TableIDNotIn applies the NotIn predicate on the "table_id" field.
func TableIDNotIn(vs ...int) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldTableID, vs...))
}

// TableIDIsNil applies the IsNil predicate on the "table_id" field.
func TableIDIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldTableID))
}

// TableIDNotNil applies the NotNil predicate on the "table_id" field.
func TableIDNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldTableID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldStatus, vs...))
}

// PaymentMethodEQ applies the EQ predicate on the "payment_method" field.
func PaymentMethodEQ(v PaymentMethod) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentMethodNEQ applies the NEQ predicate on the "payment_method" field.
func PaymentMethodNEQ(v PaymentMethod) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldPaymentMethod, v))
}

// PaymentMethodIn applies the In predicate on the "payment_method" field.
func PaymentMethodIn(vs ...PaymentMethod) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldPaymentMethod, vs...))
}

// PaymentMethodNotIn applies the NotIn predicate on the "payment_method" field.
func PaymentMethodNotIn(vs ...PaymentMethod) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldPaymentMethod, vs...))
}

// PaymentStatusEQ applies the EQ predicate on the "payment_status" field.
func PaymentStatusEQ(v PaymentStatus) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPaymentStatus, v))
}

// PaymentStatusNEQ applies the NEQ predicate on the "payment_status" field.
func PaymentStatusNEQ(v PaymentStatus) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldPaymentStatus, v))
}

// PaymentStatusIn applies the In predicate on the "payment_status" field.
func PaymentStatusIn(vs ...PaymentStatus) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldPaymentStatus, vs...))
}

// PaymentStatusNotIn applies the NotIn predicate on the "payment_status" field.
func PaymentStatusNotIn(vs ...PaymentStatus) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldPaymentStatus, vs...))
}

// SubtotalEQ applies the EQ predicate on the "subtotal" field.
func SubtotalEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldSubtotal, v))
}

// SubtotalNEQ applies the NEQ predicate on the "subtotal" field.
func SubtotalNEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldSubtotal, v))
}

// SubtotalIn applies the In predicate on the "subtotal" field.
func SubtotalIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldSubtotal, vs...))
}

// SubtotalNotIn applies the NotIn predicate on the "subtotal" field.
func SubtotalNotIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldSubtotal, vs...))
}

// SubtotalGT applies the GT predicate on the "subtotal" field.
func SubtotalGT(v float64) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldSubtotal, v))
}

// SubtotalGTE applies the GTE predicate on the "subtotal" field.
func SubtotalGTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldSubtotal, v))
}

// SubtotalLT applies the LT predicate on the "subtotal" field.
func SubtotalLT(v float64) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldSubtotal, v))
}

// SubtotalLTE applies the LTE predicate on the "subtotal" field.
func SubtotalLTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldSubtotal, v))
}

// TaxAmountEQ applies the EQ predicate on the "tax_amount" field.
func TaxAmountEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTaxAmount, v))
}

// TaxAmountNEQ applies the NEQ predicate on the "tax_amount" field.
func TaxAmountNEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldTaxAmount, v))
}

// TaxAmountIn applies the In predicate on the "tax_amount" field.
func TaxAmountIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldTaxAmount, vs...))
}

// TaxAmountNotIn applies the NotIn predicate on the "tax_amount" field.
func TaxAmountNotIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldTaxAmount, vs...))
}

// TaxAmountGT applies the GT predicate on the "tax_amount" field.
func TaxAmountGT(v float64) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldTaxAmount, v))
}

// TaxAmountGTE applies the GTE predicate on the "tax_amount" field.
func TaxAmountGTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldTaxAmount, v))
}

// TaxAmountLT applies the LT predicate on the "tax_amount" field.
func TaxAmountLT(v float64) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldTaxAmount, v))
}

// TaxAmountLTE applies the LTE predicate on the "tax_amount" field.
func TaxAmountLTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldTaxAmount, v))
}

// TipAmountEQ applies the EQ predicate on the "tip_amount" field.
func TipAmountEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTipAmount, v))
}

// TipAmountNEQ applies the NEQ predicate on the "tip_amount" field.
func TipAmountNEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldTipAmount, v))
}

// TipAmountIn applies the In predicate on the "tip_amount" field.
func TipAmountIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldTipAmount, vs...))
}

// TipAmountNotIn applies the NotIn predicate on the "tip_amount" field.
func TipAmountNotIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldTipAmount, vs...))
}

// TipAmountGT applies the GT predicate on the "tip_amount" field.
func TipAmountGT(v float64) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldTipAmount, v))
}

// TipAmountGTE applies the GTE predicate on the "tip_amount" field.
func TipAmountGTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldTipAmount, v))
}

// TipAmountLT applies the LT predicate on the "tip_amount" field.
func TipAmountLT(v float64) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldTipAmount, v))
}

// TipAmountLTE applies the LTE predicate on the "tip_amount" field.
func TipAmountLTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldTipAmount, v))
}

// TotalPriceEQ applies the EQ predicate on the "total_price" field.
func TotalPriceEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTotalPrice, v))
}

// TotalPriceNEQ applies the NEQ predicate on the "total_price" field.
func TotalPriceNEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldTotalPrice, v))
}

// TotalPriceIn applies the In predicate on the "total_price" field.
func TotalPriceIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldTotalPrice, vs...))
}

// TotalPriceNotIn applies the NotIn predicate on the "total_price" field.
func TotalPriceNotIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldTotalPrice, vs...))
}

// TotalPriceGT applies the GT predicate on the "total_price" field.
func TotalPriceGT(v float64) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldTotalPrice, v))
}

// TotalPriceGTE applies the GTE predicate on the "total_price" field.
func TotalPriceGTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldTotalPrice, v))
}

// TotalPriceLT applies the LT predicate on the "total_price" field.
func TotalPriceLT(v float64) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldTotalPrice, v))
}

// TotalPriceLTE applies the LTE predicate on the "total_price" field.
func TotalPriceLTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldTotalPrice, v))
}

// SpecialRequestsEQ applies the EQ predicate on the "special_requests" field.
func SpecialRequestsEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldSpecialRequests, v))
}

// SpecialRequestsNEQ applies the NEQ predicate on the "special_requests" field.
func SpecialRequestsNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldSpecialRequests, v))
}

// SpecialRequestsIn applies the In predicate on the "special_requests" field.
func SpecialRequestsIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldSpecialRequests, vs...))
}

// SpecialRequestsNotIn applies the NotIn predicate on the "special_requests" field.
func SpecialRequestsNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldSpecialRequests, vs...))
}

// SpecialRequestsGT applies the GT predicate on the "special_requests" field.
func SpecialRequestsGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldSpecialRequests, v))
}

// SpecialRequestsGTE applies the GTE predicate on the "special_requests" field.
func SpecialRequestsGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldSpecialRequests, v))
}

// SpecialRequestsLT applies the LT predicate on the "special_requests" field.
func SpecialRequestsLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldSpecialRequests, v))
}

// SpecialRequestsLTE applies the LTE predicate on the "special_requests" field.
func SpecialRequestsLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldSpecialRequests, v))
}

// SpecialRequestsContains applies the Contains predicate on the "special_requests" field.
func SpecialRequestsContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldSpecialRequests, v))
}

// SpecialRequestsHasPrefix applies the HasPrefix predicate on the "special_requests" field.
func SpecialRequestsHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldSpecialRequests, v))
}

// SpecialRequestsHasSuffix applies the HasSuffix predicate on the "special_requests" field.
func SpecialRequestsHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldSpecialRequests, v))
}

// SpecialRequestsIsNil applies the IsNil predicate on the "special_requests" field.
func SpecialRequestsIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldSpecialRequests))
}

// SpecialRequestsNotNil applies the NotNil predicate on the "special_requests" field.
func SpecialRequestsNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldSpecialRequests))
}

// SpecialRequestsEqualFold applies the EqualFold predicate on the "special_requests" field.
func SpecialRequestsEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldSpecialRequests, v))
}

// SpecialRequestsContainsFold applies the ContainsFold predicate on the "special_requests" field.
func SpecialRequestsContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldSpecialRequests, v))
}

// ItemsSnapshotIsNil applies the IsNil predicate on the "items_snapshot" field.
func ItemsSnapshotIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldItemsSnapshot))
}

// ItemsSnapshotNotNil applies the NotNil predicate on the "items_snapshot" field.
func ItemsSnapshotNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldItemsSnapshot))
}

// StatusChangedAtEQ applies the EQ predicate on the "status_changed_at" field.
func StatusChangedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldStatusChangedAt, v))
}

// StatusChangedAtNEQ applies the NEQ predicate on the "status_changed_at" field.
func StatusChangedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldStatusChangedAt, v))
}

// StatusChangedAtIn applies the In predicate on the "status_changed_at" field.
func StatusChangedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldStatusChangedAt, vs...))
}

// StatusChangedAtNotIn applies the NotIn predicate on the "status_changed_at" field.
func StatusChangedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldStatusChangedAt, vs...))
}

// StatusChangedAtGT applies the GT predicate on the "status_changed_at" field.
func StatusChangedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldStatusChangedAt, v))
}

// StatusChangedAtGTE applies the GTE predicate on the "status_changed_at" field.
func StatusChangedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldStatusChangedAt, v))
}

// StatusChangedAtLT applies the LT predicate on the "status_changed_at" field.
func StatusChangedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldStatusChangedAt, v))
}

// StatusChangedAtLTE applies the LTE predicate on the "status_changed_at" field.
func StatusChangedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldStatusChangedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBusiness applies the HasEdge predicate on the "business" edge.
func HasBusiness() predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BusinessTable, BusinessColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBusinessWith applies the HasEdge predicate on the "business" edge with a given conditions (other predicates).
func HasBusinessWith(preds ...predicate.Business) predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := newBusinessStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTable applies the HasEdge predicate on the "table" edge.
func HasTable() predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TableTable, TableColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTableWith applies the HasEdge predicate on the "table" edge with a given conditions (other predicates).
func HasTableWith(preds ...predicate.Table) predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := newTableStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.OrderItem) predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Order) predicate.Order {
	return predicate.Order(sql.NotPredicates(p))
}
