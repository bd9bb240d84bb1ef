// Code generated by ent, DO NOT EDIT.

package menuitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/menuqr/menuqr/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldID, id))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldCategoryID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldDescription, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldPrice, v))
}

// ImageKey applies equality check predicate on the "image_key" field. It's identical to ImageKeyEQ.
func ImageKey(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldImageKey, v))
}

// IsAvailable applies equality check predicate on the "is_available" field. It's identical to IsAvailableEQ.
func IsAvailable(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIsAvailable, v))
}

// IsVegetarian applies equality check predicate on the "is_vegetarian" field. It's identical to IsVegetarianEQ.
func IsVegetarian(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIsVegetarian, v))
}

// IsVegan applies equality check predicate on the "is_vegan" field. It's identical to IsVeganEQ.
func IsVegan(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIsVegan, v))
}

// IsGlutenFree applies equality check predicate on the "is_gluten_free" field. It's identical to IsGlutenFreeEQ.
func IsGlutenFree(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIsGlutenFree, v))
}

// IsFeatured applies equality check predicate on the "is_featured" field. It's identical to IsFeaturedEQ.
func IsFeatured(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIsFeatured, v))
}

// IsDailySpecial applies equality check predicate on the "is_daily_special" field. It's identical to IsDailySpecialEQ.
func IsDailySpecial(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIsDailySpecial, v))
}

// Allergens applies equality check predicate on the "allergens" field. It's identical to AllergensEQ.
func Allergens(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldAllergens, v))
}

// PrepTimeMinutes applies equality check predicate on the "prep_time_minutes" field. It's identical to PrepTimeMinutesEQ.
func PrepTimeMinutes(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldPrepTimeMinutes, v))
}

// PopularityScore applies equality check predicate on the "popularity_score" field. It's identical to PopularityScoreEQ.
func PopularityScore(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldPopularityScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldCategoryID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldDescription, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldPrice, v))
}

// ImageKeyEQ applies the EQ predicate on the "image_key" field.
func ImageKeyEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldImageKey, v))
}

// ImageKeyNEQ applies the NEQ predicate on the "image_key" field.
func ImageKeyNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldImageKey, v))
}

// ImageKeyIn applies the In predicate on the "image_key" field.
func ImageKeyIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldImageKey, vs...))
}

// ImageKeyNotIn applies the NotIn predicate on the "image_key" field.
func ImageKeyNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldImageKey, vs...))
}

// ImageKeyGT applies the GT predicate on the "image_key" field.
func ImageKeyGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldImageKey, v))
}

// ImageKeyGTE applies the GTE predicate on the "image_key" field.
func ImageKeyGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldImageKey, v))
}

// ImageKeyLT applies the LT predicate on the "image_key" field.
func ImageKeyLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldImageKey, v))
}

// ImageKeyLTE applies the LTE predicate on the "image_key" field.
func ImageKeyLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldImageKey, v))
}

// ImageKeyContains applies the Contains predicate on the "image_key" field.
func ImageKeyContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldImageKey, v))
}

// ImageKeyHasPrefix applies the HasPrefix predicate on the "image_key" field.
func ImageKeyHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldImageKey, v))
}

// ImageKeyHasSuffix applies the HasSuffix predicate on the "image_key" field.
func ImageKeyHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldImageKey, v))
}

// ImageKeyIsNil applies the IsNil predicate on the "image_key" field.
func ImageKeyIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldImageKey))
}

// ImageKeyNotNil applies the NotNil predicate on the "image_key" field.
func ImageKeyNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldImageKey))
}

// ImageKeyEqualFold applies the EqualFold predicate on the "image_key" field.
func ImageKeyEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldImageKey, v))
}

// ImageKeyContainsFold applies the ContainsFold predicate on the "image_key" field.
func ImageKeyContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldImageKey, v))
}

// IsAvailableEQ applies the EQ predicate on the "is_available" field.
func IsAvailableEQ(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIsAvailable, v))
}

// IsAvailableNEQ applies the NEQ predicate on the "is_available" field.
func IsAvailableNEQ(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldIsAvailable, v))
}

// IsVegetarianEQ applies the EQ predicate on the "is_vegetarian" field.
func IsVegetarianEQ(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIsVegetarian, v))
}

// IsVegetarianNEQ applies the NEQ predicate on the "is_vegetarian" field.
func IsVegetarianNEQ(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldIsVegetarian, v))
}

// IsVeganEQ applies the EQ predicate on the "is_vegan" field.
func IsVeganEQ(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIsVegan, v))
}

// IsVeganNEQ applies the NEQ predicate on the "is_vegan" field.
func IsVeganNEQ(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldIsVegan, v))
}

// IsGlutenFreeEQ applies the EQ predicate on the "is_gluten_free" field.
func IsGlutenFreeEQ(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIsGlutenFree, v))
}

// IsGlutenFreeNEQ applies the NEQ predicate on the "is_gluten_free" field.
func IsGlutenFreeNEQ(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldIsGlutenFree, v))
}

// IsFeaturedEQ applies the EQ predicate on the "is_featured" field.
func IsFeaturedEQ(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIsFeatured, v))
}

// IsFeaturedNEQ applies the NEQ predicate on the "is_featured" field.
func IsFeaturedNEQ(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldIsFeatured, v))
}

// IsDailySpecialEQ applies the EQ predicate on the "is_daily_special" field.
func IsDailySpecialEQ(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldIsDailySpecial, v))
}

// IsDailySpecialNEQ applies the NEQ predicate on the "is_daily_special" field.
func IsDailySpecialNEQ(v bool) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldIsDailySpecial, v))
}

// SpiceLevelEQ applies the EQ predicate on the "spice_level" field.
func SpiceLevelEQ(v SpiceLevel) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldSpiceLevel, v))
}

// SpiceLevelNEQ applies the NEQ predicate on the "spice_level" field.
func SpiceLevelNEQ(v SpiceLevel) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldSpiceLevel, v))
}

// SpiceLevelIn applies the In predicate on the "spice_level" field.
func SpiceLevelIn(vs ...SpiceLevel) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldSpiceLevel, vs...))
}

// SpiceLevelNotIn applies the NotIn predicate on the "spice_level" field.
func SpiceLevelNotIn(vs ...SpiceLevel) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldSpiceLevel, vs...))
}

// AllergensEQ applies the EQ predicate on the "allergens" field.
func AllergensEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldAllergens, v))
}

// AllergensNEQ applies the NEQ predicate on the "allergens" field.
func AllergensNEQ(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldAllergens, v))
}

// AllergensIn applies the In predicate on the "allergens" field.
func AllergensIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldAllergens, vs...))
}

// AllergensNotIn applies the NotIn predicate on the "allergens" field.
func AllergensNotIn(vs ...string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldAllergens, vs...))
}

// AllergensGT applies the GT predicate on the "allergens" field.
func AllergensGT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldAllergens, v))
}

// AllergensGTE applies the GTE predicate on the "allergens" field.
func AllergensGTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldAllergens, v))
}

// AllergensLT applies the LT predicate on the "allergens" field.
func AllergensLT(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldAllergens, v))
}

// AllergensLTE applies the LTE predicate on the "allergens" field.
func AllergensLTE(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldAllergens, v))
}

// AllergensContains applies the Contains predicate on the "allergens" field.
func AllergensContains(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContains(FieldAllergens, v))
}

// AllergensHasPrefix applies the HasPrefix predicate on the "allergens" field.
func AllergensHasPrefix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasPrefix(FieldAllergens, v))
}

// AllergensHasSuffix applies the HasSuffix predicate on the "allergens" field.
func AllergensHasSuffix(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldHasSuffix(FieldAllergens, v))
}

// AllergensIsNil applies the IsNil predicate on the "allergens" field.
func AllergensIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldAllergens))
}

// AllergensNotNil applies the NotNil predicate on the "allergens" field.
func AllergensNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldAllergens))
}

// AllergensEqualFold applies the EqualFold predicate on the "allergens" field.
func AllergensEqualFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEqualFold(FieldAllergens, v))
}

// AllergensContainsFold applies the ContainsFold predicate on the "allergens" field.
func AllergensContainsFold(v string) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldContainsFold(FieldAllergens, v))
}

// PrepTimeMinutesEQ applies the EQ predicate on the "prep_time_minutes" field.
func PrepTimeMinutesEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldPrepTimeMinutes, v))
}

// PrepTimeMinutesNEQ applies the NEQ predicate on the "prep_time_minutes" field.
func PrepTimeMinutesNEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldPrepTimeMinutes, v))
}

// PrepTimeMinutesIn applies the In predicate on the "prep_time_minutes" field.
func PrepTimeMinutesIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldPrepTimeMinutes, vs...))
}

// PrepTimeMinutesNotIn applies the NotIn predicate on the "prep_time_minutes" field.
func PrepTimeMinutesNotIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldPrepTimeMinutes, vs...))
}

// PrepTimeMinutesGT applies the GT predicate on the "prep_time_minutes" field.
func PrepTimeMinutesGT(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldPrepTimeMinutes, v))
}

// PrepTimeMinutesGTE applies the GTE predicate on the "prep_time_minutes" field.
func PrepTimeMinutesGTE(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldPrepTimeMinutes, v))
}

// PrepTimeMinutesLT applies the LT predicate on the "prep_time_minutes" field.
func PrepTimeMinutesLT(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldPrepTimeMinutes, v))
}

// PrepTimeMinutesLTE applies the LTE predicate on the "prep_time_minutes" field.
func PrepTimeMinutesLTE(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldPrepTimeMinutes, v))
}

// PopularityScoreEQ applies the EQ predicate on the "popularity_score" field.
func PopularityScoreEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldPopularityScore, v))
}

// PopularityScoreNEQ applies the NEQ predicate on the "popularity_score" field.
func PopularityScoreNEQ(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldPopularityScore, v))
}

// PopularityScoreIn applies the In predicate on the "popularity_score" field.
func PopularityScoreIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldPopularityScore, vs...))
}

// PopularityScoreNotIn applies the NotIn predicate on the "popularity_score" field.
func PopularityScoreNotIn(vs ...int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldPopularityScore, vs...))
}

// PopularityScoreGT applies the GT predicate on the "popularity_score" field.
func PopularityScoreGT(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldPopularityScore, v))
}

// PopularityScoreGTE applies the GTE predicate on the "popularity_score" field.
func PopularityScoreGTE(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldPopularityScore, v))
}

// PopularityScoreLT applies the LT predicate on the "popularity_score" field.
func PopularityScoreLT(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldPopularityScore, v))
}

// PopularityScoreLTE applies the LTE predicate on the "popularity_score" field.
func PopularityScoreLTE(v int) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldPopularityScore, v))
}

// CustomizationOptionsIsNil applies the IsNil predicate on the "customization_options" field.
func CustomizationOptionsIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldCustomizationOptions))
}

// CustomizationOptionsNotNil applies the NotNil predicate on the "customization_options" field.
func CustomizationOptionsNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldCustomizationOptions))
}

// NutritionalInfoIsNil applies the IsNil predicate on the "nutritional_info" field.
func NutritionalInfoIsNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIsNull(FieldNutritionalInfo))
}

// NutritionalInfoNotNil applies the NotNil predicate on the "nutritional_info" field.
func NutritionalInfoNotNil() predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotNull(FieldNutritionalInfo))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MenuItem {
	return predicate.MenuItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCategory applies the HasEdge predicate on the "category" edge.
func HasCategory() predicate.MenuItem {
	return predicate.MenuItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CategoryTable, CategoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoryWith applies the HasEdge predicate on the "category" edge with a given conditions (other predicates).
func HasCategoryWith(preds ...predicate.Category) predicate.MenuItem {
	return predicate.MenuItem(func(s *sql.Selector) {
		step := newCategoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOrderItems applies the HasEdge predicate on the "order_items" edge.
func HasOrderItems() predicate.MenuItem {
	return predicate.MenuItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OrderItemsTable, OrderItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrderItemsWith applies the HasEdge predicate on the "order_items" edge with a given conditions (other predicates).
func HasOrderItemsWith(preds ...predicate.OrderItem) predicate.MenuItem {
	return predicate.MenuItem(func(s *sql.Selector) {
		step := newOrderItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MenuItem) predicate.MenuItem {
	return predicate.MenuItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MenuItem) predicate.MenuItem {
	return predicate.MenuItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MenuItem) predicate.MenuItem {
	return predicate.MenuItem(sql.NotPredicates(p))
}
