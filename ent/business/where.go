// Code generated by ent, DO NOT EDIT.

package business

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/menuqr/menuqr/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldName, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldSlug, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCurrencyCode, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldTimezone, v))
}

// LogoKey applies equality check predicate on the "logo_key" field. It's identical to LogoKeyEQ.
func LogoKey(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldLogoKey, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldIsActive, v))
}

// EnableTableManagement applies equality check predicate on the "enable_table_management" field. It's identical to EnableTableManagementEQ.
func EnableTableManagement(v bool) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldEnableTableManagement, v))
}

// EnableWaiterAlerts applies equality check predicate on the "enable_waiter_alerts" field. It's identical to EnableWaiterAlertsEQ.
func EnableWaiterAlerts(v bool) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldEnableWaiterAlerts, v))
}

// EnableRoomCharging applies equality check predicate on the "enable_room_charging" field. It's identical to EnableRoomChargingEQ.
func EnableRoomCharging(v bool) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldEnableRoomCharging, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldName, v))
}

// BusinessTypeEQ applies the EQ predicate on the "business_type" field.
func BusinessTypeEQ(v BusinessType) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldBusinessType, v))
}

// BusinessTypeNEQ applies the NEQ predicate on the "business_type" field.
func BusinessTypeNEQ(v BusinessType) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldBusinessType, v))
}

// BusinessTypeIn applies the In predicate on the "business_type" field.
func BusinessTypeIn(vs ...BusinessType) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldBusinessType, vs...))
}

// BusinessTypeNotIn applies the NotIn predicate on the "business_type" field.
func BusinessTypeNotIn(vs ...BusinessType) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldBusinessType, vs...))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldSlug, v))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldTimezone, v))
}

// LogoKeyEQ applies the EQ predicate on the "logo_key" field.
func LogoKeyEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldLogoKey, v))
}

// LogoKeyNEQ applies the NEQ predicate on the "logo_key" field.
func LogoKeyNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldLogoKey, v))
}

// LogoKeyIn applies the In predicate on the "logo_key" field.
func LogoKeyIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldLogoKey, vs...))
}

// LogoKeyNotIn applies the NotIn predicate on the "logo_key" field.
func LogoKeyNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldLogoKey, vs...))
}

// LogoKeyGT applies the GT predicate on the "logo_key" field.
func LogoKeyGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldLogoKey, v))
}

// LogoKeyGTE applies the GTE predicate on the "logo_key" field.
func LogoKeyGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldLogoKey, v))
}

// LogoKeyLT applies the LT predicate on the "logo_key" field.
func LogoKeyLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldLogoKey, v))
}

// LogoKeyLTE applies the LTE predicate on the "logo_key" field.
func LogoKeyLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldLogoKey, v))
}

// LogoKeyContains applies the Contains predicate on the "logo_key" field.
func LogoKeyContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldLogoKey, v))
}

// LogoKeyHasPrefix applies the HasPrefix predicate on the "logo_key" field.
func LogoKeyHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldLogoKey, v))
}

// LogoKeyHasSuffix applies the HasSuffix predicate on the "logo_key" field.
func LogoKeyHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldLogoKey, v))
}

// LogoKeyIsNil applies the IsNil predicate on the "logo_key" field.
func LogoKeyIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldLogoKey))
}

// LogoKeyNotNil applies the NotNil predicate on the "logo_key" field.
func LogoKeyNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldLogoKey))
}

// LogoKeyEqualFold applies the EqualFold predicate on the "logo_key" field.
func LogoKeyEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldLogoKey, v))
}

// LogoKeyContainsFold applies the ContainsFold predicate on the "logo_key" field.
func LogoKeyContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldLogoKey, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldIsActive, v))
}

// EnableTableManagementEQ applies the EQ predicate on the "enable_table_management" field.
func EnableTableManagementEQ(v bool) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldEnableTableManagement, v))
}

// EnableTableManagementNEQ applies the NEQ predicate on the "enable_table_management" field.
func EnableTableManagementNEQ(v bool) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldEnableTableManagement, v))
}

// EnableWaiterAlertsEQ applies the EQ predicate on the "enable_waiter_alerts" field.
func EnableWaiterAlertsEQ(v bool) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldEnableWaiterAlerts, v))
}

// EnableWaiterAlertsNEQ applies the NEQ predicate on the "enable_waiter_alerts" field.
func EnableWaiterAlertsNEQ(v bool) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldEnableWaiterAlerts, v))
}

// EnableRoomChargingEQ applies the EQ predicate on the "enable_room_charging" field.
func EnableRoomChargingEQ(v bool) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldEnableRoomCharging, v))
}

// EnableRoomChargingNEQ applies the NEQ predicate on the "enable_room_charging" field.
func EnableRoomChargingNEQ(v bool) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldEnableRoomCharging, v))
}

// MenuThemeEQ applies the EQ predicate on the "menu_theme" field.
func MenuThemeEQ(v MenuTheme) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldMenuTheme, v))
}

// MenuThemeNEQ applies the NEQ predicate on the "menu_theme" field.
func MenuThemeNEQ(v MenuTheme) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldMenuTheme, v))
}

// MenuThemeIn applies the In predicate on the "menu_theme" field.
func MenuThemeIn(vs ...MenuTheme) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldMenuTheme, vs...))
}

// MenuThemeNotIn applies the NotIn predicate on the "menu_theme" field.
func MenuThemeNotIn(vs ...MenuTheme) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldMenuTheme, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCategories applies the HasEdge predicate on the "categories" edge.
func HasCategories() predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CategoriesTable, CategoriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoriesWith applies the HasEdge predicate on the "categories" edge with a given conditions (other predicates).
func HasCategoriesWith(preds ...predicate.Category) predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := newCategoriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTables applies the HasEdge predicate on the "tables" edge.
func HasTables() predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TablesTable, TablesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTablesWith applies the HasEdge predicate on the "tables" edge with a given conditions (other predicates).
func HasTablesWith(preds ...predicate.Table) predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := newTablesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOrders applies the HasEdge predicate on the "orders" edge.
func HasOrders() predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OrdersTable, OrdersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrdersWith applies the HasEdge predicate on the "orders" edge with a given conditions (other predicates).
func HasOrdersWith(preds ...predicate.Order) predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := newOrdersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItemPairs applies the HasEdge predicate on the "item_pairs" edge.
func HasItemPairs() predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemPairsTable, ItemPairsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemPairsWith applies the HasEdge predicate on the "item_pairs" edge with a given conditions (other predicates).
func HasItemPairsWith(preds ...predicate.ItemPairFrequency) predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := newItemPairsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecommendationEvents applies the HasEdge predicate on the "recommendation_events" edge.
func HasRecommendationEvents() predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecommendationEventsTable, RecommendationEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecommendationEventsWith applies the HasEdge predicate on the "recommendation_events" edge with a given conditions (other predicates).
func HasRecommendationEventsWith(preds ...predicate.RecommendationEvent) predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := newRecommendationEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStaff applies the HasEdge predicate on the "staff" edge.
func HasStaff() predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StaffTable, StaffColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStaffWith applies the HasEdge predicate on the "staff" edge with a given conditions (other predicates).
func HasStaffWith(preds ...predicate.StaffUser) predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := newStaffStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWaiterAlerts applies the HasEdge predicate on the "waiter_alerts" edge.
func HasWaiterAlerts() predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WaiterAlertsTable, WaiterAlertsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWaiterAlertsWith applies the HasEdge predicate on the "waiter_alerts" edge with a given conditions (other predicates).
func HasWaiterAlertsWith(preds ...predicate.WaiterAlert) predicate.Business {
	return predicate.Business(func(s *sql.Selector) {
		step := newWaiterAlertsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Business) predicate.Business {
	return predicate.Business(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Business) predicate.Business {
	return predicate.Business(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Business) predicate.Business {
	return predicate.Business(sql.NotPredicates(p))
}
