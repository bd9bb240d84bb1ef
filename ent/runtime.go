// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/category"
	"github.com/menuqr/menuqr/ent/itempairfrequency"
	"github.com/menuqr/menuqr/ent/menuitem"
	"github.com/menuqr/menuqr/ent/order"
	"github.com/menuqr/menuqr/ent/orderitem"
	"github.com/menuqr/menuqr/ent/recommendationevent"
	"github.com/menuqr/menuqr/ent/schema"
	"github.com/menuqr/menuqr/ent/staffuser"
	"github.com/menuqr/menuqr/ent/table"
	"github.com/menuqr/menuqr/ent/waiteralert"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	businessFields := schema.Business{}.Fields()
	_ = businessFields
	// businessDescName is the schema descriptor for name field.
	businessDescName := businessFields[0].Descriptor()
	// business.NameValidator is a validator for the "name" field. It is called by the builders before save.
	business.NameValidator = businessDescName.Validators[0].(func(string) error)
	// businessDescSlug is the schema descriptor for slug field.
	businessDescSlug := businessFields[2].Descriptor()
	// business.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	business.SlugValidator = businessDescSlug.Validators[0].(func(string) error)
	// businessDescCurrencyCode is the schema descriptor for currency_code field.
	businessDescCurrencyCode := businessFields[3].Descriptor()
	// business.DefaultCurrencyCode holds the default value on creation for the currency_code field.
	business.DefaultCurrencyCode = businessDescCurrencyCode.Default.(string)
	// business.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	business.CurrencyCodeValidator = businessDescCurrencyCode.Validators[0].(func(string) error)
	// businessDescTimezone is the schema descriptor for timezone field.
	businessDescTimezone := businessFields[4].Descriptor()
	// business.DefaultTimezone holds the default value on creation for the timezone field.
	business.DefaultTimezone = businessDescTimezone.Default.(string)
	// businessDescIsActive is the schema descriptor for is_active field.
	businessDescIsActive := businessFields[6].Descriptor()
	// business.DefaultIsActive holds the default value on creation for the is_active field.
	business.DefaultIsActive = businessDescIsActive.Default.(bool)
	// businessDescEnableTableManagement is the schema descriptor for enable_table_management field.
	businessDescEnableTableManagement := businessFields[7].Descriptor()
	// business.DefaultEnableTableManagement holds the default value on creation for the enable_table_management field.
	business.DefaultEnableTableManagement = businessDescEnableTableManagement.Default.(bool)
	// businessDescEnableWaiterAlerts is the schema descriptor for enable_waiter_alerts field.
	businessDescEnableWaiterAlerts := businessFields[8].Descriptor()
	// business.DefaultEnableWaiterAlerts holds the default value on creation for the enable_waiter_alerts field.
	business.DefaultEnableWaiterAlerts = businessDescEnableWaiterAlerts.Default.(bool)
	// businessDescEnableRoomCharging is the schema descriptor for enable_room_charging field.
	businessDescEnableRoomCharging := businessFields[9].Descriptor()
	// business.DefaultEnableRoomCharging holds the default value on creation for the enable_room_charging field.
	business.DefaultEnableRoomCharging = businessDescEnableRoomCharging.Default.(bool)
	// businessDescCreatedAt is the schema descriptor for created_at field.
	businessDescCreatedAt := businessFields[11].Descriptor()
	// business.DefaultCreatedAt holds the default value on creation for the created_at field.
	business.DefaultCreatedAt = businessDescCreatedAt.Default.(func() time.Time)
	// businessDescUpdatedAt is the schema descriptor for updated_at field.
	businessDescUpdatedAt := businessFields[12].Descriptor()
	// business.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	business.DefaultUpdatedAt = businessDescUpdatedAt.Default.(func() time.Time)
	// business.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	business.UpdateDefaultUpdatedAt = businessDescUpdatedAt.UpdateDefault.(func() time.Time)
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[1].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = func() func(string) error {
		validators := categoryDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// categoryDescSortOrder is the schema descriptor for sort_order field.
	categoryDescSortOrder := categoryFields[2].Descriptor()
	// category.DefaultSortOrder holds the default value on creation for the sort_order field.
	category.DefaultSortOrder = categoryDescSortOrder.Default.(int)
	// category.SortOrderValidator is a validator for the "sort_order" field. It is called by the builders before save.
	category.SortOrderValidator = categoryDescSortOrder.Validators[0].(func(int) error)
	// categoryDescCreatedAt is the schema descriptor for created_at field.
	categoryDescCreatedAt := categoryFields[3].Descriptor()
	// category.DefaultCreatedAt holds the default value on creation for the created_at field.
	category.DefaultCreatedAt = categoryDescCreatedAt.Default.(func() time.Time)
	// categoryDescUpdatedAt is the schema descriptor for updated_at field.
	categoryDescUpdatedAt := categoryFields[4].Descriptor()
	// category.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	category.DefaultUpdatedAt = categoryDescUpdatedAt.Default.(func() time.Time)
	// category.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	category.UpdateDefaultUpdatedAt = categoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	itempairfrequencyFields := schema.ItemPairFrequency{}.Fields()
	_ = itempairfrequencyFields
	// itempairfrequencyDescTimesTogether is the schema descriptor for times_together field.
	itempairfrequencyDescTimesTogether := itempairfrequencyFields[3].Descriptor()
	// itempairfrequency.DefaultTimesTogether holds the default value on creation for the times_together field.
	itempairfrequency.DefaultTimesTogether = itempairfrequencyDescTimesTogether.Default.(int)
	// itempairfrequency.TimesTogetherValidator is a validator for the "times_together" field. It is called by the builders before save.
	itempairfrequency.TimesTogetherValidator = itempairfrequencyDescTimesTogether.Validators[0].(func(int) error)
	// itempairfrequencyDescConfidence is the schema descriptor for confidence field.
	itempairfrequencyDescConfidence := itempairfrequencyFields[4].Descriptor()
	// itempairfrequency.DefaultConfidence holds the default value on creation for the confidence field.
	itempairfrequency.DefaultConfidence = itempairfrequencyDescConfidence.Default.(float64)
	// itempairfrequencyDescTimesRecommended is the schema descriptor for times_recommended field.
	itempairfrequencyDescTimesRecommended := itempairfrequencyFields[5].Descriptor()
	// itempairfrequency.DefaultTimesRecommended holds the default value on creation for the times_recommended field.
	itempairfrequency.DefaultTimesRecommended = itempairfrequencyDescTimesRecommended.Default.(int)
	// itempairfrequencyDescTimesConverted is the schema descriptor for times_converted field.
	itempairfrequencyDescTimesConverted := itempairfrequencyFields[6].Descriptor()
	// itempairfrequency.DefaultTimesConverted holds the default value on creation for the times_converted field.
	itempairfrequency.DefaultTimesConverted = itempairfrequencyDescTimesConverted.Default.(int)
	// itempairfrequencyDescRevenueGenerated is the schema descriptor for revenue_generated field.
	itempairfrequencyDescRevenueGenerated := itempairfrequencyFields[7].Descriptor()
	// itempairfrequency.DefaultRevenueGenerated holds the default value on creation for the revenue_generated field.
	itempairfrequency.DefaultRevenueGenerated = itempairfrequencyDescRevenueGenerated.Default.(float64)
	// itempairfrequencyDescCreatedAt is the schema descriptor for created_at field.
	itempairfrequencyDescCreatedAt := itempairfrequencyFields[8].Descriptor()
	// itempairfrequency.DefaultCreatedAt holds the default value on creation for the created_at field.
	itempairfrequency.DefaultCreatedAt = itempairfrequencyDescCreatedAt.Default.(func() time.Time)
	// itempairfrequencyDescUpdatedAt is the schema descriptor for updated_at field.
	itempairfrequencyDescUpdatedAt := itempairfrequencyFields[9].Descriptor()
	// itempairfrequency.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	itempairfrequency.DefaultUpdatedAt = itempairfrequencyDescUpdatedAt.Default.(func() time.Time)
	// itempairfrequency.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	itempairfrequency.UpdateDefaultUpdatedAt = itempairfrequencyDescUpdatedAt.UpdateDefault.(func() time.Time)
	menuitemFields := schema.MenuItem{}.Fields()
	_ = menuitemFields
	// menuitemDescName is the schema descriptor for name field.
	menuitemDescName := menuitemFields[1].Descriptor()
	// menuitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	menuitem.NameValidator = menuitemDescName.Validators[0].(func(string) error)
	// menuitemDescPrice is the schema descriptor for price field.
	menuitemDescPrice := menuitemFields[3].Descriptor()
	// menuitem.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	menuitem.PriceValidator = menuitemDescPrice.Validators[0].(func(float64) error)
	// menuitemDescIsAvailable is the schema descriptor for is_available field.
	menuitemDescIsAvailable := menuitemFields[5].Descriptor()
	// menuitem.DefaultIsAvailable holds the default value on creation for the is_available field.
	menuitem.DefaultIsAvailable = menuitemDescIsAvailable.Default.(bool)
	// menuitemDescIsVegetarian is the schema descriptor for is_vegetarian field.
	menuitemDescIsVegetarian := menuitemFields[6].Descriptor()
	// menuitem.DefaultIsVegetarian holds the default value on creation for the is_vegetarian field.
	menuitem.DefaultIsVegetarian = menuitemDescIsVegetarian.Default.(bool)
	// menuitemDescIsVegan is the schema descriptor for is_vegan field.
	menuitemDescIsVegan := menuitemFields[7].Descriptor()
	// menuitem.DefaultIsVegan holds the default value on creation for the is_vegan field.
	menuitem.DefaultIsVegan = menuitemDescIsVegan.Default.(bool)
	// menuitemDescIsGlutenFree is the schema descriptor for is_gluten_free field.
	menuitemDescIsGlutenFree := menuitemFields[8].Descriptor()
	// menuitem.DefaultIsGlutenFree holds the default value on creation for the is_gluten_free field.
	menuitem.DefaultIsGlutenFree = menuitemDescIsGlutenFree.Default.(bool)
	// menuitemDescIsFeatured is the schema descriptor for is_featured field.
	menuitemDescIsFeatured := menuitemFields[9].Descriptor()
	// menuitem.DefaultIsFeatured holds the default value on creation for the is_featured field.
	menuitem.DefaultIsFeatured = menuitemDescIsFeatured.Default.(bool)
	// menuitemDescIsDailySpecial is the schema descriptor for is_daily_special field.
	menuitemDescIsDailySpecial := menuitemFields[10].Descriptor()
	// menuitem.DefaultIsDailySpecial holds the default value on creation for the is_daily_special field.
	menuitem.DefaultIsDailySpecial = menuitemDescIsDailySpecial.Default.(bool)
	// menuitemDescPrepTimeMinutes is the schema descriptor for prep_time_minutes field.
	menuitemDescPrepTimeMinutes := menuitemFields[13].Descriptor()
	// menuitem.DefaultPrepTimeMinutes holds the default value on creation for the prep_time_minutes field.
	menuitem.DefaultPrepTimeMinutes = menuitemDescPrepTimeMinutes.Default.(int)
	// menuitem.PrepTimeMinutesValidator is a validator for the "prep_time_minutes" field. It is called by the builders before save.
	menuitem.PrepTimeMinutesValidator = menuitemDescPrepTimeMinutes.Validators[0].(func(int) error)
	// menuitemDescPopularityScore is the schema descriptor for popularity_score field.
	menuitemDescPopularityScore := menuitemFields[14].Descriptor()
	// menuitem.DefaultPopularityScore holds the default value on creation for the popularity_score field.
	menuitem.DefaultPopularityScore = menuitemDescPopularityScore.Default.(int)
	// menuitemDescCreatedAt is the schema descriptor for created_at field.
	menuitemDescCreatedAt := menuitemFields[17].Descriptor()
	// menuitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	menuitem.DefaultCreatedAt = menuitemDescCreatedAt.Default.(func() time.Time)
	// menuitemDescUpdatedAt is the schema descriptor for updated_at field.
	menuitemDescUpdatedAt := menuitemFields[18].Descriptor()
	// menuitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	menuitem.DefaultUpdatedAt = menuitemDescUpdatedAt.Default.(func() time.Time)
	// menuitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	menuitem.UpdateDefaultUpdatedAt = menuitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescLocation is the schema descriptor for location field.
	orderDescLocation := orderFields[2].Descriptor()
	// order.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	order.LocationValidator = func() func(string) error {
		validators := orderDescLocation.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(location string) error {
			for _, fn := range fns {
				if err := fn(location); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// orderDescSubtotal is the schema descriptor for subtotal field.
	orderDescSubtotal := orderFields[7].Descriptor()
	// order.DefaultSubtotal holds the default value on creation for the subtotal field.
	order.DefaultSubtotal = orderDescSubtotal.Default.(float64)
	// orderDescTaxAmount is the schema descriptor for tax_amount field.
	orderDescTaxAmount := orderFields[8].Descriptor()
	// order.DefaultTaxAmount holds the default value on creation for the tax_amount field.
	order.DefaultTaxAmount = orderDescTaxAmount.Default.(float64)
	// orderDescTipAmount is the schema descriptor for tip_amount field.
	orderDescTipAmount := orderFields[9].Descriptor()
	// order.DefaultTipAmount holds the default value on creation for the tip_amount field.
	order.DefaultTipAmount = orderDescTipAmount.Default.(float64)
	// orderDescTotalPrice is the schema descriptor for total_price field.
	orderDescTotalPrice := orderFields[10].Descriptor()
	// order.DefaultTotalPrice holds the default value on creation for the total_price field.
	order.DefaultTotalPrice = orderDescTotalPrice.Default.(float64)
	// orderDescStatusChangedAt is the schema descriptor for status_changed_at field.
	orderDescStatusChangedAt := orderFields[13].Descriptor()
	// order.DefaultStatusChangedAt holds the default value on creation for the status_changed_at field.
	order.DefaultStatusChangedAt = orderDescStatusChangedAt.Default.(func() time.Time)
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderFields[14].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	// orderDescUpdatedAt is the schema descriptor for updated_at field.
	orderDescUpdatedAt := orderFields[15].Descriptor()
	// order.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	order.DefaultUpdatedAt = orderDescUpdatedAt.Default.(func() time.Time)
	// order.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	order.UpdateDefaultUpdatedAt = orderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// orderDescID is the schema descriptor for id field.
	orderDescID := orderFields[0].Descriptor()
	// order.DefaultID holds the default value on creation for the id field.
	order.DefaultID = orderDescID.Default.(func() uuid.UUID)
	orderitemFields := schema.OrderItem{}.Fields()
	_ = orderitemFields
	// orderitemDescQuantity is the schema descriptor for quantity field.
	orderitemDescQuantity := orderitemFields[2].Descriptor()
	// orderitem.DefaultQuantity holds the default value on creation for the quantity field.
	orderitem.DefaultQuantity = orderitemDescQuantity.Default.(int)
	// orderitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	orderitem.QuantityValidator = orderitemDescQuantity.Validators[0].(func(int) error)
	// orderitemDescPriceAtOrder is the schema descriptor for price_at_order field.
	orderitemDescPriceAtOrder := orderitemFields[3].Descriptor()
	// orderitem.PriceAtOrderValidator is a validator for the "price_at_order" field. It is called by the builders before save.
	orderitem.PriceAtOrderValidator = orderitemDescPriceAtOrder.Validators[0].(func(float64) error)
	recommendationeventFields := schema.RecommendationEvent{}.Fields()
	_ = recommendationeventFields
	// recommendationeventDescRevenue is the schema descriptor for revenue field.
	recommendationeventDescRevenue := recommendationeventFields[5].Descriptor()
	// recommendationevent.DefaultRevenue holds the default value on creation for the revenue field.
	recommendationevent.DefaultRevenue = recommendationeventDescRevenue.Default.(float64)
	// recommendationeventDescCreatedAt is the schema descriptor for created_at field.
	recommendationeventDescCreatedAt := recommendationeventFields[6].Descriptor()
	// recommendationevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	recommendationevent.DefaultCreatedAt = recommendationeventDescCreatedAt.Default.(func() time.Time)
	staffuserFields := schema.StaffUser{}.Fields()
	_ = staffuserFields
	// staffuserDescEmail is the schema descriptor for email field.
	staffuserDescEmail := staffuserFields[1].Descriptor()
	// staffuser.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	staffuser.EmailValidator = staffuserDescEmail.Validators[0].(func(string) error)
	// staffuserDescPasswordHash is the schema descriptor for password_hash field.
	staffuserDescPasswordHash := staffuserFields[2].Descriptor()
	// staffuser.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	staffuser.PasswordHashValidator = staffuserDescPasswordHash.Validators[0].(func(string) error)
	// staffuserDescIsActive is the schema descriptor for is_active field.
	staffuserDescIsActive := staffuserFields[5].Descriptor()
	// staffuser.DefaultIsActive holds the default value on creation for the is_active field.
	staffuser.DefaultIsActive = staffuserDescIsActive.Default.(bool)
	// staffuserDescCreatedAt is the schema descriptor for created_at field.
	staffuserDescCreatedAt := staffuserFields[7].Descriptor()
	// staffuser.DefaultCreatedAt holds the default value on creation for the created_at field.
	staffuser.DefaultCreatedAt = staffuserDescCreatedAt.Default.(func() time.Time)
	// staffuserDescUpdatedAt is the schema descriptor for updated_at field.
	staffuserDescUpdatedAt := staffuserFields[8].Descriptor()
	// staffuser.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	staffuser.DefaultUpdatedAt = staffuserDescUpdatedAt.Default.(func() time.Time)
	// staffuser.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	staffuser.UpdateDefaultUpdatedAt = staffuserDescUpdatedAt.UpdateDefault.(func() time.Time)
	tableFields := schema.Table{}.Fields()
	_ = tableFields
	// tableDescTableNumber is the schema descriptor for table_number field.
	tableDescTableNumber := tableFields[1].Descriptor()
	// table.TableNumberValidator is a validator for the "table_number" field. It is called by the builders before save.
	table.TableNumberValidator = func() func(string) error {
		validators := tableDescTableNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(table_number string) error {
			for _, fn := range fns {
				if err := fn(table_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tableDescCapacity is the schema descriptor for capacity field.
	tableDescCapacity := tableFields[2].Descriptor()
	// table.DefaultCapacity holds the default value on creation for the capacity field.
	table.DefaultCapacity = tableDescCapacity.Default.(int)
	// table.CapacityValidator is a validator for the "capacity" field. It is called by the builders before save.
	table.CapacityValidator = tableDescCapacity.Validators[0].(func(int) error)
	// tableDescCreatedAt is the schema descriptor for created_at field.
	tableDescCreatedAt := tableFields[4].Descriptor()
	// table.DefaultCreatedAt holds the default value on creation for the created_at field.
	table.DefaultCreatedAt = tableDescCreatedAt.Default.(func() time.Time)
	// tableDescUpdatedAt is the schema descriptor for updated_at field.
	tableDescUpdatedAt := tableFields[5].Descriptor()
	// table.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	table.DefaultUpdatedAt = tableDescUpdatedAt.Default.(func() time.Time)
	// table.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	table.UpdateDefaultUpdatedAt = tableDescUpdatedAt.UpdateDefault.(func() time.Time)
	waiteralertFields := schema.WaiterAlert{}.Fields()
	_ = waiteralertFields
	// waiteralertDescMessage is the schema descriptor for message field.
	waiteralertDescMessage := waiteralertFields[3].Descriptor()
	// waiteralert.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	waiteralert.MessageValidator = waiteralertDescMessage.Validators[0].(func(string) error)
	// waiteralertDescCreatedAt is the schema descriptor for created_at field.
	waiteralertDescCreatedAt := waiteralertFields[7].Descriptor()
	// waiteralert.DefaultCreatedAt holds the default value on creation for the created_at field.
	waiteralert.DefaultCreatedAt = waiteralertDescCreatedAt.Default.(func() time.Time)
}
