// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/category"
	"github.com/menuqr/menuqr/ent/itempairfrequency"
	"github.com/menuqr/menuqr/ent/menuitem"
	"github.com/menuqr/menuqr/ent/order"
	"github.com/menuqr/menuqr/ent/orderitem"
	"github.com/menuqr/menuqr/ent/predicate"
	"github.com/menuqr/menuqr/ent/recommendationevent"
	"github.com/menuqr/menuqr/ent/staffuser"
	"github.com/menuqr/menuqr/ent/table"
	"github.com/menuqr/menuqr/ent/waiteralert"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBusiness            = "Business"
	TypeCategory            = "Category"
	TypeItemPairFrequency   = "ItemPairFrequency"
	TypeMenuItem            = "MenuItem"
	TypeOrder               = "Order"
	TypeOrderItem           = "OrderItem"
	TypeRecommendationEvent = "RecommendationEvent"
	TypeStaffUser           = "StaffUser"
	TypeTable               = "Table"
	TypeWaiterAlert         = "WaiterAlert"
)

// BusinessMutation represents an operation that mutates the Business nodes in the graph.
type BusinessMutation struct {
	config
	op                           Op
	typ                          string
	id                           *int
	name                         *string
	business_type                *business.BusinessType
	slug                         *string
	currency_code                *string
	timezone                     *string
	logo_key                     *string
	is_active                    *bool
	enable_table_management      *bool
	enable_waiter_alerts         *bool
	enable_room_charging         *bool
	menu_theme                   *business.MenuTheme
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	categories                   map[int]struct{}
	removedcategories            map[int]struct{}
	clearedcategories            bool
	tables                       map[int]struct{}
	removedtables                map[int]struct{}
	clearedtables                bool
	orders                       map[uuid.UUID]struct{}
	removedorders                map[uuid.UUID]struct{}
	clearedorders                bool
	item_pairs                   map[int]struct{}
	removeditem_pairs            map[int]struct{}
	cleareditem_pairs            bool
	recommendation_events        map[int]struct{}
	removedrecommendation_events map[int]struct{}
	clearedrecommendation_events bool
	staff                        map[int]struct{}
	removedstaff                 map[int]struct{}
	clearedstaff                 bool
	waiter_alerts                map[int]struct{}
	removedwaiter_alerts         map[int]struct{}
	clearedwaiter_alerts         bool
	done                         bool
	oldValue                     func(context.Context) (*Business, error)
	predicates                   []predicate.Business
}

var _ ent.Mutation = (*BusinessMutation)(nil)

// businessOption allows management of the mutation configuration using functional options.
type businessOption func(*BusinessMutation)

// newBusinessMutation creates new mutation for the Business entity.
func newBusinessMutation(c config, op Op, opts ...businessOption) *BusinessMutation {
	m := &BusinessMutation{
		config:        c,
		op:            op,
		typ:           TypeBusiness,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBusinessID sets the ID field of the mutation.
func withBusinessID(id int) businessOption {
	return func(m *BusinessMutation) {
		var (
			err   error
			once  sync.Once
			value *Business
		)
		m.oldValue = func(ctx context.Context) (*Business, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Business.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBusiness sets the old Business of the mutation.
func withBusiness(node *Business) businessOption {
	return func(m *BusinessMutation) {
		m.oldValue = func(context.Context) (*Business, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BusinessMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BusinessMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BusinessMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BusinessMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Business.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *BusinessMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BusinessMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BusinessMutation) ResetName() {
	m.name = nil
}

// SetBusinessType sets the "business_type" field.
func (m *BusinessMutation) SetBusinessType(bt business.BusinessType) {
	m.business_type = &bt
}

// BusinessType returns the value of the "business_type" field in the mutation.
func (m *BusinessMutation) BusinessType() (r business.BusinessType, exists bool) {
	v := m.business_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessType returns the old "business_type" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldBusinessType(ctx context.Context) (v business.BusinessType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessType: %w", err)
	}
	return oldValue.BusinessType, nil
}

// ResetBusinessType resets all changes to the "business_type" field.
func (m *BusinessMutation) ResetBusinessType() {
	m.business_type = nil
}

// SetSlug sets the "slug" field.
func (m *BusinessMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *BusinessMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *BusinessMutation) ResetSlug() {
	m.slug = nil
}

// SetCurrencyCode sets the "currency_code" field.
func (m *BusinessMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *BusinessMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *BusinessMutation) ResetCurrencyCode() {
	m.currency_code = nil
}

// SetTimezone sets the "timezone" field.
func (m *BusinessMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *BusinessMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *BusinessMutation) ResetTimezone() {
	m.timezone = nil
}

// SetLogoKey sets the "logo_key" field.
func (m *BusinessMutation) SetLogoKey(s string) {
	m.logo_key = &s
}

// LogoKey returns the value of the "logo_key" field in the mutation.
func (m *BusinessMutation) LogoKey() (r string, exists bool) {
	v := m.logo_key
	if v == nil {
		return
	}
	return *v, true
}

// OldLogoKey returns the old "logo_key" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldLogoKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogoKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogoKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogoKey: %w", err)
	}
	return oldValue.LogoKey, nil
}

// ClearLogoKey clears the value of the "logo_key" field.
func (m *BusinessMutation) ClearLogoKey() {
	m.logo_key = nil
	m.clearedFields[business.FieldLogoKey] = struct{}{}
}

// LogoKeyCleared returns if the "logo_key" field was cleared in this mutation.
func (m *BusinessMutation) LogoKeyCleared() bool {
	_, ok := m.clearedFields[business.FieldLogoKey]
	return ok
}

// ResetLogoKey resets all changes to the "logo_key" field.
func (m *BusinessMutation) ResetLogoKey() {
	m.logo_key = nil
	delete(m.clearedFields, business.FieldLogoKey)
}

// SetIsActive sets the "is_active" field.
func (m *BusinessMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *BusinessMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *BusinessMutation) ResetIsActive() {
	m.is_active = nil
}

// SetEnableTableManagement sets the "enable_table_management" field.
func (m *BusinessMutation) SetEnableTableManagement(b bool) {
	m.enable_table_management = &b
}

// EnableTableManagement returns the value of the "enable_table_management" field in the mutation.
func (m *BusinessMutation) EnableTableManagement() (r bool, exists bool) {
	v := m.enable_table_management
	if v == nil {
		return
	}
	return *v, true
}

// OldEnableTableManagement returns the old "enable_table_management" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldEnableTableManagement(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnableTableManagement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnableTableManagement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnableTableManagement: %w", err)
	}
	return oldValue.EnableTableManagement, nil
}

// ResetEnableTableManagement resets all changes to the "enable_table_management" field.
func (m *BusinessMutation) ResetEnableTableManagement() {
	m.enable_table_management = nil
}

// SetEnableWaiterAlerts sets the "enable_waiter_alerts" field.
func (m *BusinessMutation) SetEnableWaiterAlerts(b bool) {
	m.enable_waiter_alerts = &b
}

// EnableWaiterAlerts returns the value of the "enable_waiter_alerts" field in the mutation.
func (m *BusinessMutation) EnableWaiterAlerts() (r bool, exists bool) {
	v := m.enable_waiter_alerts
	if v == nil {
		return
	}
	return *v, true
}

// OldEnableWaiterAlerts returns the old "enable_waiter_alerts" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldEnableWaiterAlerts(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnableWaiterAlerts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnableWaiterAlerts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnableWaiterAlerts: %w", err)
	}
	return oldValue.EnableWaiterAlerts, nil
}

// ResetEnableWaiterAlerts resets all changes to the "enable_waiter_alerts" field.
func (m *BusinessMutation) ResetEnableWaiterAlerts() {
	m.enable_waiter_alerts = nil
}

// SetEnableRoomCharging sets the "enable_room_charging" field.
func (m *BusinessMutation) SetEnableRoomCharging(b bool) {
	m.enable_room_charging = &b
}

// EnableRoomCharging returns the value of the "enable_room_charging" field in the mutation.
func (m *BusinessMutation) EnableRoomCharging() (r bool, exists bool) {
	v := m.enable_room_charging
	if v == nil {
		return
	}
	return *v, true
}

// OldEnableRoomCharging returns the old "enable_room_charging" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldEnableRoomCharging(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnableRoomCharging is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnableRoomCharging requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnableRoomCharging: %w", err)
	}
	return oldValue.EnableRoomCharging, nil
}

// ResetEnableRoomCharging resets all changes to the "enable_room_charging" field.
func (m *BusinessMutation) ResetEnableRoomCharging() {
	m.enable_room_charging = nil
}

// SetMenuTheme sets the "menu_theme" field.
func (m *BusinessMutation) SetMenuTheme(bt business.MenuTheme) {
	m.menu_theme = &bt
}

// MenuTheme returns the value of the "menu_theme" field in the mutation.
func (m *BusinessMutation) MenuTheme() (r business.MenuTheme, exists bool) {
	v := m.menu_theme
	if v == nil {
		return
	}
	return *v, true
}

// OldMenuTheme returns the old "menu_theme" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldMenuTheme(ctx context.Context) (v business.MenuTheme, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMenuTheme is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMenuTheme requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMenuTheme: %w", err)
	}
	return oldValue.MenuTheme, nil
}

// ResetMenuTheme resets all changes to the "menu_theme" field.
func (m *BusinessMutation) ResetMenuTheme() {
	m.menu_theme = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BusinessMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BusinessMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BusinessMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BusinessMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BusinessMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BusinessMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddCategoryIDs adds the "categories" edge to the Category entity by ids.
func (m *BusinessMutation) AddCategoryIDs(ids ...int) {
	if m.categories == nil {
		m.categories = make(map[int]struct{})
	}
	for i := range ids {
		m.categories[ids[i]] = struct{}{}
	}
}

// ClearCategories clears the "categories" edge to the Category entity.
func (m *BusinessMutation) ClearCategories() {
	m.clearedcategories = true
}

// CategoriesCleared reports if the "categories" edge to the Category entity was cleared.
func (m *BusinessMutation) CategoriesCleared() bool {
	return m.clearedcategories
}

// RemoveCategoryIDs removes the "categories" edge to the Category entity by IDs.
func (m *BusinessMutation) RemoveCategoryIDs(ids ...int) {
	if m.removedcategories == nil {
		m.removedcategories = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.categories, ids[i])
		m.removedcategories[ids[i]] = struct{}{}
	}
}

// RemovedCategories returns the removed IDs of the "categories" edge to the Category entity.
func (m *BusinessMutation) RemovedCategoriesIDs() (ids []int) {
	for id := range m.removedcategories {
		ids = append(ids, id)
	}
	return
}

// CategoriesIDs returns the "categories" edge IDs in the mutation.
func (m *BusinessMutation) CategoriesIDs() (ids []int) {
	for id := range m.categories {
		ids = append(ids, id)
	}
	return
}

// ResetCategories resets all changes to the "categories" edge.
func (m *BusinessMutation) ResetCategories() {
	m.categories = nil
	m.clearedcategories = false
	m.removedcategories = nil
}

// AddTableIDs adds the "tables" edge to the Table entity by ids.
func (m *BusinessMutation) AddTableIDs(ids ...int) {
	if m.tables == nil {
		m.tables = make(map[int]struct{})
	}
	for i := range ids {
		m.tables[ids[i]] = struct{}{}
	}
}

// ClearTables clears the "tables" edge to the Table entity.
func (m *BusinessMutation) ClearTables() {
	m.clearedtables = true
}

// TablesCleared reports if the "tables" edge to the Table entity was cleared.
func (m *BusinessMutation) TablesCleared() bool {
	return m.clearedtables
}

// RemoveTableIDs removes the "tables" edge to the Table entity by IDs.
func (m *BusinessMutation) RemoveTableIDs(ids ...int) {
	if m.removedtables == nil {
		m.removedtables = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.tables, ids[i])
		m.removedtables[ids[i]] = struct{}{}
	}
}

// RemovedTables returns the removed IDs of the "tables" edge to the Table entity.
func (m *BusinessMutation) RemovedTablesIDs() (ids []int) {
	for id := range m.removedtables {
		ids = append(ids, id)
	}
	return
}

// TablesIDs returns the "tables" edge IDs in the mutation.
func (m *BusinessMutation) TablesIDs() (ids []int) {
	for id := range m.tables {
		ids = append(ids, id)
	}
	return
}

// ResetTables resets all changes to the "tables" edge.
func (m *BusinessMutation) ResetTables() {
	m.tables = nil
	m.clearedtables = false
	m.removedtables = nil
}

// AddOrderIDs adds the "orders" edge to the Order entity by ids.
func (m *BusinessMutation) AddOrderIDs(ids ...uuid.UUID) {
	if m.orders == nil {
		m.orders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.orders[ids[i]] = struct{}{}
	}
}

// ClearOrders clears the "orders" edge to the Order entity.
func (m *BusinessMutation) ClearOrders() {
	m.clearedorders = true
}

// OrdersCleared reports if the "orders" edge to the Order entity was cleared.
func (m *BusinessMutation) OrdersCleared() bool {
	return m.clearedorders
}

// RemoveOrderIDs removes the "orders" edge to the Order entity by IDs.
func (m *BusinessMutation) RemoveOrderIDs(ids ...uuid.UUID) {
	if m.removedorders == nil {
		m.removedorders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.orders, ids[i])
		m.removedorders[ids[i]] = struct{}{}
	}
}

// RemovedOrders returns the removed IDs of the "orders" edge to the Order entity.
func (m *BusinessMutation) RemovedOrdersIDs() (ids []uuid.UUID) {
	for id := range m.removedorders {
		ids = append(ids, id)
	}
	return
}

// OrdersIDs returns the "orders" edge IDs in the mutation.
func (m *BusinessMutation) OrdersIDs() (ids []uuid.UUID) {
	for id := range m.orders {
		ids = append(ids, id)
	}
	return
}

// ResetOrders resets all changes to the "orders" edge.
func (m *BusinessMutation) ResetOrders() {
	m.orders = nil
	m.clearedorders = false
	m.removedorders = nil
}

// AddItemPairIDs adds the "item_pairs" edge to the ItemPairFrequency entity by ids.
func (m *BusinessMutation) AddItemPairIDs(ids ...int) {
	if m.item_pairs == nil {
		m.item_pairs = make(map[int]struct{})
	}
	for i := range ids {
		m.item_pairs[ids[i]] = struct{}{}
	}
}

// ClearItemPairs clears the "item_pairs" edge to the ItemPairFrequency entity.
func (m *BusinessMutation) ClearItemPairs() {
	m.cleareditem_pairs = true
}

// ItemPairsCleared reports if the "item_pairs" edge to the ItemPairFrequency entity was cleared.
func (m *BusinessMutation) ItemPairsCleared() bool {
	return m.cleareditem_pairs
}

// RemoveItemPairIDs removes the "item_pairs" edge to the ItemPairFrequency entity by IDs.
func (m *BusinessMutation) RemoveItemPairIDs(ids ...int) {
	if m.removeditem_pairs == nil {
		m.removeditem_pairs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.item_pairs, ids[i])
		m.removeditem_pairs[ids[i]] = struct{}{}
	}
}

// RemovedItemPairs returns the removed IDs of the "item_pairs" edge to the ItemPairFrequency entity.
func (m *BusinessMutation) RemovedItemPairsIDs() (ids []int) {
	for id := range m.removeditem_pairs {
		ids = append(ids, id)
	}
	return
}

// ItemPairsIDs returns the "item_pairs" edge IDs in the mutation.
func (m *BusinessMutation) ItemPairsIDs() (ids []int) {
	for id := range m.item_pairs {
		ids = append(ids, id)
	}
	return
}

// ResetItemPairs resets all changes to the "item_pairs" edge.
func (m *BusinessMutation) ResetItemPairs() {
	m.item_pairs = nil
	m.cleareditem_pairs = false
	m.removeditem_pairs = nil
}

// AddRecommendationEventIDs adds the "recommendation_events" edge to the RecommendationEvent entity by ids.
func (m *BusinessMutation) AddRecommendationEventIDs(ids ...int) {
	if m.recommendation_events == nil {
		m.recommendation_events = make(map[int]struct{})
	}
	for i := range ids {
		m.recommendation_events[ids[i]] = struct{}{}
	}
}

// ClearRecommendationEvents clears the "recommendation_events" edge to the RecommendationEvent entity.
func (m *BusinessMutation) ClearRecommendationEvents() {
	m.clearedrecommendation_events = true
}

// RecommendationEventsCleared reports if the "recommendation_events" edge to the RecommendationEvent entity was cleared.
func (m *BusinessMutation) RecommendationEventsCleared() bool {
	return m.clearedrecommendation_events
}

// RemoveRecommendationEventIDs removes the "recommendation_events" edge to the RecommendationEvent entity by IDs.
func (m *BusinessMutation) RemoveRecommendationEventIDs(ids ...int) {
	if m.removedrecommendation_events == nil {
		m.removedrecommendation_events = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.recommendation_events, ids[i])
		m.removedrecommendation_events[ids[i]] = struct{}{}
	}
}

// RemovedRecommendationEvents returns the removed IDs of the "recommendation_events" edge to the RecommendationEvent entity.
func (m *BusinessMutation) RemovedRecommendationEventsIDs() (ids []int) {
	for id := range m.removedrecommendation_events {
		ids = append(ids, id)
	}
	return
}

// RecommendationEventsIDs returns the "recommendation_events" edge IDs in the mutation.
func (m *BusinessMutation) RecommendationEventsIDs() (ids []int) {
	for id := range m.recommendation_events {
		ids = append(ids, id)
	}
	return
}

// ResetRecommendationEvents resets all changes to the "recommendation_events" edge.
func (m *BusinessMutation) ResetRecommendationEvents() {
	m.recommendation_events = nil
	m.clearedrecommendation_events = false
	m.removedrecommendation_events = nil
}

// AddStaffIDs adds the "staff" edge to the StaffUser entity by ids.
func (m *BusinessMutation) AddStaffIDs(ids ...int) {
	if m.staff == nil {
		m.staff = make(map[int]struct{})
	}
	for i := range ids {
		m.staff[ids[i]] = struct{}{}
	}
}

// ClearStaff clears the "staff" edge to the StaffUser entity.
func (m *BusinessMutation) ClearStaff() {
	m.clearedstaff = true
}

// StaffCleared reports if the "staff" edge to the StaffUser entity was cleared.
func (m *BusinessMutation) StaffCleared() bool {
	return m.clearedstaff
}

// RemoveStaffIDs removes the "staff" edge to the StaffUser entity by IDs.
func (m *BusinessMutation) RemoveStaffIDs(ids ...int) {
	if m.removedstaff == nil {
		m.removedstaff = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.staff, ids[i])
		m.removedstaff[ids[i]] = struct{}{}
	}
}

// RemovedStaff returns the removed IDs of the "staff" edge to the StaffUser entity.
func (m *BusinessMutation) RemovedStaffIDs() (ids []int) {
	for id := range m.removedstaff {
		ids = append(ids, id)
	}
	return
}

// StaffIDs returns the "staff" edge IDs in the mutation.
func (m *BusinessMutation) StaffIDs() (ids []int) {
	for id := range m.staff {
		ids = append(ids, id)
	}
	return
}

// ResetStaff resets all changes to the "staff" edge.
func (m *BusinessMutation) ResetStaff() {
	m.staff = nil
	m.clearedstaff = false
	m.removedstaff = nil
}

// AddWaiterAlertIDs adds the "waiter_alerts" edge to the WaiterAlert entity by ids.
func (m *BusinessMutation) AddWaiterAlertIDs(ids ...int) {
	if m.waiter_alerts == nil {
		m.waiter_alerts = make(map[int]struct{})
	}
	for i := range ids {
		m.waiter_alerts[ids[i]] = struct{}{}
	}
}

// ClearWaiterAlerts clears the "waiter_alerts" edge to the WaiterAlert entity.
func (m *BusinessMutation) ClearWaiterAlerts() {
	m.clearedwaiter_alerts = true
}

// WaiterAlertsCleared reports if the "waiter_alerts" edge to the WaiterAlert entity was cleared.
func (m *BusinessMutation) WaiterAlertsCleared() bool {
	return m.clearedwaiter_alerts
}

// RemoveWaiterAlertIDs removes the "waiter_alerts" edge to the WaiterAlert entity by IDs.
func (m *BusinessMutation) RemoveWaiterAlertIDs(ids ...int) {
	if m.removedwaiter_alerts == nil {
		m.removedwaiter_alerts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.waiter_alerts, ids[i])
		m.removedwaiter_alerts[ids[i]] = struct{}{}
	}
}

// RemovedWaiterAlerts returns the removed IDs of the "waiter_alerts" edge to the WaiterAlert entity.
func (m *BusinessMutation) RemovedWaiterAlertsIDs() (ids []int) {
	for id := range m.removedwaiter_alerts {
		ids = append(ids, id)
	}
	return
}

// WaiterAlertsIDs returns the "waiter_alerts" edge IDs in the mutation.
func (m *BusinessMutation) WaiterAlertsIDs() (ids []int) {
	for id := range m.waiter_alerts {
		ids = append(ids, id)
	}
	return
}

// ResetWaiterAlerts resets all changes to the "waiter_alerts" edge.
func (m *BusinessMutation) ResetWaiterAlerts() {
	m.waiter_alerts = nil
	m.clearedwaiter_alerts = false
	m.removedwaiter_alerts = nil
}

// Where appends a list predicates to the BusinessMutation builder.
func (m *BusinessMutation) Where(ps ...predicate.Business) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BusinessMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BusinessMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Business, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BusinessMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BusinessMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Business).
func (m *BusinessMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BusinessMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.name != nil {
		fields = append(fields, business.FieldName)
	}
	if m.business_type != nil {
		fields = append(fields, business.FieldBusinessType)
	}
	if m.slug != nil {
		fields = append(fields, business.FieldSlug)
	}
	if m.currency_code != nil {
		fields = append(fields, business.FieldCurrencyCode)
	}
	if m.timezone != nil {
		fields = append(fields, business.FieldTimezone)
	}
	if m.logo_key != nil {
		fields = append(fields, business.FieldLogoKey)
	}
	if m.is_active != nil {
		fields = append(fields, business.FieldIsActive)
	}
	if m.enable_table_management != nil {
		fields = append(fields, business.FieldEnableTableManagement)
	}
	if m.enable_waiter_alerts != nil {
		fields = append(fields, business.FieldEnableWaiterAlerts)
	}
	if m.enable_room_charging != nil {
		fields = append(fields, business.FieldEnableRoomCharging)
	}
	if m.menu_theme != nil {
		fields = append(fields, business.FieldMenuTheme)
	}
	if m.created_at != nil {
		fields = append(fields, business.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, business.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BusinessMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case business.FieldName:
		return m.Name()
	case business.FieldBusinessType:
		return m.BusinessType()
	case business.FieldSlug:
		return m.Slug()
	case business.FieldCurrencyCode:
		return m.CurrencyCode()
	case business.FieldTimezone:
		return m.Timezone()
	case business.FieldLogoKey:
		return m.LogoKey()
	case business.FieldIsActive:
		return m.IsActive()
	case business.FieldEnableTableManagement:
		return m.EnableTableManagement()
	case business.FieldEnableWaiterAlerts:
		return m.EnableWaiterAlerts()
	case business.FieldEnableRoomCharging:
		return m.EnableRoomCharging()
	case business.FieldMenuTheme:
		return m.MenuTheme()
	case business.FieldCreatedAt:
		return m.CreatedAt()
	case business.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BusinessMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case business.FieldName:
		return m.OldName(ctx)
	case business.FieldBusinessType:
		return m.OldBusinessType(ctx)
	case business.FieldSlug:
		return m.OldSlug(ctx)
	case business.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case business.FieldTimezone:
		return m.OldTimezone(ctx)
	case business.FieldLogoKey:
		return m.OldLogoKey(ctx)
	case business.FieldIsActive:
		return m.OldIsActive(ctx)
	case business.FieldEnableTableManagement:
		return m.OldEnableTableManagement(ctx)
	case business.FieldEnableWaiterAlerts:
		return m.OldEnableWaiterAlerts(ctx)
	case business.FieldEnableRoomCharging:
		return m.OldEnableRoomCharging(ctx)
	case business.FieldMenuTheme:
		return m.OldMenuTheme(ctx)
	case business.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case business.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Business field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessMutation) SetField(name string, value ent.Value) error {
	switch name {
	case business.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case business.FieldBusinessType:
		v, ok := value.(business.BusinessType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessType(v)
		return nil
	case business.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case business.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case business.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case business.FieldLogoKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogoKey(v)
		return nil
	case business.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case business.FieldEnableTableManagement:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnableTableManagement(v)
		return nil
	case business.FieldEnableWaiterAlerts:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnableWaiterAlerts(v)
		return nil
	case business.FieldEnableRoomCharging:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnableRoomCharging(v)
		return nil
	case business.FieldMenuTheme:
		v, ok := value.(business.MenuTheme)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMenuTheme(v)
		return nil
	case business.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case business.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Business field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BusinessMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BusinessMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Business numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BusinessMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(business.FieldLogoKey) {
		fields = append(fields, business.FieldLogoKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BusinessMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BusinessMutation) ClearField(name string) error {
	switch name {
	case business.FieldLogoKey:
		m.ClearLogoKey()
		return nil
	}
	return fmt.Errorf("unknown Business nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BusinessMutation) ResetField(name string) error {
	switch name {
	case business.FieldName:
		m.ResetName()
		return nil
	case business.FieldBusinessType:
		m.ResetBusinessType()
		return nil
	case business.FieldSlug:
		m.ResetSlug()
		return nil
	case business.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case business.FieldTimezone:
		m.ResetTimezone()
		return nil
	case business.FieldLogoKey:
		m.ResetLogoKey()
		return nil
	case business.FieldIsActive:
		m.ResetIsActive()
		return nil
	case business.FieldEnableTableManagement:
		m.ResetEnableTableManagement()
		return nil
	case business.FieldEnableWaiterAlerts:
		m.ResetEnableWaiterAlerts()
		return nil
	case business.FieldEnableRoomCharging:
		m.ResetEnableRoomCharging()
		return nil
	case business.FieldMenuTheme:
		m.ResetMenuTheme()
		return nil
	case business.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case business.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Business field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BusinessMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.categories != nil {
		edges = append(edges, business.EdgeCategories)
	}
	if m.tables != nil {
		edges = append(edges, business.EdgeTables)
	}
	if m.orders != nil {
		edges = append(edges, business.EdgeOrders)
	}
	if m.item_pairs != nil {
		edges = append(edges, business.EdgeItemPairs)
	}
	if m.recommendation_events != nil {
		edges = append(edges, business.EdgeRecommendationEvents)
	}
	if m.staff != nil {
		edges = append(edges, business.EdgeStaff)
	}
	if m.waiter_alerts != nil {
		edges = append(edges, business.EdgeWaiterAlerts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BusinessMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case business.EdgeCategories:
		ids := make([]ent.Value, 0, len(m.categories))
		for id := range m.categories {
			ids = append(ids, id)
		}
		return ids
	case business.EdgeTables:
		ids := make([]ent.Value, 0, len(m.tables))
		for id := range m.tables {
			ids = append(ids, id)
		}
		return ids
	case business.EdgeOrders:
		ids := make([]ent.Value, 0, len(m.orders))
		for id := range m.orders {
			ids = append(ids, id)
		}
		return ids
	case business.EdgeItemPairs:
		ids := make([]ent.Value, 0, len(m.item_pairs))
		for id := range m.item_pairs {
			ids = append(ids, id)
		}
		return ids
	case business.EdgeRecommendationEvents:
		ids := make([]ent.Value, 0, len(m.recommendation_events))
		for id := range m.recommendation_events {
			ids = append(ids, id)
		}
		return ids
	case business.EdgeStaff:
		ids := make([]ent.Value, 0, len(m.staff))
		for id := range m.staff {
			ids = append(ids, id)
		}
		return ids
	case business.EdgeWaiterAlerts:
		ids := make([]ent.Value, 0, len(m.waiter_alerts))
		for id := range m.waiter_alerts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BusinessMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedcategories != nil {
		edges = append(edges, business.EdgeCategories)
	}
	if m.removedtables != nil {
		edges = append(edges, business.EdgeTables)
	}
	if m.removedorders != nil {
		edges = append(edges, business.EdgeOrders)
	}
	if m.removeditem_pairs != nil {
		edges = append(edges, business.EdgeItemPairs)
	}
	if m.removedrecommendation_events != nil {
		edges = append(edges, business.EdgeRecommendationEvents)
	}
	if m.removedstaff != nil {
		edges = append(edges, business.EdgeStaff)
	}
	if m.removedwaiter_alerts != nil {
		edges = append(edges, business.EdgeWaiterAlerts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BusinessMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case business.EdgeCategories:
		ids := make([]ent.Value, 0, len(m.removedcategories))
		for id := range m.removedcategories {
			ids = append(ids, id)
		}
		return ids
	case business.EdgeTables:
		ids := make([]ent.Value, 0, len(m.removedtables))
		for id := range m.removedtables {
			ids = append(ids, id)
		}
		return ids
	case business.EdgeOrders:
		ids := make([]ent.Value, 0, len(m.removedorders))
		for id := range m.removedorders {
			ids = append(ids, id)
		}
		return ids
	case business.EdgeItemPairs:
		ids := make([]ent.Value, 0, len(m.removeditem_pairs))
		for id := range m.removeditem_pairs {
			ids = append(ids, id)
		}
		return ids
	case business.EdgeRecommendationEvents:
		ids := make([]ent.Value, 0, len(m.removedrecommendation_events))
		for id := range m.removedrecommendation_events {
			ids = append(ids, id)
		}
		return ids
	case business.EdgeStaff:
		ids := make([]ent.Value, 0, len(m.removedstaff))
		for id := range m.removedstaff {
			ids = append(ids, id)
		}
		return ids
	case business.EdgeWaiterAlerts:
		ids := make([]ent.Value, 0, len(m.removedwaiter_alerts))
		for id := range m.removedwaiter_alerts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BusinessMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedcategories {
		edges = append(edges, business.EdgeCategories)
	}
	if m.clearedtables {
		edges = append(edges, business.EdgeTables)
	}
	if m.clearedorders {
		edges = append(edges, business.EdgeOrders)
	}
	if m.cleareditem_pairs {
		edges = append(edges, business.EdgeItemPairs)
	}
	if m.clearedrecommendation_events {
		edges = append(edges, business.EdgeRecommendationEvents)
	}
	if m.clearedstaff {
		edges = append(edges, business.EdgeStaff)
	}
	if m.clearedwaiter_alerts {
		edges = append(edges, business.EdgeWaiterAlerts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BusinessMutation) EdgeCleared(name string) bool {
	switch name {
	case business.EdgeCategories:
		return m.clearedcategories
	case business.EdgeTables:
		return m.clearedtables
	case business.EdgeOrders:
		return m.clearedorders
	case business.EdgeItemPairs:
		return m.cleareditem_pairs
	case business.EdgeRecommendationEvents:
		return m.clearedrecommendation_events
	case business.EdgeStaff:
		return m.clearedstaff
	case business.EdgeWaiterAlerts:
		return m.clearedwaiter_alerts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BusinessMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Business unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BusinessMutation) ResetEdge(name string) error {
	switch name {
	case business.EdgeCategories:
		m.ResetCategories()
		return nil
	case business.EdgeTables:
		m.ResetTables()
		return nil
	case business.EdgeOrders:
		m.ResetOrders()
		return nil
	case business.EdgeItemPairs:
		m.ResetItemPairs()
		return nil
	case business.EdgeRecommendationEvents:
		m.ResetRecommendationEvents()
		return nil
	case business.EdgeStaff:
		m.ResetStaff()
		return nil
	case business.EdgeWaiterAlerts:
		m.ResetWaiterAlerts()
		return nil
	}
	return fmt.Errorf("unknown Business edge %s", name)
}

// CategoryMutation represents an operation that mutates the Category nodes in the graph.
type CategoryMutation struct {
	config
	op                Op
	typ               string
	id                *int
	name              *string
	sort_order        *int
	addsort_order     *int
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	business          *int
	clearedbusiness   bool
	menu_items        map[int]struct{}
	removedmenu_items map[int]struct{}
	clearedmenu_items bool
	done              bool
	oldValue          func(context.Context) (*Category, error)
	predicates        []predicate.Category
}

var _ ent.Mutation = (*CategoryMutation)(nil)

// categoryOption allows management of the mutation configuration using functional options.
type categoryOption func(*CategoryMutation)

// newCategoryMutation creates new mutation for the Category entity.
func newCategoryMutation(c config, op Op, opts ...categoryOption) *CategoryMutation {
	m := &CategoryMutation{
		config:        c,
		op:            op,
		typ:           TypeCategory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCategoryID sets the ID field of the mutation.
func withCategoryID(id int) categoryOption {
	return func(m *CategoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Category
		)
		m.oldValue = func(ctx context.Context) (*Category, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Category.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCategory sets the old Category of the mutation.
func withCategory(node *Category) categoryOption {
	return func(m *CategoryMutation) {
		m.oldValue = func(context.Context) (*Category, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CategoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CategoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CategoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CategoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Category.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *CategoryMutation) SetBusinessID(i int) {
	m.business = &i
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *CategoryMutation) BusinessID() (r int, exists bool) {
	v := m.business
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldBusinessID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *CategoryMutation) ResetBusinessID() {
	m.business = nil
}

// SetName sets the "name" field.
func (m *CategoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CategoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CategoryMutation) ResetName() {
	m.name = nil
}

// SetSortOrder sets the "sort_order" field.
func (m *CategoryMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *CategoryMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *CategoryMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *CategoryMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *CategoryMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CategoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CategoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CategoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CategoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CategoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CategoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBusiness clears the "business" edge to the Business entity.
func (m *CategoryMutation) ClearBusiness() {
	m.clearedbusiness = true
	m.clearedFields[category.FieldBusinessID] = struct{}{}
}

// BusinessCleared reports if the "business" edge to the Business entity was cleared.
func (m *CategoryMutation) BusinessCleared() bool {
	return m.clearedbusiness
}

// BusinessIDs returns the "business" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BusinessID instead. It exists only for internal usage by the builders.
func (m *CategoryMutation) BusinessIDs() (ids []int) {
	if id := m.business; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBusiness resets all changes to the "business" edge.
func (m *CategoryMutation) ResetBusiness() {
	m.business = nil
	m.clearedbusiness = false
}

// AddMenuItemIDs adds the "menu_items" edge to the MenuItem entity by ids.
func (m *CategoryMutation) AddMenuItemIDs(ids ...int) {
	if m.menu_items == nil {
		m.menu_items = make(map[int]struct{})
	}
	for i := range ids {
		m.menu_items[ids[i]] = struct{}{}
	}
}

// ClearMenuItems clears the "menu_items" edge to the MenuItem entity.
func (m *CategoryMutation) ClearMenuItems() {
	m.clearedmenu_items = true
}

// MenuItemsCleared reports if the "menu_items" edge to the MenuItem entity was cleared.
func (m *CategoryMutation) MenuItemsCleared() bool {
	return m.clearedmenu_items
}

// RemoveMenuItemIDs removes the "menu_items" edge to the MenuItem entity by IDs.
func (m *CategoryMutation) RemoveMenuItemIDs(ids ...int) {
	if m.removedmenu_items == nil {
		m.removedmenu_items = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.menu_items, ids[i])
		m.removedmenu_items[ids[i]] = struct{}{}
	}
}

// RemovedMenuItems returns the removed IDs of the "menu_items" edge to the MenuItem entity.
func (m *CategoryMutation) RemovedMenuItemsIDs() (ids []int) {
	for id := range m.removedmenu_items {
		ids = append(ids, id)
	}
	return
}

// MenuItemsIDs returns the "menu_items" edge IDs in the mutation.
func (m *CategoryMutation) MenuItemsIDs() (ids []int) {
	for id := range m.menu_items {
		ids = append(ids, id)
	}
	return
}

// ResetMenuItems resets all changes to the "menu_items" edge.
func (m *CategoryMutation) ResetMenuItems() {
	m.menu_items = nil
	m.clearedmenu_items = false
	m.removedmenu_items = nil
}

// Where appends a list predicates to the CategoryMutation builder.
func (m *CategoryMutation) Where(ps ...predicate.Category) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CategoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CategoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Category, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CategoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CategoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Category).
func (m *CategoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CategoryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.business != nil {
		fields = append(fields, category.FieldBusinessID)
	}
	if m.name != nil {
		fields = append(fields, category.FieldName)
	}
	if m.sort_order != nil {
		fields = append(fields, category.FieldSortOrder)
	}
	if m.created_at != nil {
		fields = append(fields, category.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, category.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CategoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case category.FieldBusinessID:
		return m.BusinessID()
	case category.FieldName:
		return m.Name()
	case category.FieldSortOrder:
		return m.SortOrder()
	case category.FieldCreatedAt:
		return m.CreatedAt()
	case category.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CategoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case category.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case category.FieldName:
		return m.OldName(ctx)
	case category.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case category.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case category.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Category field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case category.FieldBusinessID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case category.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case category.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case category.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case category.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Category field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CategoryMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, category.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CategoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case category.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case category.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Category numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CategoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CategoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CategoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Category nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CategoryMutation) ResetField(name string) error {
	switch name {
	case category.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case category.FieldName:
		m.ResetName()
		return nil
	case category.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case category.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case category.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Category field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CategoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.business != nil {
		edges = append(edges, category.EdgeBusiness)
	}
	if m.menu_items != nil {
		edges = append(edges, category.EdgeMenuItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CategoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case category.EdgeBusiness:
		if id := m.business; id != nil {
			return []ent.Value{*id}
		}
	case category.EdgeMenuItems:
		ids := make([]ent.Value, 0, len(m.menu_items))
		for id := range m.menu_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CategoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmenu_items != nil {
		edges = append(edges, category.EdgeMenuItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CategoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case category.EdgeMenuItems:
		ids := make([]ent.Value, 0, len(m.removedmenu_items))
		for id := range m.removedmenu_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CategoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbusiness {
		edges = append(edges, category.EdgeBusiness)
	}
	if m.clearedmenu_items {
		edges = append(edges, category.EdgeMenuItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CategoryMutation) EdgeCleared(name string) bool {
	switch name {
	case category.EdgeBusiness:
		return m.clearedbusiness
	case category.EdgeMenuItems:
		return m.clearedmenu_items
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CategoryMutation) ClearEdge(name string) error {
	switch name {
	case category.EdgeBusiness:
		m.ClearBusiness()
		return nil
	}
	return fmt.Errorf("unknown Category unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CategoryMutation) ResetEdge(name string) error {
	switch name {
	case category.EdgeBusiness:
		m.ResetBusiness()
		return nil
	case category.EdgeMenuItems:
		m.ResetMenuItems()
		return nil
	}
	return fmt.Errorf("unknown Category edge %s", name)
}

// ItemPairFrequencyMutation represents an operation that mutates the ItemPairFrequency nodes in the graph.
type ItemPairFrequencyMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	item_a_id            *int
	additem_a_id         *int
	item_b_id            *int
	additem_b_id         *int
	times_together       *int
	addtimes_together    *int
	confidence           *float64
	addconfidence        *float64
	times_recommended    *int
	addtimes_recommended *int
	times_converted      *int
	addtimes_converted   *int
	revenue_generated    *float64
	addrevenue_generated *float64
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	business             *int
	clearedbusiness      bool
	done                 bool
	oldValue             func(context.Context) (*ItemPairFrequency, error)
	predicates           []predicate.ItemPairFrequency
}

var _ ent.Mutation = (*ItemPairFrequencyMutation)(nil)

// itempairfrequencyOption allows management of the mutation configuration using functional options.
type itempairfrequencyOption func(*ItemPairFrequencyMutation)

// newItemPairFrequencyMutation creates new mutation for the ItemPairFrequency entity.
func newItemPairFrequencyMutation(c config, op Op, opts ...itempairfrequencyOption) *ItemPairFrequencyMutation {
	m := &ItemPairFrequencyMutation{
		config:        c,
		op:            op,
		typ:           TypeItemPairFrequency,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItemPairFrequencyID sets the ID field of the mutation.
func withItemPairFrequencyID(id int) itempairfrequencyOption {
	return func(m *ItemPairFrequencyMutation) {
		var (
			err   error
			once  sync.Once
			value *ItemPairFrequency
		)
		m.oldValue = func(ctx context.Context) (*ItemPairFrequency, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ItemPairFrequency.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItemPairFrequency sets the old ItemPairFrequency of the mutation.
func withItemPairFrequency(node *ItemPairFrequency) itempairfrequencyOption {
	return func(m *ItemPairFrequencyMutation) {
		m.oldValue = func(context.Context) (*ItemPairFrequency, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItemPairFrequencyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItemPairFrequencyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItemPairFrequencyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItemPairFrequencyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ItemPairFrequency.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *ItemPairFrequencyMutation) SetBusinessID(i int) {
	m.business = &i
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *ItemPairFrequencyMutation) BusinessID() (r int, exists bool) {
	v := m.business
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the ItemPairFrequency entity.
// If the ItemPairFrequency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemPairFrequencyMutation) OldBusinessID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *ItemPairFrequencyMutation) ResetBusinessID() {
	m.business = nil
}

// SetItemAID sets the "item_a_id" field.
func (m *ItemPairFrequencyMutation) SetItemAID(i int) {
	m.item_a_id = &i
	m.additem_a_id = nil
}

// ItemAID returns the value of the "item_a_id" field in the mutation.
func (m *ItemPairFrequencyMutation) ItemAID() (r int, exists bool) {
	v := m.item_a_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemAID returns the old "item_a_id" field's value of the ItemPairFrequency entity.
// If the ItemPairFrequency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemPairFrequencyMutation) OldItemAID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemAID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemAID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemAID: %w", err)
	}
	return oldValue.ItemAID, nil
}

// AddItemAID adds i to the "item_a_id" field.
func (m *ItemPairFrequencyMutation) AddItemAID(i int) {
	if m.additem_a_id != nil {
		*m.additem_a_id += i
	} else {
		m.additem_a_id = &i
	}
}

// AddedItemAID returns the value that was added to the "item_a_id" field in this mutation.
func (m *ItemPairFrequencyMutation) AddedItemAID() (r int, exists bool) {
	v := m.additem_a_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemAID resets all changes to the "item_a_id" field.
func (m *ItemPairFrequencyMutation) ResetItemAID() {
	m.item_a_id = nil
	m.additem_a_id = nil
}

// SetItemBID sets the "item_b_id" field.
func (m *ItemPairFrequencyMutation) SetItemBID(i int) {
	m.item_b_id = &i
	m.additem_b_id = nil
}

// ItemBID returns the value of the "item_b_id" field in the mutation.
func (m *ItemPairFrequencyMutation) ItemBID() (r int, exists bool) {
	v := m.item_b_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemBID returns the old "item_b_id" field's value of the ItemPairFrequency entity.
// If the ItemPairFrequency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemPairFrequencyMutation) OldItemBID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemBID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemBID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemBID: %w", err)
	}
	return oldValue.ItemBID, nil
}

// AddItemBID adds i to the "item_b_id" field.
func (m *ItemPairFrequencyMutation) AddItemBID(i int) {
	if m.additem_b_id != nil {
		*m.additem_b_id += i
	} else {
		m.additem_b_id = &i
	}
}

// AddedItemBID returns the value that was added to the "item_b_id" field in this mutation.
func (m *ItemPairFrequencyMutation) AddedItemBID() (r int, exists bool) {
	v := m.additem_b_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemBID resets all changes to the "item_b_id" field.
func (m *ItemPairFrequencyMutation) ResetItemBID() {
	m.item_b_id = nil
	m.additem_b_id = nil
}

// SetTimesTogether sets the "times_together" field.
func (m *ItemPairFrequencyMutation) SetTimesTogether(i int) {
	m.times_together = &i
	m.addtimes_together = nil
}

// TimesTogether returns the value of the "times_together" field in the mutation.
func (m *ItemPairFrequencyMutation) TimesTogether() (r int, exists bool) {
	v := m.times_together
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesTogether returns the old "times_together" field's value of the ItemPairFrequency entity.
// If the ItemPairFrequency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemPairFrequencyMutation) OldTimesTogether(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesTogether is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesTogether requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesTogether: %w", err)
	}
	return oldValue.TimesTogether, nil
}

// AddTimesTogether adds i to the "times_together" field.
func (m *ItemPairFrequencyMutation) AddTimesTogether(i int) {
	if m.addtimes_together != nil {
		*m.addtimes_together += i
	} else {
		m.addtimes_together = &i
	}
}

// AddedTimesTogether returns the value that was added to the "times_together" field in this mutation.
func (m *ItemPairFrequencyMutation) AddedTimesTogether() (r int, exists bool) {
	v := m.addtimes_together
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesTogether resets all changes to the "times_together" field.
func (m *ItemPairFrequencyMutation) ResetTimesTogether() {
	m.times_together = nil
	m.addtimes_together = nil
}

// SetConfidence sets the "confidence" field.
func (m *ItemPairFrequencyMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ItemPairFrequencyMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ItemPairFrequency entity.
// If the ItemPairFrequency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemPairFrequencyMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ItemPairFrequencyMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ItemPairFrequencyMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ItemPairFrequencyMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetTimesRecommended sets the "times_recommended" field.
func (m *ItemPairFrequencyMutation) SetTimesRecommended(i int) {
	m.times_recommended = &i
	m.addtimes_recommended = nil
}

// TimesRecommended returns the value of the "times_recommended" field in the mutation.
func (m *ItemPairFrequencyMutation) TimesRecommended() (r int, exists bool) {
	v := m.times_recommended
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesRecommended returns the old "times_recommended" field's value of the ItemPairFrequency entity.
// If the ItemPairFrequency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemPairFrequencyMutation) OldTimesRecommended(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesRecommended is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesRecommended requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesRecommended: %w", err)
	}
	return oldValue.TimesRecommended, nil
}

// AddTimesRecommended adds i to the "times_recommended" field.
func (m *ItemPairFrequencyMutation) AddTimesRecommended(i int) {
	if m.addtimes_recommended != nil {
		*m.addtimes_recommended += i
	} else {
		m.addtimes_recommended = &i
	}
}

// AddedTimesRecommended returns the value that was added to the "times_recommended" field in this mutation.
func (m *ItemPairFrequencyMutation) AddedTimesRecommended() (r int, exists bool) {
	v := m.addtimes_recommended
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesRecommended resets all changes to the "times_recommended" field.
func (m *ItemPairFrequencyMutation) ResetTimesRecommended() {
	m.times_recommended = nil
	m.addtimes_recommended = nil
}

// SetTimesConverted sets the "times_converted" field.
func (m *ItemPairFrequencyMutation) SetTimesConverted(i int) {
	m.times_converted = &i
	m.addtimes_converted = nil
}

// TimesConverted returns the value of the "times_converted" field in the mutation.
func (m *ItemPairFrequencyMutation) TimesConverted() (r int, exists bool) {
	v := m.times_converted
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesConverted returns the old "times_converted" field's value of the ItemPairFrequency entity.
// If the ItemPairFrequency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemPairFrequencyMutation) OldTimesConverted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesConverted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesConverted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesConverted: %w", err)
	}
	return oldValue.TimesConverted, nil
}

// AddTimesConverted adds i to the "times_converted" field.
func (m *ItemPairFrequencyMutation) AddTimesConverted(i int) {
	if m.addtimes_converted != nil {
		*m.addtimes_converted += i
	} else {
		m.addtimes_converted = &i
	}
}

// AddedTimesConverted returns the value that was added to the "times_converted" field in this mutation.
func (m *ItemPairFrequencyMutation) AddedTimesConverted() (r int, exists bool) {
	v := m.addtimes_converted
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesConverted resets all changes to the "times_converted" field.
func (m *ItemPairFrequencyMutation) ResetTimesConverted() {
	m.times_converted = nil
	m.addtimes_converted = nil
}

// SetRevenueGenerated sets the "revenue_generated" field.
func (m *ItemPairFrequencyMutation) SetRevenueGenerated(f float64) {
	m.revenue_generated = &f
	m.addrevenue_generated = nil
}

// RevenueGenerated returns the value of the "revenue_generated" field in the mutation.
func (m *ItemPairFrequencyMutation) RevenueGenerated() (r float64, exists bool) {
	v := m.revenue_generated
	if v == nil {
		return
	}
	return *v, true
}

// OldRevenueGenerated returns the old "revenue_generated" field's value of the ItemPairFrequency entity.
// If the ItemPairFrequency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemPairFrequencyMutation) OldRevenueGenerated(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevenueGenerated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevenueGenerated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevenueGenerated: %w", err)
	}
	return oldValue.RevenueGenerated, nil
}

// AddRevenueGenerated adds f to the "revenue_generated" field.
func (m *ItemPairFrequencyMutation) AddRevenueGenerated(f float64) {
	if m.addrevenue_generated != nil {
		*m.addrevenue_generated += f
	} else {
		m.addrevenue_generated = &f
	}
}

// AddedRevenueGenerated returns the value that was added to the "revenue_generated" field in this mutation.
func (m *ItemPairFrequencyMutation) AddedRevenueGenerated() (r float64, exists bool) {
	v := m.addrevenue_generated
	if v == nil {
		return
	}
	return *v, true
}

// ResetRevenueGenerated resets all changes to the "revenue_generated" field.
func (m *ItemPairFrequencyMutation) ResetRevenueGenerated() {
	m.revenue_generated = nil
	m.addrevenue_generated = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ItemPairFrequencyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ItemPairFrequencyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ItemPairFrequency entity.
// If the ItemPairFrequency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemPairFrequencyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ItemPairFrequencyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ItemPairFrequencyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ItemPairFrequencyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ItemPairFrequency entity.
// If the ItemPairFrequency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemPairFrequencyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ItemPairFrequencyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBusiness clears the "business" edge to the Business entity.
func (m *ItemPairFrequencyMutation) ClearBusiness() {
	m.clearedbusiness = true
	m.clearedFields[itempairfrequency.FieldBusinessID] = struct{}{}
}

// BusinessCleared reports if the "business" edge to the Business entity was cleared.
func (m *ItemPairFrequencyMutation) BusinessCleared() bool {
	return m.clearedbusiness
}

// BusinessIDs returns the "business" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BusinessID instead. It exists only for internal usage by the builders.
func (m *ItemPairFrequencyMutation) BusinessIDs() (ids []int) {
	if id := m.business; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBusiness resets all changes to the "business" edge.
func (m *ItemPairFrequencyMutation) ResetBusiness() {
	m.business = nil
	m.clearedbusiness = false
}

// Where appends a list predicates to the ItemPairFrequencyMutation builder.
func (m *ItemPairFrequencyMutation) Where(ps ...predicate.ItemPairFrequency) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItemPairFrequencyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItemPairFrequencyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ItemPairFrequency, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItemPairFrequencyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItemPairFrequencyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ItemPairFrequency).
func (m *ItemPairFrequencyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItemPairFrequencyMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.business != nil {
		fields = append(fields, itempairfrequency.FieldBusinessID)
	}
	if m.item_a_id != nil {
		fields = append(fields, itempairfrequency.FieldItemAID)
	}
	if m.item_b_id != nil {
		fields = append(fields, itempairfrequency.FieldItemBID)
	}
	if m.times_together != nil {
		fields = append(fields, itempairfrequency.FieldTimesTogether)
	}
	if m.confidence != nil {
		fields = append(fields, itempairfrequency.FieldConfidence)
	}
	if m.times_recommended != nil {
		fields = append(fields, itempairfrequency.FieldTimesRecommended)
	}
	if m.times_converted != nil {
		fields = append(fields, itempairfrequency.FieldTimesConverted)
	}
	if m.revenue_generated != nil {
		fields = append(fields, itempairfrequency.FieldRevenueGenerated)
	}
	if m.created_at != nil {
		fields = append(fields, itempairfrequency.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, itempairfrequency.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItemPairFrequencyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case itempairfrequency.FieldBusinessID:
		return m.BusinessID()
	case itempairfrequency.FieldItemAID:
		return m.ItemAID()
	case itempairfrequency.FieldItemBID:
		return m.ItemBID()
	case itempairfrequency.FieldTimesTogether:
		return m.TimesTogether()
	case itempairfrequency.FieldConfidence:
		return m.Confidence()
	case itempairfrequency.FieldTimesRecommended:
		return m.TimesRecommended()
	case itempairfrequency.FieldTimesConverted:
		return m.TimesConverted()
	case itempairfrequency.FieldRevenueGenerated:
		return m.RevenueGenerated()
	case itempairfrequency.FieldCreatedAt:
		return m.CreatedAt()
	case itempairfrequency.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItemPairFrequencyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case itempairfrequency.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case itempairfrequency.FieldItemAID:
		return m.OldItemAID(ctx)
	case itempairfrequency.FieldItemBID:
		return m.OldItemBID(ctx)
	case itempairfrequency.FieldTimesTogether:
		return m.OldTimesTogether(ctx)
	case itempairfrequency.FieldConfidence:
		return m.OldConfidence(ctx)
	case itempairfrequency.FieldTimesRecommended:
		return m.OldTimesRecommended(ctx)
	case itempairfrequency.FieldTimesConverted:
		return m.OldTimesConverted(ctx)
	case itempairfrequency.FieldRevenueGenerated:
		return m.OldRevenueGenerated(ctx)
	case itempairfrequency.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case itempairfrequency.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ItemPairFrequency field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemPairFrequencyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case itempairfrequency.FieldBusinessID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case itempairfrequency.FieldItemAID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemAID(v)
		return nil
	case itempairfrequency.FieldItemBID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemBID(v)
		return nil
	case itempairfrequency.FieldTimesTogether:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesTogether(v)
		return nil
	case itempairfrequency.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case itempairfrequency.FieldTimesRecommended:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesRecommended(v)
		return nil
	case itempairfrequency.FieldTimesConverted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesConverted(v)
		return nil
	case itempairfrequency.FieldRevenueGenerated:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevenueGenerated(v)
		return nil
	case itempairfrequency.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case itempairfrequency.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ItemPairFrequency field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItemPairFrequencyMutation) AddedFields() []string {
	var fields []string
	if m.additem_a_id != nil {
		fields = append(fields, itempairfrequency.FieldItemAID)
	}
	if m.additem_b_id != nil {
		fields = append(fields, itempairfrequency.FieldItemBID)
	}
	if m.addtimes_together != nil {
		fields = append(fields, itempairfrequency.FieldTimesTogether)
	}
	if m.addconfidence != nil {
		fields = append(fields, itempairfrequency.FieldConfidence)
	}
	if m.addtimes_recommended != nil {
		fields = append(fields, itempairfrequency.FieldTimesRecommended)
	}
	if m.addtimes_converted != nil {
		fields = append(fields, itempairfrequency.FieldTimesConverted)
	}
	if m.addrevenue_generated != nil {
		fields = append(fields, itempairfrequency.FieldRevenueGenerated)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItemPairFrequencyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case itempairfrequency.FieldItemAID:
		return m.AddedItemAID()
	case itempairfrequency.FieldItemBID:
		return m.AddedItemBID()
	case itempairfrequency.FieldTimesTogether:
		return m.AddedTimesTogether()
	case itempairfrequency.FieldConfidence:
		return m.AddedConfidence()
	case itempairfrequency.FieldTimesRecommended:
		return m.AddedTimesRecommended()
	case itempairfrequency.FieldTimesConverted:
		return m.AddedTimesConverted()
	case itempairfrequency.FieldRevenueGenerated:
		return m.AddedRevenueGenerated()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemPairFrequencyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case itempairfrequency.FieldItemAID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemAID(v)
		return nil
	case itempairfrequency.FieldItemBID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemBID(v)
		return nil
	case itempairfrequency.FieldTimesTogether:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesTogether(v)
		return nil
	case itempairfrequency.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case itempairfrequency.FieldTimesRecommended:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesRecommended(v)
		return nil
	case itempairfrequency.FieldTimesConverted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesConverted(v)
		return nil
	case itempairfrequency.FieldRevenueGenerated:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRevenueGenerated(v)
		return nil
	}
	return fmt.Errorf("unknown ItemPairFrequency numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItemPairFrequencyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItemPairFrequencyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItemPairFrequencyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ItemPairFrequency nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItemPairFrequencyMutation) ResetField(name string) error {
	switch name {
	case itempairfrequency.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case itempairfrequency.FieldItemAID:
		m.ResetItemAID()
		return nil
	case itempairfrequency.FieldItemBID:
		m.ResetItemBID()
		return nil
	case itempairfrequency.FieldTimesTogether:
		m.ResetTimesTogether()
		return nil
	case itempairfrequency.FieldConfidence:
		m.ResetConfidence()
		return nil
	case itempairfrequency.FieldTimesRecommended:
		m.ResetTimesRecommended()
		return nil
	case itempairfrequency.FieldTimesConverted:
		m.ResetTimesConverted()
		return nil
	case itempairfrequency.FieldRevenueGenerated:
		m.ResetRevenueGenerated()
		return nil
	case itempairfrequency.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case itempairfrequency.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ItemPairFrequency field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItemPairFrequencyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.business != nil {
		edges = append(edges, itempairfrequency.EdgeBusiness)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItemPairFrequencyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case itempairfrequency.EdgeBusiness:
		if id := m.business; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItemPairFrequencyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItemPairFrequencyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItemPairFrequencyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbusiness {
		edges = append(edges, itempairfrequency.EdgeBusiness)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItemPairFrequencyMutation) EdgeCleared(name string) bool {
	switch name {
	case itempairfrequency.EdgeBusiness:
		return m.clearedbusiness
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItemPairFrequencyMutation) ClearEdge(name string) error {
	switch name {
	case itempairfrequency.EdgeBusiness:
		m.ClearBusiness()
		return nil
	}
	return fmt.Errorf("unknown ItemPairFrequency unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItemPairFrequencyMutation) ResetEdge(name string) error {
	switch name {
	case itempairfrequency.EdgeBusiness:
		m.ResetBusiness()
		return nil
	}
	return fmt.Errorf("unknown ItemPairFrequency edge %s", name)
}

// MenuItemMutation represents an operation that mutates the MenuItem nodes in the graph.
type MenuItemMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	name                  *string
	description           *string
	price                 *float64
	addprice              *float64
	image_key             *string
	is_available          *bool
	is_vegetarian         *bool
	is_vegan              *bool
	is_gluten_free        *bool
	is_featured           *bool
	is_daily_special      *bool
	spice_level           *menuitem.SpiceLevel
	allergens             *string
	prep_time_minutes     *int
	addprep_time_minutes  *int
	popularity_score      *int
	addpopularity_score   *int
	customization_options *map[string]interface{}
	nutritional_info      *map[string]interface{}
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	category              *int
	clearedcategory       bool
	order_items           map[int]struct{}
	removedorder_items    map[int]struct{}
	clearedorder_items    bool
	done                  bool
	oldValue              func(context.Context) (*MenuItem, error)
	predicates            []predicate.MenuItem
}

var _ ent.Mutation = (*MenuItemMutation)(nil)

// menuitemOption allows management of the mutation configuration using functional options.
type menuitemOption func(*MenuItemMutation)

// newMenuItemMutation creates new mutation for the MenuItem entity.
func newMenuItemMutation(c config, op Op, opts ...menuitemOption) *MenuItemMutation {
	m := &MenuItemMutation{
		config:        c,
		op:            op,
		typ:           TypeMenuItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMenuItemID sets the ID field of the mutation.
func withMenuItemID(id int) menuitemOption {
	return func(m *MenuItemMutation) {
		var (
			err   error
			once  sync.Once
			value *MenuItem
		)
		m.oldValue = func(ctx context.Context) (*MenuItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MenuItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMenuItem sets the old MenuItem of the mutation.
func withMenuItem(node *MenuItem) menuitemOption {
	return func(m *MenuItemMutation) {
		m.oldValue = func(context.Context) (*MenuItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MenuItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MenuItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MenuItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MenuItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MenuItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCategoryID sets the "category_id" field.
func (m *MenuItemMutation) SetCategoryID(i int) {
	m.category = &i
}

// CategoryID returns the value of the "category_id" field in the mutation.
func (m *MenuItemMutation) CategoryID() (r int, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryID returns the old "category_id" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldCategoryID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryID: %w", err)
	}
	return oldValue.CategoryID, nil
}

// ResetCategoryID resets all changes to the "category_id" field.
func (m *MenuItemMutation) ResetCategoryID() {
	m.category = nil
}

// SetName sets the "name" field.
func (m *MenuItemMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MenuItemMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MenuItemMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *MenuItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MenuItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *MenuItemMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[menuitem.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *MenuItemMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *MenuItemMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, menuitem.FieldDescription)
}

// SetPrice sets the "price" field.
func (m *MenuItemMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *MenuItemMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *MenuItemMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *MenuItemMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *MenuItemMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetImageKey sets the "image_key" field.
func (m *MenuItemMutation) SetImageKey(s string) {
	m.image_key = &s
}

// ImageKey returns the value of the "image_key" field in the mutation.
func (m *MenuItemMutation) ImageKey() (r string, exists bool) {
	v := m.image_key
	if v == nil {
		return
	}
	return *v, true
}

// OldImageKey returns the old "image_key" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldImageKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageKey: %w", err)
	}
	return oldValue.ImageKey, nil
}

// ClearImageKey clears the value of the "image_key" field.
func (m *MenuItemMutation) ClearImageKey() {
	m.image_key = nil
	m.clearedFields[menuitem.FieldImageKey] = struct{}{}
}

// ImageKeyCleared returns if the "image_key" field was cleared in this mutation.
func (m *MenuItemMutation) ImageKeyCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldImageKey]
	return ok
}

// ResetImageKey resets all changes to the "image_key" field.
func (m *MenuItemMutation) ResetImageKey() {
	m.image_key = nil
	delete(m.clearedFields, menuitem.FieldImageKey)
}

// SetIsAvailable sets the "is_available" field.
func (m *MenuItemMutation) SetIsAvailable(b bool) {
	m.is_available = &b
}

// IsAvailable returns the value of the "is_available" field in the mutation.
func (m *MenuItemMutation) IsAvailable() (r bool, exists bool) {
	v := m.is_available
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAvailable returns the old "is_available" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldIsAvailable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAvailable: %w", err)
	}
	return oldValue.IsAvailable, nil
}

// ResetIsAvailable resets all changes to the "is_available" field.
func (m *MenuItemMutation) ResetIsAvailable() {
	m.is_available = nil
}

// SetIsVegetarian sets the "is_vegetarian" field.
func (m *MenuItemMutation) SetIsVegetarian(b bool) {
	m.is_vegetarian = &b
}

// IsVegetarian returns the value of the "is_vegetarian" field in the mutation.
func (m *MenuItemMutation) IsVegetarian() (r bool, exists bool) {
	v := m.is_vegetarian
	if v == nil {
		return
	}
	return *v, true
}

// OldIsVegetarian returns the old "is_vegetarian" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldIsVegetarian(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsVegetarian is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsVegetarian requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsVegetarian: %w", err)
	}
	return oldValue.IsVegetarian, nil
}

// ResetIsVegetarian resets all changes to the "is_vegetarian" field.
func (m *MenuItemMutation) ResetIsVegetarian() {
	m.is_vegetarian = nil
}

// SetIsVegan sets the "is_vegan" field.
func (m *MenuItemMutation) SetIsVegan(b bool) {
	m.is_vegan = &b
}

// IsVegan returns the value of the "is_vegan" field in the mutation.
func (m *MenuItemMutation) IsVegan() (r bool, exists bool) {
	v := m.is_vegan
	if v == nil {
		return
	}
	return *v, true
}

// OldIsVegan returns the old "is_vegan" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldIsVegan(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsVegan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsVegan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsVegan: %w", err)
	}
	return oldValue.IsVegan, nil
}

// ResetIsVegan resets all changes to the "is_vegan" field.
func (m *MenuItemMutation) ResetIsVegan() {
	m.is_vegan = nil
}

// SetIsGlutenFree sets the "is_gluten_free" field.
func (m *MenuItemMutation) SetIsGlutenFree(b bool) {
	m.is_gluten_free = &b
}

// IsGlutenFree returns the value of the "is_gluten_free" field in the mutation.
func (m *MenuItemMutation) IsGlutenFree() (r bool, exists bool) {
	v := m.is_gluten_free
	if v == nil {
		return
	}
	return *v, true
}

// OldIsGlutenFree returns the old "is_gluten_free" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldIsGlutenFree(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsGlutenFree is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsGlutenFree requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsGlutenFree: %w", err)
	}
	return oldValue.IsGlutenFree, nil
}

// ResetIsGlutenFree resets all changes to the "is_gluten_free" field.
func (m *MenuItemMutation) ResetIsGlutenFree() {
	m.is_gluten_free = nil
}

// SetIsFeatured sets the "is_featured" field.
func (m *MenuItemMutation) SetIsFeatured(b bool) {
	m.is_featured = &b
}

// IsFeatured returns the value of the "is_featured" field in the mutation.
func (m *MenuItemMutation) IsFeatured() (r bool, exists bool) {
	v := m.is_featured
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFeatured returns the old "is_featured" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldIsFeatured(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFeatured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFeatured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFeatured: %w", err)
	}
	return oldValue.IsFeatured, nil
}

// ResetIsFeatured resets all changes to the "is_featured" field.
func (m *MenuItemMutation) ResetIsFeatured() {
	m.is_featured = nil
}

// SetIsDailySpecial sets the "is_daily_special" field.
func (m *MenuItemMutation) SetIsDailySpecial(b bool) {
	m.is_daily_special = &b
}

// IsDailySpecial returns the value of the "is_daily_special" field in the mutation.
func (m *MenuItemMutation) IsDailySpecial() (r bool, exists bool) {
	v := m.is_daily_special
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDailySpecial returns the old "is_daily_special" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldIsDailySpecial(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDailySpecial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDailySpecial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDailySpecial: %w", err)
	}
	return oldValue.IsDailySpecial, nil
}

// ResetIsDailySpecial resets all changes to the "is_daily_special" field.
func (m *MenuItemMutation) ResetIsDailySpecial() {
	m.is_daily_special = nil
}

// SetSpiceLevel sets the "spice_level" field.
func (m *MenuItemMutation) SetSpiceLevel(ml menuitem.SpiceLevel) {
	m.spice_level = &ml
}

// SpiceLevel returns the value of the "spice_level" field in the mutation.
func (m *MenuItemMutation) SpiceLevel() (r menuitem.SpiceLevel, exists bool) {
	v := m.spice_level
	if v == nil {
		return
	}
	return *v, true
}

// OldSpiceLevel returns the old "spice_level" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldSpiceLevel(ctx context.Context) (v menuitem.SpiceLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpiceLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpiceLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpiceLevel: %w", err)
	}
	return oldValue.SpiceLevel, nil
}

// ResetSpiceLevel resets all changes to the "spice_level" field.
func (m *MenuItemMutation) ResetSpiceLevel() {
	m.spice_level = nil
}

// SetAllergens sets the "allergens" field.
func (m *MenuItemMutation) SetAllergens(s string) {
	m.allergens = &s
}

// Allergens returns the value of the "allergens" field in the mutation.
func (m *MenuItemMutation) Allergens() (r string, exists bool) {
	v := m.allergens
	if v == nil {
		return
	}
	return *v, true
}

// OldAllergens returns the old "allergens" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldAllergens(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllergens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllergens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllergens: %w", err)
	}
	return oldValue.Allergens, nil
}

// ClearAllergens clears the value of the "allergens" field.
func (m *MenuItemMutation) ClearAllergens() {
	m.allergens = nil
	m.clearedFields[menuitem.FieldAllergens] = struct{}{}
}

// AllergensCleared returns if the "allergens" field was cleared in this mutation.
func (m *MenuItemMutation) AllergensCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldAllergens]
	return ok
}

// ResetAllergens resets all changes to the "allergens" field.
func (m *MenuItemMutation) ResetAllergens() {
	m.allergens = nil
	delete(m.clearedFields, menuitem.FieldAllergens)
}

// SetPrepTimeMinutes sets the "prep_time_minutes" field.
func (m *MenuItemMutation) SetPrepTimeMinutes(i int) {
	m.prep_time_minutes = &i
	m.addprep_time_minutes = nil
}

// PrepTimeMinutes returns the value of the "prep_time_minutes" field in the mutation.
func (m *MenuItemMutation) PrepTimeMinutes() (r int, exists bool) {
	v := m.prep_time_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldPrepTimeMinutes returns the old "prep_time_minutes" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldPrepTimeMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrepTimeMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrepTimeMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrepTimeMinutes: %w", err)
	}
	return oldValue.PrepTimeMinutes, nil
}

// AddPrepTimeMinutes adds i to the "prep_time_minutes" field.
func (m *MenuItemMutation) AddPrepTimeMinutes(i int) {
	if m.addprep_time_minutes != nil {
		*m.addprep_time_minutes += i
	} else {
		m.addprep_time_minutes = &i
	}
}

// AddedPrepTimeMinutes returns the value that was added to the "prep_time_minutes" field in this mutation.
func (m *MenuItemMutation) AddedPrepTimeMinutes() (r int, exists bool) {
	v := m.addprep_time_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrepTimeMinutes resets all changes to the "prep_time_minutes" field.
func (m *MenuItemMutation) ResetPrepTimeMinutes() {
	m.prep_time_minutes = nil
	m.addprep_time_minutes = nil
}

// SetPopularityScore sets the "popularity_score" field.
func (m *MenuItemMutation) SetPopularityScore(i int) {
	m.popularity_score = &i
	m.addpopularity_score = nil
}

// PopularityScore returns the value of the "popularity_score" field in the mutation.
func (m *MenuItemMutation) PopularityScore() (r int, exists bool) {
	v := m.popularity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPopularityScore returns the old "popularity_score" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldPopularityScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPopularityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPopularityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPopularityScore: %w", err)
	}
	return oldValue.PopularityScore, nil
}

// AddPopularityScore adds i to the "popularity_score" field.
func (m *MenuItemMutation) AddPopularityScore(i int) {
	if m.addpopularity_score != nil {
		*m.addpopularity_score += i
	} else {
		m.addpopularity_score = &i
	}
}

// AddedPopularityScore returns the value that was added to the "popularity_score" field in this mutation.
func (m *MenuItemMutation) AddedPopularityScore() (r int, exists bool) {
	v := m.addpopularity_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPopularityScore resets all changes to the "popularity_score" field.
func (m *MenuItemMutation) ResetPopularityScore() {
	m.popularity_score = nil
	m.addpopularity_score = nil
}

// SetCustomizationOptions sets the "customization_options" field.
func (m *MenuItemMutation) SetCustomizationOptions(value map[string]interface{}) {
	m.customization_options = &value
}

// CustomizationOptions returns the value of the "customization_options" field in the mutation.
func (m *MenuItemMutation) CustomizationOptions() (r map[string]interface{}, exists bool) {
	v := m.customization_options
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomizationOptions returns the old "customization_options" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldCustomizationOptions(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomizationOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomizationOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomizationOptions: %w", err)
	}
	return oldValue.CustomizationOptions, nil
}

// ClearCustomizationOptions clears the value of the "customization_options" field.
func (m *MenuItemMutation) ClearCustomizationOptions() {
	m.customization_options = nil
	m.clearedFields[menuitem.FieldCustomizationOptions] = struct{}{}
}

// CustomizationOptionsCleared returns if the "customization_options" field was cleared in this mutation.
func (m *MenuItemMutation) CustomizationOptionsCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldCustomizationOptions]
	return ok
}

// ResetCustomizationOptions resets all changes to the "customization_options" field.
func (m *MenuItemMutation) ResetCustomizationOptions() {
	m.customization_options = nil
	delete(m.clearedFields, menuitem.FieldCustomizationOptions)
}

// SetNutritionalInfo sets the "nutritional_info" field.
func (m *MenuItemMutation) SetNutritionalInfo(value map[string]interface{}) {
	m.nutritional_info = &value
}

// NutritionalInfo returns the value of the "nutritional_info" field in the mutation.
func (m *MenuItemMutation) NutritionalInfo() (r map[string]interface{}, exists bool) {
	v := m.nutritional_info
	if v == nil {
		return
	}
	return *v, true
}

// OldNutritionalInfo returns the old "nutritional_info" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldNutritionalInfo(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNutritionalInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNutritionalInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNutritionalInfo: %w", err)
	}
	return oldValue.NutritionalInfo, nil
}

// ClearNutritionalInfo clears the value of the "nutritional_info" field.
func (m *MenuItemMutation) ClearNutritionalInfo() {
	m.nutritional_info = nil
	m.clearedFields[menuitem.FieldNutritionalInfo] = struct{}{}
}

// NutritionalInfoCleared returns if the "nutritional_info" field was cleared in this mutation.
func (m *MenuItemMutation) NutritionalInfoCleared() bool {
	_, ok := m.clearedFields[menuitem.FieldNutritionalInfo]
	return ok
}

// ResetNutritionalInfo resets all changes to the "nutritional_info" field.
func (m *MenuItemMutation) ResetNutritionalInfo() {
	m.nutritional_info = nil
	delete(m.clearedFields, menuitem.FieldNutritionalInfo)
}

// SetCreatedAt sets the "created_at" field.
func (m *MenuItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MenuItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MenuItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MenuItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MenuItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MenuItem entity.
// If the MenuItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MenuItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MenuItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCategory clears the "category" edge to the Category entity.
func (m *MenuItemMutation) ClearCategory() {
	m.clearedcategory = true
	m.clearedFields[menuitem.FieldCategoryID] = struct{}{}
}

// CategoryCleared reports if the "category" edge to the Category entity was cleared.
func (m *MenuItemMutation) CategoryCleared() bool {
	return m.clearedcategory
}

// CategoryIDs returns the "category" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CategoryID instead. It exists only for internal usage by the builders.
func (m *MenuItemMutation) CategoryIDs() (ids []int) {
	if id := m.category; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCategory resets all changes to the "category" edge.
func (m *MenuItemMutation) ResetCategory() {
	m.category = nil
	m.clearedcategory = false
}

// AddOrderItemIDs adds the "order_items" edge to the OrderItem entity by ids.
func (m *MenuItemMutation) AddOrderItemIDs(ids ...int) {
	if m.order_items == nil {
		m.order_items = make(map[int]struct{})
	}
	for i := range ids {
		m.order_items[ids[i]] = struct{}{}
	}
}

// ClearOrderItems clears the "order_items" edge to the OrderItem entity.
func (m *MenuItemMutation) ClearOrderItems() {
	m.clearedorder_items = true
}

// OrderItemsCleared reports if the "order_items" edge to the OrderItem entity was cleared.
func (m *MenuItemMutation) OrderItemsCleared() bool {
	return m.clearedorder_items
}

// RemoveOrderItemIDs removes the "order_items" edge to the OrderItem entity by IDs.
func (m *MenuItemMutation) RemoveOrderItemIDs(ids ...int) {
	if m.removedorder_items == nil {
		m.removedorder_items = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.order_items, ids[i])
		m.removedorder_items[ids[i]] = struct{}{}
	}
}

// RemovedOrderItems returns the removed IDs of the "order_items" edge to the OrderItem entity.
func (m *MenuItemMutation) RemovedOrderItemsIDs() (ids []int) {
	for id := range m.removedorder_items {
		ids = append(ids, id)
	}
	return
}

// OrderItemsIDs returns the "order_items" edge IDs in the mutation.
func (m *MenuItemMutation) OrderItemsIDs() (ids []int) {
	for id := range m.order_items {
		ids = append(ids, id)
	}
	return
}

// ResetOrderItems resets all changes to the "order_items" edge.
func (m *MenuItemMutation) ResetOrderItems() {
	m.order_items = nil
	m.clearedorder_items = false
	m.removedorder_items = nil
}

// Where appends a list predicates to the MenuItemMutation builder.
func (m *MenuItemMutation) Where(ps ...predicate.MenuItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MenuItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MenuItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MenuItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MenuItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MenuItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MenuItem).
func (m *MenuItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MenuItemMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.category != nil {
		fields = append(fields, menuitem.FieldCategoryID)
	}
	if m.name != nil {
		fields = append(fields, menuitem.FieldName)
	}
	if m.description != nil {
		fields = append(fields, menuitem.FieldDescription)
	}
	if m.price != nil {
		fields = append(fields, menuitem.FieldPrice)
	}
	if m.image_key != nil {
		fields = append(fields, menuitem.FieldImageKey)
	}
	if m.is_available != nil {
		fields = append(fields, menuitem.FieldIsAvailable)
	}
	if m.is_vegetarian != nil {
		fields = append(fields, menuitem.FieldIsVegetarian)
	}
	if m.is_vegan != nil {
		fields = append(fields, menuitem.FieldIsVegan)
	}
	if m.is_gluten_free != nil {
		fields = append(fields, menuitem.FieldIsGlutenFree)
	}
	if m.is_featured != nil {
		fields = append(fields, menuitem.FieldIsFeatured)
	}
	if m.is_daily_special != nil {
		fields = append(fields, menuitem.FieldIsDailySpecial)
	}
	if m.spice_level != nil {
		fields = append(fields, menuitem.FieldSpiceLevel)
	}
	if m.allergens != nil {
		fields = append(fields, menuitem.FieldAllergens)
	}
	if m.prep_time_minutes != nil {
		fields = append(fields, menuitem.FieldPrepTimeMinutes)
	}
	if m.popularity_score != nil {
		fields = append(fields, menuitem.FieldPopularityScore)
	}
	if m.customization_options != nil {
		fields = append(fields, menuitem.FieldCustomizationOptions)
	}
	if m.nutritional_info != nil {
		fields = append(fields, menuitem.FieldNutritionalInfo)
	}
	if m.created_at != nil {
		fields = append(fields, menuitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, menuitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MenuItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case menuitem.FieldCategoryID:
		return m.CategoryID()
	case menuitem.FieldName:
		return m.Name()
	case menuitem.FieldDescription:
		return m.Description()
	case menuitem.FieldPrice:
		return m.Price()
	case menuitem.FieldImageKey:
		return m.ImageKey()
	case menuitem.FieldIsAvailable:
		return m.IsAvailable()
	case menuitem.FieldIsVegetarian:
		return m.IsVegetarian()
	case menuitem.FieldIsVegan:
		return m.IsVegan()
	case menuitem.FieldIsGlutenFree:
		return m.IsGlutenFree()
	case menuitem.FieldIsFeatured:
		return m.IsFeatured()
	case menuitem.FieldIsDailySpecial:
		return m.IsDailySpecial()
	case menuitem.FieldSpiceLevel:
		return m.SpiceLevel()
	case menuitem.FieldAllergens:
		return m.Allergens()
	case menuitem.FieldPrepTimeMinutes:
		return m.PrepTimeMinutes()
	case menuitem.FieldPopularityScore:
		return m.PopularityScore()
	case menuitem.FieldCustomizationOptions:
		return m.CustomizationOptions()
	case menuitem.FieldNutritionalInfo:
		return m.NutritionalInfo()
	case menuitem.FieldCreatedAt:
		return m.CreatedAt()
	case menuitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MenuItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case menuitem.FieldCategoryID:
		return m.OldCategoryID(ctx)
	case menuitem.FieldName:
		return m.OldName(ctx)
	case menuitem.FieldDescription:
		return m.OldDescription(ctx)
	case menuitem.FieldPrice:
		return m.OldPrice(ctx)
	case menuitem.FieldImageKey:
		return m.OldImageKey(ctx)
	case menuitem.FieldIsAvailable:
		return m.OldIsAvailable(ctx)
	case menuitem.FieldIsVegetarian:
		return m.OldIsVegetarian(ctx)
	case menuitem.FieldIsVegan:
		return m.OldIsVegan(ctx)
	case menuitem.FieldIsGlutenFree:
		return m.OldIsGlutenFree(ctx)
	case menuitem.FieldIsFeatured:
		return m.OldIsFeatured(ctx)
	case menuitem.FieldIsDailySpecial:
		return m.OldIsDailySpecial(ctx)
	case menuitem.FieldSpiceLevel:
		return m.OldSpiceLevel(ctx)
	case menuitem.FieldAllergens:
		return m.OldAllergens(ctx)
	case menuitem.FieldPrepTimeMinutes:
		return m.OldPrepTimeMinutes(ctx)
	case menuitem.FieldPopularityScore:
		return m.OldPopularityScore(ctx)
	case menuitem.FieldCustomizationOptions:
		return m.OldCustomizationOptions(ctx)
	case menuitem.FieldNutritionalInfo:
		return m.OldNutritionalInfo(ctx)
	case menuitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case menuitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MenuItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MenuItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case menuitem.FieldCategoryID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryID(v)
		return nil
	case menuitem.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case menuitem.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case menuitem.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case menuitem.FieldImageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageKey(v)
		return nil
	case menuitem.FieldIsAvailable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAvailable(v)
		return nil
	case menuitem.FieldIsVegetarian:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsVegetarian(v)
		return nil
	case menuitem.FieldIsVegan:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsVegan(v)
		return nil
	case menuitem.FieldIsGlutenFree:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsGlutenFree(v)
		return nil
	case menuitem.FieldIsFeatured:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFeatured(v)
		return nil
	case menuitem.FieldIsDailySpecial:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDailySpecial(v)
		return nil
	case menuitem.FieldSpiceLevel:
		v, ok := value.(menuitem.SpiceLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpiceLevel(v)
		return nil
	case menuitem.FieldAllergens:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllergens(v)
		return nil
	case menuitem.FieldPrepTimeMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrepTimeMinutes(v)
		return nil
	case menuitem.FieldPopularityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPopularityScore(v)
		return nil
	case menuitem.FieldCustomizationOptions:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomizationOptions(v)
		return nil
	case menuitem.FieldNutritionalInfo:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNutritionalInfo(v)
		return nil
	case menuitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case menuitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MenuItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MenuItemMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, menuitem.FieldPrice)
	}
	if m.addprep_time_minutes != nil {
		fields = append(fields, menuitem.FieldPrepTimeMinutes)
	}
	if m.addpopularity_score != nil {
		fields = append(fields, menuitem.FieldPopularityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MenuItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case menuitem.FieldPrice:
		return m.AddedPrice()
	case menuitem.FieldPrepTimeMinutes:
		return m.AddedPrepTimeMinutes()
	case menuitem.FieldPopularityScore:
		return m.AddedPopularityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MenuItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case menuitem.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	case menuitem.FieldPrepTimeMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrepTimeMinutes(v)
		return nil
	case menuitem.FieldPopularityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPopularityScore(v)
		return nil
	}
	return fmt.Errorf("unknown MenuItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MenuItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(menuitem.FieldDescription) {
		fields = append(fields, menuitem.FieldDescription)
	}
	if m.FieldCleared(menuitem.FieldImageKey) {
		fields = append(fields, menuitem.FieldImageKey)
	}
	if m.FieldCleared(menuitem.FieldAllergens) {
		fields = append(fields, menuitem.FieldAllergens)
	}
	if m.FieldCleared(menuitem.FieldCustomizationOptions) {
		fields = append(fields, menuitem.FieldCustomizationOptions)
	}
	if m.FieldCleared(menuitem.FieldNutritionalInfo) {
		fields = append(fields, menuitem.FieldNutritionalInfo)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MenuItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MenuItemMutation) ClearField(name string) error {
	switch name {
	case menuitem.FieldDescription:
		m.ClearDescription()
		return nil
	case menuitem.FieldImageKey:
		m.ClearImageKey()
		return nil
	case menuitem.FieldAllergens:
		m.ClearAllergens()
		return nil
	case menuitem.FieldCustomizationOptions:
		m.ClearCustomizationOptions()
		return nil
	case menuitem.FieldNutritionalInfo:
		m.ClearNutritionalInfo()
		return nil
	}
	return fmt.Errorf("unknown MenuItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MenuItemMutation) ResetField(name string) error {
	switch name {
	case menuitem.FieldCategoryID:
		m.ResetCategoryID()
		return nil
	case menuitem.FieldName:
		m.ResetName()
		return nil
	case menuitem.FieldDescription:
		m.ResetDescription()
		return nil
	case menuitem.FieldPrice:
		m.ResetPrice()
		return nil
	case menuitem.FieldImageKey:
		m.ResetImageKey()
		return nil
	case menuitem.FieldIsAvailable:
		m.ResetIsAvailable()
		return nil
	case menuitem.FieldIsVegetarian:
		m.ResetIsVegetarian()
		return nil
	case menuitem.FieldIsVegan:
		m.ResetIsVegan()
		return nil
	case menuitem.FieldIsGlutenFree:
		m.ResetIsGlutenFree()
		return nil
	case menuitem.FieldIsFeatured:
		m.ResetIsFeatured()
		return nil
	case menuitem.FieldIsDailySpecial:
		m.ResetIsDailySpecial()
		return nil
	case menuitem.FieldSpiceLevel:
		m.ResetSpiceLevel()
		return nil
	case menuitem.FieldAllergens:
		m.ResetAllergens()
		return nil
	case menuitem.FieldPrepTimeMinutes:
		m.ResetPrepTimeMinutes()
		return nil
	case menuitem.FieldPopularityScore:
		m.ResetPopularityScore()
		return nil
	case menuitem.FieldCustomizationOptions:
		m.ResetCustomizationOptions()
		return nil
	case menuitem.FieldNutritionalInfo:
		m.ResetNutritionalInfo()
		return nil
	case menuitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case menuitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MenuItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MenuItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.category != nil {
		edges = append(edges, menuitem.EdgeCategory)
	}
	if m.order_items != nil {
		edges = append(edges, menuitem.EdgeOrderItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MenuItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case menuitem.EdgeCategory:
		if id := m.category; id != nil {
			return []ent.Value{*id}
		}
	case menuitem.EdgeOrderItems:
		ids := make([]ent.Value, 0, len(m.order_items))
		for id := range m.order_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MenuItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedorder_items != nil {
		edges = append(edges, menuitem.EdgeOrderItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MenuItemMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case menuitem.EdgeOrderItems:
		ids := make([]ent.Value, 0, len(m.removedorder_items))
		for id := range m.removedorder_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MenuItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcategory {
		edges = append(edges, menuitem.EdgeCategory)
	}
	if m.clearedorder_items {
		edges = append(edges, menuitem.EdgeOrderItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MenuItemMutation) EdgeCleared(name string) bool {
	switch name {
	case menuitem.EdgeCategory:
		return m.clearedcategory
	case menuitem.EdgeOrderItems:
		return m.clearedorder_items
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MenuItemMutation) ClearEdge(name string) error {
	switch name {
	case menuitem.EdgeCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown MenuItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MenuItemMutation) ResetEdge(name string) error {
	switch name {
	case menuitem.EdgeCategory:
		m.ResetCategory()
		return nil
	case menuitem.EdgeOrderItems:
		m.ResetOrderItems()
		return nil
	}
	return fmt.Errorf("unknown MenuItem edge %s", name)
}

// OrderMutation represents an operation that mutates the Order nodes in the graph.
type OrderMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	location             *string
	status               *order.Status
	payment_method       *order.PaymentMethod
	payment_status       *order.PaymentStatus
	subtotal             *float64
	addsubtotal          *float64
	tax_amount           *float64
	addtax_amount        *float64
	tip_amount           *float64
	addtip_amount        *float64
	total_price          *float64
	addtotal_price       *float64
	special_requests     *string
	items_snapshot       *[]map[string]interface{}
	appenditems_snapshot []map[string]interface{}
	status_changed_at    *time.Time
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	business             *int
	clearedbusiness      bool
	table                *int
	clearedtable         bool
	items                map[int]struct{}
	removeditems         map[int]struct{}
	cleareditems         bool
	done                 bool
	oldValue             func(context.Context) (*Order, error)
	predicates           []predicate.Order
}

var _ ent.Mutation = (*OrderMutation)(nil)

// orderOption allows management of the mutation configuration using functional options.
type orderOption func(*OrderMutation)

// newOrderMutation creates new mutation for the Order entity.
func newOrderMutation(c config, op Op, opts ...orderOption) *OrderMutation {
	m := &OrderMutation{
		config:        c,
		op:            op,
		typ:           TypeOrder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderID sets the ID field of the mutation.
func withOrderID(id uuid.UUID) orderOption {
	return func(m *OrderMutation) {
		var (
			err   error
			once  sync.Once
			value *Order
		)
		m.oldValue = func(ctx context.Context) (*Order, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Order.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrder sets the old Order of the mutation.
func withOrder(node *Order) orderOption {
	return func(m *OrderMutation) {
		m.oldValue = func(context.Context) (*Order, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Order entities.
func (m *OrderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Order.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *OrderMutation) SetBusinessID(i int) {
	m.business = &i
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *OrderMutation) BusinessID() (r int, exists bool) {
	v := m.business
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldBusinessID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *OrderMutation) ResetBusinessID() {
	m.business = nil
}

// SetLocation sets the "location" field.
func (m *OrderMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *OrderMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ResetLocation resets all changes to the "location" field.
func (m *OrderMutation) ResetLocation() {
	m.location = nil
}

// SetTableID sets the "table_id" field.
func (m *OrderMutation) SetTableID(i int) {
	m.table = &i
}

// TableID returns the value of the "table_id" field in the mutation.
func (m *OrderMutation) TableID() (r int, exists bool) {
	v := m.table
	if v == nil {
		return
	}
	return *v, true
}

// OldTableID returns the old "table_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldTableID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableID: %w", err)
	}
	return oldValue.TableID, nil
}

// ClearTableID clears the value of the "table_id" field.
func (m *OrderMutation) ClearTableID() {
	m.table = nil
	m.clearedFields[order.FieldTableID] = struct{}{}
}

// TableIDCleared returns if the "table_id" field was cleared in this mutation.
func (m *OrderMutation) TableIDCleared() bool {
	_, ok := m.clearedFields[order.FieldTableID]
	return ok
}

// ResetTableID resets all changes to the "table_id" field.
func (m *OrderMutation) ResetTableID() {
	m.table = nil
	delete(m.clearedFields, order.FieldTableID)
}

// SetStatus sets the "status" field.
func (m *OrderMutation) SetStatus(o order.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OrderMutation) Status() (r order.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldStatus(ctx context.Context) (v order.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OrderMutation) ResetStatus() {
	m.status = nil
}

// SetPaymentMethod sets the "payment_method" field.
func (m *OrderMutation) SetPaymentMethod(om order.PaymentMethod) {
	m.payment_method = &om
}

// PaymentMethod returns the value of the "payment_method" field in the mutation.
func (m *OrderMutation) PaymentMethod() (r order.PaymentMethod, exists bool) {
	v := m.payment_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMethod returns the old "payment_method" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldPaymentMethod(ctx context.Context) (v order.PaymentMethod, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMethod: %w", err)
	}
	return oldValue.PaymentMethod, nil
}

// ResetPaymentMethod resets all changes to the "payment_method" field.
func (m *OrderMutation) ResetPaymentMethod() {
	m.payment_method = nil
}

// SetPaymentStatus sets the "payment_status" field.
func (m *OrderMutation) SetPaymentStatus(os order.PaymentStatus) {
	m.payment_status = &os
}

// PaymentStatus returns the value of the "payment_status" field in the mutation.
func (m *OrderMutation) PaymentStatus() (r order.PaymentStatus, exists bool) {
	v := m.payment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentStatus returns the old "payment_status" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldPaymentStatus(ctx context.Context) (v order.PaymentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentStatus: %w", err)
	}
	return oldValue.PaymentStatus, nil
}

// ResetPaymentStatus resets all changes to the "payment_status" field.
func (m *OrderMutation) ResetPaymentStatus() {
	m.payment_status = nil
}

// SetSubtotal sets the "subtotal" field.
func (m *OrderMutation) SetSubtotal(f float64) {
	m.subtotal = &f
	m.addsubtotal = nil
}

// Subtotal returns the value of the "subtotal" field in the mutation.
func (m *OrderMutation) Subtotal() (r float64, exists bool) {
	v := m.subtotal
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtotal returns the old "subtotal" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldSubtotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtotal: %w", err)
	}
	return oldValue.Subtotal, nil
}

// AddSubtotal adds f to the "subtotal" field.
func (m *OrderMutation) AddSubtotal(f float64) {
	if m.addsubtotal != nil {
		*m.addsubtotal += f
	} else {
		m.addsubtotal = &f
	}
}

// AddedSubtotal returns the value that was added to the "subtotal" field in this mutation.
func (m *OrderMutation) AddedSubtotal() (r float64, exists bool) {
	v := m.addsubtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubtotal resets all changes to the "subtotal" field.
func (m *OrderMutation) ResetSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
}

// SetTaxAmount sets the "tax_amount" field.
func (m *OrderMutation) SetTaxAmount(f float64) {
	m.tax_amount = &f
	m.addtax_amount = nil
}

// TaxAmount returns the value of the "tax_amount" field in the mutation.
func (m *OrderMutation) TaxAmount() (r float64, exists bool) {
	v := m.tax_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxAmount returns the old "tax_amount" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldTaxAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxAmount: %w", err)
	}
	return oldValue.TaxAmount, nil
}

// AddTaxAmount adds f to the "tax_amount" field.
func (m *OrderMutation) AddTaxAmount(f float64) {
	if m.addtax_amount != nil {
		*m.addtax_amount += f
	} else {
		m.addtax_amount = &f
	}
}

// AddedTaxAmount returns the value that was added to the "tax_amount" field in this mutation.
func (m *OrderMutation) AddedTaxAmount() (r float64, exists bool) {
	v := m.addtax_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaxAmount resets all changes to the "tax_amount" field.
func (m *OrderMutation) ResetTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
}

// SetTipAmount sets the "tip_amount" field.
func (m *OrderMutation) SetTipAmount(f float64) {
	m.tip_amount = &f
	m.addtip_amount = nil
}

// TipAmount returns the value of the "tip_amount" field in the mutation.
func (m *OrderMutation) TipAmount() (r float64, exists bool) {
	v := m.tip_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTipAmount returns the old "tip_amount" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldTipAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTipAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTipAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTipAmount: %w", err)
	}
	return oldValue.TipAmount, nil
}

// AddTipAmount adds f to the "tip_amount" field.
func (m *OrderMutation) AddTipAmount(f float64) {
	if m.addtip_amount != nil {
		*m.addtip_amount += f
	} else {
		m.addtip_amount = &f
	}
}

// AddedTipAmount returns the value that was added to the "tip_amount" field in this mutation.
func (m *OrderMutation) AddedTipAmount() (r float64, exists bool) {
	v := m.addtip_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTipAmount resets all changes to the "tip_amount" field.
func (m *OrderMutation) ResetTipAmount() {
	m.tip_amount = nil
	m.addtip_amount = nil
}

// SetTotalPrice sets the "total_price" field.
func (m *OrderMutation) SetTotalPrice(f float64) {
	m.total_price = &f
	m.addtotal_price = nil
}

// TotalPrice returns the value of the "total_price" field in the mutation.
func (m *OrderMutation) TotalPrice() (r float64, exists bool) {
	v := m.total_price
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPrice returns the old "total_price" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldTotalPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPrice: %w", err)
	}
	return oldValue.TotalPrice, nil
}

// AddTotalPrice adds f to the "total_price" field.
func (m *OrderMutation) AddTotalPrice(f float64) {
	if m.addtotal_price != nil {
		*m.addtotal_price += f
	} else {
		m.addtotal_price = &f
	}
}

// AddedTotalPrice returns the value that was added to the "total_price" field in this mutation.
func (m *OrderMutation) AddedTotalPrice() (r float64, exists bool) {
	v := m.addtotal_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPrice resets all changes to the "total_price" field.
func (m *OrderMutation) ResetTotalPrice() {
	m.total_price = nil
	m.addtotal_price = nil
}

// SetSpecialRequests sets the "special_requests" field.
func (m *OrderMutation) SetSpecialRequests(s string) {
	m.special_requests = &s
}

// SpecialRequests returns the value of the "special_requests" field in the mutation.
func (m *OrderMutation) SpecialRequests() (r string, exists bool) {
	v := m.special_requests
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialRequests returns the old "special_requests" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldSpecialRequests(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialRequests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialRequests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialRequests: %w", err)
	}
	return oldValue.SpecialRequests, nil
}

// ClearSpecialRequests clears the value of the "special_requests" field.
func (m *OrderMutation) ClearSpecialRequests() {
	m.special_requests = nil
	m.clearedFields[order.FieldSpecialRequests] = struct{}{}
}

// SpecialRequestsCleared returns if the "special_requests" field was cleared in this mutation.
func (m *OrderMutation) SpecialRequestsCleared() bool {
	_, ok := m.clearedFields[order.FieldSpecialRequests]
	return ok
}

// ResetSpecialRequests resets all changes to the "special_requests" field.
func (m *OrderMutation) ResetSpecialRequests() {
	m.special_requests = nil
	delete(m.clearedFields, order.FieldSpecialRequests)
}

// SetItemsSnapshot sets the "items_snapshot" field.
func (m *OrderMutation) SetItemsSnapshot(value []map[string]interface{}) {
	m.items_snapshot = &value
	m.appenditems_snapshot = nil
}

// ItemsSnapshot returns the value of the "items_snapshot" field in the mutation.
func (m *OrderMutation) ItemsSnapshot() (r []map[string]interface{}, exists bool) {
	v := m.items_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldItemsSnapshot returns the old "items_snapshot" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldItemsSnapshot(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemsSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemsSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemsSnapshot: %w", err)
	}
	return oldValue.ItemsSnapshot, nil
}

// AppendItemsSnapshot adds value to the "items_snapshot" field.
func (m *OrderMutation) AppendItemsSnapshot(value []map[string]interface{}) {
	m.appenditems_snapshot = append(m.appenditems_snapshot, value...)
}

// AppendedItemsSnapshot returns the list of values that were appended to the "items_snapshot" field in this mutation.
func (m *OrderMutation) AppendedItemsSnapshot() ([]map[string]interface{}, bool) {
	if len(m.appenditems_snapshot) == 0 {
		return nil, false
	}
	return m.appenditems_snapshot, true
}

// ClearItemsSnapshot clears the value of the "items_snapshot" field.
func (m *OrderMutation) ClearItemsSnapshot() {
	m.items_snapshot = nil
	m.appenditems_snapshot = nil
	m.clearedFields[order.FieldItemsSnapshot] = struct{}{}
}

// ItemsSnapshotCleared returns if the "items_snapshot" field was cleared in this mutation.
func (m *OrderMutation) ItemsSnapshotCleared() bool {
	_, ok := m.clearedFields[order.FieldItemsSnapshot]
	return ok
}

// ResetItemsSnapshot resets all changes to the "items_snapshot" field.
func (m *OrderMutation) ResetItemsSnapshot() {
	m.items_snapshot = nil
	m.appenditems_snapshot = nil
	delete(m.clearedFields, order.FieldItemsSnapshot)
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (m *OrderMutation) SetStatusChangedAt(t time.Time) {
	m.status_changed_at = &t
}

// StatusChangedAt returns the value of the "status_changed_at" field in the mutation.
func (m *OrderMutation) StatusChangedAt() (r time.Time, exists bool) {
	v := m.status_changed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusChangedAt returns the old "status_changed_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldStatusChangedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusChangedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusChangedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusChangedAt: %w", err)
	}
	return oldValue.StatusChangedAt, nil
}

// ResetStatusChangedAt resets all changes to the "status_changed_at" field.
func (m *OrderMutation) ResetStatusChangedAt() {
	m.status_changed_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OrderMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OrderMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OrderMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBusiness clears the "business" edge to the Business entity.
func (m *OrderMutation) ClearBusiness() {
	m.clearedbusiness = true
	m.clearedFields[order.FieldBusinessID] = struct{}{}
}

// BusinessCleared reports if the "business" edge to the Business entity was cleared.
func (m *OrderMutation) BusinessCleared() bool {
	return m.clearedbusiness
}

// BusinessIDs returns the "business" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BusinessID instead. It exists only for internal usage by the builders.
func (m *OrderMutation) BusinessIDs() (ids []int) {
	if id := m.business; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBusiness resets all changes to the "business" edge.
func (m *OrderMutation) ResetBusiness() {
	m.business = nil
	m.clearedbusiness = false
}

// ClearTable clears the "table" edge to the Table entity.
func (m *OrderMutation) ClearTable() {
	m.clearedtable = true
	m.clearedFields[order.FieldTableID] = struct{}{}
}

// TableCleared reports if the "table" edge to the Table entity was cleared.
func (m *OrderMutation) TableCleared() bool {
	return m.TableIDCleared() || m.clearedtable
}

// TableIDs returns the "table" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TableID instead. It exists only for internal usage by the builders.
func (m *OrderMutation) TableIDs() (ids []int) {
	if id := m.table; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTable resets all changes to the "table" edge.
func (m *OrderMutation) ResetTable() {
	m.table = nil
	m.clearedtable = false
}

// AddItemIDs adds the "items" edge to the OrderItem entity by ids.
func (m *OrderMutation) AddItemIDs(ids ...int) {
	if m.items == nil {
		m.items = make(map[int]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the OrderItem entity.
func (m *OrderMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the OrderItem entity was cleared.
func (m *OrderMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the OrderItem entity by IDs.
func (m *OrderMutation) RemoveItemIDs(ids ...int) {
	if m.removeditems == nil {
		m.removeditems = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the OrderItem entity.
func (m *OrderMutation) RemovedItemsIDs() (ids []int) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *OrderMutation) ItemsIDs() (ids []int) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *OrderMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the OrderMutation builder.
func (m *OrderMutation) Where(ps ...predicate.Order) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Order, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Order).
func (m *OrderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.business != nil {
		fields = append(fields, order.FieldBusinessID)
	}
	if m.location != nil {
		fields = append(fields, order.FieldLocation)
	}
	if m.table != nil {
		fields = append(fields, order.FieldTableID)
	}
	if m.status != nil {
		fields = append(fields, order.FieldStatus)
	}
	if m.payment_method != nil {
		fields = append(fields, order.FieldPaymentMethod)
	}
	if m.payment_status != nil {
		fields = append(fields, order.FieldPaymentStatus)
	}
	if m.subtotal != nil {
		fields = append(fields, order.FieldSubtotal)
	}
	if m.tax_amount != nil {
		fields = append(fields, order.FieldTaxAmount)
	}
	if m.tip_amount != nil {
		fields = append(fields, order.FieldTipAmount)
	}
	if m.total_price != nil {
		fields = append(fields, order.FieldTotalPrice)
	}
	if m.special_requests != nil {
		fields = append(fields, order.FieldSpecialRequests)
	}
	if m.items_snapshot != nil {
		fields = append(fields, order.FieldItemsSnapshot)
	}
	if m.status_changed_at != nil {
		fields = append(fields, order.FieldStatusChangedAt)
	}
	if m.created_at != nil {
		fields = append(fields, order.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, order.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case order.FieldBusinessID:
		return m.BusinessID()
	case order.FieldLocation:
		return m.Location()
	case order.FieldTableID:
		return m.TableID()
	case order.FieldStatus:
		return m.Status()
	case order.FieldPaymentMethod:
		return m.PaymentMethod()
	case order.FieldPaymentStatus:
		return m.PaymentStatus()
	case order.FieldSubtotal:
		return m.Subtotal()
	case order.FieldTaxAmount:
		return m.TaxAmount()
	case order.FieldTipAmount:
		return m.TipAmount()
	case order.FieldTotalPrice:
		return m.TotalPrice()
	case order.FieldSpecialRequests:
		return m.SpecialRequests()
	case order.FieldItemsSnapshot:
		return m.ItemsSnapshot()
	case order.FieldStatusChangedAt:
		return m.StatusChangedAt()
	case order.FieldCreatedAt:
		return m.CreatedAt()
	case order.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case order.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case order.FieldLocation:
		return m.OldLocation(ctx)
	case order.FieldTableID:
		return m.OldTableID(ctx)
	case order.FieldStatus:
		return m.OldStatus(ctx)
	case order.FieldPaymentMethod:
		return m.OldPaymentMethod(ctx)
	case order.FieldPaymentStatus:
		return m.OldPaymentStatus(ctx)
	case order.FieldSubtotal:
		return m.OldSubtotal(ctx)
	case order.FieldTaxAmount:
		return m.OldTaxAmount(ctx)
	case order.FieldTipAmount:
		return m.OldTipAmount(ctx)
	case order.FieldTotalPrice:
		return m.OldTotalPrice(ctx)
	case order.FieldSpecialRequests:
		return m.OldSpecialRequests(ctx)
	case order.FieldItemsSnapshot:
		return m.OldItemsSnapshot(ctx)
	case order.FieldStatusChangedAt:
		return m.OldStatusChangedAt(ctx)
	case order.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case order.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Order field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case order.FieldBusinessID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case order.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case order.FieldTableID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableID(v)
		return nil
	case order.FieldStatus:
		v, ok := value.(order.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case order.FieldPaymentMethod:
		v, ok := value.(order.PaymentMethod)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMethod(v)
		return nil
	case order.FieldPaymentStatus:
		v, ok := value.(order.PaymentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentStatus(v)
		return nil
	case order.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtotal(v)
		return nil
	case order.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxAmount(v)
		return nil
	case order.FieldTipAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTipAmount(v)
		return nil
	case order.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPrice(v)
		return nil
	case order.FieldSpecialRequests:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialRequests(v)
		return nil
	case order.FieldItemsSnapshot:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemsSnapshot(v)
		return nil
	case order.FieldStatusChangedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusChangedAt(v)
		return nil
	case order.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case order.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderMutation) AddedFields() []string {
	var fields []string
	if m.addsubtotal != nil {
		fields = append(fields, order.FieldSubtotal)
	}
	if m.addtax_amount != nil {
		fields = append(fields, order.FieldTaxAmount)
	}
	if m.addtip_amount != nil {
		fields = append(fields, order.FieldTipAmount)
	}
	if m.addtotal_price != nil {
		fields = append(fields, order.FieldTotalPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case order.FieldSubtotal:
		return m.AddedSubtotal()
	case order.FieldTaxAmount:
		return m.AddedTaxAmount()
	case order.FieldTipAmount:
		return m.AddedTipAmount()
	case order.FieldTotalPrice:
		return m.AddedTotalPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case order.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtotal(v)
		return nil
	case order.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxAmount(v)
		return nil
	case order.FieldTipAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTipAmount(v)
		return nil
	case order.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPrice(v)
		return nil
	}
	return fmt.Errorf("unknown Order numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(order.FieldTableID) {
		fields = append(fields, order.FieldTableID)
	}
	if m.FieldCleared(order.FieldSpecialRequests) {
		fields = append(fields, order.FieldSpecialRequests)
	}
	if m.FieldCleared(order.FieldItemsSnapshot) {
		fields = append(fields, order.FieldItemsSnapshot)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderMutation) ClearField(name string) error {
	switch name {
	case order.FieldTableID:
		m.ClearTableID()
		return nil
	case order.FieldSpecialRequests:
		m.ClearSpecialRequests()
		return nil
	case order.FieldItemsSnapshot:
		m.ClearItemsSnapshot()
		return nil
	}
	return fmt.Errorf("unknown Order nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderMutation) ResetField(name string) error {
	switch name {
	case order.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case order.FieldLocation:
		m.ResetLocation()
		return nil
	case order.FieldTableID:
		m.ResetTableID()
		return nil
	case order.FieldStatus:
		m.ResetStatus()
		return nil
	case order.FieldPaymentMethod:
		m.ResetPaymentMethod()
		return nil
	case order.FieldPaymentStatus:
		m.ResetPaymentStatus()
		return nil
	case order.FieldSubtotal:
		m.ResetSubtotal()
		return nil
	case order.FieldTaxAmount:
		m.ResetTaxAmount()
		return nil
	case order.FieldTipAmount:
		m.ResetTipAmount()
		return nil
	case order.FieldTotalPrice:
		m.ResetTotalPrice()
		return nil
	case order.FieldSpecialRequests:
		m.ResetSpecialRequests()
		return nil
	case order.FieldItemsSnapshot:
		m.ResetItemsSnapshot()
		return nil
	case order.FieldStatusChangedAt:
		m.ResetStatusChangedAt()
		return nil
	case order.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case order.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.business != nil {
		edges = append(edges, order.EdgeBusiness)
	}
	if m.table != nil {
		edges = append(edges, order.EdgeTable)
	}
	if m.items != nil {
		edges = append(edges, order.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeBusiness:
		if id := m.business; id != nil {
			return []ent.Value{*id}
		}
	case order.EdgeTable:
		if id := m.table; id != nil {
			return []ent.Value{*id}
		}
	case order.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeditems != nil {
		edges = append(edges, order.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedbusiness {
		edges = append(edges, order.EdgeBusiness)
	}
	if m.clearedtable {
		edges = append(edges, order.EdgeTable)
	}
	if m.cleareditems {
		edges = append(edges, order.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderMutation) EdgeCleared(name string) bool {
	switch name {
	case order.EdgeBusiness:
		return m.clearedbusiness
	case order.EdgeTable:
		return m.clearedtable
	case order.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderMutation) ClearEdge(name string) error {
	switch name {
	case order.EdgeBusiness:
		m.ClearBusiness()
		return nil
	case order.EdgeTable:
		m.ClearTable()
		return nil
	}
	return fmt.Errorf("unknown Order unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderMutation) ResetEdge(name string) error {
	switch name {
	case order.EdgeBusiness:
		m.ResetBusiness()
		return nil
	case order.EdgeTable:
		m.ResetTable()
		return nil
	case order.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown Order edge %s", name)
}

// OrderItemMutation represents an operation that mutates the OrderItem nodes in the graph.
type OrderItemMutation struct {
	config
	op                Op
	typ               string
	id                *int
	quantity          *int
	addquantity       *int
	price_at_order    *float64
	addprice_at_order *float64
	clearedFields     map[string]struct{}
	_order            *uuid.UUID
	cleared_order     bool
	menu_item         *int
	clearedmenu_item  bool
	done              bool
	oldValue          func(context.Context) (*OrderItem, error)
	predicates        []predicate.OrderItem
}

var _ ent.Mutation = (*OrderItemMutation)(nil)

// orderitemOption allows management of the mutation configuration using functional options.
type orderitemOption func(*OrderItemMutation)

// newOrderItemMutation creates new mutation for the OrderItem entity.
func newOrderItemMutation(c config, op Op, opts ...orderitemOption) *OrderItemMutation {
	m := &OrderItemMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderItemID sets the ID field of the mutation.
func withOrderItemID(id int) orderitemOption {
	return func(m *OrderItemMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderItem
		)
		m.oldValue = func(ctx context.Context) (*OrderItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderItem sets the old OrderItem of the mutation.
func withOrderItem(node *OrderItem) orderitemOption {
	return func(m *OrderItemMutation) {
		m.oldValue = func(context.Context) (*OrderItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrderID sets the "order_id" field.
func (m *OrderItemMutation) SetOrderID(u uuid.UUID) {
	m._order = &u
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *OrderItemMutation) OrderID() (r uuid.UUID, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldOrderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *OrderItemMutation) ResetOrderID() {
	m._order = nil
}

// SetMenuItemID sets the "menu_item_id" field.
func (m *OrderItemMutation) SetMenuItemID(i int) {
	m.menu_item = &i
}

// MenuItemID returns the value of the "menu_item_id" field in the mutation.
func (m *OrderItemMutation) MenuItemID() (r int, exists bool) {
	v := m.menu_item
	if v == nil {
		return
	}
	return *v, true
}

// OldMenuItemID returns the old "menu_item_id" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldMenuItemID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMenuItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMenuItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMenuItemID: %w", err)
	}
	return oldValue.MenuItemID, nil
}

// ClearMenuItemID clears the value of the "menu_item_id" field.
func (m *OrderItemMutation) ClearMenuItemID() {
	m.menu_item = nil
	m.clearedFields[orderitem.FieldMenuItemID] = struct{}{}
}

// MenuItemIDCleared returns if the "menu_item_id" field was cleared in this mutation.
func (m *OrderItemMutation) MenuItemIDCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldMenuItemID]
	return ok
}

// ResetMenuItemID resets all changes to the "menu_item_id" field.
func (m *OrderItemMutation) ResetMenuItemID() {
	m.menu_item = nil
	delete(m.clearedFields, orderitem.FieldMenuItemID)
}

// SetQuantity sets the "quantity" field.
func (m *OrderItemMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *OrderItemMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *OrderItemMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *OrderItemMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *OrderItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetPriceAtOrder sets the "price_at_order" field.
func (m *OrderItemMutation) SetPriceAtOrder(f float64) {
	m.price_at_order = &f
	m.addprice_at_order = nil
}

// PriceAtOrder returns the value of the "price_at_order" field in the mutation.
func (m *OrderItemMutation) PriceAtOrder() (r float64, exists bool) {
	v := m.price_at_order
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceAtOrder returns the old "price_at_order" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldPriceAtOrder(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceAtOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceAtOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceAtOrder: %w", err)
	}
	return oldValue.PriceAtOrder, nil
}

// AddPriceAtOrder adds f to the "price_at_order" field.
func (m *OrderItemMutation) AddPriceAtOrder(f float64) {
	if m.addprice_at_order != nil {
		*m.addprice_at_order += f
	} else {
		m.addprice_at_order = &f
	}
}

// AddedPriceAtOrder returns the value that was added to the "price_at_order" field in this mutation.
func (m *OrderItemMutation) AddedPriceAtOrder() (r float64, exists bool) {
	v := m.addprice_at_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriceAtOrder resets all changes to the "price_at_order" field.
func (m *OrderItemMutation) ResetPriceAtOrder() {
	m.price_at_order = nil
	m.addprice_at_order = nil
}

// ClearOrder clears the "order" edge to the Order entity.
func (m *OrderItemMutation) ClearOrder() {
	m.cleared_order = true
	m.clearedFields[orderitem.FieldOrderID] = struct{}{}
}

// OrderCleared reports if the "order" edge to the Order entity was cleared.
func (m *OrderItemMutation) OrderCleared() bool {
	return m.cleared_order
}

// OrderIDs returns the "order" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrderID instead. It exists only for internal usage by the builders.
func (m *OrderItemMutation) OrderIDs() (ids []uuid.UUID) {
	if id := m._order; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrder resets all changes to the "order" edge.
func (m *OrderItemMutation) ResetOrder() {
	m._order = nil
	m.cleared_order = false
}

// ClearMenuItem clears the "menu_item" edge to the MenuItem entity.
func (m *OrderItemMutation) ClearMenuItem() {
	m.clearedmenu_item = true
	m.clearedFields[orderitem.FieldMenuItemID] = struct{}{}
}

// MenuItemCleared reports if the "menu_item" edge to the MenuItem entity was cleared.
func (m *OrderItemMutation) MenuItemCleared() bool {
	return m.MenuItemIDCleared() || m.clearedmenu_item
}

// MenuItemIDs returns the "menu_item" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MenuItemID instead. It exists only for internal usage by the builders.
func (m *OrderItemMutation) MenuItemIDs() (ids []int) {
	if id := m.menu_item; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMenuItem resets all changes to the "menu_item" edge.
func (m *OrderItemMutation) ResetMenuItem() {
	m.menu_item = nil
	m.clearedmenu_item = false
}

// Where appends a list predicates to the OrderItemMutation builder.
func (m *OrderItemMutation) Where(ps ...predicate.OrderItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderItem).
func (m *OrderItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderItemMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m._order != nil {
		fields = append(fields, orderitem.FieldOrderID)
	}
	if m.menu_item != nil {
		fields = append(fields, orderitem.FieldMenuItemID)
	}
	if m.quantity != nil {
		fields = append(fields, orderitem.FieldQuantity)
	}
	if m.price_at_order != nil {
		fields = append(fields, orderitem.FieldPriceAtOrder)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderitem.FieldOrderID:
		return m.OrderID()
	case orderitem.FieldMenuItemID:
		return m.MenuItemID()
	case orderitem.FieldQuantity:
		return m.Quantity()
	case orderitem.FieldPriceAtOrder:
		return m.PriceAtOrder()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderitem.FieldOrderID:
		return m.OldOrderID(ctx)
	case orderitem.FieldMenuItemID:
		return m.OldMenuItemID(ctx)
	case orderitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case orderitem.FieldPriceAtOrder:
		return m.OldPriceAtOrder(ctx)
	}
	return nil, fmt.Errorf("unknown OrderItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderitem.FieldOrderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case orderitem.FieldMenuItemID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMenuItemID(v)
		return nil
	case orderitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case orderitem.FieldPriceAtOrder:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceAtOrder(v)
		return nil
	}
	return fmt.Errorf("unknown OrderItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderItemMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, orderitem.FieldQuantity)
	}
	if m.addprice_at_order != nil {
		fields = append(fields, orderitem.FieldPriceAtOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orderitem.FieldQuantity:
		return m.AddedQuantity()
	case orderitem.FieldPriceAtOrder:
		return m.AddedPriceAtOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orderitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case orderitem.FieldPriceAtOrder:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriceAtOrder(v)
		return nil
	}
	return fmt.Errorf("unknown OrderItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orderitem.FieldMenuItemID) {
		fields = append(fields, orderitem.FieldMenuItemID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderItemMutation) ClearField(name string) error {
	switch name {
	case orderitem.FieldMenuItemID:
		m.ClearMenuItemID()
		return nil
	}
	return fmt.Errorf("unknown OrderItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderItemMutation) ResetField(name string) error {
	switch name {
	case orderitem.FieldOrderID:
		m.ResetOrderID()
		return nil
	case orderitem.FieldMenuItemID:
		m.ResetMenuItemID()
		return nil
	case orderitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case orderitem.FieldPriceAtOrder:
		m.ResetPriceAtOrder()
		return nil
	}
	return fmt.Errorf("unknown OrderItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m._order != nil {
		edges = append(edges, orderitem.EdgeOrder)
	}
	if m.menu_item != nil {
		edges = append(edges, orderitem.EdgeMenuItem)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case orderitem.EdgeOrder:
		if id := m._order; id != nil {
			return []ent.Value{*id}
		}
	case orderitem.EdgeMenuItem:
		if id := m.menu_item; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleared_order {
		edges = append(edges, orderitem.EdgeOrder)
	}
	if m.clearedmenu_item {
		edges = append(edges, orderitem.EdgeMenuItem)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderItemMutation) EdgeCleared(name string) bool {
	switch name {
	case orderitem.EdgeOrder:
		return m.cleared_order
	case orderitem.EdgeMenuItem:
		return m.clearedmenu_item
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderItemMutation) ClearEdge(name string) error {
	switch name {
	case orderitem.EdgeOrder:
		m.ClearOrder()
		return nil
	case orderitem.EdgeMenuItem:
		m.ClearMenuItem()
		return nil
	}
	return fmt.Errorf("unknown OrderItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderItemMutation) ResetEdge(name string) error {
	switch name {
	case orderitem.EdgeOrder:
		m.ResetOrder()
		return nil
	case orderitem.EdgeMenuItem:
		m.ResetMenuItem()
		return nil
	}
	return fmt.Errorf("unknown OrderItem edge %s", name)
}

// RecommendationEventMutation represents an operation that mutates the RecommendationEvent nodes in the graph.
type RecommendationEventMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	source_item_id         *int
	addsource_item_id      *int
	recommended_item_id    *int
	addrecommended_item_id *int
	event_type             *recommendationevent.EventType
	order_id               *uuid.UUID
	revenue                *float64
	addrevenue             *float64
	created_at             *time.Time
	clearedFields          map[string]struct{}
	business               *int
	clearedbusiness        bool
	done                   bool
	oldValue               func(context.Context) (*RecommendationEvent, error)
	predicates             []predicate.RecommendationEvent
}

var _ ent.Mutation = (*RecommendationEventMutation)(nil)

// recommendationeventOption allows management of the mutation configuration using functional options.
type recommendationeventOption func(*RecommendationEventMutation)

// newRecommendationEventMutation creates new mutation for the RecommendationEvent entity.
func newRecommendationEventMutation(c config, op Op, opts ...recommendationeventOption) *RecommendationEventMutation {
	m := &RecommendationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRecommendationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecommendationEventID sets the ID field of the mutation.
func withRecommendationEventID(id int) recommendationeventOption {
	return func(m *RecommendationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RecommendationEvent
		)
		m.oldValue = func(ctx context.Context) (*RecommendationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecommendationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecommendationEvent sets the old RecommendationEvent of the mutation.
func withRecommendationEvent(node *RecommendationEvent) recommendationeventOption {
	return func(m *RecommendationEventMutation) {
		m.oldValue = func(context.Context) (*RecommendationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecommendationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecommendationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecommendationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecommendationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecommendationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *RecommendationEventMutation) SetBusinessID(i int) {
	m.business = &i
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *RecommendationEventMutation) BusinessID() (r int, exists bool) {
	v := m.business
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the RecommendationEvent entity.
// If the RecommendationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationEventMutation) OldBusinessID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *RecommendationEventMutation) ResetBusinessID() {
	m.business = nil
}

// SetSourceItemID sets the "source_item_id" field.
func (m *RecommendationEventMutation) SetSourceItemID(i int) {
	m.source_item_id = &i
	m.addsource_item_id = nil
}

// SourceItemID returns the value of the "source_item_id" field in the mutation.
func (m *RecommendationEventMutation) SourceItemID() (r int, exists bool) {
	v := m.source_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceItemID returns the old "source_item_id" field's value of the RecommendationEvent entity.
// If the RecommendationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationEventMutation) OldSourceItemID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceItemID: %w", err)
	}
	return oldValue.SourceItemID, nil
}

// AddSourceItemID adds i to the "source_item_id" field.
func (m *RecommendationEventMutation) AddSourceItemID(i int) {
	if m.addsource_item_id != nil {
		*m.addsource_item_id += i
	} else {
		m.addsource_item_id = &i
	}
}

// AddedSourceItemID returns the value that was added to the "source_item_id" field in this mutation.
func (m *RecommendationEventMutation) AddedSourceItemID() (r int, exists bool) {
	v := m.addsource_item_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearSourceItemID clears the value of the "source_item_id" field.
func (m *RecommendationEventMutation) ClearSourceItemID() {
	m.source_item_id = nil
	m.addsource_item_id = nil
	m.clearedFields[recommendationevent.FieldSourceItemID] = struct{}{}
}

// SourceItemIDCleared returns if the "source_item_id" field was cleared in this mutation.
func (m *RecommendationEventMutation) SourceItemIDCleared() bool {
	_, ok := m.clearedFields[recommendationevent.FieldSourceItemID]
	return ok
}

// ResetSourceItemID resets all changes to the "source_item_id" field.
func (m *RecommendationEventMutation) ResetSourceItemID() {
	m.source_item_id = nil
	m.addsource_item_id = nil
	delete(m.clearedFields, recommendationevent.FieldSourceItemID)
}

// SetRecommendedItemID sets the "recommended_item_id" field.
func (m *RecommendationEventMutation) SetRecommendedItemID(i int) {
	m.recommended_item_id = &i
	m.addrecommended_item_id = nil
}

// RecommendedItemID returns the value of the "recommended_item_id" field in the mutation.
func (m *RecommendationEventMutation) RecommendedItemID() (r int, exists bool) {
	v := m.recommended_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendedItemID returns the old "recommended_item_id" field's value of the RecommendationEvent entity.
// If the RecommendationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationEventMutation) OldRecommendedItemID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendedItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendedItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendedItemID: %w", err)
	}
	return oldValue.RecommendedItemID, nil
}

// AddRecommendedItemID adds i to the "recommended_item_id" field.
func (m *RecommendationEventMutation) AddRecommendedItemID(i int) {
	if m.addrecommended_item_id != nil {
		*m.addrecommended_item_id += i
	} else {
		m.addrecommended_item_id = &i
	}
}

// AddedRecommendedItemID returns the value that was added to the "recommended_item_id" field in this mutation.
func (m *RecommendationEventMutation) AddedRecommendedItemID() (r int, exists bool) {
	v := m.addrecommended_item_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecommendedItemID resets all changes to the "recommended_item_id" field.
func (m *RecommendationEventMutation) ResetRecommendedItemID() {
	m.recommended_item_id = nil
	m.addrecommended_item_id = nil
}

// SetEventType sets the "event_type" field.
func (m *RecommendationEventMutation) SetEventType(rt recommendationevent.EventType) {
	m.event_type = &rt
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *RecommendationEventMutation) EventType() (r recommendationevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the RecommendationEvent entity.
// If the RecommendationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationEventMutation) OldEventType(ctx context.Context) (v recommendationevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *RecommendationEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetOrderID sets the "order_id" field.
func (m *RecommendationEventMutation) SetOrderID(u uuid.UUID) {
	m.order_id = &u
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *RecommendationEventMutation) OrderID() (r uuid.UUID, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the RecommendationEvent entity.
// If the RecommendationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationEventMutation) OldOrderID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ClearOrderID clears the value of the "order_id" field.
func (m *RecommendationEventMutation) ClearOrderID() {
	m.order_id = nil
	m.clearedFields[recommendationevent.FieldOrderID] = struct{}{}
}

// OrderIDCleared returns if the "order_id" field was cleared in this mutation.
func (m *RecommendationEventMutation) OrderIDCleared() bool {
	_, ok := m.clearedFields[recommendationevent.FieldOrderID]
	return ok
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *RecommendationEventMutation) ResetOrderID() {
	m.order_id = nil
	delete(m.clearedFields, recommendationevent.FieldOrderID)
}

// SetRevenue sets the "revenue" field.
func (m *RecommendationEventMutation) SetRevenue(f float64) {
	m.revenue = &f
	m.addrevenue = nil
}

// Revenue returns the value of the "revenue" field in the mutation.
func (m *RecommendationEventMutation) Revenue() (r float64, exists bool) {
	v := m.revenue
	if v == nil {
		return
	}
	return *v, true
}

// OldRevenue returns the old "revenue" field's value of the RecommendationEvent entity.
// If the RecommendationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationEventMutation) OldRevenue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevenue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevenue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevenue: %w", err)
	}
	return oldValue.Revenue, nil
}

// AddRevenue adds f to the "revenue" field.
func (m *RecommendationEventMutation) AddRevenue(f float64) {
	if m.addrevenue != nil {
		*m.addrevenue += f
	} else {
		m.addrevenue = &f
	}
}

// AddedRevenue returns the value that was added to the "revenue" field in this mutation.
func (m *RecommendationEventMutation) AddedRevenue() (r float64, exists bool) {
	v := m.addrevenue
	if v == nil {
		return
	}
	return *v, true
}

// ResetRevenue resets all changes to the "revenue" field.
func (m *RecommendationEventMutation) ResetRevenue() {
	m.revenue = nil
	m.addrevenue = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RecommendationEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecommendationEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RecommendationEvent entity.
// If the RecommendationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendationEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecommendationEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearBusiness clears the "business" edge to the Business entity.
func (m *RecommendationEventMutation) ClearBusiness() {
	m.clearedbusiness = true
	m.clearedFields[recommendationevent.FieldBusinessID] = struct{}{}
}

// BusinessCleared reports if the "business" edge to the Business entity was cleared.
func (m *RecommendationEventMutation) BusinessCleared() bool {
	return m.clearedbusiness
}

// BusinessIDs returns the "business" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BusinessID instead. It exists only for internal usage by the builders.
func (m *RecommendationEventMutation) BusinessIDs() (ids []int) {
	if id := m.business; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBusiness resets all changes to the "business" edge.
func (m *RecommendationEventMutation) ResetBusiness() {
	m.business = nil
	m.clearedbusiness = false
}

// Where appends a list predicates to the RecommendationEventMutation builder.
func (m *RecommendationEventMutation) Where(ps ...predicate.RecommendationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecommendationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecommendationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecommendationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecommendationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecommendationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecommendationEvent).
func (m *RecommendationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecommendationEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.business != nil {
		fields = append(fields, recommendationevent.FieldBusinessID)
	}
	if m.source_item_id != nil {
		fields = append(fields, recommendationevent.FieldSourceItemID)
	}
	if m.recommended_item_id != nil {
		fields = append(fields, recommendationevent.FieldRecommendedItemID)
	}
	if m.event_type != nil {
		fields = append(fields, recommendationevent.FieldEventType)
	}
	if m.order_id != nil {
		fields = append(fields, recommendationevent.FieldOrderID)
	}
	if m.revenue != nil {
		fields = append(fields, recommendationevent.FieldRevenue)
	}
	if m.created_at != nil {
		fields = append(fields, recommendationevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecommendationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recommendationevent.FieldBusinessID:
		return m.BusinessID()
	case recommendationevent.FieldSourceItemID:
		return m.SourceItemID()
	case recommendationevent.FieldRecommendedItemID:
		return m.RecommendedItemID()
	case recommendationevent.FieldEventType:
		return m.EventType()
	case recommendationevent.FieldOrderID:
		return m.OrderID()
	case recommendationevent.FieldRevenue:
		return m.Revenue()
	case recommendationevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecommendationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recommendationevent.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case recommendationevent.FieldSourceItemID:
		return m.OldSourceItemID(ctx)
	case recommendationevent.FieldRecommendedItemID:
		return m.OldRecommendedItemID(ctx)
	case recommendationevent.FieldEventType:
		return m.OldEventType(ctx)
	case recommendationevent.FieldOrderID:
		return m.OldOrderID(ctx)
	case recommendationevent.FieldRevenue:
		return m.OldRevenue(ctx)
	case recommendationevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RecommendationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecommendationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recommendationevent.FieldBusinessID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case recommendationevent.FieldSourceItemID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceItemID(v)
		return nil
	case recommendationevent.FieldRecommendedItemID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendedItemID(v)
		return nil
	case recommendationevent.FieldEventType:
		v, ok := value.(recommendationevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case recommendationevent.FieldOrderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case recommendationevent.FieldRevenue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevenue(v)
		return nil
	case recommendationevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RecommendationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecommendationEventMutation) AddedFields() []string {
	var fields []string
	if m.addsource_item_id != nil {
		fields = append(fields, recommendationevent.FieldSourceItemID)
	}
	if m.addrecommended_item_id != nil {
		fields = append(fields, recommendationevent.FieldRecommendedItemID)
	}
	if m.addrevenue != nil {
		fields = append(fields, recommendationevent.FieldRevenue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecommendationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recommendationevent.FieldSourceItemID:
		return m.AddedSourceItemID()
	case recommendationevent.FieldRecommendedItemID:
		return m.AddedRecommendedItemID()
	case recommendationevent.FieldRevenue:
		return m.AddedRevenue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecommendationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recommendationevent.FieldSourceItemID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourceItemID(v)
		return nil
	case recommendationevent.FieldRecommendedItemID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecommendedItemID(v)
		return nil
	case recommendationevent.FieldRevenue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRevenue(v)
		return nil
	}
	return fmt.Errorf("unknown RecommendationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecommendationEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recommendationevent.FieldSourceItemID) {
		fields = append(fields, recommendationevent.FieldSourceItemID)
	}
	if m.FieldCleared(recommendationevent.FieldOrderID) {
		fields = append(fields, recommendationevent.FieldOrderID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecommendationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecommendationEventMutation) ClearField(name string) error {
	switch name {
	case recommendationevent.FieldSourceItemID:
		m.ClearSourceItemID()
		return nil
	case recommendationevent.FieldOrderID:
		m.ClearOrderID()
		return nil
	}
	return fmt.Errorf("unknown RecommendationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecommendationEventMutation) ResetField(name string) error {
	switch name {
	case recommendationevent.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case recommendationevent.FieldSourceItemID:
		m.ResetSourceItemID()
		return nil
	case recommendationevent.FieldRecommendedItemID:
		m.ResetRecommendedItemID()
		return nil
	case recommendationevent.FieldEventType:
		m.ResetEventType()
		return nil
	case recommendationevent.FieldOrderID:
		m.ResetOrderID()
		return nil
	case recommendationevent.FieldRevenue:
		m.ResetRevenue()
		return nil
	case recommendationevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RecommendationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecommendationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.business != nil {
		edges = append(edges, recommendationevent.EdgeBusiness)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecommendationEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recommendationevent.EdgeBusiness:
		if id := m.business; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecommendationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecommendationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecommendationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbusiness {
		edges = append(edges, recommendationevent.EdgeBusiness)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecommendationEventMutation) EdgeCleared(name string) bool {
	switch name {
	case recommendationevent.EdgeBusiness:
		return m.clearedbusiness
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecommendationEventMutation) ClearEdge(name string) error {
	switch name {
	case recommendationevent.EdgeBusiness:
		m.ClearBusiness()
		return nil
	}
	return fmt.Errorf("unknown RecommendationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecommendationEventMutation) ResetEdge(name string) error {
	switch name {
	case recommendationevent.EdgeBusiness:
		m.ResetBusiness()
		return nil
	}
	return fmt.Errorf("unknown RecommendationEvent edge %s", name)
}

// StaffUserMutation represents an operation that mutates the StaffUser nodes in the graph.
type StaffUserMutation struct {
	config
	op              Op
	typ             string
	id              *int
	email           *string
	password_hash   *string
	full_name       *string
	role            *staffuser.Role
	is_active       *bool
	last_login_at   *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	business        *int
	clearedbusiness bool
	done            bool
	oldValue        func(context.Context) (*StaffUser, error)
	predicates      []predicate.StaffUser
}

var _ ent.Mutation = (*StaffUserMutation)(nil)

// staffuserOption allows management of the mutation configuration using functional options.
type staffuserOption func(*StaffUserMutation)

// newStaffUserMutation creates new mutation for the StaffUser entity.
func newStaffUserMutation(c config, op Op, opts ...staffuserOption) *StaffUserMutation {
	m := &StaffUserMutation{
		config:        c,
		op:            op,
		typ:           TypeStaffUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStaffUserID sets the ID field of the mutation.
func withStaffUserID(id int) staffuserOption {
	return func(m *StaffUserMutation) {
		var (
			err   error
			once  sync.Once
			value *StaffUser
		)
		m.oldValue = func(ctx context.Context) (*StaffUser, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StaffUser.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStaffUser sets the old StaffUser of the mutation.
func withStaffUser(node *StaffUser) staffuserOption {
	return func(m *StaffUserMutation) {
		m.oldValue = func(context.Context) (*StaffUser, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StaffUserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StaffUserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StaffUserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StaffUserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StaffUser.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *StaffUserMutation) SetBusinessID(i int) {
	m.business = &i
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *StaffUserMutation) BusinessID() (r int, exists bool) {
	v := m.business
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the StaffUser entity.
// If the StaffUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffUserMutation) OldBusinessID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *StaffUserMutation) ResetBusinessID() {
	m.business = nil
}

// SetEmail sets the "email" field.
func (m *StaffUserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *StaffUserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the StaffUser entity.
// If the StaffUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffUserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *StaffUserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *StaffUserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *StaffUserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the StaffUser entity.
// If the StaffUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffUserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *StaffUserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetFullName sets the "full_name" field.
func (m *StaffUserMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *StaffUserMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the StaffUser entity.
// If the StaffUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffUserMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ClearFullName clears the value of the "full_name" field.
func (m *StaffUserMutation) ClearFullName() {
	m.full_name = nil
	m.clearedFields[staffuser.FieldFullName] = struct{}{}
}

// FullNameCleared returns if the "full_name" field was cleared in this mutation.
func (m *StaffUserMutation) FullNameCleared() bool {
	_, ok := m.clearedFields[staffuser.FieldFullName]
	return ok
}

// ResetFullName resets all changes to the "full_name" field.
func (m *StaffUserMutation) ResetFullName() {
	m.full_name = nil
	delete(m.clearedFields, staffuser.FieldFullName)
}

// SetRole sets the "role" field.
func (m *StaffUserMutation) SetRole(s staffuser.Role) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *StaffUserMutation) Role() (r staffuser.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the StaffUser entity.
// If the StaffUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffUserMutation) OldRole(ctx context.Context) (v staffuser.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *StaffUserMutation) ResetRole() {
	m.role = nil
}

// SetIsActive sets the "is_active" field.
func (m *StaffUserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *StaffUserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the StaffUser entity.
// If the StaffUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffUserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *StaffUserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *StaffUserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *StaffUserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the StaffUser entity.
// If the StaffUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffUserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *StaffUserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[staffuser.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *StaffUserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[staffuser.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *StaffUserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, staffuser.FieldLastLoginAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *StaffUserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StaffUserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StaffUser entity.
// If the StaffUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffUserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StaffUserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StaffUserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StaffUserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StaffUser entity.
// If the StaffUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffUserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StaffUserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBusiness clears the "business" edge to the Business entity.
func (m *StaffUserMutation) ClearBusiness() {
	m.clearedbusiness = true
	m.clearedFields[staffuser.FieldBusinessID] = struct{}{}
}

// BusinessCleared reports if the "business" edge to the Business entity was cleared.
func (m *StaffUserMutation) BusinessCleared() bool {
	return m.clearedbusiness
}

// BusinessIDs returns the "business" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BusinessID instead. It exists only for internal usage by the builders.
func (m *StaffUserMutation) BusinessIDs() (ids []int) {
	if id := m.business; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBusiness resets all changes to the "business" edge.
func (m *StaffUserMutation) ResetBusiness() {
	m.business = nil
	m.clearedbusiness = false
}

// Where appends a list predicates to the StaffUserMutation builder.
func (m *StaffUserMutation) Where(ps ...predicate.StaffUser) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StaffUserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StaffUserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StaffUser, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StaffUserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StaffUserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StaffUser).
func (m *StaffUserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StaffUserMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.business != nil {
		fields = append(fields, staffuser.FieldBusinessID)
	}
	if m.email != nil {
		fields = append(fields, staffuser.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, staffuser.FieldPasswordHash)
	}
	if m.full_name != nil {
		fields = append(fields, staffuser.FieldFullName)
	}
	if m.role != nil {
		fields = append(fields, staffuser.FieldRole)
	}
	if m.is_active != nil {
		fields = append(fields, staffuser.FieldIsActive)
	}
	if m.last_login_at != nil {
		fields = append(fields, staffuser.FieldLastLoginAt)
	}
	if m.created_at != nil {
		fields = append(fields, staffuser.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, staffuser.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StaffUserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case staffuser.FieldBusinessID:
		return m.BusinessID()
	case staffuser.FieldEmail:
		return m.Email()
	case staffuser.FieldPasswordHash:
		return m.PasswordHash()
	case staffuser.FieldFullName:
		return m.FullName()
	case staffuser.FieldRole:
		return m.Role()
	case staffuser.FieldIsActive:
		return m.IsActive()
	case staffuser.FieldLastLoginAt:
		return m.LastLoginAt()
	case staffuser.FieldCreatedAt:
		return m.CreatedAt()
	case staffuser.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StaffUserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case staffuser.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case staffuser.FieldEmail:
		return m.OldEmail(ctx)
	case staffuser.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case staffuser.FieldFullName:
		return m.OldFullName(ctx)
	case staffuser.FieldRole:
		return m.OldRole(ctx)
	case staffuser.FieldIsActive:
		return m.OldIsActive(ctx)
	case staffuser.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case staffuser.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case staffuser.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StaffUser field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StaffUserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case staffuser.FieldBusinessID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case staffuser.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case staffuser.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case staffuser.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case staffuser.FieldRole:
		v, ok := value.(staffuser.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case staffuser.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case staffuser.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case staffuser.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case staffuser.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StaffUser field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StaffUserMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StaffUserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StaffUserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StaffUser numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StaffUserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(staffuser.FieldFullName) {
		fields = append(fields, staffuser.FieldFullName)
	}
	if m.FieldCleared(staffuser.FieldLastLoginAt) {
		fields = append(fields, staffuser.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StaffUserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StaffUserMutation) ClearField(name string) error {
	switch name {
	case staffuser.FieldFullName:
		m.ClearFullName()
		return nil
	case staffuser.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown StaffUser nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StaffUserMutation) ResetField(name string) error {
	switch name {
	case staffuser.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case staffuser.FieldEmail:
		m.ResetEmail()
		return nil
	case staffuser.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case staffuser.FieldFullName:
		m.ResetFullName()
		return nil
	case staffuser.FieldRole:
		m.ResetRole()
		return nil
	case staffuser.FieldIsActive:
		m.ResetIsActive()
		return nil
	case staffuser.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case staffuser.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case staffuser.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StaffUser field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StaffUserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.business != nil {
		edges = append(edges, staffuser.EdgeBusiness)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StaffUserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case staffuser.EdgeBusiness:
		if id := m.business; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StaffUserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StaffUserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StaffUserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbusiness {
		edges = append(edges, staffuser.EdgeBusiness)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StaffUserMutation) EdgeCleared(name string) bool {
	switch name {
	case staffuser.EdgeBusiness:
		return m.clearedbusiness
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StaffUserMutation) ClearEdge(name string) error {
	switch name {
	case staffuser.EdgeBusiness:
		m.ClearBusiness()
		return nil
	}
	return fmt.Errorf("unknown StaffUser unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StaffUserMutation) ResetEdge(name string) error {
	switch name {
	case staffuser.EdgeBusiness:
		m.ResetBusiness()
		return nil
	}
	return fmt.Errorf("unknown StaffUser edge %s", name)
}

// TableMutation represents an operation that mutates the Table nodes in the graph.
type TableMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	table_number         *string
	capacity             *int
	addcapacity          *int
	status               *table.Status
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	business             *int
	clearedbusiness      bool
	orders               map[uuid.UUID]struct{}
	removedorders        map[uuid.UUID]struct{}
	clearedorders        bool
	waiter_alerts        map[int]struct{}
	removedwaiter_alerts map[int]struct{}
	clearedwaiter_alerts bool
	done                 bool
	oldValue             func(context.Context) (*Table, error)
	predicates           []predicate.Table
}

var _ ent.Mutation = (*TableMutation)(nil)

// tableOption allows management of the mutation configuration using functional options.
type tableOption func(*TableMutation)

// newTableMutation creates new mutation for the Table entity.
func newTableMutation(c config, op Op, opts ...tableOption) *TableMutation {
	m := &TableMutation{
		config:        c,
		op:            op,
		typ:           TypeTable,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTableID sets the ID field of the mutation.
func withTableID(id int) tableOption {
	return func(m *TableMutation) {
		var (
			err   error
			once  sync.Once
			value *Table
		)
		m.oldValue = func(ctx context.Context) (*Table, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Table.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTable sets the old Table of the mutation.
func withTable(node *Table) tableOption {
	return func(m *TableMutation) {
		m.oldValue = func(context.Context) (*Table, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TableMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TableMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TableMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TableMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Table.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *TableMutation) SetBusinessID(i int) {
	m.business = &i
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *TableMutation) BusinessID() (r int, exists bool) {
	v := m.business
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the Table entity.
// If the Table object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableMutation) OldBusinessID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *TableMutation) ResetBusinessID() {
	m.business = nil
}

// SetTableNumber sets the "table_number" field.
func (m *TableMutation) SetTableNumber(s string) {
	m.table_number = &s
}

// TableNumber returns the value of the "table_number" field in the mutation.
func (m *TableMutation) TableNumber() (r string, exists bool) {
	v := m.table_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTableNumber returns the old "table_number" field's value of the Table entity.
// If the Table object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableMutation) OldTableNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableNumber: %w", err)
	}
	return oldValue.TableNumber, nil
}

// ResetTableNumber resets all changes to the "table_number" field.
func (m *TableMutation) ResetTableNumber() {
	m.table_number = nil
}

// SetCapacity sets the "capacity" field.
func (m *TableMutation) SetCapacity(i int) {
	m.capacity = &i
	m.addcapacity = nil
}

// Capacity returns the value of the "capacity" field in the mutation.
func (m *TableMutation) Capacity() (r int, exists bool) {
	v := m.capacity
	if v == nil {
		return
	}
	return *v, true
}

// OldCapacity returns the old "capacity" field's value of the Table entity.
// If the Table object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableMutation) OldCapacity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapacity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapacity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapacity: %w", err)
	}
	return oldValue.Capacity, nil
}

// AddCapacity adds i to the "capacity" field.
func (m *TableMutation) AddCapacity(i int) {
	if m.addcapacity != nil {
		*m.addcapacity += i
	} else {
		m.addcapacity = &i
	}
}

// AddedCapacity returns the value that was added to the "capacity" field in this mutation.
func (m *TableMutation) AddedCapacity() (r int, exists bool) {
	v := m.addcapacity
	if v == nil {
		return
	}
	return *v, true
}

// ResetCapacity resets all changes to the "capacity" field.
func (m *TableMutation) ResetCapacity() {
	m.capacity = nil
	m.addcapacity = nil
}

// SetStatus sets the "status" field.
func (m *TableMutation) SetStatus(t table.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TableMutation) Status() (r table.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Table entity.
// If the Table object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableMutation) OldStatus(ctx context.Context) (v table.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TableMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TableMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TableMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Table entity.
// If the Table object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TableMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TableMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TableMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Table entity.
// If the Table object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TableMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBusiness clears the "business" edge to the Business entity.
func (m *TableMutation) ClearBusiness() {
	m.clearedbusiness = true
	m.clearedFields[table.FieldBusinessID] = struct{}{}
}

// BusinessCleared reports if the "business" edge to the Business entity was cleared.
func (m *TableMutation) BusinessCleared() bool {
	return m.clearedbusiness
}

// BusinessIDs returns the "business" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BusinessID instead. It exists only for internal usage by the builders.
func (m *TableMutation) BusinessIDs() (ids []int) {
	if id := m.business; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBusiness resets all changes to the "business" edge.
func (m *TableMutation) ResetBusiness() {
	m.business = nil
	m.clearedbusiness = false
}

// AddOrderIDs adds the "orders" edge to the Order entity by ids.
func (m *TableMutation) AddOrderIDs(ids ...uuid.UUID) {
	if m.orders == nil {
		m.orders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.orders[ids[i]] = struct{}{}
	}
}

// ClearOrders clears the "orders" edge to the Order entity.
func (m *TableMutation) ClearOrders() {
	m.clearedorders = true
}

// OrdersCleared reports if the "orders" edge to the Order entity was cleared.
func (m *TableMutation) OrdersCleared() bool {
	return m.clearedorders
}

// RemoveOrderIDs removes the "orders" edge to the Order entity by IDs.
func (m *TableMutation) RemoveOrderIDs(ids ...uuid.UUID) {
	if m.removedorders == nil {
		m.removedorders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.orders, ids[i])
		m.removedorders[ids[i]] = struct{}{}
	}
}

// RemovedOrders returns the removed IDs of the "orders" edge to the Order entity.
func (m *TableMutation) RemovedOrdersIDs() (ids []uuid.UUID) {
	for id := range m.removedorders {
		ids = append(ids, id)
	}
	return
}

// OrdersIDs returns the "orders" edge IDs in the mutation.
func (m *TableMutation) OrdersIDs() (ids []uuid.UUID) {
	for id := range m.orders {
		ids = append(ids, id)
	}
	return
}

// ResetOrders resets all changes to the "orders" edge.
func (m *TableMutation) ResetOrders() {
	m.orders = nil
	m.clearedorders = false
	m.removedorders = nil
}

// AddWaiterAlertIDs adds the "waiter_alerts" edge to the WaiterAlert entity by ids.
func (m *TableMutation) AddWaiterAlertIDs(ids ...int) {
	if m.waiter_alerts == nil {
		m.waiter_alerts = make(map[int]struct{})
	}
	for i := range ids {
		m.waiter_alerts[ids[i]] = struct{}{}
	}
}

// ClearWaiterAlerts clears the "waiter_alerts" edge to the WaiterAlert entity.
func (m *TableMutation) ClearWaiterAlerts() {
	m.clearedwaiter_alerts = true
}

// WaiterAlertsCleared reports if the "waiter_alerts" edge to the WaiterAlert entity was cleared.
func (m *TableMutation) WaiterAlertsCleared() bool {
	return m.clearedwaiter_alerts
}

// RemoveWaiterAlertIDs removes the "waiter_alerts" edge to the WaiterAlert entity by IDs.
func (m *TableMutation) RemoveWaiterAlertIDs(ids ...int) {
	if m.removedwaiter_alerts == nil {
		m.removedwaiter_alerts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.waiter_alerts, ids[i])
		m.removedwaiter_alerts[ids[i]] = struct{}{}
	}
}

// RemovedWaiterAlerts returns the removed IDs of the "waiter_alerts" edge to the WaiterAlert entity.
func (m *TableMutation) RemovedWaiterAlertsIDs() (ids []int) {
	for id := range m.removedwaiter_alerts {
		ids = append(ids, id)
	}
	return
}

// WaiterAlertsIDs returns the "waiter_alerts" edge IDs in the mutation.
func (m *TableMutation) WaiterAlertsIDs() (ids []int) {
	for id := range m.waiter_alerts {
		ids = append(ids, id)
	}
	return
}

// ResetWaiterAlerts resets all changes to the "waiter_alerts" edge.
func (m *TableMutation) ResetWaiterAlerts() {
	m.waiter_alerts = nil
	m.clearedwaiter_alerts = false
	m.removedwaiter_alerts = nil
}

// Where appends a list predicates to the TableMutation builder.
func (m *TableMutation) Where(ps ...predicate.Table) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TableMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TableMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Table, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TableMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TableMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Table).
func (m *TableMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TableMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.business != nil {
		fields = append(fields, table.FieldBusinessID)
	}
	if m.table_number != nil {
		fields = append(fields, table.FieldTableNumber)
	}
	if m.capacity != nil {
		fields = append(fields, table.FieldCapacity)
	}
	if m.status != nil {
		fields = append(fields, table.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, table.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, table.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TableMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case table.FieldBusinessID:
		return m.BusinessID()
	case table.FieldTableNumber:
		return m.TableNumber()
	case table.FieldCapacity:
		return m.Capacity()
	case table.FieldStatus:
		return m.Status()
	case table.FieldCreatedAt:
		return m.CreatedAt()
	case table.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TableMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case table.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case table.FieldTableNumber:
		return m.OldTableNumber(ctx)
	case table.FieldCapacity:
		return m.OldCapacity(ctx)
	case table.FieldStatus:
		return m.OldStatus(ctx)
	case table.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case table.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Table field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TableMutation) SetField(name string, value ent.Value) error {
	switch name {
	case table.FieldBusinessID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case table.FieldTableNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableNumber(v)
		return nil
	case table.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapacity(v)
		return nil
	case table.FieldStatus:
		v, ok := value.(table.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case table.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case table.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Table field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TableMutation) AddedFields() []string {
	var fields []string
	if m.addcapacity != nil {
		fields = append(fields, table.FieldCapacity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TableMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case table.FieldCapacity:
		return m.AddedCapacity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TableMutation) AddField(name string, value ent.Value) error {
	switch name {
	case table.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCapacity(v)
		return nil
	}
	return fmt.Errorf("unknown Table numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TableMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TableMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TableMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Table nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TableMutation) ResetField(name string) error {
	switch name {
	case table.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case table.FieldTableNumber:
		m.ResetTableNumber()
		return nil
	case table.FieldCapacity:
		m.ResetCapacity()
		return nil
	case table.FieldStatus:
		m.ResetStatus()
		return nil
	case table.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case table.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Table field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TableMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.business != nil {
		edges = append(edges, table.EdgeBusiness)
	}
	if m.orders != nil {
		edges = append(edges, table.EdgeOrders)
	}
	if m.waiter_alerts != nil {
		edges = append(edges, table.EdgeWaiterAlerts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TableMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case table.EdgeBusiness:
		if id := m.business; id != nil {
			return []ent.Value{*id}
		}
	case table.EdgeOrders:
		ids := make([]ent.Value, 0, len(m.orders))
		for id := range m.orders {
			ids = append(ids, id)
		}
		return ids
	case table.EdgeWaiterAlerts:
		ids := make([]ent.Value, 0, len(m.waiter_alerts))
		for id := range m.waiter_alerts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TableMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedorders != nil {
		edges = append(edges, table.EdgeOrders)
	}
	if m.removedwaiter_alerts != nil {
		edges = append(edges, table.EdgeWaiterAlerts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TableMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case table.EdgeOrders:
		ids := make([]ent.Value, 0, len(m.removedorders))
		for id := range m.removedorders {
			ids = append(ids, id)
		}
		return ids
	case table.EdgeWaiterAlerts:
		ids := make([]ent.Value, 0, len(m.removedwaiter_alerts))
		for id := range m.removedwaiter_alerts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TableMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedbusiness {
		edges = append(edges, table.EdgeBusiness)
	}
	if m.clearedorders {
		edges = append(edges, table.EdgeOrders)
	}
	if m.clearedwaiter_alerts {
		edges = append(edges, table.EdgeWaiterAlerts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TableMutation) EdgeCleared(name string) bool {
	switch name {
	case table.EdgeBusiness:
		return m.clearedbusiness
	case table.EdgeOrders:
		return m.clearedorders
	case table.EdgeWaiterAlerts:
		return m.clearedwaiter_alerts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TableMutation) ClearEdge(name string) error {
	switch name {
	case table.EdgeBusiness:
		m.ClearBusiness()
		return nil
	}
	return fmt.Errorf("unknown Table unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TableMutation) ResetEdge(name string) error {
	switch name {
	case table.EdgeBusiness:
		m.ResetBusiness()
		return nil
	case table.EdgeOrders:
		m.ResetOrders()
		return nil
	case table.EdgeWaiterAlerts:
		m.ResetWaiterAlerts()
		return nil
	}
	return fmt.Errorf("unknown Table edge %s", name)
}

// WaiterAlertMutation represents an operation that mutates the WaiterAlert nodes in the graph.
type WaiterAlertMutation struct {
	config
	op              Op
	typ             string
	id              *int
	alert_type      *waiteralert.AlertType
	message         *string
	status          *waiteralert.Status
	acknowledged_at *time.Time
	resolved_at     *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	business        *int
	clearedbusiness bool
	table           *int
	clearedtable    bool
	done            bool
	oldValue        func(context.Context) (*WaiterAlert, error)
	predicates      []predicate.WaiterAlert
}

var _ ent.Mutation = (*WaiterAlertMutation)(nil)

// waiteralertOption allows management of the mutation configuration using functional options.
type waiteralertOption func(*WaiterAlertMutation)

// newWaiterAlertMutation creates new mutation for the WaiterAlert entity.
func newWaiterAlertMutation(c config, op Op, opts ...waiteralertOption) *WaiterAlertMutation {
	m := &WaiterAlertMutation{
		config:        c,
		op:            op,
		typ:           TypeWaiterAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWaiterAlertID sets the ID field of the mutation.
func withWaiterAlertID(id int) waiteralertOption {
	return func(m *WaiterAlertMutation) {
		var (
			err   error
			once  sync.Once
			value *WaiterAlert
		)
		m.oldValue = func(ctx context.Context) (*WaiterAlert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WaiterAlert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWaiterAlert sets the old WaiterAlert of the mutation.
func withWaiterAlert(node *WaiterAlert) waiteralertOption {
	return func(m *WaiterAlertMutation) {
		m.oldValue = func(context.Context) (*WaiterAlert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WaiterAlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WaiterAlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WaiterAlertMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WaiterAlertMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WaiterAlert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessID sets the "business_id" field.
func (m *WaiterAlertMutation) SetBusinessID(i int) {
	m.business = &i
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *WaiterAlertMutation) BusinessID() (r int, exists bool) {
	v := m.business
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the WaiterAlert entity.
// If the WaiterAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaiterAlertMutation) OldBusinessID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *WaiterAlertMutation) ResetBusinessID() {
	m.business = nil
}

// SetTableID sets the "table_id" field.
func (m *WaiterAlertMutation) SetTableID(i int) {
	m.table = &i
}

// TableID returns the value of the "table_id" field in the mutation.
func (m *WaiterAlertMutation) TableID() (r int, exists bool) {
	v := m.table
	if v == nil {
		return
	}
	return *v, true
}

// OldTableID returns the old "table_id" field's value of the WaiterAlert entity.
// If the WaiterAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaiterAlertMutation) OldTableID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableID: %w", err)
	}
	return oldValue.TableID, nil
}

// ResetTableID resets all changes to the "table_id" field.
func (m *WaiterAlertMutation) ResetTableID() {
	m.table = nil
}

// SetAlertType sets the "alert_type" field.
func (m *WaiterAlertMutation) SetAlertType(wt waiteralert.AlertType) {
	m.alert_type = &wt
}

// AlertType returns the value of the "alert_type" field in the mutation.
func (m *WaiterAlertMutation) AlertType() (r waiteralert.AlertType, exists bool) {
	v := m.alert_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertType returns the old "alert_type" field's value of the WaiterAlert entity.
// If the WaiterAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaiterAlertMutation) OldAlertType(ctx context.Context) (v waiteralert.AlertType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertType: %w", err)
	}
	return oldValue.AlertType, nil
}

// ResetAlertType resets all changes to the "alert_type" field.
func (m *WaiterAlertMutation) ResetAlertType() {
	m.alert_type = nil
}

// SetMessage sets the "message" field.
func (m *WaiterAlertMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *WaiterAlertMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the WaiterAlert entity.
// If the WaiterAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaiterAlertMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *WaiterAlertMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[waiteralert.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *WaiterAlertMutation) MessageCleared() bool {
	_, ok := m.clearedFields[waiteralert.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *WaiterAlertMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, waiteralert.FieldMessage)
}

// SetStatus sets the "status" field.
func (m *WaiterAlertMutation) SetStatus(w waiteralert.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WaiterAlertMutation) Status() (r waiteralert.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WaiterAlert entity.
// If the WaiterAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaiterAlertMutation) OldStatus(ctx context.Context) (v waiteralert.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WaiterAlertMutation) ResetStatus() {
	m.status = nil
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (m *WaiterAlertMutation) SetAcknowledgedAt(t time.Time) {
	m.acknowledged_at = &t
}

// AcknowledgedAt returns the value of the "acknowledged_at" field in the mutation.
func (m *WaiterAlertMutation) AcknowledgedAt() (r time.Time, exists bool) {
	v := m.acknowledged_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledgedAt returns the old "acknowledged_at" field's value of the WaiterAlert entity.
// If the WaiterAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaiterAlertMutation) OldAcknowledgedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledgedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledgedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledgedAt: %w", err)
	}
	return oldValue.AcknowledgedAt, nil
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (m *WaiterAlertMutation) ClearAcknowledgedAt() {
	m.acknowledged_at = nil
	m.clearedFields[waiteralert.FieldAcknowledgedAt] = struct{}{}
}

// AcknowledgedAtCleared returns if the "acknowledged_at" field was cleared in this mutation.
func (m *WaiterAlertMutation) AcknowledgedAtCleared() bool {
	_, ok := m.clearedFields[waiteralert.FieldAcknowledgedAt]
	return ok
}

// ResetAcknowledgedAt resets all changes to the "acknowledged_at" field.
func (m *WaiterAlertMutation) ResetAcknowledgedAt() {
	m.acknowledged_at = nil
	delete(m.clearedFields, waiteralert.FieldAcknowledgedAt)
}

// SetResolvedAt sets the "resolved_at" field.
func (m *WaiterAlertMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *WaiterAlertMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the WaiterAlert entity.
// If the WaiterAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaiterAlertMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *WaiterAlertMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[waiteralert.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *WaiterAlertMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[waiteralert.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *WaiterAlertMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, waiteralert.FieldResolvedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WaiterAlertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WaiterAlertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WaiterAlert entity.
// If the WaiterAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WaiterAlertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WaiterAlertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearBusiness clears the "business" edge to the Business entity.
func (m *WaiterAlertMutation) ClearBusiness() {
	m.clearedbusiness = true
	m.clearedFields[waiteralert.FieldBusinessID] = struct{}{}
}

// BusinessCleared reports if the "business" edge to the Business entity was cleared.
func (m *WaiterAlertMutation) BusinessCleared() bool {
	return m.clearedbusiness
}

// BusinessIDs returns the "business" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BusinessID instead. It exists only for internal usage by the builders.
func (m *WaiterAlertMutation) BusinessIDs() (ids []int) {
	if id := m.business; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBusiness resets all changes to the "business" edge.
func (m *WaiterAlertMutation) ResetBusiness() {
	m.business = nil
	m.clearedbusiness = false
}

// ClearTable clears the "table" edge to the Table entity.
func (m *WaiterAlertMutation) ClearTable() {
	m.clearedtable = true
	m.clearedFields[waiteralert.FieldTableID] = struct{}{}
}

// TableCleared reports if the "table" edge to the Table entity was cleared.
func (m *WaiterAlertMutation) TableCleared() bool {
	return m.clearedtable
}

// TableIDs returns the "table" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TableID instead. It exists only for internal usage by the builders.
func (m *WaiterAlertMutation) TableIDs() (ids []int) {
	if id := m.table; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTable resets all changes to the "table" edge.
func (m *WaiterAlertMutation) ResetTable() {
	m.table = nil
	m.clearedtable = false
}

// Where appends a list predicates to the WaiterAlertMutation builder.
func (m *WaiterAlertMutation) Where(ps ...predicate.WaiterAlert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WaiterAlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WaiterAlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WaiterAlert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WaiterAlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WaiterAlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WaiterAlert).
func (m *WaiterAlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WaiterAlertMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.business != nil {
		fields = append(fields, waiteralert.FieldBusinessID)
	}
	if m.table != nil {
		fields = append(fields, waiteralert.FieldTableID)
	}
	if m.alert_type != nil {
		fields = append(fields, waiteralert.FieldAlertType)
	}
	if m.message != nil {
		fields = append(fields, waiteralert.FieldMessage)
	}
	if m.status != nil {
		fields = append(fields, waiteralert.FieldStatus)
	}
	if m.acknowledged_at != nil {
		fields = append(fields, waiteralert.FieldAcknowledgedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, waiteralert.FieldResolvedAt)
	}
	if m.created_at != nil {
		fields = append(fields, waiteralert.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WaiterAlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case waiteralert.FieldBusinessID:
		return m.BusinessID()
	case waiteralert.FieldTableID:
		return m.TableID()
	case waiteralert.FieldAlertType:
		return m.AlertType()
	case waiteralert.FieldMessage:
		return m.Message()
	case waiteralert.FieldStatus:
		return m.Status()
	case waiteralert.FieldAcknowledgedAt:
		return m.AcknowledgedAt()
	case waiteralert.FieldResolvedAt:
		return m.ResolvedAt()
	case waiteralert.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WaiterAlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case waiteralert.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case waiteralert.FieldTableID:
		return m.OldTableID(ctx)
	case waiteralert.FieldAlertType:
		return m.OldAlertType(ctx)
	case waiteralert.FieldMessage:
		return m.OldMessage(ctx)
	case waiteralert.FieldStatus:
		return m.OldStatus(ctx)
	case waiteralert.FieldAcknowledgedAt:
		return m.OldAcknowledgedAt(ctx)
	case waiteralert.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case waiteralert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WaiterAlert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WaiterAlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case waiteralert.FieldBusinessID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case waiteralert.FieldTableID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableID(v)
		return nil
	case waiteralert.FieldAlertType:
		v, ok := value.(waiteralert.AlertType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertType(v)
		return nil
	case waiteralert.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case waiteralert.FieldStatus:
		v, ok := value.(waiteralert.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case waiteralert.FieldAcknowledgedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledgedAt(v)
		return nil
	case waiteralert.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case waiteralert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WaiterAlert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WaiterAlertMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WaiterAlertMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WaiterAlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WaiterAlert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WaiterAlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(waiteralert.FieldMessage) {
		fields = append(fields, waiteralert.FieldMessage)
	}
	if m.FieldCleared(waiteralert.FieldAcknowledgedAt) {
		fields = append(fields, waiteralert.FieldAcknowledgedAt)
	}
	if m.FieldCleared(waiteralert.FieldResolvedAt) {
		fields = append(fields, waiteralert.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WaiterAlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WaiterAlertMutation) ClearField(name string) error {
	switch name {
	case waiteralert.FieldMessage:
		m.ClearMessage()
		return nil
	case waiteralert.FieldAcknowledgedAt:
		m.ClearAcknowledgedAt()
		return nil
	case waiteralert.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown WaiterAlert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WaiterAlertMutation) ResetField(name string) error {
	switch name {
	case waiteralert.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case waiteralert.FieldTableID:
		m.ResetTableID()
		return nil
	case waiteralert.FieldAlertType:
		m.ResetAlertType()
		return nil
	case waiteralert.FieldMessage:
		m.ResetMessage()
		return nil
	case waiteralert.FieldStatus:
		m.ResetStatus()
		return nil
	case waiteralert.FieldAcknowledgedAt:
		m.ResetAcknowledgedAt()
		return nil
	case waiteralert.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case waiteralert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WaiterAlert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WaiterAlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.business != nil {
		edges = append(edges, waiteralert.EdgeBusiness)
	}
	if m.table != nil {
		edges = append(edges, waiteralert.EdgeTable)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WaiterAlertMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case waiteralert.EdgeBusiness:
		if id := m.business; id != nil {
			return []ent.Value{*id}
		}
	case waiteralert.EdgeTable:
		if id := m.table; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WaiterAlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WaiterAlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WaiterAlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbusiness {
		edges = append(edges, waiteralert.EdgeBusiness)
	}
	if m.clearedtable {
		edges = append(edges, waiteralert.EdgeTable)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WaiterAlertMutation) EdgeCleared(name string) bool {
	switch name {
	case waiteralert.EdgeBusiness:
		return m.clearedbusiness
	case waiteralert.EdgeTable:
		return m.clearedtable
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WaiterAlertMutation) ClearEdge(name string) error {
	switch name {
	case waiteralert.EdgeBusiness:
		m.ClearBusiness()
		return nil
	case waiteralert.EdgeTable:
		m.ClearTable()
		return nil
	}
	return fmt.Errorf("unknown WaiterAlert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WaiterAlertMutation) ResetEdge(name string) error {
	switch name {
	case waiteralert.EdgeBusiness:
		m.ResetBusiness()
		return nil
	case waiteralert.EdgeTable:
		m.ResetTable()
		return nil
	}
	return fmt.Errorf("unknown WaiterAlert edge %s", name)
}
