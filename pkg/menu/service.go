package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/ent/business"
	"github.com/menuqr/menuqr/ent/category"
	"github.com/menuqr/menuqr/ent/menuitem"
	"github.com/menuqr/menuqr/pkg/cache"
	"github.com/menuqr/menuqr/pkg/domain"
	"github.com/menuqr/menuqr/pkg/logger"
	"github.com/menuqr/menuqr/pkg/recommendations"
)

const menuCacheTTL = 10 * time.Minute

// Service serves the public menu and staff menu management
type Service struct {
	db    *ent.Client
	cache *cache.Client
	log   logger.Logger
}

// NewService creates a new menu service. cacheClient may be nil.
func NewService(db *ent.Client, cacheClient *cache.Client, log logger.Logger) *Service {
	return &Service{db: db, cache: cacheClient, log: log}
}

// ItemView is one menu item as shown to customers
type ItemView struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	ImageKey        string  `json:"image_key,omitempty"`
	IsAvailable     bool    `json:"is_available"`
	IsVegetarian    bool    `json:"is_vegetarian"`
	IsVegan         bool    `json:"is_vegan"`
	IsGlutenFree    bool    `json:"is_gluten_free"`
	IsFeatured      bool    `json:"is_featured"`
	IsDailySpecial  bool    `json:"is_daily_special"`
	SpiceLevel      string  `json:"spice_level"`
	Allergens       string  `json:"allergens,omitempty"`
	PrepTimeMinutes int     `json:"prep_time_minutes"`
}

// CategoryView is one menu section with its items
type CategoryView struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	SortOrder int        `json:"sort_order"`
	Items     []ItemView `json:"items"`
}

// PublicMenu is the full customer-facing menu for one business
type PublicMenu struct {
	BusinessID    int            `json:"business_id"`
	BusinessName  string         `json:"business_name"`
	BusinessType  string         `json:"business_type"`
	CurrencyCode  string         `json:"currency_code"`
	MenuTheme     string         `json:"menu_theme"`
	TablesEnabled bool           `json:"tables_enabled"`
	AlertsEnabled bool           `json:"alerts_enabled"`
	Categories    []CategoryView `json:"categories"`
}

// GetPublicMenu returns the menu for a business slug, cached. Unavailable
// items are included with their flag so the frontend can gray them out.
func (s *Service) GetPublicMenu(ctx context.Context, slug string) (*PublicMenu, error) {
	cacheKey := "menu:" + slug
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
			var m PublicMenu
			if err := json.Unmarshal([]byte(cached), &m); err == nil {
				return &m, nil
			}
		}
	}

	biz, err := s.db.Business.Query().
		Where(business.SlugEQ(slug), business.IsActiveEQ(true)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, domain.NewNotFoundError("business")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load business: %w", err)
	}

	categories, err := s.db.Category.Query().
		Where(category.BusinessIDEQ(biz.ID)).
		WithMenuItems(func(q *ent.MenuItemQuery) {
			q.Order(ent.Asc(menuitem.FieldName))
		}).
		Order(ent.Asc(category.FieldSortOrder), ent.Asc(category.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	m := &PublicMenu{
		BusinessID:    biz.ID,
		BusinessName:  biz.Name,
		BusinessType:  string(biz.BusinessType),
		CurrencyCode:  biz.CurrencyCode,
		MenuTheme:     string(biz.MenuTheme),
		TablesEnabled: biz.EnableTableManagement,
		AlertsEnabled: biz.EnableWaiterAlerts,
		Categories:    make([]CategoryView, 0, len(categories)),
	}
	for _, c := range categories {
		view := CategoryView{
			ID:        c.ID,
			Name:      c.Name,
			SortOrder: c.SortOrder,
			Items:     make([]ItemView, 0, len(c.Edges.MenuItems)),
		}
		for _, it := range c.Edges.MenuItems {
			view.Items = append(view.Items, ItemView{
				ID:              it.ID,
				Name:            it.Name,
				Description:     it.Description,
				Price:           it.Price,
				ImageKey:        it.ImageKey,
				IsAvailable:     it.IsAvailable,
				IsVegetarian:    it.IsVegetarian,
				IsVegan:         it.IsVegan,
				IsGlutenFree:    it.IsGlutenFree,
				IsFeatured:      it.IsFeatured,
				IsDailySpecial:  it.IsDailySpecial,
				SpiceLevel:      string(it.SpiceLevel),
				Allergens:       it.Allergens,
				PrepTimeMinutes: it.PrepTimeMinutes,
			})
		}
		m.Categories = append(m.Categories, view)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(m); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, menuCacheTTL); err != nil {
				s.log.Warn("failed to cache menu", "slug", slug, "error", err)
			}
		}
	}

	return m, nil
}

// CreateCategoryInput holds the fields for a new menu section
type CreateCategoryInput struct {
	Name      string `json:"name" validate:"required,max=100"`
	SortOrder int    `json:"sort_order" validate:"min=0"`
}

// CreateCategory adds a menu section to a business
func (s *Service) CreateCategory(ctx context.Context, businessID int, input CreateCategoryInput) (*ent.Category, error) {
	c, err := s.db.Category.Create().
		SetBusinessID(businessID).
		SetName(input.Name).
		SetSortOrder(input.SortOrder).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return nil, domain.NewConflictError("a category with this name already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.invalidateMenu(ctx, businessID)
	return c, nil
}

// CreateItemInput holds the fields for a new menu item
type CreateItemInput struct {
	CategoryID      int     `json:"category_id" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price" validate:"required,min=0"`
	IsVegetarian    bool    `json:"is_vegetarian"`
	IsVegan         bool    `json:"is_vegan"`
	IsGlutenFree    bool    `json:"is_gluten_free"`
	SpiceLevel      string  `json:"spice_level,omitempty"`
	Allergens       string  `json:"allergens,omitempty"`
	PrepTimeMinutes int     `json:"prep_time_minutes,omitempty"`
}

// CreateItem adds an item to a business's menu
func (s *Service) CreateItem(ctx context.Context, businessID int, input CreateItemInput) (*ent.MenuItem, error) {
	ok, err := s.db.Category.Query().
		Where(category.IDEQ(input.CategoryID), category.BusinessIDEQ(businessID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if !ok {
		return nil, domain.NewValidationError("category does not belong to this business")
	}

	builder := s.db.MenuItem.Create().
		SetCategoryID(input.CategoryID).
		SetName(input.Name).
		SetDescription(input.Description).
		SetPrice(input.Price).
		SetIsVegetarian(input.IsVegetarian).
		SetIsVegan(input.IsVegan).
		SetIsGlutenFree(input.IsGlutenFree).
		SetAllergens(input.Allergens)
	if input.SpiceLevel != "" {
		builder = builder.SetSpiceLevel(menuitem.SpiceLevel(input.SpiceLevel))
	}
	if input.PrepTimeMinutes > 0 {
		builder = builder.SetPrepTimeMinutes(input.PrepTimeMinutes)
	}

	item, err := builder.Save(ctx)
	if ent.IsConstraintError(err) {
		return nil, domain.NewConflictError("an item with this name already exists in the category")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.invalidateMenu(ctx, businessID)
	return item, nil
}

// SetAvailability toggles an item's availability. Both the public menu
// cache and the cached recommendation lists are invalidated, so a disabled
// item stops being recommended right away rather than lingering for the
// cache TTL.
func (s *Service) SetAvailability(ctx context.Context, businessID, itemID int, available bool) (*ent.MenuItem, error) {
	item, err := s.db.MenuItem.Query().
		Where(
			menuitem.IDEQ(itemID),
			menuitem.HasCategoryWith(category.BusinessIDEQ(businessID)),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, domain.NewNotFoundError("menu item")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}

	item, err = s.db.MenuItem.UpdateOne(item).
		SetIsAvailable(available).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update availability: %w", err)
	}

	s.invalidateMenu(ctx, businessID)
	if err := recommendations.InvalidateCachedLists(ctx, s.cache, businessID); err != nil {
		s.log.Warn("failed to invalidate recommendation cache",
			"business_id", businessID, "error", err)
	}
	return item, nil
}

// SetImageKey records the object storage key of an item's uploaded image
func (s *Service) SetImageKey(ctx context.Context, businessID, itemID int, key string) (*ent.MenuItem, error) {
	item, err := s.db.MenuItem.Query().
		Where(
			menuitem.IDEQ(itemID),
			menuitem.HasCategoryWith(category.BusinessIDEQ(businessID)),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, domain.NewNotFoundError("menu item")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}

	item, err = s.db.MenuItem.UpdateOne(item).
		SetImageKey(key).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update image: %w", err)
	}

	s.invalidateMenu(ctx, businessID)
	return item, nil
}

func (s *Service) invalidateMenu(ctx context.Context, businessID int) {
	if s.cache == nil {
		return
	}
	biz, err := s.db.Business.Get(ctx, businessID)
	if err != nil {
		s.log.Warn("failed to load business for cache invalidation",
			"business_id", businessID, "error", err)
		return
	}
	if err := s.cache.Delete(ctx, "menu:"+biz.Slug); err != nil {
		s.log.Warn("failed to invalidate menu cache", "slug", biz.Slug, "error", err)
	}
}
