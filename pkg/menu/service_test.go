package menu

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/ent/enttest"
	"github.com/menuqr/menuqr/ent/order"
	"github.com/menuqr/menuqr/pkg/cache"
	"github.com/menuqr/menuqr/pkg/domain"
	"github.com/menuqr/menuqr/pkg/logger"
	"github.com/menuqr/menuqr/pkg/recommendations"
)

func setupMenu(t *testing.T, withCache bool) (*Service, *ent.Client, *ent.Business) {
	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { db.Close() })

	var cacheClient *cache.Client
	if withCache {
		mr := miniredis.RunT(t)
		var err error
		cacheClient, err = cache.NewClient("redis://" + mr.Addr())
		require.NoError(t, err)
		t.Cleanup(func() { cacheClient.Close() })
	}

	biz, err := db.Business.Create().
		SetName("Bistro").
		SetBusinessType("restaurant").
		SetSlug("bistro").
		Save(context.Background())
	require.NoError(t, err)

	return NewService(db, cacheClient, logger.New("error")), db, biz
}

func TestGetPublicMenu(t *testing.T) {
	svc, _, biz := setupMenu(t, false)
	ctx := context.Background()

	drinks, err := svc.CreateCategory(ctx, biz.ID, CreateCategoryInput{Name: "Drinks", SortOrder: 2})
	require.NoError(t, err)
	mains, err := svc.CreateCategory(ctx, biz.ID, CreateCategoryInput{Name: "Mains", SortOrder: 1})
	require.NoError(t, err)

	_, err = svc.CreateItem(ctx, biz.ID, CreateItemInput{CategoryID: mains.ID, Name: "Pizza", Price: 12.50})
	require.NoError(t, err)
	_, err = svc.CreateItem(ctx, biz.ID, CreateItemInput{CategoryID: drinks.ID, Name: "Cola", Price: 3})
	require.NoError(t, err)

	m, err := svc.GetPublicMenu(ctx, "bistro")
	require.NoError(t, err)

	assert.Equal(t, biz.ID, m.BusinessID)
	require.Len(t, m.Categories, 2)
	// Categories come back in sort order, not creation order
	assert.Equal(t, "Mains", m.Categories[0].Name)
	assert.Equal(t, "Drinks", m.Categories[1].Name)
	require.Len(t, m.Categories[0].Items, 1)
	assert.Equal(t, "Pizza", m.Categories[0].Items[0].Name)
	assert.True(t, m.Categories[0].Items[0].IsAvailable)
}

func TestGetPublicMenu_UnknownSlug(t *testing.T) {
	svc, _, _ := setupMenu(t, false)

	_, err := svc.GetPublicMenu(context.Background(), "nope")
	assert.True(t, domain.IsNotFound(err))
}

func TestGetPublicMenu_CacheInvalidation(t *testing.T) {
	svc, _, biz := setupMenu(t, true)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, biz.ID, CreateCategoryInput{Name: "Mains"})
	require.NoError(t, err)
	item, err := svc.CreateItem(ctx, biz.ID, CreateItemInput{CategoryID: cat.ID, Name: "Pizza", Price: 12.50})
	require.NoError(t, err)

	// Prime the cache
	m, err := svc.GetPublicMenu(ctx, "bistro")
	require.NoError(t, err)
	assert.True(t, m.Categories[0].Items[0].IsAvailable)

	// Toggling availability must invalidate the cached menu
	_, err = svc.SetAvailability(ctx, biz.ID, item.ID, false)
	require.NoError(t, err)

	m, err = svc.GetPublicMenu(ctx, "bistro")
	require.NoError(t, err)
	require.Len(t, m.Categories[0].Items, 1)
	assert.False(t, m.Categories[0].Items[0].IsAvailable)
}

func TestSetAvailability_FlushesRecommendationLists(t *testing.T) {
	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { cacheClient.Close() })

	log := logger.New("error")
	svc := NewService(db, cacheClient, log)
	engine := recommendations.NewEngine(db, cacheClient, log, recommendations.DefaultOptions())
	ctx := context.Background()

	biz, err := db.Business.Create().
		SetName("Bistro").
		SetBusinessType("restaurant").
		SetSlug("bistro").
		Save(ctx)
	require.NoError(t, err)

	cat, err := svc.CreateCategory(ctx, biz.ID, CreateCategoryInput{Name: "Mains"})
	require.NoError(t, err)
	pizza, err := svc.CreateItem(ctx, biz.ID, CreateItemInput{CategoryID: cat.ID, Name: "Pizza", Price: 12.50})
	require.NoError(t, err)
	cola, err := svc.CreateItem(ctx, biz.ID, CreateItemInput{CategoryID: cat.ID, Name: "Cola", Price: 3})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		o, err := db.Order.Create().
			SetBusinessID(biz.ID).
			SetLocation("table 1").
			SetStatus(order.StatusCompleted).
			Save(ctx)
		require.NoError(t, err)
		for _, it := range []*ent.MenuItem{pizza, cola} {
			_, err = db.OrderItem.Create().
				SetOrderID(o.ID).
				SetMenuItemID(it.ID).
				SetQuantity(1).
				SetPriceAtOrder(it.Price).
				Save(ctx)
			require.NoError(t, err)
		}
		require.NoError(t, engine.UpdatePairsFromOrder(ctx, o.ID))
	}

	// Prime the recommendation cache
	recs, err := engine.GetRecommendations(ctx, biz.ID, pizza.ID, 3)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, cola.ID, recs[0].MenuItemID)

	// Disabling an item must drop it from recommendations at once, the
	// cached list cannot keep serving it until the TTL runs out
	_, err = svc.SetAvailability(ctx, biz.ID, cola.ID, false)
	require.NoError(t, err)

	recs, err = engine.GetRecommendations(ctx, biz.ID, pizza.ID, 3)
	require.NoError(t, err)
	assert.Empty(t, recs)

	// Re-enabling brings it back the same way
	_, err = svc.SetAvailability(ctx, biz.ID, cola.ID, true)
	require.NoError(t, err)

	recs, err = engine.GetRecommendations(ctx, biz.ID, pizza.ID, 3)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, cola.ID, recs[0].MenuItemID)
}

func TestCreateItem_ForeignCategory(t *testing.T) {
	svc, db, biz := setupMenu(t, false)
	ctx := context.Background()

	other, err := db.Business.Create().
		SetName("Other").
		SetBusinessType("cafe").
		SetSlug("other").
		Save(ctx)
	require.NoError(t, err)
	foreignCat, err := db.Category.Create().
		SetBusinessID(other.ID).
		SetName("Theirs").
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.CreateItem(ctx, biz.ID, CreateItemInput{CategoryID: foreignCat.ID, Name: "Pizza", Price: 10})
	assert.True(t, domain.IsValidation(err))
}

func TestSetAvailability_UnknownItem(t *testing.T) {
	svc, _, biz := setupMenu(t, false)

	_, err := svc.SetAvailability(context.Background(), biz.ID, 999, false)
	assert.True(t, domain.IsNotFound(err))
}
