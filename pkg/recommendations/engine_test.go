package recommendations

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/ent/category"
	"github.com/menuqr/menuqr/ent/enttest"
	"github.com/menuqr/menuqr/ent/itempairfrequency"
	"github.com/menuqr/menuqr/ent/order"
	"github.com/menuqr/menuqr/ent/recommendationevent"
	"github.com/menuqr/menuqr/pkg/cache"
	"github.com/menuqr/menuqr/pkg/logger"
	"github.com/menuqr/menuqr/pkg/metrics"
)

func setupDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func setupCache(t *testing.T) *cache.Client {
	mr := miniredis.RunT(t)
	client, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func newTestEngine(db *ent.Client, c *cache.Client) *Engine {
	return NewEngine(db, c, logger.New("error"), DefaultOptions())
}

func createBusiness(t *testing.T, db *ent.Client, name string) *ent.Business {
	b, err := db.Business.Create().
		SetName(name).
		SetBusinessType("restaurant").
		SetSlug(name).
		Save(context.Background())
	require.NoError(t, err)
	return b
}

func createMenuItem(t *testing.T, db *ent.Client, biz *ent.Business, name string, price float64) *ent.MenuItem {
	ctx := context.Background()
	cat, err := db.Category.Query().
		Where(category.BusinessIDEQ(biz.ID)).
		First(ctx)
	if ent.IsNotFound(err) {
		cat, err = db.Category.Create().
			SetBusinessID(biz.ID).
			SetName("Mains").
			Save(ctx)
	}
	require.NoError(t, err)

	item, err := db.MenuItem.Create().
		SetCategoryID(cat.ID).
		SetName(name).
		SetPrice(price).
		Save(ctx)
	require.NoError(t, err)
	return item
}

type orderLine struct {
	item *ent.MenuItem
	qty  int
}

func createOrder(t *testing.T, db *ent.Client, biz *ent.Business, status order.Status, lines ...orderLine) *ent.Order {
	ctx := context.Background()
	o, err := db.Order.Create().
		SetBusinessID(biz.ID).
		SetLocation("table 1").
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)

	for _, l := range lines {
		_, err := db.OrderItem.Create().
			SetOrderID(o.ID).
			SetMenuItemID(l.item.ID).
			SetQuantity(l.qty).
			SetPriceAtOrder(l.item.Price).
			Save(ctx)
		require.NoError(t, err)
	}

	return o
}

func pairFor(t *testing.T, db *ent.Client, biz *ent.Business, a, b *ent.MenuItem) *ent.ItemPairFrequency {
	x, y := a.ID, b.ID
	if y < x {
		x, y = y, x
	}
	p, err := db.ItemPairFrequency.Query().
		Where(
			itempairfrequency.BusinessIDEQ(biz.ID),
			itempairfrequency.ItemAIDEQ(x),
			itempairfrequency.ItemBIDEQ(y),
		).
		Only(context.Background())
	require.NoError(t, err)
	return p
}

func TestUpdatePairsFromOrder_SkipsNonCompletedOrders(t *testing.T) {
	db := setupDB(t)
	engine := newTestEngine(db, nil)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	pizza := createMenuItem(t, db, biz, "Pizza", 12.00)
	cola := createMenuItem(t, db, biz, "Cola", 3.50)

	o := createOrder(t, db, biz, order.StatusPending, orderLine{pizza, 1}, orderLine{cola, 1})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o.ID))

	count, err := db.ItemPairFrequency.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestUpdatePairsFromOrder_SingleItemOrderIsNoOp(t *testing.T) {
	db := setupDB(t)
	engine := newTestEngine(db, nil)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	pizza := createMenuItem(t, db, biz, "Pizza", 12.00)

	// Quantity does not matter, only distinct items do
	o := createOrder(t, db, biz, order.StatusCompleted, orderLine{pizza, 3})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o.ID))

	count, err := db.ItemPairFrequency.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestUpdatePairsFromOrder_CreatesCanonicalPairs(t *testing.T) {
	db := setupDB(t)
	engine := newTestEngine(db, nil)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	pizza := createMenuItem(t, db, biz, "Pizza", 12.00)
	cola := createMenuItem(t, db, biz, "Cola", 3.50)
	salad := createMenuItem(t, db, biz, "Salad", 8.00)

	o := createOrder(t, db, biz, order.StatusCompleted,
		orderLine{pizza, 1}, orderLine{cola, 2}, orderLine{salad, 1})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o.ID))

	pairs, err := db.ItemPairFrequency.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, pairs, 3)

	for _, p := range pairs {
		assert.Less(t, p.ItemAID, p.ItemBID, "pairs must be stored smaller id first")
		assert.Equal(t, 1, p.TimesTogether)
		assert.Equal(t, biz.ID, p.BusinessID)
	}
}

func TestUpdatePairsFromOrder_IncrementsAndRecomputesConfidence(t *testing.T) {
	db := setupDB(t)
	engine := newTestEngine(db, nil)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	pizza := createMenuItem(t, db, biz, "Pizza", 12.00)
	cola := createMenuItem(t, db, biz, "Cola", 3.50)
	salad := createMenuItem(t, db, biz, "Salad", 8.00)

	o1 := createOrder(t, db, biz, order.StatusCompleted, orderLine{pizza, 1}, orderLine{cola, 1})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o1.ID))

	o2 := createOrder(t, db, biz, order.StatusCompleted,
		orderLine{pizza, 1}, orderLine{cola, 1}, orderLine{salad, 1})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o2.ID))

	pizzaCola := pairFor(t, db, biz, pizza, cola)
	assert.Equal(t, 2, pizzaCola.TimesTogether)
	// Pizza appears in two completed orders, both with cola
	assert.InDelta(t, 1.0, pizzaCola.Confidence, 0.0001)

	pizzaSalad := pairFor(t, db, biz, pizza, salad)
	assert.Equal(t, 1, pizzaSalad.TimesTogether)
	assert.InDelta(t, 0.5, pizzaSalad.Confidence, 0.0001)

	colaSalad := pairFor(t, db, biz, cola, salad)
	assert.Equal(t, 1, colaSalad.TimesTogether)
	assert.InDelta(t, 0.5, colaSalad.Confidence, 0.0001)
}

func TestUpdatePairsFromOrder_DoubleInvocationCountsTwice(t *testing.T) {
	db := setupDB(t)
	engine := newTestEngine(db, nil)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	pizza := createMenuItem(t, db, biz, "Pizza", 12.00)
	cola := createMenuItem(t, db, biz, "Cola", 3.50)

	o := createOrder(t, db, biz, order.StatusCompleted, orderLine{pizza, 1}, orderLine{cola, 1})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o.ID))
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o.ID))

	// The engine trusts its caller to invoke it once per completion
	p := pairFor(t, db, biz, pizza, cola)
	assert.Equal(t, 2, p.TimesTogether)
}

func TestUpdatePairsFromOrder_TenantIsolation(t *testing.T) {
	db := setupDB(t)
	engine := newTestEngine(db, nil)
	ctx := context.Background()

	bizA := createBusiness(t, db, "bistro")
	bizB := createBusiness(t, db, "cantina")
	pizzaA := createMenuItem(t, db, bizA, "Pizza", 12.00)
	colaA := createMenuItem(t, db, bizA, "Cola", 3.50)

	o := createOrder(t, db, bizA, order.StatusCompleted, orderLine{pizzaA, 1}, orderLine{colaA, 1})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o.ID))

	countB, err := db.ItemPairFrequency.Query().
		Where(itempairfrequency.BusinessIDEQ(bizB.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, countB)
}

func TestGetRecommendations_ThresholdsAndOrdering(t *testing.T) {
	db := setupDB(t)
	engine := newTestEngine(db, nil)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	pizza := createMenuItem(t, db, biz, "Pizza", 12.00)
	cola := createMenuItem(t, db, biz, "Cola", 3.50)
	salad := createMenuItem(t, db, biz, "Salad", 8.00)

	o1 := createOrder(t, db, biz, order.StatusCompleted, orderLine{pizza, 1}, orderLine{cola, 1})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o1.ID))
	o2 := createOrder(t, db, biz, order.StatusCompleted,
		orderLine{pizza, 1}, orderLine{cola, 1}, orderLine{salad, 1})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o2.ID))

	recs, err := engine.GetRecommendations(ctx, biz.ID, pizza.ID, 3)
	require.NoError(t, err)

	// Salad co-occurred only once with pizza, below the threshold
	require.Len(t, recs, 1)
	assert.Equal(t, cola.ID, recs[0].MenuItemID)
	assert.Equal(t, "Cola", recs[0].Name)
	assert.Equal(t, "2 customers bought both", recs[0].Reason)
	assert.InDelta(t, 100.0, recs[0].Confidence, 0.001)
}

func TestGetRecommendations_SkipsUnavailableWithoutBackfill(t *testing.T) {
	db := setupDB(t)
	engine := newTestEngine(db, nil)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	pizza := createMenuItem(t, db, biz, "Pizza", 12.00)
	cola := createMenuItem(t, db, biz, "Cola", 3.50)

	for i := 0; i < 2; i++ {
		o := createOrder(t, db, biz, order.StatusCompleted, orderLine{pizza, 1}, orderLine{cola, 1})
		require.NoError(t, engine.UpdatePairsFromOrder(ctx, o.ID))
	}

	require.NoError(t, db.MenuItem.UpdateOneID(cola.ID).SetIsAvailable(false).Exec(ctx))

	recs, err := engine.GetRecommendations(ctx, biz.ID, pizza.ID, 3)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestGetRecommendations_CacheAndInvalidation(t *testing.T) {
	db := setupDB(t)
	c := setupCache(t)
	engine := newTestEngine(db, c)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	pizza := createMenuItem(t, db, biz, "Pizza", 12.00)
	cola := createMenuItem(t, db, biz, "Cola", 3.50)

	for i := 0; i < 2; i++ {
		o := createOrder(t, db, biz, order.StatusCompleted, orderLine{pizza, 1}, orderLine{cola, 1})
		require.NoError(t, engine.UpdatePairsFromOrder(ctx, o.ID))
	}

	recs, err := engine.GetRecommendations(ctx, biz.ID, pizza.ID, 3)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	// Flushing the cached lists makes a direct DB change visible at once
	require.NoError(t, db.MenuItem.UpdateOneID(cola.ID).SetIsAvailable(false).Exec(ctx))
	require.NoError(t, InvalidateCachedLists(ctx, c, biz.ID))
	recs, err = engine.GetRecommendations(ctx, biz.ID, pizza.ID, 3)
	require.NoError(t, err)
	assert.Empty(t, recs)

	// A pair write for the tenant invalidates the cached lists too
	require.NoError(t, db.MenuItem.UpdateOneID(cola.ID).SetIsAvailable(true).Exec(ctx))
	o := createOrder(t, db, biz, order.StatusCompleted, orderLine{pizza, 1}, orderLine{cola, 1})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o.ID))

	recs, err = engine.GetRecommendations(ctx, biz.ID, pizza.ID, 3)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, cola.ID, recs[0].MenuItemID)
}

func TestTrackImpression(t *testing.T) {
	db := setupDB(t)
	engine := newTestEngine(db, nil)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	pizza := createMenuItem(t, db, biz, "Pizza", 12.00)
	cola := createMenuItem(t, db, biz, "Cola", 3.50)
	salad := createMenuItem(t, db, biz, "Salad", 8.00)

	o := createOrder(t, db, biz, order.StatusCompleted, orderLine{pizza, 1}, orderLine{cola, 1})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o.ID))

	t.Run("with known source pair", func(t *testing.T) {
		require.NoError(t, engine.TrackImpression(ctx, biz.ID, &pizza.ID, cola.ID))

		p := pairFor(t, db, biz, pizza, cola)
		assert.Equal(t, 1, p.TimesRecommended)

		count, err := db.RecommendationEvent.Query().
			Where(recommendationevent.EventTypeEQ(recommendationevent.EventTypeImpression)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("missing pair is a soft no-op", func(t *testing.T) {
		require.NoError(t, engine.TrackImpression(ctx, biz.ID, &pizza.ID, salad.ID))

		count, err := db.RecommendationEvent.Query().
			Where(recommendationevent.EventTypeEQ(recommendationevent.EventTypeImpression)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count, "event is still recorded")
	})

	t.Run("without recommended item nothing is recorded", func(t *testing.T) {
		require.NoError(t, engine.TrackImpression(ctx, biz.ID, &pizza.ID, 0))

		count, err := db.RecommendationEvent.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestTrackConversion_CreditsAllPairsContainingItem(t *testing.T) {
	db := setupDB(t)
	engine := newTestEngine(db, nil)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	pizza := createMenuItem(t, db, biz, "Pizza", 12.00)
	cola := createMenuItem(t, db, biz, "Cola", 7.50)
	salad := createMenuItem(t, db, biz, "Salad", 8.00)

	o1 := createOrder(t, db, biz, order.StatusCompleted, orderLine{pizza, 1}, orderLine{cola, 1})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o1.ID))
	o2 := createOrder(t, db, biz, order.StatusCompleted, orderLine{salad, 1}, orderLine{cola, 1})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o2.ID))

	converting := createOrder(t, db, biz, order.StatusDelivered, orderLine{cola, 2})
	require.NoError(t, engine.TrackConversion(ctx, biz.ID, cola.ID, converting.ID, nil))

	pizzaCola := pairFor(t, db, biz, pizza, cola)
	assert.Equal(t, 1, pizzaCola.TimesConverted)
	assert.InDelta(t, 15.0, pizzaCola.RevenueGenerated, 0.0001)

	colaSalad := pairFor(t, db, biz, cola, salad)
	assert.Equal(t, 1, colaSalad.TimesConverted)
	assert.InDelta(t, 15.0, colaSalad.RevenueGenerated, 0.0001)

	ev, err := db.RecommendationEvent.Query().
		Where(recommendationevent.EventTypeEQ(recommendationevent.EventTypeConversion)).
		Only(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, ev.Revenue, 0.0001)
}

func TestTrackConversion_NoMatchingLineMeansZeroRevenue(t *testing.T) {
	db := setupDB(t)
	engine := newTestEngine(db, nil)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	pizza := createMenuItem(t, db, biz, "Pizza", 12.00)
	cola := createMenuItem(t, db, biz, "Cola", 3.50)

	o := createOrder(t, db, biz, order.StatusCompleted, orderLine{pizza, 1}, orderLine{cola, 1})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o.ID))

	withoutCola := createOrder(t, db, biz, order.StatusDelivered, orderLine{pizza, 1})
	require.NoError(t, engine.TrackConversion(ctx, biz.ID, cola.ID, withoutCola.ID, nil))

	p := pairFor(t, db, biz, pizza, cola)
	assert.Equal(t, 1, p.TimesConverted)
	assert.InDelta(t, 0.0, p.RevenueGenerated, 0.0001)
}

func TestTrackConversion_ExplicitRevenueOverridesOrderLine(t *testing.T) {
	db := setupDB(t)
	engine := newTestEngine(db, nil)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	pizza := createMenuItem(t, db, biz, "Pizza", 12.00)
	cola := createMenuItem(t, db, biz, "Cola", 3.50)

	o := createOrder(t, db, biz, order.StatusCompleted, orderLine{pizza, 1}, orderLine{cola, 1})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o.ID))

	// The order line would yield 2 x 3.50, the caller's value wins
	converting := createOrder(t, db, biz, order.StatusDelivered, orderLine{cola, 2})
	revenue := 4.25
	require.NoError(t, engine.TrackConversion(ctx, biz.ID, cola.ID, converting.ID, &revenue))

	p := pairFor(t, db, biz, pizza, cola)
	assert.Equal(t, 1, p.TimesConverted)
	assert.InDelta(t, 4.25, p.RevenueGenerated, 0.0001)

	ev, err := db.RecommendationEvent.Query().
		Where(recommendationevent.EventTypeEQ(recommendationevent.EventTypeConversion)).
		Only(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 4.25, ev.Revenue, 0.0001)
}

// Metrics register on the process-wide default registry, so one test owns
// the single metrics.New call for this package.
func TestEngineMetrics(t *testing.T) {
	db := setupDB(t)
	c := setupCache(t)
	m := metrics.New()
	engine := newTestEngine(db, c).WithMetrics(m)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	pizza := createMenuItem(t, db, biz, "Pizza", 12.00)
	cola := createMenuItem(t, db, biz, "Cola", 3.50)
	salad := createMenuItem(t, db, biz, "Salad", 8.00)

	o := createOrder(t, db, biz, order.StatusCompleted,
		orderLine{pizza, 1}, orderLine{cola, 1}, orderLine{salad, 1})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o.ID))

	// Three distinct items make three pairs
	assert.InDelta(t, 3.0, testutil.ToFloat64(m.ItemPairsUpdated), 0.0001)

	_, err := engine.GetRecommendations(ctx, biz.ID, pizza.ID, 3)
	require.NoError(t, err)
	_, err = engine.GetRecommendations(ctx, biz.ID, pizza.ID, 3)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, testutil.ToFloat64(m.CacheMisses.WithLabelValues("recommendations")), 0.0001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.CacheHits.WithLabelValues("recommendations")), 0.0001)
}

func TestRecomputeConfidence_HealsDrift(t *testing.T) {
	db := setupDB(t)
	engine := newTestEngine(db, nil)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	pizza := createMenuItem(t, db, biz, "Pizza", 12.00)
	cola := createMenuItem(t, db, biz, "Cola", 3.50)

	o := createOrder(t, db, biz, order.StatusCompleted, orderLine{pizza, 1}, orderLine{cola, 1})
	require.NoError(t, engine.UpdatePairsFromOrder(ctx, o.ID))

	p := pairFor(t, db, biz, pizza, cola)
	require.NoError(t, db.ItemPairFrequency.UpdateOneID(p.ID).SetConfidence(0.01).Exec(ctx))

	updated, err := engine.RecomputeConfidence(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	p = pairFor(t, db, biz, pizza, cola)
	assert.InDelta(t, 1.0, p.Confidence, 0.0001)
}
