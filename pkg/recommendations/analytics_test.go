package recommendations

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/ent/recommendationevent"
)

func seedEvent(t *testing.T, db *ent.Client, bizID, itemID int, eventType recommendationevent.EventType, revenue float64, createdAt time.Time) {
	_, err := db.RecommendationEvent.Create().
		SetBusinessID(bizID).
		SetRecommendedItemID(itemID).
		SetEventType(eventType).
		SetRevenue(revenue).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
}

func TestGetPerformanceSummary(t *testing.T) {
	db := setupDB(t)
	analytics := NewAnalytics(db)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	cola := createMenuItem(t, db, biz, "Cola", 3.50)

	now := time.Now()
	for i := 0; i < 4; i++ {
		seedEvent(t, db, biz.ID, cola.ID, recommendationevent.EventTypeImpression, 0, now.Add(-time.Hour))
	}
	seedEvent(t, db, biz.ID, cola.ID, recommendationevent.EventTypeConversion, 12.50, now.Add(-time.Hour))

	// Outside the window, must not count
	seedEvent(t, db, biz.ID, cola.ID, recommendationevent.EventTypeConversion, 99.0, now.AddDate(0, 0, -60))

	summary, err := analytics.GetPerformanceSummary(ctx, biz.ID, 30)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Impressions)
	assert.Equal(t, 1, summary.Conversions)
	assert.InDelta(t, 12.50, summary.Revenue, 0.0001)
	assert.InDelta(t, 25.0, summary.ConversionRate, 0.0001)
}

func TestGetPerformanceSummary_NoImpressions(t *testing.T) {
	db := setupDB(t)
	analytics := NewAnalytics(db)

	biz := createBusiness(t, db, "bistro")

	summary, err := analytics.GetPerformanceSummary(context.Background(), biz.ID, 30)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Impressions)
	assert.Zero(t, summary.ConversionRate)
}

func TestGetTopPerformingPairs(t *testing.T) {
	db := setupDB(t)
	analytics := NewAnalytics(db)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	pizza := createMenuItem(t, db, biz, "Pizza", 12.00)
	cola := createMenuItem(t, db, biz, "Cola", 3.50)
	salad := createMenuItem(t, db, biz, "Salad", 8.00)

	a, b := pizza.ID, cola.ID
	if b < a {
		a, b = b, a
	}
	_, err := db.ItemPairFrequency.Create().
		SetBusinessID(biz.ID).
		SetItemAID(a).
		SetItemBID(b).
		SetTimesTogether(5).
		SetTimesConverted(3).
		SetRevenueGenerated(45.0).
		Save(ctx)
	require.NoError(t, err)

	a, b = pizza.ID, salad.ID
	if b < a {
		a, b = b, a
	}
	_, err = db.ItemPairFrequency.Create().
		SetBusinessID(biz.ID).
		SetItemAID(a).
		SetItemBID(b).
		SetTimesTogether(4).
		SetTimesConverted(1).
		SetRevenueGenerated(8.0).
		Save(ctx)
	require.NoError(t, err)

	// Never converted, excluded from the report
	a, b = cola.ID, salad.ID
	if b < a {
		a, b = b, a
	}
	_, err = db.ItemPairFrequency.Create().
		SetBusinessID(biz.ID).
		SetItemAID(a).
		SetItemBID(b).
		SetTimesTogether(9).
		Save(ctx)
	require.NoError(t, err)

	pairs, err := analytics.GetTopPerformingPairs(ctx, biz.ID, 10)
	require.NoError(t, err)

	require.Len(t, pairs, 2)
	assert.InDelta(t, 45.0, pairs[0].RevenueGenerated, 0.0001)
	assert.Equal(t, 3, pairs[0].TimesConverted)
	assert.InDelta(t, 8.0, pairs[1].RevenueGenerated, 0.0001)

	names := []string{pairs[0].ItemAName, pairs[0].ItemBName}
	assert.Contains(t, names, "Pizza")
	assert.Contains(t, names, "Cola")
}

func TestGetTopPerformingPairs_DeletedItemName(t *testing.T) {
	db := setupDB(t)
	analytics := NewAnalytics(db)
	ctx := context.Background()

	biz := createBusiness(t, db, "bistro")
	pizza := createMenuItem(t, db, biz, "Pizza", 12.00)

	gone := pizza.ID + 1000
	a, b := pizza.ID, gone
	if b < a {
		a, b = b, a
	}
	_, err := db.ItemPairFrequency.Create().
		SetBusinessID(biz.ID).
		SetItemAID(a).
		SetItemBID(b).
		SetTimesTogether(2).
		SetTimesConverted(1).
		SetRevenueGenerated(5.0).
		Save(ctx)
	require.NoError(t, err)

	pairs, err := analytics.GetTopPerformingPairs(ctx, biz.ID, 10)
	require.NoError(t, err)

	require.Len(t, pairs, 1)
	names := []string{pairs[0].ItemAName, pairs[0].ItemBName}
	assert.Contains(t, names, "Pizza")
	assert.Contains(t, names, "Deleted item")
}

func TestGetNetworkSummary(t *testing.T) {
	db := setupDB(t)
	analytics := NewAnalytics(db)
	ctx := context.Background()

	bizA := createBusiness(t, db, "bistro")
	bizB := createBusiness(t, db, "cantina")
	colaA := createMenuItem(t, db, bizA, "Cola", 3.50)
	colaB := createMenuItem(t, db, bizB, "Cola", 4.00)

	now := time.Now().Add(-time.Hour)

	// bizA: 2 impressions, 1 conversion (50%)
	seedEvent(t, db, bizA.ID, colaA.ID, recommendationevent.EventTypeImpression, 0, now)
	seedEvent(t, db, bizA.ID, colaA.ID, recommendationevent.EventTypeImpression, 0, now)
	seedEvent(t, db, bizA.ID, colaA.ID, recommendationevent.EventTypeConversion, 10.0, now)

	// bizB: 4 impressions, 1 conversion (25%)
	for i := 0; i < 4; i++ {
		seedEvent(t, db, bizB.ID, colaB.ID, recommendationevent.EventTypeImpression, 0, now)
	}
	seedEvent(t, db, bizB.ID, colaB.ID, recommendationevent.EventTypeConversion, 4.0, now)

	summary, err := analytics.GetNetworkSummary(ctx, 30, "")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Businesses)
	assert.Equal(t, 6, summary.Impressions)
	assert.Equal(t, 2, summary.Conversions)
	assert.InDelta(t, 14.0, summary.Revenue, 0.0001)
	assert.InDelta(t, 37.5, summary.AvgConversionRate, 0.0001)
}

func TestCompareToNetwork(t *testing.T) {
	db := setupDB(t)
	analytics := NewAnalytics(db)
	ctx := context.Background()

	bizA := createBusiness(t, db, "bistro")
	bizB := createBusiness(t, db, "cantina")
	colaA := createMenuItem(t, db, bizA, "Cola", 3.50)
	colaB := createMenuItem(t, db, bizB, "Cola", 4.00)

	now := time.Now().Add(-time.Hour)

	seedEvent(t, db, bizA.ID, colaA.ID, recommendationevent.EventTypeImpression, 0, now)
	seedEvent(t, db, bizA.ID, colaA.ID, recommendationevent.EventTypeImpression, 0, now)
	seedEvent(t, db, bizA.ID, colaA.ID, recommendationevent.EventTypeConversion, 10.0, now)

	for i := 0; i < 4; i++ {
		seedEvent(t, db, bizB.ID, colaB.ID, recommendationevent.EventTypeImpression, 0, now)
	}
	seedEvent(t, db, bizB.ID, colaB.ID, recommendationevent.EventTypeConversion, 4.0, now)

	cmp, err := analytics.CompareToNetwork(ctx, bizA.ID, 30)
	require.NoError(t, err)

	assert.InDelta(t, 50.0, cmp.Business.ConversionRate, 0.0001)
	assert.InDelta(t, 37.5, cmp.Network.AvgConversionRate, 0.0001)
	assert.InDelta(t, 12.5, cmp.RateDelta, 0.0001)
	assert.True(t, cmp.AboveNetwork)
}
