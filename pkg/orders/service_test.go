package orders

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/ent/enttest"
	"github.com/menuqr/menuqr/ent/order"
	"github.com/menuqr/menuqr/ent/table"
	"github.com/menuqr/menuqr/pkg/domain"
	"github.com/menuqr/menuqr/pkg/logger"
	"github.com/menuqr/menuqr/pkg/recommendations"
)

func setupService(t *testing.T) (*Service, *ent.Client) {
	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { db.Close() })

	log := logger.New("error")
	engine := recommendations.NewEngine(db, nil, log, recommendations.DefaultOptions())
	return NewService(db, engine, log, 0.05), db
}

func seedMenu(t *testing.T, db *ent.Client) (*ent.Business, *ent.MenuItem, *ent.MenuItem) {
	ctx := context.Background()

	biz, err := db.Business.Create().
		SetName("Bistro").
		SetBusinessType("restaurant").
		SetSlug("bistro").
		Save(ctx)
	require.NoError(t, err)

	cat, err := db.Category.Create().
		SetBusinessID(biz.ID).
		SetName("Mains").
		Save(ctx)
	require.NoError(t, err)

	pizza, err := db.MenuItem.Create().
		SetCategoryID(cat.ID).
		SetName("Pizza").
		SetPrice(12.00).
		Save(ctx)
	require.NoError(t, err)

	cola, err := db.MenuItem.Create().
		SetCategoryID(cat.ID).
		SetName("Cola").
		SetPrice(3.50).
		Save(ctx)
	require.NoError(t, err)

	return biz, pizza, cola
}

func TestCreate_ComputesTotalsAndSnapshot(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	biz, pizza, cola := seedMenu(t, db)

	o, err := svc.Create(ctx, CreateOrderInput{
		BusinessID: biz.ID,
		Location:   "table 4",
		TipAmount:  2.00,
		Items: []OrderItemInput{
			{MenuItemID: pizza.ID, Quantity: 2},
			{MenuItemID: cola.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	// 2x12.00 + 3.50 = 27.50, 5% tax = 1.38, tip 2.00
	assert.InDelta(t, 27.50, o.Subtotal, 0.0001)
	assert.InDelta(t, 1.38, o.TaxAmount, 0.0001)
	assert.InDelta(t, 30.88, o.TotalPrice, 0.0001)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Len(t, o.ItemsSnapshot, 2)

	lines, err := db.OrderItem.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, lines)

	// Popularity bumped once per line
	p, err := db.MenuItem.Get(ctx, pizza.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.PopularityScore)
}

func TestCreate_SnapshotSurvivesPriceChange(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	biz, pizza, _ := seedMenu(t, db)

	o, err := svc.Create(ctx, CreateOrderInput{
		BusinessID: biz.ID,
		Location:   "room 12",
		Items:      []OrderItemInput{{MenuItemID: pizza.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, db.MenuItem.UpdateOneID(pizza.ID).SetPrice(99.0).Exec(ctx))

	line, err := db.OrderItem.Query().Only(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 12.00, line.PriceAtOrder, 0.0001)
	assert.InDelta(t, 12.60, o.TotalPrice, 0.0001)
}

func TestCreate_Validation(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	biz, pizza, cola := seedMenu(t, db)

	t.Run("empty order", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateOrderInput{BusinessID: biz.ID, Location: "table 1"})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("unavailable item", func(t *testing.T) {
		require.NoError(t, db.MenuItem.UpdateOneID(cola.ID).SetIsAvailable(false).Exec(ctx))
		_, err := svc.Create(ctx, CreateOrderInput{
			BusinessID: biz.ID,
			Location:   "table 1",
			Items:      []OrderItemInput{{MenuItemID: cola.ID, Quantity: 1}},
		})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("item from another business", func(t *testing.T) {
		other, err := db.Business.Create().
			SetName("Cantina").
			SetBusinessType("restaurant").
			SetSlug("cantina").
			Save(ctx)
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateOrderInput{
			BusinessID: other.ID,
			Location:   "table 1",
			Items:      []OrderItemInput{{MenuItemID: pizza.ID, Quantity: 1}},
		})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("inactive business", func(t *testing.T) {
		require.NoError(t, db.Business.UpdateOneID(biz.ID).SetIsActive(false).Exec(ctx))
		_, err := svc.Create(ctx, CreateOrderInput{
			BusinessID: biz.ID,
			Location:   "table 1",
			Items:      []OrderItemInput{{MenuItemID: pizza.ID, Quantity: 1}},
		})
		assert.True(t, domain.IsForbidden(err))
	})
}

func TestUpdateStatus_WorkflowAndCompletionTrigger(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	biz, pizza, cola := seedMenu(t, db)

	o, err := svc.Create(ctx, CreateOrderInput{
		BusinessID: biz.ID,
		Location:   "table 2",
		Items: []OrderItemInput{
			{MenuItemID: pizza.ID, Quantity: 1},
			{MenuItemID: cola.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	for _, next := range []order.Status{
		order.StatusAccepted,
		order.StatusPreparing,
		order.StatusReady,
		order.StatusDelivered,
	} {
		_, err := svc.UpdateStatus(ctx, biz.ID, o.ID, next)
		require.NoError(t, err)

		pairs, err := db.ItemPairFrequency.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, pairs, "no pairs before completion")
	}

	_, err = svc.UpdateStatus(ctx, biz.ID, o.ID, order.StatusCompleted)
	require.NoError(t, err)

	p, err := db.ItemPairFrequency.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, p.TimesTogether)

	// Repeating the terminal status is a no-op, pairs are not counted again
	_, err = svc.UpdateStatus(ctx, biz.ID, o.ID, order.StatusCompleted)
	require.NoError(t, err)

	p, err = db.ItemPairFrequency.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, p.TimesTogether)
}

func TestUpdateStatus_RejectsInvalidTransitions(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	biz, pizza, _ := seedMenu(t, db)

	o, err := svc.Create(ctx, CreateOrderInput{
		BusinessID: biz.ID,
		Location:   "table 2",
		Items:      []OrderItemInput{{MenuItemID: pizza.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, biz.ID, o.ID, order.StatusCompleted)
	assert.True(t, domain.IsInvalidTransition(err))

	_, err = svc.UpdateStatus(ctx, biz.ID, o.ID, order.StatusCancelled)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, biz.ID, o.ID, order.StatusAccepted)
	assert.True(t, domain.IsInvalidTransition(err))

	pairs, err := db.ItemPairFrequency.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pairs, "cancelled orders never feed the engine")
}

func TestOrder_TableLifecycle(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	biz, pizza, _ := seedMenu(t, db)

	tbl, err := db.Table.Create().
		SetBusinessID(biz.ID).
		SetTableNumber("7").
		Save(ctx)
	require.NoError(t, err)

	o, err := svc.Create(ctx, CreateOrderInput{
		BusinessID: biz.ID,
		Location:   "table 7",
		TableID:    &tbl.ID,
		Items:      []OrderItemInput{{MenuItemID: pizza.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	tbl, err = db.Table.Get(ctx, tbl.ID)
	require.NoError(t, err)
	assert.Equal(t, table.StatusOccupied, tbl.Status)

	_, err = svc.UpdateStatus(ctx, biz.ID, o.ID, order.StatusCancelled)
	require.NoError(t, err)

	tbl, err = db.Table.Get(ctx, tbl.ID)
	require.NoError(t, err)
	assert.Equal(t, table.StatusAvailable, tbl.Status)
}

func TestUpdateStatus_ScopedToBusiness(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	biz, pizza, cola := seedMenu(t, db)

	other, err := db.Business.Create().
		SetName("Cantina").
		SetBusinessType("restaurant").
		SetSlug("cantina").
		Save(ctx)
	require.NoError(t, err)

	o, err := svc.Create(ctx, CreateOrderInput{
		BusinessID: biz.ID,
		Location:   "table 3",
		Items: []OrderItemInput{
			{MenuItemID: pizza.ID, Quantity: 1},
			{MenuItemID: cola.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	// Another business cannot touch the order, not even to cancel it
	_, err = svc.UpdateStatus(ctx, other.ID, o.ID, order.StatusCancelled)
	assert.True(t, domain.IsNotFound(err))

	for _, next := range []order.Status{
		order.StatusAccepted,
		order.StatusPreparing,
		order.StatusReady,
		order.StatusDelivered,
		order.StatusCompleted,
	} {
		_, err = svc.UpdateStatus(ctx, other.ID, o.ID, next)
		assert.True(t, domain.IsNotFound(err))
	}

	got, err := db.Order.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, got.Status)

	pairs, err := db.ItemPairFrequency.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pairs, "foreign requests must not feed the engine")

	// The owner still can
	_, err = svc.UpdateStatus(ctx, biz.ID, o.ID, order.StatusAccepted)
	require.NoError(t, err)
}
