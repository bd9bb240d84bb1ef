package alerts

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/ent/enttest"
	"github.com/menuqr/menuqr/ent/waiteralert"
	"github.com/menuqr/menuqr/pkg/domain"
	"github.com/menuqr/menuqr/pkg/logger"
)

func setupAlerts(t *testing.T, waiterAlerts bool) (*Service, *ent.Client, *ent.Business, *ent.Table) {
	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	biz, err := db.Business.Create().
		SetName("Bistro").
		SetBusinessType("restaurant").
		SetSlug("bistro").
		SetEnableWaiterAlerts(waiterAlerts).
		Save(ctx)
	require.NoError(t, err)

	tbl, err := db.Table.Create().
		SetBusinessID(biz.ID).
		SetTableNumber("A1").
		Save(ctx)
	require.NoError(t, err)

	return NewService(db, logger.New("error")), db, biz, tbl
}

func TestRaiseAndResolve(t *testing.T) {
	svc, _, biz, tbl := setupAlerts(t, true)
	ctx := context.Background()

	a, err := svc.Raise(ctx, biz.ID, RaiseInput{TableID: tbl.ID, AlertType: "bill_request", Message: "check please"})
	require.NoError(t, err)
	assert.Equal(t, waiteralert.StatusPending, a.Status)
	assert.Equal(t, waiteralert.AlertTypeBillRequest, a.AlertType)

	pending, err := svc.ListPending(ctx, biz.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	a, err = svc.Acknowledge(ctx, biz.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, waiteralert.StatusAcknowledged, a.Status)
	assert.NotNil(t, a.AcknowledgedAt)

	// Acknowledged alerts still show on the pending board
	pending, err = svc.ListPending(ctx, biz.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	a, err = svc.Resolve(ctx, biz.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, waiteralert.StatusResolved, a.Status)
	assert.NotNil(t, a.ResolvedAt)

	pending, err = svc.ListPending(ctx, biz.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRaise_FeatureDisabled(t *testing.T) {
	svc, _, biz, tbl := setupAlerts(t, false)

	_, err := svc.Raise(context.Background(), biz.ID, RaiseInput{TableID: tbl.ID})
	assert.True(t, domain.IsFeatureDisabled(err))
}

func TestRaise_ForeignTable(t *testing.T) {
	svc, db, biz, _ := setupAlerts(t, true)
	ctx := context.Background()

	other, err := db.Business.Create().
		SetName("Other").
		SetBusinessType("cafe").
		SetSlug("other").
		SetEnableWaiterAlerts(true).
		Save(ctx)
	require.NoError(t, err)
	foreignTable, err := db.Table.Create().
		SetBusinessID(other.ID).
		SetTableNumber("B1").
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.Raise(ctx, biz.ID, RaiseInput{TableID: foreignTable.ID})
	assert.True(t, domain.IsValidation(err))
}
