package tables

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/ent/enttest"
	"github.com/menuqr/menuqr/ent/table"
	"github.com/menuqr/menuqr/pkg/domain"
	"github.com/menuqr/menuqr/pkg/logger"
)

func setupTables(t *testing.T, tableManagement bool) (*Service, *ent.Business) {
	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { db.Close() })

	biz, err := db.Business.Create().
		SetName("Bistro").
		SetBusinessType("restaurant").
		SetSlug("bistro").
		SetEnableTableManagement(tableManagement).
		Save(context.Background())
	require.NoError(t, err)

	return NewService(db, logger.New("error")), biz
}

func TestCreateTable(t *testing.T) {
	svc, biz := setupTables(t, true)
	ctx := context.Background()

	tbl, err := svc.Create(ctx, biz.ID, CreateInput{TableNumber: "A1", Capacity: 6})
	require.NoError(t, err)
	assert.Equal(t, "A1", tbl.TableNumber)
	assert.Equal(t, 6, tbl.Capacity)
	assert.Equal(t, table.StatusAvailable, tbl.Status)

	// Capacity defaults when omitted
	tbl, err = svc.Create(ctx, biz.ID, CreateInput{TableNumber: "A2"})
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.Capacity)
}

func TestCreateTable_FeatureDisabled(t *testing.T) {
	svc, biz := setupTables(t, false)

	_, err := svc.Create(context.Background(), biz.ID, CreateInput{TableNumber: "A1"})
	assert.True(t, domain.IsFeatureDisabled(err))
}

func TestCreateTable_DuplicateNumber(t *testing.T) {
	svc, biz := setupTables(t, true)
	ctx := context.Background()

	_, err := svc.Create(ctx, biz.ID, CreateInput{TableNumber: "A1"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, biz.ID, CreateInput{TableNumber: "A1"})
	assert.True(t, domain.IsConflict(err))
}

func TestSetStatus_TenantScoped(t *testing.T) {
	svc, biz := setupTables(t, true)
	ctx := context.Background()

	tbl, err := svc.Create(ctx, biz.ID, CreateInput{TableNumber: "A1"})
	require.NoError(t, err)

	tbl, err = svc.SetStatus(ctx, biz.ID, tbl.ID, table.StatusOccupied)
	require.NoError(t, err)
	assert.Equal(t, table.StatusOccupied, tbl.Status)

	// Another business cannot touch this table
	_, err = svc.SetStatus(ctx, biz.ID+1, tbl.ID, table.StatusCleaning)
	assert.True(t, domain.IsNotFound(err))
}
