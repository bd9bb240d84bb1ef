package auth

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/ent/enttest"
	"github.com/menuqr/menuqr/pkg/domain"
	"github.com/menuqr/menuqr/pkg/logger"
)

func setupAuth(t *testing.T) (*Service, *ent.Client, *ent.Business) {
	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { db.Close() })

	biz, err := db.Business.Create().
		SetName("Bistro").
		SetBusinessType("restaurant").
		SetSlug("bistro").
		Save(context.Background())
	require.NoError(t, err)

	return NewService(db, logger.New("error"), "test-secret", 1), db, biz
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, biz := setupAuth(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{
		BusinessID: biz.ID,
		Email:      "Owner@Bistro.test",
		Password:   "s3cret-pass",
		FullName:   "Pat Owner",
		Role:       "owner",
	})
	require.NoError(t, err)
	assert.Equal(t, "owner@bistro.test", u.Email)

	token, logged, err := svc.Login(ctx, "owner@bistro.test", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)

	claims, err := ValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, biz.ID, claims.BusinessID)
	assert.Equal(t, "owner", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, biz := setupAuth(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		BusinessID: biz.ID,
		Email:      "owner@bistro.test",
		Password:   "s3cret-pass",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "owner@bistro.test", "wrong")
	assert.True(t, domain.IsUnauthorized(err))

	_, _, err = svc.Login(ctx, "nobody@bistro.test", "s3cret-pass")
	assert.True(t, domain.IsUnauthorized(err))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, biz := setupAuth(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		BusinessID: biz.ID,
		Email:      "owner@bistro.test",
		Password:   "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{
		BusinessID: biz.ID,
		Email:      "owner@bistro.test",
		Password:   "other-pass",
	})
	assert.True(t, domain.IsConflict(err))
}

func TestValidateJWT_BadSecret(t *testing.T) {
	token, err := GenerateJWT(1, 2, "a@b.c", "waiter", "secret-a", 1)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "secret-b")
	assert.Error(t, err)
}
