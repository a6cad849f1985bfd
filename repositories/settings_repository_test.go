package repositories

import (
	"context"
	"testing"

	"shopconsole.io/database/dbtest"
	"shopconsole.io/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_UpsertStoredCopy(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewSettingsRepository[models.PolicyDetailsSetting, *models.PolicyDetailsSetting](db)

	first := &models.PolicyDetailsSetting{PrivacyPolicy: "v1"}
	first.SetTenant("owner@acme.test")
	require.NoError(t, repo.Upsert(ctx, first))

	stored, err := repo.FindByOrgMail(ctx, "owner@acme.test")
	require.NoError(t, err)
	require.NotZero(t, stored.ID)

	next := *stored
	next.PrivacyPolicy = "v2"
	require.NoError(t, repo.Upsert(ctx, &next))

	got, err := repo.FindByOrgMail(ctx, "owner@acme.test")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, "v2", got.PrivacyPolicy)
	assert.True(t, stored.CreatedAt.Equal(got.CreatedAt), "created_at survives the overwrite")

	var count int64
	require.NoError(t, db.Model(&models.PolicyDetailsSetting{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSettingsBase_ResetKeysKeepsTenant(t *testing.T) {
	var s models.SettingsBase
	s.ID = 7
	s.SetTenant("owner@acme.test")
	s.ResetKeys()

	assert.Zero(t, s.ID)
	assert.True(t, s.CreatedAt.IsZero())
	assert.Equal(t, "owner@acme.test", s.Tenant())
}
