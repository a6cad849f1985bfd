package database_test

import (
	"testing"

	"shopconsole.io/database"
	"shopconsole.io/database/dbtest"
	"shopconsole.io/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_SeedsIdempotently(t *testing.T) {
	db := dbtest.Open(t)
	t.Setenv("SEED_ADMIN_EMAIL", "Demo@Shop.test")
	t.Setenv("SEED_ADMIN_PASSWORD", "demo-password")

	require.NoError(t, database.Initialize(db, true, true))
	require.NoError(t, database.Initialize(db, false, true))

	var admins []models.Admin
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "demo@shop.test", admins[0].OrgMail)

	var policies int64
	require.NoError(t, db.Model(&models.PolicyDetailsSetting{}).Count(&policies).Error)
	assert.Equal(t, int64(1), policies)
}

func TestInitialize_NothingRequested(t *testing.T) {
	db := dbtest.Open(t)
	assert.NoError(t, database.Initialize(db, false, false))
}
