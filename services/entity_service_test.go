package services

import (
	"context"
	"testing"

	"shopconsole.io/database/dbtest"
	"shopconsole.io/models"
	"shopconsole.io/pkg/apperrors"
	"shopconsole.io/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomerService(t *testing.T) *EntityService[models.Customer, *models.Customer] {
	t.Helper()
	return NewEntityService[models.Customer](dbtest.Open(t), "customer", []string{"name"}, []string{"name", "email"})
}

func TestEntity_CRUDIsTenantScoped(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()

	c := &models.Customer{Name: "Grace", Email: "grace@example.com"}
	require.NoError(t, svc.Create(ctx, acme, c))
	require.NotZero(t, c.ID)
	assert.Equal(t, acme, c.OrgMail)

	_, err := svc.Get(ctx, globex, c.ID)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
	err = svc.Update(ctx, globex, c.ID, &models.Customer{Name: "Mallory"})
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
	err = svc.Delete(ctx, globex, c.ID)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))

	require.NoError(t, svc.Update(ctx, acme, c.ID, &models.Customer{Name: "Grace H."}))
	got, err := svc.Get(ctx, acme, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grace H.", got.Name)

	require.NoError(t, svc.Delete(ctx, acme, c.ID))
	_, err = svc.Get(ctx, acme, c.ID)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestEntity_Validation(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)

	customers := NewEntityService[models.Customer](db, "customer", nil, nil)
	err := customers.Create(ctx, acme, &models.Customer{})
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))

	reviews := NewEntityService[models.Review](db, "review", nil, nil)
	err = reviews.Create(ctx, acme, &models.Review{Rating: 6})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating must be between 1 and 5")

	orders := NewEntityService[models.Order](db, "order", nil, nil)
	order := &models.Order{Items: []models.OrderItem{{ProductID: 1, Quantity: 2, UnitPrice: 3}}}
	require.NoError(t, orders.Create(ctx, acme, order))
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestEntity_ListSearchAndPaging(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()
	for _, name := range []string{"Alice", "Bob", "Alicia", "Carol"} {
		require.NoError(t, svc.Create(ctx, acme, &models.Customer{Name: name}))
	}
	require.NoError(t, svc.Create(ctx, globex, &models.Customer{Name: "Alina"}))

	res, err := svc.List(ctx, acme, queryparams.ListParams{Search: "ali", SortBy: "name", OrderBy: "asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Meta.TotalItems)
	customers := res.Data.([]models.Customer)
	require.Len(t, customers, 2)
	assert.Equal(t, "Alice", customers[0].Name)
	assert.Equal(t, "Alicia", customers[1].Name)

	res, err = svc.List(ctx, acme, queryparams.ListParams{Page: 2, PerPage: 3})
	require.NoError(t, err)
	assert.Len(t, res.Data.([]models.Customer), 1)
	assert.Equal(t, 2, res.Meta.TotalPages)
}
