package service_test

import (
	"context"
	"testing"

	"sobanhang/internal/dto"
	"sobanhang/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := service.NewCustomerService(f.state.Customers)

	c, err := svc.Create(ctx, dto.CreateCustomerRequest{Name: "Bác Tư", Phone: "0901111222"})
	require.NoError(t, err)
	assert.True(t, c.Debt.IsZero())

	c, err = svc.AdjustDebt(ctx, c.ID, d(50000))
	require.NoError(t, err)
	assert.Equal(t, "50000", c.Debt.String())

	c, err = svc.AdjustDebt(ctx, c.ID, d(-20000))
	require.NoError(t, err)
	assert.Equal(t, "30000", c.Debt.String())

	_, err = svc.AdjustDebt(ctx, "cust_missing", d(1))
	assert.ErrorIs(t, err, service.ErrCustomerNotFound)

	upd, err := svc.Update(ctx, c.ID, dto.UpdateCustomerRequest{Name: "Bác Tư Hai", Phone: "0903333444"})
	require.NoError(t, err)
	assert.Equal(t, "Bác Tư Hai", upd.Name)
	assert.Equal(t, "30000", upd.Debt.String(), "omitted debt is kept")

	upd, err = svc.Update(ctx, c.ID, dto.UpdateCustomerRequest{Name: "Bác Tư", Debt: dp(0)})
	require.NoError(t, err)
	assert.True(t, upd.Debt.IsZero())

	_, err = svc.Update(ctx, "cust_missing", dto.UpdateCustomerRequest{Name: "x"})
	assert.ErrorIs(t, err, service.ErrCustomerNotFound)

	assert.Equal(t, 4, svc.List(ctx).Total)
	require.NoError(t, svc.Delete(ctx, c.ID))
	_, err = svc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, service.ErrCustomerNotFound)
}
