package service_test

import (
	"context"
	"testing"

	"sobanhang/internal/infra"
	"sobanhang/internal/model"
	"sobanhang/internal/repository"
	"sobanhang/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// ── Fixtures ──────────────────────────────────────────────────────────────────

type fixture struct {
	kv      *infra.MemoryKV
	storage repository.StateStorage
	state   *repository.State
	sales   service.SaleService
}

// newFixture loads the seeded demo state over an in-memory backend.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	kv := infra.NewMemoryKV()
	storage := repository.NewStateStorage(kv)
	state, err := repository.LoadState(context.Background(), storage)
	require.NoError(t, err)
	return &fixture{
		kv:      kv,
		storage: storage,
		state:   state,
		sales:   service.NewSaleService(state.Catalog, state.Customers, state.Sales, infra.ShopInfo{Name: "Test shop"}),
	}
}

func (f *fixture) stock(t *testing.T, id string) int {
	t.Helper()
	p, ok := f.state.Catalog.FindByID(id)
	require.True(t, ok, id)
	return p.Stock
}

func (f *fixture) debt(t *testing.T, id string) string {
	t.Helper()
	c, ok := f.state.Customers.FindByID(id)
	require.True(t, ok, id)
	return c.Debt.String()
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func dp(v int64) *decimal.Decimal {
	x := decimal.NewFromInt(v)
	return &x
}

// scenarioItems: 2 × water at 5000 and 1 × sandwich at 22000 → subtotal 32000.
func scenarioItems() []model.SaleItem {
	return []model.SaleItem{
		{ProductID: "prod_1", ProductName: "Nước suối Aquafina", Quantity: 2, Price: d(5000)},
		{ProductID: "prod_2", ProductName: "Bánh mì Sandwich", Quantity: 1, Price: d(22000)},
	}
}
