package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sobanhang/internal/config"
	"sobanhang/internal/infra"
	"sobanhang/internal/repository"
	"sobanhang/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

// switchKV is a MemoryKV whose writes can be made to fail.
type switchKV struct {
	*infra.MemoryKV
	failWrites bool
}

func (s *switchKV) Set(ctx context.Context, key, value string) error {
	if s.failWrites {
		return errors.New("disk full")
	}
	return s.MemoryKV.Set(ctx, key, value)
}

type testEnv struct {
	engine *gin.Engine
	kv     *switchKV
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := &switchKV{MemoryKV: infra.NewMemoryKV()}
	storage := repository.NewStateStorage(kv)
	state, err := repository.LoadState(context.Background(), storage)
	require.NoError(t, err)

	cfg := &config.Config{
		Env:              "test",
		StorageDriver:    "memory",
		DefaultTheme:     "light",
		SearchLimit:      5,
		TopProductsLimit: 5,
		ShopName:         "Cửa hàng Test",
	}
	return &testEnv{engine: router.New(cfg, state, storage), kv: kv}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	env := setupTestEnv(t)
	w := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"storage":"connected","driver":"memory"}`, w.Body.String())
}

func TestFullSaleCycle(t *testing.T) {
	env := setupTestEnv(t)

	// 1. Scan a barcode
	w := env.do(t, http.MethodGet, "/v1/products/barcode/8934588022222", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var prod struct {
		ID        string  `json:"id"`
		SalePrice float64 `json:"salePrice"`
	}
	decode(t, w, &prod)
	assert.Equal(t, "prod_1", prod.ID)
	assert.Equal(t, 5000.0, prod.SalePrice)

	cart := []map[string]any{
		{"productId": "prod_1", "quantity": 2},
		{"productId": "prod_2", "quantity": 1},
	}

	// 2. Quote
	w = env.do(t, http.MethodPost, "/v1/sales/quote", map[string]any{"items": cart, "discount": 10, "vat": 8})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var quote struct {
		Subtotal float64 `json:"subtotal"`
		Total    float64 `json:"total"`
	}
	decode(t, w, &quote)
	assert.Equal(t, 32000.0, quote.Subtotal)
	assert.Equal(t, 31104.0, quote.Total)

	// 3. Checkout on credit
	w = env.do(t, http.MethodPost, "/v1/sales", map[string]any{
		"items": cart, "discount": 10, "vat": 8, "paymentMethod": "DEBT", "customerId": "cust_2",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var sale struct {
		ID           string  `json:"id"`
		Total        float64 `json:"total"`
		CustomerName string  `json:"customerName"`
	}
	decode(t, w, &sale)
	assert.Equal(t, 31104.0, sale.Total)
	assert.Equal(t, "Chị Lan", sale.CustomerName)

	// 4. Side effects
	w = env.do(t, http.MethodGet, "/v1/customers/cust_2", nil)
	var cust struct {
		Debt float64 `json:"debt"`
	}
	decode(t, w, &cust)
	assert.Equal(t, 281104.0, cust.Debt)

	w = env.do(t, http.MethodGet, "/v1/products/prod_1", nil)
	var p1 struct {
		Stock int `json:"stock"`
	}
	decode(t, w, &p1)
	assert.Equal(t, 98, p1.Stock)

	// 5. Ledger, receipt, report
	w = env.do(t, http.MethodGet, "/v1/sales", nil)
	var list struct {
		Total int `json:"total"`
	}
	decode(t, w, &list)
	assert.Equal(t, 1, list.Total)

	w = env.do(t, http.MethodGet, "/v1/sales/"+sale.ID+"/receipt.pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w = env.do(t, http.MethodGet, "/v1/reports/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sum struct {
		TotalRevenue float64 `json:"totalRevenue"`
		TotalSales   int     `json:"totalSales"`
		TopProducts  []struct {
			ProductID string `json:"productId"`
		} `json:"topProducts"`
	}
	decode(t, w, &sum)
	assert.Equal(t, 31104.0, sum.TotalRevenue)
	assert.Equal(t, 1, sum.TotalSales)
	require.Len(t, sum.TopProducts, 2)
	assert.Equal(t, "prod_2", sum.TopProducts[0].ProductID)
}

func TestCheckoutErrors(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/sales", map[string]any{"items": []any{}, "paymentMethod": "CASH"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"cart is empty"}`, w.Body.String())

	w = env.do(t, http.MethodPost, "/v1/sales", map[string]any{
		"items": []map[string]any{{"productId": "prod_1", "quantity": 1}}, "paymentMethod": "DEBT",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/v1/sales", map[string]any{
		"items": []map[string]any{{"productId": "prod_1", "quantity": 0}}, "paymentMethod": "CASH",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do(t, http.MethodPost, "/v1/sales", map[string]any{
		"items": []map[string]any{{"productId": "prod_1", "quantity": 1}}, "paymentMethod": "CASH", "discount": 150,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do(t, http.MethodGet, "/v1/sales/sale_nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductCRUD(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/products", map[string]any{
		"name": "Cà phê G7", "sku": "G7", "barcode": "8935024140017",
		"costPrice": 40000, "salePrice": 52000, "unit": "Hộp", "stock": 12,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	decode(t, w, &created)

	w = env.do(t, http.MethodGet, "/v1/products?q=g7", nil)
	var hits struct {
		Total int `json:"total"`
	}
	decode(t, w, &hits)
	assert.Equal(t, 1, hits.Total)

	w = env.do(t, http.MethodPut, "/v1/products/"+created.ID, map[string]any{"name": "Cà phê G7 3in1", "salePrice": 55000})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/v1/products", map[string]any{"salePrice": -1})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do(t, http.MethodDelete, "/v1/products/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = env.do(t, http.MethodGet, "/v1/products/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerDebtEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/customers/cust_2/debt", map[string]any{"amount": -50000})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var c struct {
		Debt float64 `json:"debt"`
	}
	decode(t, w, &c)
	assert.Equal(t, 200000.0, c.Debt)

	w = env.do(t, http.MethodPost, "/v1/customers/cust_404/debt", map[string]any{"amount": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerEditKeepsDebt(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPut, "/v1/customers/cust_2", map[string]any{
		"name": "Chị Lan B", "phone": "0912345678", "address": "12 Lê Lợi",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var c struct {
		Name string  `json:"name"`
		Debt float64 `json:"debt"`
	}
	decode(t, w, &c)
	assert.Equal(t, "Chị Lan B", c.Name)
	assert.Equal(t, 250000.0, c.Debt)

	w = env.do(t, http.MethodGet, "/v1/customers/cust_2", nil)
	decode(t, w, &c)
	assert.Equal(t, 250000.0, c.Debt)

	// An explicit debt still overwrites.
	w = env.do(t, http.MethodPut, "/v1/customers/cust_2", map[string]any{"name": "Chị Lan", "debt": 0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &c)
	assert.Equal(t, 0.0, c.Debt)
}

func TestTheme(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/theme", nil)
	assert.JSONEq(t, `{"theme":"light"}`, w.Body.String())

	w = env.do(t, http.MethodPost, "/v1/theme/toggle", nil)
	assert.JSONEq(t, `{"theme":"dark"}`, w.Body.String())

	w = env.do(t, http.MethodPut, "/v1/theme", map[string]any{"theme": "neon"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do(t, http.MethodPut, "/v1/theme", map[string]any{"theme": "light"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStorageFailureIs500(t *testing.T) {
	env := setupTestEnv(t)
	env.kv.failWrites = true

	w := env.do(t, http.MethodPost, "/v1/customers", map[string]any{"name": "Bác Tư"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"internal server error"}`, w.Body.String())

	env.kv.failWrites = false
	w = env.do(t, http.MethodGet, "/v1/customers", nil)
	var list struct {
		Total int `json:"total"`
	}
	decode(t, w, &list)
	assert.Equal(t, 3, list.Total, "failed add left memory unchanged")
}
