package infra

import (
	"bytes"
	"testing"
	"time"
	"unicode/utf16"

	"sobanhang/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// utf16be is how fpdf writes text shown with a UTF-8 font.
func utf16be(s string) []byte {
	var out []byte
	for _, u := range utf16.Encode([]rune(s)) {
		out = append(out, byte(u>>8), byte(u))
	}
	return out
}

func TestRenderReceipt_KeepsVietnameseText(t *testing.T) {
	sale := &model.Sale{
		ID:            "sale_1",
		Items:         []model.SaleItem{{ProductID: "prod_1", ProductName: "Nước suối", Quantity: 1, Price: decimal.NewFromInt(5000)}},
		Subtotal:      decimal.NewFromInt(5000),
		Total:         decimal.NewFromInt(5000),
		PaymentMethod: model.PaymentDebt,
		CustomerID:    "cust_2",
		CustomerName:  "Chị Lan",
		Date:          time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	}

	pdf, err := renderReceipt(sale, ShopInfo{Name: "Cửa hàng Demo"}, false)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(pdf, utf16be("Khách hàng: Chị Lan")), "customer line")
	assert.True(t, bytes.Contains(pdf, utf16be("Nước suối")), "item name")
	assert.True(t, bytes.Contains(pdf, utf16be("Hoá Đơn Bán Hàng")), "title")
}

func TestRenderReceipt_WalkInPlaceholder(t *testing.T) {
	sale := &model.Sale{ID: "sale_2", PaymentMethod: model.PaymentCash, Date: time.Now()}

	pdf, err := renderReceipt(sale, ShopInfo{}, false)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(pdf, utf16be(model.WalkInCustomerName)))
}
