package service

import (
	"sobanhang/internal/model"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Totals are the figures shown on the checkout panel and the receipt.
// Nothing is rounded; display code decides the precision.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	Discounted     decimal.Decimal
	VATAmount      decimal.Decimal
	Total          decimal.Decimal
}

// Subtotal returns Σ price×quantity over items, in entry order.
func Subtotal(items []model.SaleItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

// ComputeTotals prices a cart: discount percentage first, then VAT on the
// discounted amount.
func ComputeTotals(items []model.SaleItem, discountPct, vatPct decimal.Decimal) Totals {
	return totalsFromSubtotal(Subtotal(items), discountPct, vatPct)
}

//	discounted = subtotal × (1 − discount/100)
//	total      = discounted × (1 + vat/100)
//	vat amount = discounted × vat/100
func totalsFromSubtotal(subtotal, discountPct, vatPct decimal.Decimal) Totals {
	discounted := subtotal.Mul(one.Sub(discountPct.Div(hundred)))
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: subtotal.Sub(discounted),
		Discounted:     discounted,
		VATAmount:      discounted.Mul(vatPct).Div(hundred),
		Total:          discounted.Mul(one.Add(vatPct.Div(hundred))),
	}
}
