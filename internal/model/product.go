package model

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Persisted records and API payloads carry money as plain JSON numbers
	// ({"salePrice": 5000}), not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a catalog entry. Stock is allowed to go negative: a sale commit
// decrements it without a floor.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Barcode   string          `json:"barcode"` // not guaranteed unique
	CostPrice decimal.Decimal `json:"costPrice"`
	SalePrice decimal.Decimal `json:"salePrice"`
	Unit      string          `json:"unit"`
	Stock     int             `json:"stock"`
	ImageURL  string          `json:"imageUrl,omitempty"`
}
