package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProductRequest is used for both create and full update (PUT).
type ProductRequest struct {
	Name      string          `json:"name"      validate:"required,min=1,max=120"`
	SKU       string          `json:"sku"       validate:"max=64"`
	Barcode   string          `json:"barcode"   validate:"max=32"`
	CostPrice decimal.Decimal `json:"costPrice" validate:"min=0"`
	SalePrice decimal.Decimal `json:"salePrice" validate:"min=0"`
	Unit      string          `json:"unit"      validate:"max=32"`
	// Stock may be set negative by an operator correcting a past oversell.
	Stock    int    `json:"stock"`
	ImageURL string `json:"imageUrl"  validate:"omitempty,url"`
}

// ProductFilter is bound from the query string of GET /v1/products.
type ProductFilter struct {
	Q     string `form:"q"`
	Limit int    `form:"limit"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Barcode   string          `json:"barcode"`
	CostPrice decimal.Decimal `json:"costPrice"`
	SalePrice decimal.Decimal `json:"salePrice"`
	Unit      string          `json:"unit"`
	Stock     int             `json:"stock"`
	ImageURL  string          `json:"imageUrl,omitempty"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int               `json:"total"`
}
