package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CartItemRequest is one cart line. Price and ProductName are the snapshot the
// cart took when the line was added; when Price is omitted the current sale
// price from the catalog is used.
type CartItemRequest struct {
	ProductID   string           `json:"productId"   validate:"required"`
	ProductName string           `json:"productName" validate:"max=120"`
	Quantity    int              `json:"quantity"    validate:"required,min=1"`
	Price       *decimal.Decimal `json:"price"`
}

// QuoteRequest computes cart totals without committing anything.
type QuoteRequest struct {
	Items    []CartItemRequest `json:"items"    validate:"dive"`
	Discount decimal.Decimal   `json:"discount" validate:"min=0,max=100"`
	VAT      decimal.Decimal   `json:"vat"      validate:"min=0"`
}

// CheckoutRequest commits a cart. An empty cart is rejected by the service,
// not by validation, so the operator gets the domain message.
type CheckoutRequest struct {
	Items         []CartItemRequest `json:"items"         validate:"dive"`
	Discount      decimal.Decimal   `json:"discount"      validate:"min=0,max=100"`
	VAT           decimal.Decimal   `json:"vat"           validate:"min=0"`
	PaymentMethod string            `json:"paymentMethod" validate:"required"`
	CustomerID    string            `json:"customerId"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

type QuoteResponse struct {
	Items          []SaleItemResponse `json:"items"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	DiscountAmount decimal.Decimal    `json:"discountAmount"`
	VATAmount      decimal.Decimal    `json:"vatAmount"`
	Total          decimal.Decimal    `json:"total"`
}

type SaleResponse struct {
	ID             string             `json:"id"`
	Items          []SaleItemResponse `json:"items"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	Discount       decimal.Decimal    `json:"discount"`
	VAT            decimal.Decimal    `json:"vat"`
	DiscountAmount decimal.Decimal    `json:"discountAmount"`
	VATAmount      decimal.Decimal    `json:"vatAmount"`
	Total          decimal.Decimal    `json:"total"`
	PaymentMethod  string             `json:"paymentMethod"`
	CustomerID     string             `json:"customerId,omitempty"`
	CustomerName   string             `json:"customerName,omitempty"`
	Date           string             `json:"date"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int            `json:"total"`
}
