package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest carries no debt: new customers always start at zero.
type CreateCustomerRequest struct {
	Name    string `json:"name"    validate:"required,min=1,max=120"`
	Phone   string `json:"phone"   validate:"max=32"`
	Address string `json:"address" validate:"max=255"`
}

// UpdateCustomerRequest replaces the contact fields. Debt is only overwritten
// when sent; routine changes go through AdjustDebtRequest.
type UpdateCustomerRequest struct {
	Name    string           `json:"name"    validate:"required,min=1,max=120"`
	Phone   string           `json:"phone"   validate:"max=32"`
	Address string           `json:"address" validate:"max=255"`
	Debt    *decimal.Decimal `json:"debt,omitempty"`
}

// AdjustDebtRequest: positive amount charges the customer, negative records a payment.
type AdjustDebtRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

type CustomerResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Phone   string          `json:"phone"`
	Address string          `json:"address"`
	Debt    decimal.Decimal `json:"debt"`
}

type CustomerListResponse struct {
	Data  []CustomerResponse `json:"data"`
	Total int                `json:"total"`
}
