package model

import "github.com/shopspring/decimal"

// Customer is a shop customer with a running credit balance.
// Debt is money owed to the shop; a negative value means the customer prepaid.
type Customer struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Phone   string          `json:"phone"`
	Address string          `json:"address"`
	Debt    decimal.Decimal `json:"debt"`
}
