package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod: "CASH" | "TRANSFER" | "DEBT"
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentDebt     PaymentMethod = "DEBT"
)

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentTransfer, PaymentDebt:
		return true
	}
	return false
}

// WalkInCustomerName is the customer name recorded on sales without a customer.
const WalkInCustomerName = "Khách lẻ"

// SaleItem is one cart/sale line. ProductID is a weak reference: the product
// may since have been deleted, so ProductName and Price are snapshots taken
// when the line entered the cart.
type SaleItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// LineTotal returns Price × Quantity.
func (i SaleItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale is an immutable committed transaction.
// Discount and VAT are percentages; Total is derived from Subtotal, Discount and VAT.
type Sale struct {
	ID            string          `json:"id"`
	Items         []SaleItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	VAT           decimal.Decimal `json:"vat"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	CustomerID    string          `json:"customerId,omitempty"`
	CustomerName  string          `json:"customerName,omitempty"`
	Date          time.Time       `json:"date"`
}

// Snapshot is the full persisted state: the three independently keyed records.
type Snapshot struct {
	Products  []Product
	Customers []Customer
	Sales     []Sale
}

// Empty reports whether no collection holds any entry.
func (s *Snapshot) Empty() bool {
	return len(s.Products) == 0 && len(s.Customers) == 0 && len(s.Sales) == 0
}
