package service

import "errors"

// Validation failures: returned before anything is mutated.
var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInsufficientStock    = errors.New("insufficient stock for requested quantity")
	ErrCustomerRequired     = errors.New("select a customer to sell on credit")
	ErrInvalidPaymentMethod = errors.New("payment method must be CASH, TRANSFER or DEBT")
	ErrInvalidTheme         = errors.New(`theme must be "light" or "dark"`)
	ErrPriceConflict        = errors.New("cart line already has a different price")
)

// Lookup misses surfaced to the operator.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrSaleNotFound     = errors.New("sale not found")
)
