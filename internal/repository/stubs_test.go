package repository_test

import (
	"context"
	"errors"
	"slices"

	"sobanhang/internal/model"
	"sobanhang/internal/repository"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

var errDiskFull = errors.New("disk full")

// stubWriter records every write through the three store ports. When fail is
// set each write returns errDiskFull and nothing is recorded.
type stubWriter struct {
	fail      bool
	products  [][]model.Product
	customers [][]model.Customer
	sales     [][]model.Sale
}

func (w *stubWriter) SaveProducts(_ context.Context, p []model.Product) error {
	if w.fail {
		return errDiskFull
	}
	w.products = append(w.products, slices.Clone(p))
	return nil
}

func (w *stubWriter) SaveCustomers(_ context.Context, c []model.Customer) error {
	if w.fail {
		return errDiskFull
	}
	w.customers = append(w.customers, slices.Clone(c))
	return nil
}

func (w *stubWriter) SaveSales(_ context.Context, s []model.Sale) error {
	if w.fail {
		return errDiskFull
	}
	w.sales = append(w.sales, slices.Clone(s))
	return nil
}

var (
	_ repository.ProductWriter  = (*stubWriter)(nil)
	_ repository.CustomerWriter = (*stubWriter)(nil)
	_ repository.SaleWriter     = (*stubWriter)(nil)
)
