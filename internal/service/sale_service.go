package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"sobanhang/internal/dto"
	"sobanhang/internal/infra"
	"sobanhang/internal/model"
	"sobanhang/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type SaleService interface {
	// CommitSale applies a finished cart to the three stores. It performs no
	// validation; see Checkout.
	CommitSale(ctx context.Context, items []model.SaleItem, discountPct, vatPct decimal.Decimal, method model.PaymentMethod, customerID string) (*model.Sale, error)
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error)
	Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.SaleResponse, error)
	ListSales(ctx context.Context) *dto.SaleListResponse
	GetSale(ctx context.Context, id string) (*dto.SaleResponse, error)
	Receipt(ctx context.Context, id string) ([]byte, error)
}

type saleService struct {
	catalog   repository.CatalogStore
	customers repository.CustomerStore
	ledger    repository.SaleLedger
	shop      infra.ShopInfo
	now       func() time.Time
}

func NewSaleService(
	catalog repository.CatalogStore,
	customers repository.CustomerStore,
	ledger repository.SaleLedger,
	shop infra.ShopInfo,
) SaleService {
	return &saleService{
		catalog:   catalog,
		customers: customers,
		ledger:    ledger,
		shop:      shop,
		now:       time.Now,
	}
}

// ── CommitSale ────────────────────────────────────────────────────────────────
// Each step is persisted on its own; a failure leaves earlier steps applied:
//   1. decrement stock of every matching product (missing ones are skipped)
//   2. DEBT sale to a known customer: debt += total
//   3. build the Sale and prepend it to the ledger

func (s *saleService) CommitSale(
	ctx context.Context,
	items []model.SaleItem,
	discountPct, vatPct decimal.Decimal,
	method model.PaymentMethod,
	customerID string,
) (*model.Sale, error) {
	totals := ComputeTotals(items, discountPct, vatPct)

	// 1. Stock
	matched, err := s.catalog.DeductStock(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("commit sale: deduct stock: %w", err)
	}

	// 2. Debt
	var customer *model.Customer
	if customerID != "" {
		if c, ok := s.customers.FindByID(customerID); ok {
			customer = &c
		}
	}
	if method == model.PaymentDebt && customer != nil {
		if _, _, err := s.customers.AdjustDebt(ctx, customer.ID, totals.Total); err != nil {
			return nil, fmt.Errorf("commit sale: adjust debt: %w", err)
		}
	}

	// 3. Ledger
	sale := model.Sale{
		ID:            repository.NewID("sale"),
		Items:         slices.Clone(items),
		Subtotal:      totals.Subtotal,
		Discount:      discountPct,
		VAT:           vatPct,
		Total:         totals.Total,
		PaymentMethod: method,
		CustomerName:  model.WalkInCustomerName,
		Date:          s.now().UTC().Truncate(time.Millisecond),
	}
	if customer != nil {
		sale.CustomerID = customer.ID
		sale.CustomerName = customer.Name
	}
	if err := s.ledger.Append(ctx, sale); err != nil {
		return nil, fmt.Errorf("commit sale: append ledger: %w", err)
	}

	log.Info().
		Str("sale_id", sale.ID).
		Str("method", string(method)).
		Str("total", sale.Total.String()).
		Int("lines", len(items)).
		Int("stock_lines", matched).
		Msg("sale committed")
	return &sale, nil
}

// ── Checkout ──────────────────────────────────────────────────────────────────

func (s *saleService) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	items, err := s.buildCart(req.Items)
	if err != nil {
		return nil, err
	}
	t := ComputeTotals(items, req.Discount, req.VAT)
	return &dto.QuoteResponse{
		Items:          itemsToResponse(items),
		Subtotal:       t.Subtotal,
		DiscountAmount: t.DiscountAmount,
		VATAmount:      t.VATAmount,
		Total:          t.Total,
	}, nil
}

// Checkout validates the request against current state and commits it.
// Nothing is mutated unless every check passes.
func (s *saleService) Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.SaleResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}
	method := model.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}
	if method == model.PaymentDebt {
		if req.CustomerID == "" {
			return nil, ErrCustomerRequired
		}
		if _, ok := s.customers.FindByID(req.CustomerID); !ok {
			return nil, ErrCustomerNotFound
		}
	}

	items, err := s.buildCart(req.Items)
	if err != nil {
		return nil, err
	}

	sale, err := s.CommitSale(ctx, items, req.Discount, req.VAT, method, req.CustomerID)
	if err != nil {
		return nil, err
	}
	resp := saleToResponse(sale)
	return &resp, nil
}

// buildCart replays the request lines into a Cart so the cumulative stock
// check applies. Lines for products no longer in the catalog are kept only if
// they carry their own price snapshot.
func (s *saleService) buildCart(lines []dto.CartItemRequest) ([]model.SaleItem, error) {
	cart := NewCart()
	for _, line := range lines {
		p, ok := s.catalog.FindByID(line.ProductID)
		if !ok {
			if line.Price == nil {
				return nil, fmt.Errorf("%w: %s", ErrProductNotFound, line.ProductID)
			}
			cart.AddSnapshot(model.SaleItem{
				ProductID:   line.ProductID,
				ProductName: line.ProductName,
				Quantity:    line.Quantity,
				Price:       *line.Price,
			})
			continue
		}
		price := p.SalePrice
		if line.Price != nil {
			price = *line.Price
		}
		if err := cart.AddAt(p, line.Quantity, price); err != nil {
			return nil, err
		}
	}
	return cart.Items(), nil
}

// ── Ledger queries ────────────────────────────────────────────────────────────

func (s *saleService) ListSales(_ context.Context) *dto.SaleListResponse {
	sales := s.ledger.All()
	out := make([]dto.SaleResponse, len(sales))
	for i := range sales {
		out[i] = saleToResponse(&sales[i])
	}
	return &dto.SaleListResponse{Data: out, Total: len(out)}
}

func (s *saleService) GetSale(_ context.Context, id string) (*dto.SaleResponse, error) {
	sale, ok := s.ledger.FindByID(id)
	if !ok {
		return nil, ErrSaleNotFound
	}
	resp := saleToResponse(&sale)
	return &resp, nil
}

func (s *saleService) Receipt(_ context.Context, id string) ([]byte, error) {
	sale, ok := s.ledger.FindByID(id)
	if !ok {
		return nil, ErrSaleNotFound
	}
	return infra.GenerateReceiptPDF(&sale, s.shop)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func saleToResponse(sale *model.Sale) dto.SaleResponse {
	t := totalsFromSubtotal(sale.Subtotal, sale.Discount, sale.VAT)
	return dto.SaleResponse{
		ID:             sale.ID,
		Items:          itemsToResponse(sale.Items),
		Subtotal:       sale.Subtotal,
		Discount:       sale.Discount,
		VAT:            sale.VAT,
		DiscountAmount: t.DiscountAmount,
		VATAmount:      t.VATAmount,
		Total:          sale.Total,
		PaymentMethod:  string(sale.PaymentMethod),
		CustomerID:     sale.CustomerID,
		CustomerName:   sale.CustomerName,
		Date:           sale.Date.UTC().Format("2006-01-02T15:04:05.000Z"),
	}
}

func itemsToResponse(items []model.SaleItem) []dto.SaleItemResponse {
	out := make([]dto.SaleItemResponse, len(items))
	for i, it := range items {
		out[i] = dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			LineTotal:   it.LineTotal(),
		}
	}
	return out
}
