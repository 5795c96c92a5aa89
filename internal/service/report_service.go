package service

import (
	"context"
	"sort"

	"sobanhang/internal/dto"
	"sobanhang/internal/model"
	"sobanhang/internal/repository"

	"github.com/shopspring/decimal"
)

// DefaultTopProducts is how many products the top-sellers chart shows.
const DefaultTopProducts = 5

type ReportService interface {
	Summary(ctx context.Context) *dto.ReportSummaryResponse
}

type reportService struct {
	ledger   repository.SaleLedger
	topLimit int
}

func NewReportService(ledger repository.SaleLedger, topLimit int) ReportService {
	if topLimit <= 0 {
		topLimit = DefaultTopProducts
	}
	return &reportService{ledger: ledger, topLimit: topLimit}
}

func (s *reportService) Summary(_ context.Context) *dto.ReportSummaryResponse {
	sales := s.ledger.All()
	return &dto.ReportSummaryResponse{
		KPIs:         ComputeKPIs(sales),
		DailyRevenue: DailyRevenue(sales),
		TopProducts:  TopProducts(sales, s.topLimit),
	}
}

// DailyRevenue sums sale totals per UTC calendar day, oldest day first.
func DailyRevenue(sales []model.Sale) []dto.DailyRevenue {
	byDay := make(map[string]decimal.Decimal)
	for _, sale := range sales {
		day := sale.Date.UTC().Format("2006-01-02")
		byDay[day] = byDay[day].Add(sale.Total)
	}

	out := make([]dto.DailyRevenue, 0, len(byDay))
	for day, revenue := range byDay {
		out = append(out, dto.DailyRevenue{Date: day, Revenue: revenue})
	}
	// YYYY-MM-DD sorts chronologically as a string.
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// TopProducts ranks products by revenue (price × quantity across all sales),
// highest first, keeping at most n. The name is the first one seen while
// walking the ledger. Ties keep first-seen order.
func TopProducts(sales []model.Sale, n int) []dto.TopProduct {
	index := make(map[string]int)
	var agg []dto.TopProduct
	for _, sale := range sales {
		for _, it := range sale.Items {
			i, ok := index[it.ProductID]
			if !ok {
				i = len(agg)
				index[it.ProductID] = i
				agg = append(agg, dto.TopProduct{ProductID: it.ProductID, Name: it.ProductName, Revenue: decimal.Zero})
			}
			agg[i].Quantity += it.Quantity
			agg[i].Revenue = agg[i].Revenue.Add(it.LineTotal())
		}
	}

	sort.SliceStable(agg, func(i, j int) bool { return agg[i].Revenue.GreaterThan(agg[j].Revenue) })
	if n > 0 && len(agg) > n {
		agg = agg[:n]
	}
	if agg == nil {
		agg = []dto.TopProduct{}
	}
	return agg
}

// ComputeKPIs returns total revenue, sale count and average order value
// (zero when there are no sales).
func ComputeKPIs(sales []model.Sale) dto.KPIs {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Total)
	}
	avg := decimal.Zero
	if len(sales) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(sales))))
	}
	return dto.KPIs{TotalRevenue: total, TotalSales: len(sales), AverageOrderValue: avg}
}
