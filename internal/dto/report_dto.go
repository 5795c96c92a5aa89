package dto

import "github.com/shopspring/decimal"

// DailyRevenue is one bar of the revenue-per-day chart. Date is YYYY-MM-DD (UTC).
type DailyRevenue struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type TopProduct struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type KPIs struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalSales        int             `json:"totalSales"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}

type ReportSummaryResponse struct {
	KPIs
	DailyRevenue []DailyRevenue `json:"dailyRevenue"`
	TopProducts  []TopProduct   `json:"topProducts"`
}
