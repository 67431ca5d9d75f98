package dto

import "github.com/shopspring/decimal"

// DailyStat ventas de un día calendario (clave YYYY-MM-DD).
type DailyStat struct {
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SalesSummaryResponse agregados de ventas de un período para una ubicación.
type SalesSummaryResponse struct {
	TotalSales     int                  `json:"total_sales"`
	TotalRevenue   decimal.Decimal      `json:"total_revenue"`
	TotalDiscount  decimal.Decimal      `json:"total_discount"`
	TotalItemsSold int                  `json:"total_items_sold"`
	AvgSaleValue   decimal.Decimal      `json:"avg_sale_value"`
	SalesByDate    map[string]DailyStat `json:"sales_by_date"`
}

// TodayReportResponse ventas del día en curso.
type TodayReportResponse struct {
	Sales             []SaleResponse  `json:"sales"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalTransactions int             `json:"total_transactions"`
}
