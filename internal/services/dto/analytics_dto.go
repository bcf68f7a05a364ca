package dto

import (
	"dastawez_backend/internal/models"

	"github.com/shopspring/decimal"
)

type DailyRevenue struct {
	Date    string          `json:"date"`
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

type MonthlyRevenue struct {
	Month     string          `json:"month"`
	Label     string          `json:"label"`
	Revenue   decimal.Decimal `json:"revenue"`
	Delivered int             `json:"delivered"`
	Pending   int             `json:"pending"`
	Orders    int             `json:"orders"`
}

type ServiceRevenue struct {
	ServiceID   string          `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Revenue     decimal.Decimal `json:"revenue"`
	Orders      int             `json:"orders"`
}

type CategoryRevenue struct {
	Category models.ServiceCategory `json:"category"`
	Revenue  decimal.Decimal        `json:"revenue"`
	Orders   int                    `json:"orders"`
}

type StatusBreakdown struct {
	Status  models.OrderStatus `json:"status"`
	Revenue decimal.Decimal    `json:"revenue"`
	Orders  int                `json:"orders"`
}

type AnalyticsSummary struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	DeliveredRevenue  decimal.Decimal `json:"delivered_revenue"`
	PendingRevenue    decimal.Decimal `json:"pending_revenue"`
	CancelledRevenue  decimal.Decimal `json:"cancelled_revenue"`
	TotalOrders       int             `json:"total_orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	MonthlyGrowthPct  decimal.Decimal `json:"monthly_growth_pct"`
	CompletionRatePct decimal.Decimal `json:"completion_rate_pct"`
}

type AnalyticsResponse struct {
	Summary    AnalyticsSummary  `json:"summary"`
	Daily      []DailyRevenue    `json:"daily"`
	Monthly    []MonthlyRevenue  `json:"monthly"`
	ByService  []ServiceRevenue  `json:"by_service"`
	ByCategory []CategoryRevenue `json:"by_category"`
	ByStatus   []StatusBreakdown `json:"by_status"`
}
