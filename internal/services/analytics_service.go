package services

import (
	"sort"
	"time"

	"dastawez_backend/internal/models"
	"dastawez_backend/internal/repositories"
	"dastawez_backend/internal/services/dto"
	"dastawez_backend/pkg/apperrors"

	"github.com/shopspring/decimal"
)

type AnalyticsService interface {
	Dashboard() (*dto.AnalyticsResponse, error)
}

// AnalyticsServiceImpl aggregates over the full order set in memory on
// each request. Fine for a single-shop deployment; past tens of
// thousands of orders these belong in SQL aggregate queries.
type AnalyticsServiceImpl struct {
	orders repositories.OrderRepository

	now func() time.Time
}

func NewAnalyticsService(orders repositories.OrderRepository) AnalyticsService {
	return &AnalyticsServiceImpl{orders: orders, now: time.Now}
}

func (s *AnalyticsServiceImpl) Dashboard() (*dto.AnalyticsResponse, error) {
	orders, err := s.orders.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return BuildAnalytics(orders, s.now()), nil
}

// BuildAnalytics computes every dashboard aggregate from one order
// slice. Cancelled orders are excluded from revenue figures but kept
// in the status breakdown.
func BuildAnalytics(orders []models.Order, now time.Time) *dto.AnalyticsResponse {
	resp := &dto.AnalyticsResponse{
		Daily:      buildDaily(orders, now),
		Monthly:    buildMonthly(orders, now),
		ByService:  buildByService(orders),
		ByCategory: buildByCategory(orders),
		ByStatus:   buildByStatus(orders),
		Summary:    buildSummary(orders, now),
	}
	return resp
}

func countsTowardRevenue(o *models.Order) bool {
	return o.Status != models.OrderStatusCancelled
}

// monthStart returns the first instant of the month offset months away
// from the one containing t.
func monthStart(t time.Time, offset int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(offset), 1, 0, 0, 0, 0, t.Location())
}

func buildDaily(orders []models.Order, now time.Time) []dto.DailyRevenue {
	days := make([]dto.DailyRevenue, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6)
		key := day.Format("2006-01-02")
		days[i] = dto.DailyRevenue{
			Date:    key,
			Label:   day.Format("Mon"),
			Revenue: decimal.Zero,
		}
		index[key] = i
	}

	for i := range orders {
		o := &orders[i]
		if !countsTowardRevenue(o) {
			continue
		}
		key := o.CreatedAt.Format("2006-01-02")
		if pos, ok := index[key]; ok {
			days[pos].Revenue = days[pos].Revenue.Add(o.TotalAmount)
			days[pos].Orders++
		}
	}
	return days
}

func buildMonthly(orders []models.Order, now time.Time) []dto.MonthlyRevenue {
	months := make([]dto.MonthlyRevenue, 6)
	index := make(map[string]int, 6)
	for i := 0; i < 6; i++ {
		// Anchor on the first of the month; AddDate on a day-31 "now"
		// would normalize into the wrong bucket.
		month := monthStart(now, i-5)
		key := month.Format("2006-01")
		months[i] = dto.MonthlyRevenue{
			Month:   key,
			Label:   month.Format("Jan"),
			Revenue: decimal.Zero,
		}
		index[key] = i
	}

	for i := range orders {
		o := &orders[i]
		key := o.CreatedAt.Format("2006-01")
		pos, ok := index[key]
		if !ok {
			continue
		}
		months[pos].Orders++
		switch o.Status {
		case models.OrderStatusDelivered:
			months[pos].Delivered++
		case models.OrderStatusPending:
			months[pos].Pending++
		}
		if countsTowardRevenue(o) {
			months[pos].Revenue = months[pos].Revenue.Add(o.TotalAmount)
		}
	}
	return months
}

func buildByService(orders []models.Order) []dto.ServiceRevenue {
	byID := make(map[string]*dto.ServiceRevenue)
	for i := range orders {
		o := &orders[i]
		if !countsTowardRevenue(o) {
			continue
		}
		entry, ok := byID[o.ServiceID]
		if !ok {
			name := "Unknown service"
			if o.Service != nil {
				name = o.Service.Name
			}
			entry = &dto.ServiceRevenue{
				ServiceID:   o.ServiceID,
				ServiceName: name,
				Revenue:     decimal.Zero,
			}
			byID[o.ServiceID] = entry
		}
		entry.Revenue = entry.Revenue.Add(o.TotalAmount)
		entry.Orders++
	}

	result := make([]dto.ServiceRevenue, 0, len(byID))
	for _, entry := range byID {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Revenue.GreaterThan(result[j].Revenue)
	})
	return result
}

func buildByCategory(orders []models.Order) []dto.CategoryRevenue {
	byCategory := make(map[models.ServiceCategory]*dto.CategoryRevenue)
	for i := range orders {
		o := &orders[i]
		if !countsTowardRevenue(o) || o.Service == nil {
			continue
		}
		entry, ok := byCategory[o.Service.Category]
		if !ok {
			entry = &dto.CategoryRevenue{Category: o.Service.Category, Revenue: decimal.Zero}
			byCategory[o.Service.Category] = entry
		}
		entry.Revenue = entry.Revenue.Add(o.TotalAmount)
		entry.Orders++
	}

	result := make([]dto.CategoryRevenue, 0, len(byCategory))
	for _, entry := range byCategory {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Revenue.GreaterThan(result[j].Revenue)
	})
	return result
}

func buildByStatus(orders []models.Order) []dto.StatusBreakdown {
	ordered := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusInProgress,
		models.OrderStatusReady,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	}

	byStatus := make(map[models.OrderStatus]*dto.StatusBreakdown, len(ordered))
	for _, status := range ordered {
		byStatus[status] = &dto.StatusBreakdown{Status: status, Revenue: decimal.Zero}
	}
	for i := range orders {
		o := &orders[i]
		entry, ok := byStatus[o.Status]
		if !ok {
			continue
		}
		entry.Revenue = entry.Revenue.Add(o.TotalAmount)
		entry.Orders++
	}

	result := make([]dto.StatusBreakdown, 0, len(ordered))
	for _, status := range ordered {
		result = append(result, *byStatus[status])
	}
	return result
}

func buildSummary(orders []models.Order, now time.Time) dto.AnalyticsSummary {
	summary := dto.AnalyticsSummary{
		TotalRevenue:      decimal.Zero,
		DeliveredRevenue:  decimal.Zero,
		PendingRevenue:    decimal.Zero,
		CancelledRevenue:  decimal.Zero,
		AverageOrderValue: decimal.Zero,
		MonthlyGrowthPct:  decimal.Zero,
		CompletionRatePct: decimal.Zero,
	}

	thisMonth := now.Format("2006-01")
	lastMonth := monthStart(now, -1).Format("2006-01")
	thisMonthRevenue := decimal.Zero
	lastMonthRevenue := decimal.Zero
	delivered := 0

	for i := range orders {
		o := &orders[i]
		summary.TotalOrders++

		switch o.Status {
		case models.OrderStatusDelivered:
			summary.DeliveredRevenue = summary.DeliveredRevenue.Add(o.TotalAmount)
			delivered++
		case models.OrderStatusPending:
			summary.PendingRevenue = summary.PendingRevenue.Add(o.TotalAmount)
		case models.OrderStatusCancelled:
			summary.CancelledRevenue = summary.CancelledRevenue.Add(o.TotalAmount)
		}

		if !countsTowardRevenue(o) {
			continue
		}
		summary.TotalRevenue = summary.TotalRevenue.Add(o.TotalAmount)

		switch o.CreatedAt.Format("2006-01") {
		case thisMonth:
			thisMonthRevenue = thisMonthRevenue.Add(o.TotalAmount)
		case lastMonth:
			lastMonthRevenue = lastMonthRevenue.Add(o.TotalAmount)
		}
	}

	if summary.TotalOrders > 0 {
		count := decimal.NewFromInt(int64(summary.TotalOrders))
		summary.AverageOrderValue = summary.TotalRevenue.Div(count).Round(2)
		summary.CompletionRatePct = decimal.NewFromInt(int64(delivered)).
			Div(count).Mul(decimal.NewFromInt(100)).Round(1)
	}

	if lastMonthRevenue.IsPositive() {
		summary.MonthlyGrowthPct = thisMonthRevenue.Sub(lastMonthRevenue).
			Div(lastMonthRevenue).Mul(decimal.NewFromInt(100)).Round(1)
	} else if thisMonthRevenue.IsPositive() {
		summary.MonthlyGrowthPct = decimal.NewFromInt(100)
	}

	return summary
}
