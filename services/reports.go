package services

import (
	"sort"
	"strings"

	"cafe-pos-api/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReportService computes read-side rollups over the sales log. Every report
// is derived fresh from the log at request time; nothing is materialized.
// Empty filters always produce the all-zero shape, never null.
type ReportService struct {
	db             *gorm.DB
	paymentMethods []string
	log            *zap.Logger
}

func NewReportService(db *gorm.DB, paymentMethods []string, log *zap.Logger) *ReportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReportService{db: db, paymentMethods: paymentMethods, log: log.Named("reports")}
}

// Summary is the common totals block shared by the daily, monthly and
// yearly reports. Payments carries one entry per configured payment method,
// zero when the method saw no sales.
type Summary struct {
	TotalRevenue  decimal.Decimal            `json:"total_revenue"`
	TotalProfit   decimal.Decimal            `json:"total_profit"`
	OrderCount    int64                      `json:"order_count"`
	AvgOrderValue decimal.Decimal            `json:"avg_order_value"`
	Payments      map[string]decimal.Decimal `json:"payments"`
}

type CategoryStat struct {
	Category string          `json:"category"`
	Count    int64           `json:"count"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type SlotStat struct {
	TimeSlot string `json:"time_slot"`
	Count    int64  `json:"count"`
}

type DailyReport struct {
	Date       string            `json:"date"`
	Summary    Summary           `json:"summary"`
	Categories []CategoryStat    `json:"categories"`
	TimeSlots  []SlotStat        `json:"time_slots"`
	Prices     []decimal.Decimal `json:"prices"`
}

type DayRevenue struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type MonthlyReport struct {
	Month   string       `json:"month"`
	Year    string       `json:"year"`
	Summary Summary      `json:"summary"`
	Trend   []DayRevenue `json:"trend"`
}

type MonthStat struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
	Count   int64           `json:"count"`
}

type YearlyReport struct {
	Year             string      `json:"year"`
	Summary          Summary     `json:"summary"`
	MonthlyBreakdown []MonthStat `json:"monthly_breakdown"`
}

type SlotIntel struct {
	TimeSlot  string          `json:"time_slot"`
	Revenue   decimal.Decimal `json:"revenue"`
	Count     int64           `json:"count"`
	AvgProfit decimal.Decimal `json:"avg_profit"`
}

type StaffStat struct {
	SoldBy       string          `json:"sold_by"`
	TotalSales   int64           `json:"total_sales"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// DailySummary rolls up every sale recorded on the given local date
// (YYYY-MM-DD), with category, time-slot and per-payment-method breakdowns
// plus the ordered per-sale price list.
func (s *ReportService) DailySummary(date string) (*DailyReport, error) {
	sales, err := s.fetch(map[string]string{"date": date})
	if err != nil {
		return nil, err
	}

	report := &DailyReport{
		Date:       date,
		Summary:    s.summarize(sales),
		Categories: make([]CategoryStat, 0),
		TimeSlots:  make([]SlotStat, 0),
		Prices:     make([]decimal.Decimal, 0, len(sales)),
	}

	catIdx := map[string]int{}
	slotIdx := map[string]int{}
	for _, sale := range sales {
		if i, ok := catIdx[sale.Category]; ok {
			report.Categories[i].Count++
			report.Categories[i].Revenue = report.Categories[i].Revenue.Add(sale.Price)
		} else {
			catIdx[sale.Category] = len(report.Categories)
			report.Categories = append(report.Categories, CategoryStat{
				Category: sale.Category, Count: 1, Revenue: sale.Price,
			})
		}
		if i, ok := slotIdx[sale.TimeSlot]; ok {
			report.TimeSlots[i].Count++
		} else {
			slotIdx[sale.TimeSlot] = len(report.TimeSlots)
			report.TimeSlots = append(report.TimeSlots, SlotStat{TimeSlot: sale.TimeSlot, Count: 1})
		}
		report.Prices = append(report.Prices, sale.Price)
	}

	sort.Slice(report.Categories, func(i, j int) bool {
		return report.Categories[i].Category < report.Categories[j].Category
	})
	sort.Slice(report.TimeSlots, func(i, j int) bool {
		return report.TimeSlots[i].TimeSlot < report.TimeSlots[j].TimeSlot
	})
	return report, nil
}

// MonthlySummary rolls up a (month, year) pair and adds the day-by-day
// revenue trend, dates ascending.
func (s *ReportService) MonthlySummary(month, year string) (*MonthlyReport, error) {
	sales, err := s.fetch(map[string]string{"month": month, "year": year})
	if err != nil {
		return nil, err
	}

	report := &MonthlyReport{
		Month:   month,
		Year:    year,
		Summary: s.summarize(sales),
		Trend:   make([]DayRevenue, 0),
	}

	byDate := map[string]decimal.Decimal{}
	for _, sale := range sales {
		byDate[sale.Date] = byDate[sale.Date].Add(sale.Price)
	}
	for date, revenue := range byDate {
		report.Trend = append(report.Trend, DayRevenue{Date: date, Revenue: revenue})
	}
	sort.Slice(report.Trend, func(i, j int) bool {
		return report.Trend[i].Date < report.Trend[j].Date
	})
	return report, nil
}

// YearlySummary rolls up a year and adds the per-month breakdown, months
// ascending ("01".."12" sorts the same lexicographically and numerically).
func (s *ReportService) YearlySummary(year string) (*YearlyReport, error) {
	sales, err := s.fetch(map[string]string{"year": year})
	if err != nil {
		return nil, err
	}

	report := &YearlyReport{
		Year:             year,
		Summary:          s.summarize(sales),
		MonthlyBreakdown: make([]MonthStat, 0),
	}

	idx := map[string]int{}
	for _, sale := range sales {
		if i, ok := idx[sale.Month]; ok {
			report.MonthlyBreakdown[i].Count++
			report.MonthlyBreakdown[i].Revenue = report.MonthlyBreakdown[i].Revenue.Add(sale.Price)
			report.MonthlyBreakdown[i].Profit = report.MonthlyBreakdown[i].Profit.Add(sale.Profit)
		} else {
			idx[sale.Month] = len(report.MonthlyBreakdown)
			report.MonthlyBreakdown = append(report.MonthlyBreakdown, MonthStat{
				Month: sale.Month, Revenue: sale.Price, Profit: sale.Profit, Count: 1,
			})
		}
	}
	sort.Slice(report.MonthlyBreakdown, func(i, j int) bool {
		return report.MonthlyBreakdown[i].Month < report.MonthlyBreakdown[j].Month
	})
	return report, nil
}

// TimeIntelligence groups the entire log by time slot — no date window —
// answering which part of the day earns the most. Rows are sorted by
// revenue descending.
func (s *ReportService) TimeIntelligence() ([]SlotIntel, error) {
	sales, err := s.fetch(nil)
	if err != nil {
		return nil, err
	}

	result := make([]SlotIntel, 0)
	idx := map[string]int{}
	profits := map[string]decimal.Decimal{}
	for _, sale := range sales {
		if i, ok := idx[sale.TimeSlot]; ok {
			result[i].Count++
			result[i].Revenue = result[i].Revenue.Add(sale.Price)
		} else {
			idx[sale.TimeSlot] = len(result)
			result = append(result, SlotIntel{TimeSlot: sale.TimeSlot, Revenue: sale.Price, Count: 1})
		}
		profits[sale.TimeSlot] = profits[sale.TimeSlot].Add(sale.Profit)
	}
	for i := range result {
		result[i].AvgProfit = profits[result[i].TimeSlot].
			DivRound(decimal.NewFromInt(result[i].Count), 2)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Revenue.Equal(result[j].Revenue) {
			return result[i].Revenue.GreaterThan(result[j].Revenue)
		}
		return result[i].TimeSlot < result[j].TimeSlot
	})
	return result, nil
}

// StaffPerformance groups by operator, filtered by any AND-combination of
// date, month and year (empty strings mean no filter). Sorted by revenue
// descending; equal-revenue operators keep their log order, so repeated
// calls over an unchanged log return the same ranking.
func (s *ReportService) StaffPerformance(date, month, year string) ([]StaffStat, error) {
	filters := map[string]string{}
	if date != "" {
		filters["date"] = date
	}
	if month != "" {
		filters["month"] = month
	}
	if year != "" {
		filters["year"] = year
	}

	sales, err := s.fetch(filters)
	if err != nil {
		return nil, err
	}

	result := make([]StaffStat, 0)
	idx := map[string]int{}
	for _, sale := range sales {
		if i, ok := idx[sale.SoldBy]; ok {
			result[i].TotalSales++
			result[i].TotalRevenue = result[i].TotalRevenue.Add(sale.Price)
		} else {
			idx[sale.SoldBy] = len(result)
			result = append(result, StaffStat{SoldBy: sale.SoldBy, TotalSales: 1, TotalRevenue: sale.Price})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalRevenue.GreaterThan(result[j].TotalRevenue)
	})
	return result, nil
}

// fetch loads matching sales ordered by timestamp ascending. Filters hit the
// denormalized indexed columns; grouping happens in Go over the snapshot
// labels, never by recomputing from the raw timestamp.
func (s *ReportService) fetch(filters map[string]string) ([]models.Sale, error) {
	query := s.db.Model(&models.Sale{})
	for col, val := range filters {
		query = query.Where(col+" = ?", val)
	}

	var sales []models.Sale
	if err := query.Order("timestamp asc, id asc").Find(&sales).Error; err != nil {
		s.log.Error("sales scan failed", zap.Error(err))
		return nil, Storage(err)
	}
	return sales, nil
}

func (s *ReportService) summarize(sales []models.Sale) Summary {
	sum := Summary{
		TotalRevenue:  decimal.Zero,
		TotalProfit:   decimal.Zero,
		AvgOrderValue: decimal.Zero,
		Payments:      make(map[string]decimal.Decimal, len(s.paymentMethods)),
	}
	for _, pm := range s.paymentMethods {
		sum.Payments[paymentKey(pm)] = decimal.Zero
	}

	for _, sale := range sales {
		sum.TotalRevenue = sum.TotalRevenue.Add(sale.Price)
		sum.TotalProfit = sum.TotalProfit.Add(sale.Profit)
		sum.OrderCount++
		key := paymentKey(sale.PaymentMethod)
		sum.Payments[key] = sum.Payments[key].Add(sale.Price)
	}

	if sum.OrderCount > 0 {
		sum.AvgOrderValue = sum.TotalRevenue.DivRound(decimal.NewFromInt(sum.OrderCount), 2)
	}
	return sum
}

// paymentKey renders a configured method name as its breakdown key,
// e.g. "PhonePe" -> "phonepe_amount".
func paymentKey(method string) string {
	return strings.ToLower(method) + "_amount"
}
